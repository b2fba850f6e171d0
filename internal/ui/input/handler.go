package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"filmrec/internal/ui/input/keys"
	"filmrec/internal/ui/input/modes"
	"filmrec/internal/ui/input/types"
)

// Handler routes key messages to the active mode and owns the search text,
// which stays private to the input layer until it is submitted.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

// New creates a handler starting in normal mode
func New(km keys.KeyMap, placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the view layer
	ti.Placeholder = placeholder
	ti.CharLimit = 64

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(km)
	h.modes[types.ModeSearch] = modes.NewSearchMode(km, h.textInput)

	return h
}

// HandleKey lets the active mode interpret msg. Mode changes are applied here
// and never reach the caller; every other action is returned in order.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 && !h.isTextMode(h.currentMode) {
		return h.handleRunes(msg, ctx)
	}

	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		if current := h.modes[h.currentMode]; current != nil {
			allActions = append(allActions, current.Exit(ctx)...)
		}

		h.currentMode = changeMode.Mode

		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}

		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	// Keys the text mode did not claim are edits to the input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// handleRunes replays a multi-rune message (a paste, or keys the terminal
// delivered together) one key at a time. Once a key opens a text mode the
// rest of the runes go to the input in a single message.
func (h *Handler) handleRunes(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	var allActions []types.Action
	var cmds []tea.Cmd

	for i, r := range msg.Runes {
		next := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt, Paste: msg.Paste}
		if h.isTextMode(h.currentMode) {
			next.Runes = msg.Runes[i:]
		}

		actions, cmd := h.HandleKey(next, ctx)
		allActions = append(allActions, actions...)
		cmds = append(cmds, cmd)

		if len(next.Runes) > 1 {
			break
		}
	}

	return allActions, tea.Batch(cmds...)
}

// Update handles non-keyboard messages for the text input, such as cursor blink
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the display name of the active mode
func (h *Handler) ModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return ""
}

// TextInput returns the shared text input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Text returns the uncommitted search text
func (h *Handler) Text() string {
	return h.textInput.Value()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}
