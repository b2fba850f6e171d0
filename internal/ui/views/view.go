package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"filmrec/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title        string
	SearchLabel  string
	SearchButton string
	EmptyMessage string

	SearchInput   string // rendered text input
	SearchFocused bool
	LastQuery     string
	Searched      bool

	Films    []domain.Film
	Selected int
	Offset   int
	Visible  int

	HelpText string
}

// Renderer composes the title bar, search bar and film list into one screen
type Renderer struct {
	styles     *Styles
	cardRender *CardRenderer
	listRender *ListRenderer
	searchBar  *SearchBarRenderer
}

// NewRenderer creates a new renderer; a nil resolver draws placeholders
func NewRenderer(resolver ImageResolver) *Renderer {
	styles := NewStyles()
	cards := NewCardRenderer(styles, resolver)
	return &Renderer{
		styles:     styles,
		cardRender: cards,
		listRender: NewListRenderer(styles, cards),
		searchBar:  NewSearchBarRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := contentWidth(state.Width)

	content := &strings.Builder{}
	content.WriteString(r.header(state, width))
	content.WriteString("\n\n")

	content.WriteString(r.listRender.Render(ListProps{
		Films:        state.Films,
		Selected:     state.Selected,
		Offset:       state.Offset,
		Visible:      state.Visible,
		Width:        width,
		EmptyMessage: state.EmptyMessage,
	}))

	footer := r.footer(state)

	// Push the footer to the bottom of the screen
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // Main padding
	if availableLines <= 0 {
		availableLines = 22
	}
	newlines := availableLines - currentLines - lipgloss.Height(footer) + 1
	if newlines < 1 {
		newlines = 1
	}
	content.WriteString(strings.Repeat("\n", newlines))
	content.WriteString(footer)

	return r.styles.Main.Render(content.String())
}

// CardsThatFit returns how many cards the list can show for a terminal of
// the given size without pushing the footer off screen.
func (r *Renderer) CardsThatFit(state ViewState) int {
	height := state.Height
	if height <= 0 {
		height = 24
	}
	width := contentWidth(state.Width)
	chrome := 2 + // Main padding
		lipgloss.Height(r.header(state, width)) + 1 +
		lipgloss.Height(r.footer(state))
	return r.listRender.CardsThatFit(height - chrome)
}

func (r *Renderer) header(state ViewState, width int) string {
	title := r.styles.TitleBar.Width(width).Render(state.Title)

	bar := r.searchBar.Render(SearchBarProps{
		Label:   state.SearchLabel,
		Button:  state.SearchButton,
		Input:   state.SearchInput,
		Focused: state.SearchFocused,
		Width:   width,
	})

	return lipgloss.JoinVertical(lipgloss.Left, title, "", bar, "", r.status(state))
}

func (r *Renderer) status(state ViewState) string {
	count := fmt.Sprintf("%d film", len(state.Films))
	if state.Searched {
		count = fmt.Sprintf("%s · %q", count, state.LastQuery)
	}
	return r.styles.Dim.Render(count)
}

func (r *Renderer) footer(state ViewState) string {
	return r.styles.Help.Render(state.HelpText)
}

func contentWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	width := termWidth - 4 // Main padding
	if width < 30 {
		width = 30
	}
	return width
}
