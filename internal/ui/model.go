package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"filmrec/internal/config"
	"filmrec/internal/domain"
	"filmrec/internal/store"
	"filmrec/internal/ui/input"
	"filmrec/internal/ui/input/keys"
	inputtypes "filmrec/internal/ui/input/types"
	"filmrec/internal/ui/logic"
	"filmrec/internal/ui/views"
)

// ReadySignal is written once the first frame has been rendered
const ReadySignal = "__READY__"

// FilmStore is the observable film list the shell renders
type FilmStore interface {
	Films() []domain.Film
	Search(query string)
	Subscribe(fn store.Subscriber) func()
}

// Option configures a Model
type Option func(*Model)

// WithPager replaces the ov pager used for help and film details
func WithPager(p Pager) Option {
	return func(m *Model) {
		m.pager = p
	}
}

// WithImageResolver sets how card thumbnails are drawn
func WithImageResolver(r views.ImageResolver) Option {
	return func(m *Model) {
		m.renderer = views.NewRenderer(r)
	}
}

// WithReadySignal writes ReadySignal to w after the first render
func WithReadySignal(w io.Writer) Option {
	return func(m *Model) {
		m.readyOut = w
	}
}

// Model is the application shell. It owns the store subscription and hands
// plain data and callbacks down to the stateless views.
type Model struct {
	config *config.Config
	store  FilmStore
	logger *zap.Logger

	// Latest list pushed by the store
	films       []domain.Film
	unsubscribe func()

	lastQuery string
	searched  bool

	width  int
	height int
	help   help.Model
	keys   keys.KeyMap

	inputHandler *input.Handler
	navigator    *logic.Navigator
	renderer     *views.Renderer
	pager        Pager

	readyOut  io.Writer
	readyOnce sync.Once
}

// NewModel creates the shell and subscribes it to st
func NewModel(cfg *config.Config, st FilmStore, logger *zap.Logger, opts ...Option) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	km := keys.Default()

	m := &Model{
		config:       cfg,
		store:        st,
		logger:       logger,
		help:         help.New(),
		keys:         km,
		inputHandler: input.New(km, "judul film"),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(nil),
		pager:        OvPager{},
	}
	for _, opt := range opts {
		opt(m)
	}

	m.setFilms(st.Films())
	m.unsubscribe = st.Subscribe(m.setFilms)

	return m
}

// setFilms is the store subscription; it runs synchronously inside Update
func (m *Model) setFilms(films []domain.Film) {
	m.films = films
	m.navigator.SetTotal(len(films))
}

// Films returns the list the shell is currently rendering
func (m *Model) Films() []domain.Film {
	return m.films
}

// Close removes the store subscription
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// CurrentIndex implements inputtypes.Context
func (m *Model) CurrentIndex() int {
	return m.navigator.SelectedIndex()
}

// TotalItems implements inputtypes.Context
func (m *Model) TotalItems() int {
	return len(m.films)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.navigator.SetViewportHeight(m.renderer.CardsThatFit(m.viewState()))
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.handleAction(action))
		}
		return m, tea.Batch(cmds...)

	case pagerClosedMsg:
		if msg.err != nil {
			// Pager failed: log only, the main screen is untouched
			m.logger.Warn("pager failed", zap.String("title", msg.title), zap.Error(msg.err))
		}
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Move(a.Direction)

	case inputtypes.SubmitTextAction:
		m.submitSearch(a.Text)

	case inputtypes.ShowDetailAction:
		if a.Index < 0 || a.Index >= len(m.films) {
			return nil
		}
		film := m.films[a.Index]
		m.logger.Debug("opening film detail", zap.String("title", film.Title))
		return openPager(m.pager, film.Title, views.DetailText(film))

	case inputtypes.ShowHelpAction:
		return openPager(m.pager, "help", renderHelpContent(m.config.UI.Title, m.keys))

	case inputtypes.QuitAction:
		m.logger.Info("quit requested", zap.Bool("force", a.Force))
		m.Close()
		return tea.Quit

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// The text stays inside the input handler until submitted
	}
	return nil
}

// submitSearch forwards a committed query to the store. The store notifies
// setFilms before Search returns.
func (m *Model) submitSearch(query string) {
	m.lastQuery = query
	m.searched = true
	m.store.Search(query)
	m.navigator.Reset()
}

func (m *Model) View() string {
	out := m.renderer.Render(m.viewState())

	if m.readyOut != nil {
		m.readyOnce.Do(func() {
			fmt.Fprint(m.readyOut, ReadySignal)
		})
	}
	return out
}

func (m *Model) viewState() views.ViewState {
	helpText := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		helpText = m.help.ShortHelpView(m.keys.SearchHelp())
	}

	return views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.config.UI.Title,
		SearchLabel:   m.config.UI.SearchLabel,
		SearchButton:  m.config.UI.SearchButton,
		EmptyMessage:  m.config.UI.EmptyMessage,
		SearchInput:   m.inputHandler.TextInput().View(),
		SearchFocused: m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		LastQuery:     m.lastQuery,
		Searched:      m.searched,
		Films:         m.films,
		Selected:      m.navigator.SelectedIndex(),
		Offset:        m.navigator.ViewportOffset(),
		Visible:       m.navigator.ViewportHeight(),
		HelpText:      helpText,
	}
}
