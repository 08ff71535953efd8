// Package tui is the interactive terminal browser for the restaurant catalog.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tasteplaces/tasteplaces/internal/models"
	"github.com/tasteplaces/tasteplaces/internal/service"
	"github.com/tasteplaces/tasteplaces/internal/session"
	"go.uber.org/zap"
)

// Model is the bubbletea model of the browser. It owns a single session.State and
// recomputes the view after every action.
type Model struct {
	sessions *service.SessionService
	machine  *session.Machine
	log      *zap.Logger

	state  session.State
	view   *service.View
	err    error
	cursor int

	search   textinput.Model
	viewport viewport.Model
	keys     keyMap
	help   help.Model
	styles Styles

	width  int
	height int
}

// New creates a browser model starting from the initial state
func New(sessions *service.SessionService, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "
	ti.CharLimit = 0

	m := Model{
		sessions: sessions,
		machine:  sessions.Machine(),
		log:      log,
		state:    session.NewState(),
		search:   ti,
		viewport: viewport.New(0, 0),
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   DefaultStyles(),
	}
	m.refresh()
	m.layout()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current browsing state
func (m Model) State() session.State {
	return m.state
}

// Cursor returns the index of the highlighted card
func (m Model) Cursor() int {
	return m.cursor
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.search.Focused() {
			cmd = m.updateSearchInput(msg)
		} else {
			cmd = m.updateKeys(msg)
		}
	}

	m.layout()
	return m, cmd
}

func (m *Model) updateSearchInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, m.keys.Blur):
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.state.SearchQuery {
		m.dispatch(session.SetSearchQuery{Text: v})
	}
	return cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.restaurants())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Expand):
		if r, ok := m.selected(); ok {
			m.dispatch(session.ToggleExpand{ID: r.ID})
		}

	case key.Matches(msg, m.keys.Search):
		m.dispatch(session.ToggleSearch{})
		if m.state.SearchActive {
			return m.search.Focus()
		}
		m.search.Blur()

	case key.Matches(msg, m.keys.Sort):
		m.dispatch(session.CycleSort{})

	case key.Matches(msg, m.keys.QuickFilter):
		m.dispatch(session.ToggleFilters{})

	case key.Matches(msg, m.keys.Rating):
		m.dispatch(session.SetRatingFilter{Rating: nextLevel(m.state.RatingFilter, models.MaxRating)})

	case key.Matches(msg, m.keys.Price):
		m.dispatch(session.SetPriceFilter{Price: nextLevel(m.state.PriceFilter, models.MaxPrice)})

	case key.Matches(msg, m.keys.Cuisine):
		m.dispatch(session.SetCuisineFilter{Cuisine: m.nextCuisine()})

	case key.Matches(msg, m.keys.Clear):
		m.dispatch(session.ClearAll{})

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return nil
}

// dispatch applies an action and recomputes the view
func (m *Model) dispatch(a session.Action) {
	m.state = m.machine.Apply(m.state, a)
	if m.search.Value() != m.state.SearchQuery {
		m.search.SetValue(m.state.SearchQuery)
	}
	m.log.Debug("action applied", zap.Any("action", a), zap.Any("state", m.state))
	m.refresh()
}

func (m *Model) refresh() {
	view, err := m.sessions.ViewFor(context.Background(), m.state)
	if err != nil {
		m.log.Error("failed to compute view", zap.Error(err))
		m.err = err
		return
	}
	m.err = nil
	m.view = view

	if n := len(view.Restaurants); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// layout sizes the card viewport to the space left by the header and footer and
// scrolls it so the card under the cursor is fully visible. Without a known
// window height the whole list is rendered.
func (m *Model) layout() {
	if m.height <= 0 {
		return
	}

	body, spans := m.renderBody()
	height := m.height - lipgloss.Height(m.renderHeader()) - lipgloss.Height(m.renderFooter()) - 2
	m.viewport.Width = m.width
	if m.viewport.Width <= 0 {
		m.viewport.Width = defaultWidth
	}
	m.viewport.Height = max(height, 1)
	m.viewport.SetContent(body)

	if m.cursor >= len(spans) {
		return
	}
	// a card taller than the viewport shows its top
	top, bottom := spans[m.cursor].top, spans[m.cursor].bottom
	if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	}
}

func (m Model) restaurants() []models.Restaurant {
	if m.view == nil {
		return nil
	}
	return m.view.Restaurants
}

func (m Model) selected() (models.Restaurant, bool) {
	rs := m.restaurants()
	if m.cursor < 0 || m.cursor >= len(rs) {
		return models.Restaurant{}, false
	}
	return rs[m.cursor], true
}

// nextLevel cycles none -> 1 -> ... -> top -> none
func nextLevel(current, top int) int {
	return (current + 1) % (top + 1)
}

// nextCuisine cycles none -> first cuisine -> ... -> last cuisine -> none
func (m Model) nextCuisine() string {
	if m.view == nil || len(m.view.Cuisines) == 0 {
		return ""
	}
	cuisines := m.view.Cuisines
	if m.state.CuisineFilter == "" {
		return cuisines[0]
	}
	for i, c := range cuisines {
		if c == m.state.CuisineFilter && i+1 < len(cuisines) {
			return cuisines[i+1]
		}
	}
	return ""
}
