package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tasteplaces/tasteplaces/internal/engine"
	"github.com/tasteplaces/tasteplaces/internal/models"
)

// EmptyMessage is shown when no restaurant matches the current filters
const EmptyMessage = "No restaurants match your filters"

// defaultWidth is the viewport width used before the terminal reports its size
const defaultWidth = 80

// span is the line range [top, bottom) a card occupies in the card list
type span struct {
	top, bottom int
}

// View implements tea.Model
func (m Model) View() string {
	var body string
	if m.height > 0 {
		body = m.viewport.View()
	} else {
		body, _ = m.renderBody()
	}
	return m.renderHeader() + "\n\n" + body + "\n\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	lines := []string{
		m.styles.Title.Render("Montreal Restaurants"),
		"",
		m.renderControls(),
	}

	if m.state.RatingFilter != 0 || m.state.PriceFilter != 0 {
		lines = append(lines, m.renderFilterBar())
	}
	if m.state.CuisineFilter != "" {
		lines = append(lines, m.styles.Bar.Render(m.state.CuisineFilter))
	}
	if m.state.SearchActive {
		lines = append(lines, m.search.View())
	}
	return strings.Join(lines, "\n")
}

// renderBody returns the card list and the lines each card occupies
func (m Model) renderBody() (string, []span) {
	switch {
	case m.err != nil:
		return m.styles.Empty.Render("Error: " + m.err.Error()), nil
	case len(m.restaurants()) == 0:
		return m.styles.Empty.Render(EmptyMessage), nil
	}

	cards := make([]string, 0, len(m.restaurants()))
	spans := make([]span, 0, len(m.restaurants()))
	line := 0
	for i, r := range m.restaurants() {
		card := m.renderCard(r, i == m.cursor)
		h := lipgloss.Height(card)
		cards = append(cards, card)
		spans = append(spans, span{top: line, bottom: line + h})
		line += h
	}
	return strings.Join(cards, "\n"), spans
}

func (m Model) renderFooter() string {
	return m.help.View(m.keys)
}

func (m Model) renderControls() string {
	control := func(label string, on bool) string {
		if on {
			return m.styles.ControlOn.Render(label)
		}
		return m.styles.Control.Render(label)
	}

	count := 0
	if m.view != nil {
		count = m.view.Count
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		control("Search", m.state.SearchActive),
		control("Filter", m.state.FiltersActive()),
		control("Sort: "+m.state.SortOrder.Label(), m.state.SortOrder != engine.SortDefault),
	)
	return controls + "  " + m.styles.Status.Render(fmt.Sprintf("%d shown", count))
}

func (m Model) renderFilterBar() string {
	option := func(label string, on bool) string {
		if on {
			return m.styles.BarOn.Render(label)
		}
		return m.styles.Bar.Render(label)
	}

	parts := []string{option("All", m.state.RatingFilter == 0)}
	for rating := models.MinRating; rating <= models.MaxRating; rating++ {
		parts = append(parts, option(stars(rating), m.state.RatingFilter == rating))
	}
	for price := models.MinPrice; price <= models.MaxPrice; price++ {
		parts = append(parts, option(dollars(price), m.state.PriceFilter == price))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderCard(r models.Restaurant, selected bool) string {
	var sb strings.Builder

	title := fmt.Sprintf("%d. %s", r.ID, r.Name)
	sb.WriteString(spread(title, stars(r.Rating), 52))
	sb.WriteString("\n")
	sb.WriteString(spread(r.Cuisine, dollars(r.Price), 52))

	expanded := m.state.IsExpanded(r.ID)
	if expanded {
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Label.Render(r.Address))
		sb.WriteString("\n")
		sb.WriteString(r.City)
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Label.Render("Neighborhood: ") + r.Neighborhood)
		sb.WriteString("\n")
		sb.WriteString(m.styles.Label.Render("Known for: ") + r.KnownFor)
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Description.Render(r.Description))
	}

	style := m.styles.Card
	if expanded {
		style = m.styles.ExpandedCard
	}

	marker := "  "
	if selected {
		marker = m.styles.Cursor.Render("> ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, marker, style.Render(sb.String()))
}

// spread places left and right on one line of the given width
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func stars(n int) string {
	return strings.Repeat("★", n)
}

func dollars(n int) string {
	return strings.Repeat("$", n)
}
