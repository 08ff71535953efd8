package tui

import "github.com/charmbracelet/lipgloss"

var (
	ink   = lipgloss.Color("#000000")
	paper = lipgloss.Color("#ffffff")
	muted = lipgloss.Color("#8a8a8a")
)

// Styles holds the lipgloss styles of the browser
type Styles struct {
	Title        lipgloss.Style
	Status       lipgloss.Style
	Control      lipgloss.Style
	ControlOn    lipgloss.Style
	Bar          lipgloss.Style
	BarOn        lipgloss.Style
	Card         lipgloss.Style
	ExpandedCard lipgloss.Style
	Cursor       lipgloss.Style
	Label        lipgloss.Style
	Description  lipgloss.Style
	Empty        lipgloss.Style
}

// DefaultStyles returns the black-and-white card styles
func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(ink).
		Padding(0, 1).
		Width(56)

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Width(60),
		Status:       lipgloss.NewStyle().Foreground(muted),
		Control:      lipgloss.NewStyle().Padding(0, 1),
		ControlOn:    lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		Bar:          lipgloss.NewStyle().Padding(0, 1).Background(ink).Foreground(paper),
		BarOn:        lipgloss.NewStyle().Padding(0, 1).Background(paper).Foreground(ink),
		Card:         card,
		ExpandedCard: card.Background(ink).Foreground(paper),
		Cursor:       lipgloss.NewStyle().Bold(true),
		Label:        lipgloss.NewStyle().Bold(true),
		Description:  lipgloss.NewStyle().Italic(true),
		Empty:        lipgloss.NewStyle().Foreground(muted).Align(lipgloss.Center).Width(60).Padding(1, 0),
	}
}
