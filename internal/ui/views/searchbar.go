package views

import (
	"github.com/charmbracelet/lipgloss"
)

// SearchBarProps describes the search row. Input is the already rendered
// text field; the bar never sees the text itself.
type SearchBarProps struct {
	Label   string
	Button  string
	Input   string
	Focused bool
	Width   int
}

// SearchBarRenderer draws the labelled search field and its submit button
type SearchBarRenderer struct {
	styles *Styles
}

// NewSearchBarRenderer creates a search bar renderer
func NewSearchBarRenderer(styles *Styles) *SearchBarRenderer {
	return &SearchBarRenderer{styles: styles}
}

func (r *SearchBarRenderer) Render(props SearchBarProps) string {
	button := r.styles.Button
	field := r.styles.SearchField
	if props.Focused {
		button = r.styles.ButtonActive
		field = r.styles.SearchActive
	}
	renderedButton := button.Render(props.Button)

	fieldWidth := props.Width - lipgloss.Width(renderedButton) - 2
	if fieldWidth < 10 {
		fieldWidth = 10
	}
	renderedField := field.Width(fieldWidth).Render(props.Input)

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedField, "  ", renderedButton)
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.SearchLabel.Render(props.Label),
		row,
	)
}
