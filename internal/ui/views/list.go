package views

import (
	"fmt"
	"strings"

	"filmrec/internal/domain"
)

// ListProps describes the window of the film list to draw
type ListProps struct {
	Films        []domain.Film
	Selected     int
	Offset       int
	Visible      int
	Width        int
	EmptyMessage string
}

// ListRenderer projects the film list into a column of cards. It does no
// filtering; the films it gets are the films it draws.
type ListRenderer struct {
	styles *Styles
	cards  *CardRenderer
}

// NewListRenderer creates a list renderer
func NewListRenderer(styles *Styles, cards *CardRenderer) *ListRenderer {
	return &ListRenderer{
		styles: styles,
		cards:  cards,
	}
}

// Render draws the visible cards separated by a blank line, with scroll
// indicators when cards are hidden above or below the window.
func (r *ListRenderer) Render(props ListProps) string {
	if len(props.Films) == 0 {
		return r.styles.Empty.Render(props.EmptyMessage)
	}

	start := props.Offset
	if start < 0 || start >= len(props.Films) {
		start = 0
	}
	end := len(props.Films)
	if props.Visible > 0 && start+props.Visible < end {
		end = start + props.Visible
	}

	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", start)))
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, r.cards.Render(CardProps{
			Film:     props.Films[i],
			Selected: i == props.Selected,
			Width:    props.Width,
		}))
	}
	lines = append(lines, strings.Join(cards, "\n\n"))

	if hidden := len(props.Films) - end; hidden > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", hidden)))
	}

	return strings.Join(lines, "\n")
}

// CardsThatFit returns how many cards fit in height lines, leaving room for
// both scroll indicators. Always at least one.
func (r *ListRenderer) CardsThatFit(height int) int {
	available := height - 2
	per := r.cards.Height() + 1 // blank line between cards
	n := (available + 1) / per
	if n < 1 {
		n = 1
	}
	return n
}
