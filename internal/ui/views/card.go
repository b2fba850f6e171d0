package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"filmrec/internal/domain"
)

// CardProps is everything a film card needs to render
type CardProps struct {
	Film     domain.Film
	Selected bool
	Width    int
}

// CardRenderer renders a single film card. Cards hold no state.
type CardRenderer struct {
	styles   *Styles
	resolver ImageResolver
}

// NewCardRenderer creates a card renderer; a nil resolver draws placeholders
func NewCardRenderer(styles *Styles, resolver ImageResolver) *CardRenderer {
	if resolver == nil {
		resolver = PlaceholderResolver{}
	}
	return &CardRenderer{
		styles:   styles,
		resolver: resolver,
	}
}

// Render draws the image on the left with title, genre and rating beside it
func (r *CardRenderer) Render(props CardProps) string {
	image := r.styles.Image.
		Width(ThumbnailWidth).
		Height(ThumbnailHeight).
		Render(r.resolver.Resolve(props.Film.ImageRef))

	details := lipgloss.JoinVertical(lipgloss.Left,
		r.styles.CardTitle.Render(props.Film.Title),
		r.styles.CardBody.Render("Genre: "+props.Film.Genre),
		r.styles.CardBody.Render("Rating: "+FormatRating(props.Film.Rating)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Center, image, "  ", details)

	style := r.styles.Card
	if props.Selected {
		style = r.styles.CardSelected
	}
	if props.Width > 0 {
		// Width excludes the border in lipgloss
		style = style.Width(max(props.Width-2, lipgloss.Width(body)+2))
	}
	return style.Render(body)
}

// Height returns the number of lines every card occupies
func (r *CardRenderer) Height() int {
	return lipgloss.Height(r.Render(CardProps{Film: domain.Film{Title: "x"}}))
}

// FormatRating prints a rating with at least one decimal, so 4 becomes "4.0"
func FormatRating(rating float64) string {
	s := strconv.FormatFloat(rating, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEN") {
		s += ".0"
	}
	return s
}

// DetailText renders a film as plain text for the pager
func DetailText(film domain.Film) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", film.Title)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", lipgloss.Width(film.Title)))
	fmt.Fprintf(&b, "Genre:  %s\n", film.Genre)
	fmt.Fprintf(&b, "Rating: %s\n", FormatRating(film.Rating))
	fmt.Fprintf(&b, "Image:  %s\n", film.ImageRef)
	return b.String()
}
