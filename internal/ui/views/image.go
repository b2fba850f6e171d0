package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Thumbnail size in cells, borders excluded
const (
	ThumbnailWidth  = 10
	ThumbnailHeight = 3
)

// ImageResolver turns a film's image reference into something printable.
// Implementations must return a block of exactly ThumbnailHeight lines
// ThumbnailWidth cells wide.
type ImageResolver interface {
	Resolve(ref string) string
}

// ImageResolverFunc adapts a function to ImageResolver
type ImageResolverFunc func(ref string) string

func (f ImageResolverFunc) Resolve(ref string) string { return f(ref) }

// PlaceholderResolver draws the reference name centred in an empty frame
type PlaceholderResolver struct{}

func (PlaceholderResolver) Resolve(ref string) string {
	label := ref
	if label == "" {
		label = "?"
	}
	// Cut by cells so wide runes never overflow the frame
	label = ansi.Truncate(label, ThumbnailWidth, "")
	return lipgloss.Place(ThumbnailWidth, ThumbnailHeight, lipgloss.Center, lipgloss.Center, label)
}
