package logic

// Navigator tracks the cursor over the film list and the window of cards
// that fits on screen. All positions are card indices.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int // cards that fit on screen
	total          int
}

// NewNavigator creates a navigator with a one-card viewport
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// SelectedIndex returns the cursor position, or 0 for an empty list
func (n *Navigator) SelectedIndex() int {
	return n.selectedIndex
}

// ViewportOffset returns the index of the first visible card
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns how many cards fit on screen
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// Total returns the number of cards being navigated
func (n *Navigator) Total() int {
	return n.total
}

// SetTotal updates the item count, clamping the cursor when the list shrinks
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.total = total
	n.clamp()
}

// SetViewportHeight updates how many cards fit on screen
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.clamp()
}

// Move applies a navigation direction
func (n *Navigator) Move(direction string) {
	switch direction {
	case "up":
		n.selectedIndex--
	case "down":
		n.selectedIndex++
	case "pageup":
		n.selectedIndex -= n.viewportHeight
	case "pagedown":
		n.selectedIndex += n.viewportHeight
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.total - 1
	}
	n.clamp()
}

// Reset moves the cursor back to the first card
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
	n.clamp()
}

func (n *Navigator) clamp() {
	if n.selectedIndex > n.total-1 {
		n.selectedIndex = n.total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}

	// Keep the cursor inside the window
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// Don't leave empty space below the last card
	if maxOffset := n.total - n.viewportHeight; n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
