package logic

// Navigator moves the selection over a grid of product cards and keeps the
// selected row inside the visible window.
type Navigator struct {
	selectedIndex  int
	viewportOffset int // first visible row
	viewportRows   int
	perRow         int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{perRow: 1, viewportRows: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportRows, perRow, total int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportRows = max(1, viewportRows)
	n.perRow = max(1, perRow)
	n.total = total
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the first visible row
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Move applies a direction ("up", "down", "left", "right", "home", "end")
// and returns the new selection and viewport offset.
func (n *Navigator) Move(direction string) (int, int) {
	if n.total == 0 {
		n.selectedIndex, n.viewportOffset = 0, 0
		return 0, 0
	}
	switch direction {
	case "up":
		if n.selectedIndex-n.perRow >= 0 {
			n.selectedIndex -= n.perRow
		}
	case "down":
		if n.selectedIndex+n.perRow < n.total {
			n.selectedIndex += n.perRow
		} else if n.rowOf(n.selectedIndex) < n.rowOf(n.total-1) {
			// partial last row
			n.selectedIndex = n.total - 1
		}
	case "left":
		if n.selectedIndex > 0 {
			n.selectedIndex--
		}
	case "right":
		if n.selectedIndex < n.total-1 {
			n.selectedIndex++
		}
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.total - 1
	}
	return n.SetSelectedIndex(n.selectedIndex)
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = min(max(index, 0), max(n.total-1, 0))
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

func (n *Navigator) rowOf(i int) int { return i / n.perRow }

// ensureSelectedVisible adjusts the viewport to keep the selected row visible
func (n *Navigator) ensureSelectedVisible() {
	row := n.rowOf(n.selectedIndex)
	if row < n.viewportOffset {
		n.viewportOffset = row
	}
	if row >= n.viewportOffset+n.viewportRows {
		n.viewportOffset = row - n.viewportRows + 1
	}

	// don't leave empty rows at the bottom when the window could be filled
	totalRows := 0
	if n.total > 0 {
		totalRows = n.rowOf(n.total-1) + 1
	}
	maxOffset := max(totalRows-n.viewportRows, 0)
	n.viewportOffset = min(max(n.viewportOffset, 0), maxOffset)
}
