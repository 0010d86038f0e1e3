package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tab indices of the product page
const (
	TabDetails = iota
	TabComments
)

// Tabs is a row of titled tabs with one active
type Tabs struct {
	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style

	titles []string
	active int
	x, y   int
}

// NewTabs creates tabs with the first one active
func NewTabs(titles ...string) *Tabs {
	return &Tabs{
		ActiveStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Underline(true),
		InactiveStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		titles:        titles,
	}
}

// Active returns the active index
func (t *Tabs) Active() int { return t.active }

// Len returns the number of tabs
func (t *Tabs) Len() int { return len(t.titles) }

// Set activates tab i when it exists
func (t *Tabs) Set(i int) {
	if i >= 0 && i < len(t.titles) {
		t.active = i
	}
}

// Switch moves the active tab by delta, wrapping at both ends
func (t *Tabs) Switch(delta int) {
	n := len(t.titles)
	if n == 0 {
		return
	}
	t.active = ((t.active+delta)%n + n) % n
}

// SetOrigin records the screen cell of the first title
func (t *Tabs) SetOrigin(x, y int) {
	t.x = x
	t.y = y
}

const tabGap = "  "

// TabAt returns the tab under the cell or -1
func (t *Tabs) TabAt(x, y int) int {
	if y != t.y {
		return -1
	}
	pos := t.x
	for i, title := range t.titles {
		w := ansi.StringWidth(title) + 2
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + len(tabGap)
	}
	return -1
}

// View renders the titles, the active one highlighted
func (t *Tabs) View() string {
	parts := make([]string, len(t.titles))
	for i, title := range t.titles {
		label := " " + title + " "
		if i == t.active {
			parts[i] = t.ActiveStyle.Render(label)
		} else {
			parts[i] = t.InactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, tabGap)
}
