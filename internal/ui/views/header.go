package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderHeader draws the title line. The right side greets the signed in
// user; back adds the return link of the product page.
func (r *Renderer) RenderHeader(username string, back bool, width int) string {
	left := r.styles.Title.Render("shopfront")
	if back {
		left += "  " + r.styles.Back.Render("← Back to Products (esc)")
	}

	right := ""
	if username != "" {
		right = r.styles.Welcome.Render("Welcome, "+username) + r.styles.Dim.Render("  L logout")
	}

	avail := width - 2*PadX
	if avail <= 0 {
		avail = 76
	}
	gap := avail - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
