// Package components holds the small interactive widgets of the storefront
// pages that are not carousels.
package components

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MaxStars is the length of the rating scale
const MaxStars = 5

// starWidth is the number of cells one star occupies, glyph plus gap
const starWidth = 2

// StarStyles colours the three star states
type StarStyles struct {
	Full    lipgloss.Style
	Partial lipgloss.Style
	Empty   lipgloss.Style
}

// DefaultStarStyles returns gold, dim gold and grey stars
func DefaultStarStyles() StarStyles {
	return StarStyles{
		Full:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Partial: lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// StarFill returns how much of star i (0-based) is filled for value, in
// percent.
func StarFill(i int, value float64) int {
	switch {
	case float64(i+1) <= value:
		return 100
	case float64(i) < value:
		return int(math.Round((value - float64(i)) * 100))
	default:
		return 0
	}
}

// Stars renders value on the five star scale
func Stars(value float64, styles StarStyles) string {
	var b strings.Builder
	for i := range MaxStars {
		if i > 0 {
			b.WriteString(" ")
		}
		switch fill := StarFill(i, value); {
		case fill == 100:
			b.WriteString(styles.Full.Render("★"))
		case fill > 0:
			b.WriteString(styles.Partial.Render("★"))
		default:
			b.WriteString(styles.Empty.Render("☆"))
		}
	}
	return b.String()
}

// NormalizeStep clamps a rating step to [0.01, 1]. Zero or negative steps
// select whole stars.
func NormalizeStep(step float64) float64 {
	if step <= 0 {
		return 1
	}
	return math.Min(1, math.Max(0.01, step))
}

// Rating is an editable star rating. The mouse previews a value while it
// hovers the stars and commits it on click.
type Rating struct {
	Styles  StarStyles
	Focused lipgloss.Style

	value   float64
	hover   float64
	step    float64
	focused bool
	x, y    int
}

// NewRating creates an empty rating with the given step
func NewRating(step float64) *Rating {
	return &Rating{
		Styles:  DefaultStarStyles(),
		Focused: lipgloss.NewStyle().Underline(true),
		step:    NormalizeStep(step),
	}
}

// Value returns the committed rating
func (r *Rating) Value() float64 { return r.value }

// Step returns the normalized step
func (r *Rating) Step() float64 { return r.step }

// Hovering returns the previewed value, 0 when the mouse is elsewhere
func (r *Rating) Hovering() float64 { return r.hover }

// SetValue commits v, clamped to the scale and rounded to two decimals
func (r *Rating) SetValue(v float64) {
	v = math.Min(MaxStars, math.Max(0, v))
	r.value = math.Round(v*100) / 100
}

// Adjust moves the committed value by delta
func (r *Rating) Adjust(delta float64) {
	r.SetValue(r.snap(r.value + delta))
}

// Reset clears the value and the preview
func (r *Rating) Reset() {
	r.value = 0
	r.hover = 0
}

// Focus gives the stars keyboard input
func (r *Rating) Focus() { r.focused = true }

// Blur removes keyboard input
func (r *Rating) Blur() { r.focused = false }

// IsFocused reports keyboard focus
func (r *Rating) IsFocused() bool { return r.focused }

// SetOrigin records the screen cell of the first star
func (r *Rating) SetOrigin(x, y int) {
	r.x = x
	r.y = y
}

// Contains reports whether the cell lies on the stars
func (r *Rating) Contains(x, y int) bool {
	return y == r.y && x >= r.x && x < r.x+MaxStars*starWidth
}

// valueAt maps a column to a value. The left cell of a star is its half and
// the right cell its whole.
func (r *Rating) valueAt(x int) float64 {
	raw := float64(x-r.x)/starWidth + 0.5
	return math.Min(MaxStars, r.snap(raw))
}

func (r *Rating) snap(v float64) float64 {
	return math.Round(v/r.step) * r.step
}

// Update handles hover and click. It reports whether the value changed.
func (r *Rating) Update(msg tea.MouseMsg) bool {
	if !r.Contains(msg.X, msg.Y) {
		r.hover = 0
		return false
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		r.hover = r.valueAt(msg.X)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		before := r.value
		r.SetValue(r.valueAt(msg.X))
		return r.value != before
	}
	return false
}

// View draws the preview if any, otherwise the committed value
func (r *Rating) View() string {
	shown := r.value
	if r.hover > 0 {
		shown = r.hover
	}
	stars := Stars(shown, r.Styles)
	if r.focused {
		stars = r.Focused.Render(stars)
	}
	return stars
}
