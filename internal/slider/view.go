package slider

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const arrowWidth = 2

// Styles holds the slider styles
type Styles struct {
	Frame        lipgloss.Style
	Arrow        lipgloss.Style
	ArrowFocused lipgloss.Style
	Dot          lipgloss.Style
	DotActive    lipgloss.Style
	Empty        lipgloss.Style
}

// DefaultStyles returns the default slider styles
func DefaultStyles() Styles {
	return Styles{
		Frame:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241")),
		Arrow:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ArrowFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Underline(true),
		Dot:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Empty:        lipgloss.NewStyle().Faint(true),
	}
}

// PlainRenderer draws the alt text and source of a slide
func PlainRenderer(s Slide, width, height int) string {
	body := s.Alt
	if s.Src != "" {
		body += "\n" + lipgloss.NewStyle().Faint(true).Render(s.Src)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// SetSize sets the outer size of the slider, frame and dots included
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 2*arrowWidth+4)
	m.height = max(height, 4)
}

// SetOrigin tells the slider where its top-left cell is on screen so mouse
// coordinates can be hit-tested.
func (m *Model) SetOrigin(x, y int) {
	m.x = x
	m.y = y
}

// Width returns the outer width
func (m *Model) Width() int { return m.width }

// Height returns the outer height
func (m *Model) Height() int { return m.height }

// Contains reports whether the screen cell lies on the slider frame
func (m *Model) Contains(x, y int) bool {
	return x >= m.x && x < m.x+m.width && y >= m.y && y < m.y+m.height-1
}

func (m *Model) slideWidth() int { return m.width - 2 - 2*arrowWidth }

func (m *Model) contentHeight() int { return m.height - 3 }

func (m *Model) hit(x, y int) affordance {
	if !m.NavigationVisible() {
		return affordanceNone
	}
	rx, ry := x-m.x, y-m.y
	if ry < 1 || ry > m.contentHeight() {
		return affordanceNone
	}
	switch {
	case rx >= 1 && rx < 1+arrowWidth && m.ShowPrevious():
		return affordancePrevious
	case rx >= m.width-1-arrowWidth && rx < m.width-1 && m.ShowNext():
		return affordanceNext
	}
	return affordanceNone
}

// View renders the frame, the visible part of the slide strip, the arrows
// and the position dots.
func (m *Model) View() string {
	sw, ch := m.slideWidth(), m.contentHeight()
	strip := m.strip(sw, ch)

	prev, next := m.arrows()
	mid := ch / 2
	rows := make([]string, ch)
	for i := range rows {
		left, right := strings.Repeat(" ", arrowWidth), strings.Repeat(" ", arrowWidth)
		if i == mid {
			left, right = prev, next
		}
		rows[i] = left + strip[i] + right
	}
	frame := m.Styles.Frame.Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Center, frame, m.dots())
}

func (m *Model) arrows() (string, string) {
	prev, next := strings.Repeat(" ", arrowWidth), strings.Repeat(" ", arrowWidth)
	if !m.NavigationVisible() {
		return prev, next
	}
	if m.ShowPrevious() {
		style := m.Styles.Arrow
		if m.focus == affordancePrevious {
			style = m.Styles.ArrowFocused
		}
		prev = " " + style.Render("‹")
	}
	if m.ShowNext() {
		style := m.Styles.Arrow
		if m.focus == affordanceNext {
			style = m.Styles.ArrowFocused
		}
		next = style.Render("›") + " "
	}
	return prev, next
}

// strip returns ch lines of exactly sw cells. While a transition animates
// the window slides between the source and target slides; otherwise, and
// always right after a wrap jump, it snaps to the current slide.
func (m *Model) strip(sw, ch int) []string {
	t := m.track
	if len(t.slides) == 0 {
		return m.block(m.Styles.Empty.Render("no images"), sw, ch)
	}
	if !m.anim.running || t.suppressed || t.from == t.index {
		return m.slideBlock(t.index, sw, ch)
	}

	pos := float64(t.from) + float64(t.index-t.from)*m.anim.progress()
	left := int(math.Floor(pos))
	offset := int(math.Round((pos - float64(left)) * float64(sw)))
	if offset >= sw {
		left++
		offset = 0
	}
	a := m.slideBlock(left, sw, ch)
	if offset == 0 || left+1 >= len(t.slides) {
		return a
	}
	b := m.slideBlock(left+1, sw, ch)
	out := make([]string, ch)
	for i := range out {
		out[i] = ansi.Cut(a[i]+b[i], offset, offset+sw)
	}
	return out
}

func (m *Model) slideBlock(i, sw, ch int) []string {
	return m.block(m.opts.Renderer(m.track.slides[i], sw, ch), sw, ch)
}

func (m *Model) block(content string, sw, ch int) []string {
	rendered := lipgloss.NewStyle().
		Width(sw).MaxWidth(sw).
		Height(ch).MaxHeight(ch).
		Render(content)
	lines := strings.Split(rendered, "\n")
	for len(lines) < ch {
		lines = append(lines, "")
	}
	lines = lines[:ch]
	for i, l := range lines {
		if w := ansi.StringWidth(l); w < sw {
			lines[i] = l + strings.Repeat(" ", sw-w)
		}
	}
	return lines
}

func (m *Model) dots() string {
	if m.track.count == 0 {
		return ""
	}
	current := m.track.realIndex()
	parts := make([]string, m.track.count)
	for i := range parts {
		if i == current {
			parts[i] = m.Styles.DotActive.Render("●")
		} else {
			parts[i] = m.Styles.Dot.Render("○")
		}
	}
	return strings.Join(parts, " ")
}
