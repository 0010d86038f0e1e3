package views

import (
	"hash/fnv"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"shopfront/internal/slider"
)

var imagePalette = []string{"24", "30", "54", "58", "89", "94", "23", "60"}

// ImageSlide renders a product picture as a coloured placeholder panel with
// its caption. The colour is stable per source so slides are told apart
// while they move.
func ImageSlide(s slider.Slide, width, height int) string {
	h := fnv.New32a()
	h.Write([]byte(s.Src))
	bg := lipgloss.Color(imagePalette[h.Sum32()%uint32(len(imagePalette))])

	caption := ansi.Truncate(s.Alt, max(1, width-2), "…")
	file := ansi.Truncate(path.Base(s.Src), max(1, width-2), "…")
	if s.Src == "" {
		file = ""
	}

	body := lipgloss.NewStyle().Bold(true).Render(caption)
	if file != "" && height > 2 {
		body += "\n" + lipgloss.NewStyle().Faint(true).Render(file)
	}
	if height > 4 {
		body = strings.Repeat("▚▞", max(1, (width-2)/4)) + "\n\n" + body
	}

	return lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color("230")).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
