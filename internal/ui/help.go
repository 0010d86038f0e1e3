package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Products", [][2]string{
		{"↑/↓, k/j", "Move between rows"},
		{"←/→, h/l", "Move between cards"},
		{"gg/G", "Go to first/last product"},
		{"Enter", "Open product"},
		{"Mouse", "Hover a card to play its images, click to open"},
	}},
	{"Product", [][2]string{
		{"Esc, b", "Back to products"},
		{"s", "Focus/unfocus the image slider"},
		{"←/→, h/l", "Previous/next image (slider focused)"},
		{"Tab", "Focus the slider arrows"},
		{"Enter, Space", "Press the focused arrow"},
		{"p", "Toggle autoplay"},
		{"[ / ]", "Switch tab"},
		{"c", "Write a comment"},
		{"Mouse", "Drag the slider to swipe, click arrows, stars and tabs"},
	}},
	{"Comment", [][2]string{
		{"Tab", "Switch between text and rating"},
		{"←/→, 0-5", "Change rating (rating focused)"},
		{"Ctrl+S", "Submit"},
		{"Esc", "Cancel"},
	}},
	{"Other", [][2]string{
		{"L", "Logout"},
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContent generates the help text with colors
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Shopfront Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, k := range section.keys {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(k[0]), descStyle.Render(k[1])))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
