package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Welcome      lipgloss.Style
	Back         lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Name         lipgloss.Style
	Price        lipgloss.Style
	Label        lipgloss.Style
	Description  lipgloss.Style
	Author       lipgloss.Style
	Form         lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Button       lipgloss.Style
	StatusError  lipgloss.Style
	StatusInfo   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Main:    lipgloss.NewStyle().Padding(1, 2),
		Welcome: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Back:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		Name:        lipgloss.NewStyle().Bold(true),
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Author:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 3),
		Input:        lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")),
		InputFocused: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("99")),
		Button:       lipgloss.NewStyle().Background(lipgloss.Color("99")).Foreground(lipgloss.Color("230")).Padding(0, 2),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusInfo:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
