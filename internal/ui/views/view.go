package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopfront/internal/ui/components"
)

// ViewState contains everything needed to draw one frame
type ViewState struct {
	Width       int
	Height      int
	Username    string
	Back        bool
	Body        string
	Status      string
	StatusError bool
	HelpLine    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	stars  components.StarStyles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
		stars:  components.DefaultStarStyles(),
	}
}

// Styles exposes the renderer styles
func (r *Renderer) Styles() *Styles { return r.styles }

// Render produces the complete view: header, page body, status and the
// help line pinned to the bottom.
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}
	content.WriteString(r.RenderHeader(state.Username, state.Back, state.Width))
	content.WriteString("\n\n")
	content.WriteString(state.Body)

	var footer []string
	if state.Status != "" {
		style := r.styles.StatusInfo
		if state.StatusError {
			style = r.styles.StatusError
		}
		footer = append(footer, style.Render(state.Status))
	}
	helpText := state.HelpLine
	if helpText == "" {
		helpText = "Press ? for help"
	}
	footer = append(footer, r.styles.Help.Render(helpText))

	// Account for container padding (1 top, 1 bottom from Padding(1, 2))
	availableLines := state.Height - 2*PadY
	if availableLines <= 0 {
		availableLines = 22
	}
	currentLines := strings.Count(content.String(), "\n") + 1
	if pad := availableLines - currentLines - len(footer); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(strings.Join(footer, "\n"))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// LoginState is what the login form shows
type LoginState struct {
	Username string // rendered text input
	Password string // rendered text input
	Focus    int    // 0 username, 1 password
	Error    string
	Pending  bool
}

// RenderLogin draws the sign in form centred in the body area
func (r *Renderer) RenderLogin(state LoginState, width, height int) string {
	field := func(label, input string, focused bool) string {
		style := r.styles.Input
		if focused {
			style = r.styles.InputFocused
		}
		return r.styles.Label.Render(label) + "\n" + style.Width(30).Render(input)
	}

	button := r.styles.Button.Render("Login")
	if state.Pending {
		button = r.styles.Dim.Render("Signing in...")
	}

	parts := []string{
		r.styles.Title.Render("Login"),
		"",
		field("Username", state.Username, state.Focus == 0),
		field("Password", state.Password, state.Focus == 1),
		"",
		button,
	}
	if state.Error != "" {
		parts = append(parts, "", r.styles.StatusError.Render(state.Error))
	}
	parts = append(parts, "", r.styles.Dim.Render("Demo account: user / user123"))

	form := r.styles.Form.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	w := max(lipgloss.Width(form), width-2*PadX)
	h := max(lipgloss.Height(form), height-2*PadY-HeaderHeight-2)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, form)
}
