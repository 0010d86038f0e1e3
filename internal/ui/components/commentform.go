package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField int

const (
	fieldText formField = iota
	fieldRating
	fieldCount
)

// CommentSubmission is what a submitted form yields
type CommentSubmission struct {
	Text   string
	Rating float64
}

// CommentForm is a text area plus a star rating. Submitting requires
// non-blank text and a positive rating.
type CommentForm struct {
	Label lipgloss.Style
	Hint  lipgloss.Style

	text   textarea.Model
	rating *Rating
	field  formField
}

// NewCommentForm creates an empty form with the text area focused
func NewCommentForm(step float64) *CommentForm {
	ta := textarea.New()
	ta.Placeholder = "Write your comment..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 1000
	ta.SetHeight(3)
	ta.SetWidth(50)

	return &CommentForm{
		Label:  lipgloss.NewStyle().Bold(true),
		Hint:   lipgloss.NewStyle().Faint(true),
		text:   ta,
		rating: NewRating(step),
	}
}

// Focus activates the form on its current field
func (f *CommentForm) Focus() tea.Cmd {
	return f.focusField(f.field)
}

// Blur deactivates every field
func (f *CommentForm) Blur() {
	f.text.Blur()
	f.rating.Blur()
}

// FocusNext moves between the text area and the stars
func (f *CommentForm) FocusNext(delta int) tea.Cmd {
	next := formField(((int(f.field)+delta)%int(fieldCount) + int(fieldCount)) % int(fieldCount))
	return f.focusField(next)
}

func (f *CommentForm) focusField(field formField) tea.Cmd {
	f.field = field
	if field == fieldRating {
		f.text.Blur()
		f.rating.Focus()
		return nil
	}
	f.rating.Blur()
	return f.text.Focus()
}

// RatingFocused reports whether the stars receive keys
func (f *CommentForm) RatingFocused() bool {
	return f.field == fieldRating && f.rating.IsFocused()
}

// Rating exposes the star input
func (f *CommentForm) Rating() *Rating { return f.rating }

// Text returns the raw text
func (f *CommentForm) Text() string { return f.text.Value() }

// SetWidth resizes the text area
func (f *CommentForm) SetWidth(w int) {
	f.text.SetWidth(max(w, 10))
}

// Update forwards a key to the text area
func (f *CommentForm) Update(msg tea.Msg) tea.Cmd {
	if f.field != fieldText {
		return nil
	}
	var cmd tea.Cmd
	f.text, cmd = f.text.Update(msg)
	return cmd
}

// CanSubmit reports whether the form holds a valid comment
func (f *CommentForm) CanSubmit() bool {
	return strings.TrimSpace(f.text.Value()) != "" && f.rating.Value() > 0
}

// Submit returns the trimmed comment and clears the form. ok is false and
// nothing is cleared when the form is not valid.
func (f *CommentForm) Submit() (sub CommentSubmission, ok bool) {
	if !f.CanSubmit() {
		return CommentSubmission{}, false
	}
	sub = CommentSubmission{
		Text:   strings.TrimSpace(f.text.Value()),
		Rating: f.rating.Value(),
	}
	f.Reset()
	return sub, true
}

// Reset clears both fields and returns focus to the text area
func (f *CommentForm) Reset() {
	f.text.Reset()
	f.rating.Reset()
	f.field = fieldText
}

// View renders the form. The stars line is the second to last line.
func (f *CommentForm) View() string {
	hint := "ctrl+s submit • esc cancel • tab switch field"
	if !f.CanSubmit() {
		hint = "write a comment and pick a rating • esc cancel • tab switch field"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		f.Label.Render("Add a comment"),
		f.text.View(),
		f.Label.Render("Rating: ")+f.rating.View(),
		f.Hint.Render(hint),
	)
}
