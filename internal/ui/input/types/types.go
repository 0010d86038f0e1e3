package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeLogin
	ModeComment
)

func (m Mode) String() string {
	switch m {
	case ModeLogin:
		return "login"
	case ModeComment:
		return "comment"
	default:
		return "normal"
	}
}

// Page identifies the screen the input is read on
type Page int

const (
	PageLogin Page = iota
	PageProducts
	PageProduct
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Page() Page
	CurrentIndex() int
	TotalItems() int
	ActiveTab() string
	SliderFocused() bool
	RatingFocused() bool
	CanSubmitComment() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
