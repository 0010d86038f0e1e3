package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type OpenProductAction struct{}

func (a OpenProductAction) Type() string { return "open_product" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Slider actions
type SliderKeyAction struct {
	Msg tea.KeyMsg
}

func (a SliderKeyAction) Type() string { return "slider_key" }

type ToggleSliderFocusAction struct{}

func (a ToggleSliderFocusAction) Type() string { return "toggle_slider_focus" }

type ToggleAutoPlayAction struct{}

func (a ToggleAutoPlayAction) Type() string { return "toggle_autoplay" }

// Tab actions
type SwitchTabAction struct {
	Delta int
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Form actions
type TextKeyAction struct {
	Msg tea.KeyMsg
}

func (a TextKeyAction) Type() string { return "text_key" }

type FocusFieldAction struct {
	Delta int
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type SubmitLoginAction struct{}

func (a SubmitLoginAction) Type() string { return "submit_login" }

type AdjustRatingAction struct {
	Delta float64
}

func (a AdjustRatingAction) Type() string { return "adjust_rating" }

type SetRatingAction struct {
	Value float64
}

func (a SetRatingAction) Type() string { return "set_rating" }

type SubmitCommentAction struct{}

func (a SubmitCommentAction) Type() string { return "submit_comment" }

type CancelCommentAction struct{}

func (a CancelCommentAction) Type() string { return "cancel_comment" }

// Command actions
type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
