package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/ui/input/types"
)

// LoginMode edits the username and password fields
type LoginMode struct {
	TextInputMode
}

func NewLoginMode() *LoginMode {
	return &LoginMode{TextInputMode: NewTextInputMode(types.ModeLogin, "login")}
}

func (m *LoginMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := m.handleCommon(msg); ok {
		return actions, true
	}
	switch msg.String() {
	case "down":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "up":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	case "enter":
		return []types.Action{types.SubmitLoginAction{}}, true
	case "esc":
		return nil, true
	}
	return nil, false
}
