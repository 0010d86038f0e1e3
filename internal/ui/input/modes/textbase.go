package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/ui/input/types"
)

// TextInputMode is a base for modes whose unhandled keys go to a text widget
type TextInputMode struct {
	mode types.Mode
	name string
}

func NewTextInputMode(mode types.Mode, name string) TextInputMode {
	return TextInputMode{mode: mode, name: name}
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// handleCommon covers the keys every text mode shares
func (m TextInputMode) handleCommon(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "tab":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "shift+tab":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	}
	return nil, false
}
