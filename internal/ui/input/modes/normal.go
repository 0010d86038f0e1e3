package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "L":
		return []types.Action{types.LogoutAction{}}, true
	}

	switch ctx.Page() {
	case types.PageProducts:
		return m.handleProductsKey(msg, ctx)
	case types.PageProduct:
		return m.handleProductKey(msg, ctx)
	}
	return nil, false
}

func (m *NormalMode) handleProductsKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "left", "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case "right", "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case "home":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "end", "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "enter":
		if ctx.TotalItems() > 0 {
			return []types.Action{types.OpenProductAction{}}, true
		}
		return nil, false
	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true
	}
	return nil, false
}

func (m *NormalMode) handleProductKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "esc", "backspace", "b":
		return []types.Action{types.BackAction{}}, true
	case "s":
		return []types.Action{types.ToggleSliderFocusAction{}}, true
	case "p":
		return []types.Action{types.ToggleAutoPlayAction{}}, true
	case "]":
		return []types.Action{types.SwitchTabAction{Delta: 1}}, true
	case "[":
		return []types.Action{types.SwitchTabAction{Delta: -1}}, true
	case "c":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeComment}}, true
	case "left", "right", "h", "l", "tab", "enter", " ":
		if ctx.SliderFocused() {
			return []types.Action{types.SliderKeyAction{Msg: msg}}, true
		}
	}
	return nil, false
}
