package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/ui/input/types"
)

// processAction executes one action produced by the input handler
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.QuitAction:
		m.leave()
		return tea.Quit

	case types.ToggleHelpAction:
		return m.showHelpPager()

	case types.LogoutAction:
		return m.cmdExecutor.ExecuteLogout()

	// Products page
	case types.NavigateAction:
		return m.moveSelection(a.Direction)

	case types.OpenProductAction:
		return m.openSelected()

	// Product page
	case types.BackAction:
		return m.navigate(types.PageProducts, "")

	case types.SliderKeyAction:
		if m.detail == nil {
			return nil
		}
		return m.detail.Update(a.Msg)

	case types.ToggleSliderFocusAction:
		if m.detail == nil {
			return nil
		}
		if m.detail.Focused() {
			m.detail.Blur()
		} else {
			m.detail.Focus()
		}

	case types.ToggleAutoPlayAction:
		return m.toggleAutoPlay()

	case types.SwitchTabAction:
		m.tabs.Switch(a.Delta)

	case types.ChangeModeAction:
		switch a.Mode {
		case types.ModeComment:
			return m.enterCommentMode()
		case types.ModeNormal:
			if m.state.Page == types.PageProduct {
				m.leaveCommentMode()
			}
		}

	// Text modes
	case types.TextKeyAction:
		return m.updateFocusedInput(a.Msg)

	case types.FocusFieldAction:
		if m.state.Page == types.PageLogin {
			return m.focusLoginField(a.Delta)
		}
		return m.form.FocusNext(a.Delta)

	case types.SubmitLoginAction:
		return m.submitLogin()

	case types.AdjustRatingAction:
		m.form.Rating().Adjust(a.Delta)

	case types.SetRatingAction:
		m.form.Rating().SetValue(a.Value)

	case types.SubmitCommentAction:
		return m.submitComment()

	case types.CancelCommentAction:
		m.form.Reset()
	}
	return nil
}

// handleMouse routes mouse input to the page under it
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp {
		return nil
	}
	switch m.state.Page {
	case types.PageProducts:
		return m.handleProductsMouse(msg)
	case types.PageProduct:
		return m.handleProductMouse(msg)
	}
	return nil
}

// showHelpPager opens the full help in ov. Without a program to release the
// terminal from, the help is drawn inline instead.
func (m *Model) showHelpPager() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent()
	if m.program == nil {
		m.showHelp = !m.showHelp
		return nil
	}
	ops := NewHelpOps(m.program)
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}
