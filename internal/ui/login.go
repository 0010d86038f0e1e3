package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopfront/internal/auth"
	"shopfront/internal/domain"
	"shopfront/internal/ui/commands"
	"shopfront/internal/ui/input/types"
)

const (
	loginFailedMessage   = "Login failed. Please check your username and password."
	missingFieldsMessage = "Please enter your username and password."
)

func loginErrorMessage(err error) string {
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return loginFailedMessage
	}
	return auth.Message(err)
}

func (m *Model) submitLogin() tea.Cmd {
	if m.state.LoginPending {
		return nil
	}
	creds := domain.Credentials{
		Username: strings.TrimSpace(m.username.Value()),
		Password: m.password.Value(),
	}
	if creds.Username == "" || creds.Password == "" {
		m.state.LoginError = missingFieldsMessage
		return nil
	}
	return m.cmdExecutor.ExecuteLogin(creds)
}

func (m *Model) focusLoginField(delta int) tea.Cmd {
	m.loginFocus = ((m.loginFocus+delta)%2 + 2) % 2
	if m.loginFocus == 0 {
		m.password.Blur()
		return m.username.Focus()
	}
	m.username.Blur()
	return m.password.Focus()
}

func (m *Model) handleLoginResult(msg commands.LoginResultMsg) tea.Cmd {
	m.state.LoginPending = false
	if msg.Err != nil {
		m.log.Info("login rejected", zap.Error(msg.Err))
		m.state.LoginError = loginErrorMessage(msg.Err)
		return nil
	}

	m.state.LoginError = ""
	m.username.Reset()
	m.password.Reset()
	return tea.Batch(m.cmdExecutor.ExecuteLoadProducts(), m.navigate(types.PageProducts, ""))
}

// handleLogoutResult returns to the login page. The local session is gone
// even when the logout reported an error.
func (m *Model) handleLogoutResult(msg commands.LogoutResultMsg) tea.Cmd {
	cmd := m.navigate(types.PageLogin, "")
	m.state.Reset()
	if msg.Err != nil {
		m.log.Warn("logout failed", zap.Error(msg.Err))
		m.state.LoginError = auth.Message(msg.Err)
	}
	return cmd
}
