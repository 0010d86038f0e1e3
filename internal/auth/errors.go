package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when username or password is wrong
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	// ErrUnauthorized is returned for a missing or tampered token
	ErrUnauthorized = errors.New("unauthorized access")
)

// User-facing messages
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgLoginFailed        = "Login failed"
	MsgLogoutFailed       = "Logout failed"
	MsgUnauthorized       = "Unauthorized access"
	MsgNetworkError       = "Network error"
	MsgUnknownError       = "An unknown error occurred"
)

// LogoutError reports a failed logout. The local session is cleared anyway.
type LogoutError struct {
	Err error
}

func (e *LogoutError) Error() string {
	if e.Err == nil {
		return "logout failed: unknown error occurred"
	}
	return fmt.Sprintf("logout failed: %v", e.Err)
}

func (e *LogoutError) Unwrap() error { return e.Err }

// NetworkError reports that the backend could not be reached in time
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network error: connection failed"
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Message maps an auth error to the text shown to the user
func Message(err error) string {
	var (
		netErr    *NetworkError
		logoutErr *LogoutError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.As(err, &netErr):
		return MsgNetworkError
	case errors.As(err, &logoutErr):
		return MsgLogoutFailed
	case errors.Is(err, ErrUnauthorized):
		return MsgUnauthorized
	}
	return MsgUnknownError
}
