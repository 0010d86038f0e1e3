// Package auth implements the demo login backend and the persisted session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shopfront/internal/domain"
	"shopfront/internal/eventbus"
)

// Demo account accepted by the mock backend
const (
	DemoUsername = "user"
	DemoPassword = "user123"
)

// Service authenticates users and remembers the current session
type Service struct {
	store  *TokenStore
	signer Signer
	bus    eventbus.EventBus
	log    *zap.Logger

	mu      sync.RWMutex
	users   map[string][]byte // username -> bcrypt hash
	session *domain.Session
}

// Option configures a Service
type Option func(*Service) error

// WithSigner replaces the default token signer
func WithSigner(s Signer) Option {
	return func(svc *Service) error {
		svc.signer = s
		return nil
	}
}

// WithUser registers an additional account
func WithUser(username, password string, cost int) Option {
	return func(svc *Service) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", username, err)
		}
		svc.users[username] = hash
		return nil
	}
}

// NewService creates the service with the demo account and restores a
// previously stored session whose token still validates.
func NewService(ctx context.Context, store *TokenStore, bus eventbus.EventBus, logger *zap.Logger, opts ...Option) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:  store,
		signer: NewSigner(""),
		bus:    bus,
		log:    logger.Named("auth"),
		users:  make(map[string][]byte),
	}
	opts = append([]Option{WithUser(DemoUsername, DemoPassword, bcrypt.DefaultCost)}, opts...)
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	session, ok, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		if _, err := s.signer.Validate(session.Token); err != nil {
			s.log.Warn("discarding stored session", zap.Error(err))
			if err := store.Clear(ctx); err != nil {
				return nil, err
			}
		} else {
			s.session = &session
			s.log.Info("session restored", zap.String("user", session.User.Username))
		}
	}
	return s, nil
}

// Login checks credentials, stores the new session and returns its user
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, &NetworkError{Err: err}
	}

	hash, known := s.users[creds.Username]
	if !known || bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)) != nil {
		s.log.Info("login rejected", zap.String("user", creds.Username))
		return domain.User{}, ErrInvalidCredentials
	}

	token, err := s.signer.Sign(creds.Username)
	if err != nil {
		return domain.User{}, err
	}
	user, err := s.signer.Validate(token)
	if err != nil {
		return domain.User{}, err
	}
	session := domain.Session{Token: token, User: user}
	if err := s.store.Save(ctx, session); err != nil {
		if ctx.Err() != nil {
			return domain.User{}, &NetworkError{Err: err}
		}
		return domain.User{}, err
	}

	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()

	s.log.Info("logged in", zap.String("user", user.Username))
	if s.bus != nil {
		s.bus.Publish(eventbus.LoggedInEvent{User: user})
	}
	return user, nil
}

// Logout clears the session. The in-memory session is dropped even when the
// store fails, in which case a *LogoutError (or *NetworkError) is returned.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	var username string
	if s.session != nil {
		username = s.session.User.Username
	}
	s.session = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			return &NetworkError{Err: err}
		}
		return &LogoutError{Err: err}
	}

	s.log.Info("logged out", zap.String("user", username))
	if s.bus != nil {
		s.bus.Publish(eventbus.LoggedOutEvent{Username: username})
	}
	return nil
}

// IsAuthenticated reports whether a session is active
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

// CurrentUser returns the logged-in user
func (s *Service) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.User{}, false
	}
	return s.session.User, true
}

// Token returns the bearer token of the active session
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// ValidateToken checks the active token the way the backend's
// validate-token endpoint does.
func (s *Service) ValidateToken() (domain.User, error) {
	token := s.Token()
	if token == "" {
		return domain.User{}, fmt.Errorf("%w: no token provided", ErrUnauthorized)
	}
	return s.signer.Validate(token)
}
