// internal/domain/auth/service.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/pkg/token"
)

// StorageKey is the durable-storage key holding the session user.
const StorageKey = "ecommerce_user"

// ErrInvalidCredentials is returned when the stubbed credential check fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrRegistrationFailed is returned when the stubbed registration check fails.
var ErrRegistrationFailed = errors.New("registration failed")

// User is the mocked session identity. No credential is ever stored or
// verified; the token only tags the browsing session.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Token  string `json:"token,omitempty"`
}

// Service simulates the authentication flows. Calls block for a fixed
// artificial delay standing in for network latency; cancelling the context
// during the delay aborts the call before any state is touched, so a stale
// result can never be applied after the caller has moved on.
type Service struct {
	mu      sync.Mutex
	storage storage.Store
	tokens  *token.Manager
	log     *logrus.Logger
	delay   time.Duration

	current *User
}

// NewService creates the auth service and restores a persisted session user.
func NewService(store storage.Store, tokens *token.Manager, log *logrus.Logger, delay time.Duration) *Service {
	s := &Service{
		storage: store,
		tokens:  tokens,
		log:     log,
		delay:   delay,
	}
	s.load()
	return s
}

// Login runs the stubbed credential check: any non-empty email and password
// pair is accepted.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user := &User{
		ID:     "1",
		Name:   "John Doe",
		Email:  email,
		Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
	}
	return s.establish(user)
}

// Register runs the stubbed registration: any non-empty name, email and
// password succeed.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	if name == "" || email == "" || password == "" {
		return nil, ErrRegistrationFailed
	}

	user := &User{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Avatar: fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", name),
	}
	return s.establish(user)
}

// Logout clears the session user in memory and in durable storage.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.storage.Delete(context.Background(), StorageKey); err != nil {
		s.log.WithError(err).Warn("Failed to clear persisted session user")
	}
}

// Current returns the active session user, if any.
func (s *Service) Current() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}
	user := *s.current
	return &user, true
}

func (s *Service) simulateLatency(ctx context.Context) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) establish(user *User) (*User, error) {
	signed, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	user.Token = signed

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = user
	data, err := json.Marshal(user)
	if err == nil {
		err = s.storage.Set(context.Background(), StorageKey, data)
	}
	if err != nil {
		s.log.WithError(err).Warn("Failed to persist session user, continuing in memory")
	}

	out := *user
	return &out, nil
}

func (s *Service) load() {
	data, err := s.storage.Get(context.Background(), StorageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.WithError(err).Warn("Failed to restore session user")
		}
		return
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.WithError(err).Warn("Corrupt persisted session user, ignoring")
		return
	}
	s.current = &user
}
