package auth

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/pkg/token"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testTokens() *token.Manager {
	return token.NewManager("test-secret-that-is-long-enough-0000", "storefront-test", time.Hour)
}

func newTestService(store storage.Store, delay time.Duration) *Service {
	return NewService(store, testTokens(), testLogger(), delay)
}

func TestLoginAcceptsAnyNonEmptyCredentials(t *testing.T) {
	svc := newTestService(storage.NewMemory(), 0)

	user, err := svc.Login(context.Background(), "shopper@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", user.Email)
	assert.NotEmpty(t, user.Token)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	svc := newTestService(storage.NewMemory(), 0)

	_, err := svc.Login(context.Background(), "", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestLoginCancelledDuringDelayTouchesNoState(t *testing.T) {
	svc := newTestService(storage.NewMemory(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "shopper@example.com", "hunter2")
	assert.ErrorIs(t, err, context.Canceled)

	// The stale result was dropped, not applied.
	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestRegisterCreatesDistinctUsers(t *testing.T) {
	svc := newTestService(storage.NewMemory(), 0)

	first, err := svc.Register(context.Background(), "Ada", "ada@example.com", "pw")
	require.NoError(t, err)

	second, err := svc.Register(context.Background(), "Grace", "grace@example.com", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Contains(t, second.Avatar, "Grace")
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := newTestService(storage.NewMemory(), 0)

	_, err := svc.Register(context.Background(), "", "ada@example.com", "pw")
	assert.ErrorIs(t, err, ErrRegistrationFailed)
}

func TestSessionSurvivesRestart(t *testing.T) {
	mem := storage.NewMemory()

	svc := newTestService(mem, 0)
	user, err := svc.Login(context.Background(), "shopper@example.com", "hunter2")
	require.NoError(t, err)

	restarted := newTestService(mem, 0)
	current, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, user.Email, current.Email)
}

func TestLogoutClearsSession(t *testing.T) {
	mem := storage.NewMemory()

	svc := newTestService(mem, 0)
	_, err := svc.Login(context.Background(), "shopper@example.com", "hunter2")
	require.NoError(t, err)

	svc.Logout()

	_, ok := svc.Current()
	assert.False(t, ok)

	_, err = mem.Get(context.Background(), StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
