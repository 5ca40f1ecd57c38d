package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-be/internal/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newGate(t *testing.T, ttl time.Duration, logs *bytes.Buffer) (*auth.TokenManager, func(http.Handler) http.Handler) {
	t.Helper()
	tokens, err := auth.NewTokenManager(testSecret, ttl)
	require.NoError(t, err)
	logger := zerolog.New(logs)
	return tokens, func(next http.Handler) http.Handler {
		return Authenticate(tokens, logger, next)
	}
}

// downstream records whether it was reached and what identity it saw.
type downstream struct {
	reached  bool
	identity Identity
	hasID    bool
}

func (d *downstream) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d.reached = true
		d.identity, d.hasID = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestGateNoHeaderPassesThrough(t *testing.T) {
	var logs bytes.Buffer
	_, gate := newGate(t, time.Hour, &logs)
	next := &downstream{}

	rec := httptest.NewRecorder()
	gate(next.handler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts", nil))

	assert.True(t, next.reached)
	assert.False(t, next.hasID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateNonBearerHeaderPassesThrough(t *testing.T) {
	var logs bytes.Buffer
	_, gate := newGate(t, time.Hour, &logs)
	next := &downstream{}

	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	req.Header.Set("Authorization", "garbage")
	rec := httptest.NewRecorder()
	gate(next.handler()).ServeHTTP(rec, req)

	assert.True(t, next.reached)
	assert.False(t, next.hasID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateGarbageTokenLoggedNotSurfaced(t *testing.T) {
	var logs bytes.Buffer
	_, gate := newGate(t, time.Hour, &logs)
	next := &downstream{}

	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	gate(next.handler()).ServeHTTP(rec, req)

	assert.True(t, next.reached)
	assert.False(t, next.hasID)
	// The gate itself never turns a bad token into an error response.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "/workouts")
	assert.Contains(t, logs.String(), "token rejected")
}

func TestGateExpiredTokenLeavesUnauthenticated(t *testing.T) {
	var logs bytes.Buffer
	tokens, _ := newGate(t, -time.Minute, &logs)
	expired, err := tokens.Generate(1, "alice", "a@x.com")
	require.NoError(t, err)

	freshTokens, err := auth.NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)
	logger := zerolog.New(&logs)
	next := &downstream{}

	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	Authenticate(freshTokens, logger, next.handler()).ServeHTTP(rec, req)

	assert.True(t, next.reached)
	assert.False(t, next.hasID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, logs.String())
}

func TestGateValidTokenEstablishesIdentity(t *testing.T) {
	var logs bytes.Buffer
	tokens, gate := newGate(t, time.Hour, &logs)
	token, err := tokens.Generate(42, "alice", "a@x.com")
	require.NoError(t, err)
	next := &downstream{}

	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	gate(next.handler()).ServeHTTP(rec, req)

	assert.True(t, next.reached)
	require.True(t, next.hasID)
	assert.Equal(t, int64(42), next.identity.UserID)
	assert.Equal(t, "alice", next.identity.Username)
	assert.Empty(t, logs.String())
}

func TestGateKeepsExistingIdentity(t *testing.T) {
	var logs bytes.Buffer
	tokens, gate := newGate(t, time.Hour, &logs)
	token, err := tokens.Generate(42, "alice", "a@x.com")
	require.NoError(t, err)
	next := &downstream{}

	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req = req.WithContext(WithIdentity(req.Context(), Identity{UserID: 7, Username: "pre"}))
	rec := httptest.NewRecorder()
	gate(next.handler()).ServeHTTP(rec, req)

	require.True(t, next.hasID)
	assert.Equal(t, int64(7), next.identity.UserID)
}

func TestRequireAuth(t *testing.T) {
	next := &downstream{}
	protected := RequireAuth(next.handler())

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.reached)

	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	req = req.WithContext(WithIdentity(req.Context(), Identity{UserID: 1, Username: "alice"}))
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, next.reached)
}
