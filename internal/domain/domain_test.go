package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenInfoExpired(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	assert.False(t, TokenInfo{}.Expired(now))
	assert.False(t, TokenInfo{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, TokenInfo{ExpiresAt: now}.Expired(now))
	assert.True(t, TokenInfo{ExpiresAt: now.Add(-time.Minute)}.Expired(now))
}

func TestFailureReasonPrecedence(t *testing.T) {
	assert.Equal(t, "Invalid credentials", FailureReason(&ServerError{StatusCode: 401, Message: "Invalid credentials"}, "login failed"))
	assert.Equal(t, "request failed with status code 401", FailureReason(&ServerError{StatusCode: 401}, "login failed"))
	assert.Equal(t, "dial tcp: connection refused", FailureReason(errors.New("dial tcp: connection refused"), "login failed"))
	assert.Equal(t, "login failed", FailureReason(errors.New(""), "login failed"))
	assert.Equal(t, "login failed", FailureReason(nil, "login failed"))

	wrapped := fmt.Errorf("post login: %w", &ServerError{StatusCode: 409, Message: "Username already exists"})
	assert.Equal(t, "Username already exists", FailureReason(wrapped, "registration failed"))
}

func TestCredentialErrorsUnwrap(t *testing.T) {
	cause := &ServerError{StatusCode: 500}

	var regErr error = &RegistrationError{Reason: "boom", Err: cause}
	assert.Equal(t, "boom", regErr.Error())
	assert.True(t, errors.Is(regErr, cause))

	var loginErr error = &LoginError{Reason: ErrMissingToken.Error(), Err: ErrMissingToken}
	assert.Equal(t, "missing token", loginErr.Error())
	assert.True(t, errors.Is(loginErr, ErrMissingToken))
}

func TestChannelErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := &ChannelError{Op: "read", Err: cause}

	assert.Equal(t, "channel read: connection reset", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestChannelStateString(t *testing.T) {
	assert.Equal(t, "idle", ChannelIdle.String())
	assert.Equal(t, "connecting", ChannelConnecting.String())
	assert.Equal(t, "open", ChannelOpen.String())
	assert.Equal(t, "closed", ChannelClosed.String())
	assert.Equal(t, "unknown", ChannelState(42).String())
}

func TestDefaultRoutes(t *testing.T) {
	routes := DefaultRoutes()
	require.Len(t, routes, 4)

	assert.Equal(t, Route{Path: "/", RedirectTo: "/chat"}, routes[0])
	assert.True(t, routes[2].RequiresAuth)
	assert.Equal(t, "/chat", routes[2].Path)
	assert.False(t, routes[1].RequiresAuth)
	assert.False(t, routes[3].RequiresAuth)
	assert.True(t, Decision{Route: routes[1]}.Admitted())
	assert.False(t, Decision{Route: routes[2], RedirectTo: RouteLogin}.Admitted())
}
