package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSecretNotFound   = errors.New("secret not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrMissingToken     = errors.New("missing token")
	ErrEmptyToken       = errors.New("token is required")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrRouteNotFound    = errors.New("route not found")
)

// ServerError is a non-2xx response from the backend. Message is the
// structured "message" field of the error body, empty when absent.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

type RegistrationError struct {
	Reason string
	Err    error
}

func (e *RegistrationError) Error() string {
	return e.Reason
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

type LoginError struct {
	Reason string
	Err    error
}

func (e *LoginError) Error() string {
	return e.Reason
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// ChannelError reports a transport failure of the real-time channel.
type ChannelError struct {
	Op  string
	Err error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel %s: %v", e.Op, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

// FailureReason picks the human-readable reason for a failed exchange: the
// server's structured message, then the transport message, then fallback.
func FailureReason(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		return serverErr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return fallback
}
