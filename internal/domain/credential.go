package domain

import "time"

const (
	// TokenKey is the well-known durable storage key holding the bearer token.
	TokenKey = "authToken"
	// ProfileKey names the cached user profile entry cleared on logout.
	ProfileKey = "user"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Profile struct {
	User    User
	SavedAt time.Time
}

// TokenInfo holds claims read from a token without verifying its signature.
type TokenInfo struct {
	Subject   string
	Username  string
	ExpiresAt time.Time
}

func (i TokenInfo) Expired(now time.Time) bool {
	if i.ExpiresAt.IsZero() {
		return false
	}

	return !now.Before(i.ExpiresAt)
}

type RevalidationPolicy string

const (
	RevalidateNever  RevalidationPolicy = "never"
	RevalidateExpiry RevalidationPolicy = "expiry"
)
