package ports

import (
	"context"

	"github.com/bnema/chatline/internal/domain"
)

// IdentityAPI performs the two credential exchanges against the backend.
type IdentityAPI interface {
	Register(ctx context.Context, creds domain.Credentials) ([]byte, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error)
}

// HeaderState is the default outbound authorization shared by HTTP calls of
// one client context.
type HeaderState interface {
	Arm(token string)
	Disarm()
}

type TokenInspector interface {
	Inspect(token string) (domain.TokenInfo, error)
}
