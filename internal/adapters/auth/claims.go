package auth

import (
	"fmt"

	"github.com/bnema/chatline/internal/domain"
	"github.com/bnema/chatline/internal/ports"
	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ClaimsInspector reads JWT claims without verifying the signature; the
// client never holds the signing secret.
type ClaimsInspector struct {
	parser *jwt.Parser
}

var _ ports.TokenInspector = (*ClaimsInspector)(nil)

func NewClaimsInspector() *ClaimsInspector {
	return &ClaimsInspector{parser: jwt.NewParser()}
}

func (i *ClaimsInspector) Inspect(token string) (domain.TokenInfo, error) {
	if token == "" {
		return domain.TokenInfo{}, domain.ErrEmptyToken
	}

	var claims tokenClaims
	if _, _, err := i.parser.ParseUnverified(token, &claims); err != nil {
		return domain.TokenInfo{}, fmt.Errorf("parse token claims: %w", err)
	}

	info := domain.TokenInfo{
		Subject:  claims.Subject,
		Username: claims.Username,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, nil
}
