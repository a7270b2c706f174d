package application

import "github.com/bnema/chatline/internal/domain"

type SessionStatus struct {
	Authenticated bool
	TokenStored   bool
	Expired       bool
	Policy        domain.RevalidationPolicy
	Profile       *domain.Profile
	Token         *domain.TokenInfo
}
