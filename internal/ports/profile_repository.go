package ports

import (
	"context"

	"github.com/bnema/chatline/internal/domain"
)

type ProfileRepository interface {
	Get(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
	Delete(ctx context.Context) error
}
