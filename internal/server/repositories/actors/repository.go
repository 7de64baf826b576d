// Package actors persists the actor registry: addresses, credentials, and
// the owner/reviewer capability flags.
package actors

import (
	"context"

	"github.com/avolkovx/privseal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, actor *models.Actor) (*models.Actor, error)
	GetByAddress(ctx context.Context, address string) (*models.Actor, error)
	GetByUsername(ctx context.Context, username string) (*models.Actor, error)
	Count(ctx context.Context) (int64, error)
	SetReviewer(ctx context.Context, address string, isReviewer bool) error
}
