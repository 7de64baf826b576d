// Package refreshtokens persists opaque refresh tokens with expiry.
package refreshtokens

import (
	"context"
	"time"

	"github.com/avolkovx/privseal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, actorAddress string, token string, validity time.Duration) error
	Get(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
