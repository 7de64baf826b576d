// Package analyses persists the per-document privacy analysis record.
package analyses

import (
	"context"

	"github.com/avolkovx/privseal/internal/server/models"
)

type Repository interface {
	// Create stores the defaults-only record written at submission time.
	Create(ctx context.Context, analysis *models.Analysis) error
	Get(ctx context.Context, documentID int64) (*models.Analysis, error)
	// Complete writes the five sealed analysis fields and flips
	// analysis_complete.
	Complete(ctx context.Context, analysis *models.Analysis) error
}
