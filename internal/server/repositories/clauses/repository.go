// Package clauses persists the append-only per-document clause review log.
package clauses

import (
	"context"

	"github.com/avolkovx/privseal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, clause *models.Clause) error
	Get(ctx context.Context, documentID, clauseID int64) (*models.Clause, error)
	ListByReviewer(ctx context.Context, reviewer string) ([]*models.Clause, error)
	CountByDocument(ctx context.Context, documentID int64) (int64, error)
}
