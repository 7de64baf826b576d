// Package documents persists submitted documents and their lifecycle flags.
package documents

import (
	"context"

	"github.com/avolkovx/privseal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	GetByID(ctx context.Context, id int64) (*models.Document, error)
	// GetByIDForUpdate locks the document row for the rest of the
	// transaction, serializing state transitions per document.
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Document, error)
	Count(ctx context.Context) (int64, error)
	ListBySubmitter(ctx context.Context, submitter string) ([]*models.Document, error)
	// IncrementClauseCount bumps the counter and returns the new value,
	// which doubles as the sequential clause id.
	IncrementClauseCount(ctx context.Context, id int64) (int64, error)
	SetAnalyzed(ctx context.Context, id int64, sealedScore, sealedRisk []byte) error
	SetDecryptionCompleted(ctx context.Context, id int64) error
	// MarkRefunded flips refund_processed and zeroes the escrow accounting.
	MarkRefunded(ctx context.Context, id int64) error
}
