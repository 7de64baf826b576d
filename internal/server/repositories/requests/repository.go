// Package requests persists decryption requests and their state machine
// transitions. One request per document lifetime; request ids are unique
// across all documents.
package requests

import (
	"context"

	"github.com/avolkovx/privseal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, req *models.DecryptionRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*models.DecryptionRequest, error)
	// GetByRequestIDForUpdate locks the request row for the rest of the
	// transaction.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*models.DecryptionRequest, error)
	GetByDocumentID(ctx context.Context, documentID int64) (*models.DecryptionRequest, error)
	MarkCompleted(ctx context.Context, requestID string, score, riskLevel int64) error
	MarkFailed(ctx context.Context, requestID string) error
}
