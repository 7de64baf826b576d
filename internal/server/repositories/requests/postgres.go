package requests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/server/models"
)

const columns = `request_id, document_id, requester, request_time, state,
	decrypted_score, decrypted_risk_level`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, req *models.DecryptionRequest) error {
	query := `
		INSERT INTO decryption_requests
			(request_id, document_id, requester, request_time, state)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		req.RequestID, req.DocumentID, req.Requester, req.RequestTime, string(req.State))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByRequestID(ctx context.Context, requestID string) (*models.DecryptionRequest, error) {
	query := `SELECT ` + columns + ` FROM decryption_requests WHERE request_id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, query, requestID))
}

func (r *PostgresRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*models.DecryptionRequest, error) {
	query := `SELECT ` + columns + ` FROM decryption_requests WHERE request_id = $1 FOR UPDATE`
	return scanRequest(r.db.QueryRowContext(ctx, query, requestID))
}

func (r *PostgresRepository) GetByDocumentID(ctx context.Context, documentID int64) (*models.DecryptionRequest, error) {
	query := `SELECT ` + columns + ` FROM decryption_requests WHERE document_id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, query, documentID))
}

func (r *PostgresRepository) MarkCompleted(ctx context.Context, requestID string, score, riskLevel int64) error {
	query := `
		UPDATE decryption_requests
		SET state = $2, decrypted_score = $3, decrypted_risk_level = $4
		WHERE request_id = $1
	`
	return r.execOne(ctx, query, requestID, string(models.RequestCompleted), score, riskLevel)
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, requestID string) error {
	query := `UPDATE decryption_requests SET state = $2 WHERE request_id = $1`
	return r.execOne(ctx, query, requestID, string(models.RequestFailed))
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanRequest(row *sql.Row) (*models.DecryptionRequest, error) {
	req := &models.DecryptionRequest{}
	var state string
	var score, risk sql.NullInt64
	err := row.Scan(&req.RequestID, &req.DocumentID, &req.Requester,
		&req.RequestTime, &state, &score, &risk)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	req.State = models.RequestState(state)
	req.DecryptedScore = score.Int64
	req.DecryptedRiskLevel = risk.Int64
	return req, nil
}
