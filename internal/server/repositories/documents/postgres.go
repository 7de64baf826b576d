package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/sealed"
	"github.com/avolkovx/privseal/internal/server/models"
)

const columns = `id, document_hash, public_title, submitter, submission_time,
	sealed_score, sealed_risk, is_reviewed, clause_count, fee_escrowed,
	refund_processed, decryption_completed, storage_key`

// PostgresRepository implements document storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	query := `
		INSERT INTO documents
			(document_hash, public_title, submitter, submission_time,
			 sealed_score, sealed_risk, fee_escrowed, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		doc.DocumentHash, doc.PublicTitle, doc.Submitter, doc.SubmissionTime,
		doc.SealedScore.Bytes(), doc.SealedRisk.Bytes(), doc.FeeEscrowed, doc.StorageKey,
	).Scan(&doc.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	query := `SELECT ` + columns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Document, error) {
	query := `SELECT ` + columns + ` FROM documents WHERE id = $1 FOR UPDATE`
	return scanDocument(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) ListBySubmitter(ctx context.Context, submitter string) ([]*models.Document, error) {
	query := `SELECT ` + columns + ` FROM documents WHERE submitter = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, submitter)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Document
	for rows.Next() {
		doc, err := scanDocumentRows(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) IncrementClauseCount(ctx context.Context, id int64) (int64, error) {
	query := `
		UPDATE documents SET clause_count = clause_count + 1
		WHERE id = $1
		RETURNING clause_count
	`
	var n int64
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) SetAnalyzed(ctx context.Context, id int64, sealedScore, sealedRisk []byte) error {
	query := `
		UPDATE documents
		SET sealed_score = $2, sealed_risk = $3, is_reviewed = TRUE
		WHERE id = $1
	`
	return r.execOne(ctx, query, id, sealedScore, sealedRisk)
}

func (r *PostgresRepository) SetDecryptionCompleted(ctx context.Context, id int64) error {
	return r.execOne(ctx, `UPDATE documents SET decryption_completed = TRUE WHERE id = $1`, id)
}

func (r *PostgresRepository) MarkRefunded(ctx context.Context, id int64) error {
	query := `
		UPDATE documents
		SET refund_processed = TRUE, fee_escrowed = 0
		WHERE id = $1 AND refund_processed = FALSE
	`
	return r.execOne(ctx, query, id)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanFields(s scanner) (*models.Document, error) {
	doc := &models.Document{}
	var score, risk []byte
	err := s.Scan(&doc.ID, &doc.DocumentHash, &doc.PublicTitle, &doc.Submitter,
		&doc.SubmissionTime, &score, &risk, &doc.IsReviewed, &doc.ClauseCount,
		&doc.FeeEscrowed, &doc.RefundProcessed, &doc.DecryptionCompleted, &doc.StorageKey)
	if err != nil {
		return nil, err
	}
	doc.SealedScore = sealed.Wrap(score)
	doc.SealedRisk = sealed.Wrap(risk)
	return doc, nil
}

func scanDocument(row *sql.Row) (*models.Document, error) {
	doc, err := scanFields(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

func scanDocumentRows(rows *sql.Rows) (*models.Document, error) {
	doc, err := scanFields(rows)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}
