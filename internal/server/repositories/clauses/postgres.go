package clauses

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, clause *models.Clause) error {
	query := `
		INSERT INTO clauses
			(document_id, clause_id, clause_type, sealed_compliance,
			 sealed_sensitivity, notes, reviewer, review_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		clause.DocumentID, clause.ClauseID, clause.ClauseType,
		clause.SealedCompliance.Bytes(), clause.SealedSensitivity.Bytes(),
		clause.Notes, clause.Reviewer, clause.ReviewTime)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, documentID, clauseID int64) (*models.Clause, error) {
	query := `
		SELECT document_id, clause_id, clause_type, sealed_compliance,
		       sealed_sensitivity, notes, reviewer, review_time
		FROM clauses WHERE document_id = $1 AND clause_id = $2
	`
	clause := &models.Clause{}
	var compliance, sensitivity []byte
	err := r.db.QueryRowContext(ctx, query, documentID, clauseID).Scan(
		&clause.DocumentID, &clause.ClauseID, &clause.ClauseType,
		&compliance, &sensitivity, &clause.Notes, &clause.Reviewer, &clause.ReviewTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	clause.SealedCompliance = sealed.Wrap(compliance)
	clause.SealedSensitivity = sealed.Wrap(sensitivity)
	return clause, nil
}

func (r *PostgresRepository) ListByReviewer(ctx context.Context, reviewer string) ([]*models.Clause, error) {
	query := `
		SELECT document_id, clause_id, clause_type, sealed_compliance,
		       sealed_sensitivity, notes, reviewer, review_time
		FROM clauses WHERE reviewer = $1
		ORDER BY review_time, document_id, clause_id
	`
	rows, err := r.db.QueryContext(ctx, query, reviewer)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Clause
	for rows.Next() {
		clause := &models.Clause{}
		var compliance, sensitivity []byte
		if err := rows.Scan(&clause.DocumentID, &clause.ClauseID, &clause.ClauseType,
			&compliance, &sensitivity, &clause.Notes, &clause.Reviewer, &clause.ReviewTime); err != nil {
			return nil, err
		}
		clause.SealedCompliance = sealed.Wrap(compliance)
		clause.SealedSensitivity = sealed.Wrap(sensitivity)
		result = append(result, clause)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) CountByDocument(ctx context.Context, documentID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM clauses WHERE document_id = $1`, documentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
