package analyses

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

func (r *PostgresRepository) Create(ctx context.Context, a *models.Analysis) error {
	query := `
		INSERT INTO analyses
			(document_id, sealed_data_sensitivity, sealed_gdpr, sealed_ccpa,
			 sealed_retention_risk, sealed_sharing_risk, analysis_complete)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
	`
	_, err := r.db.ExecContext(ctx, query, a.DocumentID,
		a.SealedDataSensitivity.Bytes(), a.SealedGDPR.Bytes(), a.SealedCCPA.Bytes(),
		a.SealedRetentionRisk.Bytes(), a.SealedSharingRisk.Bytes())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, documentID int64) (*models.Analysis, error) {
	query := `
		SELECT document_id, sealed_data_sensitivity, sealed_gdpr, sealed_ccpa,
		       sealed_retention_risk, sealed_sharing_risk, analysis_complete
		FROM analyses WHERE document_id = $1
	`
	a := &models.Analysis{}
	var ds, gdpr, ccpa, rr, sr []byte
	err := r.db.QueryRowContext(ctx, query, documentID).Scan(
		&a.DocumentID, &ds, &gdpr, &ccpa, &rr, &sr, &a.AnalysisComplete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	a.SealedDataSensitivity = sealed.Wrap(ds)
	a.SealedGDPR = sealed.Wrap(gdpr)
	a.SealedCCPA = sealed.Wrap(ccpa)
	a.SealedRetentionRisk = sealed.Wrap(rr)
	a.SealedSharingRisk = sealed.Wrap(sr)
	return a, nil
}

func (r *PostgresRepository) Complete(ctx context.Context, a *models.Analysis) error {
	query := `
		UPDATE analyses
		SET sealed_data_sensitivity = $2, sealed_gdpr = $3, sealed_ccpa = $4,
		    sealed_retention_risk = $5, sealed_sharing_risk = $6,
		    analysis_complete = TRUE
		WHERE document_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, a.DocumentID,
		a.SealedDataSensitivity.Bytes(), a.SealedGDPR.Bytes(), a.SealedCCPA.Bytes(),
		a.SealedRetentionRisk.Bytes(), a.SealedSharingRisk.Bytes())
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
