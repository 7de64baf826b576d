package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/server/repositories/repomanager"
	"github.com/avolkovx/privseal/internal/vault"
)

// ClauseService owns the append-only clause review log. Clause ids are
// sequential per document, starting at 1, assigned inside the submission
// transaction so concurrent reviews never collide.
type ClauseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	enc         vault.Encryptor
	emitter     events.Emitter
	now         func() time.Time
}

func NewClauseService(db *sql.DB, m repomanager.RepositoryManager, enc vault.Encryptor, emitter events.Emitter) *ClauseService {
	return &ClauseService{
		db:          db,
		repomanager: m,
		enc:         enc,
		emitter:     emitter,
		now:         time.Now,
	}
}

// AddClause records one clause-level review. Reviewer only. Compliance is
// rated on the closed interval 0..10, sensitivity on 1..5; both are stored
// sealed. Returns the assigned clause id.
func (s *ClauseService) AddClause(ctx context.Context, reviewer string, documentID int64, clauseType string, compliance, sensitivity int64, notes string) (int64, error) {
	if err := requireReviewer(ctx, s.repomanager.Actors(s.db), reviewer); err != nil {
		return 0, err
	}
	if _, err := s.repomanager.Documents(s.db).GetByID(ctx, documentID); err != nil {
		return 0, err
	}
	if clauseType == "" {
		return 0, common.ErrorInvalidInput
	}
	if compliance < 0 || compliance > 10 {
		return 0, common.ErrorOutOfRange
	}
	if sensitivity < 1 || sensitivity > 5 {
		return 0, common.ErrorOutOfRange
	}

	sealedCompliance, err := s.enc.Seal(compliance)
	if err != nil {
		return 0, common.ErrorInternal
	}
	sealedSensitivity, err := s.enc.Seal(sensitivity)
	if err != nil {
		return 0, common.ErrorInternal
	}

	var clauseID int64
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		clauseID, err = s.repomanager.Documents(tx).IncrementClauseCount(ctx, documentID)
		if err != nil {
			return err
		}
		clause := &models.Clause{
			DocumentID:        documentID,
			ClauseID:          clauseID,
			ClauseType:        clauseType,
			SealedCompliance:  sealedCompliance,
			SealedSensitivity: sealedSensitivity,
			Notes:             notes,
			Reviewer:          reviewer,
			ReviewTime:        s.now(),
		}
		if err := s.repomanager.Clauses(tx).Create(ctx, clause); err != nil {
			return fmt.Errorf("error creating clause review: %v", err)
		}
		return nil
	}); err != nil {
		return 0, err
	}

	s.emitter.Emit(ctx, events.ClauseReviewed, "document_id", documentID, "clause_id", clauseID, "reviewer", reviewer)
	return clauseID, nil
}

// GetClause returns one clause review record. Clause ids outside
// 1..clauseCount are invalid.
func (s *ClauseService) GetClause(ctx context.Context, documentID, clauseID int64) (*models.Clause, error) {
	doc, err := s.repomanager.Documents(s.db).GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if clauseID <= 0 || clauseID > doc.ClauseCount {
		return nil, common.ErrorInvalidClauseID
	}
	return s.repomanager.Clauses(s.db).Get(ctx, documentID, clauseID)
}

// ListByReviewer returns the reviewer's personal review index.
func (s *ClauseService) ListByReviewer(ctx context.Context, reviewer string) ([]*models.Clause, error) {
	return s.repomanager.Clauses(s.db).ListByReviewer(ctx, reviewer)
}
