package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/server/repositories/repomanager"
	"github.com/avolkovx/privseal/internal/vault"
)

// Alert thresholds: a low aggregate score or a high aggregate risk raises a
// compliance alert alongside the completion signal.
const (
	alertScoreBelow  = 5
	alertRiskAtLeast = 4
)

// AnalysisService computes the deterministic document-level aggregate from
// reviewer-supplied ratings and writes it exactly once.
type AnalysisService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	enc         vault.Encryptor
	emitter     events.Emitter
}

func NewAnalysisService(db *sql.DB, m repomanager.RepositoryManager, enc vault.Encryptor, emitter events.Emitter) *AnalysisService {
	return &AnalysisService{
		db:          db,
		repomanager: m,
		enc:         enc,
		emitter:     emitter,
	}
}

// CompleteAnalysis aggregates the ratings, seals the results into the
// document, and flips its reviewed flag. Reviewer only. A second call for
// the same document rejects: overwriting a completed analysis would silently
// change sealed fields that a decryption request may already reference.
//
// The aggregation is fixed for compatibility with existing consumers:
// integer division truncates, and the stored score carries a x10
// obfuscation multiplier (not a unit conversion).
func (s *AnalysisService) CompleteAnalysis(ctx context.Context, reviewer string, documentID, dataSensitivity, gdpr, ccpa, retentionRisk, sharingRisk int64) error {
	if err := requireReviewer(ctx, s.repomanager.Actors(s.db), reviewer); err != nil {
		return err
	}
	if dataSensitivity < 0 || dataSensitivity > 100 {
		return common.ErrorOutOfRange
	}
	if gdpr < 0 || gdpr > 10 || ccpa < 0 || ccpa > 10 {
		return common.ErrorOutOfRange
	}
	if retentionRisk < 1 || retentionRisk > 5 || sharingRisk < 1 || sharingRisk > 5 {
		return common.ErrorOutOfRange
	}

	overallScore := (gdpr + ccpa) / 2
	overallRisk := (retentionRisk + sharingRisk) / 2

	sealedScore, err := s.enc.Seal(overallScore * 10)
	if err != nil {
		return common.ErrorInternal
	}
	sealedRisk, err := s.enc.Seal(overallRisk)
	if err != nil {
		return common.ErrorInternal
	}

	analysis := &models.Analysis{DocumentID: documentID}
	if analysis.SealedDataSensitivity, err = s.enc.Seal(dataSensitivity); err != nil {
		return common.ErrorInternal
	}
	if analysis.SealedGDPR, err = s.enc.Seal(gdpr); err != nil {
		return common.ErrorInternal
	}
	if analysis.SealedCCPA, err = s.enc.Seal(ccpa); err != nil {
		return common.ErrorInternal
	}
	if analysis.SealedRetentionRisk, err = s.enc.Seal(retentionRisk); err != nil {
		return common.ErrorInternal
	}
	if analysis.SealedSharingRisk, err = s.enc.Seal(sharingRisk); err != nil {
		return common.ErrorInternal
	}

	var submitter string
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		doc, err := s.repomanager.Documents(tx).GetByIDForUpdate(ctx, documentID)
		if err != nil {
			return err
		}
		submitter = doc.Submitter

		existing, err := s.repomanager.Analyses(tx).Get(ctx, documentID)
		if err != nil {
			return fmt.Errorf("error reading analysis record: %v", err)
		}
		if existing.AnalysisComplete {
			return common.ErrorAnalysisAlreadyDone
		}

		if err := s.repomanager.Documents(tx).SetAnalyzed(ctx, documentID, sealedScore.Bytes(), sealedRisk.Bytes()); err != nil {
			return err
		}
		return s.repomanager.Analyses(tx).Complete(ctx, analysis)
	}); err != nil {
		return err
	}

	// The submitter and the completing reviewer hold decryption capability
	// on the new sealed aggregate.
	_ = s.enc.Allow(sealedScore, submitter)
	_ = s.enc.Allow(sealedRisk, submitter)
	_ = s.enc.Allow(sealedScore, reviewer)
	_ = s.enc.Allow(sealedRisk, reviewer)

	s.emitter.Emit(ctx, events.AnalysisCompleted, "document_id", documentID, "reviewer", reviewer)
	if overallScore < alertScoreBelow || overallRisk >= alertRiskAtLeast {
		s.emitter.Emit(ctx, events.ComplianceAlert, "document_id", documentID, "overall_risk", overallRisk)
	}
	return nil
}

// GetAnalysisStatus returns the analysis record (sealed fields plus the
// completion flag) for a document.
func (s *AnalysisService) GetAnalysisStatus(ctx context.Context, documentID int64) (*models.Analysis, error) {
	if _, err := s.repomanager.Documents(s.db).GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	return s.repomanager.Analyses(s.db).Get(ctx, documentID)
}
