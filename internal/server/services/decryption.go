package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/sealed"
	"github.com/avolkovx/privseal/internal/server/config"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/server/repositories/ledger"
	"github.com/avolkovx/privseal/internal/server/repositories/repomanager"
	"github.com/avolkovx/privseal/internal/vault"
)

// DecryptionService owns the two-phase request/callback state machine and
// the refund path. One request per document lifetime; the timeout is checked
// lazily at callback and refund-claim time, never by a background timer.
type DecryptionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	enc         vault.Encryptor
	gateway     vault.Gateway
	emitter     events.Emitter
	timeout     time.Duration
	now         func() time.Time
}

func NewDecryptionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, enc vault.Encryptor, gateway vault.Gateway, emitter events.Emitter) *DecryptionService {
	return &DecryptionService{
		db:          db,
		repomanager: m,
		enc:         enc,
		gateway:     gateway,
		emitter:     emitter,
		timeout:     cfg.DecryptionTimeout,
		now:         time.Now,
	}
}

// RequestDecryption asks the gateway to begin decrypting the document's
// sealed score and risk. Submitter or reviewer only. The call returns as
// soon as the request is registered; the result arrives, if at all, through
// HandleCallback.
func (s *DecryptionService) RequestDecryption(ctx context.Context, caller string, documentID int64) (string, error) {
	doc, err := s.repomanager.Documents(s.db).GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	if err := requireSubmitterOrReviewer(ctx, s.repomanager.Actors(s.db), caller, doc.Submitter); err != nil {
		return "", err
	}
	if !doc.IsReviewed {
		return "", common.ErrorNotYetReviewed
	}
	if doc.RefundProcessed {
		return "", common.ErrorAlreadyRefunded
	}
	if _, err := s.repomanager.Requests(s.db).GetByDocumentID(ctx, documentID); err == nil {
		return "", common.ErrorAlreadyRequested
	} else if !errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInternal
	}

	handles := []sealed.Handle{doc.SealedScore.Handle(), doc.SealedRisk.Handle()}
	requestID, err := s.gateway.RequestDecryption(ctx, handles)
	if err != nil {
		return "", common.ErrorInternal
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		doc, err := s.repomanager.Documents(tx).GetByIDForUpdate(ctx, documentID)
		if err != nil {
			return err
		}
		if doc.RefundProcessed {
			return common.ErrorAlreadyRefunded
		}
		if _, err := s.repomanager.Requests(tx).GetByDocumentID(ctx, documentID); err == nil {
			return common.ErrorAlreadyRequested
		} else if !errors.Is(err, common.ErrorNotFound) {
			return common.ErrorInternal
		}
		return s.repomanager.Requests(tx).Create(ctx, &models.DecryptionRequest{
			RequestID:   requestID,
			DocumentID:  documentID,
			Requester:   caller,
			RequestTime: s.now(),
			State:       models.RequestPending,
		})
	}); err != nil {
		return "", err
	}

	s.emitter.Emit(ctx, events.DecryptionRequested, "document_id", documentID, "request_id", requestID, "requester", caller)
	return requestID, nil
}

// HandleCallback is the gateway's entry point. The proof is verified before
// the payload is trusted. Duplicate delivery after completion rejects with
// ErrorAlreadyCompleted; a callback that arrives past the timeout window, or
// after a refund was paid out, is absorbed as a success while the request is
// internally marked Failed. Rejecting late callbacks would trip the
// gateway's retry handling against a delivery that is merely too late, not
// malformed.
func (s *DecryptionService) HandleCallback(ctx context.Context, requestID string, payload, proof []byte) error {
	if err := s.enc.CheckSignature(requestID, payload, proof); err != nil {
		return err
	}

	var (
		documentID    int64
		absorbReason  string
		decryptedData vault.Cleartext
	)

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		req, err := s.repomanager.Requests(tx).GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNoRequestFound
			}
			return common.ErrorInternal
		}
		documentID = req.DocumentID

		if req.State == models.RequestCompleted {
			return common.ErrorAlreadyCompleted
		}

		doc, err := s.repomanager.Documents(tx).GetByIDForUpdate(ctx, req.DocumentID)
		if err != nil {
			return err
		}

		if doc.RefundProcessed {
			absorbReason = "already refunded"
		} else if s.now().After(req.RequestTime.Add(s.timeout)) {
			absorbReason = "timeout exceeded"
		}
		if absorbReason != "" {
			if req.State == models.RequestPending {
				return s.repomanager.Requests(tx).MarkFailed(ctx, requestID)
			}
			return nil
		}

		decryptedData, err = vault.DecodeCleartext(payload)
		if err != nil {
			return common.ErrorInvalidInput
		}

		if err := s.repomanager.Requests(tx).MarkCompleted(ctx, requestID, decryptedData.Score, decryptedData.RiskLevel); err != nil {
			return err
		}
		return s.repomanager.Documents(tx).SetDecryptionCompleted(ctx, req.DocumentID)
	}); err != nil {
		return err
	}

	if absorbReason != "" {
		s.emitter.Emit(ctx, events.DecryptionFailed, "document_id", documentID, "request_id", requestID, "reason", absorbReason)
		return nil
	}

	s.emitter.Emit(ctx, events.DecryptionCompleted,
		"document_id", documentID, "request_id", requestID,
		"score", decryptedData.Score, "risk_level", decryptedData.RiskLevel)
	return nil
}

// ClaimRefund returns the escrowed fee to the submitter when the decryption
// request timed out or failed. Submitter only; at most one refund per
// document. The Completed state is re-checked under the row lock, so a
// callback racing this claim cannot be refunded away.
func (s *DecryptionService) ClaimRefund(ctx context.Context, caller string, documentID int64) error {
	doc, err := s.repomanager.Documents(s.db).GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if caller != doc.Submitter {
		return common.ErrorUnauthorized
	}

	var (
		amount   int64
		timedOut bool
	)

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		doc, err := s.repomanager.Documents(tx).GetByIDForUpdate(ctx, documentID)
		if err != nil {
			return err
		}
		if doc.RefundProcessed {
			return common.ErrorAlreadyRefunded
		}

		req, err := s.repomanager.Requests(tx).GetByDocumentID(ctx, documentID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNoRequestFound
			}
			return common.ErrorInternal
		}
		if req.State == models.RequestCompleted {
			return common.ErrorAlreadyCompleted
		}

		timedOut = s.now().After(req.RequestTime.Add(s.timeout))
		failed := !doc.DecryptionCompleted && req.State != models.RequestCompleted
		if !timedOut && !failed {
			return common.ErrorRefundNotDue
		}

		amount = doc.FeeEscrowed
		if err := s.repomanager.Documents(tx).MarkRefunded(ctx, documentID); err != nil {
			return err
		}

		ledgerRepo := s.repomanager.Ledger(tx)
		if err := ledgerRepo.Add(ctx, ledger.PlatformAccount, -amount); err != nil {
			return err
		}
		if err := ledgerRepo.Add(ctx, doc.Submitter, amount); err != nil {
			return err
		}

		// A refunded pending request is abandoned.
		if req.State == models.RequestPending {
			return s.repomanager.Requests(tx).MarkFailed(ctx, req.RequestID)
		}
		return nil
	}); err != nil {
		return err
	}

	s.emitter.Emit(ctx, events.RefundProcessed, "document_id", documentID, "submitter", caller, "amount", amount)
	if timedOut {
		s.emitter.Emit(ctx, events.TimeoutRefundClaimed, "document_id", documentID, "submitter", caller, "amount", amount)
	}
	return nil
}

// CanClaimRefund mirrors ClaimRefund's eligibility decision without mutating
// anything, for external polling.
func (s *DecryptionService) CanClaimRefund(ctx context.Context, documentID int64) (bool, error) {
	doc, err := s.repomanager.Documents(s.db).GetByID(ctx, documentID)
	if err != nil {
		return false, err
	}
	if doc.RefundProcessed {
		return false, nil
	}

	req, err := s.repomanager.Requests(s.db).GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, common.ErrorInternal
	}
	if req.State == models.RequestCompleted {
		return false, nil
	}

	timedOut := s.now().After(req.RequestTime.Add(s.timeout))
	failed := !doc.DecryptionCompleted && req.State != models.RequestCompleted
	return timedOut || failed, nil
}
