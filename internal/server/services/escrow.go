package services

import (
	"context"
	"database/sql"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/repositories/ledger"
	"github.com/avolkovx/privseal/internal/server/repositories/repomanager"
)

// EscrowService owns the funds ledger: actor deposits, the platform escrow
// pool, and the owner's all-or-nothing withdrawal. After every mutation the
// platform balance equals the sum of escrowed fees of non-refunded documents
// plus any undistributed remainder.
type EscrowService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	emitter     events.Emitter
}

func NewEscrowService(db *sql.DB, m repomanager.RepositoryManager, emitter events.Emitter) *EscrowService {
	return &EscrowService{
		db:          db,
		repomanager: m,
		emitter:     emitter,
	}
}

// Deposit credits the caller's balance. Submission fees are debited from
// this balance.
func (s *EscrowService) Deposit(ctx context.Context, actor string, amount int64) error {
	if amount <= 0 {
		return common.ErrorInvalidInput
	}
	if err := s.repomanager.Ledger(s.db).Add(ctx, actor, amount); err != nil {
		return err
	}
	s.emitter.Emit(ctx, events.FundsDeposited, "actor", actor, "amount", amount)
	return nil
}

// Balance returns the actor's current balance.
func (s *EscrowService) Balance(ctx context.Context, actor string) (int64, error) {
	return s.repomanager.Ledger(s.db).Balance(ctx, actor)
}

// PlatformFunds returns the platform pool balance.
func (s *EscrowService) PlatformFunds(ctx context.Context) (int64, error) {
	return s.repomanager.Ledger(s.db).Balance(ctx, ledger.PlatformAccount)
}

// Withdraw moves the entire platform balance to the recipient. Owner only;
// deliberately all-or-nothing, not per-document.
func (s *EscrowService) Withdraw(ctx context.Context, caller, recipient string) (int64, error) {
	if err := requireOwner(ctx, s.repomanager.Actors(s.db), caller); err != nil {
		return 0, err
	}

	var amount int64
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ledgerRepo := s.repomanager.Ledger(tx)

		balance, err := ledgerRepo.Balance(ctx, ledger.PlatformAccount)
		if err != nil {
			return err
		}
		if balance == 0 {
			return common.ErrorNoFunds
		}
		amount = balance

		if err := ledgerRepo.Add(ctx, ledger.PlatformAccount, -balance); err != nil {
			return err
		}
		return ledgerRepo.Add(ctx, recipient, balance)
	}); err != nil {
		return 0, err
	}

	s.emitter.Emit(ctx, events.FundsWithdrawn, "recipient", recipient, "amount", amount)
	return amount, nil
}
