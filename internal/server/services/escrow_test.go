package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/server/repositories/ledger"
)

func newEscrowService(t *testing.T, rm *fakeRepoManager) (*EscrowService, *events.Recorder) {
	t.Helper()
	rec := events.NewRecorder()
	return NewEscrowService(newTestDB(t), rm, rec), rec
}

func TestDeposit(t *testing.T) {
	rm := newFakeRepoManager()
	s, rec := newEscrowService(t, rm)

	if err := s.Deposit(context.Background(), "alice", 500); err != nil {
		t.Fatalf("Deposit error: %v", err)
	}
	balance, err := s.Balance(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Balance error: %v", err)
	}
	if balance != 500 {
		t.Fatalf("expected balance 500, got %d", balance)
	}
	if !rec.Has(events.FundsDeposited) {
		t.Fatal("expected FundsDeposited signal")
	}

	for _, amount := range []int64{0, -1} {
		if err := s.Deposit(context.Background(), "alice", amount); !errors.Is(err, common.ErrorInvalidInput) {
			t.Fatalf("amount %d: expected ErrorInvalidInput, got %v", amount, err)
		}
	}
}

func TestWithdraw(t *testing.T) {
	rm := newFakeRepoManager()
	s, rec := newEscrowService(t, rm)
	rm.actors.add(&models.Actor{Address: "owner", IsOwner: true, IsReviewer: true})
	rm.ledger.balances[ledger.PlatformAccount] = 300

	amount, err := s.Withdraw(context.Background(), "owner", "treasury")
	if err != nil {
		t.Fatalf("Withdraw error: %v", err)
	}
	if amount != 300 {
		t.Fatalf("expected withdrawal of 300, got %d", amount)
	}
	if rm.ledger.balances[ledger.PlatformAccount] != 0 {
		t.Fatal("withdrawal is all-or-nothing; platform pool should be empty")
	}
	if rm.ledger.balances["treasury"] != 300 {
		t.Fatalf("expected recipient balance 300, got %d", rm.ledger.balances["treasury"])
	}
	if !rec.Has(events.FundsWithdrawn) {
		t.Fatal("expected FundsWithdrawn signal")
	}

	// Nothing left to withdraw.
	if _, err := s.Withdraw(context.Background(), "owner", "treasury"); !errors.Is(err, common.ErrorNoFunds) {
		t.Fatalf("expected ErrorNoFunds, got %v", err)
	}
}

func TestWithdraw_NotOwner(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newEscrowService(t, rm)
	rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})
	rm.ledger.balances[ledger.PlatformAccount] = 300

	if _, err := s.Withdraw(context.Background(), "r1", "r1"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

func TestPlatformFunds(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newEscrowService(t, rm)
	rm.ledger.balances[ledger.PlatformAccount] = 150

	funds, err := s.PlatformFunds(context.Background())
	if err != nil {
		t.Fatalf("PlatformFunds error: %v", err)
	}
	if funds != 150 {
		t.Fatalf("expected 150, got %d", funds)
	}
}
