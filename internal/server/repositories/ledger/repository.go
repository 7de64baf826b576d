// Package ledger persists fund balances: the platform escrow pool and
// per-actor balances. Balances never go negative; a mutation that would
// underflow is refused at the statement level.
package ledger

import "context"

// PlatformAccount holds fees in escrow plus any undistributed remainder.
const PlatformAccount = "platform"

type Repository interface {
	// Balance returns the account balance, zero for unknown accounts.
	Balance(ctx context.Context, account string) (int64, error)
	// Add applies a signed delta. Returns common.ErrorTransferFailed when
	// the delta would drive the balance negative.
	Add(ctx context.Context, account string, delta int64) error
}
