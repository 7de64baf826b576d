package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Balance(ctx context.Context, account string) (int64, error) {
	var balance int64
	err := r.db.QueryRowContext(ctx,
		`SELECT balance FROM ledger WHERE account = $1`, account).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return balance, nil
}

func (r *PostgresRepository) Add(ctx context.Context, account string, delta int64) error {
	// Credits may create the row; debits require an existing row with
	// sufficient balance. Both forms are single atomic statements.
	var query string
	if delta >= 0 {
		query = `
			INSERT INTO ledger (account, balance) VALUES ($1, $2)
			ON CONFLICT (account)
			DO UPDATE SET balance = ledger.balance + excluded.balance
		`
	} else {
		query = `
			UPDATE ledger SET balance = balance + $2
			WHERE account = $1 AND balance + $2 >= 0
		`
	}

	res, err := r.db.ExecContext(ctx, query, account, delta)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorTransferFailed
	}
	return nil
}
