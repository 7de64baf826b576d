package ledger

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// The ledger statements are deliberately portable, so the repository is
// exercised against an in-memory database instead of sqlmock.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:ledgertest?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS ledger (
  account TEXT PRIMARY KEY,
  balance INTEGER NOT NULL DEFAULT 0
);
DELETE FROM ledger;
`)
	require.NoError(t, err)
	return db
}

func TestAdd_CreditCreatesAccount(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "0xalice", 100))

	bal, err := repo.Balance(ctx, "0xalice")
	require.NoError(t, err)
	require.Equal(t, int64(100), bal)
}

func TestAdd_CreditAccumulates(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, PlatformAccount, 100))
	require.NoError(t, repo.Add(ctx, PlatformAccount, 250))

	bal, err := repo.Balance(ctx, PlatformAccount)
	require.NoError(t, err)
	require.Equal(t, int64(350), bal)
}

func TestAdd_DebitWithinBalance(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "0xbob", 100))
	require.NoError(t, repo.Add(ctx, "0xbob", -60))

	bal, err := repo.Balance(ctx, "0xbob")
	require.NoError(t, err)
	require.Equal(t, int64(40), bal)
}

func TestAdd_DebitUnderflowRefused(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "0xbob", 50))

	err := repo.Add(ctx, "0xbob", -60)
	require.True(t, errors.Is(err, common.ErrorTransferFailed))

	bal, err := repo.Balance(ctx, "0xbob")
	require.NoError(t, err)
	require.Equal(t, int64(50), bal, "failed debit must not change the balance")
}

func TestAdd_DebitUnknownAccountRefused(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)

	err := repo.Add(context.Background(), "0xghost", -1)
	require.True(t, errors.Is(err, common.ErrorTransferFailed))
}

func TestBalance_UnknownAccountIsZero(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)

	bal, err := repo.Balance(context.Background(), "0xghost")
	require.NoError(t, err)
	require.Zero(t, bal)
}
