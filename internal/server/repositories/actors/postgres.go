package actors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/server/models"
)

// PostgresRepository implements actor storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
	query := `
		INSERT INTO actors (address, username, salt, verifier, is_owner, is_reviewer)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		actor.Address, actor.UserName, actor.Salt, actor.Verifier, actor.IsOwner, actor.IsReviewer)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return actor, nil
}

func (r *PostgresRepository) GetByAddress(ctx context.Context, address string) (*models.Actor, error) {
	query := `
		SELECT address, username, salt, verifier, is_owner, is_reviewer
		FROM actors WHERE address = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, address))
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Actor, error) {
	query := `
		SELECT address, username, salt, verifier, is_owner, is_reviewer
		FROM actors WHERE username = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM actors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) SetReviewer(ctx context.Context, address string, isReviewer bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE actors SET is_reviewer = $2 WHERE address = $1`, address, isReviewer)
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

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Actor, error) {
	actor := &models.Actor{}
	err := row.Scan(&actor.Address, &actor.UserName, &actor.Salt, &actor.Verifier,
		&actor.IsOwner, &actor.IsReviewer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return actor, nil
}
