package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/server/migrations"
	"github.com/avolkovx/privseal/internal/server/repositories/actors"
	"github.com/avolkovx/privseal/internal/server/repositories/analyses"
	"github.com/avolkovx/privseal/internal/server/repositories/clauses"
	"github.com/avolkovx/privseal/internal/server/repositories/documents"
	"github.com/avolkovx/privseal/internal/server/repositories/ledger"
	"github.com/avolkovx/privseal/internal/server/repositories/refreshtokens"
	"github.com/avolkovx/privseal/internal/server/repositories/requests"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Actors(db dbx.DBTX) actors.Repository {
	return actors.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Documents(db dbx.DBTX) documents.Repository {
	return documents.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Clauses(db dbx.DBTX) clauses.Repository {
	return clauses.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Analyses(db dbx.DBTX) analyses.Repository {
	return analyses.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Requests(db dbx.DBTX) requests.Repository {
	return requests.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Ledger(db dbx.DBTX) ledger.Repository {
	return ledger.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
