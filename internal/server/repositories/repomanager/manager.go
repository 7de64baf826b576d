// Package repomanager wires repository constructors together behind one
// interface, so services can bind any repository to either the shared
// connection pool or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/server/repositories/actors"
	"github.com/avolkovx/privseal/internal/server/repositories/analyses"
	"github.com/avolkovx/privseal/internal/server/repositories/clauses"
	"github.com/avolkovx/privseal/internal/server/repositories/documents"
	"github.com/avolkovx/privseal/internal/server/repositories/ledger"
	"github.com/avolkovx/privseal/internal/server/repositories/refreshtokens"
	"github.com/avolkovx/privseal/internal/server/repositories/requests"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Actors(db dbx.DBTX) actors.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Documents(db dbx.DBTX) documents.Repository
	Clauses(db dbx.DBTX) clauses.Repository
	Analyses(db dbx.DBTX) analyses.Repository
	Requests(db dbx.DBTX) requests.Repository
	Ledger(db dbx.DBTX) ledger.Repository
}
