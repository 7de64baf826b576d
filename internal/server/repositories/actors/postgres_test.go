package actors

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+actors\s*\(address,\s*username,\s*salt,\s*verifier,\s*is_owner,\s*is_reviewer\)`

	mock.ExpectExec(q).
		WithArgs("0xabc", "alice", []byte("salt"), []byte("ver"), true, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := &models.Actor{Address: "0xabc", UserName: "alice", Salt: []byte("salt"), Verifier: []byte("ver"), IsOwner: true, IsReviewer: true}
	got, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Address != "0xabc" {
		t.Fatalf("unexpected actor: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByAddress_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"address", "username", "salt", "verifier", "is_owner", "is_reviewer"}).
		AddRow("0xabc", "alice", []byte("s"), []byte("v"), false, true)
	mock.ExpectQuery(`(?s)SELECT\s+address.*FROM\s+actors\s+WHERE\s+address\s*=\s*\$1`).
		WithArgs("0xabc").
		WillReturnRows(rows)

	got, err := repo.GetByAddress(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("GetByAddress error: %v", err)
	}
	if !got.IsReviewer || got.IsOwner {
		t.Fatalf("unexpected flags: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+address.*FROM\s+actors\s+WHERE\s+username\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestSetReviewer_NoRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+actors\s+SET\s+is_reviewer`).
		WithArgs("0xdead", true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetReviewer(context.Background(), "0xdead", true)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+actors`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
}
