package requests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

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

func TestCreate_StoresPendingState(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`(?s)INSERT\s+INTO\s+decryption_requests`).
		WithArgs("req-1", int64(1), "0xsub", now, "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := &models.DecryptionRequest{
		RequestID:   "req-1",
		DocumentID:  1,
		Requester:   "0xsub",
		RequestTime: now,
		State:       models.RequestPending,
	}
	if err := repo.Create(context.Background(), req); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestGetByRequestID_NullDecryptedFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"request_id", "document_id", "requester", "request_time", "state",
		"decrypted_score", "decrypted_risk_level",
	}).AddRow("req-1", int64(1), "0xsub", time.Now(), "pending", nil, nil)

	mock.ExpectQuery(`(?s)SELECT\s+request_id,.*WHERE\s+request_id\s*=\s*\$1`).
		WithArgs("req-1").
		WillReturnRows(rows)

	req, err := repo.GetByRequestID(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("GetByRequestID error: %v", err)
	}
	if req.State != models.RequestPending || req.DecryptedScore != 0 {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestGetByDocumentID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+request_id,.*WHERE\s+document_id\s*=\s*\$1`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByDocumentID(context.Background(), 9)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestMarkCompleted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE\s+decryption_requests\s+SET\s+state`).
		WithArgs("req-1", "completed", int64(30), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkCompleted(context.Background(), "req-1", 30, 2); err != nil {
		t.Fatalf("MarkCompleted error: %v", err)
	}
}

func TestMarkFailed_UnknownRequest(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE\s+decryption_requests\s+SET\s+state`).
		WithArgs("ghost", "failed").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkFailed(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
