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

func newDocumentService(t *testing.T, rm *fakeRepoManager) (*DocumentService, *events.Recorder) {
	t.Helper()
	rec := events.NewRecorder()
	return NewDocumentService(newTestDB(t), rm, testConfig(), newTestEncryptor(t), rec), rec
}

func TestSubmit(t *testing.T) {
	rm := newFakeRepoManager()
	s, rec := newDocumentService(t, rm)
	rm.ledger.balances["alice"] = 500

	id, err := s.Submit(context.Background(), "alice", "Qm1", "T1", 100, "")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected document id 1, got %d", id)
	}

	doc, err := s.GetInfo(context.Background(), id)
	if err != nil {
		t.Fatalf("GetInfo error: %v", err)
	}
	if doc.ClauseCount != 0 || doc.IsReviewed {
		t.Fatalf("fresh document should be unreviewed with zero clauses, got %+v", doc)
	}
	if doc.FeeEscrowed != 100 {
		t.Fatalf("expected escrowed fee 100, got %d", doc.FeeEscrowed)
	}
	if doc.SealedScore.IsZero() || doc.SealedRisk.IsZero() {
		t.Fatal("expected sealed defaults to be populated")
	}

	// Fee moved from the submitter into the platform pool.
	if rm.ledger.balances["alice"] != 400 {
		t.Fatalf("expected submitter balance 400, got %d", rm.ledger.balances["alice"])
	}
	if rm.ledger.balances[ledger.PlatformAccount] != 100 {
		t.Fatalf("expected platform balance 100, got %d", rm.ledger.balances[ledger.PlatformAccount])
	}

	// An analysis record with defaults exists alongside the document.
	analysis, err := rm.analyses.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("analysis record missing: %v", err)
	}
	if analysis.AnalysisComplete {
		t.Fatal("fresh analysis record must not be complete")
	}

	if !rec.Has(events.Submitted) {
		t.Fatal("expected Submitted signal")
	}
}

func TestSubmit_Validation(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newDocumentService(t, rm)
	rm.ledger.balances["alice"] = 500

	if _, err := s.Submit(context.Background(), "alice", "", "T1", 100, ""); !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("empty hash: expected ErrorInvalidInput, got %v", err)
	}
	if _, err := s.Submit(context.Background(), "alice", "Qm1", "", 100, ""); !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("empty title: expected ErrorInvalidInput, got %v", err)
	}
	if _, err := s.Submit(context.Background(), "alice", "Qm1", "T1", 99, ""); !errors.Is(err, common.ErrorInsufficientFee) {
		t.Fatalf("low fee: expected ErrorInsufficientFee, got %v", err)
	}
}

func TestSubmit_InsufficientBalance(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newDocumentService(t, rm)
	rm.ledger.balances["alice"] = 50

	if _, err := s.Submit(context.Background(), "alice", "Qm1", "T1", 100, ""); !errors.Is(err, common.ErrorTransferFailed) {
		t.Fatalf("expected ErrorTransferFailed, got %v", err)
	}
	if n, _ := rm.documents.Count(context.Background()); n != 0 {
		t.Fatalf("no document should be created, got %d", n)
	}
}

func TestGetInfo_NotFound(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newDocumentService(t, rm)

	for _, id := range []int64{0, -1, 42} {
		if _, err := s.GetInfo(context.Background(), id); !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("id %d: expected ErrorNotFound, got %v", id, err)
		}
	}
}

func TestGetTotalDocuments(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newDocumentService(t, rm)
	rm.ledger.balances["alice"] = 1000

	for i := 0; i < 3; i++ {
		if _, err := s.Submit(context.Background(), "alice", "Qm1", "T1", 100, ""); err != nil {
			t.Fatalf("Submit error: %v", err)
		}
	}
	n, err := s.GetTotalDocuments(context.Background())
	if err != nil {
		t.Fatalf("GetTotalDocuments error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 documents, got %d", n)
	}
}

func TestListBySubmitter(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newDocumentService(t, rm)
	rm.ledger.balances["alice"] = 1000
	rm.ledger.balances["bob"] = 1000

	if _, err := s.Submit(context.Background(), "alice", "Qm1", "T1", 100, ""); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if _, err := s.Submit(context.Background(), "bob", "Qm2", "T2", 100, ""); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	docs, err := s.ListBySubmitter(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListBySubmitter error: %v", err)
	}
	if len(docs) != 1 || docs[0].PublicTitle != "T1" {
		t.Fatalf("unexpected submitter index: %+v", docs)
	}
}

func TestContentDownloadURL_Unauthorized(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newDocumentService(t, rm)
	rm.ledger.balances["alice"] = 500
	rm.actors.add(&models.Actor{Address: "carol"})

	id, err := s.Submit(context.Background(), "alice", "Qm1", "T1", 100, "key1")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if _, err := s.ContentDownloadURL(context.Background(), "carol", id); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}
