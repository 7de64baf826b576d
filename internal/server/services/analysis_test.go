package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/vault"
)

func newAnalysisService(t *testing.T, rm *fakeRepoManager, enc *vault.AESGCM) (*AnalysisService, *events.Recorder) {
	t.Helper()
	rec := events.NewRecorder()
	return NewAnalysisService(newTestDB(t), rm, enc, rec), rec
}

func seedAnalysis(t *testing.T, rm *fakeRepoManager, docID int64) {
	t.Helper()
	if err := rm.analyses.Create(context.Background(), &models.Analysis{DocumentID: docID}); err != nil {
		t.Fatalf("seed analysis error: %v", err)
	}
}

func TestCompleteAnalysis(t *testing.T) {
	rm := newFakeRepoManager()
	enc := newTestEncryptor(t)
	s, rec := newAnalysisService(t, rm, enc)
	rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})
	docID := seedDocument(t, rm, "alice")
	seedAnalysis(t, rm, docID)

	// gdpr=8, ccpa=7 -> overallScore 7; retention=2, sharing=3 -> overallRisk 2.
	if err := s.CompleteAnalysis(context.Background(), "r1", docID, 85, 8, 7, 2, 3); err != nil {
		t.Fatalf("CompleteAnalysis error: %v", err)
	}

	doc, _ := rm.documents.GetByID(context.Background(), docID)
	if !doc.IsReviewed {
		t.Fatal("document should be reviewed")
	}
	score, err := enc.Open(doc.SealedScore)
	if err != nil {
		t.Fatalf("open sealed score: %v", err)
	}
	if score != 70 { // (8+7)/2 = 7, stored with the x10 multiplier
		t.Fatalf("expected sealed score 70, got %d", score)
	}
	risk, err := enc.Open(doc.SealedRisk)
	if err != nil {
		t.Fatalf("open sealed risk: %v", err)
	}
	if risk != 2 {
		t.Fatalf("expected sealed risk 2, got %d", risk)
	}

	analysis, _ := rm.analyses.Get(context.Background(), docID)
	if !analysis.AnalysisComplete {
		t.Fatal("analysis should be complete")
	}

	if !rec.Has(events.AnalysisCompleted) {
		t.Fatal("expected AnalysisCompleted signal")
	}
	if rec.Has(events.ComplianceAlert) {
		t.Fatal("no alert expected for score 7 / risk 2")
	}
}

func TestCompleteAnalysis_TruncatingDivision(t *testing.T) {
	rm := newFakeRepoManager()
	enc := newTestEncryptor(t)
	s, _ := newAnalysisService(t, rm, enc)
	rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})
	docID := seedDocument(t, rm, "alice")
	seedAnalysis(t, rm, docID)

	// gdpr=4, ccpa=3 -> (4+3)/2 truncates to 3.
	if err := s.CompleteAnalysis(context.Background(), "r1", docID, 85, 4, 3, 2, 3); err != nil {
		t.Fatalf("CompleteAnalysis error: %v", err)
	}

	doc, _ := rm.documents.GetByID(context.Background(), docID)
	score, err := enc.Open(doc.SealedScore)
	if err != nil {
		t.Fatalf("open sealed score: %v", err)
	}
	if score != 30 {
		t.Fatalf("expected sealed score 30, got %d", score)
	}
}

func TestCompleteAnalysis_AlertThresholds(t *testing.T) {
	cases := []struct {
		name                           string
		gdpr, ccpa, retention, sharing int64
		wantAlert                      bool
	}{
		{"low score", 4, 3, 2, 3, true},       // overallScore 3 < 5
		{"high risk", 9, 9, 4, 4, true},       // overallRisk 4 >= 4
		{"clean", 8, 8, 2, 2, false},          // score 8, risk 2
		{"score boundary", 5, 5, 3, 3, false}, // score exactly 5, risk 3
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rm := newFakeRepoManager()
			s, rec := newAnalysisService(t, rm, newTestEncryptor(t))
			rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})
			docID := seedDocument(t, rm, "alice")
			seedAnalysis(t, rm, docID)

			if err := s.CompleteAnalysis(context.Background(), "r1", docID, 50, tc.gdpr, tc.ccpa, tc.retention, tc.sharing); err != nil {
				t.Fatalf("CompleteAnalysis error: %v", err)
			}
			if got := rec.Has(events.ComplianceAlert); got != tc.wantAlert {
				t.Fatalf("alert=%v, want %v", got, tc.wantAlert)
			}
		})
	}
}

func TestCompleteAnalysis_SecondCallRejected(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newAnalysisService(t, rm, newTestEncryptor(t))
	rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})
	docID := seedDocument(t, rm, "alice")
	seedAnalysis(t, rm, docID)

	if err := s.CompleteAnalysis(context.Background(), "r1", docID, 85, 8, 7, 2, 3); err != nil {
		t.Fatalf("CompleteAnalysis error: %v", err)
	}
	err := s.CompleteAnalysis(context.Background(), "r1", docID, 85, 1, 1, 5, 5)
	if !errors.Is(err, common.ErrorAnalysisAlreadyDone) {
		t.Fatalf("expected ErrorAnalysisAlreadyDone, got %v", err)
	}
}

func TestCompleteAnalysis_RangeBoundaries(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newAnalysisService(t, rm, newTestEncryptor(t))
	rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})
	docID := seedDocument(t, rm, "alice")
	seedAnalysis(t, rm, docID)

	cases := []struct {
		name                                        string
		sensitivity, gdpr, ccpa, retention, sharing int64
	}{
		{"sensitivity above", 101, 5, 5, 3, 3},
		{"sensitivity negative", -1, 5, 5, 3, 3},
		{"gdpr above", 50, 11, 5, 3, 3},
		{"ccpa above", 50, 5, 11, 3, 3},
		{"retention zero", 50, 5, 5, 0, 3},
		{"sharing above", 50, 5, 5, 3, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.CompleteAnalysis(context.Background(), "r1", docID, tc.sensitivity, tc.gdpr, tc.ccpa, tc.retention, tc.sharing)
			if !errors.Is(err, common.ErrorOutOfRange) {
				t.Fatalf("expected ErrorOutOfRange, got %v", err)
			}
		})
	}
}

func TestCompleteAnalysis_NotReviewer(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newAnalysisService(t, rm, newTestEncryptor(t))
	rm.actors.add(&models.Actor{Address: "plain"})
	docID := seedDocument(t, rm, "alice")
	seedAnalysis(t, rm, docID)

	err := s.CompleteAnalysis(context.Background(), "plain", docID, 50, 5, 5, 3, 3)
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

func TestGetAnalysisStatus(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newAnalysisService(t, rm, newTestEncryptor(t))
	rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})
	docID := seedDocument(t, rm, "alice")
	seedAnalysis(t, rm, docID)

	status, err := s.GetAnalysisStatus(context.Background(), docID)
	if err != nil {
		t.Fatalf("GetAnalysisStatus error: %v", err)
	}
	if status.AnalysisComplete {
		t.Fatal("analysis must start incomplete")
	}

	if err := s.CompleteAnalysis(context.Background(), "r1", docID, 85, 8, 7, 2, 3); err != nil {
		t.Fatalf("CompleteAnalysis error: %v", err)
	}
	status, err = s.GetAnalysisStatus(context.Background(), docID)
	if err != nil {
		t.Fatalf("GetAnalysisStatus error: %v", err)
	}
	if !status.AnalysisComplete {
		t.Fatal("analysis should report complete")
	}

	if _, err := s.GetAnalysisStatus(context.Background(), 99); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
