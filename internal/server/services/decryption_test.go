package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/server/repositories/ledger"
	"github.com/avolkovx/privseal/internal/vault"
)

// decryptionFixture wires a DecryptionService against the stateful fakes, an
// in-process gateway, and a controllable clock, with one reviewed document
// already escrowed.
type decryptionFixture struct {
	rm    *fakeRepoManager
	enc   *vault.AESGCM
	gw    *vault.SimGateway
	svc   *DecryptionService
	rec   *events.Recorder
	docID int64
	clock time.Time
}

func newDecryptionFixture(t *testing.T) *decryptionFixture {
	t.Helper()

	f := &decryptionFixture{
		rm:    newFakeRepoManager(),
		enc:   newTestEncryptor(t),
		rec:   events.NewRecorder(),
		clock: time.Now(),
	}
	f.gw = vault.NewSimGateway(f.enc)
	f.svc = NewDecryptionService(newTestDB(t), f.rm, testConfig(), f.enc, f.gw, f.rec)
	f.svc.now = func() time.Time { return f.clock }
	f.gw.SetHandler(f.svc.HandleCallback)

	f.rm.actors.add(&models.Actor{Address: "alice"})
	f.rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})

	sealedScore, err := f.enc.Seal(70)
	if err != nil {
		t.Fatalf("seal error: %v", err)
	}
	sealedRisk, err := f.enc.Seal(2)
	if err != nil {
		t.Fatalf("seal error: %v", err)
	}
	doc, err := f.rm.documents.Create(context.Background(), &models.Document{
		DocumentHash: "Qm1", PublicTitle: "T1", Submitter: "alice",
		SealedScore: sealedScore, SealedRisk: sealedRisk,
		IsReviewed: true, FeeEscrowed: 100,
	})
	if err != nil {
		t.Fatalf("seed document error: %v", err)
	}
	f.docID = doc.ID
	f.rm.ledger.balances[ledger.PlatformAccount] = 100
	return f
}

func (f *decryptionFixture) advance(d time.Duration) { f.clock = f.clock.Add(d) }

func TestRequestDecryption(t *testing.T) {
	f := newDecryptionFixture(t)

	requestID, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID)
	if err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}
	if requestID == "" {
		t.Fatal("expected a request id")
	}

	req, err := f.rm.requests.GetByRequestID(context.Background(), requestID)
	if err != nil {
		t.Fatalf("request not stored: %v", err)
	}
	if req.State != models.RequestPending || req.DocumentID != f.docID || req.Requester != "alice" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if !f.rec.Has(events.DecryptionRequested) {
		t.Fatal("expected DecryptionRequested signal")
	}

	// One request per document lifetime.
	if _, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID); !errors.Is(err, common.ErrorAlreadyRequested) {
		t.Fatalf("expected ErrorAlreadyRequested, got %v", err)
	}
	// A reviewer may also request, but hits the same guard here.
	if _, err := f.svc.RequestDecryption(context.Background(), "r1", f.docID); !errors.Is(err, common.ErrorAlreadyRequested) {
		t.Fatalf("expected ErrorAlreadyRequested for reviewer, got %v", err)
	}
}

func TestRequestDecryption_Guards(t *testing.T) {
	f := newDecryptionFixture(t)
	f.rm.actors.add(&models.Actor{Address: "carol"})

	if _, err := f.svc.RequestDecryption(context.Background(), "alice", 99); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("missing document: expected ErrorNotFound, got %v", err)
	}
	if _, err := f.svc.RequestDecryption(context.Background(), "carol", f.docID); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("outsider: expected ErrorUnauthorized, got %v", err)
	}

	unreviewed, _ := f.rm.documents.Create(context.Background(), &models.Document{
		DocumentHash: "Qm2", PublicTitle: "T2", Submitter: "alice", FeeEscrowed: 100,
	})
	if _, err := f.svc.RequestDecryption(context.Background(), "alice", unreviewed.ID); !errors.Is(err, common.ErrorNotYetReviewed) {
		t.Fatalf("unreviewed: expected ErrorNotYetReviewed, got %v", err)
	}
}

func TestCallback_Completes(t *testing.T) {
	f := newDecryptionFixture(t)

	requestID, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID)
	if err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}
	if err := f.gw.Deliver(context.Background(), requestID); err != nil {
		t.Fatalf("Deliver error: %v", err)
	}

	req, _ := f.rm.requests.GetByRequestID(context.Background(), requestID)
	if req.State != models.RequestCompleted {
		t.Fatalf("expected Completed, got %s", req.State)
	}
	if req.DecryptedScore != 70 || req.DecryptedRiskLevel != 2 {
		t.Fatalf("unexpected decrypted values: %d/%d", req.DecryptedScore, req.DecryptedRiskLevel)
	}
	doc, _ := f.rm.documents.GetByID(context.Background(), f.docID)
	if !doc.DecryptionCompleted {
		t.Fatal("document should be marked decryption-completed")
	}
	if !f.rec.Has(events.DecryptionCompleted) {
		t.Fatal("expected DecryptionCompleted signal")
	}

	// Duplicate delivery rejects; a Completed request never transitions again.
	if err := f.gw.Deliver(context.Background(), requestID); !errors.Is(err, common.ErrorAlreadyCompleted) {
		t.Fatalf("expected ErrorAlreadyCompleted, got %v", err)
	}
}

func TestCallback_BadProof(t *testing.T) {
	f := newDecryptionFixture(t)

	requestID, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID)
	if err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}

	payload, _ := vault.EncodeCleartext(vault.Cleartext{Score: 70, RiskLevel: 2})
	err = f.svc.HandleCallback(context.Background(), requestID, payload, []byte("forged"))
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}

	req, _ := f.rm.requests.GetByRequestID(context.Background(), requestID)
	if req.State != models.RequestPending {
		t.Fatalf("forged callback must not transition state, got %s", req.State)
	}
}

func TestCallback_UnknownRequest(t *testing.T) {
	f := newDecryptionFixture(t)

	payload, _ := vault.EncodeCleartext(vault.Cleartext{Score: 1, RiskLevel: 1})
	err := f.svc.HandleCallback(context.Background(), "ghost", payload, f.enc.Sign("ghost", payload))
	if !errors.Is(err, common.ErrorNoRequestFound) {
		t.Fatalf("expected ErrorNoRequestFound, got %v", err)
	}
}

func TestCallback_StaleIsAbsorbed(t *testing.T) {
	f := newDecryptionFixture(t)

	requestID, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID)
	if err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}

	f.advance(time.Hour + time.Minute)

	// Late delivery is a success for the gateway, a Failed transition inside.
	if err := f.gw.Deliver(context.Background(), requestID); err != nil {
		t.Fatalf("stale callback must be absorbed, got %v", err)
	}

	req, _ := f.rm.requests.GetByRequestID(context.Background(), requestID)
	if req.State != models.RequestFailed {
		t.Fatalf("expected Failed, got %s", req.State)
	}
	if req.DecryptedScore != 0 || req.DecryptedRiskLevel != 0 {
		t.Fatal("stale callback must not write decrypted values")
	}
	doc, _ := f.rm.documents.GetByID(context.Background(), f.docID)
	if doc.DecryptionCompleted {
		t.Fatal("document must not be marked decryption-completed")
	}
	if !f.rec.Has(events.DecryptionFailed) {
		t.Fatal("expected DecryptionFailed signal")
	}
}

func TestClaimRefund_AfterTimeout(t *testing.T) {
	f := newDecryptionFixture(t)

	if _, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID); err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}
	f.advance(2 * time.Hour)

	if err := f.svc.ClaimRefund(context.Background(), "alice", f.docID); err != nil {
		t.Fatalf("ClaimRefund error: %v", err)
	}

	doc, _ := f.rm.documents.GetByID(context.Background(), f.docID)
	if !doc.RefundProcessed || doc.FeeEscrowed != 0 {
		t.Fatalf("expected refunded document with zero escrow, got %+v", doc)
	}
	if f.rm.ledger.balances[ledger.PlatformAccount] != 0 {
		t.Fatalf("expected empty platform pool, got %d", f.rm.ledger.balances[ledger.PlatformAccount])
	}
	if f.rm.ledger.balances["alice"] != 100 {
		t.Fatalf("expected fee back with the submitter, got %d", f.rm.ledger.balances["alice"])
	}
	if !f.rec.Has(events.RefundProcessed) || !f.rec.Has(events.TimeoutRefundClaimed) {
		t.Fatalf("expected RefundProcessed and TimeoutRefundClaimed signals, got %v", f.rec.Names())
	}

	// At most one refund per document.
	if err := f.svc.ClaimRefund(context.Background(), "alice", f.docID); !errors.Is(err, common.ErrorAlreadyRefunded) {
		t.Fatalf("expected ErrorAlreadyRefunded, got %v", err)
	}
}

func TestClaimRefund_PendingBeforeTimeout(t *testing.T) {
	f := newDecryptionFixture(t)

	if _, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID); err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}

	// Not timed out, but not completed either: the failure branch of the
	// eligibility rule applies.
	if err := f.svc.ClaimRefund(context.Background(), "alice", f.docID); err != nil {
		t.Fatalf("ClaimRefund error: %v", err)
	}
	if !f.rec.Has(events.RefundProcessed) {
		t.Fatal("expected RefundProcessed signal")
	}
	if f.rec.Has(events.TimeoutRefundClaimed) {
		t.Fatal("TimeoutRefundClaimed applies only to the timeout branch")
	}
}

func TestClaimRefund_Guards(t *testing.T) {
	f := newDecryptionFixture(t)

	if err := f.svc.ClaimRefund(context.Background(), "alice", f.docID); !errors.Is(err, common.ErrorNoRequestFound) {
		t.Fatalf("no request: expected ErrorNoRequestFound, got %v", err)
	}

	requestID, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID)
	if err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}

	if err := f.svc.ClaimRefund(context.Background(), "r1", f.docID); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("non-submitter: expected ErrorUnauthorized, got %v", err)
	}

	if err := f.gw.Deliver(context.Background(), requestID); err != nil {
		t.Fatalf("Deliver error: %v", err)
	}
	if err := f.svc.ClaimRefund(context.Background(), "alice", f.docID); !errors.Is(err, common.ErrorAlreadyCompleted) {
		t.Fatalf("completed request: expected ErrorAlreadyCompleted, got %v", err)
	}
}

func TestLateCallbackAfterRefund(t *testing.T) {
	f := newDecryptionFixture(t)

	requestID, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID)
	if err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}
	f.advance(2 * time.Hour)
	if err := f.svc.ClaimRefund(context.Background(), "alice", f.docID); err != nil {
		t.Fatalf("ClaimRefund error: %v", err)
	}

	// The gateway finally answers. The callback must not resurrect state.
	if err := f.gw.Deliver(context.Background(), requestID); err != nil {
		t.Fatalf("late callback must be absorbed, got %v", err)
	}

	req, _ := f.rm.requests.GetByRequestID(context.Background(), requestID)
	if req.State == models.RequestCompleted {
		t.Fatal("a refunded request must never become Completed")
	}
	if req.DecryptedScore != 0 {
		t.Fatal("late callback must not write decrypted values")
	}
	doc, _ := f.rm.documents.GetByID(context.Background(), f.docID)
	if doc.DecryptionCompleted {
		t.Fatal("document must not be marked decryption-completed after refund")
	}
}

func TestRequestDecryption_AfterRefundRejected(t *testing.T) {
	f := newDecryptionFixture(t)

	if _, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID); err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}
	f.advance(2 * time.Hour)
	if err := f.svc.ClaimRefund(context.Background(), "alice", f.docID); err != nil {
		t.Fatalf("ClaimRefund error: %v", err)
	}

	if _, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID); !errors.Is(err, common.ErrorAlreadyRefunded) {
		t.Fatalf("expected ErrorAlreadyRefunded, got %v", err)
	}
}

func TestCanClaimRefund(t *testing.T) {
	f := newDecryptionFixture(t)

	ok, err := f.svc.CanClaimRefund(context.Background(), f.docID)
	if err != nil || ok {
		t.Fatalf("no request yet: expected false, got ok=%v err=%v", ok, err)
	}

	requestID, err := f.svc.RequestDecryption(context.Background(), "alice", f.docID)
	if err != nil {
		t.Fatalf("RequestDecryption error: %v", err)
	}
	ok, _ = f.svc.CanClaimRefund(context.Background(), f.docID)
	if !ok {
		t.Fatal("pending request: predicate should agree with ClaimRefund and report true")
	}

	if err := f.gw.Deliver(context.Background(), requestID); err != nil {
		t.Fatalf("Deliver error: %v", err)
	}
	ok, _ = f.svc.CanClaimRefund(context.Background(), f.docID)
	if ok {
		t.Fatal("completed request: no refund possible")
	}
}
