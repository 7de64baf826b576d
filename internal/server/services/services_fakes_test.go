package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/sealed"
	"github.com/avolkovx/privseal/internal/server/config"
	"github.com/avolkovx/privseal/internal/server/models"
	actorsrepo "github.com/avolkovx/privseal/internal/server/repositories/actors"
	analysesrepo "github.com/avolkovx/privseal/internal/server/repositories/analyses"
	clausesrepo "github.com/avolkovx/privseal/internal/server/repositories/clauses"
	documentsrepo "github.com/avolkovx/privseal/internal/server/repositories/documents"
	ledgerrepo "github.com/avolkovx/privseal/internal/server/repositories/ledger"
	refreshtokensrepo "github.com/avolkovx/privseal/internal/server/repositories/refreshtokens"
	"github.com/avolkovx/privseal/internal/server/repositories/repomanager"
	requestsrepo "github.com/avolkovx/privseal/internal/server/repositories/requests"
	"github.com/avolkovx/privseal/internal/vault"

	_ "modernc.org/sqlite"
)

// The fakes below hold state in maps so tests can run full flows
// (submit -> review -> analyze -> request -> callback/refund) without a
// database. Transactions still open against a real in-memory sqlite DB so
// dbx.WithTx behaves for real; the fakes themselves ignore the DBTX handle.

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("sqlite open error: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "k"
	cfg.MinReviewFee = 100
	cfg.DecryptionTimeout = time.Hour
	return cfg
}

func newTestEncryptor(t *testing.T) *vault.AESGCM {
	t.Helper()
	enc, err := vault.NewAESGCM(make([]byte, 32), []byte("gw-key"))
	if err != nil {
		t.Fatalf("NewAESGCM error: %v", err)
	}
	return enc
}

type fakeActorsRepo struct {
	mu     sync.Mutex
	actors map[string]*models.Actor
}

func newFakeActorsRepo() *fakeActorsRepo {
	return &fakeActorsRepo{actors: make(map[string]*models.Actor)}
}

func (f *fakeActorsRepo) Create(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actors[actor.Address] = actor
	return actor, nil
}

func (f *fakeActorsRepo) GetByAddress(ctx context.Context, address string) (*models.Actor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.actors[address]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeActorsRepo) GetByUsername(ctx context.Context, username string) (*models.Actor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.actors {
		if a.UserName == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeActorsRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.actors)), nil
}

func (f *fakeActorsRepo) SetReviewer(ctx context.Context, address string, isReviewer bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.actors[address]
	if !ok {
		return common.ErrorNotFound
	}
	a.IsReviewer = isReviewer
	return nil
}

func (f *fakeActorsRepo) add(actor *models.Actor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actors[actor.Address] = actor
}

type fakeRefreshRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (f *fakeRefreshRepo) Create(ctx context.Context, actorAddress string, token string, validity time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = &models.RefreshToken{
		ActorAddress: actorAddress, Token: token, ExpiresAt: time.Now().Add(validity),
	}
	return nil
}

func (f *fakeRefreshRepo) Get(ctx context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rt, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rt, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

type fakeDocumentsRepo struct {
	mu     sync.Mutex
	nextID int64
	docs   map[int64]*models.Document
}

func newFakeDocumentsRepo() *fakeDocumentsRepo {
	return &fakeDocumentsRepo{docs: make(map[int64]*models.Document)}
}

func (f *fakeDocumentsRepo) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	doc.ID = f.nextID
	cp := *doc
	f.docs[doc.ID] = &cp
	return doc, nil
}

func (f *fakeDocumentsRepo) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocumentsRepo) GetByIDForUpdate(ctx context.Context, id int64) (*models.Document, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeDocumentsRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.docs)), nil
}

func (f *fakeDocumentsRepo) ListBySubmitter(ctx context.Context, submitter string) ([]*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Document
	for id := int64(1); id <= f.nextID; id++ {
		if d, ok := f.docs[id]; ok && d.Submitter == submitter {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDocumentsRepo) IncrementClauseCount(ctx context.Context, id int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	d.ClauseCount++
	return d.ClauseCount, nil
}

func (f *fakeDocumentsRepo) SetAnalyzed(ctx context.Context, id int64, sealedScore, sealedRisk []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return common.ErrorNotFound
	}
	d.SealedScore = sealed.Wrap(sealedScore)
	d.SealedRisk = sealed.Wrap(sealedRisk)
	d.IsReviewed = true
	return nil
}

func (f *fakeDocumentsRepo) SetDecryptionCompleted(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return common.ErrorNotFound
	}
	d.DecryptionCompleted = true
	return nil
}

func (f *fakeDocumentsRepo) MarkRefunded(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok || d.RefundProcessed {
		return common.ErrorNotFound
	}
	d.RefundProcessed = true
	d.FeeEscrowed = 0
	return nil
}

type fakeClausesRepo struct {
	mu      sync.Mutex
	clauses []*models.Clause
}

func newFakeClausesRepo() *fakeClausesRepo { return &fakeClausesRepo{} }

func (f *fakeClausesRepo) Create(ctx context.Context, clause *models.Clause) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *clause
	f.clauses = append(f.clauses, &cp)
	return nil
}

func (f *fakeClausesRepo) Get(ctx context.Context, documentID, clauseID int64) (*models.Clause, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.clauses {
		if c.DocumentID == documentID && c.ClauseID == clauseID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeClausesRepo) ListByReviewer(ctx context.Context, reviewer string) ([]*models.Clause, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Clause
	for _, c := range f.clauses {
		if c.Reviewer == reviewer {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeClausesRepo) CountByDocument(ctx context.Context, documentID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, c := range f.clauses {
		if c.DocumentID == documentID {
			n++
		}
	}
	return n, nil
}

type fakeAnalysesRepo struct {
	mu       sync.Mutex
	analyses map[int64]*models.Analysis
}

func newFakeAnalysesRepo() *fakeAnalysesRepo {
	return &fakeAnalysesRepo{analyses: make(map[int64]*models.Analysis)}
}

func (f *fakeAnalysesRepo) Create(ctx context.Context, analysis *models.Analysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *analysis
	f.analyses[analysis.DocumentID] = &cp
	return nil
}

func (f *fakeAnalysesRepo) Get(ctx context.Context, documentID int64) (*models.Analysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.analyses[documentID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAnalysesRepo) Complete(ctx context.Context, analysis *models.Analysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *analysis
	cp.AnalysisComplete = true
	f.analyses[analysis.DocumentID] = &cp
	return nil
}

type fakeRequestsRepo struct {
	mu       sync.Mutex
	requests map[string]*models.DecryptionRequest
}

func newFakeRequestsRepo() *fakeRequestsRepo {
	return &fakeRequestsRepo{requests: make(map[string]*models.DecryptionRequest)}
}

func (f *fakeRequestsRepo) Create(ctx context.Context, req *models.DecryptionRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *req
	f.requests[req.RequestID] = &cp
	return nil
}

func (f *fakeRequestsRepo) GetByRequestID(ctx context.Context, requestID string) (*models.DecryptionRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[requestID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequestsRepo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*models.DecryptionRequest, error) {
	return f.GetByRequestID(ctx, requestID)
}

func (f *fakeRequestsRepo) GetByDocumentID(ctx context.Context, documentID int64) (*models.DecryptionRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r.DocumentID == documentID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRequestsRepo) MarkCompleted(ctx context.Context, requestID string, score, riskLevel int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[requestID]
	if !ok {
		return common.ErrorNotFound
	}
	r.State = models.RequestCompleted
	r.DecryptedScore = score
	r.DecryptedRiskLevel = riskLevel
	return nil
}

func (f *fakeRequestsRepo) MarkFailed(ctx context.Context, requestID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[requestID]
	if !ok {
		return common.ErrorNotFound
	}
	r.State = models.RequestFailed
	return nil
}

type fakeLedgerRepo struct {
	mu       sync.Mutex
	balances map[string]int64
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{balances: make(map[string]int64)}
}

func (f *fakeLedgerRepo) Balance(ctx context.Context, account string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[account], nil
}

func (f *fakeLedgerRepo) Add(ctx context.Context, account string, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balances[account]+delta < 0 {
		return common.ErrorTransferFailed
	}
	f.balances[account] += delta
	return nil
}

type fakeRepoManager struct {
	actors        *fakeActorsRepo
	refreshTokens *fakeRefreshRepo
	documents     *fakeDocumentsRepo
	clauses       *fakeClausesRepo
	analyses      *fakeAnalysesRepo
	requests      *fakeRequestsRepo
	ledger        *fakeLedgerRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		actors:        newFakeActorsRepo(),
		refreshTokens: newFakeRefreshRepo(),
		documents:     newFakeDocumentsRepo(),
		clauses:       newFakeClausesRepo(),
		analyses:      newFakeAnalysesRepo(),
		requests:      newFakeRequestsRepo(),
		ledger:        newFakeLedgerRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Actors(db dbx.DBTX) actorsrepo.Repository     { return m.actors }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository {
	return m.refreshTokens
}
func (m *fakeRepoManager) Documents(db dbx.DBTX) documentsrepo.Repository { return m.documents }
func (m *fakeRepoManager) Clauses(db dbx.DBTX) clausesrepo.Repository     { return m.clauses }
func (m *fakeRepoManager) Analyses(db dbx.DBTX) analysesrepo.Repository   { return m.analyses }
func (m *fakeRepoManager) Requests(db dbx.DBTX) requestsrepo.Repository   { return m.requests }
func (m *fakeRepoManager) Ledger(db dbx.DBTX) ledgerrepo.Repository       { return m.ledger }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
