package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	sc "github.com/avolkovx/privseal/internal/server/config"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/server/repositories/ledger"
	"github.com/avolkovx/privseal/internal/server/repositories/repomanager"
	"github.com/avolkovx/privseal/internal/vault"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Submission-time sealed defaults: score zero, risk level medium.
const (
	defaultScore     = 0
	defaultRiskLevel = 2
)

// DocumentService owns document submission with fee escrow and the read-only
// document views. Content blobs are not stored here; callers move them
// directly to object storage via presigned URLs and submit the storage key.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	enc         vault.Encryptor
	emitter     events.Emitter
	config      *sc.Config
	now         func() time.Time
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config, enc vault.Encryptor, emitter events.Emitter) *DocumentService {
	return &DocumentService{
		db:          db,
		repomanager: m,
		enc:         enc,
		emitter:     emitter,
		config:      cfg,
		now:         time.Now,
	}
}

// Submit registers a document for review and escrows the fee. The fee is
// debited from the submitter's deposited balance into the platform pool; it
// stays there until analysis resolution or a refund claim. Returns the newly
// assigned document id.
func (s *DocumentService) Submit(ctx context.Context, submitter, documentHash, publicTitle string, fee int64, storageKey string) (int64, error) {
	if documentHash == "" || publicTitle == "" {
		return 0, common.ErrorInvalidInput
	}
	if fee < s.config.MinReviewFee {
		return 0, common.ErrorInsufficientFee
	}

	sealedScore, err := s.enc.Seal(defaultScore)
	if err != nil {
		return 0, common.ErrorInternal
	}
	sealedRisk, err := s.enc.Seal(defaultRiskLevel)
	if err != nil {
		return 0, common.ErrorInternal
	}

	doc := &models.Document{
		DocumentHash:   documentHash,
		PublicTitle:    publicTitle,
		Submitter:      submitter,
		SubmissionTime: s.now(),
		SealedScore:    sealedScore,
		SealedRisk:     sealedRisk,
		FeeEscrowed:    fee,
		StorageKey:     storageKey,
	}

	analysis := &models.Analysis{}
	if analysis.SealedDataSensitivity, err = s.enc.Seal(0); err != nil {
		return 0, common.ErrorInternal
	}
	if analysis.SealedGDPR, err = s.enc.Seal(0); err != nil {
		return 0, common.ErrorInternal
	}
	if analysis.SealedCCPA, err = s.enc.Seal(0); err != nil {
		return 0, common.ErrorInternal
	}
	if analysis.SealedRetentionRisk, err = s.enc.Seal(1); err != nil {
		return 0, common.ErrorInternal
	}
	if analysis.SealedSharingRisk, err = s.enc.Seal(1); err != nil {
		return 0, common.ErrorInternal
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ledgerRepo := s.repomanager.Ledger(tx)
		if err := ledgerRepo.Add(ctx, submitter, -fee); err != nil {
			return err
		}
		if err := ledgerRepo.Add(ctx, ledger.PlatformAccount, fee); err != nil {
			return err
		}

		if _, err := s.repomanager.Documents(tx).Create(ctx, doc); err != nil {
			return fmt.Errorf("error creating document: %v", err)
		}

		analysis.DocumentID = doc.ID
		if err := s.repomanager.Analyses(tx).Create(ctx, analysis); err != nil {
			return fmt.Errorf("error creating analysis record: %v", err)
		}
		return nil
	}); err != nil {
		return 0, err
	}

	// The submitter holds decryption capability on their own sealed fields.
	_ = s.enc.Allow(doc.SealedScore, submitter)
	_ = s.enc.Allow(doc.SealedRisk, submitter)

	s.emitter.Emit(ctx, events.Submitted, "document_id", doc.ID, "submitter", submitter, "title", publicTitle)
	return doc.ID, nil
}

// GetInfo returns the public view of a document.
func (s *DocumentService) GetInfo(ctx context.Context, documentID int64) (*models.Document, error) {
	if documentID <= 0 {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Documents(s.db).GetByID(ctx, documentID)
}

// GetTotalDocuments returns the number of documents ever submitted.
func (s *DocumentService) GetTotalDocuments(ctx context.Context) (int64, error) {
	return s.repomanager.Documents(s.db).Count(ctx)
}

// ListBySubmitter returns the submitter's documents in submission order.
func (s *DocumentService) ListBySubmitter(ctx context.Context, submitter string) ([]*models.Document, error) {
	return s.repomanager.Documents(s.db).ListBySubmitter(ctx, submitter)
}

func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("documents/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *DocumentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// ContentUploadURL allocates a storage key and returns a presigned PUT URL
// for the document body. The key is passed back in the Submit call.
func (s *DocumentService) ContentUploadURL(ctx context.Context) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := randomStorageKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// ContentDownloadURL returns a presigned GET URL for the document body.
// Restricted to the document's submitter or an authorized reviewer.
func (s *DocumentService) ContentDownloadURL(ctx context.Context, caller string, documentID int64) (string, error) {
	doc, err := s.GetInfo(ctx, documentID)
	if err != nil {
		return "", err
	}
	if err := requireSubmitterOrReviewer(ctx, s.repomanager.Actors(s.db), caller, doc.Submitter); err != nil {
		return "", err
	}
	if doc.StorageKey == "" {
		return "", common.ErrorNotFound
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &doc.StorageKey,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
