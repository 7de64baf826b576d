package models

import (
	"time"

	"github.com/avolkovx/privseal/internal/sealed"
)

// Document is one submitted item under review. The sealed score/risk fields
// hold submission-time defaults until analysis completes, after which they
// are written exactly once.
type Document struct {
	ID                  int64
	DocumentHash        string
	PublicTitle         string
	Submitter           string
	SubmissionTime      time.Time
	SealedScore         sealed.Value
	SealedRisk          sealed.Value
	IsReviewed          bool
	ClauseCount         int64
	FeeEscrowed         int64
	RefundProcessed     bool
	DecryptionCompleted bool
	StorageKey          string
}
