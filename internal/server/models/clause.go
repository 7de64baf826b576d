package models

import (
	"time"

	"github.com/avolkovx/privseal/internal/sealed"
)

// Clause is one clause-level review record, keyed by a per-document
// sequential id starting at 1. Immutable once created.
type Clause struct {
	DocumentID        int64
	ClauseID          int64
	ClauseType        string
	SealedCompliance  sealed.Value
	SealedSensitivity sealed.Value
	Notes             string
	Reviewer          string
	ReviewTime        time.Time
}
