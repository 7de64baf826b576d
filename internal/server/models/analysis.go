package models

import "github.com/avolkovx/privseal/internal/sealed"

// Analysis is the per-document privacy analysis record, created with sealed
// defaults alongside the document and mutated exactly once when a reviewer
// completes the aggregate analysis.
type Analysis struct {
	DocumentID            int64
	SealedDataSensitivity sealed.Value
	SealedGDPR            sealed.Value
	SealedCCPA            sealed.Value
	SealedRetentionRisk   sealed.Value
	SealedSharingRisk     sealed.Value
	AnalysisComplete      bool
}
