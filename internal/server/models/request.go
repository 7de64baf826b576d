package models

import "time"

// RequestState is the lifecycle state of a decryption request.
type RequestState string

const (
	RequestPending   RequestState = "pending"
	RequestCompleted RequestState = "completed"
	RequestFailed    RequestState = "failed"
)

// DecryptionRequest tracks one gateway decryption request per document.
// DecryptedScore/DecryptedRiskLevel are meaningful only in the completed
// state.
type DecryptionRequest struct {
	RequestID          string
	DocumentID         int64
	Requester          string
	RequestTime        time.Time
	State              RequestState
	DecryptedScore     int64
	DecryptedRiskLevel int64
}
