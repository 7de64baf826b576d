// Package models holds the server-side entities persisted by the review
// service.
package models

import "time"

// Actor is a registered participant identified by an opaque address.
// Exactly one actor carries the owner capability (assigned at genesis);
// reviewer capability is owner-controlled.
type Actor struct {
	Address    string
	UserName   string
	Salt       []byte
	Verifier   []byte
	IsOwner    bool
	IsReviewer bool
	CreatedAt  time.Time
}
