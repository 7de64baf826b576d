package models

import "time"

// RefreshToken is an opaque long-lived token persisted per actor.
type RefreshToken struct {
	ActorAddress string
	Token        string
	ExpiresAt    time.Time
}
