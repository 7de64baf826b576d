// Package common defines shared constants and sentinel errors used across
// the review service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorInvalidInput    = errors.New("invalid input")
	ErrorOutOfRange      = errors.New("value out of range")
	ErrorInsufficientFee = errors.New("insufficient fee")
	ErrorInvalidClauseID = errors.New("invalid clause id")

	// Registry errors.
	ErrorAlreadyAuthorized = errors.New("reviewer already authorized")
	ErrorNotAReviewer      = errors.New("not an authorized reviewer")
	ErrorUsernameTaken     = errors.New("username already taken")

	// Decryption state machine guards.
	ErrorNotYetReviewed   = errors.New("document not yet reviewed")
	ErrorAlreadyRequested = errors.New("decryption already requested")
	ErrorAlreadyCompleted = errors.New("decryption already completed")
	ErrorAlreadyRefunded  = errors.New("refund already processed")
	ErrorNoRequestFound   = errors.New("no decryption request found")
	ErrorRefundNotDue     = errors.New("refund conditions not met")

	// Analysis errors.
	ErrorAnalysisAlreadyDone = errors.New("analysis already completed")

	// Escrow/ledger errors.
	ErrorNoFunds        = errors.New("no funds to withdraw")
	ErrorTransferFailed = errors.New("transfer failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
