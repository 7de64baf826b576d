// Package events defines the signals the review core raises on state
// transitions and an Emitter abstraction for surfacing them. In production
// signals are structured log records; tests use a recording emitter to
// assert on cause and ordering.
package events

import (
	"context"

	"github.com/avolkovx/privseal/internal/logging"
)

// Signal names, stable across releases: callers and tests assert on them.
const (
	Submitted            = "Submitted"
	ClauseReviewed       = "ClauseReviewed"
	AnalysisCompleted    = "AnalysisCompleted"
	ComplianceAlert      = "ComplianceAlert"
	ReviewerAuthorized   = "ReviewerAuthorized"
	ReviewerRevoked      = "ReviewerRevoked"
	DecryptionRequested  = "DecryptionRequested"
	DecryptionCompleted  = "DecryptionCompleted"
	DecryptionFailed     = "DecryptionFailed"
	RefundProcessed      = "RefundProcessed"
	TimeoutRefundClaimed = "TimeoutRefundClaimed"
	FundsDeposited       = "FundsDeposited"
	FundsWithdrawn       = "FundsWithdrawn"
)

// Emitter publishes a named signal with key-value fields.
type Emitter interface {
	Emit(ctx context.Context, name string, args ...any)
}

// LogEmitter surfaces signals as structured log records.
type LogEmitter struct {
	logger logging.Logger
}

func NewLogEmitter(l logging.Logger) *LogEmitter {
	return &LogEmitter{logger: l.With("module", "events")}
}

func (e *LogEmitter) Emit(ctx context.Context, name string, args ...any) {
	e.logger.Info(ctx, name, args...)
}

// Recorded is one captured signal.
type Recorded struct {
	Name string
	Args []any
}

// Recorder captures signals for tests.
type Recorder struct {
	Events []Recorded
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(ctx context.Context, name string, args ...any) {
	r.Events = append(r.Events, Recorded{Name: name, Args: args})
}

// Names returns the captured signal names in order.
func (r *Recorder) Names() []string {
	out := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		out = append(out, e.Name)
	}
	return out
}

// Has reports whether a signal with the given name was captured.
func (r *Recorder) Has(name string) bool {
	for _, e := range r.Events {
		if e.Name == name {
			return true
		}
	}
	return false
}
