package store

import (
	"context"
	"time"

	"github.com/willowed/persona/internal/quiz"
)

// CompletionRecord is a finished assessment: the winning personality
// type id, the ranked answers that produced it, and when it finished.
type CompletionRecord struct {
	ResultID    string
	Answers     []quiz.Answer
	CompletedAt time.Time
}

// CompletionRepo persists at most one completed assessment. Saving a
// new record replaces any prior one.
type CompletionRepo interface {
	// Save stores rec, replacing any previously saved completion.
	Save(ctx context.Context, rec *CompletionRecord) error
	// Load returns the saved completion, or nil when none exists or
	// the stored record cannot be read. It never fails the caller.
	Load(ctx context.Context) *CompletionRecord
	// Clear removes any saved completion. Clearing an empty store
	// is a no-op.
	Clear(ctx context.Context) error
}

// SignupData captures an email submission tied to a computed result.
type SignupData struct {
	Email             string
	PersonalityTypeID string
	SessionID         string
}

// SignupRepo appends email signups to a local ledger.
type SignupRepo interface {
	Append(ctx context.Context, data SignupData) error
}
