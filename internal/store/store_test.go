package store

import (
	"context"
	"testing"
	"time"

	"github.com/willowed/persona/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Fatalf("query pragma %s: %v", tt.pragma, err)
		}
		if got != tt.want {
			t.Errorf("pragma %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleCompletion() *CompletionRecord {
	return &CompletionRecord{
		ResultID: "Investigative_Openness",
		Answers: []quiz.Answer{
			{
				QuestionID: "q-free-time",
				Choices: []quiz.AnswerChoice{
					{OptionID: "q-free-time-a", Trait: "Investigative", Sign: 1, Rank: 1},
					{OptionID: "q-free-time-b", Trait: "Artistic", Sign: 1, Rank: 2},
				},
			},
			{
				QuestionID: "q-party",
				Choices: []quiz.AnswerChoice{
					{OptionID: "q-party-b", Trait: "Extraversion", Sign: -1, Rank: 1},
				},
			},
		},
		CompletedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestCompletionSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.CompletionRepo()
	ctx := context.Background()

	// Nothing saved yet.
	if got := repo.Load(ctx); got != nil {
		t.Fatalf("expected nil before save, got %+v", got)
	}

	rec := sampleCompletion()
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := repo.Load(ctx)
	if got == nil {
		t.Fatal("expected a record after save")
	}
	if got.ResultID != rec.ResultID {
		t.Errorf("ResultID = %q, want %q", got.ResultID, rec.ResultID)
	}
	if !got.CompletedAt.Equal(rec.CompletedAt) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, rec.CompletedAt)
	}
	if len(got.Answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(got.Answers))
	}
	first := got.Answers[0].Choices[0]
	if first.OptionID != "q-free-time-a" || first.Trait != "Investigative" || first.Rank != 1 {
		t.Errorf("first choice round-trip mismatch: %+v", first)
	}
	negated := got.Answers[1].Choices[0]
	if negated.Sign != -1 {
		t.Errorf("Sign = %d, want -1", negated.Sign)
	}
}

func TestCompletionSaveReplacesPrior(t *testing.T) {
	s := openTestStore(t)
	repo := s.CompletionRepo()
	ctx := context.Background()

	old := sampleCompletion()
	if err := repo.Save(ctx, old); err != nil {
		t.Fatalf("save old: %v", err)
	}

	replacement := sampleCompletion()
	replacement.ResultID = "Artistic_Extraversion"
	replacement.CompletedAt = old.CompletedAt.Add(time.Hour)
	if err := repo.Save(ctx, replacement); err != nil {
		t.Fatalf("save replacement: %v", err)
	}

	got := repo.Load(ctx)
	if got == nil {
		t.Fatal("expected a record")
	}
	if got.ResultID != "Artistic_Extraversion" {
		t.Errorf("ResultID = %q, want replacement", got.ResultID)
	}

	count, err := s.Client().Completion.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d completion rows, want 1", count)
	}
}

func TestCompletionClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.CompletionRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, sampleCompletion()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := repo.Load(ctx); got != nil {
		t.Fatalf("expected nil after clear, got %+v", got)
	}

	// Clearing an empty store is a no-op.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear empty: %v", err)
	}
}

func TestSignupAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.SignupRepo()
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		err := repo.Append(ctx, SignupData{
			Email:             email,
			PersonalityTypeID: "Investigative_Openness",
			SessionID:         "session-1",
		})
		if err != nil {
			t.Fatalf("append %s: %v", email, err)
		}
	}

	count, err := s.Client().SignupEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("got %d signup rows, want 2", count)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"completions", "signup_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s not found: %v", table, err)
		}
	}
}
