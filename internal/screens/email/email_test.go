package email

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/willowed/persona/internal/catalog"
	"github.com/willowed/persona/internal/gate"
	"github.com/willowed/persona/internal/quiz"
	"github.com/willowed/persona/internal/router"
	"github.com/willowed/persona/internal/screen"
	"github.com/willowed/persona/internal/store"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

// mockSubmitter implements gate.Submitter for testing.
type mockSubmitter struct {
	err      error
	received []gate.Submission
}

func (m *mockSubmitter) Submit(_ context.Context, sub gate.Submission) error {
	m.received = append(m.received, sub)
	return m.err
}

// mockCompletionRepo implements store.CompletionRepo for testing.
type mockCompletionRepo struct {
	saved *store.CompletionRecord
}

func (m *mockCompletionRepo) Save(_ context.Context, rec *store.CompletionRecord) error {
	m.saved = rec
	return nil
}
func (m *mockCompletionRepo) Load(context.Context) *store.CompletionRecord { return m.saved }
func (m *mockCompletionRepo) Clear(context.Context) error {
	m.saved = nil
	return nil
}

// mockSignupRepo implements store.SignupRepo for testing.
type mockSignupRepo struct {
	appended []store.SignupData
}

func (m *mockSignupRepo) Append(_ context.Context, data store.SignupData) error {
	m.appended = append(m.appended, data)
	return nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEmailScreen(sub *mockSubmitter) (*EmailScreen, *mockCompletionRepo, *mockSignupRepo) {
	state := quiz.NewSessionState(catalog.ActiveQuestions())
	quiz.Begin(state)
	state.ResultID = "Investigative_Openness"
	state.Result = catalog.ResolveType(state.ResultID)
	state.View = quiz.ViewEmail

	completions := &mockCompletionRepo{}
	signups := &mockSignupRepo{}
	s := New(state, sub, completions, signups, func(*quiz.SessionState) screen.Screen {
		return stubScreen{}
	})
	return s, completions, signups
}

func TestEmailScreen_EmptyEmailWarns(t *testing.T) {
	s, _, _ := testEmailScreen(&mockSubmitter{})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*EmailScreen)

	if es.errMsg != gate.ErrEmailRequired.Error() {
		t.Errorf("errMsg = %q, want %q", es.errMsg, gate.ErrEmailRequired.Error())
	}
	if es.submitting {
		t.Error("should not be submitting after a validation failure")
	}
}

func TestEmailScreen_InvalidEmailWarns(t *testing.T) {
	s, _, _ := testEmailScreen(&mockSubmitter{})
	s.input.Model.SetValue("not-an-email")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*EmailScreen)

	if es.errMsg != gate.ErrEmailInvalid.Error() {
		t.Errorf("errMsg = %q, want %q", es.errMsg, gate.ErrEmailInvalid.Error())
	}
}

func TestEmailScreen_SuccessfulSubmitRevealsResults(t *testing.T) {
	sub := &mockSubmitter{}
	s, completions, signups := testEmailScreen(sub)
	s.input.Model.SetValue("jordan@example.com")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*EmailScreen)
	if !es.submitting {
		t.Fatal("expected submitting state after enter")
	}
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	// Run the submit command and feed its message back.
	scr, cmd = es.Update(cmd())
	es = scr.(*EmailScreen)

	if len(sub.received) != 1 {
		t.Fatalf("submitter received %d submissions, want 1", len(sub.received))
	}
	got := sub.received[0]
	if got.Email != "jordan@example.com" || got.PersonalityTypeID != "Investigative_Openness" {
		t.Errorf("submission = %+v", got)
	}

	if completions.saved == nil {
		t.Fatal("expected completion to be saved")
	}
	if completions.saved.ResultID != "Investigative_Openness" {
		t.Errorf("saved ResultID = %q", completions.saved.ResultID)
	}
	if len(signups.appended) != 1 {
		t.Errorf("signup ledger has %d rows, want 1", len(signups.appended))
	}

	if es.state.View != quiz.ViewResults {
		t.Errorf("View = %v, want ViewResults", es.state.View)
	}
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the results screen")
	}
}

func TestEmailScreen_FailedSubmitStaysWithMessage(t *testing.T) {
	sub := &mockSubmitter{err: &gate.SubmitError{Message: "Failed to submit email. Please try again."}}
	s, completions, _ := testEmailScreen(sub)
	s.input.Model.SetValue("jordan@example.com")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*EmailScreen)

	scr, cmd = es.Update(cmd())
	es = scr.(*EmailScreen)

	if es.errMsg != "Failed to submit email. Please try again." {
		t.Errorf("errMsg = %q", es.errMsg)
	}
	if es.submitting {
		t.Error("expected submitting to be cleared")
	}
	if completions.saved != nil {
		t.Error("completion must not be saved on failure")
	}
	if es.state.View != quiz.ViewEmail {
		t.Errorf("View = %v, want ViewEmail", es.state.View)
	}
	if cmd != nil {
		t.Error("expected no navigation command on failure")
	}
}
