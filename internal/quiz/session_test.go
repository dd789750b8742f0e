package quiz

import (
	"testing"

	"github.com/willowed/persona/internal/catalog"
)

// sessionQuestions builds a three-question quiz: two ranked questions and a
// final either/or question.
func sessionQuestions() []catalog.Question {
	return []catalog.Question{
		{
			ID: "q1",
			Options: []catalog.Option{
				{OptionID: "q1-a", Alignment: "Investigative"},
				{OptionID: "q1-b", Alignment: "Artistic"},
				{OptionID: "q1-c", Alignment: "Social"},
			},
		},
		{
			ID: "q2",
			Options: []catalog.Option{
				{OptionID: "q2-a", Alignment: "Openness"},
				{OptionID: "q2-b", Alignment: "Conscientiousness"},
				{OptionID: "q2-c", Alignment: "Extraversion"},
			},
		},
		{
			ID: "q3",
			Options: []catalog.Option{
				{OptionID: "q3-a", Alignment: "Extraversion"},
				{OptionID: "q3-b", Alignment: "Introversion, low Extraversion"},
			},
		},
	}
}

func answeredSession(t *testing.T) *SessionState {
	t.Helper()
	s := NewSessionState(sessionQuestions())
	Begin(s)

	ToggleCurrent(s, "q1-a")
	ToggleCurrent(s, "q1-b")
	if err := Next(s); err != nil {
		t.Fatalf("next q1: %v", err)
	}
	ToggleCurrent(s, "q2-a")
	ToggleCurrent(s, "q2-b")
	if err := Next(s); err != nil {
		t.Fatalf("next q2: %v", err)
	}
	return s
}

func TestBeginResetsState(t *testing.T) {
	s := NewSessionState(sessionQuestions())
	s.Index = 2
	s.Answers = []Answer{{QuestionID: "stale"}}

	Begin(s)

	if s.View != ViewQuestions {
		t.Errorf("view = %v, want ViewQuestions", s.View)
	}
	if s.Index != 0 || len(s.Answers) != 0 || len(s.Selected) != 0 {
		t.Errorf("begin did not reset: index=%d answers=%d selected=%d", s.Index, len(s.Answers), len(s.Selected))
	}
	if s.SessionID == "" {
		t.Error("expected a session id")
	}
}

func TestNextValidation(t *testing.T) {
	s := NewSessionState(sessionQuestions())
	Begin(s)

	if err := Next(s); err != ErrNoSelection {
		t.Errorf("next with no selection: %v, want ErrNoSelection", err)
	}
	ToggleCurrent(s, "q1-a")
	if err := Next(s); err != ErrNeedSecondChoice {
		t.Errorf("next with one pick: %v, want ErrNeedSecondChoice", err)
	}
	if s.Index != 0 {
		t.Errorf("failed next moved the index to %d", s.Index)
	}
}

func TestPreviousReloadsRecordedSelection(t *testing.T) {
	s := answeredSession(t) // now at q3

	Previous(s)
	if s.Index != 1 {
		t.Fatalf("index = %d, want 1", s.Index)
	}
	if len(s.Selected) != 2 || s.Selected[0] != "q2-a" || s.Selected[1] != "q2-b" {
		t.Errorf("reloaded selection = %v, want [q2-a q2-b]", s.Selected)
	}

	// Later answers are kept.
	if len(s.Answers) != 2 {
		t.Errorf("answers dropped on previous: %d", len(s.Answers))
	}

	Previous(s)
	Previous(s) // at index 0; extra previous is a no-op
	if s.Index != 0 {
		t.Errorf("index = %d, want 0", s.Index)
	}
}

func TestReanswerReplacesPriorAnswer(t *testing.T) {
	s := answeredSession(t)

	Previous(s) // back to q2
	ToggleCurrent(s, "q2-a") // deselect
	ToggleCurrent(s, "q2-c")
	if err := Next(s); err != nil {
		t.Fatalf("re-answer q2: %v", err)
	}

	var q2 *Answer
	for i := range s.Answers {
		if s.Answers[i].QuestionID == "q2" {
			if q2 != nil {
				t.Fatal("duplicate answer for q2")
			}
			q2 = &s.Answers[i]
		}
	}
	if q2 == nil {
		t.Fatal("no answer for q2")
	}
	if q2.Choices[0].OptionID != "q2-b" || q2.Choices[1].OptionID != "q2-c" {
		t.Errorf("replaced answer = %+v, want picks q2-b, q2-c", q2.Choices)
	}
}

func TestFinalNextComputesResultAndGatesReveal(t *testing.T) {
	s := answeredSession(t)

	ToggleCurrent(s, "q3-b")
	if err := Next(s); err != nil {
		t.Fatalf("final next: %v", err)
	}

	if s.View != ViewEmail {
		t.Errorf("view = %v, want ViewEmail (result gated behind email capture)", s.View)
	}
	if s.ResultID == "" || s.Result == nil {
		t.Fatal("result not computed on final next")
	}
	if s.Result.ID != s.ResultID {
		t.Errorf("result record %q does not match id %q", s.Result.ID, s.ResultID)
	}

	// q1: Investigative 3, Artistic 1. q2: Openness 3, Conscientiousness 1.
	// q3: Extraversion -3. Best product is Investigative x Openness = 9.
	if s.ResultID != "Investigative_Openness" {
		t.Errorf("result id = %q, want Investigative_Openness", s.ResultID)
	}

	Reveal(s)
	if s.View != ViewResults {
		t.Errorf("view after reveal = %v, want ViewResults", s.View)
	}
}

func TestRetakeClearsSession(t *testing.T) {
	s := answeredSession(t)
	ToggleCurrent(s, "q3-a")
	if err := Next(s); err != nil {
		t.Fatalf("final next: %v", err)
	}
	Reveal(s)

	Retake(s)

	if s.View != ViewStart {
		t.Errorf("view = %v, want ViewStart", s.View)
	}
	if s.Result != nil || s.ResultID != "" || len(s.Answers) != 0 || s.SessionID != "" {
		t.Error("retake left session state behind")
	}
}

func TestRestoreEntersResultsDirectly(t *testing.T) {
	answers := []Answer{{QuestionID: "q1", Choices: []AnswerChoice{{OptionID: "q1-a", Trait: "Investigative", Sign: 1, Rank: 1}}}}
	s := NewSessionState(sessionQuestions())

	Restore(s, "Social_Agreeableness", answers)

	if s.View != ViewResults {
		t.Errorf("view = %v, want ViewResults", s.View)
	}
	if s.Result == nil || s.Result.ID != "Social_Agreeableness" {
		t.Errorf("restored result = %+v, want Social_Agreeableness record", s.Result)
	}
	if len(s.Answers) != 1 {
		t.Errorf("restored answers = %d, want 1", len(s.Answers))
	}
}

func TestRestoreStaleIDFallsBack(t *testing.T) {
	s := NewSessionState(sessionQuestions())
	Restore(s, "Retired_Type", nil)

	if s.Result == nil {
		t.Fatal("expected fallback result")
	}
	if s.Result.ID != catalog.FallbackType().ID {
		t.Errorf("fallback result = %q, want %q", s.Result.ID, catalog.FallbackType().ID)
	}
	if s.View != ViewResults {
		t.Errorf("view = %v, want ViewResults", s.View)
	}
}
