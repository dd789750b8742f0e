package quiz

import (
	"github.com/google/uuid"

	"github.com/willowed/persona/internal/catalog"
)

// View identifies which stage of the quiz the session is in.
type View int

const (
	ViewStart View = iota
	ViewQuestions
	ViewEmail
	ViewResults
)

// SessionState tracks one quiz run: the current view, position, working
// selection, accumulated answers, and the computed result. Answers live
// only in memory until the session reaches results.
type SessionState struct {
	// SessionID is a fresh UUID assigned when the quiz begins.
	SessionID string

	// View is the current state machine view.
	View View

	// Questions is the serving order, fixed at construction.
	Questions []catalog.Question

	// Index is the current question position.
	Index int

	// Selected is the working (unsubmitted) selection for the current
	// question, in pick order.
	Selected []string

	// Answers holds one recorded Answer per answered question.
	Answers []Answer

	// ResultID and Result are set when the final question is submitted.
	// The result is computed before the email gate but not revealed
	// until the gate passes.
	ResultID string
	Result   *catalog.PersonalityType
}

// NewSessionState creates a session at the start view.
func NewSessionState(questions []catalog.Question) *SessionState {
	return &SessionState{
		View:      ViewStart,
		Questions: questions,
	}
}

// CurrentQuestion returns the question at the current index, or nil when out
// of range.
func (s *SessionState) CurrentQuestion() *catalog.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// IsLastQuestion reports whether the current question is the final one.
func (s *SessionState) IsLastQuestion() bool {
	return s.Index == len(s.Questions)-1
}

// Begin transitions start -> questions: position zero, answers cleared,
// fresh session id.
func Begin(s *SessionState) {
	s.SessionID = uuid.New().String()
	s.View = ViewQuestions
	s.Index = 0
	s.Selected = nil
	s.Answers = nil
	s.ResultID = ""
	s.Result = nil
}

// ToggleCurrent applies a selection tap on the current question.
func ToggleCurrent(s *SessionState, optionID string) {
	q := s.CurrentQuestion()
	if q == nil {
		return
	}
	s.Selected = Toggle(s.Selected, optionID, MaxSelections(len(q.Options)))
}

// Next records the working selection as the current question's answer and
// advances. On a non-final question it moves to the next question, reloading
// any previously recorded selection. On the final question it computes the
// result and transitions to the email gate without revealing it.
// Validation errors leave the session untouched.
func Next(s *SessionState) error {
	q := s.CurrentQuestion()
	if q == nil {
		return nil
	}

	answer, err := BuildAnswer(*q, s.Selected)
	if err != nil {
		return err
	}
	upsertAnswer(s, answer)

	if s.IsLastQuestion() {
		s.ResultID = Evaluate(s.Answers)
		s.Result = catalog.ResolveType(s.ResultID)
		s.View = ViewEmail
		return nil
	}

	s.Index++
	s.Selected = recordedSelection(s, s.Questions[s.Index].ID)
	return nil
}

// Previous steps back one question and reloads its recorded selection.
// Answers already recorded for later questions are kept.
func Previous(s *SessionState) {
	if s.Index == 0 {
		return
	}
	s.Index--
	s.Selected = recordedSelection(s, s.Questions[s.Index].ID)
}

// Reveal transitions email -> results. Call only after the external
// email-gate validation succeeds.
func Reveal(s *SessionState) {
	s.View = ViewResults
}

// Retake clears all in-memory session state and returns to start. Durable
// state is the caller's responsibility.
func Retake(s *SessionState) {
	s.SessionID = ""
	s.View = ViewStart
	s.Index = 0
	s.Selected = nil
	s.Answers = nil
	s.ResultID = ""
	s.Result = nil
}

// Restore places the session directly into results from a persisted
// completion, re-resolving the result id against the current catalog.
// A resumed session never re-asks questions.
func Restore(s *SessionState, resultID string, answers []Answer) {
	s.View = ViewResults
	s.Answers = answers
	s.ResultID = resultID
	s.Result = catalog.ResolveType(resultID)
}

// upsertAnswer replaces any prior answer for the same question id.
func upsertAnswer(s *SessionState, answer Answer) {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == answer.QuestionID {
			s.Answers[i] = answer
			return
		}
	}
	s.Answers = append(s.Answers, answer)
}

// recordedSelection returns the pick order previously recorded for a
// question, or nil if it has not been answered.
func recordedSelection(s *SessionState, questionID string) []string {
	for _, a := range s.Answers {
		if a.QuestionID != questionID {
			continue
		}
		out := make([]string, len(a.Choices))
		for i, c := range a.Choices {
			out[i] = c.OptionID
		}
		return out
	}
	return nil
}
