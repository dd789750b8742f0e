// Package email implements the gate between finishing the quiz and
// seeing the computed result.
package email

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/willowed/persona/internal/gate"
	"github.com/willowed/persona/internal/quiz"
	"github.com/willowed/persona/internal/router"
	"github.com/willowed/persona/internal/screen"
	"github.com/willowed/persona/internal/store"
	"github.com/willowed/persona/internal/ui/components"
	"github.com/willowed/persona/internal/ui/layout"
)

// submitDoneMsg is sent when the signup submission finishes.
type submitDoneMsg struct {
	Err error
}

// EmailScreen collects an email address before revealing the result.
type EmailScreen struct {
	state          *quiz.SessionState
	submitter      gate.Submitter
	completions    store.CompletionRepo
	signups        store.SignupRepo
	resultsFactory func(*quiz.SessionState) screen.Screen

	input      components.TextInput
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*EmailScreen)(nil)
var _ screen.KeyHintProvider = (*EmailScreen)(nil)

// New creates an EmailScreen for a session whose result has been
// computed. signups may be nil; the local ledger is best-effort.
func New(
	state *quiz.SessionState,
	submitter gate.Submitter,
	completions store.CompletionRepo,
	signups store.SignupRepo,
	resultsFactory func(*quiz.SessionState) screen.Screen,
) *EmailScreen {
	return &EmailScreen{
		state:          state,
		submitter:      submitter,
		completions:    completions,
		signups:        signups,
		resultsFactory: resultsFactory,
		input:          components.NewTextInput("you@example.com", 254),
	}
}

func (s *EmailScreen) Title() string {
	return "Almost There"
}

func (s *EmailScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *EmailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "See my result"},
	}
}

func (s *EmailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		if msg.String() == "enter" {
			return s.submit()
		}
	}

	if s.submitting {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *EmailScreen) submit() (screen.Screen, tea.Cmd) {
	addr := strings.TrimSpace(s.input.Value())
	if err := gate.ValidateEmail(addr); err != nil {
		s.errMsg = err.Error()
		s.input.Submit(false)
		return s, nil
	}

	s.errMsg = ""
	s.submitting = true
	s.input.Submit(true)

	sub := gate.Submission{
		Email:             addr,
		PersonalityTypeID: s.state.ResultID,
	}
	return s, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		return submitDoneMsg{Err: s.submitter.Submit(ctx, sub)}
	}
}

func (s *EmailScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false

	if msg.Err != nil {
		var subErr *gate.SubmitError
		if errors.As(msg.Err, &subErr) {
			s.errMsg = subErr.Message
		} else {
			s.errMsg = msg.Err.Error()
		}
		s.input.Reset()
		return s, nil
	}

	ctx := context.Background()
	addr := strings.TrimSpace(s.input.Value())

	// Local ledger and completion save are best-effort; a write
	// failure must not block the reveal.
	if s.signups != nil {
		_ = s.signups.Append(ctx, store.SignupData{
			Email:             addr,
			PersonalityTypeID: s.state.ResultID,
			SessionID:         s.state.SessionID,
		})
	}
	if s.completions != nil {
		_ = s.completions.Save(ctx, &store.CompletionRecord{
			ResultID:    s.state.ResultID,
			Answers:     s.state.Answers,
			CompletedAt: time.Now(),
		})
	}

	quiz.Reveal(s.state)
	next := s.resultsFactory(s.state)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
