// Package results renders the personality report for a completed
// assessment.
package results

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/willowed/persona/internal/quiz"
	"github.com/willowed/persona/internal/router"
	"github.com/willowed/persona/internal/screen"
	"github.com/willowed/persona/internal/store"
	"github.com/willowed/persona/internal/ui/layout"
)

// ResultsScreen shows the full report with keyboard scrolling.
type ResultsScreen struct {
	state        *quiz.SessionState
	completions  store.CompletionRepo
	startFactory func() screen.Screen

	offset int
	height int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. startFactory produces the landing
// screen used when the learner retakes the quiz.
func New(state *quiz.SessionState, completions store.CompletionRepo, startFactory func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		state:        state,
		completions:  completions,
		startFactory: startFactory,
	}
}

func (s *ResultsScreen) Title() string {
	if s.state.Result != nil {
		return s.state.Result.Title
	}
	return "Your Result"
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "R", Description: "Retake quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	case "pgup":
		s.offset -= s.height / 2
		if s.offset < 0 {
			s.offset = 0
		}
	case "pgdown":
		s.offset += s.height / 2
	case "g", "home":
		s.offset = 0
	case "r", "R":
		return s.retake()
	}

	return s, nil
}

// retake clears the saved completion and restarts the flow.
func (s *ResultsScreen) retake() (screen.Screen, tea.Cmd) {
	if s.completions != nil {
		_ = s.completions.Clear(context.Background())
	}
	quiz.Retake(s.state)

	next := s.startFactory()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
