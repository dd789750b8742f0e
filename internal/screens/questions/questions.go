// Package questions implements the ranked-choice question flow.
package questions

import (
	"errors"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/willowed/persona/internal/quiz"
	"github.com/willowed/persona/internal/router"
	"github.com/willowed/persona/internal/screen"
	"github.com/willowed/persona/internal/ui/layout"
)

const (
	msgPickOne = "Please select at least one option."
	msgPickTwo = "Please select your top and second top option."
)

// QuestionsScreen walks the learner through each question, collecting
// ranked selections.
type QuestionsScreen struct {
	state        *quiz.SessionState
	emailFactory func(*quiz.SessionState) screen.Screen
	cursor       int
	warning      string
}

var _ screen.Screen = (*QuestionsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionsScreen)(nil)

// New creates a QuestionsScreen over a fresh session. emailFactory
// produces the email gate screen once the last question is answered.
func New(state *quiz.SessionState, emailFactory func(*quiz.SessionState) screen.Screen) *QuestionsScreen {
	return &QuestionsScreen{
		state:        state,
		emailFactory: emailFactory,
	}
}

func (s *QuestionsScreen) Title() string {
	return "Personality Quiz"
}

func (s *QuestionsScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Space", Description: "Pick"},
		{Key: "Enter", Description: "Next"},
	}
	if s.state.Index > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	return hints
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	q := s.state.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(q.Options)-1 {
			s.cursor++
		}
	case " ", "space":
		s.toggle(s.cursor)
	case "enter":
		return s.advance()
	case "left", "b":
		if s.state.Index > 0 {
			quiz.Previous(s.state)
			s.cursor = 0
			s.warning = ""
		}
	default:
		// Number keys toggle the matching option directly.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(q.Options) {
			s.toggle(n - 1)
		}
	}

	return s, nil
}

func (s *QuestionsScreen) toggle(idx int) {
	q := s.state.CurrentQuestion()
	if q == nil || idx < 0 || idx >= len(q.Options) {
		return
	}
	quiz.ToggleCurrent(s.state, q.Options[idx].OptionID)
	s.warning = ""
}

func (s *QuestionsScreen) advance() (screen.Screen, tea.Cmd) {
	wasLast := s.state.IsLastQuestion()

	if err := quiz.Next(s.state); err != nil {
		switch {
		case errors.Is(err, quiz.ErrNoSelection):
			s.warning = msgPickOne
		case errors.Is(err, quiz.ErrNeedSecondChoice):
			s.warning = msgPickTwo
		default:
			s.warning = err.Error()
		}
		return s, nil
	}

	s.warning = ""
	if wasLast {
		next := s.emailFactory(s.state)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	s.cursor = 0
	return s, nil
}
