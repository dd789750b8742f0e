package questions

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/willowed/persona/internal/catalog"
	"github.com/willowed/persona/internal/quiz"
	"github.com/willowed/persona/internal/router"
	"github.com/willowed/persona/internal/screen"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                          { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                   { return "" }
func (stubScreen) Title() string                          { return "stub" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestionsScreen() (*QuestionsScreen, *int) {
	state := quiz.NewSessionState(catalog.ActiveQuestions())
	quiz.Begin(state)

	emailBuilds := 0
	s := New(state, func(*quiz.SessionState) screen.Screen {
		emailBuilds++
		return stubScreen{}
	})
	return s, &emailBuilds
}

func TestQuestionsScreen_ToggleWithNumberKey(t *testing.T) {
	s, _ := testQuestionsScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuestionsScreen)

	q := qs.state.CurrentQuestion()
	if len(qs.state.Selected) != 1 || qs.state.Selected[0] != q.Options[0].OptionID {
		t.Errorf("Selected = %v, want first option", qs.state.Selected)
	}
}

func TestQuestionsScreen_ToggleWithSpace(t *testing.T) {
	s, _ := testQuestionsScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(keyPress(' '))
	qs := scr.(*QuestionsScreen)

	q := qs.state.CurrentQuestion()
	if len(qs.state.Selected) != 1 || qs.state.Selected[0] != q.Options[1].OptionID {
		t.Errorf("Selected = %v, want second option", qs.state.Selected)
	}
}

func TestQuestionsScreen_EnterWithoutSelectionWarns(t *testing.T) {
	s, _ := testQuestionsScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionsScreen)

	if qs.warning != msgPickOne {
		t.Errorf("warning = %q, want %q", qs.warning, msgPickOne)
	}
	if qs.state.Index != 0 {
		t.Errorf("Index = %d, want 0", qs.state.Index)
	}
}

func TestQuestionsScreen_EnterWithOnePickOnMultiOptionWarns(t *testing.T) {
	s, _ := testQuestionsScreen()
	if got := quiz.MaxSelections(len(s.state.CurrentQuestion().Options)); got != 2 {
		t.Fatalf("fixture question cap = %d, want 2", got)
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionsScreen)

	if qs.warning != msgPickTwo {
		t.Errorf("warning = %q, want %q", qs.warning, msgPickTwo)
	}
}

func TestQuestionsScreen_ValidAdvanceClearsWarningAndCursor(t *testing.T) {
	s, _ := testQuestionsScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // warn first
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionsScreen)

	if qs.state.Index != 1 {
		t.Fatalf("Index = %d, want 1", qs.state.Index)
	}
	if qs.warning != "" {
		t.Errorf("warning = %q, want empty", qs.warning)
	}
	if qs.cursor != 0 {
		t.Errorf("cursor = %d, want 0", qs.cursor)
	}
}

func TestQuestionsScreen_BackReloadsRecordedSelection(t *testing.T) {
	s, _ := testQuestionsScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyLeft))
	qs := scr.(*QuestionsScreen)

	if qs.state.Index != 0 {
		t.Fatalf("Index = %d, want 0", qs.state.Index)
	}
	if len(qs.state.Selected) != 2 {
		t.Errorf("Selected = %v, want recorded picks restored", qs.state.Selected)
	}
}

func TestQuestionsScreen_LastQuestionTransitionsToEmail(t *testing.T) {
	s, emailBuilds := testQuestionsScreen()

	var scr screen.Screen = s
	var cmd tea.Cmd
	for !s.state.IsLastQuestion() {
		scr, _ = scr.Update(keyPress('1'))
		q := s.state.CurrentQuestion()
		if quiz.MaxSelections(len(q.Options)) == 2 {
			scr, _ = scr.Update(keyPress('2'))
		}
		scr, cmd = scr.Update(specialKey(tea.KeyEnter))
	}

	// Answer the final question.
	scr, _ = scr.Update(keyPress('1'))
	if quiz.MaxSelections(len(s.state.CurrentQuestion().Options)) == 2 {
		scr, _ = scr.Update(keyPress('2'))
	}
	_, cmd = scr.Update(specialKey(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected a navigation command after the last answer")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *emailBuilds != 1 {
		t.Errorf("email screen built %d times, want 1", *emailBuilds)
	}
	if s.state.View != quiz.ViewEmail {
		t.Errorf("View = %v, want ViewEmail", s.state.View)
	}
	if s.state.ResultID == "" {
		t.Error("expected a computed result id")
	}
}
