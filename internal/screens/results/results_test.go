package results

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/willowed/persona/internal/catalog"
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

// mockCompletionRepo implements store.CompletionRepo for testing.
type mockCompletionRepo struct {
	saved   *store.CompletionRecord
	cleared bool
}

func (m *mockCompletionRepo) Save(_ context.Context, rec *store.CompletionRecord) error {
	m.saved = rec
	return nil
}
func (m *mockCompletionRepo) Load(context.Context) *store.CompletionRecord { return m.saved }
func (m *mockCompletionRepo) Clear(context.Context) error {
	m.saved = nil
	m.cleared = true
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testResultsScreen() (*ResultsScreen, *mockCompletionRepo) {
	state := quiz.NewSessionState(catalog.ActiveQuestions())
	state.ResultID = "Artistic_Extraversion"
	state.Result = catalog.ResolveType(state.ResultID)
	state.View = quiz.ViewResults

	repo := &mockCompletionRepo{saved: &store.CompletionRecord{ResultID: state.ResultID}}
	s := New(state, repo, func() screen.Screen { return stubScreen{} })
	return s, repo
}

func TestResultsScreen_ViewShowsReport(t *testing.T) {
	s, _ := testResultsScreen()
	view := s.View(100, 400)

	rt := s.state.Result
	if !strings.Contains(view, rt.Title) {
		t.Errorf("view missing type title %q", rt.Title)
	}
	for _, section := range []string{"Your Superpowers", "Careers to Explore", "Possible Majors"} {
		if !strings.Contains(view, section) {
			t.Errorf("view missing section %q", section)
		}
	}
}

func TestResultsScreen_ScrollClamping(t *testing.T) {
	s, _ := testResultsScreen()

	// Scrolling up at the top stays put.
	var scr screen.Screen = s
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	rs := scr.(*ResultsScreen)
	if rs.offset != 0 {
		t.Errorf("offset = %d, want 0", rs.offset)
	}

	// A huge downward scroll is clamped on render.
	for i := 0; i < 10000; i++ {
		scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	rs = scr.(*ResultsScreen)
	view := rs.View(100, 24)
	if view == "" {
		t.Error("expected non-empty view after over-scroll")
	}
	lines := strings.Split(view, "\n")
	if len(lines) > 24 {
		t.Errorf("view has %d lines, want at most 24", len(lines))
	}
}

func TestResultsScreen_RetakeClearsAndRestarts(t *testing.T) {
	s, repo := testResultsScreen()

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('r'))

	if !repo.cleared {
		t.Error("expected saved completion to be cleared")
	}
	if s.state.View != quiz.ViewStart {
		t.Errorf("View = %v, want ViewStart", s.state.View)
	}
	if s.state.ResultID != "" || len(s.state.Answers) != 0 {
		t.Error("expected session state to be reset")
	}
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the start screen")
	}
}
