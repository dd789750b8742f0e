// Package app wires the screens, storage, and signup gate into the
// root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/willowed/persona/internal/catalog"
	"github.com/willowed/persona/internal/gate"
	"github.com/willowed/persona/internal/quiz"
	"github.com/willowed/persona/internal/router"
	"github.com/willowed/persona/internal/screen"
	"github.com/willowed/persona/internal/screens/email"
	"github.com/willowed/persona/internal/screens/questions"
	"github.com/willowed/persona/internal/screens/results"
	"github.com/willowed/persona/internal/screens/start"
	"github.com/willowed/persona/internal/store"
	"github.com/willowed/persona/internal/ui/layout"
	"github.com/willowed/persona/internal/ui/theme"
)

// Options holds the external dependencies of the application.
type Options struct {
	Completions store.CompletionRepo
	Signups     store.SignupRepo
	Submitter   gate.Submitter
}

// restoredMsg carries the saved completion loaded at startup, if any.
type restoredMsg struct {
	Record *store.CompletionRecord
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
	loaded bool
}

// NewAppModel creates the root model. The initial screen is decided
// once the saved completion (if any) has been loaded.
func NewAppModel(opts Options) AppModel {
	return AppModel{opts: opts}
}

func (m AppModel) Init() tea.Cmd {
	return func() tea.Msg {
		var rec *store.CompletionRecord
		if m.opts.Completions != nil {
			rec = m.opts.Completions.Load(context.Background())
		}
		return restoredMsg{Record: rec}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case restoredMsg:
		m.loaded = true
		if msg.Record != nil {
			// A completed assessment goes straight to its report.
			m.router = router.New(m.savedResultScreen(msg.Record))
		} else {
			m.router = router.New(m.startScreen())
		}
		return m, m.router.Active().Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.router == nil {
		return m, nil
	}
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if !m.loaded || m.router == nil {
		loading := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading..."))
		v.SetContent(loading)
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, 0, 0, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// startScreen builds the landing screen with its menu wired to the
// quiz flow and, when a completion exists, the saved-result view.
func (m AppModel) startScreen() screen.Screen {
	var resultFactory func() screen.Screen
	if m.opts.Completions != nil {
		if rec := m.opts.Completions.Load(context.Background()); rec != nil {
			resultFactory = func() screen.Screen {
				return m.savedResultScreen(rec)
			}
		}
	}
	return start.New(m.quizScreen, resultFactory)
}

// quizScreen starts a fresh session over the active question set.
func (m AppModel) quizScreen() screen.Screen {
	state := quiz.NewSessionState(catalog.ActiveQuestions())
	quiz.Begin(state)
	return questions.New(state, m.emailScreen)
}

func (m AppModel) emailScreen(state *quiz.SessionState) screen.Screen {
	return email.New(state, m.opts.Submitter, m.opts.Completions, m.opts.Signups, m.resultsScreen)
}

func (m AppModel) resultsScreen(state *quiz.SessionState) screen.Screen {
	return results.New(state, m.opts.Completions, m.startScreen)
}

// savedResultScreen rebuilds a session from a stored completion and
// shows its report directly.
func (m AppModel) savedResultScreen(rec *store.CompletionRecord) screen.Screen {
	state := quiz.NewSessionState(catalog.ActiveQuestions())
	quiz.Restore(state, rec.ResultID, rec.Answers)
	return results.New(state, m.opts.Completions, m.startScreen)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(NewAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
