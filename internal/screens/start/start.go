// Package start implements the landing screen with the quiz intro and
// main menu.
package start

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/willowed/persona/internal/router"
	"github.com/willowed/persona/internal/screen"
	"github.com/willowed/persona/internal/ui/components"
	"github.com/willowed/persona/internal/ui/layout"
	"github.com/willowed/persona/internal/ui/theme"
)

const wordmark = `          _ _ _
__      _(_) | | _____      __
\ \ /\ / / | | |/ _ \ \ /\ / /
 \ V  V /| | | | (_) \ V  V /
  \_/\_/ |_|_|_|\___/ \_/\_/`

// StartScreen shows the quiz introduction and a navigation menu.
type StartScreen struct {
	menu     components.Menu
	hasSaved bool
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen. quizFactory produces the question flow
// and resultFactory the saved-result view; resultFactory is nil when
// no completed assessment exists.
func New(quizFactory func() screen.Screen, resultFactory func() screen.Screen) *StartScreen {
	items := []components.MenuItem{
		{
			Label: "Take the quiz",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: quizFactory()}
				}
			},
		},
	}
	if resultFactory != nil {
		items = append(items, components.MenuItem{
			Label: "View my result",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: resultFactory()}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &StartScreen{
		menu:     components.NewMenu(items),
		hasSaved: resultFactory != nil,
	}
}

func (s *StartScreen) Title() string {
	return "Personality Quiz"
}

func (s *StartScreen) Init() tea.Cmd {
	return nil
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *StartScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(wordmark))
	sections = append(sections, "")

	title := theme.Title.Render("Discover Your Personality Type")
	sections = append(sections, title)

	intro := theme.Subtitle.Render(
		"Answer a few quick questions about how you think,\n" +
			"work, and connect with people. Pick your top choice\n" +
			"and a runner-up where it applies.\n" +
			"There are no wrong answers!")
	sections = append(sections, intro)
	sections = append(sections, "")

	if s.hasSaved {
		note := theme.Hint.Render("You have a saved result from a previous run.")
		sections = append(sections, note)
		sections = append(sections, "")
	}

	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
