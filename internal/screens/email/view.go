package email

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/willowed/persona/internal/ui/components"
	"github.com/willowed/persona/internal/ui/theme"
)

func (s *EmailScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Your results are ready!"))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render(
		"Enter your email to see your personality type\n"+
			"and get your personalized report."))
	sections = append(sections, "")
	sections = append(sections, "Email: "+s.input.View())
	sections = append(sections, "")
	sections = append(sections, components.NewButton("See My Results", !s.submitting, nil).View())

	if s.submitting {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Submitting..."))
	}

	if s.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Warning.Render(s.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
