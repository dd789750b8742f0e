package questions

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/willowed/persona/internal/catalog"
	"github.com/willowed/persona/internal/quiz"
	"github.com/willowed/persona/internal/ui/components"
	"github.com/willowed/persona/internal/ui/theme"
)

func (s *QuestionsScreen) View(width, height int) string {
	q := s.state.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Progress over answered questions.
	bar := components.NewStepProgress(s.state.Index, len(s.state.Questions), width-8)
	b.WriteString("    " + bar.View())
	b.WriteString("\n\n")

	b.WriteString(s.renderOptions(*q))

	b.WriteString("\n")
	b.WriteString(s.renderInstruction(width, *q))

	if s.warning != "" {
		b.WriteString("\n\n")
		warnLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Warning.Render(s.warning))
		b.WriteString(warnLine)
	}

	return b.String()
}

func (s *QuestionsScreen) renderOptions(q catalog.Question) string {
	texts := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		texts = append(texts, opt.Text)
	}

	list := components.NewRankedList(q.Text, texts)
	list.Cursor = s.cursor
	for _, id := range s.state.Selected {
		for i, opt := range q.Options {
			if opt.OptionID == id {
				list.Selected = append(list.Selected, i)
			}
		}
	}
	return list.View()
}

func (s *QuestionsScreen) renderInstruction(width int, q catalog.Question) string {
	var text string
	if quiz.MaxSelections(len(q.Options)) == 1 {
		text = "Pick the option that fits you best"
	} else {
		text = "Pick your top choice, then your second choice"
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(text)
}
