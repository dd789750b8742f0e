package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/willowed/persona/internal/catalog"
	"github.com/willowed/persona/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	s.height = height

	rt := s.state.Result
	if rt == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("No result available."))
	}

	report := renderReport(rt, width)
	lines := strings.Split(report, "\n")

	// Clamp the scroll offset so the last page stays full.
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}

	end := s.offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.offset:end], "\n")
}

func renderReport(rt *catalog.PersonalityType, width int) string {
	var b strings.Builder

	heading := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true)
	sub := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim)
	body := lipgloss.NewStyle().
		Width(width - 8).
		Foreground(theme.Text)

	b.WriteString("\n")
	b.WriteString(heading.Render("You are " + rt.Title))
	b.WriteString("\n")
	b.WriteString(sub.Render(rt.ID))
	b.WriteString("\n\n")
	b.WriteString(indent(body.Render(rt.ShortDescription)))
	b.WriteString("\n")

	if powers := catalog.ParseSuperpowers(rt.Superpowers); len(powers) > 0 {
		b.WriteString(sectionTitle("Your Superpowers"))
		for _, p := range powers {
			b.WriteString(bulletEntry(p, width))
		}
	}

	if rt.WorkStyle != "" {
		b.WriteString(sectionTitle("How You Work"))
		b.WriteString(indent(body.Render(rt.WorkStyle)))
		b.WriteString("\n")
	}

	if len(rt.PersonalGoals) > 0 {
		b.WriteString(sectionTitle("Personal Goals"))
		for _, g := range rt.PersonalGoals {
			b.WriteString(bulletEntry(g, width))
		}
	}

	if len(rt.StudyTips) > 0 {
		b.WriteString(sectionTitle("Study Tips"))
		for _, tip := range rt.StudyTips {
			b.WriteString(bulletEntry(tip, width))
		}
	}

	if rt.RelationshipTips != "" {
		b.WriteString(sectionTitle("Relationships"))
		b.WriteString(indent(body.Render(rt.RelationshipTips)))
		b.WriteString("\n")
	}

	if len(rt.RecommendedCareers) > 0 {
		b.WriteString(sectionTitle("Careers to Explore"))
		if rt.RecommendedCareersOpening != "" {
			b.WriteString(indent(body.Render(rt.RecommendedCareersOpening)))
			b.WriteString("\n\n")
		}
		for _, c := range rt.RecommendedCareers {
			title := theme.Selected.Render(c.Title) +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ("+c.OnetCode+")")
			b.WriteString(indent(title))
			b.WriteString("\n")
			b.WriteString(indent(body.Render(c.Description)))
			b.WriteString("\n\n")
		}
	}

	if len(rt.PossibleMajors) > 0 {
		b.WriteString(sectionTitle("Possible Majors"))
		for _, m := range rt.PossibleMajors {
			b.WriteString(indent(theme.Selected.Render(m.Title)))
			b.WriteString("\n")
			b.WriteString(indent(body.Render(m.Description)))
			b.WriteString("\n\n")
		}
	}

	if len(rt.InspirationalQuotes) > 0 {
		b.WriteString(sectionTitle("Words to Live By"))
		for _, q := range rt.InspirationalQuotes {
			quote := lipgloss.NewStyle().
				Width(width - 8).
				Foreground(theme.Text).
				Italic(true).
				Render(fmt.Sprintf("%q", q.Quote))
			b.WriteString(indent(quote))
			b.WriteString("\n")
			attribution := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("— " + q.Name + ", " + q.Description)
			b.WriteString(indent(attribution))
			b.WriteString("\n\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}

func sectionTitle(title string) string {
	return "\n" + indent(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(title)) + "\n\n"
}

func bulletEntry(entry string, width int) string {
	title, rest := catalog.SplitEntry(entry)
	line := lipgloss.NewStyle().Foreground(theme.Secondary).Render("• ") +
		theme.Selected.Render(title)
	if rest != "" {
		line += lipgloss.NewStyle().
			Width(width - 12).
			Foreground(theme.Text).
			Render(": " + rest)
	}
	return indent(line) + "\n"
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
