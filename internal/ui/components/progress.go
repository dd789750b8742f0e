package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/willowed/persona/internal/ui/theme"
)

// StepProgress displays quiz progress as one segment per question.
// Segments up to and including Current render filled.
type StepProgress struct {
	Current int
	Total   int
	Width   int
}

// NewStepProgress creates a progress bar for step Current of Total.
func NewStepProgress(current, total, width int) StepProgress {
	return StepProgress{Current: current, Total: total, Width: width}
}

// View renders the segmented bar.
func (p StepProgress) View() string {
	if p.Total <= 0 {
		return ""
	}

	const gap = 1
	segWidth := (p.Width - gap*(p.Total-1)) / p.Total
	if segWidth < 1 {
		segWidth = 1
	}

	filled := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", segWidth))
	empty := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", segWidth))

	segments := make([]string, 0, p.Total)
	for i := 0; i < p.Total; i++ {
		if i < p.Current {
			segments = append(segments, filled)
		} else {
			segments = append(segments, empty)
		}
	}
	return strings.Join(segments, strings.Repeat(" ", gap))
}
