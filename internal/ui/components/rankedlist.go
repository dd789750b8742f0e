package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/willowed/persona/internal/ui/theme"
)

// RankedList is a ranked-choice selector. Options are toggled on and
// off and the resulting pick order carries meaning, so selected rows
// show a 1st or 2nd badge rather than a plain checkmark.
type RankedList struct {
	Prompt  string
	Options []string
	// Selected holds picked option indexes in pick order.
	Selected []int
	Cursor   int
}

// NewRankedList creates a ranked-choice list.
func NewRankedList(prompt string, options []string) RankedList {
	return RankedList{
		Prompt:  prompt,
		Options: options,
	}
}

// Init returns nil.
func (l RankedList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Toggling is left to the caller
// since the replacement rule depends on the option count.
func (l RankedList) Update(msg tea.Msg) (RankedList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	}

	return l, nil
}

// rankOf returns the 1-based pick rank of option i, or 0.
func (l RankedList) rankOf(i int) int {
	for pos, idx := range l.Selected {
		if idx == i {
			return pos + 1
		}
	}
	return 0
}

// View renders the list with cursor and rank badges.
func (l RankedList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(l.Prompt) + "\n\n"

	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}

		badge := "     "
		switch l.rankOf(i) {
		case 1:
			badge = theme.RankFirst.Render("[1st]")
		case 2:
			badge = theme.RankSecond.Render("[2nd]")
		}

		line := fmt.Sprintf("%s%s %d)  %s", prefix, badge, i+1, opt)

		switch {
		case l.rankOf(i) > 0:
			s += theme.Selected.Render(line) + "\n"
		case i == l.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
