package quiz

import (
	"errors"

	"github.com/willowed/persona/internal/catalog"
)

// Validation failures surfaced inline by the questions screen.
var (
	// ErrNoSelection is returned when Next is attempted with nothing selected.
	ErrNoSelection = errors.New("no option selected")

	// ErrNeedSecondChoice is returned when a two-pick question has only one
	// selection.
	ErrNeedSecondChoice = errors.New("second choice required")
)

// MaxSelections returns the selection cap for a question with the given
// option count: questions with exactly 2 options take a single pick,
// everything else takes a top and a second pick.
func MaxSelections(optionCount int) int {
	if optionCount == 2 {
		return 1
	}
	return 2
}

// Toggle applies a single selection tap to an ordered selection list and
// returns the new list. Selection order encodes rank.
//
//   - Tapping a selected option deselects it.
//   - Tapping a new option under the cap appends it.
//   - Tapping a new option at the cap replaces the most recent pick; the
//     first pick is always retained.
func Toggle(selected []string, optionID string, cap int) []string {
	for i, id := range selected {
		if id == optionID {
			out := make([]string, 0, len(selected)-1)
			out = append(out, selected[:i]...)
			out = append(out, selected[i+1:]...)
			return out
		}
	}

	if len(selected) >= cap {
		out := make([]string, 0, cap)
		out = append(out, selected[:cap-1]...)
		out = append(out, optionID)
		return out
	}

	out := make([]string, 0, len(selected)+1)
	out = append(out, selected...)
	out = append(out, optionID)
	return out
}

// BuildAnswer converts an ordered selection into an Answer for the question,
// validating completeness first. Ranks follow selection order (1, then 2),
// and each choice carries its option's normalized trait and sign. Options
// with no alignment produce a choice with an empty trait, which scoring
// ignores.
func BuildAnswer(q catalog.Question, selected []string) (Answer, error) {
	if len(selected) == 0 {
		return Answer{}, ErrNoSelection
	}
	if MaxSelections(len(q.Options)) == 2 && len(selected) < 2 {
		return Answer{}, ErrNeedSecondChoice
	}

	choices := make([]AnswerChoice, 0, len(selected))
	for i, optionID := range selected {
		var alignment string
		for _, opt := range q.Options {
			if opt.OptionID == optionID {
				alignment = opt.Alignment
				break
			}
		}

		choice := AnswerChoice{
			OptionID: optionID,
			Rank:     i + 1,
			Sign:     1,
		}
		if alignment != "" {
			choice.Trait, choice.Sign = catalog.NormalizeAlignment(alignment)
		}
		choices = append(choices, choice)
	}

	return Answer{QuestionID: q.ID, Choices: choices}, nil
}
