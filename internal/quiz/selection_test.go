package quiz

import (
	"errors"
	"reflect"
	"testing"

	"github.com/willowed/persona/internal/catalog"
)

func testQuestion(optionCount int) catalog.Question {
	q := catalog.Question{ID: "q-test", Active: true}
	ids := []string{"a", "b", "c", "d", "e"}
	alignments := []string{"Investigative", "Artistic", "Social", "Openness", "Conscientiousness"}
	for i := 0; i < optionCount; i++ {
		q.Options = append(q.Options, catalog.Option{
			OptionID:  ids[i],
			Text:      "option " + ids[i],
			Alignment: alignments[i],
		})
	}
	return q
}

func TestMaxSelections(t *testing.T) {
	tests := []struct {
		options int
		want    int
	}{
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 2},
	}
	for _, tt := range tests {
		if got := MaxSelections(tt.options); got != tt.want {
			t.Errorf("MaxSelections(%d) = %d, want %d", tt.options, got, tt.want)
		}
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		optionID string
		cap      int
		want     []string
	}{
		{"select first", nil, "a", 2, []string{"a"}},
		{"select second", []string{"a"}, "b", 2, []string{"a", "b"}},
		{"deselect only", []string{"a"}, "a", 2, []string{}},
		{"deselect first of two", []string{"a", "b"}, "a", 2, []string{"b"}},
		{"deselect second of two", []string{"a", "b"}, "b", 2, []string{"a"}},
		{"replace last at cap 2", []string{"a", "b"}, "c", 2, []string{"a", "c"}},
		{"replace at cap 1", []string{"a"}, "b", 1, []string{"b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Toggle(tt.selected, tt.optionID, tt.cap)
			if len(got) != len(tt.want) {
				t.Fatalf("Toggle() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Toggle() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestToggleDoubleToggleIdempotent(t *testing.T) {
	start := []string{"a", "b"}
	once := Toggle(start, "c", 2) // replaces b
	twice := Toggle(once, "c", 2) // deselects c
	want := []string{"a"}
	if !reflect.DeepEqual(twice, want) {
		t.Errorf("double toggle = %v, want %v", twice, want)
	}

	// Toggling the same unselected option twice on an empty selection
	// returns to empty.
	once = Toggle(nil, "a", 2)
	twice = Toggle(once, "a", 2)
	if len(twice) != 0 {
		t.Errorf("double toggle from empty = %v, want empty", twice)
	}
}

func TestToggleOverflowKeepsFirstPick(t *testing.T) {
	selected := []string{"a", "b"}
	for _, next := range []string{"c", "d", "e"} {
		selected = Toggle(selected, next, 2)
		if selected[0] != "a" {
			t.Fatalf("first pick evicted: %v", selected)
		}
		if selected[1] != next {
			t.Fatalf("expected most recent pick %q replaced, got %v", next, selected)
		}
	}
}

func TestBuildAnswerValidation(t *testing.T) {
	q4 := testQuestion(4)
	q2 := testQuestion(2)

	if _, err := BuildAnswer(q4, nil); !errors.Is(err, ErrNoSelection) {
		t.Errorf("empty selection: got %v, want ErrNoSelection", err)
	}
	if _, err := BuildAnswer(q4, []string{"a"}); !errors.Is(err, ErrNeedSecondChoice) {
		t.Errorf("single pick on cap-2 question: got %v, want ErrNeedSecondChoice", err)
	}
	if _, err := BuildAnswer(q2, []string{"a"}); err != nil {
		t.Errorf("single pick on cap-1 question: got %v, want nil", err)
	}
}

func TestBuildAnswerRanks(t *testing.T) {
	q := testQuestion(4)

	answer, err := BuildAnswer(q, []string{"c", "a"})
	if err != nil {
		t.Fatalf("build answer: %v", err)
	}
	if len(answer.Choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(answer.Choices))
	}

	// Ranks follow selection order: prefix of [1, 2].
	if answer.Choices[0].OptionID != "c" || answer.Choices[0].Rank != 1 {
		t.Errorf("first choice = %+v, want option c rank 1", answer.Choices[0])
	}
	if answer.Choices[1].OptionID != "a" || answer.Choices[1].Rank != 2 {
		t.Errorf("second choice = %+v, want option a rank 2", answer.Choices[1])
	}
	if answer.Choices[0].Trait != "Social" || answer.Choices[0].Sign != 1 {
		t.Errorf("first choice alignment = %q/%d, want Social/+1", answer.Choices[0].Trait, answer.Choices[0].Sign)
	}
}

func TestBuildAnswerNormalizesNegatedAlignment(t *testing.T) {
	q := catalog.Question{
		ID: "q-neg",
		Options: []catalog.Option{
			{OptionID: "a", Text: "loud", Alignment: "Extraversion"},
			{OptionID: "b", Text: "quiet", Alignment: "Introversion, low Extraversion"},
		},
	}

	answer, err := BuildAnswer(q, []string{"b"})
	if err != nil {
		t.Fatalf("build answer: %v", err)
	}
	c := answer.Choices[0]
	if c.Trait != "Extraversion" || c.Sign != -1 {
		t.Errorf("negated alignment normalized to %q/%d, want Extraversion/-1", c.Trait, c.Sign)
	}
}

func TestBuildAnswerEmptyAlignment(t *testing.T) {
	q := catalog.Question{
		ID: "q-blank",
		Options: []catalog.Option{
			{OptionID: "a", Text: "one"},
			{OptionID: "b", Text: "two"},
		},
	}

	answer, err := BuildAnswer(q, []string{"a"})
	if err != nil {
		t.Fatalf("build answer: %v", err)
	}
	if answer.Choices[0].Trait != "" {
		t.Errorf("empty alignment should stay empty, got %q", answer.Choices[0].Trait)
	}
}
