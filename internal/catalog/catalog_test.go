package catalog

import (
	"strings"
	"testing"
)

func TestActiveQuestionsSortedAndFiltered(t *testing.T) {
	questions := ActiveQuestions()
	if len(questions) == 0 {
		t.Fatal("no active questions in catalog")
	}

	for i, q := range questions {
		if !q.Active {
			t.Errorf("inactive question %q served", q.ID)
		}
		if i > 0 && questions[i-1].Order > q.Order {
			t.Errorf("questions out of order: %q (%d) before %q (%d)",
				questions[i-1].ID, questions[i-1].Order, q.ID, q.Order)
		}
	}

	for _, q := range questions {
		if q.ID == "q-dream-trip" {
			t.Error("retired question q-dream-trip should not be served")
		}
	}
}

func TestEveryCombinedKeyResolves(t *testing.T) {
	keys := CombinedKeys()
	if len(keys) != 30 {
		t.Fatalf("expected 30 combined keys, got %d", len(keys))
	}
	for _, key := range keys {
		if _, ok := TypeByID(key); !ok {
			t.Errorf("no personality type for key %q", key)
		}
	}
}

func TestCombinedKeysEnumerationOrder(t *testing.T) {
	keys := CombinedKeys()
	if keys[0] != "Investigative_Openness" {
		t.Errorf("first key = %q, want Investigative_Openness", keys[0])
	}
	if keys[4] != "Investigative_Emotional-Stability" {
		t.Errorf("fifth key = %q, want Investigative_Emotional-Stability", keys[4])
	}
	if keys[5] != "Artistic_Openness" {
		t.Errorf("sixth key = %q, want Artistic_Openness", keys[5])
	}
	if keys[len(keys)-1] != "Realistic_Emotional-Stability" {
		t.Errorf("last key = %q, want Realistic_Emotional-Stability", keys[len(keys)-1])
	}
}

func TestResolveTypeFallback(t *testing.T) {
	got := ResolveType("No_SuchType")
	if got == nil {
		t.Fatal("expected fallback record, got nil")
	}
	if got.ID != FallbackType().ID {
		t.Errorf("fallback = %q, want %q", got.ID, FallbackType().ID)
	}

	known := ResolveType("Artistic_Extraversion")
	if known.ID != "Artistic_Extraversion" {
		t.Errorf("known id resolved to %q", known.ID)
	}
}

func TestNormalizeAlignment(t *testing.T) {
	tests := []struct {
		raw   string
		trait string
		sign  int
	}{
		{"Introversion, low Extraversion", "Extraversion", -1},
		{"Neuroticism", "Emotional-Stability", -1},
		{"Low Agreeableness", "Agreeableness", -1},
		{"Investigative", "Investigative", 1},
		{"Openness", "Openness", 1},
		{"Emotional-Stability", "Emotional-Stability", 1},
	}
	for _, tt := range tests {
		trait, sign := NormalizeAlignment(tt.raw)
		if trait != tt.trait || sign != tt.sign {
			t.Errorf("NormalizeAlignment(%q) = %q/%d, want %q/%d", tt.raw, trait, sign, tt.trait, tt.sign)
		}
	}
}

func TestCatalogAlignmentsAllKnown(t *testing.T) {
	for _, q := range ActiveQuestions() {
		for _, opt := range q.Options {
			if opt.Alignment != "" && !KnownAlignment(opt.Alignment) {
				t.Errorf("question %q option %q: unknown alignment %q", q.ID, opt.OptionID, opt.Alignment)
			}
		}
	}
}

func TestParseSuperpowers(t *testing.T) {
	powers := ParseSuperpowers("Deep focus: stays on task - Idea generation: connects things - Self-awareness: knows it")
	if len(powers) != 3 {
		t.Fatalf("expected 3 superpowers, got %d: %v", len(powers), powers)
	}
	if !strings.HasPrefix(powers[1], "Idea generation") {
		t.Errorf("second power = %q", powers[1])
	}

	if got := ParseSuperpowers(""); got != nil {
		t.Errorf("empty input should give nil, got %v", got)
	}
}

func TestSplitEntry(t *testing.T) {
	tests := []struct {
		entry string
		title string
		body  string
	}{
		{"Deep focus: stays with a problem", "Deep focus", "stays with a problem"},
		{"No separator here", "No separator here", ""},
		{"Edge: with: extra colons", "Edge", "with: extra colons"},
	}
	for _, tt := range tests {
		title, body := SplitEntry(tt.entry)
		if title != tt.title || body != tt.body {
			t.Errorf("SplitEntry(%q) = %q/%q, want %q/%q", tt.entry, title, body, tt.title, tt.body)
		}
	}
}
