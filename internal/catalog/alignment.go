package catalog

// HollandAlignments are the six Holland occupational themes, in the fixed
// enumeration order used for combined-key scanning.
var HollandAlignments = []string{
	"Investigative",
	"Artistic",
	"Social",
	"Enterprising",
	"Conventional",
	"Realistic",
}

// BigFiveAlignments are the five Big Five dimensions, in the fixed
// enumeration order used for combined-key scanning.
var BigFiveAlignments = []string{
	"Openness",
	"Conscientiousness",
	"Extraversion",
	"Agreeableness",
	"Emotional-Stability",
}

// negatedAlignments maps the alternate labels that appear in the question
// catalog to their canonical trait. Scores for these labels count against
// the trait, not toward it.
var negatedAlignments = map[string]string{
	"Introversion, low Extraversion": "Extraversion",
	"Neuroticism":                    "Emotional-Stability",
	"Low Agreeableness":              "Agreeableness",
}

// NormalizeAlignment resolves a raw option label to its canonical trait and
// sign. Negated labels flip the sign to -1; every other label maps to itself
// with sign +1.
func NormalizeAlignment(raw string) (trait string, sign int) {
	if canonical, ok := negatedAlignments[raw]; ok {
		return canonical, -1
	}
	return raw, 1
}

// KnownAlignment reports whether a raw label normalizes to a trait in one of
// the two families.
func KnownAlignment(raw string) bool {
	trait, _ := NormalizeAlignment(raw)
	for _, a := range HollandAlignments {
		if trait == a {
			return true
		}
	}
	for _, a := range BigFiveAlignments {
		if trait == a {
			return true
		}
	}
	return false
}

// CombinedKey builds the composite result id for a Holland and Big Five pair.
func CombinedKey(holland, bigFive string) string {
	return holland + "_" + bigFive
}

// CombinedKeys returns all 30 composite ids in enumeration order:
// Holland ascending (outer) by Big Five ascending (inner).
func CombinedKeys() []string {
	keys := make([]string, 0, len(HollandAlignments)*len(BigFiveAlignments))
	for _, h := range HollandAlignments {
		for _, b := range BigFiveAlignments {
			keys = append(keys, CombinedKey(h, b))
		}
	}
	return keys
}
