package quiz

import "github.com/willowed/persona/internal/catalog"

// Points awarded per ranked choice. The top pick counts three times as much
// as the second pick.
const (
	TopChoicePoints    = 3
	SecondChoicePoints = 1
)

// TallyTraits accumulates signed points per canonical trait across all
// answers. Choices with an empty trait contribute nothing. Summation is
// commutative across questions; within a question, rank decides the weight.
func TallyTraits(answers []Answer) map[string]int {
	scores := make(map[string]int, len(catalog.HollandAlignments)+len(catalog.BigFiveAlignments))
	for _, a := range catalog.HollandAlignments {
		scores[a] = 0
	}
	for _, a := range catalog.BigFiveAlignments {
		scores[a] = 0
	}

	for _, answer := range answers {
		for _, choice := range answer.Choices {
			if choice.Trait == "" {
				continue
			}
			points := SecondChoicePoints
			if choice.Rank == 1 {
				points = TopChoicePoints
			}
			scores[choice.Trait] += points * choice.Sign
		}
	}
	return scores
}

// BestKey selects the combined key with the strictly greatest product of its
// Holland and Big Five trait scores. The scan runs in the fixed enumeration
// order (Holland ascending, Big Five ascending) and the incumbent is only
// replaced on a strictly greater product, so ties resolve to the earliest
// key. With all-zero scores every product is zero and the first enumerated
// key wins.
//
// Products of negative factors can outrank intuitively stronger pairs; that
// is the scoring contract, not an anomaly to correct here.
func BestKey(traitScores map[string]int) string {
	bestKey := ""
	bestScore := 0
	first := true

	for _, h := range catalog.HollandAlignments {
		for _, b := range catalog.BigFiveAlignments {
			score := traitScores[h] * traitScores[b]
			if first || score > bestScore {
				bestKey = catalog.CombinedKey(h, b)
				bestScore = score
				first = false
			}
		}
	}
	return bestKey
}

// Evaluate computes the winning combined key for a full answer set.
func Evaluate(answers []Answer) string {
	return BestKey(TallyTraits(answers))
}
