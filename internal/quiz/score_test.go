package quiz

import "testing"

func choice(trait string, sign, rank int) AnswerChoice {
	return AnswerChoice{OptionID: "opt-" + trait, Trait: trait, Sign: sign, Rank: rank}
}

func TestTallyTraitsRankWeights(t *testing.T) {
	answers := []Answer{
		{QuestionID: "q1", Choices: []AnswerChoice{
			choice("Investigative", 1, 1),
			choice("Artistic", 1, 2),
		}},
	}

	scores := TallyTraits(answers)
	if scores["Investigative"] != TopChoicePoints {
		t.Errorf("rank 1 = %d points, want %d", scores["Investigative"], TopChoicePoints)
	}
	if scores["Artistic"] != SecondChoicePoints {
		t.Errorf("rank 2 = %d points, want %d", scores["Artistic"], SecondChoicePoints)
	}
}

func TestTallyTraitsOrderIndependentAcrossQuestions(t *testing.T) {
	a := Answer{QuestionID: "q1", Choices: []AnswerChoice{choice("Social", 1, 1)}}
	b := Answer{QuestionID: "q2", Choices: []AnswerChoice{choice("Openness", 1, 1), choice("Social", 1, 2)}}

	forward := TallyTraits([]Answer{a, b})
	reversed := TallyTraits([]Answer{b, a})

	for trait, score := range forward {
		if reversed[trait] != score {
			t.Errorf("trait %s: forward %d != reversed %d", trait, score, reversed[trait])
		}
	}
	if forward["Social"] != TopChoicePoints+SecondChoicePoints {
		t.Errorf("Social = %d, want %d", forward["Social"], TopChoicePoints+SecondChoicePoints)
	}
}

func TestTallyTraitsNegatedSign(t *testing.T) {
	answers := []Answer{
		{QuestionID: "q1", Choices: []AnswerChoice{choice("Emotional-Stability", -1, 1)}},
	}
	scores := TallyTraits(answers)
	if scores["Emotional-Stability"] != -TopChoicePoints {
		t.Errorf("negated trait = %d, want %d", scores["Emotional-Stability"], -TopChoicePoints)
	}
}

func TestTallyTraitsIgnoresEmptyTrait(t *testing.T) {
	answers := []Answer{
		{QuestionID: "q1", Choices: []AnswerChoice{{OptionID: "x", Rank: 1, Sign: 1}}},
	}
	scores := TallyTraits(answers)
	for trait, score := range scores {
		if score != 0 {
			t.Errorf("trait %s = %d, want 0", trait, score)
		}
	}
}

func TestBestKeyEmptyInputYieldsFirstEnumeratedKey(t *testing.T) {
	// With no answers all products are zero and the first key in
	// (Holland asc x Big Five asc) order must win deterministically.
	got := Evaluate(nil)
	want := "Investigative_Openness"
	if got != want {
		t.Errorf("Evaluate(nil) = %q, want %q", got, want)
	}
}

func TestBestKeyStrictlyGreatestProduct(t *testing.T) {
	// Investigative 9, Openness 6: product 54 beats every other pair.
	answers := []Answer{
		{QuestionID: "q1", Choices: []AnswerChoice{choice("Investigative", 1, 1)}},
		{QuestionID: "q2", Choices: []AnswerChoice{choice("Investigative", 1, 1)}},
		{QuestionID: "q3", Choices: []AnswerChoice{choice("Investigative", 1, 1)}},
		{QuestionID: "q4", Choices: []AnswerChoice{choice("Openness", 1, 1)}},
		{QuestionID: "q5", Choices: []AnswerChoice{choice("Openness", 1, 1)}},
	}

	scores := TallyTraits(answers)
	if scores["Investigative"] != 9 || scores["Openness"] != 6 {
		t.Fatalf("scores = Investigative %d, Openness %d; want 9, 6", scores["Investigative"], scores["Openness"])
	}
	if got := BestKey(scores); got != "Investigative_Openness" {
		t.Errorf("BestKey = %q, want Investigative_Openness", got)
	}
}

func TestBestKeyTieBreakFirstWins(t *testing.T) {
	// Artistic and Social tied at 3, Conscientiousness 3: the products
	// Artistic_Conscientiousness and Social_Conscientiousness tie at 9.
	// Artistic enumerates before Social, so it must win.
	scores := map[string]int{"Artistic": 3, "Social": 3, "Conscientiousness": 3}
	if got := BestKey(scores); got != "Artistic_Conscientiousness" {
		t.Errorf("BestKey = %q, want Artistic_Conscientiousness", got)
	}
}

func TestBestKeyNegativeProductStaysNegative(t *testing.T) {
	// One strong positive pair must beat pairs involving a negative
	// factor, and two negatives multiplying into a positive is allowed
	// to win when it genuinely is the greatest product.
	scores := map[string]int{
		"Realistic":           -4,
		"Emotional-Stability": -4, // product 16
		"Social":              3,
		"Agreeableness":       3, // product 9
	}
	if got := BestKey(scores); got != "Realistic_Emotional-Stability" {
		t.Errorf("BestKey = %q, want Realistic_Emotional-Stability (multiplicative contract)", got)
	}
}

func TestNegatedSignFlipsWinner(t *testing.T) {
	// If the sign were ignored, the "Neuroticism" top picks would score
	// Emotional-Stability +6 and Investigative_Emotional-Stability (18)
	// would beat Investigative_Openness (9). With the sign honored,
	// Emotional-Stability is -6 and Openness wins the pairing.
	answers := []Answer{
		{QuestionID: "q1", Choices: []AnswerChoice{choice("Investigative", 1, 1)}},
		{QuestionID: "q2", Choices: []AnswerChoice{choice("Openness", 1, 1)}},
		{QuestionID: "q3", Choices: []AnswerChoice{choice("Emotional-Stability", -1, 1)}},
		{QuestionID: "q4", Choices: []AnswerChoice{choice("Emotional-Stability", -1, 1)}},
	}

	scores := TallyTraits(answers)
	if scores["Emotional-Stability"] != -6 {
		t.Fatalf("Emotional-Stability = %d, want -6", scores["Emotional-Stability"])
	}
	if got := BestKey(scores); got != "Investigative_Openness" {
		t.Errorf("BestKey = %q, want Investigative_Openness", got)
	}

	// Ignoring the sign reverses the outcome.
	ignored := map[string]int{"Investigative": 3, "Openness": 3, "Emotional-Stability": 6}
	if got := BestKey(ignored); got != "Investigative_Emotional-Stability" {
		t.Errorf("sign-ignored BestKey = %q, want Investigative_Emotional-Stability", got)
	}
}
