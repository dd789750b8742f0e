package catalog

import "fmt"

// validateQuestions checks structural invariants the JSON schema cannot
// express: unique ids, unique option ids within a question, and every
// non-empty alignment label known to the normalization table.
func validateQuestions(questions []Question) error {
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if len(q.Options) < 2 {
			return fmt.Errorf("question %q has %d options, need at least 2", q.ID, len(q.Options))
		}

		optSeen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if optSeen[opt.OptionID] {
				return fmt.Errorf("question %q: duplicate option id %q", q.ID, opt.OptionID)
			}
			optSeen[opt.OptionID] = true

			if opt.Alignment != "" && !KnownAlignment(opt.Alignment) {
				return fmt.Errorf("question %q option %q: unknown alignment %q", q.ID, opt.OptionID, opt.Alignment)
			}
		}
	}
	return nil
}

// validateTypes checks that the result catalog is non-empty, has unique ids,
// and covers every combined key the scoring engine can produce.
func validateTypes(types []PersonalityType) error {
	if len(types) == 0 {
		return fmt.Errorf("personality type catalog is empty")
	}

	seen := make(map[string]bool, len(types))
	for _, t := range types {
		if seen[t.ID] {
			return fmt.Errorf("duplicate personality type id %q", t.ID)
		}
		seen[t.ID] = true
	}

	for _, key := range CombinedKeys() {
		if !seen[key] {
			return fmt.Errorf("no personality type record for combined key %q", key)
		}
	}
	return nil
}
