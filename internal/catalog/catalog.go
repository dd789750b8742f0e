package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/questions.json data/personality_types.json
var dataFS embed.FS

// c is the package-level catalog singleton, set by init().
var c *catalog

// catalog holds the loaded question and result data with precomputed indices.
type catalog struct {
	questions []Question // active only, sorted by Order ascending
	types     []PersonalityType
	typeByID  map[string]*PersonalityType
}

func init() {
	loaded, err := load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	c = loaded
}

// load parses and validates the embedded catalog documents.
func load() (*catalog, error) {
	qRaw, err := dataFS.ReadFile("data/questions.json")
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	tRaw, err := dataFS.ReadFile("data/personality_types.json")
	if err != nil {
		return nil, fmt.Errorf("read personality types: %w", err)
	}

	if err := validateDocument(questionsSchema, qRaw); err != nil {
		return nil, fmt.Errorf("questions document: %w", err)
	}
	if err := validateDocument(typesSchema, tRaw); err != nil {
		return nil, fmt.Errorf("personality types document: %w", err)
	}

	var allQuestions []Question
	if err := json.Unmarshal(qRaw, &allQuestions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	var types []PersonalityType
	if err := json.Unmarshal(tRaw, &types); err != nil {
		return nil, fmt.Errorf("unmarshal personality types: %w", err)
	}

	if err := validateQuestions(allQuestions); err != nil {
		return nil, err
	}
	if err := validateTypes(types); err != nil {
		return nil, err
	}

	var active []Question
	for _, q := range allQuestions {
		if q.Active {
			active = append(active, q)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Order < active[j].Order
	})

	byID := make(map[string]*PersonalityType, len(types))
	for i := range types {
		byID[types[i].ID] = &types[i]
	}

	return &catalog{
		questions: active,
		types:     types,
		typeByID:  byID,
	}, nil
}

// ActiveQuestions returns the active questions in serving order.
// The returned slice is a copy and safe to hold.
func ActiveQuestions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// AllTypes returns every personality type record in catalog order.
func AllTypes() []PersonalityType {
	out := make([]PersonalityType, len(c.types))
	copy(out, c.types)
	return out
}

// TypeByID returns the personality type with the given composite id.
func TypeByID(id string) (*PersonalityType, bool) {
	t, ok := c.typeByID[id]
	return t, ok
}

// FallbackType returns the designated default record used when a computed
// key has no matching entry: the first record in the catalog.
func FallbackType() *PersonalityType {
	return &c.types[0]
}

// ResolveType looks up id and falls back to FallbackType on a miss.
// A catalog miss is never an error.
func ResolveType(id string) *PersonalityType {
	if t, ok := TypeByID(id); ok {
		return t
	}
	return FallbackType()
}
