package catalog

// Question is a single assessment item. Only active questions are served,
// ordered by Order ascending.
type Question struct {
	ID           string   `json:"id"`
	Active       bool     `json:"active"`
	QuestionType string   `json:"questionType"`
	Text         string   `json:"questionText"`
	Options      []Option `json:"options"`
	Order        int      `json:"order"`
}

// Option is one selectable choice on a question. Alignment is a trait label,
// possibly a negated variant (see NormalizeAlignment).
type Option struct {
	OptionID  string `json:"optionId"`
	Text      string `json:"optionText"`
	Alignment string `json:"optionAlignment"`
}

// Career is a recommended occupation on a personality type record.
type Career struct {
	OnetCode    string `json:"onetCode"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Major is a suggested field of study.
type Major struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Quote is an inspirational quote attributed to a well-known figure.
type Quote struct {
	Quote       string `json:"quote"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PersonalityType is a result record keyed by a "<Holland>_<BigFive>"
// composite id. Superpowers is a single string with " - " separated entries;
// use ParseSuperpowers to split it.
type PersonalityType struct {
	ID                        string   `json:"id"`
	Title                     string   `json:"title"`
	ShortDescription          string   `json:"shortDescription"`
	Superpowers               string   `json:"superpowers"`
	WorkStyle                 string   `json:"workStyle"`
	PersonalGoals             []string `json:"personalGoals"`
	StudyTips                 []string `json:"studyTips"`
	RelationshipTips          string   `json:"relationshipTips"`
	RecommendedCareersOpening string   `json:"recommendedCareersOpening"`
	RecommendedCareers        []Career `json:"recommendedCareers"`
	PossibleMajors            []Major  `json:"possibleMajors"`
	InspirationalQuotes       []Quote  `json:"inspirationalQuotes"`
}
