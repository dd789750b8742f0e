package quiz

// AnswerChoice is one ranked pick within an answer. Trait and Sign are the
// normalized form of the option's alignment; Rank is 1 for the top pick and
// 2 for the second pick.
type AnswerChoice struct {
	OptionID string `json:"optionId"`
	Trait    string `json:"trait"`
	Sign     int    `json:"sign"`
	Rank     int    `json:"rank"`
}

// Answer records a learner's ranked picks for one question. A session holds
// at most one Answer per question id; a later answer replaces the earlier one.
type Answer struct {
	QuestionID string         `json:"questionId"`
	Choices    []AnswerChoice `json:"choices"`
}
