package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Completion is the durable record of a finished quiz: which personality
// type the learner landed on and the answers that produced it. At most one
// row exists; saving a new completion replaces the old one.
type Completion struct {
	ent.Schema
}

// AnswerRecord is the serialized form of a recorded answer.
type AnswerRecord struct {
	QuestionID string         `json:"questionId"`
	Choices    []ChoiceRecord `json:"choices"`
}

// ChoiceRecord is the serialized form of one ranked pick.
type ChoiceRecord struct {
	OptionID string `json:"optionId"`
	Trait    string `json:"trait"`
	Sign     int    `json:"sign"`
	Rank     int    `json:"rank"`
}

func (Completion) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			NotEmpty().
			Comment("Composite personality type id; re-resolved against the catalog on restore"),
		field.JSON("answers", []AnswerRecord{}).
			Optional().
			Comment("The full answer set that produced the result"),
		field.Time("completed_at").
			Default(time.Now).
			Comment("When the quiz was completed"),
	}
}

func (Completion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completed_at"),
	}
}
