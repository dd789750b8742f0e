package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SignupEvent is the local ledger of email-gate submissions: one row per
// accepted submission, mirroring what was sent to the collector endpoint.
type SignupEvent struct {
	ent.Schema
}

func (SignupEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Comment("Address submitted at the email gate"),
		field.String("personality_type_id").
			Comment("Result id the submission was tied to"),
		field.String("session_id").
			Comment("Quiz session the submission belongs to"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the submission"),
	}
}

func (SignupEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("email"),
	}
}
