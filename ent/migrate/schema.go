// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompletionsColumns holds the columns for the "completions" table.
	CompletionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "result_id", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// CompletionsTable holds the schema information for the "completions" table.
	CompletionsTable = &schema.Table{
		Name:       "completions",
		Columns:    CompletionsColumns,
		PrimaryKey: []*schema.Column{CompletionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completion_completed_at",
				Unique:  false,
				Columns: []*schema.Column{CompletionsColumns[3]},
			},
		},
	}
	// SignupEventsColumns holds the columns for the "signup_events" table.
	SignupEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "personality_type_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// SignupEventsTable holds the schema information for the "signup_events" table.
	SignupEventsTable = &schema.Table{
		Name:       "signup_events",
		Columns:    SignupEventsColumns,
		PrimaryKey: []*schema.Column{SignupEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "signupevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SignupEventsColumns[4]},
			},
			{
				Name:    "signupevent_email",
				Unique:  false,
				Columns: []*schema.Column{SignupEventsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompletionsTable,
		SignupEventsTable,
	}
)

func init() {
}
