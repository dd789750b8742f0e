// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/willowed/persona/ent/completion"
	"github.com/willowed/persona/ent/schema"
	"github.com/willowed/persona/ent/signupevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	completionFields := schema.Completion{}.Fields()
	_ = completionFields
	// completionDescResultID is the schema descriptor for result_id field.
	completionDescResultID := completionFields[0].Descriptor()
	// completion.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	completion.ResultIDValidator = completionDescResultID.Validators[0].(func(string) error)
	// completionDescCompletedAt is the schema descriptor for completed_at field.
	completionDescCompletedAt := completionFields[2].Descriptor()
	// completion.DefaultCompletedAt holds the default value on creation for the completed_at field.
	completion.DefaultCompletedAt = completionDescCompletedAt.Default.(func() time.Time)
	signupeventFields := schema.SignupEvent{}.Fields()
	_ = signupeventFields
	// signupeventDescEmail is the schema descriptor for email field.
	signupeventDescEmail := signupeventFields[0].Descriptor()
	// signupevent.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	signupevent.EmailValidator = signupeventDescEmail.Validators[0].(func(string) error)
	// signupeventDescTimestamp is the schema descriptor for timestamp field.
	signupeventDescTimestamp := signupeventFields[3].Descriptor()
	// signupevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	signupevent.DefaultTimestamp = signupeventDescTimestamp.Default.(func() time.Time)
}
