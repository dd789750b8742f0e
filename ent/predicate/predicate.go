// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Completion is the predicate function for completion builders.
type Completion func(*sql.Selector)

// SignupEvent is the predicate function for signupevent builders.
type SignupEvent func(*sql.Selector)
