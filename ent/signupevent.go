// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/willowed/persona/ent/signupevent"
)

// SignupEvent is the model entity for the SignupEvent schema.
type SignupEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Address submitted at the email gate
	Email string `json:"email,omitempty"`
	// Result id the submission was tied to
	PersonalityTypeID string `json:"personality_type_id,omitempty"`
	// Quiz session the submission belongs to
	SessionID string `json:"session_id,omitempty"`
	// UTC wall-clock time of the submission
	Timestamp    time.Time `json:"timestamp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SignupEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case signupevent.FieldID:
			values[i] = new(sql.NullInt64)
		case signupevent.FieldEmail, signupevent.FieldPersonalityTypeID, signupevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case signupevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SignupEvent fields.
func (_m *SignupEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case signupevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case signupevent.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case signupevent.FieldPersonalityTypeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field personality_type_id", values[i])
			} else if value.Valid {
				_m.PersonalityTypeID = value.String
			}
		case signupevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case signupevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SignupEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SignupEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SignupEvent.
// Note that you need to call SignupEvent.Unwrap() before calling this method if this SignupEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SignupEvent) Update() *SignupEventUpdateOne {
	return NewSignupEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SignupEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SignupEvent) Unwrap() *SignupEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SignupEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SignupEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SignupEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("personality_type_id=")
	builder.WriteString(_m.PersonalityTypeID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SignupEvents is a parsable slice of SignupEvent.
type SignupEvents []*SignupEvent
