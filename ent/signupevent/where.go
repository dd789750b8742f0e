// Code generated by ent, DO NOT EDIT.

package signupevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/willowed/persona/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldEmail, v))
}

// PersonalityTypeID applies equality check predicate on the "personality_type_id" field. It's identical to PersonalityTypeIDEQ.
func PersonalityTypeID(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldPersonalityTypeID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldContainsFold(FieldEmail, v))
}

// PersonalityTypeIDEQ applies the EQ predicate on the "personality_type_id" field.
func PersonalityTypeIDEQ(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDNEQ applies the NEQ predicate on the "personality_type_id" field.
func PersonalityTypeIDNEQ(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNEQ(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDIn applies the In predicate on the "personality_type_id" field.
func PersonalityTypeIDIn(vs ...string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldIn(FieldPersonalityTypeID, vs...))
}

// PersonalityTypeIDNotIn applies the NotIn predicate on the "personality_type_id" field.
func PersonalityTypeIDNotIn(vs ...string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNotIn(FieldPersonalityTypeID, vs...))
}

// PersonalityTypeIDGT applies the GT predicate on the "personality_type_id" field.
func PersonalityTypeIDGT(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGT(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDGTE applies the GTE predicate on the "personality_type_id" field.
func PersonalityTypeIDGTE(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGTE(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDLT applies the LT predicate on the "personality_type_id" field.
func PersonalityTypeIDLT(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLT(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDLTE applies the LTE predicate on the "personality_type_id" field.
func PersonalityTypeIDLTE(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLTE(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDContains applies the Contains predicate on the "personality_type_id" field.
func PersonalityTypeIDContains(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldContains(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDHasPrefix applies the HasPrefix predicate on the "personality_type_id" field.
func PersonalityTypeIDHasPrefix(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldHasPrefix(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDHasSuffix applies the HasSuffix predicate on the "personality_type_id" field.
func PersonalityTypeIDHasSuffix(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldHasSuffix(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDEqualFold applies the EqualFold predicate on the "personality_type_id" field.
func PersonalityTypeIDEqualFold(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEqualFold(FieldPersonalityTypeID, v))
}

// PersonalityTypeIDContainsFold applies the ContainsFold predicate on the "personality_type_id" field.
func PersonalityTypeIDContainsFold(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldContainsFold(FieldPersonalityTypeID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SignupEvent {
	return predicate.SignupEvent(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SignupEvent) predicate.SignupEvent {
	return predicate.SignupEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SignupEvent) predicate.SignupEvent {
	return predicate.SignupEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SignupEvent) predicate.SignupEvent {
	return predicate.SignupEvent(sql.NotPredicates(p))
}
