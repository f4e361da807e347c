// Code generated by ent, DO NOT EDIT.

package cursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleettools/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldID, id))
}

// StreamType applies equality check predicate on the "stream_type" field. It's identical to StreamTypeEQ.
func StreamType(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldStreamType, v))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldStreamID, v))
}

// ConsumerID applies equality check predicate on the "consumer_id" field. It's identical to ConsumerIDEQ.
func ConsumerID(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldConsumerID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldPosition, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// StreamTypeEQ applies the EQ predicate on the "stream_type" field.
func StreamTypeEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldStreamType, v))
}

// StreamTypeNEQ applies the NEQ predicate on the "stream_type" field.
func StreamTypeNEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldStreamType, v))
}

// StreamTypeIn applies the In predicate on the "stream_type" field.
func StreamTypeIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldStreamType, vs...))
}

// StreamTypeNotIn applies the NotIn predicate on the "stream_type" field.
func StreamTypeNotIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldStreamType, vs...))
}

// StreamTypeGT applies the GT predicate on the "stream_type" field.
func StreamTypeGT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldStreamType, v))
}

// StreamTypeGTE applies the GTE predicate on the "stream_type" field.
func StreamTypeGTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldStreamType, v))
}

// StreamTypeLT applies the LT predicate on the "stream_type" field.
func StreamTypeLT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldStreamType, v))
}

// StreamTypeLTE applies the LTE predicate on the "stream_type" field.
func StreamTypeLTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldStreamType, v))
}

// StreamTypeContains applies the Contains predicate on the "stream_type" field.
func StreamTypeContains(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContains(FieldStreamType, v))
}

// StreamTypeHasPrefix applies the HasPrefix predicate on the "stream_type" field.
func StreamTypeHasPrefix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasPrefix(FieldStreamType, v))
}

// StreamTypeHasSuffix applies the HasSuffix predicate on the "stream_type" field.
func StreamTypeHasSuffix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasSuffix(FieldStreamType, v))
}

// StreamTypeEqualFold applies the EqualFold predicate on the "stream_type" field.
func StreamTypeEqualFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEqualFold(FieldStreamType, v))
}

// StreamTypeContainsFold applies the ContainsFold predicate on the "stream_type" field.
func StreamTypeContainsFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContainsFold(FieldStreamType, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContainsFold(FieldStreamID, v))
}

// ConsumerIDEQ applies the EQ predicate on the "consumer_id" field.
func ConsumerIDEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldConsumerID, v))
}

// ConsumerIDNEQ applies the NEQ predicate on the "consumer_id" field.
func ConsumerIDNEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldConsumerID, v))
}

// ConsumerIDIn applies the In predicate on the "consumer_id" field.
func ConsumerIDIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldConsumerID, vs...))
}

// ConsumerIDNotIn applies the NotIn predicate on the "consumer_id" field.
func ConsumerIDNotIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldConsumerID, vs...))
}

// ConsumerIDGT applies the GT predicate on the "consumer_id" field.
func ConsumerIDGT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldConsumerID, v))
}

// ConsumerIDGTE applies the GTE predicate on the "consumer_id" field.
func ConsumerIDGTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldConsumerID, v))
}

// ConsumerIDLT applies the LT predicate on the "consumer_id" field.
func ConsumerIDLT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldConsumerID, v))
}

// ConsumerIDLTE applies the LTE predicate on the "consumer_id" field.
func ConsumerIDLTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldConsumerID, v))
}

// ConsumerIDContains applies the Contains predicate on the "consumer_id" field.
func ConsumerIDContains(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContains(FieldConsumerID, v))
}

// ConsumerIDHasPrefix applies the HasPrefix predicate on the "consumer_id" field.
func ConsumerIDHasPrefix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasPrefix(FieldConsumerID, v))
}

// ConsumerIDHasSuffix applies the HasSuffix predicate on the "consumer_id" field.
func ConsumerIDHasSuffix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasSuffix(FieldConsumerID, v))
}

// ConsumerIDEqualFold applies the EqualFold predicate on the "consumer_id" field.
func ConsumerIDEqualFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEqualFold(FieldConsumerID, v))
}

// ConsumerIDContainsFold applies the ContainsFold predicate on the "consumer_id" field.
func ConsumerIDContainsFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContainsFold(FieldConsumerID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldPosition, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Cursor) predicate.Cursor {
	return predicate.Cursor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Cursor) predicate.Cursor {
	return predicate.Cursor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Cursor) predicate.Cursor {
	return predicate.Cursor(sql.NotPredicates(p))
}
