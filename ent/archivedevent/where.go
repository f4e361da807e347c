// Code generated by ent, DO NOT EDIT.

package archivedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleettools/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContainsFold(FieldID, id))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int64) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldSequenceNumber, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldEventType, v))
}

// StreamType applies equality check predicate on the "stream_type" field. It's identical to StreamTypeEQ.
func StreamType(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldStreamType, v))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldStreamID, v))
}

// CausationID applies equality check predicate on the "causation_id" field. It's identical to CausationIDEQ.
func CausationID(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldCausationID, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldCorrelationID, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldRecordedAt, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldSchemaVersion, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldArchivedAt, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int64) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int64) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int64) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int64) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int64) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int64) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int64) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int64) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldSequenceNumber, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContainsFold(FieldEventType, v))
}

// StreamTypeEQ applies the EQ predicate on the "stream_type" field.
func StreamTypeEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldStreamType, v))
}

// StreamTypeNEQ applies the NEQ predicate on the "stream_type" field.
func StreamTypeNEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldStreamType, v))
}

// StreamTypeIn applies the In predicate on the "stream_type" field.
func StreamTypeIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldStreamType, vs...))
}

// StreamTypeNotIn applies the NotIn predicate on the "stream_type" field.
func StreamTypeNotIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldStreamType, vs...))
}

// StreamTypeGT applies the GT predicate on the "stream_type" field.
func StreamTypeGT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldStreamType, v))
}

// StreamTypeGTE applies the GTE predicate on the "stream_type" field.
func StreamTypeGTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldStreamType, v))
}

// StreamTypeLT applies the LT predicate on the "stream_type" field.
func StreamTypeLT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldStreamType, v))
}

// StreamTypeLTE applies the LTE predicate on the "stream_type" field.
func StreamTypeLTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldStreamType, v))
}

// StreamTypeContains applies the Contains predicate on the "stream_type" field.
func StreamTypeContains(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContains(FieldStreamType, v))
}

// StreamTypeHasPrefix applies the HasPrefix predicate on the "stream_type" field.
func StreamTypeHasPrefix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasPrefix(FieldStreamType, v))
}

// StreamTypeHasSuffix applies the HasSuffix predicate on the "stream_type" field.
func StreamTypeHasSuffix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasSuffix(FieldStreamType, v))
}

// StreamTypeEqualFold applies the EqualFold predicate on the "stream_type" field.
func StreamTypeEqualFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEqualFold(FieldStreamType, v))
}

// StreamTypeContainsFold applies the ContainsFold predicate on the "stream_type" field.
func StreamTypeContainsFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContainsFold(FieldStreamType, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContainsFold(FieldStreamID, v))
}

// CausationIDEQ applies the EQ predicate on the "causation_id" field.
func CausationIDEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldCausationID, v))
}

// CausationIDNEQ applies the NEQ predicate on the "causation_id" field.
func CausationIDNEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldCausationID, v))
}

// CausationIDIn applies the In predicate on the "causation_id" field.
func CausationIDIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldCausationID, vs...))
}

// CausationIDNotIn applies the NotIn predicate on the "causation_id" field.
func CausationIDNotIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldCausationID, vs...))
}

// CausationIDGT applies the GT predicate on the "causation_id" field.
func CausationIDGT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldCausationID, v))
}

// CausationIDGTE applies the GTE predicate on the "causation_id" field.
func CausationIDGTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldCausationID, v))
}

// CausationIDLT applies the LT predicate on the "causation_id" field.
func CausationIDLT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldCausationID, v))
}

// CausationIDLTE applies the LTE predicate on the "causation_id" field.
func CausationIDLTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldCausationID, v))
}

// CausationIDContains applies the Contains predicate on the "causation_id" field.
func CausationIDContains(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContains(FieldCausationID, v))
}

// CausationIDHasPrefix applies the HasPrefix predicate on the "causation_id" field.
func CausationIDHasPrefix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasPrefix(FieldCausationID, v))
}

// CausationIDHasSuffix applies the HasSuffix predicate on the "causation_id" field.
func CausationIDHasSuffix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasSuffix(FieldCausationID, v))
}

// CausationIDIsNil applies the IsNil predicate on the "causation_id" field.
func CausationIDIsNil() predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIsNull(FieldCausationID))
}

// CausationIDNotNil applies the NotNil predicate on the "causation_id" field.
func CausationIDNotNil() predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotNull(FieldCausationID))
}

// CausationIDEqualFold applies the EqualFold predicate on the "causation_id" field.
func CausationIDEqualFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEqualFold(FieldCausationID, v))
}

// CausationIDContainsFold applies the ContainsFold predicate on the "causation_id" field.
func CausationIDContainsFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContainsFold(FieldCausationID, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldContainsFold(FieldCorrelationID, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldRecordedAt, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldSchemaVersion, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.FieldLTE(FieldArchivedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArchivedEvent) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArchivedEvent) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArchivedEvent) predicate.ArchivedEvent {
	return predicate.ArchivedEvent(sql.NotPredicates(p))
}
