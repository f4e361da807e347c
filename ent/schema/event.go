package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — one row per
// appended fleet event. Rows are immutable once written; the only mutation
// ever applied to this table is archival by the compaction service.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.Int64("sequence_number").
			Unique().
			Immutable().
			Comment("Global, strictly increasing, gap-free"),
		field.String("event_type").
			Immutable().
			Comment("Kept as a plain string so historical logs with retired types still replay"),
		field.String("stream_type").
			Immutable(),
		field.String("stream_id").
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Immutable().
			Comment("Typed payload — see pkg/eventstore/payloads.go for the closed union"),
		field.String("causation_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Direct cause; must reference an earlier event"),
		field.String("correlation_id").
			Immutable().
			Comment("Root of the causation chain; equals event_id for root events"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("occurred_at").
			Immutable().
			Comment("Caller-supplied occurrence time"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable().
			Comment("Stamped at append"),
		field.Int("schema_version").
			Default(1).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_type", "stream_id", "sequence_number"),
		index.Fields("correlation_id"),
		index.Fields("event_type"),
		index.Fields("recorded_at"),
	}
}
