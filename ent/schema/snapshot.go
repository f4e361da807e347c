package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot holds the schema definition for the Snapshot entity — a projection
// rollup of one stream covering an event range. Rebuild replays from the
// newest covering snapshot's to_sequence + 1.
type Snapshot struct {
	ent.Schema
}

// Fields of the Snapshot.
func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("stream_type").
			Immutable(),
		field.String("stream_id").
			Immutable(),
		field.JSON("state", map[string]interface{}{}).
			Immutable().
			Comment("Projection row state at to_sequence"),
		field.Int64("from_sequence").
			Immutable(),
		field.Int64("to_sequence").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Snapshot.
func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_type", "stream_id", "to_sequence").
			Unique(),
	}
}
