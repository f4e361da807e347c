package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Cursor holds the schema definition for the Cursor entity — a consumer's
// last-consumed position in a stream. Positions never decrease.
type Cursor struct {
	ent.Schema
}

// Fields of the Cursor.
func (Cursor) Fields() []ent.Field {
	return []ent.Field{
		field.String("stream_type").
			Immutable(),
		field.String("stream_id").
			Immutable(),
		field.String("consumer_id").
			Immutable(),
		field.Int64("position").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Cursor.
func (Cursor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_type", "stream_id", "consumer_id").
			Unique(),
	}
}
