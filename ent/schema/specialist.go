package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Specialist holds the schema definition for the Specialist entity — a worker
// agent assigned to at most one sortie at a time.
type Specialist struct {
	ent.Schema
}

// Fields of the Specialist.
func (Specialist) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("specialist_id").
			Unique().
			Immutable(),
		field.String("name").
			Optional(),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.Enum("status").
			Values("spawned", "registered", "working", "blocked", "completing",
				"completed", "failed", "stale").
			Default("spawned"),
		field.String("current_sortie").
			Optional().
			Nillable(),
		field.String("mission_id").
			Optional().
			Nillable(),
		field.Time("last_seen").
			Default(time.Now).
			Comment("Heartbeat timestamp for staleness detection"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Specialist.
func (Specialist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "last_seen"),
		index.Fields("current_sortie"),
		index.Fields("mission_id"),
	}
}
