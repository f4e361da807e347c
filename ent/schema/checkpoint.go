package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity — a
// durable snapshot of mission state plus the context needed to resume it.
// Checkpoints are dual-stored: this row and a JSON file under the state dir.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("mission_id").
			Immutable(),
		field.Enum("trigger").
			Values("progress", "error", "manual", "compaction").
			Immutable(),
		field.Int("progress_percent").
			Immutable(),
		field.Int("milestone_percent").
			Default(0).
			Immutable().
			Comment("Progress threshold that triggered this checkpoint, 0 otherwise"),
		field.JSON("sorties", []map[string]interface{}{}).
			Immutable().
			Comment("Snapshots of all non-terminal sorties at checkpoint time"),
		field.JSON("active_locks", []map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("pending_messages", []map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("recovery_context", map[string]interface{}{}).
			Immutable(),
		field.String("created_by").
			Immutable(),
		field.Int("schema_version").
			Default(1).
			Immutable(),
		field.Int64("last_event_sequence").
			Immutable(),
		field.Int64("size_bytes").
			Default(0).
			Immutable(),
		field.Bool("latest").
			Default(true).
			Comment("Exactly one latest checkpoint per mission"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("checkpoints").
			Field("mission_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id", "created_at"),
		index.Fields("mission_id").
			Unique().
			Annotations(entsql.IndexWhere("latest")),
	}
}
