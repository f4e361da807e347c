package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sortie holds the schema definition for the Sortie entity — a leaf unit of
// work executed by a single specialist.
type Sortie struct {
	ent.Schema
}

// Fields of the Sortie.
func (Sortie) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sortie_id").
			Unique().
			Immutable(),
		field.String("mission_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "assigned", "in_progress", "blocked", "review",
				"completed", "cancelled", "failed").
			Default("pending"),
		field.String("assigned_to").
			Optional().
			Nillable().
			Comment("Specialist id; only the assignee may start/progress/complete"),
		field.Enum("priority").
			Values("low", "normal", "high", "urgent").
			Default("normal"),
		field.Int("progress").
			Default(0).
			Comment("0–100, monotone within an in_progress episode"),
		field.JSON("files", []string{}).
			Optional().
			Comment("Files the sortie declares it will touch"),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("Sortie ids within the same mission; the graph is a DAG"),
		field.String("blocked_by").
			Optional().
			Nillable().
			Comment("Dependency sortie id or lock id, per category"),
		field.String("blocked_reason").
			Optional().
			Nillable(),
		field.Enum("blocked_category").
			Values("dependency", "file_conflict", "error", "clarification").
			Optional().
			Nillable(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Completion summary, touched files, tests_passed"),
		field.Text("review_feedback").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("assigned_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("blocked_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Sortie.
func (Sortie) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("sorties").
			Field("mission_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Sortie.
func (Sortie) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id", "status"),
		index.Fields("status"),
		index.Fields("assigned_to"),
		index.Fields("status", "blocked_at"),
	}
}
