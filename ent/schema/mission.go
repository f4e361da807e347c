package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mission holds the schema definition for the Mission entity — a parent goal
// decomposed into a DAG of sorties. Rows are a projection of the event log;
// only the projection engine writes them.
type Mission struct {
	ent.Schema
}

// Fields of the Mission.
func (Mission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mission_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "review", "completed", "cancelled").
			Default("pending"),
		field.Enum("priority").
			Values("low", "normal", "high", "urgent").
			Default("normal"),
		field.String("strategy").
			Optional().
			Comment("Decomposition strategy recorded by the planner (informational)"),
		field.Int("total_sorties").
			Default(0),
		field.Int("completed_sorties").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_activity_at").
			Optional().
			Nillable().
			Comment("For compaction detection on startup"),
	}
}

// Edges of the Mission.
func (Mission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sorties", Sortie.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Mission.
func (Mission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "last_activity_at"),
		index.Fields("created_at"),
	}
}
