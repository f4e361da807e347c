package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileLock holds the schema definition for the FileLock entity — a
// time-limited exclusive claim on a canonicalised file path (CTK reservation).
type FileLock struct {
	ent.Schema
}

// Fields of the FileLock.
func (FileLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lock_id").
			Unique().
			Immutable(),
		field.String("file").
			Immutable().
			Comment("Path as supplied by the caller"),
		field.String("normalized_path").
			Immutable().
			Comment("Absolute, symlink-resolved path; uniqueness domain for active locks"),
		field.String("reserved_by").
			Immutable().
			Comment("Owning specialist id"),
		field.Time("reserved_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
		field.Time("released_at").
			Optional().
			Nillable(),
		field.Enum("purpose").
			Values("edit", "read", "delete").
			Default("edit"),
		field.String("checksum").
			Optional().
			Comment("Caller-supplied content checksum, surfaced on conflict"),
		field.Enum("status").
			Values("active", "released", "expired", "force_released").
			Default("active"),
		field.String("release_reason").
			Optional().
			Comment("Populated on force release"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Carries original_lock_id after recovery re-acquisition"),
	}
}

// Indexes of the FileLock.
func (FileLock) Indexes() []ent.Index {
	return []ent.Index{
		// The store-level guarantee behind the projection invariant:
		// at most one active lock per canonical path.
		index.Fields("normalized_path").
			Unique().
			Annotations(entsql.IndexWhere("status = 'active'")),
		index.Fields("reserved_by", "status"),
		index.Fields("status", "expires_at"),
	}
}
