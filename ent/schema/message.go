package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity — one mailbox
// entry. Delivery order within a mailbox equals the sequence order of the
// squawk_sent events that produced the rows.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("mailbox_id").
			Immutable(),
		field.String("sender_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("thread_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("type").
			Immutable(),
		field.JSON("content", map[string]interface{}{}).
			Immutable(),
		field.Enum("priority").
			Values("low", "normal", "high", "urgent").
			Default("normal"),
		field.Enum("status").
			Values("pending", "read", "acked").
			Default("pending"),
		field.Int64("sequence_number").
			Immutable().
			Comment("Sequence of the generating squawk_sent event; mailbox FIFO order"),
		field.JSON("response", map[string]interface{}{}).
			Optional().
			Comment("Attached on ack"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("read_at").
			Optional().
			Nillable(),
		field.Time("acked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mailbox_id", "sequence_number"),
		index.Fields("mailbox_id", "status"),
		index.Fields("thread_id"),
	}
}
