// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArchivedEventsColumns holds the columns for the "archived_events" table.
	ArchivedEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt64, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "stream_type", Type: field.TypeString},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "causation_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "schema_version", Type: field.TypeInt, Default: 1},
		{Name: "archived_at", Type: field.TypeTime},
	}
	// ArchivedEventsTable holds the schema information for the "archived_events" table.
	ArchivedEventsTable = &schema.Table{
		Name:       "archived_events",
		Columns:    ArchivedEventsColumns,
		PrimaryKey: []*schema.Column{ArchivedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "archivedevent_stream_type_stream_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{ArchivedEventsColumns[3], ArchivedEventsColumns[4], ArchivedEventsColumns[1]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"progress", "error", "manual", "compaction"}},
		{Name: "progress_percent", Type: field.TypeInt},
		{Name: "milestone_percent", Type: field.TypeInt, Default: 0},
		{Name: "sorties", Type: field.TypeJSON},
		{Name: "active_locks", Type: field.TypeJSON, Nullable: true},
		{Name: "pending_messages", Type: field.TypeJSON, Nullable: true},
		{Name: "recovery_context", Type: field.TypeJSON},
		{Name: "created_by", Type: field.TypeString},
		{Name: "schema_version", Type: field.TypeInt, Default: 1},
		{Name: "last_event_sequence", Type: field.TypeInt64},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "latest", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "mission_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_missions_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[14]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_mission_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[14], CheckpointsColumns[13]},
			},
			{
				Name:    "checkpoint_mission_id",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "latest",
				},
			},
		},
	}
	// CursorsColumns holds the columns for the "cursors" table.
	CursorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stream_type", Type: field.TypeString},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "consumer_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CursorsTable holds the schema information for the "cursors" table.
	CursorsTable = &schema.Table{
		Name:       "cursors",
		Columns:    CursorsColumns,
		PrimaryKey: []*schema.Column{CursorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cursor_stream_type_stream_id_consumer_id",
				Unique:  true,
				Columns: []*schema.Column{CursorsColumns[1], CursorsColumns[2], CursorsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt64, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "stream_type", Type: field.TypeString},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "causation_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "schema_version", Type: field.TypeInt, Default: 1},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_stream_type_stream_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3], EventsColumns[4], EventsColumns[1]},
			},
			{
				Name:    "event_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[7]},
			},
			{
				Name:    "event_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[10]},
			},
		},
	}
	// FileLocksColumns holds the columns for the "file_locks" table.
	FileLocksColumns = []*schema.Column{
		{Name: "lock_id", Type: field.TypeString, Unique: true},
		{Name: "file", Type: field.TypeString},
		{Name: "normalized_path", Type: field.TypeString},
		{Name: "reserved_by", Type: field.TypeString},
		{Name: "reserved_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "purpose", Type: field.TypeEnum, Enums: []string{"edit", "read", "delete"}, Default: "edit"},
		{Name: "checksum", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "released", "expired", "force_released"}, Default: "active"},
		{Name: "release_reason", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// FileLocksTable holds the schema information for the "file_locks" table.
	FileLocksTable = &schema.Table{
		Name:       "file_locks",
		Columns:    FileLocksColumns,
		PrimaryKey: []*schema.Column{FileLocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "filelock_normalized_path",
				Unique:  true,
				Columns: []*schema.Column{FileLocksColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'active'",
				},
			},
			{
				Name:    "filelock_reserved_by_status",
				Unique:  false,
				Columns: []*schema.Column{FileLocksColumns[3], FileLocksColumns[9]},
			},
			{
				Name:    "filelock_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{FileLocksColumns[9], FileLocksColumns[5]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "mailbox_id", Type: field.TypeString},
		{Name: "sender_id", Type: field.TypeString, Nullable: true},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeString},
		{Name: "content", Type: field.TypeJSON},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "normal", "high", "urgent"}, Default: "normal"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "read", "acked"}, Default: "pending"},
		{Name: "sequence_number", Type: field.TypeInt64},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "acked_at", Type: field.TypeTime, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_mailbox_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[8]},
			},
			{
				Name:    "message_mailbox_id_status",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[7]},
			},
			{
				Name:    "message_thread_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3]},
			},
		},
	}
	// MissionsColumns holds the columns for the "missions" table.
	MissionsColumns = []*schema.Column{
		{Name: "mission_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "review", "completed", "cancelled"}, Default: "pending"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "normal", "high", "urgent"}, Default: "normal"},
		{Name: "strategy", Type: field.TypeString, Nullable: true},
		{Name: "total_sorties", Type: field.TypeInt, Default: 0},
		{Name: "completed_sorties", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
	}
	// MissionsTable holds the schema information for the "missions" table.
	MissionsTable = &schema.Table{
		Name:       "missions",
		Columns:    MissionsColumns,
		PrimaryKey: []*schema.Column{MissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mission_status",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[3]},
			},
			{
				Name:    "mission_status_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[3], MissionsColumns[11]},
			},
			{
				Name:    "mission_created_at",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[8]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stream_type", Type: field.TypeString},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "from_sequence", Type: field.TypeInt64},
		{Name: "to_sequence", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_stream_type_stream_id_to_sequence",
				Unique:  true,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[2], SnapshotsColumns[5]},
			},
		},
	}
	// SortiesColumns holds the columns for the "sorties" table.
	SortiesColumns = []*schema.Column{
		{Name: "sortie_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "assigned", "in_progress", "blocked", "review", "completed", "cancelled", "failed"}, Default: "pending"},
		{Name: "assigned_to", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "normal", "high", "urgent"}, Default: "normal"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "files", Type: field.TypeJSON, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "blocked_by", Type: field.TypeString, Nullable: true},
		{Name: "blocked_reason", Type: field.TypeString, Nullable: true},
		{Name: "blocked_category", Type: field.TypeEnum, Nullable: true, Enums: []string{"dependency", "file_conflict", "error", "clarification"}},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "review_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "blocked_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "mission_id", Type: field.TypeString, Nullable: true},
	}
	// SortiesTable holds the schema information for the "sorties" table.
	SortiesTable = &schema.Table{
		Name:       "sorties",
		Columns:    SortiesColumns,
		PrimaryKey: []*schema.Column{SortiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sorties_missions_sorties",
				Columns:    []*schema.Column{SortiesColumns[19]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sortie_mission_id_status",
				Unique:  false,
				Columns: []*schema.Column{SortiesColumns[19], SortiesColumns[3]},
			},
			{
				Name:    "sortie_status",
				Unique:  false,
				Columns: []*schema.Column{SortiesColumns[3]},
			},
			{
				Name:    "sortie_assigned_to",
				Unique:  false,
				Columns: []*schema.Column{SortiesColumns[4]},
			},
			{
				Name:    "sortie_status_blocked_at",
				Unique:  false,
				Columns: []*schema.Column{SortiesColumns[3], SortiesColumns[17]},
			},
		},
	}
	// SpecialistsColumns holds the columns for the "specialists" table.
	SpecialistsColumns = []*schema.Column{
		{Name: "specialist_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"spawned", "registered", "working", "blocked", "completing", "completed", "failed", "stale"}, Default: "spawned"},
		{Name: "current_sortie", Type: field.TypeString, Nullable: true},
		{Name: "mission_id", Type: field.TypeString, Nullable: true},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SpecialistsTable holds the schema information for the "specialists" table.
	SpecialistsTable = &schema.Table{
		Name:       "specialists",
		Columns:    SpecialistsColumns,
		PrimaryKey: []*schema.Column{SpecialistsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "specialist_status",
				Unique:  false,
				Columns: []*schema.Column{SpecialistsColumns[3]},
			},
			{
				Name:    "specialist_status_last_seen",
				Unique:  false,
				Columns: []*schema.Column{SpecialistsColumns[3], SpecialistsColumns[6]},
			},
			{
				Name:    "specialist_current_sortie",
				Unique:  false,
				Columns: []*schema.Column{SpecialistsColumns[4]},
			},
			{
				Name:    "specialist_mission_id",
				Unique:  false,
				Columns: []*schema.Column{SpecialistsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArchivedEventsTable,
		CheckpointsTable,
		CursorsTable,
		EventsTable,
		FileLocksTable,
		MessagesTable,
		MissionsTable,
		SnapshotsTable,
		SortiesTable,
		SpecialistsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = MissionsTable
	SortiesTable.ForeignKeys[0].RefTable = MissionsTable
}
