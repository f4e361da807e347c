// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldProgressPercent holds the string denoting the progress_percent field in the database.
	FieldProgressPercent = "progress_percent"
	// FieldMilestonePercent holds the string denoting the milestone_percent field in the database.
	FieldMilestonePercent = "milestone_percent"
	// FieldSorties holds the string denoting the sorties field in the database.
	FieldSorties = "sorties"
	// FieldActiveLocks holds the string denoting the active_locks field in the database.
	FieldActiveLocks = "active_locks"
	// FieldPendingMessages holds the string denoting the pending_messages field in the database.
	FieldPendingMessages = "pending_messages"
	// FieldRecoveryContext holds the string denoting the recovery_context field in the database.
	FieldRecoveryContext = "recovery_context"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldLastEventSequence holds the string denoting the last_event_sequence field in the database.
	FieldLastEventSequence = "last_event_sequence"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldLatest holds the string denoting the latest field in the database.
	FieldLatest = "latest"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMission holds the string denoting the mission edge name in mutations.
	EdgeMission = "mission"
	// MissionFieldID holds the string denoting the ID field of the Mission.
	MissionFieldID = "mission_id"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
	// MissionTable is the table that holds the mission relation/edge.
	MissionTable = "checkpoints"
	// MissionInverseTable is the table name for the Mission entity.
	// It exists in this package in order to avoid circular dependency with the "mission" package.
	MissionInverseTable = "missions"
	// MissionColumn is the table column denoting the mission relation/edge.
	MissionColumn = "mission_id"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldMissionID,
	FieldTrigger,
	FieldProgressPercent,
	FieldMilestonePercent,
	FieldSorties,
	FieldActiveLocks,
	FieldPendingMessages,
	FieldRecoveryContext,
	FieldCreatedBy,
	FieldSchemaVersion,
	FieldLastEventSequence,
	FieldSizeBytes,
	FieldLatest,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMilestonePercent holds the default value on creation for the "milestone_percent" field.
	DefaultMilestonePercent int
	// DefaultSchemaVersion holds the default value on creation for the "schema_version" field.
	DefaultSchemaVersion int
	// DefaultSizeBytes holds the default value on creation for the "size_bytes" field.
	DefaultSizeBytes int64
	// DefaultLatest holds the default value on creation for the "latest" field.
	DefaultLatest bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Trigger defines the type for the "trigger" enum field.
type Trigger string

// Trigger values.
const (
	TriggerProgress   Trigger = "progress"
	TriggerError      Trigger = "error"
	TriggerManual     Trigger = "manual"
	TriggerCompaction Trigger = "compaction"
)

func (t Trigger) String() string {
	return string(t)
}

// TriggerValidator is a validator for the "trigger" field enum values. It is called by the builders before save.
func TriggerValidator(t Trigger) error {
	switch t {
	case TriggerProgress, TriggerError, TriggerManual, TriggerCompaction:
		return nil
	default:
		return fmt.Errorf("checkpoint: invalid enum value for trigger field: %q", t)
	}
}

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByProgressPercent orders the results by the progress_percent field.
func ByProgressPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercent, opts...).ToFunc()
}

// ByMilestonePercent orders the results by the milestone_percent field.
func ByMilestonePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMilestonePercent, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByLastEventSequence orders the results by the last_event_sequence field.
func ByLastEventSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEventSequence, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByLatest orders the results by the latest field.
func ByLatest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatest, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMissionField orders the results by mission field.
func ByMissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMissionStep(), sql.OrderByField(field, opts...))
	}
}
func newMissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MissionInverseTable, MissionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MissionTable, MissionColumn),
	)
}
