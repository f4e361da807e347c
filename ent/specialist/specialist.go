// Code generated by ent, DO NOT EDIT.

package specialist

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the specialist type in the database.
	Label = "specialist"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "specialist_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentSortie holds the string denoting the current_sortie field in the database.
	FieldCurrentSortie = "current_sortie"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the specialist in the database.
	Table = "specialists"
)

// Columns holds all SQL columns for specialist fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCapabilities,
	FieldStatus,
	FieldCurrentSortie,
	FieldMissionID,
	FieldLastSeen,
	FieldMetadata,
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
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusSpawned is the default value of the Status enum.
const DefaultStatus = StatusSpawned

// Status values.
const (
	StatusSpawned    Status = "spawned"
	StatusRegistered Status = "registered"
	StatusWorking    Status = "working"
	StatusBlocked    Status = "blocked"
	StatusCompleting Status = "completing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusStale      Status = "stale"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSpawned, StatusRegistered, StatusWorking, StatusBlocked, StatusCompleting, StatusCompleted, StatusFailed, StatusStale:
		return nil
	default:
		return fmt.Errorf("specialist: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Specialist queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentSortie orders the results by the current_sortie field.
func ByCurrentSortie(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentSortie, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
