// Code generated by ent, DO NOT EDIT.

package filelock

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the filelock type in the database.
	Label = "file_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lock_id"
	// FieldFile holds the string denoting the file field in the database.
	FieldFile = "file"
	// FieldNormalizedPath holds the string denoting the normalized_path field in the database.
	FieldNormalizedPath = "normalized_path"
	// FieldReservedBy holds the string denoting the reserved_by field in the database.
	FieldReservedBy = "reserved_by"
	// FieldReservedAt holds the string denoting the reserved_at field in the database.
	FieldReservedAt = "reserved_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// FieldPurpose holds the string denoting the purpose field in the database.
	FieldPurpose = "purpose"
	// FieldChecksum holds the string denoting the checksum field in the database.
	FieldChecksum = "checksum"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReleaseReason holds the string denoting the release_reason field in the database.
	FieldReleaseReason = "release_reason"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the filelock in the database.
	Table = "file_locks"
)

// Columns holds all SQL columns for filelock fields.
var Columns = []string{
	FieldID,
	FieldFile,
	FieldNormalizedPath,
	FieldReservedBy,
	FieldReservedAt,
	FieldExpiresAt,
	FieldReleasedAt,
	FieldPurpose,
	FieldChecksum,
	FieldStatus,
	FieldReleaseReason,
	FieldMetadata,
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
	// DefaultReservedAt holds the default value on creation for the "reserved_at" field.
	DefaultReservedAt func() time.Time
)

// Purpose defines the type for the "purpose" enum field.
type Purpose string

// PurposeEdit is the default value of the Purpose enum.
const DefaultPurpose = PurposeEdit

// Purpose values.
const (
	PurposeEdit   Purpose = "edit"
	PurposeRead   Purpose = "read"
	PurposeDelete Purpose = "delete"
)

func (pu Purpose) String() string {
	return string(pu)
}

// PurposeValidator is a validator for the "purpose" field enum values. It is called by the builders before save.
func PurposeValidator(pu Purpose) error {
	switch pu {
	case PurposeEdit, PurposeRead, PurposeDelete:
		return nil
	default:
		return fmt.Errorf("filelock: invalid enum value for purpose field: %q", pu)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive        Status = "active"
	StatusReleased      Status = "released"
	StatusExpired       Status = "expired"
	StatusForceReleased Status = "force_released"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusReleased, StatusExpired, StatusForceReleased:
		return nil
	default:
		return fmt.Errorf("filelock: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the FileLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFile orders the results by the file field.
func ByFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFile, opts...).ToFunc()
}

// ByNormalizedPath orders the results by the normalized_path field.
func ByNormalizedPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedPath, opts...).ToFunc()
}

// ByReservedBy orders the results by the reserved_by field.
func ByReservedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservedBy, opts...).ToFunc()
}

// ByReservedAt orders the results by the reserved_at field.
func ByReservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByReleasedAt orders the results by the released_at field.
func ByReleasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleasedAt, opts...).ToFunc()
}

// ByPurpose orders the results by the purpose field.
func ByPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurpose, opts...).ToFunc()
}

// ByChecksum orders the results by the checksum field.
func ByChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChecksum, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReleaseReason orders the results by the release_reason field.
func ByReleaseReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleaseReason, opts...).ToFunc()
}
