// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleettools/fleetd/ent/filelock"
)

// FileLock is the model entity for the FileLock schema.
type FileLock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Path as supplied by the caller
	File string `json:"file,omitempty"`
	// Absolute, symlink-resolved path; uniqueness domain for active locks
	NormalizedPath string `json:"normalized_path,omitempty"`
	// Owning specialist id
	ReservedBy string `json:"reserved_by,omitempty"`
	// ReservedAt holds the value of the "reserved_at" field.
	ReservedAt time.Time `json:"reserved_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// ReleasedAt holds the value of the "released_at" field.
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose filelock.Purpose `json:"purpose,omitempty"`
	// Caller-supplied content checksum, surfaced on conflict
	Checksum string `json:"checksum,omitempty"`
	// Status holds the value of the "status" field.
	Status filelock.Status `json:"status,omitempty"`
	// Populated on force release
	ReleaseReason string `json:"release_reason,omitempty"`
	// Carries original_lock_id after recovery re-acquisition
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filelock.FieldMetadata:
			values[i] = new([]byte)
		case filelock.FieldID, filelock.FieldFile, filelock.FieldNormalizedPath, filelock.FieldReservedBy, filelock.FieldPurpose, filelock.FieldChecksum, filelock.FieldStatus, filelock.FieldReleaseReason:
			values[i] = new(sql.NullString)
		case filelock.FieldReservedAt, filelock.FieldExpiresAt, filelock.FieldReleasedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileLock fields.
func (_m *FileLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filelock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case filelock.FieldFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file", values[i])
			} else if value.Valid {
				_m.File = value.String
			}
		case filelock.FieldNormalizedPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_path", values[i])
			} else if value.Valid {
				_m.NormalizedPath = value.String
			}
		case filelock.FieldReservedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reserved_by", values[i])
			} else if value.Valid {
				_m.ReservedBy = value.String
			}
		case filelock.FieldReservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reserved_at", values[i])
			} else if value.Valid {
				_m.ReservedAt = value.Time
			}
		case filelock.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case filelock.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		case filelock.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = filelock.Purpose(value.String)
			}
		case filelock.FieldChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checksum", values[i])
			} else if value.Valid {
				_m.Checksum = value.String
			}
		case filelock.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = filelock.Status(value.String)
			}
		case filelock.FieldReleaseReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field release_reason", values[i])
			} else if value.Valid {
				_m.ReleaseReason = value.String
			}
		case filelock.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FileLock.
// This includes values selected through modifiers, order, etc.
func (_m *FileLock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FileLock.
// Note that you need to call FileLock.Unwrap() before calling this method if this FileLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FileLock) Update() *FileLockUpdateOne {
	return NewFileLockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FileLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FileLock) Unwrap() *FileLock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FileLock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FileLock) String() string {
	var builder strings.Builder
	builder.WriteString("FileLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file=")
	builder.WriteString(_m.File)
	builder.WriteString(", ")
	builder.WriteString("normalized_path=")
	builder.WriteString(_m.NormalizedPath)
	builder.WriteString(", ")
	builder.WriteString("reserved_by=")
	builder.WriteString(_m.ReservedBy)
	builder.WriteString(", ")
	builder.WriteString("reserved_at=")
	builder.WriteString(_m.ReservedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReleasedAt; v != nil {
		builder.WriteString("released_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("purpose=")
	builder.WriteString(fmt.Sprintf("%v", _m.Purpose))
	builder.WriteString(", ")
	builder.WriteString("checksum=")
	builder.WriteString(_m.Checksum)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("release_reason=")
	builder.WriteString(_m.ReleaseReason)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// FileLocks is a parsable slice of FileLock.
type FileLocks []*FileLock
