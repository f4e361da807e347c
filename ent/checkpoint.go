// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleettools/fleetd/ent/checkpoint"
	"github.com/fleettools/fleetd/ent/mission"
)

// Checkpoint is the model entity for the Checkpoint schema.
type Checkpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MissionID holds the value of the "mission_id" field.
	MissionID string `json:"mission_id,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger checkpoint.Trigger `json:"trigger,omitempty"`
	// ProgressPercent holds the value of the "progress_percent" field.
	ProgressPercent int `json:"progress_percent,omitempty"`
	// Progress threshold that triggered this checkpoint, 0 otherwise
	MilestonePercent int `json:"milestone_percent,omitempty"`
	// Snapshots of all non-terminal sorties at checkpoint time
	Sorties []map[string]interface{} `json:"sorties,omitempty"`
	// ActiveLocks holds the value of the "active_locks" field.
	ActiveLocks []map[string]interface{} `json:"active_locks,omitempty"`
	// PendingMessages holds the value of the "pending_messages" field.
	PendingMessages []map[string]interface{} `json:"pending_messages,omitempty"`
	// RecoveryContext holds the value of the "recovery_context" field.
	RecoveryContext map[string]interface{} `json:"recovery_context,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// SchemaVersion holds the value of the "schema_version" field.
	SchemaVersion int `json:"schema_version,omitempty"`
	// LastEventSequence holds the value of the "last_event_sequence" field.
	LastEventSequence int64 `json:"last_event_sequence,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int64 `json:"size_bytes,omitempty"`
	// Exactly one latest checkpoint per mission
	Latest bool `json:"latest,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckpointQuery when eager-loading is set.
	Edges        CheckpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckpointEdges holds the relations/edges for other nodes in the graph.
type CheckpointEdges struct {
	// Mission holds the value of the mission edge.
	Mission *Mission `json:"mission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MissionOrErr returns the Mission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckpointEdges) MissionOrErr() (*Mission, error) {
	if e.Mission != nil {
		return e.Mission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: mission.Label}
	}
	return nil, &NotLoadedError{edge: "mission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldSorties, checkpoint.FieldActiveLocks, checkpoint.FieldPendingMessages, checkpoint.FieldRecoveryContext:
			values[i] = new([]byte)
		case checkpoint.FieldLatest:
			values[i] = new(sql.NullBool)
		case checkpoint.FieldProgressPercent, checkpoint.FieldMilestonePercent, checkpoint.FieldSchemaVersion, checkpoint.FieldLastEventSequence, checkpoint.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case checkpoint.FieldID, checkpoint.FieldMissionID, checkpoint.FieldTrigger, checkpoint.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case checkpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkpoint fields.
func (_m *Checkpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkpoint.FieldMissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mission_id", values[i])
			} else if value.Valid {
				_m.MissionID = value.String
			}
		case checkpoint.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = checkpoint.Trigger(value.String)
			}
		case checkpoint.FieldProgressPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percent", values[i])
			} else if value.Valid {
				_m.ProgressPercent = int(value.Int64)
			}
		case checkpoint.FieldMilestonePercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field milestone_percent", values[i])
			} else if value.Valid {
				_m.MilestonePercent = int(value.Int64)
			}
		case checkpoint.FieldSorties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sorties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sorties); err != nil {
					return fmt.Errorf("unmarshal field sorties: %w", err)
				}
			}
		case checkpoint.FieldActiveLocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field active_locks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActiveLocks); err != nil {
					return fmt.Errorf("unmarshal field active_locks: %w", err)
				}
			}
		case checkpoint.FieldPendingMessages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pending_messages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PendingMessages); err != nil {
					return fmt.Errorf("unmarshal field pending_messages: %w", err)
				}
			}
		case checkpoint.FieldRecoveryContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecoveryContext); err != nil {
					return fmt.Errorf("unmarshal field recovery_context: %w", err)
				}
			}
		case checkpoint.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case checkpoint.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = int(value.Int64)
			}
		case checkpoint.FieldLastEventSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_event_sequence", values[i])
			} else if value.Valid {
				_m.LastEventSequence = value.Int64
			}
		case checkpoint.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = value.Int64
			}
		case checkpoint.FieldLatest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field latest", values[i])
			} else if value.Valid {
				_m.Latest = value.Bool
			}
		case checkpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Checkpoint.
// This includes values selected through modifiers, order, etc.
func (_m *Checkpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMission queries the "mission" edge of the Checkpoint entity.
func (_m *Checkpoint) QueryMission() *MissionQuery {
	return NewCheckpointClient(_m.config).QueryMission(_m)
}

// Update returns a builder for updating this Checkpoint.
// Note that you need to call Checkpoint.Unwrap() before calling this method if this Checkpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkpoint) Update() *CheckpointUpdateOne {
	return NewCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkpoint) Unwrap() *Checkpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Checkpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkpoint) String() string {
	var builder strings.Builder
	builder.WriteString("Checkpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mission_id=")
	builder.WriteString(_m.MissionID)
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trigger))
	builder.WriteString(", ")
	builder.WriteString("progress_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercent))
	builder.WriteString(", ")
	builder.WriteString("milestone_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.MilestonePercent))
	builder.WriteString(", ")
	builder.WriteString("sorties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sorties))
	builder.WriteString(", ")
	builder.WriteString("active_locks=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveLocks))
	builder.WriteString(", ")
	builder.WriteString("pending_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.PendingMessages))
	builder.WriteString(", ")
	builder.WriteString("recovery_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryContext))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemaVersion))
	builder.WriteString(", ")
	builder.WriteString("last_event_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastEventSequence))
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("latest=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latest))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Checkpoints is a parsable slice of Checkpoint.
type Checkpoints []*Checkpoint
