// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/sortie"
)

// Sortie is the model entity for the Sortie schema.
type Sortie struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MissionID holds the value of the "mission_id" field.
	MissionID *string `json:"mission_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status sortie.Status `json:"status,omitempty"`
	// Specialist id; only the assignee may start/progress/complete
	AssignedTo *string `json:"assigned_to,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority sortie.Priority `json:"priority,omitempty"`
	// 0–100, monotone within an in_progress episode
	Progress int `json:"progress,omitempty"`
	// Files the sortie declares it will touch
	Files []string `json:"files,omitempty"`
	// Sortie ids within the same mission; the graph is a DAG
	Dependencies []string `json:"dependencies,omitempty"`
	// Dependency sortie id or lock id, per category
	BlockedBy *string `json:"blocked_by,omitempty"`
	// BlockedReason holds the value of the "blocked_reason" field.
	BlockedReason *string `json:"blocked_reason,omitempty"`
	// BlockedCategory holds the value of the "blocked_category" field.
	BlockedCategory *sortie.BlockedCategory `json:"blocked_category,omitempty"`
	// Completion summary, touched files, tests_passed
	Result map[string]interface{} `json:"result,omitempty"`
	// ReviewFeedback holds the value of the "review_feedback" field.
	ReviewFeedback *string `json:"review_feedback,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// AssignedAt holds the value of the "assigned_at" field.
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// BlockedAt holds the value of the "blocked_at" field.
	BlockedAt *time.Time `json:"blocked_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SortieQuery when eager-loading is set.
	Edges        SortieEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SortieEdges holds the relations/edges for other nodes in the graph.
type SortieEdges struct {
	// Mission holds the value of the mission edge.
	Mission *Mission `json:"mission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MissionOrErr returns the Mission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SortieEdges) MissionOrErr() (*Mission, error) {
	if e.Mission != nil {
		return e.Mission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: mission.Label}
	}
	return nil, &NotLoadedError{edge: "mission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sortie) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sortie.FieldFiles, sortie.FieldDependencies, sortie.FieldResult:
			values[i] = new([]byte)
		case sortie.FieldProgress:
			values[i] = new(sql.NullInt64)
		case sortie.FieldID, sortie.FieldMissionID, sortie.FieldTitle, sortie.FieldDescription, sortie.FieldStatus, sortie.FieldAssignedTo, sortie.FieldPriority, sortie.FieldBlockedBy, sortie.FieldBlockedReason, sortie.FieldBlockedCategory, sortie.FieldReviewFeedback:
			values[i] = new(sql.NullString)
		case sortie.FieldCreatedAt, sortie.FieldAssignedAt, sortie.FieldStartedAt, sortie.FieldBlockedAt, sortie.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sortie fields.
func (_m *Sortie) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sortie.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sortie.FieldMissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mission_id", values[i])
			} else if value.Valid {
				_m.MissionID = new(string)
				*_m.MissionID = value.String
			}
		case sortie.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case sortie.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case sortie.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sortie.Status(value.String)
			}
		case sortie.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = new(string)
				*_m.AssignedTo = value.String
			}
		case sortie.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = sortie.Priority(value.String)
			}
		case sortie.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case sortie.FieldFiles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field files", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Files); err != nil {
					return fmt.Errorf("unmarshal field files: %w", err)
				}
			}
		case sortie.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case sortie.FieldBlockedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_by", values[i])
			} else if value.Valid {
				_m.BlockedBy = new(string)
				*_m.BlockedBy = value.String
			}
		case sortie.FieldBlockedReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_reason", values[i])
			} else if value.Valid {
				_m.BlockedReason = new(string)
				*_m.BlockedReason = value.String
			}
		case sortie.FieldBlockedCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_category", values[i])
			} else if value.Valid {
				_m.BlockedCategory = new(sortie.BlockedCategory)
				*_m.BlockedCategory = sortie.BlockedCategory(value.String)
			}
		case sortie.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case sortie.FieldReviewFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_feedback", values[i])
			} else if value.Valid {
				_m.ReviewFeedback = new(string)
				*_m.ReviewFeedback = value.String
			}
		case sortie.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sortie.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = new(time.Time)
				*_m.AssignedAt = value.Time
			}
		case sortie.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case sortie.FieldBlockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_at", values[i])
			} else if value.Valid {
				_m.BlockedAt = new(time.Time)
				*_m.BlockedAt = value.Time
			}
		case sortie.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sortie.
// This includes values selected through modifiers, order, etc.
func (_m *Sortie) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMission queries the "mission" edge of the Sortie entity.
func (_m *Sortie) QueryMission() *MissionQuery {
	return NewSortieClient(_m.config).QueryMission(_m)
}

// Update returns a builder for updating this Sortie.
// Note that you need to call Sortie.Unwrap() before calling this method if this Sortie
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sortie) Update() *SortieUpdateOne {
	return NewSortieClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sortie entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sortie) Unwrap() *Sortie {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sortie is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sortie) String() string {
	var builder strings.Builder
	builder.WriteString("Sortie(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.MissionID; v != nil {
		builder.WriteString("mission_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AssignedTo; v != nil {
		builder.WriteString("assigned_to=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("files=")
	builder.WriteString(fmt.Sprintf("%v", _m.Files))
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dependencies))
	builder.WriteString(", ")
	if v := _m.BlockedBy; v != nil {
		builder.WriteString("blocked_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BlockedReason; v != nil {
		builder.WriteString("blocked_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BlockedCategory; v != nil {
		builder.WriteString("blocked_category=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	if v := _m.ReviewFeedback; v != nil {
		builder.WriteString("review_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AssignedAt; v != nil {
		builder.WriteString("assigned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BlockedAt; v != nil {
		builder.WriteString("blocked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Sorties is a parsable slice of Sortie.
type Sorties []*Sortie
