// Code generated by ent, DO NOT EDIT.

package sortie

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sortie type in the database.
	Label = "sortie"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sortie_id"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssignedTo holds the string denoting the assigned_to field in the database.
	FieldAssignedTo = "assigned_to"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldFiles holds the string denoting the files field in the database.
	FieldFiles = "files"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldBlockedBy holds the string denoting the blocked_by field in the database.
	FieldBlockedBy = "blocked_by"
	// FieldBlockedReason holds the string denoting the blocked_reason field in the database.
	FieldBlockedReason = "blocked_reason"
	// FieldBlockedCategory holds the string denoting the blocked_category field in the database.
	FieldBlockedCategory = "blocked_category"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldReviewFeedback holds the string denoting the review_feedback field in the database.
	FieldReviewFeedback = "review_feedback"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAssignedAt holds the string denoting the assigned_at field in the database.
	FieldAssignedAt = "assigned_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldBlockedAt holds the string denoting the blocked_at field in the database.
	FieldBlockedAt = "blocked_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeMission holds the string denoting the mission edge name in mutations.
	EdgeMission = "mission"
	// MissionFieldID holds the string denoting the ID field of the Mission.
	MissionFieldID = "mission_id"
	// Table holds the table name of the sortie in the database.
	Table = "sorties"
	// MissionTable is the table that holds the mission relation/edge.
	MissionTable = "sorties"
	// MissionInverseTable is the table name for the Mission entity.
	// It exists in this package in order to avoid circular dependency with the "mission" package.
	MissionInverseTable = "missions"
	// MissionColumn is the table column denoting the mission relation/edge.
	MissionColumn = "mission_id"
)

// Columns holds all SQL columns for sortie fields.
var Columns = []string{
	FieldID,
	FieldMissionID,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldAssignedTo,
	FieldPriority,
	FieldProgress,
	FieldFiles,
	FieldDependencies,
	FieldBlockedBy,
	FieldBlockedReason,
	FieldBlockedCategory,
	FieldResult,
	FieldReviewFeedback,
	FieldCreatedAt,
	FieldAssignedAt,
	FieldStartedAt,
	FieldBlockedAt,
	FieldCompletedAt,
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
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusBlocked, StatusReview, StatusCompleted, StatusCancelled, StatusFailed:
		return nil
	default:
		return fmt.Errorf("sortie: invalid enum value for status field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityNormal is the default value of the Priority enum.
const DefaultPriority = PriorityNormal

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("sortie: invalid enum value for priority field: %q", pr)
	}
}

// BlockedCategory defines the type for the "blocked_category" enum field.
type BlockedCategory string

// BlockedCategory values.
const (
	BlockedCategoryDependency    BlockedCategory = "dependency"
	BlockedCategoryFileConflict  BlockedCategory = "file_conflict"
	BlockedCategoryError         BlockedCategory = "error"
	BlockedCategoryClarification BlockedCategory = "clarification"
)

func (bc BlockedCategory) String() string {
	return string(bc)
}

// BlockedCategoryValidator is a validator for the "blocked_category" field enum values. It is called by the builders before save.
func BlockedCategoryValidator(bc BlockedCategory) error {
	switch bc {
	case BlockedCategoryDependency, BlockedCategoryFileConflict, BlockedCategoryError, BlockedCategoryClarification:
		return nil
	default:
		return fmt.Errorf("sortie: invalid enum value for blocked_category field: %q", bc)
	}
}

// OrderOption defines the ordering options for the Sortie queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssignedTo orders the results by the assigned_to field.
func ByAssignedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedTo, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByBlockedBy orders the results by the blocked_by field.
func ByBlockedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockedBy, opts...).ToFunc()
}

// ByBlockedReason orders the results by the blocked_reason field.
func ByBlockedReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockedReason, opts...).ToFunc()
}

// ByBlockedCategory orders the results by the blocked_category field.
func ByBlockedCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockedCategory, opts...).ToFunc()
}

// ByReviewFeedback orders the results by the review_feedback field.
func ByReviewFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewFeedback, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAssignedAt orders the results by the assigned_at field.
func ByAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByBlockedAt orders the results by the blocked_at field.
func ByBlockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
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
