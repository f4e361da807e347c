// Code generated by ent, DO NOT EDIT.

package sortie

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleettools/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContainsFold(FieldID, id))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldMissionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldDescription, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldAssignedTo, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldProgress, v))
}

// BlockedBy applies equality check predicate on the "blocked_by" field. It's identical to BlockedByEQ.
func BlockedBy(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldBlockedBy, v))
}

// BlockedReason applies equality check predicate on the "blocked_reason" field. It's identical to BlockedReasonEQ.
func BlockedReason(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldBlockedReason, v))
}

// ReviewFeedback applies equality check predicate on the "review_feedback" field. It's identical to ReviewFeedbackEQ.
func ReviewFeedback(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldReviewFeedback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldCreatedAt, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldAssignedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldStartedAt, v))
}

// BlockedAt applies equality check predicate on the "blocked_at" field. It's identical to BlockedAtEQ.
func BlockedAt(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldBlockedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldCompletedAt, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDIsNil applies the IsNil predicate on the "mission_id" field.
func MissionIDIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldMissionID))
}

// MissionIDNotNil applies the NotNil predicate on the "mission_id" field.
func MissionIDNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldMissionID))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContainsFold(FieldMissionID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldStatus, vs...))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToGT applies the GT predicate on the "assigned_to" field.
func AssignedToGT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldAssignedTo, v))
}

// AssignedToGTE applies the GTE predicate on the "assigned_to" field.
func AssignedToGTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldAssignedTo, v))
}

// AssignedToLT applies the LT predicate on the "assigned_to" field.
func AssignedToLT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldAssignedTo, v))
}

// AssignedToLTE applies the LTE predicate on the "assigned_to" field.
func AssignedToLTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldAssignedTo, v))
}

// AssignedToContains applies the Contains predicate on the "assigned_to" field.
func AssignedToContains(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContains(FieldAssignedTo, v))
}

// AssignedToHasPrefix applies the HasPrefix predicate on the "assigned_to" field.
func AssignedToHasPrefix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasPrefix(FieldAssignedTo, v))
}

// AssignedToHasSuffix applies the HasSuffix predicate on the "assigned_to" field.
func AssignedToHasSuffix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasSuffix(FieldAssignedTo, v))
}

// AssignedToIsNil applies the IsNil predicate on the "assigned_to" field.
func AssignedToIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldAssignedTo))
}

// AssignedToNotNil applies the NotNil predicate on the "assigned_to" field.
func AssignedToNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldAssignedTo))
}

// AssignedToEqualFold applies the EqualFold predicate on the "assigned_to" field.
func AssignedToEqualFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEqualFold(FieldAssignedTo, v))
}

// AssignedToContainsFold applies the ContainsFold predicate on the "assigned_to" field.
func AssignedToContainsFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContainsFold(FieldAssignedTo, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldPriority, vs...))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldProgress, v))
}

// FilesIsNil applies the IsNil predicate on the "files" field.
func FilesIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldFiles))
}

// FilesNotNil applies the NotNil predicate on the "files" field.
func FilesNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldFiles))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldDependencies))
}

// BlockedByEQ applies the EQ predicate on the "blocked_by" field.
func BlockedByEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldBlockedBy, v))
}

// BlockedByNEQ applies the NEQ predicate on the "blocked_by" field.
func BlockedByNEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldBlockedBy, v))
}

// BlockedByIn applies the In predicate on the "blocked_by" field.
func BlockedByIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldBlockedBy, vs...))
}

// BlockedByNotIn applies the NotIn predicate on the "blocked_by" field.
func BlockedByNotIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldBlockedBy, vs...))
}

// BlockedByGT applies the GT predicate on the "blocked_by" field.
func BlockedByGT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldBlockedBy, v))
}

// BlockedByGTE applies the GTE predicate on the "blocked_by" field.
func BlockedByGTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldBlockedBy, v))
}

// BlockedByLT applies the LT predicate on the "blocked_by" field.
func BlockedByLT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldBlockedBy, v))
}

// BlockedByLTE applies the LTE predicate on the "blocked_by" field.
func BlockedByLTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldBlockedBy, v))
}

// BlockedByContains applies the Contains predicate on the "blocked_by" field.
func BlockedByContains(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContains(FieldBlockedBy, v))
}

// BlockedByHasPrefix applies the HasPrefix predicate on the "blocked_by" field.
func BlockedByHasPrefix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasPrefix(FieldBlockedBy, v))
}

// BlockedByHasSuffix applies the HasSuffix predicate on the "blocked_by" field.
func BlockedByHasSuffix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasSuffix(FieldBlockedBy, v))
}

// BlockedByIsNil applies the IsNil predicate on the "blocked_by" field.
func BlockedByIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldBlockedBy))
}

// BlockedByNotNil applies the NotNil predicate on the "blocked_by" field.
func BlockedByNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldBlockedBy))
}

// BlockedByEqualFold applies the EqualFold predicate on the "blocked_by" field.
func BlockedByEqualFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEqualFold(FieldBlockedBy, v))
}

// BlockedByContainsFold applies the ContainsFold predicate on the "blocked_by" field.
func BlockedByContainsFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContainsFold(FieldBlockedBy, v))
}

// BlockedReasonEQ applies the EQ predicate on the "blocked_reason" field.
func BlockedReasonEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldBlockedReason, v))
}

// BlockedReasonNEQ applies the NEQ predicate on the "blocked_reason" field.
func BlockedReasonNEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldBlockedReason, v))
}

// BlockedReasonIn applies the In predicate on the "blocked_reason" field.
func BlockedReasonIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldBlockedReason, vs...))
}

// BlockedReasonNotIn applies the NotIn predicate on the "blocked_reason" field.
func BlockedReasonNotIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldBlockedReason, vs...))
}

// BlockedReasonGT applies the GT predicate on the "blocked_reason" field.
func BlockedReasonGT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldBlockedReason, v))
}

// BlockedReasonGTE applies the GTE predicate on the "blocked_reason" field.
func BlockedReasonGTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldBlockedReason, v))
}

// BlockedReasonLT applies the LT predicate on the "blocked_reason" field.
func BlockedReasonLT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldBlockedReason, v))
}

// BlockedReasonLTE applies the LTE predicate on the "blocked_reason" field.
func BlockedReasonLTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldBlockedReason, v))
}

// BlockedReasonContains applies the Contains predicate on the "blocked_reason" field.
func BlockedReasonContains(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContains(FieldBlockedReason, v))
}

// BlockedReasonHasPrefix applies the HasPrefix predicate on the "blocked_reason" field.
func BlockedReasonHasPrefix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasPrefix(FieldBlockedReason, v))
}

// BlockedReasonHasSuffix applies the HasSuffix predicate on the "blocked_reason" field.
func BlockedReasonHasSuffix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasSuffix(FieldBlockedReason, v))
}

// BlockedReasonIsNil applies the IsNil predicate on the "blocked_reason" field.
func BlockedReasonIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldBlockedReason))
}

// BlockedReasonNotNil applies the NotNil predicate on the "blocked_reason" field.
func BlockedReasonNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldBlockedReason))
}

// BlockedReasonEqualFold applies the EqualFold predicate on the "blocked_reason" field.
func BlockedReasonEqualFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEqualFold(FieldBlockedReason, v))
}

// BlockedReasonContainsFold applies the ContainsFold predicate on the "blocked_reason" field.
func BlockedReasonContainsFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContainsFold(FieldBlockedReason, v))
}

// BlockedCategoryEQ applies the EQ predicate on the "blocked_category" field.
func BlockedCategoryEQ(v BlockedCategory) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldBlockedCategory, v))
}

// BlockedCategoryNEQ applies the NEQ predicate on the "blocked_category" field.
func BlockedCategoryNEQ(v BlockedCategory) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldBlockedCategory, v))
}

// BlockedCategoryIn applies the In predicate on the "blocked_category" field.
func BlockedCategoryIn(vs ...BlockedCategory) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldBlockedCategory, vs...))
}

// BlockedCategoryNotIn applies the NotIn predicate on the "blocked_category" field.
func BlockedCategoryNotIn(vs ...BlockedCategory) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldBlockedCategory, vs...))
}

// BlockedCategoryIsNil applies the IsNil predicate on the "blocked_category" field.
func BlockedCategoryIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldBlockedCategory))
}

// BlockedCategoryNotNil applies the NotNil predicate on the "blocked_category" field.
func BlockedCategoryNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldBlockedCategory))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldResult))
}

// ReviewFeedbackEQ applies the EQ predicate on the "review_feedback" field.
func ReviewFeedbackEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldReviewFeedback, v))
}

// ReviewFeedbackNEQ applies the NEQ predicate on the "review_feedback" field.
func ReviewFeedbackNEQ(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldReviewFeedback, v))
}

// ReviewFeedbackIn applies the In predicate on the "review_feedback" field.
func ReviewFeedbackIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldReviewFeedback, vs...))
}

// ReviewFeedbackNotIn applies the NotIn predicate on the "review_feedback" field.
func ReviewFeedbackNotIn(vs ...string) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldReviewFeedback, vs...))
}

// ReviewFeedbackGT applies the GT predicate on the "review_feedback" field.
func ReviewFeedbackGT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldReviewFeedback, v))
}

// ReviewFeedbackGTE applies the GTE predicate on the "review_feedback" field.
func ReviewFeedbackGTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldReviewFeedback, v))
}

// ReviewFeedbackLT applies the LT predicate on the "review_feedback" field.
func ReviewFeedbackLT(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldReviewFeedback, v))
}

// ReviewFeedbackLTE applies the LTE predicate on the "review_feedback" field.
func ReviewFeedbackLTE(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldReviewFeedback, v))
}

// ReviewFeedbackContains applies the Contains predicate on the "review_feedback" field.
func ReviewFeedbackContains(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContains(FieldReviewFeedback, v))
}

// ReviewFeedbackHasPrefix applies the HasPrefix predicate on the "review_feedback" field.
func ReviewFeedbackHasPrefix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasPrefix(FieldReviewFeedback, v))
}

// ReviewFeedbackHasSuffix applies the HasSuffix predicate on the "review_feedback" field.
func ReviewFeedbackHasSuffix(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldHasSuffix(FieldReviewFeedback, v))
}

// ReviewFeedbackIsNil applies the IsNil predicate on the "review_feedback" field.
func ReviewFeedbackIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldReviewFeedback))
}

// ReviewFeedbackNotNil applies the NotNil predicate on the "review_feedback" field.
func ReviewFeedbackNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldReviewFeedback))
}

// ReviewFeedbackEqualFold applies the EqualFold predicate on the "review_feedback" field.
func ReviewFeedbackEqualFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldEqualFold(FieldReviewFeedback, v))
}

// ReviewFeedbackContainsFold applies the ContainsFold predicate on the "review_feedback" field.
func ReviewFeedbackContainsFold(v string) predicate.Sortie {
	return predicate.Sortie(sql.FieldContainsFold(FieldReviewFeedback, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldCreatedAt, v))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldAssignedAt, v))
}

// AssignedAtIsNil applies the IsNil predicate on the "assigned_at" field.
func AssignedAtIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldAssignedAt))
}

// AssignedAtNotNil applies the NotNil predicate on the "assigned_at" field.
func AssignedAtNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldAssignedAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldStartedAt))
}

// BlockedAtEQ applies the EQ predicate on the "blocked_at" field.
func BlockedAtEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldBlockedAt, v))
}

// BlockedAtNEQ applies the NEQ predicate on the "blocked_at" field.
func BlockedAtNEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldBlockedAt, v))
}

// BlockedAtIn applies the In predicate on the "blocked_at" field.
func BlockedAtIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldBlockedAt, vs...))
}

// BlockedAtNotIn applies the NotIn predicate on the "blocked_at" field.
func BlockedAtNotIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldBlockedAt, vs...))
}

// BlockedAtGT applies the GT predicate on the "blocked_at" field.
func BlockedAtGT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldBlockedAt, v))
}

// BlockedAtGTE applies the GTE predicate on the "blocked_at" field.
func BlockedAtGTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldBlockedAt, v))
}

// BlockedAtLT applies the LT predicate on the "blocked_at" field.
func BlockedAtLT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldBlockedAt, v))
}

// BlockedAtLTE applies the LTE predicate on the "blocked_at" field.
func BlockedAtLTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldBlockedAt, v))
}

// BlockedAtIsNil applies the IsNil predicate on the "blocked_at" field.
func BlockedAtIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldBlockedAt))
}

// BlockedAtNotNil applies the NotNil predicate on the "blocked_at" field.
func BlockedAtNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldBlockedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Sortie {
	return predicate.Sortie(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Sortie {
	return predicate.Sortie(sql.FieldNotNull(FieldCompletedAt))
}

// HasMission applies the HasEdge predicate on the "mission" edge.
func HasMission() predicate.Sortie {
	return predicate.Sortie(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MissionTable, MissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionWith applies the HasEdge predicate on the "mission" edge with a given conditions (other predicates).
func HasMissionWith(preds ...predicate.Mission) predicate.Sortie {
	return predicate.Sortie(func(s *sql.Selector) {
		step := newMissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sortie) predicate.Sortie {
	return predicate.Sortie(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sortie) predicate.Sortie {
	return predicate.Sortie(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sortie) predicate.Sortie {
	return predicate.Sortie(sql.NotPredicates(p))
}
