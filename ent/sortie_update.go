// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fleettools/fleetd/ent/predicate"
	"github.com/fleettools/fleetd/ent/sortie"
)

// SortieUpdate is the builder for updating Sortie entities.
type SortieUpdate struct {
	config
	hooks    []Hook
	mutation *SortieMutation
}

// Where appends a list predicates to the SortieUpdate builder.
func (_u *SortieUpdate) Where(ps ...predicate.Sortie) *SortieUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SortieUpdate) SetTitle(v string) *SortieUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableTitle(v *string) *SortieUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SortieUpdate) SetDescription(v string) *SortieUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableDescription(v *string) *SortieUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SortieUpdate) ClearDescription() *SortieUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SortieUpdate) SetStatus(v sortie.Status) *SortieUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableStatus(v *sortie.Status) *SortieUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *SortieUpdate) SetAssignedTo(v string) *SortieUpdate {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableAssignedTo(v *string) *SortieUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *SortieUpdate) ClearAssignedTo() *SortieUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SortieUpdate) SetPriority(v sortie.Priority) *SortieUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SortieUpdate) SetNillablePriority(v *sortie.Priority) *SortieUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SortieUpdate) SetProgress(v int) *SortieUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableProgress(v *int) *SortieUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SortieUpdate) AddProgress(v int) *SortieUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetFiles sets the "files" field.
func (_u *SortieUpdate) SetFiles(v []string) *SortieUpdate {
	_u.mutation.SetFiles(v)
	return _u
}

// AppendFiles appends value to the "files" field.
func (_u *SortieUpdate) AppendFiles(v []string) *SortieUpdate {
	_u.mutation.AppendFiles(v)
	return _u
}

// ClearFiles clears the value of the "files" field.
func (_u *SortieUpdate) ClearFiles() *SortieUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *SortieUpdate) SetDependencies(v []string) *SortieUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *SortieUpdate) AppendDependencies(v []string) *SortieUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *SortieUpdate) ClearDependencies() *SortieUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetBlockedBy sets the "blocked_by" field.
func (_u *SortieUpdate) SetBlockedBy(v string) *SortieUpdate {
	_u.mutation.SetBlockedBy(v)
	return _u
}

// SetNillableBlockedBy sets the "blocked_by" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableBlockedBy(v *string) *SortieUpdate {
	if v != nil {
		_u.SetBlockedBy(*v)
	}
	return _u
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (_u *SortieUpdate) ClearBlockedBy() *SortieUpdate {
	_u.mutation.ClearBlockedBy()
	return _u
}

// SetBlockedReason sets the "blocked_reason" field.
func (_u *SortieUpdate) SetBlockedReason(v string) *SortieUpdate {
	_u.mutation.SetBlockedReason(v)
	return _u
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableBlockedReason(v *string) *SortieUpdate {
	if v != nil {
		_u.SetBlockedReason(*v)
	}
	return _u
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (_u *SortieUpdate) ClearBlockedReason() *SortieUpdate {
	_u.mutation.ClearBlockedReason()
	return _u
}

// SetBlockedCategory sets the "blocked_category" field.
func (_u *SortieUpdate) SetBlockedCategory(v sortie.BlockedCategory) *SortieUpdate {
	_u.mutation.SetBlockedCategory(v)
	return _u
}

// SetNillableBlockedCategory sets the "blocked_category" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableBlockedCategory(v *sortie.BlockedCategory) *SortieUpdate {
	if v != nil {
		_u.SetBlockedCategory(*v)
	}
	return _u
}

// ClearBlockedCategory clears the value of the "blocked_category" field.
func (_u *SortieUpdate) ClearBlockedCategory() *SortieUpdate {
	_u.mutation.ClearBlockedCategory()
	return _u
}

// SetResult sets the "result" field.
func (_u *SortieUpdate) SetResult(v map[string]interface{}) *SortieUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SortieUpdate) ClearResult() *SortieUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetReviewFeedback sets the "review_feedback" field.
func (_u *SortieUpdate) SetReviewFeedback(v string) *SortieUpdate {
	_u.mutation.SetReviewFeedback(v)
	return _u
}

// SetNillableReviewFeedback sets the "review_feedback" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableReviewFeedback(v *string) *SortieUpdate {
	if v != nil {
		_u.SetReviewFeedback(*v)
	}
	return _u
}

// ClearReviewFeedback clears the value of the "review_feedback" field.
func (_u *SortieUpdate) ClearReviewFeedback() *SortieUpdate {
	_u.mutation.ClearReviewFeedback()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *SortieUpdate) SetAssignedAt(v time.Time) *SortieUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableAssignedAt(v *time.Time) *SortieUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *SortieUpdate) ClearAssignedAt() *SortieUpdate {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SortieUpdate) SetStartedAt(v time.Time) *SortieUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableStartedAt(v *time.Time) *SortieUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SortieUpdate) ClearStartedAt() *SortieUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetBlockedAt sets the "blocked_at" field.
func (_u *SortieUpdate) SetBlockedAt(v time.Time) *SortieUpdate {
	_u.mutation.SetBlockedAt(v)
	return _u
}

// SetNillableBlockedAt sets the "blocked_at" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableBlockedAt(v *time.Time) *SortieUpdate {
	if v != nil {
		_u.SetBlockedAt(*v)
	}
	return _u
}

// ClearBlockedAt clears the value of the "blocked_at" field.
func (_u *SortieUpdate) ClearBlockedAt() *SortieUpdate {
	_u.mutation.ClearBlockedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SortieUpdate) SetCompletedAt(v time.Time) *SortieUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SortieUpdate) SetNillableCompletedAt(v *time.Time) *SortieUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SortieUpdate) ClearCompletedAt() *SortieUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SortieMutation object of the builder.
func (_u *SortieUpdate) Mutation() *SortieMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SortieUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SortieUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SortieUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SortieUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SortieUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sortie.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Sortie.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := sortie.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Sortie.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlockedCategory(); ok {
		if err := sortie.BlockedCategoryValidator(v); err != nil {
			return &ValidationError{Name: "blocked_category", err: fmt.Errorf(`ent: validator failed for field "Sortie.blocked_category": %w`, err)}
		}
	}
	return nil
}

func (_u *SortieUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sortie.Table, sortie.Columns, sqlgraph.NewFieldSpec(sortie.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sortie.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sortie.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sortie.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sortie.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(sortie.FieldAssignedTo, field.TypeString, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(sortie.FieldAssignedTo, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(sortie.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(sortie.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(sortie.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Files(); ok {
		_spec.SetField(sortie.FieldFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sortie.FieldFiles, value)
		})
	}
	if _u.mutation.FilesCleared() {
		_spec.ClearField(sortie.FieldFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(sortie.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sortie.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(sortie.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.BlockedBy(); ok {
		_spec.SetField(sortie.FieldBlockedBy, field.TypeString, value)
	}
	if _u.mutation.BlockedByCleared() {
		_spec.ClearField(sortie.FieldBlockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.BlockedReason(); ok {
		_spec.SetField(sortie.FieldBlockedReason, field.TypeString, value)
	}
	if _u.mutation.BlockedReasonCleared() {
		_spec.ClearField(sortie.FieldBlockedReason, field.TypeString)
	}
	if value, ok := _u.mutation.BlockedCategory(); ok {
		_spec.SetField(sortie.FieldBlockedCategory, field.TypeEnum, value)
	}
	if _u.mutation.BlockedCategoryCleared() {
		_spec.ClearField(sortie.FieldBlockedCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(sortie.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(sortie.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewFeedback(); ok {
		_spec.SetField(sortie.FieldReviewFeedback, field.TypeString, value)
	}
	if _u.mutation.ReviewFeedbackCleared() {
		_spec.ClearField(sortie.FieldReviewFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(sortie.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(sortie.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sortie.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sortie.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BlockedAt(); ok {
		_spec.SetField(sortie.FieldBlockedAt, field.TypeTime, value)
	}
	if _u.mutation.BlockedAtCleared() {
		_spec.ClearField(sortie.FieldBlockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sortie.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sortie.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sortie.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SortieUpdateOne is the builder for updating a single Sortie entity.
type SortieUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SortieMutation
}

// SetTitle sets the "title" field.
func (_u *SortieUpdateOne) SetTitle(v string) *SortieUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableTitle(v *string) *SortieUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SortieUpdateOne) SetDescription(v string) *SortieUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableDescription(v *string) *SortieUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SortieUpdateOne) ClearDescription() *SortieUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SortieUpdateOne) SetStatus(v sortie.Status) *SortieUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableStatus(v *sortie.Status) *SortieUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *SortieUpdateOne) SetAssignedTo(v string) *SortieUpdateOne {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableAssignedTo(v *string) *SortieUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *SortieUpdateOne) ClearAssignedTo() *SortieUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SortieUpdateOne) SetPriority(v sortie.Priority) *SortieUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillablePriority(v *sortie.Priority) *SortieUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SortieUpdateOne) SetProgress(v int) *SortieUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableProgress(v *int) *SortieUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SortieUpdateOne) AddProgress(v int) *SortieUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetFiles sets the "files" field.
func (_u *SortieUpdateOne) SetFiles(v []string) *SortieUpdateOne {
	_u.mutation.SetFiles(v)
	return _u
}

// AppendFiles appends value to the "files" field.
func (_u *SortieUpdateOne) AppendFiles(v []string) *SortieUpdateOne {
	_u.mutation.AppendFiles(v)
	return _u
}

// ClearFiles clears the value of the "files" field.
func (_u *SortieUpdateOne) ClearFiles() *SortieUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *SortieUpdateOne) SetDependencies(v []string) *SortieUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *SortieUpdateOne) AppendDependencies(v []string) *SortieUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *SortieUpdateOne) ClearDependencies() *SortieUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetBlockedBy sets the "blocked_by" field.
func (_u *SortieUpdateOne) SetBlockedBy(v string) *SortieUpdateOne {
	_u.mutation.SetBlockedBy(v)
	return _u
}

// SetNillableBlockedBy sets the "blocked_by" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableBlockedBy(v *string) *SortieUpdateOne {
	if v != nil {
		_u.SetBlockedBy(*v)
	}
	return _u
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (_u *SortieUpdateOne) ClearBlockedBy() *SortieUpdateOne {
	_u.mutation.ClearBlockedBy()
	return _u
}

// SetBlockedReason sets the "blocked_reason" field.
func (_u *SortieUpdateOne) SetBlockedReason(v string) *SortieUpdateOne {
	_u.mutation.SetBlockedReason(v)
	return _u
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableBlockedReason(v *string) *SortieUpdateOne {
	if v != nil {
		_u.SetBlockedReason(*v)
	}
	return _u
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (_u *SortieUpdateOne) ClearBlockedReason() *SortieUpdateOne {
	_u.mutation.ClearBlockedReason()
	return _u
}

// SetBlockedCategory sets the "blocked_category" field.
func (_u *SortieUpdateOne) SetBlockedCategory(v sortie.BlockedCategory) *SortieUpdateOne {
	_u.mutation.SetBlockedCategory(v)
	return _u
}

// SetNillableBlockedCategory sets the "blocked_category" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableBlockedCategory(v *sortie.BlockedCategory) *SortieUpdateOne {
	if v != nil {
		_u.SetBlockedCategory(*v)
	}
	return _u
}

// ClearBlockedCategory clears the value of the "blocked_category" field.
func (_u *SortieUpdateOne) ClearBlockedCategory() *SortieUpdateOne {
	_u.mutation.ClearBlockedCategory()
	return _u
}

// SetResult sets the "result" field.
func (_u *SortieUpdateOne) SetResult(v map[string]interface{}) *SortieUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SortieUpdateOne) ClearResult() *SortieUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetReviewFeedback sets the "review_feedback" field.
func (_u *SortieUpdateOne) SetReviewFeedback(v string) *SortieUpdateOne {
	_u.mutation.SetReviewFeedback(v)
	return _u
}

// SetNillableReviewFeedback sets the "review_feedback" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableReviewFeedback(v *string) *SortieUpdateOne {
	if v != nil {
		_u.SetReviewFeedback(*v)
	}
	return _u
}

// ClearReviewFeedback clears the value of the "review_feedback" field.
func (_u *SortieUpdateOne) ClearReviewFeedback() *SortieUpdateOne {
	_u.mutation.ClearReviewFeedback()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *SortieUpdateOne) SetAssignedAt(v time.Time) *SortieUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableAssignedAt(v *time.Time) *SortieUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *SortieUpdateOne) ClearAssignedAt() *SortieUpdateOne {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SortieUpdateOne) SetStartedAt(v time.Time) *SortieUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableStartedAt(v *time.Time) *SortieUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SortieUpdateOne) ClearStartedAt() *SortieUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetBlockedAt sets the "blocked_at" field.
func (_u *SortieUpdateOne) SetBlockedAt(v time.Time) *SortieUpdateOne {
	_u.mutation.SetBlockedAt(v)
	return _u
}

// SetNillableBlockedAt sets the "blocked_at" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableBlockedAt(v *time.Time) *SortieUpdateOne {
	if v != nil {
		_u.SetBlockedAt(*v)
	}
	return _u
}

// ClearBlockedAt clears the value of the "blocked_at" field.
func (_u *SortieUpdateOne) ClearBlockedAt() *SortieUpdateOne {
	_u.mutation.ClearBlockedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SortieUpdateOne) SetCompletedAt(v time.Time) *SortieUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SortieUpdateOne) SetNillableCompletedAt(v *time.Time) *SortieUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SortieUpdateOne) ClearCompletedAt() *SortieUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SortieMutation object of the builder.
func (_u *SortieUpdateOne) Mutation() *SortieMutation {
	return _u.mutation
}

// Where appends a list predicates to the SortieUpdate builder.
func (_u *SortieUpdateOne) Where(ps ...predicate.Sortie) *SortieUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SortieUpdateOne) Select(field string, fields ...string) *SortieUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sortie entity.
func (_u *SortieUpdateOne) Save(ctx context.Context) (*Sortie, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SortieUpdateOne) SaveX(ctx context.Context) *Sortie {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SortieUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SortieUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SortieUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sortie.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Sortie.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := sortie.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Sortie.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlockedCategory(); ok {
		if err := sortie.BlockedCategoryValidator(v); err != nil {
			return &ValidationError{Name: "blocked_category", err: fmt.Errorf(`ent: validator failed for field "Sortie.blocked_category": %w`, err)}
		}
	}
	return nil
}

func (_u *SortieUpdateOne) sqlSave(ctx context.Context) (_node *Sortie, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sortie.Table, sortie.Columns, sqlgraph.NewFieldSpec(sortie.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sortie.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sortie.FieldID)
		for _, f := range fields {
			if !sortie.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sortie.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sortie.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sortie.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sortie.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sortie.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(sortie.FieldAssignedTo, field.TypeString, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(sortie.FieldAssignedTo, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(sortie.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(sortie.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(sortie.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Files(); ok {
		_spec.SetField(sortie.FieldFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sortie.FieldFiles, value)
		})
	}
	if _u.mutation.FilesCleared() {
		_spec.ClearField(sortie.FieldFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(sortie.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sortie.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(sortie.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.BlockedBy(); ok {
		_spec.SetField(sortie.FieldBlockedBy, field.TypeString, value)
	}
	if _u.mutation.BlockedByCleared() {
		_spec.ClearField(sortie.FieldBlockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.BlockedReason(); ok {
		_spec.SetField(sortie.FieldBlockedReason, field.TypeString, value)
	}
	if _u.mutation.BlockedReasonCleared() {
		_spec.ClearField(sortie.FieldBlockedReason, field.TypeString)
	}
	if value, ok := _u.mutation.BlockedCategory(); ok {
		_spec.SetField(sortie.FieldBlockedCategory, field.TypeEnum, value)
	}
	if _u.mutation.BlockedCategoryCleared() {
		_spec.ClearField(sortie.FieldBlockedCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(sortie.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(sortie.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewFeedback(); ok {
		_spec.SetField(sortie.FieldReviewFeedback, field.TypeString, value)
	}
	if _u.mutation.ReviewFeedbackCleared() {
		_spec.ClearField(sortie.FieldReviewFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(sortie.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(sortie.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sortie.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sortie.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BlockedAt(); ok {
		_spec.SetField(sortie.FieldBlockedAt, field.TypeTime, value)
	}
	if _u.mutation.BlockedAtCleared() {
		_spec.ClearField(sortie.FieldBlockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sortie.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sortie.FieldCompletedAt, field.TypeTime)
	}
	_node = &Sortie{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sortie.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
