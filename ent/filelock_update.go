// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/ent/predicate"
)

// FileLockUpdate is the builder for updating FileLock entities.
type FileLockUpdate struct {
	config
	hooks    []Hook
	mutation *FileLockMutation
}

// Where appends a list predicates to the FileLockUpdate builder.
func (_u *FileLockUpdate) Where(ps ...predicate.FileLock) *FileLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *FileLockUpdate) SetExpiresAt(v time.Time) *FileLockUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillableExpiresAt(v *time.Time) *FileLockUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *FileLockUpdate) SetReleasedAt(v time.Time) *FileLockUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillableReleasedAt(v *time.Time) *FileLockUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *FileLockUpdate) ClearReleasedAt() *FileLockUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *FileLockUpdate) SetPurpose(v filelock.Purpose) *FileLockUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillablePurpose(v *filelock.Purpose) *FileLockUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *FileLockUpdate) SetChecksum(v string) *FileLockUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillableChecksum(v *string) *FileLockUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// ClearChecksum clears the value of the "checksum" field.
func (_u *FileLockUpdate) ClearChecksum() *FileLockUpdate {
	_u.mutation.ClearChecksum()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileLockUpdate) SetStatus(v filelock.Status) *FileLockUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillableStatus(v *filelock.Status) *FileLockUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReleaseReason sets the "release_reason" field.
func (_u *FileLockUpdate) SetReleaseReason(v string) *FileLockUpdate {
	_u.mutation.SetReleaseReason(v)
	return _u
}

// SetNillableReleaseReason sets the "release_reason" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillableReleaseReason(v *string) *FileLockUpdate {
	if v != nil {
		_u.SetReleaseReason(*v)
	}
	return _u
}

// ClearReleaseReason clears the value of the "release_reason" field.
func (_u *FileLockUpdate) ClearReleaseReason() *FileLockUpdate {
	_u.mutation.ClearReleaseReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *FileLockUpdate) SetMetadata(v map[string]interface{}) *FileLockUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *FileLockUpdate) ClearMetadata() *FileLockUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the FileLockMutation object of the builder.
func (_u *FileLockUpdate) Mutation() *FileLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileLockUpdate) check() error {
	if v, ok := _u.mutation.Purpose(); ok {
		if err := filelock.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "FileLock.purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := filelock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileLock.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FileLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filelock.Table, filelock.Columns, sqlgraph.NewFieldSpec(filelock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(filelock.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(filelock.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(filelock.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(filelock.FieldPurpose, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(filelock.FieldChecksum, field.TypeString, value)
	}
	if _u.mutation.ChecksumCleared() {
		_spec.ClearField(filelock.FieldChecksum, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(filelock.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReleaseReason(); ok {
		_spec.SetField(filelock.FieldReleaseReason, field.TypeString, value)
	}
	if _u.mutation.ReleaseReasonCleared() {
		_spec.ClearField(filelock.FieldReleaseReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(filelock.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(filelock.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileLockUpdateOne is the builder for updating a single FileLock entity.
type FileLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileLockMutation
}

// SetExpiresAt sets the "expires_at" field.
func (_u *FileLockUpdateOne) SetExpiresAt(v time.Time) *FileLockUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillableExpiresAt(v *time.Time) *FileLockUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *FileLockUpdateOne) SetReleasedAt(v time.Time) *FileLockUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillableReleasedAt(v *time.Time) *FileLockUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *FileLockUpdateOne) ClearReleasedAt() *FileLockUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *FileLockUpdateOne) SetPurpose(v filelock.Purpose) *FileLockUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillablePurpose(v *filelock.Purpose) *FileLockUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *FileLockUpdateOne) SetChecksum(v string) *FileLockUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillableChecksum(v *string) *FileLockUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// ClearChecksum clears the value of the "checksum" field.
func (_u *FileLockUpdateOne) ClearChecksum() *FileLockUpdateOne {
	_u.mutation.ClearChecksum()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileLockUpdateOne) SetStatus(v filelock.Status) *FileLockUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillableStatus(v *filelock.Status) *FileLockUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReleaseReason sets the "release_reason" field.
func (_u *FileLockUpdateOne) SetReleaseReason(v string) *FileLockUpdateOne {
	_u.mutation.SetReleaseReason(v)
	return _u
}

// SetNillableReleaseReason sets the "release_reason" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillableReleaseReason(v *string) *FileLockUpdateOne {
	if v != nil {
		_u.SetReleaseReason(*v)
	}
	return _u
}

// ClearReleaseReason clears the value of the "release_reason" field.
func (_u *FileLockUpdateOne) ClearReleaseReason() *FileLockUpdateOne {
	_u.mutation.ClearReleaseReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *FileLockUpdateOne) SetMetadata(v map[string]interface{}) *FileLockUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *FileLockUpdateOne) ClearMetadata() *FileLockUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the FileLockMutation object of the builder.
func (_u *FileLockUpdateOne) Mutation() *FileLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the FileLockUpdate builder.
func (_u *FileLockUpdateOne) Where(ps ...predicate.FileLock) *FileLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileLockUpdateOne) Select(field string, fields ...string) *FileLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileLock entity.
func (_u *FileLockUpdateOne) Save(ctx context.Context) (*FileLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileLockUpdateOne) SaveX(ctx context.Context) *FileLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileLockUpdateOne) check() error {
	if v, ok := _u.mutation.Purpose(); ok {
		if err := filelock.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "FileLock.purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := filelock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileLock.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FileLockUpdateOne) sqlSave(ctx context.Context) (_node *FileLock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filelock.Table, filelock.Columns, sqlgraph.NewFieldSpec(filelock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filelock.FieldID)
		for _, f := range fields {
			if !filelock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filelock.FieldID {
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
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(filelock.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(filelock.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(filelock.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(filelock.FieldPurpose, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(filelock.FieldChecksum, field.TypeString, value)
	}
	if _u.mutation.ChecksumCleared() {
		_spec.ClearField(filelock.FieldChecksum, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(filelock.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReleaseReason(); ok {
		_spec.SetField(filelock.FieldReleaseReason, field.TypeString, value)
	}
	if _u.mutation.ReleaseReasonCleared() {
		_spec.ClearField(filelock.FieldReleaseReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(filelock.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(filelock.FieldMetadata, field.TypeJSON)
	}
	_node = &FileLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
