// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleettools/fleetd/ent/filelock"
)

// FileLockCreate is the builder for creating a FileLock entity.
type FileLockCreate struct {
	config
	mutation *FileLockMutation
	hooks    []Hook
}

// SetFile sets the "file" field.
func (_c *FileLockCreate) SetFile(v string) *FileLockCreate {
	_c.mutation.SetFile(v)
	return _c
}

// SetNormalizedPath sets the "normalized_path" field.
func (_c *FileLockCreate) SetNormalizedPath(v string) *FileLockCreate {
	_c.mutation.SetNormalizedPath(v)
	return _c
}

// SetReservedBy sets the "reserved_by" field.
func (_c *FileLockCreate) SetReservedBy(v string) *FileLockCreate {
	_c.mutation.SetReservedBy(v)
	return _c
}

// SetReservedAt sets the "reserved_at" field.
func (_c *FileLockCreate) SetReservedAt(v time.Time) *FileLockCreate {
	_c.mutation.SetReservedAt(v)
	return _c
}

// SetNillableReservedAt sets the "reserved_at" field if the given value is not nil.
func (_c *FileLockCreate) SetNillableReservedAt(v *time.Time) *FileLockCreate {
	if v != nil {
		_c.SetReservedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *FileLockCreate) SetExpiresAt(v time.Time) *FileLockCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *FileLockCreate) SetReleasedAt(v time.Time) *FileLockCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *FileLockCreate) SetNillableReleasedAt(v *time.Time) *FileLockCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *FileLockCreate) SetPurpose(v filelock.Purpose) *FileLockCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_c *FileLockCreate) SetNillablePurpose(v *filelock.Purpose) *FileLockCreate {
	if v != nil {
		_c.SetPurpose(*v)
	}
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *FileLockCreate) SetChecksum(v string) *FileLockCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_c *FileLockCreate) SetNillableChecksum(v *string) *FileLockCreate {
	if v != nil {
		_c.SetChecksum(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FileLockCreate) SetStatus(v filelock.Status) *FileLockCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FileLockCreate) SetNillableStatus(v *filelock.Status) *FileLockCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReleaseReason sets the "release_reason" field.
func (_c *FileLockCreate) SetReleaseReason(v string) *FileLockCreate {
	_c.mutation.SetReleaseReason(v)
	return _c
}

// SetNillableReleaseReason sets the "release_reason" field if the given value is not nil.
func (_c *FileLockCreate) SetNillableReleaseReason(v *string) *FileLockCreate {
	if v != nil {
		_c.SetReleaseReason(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *FileLockCreate) SetMetadata(v map[string]interface{}) *FileLockCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FileLockCreate) SetID(v string) *FileLockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FileLockMutation object of the builder.
func (_c *FileLockCreate) Mutation() *FileLockMutation {
	return _c.mutation
}

// Save creates the FileLock in the database.
func (_c *FileLockCreate) Save(ctx context.Context) (*FileLock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileLockCreate) SaveX(ctx context.Context) *FileLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FileLockCreate) defaults() {
	if _, ok := _c.mutation.ReservedAt(); !ok {
		v := filelock.DefaultReservedAt()
		_c.mutation.SetReservedAt(v)
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		v := filelock.DefaultPurpose
		_c.mutation.SetPurpose(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := filelock.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileLockCreate) check() error {
	if _, ok := _c.mutation.File(); !ok {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required field "FileLock.file"`)}
	}
	if _, ok := _c.mutation.NormalizedPath(); !ok {
		return &ValidationError{Name: "normalized_path", err: errors.New(`ent: missing required field "FileLock.normalized_path"`)}
	}
	if _, ok := _c.mutation.ReservedBy(); !ok {
		return &ValidationError{Name: "reserved_by", err: errors.New(`ent: missing required field "FileLock.reserved_by"`)}
	}
	if _, ok := _c.mutation.ReservedAt(); !ok {
		return &ValidationError{Name: "reserved_at", err: errors.New(`ent: missing required field "FileLock.reserved_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "FileLock.expires_at"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "FileLock.purpose"`)}
	}
	if v, ok := _c.mutation.Purpose(); ok {
		if err := filelock.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "FileLock.purpose": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FileLock.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := filelock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileLock.status": %w`, err)}
		}
	}
	return nil
}

func (_c *FileLockCreate) sqlSave(ctx context.Context) (*FileLock, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FileLock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FileLockCreate) createSpec() (*FileLock, *sqlgraph.CreateSpec) {
	var (
		_node = &FileLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filelock.Table, sqlgraph.NewFieldSpec(filelock.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.File(); ok {
		_spec.SetField(filelock.FieldFile, field.TypeString, value)
		_node.File = value
	}
	if value, ok := _c.mutation.NormalizedPath(); ok {
		_spec.SetField(filelock.FieldNormalizedPath, field.TypeString, value)
		_node.NormalizedPath = value
	}
	if value, ok := _c.mutation.ReservedBy(); ok {
		_spec.SetField(filelock.FieldReservedBy, field.TypeString, value)
		_node.ReservedBy = value
	}
	if value, ok := _c.mutation.ReservedAt(); ok {
		_spec.SetField(filelock.FieldReservedAt, field.TypeTime, value)
		_node.ReservedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(filelock.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(filelock.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(filelock.FieldPurpose, field.TypeEnum, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(filelock.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(filelock.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReleaseReason(); ok {
		_spec.SetField(filelock.FieldReleaseReason, field.TypeString, value)
		_node.ReleaseReason = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(filelock.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// FileLockCreateBulk is the builder for creating many FileLock entities in bulk.
type FileLockCreateBulk struct {
	config
	err      error
	builders []*FileLockCreate
}

// Save creates the FileLock entities in the database.
func (_c *FileLockCreateBulk) Save(ctx context.Context) ([]*FileLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileLockMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FileLockCreateBulk) SaveX(ctx context.Context) []*FileLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
