// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleettools/fleetd/ent/specialist"
)

// SpecialistCreate is the builder for creating a Specialist entity.
type SpecialistCreate struct {
	config
	mutation *SpecialistMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SpecialistCreate) SetName(v string) *SpecialistCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *SpecialistCreate) SetNillableName(v *string) *SpecialistCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *SpecialistCreate) SetCapabilities(v []string) *SpecialistCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SpecialistCreate) SetStatus(v specialist.Status) *SpecialistCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SpecialistCreate) SetNillableStatus(v *specialist.Status) *SpecialistCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentSortie sets the "current_sortie" field.
func (_c *SpecialistCreate) SetCurrentSortie(v string) *SpecialistCreate {
	_c.mutation.SetCurrentSortie(v)
	return _c
}

// SetNillableCurrentSortie sets the "current_sortie" field if the given value is not nil.
func (_c *SpecialistCreate) SetNillableCurrentSortie(v *string) *SpecialistCreate {
	if v != nil {
		_c.SetCurrentSortie(*v)
	}
	return _c
}

// SetMissionID sets the "mission_id" field.
func (_c *SpecialistCreate) SetMissionID(v string) *SpecialistCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_c *SpecialistCreate) SetNillableMissionID(v *string) *SpecialistCreate {
	if v != nil {
		_c.SetMissionID(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *SpecialistCreate) SetLastSeen(v time.Time) *SpecialistCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *SpecialistCreate) SetNillableLastSeen(v *time.Time) *SpecialistCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SpecialistCreate) SetMetadata(v map[string]interface{}) *SpecialistCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpecialistCreate) SetCreatedAt(v time.Time) *SpecialistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpecialistCreate) SetNillableCreatedAt(v *time.Time) *SpecialistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpecialistCreate) SetID(v string) *SpecialistCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SpecialistMutation object of the builder.
func (_c *SpecialistCreate) Mutation() *SpecialistMutation {
	return _c.mutation
}

// Save creates the Specialist in the database.
func (_c *SpecialistCreate) Save(ctx context.Context) (*Specialist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpecialistCreate) SaveX(ctx context.Context) *Specialist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecialistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecialistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpecialistCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := specialist.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := specialist.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := specialist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpecialistCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Specialist.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := specialist.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Specialist.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "Specialist.last_seen"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Specialist.created_at"`)}
	}
	return nil
}

func (_c *SpecialistCreate) sqlSave(ctx context.Context) (*Specialist, error) {
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
			return nil, fmt.Errorf("unexpected Specialist.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpecialistCreate) createSpec() (*Specialist, *sqlgraph.CreateSpec) {
	var (
		_node = &Specialist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(specialist.Table, sqlgraph.NewFieldSpec(specialist.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(specialist.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(specialist.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(specialist.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentSortie(); ok {
		_spec.SetField(specialist.FieldCurrentSortie, field.TypeString, value)
		_node.CurrentSortie = &value
	}
	if value, ok := _c.mutation.MissionID(); ok {
		_spec.SetField(specialist.FieldMissionID, field.TypeString, value)
		_node.MissionID = &value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(specialist.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(specialist.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(specialist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SpecialistCreateBulk is the builder for creating many Specialist entities in bulk.
type SpecialistCreateBulk struct {
	config
	err      error
	builders []*SpecialistCreate
}

// Save creates the Specialist entities in the database.
func (_c *SpecialistCreateBulk) Save(ctx context.Context) ([]*Specialist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Specialist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpecialistMutation)
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
func (_c *SpecialistCreateBulk) SaveX(ctx context.Context) []*Specialist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecialistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecialistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
