// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleettools/fleetd/ent/checkpoint"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/sortie"
)

// MissionCreate is the builder for creating a Mission entity.
type MissionCreate struct {
	config
	mutation *MissionMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *MissionCreate) SetTitle(v string) *MissionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MissionCreate) SetDescription(v string) *MissionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MissionCreate) SetNillableDescription(v *string) *MissionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MissionCreate) SetStatus(v mission.Status) *MissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStatus(v *mission.Status) *MissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *MissionCreate) SetPriority(v mission.Priority) *MissionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *MissionCreate) SetNillablePriority(v *mission.Priority) *MissionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *MissionCreate) SetStrategy(v string) *MissionCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStrategy(v *string) *MissionCreate {
	if v != nil {
		_c.SetStrategy(*v)
	}
	return _c
}

// SetTotalSorties sets the "total_sorties" field.
func (_c *MissionCreate) SetTotalSorties(v int) *MissionCreate {
	_c.mutation.SetTotalSorties(v)
	return _c
}

// SetNillableTotalSorties sets the "total_sorties" field if the given value is not nil.
func (_c *MissionCreate) SetNillableTotalSorties(v *int) *MissionCreate {
	if v != nil {
		_c.SetTotalSorties(*v)
	}
	return _c
}

// SetCompletedSorties sets the "completed_sorties" field.
func (_c *MissionCreate) SetCompletedSorties(v int) *MissionCreate {
	_c.mutation.SetCompletedSorties(v)
	return _c
}

// SetNillableCompletedSorties sets the "completed_sorties" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCompletedSorties(v *int) *MissionCreate {
	if v != nil {
		_c.SetCompletedSorties(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MissionCreate) SetCreatedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCreatedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *MissionCreate) SetStartedAt(v time.Time) *MissionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStartedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MissionCreate) SetCompletedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCompletedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *MissionCreate) SetLastActivityAt(v time.Time) *MissionCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableLastActivityAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MissionCreate) SetID(v string) *MissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSortyIDs adds the "sorties" edge to the Sortie entity by IDs.
func (_c *MissionCreate) AddSortyIDs(ids ...string) *MissionCreate {
	_c.mutation.AddSortyIDs(ids...)
	return _c
}

// AddSorties adds the "sorties" edges to the Sortie entity.
func (_c *MissionCreate) AddSorties(v ...*Sortie) *MissionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSortyIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *MissionCreate) AddCheckpointIDs(ids ...string) *MissionCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *MissionCreate) AddCheckpoints(v ...*Checkpoint) *MissionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_c *MissionCreate) Mutation() *MissionMutation {
	return _c.mutation
}

// Save creates the Mission in the database.
func (_c *MissionCreate) Save(ctx context.Context) (*Mission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissionCreate) SaveX(ctx context.Context) *Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := mission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := mission.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.TotalSorties(); !ok {
		v := mission.DefaultTotalSorties
		_c.mutation.SetTotalSorties(v)
	}
	if _, ok := _c.mutation.CompletedSorties(); !ok {
		v := mission.DefaultCompletedSorties
		_c.mutation.SetCompletedSorties(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissionCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Mission.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Mission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Mission.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := mission.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Mission.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalSorties(); !ok {
		return &ValidationError{Name: "total_sorties", err: errors.New(`ent: missing required field "Mission.total_sorties"`)}
	}
	if _, ok := _c.mutation.CompletedSorties(); !ok {
		return &ValidationError{Name: "completed_sorties", err: errors.New(`ent: missing required field "Mission.completed_sorties"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mission.created_at"`)}
	}
	return nil
}

func (_c *MissionCreate) sqlSave(ctx context.Context) (*Mission, error) {
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
			return nil, fmt.Errorf("unexpected Mission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MissionCreate) createSpec() (*Mission, *sqlgraph.CreateSpec) {
	var (
		_node = &Mission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mission.Table, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(mission.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(mission.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(mission.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(mission.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.TotalSorties(); ok {
		_spec.SetField(mission.FieldTotalSorties, field.TypeInt, value)
		_node.TotalSorties = value
	}
	if value, ok := _c.mutation.CompletedSorties(); ok {
		_spec.SetField(mission.FieldCompletedSorties, field.TypeInt, value)
		_node.CompletedSorties = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(mission.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = &value
	}
	if nodes := _c.mutation.SortiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.SortiesTable,
			Columns: []string{mission.SortiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sortie.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.CheckpointsTable,
			Columns: []string{mission.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MissionCreateBulk is the builder for creating many Mission entities in bulk.
type MissionCreateBulk struct {
	config
	err      error
	builders []*MissionCreate
}

// Save creates the Mission entities in the database.
func (_c *MissionCreateBulk) Save(ctx context.Context) ([]*Mission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissionMutation)
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
func (_c *MissionCreateBulk) SaveX(ctx context.Context) []*Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
