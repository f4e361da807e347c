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
)

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
}

// SetMissionID sets the "mission_id" field.
func (_c *CheckpointCreate) SetMissionID(v string) *CheckpointCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *CheckpointCreate) SetTrigger(v checkpoint.Trigger) *CheckpointCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetProgressPercent sets the "progress_percent" field.
func (_c *CheckpointCreate) SetProgressPercent(v int) *CheckpointCreate {
	_c.mutation.SetProgressPercent(v)
	return _c
}

// SetMilestonePercent sets the "milestone_percent" field.
func (_c *CheckpointCreate) SetMilestonePercent(v int) *CheckpointCreate {
	_c.mutation.SetMilestonePercent(v)
	return _c
}

// SetNillableMilestonePercent sets the "milestone_percent" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableMilestonePercent(v *int) *CheckpointCreate {
	if v != nil {
		_c.SetMilestonePercent(*v)
	}
	return _c
}

// SetSorties sets the "sorties" field.
func (_c *CheckpointCreate) SetSorties(v []map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetSorties(v)
	return _c
}

// SetActiveLocks sets the "active_locks" field.
func (_c *CheckpointCreate) SetActiveLocks(v []map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetActiveLocks(v)
	return _c
}

// SetPendingMessages sets the "pending_messages" field.
func (_c *CheckpointCreate) SetPendingMessages(v []map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetPendingMessages(v)
	return _c
}

// SetRecoveryContext sets the "recovery_context" field.
func (_c *CheckpointCreate) SetRecoveryContext(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetRecoveryContext(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *CheckpointCreate) SetCreatedBy(v string) *CheckpointCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *CheckpointCreate) SetSchemaVersion(v int) *CheckpointCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableSchemaVersion(v *int) *CheckpointCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// SetLastEventSequence sets the "last_event_sequence" field.
func (_c *CheckpointCreate) SetLastEventSequence(v int64) *CheckpointCreate {
	_c.mutation.SetLastEventSequence(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *CheckpointCreate) SetSizeBytes(v int64) *CheckpointCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableSizeBytes(v *int64) *CheckpointCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetLatest sets the "latest" field.
func (_c *CheckpointCreate) SetLatest(v bool) *CheckpointCreate {
	_c.mutation.SetLatest(v)
	return _c
}

// SetNillableLatest sets the "latest" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableLatest(v *bool) *CheckpointCreate {
	if v != nil {
		_c.SetLatest(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckpointCreate) SetCreatedAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableCreatedAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckpointCreate) SetID(v string) *CheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMission sets the "mission" edge to the Mission entity.
func (_c *CheckpointCreate) SetMission(v *Mission) *CheckpointCreate {
	return _c.SetMissionID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.MilestonePercent(); !ok {
		v := checkpoint.DefaultMilestonePercent
		_c.mutation.SetMilestonePercent(v)
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		v := checkpoint.DefaultSchemaVersion
		_c.mutation.SetSchemaVersion(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := checkpoint.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.Latest(); !ok {
		v := checkpoint.DefaultLatest
		_c.mutation.SetLatest(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.MissionID(); !ok {
		return &ValidationError{Name: "mission_id", err: errors.New(`ent: missing required field "Checkpoint.mission_id"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "Checkpoint.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := checkpoint.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		return &ValidationError{Name: "progress_percent", err: errors.New(`ent: missing required field "Checkpoint.progress_percent"`)}
	}
	if _, ok := _c.mutation.MilestonePercent(); !ok {
		return &ValidationError{Name: "milestone_percent", err: errors.New(`ent: missing required field "Checkpoint.milestone_percent"`)}
	}
	if _, ok := _c.mutation.Sorties(); !ok {
		return &ValidationError{Name: "sorties", err: errors.New(`ent: missing required field "Checkpoint.sorties"`)}
	}
	if _, ok := _c.mutation.RecoveryContext(); !ok {
		return &ValidationError{Name: "recovery_context", err: errors.New(`ent: missing required field "Checkpoint.recovery_context"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Checkpoint.created_by"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "Checkpoint.schema_version"`)}
	}
	if _, ok := _c.mutation.LastEventSequence(); !ok {
		return &ValidationError{Name: "last_event_sequence", err: errors.New(`ent: missing required field "Checkpoint.last_event_sequence"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "Checkpoint.size_bytes"`)}
	}
	if _, ok := _c.mutation.Latest(); !ok {
		return &ValidationError{Name: "latest", err: errors.New(`ent: missing required field "Checkpoint.latest"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Checkpoint.created_at"`)}
	}
	if len(_c.mutation.MissionIDs()) == 0 {
		return &ValidationError{Name: "mission", err: errors.New(`ent: missing required edge "Checkpoint.mission"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
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
			return nil, fmt.Errorf("unexpected Checkpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(checkpoint.FieldTrigger, field.TypeEnum, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.ProgressPercent(); ok {
		_spec.SetField(checkpoint.FieldProgressPercent, field.TypeInt, value)
		_node.ProgressPercent = value
	}
	if value, ok := _c.mutation.MilestonePercent(); ok {
		_spec.SetField(checkpoint.FieldMilestonePercent, field.TypeInt, value)
		_node.MilestonePercent = value
	}
	if value, ok := _c.mutation.Sorties(); ok {
		_spec.SetField(checkpoint.FieldSorties, field.TypeJSON, value)
		_node.Sorties = value
	}
	if value, ok := _c.mutation.ActiveLocks(); ok {
		_spec.SetField(checkpoint.FieldActiveLocks, field.TypeJSON, value)
		_node.ActiveLocks = value
	}
	if value, ok := _c.mutation.PendingMessages(); ok {
		_spec.SetField(checkpoint.FieldPendingMessages, field.TypeJSON, value)
		_node.PendingMessages = value
	}
	if value, ok := _c.mutation.RecoveryContext(); ok {
		_spec.SetField(checkpoint.FieldRecoveryContext, field.TypeJSON, value)
		_node.RecoveryContext = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(checkpoint.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(checkpoint.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.LastEventSequence(); ok {
		_spec.SetField(checkpoint.FieldLastEventSequence, field.TypeInt64, value)
		_node.LastEventSequence = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(checkpoint.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.Latest(); ok {
		_spec.SetField(checkpoint.FieldLatest, field.TypeBool, value)
		_node.Latest = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.MissionTable,
			Columns: []string{checkpoint.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
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
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
