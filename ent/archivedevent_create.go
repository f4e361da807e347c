// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleettools/fleetd/ent/archivedevent"
)

// ArchivedEventCreate is the builder for creating a ArchivedEvent entity.
type ArchivedEventCreate struct {
	config
	mutation *ArchivedEventMutation
	hooks    []Hook
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *ArchivedEventCreate) SetSequenceNumber(v int64) *ArchivedEventCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ArchivedEventCreate) SetEventType(v string) *ArchivedEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetStreamType sets the "stream_type" field.
func (_c *ArchivedEventCreate) SetStreamType(v string) *ArchivedEventCreate {
	_c.mutation.SetStreamType(v)
	return _c
}

// SetStreamID sets the "stream_id" field.
func (_c *ArchivedEventCreate) SetStreamID(v string) *ArchivedEventCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ArchivedEventCreate) SetData(v map[string]interface{}) *ArchivedEventCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetCausationID sets the "causation_id" field.
func (_c *ArchivedEventCreate) SetCausationID(v string) *ArchivedEventCreate {
	_c.mutation.SetCausationID(v)
	return _c
}

// SetNillableCausationID sets the "causation_id" field if the given value is not nil.
func (_c *ArchivedEventCreate) SetNillableCausationID(v *string) *ArchivedEventCreate {
	if v != nil {
		_c.SetCausationID(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *ArchivedEventCreate) SetCorrelationID(v string) *ArchivedEventCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *ArchivedEventCreate) SetOccurredAt(v time.Time) *ArchivedEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *ArchivedEventCreate) SetRecordedAt(v time.Time) *ArchivedEventCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *ArchivedEventCreate) SetSchemaVersion(v int) *ArchivedEventCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *ArchivedEventCreate) SetNillableSchemaVersion(v *int) *ArchivedEventCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *ArchivedEventCreate) SetArchivedAt(v time.Time) *ArchivedEventCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *ArchivedEventCreate) SetNillableArchivedAt(v *time.Time) *ArchivedEventCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArchivedEventCreate) SetID(v string) *ArchivedEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ArchivedEventMutation object of the builder.
func (_c *ArchivedEventCreate) Mutation() *ArchivedEventMutation {
	return _c.mutation
}

// Save creates the ArchivedEvent in the database.
func (_c *ArchivedEventCreate) Save(ctx context.Context) (*ArchivedEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArchivedEventCreate) SaveX(ctx context.Context) *ArchivedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchivedEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchivedEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArchivedEventCreate) defaults() {
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		v := archivedevent.DefaultSchemaVersion
		_c.mutation.SetSchemaVersion(v)
	}
	if _, ok := _c.mutation.ArchivedAt(); !ok {
		v := archivedevent.DefaultArchivedAt()
		_c.mutation.SetArchivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArchivedEventCreate) check() error {
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "ArchivedEvent.sequence_number"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ArchivedEvent.event_type"`)}
	}
	if _, ok := _c.mutation.StreamType(); !ok {
		return &ValidationError{Name: "stream_type", err: errors.New(`ent: missing required field "ArchivedEvent.stream_type"`)}
	}
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "ArchivedEvent.stream_id"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ArchivedEvent.data"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "ArchivedEvent.correlation_id"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "ArchivedEvent.occurred_at"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "ArchivedEvent.recorded_at"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "ArchivedEvent.schema_version"`)}
	}
	if _, ok := _c.mutation.ArchivedAt(); !ok {
		return &ValidationError{Name: "archived_at", err: errors.New(`ent: missing required field "ArchivedEvent.archived_at"`)}
	}
	return nil
}

func (_c *ArchivedEventCreate) sqlSave(ctx context.Context) (*ArchivedEvent, error) {
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
			return nil, fmt.Errorf("unexpected ArchivedEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArchivedEventCreate) createSpec() (*ArchivedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ArchivedEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(archivedevent.Table, sqlgraph.NewFieldSpec(archivedevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(archivedevent.FieldSequenceNumber, field.TypeInt64, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(archivedevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.StreamType(); ok {
		_spec.SetField(archivedevent.FieldStreamType, field.TypeString, value)
		_node.StreamType = value
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(archivedevent.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(archivedevent.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.CausationID(); ok {
		_spec.SetField(archivedevent.FieldCausationID, field.TypeString, value)
		_node.CausationID = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(archivedevent.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(archivedevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(archivedevent.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(archivedevent.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(archivedevent.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = value
	}
	return _node, _spec
}

// ArchivedEventCreateBulk is the builder for creating many ArchivedEvent entities in bulk.
type ArchivedEventCreateBulk struct {
	config
	err      error
	builders []*ArchivedEventCreate
}

// Save creates the ArchivedEvent entities in the database.
func (_c *ArchivedEventCreateBulk) Save(ctx context.Context) ([]*ArchivedEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArchivedEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArchivedEventMutation)
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
func (_c *ArchivedEventCreateBulk) SaveX(ctx context.Context) []*ArchivedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchivedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchivedEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
