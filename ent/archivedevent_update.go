// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleettools/fleetd/ent/archivedevent"
	"github.com/fleettools/fleetd/ent/predicate"
)

// ArchivedEventUpdate is the builder for updating ArchivedEvent entities.
type ArchivedEventUpdate struct {
	config
	hooks    []Hook
	mutation *ArchivedEventMutation
}

// Where appends a list predicates to the ArchivedEventUpdate builder.
func (_u *ArchivedEventUpdate) Where(ps ...predicate.ArchivedEvent) *ArchivedEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ArchivedEventMutation object of the builder.
func (_u *ArchivedEventUpdate) Mutation() *ArchivedEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArchivedEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchivedEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArchivedEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchivedEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArchivedEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(archivedevent.Table, archivedevent.Columns, sqlgraph.NewFieldSpec(archivedevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.CausationIDCleared() {
		_spec.ClearField(archivedevent.FieldCausationID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archivedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArchivedEventUpdateOne is the builder for updating a single ArchivedEvent entity.
type ArchivedEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArchivedEventMutation
}

// Mutation returns the ArchivedEventMutation object of the builder.
func (_u *ArchivedEventUpdateOne) Mutation() *ArchivedEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArchivedEventUpdate builder.
func (_u *ArchivedEventUpdateOne) Where(ps ...predicate.ArchivedEvent) *ArchivedEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArchivedEventUpdateOne) Select(field string, fields ...string) *ArchivedEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArchivedEvent entity.
func (_u *ArchivedEventUpdateOne) Save(ctx context.Context) (*ArchivedEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchivedEventUpdateOne) SaveX(ctx context.Context) *ArchivedEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArchivedEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchivedEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArchivedEventUpdateOne) sqlSave(ctx context.Context) (_node *ArchivedEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(archivedevent.Table, archivedevent.Columns, sqlgraph.NewFieldSpec(archivedevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArchivedEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, archivedevent.FieldID)
		for _, f := range fields {
			if !archivedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != archivedevent.FieldID {
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
	if _u.mutation.CausationIDCleared() {
		_spec.ClearField(archivedevent.FieldCausationID, field.TypeString)
	}
	_node = &ArchivedEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archivedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
