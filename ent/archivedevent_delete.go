// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleettools/fleetd/ent/archivedevent"
	"github.com/fleettools/fleetd/ent/predicate"
)

// ArchivedEventDelete is the builder for deleting a ArchivedEvent entity.
type ArchivedEventDelete struct {
	config
	hooks    []Hook
	mutation *ArchivedEventMutation
}

// Where appends a list predicates to the ArchivedEventDelete builder.
func (_d *ArchivedEventDelete) Where(ps ...predicate.ArchivedEvent) *ArchivedEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArchivedEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchivedEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArchivedEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(archivedevent.Table, sqlgraph.NewFieldSpec(archivedevent.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ArchivedEventDeleteOne is the builder for deleting a single ArchivedEvent entity.
type ArchivedEventDeleteOne struct {
	_d *ArchivedEventDelete
}

// Where appends a list predicates to the ArchivedEventDelete builder.
func (_d *ArchivedEventDeleteOne) Where(ps ...predicate.ArchivedEvent) *ArchivedEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArchivedEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{archivedevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchivedEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
