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
	"github.com/fleettools/fleetd/ent/checkpoint"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/predicate"
	"github.com/fleettools/fleetd/ent/sortie"
)

// MissionUpdate is the builder for updating Mission entities.
type MissionUpdate struct {
	config
	hooks    []Hook
	mutation *MissionMutation
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdate) Where(ps ...predicate.Mission) *MissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *MissionUpdate) SetTitle(v string) *MissionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableTitle(v *string) *MissionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MissionUpdate) SetDescription(v string) *MissionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableDescription(v *string) *MissionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MissionUpdate) ClearDescription() *MissionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdate) SetStatus(v mission.Status) *MissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStatus(v *mission.Status) *MissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *MissionUpdate) SetPriority(v mission.Priority) *MissionUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *MissionUpdate) SetNillablePriority(v *mission.Priority) *MissionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *MissionUpdate) SetStrategy(v string) *MissionUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStrategy(v *string) *MissionUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// ClearStrategy clears the value of the "strategy" field.
func (_u *MissionUpdate) ClearStrategy() *MissionUpdate {
	_u.mutation.ClearStrategy()
	return _u
}

// SetTotalSorties sets the "total_sorties" field.
func (_u *MissionUpdate) SetTotalSorties(v int) *MissionUpdate {
	_u.mutation.ResetTotalSorties()
	_u.mutation.SetTotalSorties(v)
	return _u
}

// SetNillableTotalSorties sets the "total_sorties" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableTotalSorties(v *int) *MissionUpdate {
	if v != nil {
		_u.SetTotalSorties(*v)
	}
	return _u
}

// AddTotalSorties adds value to the "total_sorties" field.
func (_u *MissionUpdate) AddTotalSorties(v int) *MissionUpdate {
	_u.mutation.AddTotalSorties(v)
	return _u
}

// SetCompletedSorties sets the "completed_sorties" field.
func (_u *MissionUpdate) SetCompletedSorties(v int) *MissionUpdate {
	_u.mutation.ResetCompletedSorties()
	_u.mutation.SetCompletedSorties(v)
	return _u
}

// SetNillableCompletedSorties sets the "completed_sorties" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCompletedSorties(v *int) *MissionUpdate {
	if v != nil {
		_u.SetCompletedSorties(*v)
	}
	return _u
}

// AddCompletedSorties adds value to the "completed_sorties" field.
func (_u *MissionUpdate) AddCompletedSorties(v int) *MissionUpdate {
	_u.mutation.AddCompletedSorties(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionUpdate) SetStartedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStartedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionUpdate) ClearStartedAt() *MissionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdate) SetCompletedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCompletedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdate) ClearCompletedAt() *MissionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *MissionUpdate) SetLastActivityAt(v time.Time) *MissionUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableLastActivityAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *MissionUpdate) ClearLastActivityAt() *MissionUpdate {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// AddSortyIDs adds the "sorties" edge to the Sortie entity by IDs.
func (_u *MissionUpdate) AddSortyIDs(ids ...string) *MissionUpdate {
	_u.mutation.AddSortyIDs(ids...)
	return _u
}

// AddSorties adds the "sorties" edges to the Sortie entity.
func (_u *MissionUpdate) AddSorties(v ...*Sortie) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSortyIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *MissionUpdate) AddCheckpointIDs(ids ...string) *MissionUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *MissionUpdate) AddCheckpoints(v ...*Checkpoint) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdate) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearSorties clears all "sorties" edges to the Sortie entity.
func (_u *MissionUpdate) ClearSorties() *MissionUpdate {
	_u.mutation.ClearSorties()
	return _u
}

// RemoveSortyIDs removes the "sorties" edge to Sortie entities by IDs.
func (_u *MissionUpdate) RemoveSortyIDs(ids ...string) *MissionUpdate {
	_u.mutation.RemoveSortyIDs(ids...)
	return _u
}

// RemoveSorties removes "sorties" edges to Sortie entities.
func (_u *MissionUpdate) RemoveSorties(v ...*Sortie) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSortyIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *MissionUpdate) ClearCheckpoints() *MissionUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *MissionUpdate) RemoveCheckpointIDs(ids ...string) *MissionUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *MissionUpdate) RemoveCheckpoints(v ...*Checkpoint) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := mission.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Mission.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mission.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mission.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(mission.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(mission.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(mission.FieldStrategy, field.TypeString, value)
	}
	if _u.mutation.StrategyCleared() {
		_spec.ClearField(mission.FieldStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSorties(); ok {
		_spec.SetField(mission.FieldTotalSorties, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSorties(); ok {
		_spec.AddField(mission.FieldTotalSorties, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedSorties(); ok {
		_spec.SetField(mission.FieldCompletedSorties, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedSorties(); ok {
		_spec.AddField(mission.FieldCompletedSorties, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(mission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(mission.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(mission.FieldLastActivityAt, field.TypeTime)
	}
	if _u.mutation.SortiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSortiesIDs(); len(nodes) > 0 && !_u.mutation.SortiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SortiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionUpdateOne is the builder for updating a single Mission entity.
type MissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionMutation
}

// SetTitle sets the "title" field.
func (_u *MissionUpdateOne) SetTitle(v string) *MissionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableTitle(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MissionUpdateOne) SetDescription(v string) *MissionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableDescription(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MissionUpdateOne) ClearDescription() *MissionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdateOne) SetStatus(v mission.Status) *MissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStatus(v *mission.Status) *MissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *MissionUpdateOne) SetPriority(v mission.Priority) *MissionUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillablePriority(v *mission.Priority) *MissionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *MissionUpdateOne) SetStrategy(v string) *MissionUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStrategy(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// ClearStrategy clears the value of the "strategy" field.
func (_u *MissionUpdateOne) ClearStrategy() *MissionUpdateOne {
	_u.mutation.ClearStrategy()
	return _u
}

// SetTotalSorties sets the "total_sorties" field.
func (_u *MissionUpdateOne) SetTotalSorties(v int) *MissionUpdateOne {
	_u.mutation.ResetTotalSorties()
	_u.mutation.SetTotalSorties(v)
	return _u
}

// SetNillableTotalSorties sets the "total_sorties" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableTotalSorties(v *int) *MissionUpdateOne {
	if v != nil {
		_u.SetTotalSorties(*v)
	}
	return _u
}

// AddTotalSorties adds value to the "total_sorties" field.
func (_u *MissionUpdateOne) AddTotalSorties(v int) *MissionUpdateOne {
	_u.mutation.AddTotalSorties(v)
	return _u
}

// SetCompletedSorties sets the "completed_sorties" field.
func (_u *MissionUpdateOne) SetCompletedSorties(v int) *MissionUpdateOne {
	_u.mutation.ResetCompletedSorties()
	_u.mutation.SetCompletedSorties(v)
	return _u
}

// SetNillableCompletedSorties sets the "completed_sorties" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCompletedSorties(v *int) *MissionUpdateOne {
	if v != nil {
		_u.SetCompletedSorties(*v)
	}
	return _u
}

// AddCompletedSorties adds value to the "completed_sorties" field.
func (_u *MissionUpdateOne) AddCompletedSorties(v int) *MissionUpdateOne {
	_u.mutation.AddCompletedSorties(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionUpdateOne) SetStartedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStartedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionUpdateOne) ClearStartedAt() *MissionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdateOne) SetCompletedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCompletedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdateOne) ClearCompletedAt() *MissionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *MissionUpdateOne) SetLastActivityAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableLastActivityAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *MissionUpdateOne) ClearLastActivityAt() *MissionUpdateOne {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// AddSortyIDs adds the "sorties" edge to the Sortie entity by IDs.
func (_u *MissionUpdateOne) AddSortyIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.AddSortyIDs(ids...)
	return _u
}

// AddSorties adds the "sorties" edges to the Sortie entity.
func (_u *MissionUpdateOne) AddSorties(v ...*Sortie) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSortyIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *MissionUpdateOne) AddCheckpointIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *MissionUpdateOne) AddCheckpoints(v ...*Checkpoint) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdateOne) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearSorties clears all "sorties" edges to the Sortie entity.
func (_u *MissionUpdateOne) ClearSorties() *MissionUpdateOne {
	_u.mutation.ClearSorties()
	return _u
}

// RemoveSortyIDs removes the "sorties" edge to Sortie entities by IDs.
func (_u *MissionUpdateOne) RemoveSortyIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.RemoveSortyIDs(ids...)
	return _u
}

// RemoveSorties removes "sorties" edges to Sortie entities.
func (_u *MissionUpdateOne) RemoveSorties(v ...*Sortie) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSortyIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *MissionUpdateOne) ClearCheckpoints() *MissionUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *MissionUpdateOne) RemoveCheckpointIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *MissionUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdateOne) Where(ps ...predicate.Mission) *MissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionUpdateOne) Select(field string, fields ...string) *MissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mission entity.
func (_u *MissionUpdateOne) Save(ctx context.Context) (*Mission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdateOne) SaveX(ctx context.Context) *Mission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := mission.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Mission.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdateOne) sqlSave(ctx context.Context) (_node *Mission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mission.FieldID)
		for _, f := range fields {
			if !mission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mission.FieldID {
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
		_spec.SetField(mission.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mission.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(mission.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(mission.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(mission.FieldStrategy, field.TypeString, value)
	}
	if _u.mutation.StrategyCleared() {
		_spec.ClearField(mission.FieldStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSorties(); ok {
		_spec.SetField(mission.FieldTotalSorties, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSorties(); ok {
		_spec.AddField(mission.FieldTotalSorties, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedSorties(); ok {
		_spec.SetField(mission.FieldCompletedSorties, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedSorties(); ok {
		_spec.AddField(mission.FieldCompletedSorties, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(mission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(mission.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(mission.FieldLastActivityAt, field.TypeTime)
	}
	if _u.mutation.SortiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSortiesIDs(); len(nodes) > 0 && !_u.mutation.SortiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SortiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
