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
	"github.com/fleettools/fleetd/ent/specialist"
)

// SpecialistUpdate is the builder for updating Specialist entities.
type SpecialistUpdate struct {
	config
	hooks    []Hook
	mutation *SpecialistMutation
}

// Where appends a list predicates to the SpecialistUpdate builder.
func (_u *SpecialistUpdate) Where(ps ...predicate.Specialist) *SpecialistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SpecialistUpdate) SetName(v string) *SpecialistUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SpecialistUpdate) SetNillableName(v *string) *SpecialistUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *SpecialistUpdate) ClearName() *SpecialistUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *SpecialistUpdate) SetCapabilities(v []string) *SpecialistUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *SpecialistUpdate) AppendCapabilities(v []string) *SpecialistUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *SpecialistUpdate) ClearCapabilities() *SpecialistUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpecialistUpdate) SetStatus(v specialist.Status) *SpecialistUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpecialistUpdate) SetNillableStatus(v *specialist.Status) *SpecialistUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentSortie sets the "current_sortie" field.
func (_u *SpecialistUpdate) SetCurrentSortie(v string) *SpecialistUpdate {
	_u.mutation.SetCurrentSortie(v)
	return _u
}

// SetNillableCurrentSortie sets the "current_sortie" field if the given value is not nil.
func (_u *SpecialistUpdate) SetNillableCurrentSortie(v *string) *SpecialistUpdate {
	if v != nil {
		_u.SetCurrentSortie(*v)
	}
	return _u
}

// ClearCurrentSortie clears the value of the "current_sortie" field.
func (_u *SpecialistUpdate) ClearCurrentSortie() *SpecialistUpdate {
	_u.mutation.ClearCurrentSortie()
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *SpecialistUpdate) SetMissionID(v string) *SpecialistUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *SpecialistUpdate) SetNillableMissionID(v *string) *SpecialistUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *SpecialistUpdate) ClearMissionID() *SpecialistUpdate {
	_u.mutation.ClearMissionID()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *SpecialistUpdate) SetLastSeen(v time.Time) *SpecialistUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *SpecialistUpdate) SetNillableLastSeen(v *time.Time) *SpecialistUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SpecialistUpdate) SetMetadata(v map[string]interface{}) *SpecialistUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SpecialistUpdate) ClearMetadata() *SpecialistUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SpecialistMutation object of the builder.
func (_u *SpecialistUpdate) Mutation() *SpecialistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpecialistUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecialistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpecialistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecialistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecialistUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := specialist.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Specialist.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SpecialistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specialist.Table, specialist.Columns, sqlgraph.NewFieldSpec(specialist.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(specialist.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(specialist.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(specialist.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, specialist.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(specialist.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(specialist.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentSortie(); ok {
		_spec.SetField(specialist.FieldCurrentSortie, field.TypeString, value)
	}
	if _u.mutation.CurrentSortieCleared() {
		_spec.ClearField(specialist.FieldCurrentSortie, field.TypeString)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(specialist.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(specialist.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(specialist.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(specialist.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(specialist.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specialist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpecialistUpdateOne is the builder for updating a single Specialist entity.
type SpecialistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpecialistMutation
}

// SetName sets the "name" field.
func (_u *SpecialistUpdateOne) SetName(v string) *SpecialistUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SpecialistUpdateOne) SetNillableName(v *string) *SpecialistUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *SpecialistUpdateOne) ClearName() *SpecialistUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *SpecialistUpdateOne) SetCapabilities(v []string) *SpecialistUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *SpecialistUpdateOne) AppendCapabilities(v []string) *SpecialistUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *SpecialistUpdateOne) ClearCapabilities() *SpecialistUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpecialistUpdateOne) SetStatus(v specialist.Status) *SpecialistUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpecialistUpdateOne) SetNillableStatus(v *specialist.Status) *SpecialistUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentSortie sets the "current_sortie" field.
func (_u *SpecialistUpdateOne) SetCurrentSortie(v string) *SpecialistUpdateOne {
	_u.mutation.SetCurrentSortie(v)
	return _u
}

// SetNillableCurrentSortie sets the "current_sortie" field if the given value is not nil.
func (_u *SpecialistUpdateOne) SetNillableCurrentSortie(v *string) *SpecialistUpdateOne {
	if v != nil {
		_u.SetCurrentSortie(*v)
	}
	return _u
}

// ClearCurrentSortie clears the value of the "current_sortie" field.
func (_u *SpecialistUpdateOne) ClearCurrentSortie() *SpecialistUpdateOne {
	_u.mutation.ClearCurrentSortie()
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *SpecialistUpdateOne) SetMissionID(v string) *SpecialistUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *SpecialistUpdateOne) SetNillableMissionID(v *string) *SpecialistUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *SpecialistUpdateOne) ClearMissionID() *SpecialistUpdateOne {
	_u.mutation.ClearMissionID()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *SpecialistUpdateOne) SetLastSeen(v time.Time) *SpecialistUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *SpecialistUpdateOne) SetNillableLastSeen(v *time.Time) *SpecialistUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SpecialistUpdateOne) SetMetadata(v map[string]interface{}) *SpecialistUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SpecialistUpdateOne) ClearMetadata() *SpecialistUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SpecialistMutation object of the builder.
func (_u *SpecialistUpdateOne) Mutation() *SpecialistMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpecialistUpdate builder.
func (_u *SpecialistUpdateOne) Where(ps ...predicate.Specialist) *SpecialistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpecialistUpdateOne) Select(field string, fields ...string) *SpecialistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Specialist entity.
func (_u *SpecialistUpdateOne) Save(ctx context.Context) (*Specialist, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecialistUpdateOne) SaveX(ctx context.Context) *Specialist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpecialistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecialistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecialistUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := specialist.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Specialist.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SpecialistUpdateOne) sqlSave(ctx context.Context) (_node *Specialist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specialist.Table, specialist.Columns, sqlgraph.NewFieldSpec(specialist.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Specialist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, specialist.FieldID)
		for _, f := range fields {
			if !specialist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != specialist.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(specialist.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(specialist.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(specialist.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, specialist.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(specialist.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(specialist.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentSortie(); ok {
		_spec.SetField(specialist.FieldCurrentSortie, field.TypeString, value)
	}
	if _u.mutation.CurrentSortieCleared() {
		_spec.ClearField(specialist.FieldCurrentSortie, field.TypeString)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(specialist.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(specialist.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(specialist.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(specialist.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(specialist.FieldMetadata, field.TypeJSON)
	}
	_node = &Specialist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specialist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
