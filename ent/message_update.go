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
	"github.com/fleettools/fleetd/ent/message"
	"github.com/fleettools/fleetd/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *MessageUpdate) SetPriority(v message.Priority) *MessageUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *MessageUpdate) SetNillablePriority(v *message.Priority) *MessageUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MessageUpdate) SetStatus(v message.Status) *MessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableStatus(v *message.Status) *MessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *MessageUpdate) SetResponse(v map[string]interface{}) *MessageUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *MessageUpdate) ClearResponse() *MessageUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *MessageUpdate) SetReadAt(v time.Time) *MessageUpdate {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableReadAt(v *time.Time) *MessageUpdate {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *MessageUpdate) ClearReadAt() *MessageUpdate {
	_u.mutation.ClearReadAt()
	return _u
}

// SetAckedAt sets the "acked_at" field.
func (_u *MessageUpdate) SetAckedAt(v time.Time) *MessageUpdate {
	_u.mutation.SetAckedAt(v)
	return _u
}

// SetNillableAckedAt sets the "acked_at" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableAckedAt(v *time.Time) *MessageUpdate {
	if v != nil {
		_u.SetAckedAt(*v)
	}
	return _u
}

// ClearAckedAt clears the value of the "acked_at" field.
func (_u *MessageUpdate) ClearAckedAt() *MessageUpdate {
	_u.mutation.ClearAckedAt()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := message.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Message.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := message.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Message.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SenderIDCleared() {
		_spec.ClearField(message.FieldSenderID, field.TypeString)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(message.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(message.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(message.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(message.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(message.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(message.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(message.FieldReadAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AckedAt(); ok {
		_spec.SetField(message.FieldAckedAt, field.TypeTime, value)
	}
	if _u.mutation.AckedAtCleared() {
		_spec.ClearField(message.FieldAckedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetPriority sets the "priority" field.
func (_u *MessageUpdateOne) SetPriority(v message.Priority) *MessageUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillablePriority(v *message.Priority) *MessageUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MessageUpdateOne) SetStatus(v message.Status) *MessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableStatus(v *message.Status) *MessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *MessageUpdateOne) SetResponse(v map[string]interface{}) *MessageUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *MessageUpdateOne) ClearResponse() *MessageUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *MessageUpdateOne) SetReadAt(v time.Time) *MessageUpdateOne {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableReadAt(v *time.Time) *MessageUpdateOne {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *MessageUpdateOne) ClearReadAt() *MessageUpdateOne {
	_u.mutation.ClearReadAt()
	return _u
}

// SetAckedAt sets the "acked_at" field.
func (_u *MessageUpdateOne) SetAckedAt(v time.Time) *MessageUpdateOne {
	_u.mutation.SetAckedAt(v)
	return _u
}

// SetNillableAckedAt sets the "acked_at" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableAckedAt(v *time.Time) *MessageUpdateOne {
	if v != nil {
		_u.SetAckedAt(*v)
	}
	return _u
}

// ClearAckedAt clears the value of the "acked_at" field.
func (_u *MessageUpdateOne) ClearAckedAt() *MessageUpdateOne {
	_u.mutation.ClearAckedAt()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := message.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Message.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := message.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Message.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if _u.mutation.SenderIDCleared() {
		_spec.ClearField(message.FieldSenderID, field.TypeString)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(message.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(message.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(message.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(message.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(message.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(message.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(message.FieldReadAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AckedAt(); ok {
		_spec.SetField(message.FieldAckedAt, field.TypeTime, value)
	}
	if _u.mutation.AckedAtCleared() {
		_spec.ClearField(message.FieldAckedAt, field.TypeTime)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
