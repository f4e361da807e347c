// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/sortie"
)

// SortieCreate is the builder for creating a Sortie entity.
type SortieCreate struct {
	config
	mutation *SortieMutation
	hooks    []Hook
}

// SetMissionID sets the "mission_id" field.
func (_c *SortieCreate) SetMissionID(v string) *SortieCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_c *SortieCreate) SetNillableMissionID(v *string) *SortieCreate {
	if v != nil {
		_c.SetMissionID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *SortieCreate) SetTitle(v string) *SortieCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SortieCreate) SetDescription(v string) *SortieCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SortieCreate) SetNillableDescription(v *string) *SortieCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SortieCreate) SetStatus(v sortie.Status) *SortieCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SortieCreate) SetNillableStatus(v *sortie.Status) *SortieCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *SortieCreate) SetAssignedTo(v string) *SortieCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *SortieCreate) SetNillableAssignedTo(v *string) *SortieCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SortieCreate) SetPriority(v sortie.Priority) *SortieCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *SortieCreate) SetNillablePriority(v *sortie.Priority) *SortieCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *SortieCreate) SetProgress(v int) *SortieCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *SortieCreate) SetNillableProgress(v *int) *SortieCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetFiles sets the "files" field.
func (_c *SortieCreate) SetFiles(v []string) *SortieCreate {
	_c.mutation.SetFiles(v)
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *SortieCreate) SetDependencies(v []string) *SortieCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetBlockedBy sets the "blocked_by" field.
func (_c *SortieCreate) SetBlockedBy(v string) *SortieCreate {
	_c.mutation.SetBlockedBy(v)
	return _c
}

// SetNillableBlockedBy sets the "blocked_by" field if the given value is not nil.
func (_c *SortieCreate) SetNillableBlockedBy(v *string) *SortieCreate {
	if v != nil {
		_c.SetBlockedBy(*v)
	}
	return _c
}

// SetBlockedReason sets the "blocked_reason" field.
func (_c *SortieCreate) SetBlockedReason(v string) *SortieCreate {
	_c.mutation.SetBlockedReason(v)
	return _c
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_c *SortieCreate) SetNillableBlockedReason(v *string) *SortieCreate {
	if v != nil {
		_c.SetBlockedReason(*v)
	}
	return _c
}

// SetBlockedCategory sets the "blocked_category" field.
func (_c *SortieCreate) SetBlockedCategory(v sortie.BlockedCategory) *SortieCreate {
	_c.mutation.SetBlockedCategory(v)
	return _c
}

// SetNillableBlockedCategory sets the "blocked_category" field if the given value is not nil.
func (_c *SortieCreate) SetNillableBlockedCategory(v *sortie.BlockedCategory) *SortieCreate {
	if v != nil {
		_c.SetBlockedCategory(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *SortieCreate) SetResult(v map[string]interface{}) *SortieCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetReviewFeedback sets the "review_feedback" field.
func (_c *SortieCreate) SetReviewFeedback(v string) *SortieCreate {
	_c.mutation.SetReviewFeedback(v)
	return _c
}

// SetNillableReviewFeedback sets the "review_feedback" field if the given value is not nil.
func (_c *SortieCreate) SetNillableReviewFeedback(v *string) *SortieCreate {
	if v != nil {
		_c.SetReviewFeedback(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SortieCreate) SetCreatedAt(v time.Time) *SortieCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SortieCreate) SetNillableCreatedAt(v *time.Time) *SortieCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *SortieCreate) SetAssignedAt(v time.Time) *SortieCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *SortieCreate) SetNillableAssignedAt(v *time.Time) *SortieCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SortieCreate) SetStartedAt(v time.Time) *SortieCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SortieCreate) SetNillableStartedAt(v *time.Time) *SortieCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetBlockedAt sets the "blocked_at" field.
func (_c *SortieCreate) SetBlockedAt(v time.Time) *SortieCreate {
	_c.mutation.SetBlockedAt(v)
	return _c
}

// SetNillableBlockedAt sets the "blocked_at" field if the given value is not nil.
func (_c *SortieCreate) SetNillableBlockedAt(v *time.Time) *SortieCreate {
	if v != nil {
		_c.SetBlockedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SortieCreate) SetCompletedAt(v time.Time) *SortieCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SortieCreate) SetNillableCompletedAt(v *time.Time) *SortieCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SortieCreate) SetID(v string) *SortieCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMission sets the "mission" edge to the Mission entity.
func (_c *SortieCreate) SetMission(v *Mission) *SortieCreate {
	return _c.SetMissionID(v.ID)
}

// Mutation returns the SortieMutation object of the builder.
func (_c *SortieCreate) Mutation() *SortieMutation {
	return _c.mutation
}

// Save creates the Sortie in the database.
func (_c *SortieCreate) Save(ctx context.Context) (*Sortie, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SortieCreate) SaveX(ctx context.Context) *Sortie {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SortieCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SortieCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SortieCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := sortie.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := sortie.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := sortie.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sortie.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SortieCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Sortie.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Sortie.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sortie.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Sortie.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Sortie.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := sortie.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Sortie.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Sortie.progress"`)}
	}
	if v, ok := _c.mutation.BlockedCategory(); ok {
		if err := sortie.BlockedCategoryValidator(v); err != nil {
			return &ValidationError{Name: "blocked_category", err: fmt.Errorf(`ent: validator failed for field "Sortie.blocked_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sortie.created_at"`)}
	}
	return nil
}

func (_c *SortieCreate) sqlSave(ctx context.Context) (*Sortie, error) {
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
			return nil, fmt.Errorf("unexpected Sortie.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SortieCreate) createSpec() (*Sortie, *sqlgraph.CreateSpec) {
	var (
		_node = &Sortie{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sortie.Table, sqlgraph.NewFieldSpec(sortie.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(sortie.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(sortie.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sortie.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(sortie.FieldAssignedTo, field.TypeString, value)
		_node.AssignedTo = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(sortie.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(sortie.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Files(); ok {
		_spec.SetField(sortie.FieldFiles, field.TypeJSON, value)
		_node.Files = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(sortie.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.BlockedBy(); ok {
		_spec.SetField(sortie.FieldBlockedBy, field.TypeString, value)
		_node.BlockedBy = &value
	}
	if value, ok := _c.mutation.BlockedReason(); ok {
		_spec.SetField(sortie.FieldBlockedReason, field.TypeString, value)
		_node.BlockedReason = &value
	}
	if value, ok := _c.mutation.BlockedCategory(); ok {
		_spec.SetField(sortie.FieldBlockedCategory, field.TypeEnum, value)
		_node.BlockedCategory = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(sortie.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ReviewFeedback(); ok {
		_spec.SetField(sortie.FieldReviewFeedback, field.TypeString, value)
		_node.ReviewFeedback = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sortie.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(sortie.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sortie.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.BlockedAt(); ok {
		_spec.SetField(sortie.FieldBlockedAt, field.TypeTime, value)
		_node.BlockedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sortie.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sortie.MissionTable,
			Columns: []string{sortie.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MissionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SortieCreateBulk is the builder for creating many Sortie entities in bulk.
type SortieCreateBulk struct {
	config
	err      error
	builders []*SortieCreate
}

// Save creates the Sortie entities in the database.
func (_c *SortieCreateBulk) Save(ctx context.Context) ([]*Sortie, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sortie, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SortieMutation)
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
func (_c *SortieCreateBulk) SaveX(ctx context.Context) []*Sortie {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SortieCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SortieCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
