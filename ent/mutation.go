// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleettools/fleetd/ent/archivedevent"
	"github.com/fleettools/fleetd/ent/checkpoint"
	"github.com/fleettools/fleetd/ent/cursor"
	"github.com/fleettools/fleetd/ent/event"
	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/ent/message"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/predicate"
	"github.com/fleettools/fleetd/ent/snapshot"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/ent/specialist"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArchivedEvent = "ArchivedEvent"
	TypeCheckpoint    = "Checkpoint"
	TypeCursor        = "Cursor"
	TypeEvent         = "Event"
	TypeFileLock      = "FileLock"
	TypeMessage       = "Message"
	TypeMission       = "Mission"
	TypeSnapshot      = "Snapshot"
	TypeSortie        = "Sortie"
	TypeSpecialist    = "Specialist"
)

// ArchivedEventMutation represents an operation that mutates the ArchivedEvent nodes in the graph.
type ArchivedEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	sequence_number    *int64
	addsequence_number *int64
	event_type         *string
	stream_type        *string
	stream_id          *string
	data               *map[string]interface{}
	causation_id       *string
	correlation_id     *string
	occurred_at        *time.Time
	recorded_at        *time.Time
	schema_version     *int
	addschema_version  *int
	archived_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ArchivedEvent, error)
	predicates         []predicate.ArchivedEvent
}

var _ ent.Mutation = (*ArchivedEventMutation)(nil)

// archivedeventOption allows management of the mutation configuration using functional options.
type archivedeventOption func(*ArchivedEventMutation)

// newArchivedEventMutation creates new mutation for the ArchivedEvent entity.
func newArchivedEventMutation(c config, op Op, opts ...archivedeventOption) *ArchivedEventMutation {
	m := &ArchivedEventMutation{
		config:        c,
		op:            op,
		typ:           TypeArchivedEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArchivedEventID sets the ID field of the mutation.
func withArchivedEventID(id string) archivedeventOption {
	return func(m *ArchivedEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ArchivedEvent
		)
		m.oldValue = func(ctx context.Context) (*ArchivedEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArchivedEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArchivedEvent sets the old ArchivedEvent of the mutation.
func withArchivedEvent(node *ArchivedEvent) archivedeventOption {
	return func(m *ArchivedEventMutation) {
		m.oldValue = func(context.Context) (*ArchivedEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArchivedEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArchivedEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ArchivedEvent entities.
func (m *ArchivedEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArchivedEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArchivedEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArchivedEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *ArchivedEventMutation) SetSequenceNumber(i int64) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *ArchivedEventMutation) SequenceNumber() (r int64, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldSequenceNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *ArchivedEventMutation) AddSequenceNumber(i int64) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *ArchivedEventMutation) AddedSequenceNumber() (r int64, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *ArchivedEventMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetEventType sets the "event_type" field.
func (m *ArchivedEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ArchivedEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ArchivedEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetStreamType sets the "stream_type" field.
func (m *ArchivedEventMutation) SetStreamType(s string) {
	m.stream_type = &s
}

// StreamType returns the value of the "stream_type" field in the mutation.
func (m *ArchivedEventMutation) StreamType() (r string, exists bool) {
	v := m.stream_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamType returns the old "stream_type" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldStreamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamType: %w", err)
	}
	return oldValue.StreamType, nil
}

// ResetStreamType resets all changes to the "stream_type" field.
func (m *ArchivedEventMutation) ResetStreamType() {
	m.stream_type = nil
}

// SetStreamID sets the "stream_id" field.
func (m *ArchivedEventMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *ArchivedEventMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *ArchivedEventMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetData sets the "data" field.
func (m *ArchivedEventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ArchivedEventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *ArchivedEventMutation) ResetData() {
	m.data = nil
}

// SetCausationID sets the "causation_id" field.
func (m *ArchivedEventMutation) SetCausationID(s string) {
	m.causation_id = &s
}

// CausationID returns the value of the "causation_id" field in the mutation.
func (m *ArchivedEventMutation) CausationID() (r string, exists bool) {
	v := m.causation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCausationID returns the old "causation_id" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldCausationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCausationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCausationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCausationID: %w", err)
	}
	return oldValue.CausationID, nil
}

// ClearCausationID clears the value of the "causation_id" field.
func (m *ArchivedEventMutation) ClearCausationID() {
	m.causation_id = nil
	m.clearedFields[archivedevent.FieldCausationID] = struct{}{}
}

// CausationIDCleared returns if the "causation_id" field was cleared in this mutation.
func (m *ArchivedEventMutation) CausationIDCleared() bool {
	_, ok := m.clearedFields[archivedevent.FieldCausationID]
	return ok
}

// ResetCausationID resets all changes to the "causation_id" field.
func (m *ArchivedEventMutation) ResetCausationID() {
	m.causation_id = nil
	delete(m.clearedFields, archivedevent.FieldCausationID)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *ArchivedEventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *ArchivedEventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *ArchivedEventMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *ArchivedEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *ArchivedEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *ArchivedEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *ArchivedEventMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *ArchivedEventMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *ArchivedEventMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *ArchivedEventMutation) SetSchemaVersion(i int) {
	m.schema_version = &i
	m.addschema_version = nil
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *ArchivedEventMutation) SchemaVersion() (r int, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldSchemaVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// AddSchemaVersion adds i to the "schema_version" field.
func (m *ArchivedEventMutation) AddSchemaVersion(i int) {
	if m.addschema_version != nil {
		*m.addschema_version += i
	} else {
		m.addschema_version = &i
	}
}

// AddedSchemaVersion returns the value that was added to the "schema_version" field in this mutation.
func (m *ArchivedEventMutation) AddedSchemaVersion() (r int, exists bool) {
	v := m.addschema_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *ArchivedEventMutation) ResetSchemaVersion() {
	m.schema_version = nil
	m.addschema_version = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *ArchivedEventMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *ArchivedEventMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the ArchivedEvent entity.
// If the ArchivedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedEventMutation) OldArchivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *ArchivedEventMutation) ResetArchivedAt() {
	m.archived_at = nil
}

// Where appends a list predicates to the ArchivedEventMutation builder.
func (m *ArchivedEventMutation) Where(ps ...predicate.ArchivedEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArchivedEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArchivedEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArchivedEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArchivedEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArchivedEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArchivedEvent).
func (m *ArchivedEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArchivedEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence_number != nil {
		fields = append(fields, archivedevent.FieldSequenceNumber)
	}
	if m.event_type != nil {
		fields = append(fields, archivedevent.FieldEventType)
	}
	if m.stream_type != nil {
		fields = append(fields, archivedevent.FieldStreamType)
	}
	if m.stream_id != nil {
		fields = append(fields, archivedevent.FieldStreamID)
	}
	if m.data != nil {
		fields = append(fields, archivedevent.FieldData)
	}
	if m.causation_id != nil {
		fields = append(fields, archivedevent.FieldCausationID)
	}
	if m.correlation_id != nil {
		fields = append(fields, archivedevent.FieldCorrelationID)
	}
	if m.occurred_at != nil {
		fields = append(fields, archivedevent.FieldOccurredAt)
	}
	if m.recorded_at != nil {
		fields = append(fields, archivedevent.FieldRecordedAt)
	}
	if m.schema_version != nil {
		fields = append(fields, archivedevent.FieldSchemaVersion)
	}
	if m.archived_at != nil {
		fields = append(fields, archivedevent.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArchivedEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case archivedevent.FieldSequenceNumber:
		return m.SequenceNumber()
	case archivedevent.FieldEventType:
		return m.EventType()
	case archivedevent.FieldStreamType:
		return m.StreamType()
	case archivedevent.FieldStreamID:
		return m.StreamID()
	case archivedevent.FieldData:
		return m.Data()
	case archivedevent.FieldCausationID:
		return m.CausationID()
	case archivedevent.FieldCorrelationID:
		return m.CorrelationID()
	case archivedevent.FieldOccurredAt:
		return m.OccurredAt()
	case archivedevent.FieldRecordedAt:
		return m.RecordedAt()
	case archivedevent.FieldSchemaVersion:
		return m.SchemaVersion()
	case archivedevent.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArchivedEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case archivedevent.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case archivedevent.FieldEventType:
		return m.OldEventType(ctx)
	case archivedevent.FieldStreamType:
		return m.OldStreamType(ctx)
	case archivedevent.FieldStreamID:
		return m.OldStreamID(ctx)
	case archivedevent.FieldData:
		return m.OldData(ctx)
	case archivedevent.FieldCausationID:
		return m.OldCausationID(ctx)
	case archivedevent.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case archivedevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case archivedevent.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	case archivedevent.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case archivedevent.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ArchivedEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchivedEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case archivedevent.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case archivedevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case archivedevent.FieldStreamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamType(v)
		return nil
	case archivedevent.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case archivedevent.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case archivedevent.FieldCausationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCausationID(v)
		return nil
	case archivedevent.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case archivedevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case archivedevent.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	case archivedevent.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case archivedevent.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ArchivedEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArchivedEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, archivedevent.FieldSequenceNumber)
	}
	if m.addschema_version != nil {
		fields = append(fields, archivedevent.FieldSchemaVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArchivedEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case archivedevent.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	case archivedevent.FieldSchemaVersion:
		return m.AddedSchemaVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchivedEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case archivedevent.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	case archivedevent.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ArchivedEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArchivedEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(archivedevent.FieldCausationID) {
		fields = append(fields, archivedevent.FieldCausationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArchivedEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArchivedEventMutation) ClearField(name string) error {
	switch name {
	case archivedevent.FieldCausationID:
		m.ClearCausationID()
		return nil
	}
	return fmt.Errorf("unknown ArchivedEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArchivedEventMutation) ResetField(name string) error {
	switch name {
	case archivedevent.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case archivedevent.FieldEventType:
		m.ResetEventType()
		return nil
	case archivedevent.FieldStreamType:
		m.ResetStreamType()
		return nil
	case archivedevent.FieldStreamID:
		m.ResetStreamID()
		return nil
	case archivedevent.FieldData:
		m.ResetData()
		return nil
	case archivedevent.FieldCausationID:
		m.ResetCausationID()
		return nil
	case archivedevent.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case archivedevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case archivedevent.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	case archivedevent.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case archivedevent.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown ArchivedEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArchivedEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArchivedEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArchivedEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArchivedEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArchivedEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArchivedEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArchivedEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ArchivedEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArchivedEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ArchivedEvent edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	trigger                *checkpoint.Trigger
	progress_percent       *int
	addprogress_percent    *int
	milestone_percent      *int
	addmilestone_percent   *int
	sorties                *[]map[string]interface{}
	appendsorties          []map[string]interface{}
	active_locks           *[]map[string]interface{}
	appendactive_locks     []map[string]interface{}
	pending_messages       *[]map[string]interface{}
	appendpending_messages []map[string]interface{}
	recovery_context       *map[string]interface{}
	created_by             *string
	schema_version         *int
	addschema_version      *int
	last_event_sequence    *int64
	addlast_event_sequence *int64
	size_bytes             *int64
	addsize_bytes          *int64
	latest                 *bool
	created_at             *time.Time
	clearedFields          map[string]struct{}
	mission                *string
	clearedmission         bool
	done                   bool
	oldValue               func(context.Context) (*Checkpoint, error)
	predicates             []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMissionID sets the "mission_id" field.
func (m *CheckpointMutation) SetMissionID(s string) {
	m.mission = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *CheckpointMutation) MissionID() (r string, exists bool) {
	v := m.mission
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldMissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *CheckpointMutation) ResetMissionID() {
	m.mission = nil
}

// SetTrigger sets the "trigger" field.
func (m *CheckpointMutation) SetTrigger(c checkpoint.Trigger) {
	m.trigger = &c
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *CheckpointMutation) Trigger() (r checkpoint.Trigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTrigger(ctx context.Context) (v checkpoint.Trigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *CheckpointMutation) ResetTrigger() {
	m.trigger = nil
}

// SetProgressPercent sets the "progress_percent" field.
func (m *CheckpointMutation) SetProgressPercent(i int) {
	m.progress_percent = &i
	m.addprogress_percent = nil
}

// ProgressPercent returns the value of the "progress_percent" field in the mutation.
func (m *CheckpointMutation) ProgressPercent() (r int, exists bool) {
	v := m.progress_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercent returns the old "progress_percent" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldProgressPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercent: %w", err)
	}
	return oldValue.ProgressPercent, nil
}

// AddProgressPercent adds i to the "progress_percent" field.
func (m *CheckpointMutation) AddProgressPercent(i int) {
	if m.addprogress_percent != nil {
		*m.addprogress_percent += i
	} else {
		m.addprogress_percent = &i
	}
}

// AddedProgressPercent returns the value that was added to the "progress_percent" field in this mutation.
func (m *CheckpointMutation) AddedProgressPercent() (r int, exists bool) {
	v := m.addprogress_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercent resets all changes to the "progress_percent" field.
func (m *CheckpointMutation) ResetProgressPercent() {
	m.progress_percent = nil
	m.addprogress_percent = nil
}

// SetMilestonePercent sets the "milestone_percent" field.
func (m *CheckpointMutation) SetMilestonePercent(i int) {
	m.milestone_percent = &i
	m.addmilestone_percent = nil
}

// MilestonePercent returns the value of the "milestone_percent" field in the mutation.
func (m *CheckpointMutation) MilestonePercent() (r int, exists bool) {
	v := m.milestone_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldMilestonePercent returns the old "milestone_percent" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldMilestonePercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMilestonePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMilestonePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMilestonePercent: %w", err)
	}
	return oldValue.MilestonePercent, nil
}

// AddMilestonePercent adds i to the "milestone_percent" field.
func (m *CheckpointMutation) AddMilestonePercent(i int) {
	if m.addmilestone_percent != nil {
		*m.addmilestone_percent += i
	} else {
		m.addmilestone_percent = &i
	}
}

// AddedMilestonePercent returns the value that was added to the "milestone_percent" field in this mutation.
func (m *CheckpointMutation) AddedMilestonePercent() (r int, exists bool) {
	v := m.addmilestone_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetMilestonePercent resets all changes to the "milestone_percent" field.
func (m *CheckpointMutation) ResetMilestonePercent() {
	m.milestone_percent = nil
	m.addmilestone_percent = nil
}

// SetSorties sets the "sorties" field.
func (m *CheckpointMutation) SetSorties(value []map[string]interface{}) {
	m.sorties = &value
	m.appendsorties = nil
}

// Sorties returns the value of the "sorties" field in the mutation.
func (m *CheckpointMutation) Sorties() (r []map[string]interface{}, exists bool) {
	v := m.sorties
	if v == nil {
		return
	}
	return *v, true
}

// OldSorties returns the old "sorties" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSorties(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSorties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSorties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSorties: %w", err)
	}
	return oldValue.Sorties, nil
}

// AppendSorties adds value to the "sorties" field.
func (m *CheckpointMutation) AppendSorties(value []map[string]interface{}) {
	m.appendsorties = append(m.appendsorties, value...)
}

// AppendedSorties returns the list of values that were appended to the "sorties" field in this mutation.
func (m *CheckpointMutation) AppendedSorties() ([]map[string]interface{}, bool) {
	if len(m.appendsorties) == 0 {
		return nil, false
	}
	return m.appendsorties, true
}

// ResetSorties resets all changes to the "sorties" field.
func (m *CheckpointMutation) ResetSorties() {
	m.sorties = nil
	m.appendsorties = nil
}

// SetActiveLocks sets the "active_locks" field.
func (m *CheckpointMutation) SetActiveLocks(value []map[string]interface{}) {
	m.active_locks = &value
	m.appendactive_locks = nil
}

// ActiveLocks returns the value of the "active_locks" field in the mutation.
func (m *CheckpointMutation) ActiveLocks() (r []map[string]interface{}, exists bool) {
	v := m.active_locks
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveLocks returns the old "active_locks" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldActiveLocks(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveLocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveLocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveLocks: %w", err)
	}
	return oldValue.ActiveLocks, nil
}

// AppendActiveLocks adds value to the "active_locks" field.
func (m *CheckpointMutation) AppendActiveLocks(value []map[string]interface{}) {
	m.appendactive_locks = append(m.appendactive_locks, value...)
}

// AppendedActiveLocks returns the list of values that were appended to the "active_locks" field in this mutation.
func (m *CheckpointMutation) AppendedActiveLocks() ([]map[string]interface{}, bool) {
	if len(m.appendactive_locks) == 0 {
		return nil, false
	}
	return m.appendactive_locks, true
}

// ClearActiveLocks clears the value of the "active_locks" field.
func (m *CheckpointMutation) ClearActiveLocks() {
	m.active_locks = nil
	m.appendactive_locks = nil
	m.clearedFields[checkpoint.FieldActiveLocks] = struct{}{}
}

// ActiveLocksCleared returns if the "active_locks" field was cleared in this mutation.
func (m *CheckpointMutation) ActiveLocksCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldActiveLocks]
	return ok
}

// ResetActiveLocks resets all changes to the "active_locks" field.
func (m *CheckpointMutation) ResetActiveLocks() {
	m.active_locks = nil
	m.appendactive_locks = nil
	delete(m.clearedFields, checkpoint.FieldActiveLocks)
}

// SetPendingMessages sets the "pending_messages" field.
func (m *CheckpointMutation) SetPendingMessages(value []map[string]interface{}) {
	m.pending_messages = &value
	m.appendpending_messages = nil
}

// PendingMessages returns the value of the "pending_messages" field in the mutation.
func (m *CheckpointMutation) PendingMessages() (r []map[string]interface{}, exists bool) {
	v := m.pending_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingMessages returns the old "pending_messages" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPendingMessages(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingMessages: %w", err)
	}
	return oldValue.PendingMessages, nil
}

// AppendPendingMessages adds value to the "pending_messages" field.
func (m *CheckpointMutation) AppendPendingMessages(value []map[string]interface{}) {
	m.appendpending_messages = append(m.appendpending_messages, value...)
}

// AppendedPendingMessages returns the list of values that were appended to the "pending_messages" field in this mutation.
func (m *CheckpointMutation) AppendedPendingMessages() ([]map[string]interface{}, bool) {
	if len(m.appendpending_messages) == 0 {
		return nil, false
	}
	return m.appendpending_messages, true
}

// ClearPendingMessages clears the value of the "pending_messages" field.
func (m *CheckpointMutation) ClearPendingMessages() {
	m.pending_messages = nil
	m.appendpending_messages = nil
	m.clearedFields[checkpoint.FieldPendingMessages] = struct{}{}
}

// PendingMessagesCleared returns if the "pending_messages" field was cleared in this mutation.
func (m *CheckpointMutation) PendingMessagesCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldPendingMessages]
	return ok
}

// ResetPendingMessages resets all changes to the "pending_messages" field.
func (m *CheckpointMutation) ResetPendingMessages() {
	m.pending_messages = nil
	m.appendpending_messages = nil
	delete(m.clearedFields, checkpoint.FieldPendingMessages)
}

// SetRecoveryContext sets the "recovery_context" field.
func (m *CheckpointMutation) SetRecoveryContext(value map[string]interface{}) {
	m.recovery_context = &value
}

// RecoveryContext returns the value of the "recovery_context" field in the mutation.
func (m *CheckpointMutation) RecoveryContext() (r map[string]interface{}, exists bool) {
	v := m.recovery_context
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryContext returns the old "recovery_context" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldRecoveryContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryContext: %w", err)
	}
	return oldValue.RecoveryContext, nil
}

// ResetRecoveryContext resets all changes to the "recovery_context" field.
func (m *CheckpointMutation) ResetRecoveryContext() {
	m.recovery_context = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *CheckpointMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *CheckpointMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *CheckpointMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *CheckpointMutation) SetSchemaVersion(i int) {
	m.schema_version = &i
	m.addschema_version = nil
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *CheckpointMutation) SchemaVersion() (r int, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSchemaVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// AddSchemaVersion adds i to the "schema_version" field.
func (m *CheckpointMutation) AddSchemaVersion(i int) {
	if m.addschema_version != nil {
		*m.addschema_version += i
	} else {
		m.addschema_version = &i
	}
}

// AddedSchemaVersion returns the value that was added to the "schema_version" field in this mutation.
func (m *CheckpointMutation) AddedSchemaVersion() (r int, exists bool) {
	v := m.addschema_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *CheckpointMutation) ResetSchemaVersion() {
	m.schema_version = nil
	m.addschema_version = nil
}

// SetLastEventSequence sets the "last_event_sequence" field.
func (m *CheckpointMutation) SetLastEventSequence(i int64) {
	m.last_event_sequence = &i
	m.addlast_event_sequence = nil
}

// LastEventSequence returns the value of the "last_event_sequence" field in the mutation.
func (m *CheckpointMutation) LastEventSequence() (r int64, exists bool) {
	v := m.last_event_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventSequence returns the old "last_event_sequence" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldLastEventSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventSequence: %w", err)
	}
	return oldValue.LastEventSequence, nil
}

// AddLastEventSequence adds i to the "last_event_sequence" field.
func (m *CheckpointMutation) AddLastEventSequence(i int64) {
	if m.addlast_event_sequence != nil {
		*m.addlast_event_sequence += i
	} else {
		m.addlast_event_sequence = &i
	}
}

// AddedLastEventSequence returns the value that was added to the "last_event_sequence" field in this mutation.
func (m *CheckpointMutation) AddedLastEventSequence() (r int64, exists bool) {
	v := m.addlast_event_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastEventSequence resets all changes to the "last_event_sequence" field.
func (m *CheckpointMutation) ResetLastEventSequence() {
	m.last_event_sequence = nil
	m.addlast_event_sequence = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *CheckpointMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *CheckpointMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *CheckpointMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *CheckpointMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *CheckpointMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetLatest sets the "latest" field.
func (m *CheckpointMutation) SetLatest(b bool) {
	m.latest = &b
}

// Latest returns the value of the "latest" field in the mutation.
func (m *CheckpointMutation) Latest() (r bool, exists bool) {
	v := m.latest
	if v == nil {
		return
	}
	return *v, true
}

// OldLatest returns the old "latest" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldLatest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatest: %w", err)
	}
	return oldValue.Latest, nil
}

// ResetLatest resets all changes to the "latest" field.
func (m *CheckpointMutation) ResetLatest() {
	m.latest = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMission clears the "mission" edge to the Mission entity.
func (m *CheckpointMutation) ClearMission() {
	m.clearedmission = true
	m.clearedFields[checkpoint.FieldMissionID] = struct{}{}
}

// MissionCleared reports if the "mission" edge to the Mission entity was cleared.
func (m *CheckpointMutation) MissionCleared() bool {
	return m.clearedmission
}

// MissionIDs returns the "mission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MissionID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) MissionIDs() (ids []string) {
	if id := m.mission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMission resets all changes to the "mission" edge.
func (m *CheckpointMutation) ResetMission() {
	m.mission = nil
	m.clearedmission = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.mission != nil {
		fields = append(fields, checkpoint.FieldMissionID)
	}
	if m.trigger != nil {
		fields = append(fields, checkpoint.FieldTrigger)
	}
	if m.progress_percent != nil {
		fields = append(fields, checkpoint.FieldProgressPercent)
	}
	if m.milestone_percent != nil {
		fields = append(fields, checkpoint.FieldMilestonePercent)
	}
	if m.sorties != nil {
		fields = append(fields, checkpoint.FieldSorties)
	}
	if m.active_locks != nil {
		fields = append(fields, checkpoint.FieldActiveLocks)
	}
	if m.pending_messages != nil {
		fields = append(fields, checkpoint.FieldPendingMessages)
	}
	if m.recovery_context != nil {
		fields = append(fields, checkpoint.FieldRecoveryContext)
	}
	if m.created_by != nil {
		fields = append(fields, checkpoint.FieldCreatedBy)
	}
	if m.schema_version != nil {
		fields = append(fields, checkpoint.FieldSchemaVersion)
	}
	if m.last_event_sequence != nil {
		fields = append(fields, checkpoint.FieldLastEventSequence)
	}
	if m.size_bytes != nil {
		fields = append(fields, checkpoint.FieldSizeBytes)
	}
	if m.latest != nil {
		fields = append(fields, checkpoint.FieldLatest)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldMissionID:
		return m.MissionID()
	case checkpoint.FieldTrigger:
		return m.Trigger()
	case checkpoint.FieldProgressPercent:
		return m.ProgressPercent()
	case checkpoint.FieldMilestonePercent:
		return m.MilestonePercent()
	case checkpoint.FieldSorties:
		return m.Sorties()
	case checkpoint.FieldActiveLocks:
		return m.ActiveLocks()
	case checkpoint.FieldPendingMessages:
		return m.PendingMessages()
	case checkpoint.FieldRecoveryContext:
		return m.RecoveryContext()
	case checkpoint.FieldCreatedBy:
		return m.CreatedBy()
	case checkpoint.FieldSchemaVersion:
		return m.SchemaVersion()
	case checkpoint.FieldLastEventSequence:
		return m.LastEventSequence()
	case checkpoint.FieldSizeBytes:
		return m.SizeBytes()
	case checkpoint.FieldLatest:
		return m.Latest()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldMissionID:
		return m.OldMissionID(ctx)
	case checkpoint.FieldTrigger:
		return m.OldTrigger(ctx)
	case checkpoint.FieldProgressPercent:
		return m.OldProgressPercent(ctx)
	case checkpoint.FieldMilestonePercent:
		return m.OldMilestonePercent(ctx)
	case checkpoint.FieldSorties:
		return m.OldSorties(ctx)
	case checkpoint.FieldActiveLocks:
		return m.OldActiveLocks(ctx)
	case checkpoint.FieldPendingMessages:
		return m.OldPendingMessages(ctx)
	case checkpoint.FieldRecoveryContext:
		return m.OldRecoveryContext(ctx)
	case checkpoint.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case checkpoint.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case checkpoint.FieldLastEventSequence:
		return m.OldLastEventSequence(ctx)
	case checkpoint.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case checkpoint.FieldLatest:
		return m.OldLatest(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case checkpoint.FieldTrigger:
		v, ok := value.(checkpoint.Trigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case checkpoint.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercent(v)
		return nil
	case checkpoint.FieldMilestonePercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMilestonePercent(v)
		return nil
	case checkpoint.FieldSorties:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSorties(v)
		return nil
	case checkpoint.FieldActiveLocks:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveLocks(v)
		return nil
	case checkpoint.FieldPendingMessages:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingMessages(v)
		return nil
	case checkpoint.FieldRecoveryContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryContext(v)
		return nil
	case checkpoint.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case checkpoint.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case checkpoint.FieldLastEventSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventSequence(v)
		return nil
	case checkpoint.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case checkpoint.FieldLatest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatest(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addprogress_percent != nil {
		fields = append(fields, checkpoint.FieldProgressPercent)
	}
	if m.addmilestone_percent != nil {
		fields = append(fields, checkpoint.FieldMilestonePercent)
	}
	if m.addschema_version != nil {
		fields = append(fields, checkpoint.FieldSchemaVersion)
	}
	if m.addlast_event_sequence != nil {
		fields = append(fields, checkpoint.FieldLastEventSequence)
	}
	if m.addsize_bytes != nil {
		fields = append(fields, checkpoint.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldProgressPercent:
		return m.AddedProgressPercent()
	case checkpoint.FieldMilestonePercent:
		return m.AddedMilestonePercent()
	case checkpoint.FieldSchemaVersion:
		return m.AddedSchemaVersion()
	case checkpoint.FieldLastEventSequence:
		return m.AddedLastEventSequence()
	case checkpoint.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercent(v)
		return nil
	case checkpoint.FieldMilestonePercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMilestonePercent(v)
		return nil
	case checkpoint.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaVersion(v)
		return nil
	case checkpoint.FieldLastEventSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastEventSequence(v)
		return nil
	case checkpoint.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldActiveLocks) {
		fields = append(fields, checkpoint.FieldActiveLocks)
	}
	if m.FieldCleared(checkpoint.FieldPendingMessages) {
		fields = append(fields, checkpoint.FieldPendingMessages)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldActiveLocks:
		m.ClearActiveLocks()
		return nil
	case checkpoint.FieldPendingMessages:
		m.ClearPendingMessages()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldMissionID:
		m.ResetMissionID()
		return nil
	case checkpoint.FieldTrigger:
		m.ResetTrigger()
		return nil
	case checkpoint.FieldProgressPercent:
		m.ResetProgressPercent()
		return nil
	case checkpoint.FieldMilestonePercent:
		m.ResetMilestonePercent()
		return nil
	case checkpoint.FieldSorties:
		m.ResetSorties()
		return nil
	case checkpoint.FieldActiveLocks:
		m.ResetActiveLocks()
		return nil
	case checkpoint.FieldPendingMessages:
		m.ResetPendingMessages()
		return nil
	case checkpoint.FieldRecoveryContext:
		m.ResetRecoveryContext()
		return nil
	case checkpoint.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case checkpoint.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case checkpoint.FieldLastEventSequence:
		m.ResetLastEventSequence()
		return nil
	case checkpoint.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case checkpoint.FieldLatest:
		m.ResetLatest()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.mission != nil {
		edges = append(edges, checkpoint.EdgeMission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeMission:
		if id := m.mission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmission {
		edges = append(edges, checkpoint.EdgeMission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeMission:
		return m.clearedmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeMission:
		m.ClearMission()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeMission:
		m.ResetMission()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// CursorMutation represents an operation that mutates the Cursor nodes in the graph.
type CursorMutation struct {
	config
	op            Op
	typ           string
	id            *int
	stream_type   *string
	stream_id     *string
	consumer_id   *string
	position      *int64
	addposition   *int64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Cursor, error)
	predicates    []predicate.Cursor
}

var _ ent.Mutation = (*CursorMutation)(nil)

// cursorOption allows management of the mutation configuration using functional options.
type cursorOption func(*CursorMutation)

// newCursorMutation creates new mutation for the Cursor entity.
func newCursorMutation(c config, op Op, opts ...cursorOption) *CursorMutation {
	m := &CursorMutation{
		config:        c,
		op:            op,
		typ:           TypeCursor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCursorID sets the ID field of the mutation.
func withCursorID(id int) cursorOption {
	return func(m *CursorMutation) {
		var (
			err   error
			once  sync.Once
			value *Cursor
		)
		m.oldValue = func(ctx context.Context) (*Cursor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cursor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCursor sets the old Cursor of the mutation.
func withCursor(node *Cursor) cursorOption {
	return func(m *CursorMutation) {
		m.oldValue = func(context.Context) (*Cursor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CursorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CursorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CursorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CursorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cursor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamType sets the "stream_type" field.
func (m *CursorMutation) SetStreamType(s string) {
	m.stream_type = &s
}

// StreamType returns the value of the "stream_type" field in the mutation.
func (m *CursorMutation) StreamType() (r string, exists bool) {
	v := m.stream_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamType returns the old "stream_type" field's value of the Cursor entity.
// If the Cursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CursorMutation) OldStreamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamType: %w", err)
	}
	return oldValue.StreamType, nil
}

// ResetStreamType resets all changes to the "stream_type" field.
func (m *CursorMutation) ResetStreamType() {
	m.stream_type = nil
}

// SetStreamID sets the "stream_id" field.
func (m *CursorMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *CursorMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Cursor entity.
// If the Cursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CursorMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *CursorMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetConsumerID sets the "consumer_id" field.
func (m *CursorMutation) SetConsumerID(s string) {
	m.consumer_id = &s
}

// ConsumerID returns the value of the "consumer_id" field in the mutation.
func (m *CursorMutation) ConsumerID() (r string, exists bool) {
	v := m.consumer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumerID returns the old "consumer_id" field's value of the Cursor entity.
// If the Cursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CursorMutation) OldConsumerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumerID: %w", err)
	}
	return oldValue.ConsumerID, nil
}

// ResetConsumerID resets all changes to the "consumer_id" field.
func (m *CursorMutation) ResetConsumerID() {
	m.consumer_id = nil
}

// SetPosition sets the "position" field.
func (m *CursorMutation) SetPosition(i int64) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CursorMutation) Position() (r int64, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Cursor entity.
// If the Cursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CursorMutation) OldPosition(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CursorMutation) AddPosition(i int64) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CursorMutation) AddedPosition() (r int64, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CursorMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CursorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CursorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Cursor entity.
// If the Cursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CursorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CursorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CursorMutation builder.
func (m *CursorMutation) Where(ps ...predicate.Cursor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CursorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CursorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cursor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CursorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CursorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cursor).
func (m *CursorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CursorMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.stream_type != nil {
		fields = append(fields, cursor.FieldStreamType)
	}
	if m.stream_id != nil {
		fields = append(fields, cursor.FieldStreamID)
	}
	if m.consumer_id != nil {
		fields = append(fields, cursor.FieldConsumerID)
	}
	if m.position != nil {
		fields = append(fields, cursor.FieldPosition)
	}
	if m.updated_at != nil {
		fields = append(fields, cursor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CursorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cursor.FieldStreamType:
		return m.StreamType()
	case cursor.FieldStreamID:
		return m.StreamID()
	case cursor.FieldConsumerID:
		return m.ConsumerID()
	case cursor.FieldPosition:
		return m.Position()
	case cursor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CursorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cursor.FieldStreamType:
		return m.OldStreamType(ctx)
	case cursor.FieldStreamID:
		return m.OldStreamID(ctx)
	case cursor.FieldConsumerID:
		return m.OldConsumerID(ctx)
	case cursor.FieldPosition:
		return m.OldPosition(ctx)
	case cursor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Cursor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CursorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cursor.FieldStreamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamType(v)
		return nil
	case cursor.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case cursor.FieldConsumerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumerID(v)
		return nil
	case cursor.FieldPosition:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case cursor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Cursor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CursorMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, cursor.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CursorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cursor.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CursorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cursor.FieldPosition:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Cursor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CursorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CursorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CursorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Cursor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CursorMutation) ResetField(name string) error {
	switch name {
	case cursor.FieldStreamType:
		m.ResetStreamType()
		return nil
	case cursor.FieldStreamID:
		m.ResetStreamID()
		return nil
	case cursor.FieldConsumerID:
		m.ResetConsumerID()
		return nil
	case cursor.FieldPosition:
		m.ResetPosition()
		return nil
	case cursor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Cursor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CursorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CursorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CursorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CursorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CursorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CursorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CursorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Cursor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CursorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Cursor edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	sequence_number    *int64
	addsequence_number *int64
	event_type         *string
	stream_type        *string
	stream_id          *string
	data               *map[string]interface{}
	causation_id       *string
	correlation_id     *string
	metadata           *map[string]interface{}
	occurred_at        *time.Time
	recorded_at        *time.Time
	schema_version     *int
	addschema_version  *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Event, error)
	predicates         []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *EventMutation) SetSequenceNumber(i int64) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *EventMutation) SequenceNumber() (r int64, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSequenceNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *EventMutation) AddSequenceNumber(i int64) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *EventMutation) AddedSequenceNumber() (r int64, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *EventMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetStreamType sets the "stream_type" field.
func (m *EventMutation) SetStreamType(s string) {
	m.stream_type = &s
}

// StreamType returns the value of the "stream_type" field in the mutation.
func (m *EventMutation) StreamType() (r string, exists bool) {
	v := m.stream_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamType returns the old "stream_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStreamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamType: %w", err)
	}
	return oldValue.StreamType, nil
}

// ResetStreamType resets all changes to the "stream_type" field.
func (m *EventMutation) ResetStreamType() {
	m.stream_type = nil
}

// SetStreamID sets the "stream_id" field.
func (m *EventMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *EventMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *EventMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetData sets the "data" field.
func (m *EventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *EventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *EventMutation) ResetData() {
	m.data = nil
}

// SetCausationID sets the "causation_id" field.
func (m *EventMutation) SetCausationID(s string) {
	m.causation_id = &s
}

// CausationID returns the value of the "causation_id" field in the mutation.
func (m *EventMutation) CausationID() (r string, exists bool) {
	v := m.causation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCausationID returns the old "causation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCausationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCausationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCausationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCausationID: %w", err)
	}
	return oldValue.CausationID, nil
}

// ClearCausationID clears the value of the "causation_id" field.
func (m *EventMutation) ClearCausationID() {
	m.causation_id = nil
	m.clearedFields[event.FieldCausationID] = struct{}{}
}

// CausationIDCleared returns if the "causation_id" field was cleared in this mutation.
func (m *EventMutation) CausationIDCleared() bool {
	_, ok := m.clearedFields[event.FieldCausationID]
	return ok
}

// ResetCausationID resets all changes to the "causation_id" field.
func (m *EventMutation) ResetCausationID() {
	m.causation_id = nil
	delete(m.clearedFields, event.FieldCausationID)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *EventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *EventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *EventMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetMetadata sets the "metadata" field.
func (m *EventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[event.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[event.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, event.FieldMetadata)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *EventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *EventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *EventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *EventMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *EventMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *EventMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *EventMutation) SetSchemaVersion(i int) {
	m.schema_version = &i
	m.addschema_version = nil
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *EventMutation) SchemaVersion() (r int, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSchemaVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// AddSchemaVersion adds i to the "schema_version" field.
func (m *EventMutation) AddSchemaVersion(i int) {
	if m.addschema_version != nil {
		*m.addschema_version += i
	} else {
		m.addschema_version = &i
	}
}

// AddedSchemaVersion returns the value that was added to the "schema_version" field in this mutation.
func (m *EventMutation) AddedSchemaVersion() (r int, exists bool) {
	v := m.addschema_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *EventMutation) ResetSchemaVersion() {
	m.schema_version = nil
	m.addschema_version = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence_number != nil {
		fields = append(fields, event.FieldSequenceNumber)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.stream_type != nil {
		fields = append(fields, event.FieldStreamType)
	}
	if m.stream_id != nil {
		fields = append(fields, event.FieldStreamID)
	}
	if m.data != nil {
		fields = append(fields, event.FieldData)
	}
	if m.causation_id != nil {
		fields = append(fields, event.FieldCausationID)
	}
	if m.correlation_id != nil {
		fields = append(fields, event.FieldCorrelationID)
	}
	if m.metadata != nil {
		fields = append(fields, event.FieldMetadata)
	}
	if m.occurred_at != nil {
		fields = append(fields, event.FieldOccurredAt)
	}
	if m.recorded_at != nil {
		fields = append(fields, event.FieldRecordedAt)
	}
	if m.schema_version != nil {
		fields = append(fields, event.FieldSchemaVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSequenceNumber:
		return m.SequenceNumber()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldStreamType:
		return m.StreamType()
	case event.FieldStreamID:
		return m.StreamID()
	case event.FieldData:
		return m.Data()
	case event.FieldCausationID:
		return m.CausationID()
	case event.FieldCorrelationID:
		return m.CorrelationID()
	case event.FieldMetadata:
		return m.Metadata()
	case event.FieldOccurredAt:
		return m.OccurredAt()
	case event.FieldRecordedAt:
		return m.RecordedAt()
	case event.FieldSchemaVersion:
		return m.SchemaVersion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldStreamType:
		return m.OldStreamType(ctx)
	case event.FieldStreamID:
		return m.OldStreamID(ctx)
	case event.FieldData:
		return m.OldData(ctx)
	case event.FieldCausationID:
		return m.OldCausationID(ctx)
	case event.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case event.FieldMetadata:
		return m.OldMetadata(ctx)
	case event.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case event.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	case event.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldStreamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamType(v)
		return nil
	case event.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case event.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case event.FieldCausationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCausationID(v)
		return nil
	case event.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case event.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case event.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case event.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	case event.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, event.FieldSequenceNumber)
	}
	if m.addschema_version != nil {
		fields = append(fields, event.FieldSchemaVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	case event.FieldSchemaVersion:
		return m.AddedSchemaVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	case event.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldCausationID) {
		fields = append(fields, event.FieldCausationID)
	}
	if m.FieldCleared(event.FieldMetadata) {
		fields = append(fields, event.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldCausationID:
		m.ClearCausationID()
		return nil
	case event.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldStreamType:
		m.ResetStreamType()
		return nil
	case event.FieldStreamID:
		m.ResetStreamID()
		return nil
	case event.FieldData:
		m.ResetData()
		return nil
	case event.FieldCausationID:
		m.ResetCausationID()
		return nil
	case event.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case event.FieldMetadata:
		m.ResetMetadata()
		return nil
	case event.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case event.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	case event.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// FileLockMutation represents an operation that mutates the FileLock nodes in the graph.
type FileLockMutation struct {
	config
	op              Op
	typ             string
	id              *string
	file            *string
	normalized_path *string
	reserved_by     *string
	reserved_at     *time.Time
	expires_at      *time.Time
	released_at     *time.Time
	purpose         *filelock.Purpose
	checksum        *string
	status          *filelock.Status
	release_reason  *string
	metadata        *map[string]interface{}
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*FileLock, error)
	predicates      []predicate.FileLock
}

var _ ent.Mutation = (*FileLockMutation)(nil)

// filelockOption allows management of the mutation configuration using functional options.
type filelockOption func(*FileLockMutation)

// newFileLockMutation creates new mutation for the FileLock entity.
func newFileLockMutation(c config, op Op, opts ...filelockOption) *FileLockMutation {
	m := &FileLockMutation{
		config:        c,
		op:            op,
		typ:           TypeFileLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileLockID sets the ID field of the mutation.
func withFileLockID(id string) filelockOption {
	return func(m *FileLockMutation) {
		var (
			err   error
			once  sync.Once
			value *FileLock
		)
		m.oldValue = func(ctx context.Context) (*FileLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileLock sets the old FileLock of the mutation.
func withFileLock(node *FileLock) filelockOption {
	return func(m *FileLockMutation) {
		m.oldValue = func(context.Context) (*FileLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FileLock entities.
func (m *FileLockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileLockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileLockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFile sets the "file" field.
func (m *FileLockMutation) SetFile(s string) {
	m.file = &s
}

// File returns the value of the "file" field in the mutation.
func (m *FileLockMutation) File() (r string, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFile returns the old "file" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFile: %w", err)
	}
	return oldValue.File, nil
}

// ResetFile resets all changes to the "file" field.
func (m *FileLockMutation) ResetFile() {
	m.file = nil
}

// SetNormalizedPath sets the "normalized_path" field.
func (m *FileLockMutation) SetNormalizedPath(s string) {
	m.normalized_path = &s
}

// NormalizedPath returns the value of the "normalized_path" field in the mutation.
func (m *FileLockMutation) NormalizedPath() (r string, exists bool) {
	v := m.normalized_path
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedPath returns the old "normalized_path" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldNormalizedPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedPath: %w", err)
	}
	return oldValue.NormalizedPath, nil
}

// ResetNormalizedPath resets all changes to the "normalized_path" field.
func (m *FileLockMutation) ResetNormalizedPath() {
	m.normalized_path = nil
}

// SetReservedBy sets the "reserved_by" field.
func (m *FileLockMutation) SetReservedBy(s string) {
	m.reserved_by = &s
}

// ReservedBy returns the value of the "reserved_by" field in the mutation.
func (m *FileLockMutation) ReservedBy() (r string, exists bool) {
	v := m.reserved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReservedBy returns the old "reserved_by" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldReservedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservedBy: %w", err)
	}
	return oldValue.ReservedBy, nil
}

// ResetReservedBy resets all changes to the "reserved_by" field.
func (m *FileLockMutation) ResetReservedBy() {
	m.reserved_by = nil
}

// SetReservedAt sets the "reserved_at" field.
func (m *FileLockMutation) SetReservedAt(t time.Time) {
	m.reserved_at = &t
}

// ReservedAt returns the value of the "reserved_at" field in the mutation.
func (m *FileLockMutation) ReservedAt() (r time.Time, exists bool) {
	v := m.reserved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReservedAt returns the old "reserved_at" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldReservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservedAt: %w", err)
	}
	return oldValue.ReservedAt, nil
}

// ResetReservedAt resets all changes to the "reserved_at" field.
func (m *FileLockMutation) ResetReservedAt() {
	m.reserved_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *FileLockMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *FileLockMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *FileLockMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetReleasedAt sets the "released_at" field.
func (m *FileLockMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *FileLockMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *FileLockMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[filelock.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *FileLockMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[filelock.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *FileLockMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, filelock.FieldReleasedAt)
}

// SetPurpose sets the "purpose" field.
func (m *FileLockMutation) SetPurpose(f filelock.Purpose) {
	m.purpose = &f
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *FileLockMutation) Purpose() (r filelock.Purpose, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldPurpose(ctx context.Context) (v filelock.Purpose, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *FileLockMutation) ResetPurpose() {
	m.purpose = nil
}

// SetChecksum sets the "checksum" field.
func (m *FileLockMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *FileLockMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ClearChecksum clears the value of the "checksum" field.
func (m *FileLockMutation) ClearChecksum() {
	m.checksum = nil
	m.clearedFields[filelock.FieldChecksum] = struct{}{}
}

// ChecksumCleared returns if the "checksum" field was cleared in this mutation.
func (m *FileLockMutation) ChecksumCleared() bool {
	_, ok := m.clearedFields[filelock.FieldChecksum]
	return ok
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *FileLockMutation) ResetChecksum() {
	m.checksum = nil
	delete(m.clearedFields, filelock.FieldChecksum)
}

// SetStatus sets the "status" field.
func (m *FileLockMutation) SetStatus(f filelock.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FileLockMutation) Status() (r filelock.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldStatus(ctx context.Context) (v filelock.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FileLockMutation) ResetStatus() {
	m.status = nil
}

// SetReleaseReason sets the "release_reason" field.
func (m *FileLockMutation) SetReleaseReason(s string) {
	m.release_reason = &s
}

// ReleaseReason returns the value of the "release_reason" field in the mutation.
func (m *FileLockMutation) ReleaseReason() (r string, exists bool) {
	v := m.release_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReleaseReason returns the old "release_reason" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldReleaseReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleaseReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleaseReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleaseReason: %w", err)
	}
	return oldValue.ReleaseReason, nil
}

// ClearReleaseReason clears the value of the "release_reason" field.
func (m *FileLockMutation) ClearReleaseReason() {
	m.release_reason = nil
	m.clearedFields[filelock.FieldReleaseReason] = struct{}{}
}

// ReleaseReasonCleared returns if the "release_reason" field was cleared in this mutation.
func (m *FileLockMutation) ReleaseReasonCleared() bool {
	_, ok := m.clearedFields[filelock.FieldReleaseReason]
	return ok
}

// ResetReleaseReason resets all changes to the "release_reason" field.
func (m *FileLockMutation) ResetReleaseReason() {
	m.release_reason = nil
	delete(m.clearedFields, filelock.FieldReleaseReason)
}

// SetMetadata sets the "metadata" field.
func (m *FileLockMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *FileLockMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *FileLockMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[filelock.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *FileLockMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[filelock.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *FileLockMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, filelock.FieldMetadata)
}

// Where appends a list predicates to the FileLockMutation builder.
func (m *FileLockMutation) Where(ps ...predicate.FileLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileLock).
func (m *FileLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileLockMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.file != nil {
		fields = append(fields, filelock.FieldFile)
	}
	if m.normalized_path != nil {
		fields = append(fields, filelock.FieldNormalizedPath)
	}
	if m.reserved_by != nil {
		fields = append(fields, filelock.FieldReservedBy)
	}
	if m.reserved_at != nil {
		fields = append(fields, filelock.FieldReservedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, filelock.FieldExpiresAt)
	}
	if m.released_at != nil {
		fields = append(fields, filelock.FieldReleasedAt)
	}
	if m.purpose != nil {
		fields = append(fields, filelock.FieldPurpose)
	}
	if m.checksum != nil {
		fields = append(fields, filelock.FieldChecksum)
	}
	if m.status != nil {
		fields = append(fields, filelock.FieldStatus)
	}
	if m.release_reason != nil {
		fields = append(fields, filelock.FieldReleaseReason)
	}
	if m.metadata != nil {
		fields = append(fields, filelock.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filelock.FieldFile:
		return m.File()
	case filelock.FieldNormalizedPath:
		return m.NormalizedPath()
	case filelock.FieldReservedBy:
		return m.ReservedBy()
	case filelock.FieldReservedAt:
		return m.ReservedAt()
	case filelock.FieldExpiresAt:
		return m.ExpiresAt()
	case filelock.FieldReleasedAt:
		return m.ReleasedAt()
	case filelock.FieldPurpose:
		return m.Purpose()
	case filelock.FieldChecksum:
		return m.Checksum()
	case filelock.FieldStatus:
		return m.Status()
	case filelock.FieldReleaseReason:
		return m.ReleaseReason()
	case filelock.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filelock.FieldFile:
		return m.OldFile(ctx)
	case filelock.FieldNormalizedPath:
		return m.OldNormalizedPath(ctx)
	case filelock.FieldReservedBy:
		return m.OldReservedBy(ctx)
	case filelock.FieldReservedAt:
		return m.OldReservedAt(ctx)
	case filelock.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case filelock.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case filelock.FieldPurpose:
		return m.OldPurpose(ctx)
	case filelock.FieldChecksum:
		return m.OldChecksum(ctx)
	case filelock.FieldStatus:
		return m.OldStatus(ctx)
	case filelock.FieldReleaseReason:
		return m.OldReleaseReason(ctx)
	case filelock.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown FileLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filelock.FieldFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFile(v)
		return nil
	case filelock.FieldNormalizedPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedPath(v)
		return nil
	case filelock.FieldReservedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservedBy(v)
		return nil
	case filelock.FieldReservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservedAt(v)
		return nil
	case filelock.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case filelock.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case filelock.FieldPurpose:
		v, ok := value.(filelock.Purpose)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case filelock.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case filelock.FieldStatus:
		v, ok := value.(filelock.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case filelock.FieldReleaseReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleaseReason(v)
		return nil
	case filelock.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown FileLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileLockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileLockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FileLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileLockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(filelock.FieldReleasedAt) {
		fields = append(fields, filelock.FieldReleasedAt)
	}
	if m.FieldCleared(filelock.FieldChecksum) {
		fields = append(fields, filelock.FieldChecksum)
	}
	if m.FieldCleared(filelock.FieldReleaseReason) {
		fields = append(fields, filelock.FieldReleaseReason)
	}
	if m.FieldCleared(filelock.FieldMetadata) {
		fields = append(fields, filelock.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileLockMutation) ClearField(name string) error {
	switch name {
	case filelock.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	case filelock.FieldChecksum:
		m.ClearChecksum()
		return nil
	case filelock.FieldReleaseReason:
		m.ClearReleaseReason()
		return nil
	case filelock.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown FileLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileLockMutation) ResetField(name string) error {
	switch name {
	case filelock.FieldFile:
		m.ResetFile()
		return nil
	case filelock.FieldNormalizedPath:
		m.ResetNormalizedPath()
		return nil
	case filelock.FieldReservedBy:
		m.ResetReservedBy()
		return nil
	case filelock.FieldReservedAt:
		m.ResetReservedAt()
		return nil
	case filelock.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case filelock.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case filelock.FieldPurpose:
		m.ResetPurpose()
		return nil
	case filelock.FieldChecksum:
		m.ResetChecksum()
		return nil
	case filelock.FieldStatus:
		m.ResetStatus()
		return nil
	case filelock.FieldReleaseReason:
		m.ResetReleaseReason()
		return nil
	case filelock.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown FileLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FileLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FileLock edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	mailbox_id         *string
	sender_id          *string
	thread_id          *string
	_type              *string
	content            *map[string]interface{}
	priority           *message.Priority
	status             *message.Status
	sequence_number    *int64
	addsequence_number *int64
	response           *map[string]interface{}
	created_at         *time.Time
	read_at            *time.Time
	acked_at           *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Message, error)
	predicates         []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMailboxID sets the "mailbox_id" field.
func (m *MessageMutation) SetMailboxID(s string) {
	m.mailbox_id = &s
}

// MailboxID returns the value of the "mailbox_id" field in the mutation.
func (m *MessageMutation) MailboxID() (r string, exists bool) {
	v := m.mailbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMailboxID returns the old "mailbox_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMailboxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMailboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMailboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMailboxID: %w", err)
	}
	return oldValue.MailboxID, nil
}

// ResetMailboxID resets all changes to the "mailbox_id" field.
func (m *MessageMutation) ResetMailboxID() {
	m.mailbox_id = nil
}

// SetSenderID sets the "sender_id" field.
func (m *MessageMutation) SetSenderID(s string) {
	m.sender_id = &s
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *MessageMutation) SenderID() (r string, exists bool) {
	v := m.sender_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// ClearSenderID clears the value of the "sender_id" field.
func (m *MessageMutation) ClearSenderID() {
	m.sender_id = nil
	m.clearedFields[message.FieldSenderID] = struct{}{}
}

// SenderIDCleared returns if the "sender_id" field was cleared in this mutation.
func (m *MessageMutation) SenderIDCleared() bool {
	_, ok := m.clearedFields[message.FieldSenderID]
	return ok
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *MessageMutation) ResetSenderID() {
	m.sender_id = nil
	delete(m.clearedFields, message.FieldSenderID)
}

// SetThreadID sets the "thread_id" field.
func (m *MessageMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *MessageMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *MessageMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[message.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *MessageMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[message.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *MessageMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, message.FieldThreadID)
}

// SetType sets the "type" field.
func (m *MessageMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *MessageMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *MessageMutation) ResetType() {
	m._type = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetPriority sets the "priority" field.
func (m *MessageMutation) SetPriority(value message.Priority) {
	m.priority = &value
}

// Priority returns the value of the "priority" field in the mutation.
func (m *MessageMutation) Priority() (r message.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldPriority(ctx context.Context) (v message.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *MessageMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *MessageMutation) SetStatus(value message.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MessageMutation) Status() (r message.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldStatus(ctx context.Context) (v message.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MessageMutation) ResetStatus() {
	m.status = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *MessageMutation) SetSequenceNumber(i int64) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *MessageMutation) SequenceNumber() (r int64, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSequenceNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *MessageMutation) AddSequenceNumber(i int64) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *MessageMutation) AddedSequenceNumber() (r int64, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *MessageMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetResponse sets the "response" field.
func (m *MessageMutation) SetResponse(value map[string]interface{}) {
	m.response = &value
}

// Response returns the value of the "response" field in the mutation.
func (m *MessageMutation) Response() (r map[string]interface{}, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *MessageMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[message.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *MessageMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[message.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *MessageMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, message.FieldResponse)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReadAt sets the "read_at" field.
func (m *MessageMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *MessageMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *MessageMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[message.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *MessageMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[message.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *MessageMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, message.FieldReadAt)
}

// SetAckedAt sets the "acked_at" field.
func (m *MessageMutation) SetAckedAt(t time.Time) {
	m.acked_at = &t
}

// AckedAt returns the value of the "acked_at" field in the mutation.
func (m *MessageMutation) AckedAt() (r time.Time, exists bool) {
	v := m.acked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAckedAt returns the old "acked_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldAckedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAckedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAckedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAckedAt: %w", err)
	}
	return oldValue.AckedAt, nil
}

// ClearAckedAt clears the value of the "acked_at" field.
func (m *MessageMutation) ClearAckedAt() {
	m.acked_at = nil
	m.clearedFields[message.FieldAckedAt] = struct{}{}
}

// AckedAtCleared returns if the "acked_at" field was cleared in this mutation.
func (m *MessageMutation) AckedAtCleared() bool {
	_, ok := m.clearedFields[message.FieldAckedAt]
	return ok
}

// ResetAckedAt resets all changes to the "acked_at" field.
func (m *MessageMutation) ResetAckedAt() {
	m.acked_at = nil
	delete(m.clearedFields, message.FieldAckedAt)
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.mailbox_id != nil {
		fields = append(fields, message.FieldMailboxID)
	}
	if m.sender_id != nil {
		fields = append(fields, message.FieldSenderID)
	}
	if m.thread_id != nil {
		fields = append(fields, message.FieldThreadID)
	}
	if m._type != nil {
		fields = append(fields, message.FieldType)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.priority != nil {
		fields = append(fields, message.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, message.FieldStatus)
	}
	if m.sequence_number != nil {
		fields = append(fields, message.FieldSequenceNumber)
	}
	if m.response != nil {
		fields = append(fields, message.FieldResponse)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	if m.read_at != nil {
		fields = append(fields, message.FieldReadAt)
	}
	if m.acked_at != nil {
		fields = append(fields, message.FieldAckedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldMailboxID:
		return m.MailboxID()
	case message.FieldSenderID:
		return m.SenderID()
	case message.FieldThreadID:
		return m.ThreadID()
	case message.FieldType:
		return m.GetType()
	case message.FieldContent:
		return m.Content()
	case message.FieldPriority:
		return m.Priority()
	case message.FieldStatus:
		return m.Status()
	case message.FieldSequenceNumber:
		return m.SequenceNumber()
	case message.FieldResponse:
		return m.Response()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	case message.FieldReadAt:
		return m.ReadAt()
	case message.FieldAckedAt:
		return m.AckedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldMailboxID:
		return m.OldMailboxID(ctx)
	case message.FieldSenderID:
		return m.OldSenderID(ctx)
	case message.FieldThreadID:
		return m.OldThreadID(ctx)
	case message.FieldType:
		return m.OldType(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldPriority:
		return m.OldPriority(ctx)
	case message.FieldStatus:
		return m.OldStatus(ctx)
	case message.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case message.FieldResponse:
		return m.OldResponse(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case message.FieldReadAt:
		return m.OldReadAt(ctx)
	case message.FieldAckedAt:
		return m.OldAckedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldMailboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMailboxID(v)
		return nil
	case message.FieldSenderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case message.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case message.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case message.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldPriority:
		v, ok := value.(message.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case message.FieldStatus:
		v, ok := value.(message.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case message.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case message.FieldResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case message.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	case message.FieldAckedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAckedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, message.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldSenderID) {
		fields = append(fields, message.FieldSenderID)
	}
	if m.FieldCleared(message.FieldThreadID) {
		fields = append(fields, message.FieldThreadID)
	}
	if m.FieldCleared(message.FieldResponse) {
		fields = append(fields, message.FieldResponse)
	}
	if m.FieldCleared(message.FieldReadAt) {
		fields = append(fields, message.FieldReadAt)
	}
	if m.FieldCleared(message.FieldAckedAt) {
		fields = append(fields, message.FieldAckedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldSenderID:
		m.ClearSenderID()
		return nil
	case message.FieldThreadID:
		m.ClearThreadID()
		return nil
	case message.FieldResponse:
		m.ClearResponse()
		return nil
	case message.FieldReadAt:
		m.ClearReadAt()
		return nil
	case message.FieldAckedAt:
		m.ClearAckedAt()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldMailboxID:
		m.ResetMailboxID()
		return nil
	case message.FieldSenderID:
		m.ResetSenderID()
		return nil
	case message.FieldThreadID:
		m.ResetThreadID()
		return nil
	case message.FieldType:
		m.ResetType()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldPriority:
		m.ResetPriority()
		return nil
	case message.FieldStatus:
		m.ResetStatus()
		return nil
	case message.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case message.FieldResponse:
		m.ResetResponse()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case message.FieldReadAt:
		m.ResetReadAt()
		return nil
	case message.FieldAckedAt:
		m.ResetAckedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Message edge %s", name)
}

// MissionMutation represents an operation that mutates the Mission nodes in the graph.
type MissionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	title                *string
	description          *string
	status               *mission.Status
	priority             *mission.Priority
	strategy             *string
	total_sorties        *int
	addtotal_sorties     *int
	completed_sorties    *int
	addcompleted_sorties *int
	created_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	last_activity_at     *time.Time
	clearedFields        map[string]struct{}
	sorties              map[string]struct{}
	removedsorties       map[string]struct{}
	clearedsorties       bool
	checkpoints          map[string]struct{}
	removedcheckpoints   map[string]struct{}
	clearedcheckpoints   bool
	done                 bool
	oldValue             func(context.Context) (*Mission, error)
	predicates           []predicate.Mission
}

var _ ent.Mutation = (*MissionMutation)(nil)

// missionOption allows management of the mutation configuration using functional options.
type missionOption func(*MissionMutation)

// newMissionMutation creates new mutation for the Mission entity.
func newMissionMutation(c config, op Op, opts ...missionOption) *MissionMutation {
	m := &MissionMutation{
		config:        c,
		op:            op,
		typ:           TypeMission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMissionID sets the ID field of the mutation.
func withMissionID(id string) missionOption {
	return func(m *MissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Mission
		)
		m.oldValue = func(ctx context.Context) (*Mission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMission sets the old Mission of the mutation.
func withMission(node *Mission) missionOption {
	return func(m *MissionMutation) {
		m.oldValue = func(context.Context) (*Mission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Mission entities.
func (m *MissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *MissionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MissionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MissionMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *MissionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MissionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MissionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[mission.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MissionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[mission.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MissionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, mission.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *MissionMutation) SetStatus(value mission.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MissionMutation) Status() (r mission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStatus(ctx context.Context) (v mission.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MissionMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *MissionMutation) SetPriority(value mission.Priority) {
	m.priority = &value
}

// Priority returns the value of the "priority" field in the mutation.
func (m *MissionMutation) Priority() (r mission.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldPriority(ctx context.Context) (v mission.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *MissionMutation) ResetPriority() {
	m.priority = nil
}

// SetStrategy sets the "strategy" field.
func (m *MissionMutation) SetStrategy(s string) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *MissionMutation) Strategy() (r string, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ClearStrategy clears the value of the "strategy" field.
func (m *MissionMutation) ClearStrategy() {
	m.strategy = nil
	m.clearedFields[mission.FieldStrategy] = struct{}{}
}

// StrategyCleared returns if the "strategy" field was cleared in this mutation.
func (m *MissionMutation) StrategyCleared() bool {
	_, ok := m.clearedFields[mission.FieldStrategy]
	return ok
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *MissionMutation) ResetStrategy() {
	m.strategy = nil
	delete(m.clearedFields, mission.FieldStrategy)
}

// SetTotalSorties sets the "total_sorties" field.
func (m *MissionMutation) SetTotalSorties(i int) {
	m.total_sorties = &i
	m.addtotal_sorties = nil
}

// TotalSorties returns the value of the "total_sorties" field in the mutation.
func (m *MissionMutation) TotalSorties() (r int, exists bool) {
	v := m.total_sorties
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSorties returns the old "total_sorties" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldTotalSorties(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSorties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSorties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSorties: %w", err)
	}
	return oldValue.TotalSorties, nil
}

// AddTotalSorties adds i to the "total_sorties" field.
func (m *MissionMutation) AddTotalSorties(i int) {
	if m.addtotal_sorties != nil {
		*m.addtotal_sorties += i
	} else {
		m.addtotal_sorties = &i
	}
}

// AddedTotalSorties returns the value that was added to the "total_sorties" field in this mutation.
func (m *MissionMutation) AddedTotalSorties() (r int, exists bool) {
	v := m.addtotal_sorties
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSorties resets all changes to the "total_sorties" field.
func (m *MissionMutation) ResetTotalSorties() {
	m.total_sorties = nil
	m.addtotal_sorties = nil
}

// SetCompletedSorties sets the "completed_sorties" field.
func (m *MissionMutation) SetCompletedSorties(i int) {
	m.completed_sorties = &i
	m.addcompleted_sorties = nil
}

// CompletedSorties returns the value of the "completed_sorties" field in the mutation.
func (m *MissionMutation) CompletedSorties() (r int, exists bool) {
	v := m.completed_sorties
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedSorties returns the old "completed_sorties" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCompletedSorties(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedSorties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedSorties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedSorties: %w", err)
	}
	return oldValue.CompletedSorties, nil
}

// AddCompletedSorties adds i to the "completed_sorties" field.
func (m *MissionMutation) AddCompletedSorties(i int) {
	if m.addcompleted_sorties != nil {
		*m.addcompleted_sorties += i
	} else {
		m.addcompleted_sorties = &i
	}
}

// AddedCompletedSorties returns the value that was added to the "completed_sorties" field in this mutation.
func (m *MissionMutation) AddedCompletedSorties() (r int, exists bool) {
	v := m.addcompleted_sorties
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedSorties resets all changes to the "completed_sorties" field.
func (m *MissionMutation) ResetCompletedSorties() {
	m.completed_sorties = nil
	m.addcompleted_sorties = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *MissionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *MissionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *MissionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[mission.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *MissionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *MissionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, mission.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *MissionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MissionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MissionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[mission.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MissionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MissionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, mission.FieldCompletedAt)
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *MissionMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *MissionMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *MissionMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[mission.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *MissionMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *MissionMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, mission.FieldLastActivityAt)
}

// AddSortyIDs adds the "sorties" edge to the Sortie entity by ids.
func (m *MissionMutation) AddSortyIDs(ids ...string) {
	if m.sorties == nil {
		m.sorties = make(map[string]struct{})
	}
	for i := range ids {
		m.sorties[ids[i]] = struct{}{}
	}
}

// ClearSorties clears the "sorties" edge to the Sortie entity.
func (m *MissionMutation) ClearSorties() {
	m.clearedsorties = true
}

// SortiesCleared reports if the "sorties" edge to the Sortie entity was cleared.
func (m *MissionMutation) SortiesCleared() bool {
	return m.clearedsorties
}

// RemoveSortyIDs removes the "sorties" edge to the Sortie entity by IDs.
func (m *MissionMutation) RemoveSortyIDs(ids ...string) {
	if m.removedsorties == nil {
		m.removedsorties = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sorties, ids[i])
		m.removedsorties[ids[i]] = struct{}{}
	}
}

// RemovedSorties returns the removed IDs of the "sorties" edge to the Sortie entity.
func (m *MissionMutation) RemovedSortiesIDs() (ids []string) {
	for id := range m.removedsorties {
		ids = append(ids, id)
	}
	return
}

// SortiesIDs returns the "sorties" edge IDs in the mutation.
func (m *MissionMutation) SortiesIDs() (ids []string) {
	for id := range m.sorties {
		ids = append(ids, id)
	}
	return
}

// ResetSorties resets all changes to the "sorties" edge.
func (m *MissionMutation) ResetSorties() {
	m.sorties = nil
	m.clearedsorties = false
	m.removedsorties = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *MissionMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *MissionMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *MissionMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *MissionMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *MissionMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *MissionMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *MissionMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// Where appends a list predicates to the MissionMutation builder.
func (m *MissionMutation) Where(ps ...predicate.Mission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mission).
func (m *MissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MissionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.title != nil {
		fields = append(fields, mission.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, mission.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, mission.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, mission.FieldPriority)
	}
	if m.strategy != nil {
		fields = append(fields, mission.FieldStrategy)
	}
	if m.total_sorties != nil {
		fields = append(fields, mission.FieldTotalSorties)
	}
	if m.completed_sorties != nil {
		fields = append(fields, mission.FieldCompletedSorties)
	}
	if m.created_at != nil {
		fields = append(fields, mission.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, mission.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, mission.FieldCompletedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, mission.FieldLastActivityAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mission.FieldTitle:
		return m.Title()
	case mission.FieldDescription:
		return m.Description()
	case mission.FieldStatus:
		return m.Status()
	case mission.FieldPriority:
		return m.Priority()
	case mission.FieldStrategy:
		return m.Strategy()
	case mission.FieldTotalSorties:
		return m.TotalSorties()
	case mission.FieldCompletedSorties:
		return m.CompletedSorties()
	case mission.FieldCreatedAt:
		return m.CreatedAt()
	case mission.FieldStartedAt:
		return m.StartedAt()
	case mission.FieldCompletedAt:
		return m.CompletedAt()
	case mission.FieldLastActivityAt:
		return m.LastActivityAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mission.FieldTitle:
		return m.OldTitle(ctx)
	case mission.FieldDescription:
		return m.OldDescription(ctx)
	case mission.FieldStatus:
		return m.OldStatus(ctx)
	case mission.FieldPriority:
		return m.OldPriority(ctx)
	case mission.FieldStrategy:
		return m.OldStrategy(ctx)
	case mission.FieldTotalSorties:
		return m.OldTotalSorties(ctx)
	case mission.FieldCompletedSorties:
		return m.OldCompletedSorties(ctx)
	case mission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mission.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case mission.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case mission.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	}
	return nil, fmt.Errorf("unknown Mission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mission.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case mission.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case mission.FieldStatus:
		v, ok := value.(mission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mission.FieldPriority:
		v, ok := value.(mission.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case mission.FieldStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case mission.FieldTotalSorties:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSorties(v)
		return nil
	case mission.FieldCompletedSorties:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedSorties(v)
		return nil
	case mission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mission.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case mission.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case mission.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MissionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_sorties != nil {
		fields = append(fields, mission.FieldTotalSorties)
	}
	if m.addcompleted_sorties != nil {
		fields = append(fields, mission.FieldCompletedSorties)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mission.FieldTotalSorties:
		return m.AddedTotalSorties()
	case mission.FieldCompletedSorties:
		return m.AddedCompletedSorties()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mission.FieldTotalSorties:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSorties(v)
		return nil
	case mission.FieldCompletedSorties:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedSorties(v)
		return nil
	}
	return fmt.Errorf("unknown Mission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mission.FieldDescription) {
		fields = append(fields, mission.FieldDescription)
	}
	if m.FieldCleared(mission.FieldStrategy) {
		fields = append(fields, mission.FieldStrategy)
	}
	if m.FieldCleared(mission.FieldStartedAt) {
		fields = append(fields, mission.FieldStartedAt)
	}
	if m.FieldCleared(mission.FieldCompletedAt) {
		fields = append(fields, mission.FieldCompletedAt)
	}
	if m.FieldCleared(mission.FieldLastActivityAt) {
		fields = append(fields, mission.FieldLastActivityAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MissionMutation) ClearField(name string) error {
	switch name {
	case mission.FieldDescription:
		m.ClearDescription()
		return nil
	case mission.FieldStrategy:
		m.ClearStrategy()
		return nil
	case mission.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case mission.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case mission.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Mission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MissionMutation) ResetField(name string) error {
	switch name {
	case mission.FieldTitle:
		m.ResetTitle()
		return nil
	case mission.FieldDescription:
		m.ResetDescription()
		return nil
	case mission.FieldStatus:
		m.ResetStatus()
		return nil
	case mission.FieldPriority:
		m.ResetPriority()
		return nil
	case mission.FieldStrategy:
		m.ResetStrategy()
		return nil
	case mission.FieldTotalSorties:
		m.ResetTotalSorties()
		return nil
	case mission.FieldCompletedSorties:
		m.ResetCompletedSorties()
		return nil
	case mission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mission.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case mission.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case mission.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sorties != nil {
		edges = append(edges, mission.EdgeSorties)
	}
	if m.checkpoints != nil {
		edges = append(edges, mission.EdgeCheckpoints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mission.EdgeSorties:
		ids := make([]ent.Value, 0, len(m.sorties))
		for id := range m.sorties {
			ids = append(ids, id)
		}
		return ids
	case mission.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsorties != nil {
		edges = append(edges, mission.EdgeSorties)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, mission.EdgeCheckpoints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case mission.EdgeSorties:
		ids := make([]ent.Value, 0, len(m.removedsorties))
		for id := range m.removedsorties {
			ids = append(ids, id)
		}
		return ids
	case mission.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsorties {
		edges = append(edges, mission.EdgeSorties)
	}
	if m.clearedcheckpoints {
		edges = append(edges, mission.EdgeCheckpoints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MissionMutation) EdgeCleared(name string) bool {
	switch name {
	case mission.EdgeSorties:
		return m.clearedsorties
	case mission.EdgeCheckpoints:
		return m.clearedcheckpoints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MissionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Mission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MissionMutation) ResetEdge(name string) error {
	switch name {
	case mission.EdgeSorties:
		m.ResetSorties()
		return nil
	case mission.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown Mission edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op               Op
	typ              string
	id               *int
	stream_type      *string
	stream_id        *string
	state            *map[string]interface{}
	from_sequence    *int64
	addfrom_sequence *int64
	to_sequence      *int64
	addto_sequence   *int64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Snapshot, error)
	predicates       []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamType sets the "stream_type" field.
func (m *SnapshotMutation) SetStreamType(s string) {
	m.stream_type = &s
}

// StreamType returns the value of the "stream_type" field in the mutation.
func (m *SnapshotMutation) StreamType() (r string, exists bool) {
	v := m.stream_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamType returns the old "stream_type" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldStreamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamType: %w", err)
	}
	return oldValue.StreamType, nil
}

// ResetStreamType resets all changes to the "stream_type" field.
func (m *SnapshotMutation) ResetStreamType() {
	m.stream_type = nil
}

// SetStreamID sets the "stream_id" field.
func (m *SnapshotMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *SnapshotMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *SnapshotMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetState sets the "state" field.
func (m *SnapshotMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *SnapshotMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *SnapshotMutation) ResetState() {
	m.state = nil
}

// SetFromSequence sets the "from_sequence" field.
func (m *SnapshotMutation) SetFromSequence(i int64) {
	m.from_sequence = &i
	m.addfrom_sequence = nil
}

// FromSequence returns the value of the "from_sequence" field in the mutation.
func (m *SnapshotMutation) FromSequence() (r int64, exists bool) {
	v := m.from_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldFromSequence returns the old "from_sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldFromSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromSequence: %w", err)
	}
	return oldValue.FromSequence, nil
}

// AddFromSequence adds i to the "from_sequence" field.
func (m *SnapshotMutation) AddFromSequence(i int64) {
	if m.addfrom_sequence != nil {
		*m.addfrom_sequence += i
	} else {
		m.addfrom_sequence = &i
	}
}

// AddedFromSequence returns the value that was added to the "from_sequence" field in this mutation.
func (m *SnapshotMutation) AddedFromSequence() (r int64, exists bool) {
	v := m.addfrom_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetFromSequence resets all changes to the "from_sequence" field.
func (m *SnapshotMutation) ResetFromSequence() {
	m.from_sequence = nil
	m.addfrom_sequence = nil
}

// SetToSequence sets the "to_sequence" field.
func (m *SnapshotMutation) SetToSequence(i int64) {
	m.to_sequence = &i
	m.addto_sequence = nil
}

// ToSequence returns the value of the "to_sequence" field in the mutation.
func (m *SnapshotMutation) ToSequence() (r int64, exists bool) {
	v := m.to_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldToSequence returns the old "to_sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldToSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToSequence: %w", err)
	}
	return oldValue.ToSequence, nil
}

// AddToSequence adds i to the "to_sequence" field.
func (m *SnapshotMutation) AddToSequence(i int64) {
	if m.addto_sequence != nil {
		*m.addto_sequence += i
	} else {
		m.addto_sequence = &i
	}
}

// AddedToSequence returns the value that was added to the "to_sequence" field in this mutation.
func (m *SnapshotMutation) AddedToSequence() (r int64, exists bool) {
	v := m.addto_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetToSequence resets all changes to the "to_sequence" field.
func (m *SnapshotMutation) ResetToSequence() {
	m.to_sequence = nil
	m.addto_sequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.stream_type != nil {
		fields = append(fields, snapshot.FieldStreamType)
	}
	if m.stream_id != nil {
		fields = append(fields, snapshot.FieldStreamID)
	}
	if m.state != nil {
		fields = append(fields, snapshot.FieldState)
	}
	if m.from_sequence != nil {
		fields = append(fields, snapshot.FieldFromSequence)
	}
	if m.to_sequence != nil {
		fields = append(fields, snapshot.FieldToSequence)
	}
	if m.created_at != nil {
		fields = append(fields, snapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldStreamType:
		return m.StreamType()
	case snapshot.FieldStreamID:
		return m.StreamID()
	case snapshot.FieldState:
		return m.State()
	case snapshot.FieldFromSequence:
		return m.FromSequence()
	case snapshot.FieldToSequence:
		return m.ToSequence()
	case snapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldStreamType:
		return m.OldStreamType(ctx)
	case snapshot.FieldStreamID:
		return m.OldStreamID(ctx)
	case snapshot.FieldState:
		return m.OldState(ctx)
	case snapshot.FieldFromSequence:
		return m.OldFromSequence(ctx)
	case snapshot.FieldToSequence:
		return m.OldToSequence(ctx)
	case snapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldStreamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamType(v)
		return nil
	case snapshot.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case snapshot.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case snapshot.FieldFromSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromSequence(v)
		return nil
	case snapshot.FieldToSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToSequence(v)
		return nil
	case snapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addfrom_sequence != nil {
		fields = append(fields, snapshot.FieldFromSequence)
	}
	if m.addto_sequence != nil {
		fields = append(fields, snapshot.FieldToSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldFromSequence:
		return m.AddedFromSequence()
	case snapshot.FieldToSequence:
		return m.AddedToSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldFromSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFromSequence(v)
		return nil
	case snapshot.FieldToSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldStreamType:
		m.ResetStreamType()
		return nil
	case snapshot.FieldStreamID:
		m.ResetStreamID()
		return nil
	case snapshot.FieldState:
		m.ResetState()
		return nil
	case snapshot.FieldFromSequence:
		m.ResetFromSequence()
		return nil
	case snapshot.FieldToSequence:
		m.ResetToSequence()
		return nil
	case snapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// SortieMutation represents an operation that mutates the Sortie nodes in the graph.
type SortieMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	title              *string
	description        *string
	status             *sortie.Status
	assigned_to        *string
	priority           *sortie.Priority
	progress           *int
	addprogress        *int
	files              *[]string
	appendfiles        []string
	dependencies       *[]string
	appenddependencies []string
	blocked_by         *string
	blocked_reason     *string
	blocked_category   *sortie.BlockedCategory
	result             *map[string]interface{}
	review_feedback    *string
	created_at         *time.Time
	assigned_at        *time.Time
	started_at         *time.Time
	blocked_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	mission            *string
	clearedmission     bool
	done               bool
	oldValue           func(context.Context) (*Sortie, error)
	predicates         []predicate.Sortie
}

var _ ent.Mutation = (*SortieMutation)(nil)

// sortieOption allows management of the mutation configuration using functional options.
type sortieOption func(*SortieMutation)

// newSortieMutation creates new mutation for the Sortie entity.
func newSortieMutation(c config, op Op, opts ...sortieOption) *SortieMutation {
	m := &SortieMutation{
		config:        c,
		op:            op,
		typ:           TypeSortie,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSortieID sets the ID field of the mutation.
func withSortieID(id string) sortieOption {
	return func(m *SortieMutation) {
		var (
			err   error
			once  sync.Once
			value *Sortie
		)
		m.oldValue = func(ctx context.Context) (*Sortie, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sortie.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSortie sets the old Sortie of the mutation.
func withSortie(node *Sortie) sortieOption {
	return func(m *SortieMutation) {
		m.oldValue = func(context.Context) (*Sortie, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SortieMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SortieMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Sortie entities.
func (m *SortieMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SortieMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SortieMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sortie.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMissionID sets the "mission_id" field.
func (m *SortieMutation) SetMissionID(s string) {
	m.mission = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *SortieMutation) MissionID() (r string, exists bool) {
	v := m.mission
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldMissionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ClearMissionID clears the value of the "mission_id" field.
func (m *SortieMutation) ClearMissionID() {
	m.mission = nil
	m.clearedFields[sortie.FieldMissionID] = struct{}{}
}

// MissionIDCleared returns if the "mission_id" field was cleared in this mutation.
func (m *SortieMutation) MissionIDCleared() bool {
	_, ok := m.clearedFields[sortie.FieldMissionID]
	return ok
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *SortieMutation) ResetMissionID() {
	m.mission = nil
	delete(m.clearedFields, sortie.FieldMissionID)
}

// SetTitle sets the "title" field.
func (m *SortieMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SortieMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SortieMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *SortieMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SortieMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SortieMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[sortie.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SortieMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[sortie.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SortieMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, sortie.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *SortieMutation) SetStatus(s sortie.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SortieMutation) Status() (r sortie.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldStatus(ctx context.Context) (v sortie.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SortieMutation) ResetStatus() {
	m.status = nil
}

// SetAssignedTo sets the "assigned_to" field.
func (m *SortieMutation) SetAssignedTo(s string) {
	m.assigned_to = &s
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *SortieMutation) AssignedTo() (r string, exists bool) {
	v := m.assigned_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldAssignedTo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (m *SortieMutation) ClearAssignedTo() {
	m.assigned_to = nil
	m.clearedFields[sortie.FieldAssignedTo] = struct{}{}
}

// AssignedToCleared returns if the "assigned_to" field was cleared in this mutation.
func (m *SortieMutation) AssignedToCleared() bool {
	_, ok := m.clearedFields[sortie.FieldAssignedTo]
	return ok
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *SortieMutation) ResetAssignedTo() {
	m.assigned_to = nil
	delete(m.clearedFields, sortie.FieldAssignedTo)
}

// SetPriority sets the "priority" field.
func (m *SortieMutation) SetPriority(s sortie.Priority) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SortieMutation) Priority() (r sortie.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldPriority(ctx context.Context) (v sortie.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *SortieMutation) ResetPriority() {
	m.priority = nil
}

// SetProgress sets the "progress" field.
func (m *SortieMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *SortieMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *SortieMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *SortieMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *SortieMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetFiles sets the "files" field.
func (m *SortieMutation) SetFiles(s []string) {
	m.files = &s
	m.appendfiles = nil
}

// Files returns the value of the "files" field in the mutation.
func (m *SortieMutation) Files() (r []string, exists bool) {
	v := m.files
	if v == nil {
		return
	}
	return *v, true
}

// OldFiles returns the old "files" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldFiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFiles: %w", err)
	}
	return oldValue.Files, nil
}

// AppendFiles adds s to the "files" field.
func (m *SortieMutation) AppendFiles(s []string) {
	m.appendfiles = append(m.appendfiles, s...)
}

// AppendedFiles returns the list of values that were appended to the "files" field in this mutation.
func (m *SortieMutation) AppendedFiles() ([]string, bool) {
	if len(m.appendfiles) == 0 {
		return nil, false
	}
	return m.appendfiles, true
}

// ClearFiles clears the value of the "files" field.
func (m *SortieMutation) ClearFiles() {
	m.files = nil
	m.appendfiles = nil
	m.clearedFields[sortie.FieldFiles] = struct{}{}
}

// FilesCleared returns if the "files" field was cleared in this mutation.
func (m *SortieMutation) FilesCleared() bool {
	_, ok := m.clearedFields[sortie.FieldFiles]
	return ok
}

// ResetFiles resets all changes to the "files" field.
func (m *SortieMutation) ResetFiles() {
	m.files = nil
	m.appendfiles = nil
	delete(m.clearedFields, sortie.FieldFiles)
}

// SetDependencies sets the "dependencies" field.
func (m *SortieMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *SortieMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *SortieMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *SortieMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *SortieMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[sortie.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *SortieMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[sortie.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *SortieMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, sortie.FieldDependencies)
}

// SetBlockedBy sets the "blocked_by" field.
func (m *SortieMutation) SetBlockedBy(s string) {
	m.blocked_by = &s
}

// BlockedBy returns the value of the "blocked_by" field in the mutation.
func (m *SortieMutation) BlockedBy() (r string, exists bool) {
	v := m.blocked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedBy returns the old "blocked_by" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldBlockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedBy: %w", err)
	}
	return oldValue.BlockedBy, nil
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (m *SortieMutation) ClearBlockedBy() {
	m.blocked_by = nil
	m.clearedFields[sortie.FieldBlockedBy] = struct{}{}
}

// BlockedByCleared returns if the "blocked_by" field was cleared in this mutation.
func (m *SortieMutation) BlockedByCleared() bool {
	_, ok := m.clearedFields[sortie.FieldBlockedBy]
	return ok
}

// ResetBlockedBy resets all changes to the "blocked_by" field.
func (m *SortieMutation) ResetBlockedBy() {
	m.blocked_by = nil
	delete(m.clearedFields, sortie.FieldBlockedBy)
}

// SetBlockedReason sets the "blocked_reason" field.
func (m *SortieMutation) SetBlockedReason(s string) {
	m.blocked_reason = &s
}

// BlockedReason returns the value of the "blocked_reason" field in the mutation.
func (m *SortieMutation) BlockedReason() (r string, exists bool) {
	v := m.blocked_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedReason returns the old "blocked_reason" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldBlockedReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedReason: %w", err)
	}
	return oldValue.BlockedReason, nil
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (m *SortieMutation) ClearBlockedReason() {
	m.blocked_reason = nil
	m.clearedFields[sortie.FieldBlockedReason] = struct{}{}
}

// BlockedReasonCleared returns if the "blocked_reason" field was cleared in this mutation.
func (m *SortieMutation) BlockedReasonCleared() bool {
	_, ok := m.clearedFields[sortie.FieldBlockedReason]
	return ok
}

// ResetBlockedReason resets all changes to the "blocked_reason" field.
func (m *SortieMutation) ResetBlockedReason() {
	m.blocked_reason = nil
	delete(m.clearedFields, sortie.FieldBlockedReason)
}

// SetBlockedCategory sets the "blocked_category" field.
func (m *SortieMutation) SetBlockedCategory(sc sortie.BlockedCategory) {
	m.blocked_category = &sc
}

// BlockedCategory returns the value of the "blocked_category" field in the mutation.
func (m *SortieMutation) BlockedCategory() (r sortie.BlockedCategory, exists bool) {
	v := m.blocked_category
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedCategory returns the old "blocked_category" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldBlockedCategory(ctx context.Context) (v *sortie.BlockedCategory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedCategory: %w", err)
	}
	return oldValue.BlockedCategory, nil
}

// ClearBlockedCategory clears the value of the "blocked_category" field.
func (m *SortieMutation) ClearBlockedCategory() {
	m.blocked_category = nil
	m.clearedFields[sortie.FieldBlockedCategory] = struct{}{}
}

// BlockedCategoryCleared returns if the "blocked_category" field was cleared in this mutation.
func (m *SortieMutation) BlockedCategoryCleared() bool {
	_, ok := m.clearedFields[sortie.FieldBlockedCategory]
	return ok
}

// ResetBlockedCategory resets all changes to the "blocked_category" field.
func (m *SortieMutation) ResetBlockedCategory() {
	m.blocked_category = nil
	delete(m.clearedFields, sortie.FieldBlockedCategory)
}

// SetResult sets the "result" field.
func (m *SortieMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *SortieMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *SortieMutation) ClearResult() {
	m.result = nil
	m.clearedFields[sortie.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *SortieMutation) ResultCleared() bool {
	_, ok := m.clearedFields[sortie.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *SortieMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, sortie.FieldResult)
}

// SetReviewFeedback sets the "review_feedback" field.
func (m *SortieMutation) SetReviewFeedback(s string) {
	m.review_feedback = &s
}

// ReviewFeedback returns the value of the "review_feedback" field in the mutation.
func (m *SortieMutation) ReviewFeedback() (r string, exists bool) {
	v := m.review_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewFeedback returns the old "review_feedback" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldReviewFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewFeedback: %w", err)
	}
	return oldValue.ReviewFeedback, nil
}

// ClearReviewFeedback clears the value of the "review_feedback" field.
func (m *SortieMutation) ClearReviewFeedback() {
	m.review_feedback = nil
	m.clearedFields[sortie.FieldReviewFeedback] = struct{}{}
}

// ReviewFeedbackCleared returns if the "review_feedback" field was cleared in this mutation.
func (m *SortieMutation) ReviewFeedbackCleared() bool {
	_, ok := m.clearedFields[sortie.FieldReviewFeedback]
	return ok
}

// ResetReviewFeedback resets all changes to the "review_feedback" field.
func (m *SortieMutation) ResetReviewFeedback() {
	m.review_feedback = nil
	delete(m.clearedFields, sortie.FieldReviewFeedback)
}

// SetCreatedAt sets the "created_at" field.
func (m *SortieMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SortieMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SortieMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAssignedAt sets the "assigned_at" field.
func (m *SortieMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *SortieMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (m *SortieMutation) ClearAssignedAt() {
	m.assigned_at = nil
	m.clearedFields[sortie.FieldAssignedAt] = struct{}{}
}

// AssignedAtCleared returns if the "assigned_at" field was cleared in this mutation.
func (m *SortieMutation) AssignedAtCleared() bool {
	_, ok := m.clearedFields[sortie.FieldAssignedAt]
	return ok
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *SortieMutation) ResetAssignedAt() {
	m.assigned_at = nil
	delete(m.clearedFields, sortie.FieldAssignedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *SortieMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SortieMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SortieMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[sortie.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SortieMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[sortie.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SortieMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, sortie.FieldStartedAt)
}

// SetBlockedAt sets the "blocked_at" field.
func (m *SortieMutation) SetBlockedAt(t time.Time) {
	m.blocked_at = &t
}

// BlockedAt returns the value of the "blocked_at" field in the mutation.
func (m *SortieMutation) BlockedAt() (r time.Time, exists bool) {
	v := m.blocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedAt returns the old "blocked_at" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldBlockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedAt: %w", err)
	}
	return oldValue.BlockedAt, nil
}

// ClearBlockedAt clears the value of the "blocked_at" field.
func (m *SortieMutation) ClearBlockedAt() {
	m.blocked_at = nil
	m.clearedFields[sortie.FieldBlockedAt] = struct{}{}
}

// BlockedAtCleared returns if the "blocked_at" field was cleared in this mutation.
func (m *SortieMutation) BlockedAtCleared() bool {
	_, ok := m.clearedFields[sortie.FieldBlockedAt]
	return ok
}

// ResetBlockedAt resets all changes to the "blocked_at" field.
func (m *SortieMutation) ResetBlockedAt() {
	m.blocked_at = nil
	delete(m.clearedFields, sortie.FieldBlockedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SortieMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SortieMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Sortie entity.
// If the Sortie object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SortieMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SortieMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[sortie.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SortieMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[sortie.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SortieMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, sortie.FieldCompletedAt)
}

// ClearMission clears the "mission" edge to the Mission entity.
func (m *SortieMutation) ClearMission() {
	m.clearedmission = true
	m.clearedFields[sortie.FieldMissionID] = struct{}{}
}

// MissionCleared reports if the "mission" edge to the Mission entity was cleared.
func (m *SortieMutation) MissionCleared() bool {
	return m.MissionIDCleared() || m.clearedmission
}

// MissionIDs returns the "mission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MissionID instead. It exists only for internal usage by the builders.
func (m *SortieMutation) MissionIDs() (ids []string) {
	if id := m.mission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMission resets all changes to the "mission" edge.
func (m *SortieMutation) ResetMission() {
	m.mission = nil
	m.clearedmission = false
}

// Where appends a list predicates to the SortieMutation builder.
func (m *SortieMutation) Where(ps ...predicate.Sortie) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SortieMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SortieMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sortie, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SortieMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SortieMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sortie).
func (m *SortieMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SortieMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.mission != nil {
		fields = append(fields, sortie.FieldMissionID)
	}
	if m.title != nil {
		fields = append(fields, sortie.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, sortie.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, sortie.FieldStatus)
	}
	if m.assigned_to != nil {
		fields = append(fields, sortie.FieldAssignedTo)
	}
	if m.priority != nil {
		fields = append(fields, sortie.FieldPriority)
	}
	if m.progress != nil {
		fields = append(fields, sortie.FieldProgress)
	}
	if m.files != nil {
		fields = append(fields, sortie.FieldFiles)
	}
	if m.dependencies != nil {
		fields = append(fields, sortie.FieldDependencies)
	}
	if m.blocked_by != nil {
		fields = append(fields, sortie.FieldBlockedBy)
	}
	if m.blocked_reason != nil {
		fields = append(fields, sortie.FieldBlockedReason)
	}
	if m.blocked_category != nil {
		fields = append(fields, sortie.FieldBlockedCategory)
	}
	if m.result != nil {
		fields = append(fields, sortie.FieldResult)
	}
	if m.review_feedback != nil {
		fields = append(fields, sortie.FieldReviewFeedback)
	}
	if m.created_at != nil {
		fields = append(fields, sortie.FieldCreatedAt)
	}
	if m.assigned_at != nil {
		fields = append(fields, sortie.FieldAssignedAt)
	}
	if m.started_at != nil {
		fields = append(fields, sortie.FieldStartedAt)
	}
	if m.blocked_at != nil {
		fields = append(fields, sortie.FieldBlockedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, sortie.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SortieMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sortie.FieldMissionID:
		return m.MissionID()
	case sortie.FieldTitle:
		return m.Title()
	case sortie.FieldDescription:
		return m.Description()
	case sortie.FieldStatus:
		return m.Status()
	case sortie.FieldAssignedTo:
		return m.AssignedTo()
	case sortie.FieldPriority:
		return m.Priority()
	case sortie.FieldProgress:
		return m.Progress()
	case sortie.FieldFiles:
		return m.Files()
	case sortie.FieldDependencies:
		return m.Dependencies()
	case sortie.FieldBlockedBy:
		return m.BlockedBy()
	case sortie.FieldBlockedReason:
		return m.BlockedReason()
	case sortie.FieldBlockedCategory:
		return m.BlockedCategory()
	case sortie.FieldResult:
		return m.Result()
	case sortie.FieldReviewFeedback:
		return m.ReviewFeedback()
	case sortie.FieldCreatedAt:
		return m.CreatedAt()
	case sortie.FieldAssignedAt:
		return m.AssignedAt()
	case sortie.FieldStartedAt:
		return m.StartedAt()
	case sortie.FieldBlockedAt:
		return m.BlockedAt()
	case sortie.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SortieMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sortie.FieldMissionID:
		return m.OldMissionID(ctx)
	case sortie.FieldTitle:
		return m.OldTitle(ctx)
	case sortie.FieldDescription:
		return m.OldDescription(ctx)
	case sortie.FieldStatus:
		return m.OldStatus(ctx)
	case sortie.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case sortie.FieldPriority:
		return m.OldPriority(ctx)
	case sortie.FieldProgress:
		return m.OldProgress(ctx)
	case sortie.FieldFiles:
		return m.OldFiles(ctx)
	case sortie.FieldDependencies:
		return m.OldDependencies(ctx)
	case sortie.FieldBlockedBy:
		return m.OldBlockedBy(ctx)
	case sortie.FieldBlockedReason:
		return m.OldBlockedReason(ctx)
	case sortie.FieldBlockedCategory:
		return m.OldBlockedCategory(ctx)
	case sortie.FieldResult:
		return m.OldResult(ctx)
	case sortie.FieldReviewFeedback:
		return m.OldReviewFeedback(ctx)
	case sortie.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sortie.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	case sortie.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sortie.FieldBlockedAt:
		return m.OldBlockedAt(ctx)
	case sortie.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Sortie field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SortieMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sortie.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case sortie.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case sortie.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case sortie.FieldStatus:
		v, ok := value.(sortie.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sortie.FieldAssignedTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case sortie.FieldPriority:
		v, ok := value.(sortie.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case sortie.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case sortie.FieldFiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFiles(v)
		return nil
	case sortie.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case sortie.FieldBlockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedBy(v)
		return nil
	case sortie.FieldBlockedReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedReason(v)
		return nil
	case sortie.FieldBlockedCategory:
		v, ok := value.(sortie.BlockedCategory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedCategory(v)
		return nil
	case sortie.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case sortie.FieldReviewFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewFeedback(v)
		return nil
	case sortie.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sortie.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	case sortie.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sortie.FieldBlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedAt(v)
		return nil
	case sortie.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Sortie field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SortieMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, sortie.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SortieMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sortie.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SortieMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sortie.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown Sortie numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SortieMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sortie.FieldMissionID) {
		fields = append(fields, sortie.FieldMissionID)
	}
	if m.FieldCleared(sortie.FieldDescription) {
		fields = append(fields, sortie.FieldDescription)
	}
	if m.FieldCleared(sortie.FieldAssignedTo) {
		fields = append(fields, sortie.FieldAssignedTo)
	}
	if m.FieldCleared(sortie.FieldFiles) {
		fields = append(fields, sortie.FieldFiles)
	}
	if m.FieldCleared(sortie.FieldDependencies) {
		fields = append(fields, sortie.FieldDependencies)
	}
	if m.FieldCleared(sortie.FieldBlockedBy) {
		fields = append(fields, sortie.FieldBlockedBy)
	}
	if m.FieldCleared(sortie.FieldBlockedReason) {
		fields = append(fields, sortie.FieldBlockedReason)
	}
	if m.FieldCleared(sortie.FieldBlockedCategory) {
		fields = append(fields, sortie.FieldBlockedCategory)
	}
	if m.FieldCleared(sortie.FieldResult) {
		fields = append(fields, sortie.FieldResult)
	}
	if m.FieldCleared(sortie.FieldReviewFeedback) {
		fields = append(fields, sortie.FieldReviewFeedback)
	}
	if m.FieldCleared(sortie.FieldAssignedAt) {
		fields = append(fields, sortie.FieldAssignedAt)
	}
	if m.FieldCleared(sortie.FieldStartedAt) {
		fields = append(fields, sortie.FieldStartedAt)
	}
	if m.FieldCleared(sortie.FieldBlockedAt) {
		fields = append(fields, sortie.FieldBlockedAt)
	}
	if m.FieldCleared(sortie.FieldCompletedAt) {
		fields = append(fields, sortie.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SortieMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SortieMutation) ClearField(name string) error {
	switch name {
	case sortie.FieldMissionID:
		m.ClearMissionID()
		return nil
	case sortie.FieldDescription:
		m.ClearDescription()
		return nil
	case sortie.FieldAssignedTo:
		m.ClearAssignedTo()
		return nil
	case sortie.FieldFiles:
		m.ClearFiles()
		return nil
	case sortie.FieldDependencies:
		m.ClearDependencies()
		return nil
	case sortie.FieldBlockedBy:
		m.ClearBlockedBy()
		return nil
	case sortie.FieldBlockedReason:
		m.ClearBlockedReason()
		return nil
	case sortie.FieldBlockedCategory:
		m.ClearBlockedCategory()
		return nil
	case sortie.FieldResult:
		m.ClearResult()
		return nil
	case sortie.FieldReviewFeedback:
		m.ClearReviewFeedback()
		return nil
	case sortie.FieldAssignedAt:
		m.ClearAssignedAt()
		return nil
	case sortie.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case sortie.FieldBlockedAt:
		m.ClearBlockedAt()
		return nil
	case sortie.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Sortie nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SortieMutation) ResetField(name string) error {
	switch name {
	case sortie.FieldMissionID:
		m.ResetMissionID()
		return nil
	case sortie.FieldTitle:
		m.ResetTitle()
		return nil
	case sortie.FieldDescription:
		m.ResetDescription()
		return nil
	case sortie.FieldStatus:
		m.ResetStatus()
		return nil
	case sortie.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case sortie.FieldPriority:
		m.ResetPriority()
		return nil
	case sortie.FieldProgress:
		m.ResetProgress()
		return nil
	case sortie.FieldFiles:
		m.ResetFiles()
		return nil
	case sortie.FieldDependencies:
		m.ResetDependencies()
		return nil
	case sortie.FieldBlockedBy:
		m.ResetBlockedBy()
		return nil
	case sortie.FieldBlockedReason:
		m.ResetBlockedReason()
		return nil
	case sortie.FieldBlockedCategory:
		m.ResetBlockedCategory()
		return nil
	case sortie.FieldResult:
		m.ResetResult()
		return nil
	case sortie.FieldReviewFeedback:
		m.ResetReviewFeedback()
		return nil
	case sortie.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sortie.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	case sortie.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sortie.FieldBlockedAt:
		m.ResetBlockedAt()
		return nil
	case sortie.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Sortie field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SortieMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.mission != nil {
		edges = append(edges, sortie.EdgeMission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SortieMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sortie.EdgeMission:
		if id := m.mission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SortieMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SortieMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SortieMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmission {
		edges = append(edges, sortie.EdgeMission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SortieMutation) EdgeCleared(name string) bool {
	switch name {
	case sortie.EdgeMission:
		return m.clearedmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SortieMutation) ClearEdge(name string) error {
	switch name {
	case sortie.EdgeMission:
		m.ClearMission()
		return nil
	}
	return fmt.Errorf("unknown Sortie unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SortieMutation) ResetEdge(name string) error {
	switch name {
	case sortie.EdgeMission:
		m.ResetMission()
		return nil
	}
	return fmt.Errorf("unknown Sortie edge %s", name)
}

// SpecialistMutation represents an operation that mutates the Specialist nodes in the graph.
type SpecialistMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	capabilities       *[]string
	appendcapabilities []string
	status             *specialist.Status
	current_sortie     *string
	mission_id         *string
	last_seen          *time.Time
	metadata           *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Specialist, error)
	predicates         []predicate.Specialist
}

var _ ent.Mutation = (*SpecialistMutation)(nil)

// specialistOption allows management of the mutation configuration using functional options.
type specialistOption func(*SpecialistMutation)

// newSpecialistMutation creates new mutation for the Specialist entity.
func newSpecialistMutation(c config, op Op, opts ...specialistOption) *SpecialistMutation {
	m := &SpecialistMutation{
		config:        c,
		op:            op,
		typ:           TypeSpecialist,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpecialistID sets the ID field of the mutation.
func withSpecialistID(id string) specialistOption {
	return func(m *SpecialistMutation) {
		var (
			err   error
			once  sync.Once
			value *Specialist
		)
		m.oldValue = func(ctx context.Context) (*Specialist, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Specialist.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpecialist sets the old Specialist of the mutation.
func withSpecialist(node *Specialist) specialistOption {
	return func(m *SpecialistMutation) {
		m.oldValue = func(context.Context) (*Specialist, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpecialistMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpecialistMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Specialist entities.
func (m *SpecialistMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpecialistMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpecialistMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Specialist.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SpecialistMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SpecialistMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Specialist entity.
// If the Specialist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialistMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *SpecialistMutation) ClearName() {
	m.name = nil
	m.clearedFields[specialist.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *SpecialistMutation) NameCleared() bool {
	_, ok := m.clearedFields[specialist.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *SpecialistMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, specialist.FieldName)
}

// SetCapabilities sets the "capabilities" field.
func (m *SpecialistMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *SpecialistMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Specialist entity.
// If the Specialist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialistMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *SpecialistMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *SpecialistMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *SpecialistMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[specialist.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *SpecialistMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[specialist.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *SpecialistMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, specialist.FieldCapabilities)
}

// SetStatus sets the "status" field.
func (m *SpecialistMutation) SetStatus(s specialist.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SpecialistMutation) Status() (r specialist.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Specialist entity.
// If the Specialist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialistMutation) OldStatus(ctx context.Context) (v specialist.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SpecialistMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentSortie sets the "current_sortie" field.
func (m *SpecialistMutation) SetCurrentSortie(s string) {
	m.current_sortie = &s
}

// CurrentSortie returns the value of the "current_sortie" field in the mutation.
func (m *SpecialistMutation) CurrentSortie() (r string, exists bool) {
	v := m.current_sortie
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentSortie returns the old "current_sortie" field's value of the Specialist entity.
// If the Specialist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialistMutation) OldCurrentSortie(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentSortie is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentSortie requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentSortie: %w", err)
	}
	return oldValue.CurrentSortie, nil
}

// ClearCurrentSortie clears the value of the "current_sortie" field.
func (m *SpecialistMutation) ClearCurrentSortie() {
	m.current_sortie = nil
	m.clearedFields[specialist.FieldCurrentSortie] = struct{}{}
}

// CurrentSortieCleared returns if the "current_sortie" field was cleared in this mutation.
func (m *SpecialistMutation) CurrentSortieCleared() bool {
	_, ok := m.clearedFields[specialist.FieldCurrentSortie]
	return ok
}

// ResetCurrentSortie resets all changes to the "current_sortie" field.
func (m *SpecialistMutation) ResetCurrentSortie() {
	m.current_sortie = nil
	delete(m.clearedFields, specialist.FieldCurrentSortie)
}

// SetMissionID sets the "mission_id" field.
func (m *SpecialistMutation) SetMissionID(s string) {
	m.mission_id = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *SpecialistMutation) MissionID() (r string, exists bool) {
	v := m.mission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the Specialist entity.
// If the Specialist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialistMutation) OldMissionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ClearMissionID clears the value of the "mission_id" field.
func (m *SpecialistMutation) ClearMissionID() {
	m.mission_id = nil
	m.clearedFields[specialist.FieldMissionID] = struct{}{}
}

// MissionIDCleared returns if the "mission_id" field was cleared in this mutation.
func (m *SpecialistMutation) MissionIDCleared() bool {
	_, ok := m.clearedFields[specialist.FieldMissionID]
	return ok
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *SpecialistMutation) ResetMissionID() {
	m.mission_id = nil
	delete(m.clearedFields, specialist.FieldMissionID)
}

// SetLastSeen sets the "last_seen" field.
func (m *SpecialistMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *SpecialistMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Specialist entity.
// If the Specialist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialistMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *SpecialistMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetMetadata sets the "metadata" field.
func (m *SpecialistMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SpecialistMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Specialist entity.
// If the Specialist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialistMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SpecialistMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[specialist.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SpecialistMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[specialist.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SpecialistMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, specialist.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *SpecialistMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpecialistMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Specialist entity.
// If the Specialist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialistMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpecialistMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SpecialistMutation builder.
func (m *SpecialistMutation) Where(ps ...predicate.Specialist) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpecialistMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpecialistMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Specialist, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpecialistMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpecialistMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Specialist).
func (m *SpecialistMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpecialistMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, specialist.FieldName)
	}
	if m.capabilities != nil {
		fields = append(fields, specialist.FieldCapabilities)
	}
	if m.status != nil {
		fields = append(fields, specialist.FieldStatus)
	}
	if m.current_sortie != nil {
		fields = append(fields, specialist.FieldCurrentSortie)
	}
	if m.mission_id != nil {
		fields = append(fields, specialist.FieldMissionID)
	}
	if m.last_seen != nil {
		fields = append(fields, specialist.FieldLastSeen)
	}
	if m.metadata != nil {
		fields = append(fields, specialist.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, specialist.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpecialistMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case specialist.FieldName:
		return m.Name()
	case specialist.FieldCapabilities:
		return m.Capabilities()
	case specialist.FieldStatus:
		return m.Status()
	case specialist.FieldCurrentSortie:
		return m.CurrentSortie()
	case specialist.FieldMissionID:
		return m.MissionID()
	case specialist.FieldLastSeen:
		return m.LastSeen()
	case specialist.FieldMetadata:
		return m.Metadata()
	case specialist.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpecialistMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case specialist.FieldName:
		return m.OldName(ctx)
	case specialist.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case specialist.FieldStatus:
		return m.OldStatus(ctx)
	case specialist.FieldCurrentSortie:
		return m.OldCurrentSortie(ctx)
	case specialist.FieldMissionID:
		return m.OldMissionID(ctx)
	case specialist.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case specialist.FieldMetadata:
		return m.OldMetadata(ctx)
	case specialist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Specialist field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecialistMutation) SetField(name string, value ent.Value) error {
	switch name {
	case specialist.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case specialist.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case specialist.FieldStatus:
		v, ok := value.(specialist.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case specialist.FieldCurrentSortie:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentSortie(v)
		return nil
	case specialist.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case specialist.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case specialist.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case specialist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Specialist field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpecialistMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpecialistMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecialistMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Specialist numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpecialistMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(specialist.FieldName) {
		fields = append(fields, specialist.FieldName)
	}
	if m.FieldCleared(specialist.FieldCapabilities) {
		fields = append(fields, specialist.FieldCapabilities)
	}
	if m.FieldCleared(specialist.FieldCurrentSortie) {
		fields = append(fields, specialist.FieldCurrentSortie)
	}
	if m.FieldCleared(specialist.FieldMissionID) {
		fields = append(fields, specialist.FieldMissionID)
	}
	if m.FieldCleared(specialist.FieldMetadata) {
		fields = append(fields, specialist.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpecialistMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpecialistMutation) ClearField(name string) error {
	switch name {
	case specialist.FieldName:
		m.ClearName()
		return nil
	case specialist.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case specialist.FieldCurrentSortie:
		m.ClearCurrentSortie()
		return nil
	case specialist.FieldMissionID:
		m.ClearMissionID()
		return nil
	case specialist.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Specialist nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpecialistMutation) ResetField(name string) error {
	switch name {
	case specialist.FieldName:
		m.ResetName()
		return nil
	case specialist.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case specialist.FieldStatus:
		m.ResetStatus()
		return nil
	case specialist.FieldCurrentSortie:
		m.ResetCurrentSortie()
		return nil
	case specialist.FieldMissionID:
		m.ResetMissionID()
		return nil
	case specialist.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case specialist.FieldMetadata:
		m.ResetMetadata()
		return nil
	case specialist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Specialist field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpecialistMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpecialistMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpecialistMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpecialistMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpecialistMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpecialistMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpecialistMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Specialist unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpecialistMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Specialist edge %s", name)
}
