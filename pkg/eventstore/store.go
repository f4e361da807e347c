package eventstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mattn/go-sqlite3"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/archivedevent"
	"github.com/fleettools/fleetd/ent/event"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
)

// Applier folds an appended event into the projection tables inside the same
// transaction. A projection failure rolls back the append.
type Applier interface {
	Apply(ctx context.Context, tx *ent.Tx, evt *ent.Event) error
}

// Store is the append-only event log. All writes are serialised through a
// single in-process mutex; sequence numbers are strictly increasing with no
// gaps because the next number is read and written inside one transaction.
type Store struct {
	client      *ent.Client
	applier     Applier
	busyTimeout time.Duration

	mu sync.Mutex
}

// NewStore creates a Store. applier may be nil, in which case events are
// recorded without projection updates (used by rebuild and tests).
func NewStore(client *ent.Client, applier Applier, busyTimeout time.Duration) *Store {
	if busyTimeout <= 0 {
		busyTimeout = 5 * time.Second
	}
	return &Store{client: client, applier: applier, busyTimeout: busyTimeout}
}

// SetApplier wires the projection engine after construction. The engine needs
// the store for rebuilds, so the two are connected in a second step.
func (s *Store) SetApplier(applier Applier) {
	s.applier = applier
}

// Append validates, sequences and records a single event, then applies it to
// the projections in the same transaction. It returns the stored row with its
// assigned sequence number.
//
// Transient storage contention is retried with exponential backoff up to the
// configured busy timeout; validation and projection rejections are not.
func (s *Store) Append(ctx context.Context, env Envelope) (*ent.Event, error) {
	if err := s.validate(&env); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var stored *ent.Event
	op := func() error {
		evt, err := s.appendTx(ctx, env)
		if err != nil {
			if isBusy(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		stored = evt
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxElapsedTime = s.busyTimeout
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if isBusy(err) {
			return nil, faults.Wrap(faults.KindTransient, "store busy", err)
		}
		return nil, err
	}

	slog.Debug("Appended event",
		"event_id", stored.ID,
		"event_type", stored.EventType,
		"stream_type", stored.StreamType,
		"stream_id", stored.StreamID,
		"sequence", stored.SequenceNumber)
	return stored, nil
}

func (s *Store) validate(env *Envelope) error {
	if env.EventType == "" {
		return faults.Validation("event_type", "required")
	}
	if !KnownType(env.EventType) {
		return faults.Validation("event_type", fmt.Sprintf("unknown event type %q", env.EventType))
	}
	if env.StreamType == "" {
		return faults.Validation("stream_type", "required")
	}
	if env.StreamID == "" {
		return faults.Validation("stream_id", "required")
	}
	if env.Payload == nil {
		return faults.Validation("payload", "required")
	}
	if err := env.Payload.Validate(); err != nil {
		return err
	}
	if env.EventID == "" {
		env.EventID = ids.NewEvent()
	}
	if env.OccurredAt.IsZero() {
		env.OccurredAt = time.Now().UTC()
	}
	return nil
}

func (s *Store) appendTx(ctx context.Context, env Envelope) (*ent.Event, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Event.Query().Where(event.ID(env.EventID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check event id: %w", err)
	}
	if exists {
		return nil, faults.ErrDuplicateEvent
	}

	// Correlation is inherited from the causing event; a root event starts
	// its own chain.
	correlationID := env.EventID
	if env.CausationID != "" {
		parent, err := tx.Event.Query().Where(event.ID(env.CausationID)).Only(ctx)
		if ent.IsNotFound(err) {
			return nil, faults.Newf(faults.KindPrecondition,
				"causation event %s does not exist", env.CausationID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load causation event: %w", err)
		}
		correlationID = parent.CorrelationID
	}

	seq, err := nextSequence(ctx, tx)
	if err != nil {
		return nil, err
	}

	data, err := encode(env.Payload)
	if err != nil {
		return nil, faults.Wrap(faults.KindValidation, "unencodable payload", err)
	}

	builder := tx.Event.Create().
		SetID(env.EventID).
		SetSequenceNumber(seq).
		SetEventType(env.EventType).
		SetStreamType(env.StreamType).
		SetStreamID(env.StreamID).
		SetData(data).
		SetCorrelationID(correlationID).
		SetOccurredAt(env.OccurredAt).
		SetRecordedAt(time.Now().UTC())
	if env.CausationID != "" {
		builder.SetCausationID(env.CausationID)
	}
	if env.Metadata != nil {
		builder.SetMetadata(env.Metadata)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, faults.Wrap(faults.KindConflict, "event append conflict", err)
		}
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	if s.applier != nil {
		if err := s.applier.Apply(ctx, tx, evt); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit append: %w", err)
	}
	return evt, nil
}

// nextSequence returns the next global sequence number. Compaction moves
// events into the archive table without renumbering, so the high-water mark
// is the maximum across both tables — reading only the live table would hand
// out numbers the archive already holds.
func nextSequence(ctx context.Context, tx *ent.Tx) (int64, error) {
	high, err := highestSequence(ctx, tx.Event.Query(), tx.ArchivedEvent.Query())
	if err != nil {
		return 0, err
	}
	return high + 1, nil
}

func highestSequence(ctx context.Context, events *ent.EventQuery, archived *ent.ArchivedEventQuery) (int64, error) {
	var high int64
	live, err := events.Order(ent.Desc(event.FieldSequenceNumber)).First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to read last sequence: %w", err)
	}
	if live != nil {
		high = live.SequenceNumber
	}
	old, err := archived.Order(ent.Desc(archivedevent.FieldSequenceNumber)).First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to read last archived sequence: %w", err)
	}
	if old != nil && old.SequenceNumber > high {
		high = old.SequenceNumber
	}
	return high, nil
}

// FromArchived converts an archived row back to the live event shape so
// readers and replays treat both tables uniformly.
func FromArchived(ae *ent.ArchivedEvent) *ent.Event {
	return &ent.Event{
		ID:             ae.ID,
		SequenceNumber: ae.SequenceNumber,
		EventType:      ae.EventType,
		StreamType:     ae.StreamType,
		StreamID:       ae.StreamID,
		Data:           ae.Data,
		CausationID:    ae.CausationID,
		CorrelationID:  ae.CorrelationID,
		OccurredAt:     ae.OccurredAt,
		RecordedAt:     ae.RecordedAt,
		SchemaVersion:  ae.SchemaVersion,
	}
}

// mergeBySequence interleaves archived and live rows into one ascending run.
// Sequence numbers are globally unique, so a two-pointer merge suffices.
func mergeBySequence(archived []*ent.ArchivedEvent, live []*ent.Event) []*ent.Event {
	merged := make([]*ent.Event, 0, len(archived)+len(live))
	i, j := 0, 0
	for i < len(archived) && j < len(live) {
		if archived[i].SequenceNumber < live[j].SequenceNumber {
			merged = append(merged, FromArchived(archived[i]))
			i++
		} else {
			merged = append(merged, live[j])
			j++
		}
	}
	for ; i < len(archived); i++ {
		merged = append(merged, FromArchived(archived[i]))
	}
	return append(merged, live[j:]...)
}

// isBusy reports whether err is transient sqlite contention.
func isBusy(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
	}
	return false
}

// GetByID loads a single event, falling back to the archive for rows that
// compaction has already moved out of the live table.
func (s *Store) GetByID(ctx context.Context, eventID string) (*ent.Event, error) {
	evt, err := s.client.Event.Query().Where(event.ID(eventID)).Only(ctx)
	if err == nil {
		return evt, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	ae, err := s.client.ArchivedEvent.Query().Where(archivedevent.ID(eventID)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, faults.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load archived event: %w", err)
	}
	return FromArchived(ae), nil
}

// GetStream returns a stream's events with sequence numbers greater than
// afterSeq, in ascending order, spanning both the live table and the archive.
// limit <= 0 means no limit.
func (s *Store) GetStream(ctx context.Context, streamType, streamID string, afterSeq int64, limit int) ([]*ent.Event, error) {
	lq := s.client.Event.Query().
		Where(
			event.StreamType(streamType),
			event.StreamID(streamID),
			event.SequenceNumberGT(afterSeq),
		).
		Order(ent.Asc(event.FieldSequenceNumber))
	aq := s.client.ArchivedEvent.Query().
		Where(
			archivedevent.StreamType(streamType),
			archivedevent.StreamID(streamID),
			archivedevent.SequenceNumberGT(afterSeq),
		).
		Order(ent.Asc(archivedevent.FieldSequenceNumber))
	if limit > 0 {
		lq.Limit(limit)
		aq.Limit(limit)
	}
	live, err := lq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}
	archived, err := aq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived stream: %w", err)
	}
	events := mergeBySequence(archived, live)
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// GetByCorrelation returns every event in a correlation chain in append order.
// Chains survive compaction: archived members are merged back in.
func (s *Store) GetByCorrelation(ctx context.Context, correlationID string) ([]*ent.Event, error) {
	live, err := s.client.Event.Query().
		Where(event.CorrelationID(correlationID)).
		Order(ent.Asc(event.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read correlation chain: %w", err)
	}
	archived, err := s.client.ArchivedEvent.Query().
		Where(archivedevent.CorrelationID(correlationID)).
		Order(ent.Asc(archivedevent.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived correlation chain: %w", err)
	}
	return mergeBySequence(archived, live), nil
}

// GetAfter returns up to limit events with sequence numbers greater than
// afterSeq across all streams, live and archived, in ascending order.
// limit <= 0 means no limit.
func (s *Store) GetAfter(ctx context.Context, afterSeq int64, limit int) ([]*ent.Event, error) {
	lq := s.client.Event.Query().
		Where(event.SequenceNumberGT(afterSeq)).
		Order(ent.Asc(event.FieldSequenceNumber))
	aq := s.client.ArchivedEvent.Query().
		Where(archivedevent.SequenceNumberGT(afterSeq)).
		Order(ent.Asc(archivedevent.FieldSequenceNumber))
	if limit > 0 {
		lq.Limit(limit)
		aq.Limit(limit)
	}
	live, err := lq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	archived, err := aq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived events: %w", err)
	}
	events := mergeBySequence(archived, live)
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// LastSequence returns the highest assigned sequence number, or 0 for an
// empty log. Compacted events still count: the high-water mark never moves
// backwards.
func (s *Store) LastSequence(ctx context.Context) (int64, error) {
	return highestSequence(ctx, s.client.Event.Query(), s.client.ArchivedEvent.Query())
}

// CountByType returns per-type event counts across the live table and the
// archive, used by status reporting and compaction thresholds.
func (s *Store) CountByType(ctx context.Context, streamType, streamID string) (map[string]int, error) {
	events, err := s.client.Event.Query().
		Where(event.StreamType(streamType), event.StreamID(streamID)).
		Select(event.FieldEventType).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	archived, err := s.client.ArchivedEvent.Query().
		Where(archivedevent.StreamType(streamType), archivedevent.StreamID(streamID)).
		Select(archivedevent.FieldEventType).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count archived events: %w", err)
	}
	counts := make(map[string]int, len(events)+len(archived))
	for _, evt := range events {
		counts[evt.EventType]++
	}
	for _, evt := range archived {
		counts[evt.EventType]++
	}
	return counts, nil
}
