// Package compaction keeps the live event log bounded: streams that grow
// past the configured thresholds get a covering snapshot, after which their
// events move to the archive table and an on-disk segment. Nothing is ever
// deleted outright; rebuilds replay the archive first.
package compaction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/event"
	"github.com/fleettools/fleetd/ent/snapshot"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/eventstore"
)

// Pruner is the checkpoint retention hook run with each compaction pass.
type Pruner interface {
	Prune(ctx context.Context) (int, error)
}

// Service is the periodic compaction loop.
type Service struct {
	store  *eventstore.Store
	client *ent.Client
	cfg    *config.Config
	pruner Pruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a compaction service. pruner may be nil.
func NewService(store *eventstore.Store, client *ent.Client, cfg *config.Config, pruner Pruner) *Service {
	return &Service{store: store, client: client, cfg: cfg, pruner: pruner}
}

// Start launches the background compaction loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Compaction service started",
		"threshold_events", s.cfg.Compaction.ThresholdEvents,
		"age_days", s.cfg.Compaction.AgeDays,
		"interval", s.cfg.Compaction.Interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Compaction service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.Compaction.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				slog.Error("Compaction pass failed", "error", err)
			}
		}
	}
}

// RunOnce compacts every eligible stream and enforces checkpoint retention.
// It returns the number of events archived.
func (s *Service) RunOnce(ctx context.Context) (int, error) {
	streams, err := s.eligibleStreams(ctx)
	if err != nil {
		return 0, err
	}

	archived := 0
	for _, st := range streams {
		n, err := s.compactStream(ctx, st.streamType, st.streamID)
		if err != nil {
			return archived, err
		}
		archived += n
	}

	if s.pruner != nil {
		if _, err := s.pruner.Prune(ctx); err != nil {
			slog.Error("Checkpoint retention failed", "error", err)
		}
	}
	return archived, nil
}

type streamKey struct {
	streamType string
	streamID   string
}

// eligibleStreams returns streams whose live event count exceeds the
// threshold or whose oldest live event is older than the age cutoff.
func (s *Service) eligibleStreams(ctx context.Context) ([]streamKey, error) {
	events, err := s.client.Event.Query().
		Select(event.FieldStreamType, event.FieldStreamID, event.FieldRecordedAt).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan streams: %w", err)
	}

	counts := map[streamKey]int{}
	oldest := map[streamKey]time.Time{}
	for _, evt := range events {
		key := streamKey{evt.StreamType, evt.StreamID}
		counts[key]++
		if t, ok := oldest[key]; !ok || evt.RecordedAt.Before(t) {
			oldest[key] = evt.RecordedAt
		}
	}

	ageCutoff := time.Now().AddDate(0, 0, -s.cfg.Compaction.AgeDays)
	var eligible []streamKey
	for key, count := range counts {
		// The fleet stream is the audit trail of compaction itself.
		if key.streamType == eventstore.StreamFleet {
			continue
		}
		if count > s.cfg.Compaction.ThresholdEvents || oldest[key].Before(ageCutoff) {
			eligible = append(eligible, key)
		}
	}
	return eligible, nil
}

// compactStream snapshots a stream's projection state, then moves its live
// events into the archive table and an on-disk segment. Only the live table
// is read here; store reads span the archive, and re-archiving an already
// archived row would collide on its id.
func (s *Service) compactStream(ctx context.Context, streamType, streamID string) (int, error) {
	events, err := s.client.Event.Query().
		Where(event.StreamType(streamType), event.StreamID(streamID)).
		Order(ent.Asc(event.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read stream %s/%s: %w", streamType, streamID, err)
	}
	if len(events) == 0 {
		return 0, nil
	}
	from := events[0].SequenceNumber
	to := events[len(events)-1].SequenceNumber

	state, err := s.projectionState(ctx, streamType, streamID)
	if err != nil {
		return 0, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start compaction transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Snapshot.Query().
		Where(
			snapshot.StreamType(streamType),
			snapshot.StreamID(streamID),
			snapshot.ToSequence(to),
		).
		Exist(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check snapshot: %w", err)
	}
	if !exists {
		_, err = tx.Snapshot.Create().
			SetStreamType(streamType).
			SetStreamID(streamID).
			SetState(state).
			SetFromSequence(from).
			SetToSequence(to).
			SetCreatedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to create snapshot: %w", err)
		}
	}

	archivedAt := time.Now().UTC()
	for _, evt := range events {
		builder := tx.ArchivedEvent.Create().
			SetID(evt.ID).
			SetSequenceNumber(evt.SequenceNumber).
			SetEventType(evt.EventType).
			SetStreamType(evt.StreamType).
			SetStreamID(evt.StreamID).
			SetData(evt.Data).
			SetCorrelationID(evt.CorrelationID).
			SetOccurredAt(evt.OccurredAt).
			SetRecordedAt(evt.RecordedAt).
			SetSchemaVersion(evt.SchemaVersion).
			SetArchivedAt(archivedAt)
		if evt.CausationID != nil {
			builder.SetCausationID(*evt.CausationID)
		}
		if _, err := builder.Save(ctx); err != nil {
			return 0, fmt.Errorf("failed to archive event %s: %w", evt.ID, err)
		}
	}
	if _, err := tx.Event.Delete().
		Where(
			event.StreamType(streamType),
			event.StreamID(streamID),
			event.SequenceNumberLTE(to),
		).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to remove archived events: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit compaction: %w", err)
	}

	if err := s.writeSegment(events, to); err != nil {
		// The archive table already holds the events; the segment is a
		// secondary copy.
		slog.Error("Failed to write archive segment", "to_sequence", to, "error", err)
	}

	if _, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeStreamSnapshotted,
		StreamType: eventstore.StreamFleet,
		StreamID:   streamID,
		Payload: &eventstore.StreamSnapshotted{
			StreamType:   streamType,
			StreamID:     streamID,
			FromSequence: from,
			ToSequence:   to,
		},
	}); err != nil {
		return 0, err
	}
	if _, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeEventsArchived,
		StreamType: eventstore.StreamFleet,
		StreamID:   streamID,
		Payload: &eventstore.EventsArchived{
			StreamType:   streamType,
			StreamID:     streamID,
			FromSequence: from,
			ToSequence:   to,
			Count:        len(events),
		},
	}); err != nil {
		return 0, err
	}

	slog.Info("Compacted stream",
		"stream_type", streamType,
		"stream_id", streamID,
		"events", len(events),
		"to_sequence", to)
	return len(events), nil
}

// projectionState captures the stream's current projection row as the
// snapshot state; streams without a projection row snapshot empty state.
func (s *Service) projectionState(ctx context.Context, streamType, streamID string) (map[string]interface{}, error) {
	var (
		row any
		err error
	)
	switch streamType {
	case eventstore.StreamMission:
		row, err = s.client.Mission.Get(ctx, streamID)
	case eventstore.StreamSortie:
		row, err = s.client.Sortie.Get(ctx, streamID)
	case eventstore.StreamSpecialist:
		row, err = s.client.Specialist.Get(ctx, streamID)
	case eventstore.StreamLock:
		row, err = s.client.FileLock.Get(ctx, streamID)
	default:
		return map[string]interface{}{}, nil
	}
	if ent.IsNotFound(err) {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load projection state: %w", err)
	}

	raw, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal projection state: %w", err)
	}
	var state map[string]interface{}
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to round-trip projection state: %w", err)
	}
	return state, nil
}

// writeSegment appends the archived events as JSON lines to the on-disk
// segment named by the covering sequence.
func (s *Service) writeSegment(events []*ent.Event, toSequence int64) error {
	dir := s.cfg.ArchiveDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create archive dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("events_%d.log", toSequence))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open archive segment: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, evt := range events {
		if err := enc.Encode(evt); err != nil {
			return fmt.Errorf("failed to write archive segment: %w", err)
		}
	}
	return f.Sync()
}
