package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/checkpoint"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/locks"
	"github.com/fleettools/fleetd/pkg/mailbox"
)

// Service creates, stores and recovers checkpoints.
type Service struct {
	store    *eventstore.Store
	client   *ent.Client
	missions *lifecycle.MissionService
	sorties  *lifecycle.SortieService
	locks    *locks.Service
	mail     *mailbox.Service
	cfg      *config.Config
}

// NewService creates a checkpoint service.
func NewService(
	store *eventstore.Store,
	client *ent.Client,
	missions *lifecycle.MissionService,
	sorties *lifecycle.SortieService,
	lockService *locks.Service,
	mail *mailbox.Service,
	cfg *config.Config,
) *Service {
	return &Service{
		store:    store,
		client:   client,
		missions: missions,
		sorties:  sorties,
		locks:    lockService,
		mail:     mail,
		cfg:      cfg,
	}
}

// Create assembles and persists a checkpoint for a mission.
func (s *Service) Create(ctx context.Context, missionID, trigger, note, createdBy string) (*ent.Checkpoint, error) {
	return s.create(ctx, missionID, trigger, note, createdBy, 0)
}

// create additionally records the milestone threshold for progress-triggered
// checkpoints; milestone is 0 for every other trigger.
func (s *Service) create(ctx context.Context, missionID, trigger, note, createdBy string, milestone int) (*ent.Checkpoint, error) {
	switch trigger {
	case eventstore.TriggerProgress, eventstore.TriggerError, eventstore.TriggerManual, eventstore.TriggerCompaction:
	default:
		return nil, faults.Validation("trigger", "must be progress, error, manual or compaction")
	}
	if createdBy == "" {
		createdBy = "dispatch"
	}

	doc, err := s.assemble(ctx, missionID, trigger, note, createdBy)
	if err != nil {
		return nil, err
	}
	doc.MilestonePercent = milestone

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkpoint: %w", err)
	}
	size := int64(len(raw))
	if size > s.cfg.Checkpoint.MaxBytes {
		return nil, faults.Newf(faults.KindValidation,
			"checkpoint size %d exceeds limit %d", size, s.cfg.Checkpoint.MaxBytes)
	}
	if size > s.cfg.Checkpoint.WarnBytes {
		slog.Warn("Checkpoint is unusually large",
			"checkpoint_id", doc.CheckpointID,
			"size_bytes", size)
	}

	if err := writeDocument(s.cfg.CheckpointDir(missionID), doc, raw); err != nil {
		return nil, err
	}
	row, err := s.insertRow(ctx, doc, size)
	if err != nil {
		return nil, err
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeFleetCheckpointed,
		StreamType: eventstore.StreamFleet,
		StreamID:   missionID,
		Payload: &eventstore.FleetCheckpointed{
			CheckpointID:    doc.CheckpointID,
			MissionID:       missionID,
			Trigger:         trigger,
			ProgressPercent: doc.ProgressPercent,
			SortieCount:     len(doc.Sorties),
			LockCount:       len(doc.ActiveLocks),
			MessageCount:    len(doc.PendingMessages),
			SizeBytes:       size,
		},
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Checkpoint created",
		"checkpoint_id", doc.CheckpointID,
		"mission_id", missionID,
		"trigger", trigger,
		"progress_percent", doc.ProgressPercent,
		"size_bytes", size)
	return row, nil
}

// assemble captures mission state and derives the recovery context.
func (s *Service) assemble(ctx context.Context, missionID, trigger, note, createdBy string) (*Document, error) {
	m, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	all, err := s.sorties.List(ctx, lifecycle.ListFilter{MissionID: missionID})
	if err != nil {
		return nil, err
	}

	var (
		snaps         []lifecycle.SortieSnapshot
		nextSteps     []string
		blockers      []string
		filesModified []string
		seenFile      = map[string]bool{}
	)
	for _, st := range all {
		for _, f := range st.Files {
			if !seenFile[f] {
				seenFile[f] = true
				filesModified = append(filesModified, f)
			}
		}
		switch st.Status {
		case sortie.StatusCompleted, sortie.StatusCancelled, sortie.StatusFailed:
			continue
		}
		snap := lifecycle.SortieSnapshot{
			SortieID: st.ID,
			Status:   string(st.Status),
			Progress: st.Progress,
			Files:    st.Files,
			Notes:    st.Description,
		}
		if st.AssignedTo != nil {
			snap.AssignedTo = *st.AssignedTo
		}
		snaps = append(snaps, snap)

		switch st.Status {
		case sortie.StatusPending:
			nextSteps = append(nextSteps, fmt.Sprintf("schedule %s (%s)", st.ID, st.Title))
		case sortie.StatusBlocked:
			if st.BlockedReason != nil {
				blockers = append(blockers, *st.BlockedReason)
			}
			nextSteps = append(nextSteps, fmt.Sprintf("resolve blocker on %s (%s)", st.ID, st.Title))
		default:
			nextSteps = append(nextSteps, fmt.Sprintf("finish %s (%s)", st.ID, st.Title))
		}
	}

	lockSnaps, err := s.locks.SnapshotActive(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.mail.Pending(ctx)
	if err != nil {
		return nil, err
	}
	msgSnaps := make([]MessageSnapshot, 0, len(pending))
	for _, msg := range pending {
		snap := MessageSnapshot{
			MessageID: msg.ID,
			MailboxID: msg.MailboxID,
			Type:      msg.Type,
			Content:   msg.Content,
			Priority:  string(msg.Priority),
		}
		if msg.SenderID != nil {
			snap.SenderID = *msg.SenderID
		}
		if msg.ThreadID != nil {
			snap.ThreadID = *msg.ThreadID
		}
		msgSnaps = append(msgSnaps, snap)
	}

	lastSeq, err := s.store.LastSequence(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lastActivity := m.CreatedAt
	if m.LastActivityAt != nil {
		lastActivity = *m.LastActivityAt
	}
	elapsedFrom := m.CreatedAt
	if m.StartedAt != nil {
		elapsedFrom = *m.StartedAt
	}
	lastAction := note
	if lastAction == "" {
		lastAction = fmt.Sprintf("%s checkpoint of mission %q at %d%%",
			trigger, m.Title, lifecycle.ProgressPercent(m.TotalSorties, m.CompletedSorties))
	}

	return &Document{
		CheckpointID:    ids.NewCheckpoint(),
		MissionID:       missionID,
		CreatedAt:       now,
		Trigger:         trigger,
		ProgressPercent: lifecycle.ProgressPercent(m.TotalSorties, m.CompletedSorties),
		Sorties:         snaps,
		ActiveLocks:     lockSnaps,
		PendingMessages: msgSnaps,
		RecoveryContext: RecoveryContext{
			LastAction:        lastAction,
			NextSteps:         nextSteps,
			Blockers:          blockers,
			FilesModified:     filesModified,
			MissionSummary:    fmt.Sprintf("%s: %d/%d sorties completed", m.Title, m.CompletedSorties, m.TotalSorties),
			ElapsedTimeMS:     now.Sub(elapsedFrom).Milliseconds(),
			LastActivityAt:    lastActivity,
			LastEventSequence: lastSeq,
		},
		CreatedBy:         createdBy,
		SchemaVersion:     SchemaVersion,
		LastEventSequence: lastSeq,
	}, nil
}

// insertRow stores the checkpoint row, demoting the previous latest.
func (s *Service) insertRow(ctx context.Context, doc *Document, size int64) (*ent.Checkpoint, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Checkpoint.Update().
		Where(
			checkpoint.MissionID(doc.MissionID),
			checkpoint.Latest(true),
		).
		SetLatest(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to demote previous checkpoint: %w", err)
	}

	sortieMaps, err := toMaps(doc.Sorties)
	if err != nil {
		return nil, err
	}
	lockMaps, err := toMaps(doc.ActiveLocks)
	if err != nil {
		return nil, err
	}
	msgMaps, err := toMaps(doc.PendingMessages)
	if err != nil {
		return nil, err
	}
	rcMap, err := toMap(doc.RecoveryContext)
	if err != nil {
		return nil, err
	}

	row, err := tx.Checkpoint.Create().
		SetID(doc.CheckpointID).
		SetMissionID(doc.MissionID).
		SetTrigger(checkpoint.Trigger(doc.Trigger)).
		SetProgressPercent(doc.ProgressPercent).
		SetMilestonePercent(doc.MilestonePercent).
		SetSorties(sortieMaps).
		SetActiveLocks(lockMaps).
		SetPendingMessages(msgMaps).
		SetRecoveryContext(rcMap).
		SetCreatedBy(doc.CreatedBy).
		SetSchemaVersion(doc.SchemaVersion).
		SetLastEventSequence(doc.LastEventSequence).
		SetSizeBytes(size).
		SetLatest(true).
		SetCreatedAt(doc.CreatedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkpoint row: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkpoint row: %w", err)
	}
	return row, nil
}

// MaybeMilestone checkpoints the mission the first time its progress crosses
// a configured threshold.
func (s *Service) MaybeMilestone(ctx context.Context, missionID string, before, after int) error {
	crossed := -1
	for _, t := range s.cfg.Checkpoint.ProgressThresholds {
		if before < t && after >= t && t > crossed {
			crossed = t
		}
	}
	if crossed < 0 {
		return nil
	}

	// First crossing only: skip if a milestone at or past the threshold was
	// already recorded. The dedup key is the threshold itself, not the
	// mission's progress ratio at checkpoint time.
	exists, err := s.client.Checkpoint.Query().
		Where(
			checkpoint.MissionID(missionID),
			checkpoint.TriggerEQ(checkpoint.TriggerProgress),
			checkpoint.MilestonePercentGTE(crossed),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check milestone checkpoints: %w", err)
	}
	if exists {
		return nil
	}

	_, err = s.create(ctx, missionID, eventstore.TriggerProgress,
		fmt.Sprintf("progress crossed %d%%", crossed), "dispatch", crossed)
	return err
}

// Get loads a checkpoint document, preferring the row and falling back to
// the file. A store/file discrepancy is logged, not fatal.
func (s *Service) Get(ctx context.Context, checkpointID string) (*Document, error) {
	row, err := s.client.Checkpoint.Get(ctx, checkpointID)
	if err == nil {
		return s.rowToDocument(row)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}

	// Row missing; scan mission dirs for the file copy.
	matches, globErr := filepath.Glob(filepath.Join(s.cfg.StateDir, "checkpoints", "*", checkpointID+".json"))
	if globErr != nil || len(matches) == 0 {
		return nil, faults.ErrNotFound
	}
	slog.Warn("Checkpoint row missing, recovered from file", "checkpoint_id", checkpointID)
	doc, err := readDocument(matches[0])
	if errors.Is(err, fs.ErrNotExist) {
		return nil, faults.ErrNotFound
	}
	return doc, err
}

// Latest returns the newest checkpoint document for a mission, or NotFound.
func (s *Service) Latest(ctx context.Context, missionID string) (*Document, error) {
	row, err := s.client.Checkpoint.Query().
		Where(checkpoint.MissionID(missionID), checkpoint.Latest(true)).
		First(ctx)
	if err == nil {
		return s.rowToDocument(row)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load latest checkpoint: %w", err)
	}

	doc, ferr := readDocument(filepath.Join(s.cfg.CheckpointDir(missionID), latestPointer))
	if ferr != nil {
		return nil, faults.ErrNotFound
	}
	slog.Warn("Latest checkpoint row missing, recovered from file", "mission_id", missionID)
	return doc, nil
}

// List returns a mission's checkpoint rows, newest first.
func (s *Service) List(ctx context.Context, missionID string) ([]*ent.Checkpoint, error) {
	rows, err := s.client.Checkpoint.Query().
		Where(checkpoint.MissionID(missionID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	return rows, nil
}

// Delete removes a checkpoint from both stores and records the deletion.
func (s *Service) Delete(ctx context.Context, checkpointID, reason string) error {
	row, err := s.client.Checkpoint.Get(ctx, checkpointID)
	if ent.IsNotFound(err) {
		return faults.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load checkpoint: %w", err)
	}

	if err := s.client.Checkpoint.DeleteOneID(checkpointID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete checkpoint row: %w", err)
	}
	if err := removeDocument(s.cfg.CheckpointDir(row.MissionID), checkpointID); err != nil {
		return err
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeCheckpointDeleted,
		StreamType: eventstore.StreamFleet,
		StreamID:   row.MissionID,
		Payload: &eventstore.CheckpointDeleted{
			CheckpointID: checkpointID,
			MissionID:    row.MissionID,
			Reason:       reason,
		},
	})
	return err
}

func (s *Service) rowToDocument(row *ent.Checkpoint) (*Document, error) {
	doc := &Document{
		CheckpointID:      row.ID,
		MissionID:         row.MissionID,
		CreatedAt:         row.CreatedAt,
		Trigger:           string(row.Trigger),
		ProgressPercent:   row.ProgressPercent,
		MilestonePercent:  row.MilestonePercent,
		CreatedBy:         row.CreatedBy,
		SchemaVersion:     row.SchemaVersion,
		LastEventSequence: row.LastEventSequence,
	}
	if err := remarshal(row.Sorties, &doc.Sorties); err != nil {
		return nil, err
	}
	if err := remarshal(row.ActiveLocks, &doc.ActiveLocks); err != nil {
		return nil, err
	}
	if err := remarshal(row.PendingMessages, &doc.PendingMessages); err != nil {
		return nil, err
	}
	if err := remarshal(row.RecoveryContext, &doc.RecoveryContext); err != nil {
		return nil, err
	}
	return doc, nil
}

func toMaps[T any](items []T) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		m, err := toMap(item)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func toMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkpoint part: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to round-trip checkpoint part: %w", err)
	}
	return m, nil
}

func remarshal(src, dst any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("failed to re-marshal checkpoint part: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode checkpoint part: %w", err)
	}
	return nil
}
