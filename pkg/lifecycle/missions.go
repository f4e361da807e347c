// Package lifecycle drives the mission and sortie state machines. Every
// transition is validated against the current projection row, then appended
// as an event; the projection engine applies the effect in the same
// transaction.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
	"github.com/fleettools/fleetd/pkg/models"
)

// MissionService manages mission lifecycle.
type MissionService struct {
	store  *eventstore.Store
	client *ent.Client
}

// NewMissionService creates a MissionService.
func NewMissionService(store *eventstore.Store, client *ent.Client) *MissionService {
	return &MissionService{store: store, client: client}
}

// missionTransitions is the legal state machine:
// pending → in_progress → (review) → completed | cancelled.
var missionTransitions = map[mission.Status][]mission.Status{
	mission.StatusPending:    {mission.StatusInProgress, mission.StatusCancelled},
	mission.StatusInProgress: {mission.StatusReview, mission.StatusCompleted, mission.StatusCancelled},
	mission.StatusReview:     {mission.StatusCompleted, mission.StatusInProgress, mission.StatusCancelled},
}

func missionCanTransition(from, to mission.Status) bool {
	for _, allowed := range missionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Create creates a mission in status pending.
func (s *MissionService) Create(ctx context.Context, req models.CreateMissionRequest) (*ent.Mission, error) {
	if req.Title == "" {
		return nil, faults.Validation("title", "required")
	}
	if req.Priority != "" {
		if err := mission.PriorityValidator(mission.Priority(req.Priority)); err != nil {
			return nil, faults.Validation("priority", "must be low, normal, high or urgent")
		}
	}

	missionID := ids.NewMission()
	_, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeMissionCreated,
		StreamType: eventstore.StreamMission,
		StreamID:   missionID,
		Payload: &eventstore.MissionCreated{
			MissionID:   missionID,
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			Strategy:    req.Strategy,
		},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, missionID)
}

// Get loads one mission.
func (s *MissionService) Get(ctx context.Context, missionID string) (*ent.Mission, error) {
	m, err := s.client.Mission.Get(ctx, missionID)
	if ent.IsNotFound(err) {
		return nil, faults.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load mission: %w", err)
	}
	return m, nil
}

// List returns missions, newest first, optionally filtered by status.
func (s *MissionService) List(ctx context.Context, status string, limit int) ([]*ent.Mission, error) {
	q := s.client.Mission.Query().
		Order(ent.Desc(mission.FieldCreatedAt))
	if status != "" {
		q.Where(mission.StatusEQ(mission.Status(status)))
	}
	if limit > 0 {
		q.Limit(limit)
	}
	missions, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, nil
}

// Start transitions pending → in_progress.
func (s *MissionService) Start(ctx context.Context, missionID string) (*ent.Mission, error) {
	return s.transition(ctx, missionID, mission.StatusInProgress,
		eventstore.TypeMissionStarted, "")
}

// OpenReview transitions in_progress → review.
func (s *MissionService) OpenReview(ctx context.Context, missionID string) (*ent.Mission, error) {
	return s.transition(ctx, missionID, mission.StatusReview,
		eventstore.TypeMissionReview, "")
}

// Complete finishes a mission. It is refused while any child sortie is in a
// non-terminal state (or failed).
func (s *MissionService) Complete(ctx context.Context, missionID string) (*ent.Mission, error) {
	open, err := s.client.Sortie.Query().
		Where(
			sortie.MissionID(missionID),
			sortie.StatusNotIn(sortie.StatusCompleted, sortie.StatusCancelled),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count open sorties: %w", err)
	}
	if open > 0 {
		return nil, faults.Newf(faults.KindPrecondition,
			"mission has %d sorties not yet completed or cancelled", open).
			WithDetail(map[string]any{"open_sorties": open})
	}
	return s.transition(ctx, missionID, mission.StatusCompleted,
		eventstore.TypeMissionCompleted, "")
}

// Cancel aborts a mission from any non-terminal state.
func (s *MissionService) Cancel(ctx context.Context, missionID, reason string) (*ent.Mission, error) {
	return s.transition(ctx, missionID, mission.StatusCancelled,
		eventstore.TypeMissionCancelled, reason)
}

func (s *MissionService) transition(ctx context.Context, missionID string, to mission.Status, eventType, reason string) (*ent.Mission, error) {
	m, err := s.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !missionCanTransition(m.Status, to) {
		return nil, faults.Newf(faults.KindPrecondition,
			"mission cannot transition from %s to %s", m.Status, to)
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventType,
		StreamType: eventstore.StreamMission,
		StreamID:   missionID,
		Payload:    &eventstore.MissionStatusChanged{MissionID: missionID, Reason: reason},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, missionID)
}

// Stats summarises a mission's progress, per-status sortie counts and the
// current blocker reasons.
func (s *MissionService) Stats(ctx context.Context, missionID string) (*models.MissionStats, error) {
	m, err := s.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}

	sorties, err := s.client.Sortie.Query().
		Where(sortie.MissionID(missionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sorties: %w", err)
	}

	stats := &models.MissionStats{
		MissionID:        m.ID,
		Status:           string(m.Status),
		TotalSorties:     m.TotalSorties,
		CompletedSorties: m.CompletedSorties,
		ByStatus:         map[string]int{},
	}
	for _, st := range sorties {
		stats.ByStatus[string(st.Status)]++
		if st.Status == sortie.StatusBlocked && st.BlockedReason != nil {
			stats.Blockers = append(stats.Blockers, *st.BlockedReason)
		}
	}
	stats.ProgressPercent = ProgressPercent(m.TotalSorties, m.CompletedSorties)
	if m.LastActivityAt != nil {
		stats.LastActivityAt = m.LastActivityAt.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
	return stats, nil
}

// ProgressPercent derives mission progress from the sortie counters.
func ProgressPercent(total, completed int) int {
	if total <= 0 {
		return 0
	}
	return completed * 100 / total
}
