// Package dispatch is the coordinator: specialist presence, the dependency
// DAG scheduler, blocker handling, review gating, and the liveness sweeps.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/ent/specialist"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/models"
)

// nonTerminalStatuses are specialist states subject to staleness detection.
var nonTerminalStatuses = []specialist.Status{
	specialist.StatusSpawned,
	specialist.StatusRegistered,
	specialist.StatusWorking,
	specialist.StatusBlocked,
	specialist.StatusCompleting,
}

// SpecialistService manages worker presence: registration, heartbeats and
// staleness.
type SpecialistService struct {
	store   *eventstore.Store
	client  *ent.Client
	sorties *lifecycle.SortieService
	cfg     *config.LivenessConfig
}

// NewSpecialistService creates a SpecialistService.
func NewSpecialistService(store *eventstore.Store, client *ent.Client, sorties *lifecycle.SortieService, cfg *config.LivenessConfig) *SpecialistService {
	return &SpecialistService{store: store, client: client, sorties: sorties, cfg: cfg}
}

// Register completes the spawn handshake (or attaches a manually started
// worker).
func (s *SpecialistService) Register(ctx context.Context, req models.RegisterSpecialistRequest) (*ent.Specialist, error) {
	if req.SpecialistID == "" {
		return nil, faults.Validation("specialist_id", "required")
	}
	_, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSpecialistRegistered,
		StreamType: eventstore.StreamSpecialist,
		StreamID:   req.SpecialistID,
		Payload: &eventstore.SpecialistRegistered{
			SpecialistID: req.SpecialistID,
			Name:         req.Name,
			Capabilities: req.Capabilities,
			SortieID:     req.SortieID,
			MissionID:    req.MissionID,
		},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, req.SpecialistID)
}

// Heartbeat refreshes last_seen; status, when supplied, must be one of the
// worker-reportable states.
func (s *SpecialistService) Heartbeat(ctx context.Context, specialistID, status string) (*ent.Specialist, error) {
	if specialistID == "" {
		return nil, faults.Validation("specialist_id", "required")
	}
	switch status {
	case "", string(specialist.StatusWorking), string(specialist.StatusBlocked), string(specialist.StatusCompleting):
	default:
		return nil, faults.Validation("status", "must be working, blocked or completing")
	}
	if _, err := s.Get(ctx, specialistID); err != nil {
		return nil, err
	}

	_, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSpecialistHeartbeat,
		StreamType: eventstore.StreamSpecialist,
		StreamID:   specialistID,
		Payload:    &eventstore.SpecialistHeartbeat{SpecialistID: specialistID, Status: status},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, specialistID)
}

// Get loads one specialist.
func (s *SpecialistService) Get(ctx context.Context, specialistID string) (*ent.Specialist, error) {
	sp, err := s.client.Specialist.Get(ctx, specialistID)
	if ent.IsNotFound(err) {
		return nil, faults.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load specialist: %w", err)
	}
	return sp, nil
}

// List returns specialists, optionally filtered by status or mission.
func (s *SpecialistService) List(ctx context.Context, status, missionID string) ([]*ent.Specialist, error) {
	q := s.client.Specialist.Query().
		Order(ent.Asc(specialist.FieldCreatedAt))
	if status != "" {
		q.Where(specialist.StatusEQ(specialist.Status(status)))
	}
	if missionID != "" {
		q.Where(specialist.MissionID(missionID))
	}
	result, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialists: %w", err)
	}
	return result, nil
}

// Deregister removes a worker from the fleet.
func (s *SpecialistService) Deregister(ctx context.Context, specialistID, reason string) (*ent.Specialist, error) {
	if _, err := s.Get(ctx, specialistID); err != nil {
		return nil, err
	}
	_, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSpecialistDeregistered,
		StreamType: eventstore.StreamSpecialist,
		StreamID:   specialistID,
		Payload:    &eventstore.SpecialistDeregistered{SpecialistID: specialistID, Reason: reason},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, specialistID)
}

// SweepStale marks specialists past the liveness threshold as stale and
// blocks their in-flight sorties with category error, which routes them into
// the reassignment policy.
func (s *SpecialistService) SweepStale(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.StaleThreshold)
	overdue, err := s.client.Specialist.Query().
		Where(
			specialist.StatusIn(nonTerminalStatuses...),
			specialist.LastSeenLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale specialists: %w", err)
	}

	marked := 0
	for _, sp := range overdue {
		evt, err := s.store.Append(ctx, eventstore.Envelope{
			EventType:  eventstore.TypeSpecialistStale,
			StreamType: eventstore.StreamSpecialist,
			StreamID:   sp.ID,
			Payload: &eventstore.SpecialistStale{
				SpecialistID: sp.ID,
				LastSeen:     sp.LastSeen.UTC().Format(time.RFC3339Nano),
			},
		})
		if err != nil {
			return marked, err
		}
		marked++

		if sp.CurrentSortie == nil || *sp.CurrentSortie == "" {
			continue
		}
		if err := s.blockStaleSortie(ctx, *sp.CurrentSortie, sp.ID, evt.ID); err != nil {
			slog.Error("Failed to block sortie of stale specialist",
				"specialist_id", sp.ID,
				"sortie_id", *sp.CurrentSortie,
				"error", err)
		}
	}
	return marked, nil
}

func (s *SpecialistService) blockStaleSortie(ctx context.Context, sortieID, specialistID, causationID string) error {
	st, err := s.sorties.Get(ctx, sortieID)
	if err != nil {
		return err
	}
	switch st.Status {
	case sortie.StatusAssigned, sortie.StatusInProgress:
	default:
		return nil
	}
	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:   eventstore.TypeSortieBlocked,
		StreamType:  eventstore.StreamSortie,
		StreamID:    sortieID,
		CausationID: causationID,
		Payload: &eventstore.SortieBlocked{
			SortieID:  sortieID,
			Reason:    fmt.Sprintf("specialist %s went stale", specialistID),
			Category:  eventstore.BlockError,
			BlockedBy: specialistID,
		},
	})
	return err
}
