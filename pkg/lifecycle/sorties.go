package lifecycle

import (
	"context"
	"fmt"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
	"github.com/fleettools/fleetd/pkg/models"
)

// SortieService manages sortie lifecycle.
type SortieService struct {
	store  *eventstore.Store
	client *ent.Client
}

// NewSortieService creates a SortieService.
func NewSortieService(store *eventstore.Store, client *ent.Client) *SortieService {
	return &SortieService{store: store, client: client}
}

// sortieTransitions is the legal state machine. progress keeps the sortie in
// in_progress and is checked separately for monotonicity.
var sortieTransitions = map[sortie.Status][]sortie.Status{
	sortie.StatusPending:    {sortie.StatusAssigned, sortie.StatusCancelled},
	sortie.StatusAssigned:   {sortie.StatusInProgress, sortie.StatusFailed, sortie.StatusCancelled},
	sortie.StatusInProgress: {sortie.StatusBlocked, sortie.StatusCompleted, sortie.StatusFailed, sortie.StatusCancelled},
	// blocked → assigned is the reassignment path after blocker escalation.
	sortie.StatusBlocked: {sortie.StatusInProgress, sortie.StatusAssigned, sortie.StatusFailed, sortie.StatusCancelled},
	sortie.StatusCompleted:  {sortie.StatusReview},
	sortie.StatusReview:     {sortie.StatusCompleted, sortie.StatusInProgress},
}

func sortieCanTransition(from, to sortie.Status) bool {
	for _, allowed := range sortieTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Create adds a sortie. Dependencies must name sorties in the same mission
// and must not introduce a cycle.
func (s *SortieService) Create(ctx context.Context, req models.CreateSortieRequest) (*ent.Sortie, error) {
	if req.Title == "" {
		return nil, faults.Validation("title", "required")
	}
	if req.Priority != "" {
		if err := sortie.PriorityValidator(sortie.Priority(req.Priority)); err != nil {
			return nil, faults.Validation("priority", "must be low, normal, high or urgent")
		}
	}
	if len(req.Dependencies) > 0 && req.MissionID == "" {
		return nil, faults.Validation("dependencies", "standalone sorties cannot have dependencies")
	}

	sortieID := ids.NewSortie()
	if req.MissionID != "" {
		if err := s.validateDependencies(ctx, req.MissionID, sortieID, req.Dependencies); err != nil {
			return nil, err
		}
	}

	_, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieCreated,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload: &eventstore.SortieCreated{
			SortieID:     sortieID,
			MissionID:    req.MissionID,
			Title:        req.Title,
			Description:  req.Description,
			Priority:     req.Priority,
			Files:        req.Files,
			Dependencies: req.Dependencies,
		},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sortieID)
}

// validateDependencies checks that every dependency exists in the mission and
// that the resulting graph stays acyclic.
func (s *SortieService) validateDependencies(ctx context.Context, missionID, sortieID string, deps []string) error {
	siblings, err := s.client.Sortie.Query().
		Where(sortie.MissionID(missionID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load mission sorties: %w", err)
	}

	graph := make(map[string][]string, len(siblings)+1)
	for _, sib := range siblings {
		graph[sib.ID] = sib.Dependencies
	}
	for _, dep := range deps {
		if _, ok := graph[dep]; !ok {
			return faults.Validation("dependencies",
				fmt.Sprintf("sortie %s is not in mission %s", dep, missionID))
		}
	}
	graph[sortieID] = deps

	if HasCycle(graph) {
		return faults.ErrCyclicDependency
	}
	return nil
}

// HasCycle reports whether the dependency graph contains a cycle, via
// three-colour depth-first search.
func HasCycle(graph map[string][]string) bool {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	colour := make(map[string]int, len(graph))

	var visit func(id string) bool
	visit = func(id string) bool {
		colour[id] = grey
		for _, dep := range graph[id] {
			switch colour[dep] {
			case grey:
				return true
			case white:
				if visit(dep) {
					return true
				}
			}
		}
		colour[id] = black
		return false
	}

	for id := range graph {
		if colour[id] == white && visit(id) {
			return true
		}
	}
	return false
}

// Get loads one sortie.
func (s *SortieService) Get(ctx context.Context, sortieID string) (*ent.Sortie, error) {
	st, err := s.client.Sortie.Get(ctx, sortieID)
	if ent.IsNotFound(err) {
		return nil, faults.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load sortie: %w", err)
	}
	return st, nil
}

// ListFilter narrows List results.
type ListFilter struct {
	MissionID  string
	Status     string
	AssignedTo string
	Limit      int
}

// List returns sorties in creation order.
func (s *SortieService) List(ctx context.Context, f ListFilter) ([]*ent.Sortie, error) {
	q := s.client.Sortie.Query().
		Order(ent.Asc(sortie.FieldCreatedAt))
	if f.MissionID != "" {
		q.Where(sortie.MissionID(f.MissionID))
	}
	if f.Status != "" {
		q.Where(sortie.StatusEQ(sortie.Status(f.Status)))
	}
	if f.AssignedTo != "" {
		q.Where(sortie.AssignedTo(f.AssignedTo))
	}
	if f.Limit > 0 {
		q.Limit(f.Limit)
	}
	sorties, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sorties: %w", err)
	}
	return sorties, nil
}

// Assign binds a pending sortie to a specialist.
func (s *SortieService) Assign(ctx context.Context, sortieID, specialistID string) (*ent.Sortie, error) {
	if specialistID == "" {
		return nil, faults.Validation("specialist_id", "required")
	}
	st, err := s.Get(ctx, sortieID)
	if err != nil {
		return nil, err
	}
	if !sortieCanTransition(st.Status, sortie.StatusAssigned) {
		return nil, transitionErr(st.Status, sortie.StatusAssigned)
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieAssigned,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload:    &eventstore.SortieAssigned{SortieID: sortieID, SpecialistID: specialistID},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sortieID)
}

// Start moves an assigned sortie to in_progress. Only the assignee may start.
func (s *SortieService) Start(ctx context.Context, sortieID, specialistID string) (*ent.Sortie, error) {
	st, err := s.Get(ctx, sortieID)
	if err != nil {
		return nil, err
	}
	if err := requireAssignee(st, specialistID); err != nil {
		return nil, err
	}
	if !sortieCanTransition(st.Status, sortie.StatusInProgress) || st.Status != sortie.StatusAssigned {
		return nil, transitionErr(st.Status, sortie.StatusInProgress)
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieStarted,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload:    &eventstore.SortieStarted{SortieID: sortieID, SpecialistID: specialistID},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sortieID)
}

// Progress records a progress update. Only the assignee may report, the
// sortie must be in_progress, and the value must be non-decreasing within
// the episode.
func (s *SortieService) Progress(ctx context.Context, sortieID string, req models.ProgressRequest) (*ent.Sortie, error) {
	if req.Progress < 0 || req.Progress > 100 {
		return nil, faults.Validation("progress", "must be within [0,100]")
	}
	st, err := s.Get(ctx, sortieID)
	if err != nil {
		return nil, err
	}
	if err := requireAssignee(st, req.SpecialistID); err != nil {
		return nil, err
	}
	if st.Status != sortie.StatusInProgress {
		return nil, faults.Newf(faults.KindPrecondition,
			"progress requires status in_progress, sortie is %s", st.Status)
	}
	if req.Progress < st.Progress {
		return nil, faults.Newf(faults.KindPrecondition,
			"progress must be non-decreasing: %d < %d", req.Progress, st.Progress)
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieProgressed,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload: &eventstore.SortieProgressed{
			SortieID:     sortieID,
			SpecialistID: req.SpecialistID,
			Progress:     req.Progress,
			Note:         req.Note,
		},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sortieID)
}

// Block records a blocker on an in_progress sortie.
func (s *SortieService) Block(ctx context.Context, sortieID string, req models.BlockRequest) (*ent.Sortie, error) {
	st, err := s.Get(ctx, sortieID)
	if err != nil {
		return nil, err
	}
	if !sortieCanTransition(st.Status, sortie.StatusBlocked) {
		return nil, transitionErr(st.Status, sortie.StatusBlocked)
	}

	payload := &eventstore.SortieBlocked{
		SortieID:  sortieID,
		Reason:    req.Reason,
		Category:  req.Category,
		BlockedBy: req.BlockedBy,
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieBlocked,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload:    payload,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sortieID)
}

// Unblock clears a blocker, returning the sortie to in_progress.
func (s *SortieService) Unblock(ctx context.Context, sortieID, resolution string) (*ent.Sortie, error) {
	st, err := s.Get(ctx, sortieID)
	if err != nil {
		return nil, err
	}
	if st.Status != sortie.StatusBlocked {
		return nil, transitionErr(st.Status, sortie.StatusInProgress)
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieUnblocked,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload:    &eventstore.SortieUnblocked{SortieID: sortieID, Resolution: resolution},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sortieID)
}

// Complete records the assignee's completion report. tests_passed must be
// true; the payload validator enforces it.
func (s *SortieService) Complete(ctx context.Context, sortieID string, req models.CompleteRequest) (*ent.Sortie, error) {
	st, err := s.Get(ctx, sortieID)
	if err != nil {
		return nil, err
	}
	if err := requireAssignee(st, req.SpecialistID); err != nil {
		return nil, err
	}
	if !sortieCanTransition(st.Status, sortie.StatusCompleted) || st.Status != sortie.StatusInProgress {
		return nil, transitionErr(st.Status, sortie.StatusCompleted)
	}

	payload := &eventstore.SortieCompleted{
		SortieID:     sortieID,
		SpecialistID: req.SpecialistID,
		Summary:      req.Summary,
		Files:        req.Files,
		TestsPassed:  req.TestsPassed,
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieCompleted,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload:    payload,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sortieID)
}

// Fail marks a sortie failed.
func (s *SortieService) Fail(ctx context.Context, sortieID, reason string) (*ent.Sortie, error) {
	return s.terminate(ctx, sortieID, sortie.StatusFailed, eventstore.TypeSortieFailed, reason)
}

// Cancel aborts a sortie from any non-terminal state.
func (s *SortieService) Cancel(ctx context.Context, sortieID, reason string) (*ent.Sortie, error) {
	return s.terminate(ctx, sortieID, sortie.StatusCancelled, eventstore.TypeSortieCancelled, reason)
}

func (s *SortieService) terminate(ctx context.Context, sortieID string, to sortie.Status, eventType, reason string) (*ent.Sortie, error) {
	st, err := s.Get(ctx, sortieID)
	if err != nil {
		return nil, err
	}
	if !sortieCanTransition(st.Status, to) {
		return nil, transitionErr(st.Status, to)
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventType,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload:    &eventstore.SortieTerminated{SortieID: sortieID, Reason: reason},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sortieID)
}

// OpenReview moves a completed sortie into review.
func (s *SortieService) OpenReview(ctx context.Context, sortieID, reviewer string) (*ent.Sortie, error) {
	return s.review(ctx, sortieID, sortie.StatusReview, eventstore.TypeSortieReviewOpened,
		models.ReviewRequest{Reviewer: reviewer})
}

// Approve closes a review as passed.
func (s *SortieService) Approve(ctx context.Context, sortieID string, req models.ReviewRequest) (*ent.Sortie, error) {
	return s.review(ctx, sortieID, sortie.StatusCompleted, eventstore.TypeSortieReviewApproved, req)
}

// Reject re-opens the sortie with feedback; the review event resets progress.
func (s *SortieService) Reject(ctx context.Context, sortieID string, req models.ReviewRequest) (*ent.Sortie, error) {
	if req.Feedback == "" {
		return nil, faults.Validation("feedback", "required on rejection")
	}
	return s.review(ctx, sortieID, sortie.StatusInProgress, eventstore.TypeSortieReviewRejected, req)
}

func (s *SortieService) review(ctx context.Context, sortieID string, to sortie.Status, eventType string, req models.ReviewRequest) (*ent.Sortie, error) {
	st, err := s.Get(ctx, sortieID)
	if err != nil {
		return nil, err
	}
	from := sortie.StatusReview
	if eventType == eventstore.TypeSortieReviewOpened {
		from = sortie.StatusCompleted
	}
	if st.Status != from || !sortieCanTransition(st.Status, to) {
		return nil, transitionErr(st.Status, to)
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventType,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload: &eventstore.SortieReview{
			SortieID: sortieID,
			Reviewer: req.Reviewer,
			Feedback: req.Feedback,
		},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sortieID)
}

// Restore resets a sortie to a checkpoint snapshot during recovery.
func (s *SortieService) Restore(ctx context.Context, snap SortieSnapshot, causationID string) (*ent.Sortie, error) {
	if _, err := s.Get(ctx, snap.SortieID); err != nil {
		return nil, err
	}
	_, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:   eventstore.TypeSortieRestored,
		StreamType:  eventstore.StreamSortie,
		StreamID:    snap.SortieID,
		CausationID: causationID,
		Payload: &eventstore.SortieRestored{
			SortieID:   snap.SortieID,
			Status:     snap.Status,
			AssignedTo: snap.AssignedTo,
			Progress:   snap.Progress,
			Files:      snap.Files,
		},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, snap.SortieID)
}

// SortieSnapshot is a checkpointed sortie state.
type SortieSnapshot struct {
	SortieID   string   `json:"sortie_id"`
	Status     string   `json:"status"`
	AssignedTo string   `json:"assigned_to,omitempty"`
	Progress   int      `json:"progress"`
	Files      []string `json:"files,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

func requireAssignee(st *ent.Sortie, specialistID string) error {
	if specialistID == "" {
		return faults.Validation("specialist_id", "required")
	}
	if st.AssignedTo == nil || *st.AssignedTo != specialistID {
		return faults.ErrNotAssigned
	}
	return nil
}

func transitionErr(from, to sortie.Status) error {
	return faults.Newf(faults.KindPrecondition,
		"sortie cannot transition from %s to %s", from, to)
}
