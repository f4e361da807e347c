package eventstore

import (
	"encoding/json"
	"fmt"

	"github.com/fleettools/fleetd/pkg/faults"
)

// Payload is the closed union of event payloads. Each event type has exactly
// one payload struct; Append validates the payload against its type before
// anything is written. Historical events whose types are no longer in the
// union replay as opaque data with no projection effect.
type Payload interface {
	// Validate checks payload-internal invariants (not cross-row state).
	Validate() error
}

// encode converts a payload to the generic map stored in the data column.
func encode(p Payload) (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to round-trip payload: %w", err)
	}
	return m, nil
}

// Decode unmarshals a stored data map into a typed struct (a payload struct
// or any projection-side view of one).
func Decode(data map[string]any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to re-marshal event data: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode event data: %w", err)
	}
	return nil
}

// knownTypes maps every event type in the closed union to its payload kind.
// Append rejects types outside this map.
var knownTypes = map[string]func() Payload{
	TypeMissionCreated:   func() Payload { return &MissionCreated{} },
	TypeMissionStarted:   func() Payload { return &MissionStatusChanged{} },
	TypeMissionReview:    func() Payload { return &MissionStatusChanged{} },
	TypeMissionCompleted: func() Payload { return &MissionStatusChanged{} },
	TypeMissionCancelled: func() Payload { return &MissionStatusChanged{} },

	TypeSortieCreated:        func() Payload { return &SortieCreated{} },
	TypeSortieAssigned:       func() Payload { return &SortieAssigned{} },
	TypeSortieStarted:        func() Payload { return &SortieStarted{} },
	TypeSortieProgressed:     func() Payload { return &SortieProgressed{} },
	TypeSortieBlocked:        func() Payload { return &SortieBlocked{} },
	TypeSortieUnblocked:      func() Payload { return &SortieUnblocked{} },
	TypeSortieCompleted:      func() Payload { return &SortieCompleted{} },
	TypeSortieFailed:         func() Payload { return &SortieTerminated{} },
	TypeSortieCancelled:      func() Payload { return &SortieTerminated{} },
	TypeSortieReviewOpened:   func() Payload { return &SortieReview{} },
	TypeSortieReviewApproved: func() Payload { return &SortieReview{} },
	TypeSortieReviewRejected: func() Payload { return &SortieReview{} },
	TypeSortieRestored:       func() Payload { return &SortieRestored{} },

	TypeSpecialistSpawned:      func() Payload { return &SpecialistSpawned{} },
	TypeSpecialistRegistered:   func() Payload { return &SpecialistRegistered{} },
	TypeSpecialistHeartbeat:    func() Payload { return &SpecialistHeartbeat{} },
	TypeSpecialistStale:        func() Payload { return &SpecialistStale{} },
	TypeSpecialistDeregistered: func() Payload { return &SpecialistDeregistered{} },

	TypeLockReserved:      func() Payload { return &LockReserved{} },
	TypeLockReleased:      func() Payload { return &LockReleased{} },
	TypeLockExpired:       func() Payload { return &LockExpired{} },
	TypeLockConflict:      func() Payload { return &LockConflict{} },
	TypeLockExtended:      func() Payload { return &LockExtended{} },
	TypeLockForceReleased: func() Payload { return &LockForceReleased{} },
	TypeLockReacquired:    func() Payload { return &LockReacquired{} },

	TypeSquawkSent:          func() Payload { return &SquawkSent{} },
	TypeSquawkRead:          func() Payload { return &SquawkRead{} },
	TypeSquawkAcked:         func() Payload { return &SquawkAcked{} },
	TypeSquawkThreadCreated: func() Payload { return &SquawkThreadCreated{} },

	TypeCursorAdvanced: func() Payload { return &CursorAdvanced{} },

	TypeFleetCheckpointed: func() Payload { return &FleetCheckpointed{} },
	TypeFleetRecovered:    func() Payload { return &FleetRecovered{} },
	TypeCheckpointDeleted: func() Payload { return &CheckpointDeleted{} },
	TypeContextCompacted:  func() Payload { return &ContextCompacted{} },
	TypeStreamSnapshotted: func() Payload { return &StreamSnapshotted{} },
	TypeEventsArchived:    func() Payload { return &EventsArchived{} },
	TypeFleetFault:        func() Payload { return &FleetFault{} },
}

// NewPayload instantiates the typed payload for eventType and decodes data
// into it, so callers holding raw JSON (the API append surface) go through
// the same per-type validation as in-process producers.
func NewPayload(eventType string, data map[string]any) (Payload, error) {
	ctor, ok := knownTypes[eventType]
	if !ok {
		return nil, faults.Validation("event_type", fmt.Sprintf("unknown event type %q", eventType))
	}
	p := ctor()
	if err := Decode(data, p); err != nil {
		return nil, faults.Wrap(faults.KindValidation, "malformed payload", err)
	}
	return p, nil
}

// KnownType reports whether eventType is part of the closed union.
func KnownType(eventType string) bool {
	_, ok := knownTypes[eventType]
	return ok
}

// --- Mission payloads ---

// MissionCreated is appended when a mission enters the fleet.
type MissionCreated struct {
	MissionID   string `json:"mission_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Strategy    string `json:"strategy,omitempty"`
}

func (p *MissionCreated) Validate() error {
	if p.MissionID == "" {
		return faults.Validation("mission_id", "required")
	}
	if p.Title == "" {
		return faults.Validation("title", "required")
	}
	return nil
}

// MissionStatusChanged covers mission_started, mission_review_opened,
// mission_completed and mission_cancelled.
type MissionStatusChanged struct {
	MissionID string `json:"mission_id"`
	Reason    string `json:"reason,omitempty"`
}

func (p *MissionStatusChanged) Validate() error {
	if p.MissionID == "" {
		return faults.Validation("mission_id", "required")
	}
	return nil
}

// --- Sortie payloads ---

// SortieCreated is appended when the planner adds a sortie to a mission.
type SortieCreated struct {
	SortieID     string   `json:"sortie_id"`
	MissionID    string   `json:"mission_id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Priority     string   `json:"priority,omitempty"`
	Files        []string `json:"files,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	AssignedTo   string   `json:"assigned_to,omitempty"`
}

func (p *SortieCreated) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	if p.Title == "" {
		return faults.Validation("title", "required")
	}
	return nil
}

// SortieAssigned binds a sortie to a specialist.
type SortieAssigned struct {
	SortieID     string `json:"sortie_id"`
	SpecialistID string `json:"specialist_id"`
}

func (p *SortieAssigned) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	if p.SpecialistID == "" {
		return faults.Validation("specialist_id", "required")
	}
	return nil
}

// SortieStarted marks the assignee beginning work.
type SortieStarted struct {
	SortieID     string `json:"sortie_id"`
	SpecialistID string `json:"specialist_id"`
}

func (p *SortieStarted) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	if p.SpecialistID == "" {
		return faults.Validation("specialist_id", "required")
	}
	return nil
}

// SortieProgressed records a progress update within an in_progress episode.
type SortieProgressed struct {
	SortieID     string `json:"sortie_id"`
	SpecialistID string `json:"specialist_id"`
	Progress     int    `json:"progress"`
	Note         string `json:"note,omitempty"`
}

func (p *SortieProgressed) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	if p.Progress < 0 || p.Progress > 100 {
		return faults.Validation("progress", "must be within [0,100]")
	}
	return nil
}

// Blocker categories.
const (
	BlockDependency    = "dependency"
	BlockFileConflict  = "file_conflict"
	BlockError         = "error"
	BlockClarification = "clarification"
)

// SortieBlocked records a blocker with its category and subject.
type SortieBlocked struct {
	SortieID  string `json:"sortie_id"`
	Reason    string `json:"reason"`
	Category  string `json:"category"`
	BlockedBy string `json:"blocked_by,omitempty"`
}

func (p *SortieBlocked) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	if p.Reason == "" {
		return faults.Validation("reason", "required")
	}
	switch p.Category {
	case BlockDependency, BlockFileConflict, BlockError, BlockClarification:
		return nil
	default:
		return faults.Validation("category",
			"must be dependency, file_conflict, error or clarification")
	}
}

// SortieUnblocked clears a blocker.
type SortieUnblocked struct {
	SortieID   string `json:"sortie_id"`
	Resolution string `json:"resolution,omitempty"`
}

func (p *SortieUnblocked) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	return nil
}

// SortieCompleted records the assignee's completion report. TestsPassed must
// be true for the append to be accepted.
type SortieCompleted struct {
	SortieID     string   `json:"sortie_id"`
	SpecialistID string   `json:"specialist_id"`
	Summary      string   `json:"summary,omitempty"`
	Files        []string `json:"files,omitempty"`
	TestsPassed  bool     `json:"tests_passed"`
}

func (p *SortieCompleted) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	if !p.TestsPassed {
		return faults.Validation("tests_passed", "completion requires passing tests")
	}
	return nil
}

// SortieTerminated covers sortie_failed and sortie_cancelled.
type SortieTerminated struct {
	SortieID string `json:"sortie_id"`
	Reason   string `json:"reason,omitempty"`
}

func (p *SortieTerminated) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	return nil
}

// SortieReview covers review open, approve and reject. Feedback is required
// on reject, where it accompanies the progress reset.
type SortieReview struct {
	SortieID string `json:"sortie_id"`
	Reviewer string `json:"reviewer,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

func (p *SortieReview) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	return nil
}

// SortieRestored resets a sortie row to a checkpoint snapshot during recovery.
type SortieRestored struct {
	SortieID   string   `json:"sortie_id"`
	Status     string   `json:"status"`
	AssignedTo string   `json:"assigned_to,omitempty"`
	Progress   int      `json:"progress"`
	Files      []string `json:"files,omitempty"`
}

func (p *SortieRestored) Validate() error {
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	if p.Status == "" {
		return faults.Validation("status", "required")
	}
	return nil
}

// --- Specialist payloads ---

// SpecialistSpawned is emitted by the scheduler for each ready sortie.
type SpecialistSpawned struct {
	SpecialistID string `json:"specialist_id"`
	SortieID     string `json:"sortie_id"`
	MissionID    string `json:"mission_id,omitempty"`
}

func (p *SpecialistSpawned) Validate() error {
	if p.SpecialistID == "" {
		return faults.Validation("specialist_id", "required")
	}
	if p.SortieID == "" {
		return faults.Validation("sortie_id", "required")
	}
	return nil
}

// SpecialistRegistered is the worker's side of the handshake.
type SpecialistRegistered struct {
	SpecialistID string   `json:"specialist_id"`
	Name         string   `json:"name,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	SortieID     string   `json:"sortie_id,omitempty"`
	MissionID    string   `json:"mission_id,omitempty"`
}

func (p *SpecialistRegistered) Validate() error {
	if p.SpecialistID == "" {
		return faults.Validation("specialist_id", "required")
	}
	return nil
}

// SpecialistHeartbeat refreshes last_seen and optionally the status.
type SpecialistHeartbeat struct {
	SpecialistID string `json:"specialist_id"`
	Status       string `json:"status,omitempty"`
}

func (p *SpecialistHeartbeat) Validate() error {
	if p.SpecialistID == "" {
		return faults.Validation("specialist_id", "required")
	}
	return nil
}

// SpecialistStale is emitted by the liveness sweep.
type SpecialistStale struct {
	SpecialistID string `json:"specialist_id"`
	LastSeen     string `json:"last_seen,omitempty"`
}

func (p *SpecialistStale) Validate() error {
	if p.SpecialistID == "" {
		return faults.Validation("specialist_id", "required")
	}
	return nil
}

// SpecialistDeregistered removes a worker from the fleet.
type SpecialistDeregistered struct {
	SpecialistID string `json:"specialist_id"`
	Reason       string `json:"reason,omitempty"`
}

func (p *SpecialistDeregistered) Validate() error {
	if p.SpecialistID == "" {
		return faults.Validation("specialist_id", "required")
	}
	return nil
}

// --- Lock payloads ---

// Lock purposes.
const (
	PurposeEdit   = "edit"
	PurposeRead   = "read"
	PurposeDelete = "delete"
)

// LockReserved creates an active reservation.
type LockReserved struct {
	LockID         string `json:"lock_id"`
	File           string `json:"file"`
	NormalizedPath string `json:"normalized_path"`
	ReservedBy     string `json:"reserved_by"`
	ExpiresAt      string `json:"expires_at"`
	Purpose        string `json:"purpose,omitempty"`
	Checksum       string `json:"checksum,omitempty"`
	OriginalLockID string `json:"original_lock_id,omitempty"`
}

func (p *LockReserved) Validate() error {
	if p.LockID == "" {
		return faults.Validation("lock_id", "required")
	}
	if p.NormalizedPath == "" {
		return faults.Validation("normalized_path", "required")
	}
	if p.ReservedBy == "" {
		return faults.Validation("reserved_by", "required")
	}
	switch p.Purpose {
	case "", PurposeEdit, PurposeRead, PurposeDelete:
	default:
		return faults.Validation("purpose", "must be edit, read or delete")
	}
	return nil
}

// LockReleased is an owner-scoped release.
type LockReleased struct {
	LockID     string `json:"lock_id"`
	ReleasedBy string `json:"released_by"`
}

func (p *LockReleased) Validate() error {
	if p.LockID == "" {
		return faults.Validation("lock_id", "required")
	}
	return nil
}

// LockExpired marks a reservation past its expires_at.
type LockExpired struct {
	LockID string `json:"lock_id"`
}

func (p *LockExpired) Validate() error {
	if p.LockID == "" {
		return faults.Validation("lock_id", "required")
	}
	return nil
}

// LockConflict records a rejected acquire against an active reservation.
type LockConflict struct {
	LockID         string `json:"lock_id"`
	NormalizedPath string `json:"normalized_path"`
	RequestedBy    string `json:"requested_by"`
	HeldBy         string `json:"held_by"`
}

func (p *LockConflict) Validate() error {
	if p.NormalizedPath == "" {
		return faults.Validation("normalized_path", "required")
	}
	return nil
}

// LockExtended pushes expires_at forward.
type LockExtended struct {
	LockID    string `json:"lock_id"`
	ExpiresAt string `json:"expires_at"`
}

func (p *LockExtended) Validate() error {
	if p.LockID == "" {
		return faults.Validation("lock_id", "required")
	}
	if p.ExpiresAt == "" {
		return faults.Validation("expires_at", "required")
	}
	return nil
}

// LockForceReleased bypasses ownership with a recorded reason.
type LockForceReleased struct {
	LockID string `json:"lock_id"`
	Reason string `json:"reason"`
}

func (p *LockForceReleased) Validate() error {
	if p.LockID == "" {
		return faults.Validation("lock_id", "required")
	}
	if p.Reason == "" {
		return faults.Validation("reason", "required")
	}
	return nil
}

// LockReacquired records a recovery-time re-acquisition (new lock id; the
// original rides along in metadata).
type LockReacquired struct {
	LockID         string `json:"lock_id"`
	OriginalLockID string `json:"original_lock_id"`
	NormalizedPath string `json:"normalized_path"`
	ReservedBy     string `json:"reserved_by"`
	ExpiresAt      string `json:"expires_at"`
}

func (p *LockReacquired) Validate() error {
	if p.LockID == "" {
		return faults.Validation("lock_id", "required")
	}
	if p.NormalizedPath == "" {
		return faults.Validation("normalized_path", "required")
	}
	return nil
}

// --- Mailbox payloads ---

// SquawkSent appends one message to a mailbox.
type SquawkSent struct {
	MessageID string         `json:"message_id"`
	MailboxID string         `json:"mailbox_id"`
	SenderID  string         `json:"sender_id,omitempty"`
	ThreadID  string         `json:"thread_id,omitempty"`
	Type      string         `json:"type"`
	Content   map[string]any `json:"content"`
	Priority  string         `json:"priority,omitempty"`
}

func (p *SquawkSent) Validate() error {
	if p.MessageID == "" {
		return faults.Validation("message_id", "required")
	}
	if p.MailboxID == "" {
		return faults.Validation("mailbox_id", "required")
	}
	if p.Type == "" {
		return faults.Validation("type", "required")
	}
	return nil
}

// SquawkRead marks a message read by a consumer.
type SquawkRead struct {
	MessageID string `json:"message_id"`
	ReaderID  string `json:"reader_id"`
}

func (p *SquawkRead) Validate() error {
	if p.MessageID == "" {
		return faults.Validation("message_id", "required")
	}
	return nil
}

// SquawkAcked acknowledges a message, optionally attaching a response.
type SquawkAcked struct {
	MessageID string         `json:"message_id"`
	AckerID   string         `json:"acker_id"`
	Response  map[string]any `json:"response,omitempty"`
}

func (p *SquawkAcked) Validate() error {
	if p.MessageID == "" {
		return faults.Validation("message_id", "required")
	}
	return nil
}

// SquawkThreadCreated opens a conversation thread within a mailbox.
type SquawkThreadCreated struct {
	ThreadID  string `json:"thread_id"`
	MailboxID string `json:"mailbox_id"`
	Subject   string `json:"subject,omitempty"`
}

func (p *SquawkThreadCreated) Validate() error {
	if p.ThreadID == "" {
		return faults.Validation("thread_id", "required")
	}
	if p.MailboxID == "" {
		return faults.Validation("mailbox_id", "required")
	}
	return nil
}

// --- Cursor payloads ---

// CursorAdvanced moves a consumer's stream position forward.
type CursorAdvanced struct {
	StreamType string `json:"stream_type"`
	StreamID   string `json:"stream_id"`
	ConsumerID string `json:"consumer_id"`
	Position   int64  `json:"position"`
}

func (p *CursorAdvanced) Validate() error {
	if p.StreamType == "" {
		return faults.Validation("stream_type", "required")
	}
	if p.ConsumerID == "" {
		return faults.Validation("consumer_id", "required")
	}
	if p.Position < 0 {
		return faults.Validation("position", "must be non-negative")
	}
	return nil
}

// --- Fleet payloads ---

// Checkpoint triggers.
const (
	TriggerProgress   = "progress"
	TriggerError      = "error"
	TriggerManual     = "manual"
	TriggerCompaction = "compaction"
)

// FleetCheckpointed records a durable checkpoint of a mission.
type FleetCheckpointed struct {
	CheckpointID    string `json:"checkpoint_id"`
	MissionID       string `json:"mission_id"`
	Trigger         string `json:"trigger"`
	ProgressPercent int    `json:"progress_percent"`
	SortieCount     int    `json:"sortie_count"`
	LockCount       int    `json:"lock_count"`
	MessageCount    int    `json:"message_count"`
	SizeBytes       int64  `json:"size_bytes"`
}

func (p *FleetCheckpointed) Validate() error {
	if p.CheckpointID == "" {
		return faults.Validation("checkpoint_id", "required")
	}
	if p.MissionID == "" {
		return faults.Validation("mission_id", "required")
	}
	switch p.Trigger {
	case TriggerProgress, TriggerError, TriggerManual, TriggerCompaction:
		return nil
	default:
		return faults.Validation("trigger", "must be progress, error, manual or compaction")
	}
}

// FleetRecovered records a completed recovery with its counts and duration.
type FleetRecovered struct {
	CheckpointID     string `json:"checkpoint_id"`
	MissionID        string `json:"mission_id"`
	SortiesRestored  int    `json:"sorties_restored"`
	LocksReacquired  int    `json:"locks_reacquired"`
	LocksFailed      int    `json:"locks_failed"`
	MessagesRequeued int    `json:"messages_requeued"`
	DurationMS       int64  `json:"duration_ms"`
	AlreadyRecovered bool   `json:"already_recovered,omitempty"`
}

func (p *FleetRecovered) Validate() error {
	if p.CheckpointID == "" {
		return faults.Validation("checkpoint_id", "required")
	}
	if p.MissionID == "" {
		return faults.Validation("mission_id", "required")
	}
	return nil
}

// CheckpointDeleted records retention pruning of a checkpoint.
type CheckpointDeleted struct {
	CheckpointID string `json:"checkpoint_id"`
	MissionID    string `json:"mission_id"`
	Reason       string `json:"reason,omitempty"`
}

func (p *CheckpointDeleted) Validate() error {
	if p.CheckpointID == "" {
		return faults.Validation("checkpoint_id", "required")
	}
	return nil
}

// ContextCompacted is emitted when startup detection finds an interrupted
// in-progress mission with a resumable checkpoint.
type ContextCompacted struct {
	MissionID    string `json:"mission_id"`
	CheckpointID string `json:"checkpoint_id"`
	IdleMS       int64  `json:"idle_ms"`
}

func (p *ContextCompacted) Validate() error {
	if p.MissionID == "" {
		return faults.Validation("mission_id", "required")
	}
	return nil
}

// StreamSnapshotted records a projection rollup of a stream.
type StreamSnapshotted struct {
	StreamType   string `json:"stream_type"`
	StreamID     string `json:"stream_id"`
	FromSequence int64  `json:"from_sequence"`
	ToSequence   int64  `json:"to_sequence"`
}

func (p *StreamSnapshotted) Validate() error {
	if p.StreamType == "" {
		return faults.Validation("stream_type", "required")
	}
	if p.ToSequence < p.FromSequence {
		return faults.Validation("to_sequence", "must be >= from_sequence")
	}
	return nil
}

// EventsArchived records movement of an event range into the archive.
type EventsArchived struct {
	StreamType   string `json:"stream_type"`
	StreamID     string `json:"stream_id"`
	FromSequence int64  `json:"from_sequence"`
	ToSequence   int64  `json:"to_sequence"`
	Count        int    `json:"count"`
}

func (p *EventsArchived) Validate() error {
	if p.StreamType == "" {
		return faults.Validation("stream_type", "required")
	}
	if p.Count < 0 {
		return faults.Validation("count", "must be non-negative")
	}
	return nil
}

// FleetFault isolates a fatal failure to its stream; other missions remain
// operable.
type FleetFault struct {
	StreamType string `json:"stream_type"`
	StreamID   string `json:"stream_id"`
	Message    string `json:"message"`
}

func (p *FleetFault) Validate() error {
	if p.Message == "" {
		return faults.Validation("message", "required")
	}
	return nil
}
