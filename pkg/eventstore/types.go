// Package eventstore implements the append-only fleet event log: global
// sequence assignment, causation/correlation chains, payload validation, and
// ordered reads. Append is the single write path for the whole engine; every
// projection row is derived from rows written here.
package eventstore

import "time"

// Stream types. Every event belongs to exactly one (stream_type, stream_id).
const (
	StreamMission    = "mission"
	StreamSortie     = "sortie"
	StreamSpecialist = "specialist"
	StreamLock       = "lock"
	StreamMailbox    = "mailbox"
	StreamCursor     = "cursor"
	StreamFleet      = "fleet"
)

// Mission lifecycle event types.
const (
	TypeMissionCreated   = "mission_created"
	TypeMissionStarted   = "mission_started"
	TypeMissionReview    = "mission_review_opened"
	TypeMissionCompleted = "mission_completed"
	TypeMissionCancelled = "mission_cancelled"
)

// Sortie lifecycle event types.
const (
	TypeSortieCreated        = "sortie_created"
	TypeSortieAssigned       = "sortie_assigned"
	TypeSortieStarted        = "sortie_started"
	TypeSortieProgressed     = "sortie_progressed"
	TypeSortieBlocked        = "sortie_blocked"
	TypeSortieUnblocked      = "sortie_unblocked"
	TypeSortieCompleted      = "sortie_completed"
	TypeSortieFailed         = "sortie_failed"
	TypeSortieCancelled      = "sortie_cancelled"
	TypeSortieReviewOpened   = "sortie_review_opened"
	TypeSortieReviewApproved = "sortie_review_approved"
	TypeSortieReviewRejected = "sortie_review_rejected"
	TypeSortieRestored       = "sortie_restored"
)

// Specialist presence event types.
const (
	TypeSpecialistSpawned      = "specialist_spawned"
	TypeSpecialistRegistered   = "specialist_registered"
	TypeSpecialistHeartbeat    = "specialist_heartbeat"
	TypeSpecialistStale        = "specialist_stale"
	TypeSpecialistDeregistered = "specialist_deregistered"
)

// File reservation (CTK) event types.
const (
	TypeLockReserved      = "ctk_reserved"
	TypeLockReleased      = "ctk_released"
	TypeLockExpired       = "ctk_expired"
	TypeLockConflict      = "ctk_conflict"
	TypeLockExtended      = "ctk_extended"
	TypeLockForceReleased = "ctk_force_released"
	TypeLockReacquired    = "ctk_reacquired"
)

// Mailbox (squawk) event types.
const (
	TypeSquawkSent          = "squawk_sent"
	TypeSquawkRead          = "squawk_read"
	TypeSquawkAcked         = "squawk_acked"
	TypeSquawkThreadCreated = "squawk_thread_created"
)

// Cursor event types.
const (
	TypeCursorAdvanced = "cursor_advanced"
)

// Fleet-level event types (checkpoints, recovery, compaction, faults).
const (
	TypeFleetCheckpointed  = "fleet_checkpointed"
	TypeFleetRecovered     = "fleet_recovered"
	TypeCheckpointDeleted  = "checkpoint_deleted"
	TypeContextCompacted   = "context_compacted"
	TypeStreamSnapshotted  = "stream_snapshotted"
	TypeEventsArchived     = "events_archived"
	TypeFleetFault         = "fleet_fault"
)

// Envelope is the caller-facing append request. EventID may be pre-set for
// idempotent retries; Append mints one otherwise.
type Envelope struct {
	EventID     string
	EventType   string
	StreamType  string
	StreamID    string
	Payload     Payload
	CausationID string
	Metadata    map[string]any
	OccurredAt  time.Time
}
