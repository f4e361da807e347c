// Package checkpoint produces durable mission snapshots and recovers
// interrupted fleets from them. Storage is dual: an ent row in the primary
// store and a JSON document under <state_dir>/checkpoints/, either of which
// alone suffices to recover.
package checkpoint

import (
	"time"

	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/locks"
)

// SchemaVersion of the checkpoint document format.
const SchemaVersion = 1

// Document is the canonical checkpoint content, shared by the row and the
// JSON file.
type Document struct {
	CheckpointID      string                     `json:"checkpoint_id"`
	MissionID         string                     `json:"mission_id"`
	CreatedAt         time.Time                  `json:"created_at"`
	Trigger           string                     `json:"trigger"`
	ProgressPercent   int                        `json:"progress_percent"`
	MilestonePercent  int                        `json:"milestone_percent,omitempty"`
	Sorties           []lifecycle.SortieSnapshot `json:"sorties"`
	ActiveLocks       []locks.Snapshot           `json:"active_locks,omitempty"`
	PendingMessages   []MessageSnapshot          `json:"pending_messages,omitempty"`
	RecoveryContext   RecoveryContext            `json:"recovery_context"`
	CreatedBy         string                     `json:"created_by"`
	SchemaVersion     int                        `json:"schema_version"`
	LastEventSequence int64                      `json:"last_event_sequence"`
}

// MessageSnapshot is an undelivered message captured for re-queueing.
type MessageSnapshot struct {
	MessageID string         `json:"message_id"`
	MailboxID string         `json:"mailbox_id"`
	SenderID  string         `json:"sender_id,omitempty"`
	ThreadID  string         `json:"thread_id,omitempty"`
	Type      string         `json:"type"`
	Content   map[string]any `json:"content"`
	Priority  string         `json:"priority,omitempty"`
}

// RecoveryContext is returned to the caller after recovery for prompt
// injection into a resumed coordinator.
type RecoveryContext struct {
	LastAction        string    `json:"last_action"`
	NextSteps         []string  `json:"next_steps,omitempty"`
	Blockers          []string  `json:"blockers,omitempty"`
	FilesModified     []string  `json:"files_modified,omitempty"`
	MissionSummary    string    `json:"mission_summary"`
	ElapsedTimeMS     int64     `json:"elapsed_time_ms"`
	LastActivityAt    time.Time `json:"last_activity_at"`
	LastEventSequence int64     `json:"last_event_sequence"`
}

// RecoveryReport summarises a completed (or dry-run) recovery.
type RecoveryReport struct {
	CheckpointID     string                 `json:"checkpoint_id"`
	MissionID        string                 `json:"mission_id"`
	DryRun           bool                   `json:"dry_run,omitempty"`
	SortiesRestored  int                    `json:"sorties_restored"`
	LocksReacquired  int                    `json:"locks_reacquired"`
	LocksFailed      int                    `json:"locks_failed"`
	MessagesRequeued int                    `json:"messages_requeued"`
	Blockers         []string               `json:"blockers,omitempty"`
	DurationMS       int64                  `json:"duration_ms"`
	RecoveryContext  RecoveryContext        `json:"recovery_context"`
	LockResults      []locks.ReacquireResult `json:"-"`
}
