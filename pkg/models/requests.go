// Package models defines the request and response DTOs shared by the API
// layer and the services.
package models

// CreateMissionRequest creates a mission.
type CreateMissionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Strategy    string `json:"strategy,omitempty"`
}

// CreateSortieRequest adds a sortie, optionally under a mission.
type CreateSortieRequest struct {
	MissionID    string   `json:"mission_id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Priority     string   `json:"priority,omitempty"`
	Files        []string `json:"files,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// ProgressRequest reports sortie progress from the assignee.
type ProgressRequest struct {
	SpecialistID string `json:"specialist_id"`
	Progress     int    `json:"progress"`
	Note         string `json:"note,omitempty"`
}

// BlockRequest records a blocker on a sortie.
type BlockRequest struct {
	Reason    string `json:"reason"`
	Category  string `json:"category"`
	BlockedBy string `json:"blocked_by,omitempty"`
}

// CompleteRequest is the assignee's completion report.
type CompleteRequest struct {
	SpecialistID string   `json:"specialist_id"`
	Summary      string   `json:"summary,omitempty"`
	Files        []string `json:"files,omitempty"`
	TestsPassed  bool     `json:"tests_passed"`
}

// ReviewRequest approves or rejects a sortie in review.
type ReviewRequest struct {
	Reviewer string `json:"reviewer,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

// RegisterSpecialistRequest is the worker half of the spawn handshake.
type RegisterSpecialistRequest struct {
	SpecialistID string   `json:"specialist_id"`
	Name         string   `json:"name,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	SortieID     string   `json:"sortie_id,omitempty"`
	MissionID    string   `json:"mission_id,omitempty"`
}

// AcquireLockRequest reserves a file.
type AcquireLockRequest struct {
	File         string `json:"file"`
	SpecialistID string `json:"specialist_id"`
	TimeoutMS    int64  `json:"timeout_ms,omitempty"`
	Purpose      string `json:"purpose,omitempty"`
	Checksum     string `json:"checksum,omitempty"`
}

// SendMessageRequest appends messages to a mailbox.
type SendMessageRequest struct {
	Messages []OutgoingMessage `json:"messages"`
}

// OutgoingMessage is one message in a send request.
type OutgoingMessage struct {
	SenderID string         `json:"sender_id,omitempty"`
	ThreadID string         `json:"thread_id,omitempty"`
	Type     string         `json:"type"`
	Content  map[string]any `json:"content"`
	Priority string         `json:"priority,omitempty"`
}

// AdvanceCursorRequest moves a consumer's position.
type AdvanceCursorRequest struct {
	StreamType string `json:"stream_type"`
	StreamID   string `json:"stream_id"`
	ConsumerID string `json:"consumer_id"`
	Position   int64  `json:"position"`
}

// DecomposeRequest asks the planner to split a task into a sortie DAG.
type DecomposeRequest struct {
	MissionID string `json:"mission_id,omitempty"`
	Task      string `json:"task"`
	Strategy  string `json:"strategy,omitempty"`
	DryRun    bool   `json:"dry_run,omitempty"`
}

// MissionStats summarises a mission's progress for status surfaces.
type MissionStats struct {
	MissionID        string         `json:"mission_id"`
	Status           string         `json:"status"`
	ProgressPercent  int            `json:"progress_percent"`
	TotalSorties     int            `json:"total_sorties"`
	CompletedSorties int            `json:"completed_sorties"`
	ByStatus         map[string]int `json:"by_status"`
	Blockers         []string       `json:"blockers,omitempty"`
	LastActivityAt   string         `json:"last_activity_at,omitempty"`
}
