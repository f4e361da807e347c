// Package ids generates the opaque, type-prefixed identifiers used across
// the fleet (msn-, srt-, spc-, chk-, lock-, evt-, msg-).
package ids

import "github.com/google/uuid"

// Prefixes for each entity kind.
const (
	PrefixMission    = "msn-"
	PrefixSortie     = "srt-"
	PrefixSpecialist = "spc-"
	PrefixCheckpoint = "chk-"
	PrefixLock       = "lock-"
	PrefixEvent      = "evt-"
	PrefixMessage    = "msg-"
	PrefixThread     = "thr-"
)

func newID(prefix string) string {
	return prefix + uuid.New().String()
}

// NewMission returns a fresh mission id.
func NewMission() string { return newID(PrefixMission) }

// NewSortie returns a fresh sortie id.
func NewSortie() string { return newID(PrefixSortie) }

// NewSpecialist returns a fresh specialist id.
func NewSpecialist() string { return newID(PrefixSpecialist) }

// NewCheckpoint returns a fresh checkpoint id.
func NewCheckpoint() string { return newID(PrefixCheckpoint) }

// NewLock returns a fresh lock id.
func NewLock() string { return newID(PrefixLock) }

// NewEvent returns a fresh event id.
func NewEvent() string { return newID(PrefixEvent) }

// NewMessage returns a fresh message id.
func NewMessage() string { return newID(PrefixMessage) }

// NewThread returns a fresh thread id.
func NewThread() string { return newID(PrefixThread) }
