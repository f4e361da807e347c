// Package config loads and validates fleetd configuration from fleet.yaml
// and the environment.
package config

import (
	"time"
)

// Config is the fully resolved configuration handed to every component.
// Construct it once at process start via Initialize; there are no ambient
// config singletons.
type Config struct {
	// StateDir is the root of persisted state. Empty means the OS-specific
	// user data directory (resolved by Initialize).
	StateDir string `yaml:"state_dir"`

	// ProjectPath is the absolute path of the coordinated project; its hash
	// namespaces the store under StateDir.
	ProjectPath string `yaml:"project_path"`

	Store      StoreConfig      `yaml:"store"`
	Liveness   LivenessConfig   `yaml:"liveness"`
	Locks      LockConfig       `yaml:"locks"`
	Dispatch   DispatchConfig   `yaml:"dispatch"`
	Checkpoint CheckpointConfig `yaml:"checkpoint"`
	Compaction CompactionConfig `yaml:"compaction"`
}

// StoreConfig controls the event store.
type StoreConfig struct {
	// AppendBusyTimeout bounds waiting on store contention during append.
	AppendBusyTimeout time.Duration `yaml:"append_busy_timeout"`
}

// LivenessConfig controls specialist staleness detection.
type LivenessConfig struct {
	// StaleThreshold is the specialist liveness cutoff.
	StaleThreshold time.Duration `yaml:"stale_threshold"`

	// HeartbeatCheck is the staleness sweep interval.
	HeartbeatCheck time.Duration `yaml:"heartbeat_check"`
}

// LockConfig controls file reservations.
type LockConfig struct {
	// SweepInterval is the expired-lock sweep interval.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// DefaultTimeout is applied when acquire omits timeout_ms.
	DefaultTimeout time.Duration `yaml:"default_timeout"`

	// MaxTimeout caps caller-supplied acquire timeouts.
	MaxTimeout time.Duration `yaml:"max_timeout"`
}

// DispatchConfig controls the scheduler.
type DispatchConfig struct {
	// BlockerTimeout is how long a blocker may persist before escalation.
	BlockerTimeout time.Duration `yaml:"blocker_timeout"`

	// TickInterval bounds how often the scheduler re-evaluates ready sets
	// outside of event-driven ticks.
	TickInterval time.Duration `yaml:"tick_interval"`
}

// CheckpointConfig controls checkpoint creation, size and retention.
type CheckpointConfig struct {
	// ProgressThresholds are the mission progress milestones (percent) that
	// trigger a checkpoint on first crossing.
	ProgressThresholds []int `yaml:"progress_thresholds"`

	// MinKeep is the retention floor per mission.
	MinKeep int `yaml:"min_keep"`

	// RetentionDays is the normal checkpoint retention.
	RetentionDays int `yaml:"retention_days"`

	// CompletedRetentionDays is the retention after mission completion.
	CompletedRetentionDays int `yaml:"completed_retention_days"`

	// MaxBytes rejects oversized checkpoints; WarnBytes only logs.
	MaxBytes  int64 `yaml:"max_bytes"`
	WarnBytes int64 `yaml:"warn_bytes"`

	// ActivityThreshold is the idle time after which an in-progress mission
	// is considered compacted on startup.
	ActivityThreshold time.Duration `yaml:"activity_threshold"`
}

// CompactionConfig controls event archival.
type CompactionConfig struct {
	// ThresholdEvents triggers stream compaction by event count.
	ThresholdEvents int `yaml:"threshold_events"`

	// AgeDays triggers stream compaction by oldest-event age.
	AgeDays int `yaml:"age_days"`

	// Interval is how often the compaction loop runs.
	Interval time.Duration `yaml:"interval"`
}

// defaultConfig returns the built-in defaults from the coordination contract.
func defaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			AppendBusyTimeout: 5 * time.Second,
		},
		Liveness: LivenessConfig{
			StaleThreshold: 5 * time.Minute,
			HeartbeatCheck: 30 * time.Second,
		},
		Locks: LockConfig{
			SweepInterval:  30 * time.Second,
			DefaultTimeout: 30 * time.Second,
			MaxTimeout:     time.Hour,
		},
		Dispatch: DispatchConfig{
			BlockerTimeout: 15 * time.Minute,
			TickInterval:   5 * time.Second,
		},
		Checkpoint: CheckpointConfig{
			ProgressThresholds:     []int{25, 50, 75},
			MinKeep:                3,
			RetentionDays:          7,
			CompletedRetentionDays: 30,
			MaxBytes:               10 * 1024 * 1024,
			WarnBytes:              1024 * 1024,
			ActivityThreshold:      5 * time.Minute,
		},
		Compaction: CompactionConfig{
			ThresholdEvents: 10_000,
			AgeDays:         7,
			Interval:        24 * time.Hour,
		},
	}
}
