package config

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

// ProjectHash returns the 12-hex prefix of SHA-256(projectAbsPath) that
// namespaces a project's store under the state dir.
func ProjectHash(projectAbsPath string) string {
	sum := sha256.Sum256([]byte(projectAbsPath))
	return hex.EncodeToString(sum[:])[:12]
}

// StorePath returns the path of the primary store database for the project.
// Layout: <state_dir>/<project_hash>/store.db (WAL sidecar managed by sqlite).
func (c *Config) StorePath() string {
	return filepath.Join(c.StateDir, ProjectHash(c.ProjectPath), "store.db")
}

// CheckpointDir returns the directory holding a mission's checkpoint files.
func (c *Config) CheckpointDir(missionID string) string {
	return filepath.Join(c.StateDir, "checkpoints", missionID)
}

// ArchiveDir returns the directory for archived event segments.
func (c *Config) ArchiveDir() string {
	return filepath.Join(c.StateDir, "archive")
}
