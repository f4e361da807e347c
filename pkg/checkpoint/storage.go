package checkpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// latestPointer is the file name of the per-mission latest pointer.
const latestPointer = "latest.json"

// writeDocument persists the JSON file and updates the latest pointer, both
// via temp-file + rename so a crash never leaves a torn document.
func writeDocument(dir string, doc *Document, raw []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create checkpoint dir: %w", err)
	}

	path := filepath.Join(dir, doc.CheckpointID+".json")
	if err := atomicWrite(path, raw); err != nil {
		return err
	}
	return atomicWrite(filepath.Join(dir, latestPointer), raw)
}

func atomicWrite(path string, raw []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".checkpoint-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write checkpoint file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync checkpoint file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close checkpoint file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace checkpoint file: %w", err)
	}
	return nil
}

// readDocument loads one checkpoint file; a missing file returns fs.ErrNotExist.
func readDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("corrupt checkpoint file %s: %w", path, err)
	}
	return &doc, nil
}

// removeDocument deletes a checkpoint file, tolerating its absence.
func removeDocument(dir, checkpointID string) error {
	err := os.Remove(filepath.Join(dir, checkpointID+".json"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove checkpoint file: %w", err)
	}
	return nil
}
