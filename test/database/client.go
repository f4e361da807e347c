// Package database provides the shared test store helper.
package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/pkg/database"
)

// NewTestClient opens a fresh store under t.TempDir() with migrations
// applied. The store is closed automatically when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	client, err := database.NewClient(context.Background(), database.Config{
		Path:        filepath.Join(t.TempDir(), "store.db"),
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
