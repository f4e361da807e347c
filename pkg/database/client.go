// Package database provides the SQLite store client and migration utilities.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/fleettools/fleetd/ent"
	_ "github.com/mattn/go-sqlite3" // Register sqlite3 driver for database/sql
)

// Config holds store configuration.
type Config struct {
	// Path is the store.db location; ":memory:" opens an in-memory store.
	Path string

	// BusyTimeout is sqlite's busy handler budget for contended writes.
	BusyTimeout time.Duration
}

// Client wraps the Ent client and provides access to the underlying database.
type Client struct {
	*ent.Client
	db   *stdsql.DB
	path string
}

// DB returns the underlying database connection for health checks and
// direct queries.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Path returns the store.db location this client was opened on.
func (c *Client) Path() string {
	return c.path
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{
		Client: entClient,
		db:     db,
	}
}

// NewClient opens the store, enabling WAL mode and foreign keys, and applies
// pending migrations. The parent directory is created if missing.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := stdsql.Open("sqlite3", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// A single writer connection sidesteps SQLITE_BUSY between pool
	// connections; the store serialises appends above this anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := runMigrations(db); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{
		Client: entClient,
		db:     db,
		path:   cfg.Path,
	}, nil
}

// dsn builds the sqlite connection string with WAL journaling, the busy
// timeout, and foreign key enforcement.
func dsn(cfg Config) string {
	busyMS := cfg.BusyTimeout.Milliseconds()
	if busyMS <= 0 {
		busyMS = 5000
	}
	if cfg.Path == ":memory:" {
		return fmt.Sprintf("file::memory:?cache=shared&_fk=1&_busy_timeout=%d", busyMS)
	}
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d&_fk=1&_synchronous=NORMAL",
		url.PathEscape(cfg.Path), busyMS)
}
