// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ArchivedEvent is the predicate function for archivedevent builders.
type ArchivedEvent func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Cursor is the predicate function for cursor builders.
type Cursor func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// FileLock is the predicate function for filelock builders.
type FileLock func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Mission is the predicate function for mission builders.
type Mission func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// Sortie is the predicate function for sortie builders.
type Sortie func(*sql.Selector)

// Specialist is the predicate function for specialist builders.
type Specialist func(*sql.Selector)
