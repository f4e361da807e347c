// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fleettools/fleetd/ent/archivedevent"
	"github.com/fleettools/fleetd/ent/checkpoint"
	"github.com/fleettools/fleetd/ent/cursor"
	"github.com/fleettools/fleetd/ent/event"
	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/ent/message"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/schema"
	"github.com/fleettools/fleetd/ent/snapshot"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/ent/specialist"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	archivedeventFields := schema.ArchivedEvent{}.Fields()
	_ = archivedeventFields
	// archivedeventDescSchemaVersion is the schema descriptor for schema_version field.
	archivedeventDescSchemaVersion := archivedeventFields[10].Descriptor()
	// archivedevent.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	archivedevent.DefaultSchemaVersion = archivedeventDescSchemaVersion.Default.(int)
	// archivedeventDescArchivedAt is the schema descriptor for archived_at field.
	archivedeventDescArchivedAt := archivedeventFields[11].Descriptor()
	// archivedevent.DefaultArchivedAt holds the default value on creation for the archived_at field.
	archivedevent.DefaultArchivedAt = archivedeventDescArchivedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescMilestonePercent is the schema descriptor for milestone_percent field.
	checkpointDescMilestonePercent := checkpointFields[4].Descriptor()
	// checkpoint.DefaultMilestonePercent holds the default value on creation for the milestone_percent field.
	checkpoint.DefaultMilestonePercent = checkpointDescMilestonePercent.Default.(int)
	// checkpointDescSchemaVersion is the schema descriptor for schema_version field.
	checkpointDescSchemaVersion := checkpointFields[10].Descriptor()
	// checkpoint.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	checkpoint.DefaultSchemaVersion = checkpointDescSchemaVersion.Default.(int)
	// checkpointDescSizeBytes is the schema descriptor for size_bytes field.
	checkpointDescSizeBytes := checkpointFields[12].Descriptor()
	// checkpoint.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	checkpoint.DefaultSizeBytes = checkpointDescSizeBytes.Default.(int64)
	// checkpointDescLatest is the schema descriptor for latest field.
	checkpointDescLatest := checkpointFields[13].Descriptor()
	// checkpoint.DefaultLatest holds the default value on creation for the latest field.
	checkpoint.DefaultLatest = checkpointDescLatest.Default.(bool)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[14].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	cursorFields := schema.Cursor{}.Fields()
	_ = cursorFields
	// cursorDescPosition is the schema descriptor for position field.
	cursorDescPosition := cursorFields[3].Descriptor()
	// cursor.DefaultPosition holds the default value on creation for the position field.
	cursor.DefaultPosition = cursorDescPosition.Default.(int64)
	// cursorDescUpdatedAt is the schema descriptor for updated_at field.
	cursorDescUpdatedAt := cursorFields[4].Descriptor()
	// cursor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cursor.DefaultUpdatedAt = cursorDescUpdatedAt.Default.(func() time.Time)
	// cursor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cursor.UpdateDefaultUpdatedAt = cursorDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescRecordedAt is the schema descriptor for recorded_at field.
	eventDescRecordedAt := eventFields[10].Descriptor()
	// event.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	event.DefaultRecordedAt = eventDescRecordedAt.Default.(func() time.Time)
	// eventDescSchemaVersion is the schema descriptor for schema_version field.
	eventDescSchemaVersion := eventFields[11].Descriptor()
	// event.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	event.DefaultSchemaVersion = eventDescSchemaVersion.Default.(int)
	filelockFields := schema.FileLock{}.Fields()
	_ = filelockFields
	// filelockDescReservedAt is the schema descriptor for reserved_at field.
	filelockDescReservedAt := filelockFields[4].Descriptor()
	// filelock.DefaultReservedAt holds the default value on creation for the reserved_at field.
	filelock.DefaultReservedAt = filelockDescReservedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[10].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	missionFields := schema.Mission{}.Fields()
	_ = missionFields
	// missionDescTotalSorties is the schema descriptor for total_sorties field.
	missionDescTotalSorties := missionFields[6].Descriptor()
	// mission.DefaultTotalSorties holds the default value on creation for the total_sorties field.
	mission.DefaultTotalSorties = missionDescTotalSorties.Default.(int)
	// missionDescCompletedSorties is the schema descriptor for completed_sorties field.
	missionDescCompletedSorties := missionFields[7].Descriptor()
	// mission.DefaultCompletedSorties holds the default value on creation for the completed_sorties field.
	mission.DefaultCompletedSorties = missionDescCompletedSorties.Default.(int)
	// missionDescCreatedAt is the schema descriptor for created_at field.
	missionDescCreatedAt := missionFields[8].Descriptor()
	// mission.DefaultCreatedAt holds the default value on creation for the created_at field.
	mission.DefaultCreatedAt = missionDescCreatedAt.Default.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescCreatedAt is the schema descriptor for created_at field.
	snapshotDescCreatedAt := snapshotFields[5].Descriptor()
	// snapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	snapshot.DefaultCreatedAt = snapshotDescCreatedAt.Default.(func() time.Time)
	sortieFields := schema.Sortie{}.Fields()
	_ = sortieFields
	// sortieDescProgress is the schema descriptor for progress field.
	sortieDescProgress := sortieFields[7].Descriptor()
	// sortie.DefaultProgress holds the default value on creation for the progress field.
	sortie.DefaultProgress = sortieDescProgress.Default.(int)
	// sortieDescCreatedAt is the schema descriptor for created_at field.
	sortieDescCreatedAt := sortieFields[15].Descriptor()
	// sortie.DefaultCreatedAt holds the default value on creation for the created_at field.
	sortie.DefaultCreatedAt = sortieDescCreatedAt.Default.(func() time.Time)
	specialistFields := schema.Specialist{}.Fields()
	_ = specialistFields
	// specialistDescLastSeen is the schema descriptor for last_seen field.
	specialistDescLastSeen := specialistFields[6].Descriptor()
	// specialist.DefaultLastSeen holds the default value on creation for the last_seen field.
	specialist.DefaultLastSeen = specialistDescLastSeen.Default.(func() time.Time)
	// specialistDescCreatedAt is the schema descriptor for created_at field.
	specialistDescCreatedAt := specialistFields[8].Descriptor()
	// specialist.DefaultCreatedAt holds the default value on creation for the created_at field.
	specialist.DefaultCreatedAt = specialistDescCreatedAt.Default.(func() time.Time)
}
