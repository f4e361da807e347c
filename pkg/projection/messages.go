package projection

import (
	"context"
	"fmt"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/cursor"
	"github.com/fleettools/fleetd/ent/message"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
)

// applySquawkSent appends one message row. FIFO order within a mailbox comes
// from the event's global sequence number, copied onto the row.
func applySquawkSent(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SquawkSent
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	builder := tx.Message.Create().
		SetID(p.MessageID).
		SetMailboxID(p.MailboxID).
		SetType(p.Type).
		SetContent(p.Content).
		SetStatus(message.StatusPending).
		SetSequenceNumber(evt.SequenceNumber).
		SetCreatedAt(evt.OccurredAt)
	if p.SenderID != "" {
		builder.SetSenderID(p.SenderID)
	}
	if p.ThreadID != "" {
		builder.SetThreadID(p.ThreadID)
	}
	if p.Priority != "" {
		builder.SetPriority(message.Priority(p.Priority))
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return faults.Newf(faults.KindConflict, "message %s already exists", p.MessageID)
		}
		return fmt.Errorf("failed to create message row: %w", err)
	}
	return nil
}

func applySquawkRead(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SquawkRead
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	msg, err := tx.Message.Get(ctx, p.MessageID)
	if ent.IsNotFound(err) {
		return faults.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load message %s: %w", p.MessageID, err)
	}
	// Acked is terminal; a late read receipt must not regress it.
	if msg.Status == message.StatusAcked {
		return nil
	}

	_, err = msg.Update().
		SetStatus(message.StatusRead).
		SetReadAt(evt.OccurredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update message %s: %w", p.MessageID, err)
	}
	return nil
}

func applySquawkAcked(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SquawkAcked
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	upd := tx.Message.UpdateOneID(p.MessageID).
		SetStatus(message.StatusAcked).
		SetAckedAt(evt.OccurredAt)
	if p.Response != nil {
		upd.SetResponse(p.Response)
	}
	_, err := upd.Save(ctx)
	if ent.IsNotFound(err) {
		return faults.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update message %s: %w", p.MessageID, err)
	}
	return nil
}

// applyCursorAdvanced upserts the consumer's position. The service rejects
// backward moves before append; replay keeps the invariant by taking the max.
func applyCursorAdvanced(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.CursorAdvanced
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	existing, err := tx.Cursor.Query().
		Where(
			cursor.StreamType(p.StreamType),
			cursor.StreamID(p.StreamID),
			cursor.ConsumerID(p.ConsumerID),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		_, err := tx.Cursor.Create().
			SetStreamType(p.StreamType).
			SetStreamID(p.StreamID).
			SetConsumerID(p.ConsumerID).
			SetPosition(p.Position).
			SetUpdatedAt(evt.OccurredAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create cursor row: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load cursor: %w", err)
	}

	if p.Position < existing.Position {
		return nil
	}
	_, err = existing.Update().
		SetPosition(p.Position).
		SetUpdatedAt(evt.OccurredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update cursor: %w", err)
	}
	return nil
}
