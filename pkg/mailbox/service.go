// Package mailbox implements FIFO message delivery between specialists and
// dispatch, plus per-consumer stream cursors. Delivery order within a mailbox
// equals the append order of the underlying squawk_sent events.
package mailbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/cursor"
	"github.com/fleettools/fleetd/ent/message"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
)

// Service is the mailbox and cursor manager.
type Service struct {
	store  *eventstore.Store
	client *ent.Client
}

// NewService creates a mailbox service.
func NewService(store *eventstore.Store, client *ent.Client) *Service {
	return &Service{store: store, client: client}
}

// Outgoing is one message to append.
type Outgoing struct {
	MessageID string // optional; supplied ids make re-queues idempotent
	SenderID  string
	ThreadID  string
	Type      string
	Content   map[string]any
	Priority  string
}

// Append appends messages to a mailbox and returns the inserted count.
// Messages whose ids already exist are skipped, which makes recovery
// re-queues idempotent.
func (s *Service) Append(ctx context.Context, mailboxID string, msgs []Outgoing) (int, error) {
	if mailboxID == "" {
		return 0, faults.Validation("mailbox_id", "required")
	}

	inserted := 0
	for _, m := range msgs {
		messageID := m.MessageID
		if messageID == "" {
			messageID = ids.NewMessage()
		} else {
			exists, err := s.client.Message.Query().
				Where(message.ID(messageID)).
				Exist(ctx)
			if err != nil {
				return inserted, fmt.Errorf("failed to check message id: %w", err)
			}
			if exists {
				continue
			}
		}

		_, err := s.store.Append(ctx, eventstore.Envelope{
			EventType:  eventstore.TypeSquawkSent,
			StreamType: eventstore.StreamMailbox,
			StreamID:   mailboxID,
			Payload: &eventstore.SquawkSent{
				MessageID: messageID,
				MailboxID: mailboxID,
				SenderID:  m.SenderID,
				ThreadID:  m.ThreadID,
				Type:      m.Type,
				Content:   m.Content,
				Priority:  m.Priority,
			},
		})
		if err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// Read returns messages in a mailbox after the given sequence number, in
// append order. Reads never mutate the log. limit <= 0 means no limit.
func (s *Service) Read(ctx context.Context, mailboxID string, afterSequence int64, limit int) ([]*ent.Message, error) {
	q := s.client.Message.Query().
		Where(
			message.MailboxID(mailboxID),
			message.SequenceNumberGT(afterSequence),
		).
		Order(ent.Asc(message.FieldSequenceNumber))
	if limit > 0 {
		q.Limit(limit)
	}
	msgs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read mailbox: %w", err)
	}
	return msgs, nil
}

// Pending returns undelivered messages across all mailboxes, for checkpoint
// assembly.
func (s *Service) Pending(ctx context.Context) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.StatusEQ(message.StatusPending)).
		Order(ent.Asc(message.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending messages: %w", err)
	}
	return msgs, nil
}

// MarkRead records a read receipt.
func (s *Service) MarkRead(ctx context.Context, messageID, readerID string) (*ent.Message, error) {
	msg, err := s.get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.Status != message.StatusPending {
		return msg, nil
	}
	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSquawkRead,
		StreamType: eventstore.StreamMailbox,
		StreamID:   msg.MailboxID,
		Payload:    &eventstore.SquawkRead{MessageID: messageID, ReaderID: readerID},
	})
	if err != nil {
		return nil, err
	}
	return s.get(ctx, messageID)
}

// Ack acknowledges a message, optionally attaching a response payload.
func (s *Service) Ack(ctx context.Context, messageID, ackerID string, response map[string]any) (*ent.Message, error) {
	msg, err := s.get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.Status == message.StatusAcked {
		return msg, nil
	}
	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSquawkAcked,
		StreamType: eventstore.StreamMailbox,
		StreamID:   msg.MailboxID,
		Payload:    &eventstore.SquawkAcked{MessageID: messageID, AckerID: ackerID, Response: response},
	})
	if err != nil {
		return nil, err
	}
	return s.get(ctx, messageID)
}

// CreateThread opens a conversation thread within a mailbox.
func (s *Service) CreateThread(ctx context.Context, mailboxID, subject string) (string, error) {
	if mailboxID == "" {
		return "", faults.Validation("mailbox_id", "required")
	}
	threadID := ids.NewThread()
	_, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSquawkThreadCreated,
		StreamType: eventstore.StreamMailbox,
		StreamID:   mailboxID,
		Payload: &eventstore.SquawkThreadCreated{
			ThreadID:  threadID,
			MailboxID: mailboxID,
			Subject:   subject,
		},
	})
	if err != nil {
		return "", err
	}
	return threadID, nil
}

func (s *Service) get(ctx context.Context, messageID string) (*ent.Message, error) {
	msg, err := s.client.Message.Get(ctx, messageID)
	if ent.IsNotFound(err) {
		return nil, faults.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load message: %w", err)
	}
	return msg, nil
}

// Advance moves a consumer's cursor forward. Moving below the current
// position fails NonMonotonicCursor; equal positions are a no-op re-ack.
func (s *Service) Advance(ctx context.Context, streamType, streamID, consumerID string, position int64) (*ent.Cursor, error) {
	if streamType == "" {
		return nil, faults.Validation("stream_type", "required")
	}
	if consumerID == "" {
		return nil, faults.Validation("consumer_id", "required")
	}
	if position < 0 {
		return nil, faults.Validation("position", "must be non-negative")
	}

	current, err := s.GetCursor(ctx, streamType, streamID, consumerID)
	if err != nil && !errors.Is(err, faults.ErrNotFound) {
		return nil, err
	}
	if current != nil && position < current.Position {
		return nil, faults.ErrNonMonotonicCursor
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeCursorAdvanced,
		StreamType: eventstore.StreamCursor,
		StreamID:   cursorStreamID(streamType, streamID, consumerID),
		Payload: &eventstore.CursorAdvanced{
			StreamType: streamType,
			StreamID:   streamID,
			ConsumerID: consumerID,
			Position:   position,
		},
	})
	if err != nil {
		return nil, err
	}
	return s.GetCursor(ctx, streamType, streamID, consumerID)
}

// GetCursor returns a consumer's current position.
func (s *Service) GetCursor(ctx context.Context, streamType, streamID, consumerID string) (*ent.Cursor, error) {
	cur, err := s.client.Cursor.Query().
		Where(
			cursor.StreamType(streamType),
			cursor.StreamID(streamID),
			cursor.ConsumerID(consumerID),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, faults.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cursor: %w", err)
	}
	return cur, nil
}

func cursorStreamID(streamType, streamID, consumerID string) string {
	return fmt.Sprintf("%s/%s/%s", streamType, streamID, consumerID)
}
