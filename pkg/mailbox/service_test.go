package mailbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/ent/message"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/projection"
	testdb "github.com/fleettools/fleetd/test/database"
)

func setupMailbox(t *testing.T) *Service {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := eventstore.NewStore(client.Client, projection.NewEngine(client.Client), time.Second)
	return NewService(store, client.Client)
}

func TestService_DeliveryOrderFollowsAppendOrder(t *testing.T) {
	svc := setupMailbox(t)
	ctx := context.Background()

	n, err := svc.Append(ctx, "spc-1", []Outgoing{
		{SenderID: "dispatch", Type: "task_update", Content: map[string]any{"n": 1}},
		{SenderID: "dispatch", Type: "task_update", Content: map[string]any{"n": 2}},
		{SenderID: "spc-2", Type: "question", Content: map[string]any{"n": 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	msgs, err := svc.Read(ctx, "spc-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	for i, msg := range msgs {
		assert.Equal(t, float64(i+1), msg.Content["n"])
		assert.Equal(t, message.StatusPending, msg.Status)
		if i > 0 {
			assert.Greater(t, msg.SequenceNumber, msgs[i-1].SequenceNumber)
		}
	}

	// Reads never consume: a second read sees the same messages.
	again, err := svc.Read(ctx, "spc-1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, again, 3)

	// Windowed read skips past the cursor position.
	tail, err := svc.Read(ctx, "spc-1", msgs[1].SequenceNumber, 0)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, msgs[2].ID, tail[0].ID)
}

func TestService_AppendWithExistingIDIsIdempotent(t *testing.T) {
	svc := setupMailbox(t)
	ctx := context.Background()

	out := Outgoing{MessageID: "msg-fixed", Type: "task_update", Content: map[string]any{"k": "v"}}
	n, err := svc.Append(ctx, "spc-1", []Outgoing{out})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.Append(ctx, "spc-1", []Outgoing{out})
	require.NoError(t, err)
	assert.Zero(t, n)

	msgs, err := svc.Read(ctx, "spc-1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestService_MarkReadAndAck(t *testing.T) {
	svc := setupMailbox(t)
	ctx := context.Background()

	_, err := svc.Append(ctx, "spc-1", []Outgoing{
		{MessageID: "msg-1", Type: "question", Content: map[string]any{}},
	})
	require.NoError(t, err)

	read, err := svc.MarkRead(ctx, "msg-1", "spc-1")
	require.NoError(t, err)
	assert.Equal(t, message.StatusRead, read.Status)

	// Re-reading an already-read message appends nothing.
	again, err := svc.MarkRead(ctx, "msg-1", "spc-1")
	require.NoError(t, err)
	assert.Equal(t, message.StatusRead, again.Status)

	acked, err := svc.Ack(ctx, "msg-1", "spc-1", map[string]any{"answer": "yes"})
	require.NoError(t, err)
	assert.Equal(t, message.StatusAcked, acked.Status)

	// Ack is terminal and idempotent.
	acked, err = svc.Ack(ctx, "msg-1", "spc-1", nil)
	require.NoError(t, err)
	assert.Equal(t, message.StatusAcked, acked.Status)

	_, err = svc.MarkRead(ctx, "msg-missing", "spc-1")
	assert.ErrorIs(t, err, faults.ErrNotFound)
}

func TestService_PendingListsUndeliveredOnly(t *testing.T) {
	svc := setupMailbox(t)
	ctx := context.Background()

	_, err := svc.Append(ctx, "spc-1", []Outgoing{
		{MessageID: "msg-a", Type: "t", Content: map[string]any{}},
		{MessageID: "msg-b", Type: "t", Content: map[string]any{}},
	})
	require.NoError(t, err)
	_, err = svc.MarkRead(ctx, "msg-a", "spc-1")
	require.NoError(t, err)

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "msg-b", pending[0].ID)
}

func TestService_ThreadsGroupConversation(t *testing.T) {
	svc := setupMailbox(t)
	ctx := context.Background()

	threadID, err := svc.CreateThread(ctx, "spc-1", "lock dispute on api.go")
	require.NoError(t, err)
	require.NotEmpty(t, threadID)

	_, err = svc.Append(ctx, "spc-1", []Outgoing{
		{ThreadID: threadID, Type: "question", Content: map[string]any{}},
	})
	require.NoError(t, err)

	msgs, err := svc.Read(ctx, "spc-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].ThreadID)
	assert.Equal(t, threadID, *msgs[0].ThreadID)
}

func TestService_CursorAdvanceIsMonotonic(t *testing.T) {
	svc := setupMailbox(t)
	ctx := context.Background()

	_, err := svc.GetCursor(ctx, "mailbox", "spc-1", "consumer-1")
	assert.ErrorIs(t, err, faults.ErrNotFound)

	cur, err := svc.Advance(ctx, "mailbox", "spc-1", "consumer-1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cur.Position)

	// Equal position is a no-op re-ack.
	cur, err = svc.Advance(ctx, "mailbox", "spc-1", "consumer-1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cur.Position)

	_, err = svc.Advance(ctx, "mailbox", "spc-1", "consumer-1", 3)
	assert.ErrorIs(t, err, faults.ErrNonMonotonicCursor)

	cur, err = svc.Advance(ctx, "mailbox", "spc-1", "consumer-1", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cur.Position)

	// Cursors are scoped per consumer.
	other, err := svc.Advance(ctx, "mailbox", "spc-1", "consumer-2", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other.Position)
}
