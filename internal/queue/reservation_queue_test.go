package queue_test

import (
	"context"
	"testing"
	"time"

	"event-partners-api/internal/model"
	"event-partners-api/internal/queue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotice() *model.ReservationNotice {
	return &model.ReservationNotice{
		TicketID:   uuid.New(),
		EventID:    uuid.New(),
		SpotID:     uuid.New(),
		TicketKind: model.TicketKindHalf,
		Email:      "fan@example.com",
		Status:     model.ReservationStatusReserved,
		ReservedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func receive(t *testing.T, ctx context.Context, ch <-chan queue.Delivery) queue.Delivery {
	t.Helper()
	select {
	case d, ok := <-ch:
		require.True(t, ok, "channel closed")
		return d
	case <-ctx.Done():
		t.Fatal("timeout 未收到訊息")
	}
	return queue.Delivery{}
}

func TestMemoryReservationQueue_Deliver(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryReservationQueue(4)
	notice := newNotice()
	require.NoError(t, q.Publish(ctx, notice))

	ch, err := q.Subscribe(ctx)
	require.NoError(t, err)

	d := receive(t, ctx, ch)
	assert.Equal(t, notice, d.Data)
	d.Ack()
}

func TestMemoryReservationQueue_NackRequeue(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryReservationQueue(1)
	notice := newNotice()
	require.NoError(t, q.Publish(ctx, notice))

	ch, err := q.Subscribe(ctx)
	require.NoError(t, err)

	receive(t, ctx, ch).Nack(true)

	// 放回去的訊息會再收到一次
	d := receive(t, ctx, ch)
	assert.Equal(t, notice.TicketID, d.Data.TicketID)
}

func TestMemoryReservationQueue_PublishRespectsContext(t *testing.T) {
	q := queue.NewMemoryReservationQueue(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := q.Publish(ctx, newNotice())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryReservationQueue_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := queue.NewMemoryReservationQueue(1)

	ch, err := q.Subscribe(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel 未關閉")
	}
}
