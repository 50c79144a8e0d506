package repository_test

import (
	"context"
	"testing"
	"time"

	"event-partners-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationHistoryRepository_Record(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	eventID := uuid.New()

	history := &model.ReservationHistory{
		TicketID:   uuid.New(),
		EventID:    eventID,
		SpotID:     uuid.New(),
		TicketKind: model.TicketKindFull,
		Email:      "fan@example.com",
		Status:     model.ReservationStatusReserved,
		ReservedAt: time.Now().UTC(),
	}

	inserted, err := r.history.Record(ctx, history)
	require.NoError(t, err)
	assert.True(t, inserted)

	// 同一張票重複投遞
	inserted, err = r.history.Record(ctx, history)
	require.NoError(t, err)
	assert.False(t, inserted)

	list, err := r.history.ListByEventID(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, history.TicketID, list[0].TicketID)
}
