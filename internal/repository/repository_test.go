package repository_test

import (
	"context"
	"testing"
	"time"

	"event-partners-api/internal/model"
	"event-partners-api/internal/repository"
	"event-partners-api/internal/testutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type repos struct {
	pool    *pgxpool.Pool
	tx      repository.Transactor
	events  repository.EventRepository
	spots   repository.SpotRepository
	tickets repository.TicketRepository
	history repository.ReservationHistoryRepository
}

func setupRepos(t *testing.T) *repos {
	pool := testutil.NewTestPool(t)
	return &repos{
		pool:    pool,
		tx:      repository.NewTransactor(pool),
		events:  repository.NewEventRepository(pool),
		spots:   repository.NewSpotRepository(pool),
		tickets: repository.NewTicketRepository(pool),
		history: repository.NewReservationHistoryRepository(pool),
	}
}

func createTestEvent(t *testing.T, r *repos, name string, price float64) *model.Event {
	t.Helper()
	event, err := r.events.Create(context.Background(), &model.Event{
		ID:    uuid.New(),
		Name:  name,
		Date:  time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
		Price: price,
	})
	require.NoError(t, err)
	return event
}

func createTestSpot(t *testing.T, r *repos, eventID uuid.UUID, name string) *model.Spot {
	t.Helper()
	spot, err := r.spots.Create(context.Background(), &model.Spot{
		ID:      uuid.New(),
		EventID: eventID,
		Name:    name,
		Status:  model.SpotStatusAvailable,
	})
	require.NoError(t, err)
	return spot
}
