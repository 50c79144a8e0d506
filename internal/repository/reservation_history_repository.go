package repository

import (
	"context"
	"fmt"

	"event-partners-api/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationHistoryRepository interface {
	// Record 以 ticket_id 去重，重複投遞時回傳 false
	Record(ctx context.Context, history *model.ReservationHistory) (bool, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.ReservationHistory, error)
}

type ReservationHistoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReservationHistoryRepository(pool *pgxpool.Pool) ReservationHistoryRepository {
	return &ReservationHistoryRepositoryImpl{
		pool: pool,
	}
}

func (r *ReservationHistoryRepositoryImpl) Record(ctx context.Context, history *model.ReservationHistory) (bool, error) {
	query := `
		INSERT INTO reservation_history (
			ticket_id, event_id, spot_id, ticket_kind, email, status, reserved_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (ticket_id) DO NOTHING
	`

	result, err := conn(ctx, r.pool).Exec(ctx, query,
		history.TicketID, history.EventID, history.SpotID,
		history.TicketKind, history.Email, history.Status, history.ReservedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to record reservation: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *ReservationHistoryRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.ReservationHistory, error) {
	query := `
		SELECT id, ticket_id, event_id, spot_id, ticket_kind, email, status, reserved_at, created_at
		FROM reservation_history
		WHERE event_id = $1
		ORDER BY reserved_at DESC
	`

	rows, err := conn(ctx, r.pool).Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make([]*model.ReservationHistory, 0)
	for rows.Next() {
		var h model.ReservationHistory
		err := rows.Scan(
			&h.ID,
			&h.TicketID,
			&h.EventID,
			&h.SpotID,
			&h.TicketKind,
			&h.Email,
			&h.Status,
			&h.ReservedAt,
			&h.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		histories = append(histories, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return histories, nil
}
