package repository

import (
	"context"
	"errors"
	"fmt"

	"event-partners-api/internal/model"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	FindByID(ctx context.Context, eventID, ticketID uuid.UUID) (*model.Ticket, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.Ticket, error)

	// Transaction methods
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `id, event_id, spot_id, spot_name, code, ticket_kind, email, price, created_at`

func scanTicket(row pgx.Row, ticket *model.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.SpotID,
		&ticket.SpotName,
		&ticket.Code,
		&ticket.Kind,
		&ticket.Email,
		&ticket.Price,
		&ticket.CreatedAt,
	)
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets (id, event_id, spot_id, spot_name, code, ticket_kind, email, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + ticketColumns

	err := scanTicket(conn(ctx, r.pool).QueryRow(ctx, query,
		ticket.ID, ticket.EventID, ticket.SpotID, ticket.SpotName,
		ticket.Code, ticket.Kind, ticket.Email, ticket.Price,
	), ticket)
	if err != nil {
		// 同一座位只能有一張票
		if isUniqueViolation(err) {
			return nil, apperrors.ErrSpotAlreadyReserved
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, eventID, ticketID uuid.UUID) (*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE id = $1 AND event_id = $2
	`

	var ticket model.Ticket
	err := scanTicket(conn(ctx, r.pool).QueryRow(ctx, query, ticketID, eventID), &ticket)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE event_id = $1
		ORDER BY created_at, spot_name
	`

	rows, err := conn(ctx, r.pool).Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		var ticket model.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tickets, nil
}
