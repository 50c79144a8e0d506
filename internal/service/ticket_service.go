package service

import (
	"context"

	"event-partners-api/internal/model"
	"event-partners-api/internal/repository"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// QRCodeSize QR code 圖片邊長（px）
const QRCodeSize = 256

type TicketService interface {
	List(ctx context.Context, eventID uuid.UUID) ([]*model.Ticket, error)
	GetByID(ctx context.Context, eventID, ticketID uuid.UUID) (*model.Ticket, error)
	// QRCode 回傳票券代碼的 PNG
	QRCode(ctx context.Context, eventID, ticketID uuid.UUID) ([]byte, error)
}

type TicketServiceImpl struct {
	repo repository.TicketRepository
}

func NewTicketService(repo repository.TicketRepository) TicketService {
	return &TicketServiceImpl{repo: repo}
}

func (s *TicketServiceImpl) List(ctx context.Context, eventID uuid.UUID) ([]*model.Ticket, error) {
	return s.repo.ListByEventID(ctx, eventID)
}

func (s *TicketServiceImpl) GetByID(ctx context.Context, eventID, ticketID uuid.UUID) (*model.Ticket, error) {
	return s.repo.FindByID(ctx, eventID, ticketID)
}

func (s *TicketServiceImpl) QRCode(ctx context.Context, eventID, ticketID uuid.UUID) ([]byte, error) {
	ticket, err := s.repo.FindByID(ctx, eventID, ticketID)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(ticket.Code, qrcode.Medium, QRCodeSize)
}
