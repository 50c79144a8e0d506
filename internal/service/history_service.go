package service

import (
	"context"

	"event-partners-api/internal/model"
	"event-partners-api/internal/repository"
	"event-partners-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HistoryService interface {
	// Record 寫入預訂紀錄；同一張票重複投遞不算錯誤
	Record(ctx context.Context, notice *model.ReservationNotice) error
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.ReservationHistory, error)
}

type HistoryServiceImpl struct {
	repo repository.ReservationHistoryRepository
}

func NewHistoryService(repo repository.ReservationHistoryRepository) HistoryService {
	return &HistoryServiceImpl{repo: repo}
}

func (s *HistoryServiceImpl) Record(ctx context.Context, notice *model.ReservationNotice) error {
	inserted, err := s.repo.Record(ctx, &model.ReservationHistory{
		TicketID:   notice.TicketID,
		EventID:    notice.EventID,
		SpotID:     notice.SpotID,
		TicketKind: notice.TicketKind,
		Email:      notice.Email,
		Status:     notice.Status,
		ReservedAt: notice.ReservedAt,
	})
	if err != nil {
		return err
	}
	if !inserted {
		logger.WithComponent("service").Info("reservation already recorded",
			zap.String("ticket_id", notice.TicketID.String()),
		)
	}
	return nil
}

func (s *HistoryServiceImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.ReservationHistory, error) {
	return s.repo.ListByEventID(ctx, eventID)
}
