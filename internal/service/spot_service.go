package service

import (
	"context"

	"event-partners-api/internal/model"
	"event-partners-api/internal/repository"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/google/uuid"
)

type SpotService interface {
	Create(ctx context.Context, spot *model.Spot) (*model.Spot, error)
	List(ctx context.Context, eventID uuid.UUID) ([]*model.Spot, error)
	GetByID(ctx context.Context, eventID, spotID uuid.UUID) (*model.Spot, error)
	Update(ctx context.Context, eventID, spotID uuid.UUID, params model.UpdateSpotParams) (*model.Spot, error)
	Delete(ctx context.Context, eventID, spotID uuid.UUID) error
}

type SpotServiceImpl struct {
	repo repository.SpotRepository
}

func NewSpotService(repo repository.SpotRepository) SpotService {
	return &SpotServiceImpl{repo: repo}
}

// Create 新座位一律是 available
func (s *SpotServiceImpl) Create(ctx context.Context, spot *model.Spot) (*model.Spot, error) {
	if spot.Name == "" {
		return nil, apperrors.ErrInvalidInput
	}
	if spot.ID == uuid.Nil {
		spot.ID = uuid.New()
	}
	spot.Status = model.SpotStatusAvailable
	return s.repo.Create(ctx, spot)
}

func (s *SpotServiceImpl) List(ctx context.Context, eventID uuid.UUID) ([]*model.Spot, error) {
	return s.repo.ListByEventID(ctx, eventID)
}

func (s *SpotServiceImpl) GetByID(ctx context.Context, eventID, spotID uuid.UUID) (*model.Spot, error) {
	return s.repo.FindByID(ctx, eventID, spotID)
}

func (s *SpotServiceImpl) Update(ctx context.Context, eventID, spotID uuid.UUID, params model.UpdateSpotParams) (*model.Spot, error) {
	if params.Name == nil || *params.Name == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.Update(ctx, eventID, spotID, params)
}

func (s *SpotServiceImpl) Delete(ctx context.Context, eventID, spotID uuid.UUID) error {
	return s.repo.Delete(ctx, eventID, spotID)
}
