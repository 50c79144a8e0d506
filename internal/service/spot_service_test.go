package service_test

import (
	"context"
	"testing"

	"event-partners-api/internal/model"
	repoMocks "event-partners-api/internal/repository/mocks"
	"event-partners-api/internal/service"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSpotService_Create(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	t.Run("Success - always available", func(t *testing.T) {
		repo := repoMocks.NewMockSpotRepository(t)
		svc := service.NewSpotService(repo)

		repo.EXPECT().Create(ctx, mock.MatchedBy(func(s *model.Spot) bool {
			return s.ID != uuid.Nil && s.Status == model.SpotStatusAvailable
		})).RunAndReturn(func(_ context.Context, s *model.Spot) (*model.Spot, error) {
			return s, nil
		}).Once()

		spot, err := svc.Create(ctx, &model.Spot{EventID: eventID, Name: "A1", Status: model.SpotStatusReserved})

		require.NoError(t, err)
		assert.Equal(t, model.SpotStatusAvailable, spot.Status)
	})

	t.Run("Failed - empty name", func(t *testing.T) {
		repo := repoMocks.NewMockSpotRepository(t)
		svc := service.NewSpotService(repo)

		_, err := svc.Create(ctx, &model.Spot{EventID: eventID})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		repo := repoMocks.NewMockSpotRepository(t)
		svc := service.NewSpotService(repo)

		repo.EXPECT().Create(ctx, mock.Anything).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.Create(ctx, &model.Spot{EventID: eventID, Name: "A1"})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestSpotService_Update(t *testing.T) {
	ctx := context.Background()
	eventID, spotID := uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := repoMocks.NewMockSpotRepository(t)
		svc := service.NewSpotService(repo)
		name := "B1"
		params := model.UpdateSpotParams{Name: &name}

		repo.EXPECT().Update(ctx, eventID, spotID, params).Return(&model.Spot{ID: spotID, Name: name}, nil).Once()

		spot, err := svc.Update(ctx, eventID, spotID, params)

		require.NoError(t, err)
		assert.Equal(t, "B1", spot.Name)
	})

	t.Run("Failed - no name", func(t *testing.T) {
		repo := repoMocks.NewMockSpotRepository(t)
		svc := service.NewSpotService(repo)

		_, err := svc.Update(ctx, eventID, spotID, model.UpdateSpotParams{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestSpotService_ScopedLookups(t *testing.T) {
	ctx := context.Background()
	eventID, spotID := uuid.New(), uuid.New()
	repo := repoMocks.NewMockSpotRepository(t)
	svc := service.NewSpotService(repo)

	repo.EXPECT().FindByID(ctx, eventID, spotID).Return(nil, apperrors.ErrSpotNotFound).Once()
	repo.EXPECT().Delete(ctx, eventID, spotID).Return(apperrors.ErrSpotAlreadyReserved).Once()
	repo.EXPECT().ListByEventID(ctx, eventID).Return([]*model.Spot{}, nil).Once()

	_, err := svc.GetByID(ctx, eventID, spotID)
	assert.ErrorIs(t, err, apperrors.ErrSpotNotFound)

	err = svc.Delete(ctx, eventID, spotID)
	assert.ErrorIs(t, err, apperrors.ErrSpotAlreadyReserved)

	spots, err := svc.List(ctx, eventID)
	require.NoError(t, err)
	assert.Empty(t, spots)
}
