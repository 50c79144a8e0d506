package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "event-partners-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
)

func TestSpotsError(t *testing.T) {
	err := apperrors.NewSpotsError(apperrors.ErrSpotAlreadyReserved, []string{"A1", "B2"})

	assert.Equal(t, "spot already reserved: A1, B2", err.Error())
	assert.ErrorIs(t, err, apperrors.ErrSpotAlreadyReserved)
	assert.NotErrorIs(t, err, apperrors.ErrSpotNotFound)

	wrapped := fmt.Errorf("reserve: %w", err)
	var spotsErr *apperrors.SpotsError
	assert.True(t, errors.As(wrapped, &spotsErr))
	assert.Equal(t, []string{"A1", "B2"}, spotsErr.Names)
}
