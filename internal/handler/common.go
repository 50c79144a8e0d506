package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "event-partners-api/pkg/app_errors"
	"event-partners-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// errBadRequest JSON 格式錯誤或缺少必要欄位
var errBadRequest = errors.New("invalid request format")

const dateOnly = "2006-01-02"

// bindJSON 解析 partner 的 request 後轉成標準參數
func bindJSON[T any, R any](c *gin.Context, mapFn func(T) (R, error)) (R, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		var zero R
		return zero, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return mapFn(req)
}

// parseDate 接受 RFC3339 或 YYYY-MM-DD
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnly, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: date %q", apperrors.ErrInvalidInput, value)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s", name)})
		return uuid.Nil, false
	}
	return id, true
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	status, message := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, errBadRequest):
		status, message = http.StatusBadRequest, "Invalid request format"
	case errors.Is(err, apperrors.ErrInvalidInput):
		status, message = http.StatusBadRequest, "Invalid input"
	case errors.Is(err, apperrors.ErrInvalidTicketKind):
		status, message = http.StatusBadRequest, "Invalid ticket kind"
	case errors.Is(err, apperrors.ErrEventNotFound):
		status, message = http.StatusNotFound, "Event not found"
	case errors.Is(err, apperrors.ErrSpotNotFound):
		status, message = http.StatusNotFound, "Spot not found"
	case errors.Is(err, apperrors.ErrTicketNotFound):
		status, message = http.StatusNotFound, "Ticket not found"
	case errors.Is(err, apperrors.ErrSpotAlreadyReserved):
		status, message = http.StatusConflict, "Spot already reserved"
	case errors.Is(err, apperrors.ErrSpotAlreadyExists):
		status, message = http.StatusConflict, "Spot already exists"
	case errors.Is(err, apperrors.ErrRequestInProgress):
		status, message = http.StatusConflict, "Request already in progress"
	case errors.Is(err, apperrors.ErrIdempotencyKeyReused):
		status, message = http.StatusUnprocessableEntity, "Idempotency key reused with a different request"
	}

	if status == http.StatusInternalServerError {
		log.Error("Unexpected error")
		c.JSON(status, gin.H{"error": message})
		return
	}

	log.Warn(message)
	body := gin.H{"error": message}
	var spotsErr *apperrors.SpotsError
	if errors.As(err, &spotsErr) {
		body["spots"] = spotsErr.Names
	}
	c.JSON(status, body)
}
