package handler

import (
	"fmt"

	"event-partners-api/config"
	"event-partners-api/internal/model"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

// partner1：英文欄位，票種直接用 full / half

type CreateEventRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Date        string   `json:"date" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

type UpdateEventRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	Price       *float64 `json:"price"`
}

type CreateSpotRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateSpotRequest struct {
	Name *string `json:"name"`
}

type ReserveSpotRequest struct {
	Spots      []string `json:"spots" binding:"required"`
	TicketKind string   `json:"ticket_kind" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
}

func partnerOneDialect() *Dialect {
	return &Dialect{
		Partner:     config.PartnerOne,
		Events:      "events",
		Spots:       "spots",
		ReservePath: "reserve",
		CreateEvent: func(c *gin.Context) (*model.Event, error) {
			return bindJSON(c, mapCreateEventRequest)
		},
		UpdateEvent: func(c *gin.Context) (model.UpdateEventParams, error) {
			return bindJSON(c, mapUpdateEventRequest)
		},
		CreateSpot: func(c *gin.Context) (*model.Spot, error) {
			return bindJSON(c, mapCreateSpotRequest)
		},
		UpdateSpot: func(c *gin.Context) (model.UpdateSpotParams, error) {
			return bindJSON(c, mapUpdateSpotRequest)
		},
		ReserveSpots: func(c *gin.Context) (model.ReserveSpotsParams, error) {
			return bindJSON(c, mapReserveSpotRequest)
		},
	}
}

func mapCreateEventRequest(req CreateEventRequest) (*model.Event, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &model.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Price:       *req.Price,
	}, nil
}

func mapUpdateEventRequest(req UpdateEventRequest) (model.UpdateEventParams, error) {
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return model.UpdateEventParams{}, err
	}
	return model.UpdateEventParams{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Price:       req.Price,
	}, nil
}

func mapCreateSpotRequest(req CreateSpotRequest) (*model.Spot, error) {
	return &model.Spot{Name: req.Name}, nil
}

func mapUpdateSpotRequest(req UpdateSpotRequest) (model.UpdateSpotParams, error) {
	return model.UpdateSpotParams{Name: req.Name}, nil
}

func mapReserveSpotRequest(req ReserveSpotRequest) (model.ReserveSpotsParams, error) {
	kind := model.TicketKind(req.TicketKind)
	if !kind.IsValid() {
		return model.ReserveSpotsParams{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidTicketKind, req.TicketKind)
	}
	return model.ReserveSpotsParams{
		Spots:      req.Spots,
		TicketKind: kind,
		Email:      req.Email,
	}, nil
}
