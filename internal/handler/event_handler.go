package handler

import (
	"net/http"

	"event-partners-api/internal/service"

	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader 預訂請求可帶的冪等 key
const IdempotencyKeyHeader = "Idempotency-Key"

type EventHandler struct {
	service service.EventService
	dialect *Dialect
}

func NewEventHandler(service service.EventService, dialect *Dialect) *EventHandler {
	return &EventHandler{service: service, dialect: dialect}
}

func (h *EventHandler) RegisterRoutes(r gin.IRouter, guard gin.HandlerFunc) {
	events := r.Group("/" + h.dialect.Events)
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:eventId", h.GetByID)
		events.PATCH("/:eventId", h.Update)
		events.DELETE("/:eventId", h.Delete)
		events.POST("/:eventId/"+h.dialect.ReservePath, guard, h.ReserveSpots)
	}
}

func (h *EventHandler) Create(c *gin.Context) {
	event, err := h.dialect.CreateEvent(c)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	created, err := h.service.Create(c.Request.Context(), event)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	event, err := h.service.GetByID(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	params, err := h.dialect.UpdateEvent(c)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	updated, err := h.service.Update(c.Request.Context(), eventID, params)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), eventID); err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) ReserveSpots(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	params, err := h.dialect.ReserveSpots(c)
	if err != nil {
		handleError(c, err, "ReserveSpots")
		return
	}
	params.EventID = eventID
	params.IdempotencyKey = c.GetHeader(IdempotencyKeyHeader)

	tickets, err := h.service.ReserveSpots(c.Request.Context(), params)
	if err != nil {
		handleError(c, err, "ReserveSpots")
		return
	}
	c.JSON(http.StatusCreated, tickets)
}
