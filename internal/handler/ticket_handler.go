package handler

import (
	"net/http"

	"event-partners-api/internal/service"

	"github.com/gin-gonic/gin"
)

// TicketHandler 已開出的票券與預訂紀錄，全部需要 x-api-token
type TicketHandler struct {
	service service.TicketService
	history service.HistoryService
	dialect *Dialect
}

func NewTicketHandler(service service.TicketService, history service.HistoryService, dialect *Dialect) *TicketHandler {
	return &TicketHandler{service: service, history: history, dialect: dialect}
}

func (h *TicketHandler) RegisterRoutes(r gin.IRouter, guard gin.HandlerFunc) {
	event := r.Group("/"+h.dialect.Events+"/:eventId", guard)
	{
		event.GET("/tickets", h.List)
		event.GET("/tickets/:ticketId", h.GetByID)
		event.GET("/tickets/:ticketId/qrcode", h.QRCode)
		event.GET("/reservations", h.ListReservations)
	}
}

func (h *TicketHandler) List(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	tickets, err := h.service.List(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err, "ListTickets")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) GetByID(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	ticketID, ok := parseUUIDParam(c, "ticketId")
	if !ok {
		return
	}
	ticket, err := h.service.GetByID(c.Request.Context(), eventID, ticketID)
	if err != nil {
		handleError(c, err, "GetTicket")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) QRCode(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	ticketID, ok := parseUUIDParam(c, "ticketId")
	if !ok {
		return
	}
	png, err := h.service.QRCode(c.Request.Context(), eventID, ticketID)
	if err != nil {
		handleError(c, err, "TicketQRCode")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *TicketHandler) ListReservations(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	histories, err := h.history.ListByEventID(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err, "ListReservations")
		return
	}
	c.JSON(http.StatusOK, histories)
}
