package router

import (
	"event-partners-api/internal/auth"
	"event-partners-api/internal/handler"
	"event-partners-api/internal/service"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Event   service.EventService
	Spot    service.SpotService
	Ticket  service.TicketService
	History service.HistoryService
}

// New 組出單一 partner 的 gin engine
func New(dialect *handler.Dialect, services Services, verifier auth.TokenVerifier, checks map[string]handler.HealthCheck) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(dialect.Partner))

	guard := handler.RequireToken(verifier)

	handler.NewHealthHandler(checks).RegisterRoutes(r)
	handler.NewEventHandler(services.Event, dialect).RegisterRoutes(r, guard)
	handler.NewSpotHandler(services.Spot, dialect).RegisterRoutes(r)
	handler.NewTicketHandler(services.Ticket, services.History, dialect).RegisterRoutes(r, guard)

	return r
}
