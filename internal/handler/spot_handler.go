package handler

import (
	"net/http"

	"event-partners-api/internal/service"

	"github.com/gin-gonic/gin"
)

type SpotHandler struct {
	service service.SpotService
	dialect *Dialect
}

func NewSpotHandler(service service.SpotService, dialect *Dialect) *SpotHandler {
	return &SpotHandler{service: service, dialect: dialect}
}

func (h *SpotHandler) RegisterRoutes(r gin.IRouter) {
	spots := r.Group("/" + h.dialect.Events + "/:eventId/" + h.dialect.Spots)
	{
		spots.POST("", h.Create)
		spots.GET("", h.List)
		spots.GET("/:spotId", h.GetByID)
		spots.PATCH("/:spotId", h.Update)
		spots.DELETE("/:spotId", h.Delete)
	}
}

func (h *SpotHandler) Create(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	spot, err := h.dialect.CreateSpot(c)
	if err != nil {
		handleError(c, err, "CreateSpot")
		return
	}
	spot.EventID = eventID

	created, err := h.service.Create(c.Request.Context(), spot)
	if err != nil {
		handleError(c, err, "CreateSpot")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SpotHandler) List(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	spots, err := h.service.List(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err, "ListSpots")
		return
	}
	c.JSON(http.StatusOK, spots)
}

func (h *SpotHandler) GetByID(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	spotID, ok := parseUUIDParam(c, "spotId")
	if !ok {
		return
	}
	spot, err := h.service.GetByID(c.Request.Context(), eventID, spotID)
	if err != nil {
		handleError(c, err, "GetSpot")
		return
	}
	c.JSON(http.StatusOK, spot)
}

func (h *SpotHandler) Update(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	spotID, ok := parseUUIDParam(c, "spotId")
	if !ok {
		return
	}
	params, err := h.dialect.UpdateSpot(c)
	if err != nil {
		handleError(c, err, "UpdateSpot")
		return
	}
	updated, err := h.service.Update(c.Request.Context(), eventID, spotID, params)
	if err != nil {
		handleError(c, err, "UpdateSpot")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SpotHandler) Delete(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId")
	if !ok {
		return
	}
	spotID, ok := parseUUIDParam(c, "spotId")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), eventID, spotID); err != nil {
		handleError(c, err, "DeleteSpot")
		return
	}
	c.Status(http.StatusNoContent)
}
