package handler

import (
	"fmt"

	"event-partners-api/config"
	"event-partners-api/internal/model"

	"github.com/gin-gonic/gin"
)

// Dialect 一個 partner 對外的路徑名稱與欄位格式；核心邏輯共用
type Dialect struct {
	Partner     string
	Events      string
	Spots       string
	ReservePath string

	CreateEvent  func(c *gin.Context) (*model.Event, error)
	UpdateEvent  func(c *gin.Context) (model.UpdateEventParams, error)
	CreateSpot   func(c *gin.Context) (*model.Spot, error)
	UpdateSpot   func(c *gin.Context) (model.UpdateSpotParams, error)
	ReserveSpots func(c *gin.Context) (model.ReserveSpotsParams, error)
}

func DialectFor(partner string) (*Dialect, error) {
	switch partner {
	case config.PartnerOne:
		return partnerOneDialect(), nil
	case config.PartnerTwo:
		return partnerTwoDialect(), nil
	}
	return nil, fmt.Errorf("unknown partner %q", partner)
}
