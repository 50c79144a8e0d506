package handler

import (
	"fmt"

	"event-partners-api/config"
	"event-partners-api/internal/model"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

// partner2：葡萄牙文欄位，票種 inteira / meia

const (
	tipoIngressoInteira = "inteira"
	tipoIngressoMeia    = "meia"
)

type CriarEventoRequest struct {
	Nome      string   `json:"nome" binding:"required"`
	Descricao string   `json:"descricao"`
	Data      string   `json:"data" binding:"required"`
	Preco     *float64 `json:"preco" binding:"required"`
}

type AtualizarEventoRequest struct {
	Nome      *string  `json:"nome"`
	Descricao *string  `json:"descricao"`
	Data      *string  `json:"data"`
	Preco     *float64 `json:"preco"`
}

type CriarLugarRequest struct {
	Nome string `json:"nome" binding:"required"`
}

type AtualizarLugarRequest struct {
	Nome *string `json:"nome"`
}

type ReservarLugarRequest struct {
	Lugares      []string `json:"lugares" binding:"required"`
	TipoIngresso string   `json:"tipo_ingresso" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
}

func partnerTwoDialect() *Dialect {
	return &Dialect{
		Partner:     config.PartnerTwo,
		Events:      "eventos",
		Spots:       "lugares",
		ReservePath: "reservar",
		CreateEvent: func(c *gin.Context) (*model.Event, error) {
			return bindJSON(c, mapCriarEventoRequest)
		},
		UpdateEvent: func(c *gin.Context) (model.UpdateEventParams, error) {
			return bindJSON(c, mapAtualizarEventoRequest)
		},
		CreateSpot: func(c *gin.Context) (*model.Spot, error) {
			return bindJSON(c, mapCriarLugarRequest)
		},
		UpdateSpot: func(c *gin.Context) (model.UpdateSpotParams, error) {
			return bindJSON(c, mapAtualizarLugarRequest)
		},
		ReserveSpots: func(c *gin.Context) (model.ReserveSpotsParams, error) {
			return bindJSON(c, mapReservarLugarRequest)
		},
	}
}

func mapCriarEventoRequest(req CriarEventoRequest) (*model.Event, error) {
	return mapCreateEventRequest(CreateEventRequest{
		Name:        req.Nome,
		Description: req.Descricao,
		Date:        req.Data,
		Price:       req.Preco,
	})
}

func mapAtualizarEventoRequest(req AtualizarEventoRequest) (model.UpdateEventParams, error) {
	return mapUpdateEventRequest(UpdateEventRequest{
		Name:        req.Nome,
		Description: req.Descricao,
		Date:        req.Data,
		Price:       req.Preco,
	})
}

func mapCriarLugarRequest(req CriarLugarRequest) (*model.Spot, error) {
	return &model.Spot{Name: req.Nome}, nil
}

func mapAtualizarLugarRequest(req AtualizarLugarRequest) (model.UpdateSpotParams, error) {
	return model.UpdateSpotParams{Name: req.Nome}, nil
}

func mapReservarLugarRequest(req ReservarLugarRequest) (model.ReserveSpotsParams, error) {
	var kind model.TicketKind
	switch req.TipoIngresso {
	case tipoIngressoInteira:
		kind = model.TicketKindFull
	case tipoIngressoMeia:
		kind = model.TicketKindHalf
	default:
		return model.ReserveSpotsParams{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidTicketKind, req.TipoIngresso)
	}
	return model.ReserveSpotsParams{
		Spots:      req.Lugares,
		TicketKind: kind,
		Email:      req.Email,
	}, nil
}
