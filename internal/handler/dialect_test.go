package handler

import (
	"testing"
	"time"

	"event-partners-api/config"
	"event-partners-api/internal/model"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDialectFor(t *testing.T) {
	d, err := DialectFor(config.PartnerOne)
	require.NoError(t, err)
	assert.Equal(t, "events", d.Events)
	assert.Equal(t, "spots", d.Spots)
	assert.Equal(t, "reserve", d.ReservePath)

	d, err = DialectFor(config.PartnerTwo)
	require.NoError(t, err)
	assert.Equal(t, "eventos", d.Events)
	assert.Equal(t, "lugares", d.Spots)
	assert.Equal(t, "reservar", d.ReservePath)

	_, err = DialectFor("partner3")
	assert.Error(t, err)
}

func TestMapCriarEventoRequest(t *testing.T) {
	event, err := mapCriarEventoRequest(CriarEventoRequest{
		Nome: "Show", Descricao: "x", Data: "2024-01-01", Preco: ptr(50.0),
	})

	require.NoError(t, err)
	assert.Equal(t, "Show", event.Name)
	assert.Equal(t, "x", event.Description)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), event.Date)
	assert.Equal(t, 50.0, event.Price)
}

func TestMapAtualizarEventoRequest(t *testing.T) {
	params, err := mapAtualizarEventoRequest(AtualizarEventoRequest{Data: ptr("2024-02-03T10:00:00-03:00")})

	require.NoError(t, err)
	assert.Nil(t, params.Name)
	assert.Nil(t, params.Price)
	require.NotNil(t, params.Date)
	assert.Equal(t, time.Date(2024, 2, 3, 13, 0, 0, 0, time.UTC), *params.Date)

	_, err = mapAtualizarEventoRequest(AtualizarEventoRequest{Data: ptr("amanhã")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestMapReservarLugarRequest(t *testing.T) {
	params, err := mapReservarLugarRequest(ReservarLugarRequest{
		Lugares: []string{"A1"}, TipoIngresso: "inteira", Email: "fan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TicketKindFull, params.TicketKind)
	assert.Equal(t, []string{"A1"}, params.Spots)

	params, err = mapReservarLugarRequest(ReservarLugarRequest{
		Lugares: []string{"A1"}, TipoIngresso: "meia", Email: "fan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TicketKindHalf, params.TicketKind)

	_, err = mapReservarLugarRequest(ReservarLugarRequest{Lugares: []string{"A1"}, TipoIngresso: "full"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTicketKind)
}

func TestMapReserveSpotRequest(t *testing.T) {
	params, err := mapReserveSpotRequest(ReserveSpotRequest{
		Spots: []string{"A1", "A2"}, TicketKind: "half", Email: "fan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TicketKindHalf, params.TicketKind)

	_, err = mapReserveSpotRequest(ReserveSpotRequest{TicketKind: "meia"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTicketKind)
}

func TestMapSpotRequests(t *testing.T) {
	spot, err := mapCriarLugarRequest(CriarLugarRequest{Nome: "A1"})
	require.NoError(t, err)
	assert.Equal(t, "A1", spot.Name)

	params, err := mapUpdateSpotRequest(UpdateSpotRequest{Name: ptr("B2")})
	require.NoError(t, err)
	assert.Equal(t, "B2", *params.Name)
}
