package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"event-partners-api/config"
	"event-partners-api/internal/handler"
	"event-partners-api/internal/model"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventHandler_Create(t *testing.T) {
	t.Run("Success - portuguese fields mapped", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
			return e.Name == "Show" &&
				e.Description == "x" &&
				e.Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				e.Price == 50
		})).RunAndReturn(func(_ context.Context, e *model.Event) (*model.Event, error) {
			e.ID = uuid.New()
			return e, nil
		}).Once()

		w := s.do(createJSONHTTPRequest("POST", "/eventos", map[string]interface{}{
			"nome": "Show", "descricao": "x", "data": "2024-01-01", "preco": 50,
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Show", body["name"])
		assert.Equal(t, "x", body["description"])
		assert.Equal(t, 50.0, body["price"])
		assert.NotEmpty(t, body["id"])
	})

	t.Run("Success - free event with RFC3339 date", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
			return e.Price == 0 && e.Date.Equal(time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC))
		})).RunAndReturn(func(_ context.Context, e *model.Event) (*model.Event, error) {
			return e, nil
		}).Once()

		w := s.do(createJSONHTTPRequest("POST", "/eventos", map[string]interface{}{
			"nome": "Free", "data": "2024-05-01T18:30:00Z", "preco": 0,
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - missing required field", func(t *testing.T) {
		s := setupPartnerTwo(t)

		w := s.do(createJSONHTTPRequest("POST", "/eventos", map[string]interface{}{
			"descricao": "x", "data": "2024-01-01", "preco": 50,
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request format", decodeBody(t, w)["error"])
	})

	t.Run("Failed - missing price", func(t *testing.T) {
		s := setupPartnerTwo(t)

		w := s.do(createJSONHTTPRequest("POST", "/eventos", map[string]interface{}{
			"nome": "Show", "data": "2024-01-01",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - invalid date", func(t *testing.T) {
		s := setupPartnerTwo(t)

		w := s.do(createJSONHTTPRequest("POST", "/eventos", map[string]interface{}{
			"nome": "Show", "data": "01/01/2024", "preco": 50,
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid input", decodeBody(t, w)["error"])
	})

	t.Run("Failed - invalid JSON", func(t *testing.T) {
		s := setupPartnerTwo(t)

		w := s.do(createJSONHTTPRequest("POST", "/eventos", invalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - service rejects input", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidInput).Once()

		w := s.do(createJSONHTTPRequest("POST", "/eventos", map[string]interface{}{
			"nome": "Show", "data": "2024-01-01", "preco": -1,
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		w := s.do(createJSONHTTPRequest("POST", "/eventos", map[string]interface{}{
			"nome": "Show", "data": "2024-01-01", "preco": 50,
		}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeBody(t, w)["error"])
	})
}

func TestEventHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().List(mock.Anything).Return([]*model.Event{
			{ID: uuid.New(), Name: "A"},
			{ID: uuid.New(), Name: "B"},
		}, nil).Once()

		w := s.do(createJSONHTTPRequest("GET", "/eventos", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"A"`)
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().List(mock.Anything).Return(nil, errors.New("db down")).Once()

		w := s.do(createJSONHTTPRequest("GET", "/eventos", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEventHandler_GetByID(t *testing.T) {
	eventID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().GetByID(mock.Anything, eventID).Return(&model.Event{ID: eventID, Name: "Show"}, nil).Once()

		w := s.do(createJSONHTTPRequest("GET", "/eventos/"+eventID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, eventID.String(), decodeBody(t, w)["id"])
	})

	t.Run("Failed - not found", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().GetByID(mock.Anything, eventID).Return(nil, apperrors.ErrEventNotFound).Once()

		w := s.do(createJSONHTTPRequest("GET", "/eventos/"+eventID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Event not found", decodeBody(t, w)["error"])
	})

	t.Run("Failed - invalid uuid", func(t *testing.T) {
		s := setupPartnerTwo(t)

		w := s.do(createJSONHTTPRequest("GET", "/eventos/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventHandler_Update(t *testing.T) {
	eventID := uuid.New()

	t.Run("Success - partial update", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().Update(mock.Anything, eventID, mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.Name == nil && p.Description == nil && p.Date == nil && p.Price != nil && *p.Price == 70
		})).Return(&model.Event{ID: eventID, Name: "Show", Price: 70}, nil).Once()

		w := s.do(createJSONHTTPRequest("PATCH", "/eventos/"+eventID.String(), map[string]interface{}{
			"preco": 70,
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 70.0, decodeBody(t, w)["price"])
	})

	t.Run("Failed - empty body", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().Update(mock.Anything, eventID, model.UpdateEventParams{}).Return(nil, apperrors.ErrInvalidInput).Once()

		w := s.do(createJSONHTTPRequest("PATCH", "/eventos/"+eventID.String(), map[string]interface{}{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().Update(mock.Anything, eventID, mock.Anything).Return(nil, apperrors.ErrEventNotFound).Once()

		w := s.do(createJSONHTTPRequest("PATCH", "/eventos/"+eventID.String(), map[string]interface{}{
			"nome": "Renamed",
		}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEventHandler_Delete(t *testing.T) {
	eventID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().Delete(mock.Anything, eventID).Return(nil).Once()

		w := s.do(createJSONHTTPRequest("DELETE", "/eventos/"+eventID.String(), nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Failed - not found", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().Delete(mock.Anything, eventID).Return(apperrors.ErrEventNotFound).Once()

		w := s.do(createJSONHTTPRequest("DELETE", "/eventos/"+eventID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEventHandler_ReserveSpots(t *testing.T) {
	eventID := uuid.New()
	path := "/eventos/" + eventID.String() + "/reservar"
	body := map[string]interface{}{
		"lugares":       []string{"A1", "A2"},
		"tipo_ingresso": "meia",
		"email":         "fan@example.com",
	}

	t.Run("Failed - missing token", func(t *testing.T) {
		s := setupPartnerTwo(t)

		w := s.do(createJSONHTTPRequest("POST", path, body))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Failed - wrong token", func(t *testing.T) {
		s := setupPartnerTwo(t)

		w := s.do(withToken(createJSONHTTPRequest("POST", path, body), "wrong"))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().ReserveSpots(mock.Anything, model.ReserveSpotsParams{
			EventID:        eventID,
			Spots:          []string{"A1", "A2"},
			TicketKind:     model.TicketKindHalf,
			Email:          "fan@example.com",
			IdempotencyKey: "key-1",
		}).Return([]*model.Ticket{
			{ID: uuid.New(), EventID: eventID, SpotName: "A1", Kind: model.TicketKindHalf, Price: 25},
			{ID: uuid.New(), EventID: eventID, SpotName: "A2", Kind: model.TicketKindHalf, Price: 25},
		}, nil).Once()

		req := withToken(createJSONHTTPRequest("POST", path, body), testToken)
		req.Header.Set(handler.IdempotencyKeyHeader, "key-1")
		w := s.do(req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"ticket_kind":"half"`)
	})

	t.Run("Failed - invalid ticket kind", func(t *testing.T) {
		s := setupPartnerTwo(t)

		w := s.do(withToken(createJSONHTTPRequest("POST", path, map[string]interface{}{
			"lugares": []string{"A1"}, "tipo_ingresso": "vip", "email": "fan@example.com",
		}), testToken))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid ticket kind", decodeBody(t, w)["error"])
	})

	t.Run("Failed - email with display name", func(t *testing.T) {
		s := setupPartnerTwo(t)

		w := s.do(withToken(createJSONHTTPRequest("POST", path, map[string]interface{}{
			"lugares": []string{"A1"}, "tipo_ingresso": "inteira", "email": "Fan <fan@example.com>",
		}), testToken))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request format", decodeBody(t, w)["error"])
	})

	t.Run("Failed - spot already reserved lists names", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().ReserveSpots(mock.Anything, mock.Anything).
			Return(nil, apperrors.NewSpotsError(apperrors.ErrSpotAlreadyReserved, []string{"A2"})).Once()

		w := s.do(withToken(createJSONHTTPRequest("POST", path, body), testToken))

		require.Equal(t, http.StatusConflict, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, "Spot already reserved", resp["error"])
		assert.Equal(t, []interface{}{"A2"}, resp["spots"])
	})

	t.Run("Failed - unknown spots", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().ReserveSpots(mock.Anything, mock.Anything).
			Return(nil, apperrors.NewSpotsError(apperrors.ErrSpotNotFound, []string{"Z9"})).Once()

		w := s.do(withToken(createJSONHTTPRequest("POST", path, body), testToken))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - request in progress", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().ReserveSpots(mock.Anything, mock.Anything).Return(nil, apperrors.ErrRequestInProgress).Once()

		w := s.do(withToken(createJSONHTTPRequest("POST", path, body), testToken))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - idempotency key reused with another request", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.events.EXPECT().ReserveSpots(mock.Anything, mock.Anything).Return(nil, apperrors.ErrIdempotencyKeyReused).Once()

		req := withToken(createJSONHTTPRequest("POST", path, body), testToken)
		req.Header.Set(handler.IdempotencyKeyHeader, "key-1")
		w := s.do(req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "Idempotency key reused with a different request", decodeBody(t, w)["error"])
	})
}

func TestEventHandler_PartnerOneRoutes(t *testing.T) {
	eventID := uuid.New()

	t.Run("Create with english fields", func(t *testing.T) {
		s := setupTestServer(t, config.PartnerOne)

		s.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
			return e.Name == "Concert" && e.Description == "Live" && e.Price == 120
		})).RunAndReturn(func(_ context.Context, e *model.Event) (*model.Event, error) {
			return e, nil
		}).Once()

		w := s.do(createJSONHTTPRequest("POST", "/events", map[string]interface{}{
			"name": "Concert", "description": "Live", "date": "2024-06-01", "price": 120,
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Portuguese path is not served", func(t *testing.T) {
		s := setupTestServer(t, config.PartnerOne)

		w := s.do(createJSONHTTPRequest("GET", "/eventos", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Reserve with english fields", func(t *testing.T) {
		s := setupTestServer(t, config.PartnerOne)

		s.events.EXPECT().ReserveSpots(mock.Anything, model.ReserveSpotsParams{
			EventID:    eventID,
			Spots:      []string{"B1"},
			TicketKind: model.TicketKindFull,
			Email:      "fan@example.com",
		}).Return([]*model.Ticket{{ID: uuid.New(), SpotName: "B1", Kind: model.TicketKindFull}}, nil).Once()

		w := s.do(withToken(createJSONHTTPRequest("POST", "/events/"+eventID.String()+"/reserve", map[string]interface{}{
			"spots": []string{"B1"}, "ticket_kind": "full", "email": "fan@example.com",
		}), testToken))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Reserve rejects display-name email", func(t *testing.T) {
		s := setupTestServer(t, config.PartnerOne)

		w := s.do(withToken(createJSONHTTPRequest("POST", "/events/"+eventID.String()+"/reserve", map[string]interface{}{
			"spots": []string{"B1"}, "ticket_kind": "full", "email": "Fan <fan@example.com>",
		}), testToken))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
