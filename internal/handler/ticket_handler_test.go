package handler_test

import (
	"net/http"
	"testing"
	"time"

	"event-partners-api/internal/model"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTicketHandler_RequiresToken(t *testing.T) {
	eventID := uuid.New()
	ticketID := uuid.New()

	paths := []string{
		"/eventos/" + eventID.String() + "/tickets",
		"/eventos/" + eventID.String() + "/tickets/" + ticketID.String(),
		"/eventos/" + eventID.String() + "/tickets/" + ticketID.String() + "/qrcode",
		"/eventos/" + eventID.String() + "/reservations",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			s := setupPartnerTwo(t)

			w := s.do(createJSONHTTPRequest("GET", path, nil))

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestTicketHandler_GetByID(t *testing.T) {
	eventID := uuid.New()
	ticketID := uuid.New()
	path := "/eventos/" + eventID.String() + "/tickets/" + ticketID.String()

	t.Run("Success", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.tickets.EXPECT().GetByID(mock.Anything, eventID, ticketID).Return(&model.Ticket{
			ID: ticketID, EventID: eventID, SpotName: "A1", Code: model.TicketCode(ticketID),
		}, nil).Once()

		w := s.do(withToken(createJSONHTTPRequest("GET", path, nil), testToken))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, model.TicketCode(ticketID), decodeBody(t, w)["code"])
	})

	t.Run("Failed - not found", func(t *testing.T) {
		s := setupPartnerTwo(t)

		s.tickets.EXPECT().GetByID(mock.Anything, eventID, ticketID).Return(nil, apperrors.ErrTicketNotFound).Once()

		w := s.do(withToken(createJSONHTTPRequest("GET", path, nil), testToken))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketHandler_List(t *testing.T) {
	eventID := uuid.New()

	s := setupPartnerTwo(t)
	s.tickets.EXPECT().List(mock.Anything, eventID).Return([]*model.Ticket{{ID: uuid.New(), SpotName: "A1"}}, nil).Once()

	w := s.do(withToken(createJSONHTTPRequest("GET", "/eventos/"+eventID.String()+"/tickets", nil), testToken))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"spot_name":"A1"`)
}

func TestTicketHandler_QRCode(t *testing.T) {
	eventID := uuid.New()
	ticketID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	s := setupPartnerTwo(t)
	s.tickets.EXPECT().QRCode(mock.Anything, eventID, ticketID).Return(png, nil).Once()

	w := s.do(withToken(createJSONHTTPRequest("GET", "/eventos/"+eventID.String()+"/tickets/"+ticketID.String()+"/qrcode", nil), testToken))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, png, w.Body.Bytes())
}

func TestTicketHandler_ListReservations(t *testing.T) {
	eventID := uuid.New()

	s := setupPartnerTwo(t)
	s.history.EXPECT().ListByEventID(mock.Anything, eventID).Return([]*model.ReservationHistory{
		{TicketID: uuid.New(), EventID: eventID, Status: model.ReservationStatusReserved, ReservedAt: time.Now()},
	}, nil).Once()

	w := s.do(withToken(createJSONHTTPRequest("GET", "/eventos/"+eventID.String()+"/reservations", nil), testToken))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"reserved"`)
}
