package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-partners-api/config"
	"event-partners-api/internal/auth"
	"event-partners-api/internal/handler"
	"event-partners-api/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

var invalidJSON = `{"invalid": json}`

type testServer struct {
	router  *gin.Engine
	events  *mocks.MockEventService
	spots   *mocks.MockSpotService
	tickets *mocks.MockTicketService
	history *mocks.MockHistoryService
}

func setupTestServer(t *testing.T, partner string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dialect, err := handler.DialectFor(partner)
	require.NoError(t, err)

	s := &testServer{
		router:  gin.New(),
		events:  mocks.NewMockEventService(t),
		spots:   mocks.NewMockSpotService(t),
		tickets: mocks.NewMockTicketService(t),
		history: mocks.NewMockHistoryService(t),
	}

	guard := handler.RequireToken(auth.NewStaticTokenVerifier(testToken))
	handler.NewEventHandler(s.events, dialect).RegisterRoutes(s.router, guard)
	handler.NewSpotHandler(s.spots, dialect).RegisterRoutes(s.router)
	handler.NewTicketHandler(s.tickets, s.history, dialect).RegisterRoutes(s.router, guard)
	return s
}

func setupPartnerTwo(t *testing.T) *testServer {
	return setupTestServer(t, config.PartnerTwo)
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if raw, ok := data.(string); ok {
		return bytes.NewBufferString(raw)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withToken(req *http.Request, token string) *http.Request {
	req.Header.Set(auth.HeaderName, token)
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
