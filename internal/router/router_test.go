package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"event-partners-api/config"
	"event-partners-api/internal/auth"
	"event-partners-api/internal/handler"
	"event-partners-api/internal/queue"
	"event-partners-api/internal/repository"
	"event-partners-api/internal/router"
	"event-partners-api/internal/service"
	"event-partners-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

func newRouter(t *testing.T, pool *pgxpool.Pool, partner string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dialect, err := handler.DialectFor(partner)
	require.NoError(t, err)

	eventRepo := repository.NewEventRepository(pool)
	spotRepo := repository.NewSpotRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	services := router.Services{
		Event: service.NewEventService(
			repository.NewTransactor(pool), eventRepo, spotRepo, ticketRepo,
			queue.NewMemoryReservationQueue(64), nil,
		),
		Spot:    service.NewSpotService(spotRepo),
		Ticket:  service.NewTicketService(ticketRepo),
		History: service.NewHistoryService(repository.NewReservationHistoryRepository(pool)),
	}
	return router.New(dialect, services, auth.NewStaticTokenVerifier(testToken), map[string]handler.HealthCheck{
		"postgres": pool.Ping,
	})
}

func call(t *testing.T, r http.Handler, method, path string, body interface{}) (int, json.RawMessage) {
	t.Helper()
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.HeaderName, testToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

type ticketView struct {
	SpotName   string  `json:"spot_name"`
	TicketKind string  `json:"ticket_kind"`
	Email      string  `json:"email"`
	Price      float64 `json:"price"`
}

// 兩個 partner 的同一組操作應產生相同的資料
func TestRouter_DialectsProduceSameState(t *testing.T) {
	pool := testutil.NewTestPool(t)

	run := func(r *gin.Engine, events, spots, reserve, spotField string, createEvent, reserveBody map[string]interface{}) []ticketView {
		code, body := call(t, r, "POST", "/"+events, createEvent)
		require.Equal(t, http.StatusCreated, code, string(body))
		var event struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(body, &event))

		for _, name := range []string{"A1", "A2"} {
			code, body = call(t, r, "POST", "/"+events+"/"+event.ID+"/"+spots, map[string]interface{}{spotField: name})
			require.Equal(t, http.StatusCreated, code, string(body))
		}

		code, body = call(t, r, "POST", "/"+events+"/"+event.ID+"/"+reserve, reserveBody)
		require.Equal(t, http.StatusCreated, code, string(body))

		var tickets []ticketView
		require.NoError(t, json.Unmarshal(body, &tickets))
		return tickets
	}

	one := run(newRouter(t, pool, config.PartnerOne), "events", "spots", "reserve", "name",
		map[string]interface{}{"name": "Show", "description": "d", "date": "2024-01-01", "price": 50},
		map[string]interface{}{"spots": []string{"A1", "A2"}, "ticket_kind": "half", "email": "fan@example.com"},
	)
	two := run(newRouter(t, pool, config.PartnerTwo), "eventos", "lugares", "reservar", "nome",
		map[string]interface{}{"nome": "Show", "descricao": "d", "data": "2024-01-01", "preco": 50},
		map[string]interface{}{"lugares": []string{"A1", "A2"}, "tipo_ingresso": "meia", "email": "fan@example.com"},
	)

	require.Len(t, one, 2)
	assert.Equal(t, one, two)
	assert.Equal(t, 25.0, one[0].Price)
	assert.Equal(t, "half", two[0].TicketKind)
}

func TestRouter_ReserveTwiceConflicts(t *testing.T) {
	pool := testutil.NewTestPool(t)
	r := newRouter(t, pool, config.PartnerOne)

	code, body := call(t, r, "POST", "/events", map[string]interface{}{"name": "Show", "date": "2024-01-01", "price": 10})
	require.Equal(t, http.StatusCreated, code)
	var event struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &event))

	code, _ = call(t, r, "POST", "/events/"+event.ID+"/spots", map[string]interface{}{"name": "A1"})
	require.Equal(t, http.StatusCreated, code)

	reserve := map[string]interface{}{"spots": []string{"A1"}, "ticket_kind": "full", "email": "fan@example.com"}
	code, _ = call(t, r, "POST", "/events/"+event.ID+"/reserve", reserve)
	require.Equal(t, http.StatusCreated, code)

	code, body = call(t, r, "POST", "/events/"+event.ID+"/reserve", reserve)
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, string(body), `"spots":["A1"]`)

	// 保留中的座位不能刪
	var spots []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	code, body = call(t, r, "GET", "/events/"+event.ID+"/spots", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &spots))
	require.Len(t, spots, 1)
	assert.Equal(t, "reserved", spots[0].Status)

	code, _ = call(t, r, "DELETE", "/events/"+event.ID+"/spots/"+spots[0].ID, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestRouter_ConcurrentReservations(t *testing.T) {
	pool := testutil.NewTestPool(t)
	r := newRouter(t, pool, config.PartnerOne)

	code, body := call(t, r, "POST", "/events", map[string]interface{}{"name": "Show", "date": "2024-01-01", "price": 10})
	require.Equal(t, http.StatusCreated, code)
	var event struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &event))

	for _, name := range []string{"A1", "A2"} {
		code, _ = call(t, r, "POST", "/events/"+event.ID+"/spots", map[string]interface{}{"name": name})
		require.Equal(t, http.StatusCreated, code)
	}

	const workers = 10
	var wg sync.WaitGroup
	codes := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// 反向順序的請求也不能造成 deadlock
			spots := []string{"A1", "A2"}
			if i%2 == 1 {
				spots = []string{"A2", "A1"}
			}
			codes[i], _ = call(t, r, "POST", "/events/"+event.ID+"/reserve", map[string]interface{}{
				"spots": spots, "ticket_kind": "full", "email": "fan@example.com",
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, c := range codes {
		switch c {
		case http.StatusCreated:
			created++
		default:
			assert.Equal(t, http.StatusConflict, c)
		}
	}
	assert.Equal(t, 1, created)

	var count int
	// 其他 package 的測試共用同一個 test_db，只算這場活動的票
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tickets WHERE event_id = $1`, event.ID).Scan(&count))
	assert.Equal(t, 2, count)
}
