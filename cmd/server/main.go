package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"time"

	"event-partners-api/config"
	"event-partners-api/internal/auth"
	"event-partners-api/internal/cache"
	"event-partners-api/internal/database"
	"event-partners-api/internal/handler"
	"event-partners-api/internal/queue"
	"event-partners-api/internal/repository"
	"event-partners-api/internal/router"
	"event-partners-api/internal/service"
	"event-partners-api/internal/worker"
	"event-partners-api/migrations"
	"event-partners-api/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gopkg.in/vrecan/death.v3"
)

func main() {
	cfg := config.LoadConfig()
	defer logger.Sync()

	log := logger.WithPartner("server", cfg.App.Partner)

	dialect, err := handler.DialectFor(cfg.App.Partner)
	if err != nil {
		log.Fatal("Invalid partner", zap.Error(err))
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := migrations.Apply(context.Background(), pool); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reservationQueue, err := newReservationQueue(ctx, cfg, rdb)
	if err != nil {
		log.Fatal("Failed to initialize reservation queue", zap.Error(err))
	}

	eventRepo := repository.NewEventRepository(pool)
	spotRepo := repository.NewSpotRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	historyRepo := repository.NewReservationHistoryRepository(pool)

	services := router.Services{
		Event: service.NewEventService(
			repository.NewTransactor(pool),
			eventRepo,
			spotRepo,
			ticketRepo,
			reservationQueue,
			cache.NewRedisIdempotencyStore(rdb, cfg.App.Partner, cfg.App.IdempotencyTTL, cfg.App.IdempotencyPendingTTL),
		),
		Spot:    service.NewSpotService(spotRepo),
		Ticket:  service.NewTicketService(ticketRepo),
		History: service.NewHistoryService(historyRepo),
	}

	reservationWorker := worker.NewReservationWorker(services.History, reservationQueue)
	if err := reservationWorker.Start(ctx); err != nil {
		log.Fatal("Failed to start reservation worker", zap.Error(err))
	}

	engine := router.New(dialect, services, auth.NewVerifier(cfg.Auth, cfg.App.Partner), map[string]handler.HealthCheck{
		"postgres": pool.Ping,
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("addr", srv.Addr), zap.String("queue_driver", cfg.App.QueueDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	death.NewDeath(syscall.SIGINT, syscall.SIGTERM).WaitForDeathWithFunc(func() {
		log.Info("Shutting down")

		shutdownCtx, done := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", zap.Error(err))
		}

		// 先停 HTTP 再停 worker，讓最後一批通知有機會送出
		cancel()
		reservationWorker.Wait()
	})
}

func newReservationQueue(ctx context.Context, cfg *config.Config, rdb *redis.Client) (queue.ReservationQueue, error) {
	switch cfg.App.QueueDriver {
	case config.QueueDriverRedis:
		return queue.NewRedisStreamReservationQueue(ctx, rdb, cfg.App.Partner, "", cfg.Stream)
	case config.QueueDriverMemory:
		return queue.NewMemoryReservationQueue(1024), nil
	}
	return nil, fmt.Errorf("unknown queue driver %q", cfg.App.QueueDriver)
}
