package worker

import (
	"context"
	"sync"

	"event-partners-api/internal/queue"
	"event-partners-api/internal/service"
	"event-partners-api/pkg/logger"

	"go.uber.org/zap"
)

type ReservationWorker interface {
	// Start 訂閱預訂通知並在背景處理，ctx 結束後停止
	Start(ctx context.Context) error
	// Wait 等待背景處理結束
	Wait()
}

type ReservationWorkerImpl struct {
	service service.HistoryService
	queue   queue.ReservationQueue
	wg      sync.WaitGroup
}

func NewReservationWorker(service service.HistoryService, queue queue.ReservationQueue) ReservationWorker {
	return &ReservationWorkerImpl{
		service: service,
		queue:   queue,
	}
}

func (w *ReservationWorkerImpl) Start(ctx context.Context) error {
	deliveries, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("worker")

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for d := range deliveries {
			if err := w.service.Record(ctx, d.Data); err != nil {
				// DB 暫時失敗，交給 queue 之後重送
				log.Warn("record reservation failed, requeue",
					zap.String("ticket_id", d.Data.TicketID.String()),
					zap.Error(err),
				)
				d.Nack(true)
				continue
			}
			d.Ack()
		}
	}()
	return nil
}

func (w *ReservationWorkerImpl) Wait() {
	w.wg.Wait()
}
