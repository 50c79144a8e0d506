package queue

import (
	"context"

	"event-partners-api/internal/model"
)

// Delivery 一則待處理的預訂通知；處理完呼叫 Ack，失敗呼叫 Nack
type Delivery struct {
	Data *model.ReservationNotice
	Ack  func()
	Nack func(requeue bool)
}

type ReservationQueue interface {
	Publish(ctx context.Context, notice *model.ReservationNotice) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryReservationQueueImpl 單一行程內的 channel 版本，給本機開發與測試用
type MemoryReservationQueueImpl struct {
	ch chan *model.ReservationNotice
}

func NewMemoryReservationQueue(bufferSize int) ReservationQueue {
	return &MemoryReservationQueueImpl{
		ch: make(chan *model.ReservationNotice, bufferSize),
	}
}

func (q *MemoryReservationQueueImpl) Publish(ctx context.Context, notice *model.ReservationNotice) error {
	select {
	case q.ch <- notice:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryReservationQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case notice := <-q.ch:
				d := Delivery{
					Data: notice,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if !requeue {
							return
						}
						// 放回去時不阻塞 worker
						go func() {
							select {
							case q.ch <- notice:
							case <-ctx.Done():
							}
						}()
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
