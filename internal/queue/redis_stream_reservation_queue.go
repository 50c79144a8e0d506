package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"event-partners-api/config"
	"event-partners-api/internal/model"
	"event-partners-api/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKeyPrefix   = "reservations"
	ConsumerGroupName = "reservation-workers"
	noticeField       = "notice"
	batchSize         = 10
)

type RedisStreamReservationQueueImpl struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
	cfg      config.StreamConfig
	log      *zap.Logger
}

// StreamKey 每個 partner 使用自己的 stream
func StreamKey(partner string) string {
	return fmt.Sprintf("%s:%s:stream", StreamKeyPrefix, partner)
}

// NewRedisStreamReservationQueue 建立 consumer group（已存在則沿用）；consumerID 空白時自動產生
func NewRedisStreamReservationQueue(ctx context.Context, client *redis.Client, partner, consumerID string, cfg config.StreamConfig) (ReservationQueue, error) {
	if consumerID == "" {
		consumerID = uuid.NewString()
	}
	if cfg.ClaimMinIdleTime <= 0 {
		cfg.ClaimMinIdleTime = 5 * time.Second
	}
	if cfg.MaxRetryCount <= 0 {
		cfg.MaxRetryCount = 5
	}
	if cfg.ReadGroupBlockTime <= 0 {
		cfg.ReadGroupBlockTime = 2 * time.Second
	}

	q := &RedisStreamReservationQueueImpl{
		client:   client,
		stream:   StreamKey(partner),
		group:    ConsumerGroupName,
		consumer: "worker:" + consumerID,
		cfg:      cfg,
		log:      logger.WithPartner("reservation-queue", partner),
	}

	err := client.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamReservationQueueImpl) Publish(ctx context.Context, notice *model.ReservationNotice) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("marshal notice: %w", err)
	}

	err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: map[string]interface{}{noticeField: string(body)},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

// Subscribe 新訊息由 XREADGROUP 取得；處理失敗留在 PEL 的訊息由 XAUTOCLAIM 領回重試
func (q *RedisStreamReservationQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	done := make(chan struct{})

	go func() {
		defer close(done)
		q.claimLoop(ctx, out)
	}()

	go func() {
		defer close(out)
		for ctx.Err() == nil {
			q.readNew(ctx, out)
		}
		<-done
	}()

	return out, nil
}

func (q *RedisStreamReservationQueueImpl) readNew(ctx context.Context, out chan<- Delivery) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.group,
		Consumer: q.consumer,
		Streams:  []string{q.stream, ">"},
		Count:    batchSize,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()
	if errors.Is(err, redis.Nil) || ctx.Err() != nil {
		return
	}
	if err != nil {
		q.log.Error("XReadGroup failed", zap.Error(err))
		sleepCtx(ctx, time.Second)
		return
	}

	for _, s := range streams {
		for _, msg := range s.Messages {
			if !q.deliver(ctx, out, msg) {
				return
			}
		}
	}
}

func (q *RedisStreamReservationQueueImpl) claimLoop(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()

	start := "0-0"
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		msgs, next, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   q.stream,
			Group:    q.group,
			Consumer: q.consumer,
			MinIdle:  q.cfg.ClaimMinIdleTime,
			Start:    start,
			Count:    batchSize,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			if ctx.Err() == nil {
				q.log.Error("XAutoClaim failed", zap.Error(err))
			}
			continue
		}

		start = next
		if start == "" {
			start = "0-0"
		}

		for _, msg := range msgs {
			if q.isPoison(ctx, msg.ID) {
				continue
			}
			if !q.deliver(ctx, out, msg) {
				return
			}
		}
	}
}

// isPoison 超過重試上限的訊息直接 ack 丟棄
func (q *RedisStreamReservationQueueImpl) isPoison(ctx context.Context, id string) bool {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.stream,
		Group:  q.group,
		Start:  id,
		End:    id,
		Count:  1,
	}).Result()
	if err != nil || len(pending) == 0 {
		if err != nil && !errors.Is(err, redis.Nil) {
			q.log.Warn("XPendingExt failed", zap.String("message_id", id), zap.Error(err))
		}
		return false
	}

	retries := int(pending[0].RetryCount)
	if retries < q.cfg.MaxRetryCount {
		return false
	}

	q.log.Warn("discard poison message",
		zap.String("message_id", id),
		zap.Int("retries", retries),
		zap.Int("max_retries", q.cfg.MaxRetryCount),
	)
	q.ack(ctx, id)
	return true
}

// deliver 回傳 false 表示 ctx 已結束
func (q *RedisStreamReservationQueueImpl) deliver(ctx context.Context, out chan<- Delivery, msg redis.XMessage) bool {
	notice, err := decodeNotice(msg)
	if err != nil {
		// 格式錯誤的訊息不可能成功，直接丟棄
		q.log.Warn("drop malformed message", zap.String("message_id", msg.ID), zap.Error(err))
		q.ack(ctx, msg.ID)
		return true
	}

	id := msg.ID
	d := Delivery{
		Data: notice,
		Ack:  func() { q.ack(ctx, id) },
		Nack: func(requeue bool) {
			if requeue {
				q.log.Info("message nacked, waiting for reclaim",
					zap.String("message_id", id),
					zap.Duration("claim_min_idle", q.cfg.ClaimMinIdleTime),
				)
				return
			}
			q.ack(ctx, id)
		},
	}

	select {
	case out <- d:
		return true
	case <-ctx.Done():
		return false
	}
}

func (q *RedisStreamReservationQueueImpl) ack(ctx context.Context, id string) {
	if err := q.client.XAck(context.WithoutCancel(ctx), q.stream, q.group, id).Err(); err != nil {
		q.log.Error("XAck failed", zap.String("message_id", id), zap.Error(err))
	}
}

func decodeNotice(msg redis.XMessage) (*model.ReservationNotice, error) {
	raw, ok := msg.Values[noticeField].(string)
	if !ok {
		return nil, fmt.Errorf("missing %q field", noticeField)
	}
	var notice model.ReservationNotice
	if err := json.Unmarshal([]byte(raw), &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
