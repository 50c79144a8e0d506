package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "event-partners-api/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// pendingMarker 表示同一把 key 的請求還在處理中
const pendingMarker = "__pending__"

type IdempotencyStore interface {
	// Acquire 取得 key 的處理權；已完成時回傳先前的結果，處理中回傳 ErrRequestInProgress
	Acquire(ctx context.Context, key string) ([]byte, error)
	// Complete 寫入最終結果，之後同 key 的請求直接重播
	Complete(ctx context.Context, key string, payload []byte) error
	// Release 失敗時釋放 key，讓客戶端可以重試
	Release(ctx context.Context, key string) error
}

type RedisIdempotencyStoreImpl struct {
	client     *redis.Client
	namespace  string
	ttl        time.Duration
	pendingTTL time.Duration
}

// NewRedisIdempotencyStore namespace 用來區分不同 partner 的 key。
// pendingTTL 要短，process 在 Complete/Release 之前掛掉時 key 才能盡快重試
func NewRedisIdempotencyStore(client *redis.Client, namespace string, ttl, pendingTTL time.Duration) IdempotencyStore {
	return &RedisIdempotencyStoreImpl{
		client:     client,
		namespace:  namespace,
		ttl:        ttl,
		pendingTTL: pendingTTL,
	}
}

func (s *RedisIdempotencyStoreImpl) getKey(key string) string {
	return fmt.Sprintf("idempotency:%s:%s", s.namespace, key)
}

// 已存在就回傳原值；不存在就寫入 pending 並回傳 nil
var acquireScript = redis.NewScript(`
	local current = redis.call('GET', KEYS[1])
	if current then
		return current
	end
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
	return false
`)

// 只刪除仍在 pending 的 key，避免把別人完成的結果清掉
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

func (s *RedisIdempotencyStoreImpl) Acquire(ctx context.Context, key string) ([]byte, error) {
	result, err := acquireScript.Run(ctx, s.client,
		[]string{s.getKey(key)},
		pendingMarker, s.pendingTTL.Milliseconds(),
	).Text()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if result == pendingMarker {
		return nil, apperrors.ErrRequestInProgress
	}
	return []byte(result), nil
}

func (s *RedisIdempotencyStoreImpl) Complete(ctx context.Context, key string, payload []byte) error {
	return s.client.Set(ctx, s.getKey(key), payload, s.ttl).Err()
}

func (s *RedisIdempotencyStoreImpl) Release(ctx context.Context, key string) error {
	return releaseScript.Run(ctx, s.client, []string{s.getKey(key)}, pendingMarker).Err()
}
