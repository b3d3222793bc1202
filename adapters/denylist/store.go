package denylist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrAlreadyRevoked 表示該 jti 已經在 deny-list 中
var ErrAlreadyRevoked = errors.New("token already revoked")

// Store 實現了 IDenyList 介面，提供基於 Redis 的撤銷紀錄儲存功能
type Store struct {
	client  *redis.Client // Redis 客戶端連線
	options StoreOptions  // Store 的配置選項
}

// StoreOptions 定義了 Store 的配置選項
type StoreOptions struct {
	Prefix string
}

type StoreOption func(*StoreOptions)

// WithStorePrefix 設定 Store 的 key 前綴
func WithStorePrefix(prefix string) StoreOption {
	return func(o *StoreOptions) {
		o.Prefix = prefix
	}
}

// NewStore 建立一個新的 Store 實例
func NewStore(client *redis.Client, opts ...StoreOption) IDenyList {
	options := &StoreOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &Store{
		client:  client,
		options: *options,
	}
}

// Revoke 以 SETNX 將撤銷紀錄寫入 Redis
// NOTE: SETNX 讓「檢查是否存在」和「寫入」是原子性的，重複撤銷一定會失敗
func (s *Store) Revoke(ctx context.Context, jti string, record Record, ttl time.Duration) error {
	const op = "denylist.Store.Revoke"
	key := s.options.Prefix + jti

	ok, err := s.client.SetNX(ctx, key, record, ttl).Result()
	if err != nil {
		return fmt.Errorf("%s: failed to set revocation record: %w", op, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrAlreadyRevoked)
	}
	return nil
}

// IsRevoked 檢查指定 jti 的撤銷紀錄是否存在
func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	const op = "denylist.Store.IsRevoked"
	key := s.options.Prefix + jti

	count, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%s: failed to check revocation record: %w", op, err)
	}
	return count > 0, nil
}
