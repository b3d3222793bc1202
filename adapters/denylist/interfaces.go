//go:generate mockgen -package=denylist -destination=mock.go -source=interfaces.go

package denylist

import (
	"context"
	"time"
)

// IDenyList 定義已撤銷 refresh token 的儲存介面
// 以 token 的 jti 為鍵，項目在 token 自然過期後即可清除
type IDenyList interface {
	// Revoke 將 jti 加入 deny-list，ttl 到期後項目自動移除
	// jti 已經存在時回傳 ErrAlreadyRevoked
	Revoke(ctx context.Context, jti string, record Record, ttl time.Duration) error
	// IsRevoked 檢查 jti 是否已被撤銷
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
