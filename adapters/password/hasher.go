package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HasherOptions 定義了 Hasher 的配置選項
type HasherOptions struct {
	Cost int
}

type HasherOption func(*HasherOptions)

// WithCost 設定 bcrypt 的運算成本
func WithCost(cost int) HasherOption {
	return func(o *HasherOptions) {
		o.Cost = cost
	}
}

// Hasher 以 bcrypt 雜湊與驗證密碼
// 系統任何地方都不儲存、不回傳明文密碼
type Hasher struct {
	options HasherOptions
}

// NewHasher 建立一個新的 Hasher 實例
func NewHasher(opts ...HasherOption) *Hasher {
	options := &HasherOptions{Cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(options)
	}
	return &Hasher{options: *options}
}

// Hash 回傳密碼的 bcrypt 雜湊
func (h *Hasher) Hash(raw string) (string, error) {
	const op = "password.Hasher.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), h.options.Cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Verify 檢查明文密碼是否對應到指定的雜湊
func (h *Hasher) Verify(hashed, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}
