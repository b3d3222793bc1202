//go:generate mockgen -package=repository -destination=mock.go -source=interfaces.go

package repository

import (
	"context"

	"github.com/google/uuid"

	"tixbid/models"
)

// GetOptions 定義單筆查詢的選項
type GetOptions struct {
	LockForUpdate bool
}

type GetOption func(*GetOptions)

// WithLockForUpdate 讓查詢在交易中持有 row lock (SELECT ... FOR UPDATE)
// 成交流程依賴這個鎖讓同一張票券上的並發成交請求序列化
func WithLockForUpdate() GetOption {
	return func(o *GetOptions) {
		o.LockForUpdate = true
	}
}

// IUserRepository 定義使用者的儲存操作介面
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ITicketRepository 定義票券的儲存操作介面
type ITicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*models.Ticket, error)
	List(ctx context.Context) ([]models.Ticket, error)
	Update(ctx context.Context, ticket *models.Ticket) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// IBidRepository 定義出價紀錄的儲存操作介面
type IBidRepository interface {
	Create(ctx context.Context, bid *models.Bid) error
	Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*models.Bid, error)
	List(ctx context.Context) ([]models.Bid, error)
	ListByTicket(ctx context.Context, ticketID uuid.UUID) ([]models.Bid, error)
	Update(ctx context.Context, bid *models.Bid) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// IStore 聚合所有 repository，並提供交易邊界
// Transaction 內拿到的 IStore 共用同一個交易，fn 回傳錯誤時整個交易回滾
type IStore interface {
	Users() IUserRepository
	Tickets() ITicketRepository
	Bids() IBidRepository
	Transaction(ctx context.Context, fn func(tx IStore) error) error
}
