package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tixbid/models"
)

// gormStore 是 IStore 的 GORM/PostgreSQL 實作
// 需要 gorm.Config 開啟 TranslateError，唯一性違反才會轉換成 gorm.ErrDuplicatedKey
type gormStore struct {
	db *gorm.DB
}

// NewGormStore 以現有的資料庫連線建立 IStore
func NewGormStore(db *gorm.DB) IStore {
	return &gormStore{db: db}
}

func (s *gormStore) Users() IUserRepository {
	return &gormUserRepository{db: s.db}
}

func (s *gormStore) Tickets() ITicketRepository {
	return &gormTicketRepository{db: s.db}
}

func (s *gormStore) Bids() IBidRepository {
	return &gormBidRepository{db: s.db}
}

// Transaction 在單一資料庫交易中執行 fn，fn 內透過 tx 取得的 repository 都綁定同一個交易
func (s *gormStore) Transaction(ctx context.Context, fn func(tx IStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// applyGetOptions 套用查詢選項到 query 上
func applyGetOptions(query *gorm.DB, opts []GetOption) *gorm.DB {
	options := GetOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.LockForUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return query
}

// translateError 將 GORM 錯誤轉換成 repository 層的 sentinel 錯誤
func translateError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, ErrDuplicated)
	}
	return fmt.Errorf("%s: %w", op, err)
}

type gormUserRepository struct {
	db *gorm.DB
}

func (r *gormUserRepository) Create(ctx context.Context, user *models.User) error {
	const op = "gormUserRepository.Create"
	if result := r.db.WithContext(ctx).Create(user); result.Error != nil {
		return translateError(op, result.Error)
	}
	return nil
}

func (r *gormUserRepository) Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*models.User, error) {
	const op = "gormUserRepository.Get"
	user := models.User{ID: id}
	query := applyGetOptions(r.db.WithContext(ctx), opts)
	if result := query.First(&user); result.Error != nil {
		return nil, translateError(op, result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "gormUserRepository.GetByUsername"
	var user models.User
	if result := r.db.WithContext(ctx).Where("username = ?", username).First(&user); result.Error != nil {
		return nil, translateError(op, result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) List(ctx context.Context) ([]models.User, error) {
	const op = "gormUserRepository.List"
	var users []models.User
	if result := r.db.WithContext(ctx).Order("created_at, id").Find(&users); result.Error != nil {
		return nil, translateError(op, result.Error)
	}
	return users, nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *models.User) error {
	const op = "gormUserRepository.Update"
	if result := r.db.WithContext(ctx).Save(user); result.Error != nil {
		return translateError(op, result.Error)
	}
	return nil
}

func (r *gormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "gormUserRepository.Delete"
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return translateError(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

type gormTicketRepository struct {
	db *gorm.DB
}

func (r *gormTicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	const op = "gormTicketRepository.Create"
	if result := r.db.WithContext(ctx).Omit(clause.Associations).Create(ticket); result.Error != nil {
		return translateError(op, result.Error)
	}
	return nil
}

func (r *gormTicketRepository) Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*models.Ticket, error) {
	const op = "gormTicketRepository.Get"
	ticket := models.Ticket{ID: id}
	query := applyGetOptions(r.db.WithContext(ctx), opts)
	if result := query.First(&ticket); result.Error != nil {
		return nil, translateError(op, result.Error)
	}
	return &ticket, nil
}

func (r *gormTicketRepository) List(ctx context.Context) ([]models.Ticket, error) {
	const op = "gormTicketRepository.List"
	var tickets []models.Ticket
	if result := r.db.WithContext(ctx).Order("created_at, id").Find(&tickets); result.Error != nil {
		return nil, translateError(op, result.Error)
	}
	return tickets, nil
}

func (r *gormTicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	const op = "gormTicketRepository.Update"
	if result := r.db.WithContext(ctx).Omit(clause.Associations).Save(ticket); result.Error != nil {
		return translateError(op, result.Error)
	}
	return nil
}

func (r *gormTicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "gormTicketRepository.Delete"
	result := r.db.WithContext(ctx).Delete(&models.Ticket{}, "id = ?", id)
	if result.Error != nil {
		return translateError(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

type gormBidRepository struct {
	db *gorm.DB
}

func (r *gormBidRepository) Create(ctx context.Context, bid *models.Bid) error {
	const op = "gormBidRepository.Create"
	if result := r.db.WithContext(ctx).Omit(clause.Associations).Create(bid); result.Error != nil {
		return translateError(op, result.Error)
	}
	return nil
}

func (r *gormBidRepository) Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*models.Bid, error) {
	const op = "gormBidRepository.Get"
	bid := models.Bid{ID: id}
	query := applyGetOptions(r.db.WithContext(ctx), opts)
	if result := query.First(&bid); result.Error != nil {
		return nil, translateError(op, result.Error)
	}
	return &bid, nil
}

func (r *gormBidRepository) List(ctx context.Context) ([]models.Bid, error) {
	const op = "gormBidRepository.List"
	var bids []models.Bid
	if result := r.db.WithContext(ctx).Order("created_at, id").Find(&bids); result.Error != nil {
		return nil, translateError(op, result.Error)
	}
	return bids, nil
}

// ListByTicket 回傳指定票券的所有出價，依寫入順序排序
// 沒有任何出價時回傳空的 slice，不視為錯誤
func (r *gormBidRepository) ListByTicket(ctx context.Context, ticketID uuid.UUID) ([]models.Bid, error) {
	const op = "gormBidRepository.ListByTicket"
	var bids []models.Bid
	result := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at, id").
		Find(&bids)
	if result.Error != nil {
		return nil, translateError(op, result.Error)
	}
	return bids, nil
}

func (r *gormBidRepository) Update(ctx context.Context, bid *models.Bid) error {
	const op = "gormBidRepository.Update"
	if result := r.db.WithContext(ctx).Omit(clause.Associations).Save(bid); result.Error != nil {
		return translateError(op, result.Error)
	}
	return nil
}

func (r *gormBidRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "gormBidRepository.Delete"
	result := r.db.WithContext(ctx).Delete(&models.Bid{}, "id = ?", id)
	if result.Error != nil {
		return translateError(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
