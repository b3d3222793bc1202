package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"tixbid/models"
)

// MemoryStore 是 IStore 的並發安全記憶體實作，主要用於測試
// 交易以全域鎖加上快照回滾模擬：fn 回傳錯誤時，交易期間的所有寫入都會被還原
type MemoryStore struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users   map[uuid.UUID]models.User
	tickets map[uuid.UUID]models.Ticket
	bids    map[uuid.UUID]models.Bid

	// 依寫入順序保存 ID，讓 List 類操作回傳穩定的插入順序
	userOrder   []uuid.UUID
	ticketOrder []uuid.UUID
	bidOrder    []uuid.UUID
}

// NewMemoryStore 建立一個空的記憶體儲存
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[uuid.UUID]models.User),
		tickets: make(map[uuid.UUID]models.Ticket),
		bids:    make(map[uuid.UUID]models.Bid),
	}
}

func (s *MemoryStore) Users() IUserRepository {
	return &memoryUserRepository{store: s}
}

func (s *MemoryStore) Tickets() ITicketRepository {
	return &memoryTicketRepository{store: s}
}

func (s *MemoryStore) Bids() IBidRepository {
	return &memoryBidRepository{store: s}
}

// Transaction 序列化所有交易並在 fn 失敗時還原快照
// row lock 選項在記憶體實作中沒有額外效果，交易本身已經互斥
func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx IStore) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.restore(snapshot)
		s.mu.Unlock()
		return err
	}
	return nil
}

type memorySnapshot struct {
	users   map[uuid.UUID]models.User
	tickets map[uuid.UUID]models.Ticket
	bids    map[uuid.UUID]models.Bid

	userOrder   []uuid.UUID
	ticketOrder []uuid.UUID
	bidOrder    []uuid.UUID
}

func (s *MemoryStore) clone() memorySnapshot {
	snapshot := memorySnapshot{
		users:       make(map[uuid.UUID]models.User, len(s.users)),
		tickets:     make(map[uuid.UUID]models.Ticket, len(s.tickets)),
		bids:        make(map[uuid.UUID]models.Bid, len(s.bids)),
		userOrder:   append([]uuid.UUID(nil), s.userOrder...),
		ticketOrder: append([]uuid.UUID(nil), s.ticketOrder...),
		bidOrder:    append([]uuid.UUID(nil), s.bidOrder...),
	}
	for id, user := range s.users {
		snapshot.users[id] = user
	}
	for id, ticket := range s.tickets {
		snapshot.tickets[id] = ticket
	}
	for id, bid := range s.bids {
		snapshot.bids[id] = bid
	}
	return snapshot
}

// dropID 從順序清單移除指定的 ID，刪除後同一個 ID 才能重新寫入而不重複
func dropID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	return lo.Reject(ids, func(existing uuid.UUID, _ int) bool {
		return existing == id
	})
}

func (s *MemoryStore) restore(snapshot memorySnapshot) {
	s.users = snapshot.users
	s.tickets = snapshot.tickets
	s.bids = snapshot.bids
	s.userOrder = snapshot.userOrder
	s.ticketOrder = snapshot.ticketOrder
	s.bidOrder = snapshot.bidOrder
}

type memoryUserRepository struct {
	store *MemoryStore
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	const op = "memoryUserRepository.Create"
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Username == user.Username {
			return fmt.Errorf("%s: %w", op, ErrDuplicated)
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.store.users[user.ID] = *user
	r.store.userOrder = append(r.store.userOrder, user.ID)
	return nil
}

func (r *memoryUserRepository) Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*models.User, error) {
	const op = "memoryUserRepository.Get"
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "memoryUserRepository.GetByUsername"
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range r.store.userOrder {
		if user, ok := r.store.users[id]; ok && user.Username == username {
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
}

func (r *memoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]models.User, 0, len(r.store.users))
	for _, id := range r.store.userOrder {
		if user, ok := r.store.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *models.User) error {
	const op = "memoryUserRepository.Update"
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "memoryUserRepository.Delete"
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	delete(r.store.users, id)
	r.store.userOrder = dropID(r.store.userOrder, id)
	return nil
}

type memoryTicketRepository struct {
	store *MemoryStore
}

func (r *memoryTicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	r.store.tickets[ticket.ID] = *ticket
	r.store.ticketOrder = append(r.store.ticketOrder, ticket.ID)
	return nil
}

func (r *memoryTicketRepository) Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*models.Ticket, error) {
	const op = "memoryTicketRepository.Get"
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ticket, ok := r.store.tickets[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return &ticket, nil
}

func (r *memoryTicketRepository) List(ctx context.Context) ([]models.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tickets := make([]models.Ticket, 0, len(r.store.tickets))
	for _, id := range r.store.ticketOrder {
		if ticket, ok := r.store.tickets[id]; ok {
			tickets = append(tickets, ticket)
		}
	}
	return tickets, nil
}

func (r *memoryTicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	const op = "memoryTicketRepository.Update"
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tickets[ticket.ID]; !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	r.store.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memoryTicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "memoryTicketRepository.Delete"
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tickets[id]; !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	delete(r.store.tickets, id)
	r.store.ticketOrder = dropID(r.store.ticketOrder, id)
	return nil
}

type memoryBidRepository struct {
	store *MemoryStore
}

func (r *memoryBidRepository) Create(ctx context.Context, bid *models.Bid) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if bid.ID == uuid.Nil {
		bid.ID = uuid.New()
	}
	r.store.bids[bid.ID] = *bid
	r.store.bidOrder = append(r.store.bidOrder, bid.ID)
	return nil
}

func (r *memoryBidRepository) Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*models.Bid, error) {
	const op = "memoryBidRepository.Get"
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bid, ok := r.store.bids[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return &bid, nil
}

func (r *memoryBidRepository) List(ctx context.Context) ([]models.Bid, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bids := make([]models.Bid, 0, len(r.store.bids))
	for _, id := range r.store.bidOrder {
		if bid, ok := r.store.bids[id]; ok {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

func (r *memoryBidRepository) ListByTicket(ctx context.Context, ticketID uuid.UUID) ([]models.Bid, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bids := make([]models.Bid, 0)
	for _, id := range r.store.bidOrder {
		if bid, ok := r.store.bids[id]; ok && bid.TicketID == ticketID {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

func (r *memoryBidRepository) Update(ctx context.Context, bid *models.Bid) error {
	const op = "memoryBidRepository.Update"
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bids[bid.ID]; !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	r.store.bids[bid.ID] = *bid
	return nil
}

func (r *memoryBidRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "memoryBidRepository.Delete"
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bids[id]; !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	delete(r.store.bids, id)
	r.store.bidOrder = dropID(r.store.bidOrder, id)
	return nil
}
