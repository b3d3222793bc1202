package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"tixbid/models"
	"tixbid/repository"
)

// AuctionService 負責拍賣的成交與出價查詢流程
type AuctionService struct {
	store repository.IStore
}

// NewAuctionService 建立新的 AuctionService
func NewAuctionService(store repository.IStore) *AuctionService {
	return &AuctionService{store: store}
}

// SellTicket 把票券成交給指定的出價
// 整個檢查與寫入在單一交易內執行，並對票券持有 row lock，
// 讓同一張票券上的並發成交請求序列化，保證只會有一個贏家
//
// 流程:
//   - 1. 查詢票券，不存在則回傳 ErrTicketNotFound
//   - 2. 票券已成交則回傳 ErrTicketAlreadySold，原本的得標出價不變
//   - 3. 未指定出價則回傳 ErrNoBidderSelected
//   - 4. 查詢出價，不存在或不屬於這張票券則回傳 ErrInvalidBidder
//   - 5. 標記票券已售出並綁定得標出價，只寫入票券本身
func (s *AuctionService) SellTicket(ctx context.Context, ticketID uuid.UUID, bidID *uuid.UUID) (*models.Ticket, error) {
	const op = "AuctionService.SellTicket"

	var sold *models.Ticket
	err := s.store.Transaction(ctx, func(tx repository.IStore) error {
		ticket, err := tx.Tickets().Get(ctx, ticketID, repository.WithLockForUpdate())
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTicketNotFound
		}
		if err != nil {
			return fmt.Errorf("[%s] Fail to find ticket, err=%w", op, err)
		}

		if ticket.IsSold {
			return ErrTicketAlreadySold
		}

		if bidID == nil {
			return ErrNoBidderSelected
		}

		bid, err := tx.Bids().Get(ctx, *bidID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidBidder
		}
		if err != nil {
			return fmt.Errorf("[%s] Fail to find bid, err=%w", op, err)
		}
		// 得標出價必須屬於成交中的票券，拒絕跨票券的出價
		if bid.TicketID != ticket.ID {
			return ErrInvalidBidder
		}

		ticket.IsSold = true
		ticket.BidID = &bid.ID
		if err := tx.Tickets().Update(ctx, ticket); err != nil {
			return fmt.Errorf("[%s] Fail to update ticket, err=%w", op, err)
		}
		sold = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Ticket sold", slog.String("ticketID", ticketID.String()), slog.String("bidID", bidID.String()))
	return sold, nil
}

// BidsByTicket 回傳指定票券的所有出價，依寫入順序排序
// 票券沒有任何出價時回傳空的列表，不視為錯誤
func (s *AuctionService) BidsByTicket(ctx context.Context, ticketID uuid.UUID) ([]models.Bid, error) {
	const op = "AuctionService.BidsByTicket"

	bids, err := s.store.Bids().ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list bids, err=%w", op, err)
	}
	return bids, nil
}
