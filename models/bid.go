package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bid 代表買家對票券的出價紀錄
// AuctioneerID 是票券擁有者的反正規化欄位，方便以賣家維度查詢出價
type Bid struct {
	*gorm.Model

	ID           uuid.UUID `gorm:"type:uuid;default:public.uuid_generate_v7();primaryKey;<-:false"`
	AuctioneerID uuid.UUID `gorm:"type:uuid;not null;<-:create"`
	TicketID     uuid.UUID `gorm:"type:uuid;not null;<-:create"`
	BidderID     uuid.UUID `gorm:"type:uuid;not null;<-:create"`
	BiddingPrice float64   `gorm:"type:numeric(10,2);not null"`
	BiddingDate  time.Time `gorm:"type:timestamp with time zone;not null"`

	// 外鍵關聯
	Auctioneer User `gorm:"foreignKey:AuctioneerID"`
	Ticket     Ticket
	Bidder     User `gorm:"foreignKey:BidderID"`
}
