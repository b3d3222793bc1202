package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ticket 代表由賣家刊登的拍賣票券
// 包含票券資訊、底價、拍賣時間區間與成交狀態
// Image 僅儲存外部圖片的 URL，不處理圖片本身的儲存
type Ticket struct {
	gorm.Model

	ID           uuid.UUID  `gorm:"type:uuid;default:public.uuid_generate_v7();primaryKey;<-:false"`
	AuctioneerID uuid.UUID  `gorm:"type:uuid;not null;<-:create"`
	Image        string     `gorm:"type:text;not null;default:''"`
	Validity     time.Time  `gorm:"type:timestamp with time zone;not null"`
	MinPrice     float64    `gorm:"type:numeric(10,2);not null"`
	Details      string     `gorm:"type:text;not null"`
	Categories   string     `gorm:"type:varchar(100);not null"`
	EventVenue   string     `gorm:"type:varchar(10);not null"`
	StartingDate time.Time  `gorm:"type:timestamp with time zone;not null"`
	ExpiryDate   time.Time  `gorm:"type:timestamp with time zone;not null"`
	IsSold       bool       `gorm:"not null;default:false"`
	BidID        *uuid.UUID `gorm:"type:uuid"`

	// 外鍵關聯
	// 不變量: IsSold == true 若且唯若 BidID != nil，成交流程是這兩個欄位唯一的寫入者
	Auctioneer User
	Bid        *Bid  `gorm:"foreignKey:BidID"`
	Biddings   []Bid `gorm:"foreignKey:TicketID"`
}
