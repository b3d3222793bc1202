package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 代表拍賣系統中的使用者
// 同一個使用者可以同時是賣家(刊登票券)和買家(對票券出價)
// PasswordHash 僅儲存經過 bcrypt 雜湊後的密碼，不會出現在任何回應中
type User struct {
	gorm.Model

	ID           uuid.UUID `gorm:"type:uuid;default:public.uuid_generate_v7();primaryKey;<-:false"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex:idx_users_username,where:deleted_at IS NULL;not null;<-:create"`
	PasswordHash string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:varchar(254);not null"`
	Address      string    `gorm:"type:varchar(100);not null;default:''"`
	IsStaff      bool      `gorm:"not null;default:false"`
}
