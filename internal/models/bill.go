package models

import "time"

// Bill 表示一笔消费记录
// 金额用分存储，避免浮点误差，比如 12.34 元 = 1234 分
type Bill struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	CategoryID   uint      `gorm:"index;not null" json:"category_id"`
	AmountCent   int64     `gorm:"not null" json:"amount_cent"`
	OrderName    string    `gorm:"size:200;not null" json:"order_name"`
	SpendingTime time.Time `gorm:"index;not null" json:"spending_time"` // 消费发生的时间，不是记录时间
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	IsDeleted    bool      `gorm:"index;not null;default:false" json:"is_deleted"`

	Category *BillCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Bill) TableName() string { return "app_bill" }

func (b *Bill) OwnerID() uint { return b.UserID }
