package models

import "time"

// BillCategory is a node of the bill category tree. Categories are shared by all users.
type BillCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	ParentID  *uint     `gorm:"index" json:"parent_id"` // nil = root
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BillCategory) TableName() string { return "app_bill_category" }
