package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Food is a diet entry. Unlike the other personal records it is removed outright on delete.
type Food struct {
	ID        uint                `gorm:"primaryKey" json:"id"`
	UserID    uint                `gorm:"index;not null" json:"user_id"`
	Name      string              `gorm:"size:100;not null" json:"name"`
	Calories  decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"calories"` // 千卡
	MealTime  time.Time           `gorm:"index;not null" json:"meal_time"`
	Remark    string              `gorm:"type:text" json:"remark"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func (Food) TableName() string { return "app_food" }

func (f *Food) OwnerID() uint { return f.UserID }
