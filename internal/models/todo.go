package models

import "time"

const (
	TodoOpen = 0
	TodoDone = 1

	PriorityNormal    = 0
	PriorityImportant = 1
	PriorityUrgent    = 2
)

type Todo struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	Content   string     `gorm:"type:text" json:"content"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    int        `gorm:"not null;default:0" json:"status"`
	Priority  int        `gorm:"not null;default:0" json:"priority"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`

	Details []TodoDetail `gorm:"foreignKey:TodoID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

func (Todo) TableName() string { return "app_todo" }

func (t *Todo) OwnerID() uint { return t.UserID }

type TodoDetail struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TodoID    uint      `gorm:"index;not null" json:"todo_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    int       `gorm:"not null;default:0" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TodoDetail) TableName() string { return "app_todo_detail" }
