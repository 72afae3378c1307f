package models

import "time"

const (
	SexMale   = 1
	SexFemale = 2

	BirthLunar = 1 // 农历
	BirthSolar = 2 // 公历
)

type Friend struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	Name         string     `gorm:"size:50;not null" json:"name"`
	Sex          int        `json:"sex"`
	BirthDate    *time.Time `json:"birth_date"`
	BirthType    int        `json:"birth_type"`
	Avatar       string     `gorm:"size:200" json:"avatar"`
	Phone        string     `gorm:"size:20" json:"phone"`
	QQ           string     `gorm:"column:qq;size:20" json:"qq"`
	Wechat       string     `gorm:"size:50" json:"wechat"`
	Email        string     `gorm:"size:100" json:"email"`
	LiveAddress  string     `gorm:"size:200" json:"live_address"`
	Address      string     `gorm:"size:200" json:"address"`
	School       string     `gorm:"size:100" json:"school"`
	Disposition  string     `gorm:"size:200" json:"disposition"` // 性格
	Remark       string     `gorm:"type:text" json:"remark"`
	Advantage    string     `gorm:"type:text" json:"advantage"`
	Disadvantage string     `gorm:"type:text" json:"disadvantage"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	IsDeleted    bool       `gorm:"index;not null;default:false" json:"is_deleted"`

	Phones  []FriendPhone  `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE" json:"phones,omitempty"`
	QQs     []FriendQQ     `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE" json:"qqs,omitempty"`
	Wechats []FriendWechat `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE" json:"wechats,omitempty"`
	Emails  []FriendEmail  `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE" json:"emails,omitempty"`
}

func (Friend) TableName() string { return "app_friend" }

func (f *Friend) OwnerID() uint { return f.UserID }

// FriendPhone and its siblings hold identities beyond the single inline field on Friend.
type FriendPhone struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FriendID uint   `gorm:"index;not null" json:"friend_id"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
}

func (FriendPhone) TableName() string { return "app_friend_phone" }

type FriendQQ struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FriendID uint   `gorm:"index;not null" json:"friend_id"`
	QQ       string `gorm:"column:qq;size:20;not null" json:"qq"`
	Nickname string `gorm:"size:50" json:"nickname"`
	Avatar   string `gorm:"size:200" json:"avatar"`
}

func (FriendQQ) TableName() string { return "app_friend_qq" }

type FriendWechat struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FriendID uint   `gorm:"index;not null" json:"friend_id"`
	Wechat   string `gorm:"size:50;not null" json:"wechat"`
	Nickname string `gorm:"size:50" json:"nickname"`
	Avatar   string `gorm:"size:200" json:"avatar"`
}

func (FriendWechat) TableName() string { return "app_friend_wechat" }

type FriendEmail struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FriendID uint   `gorm:"index;not null" json:"friend_id"`
	Email    string `gorm:"size:100;not null" json:"email"`
}

func (FriendEmail) TableName() string { return "app_friend_email" }
