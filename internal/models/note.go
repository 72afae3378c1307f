package models

import "time"

// NoteType is a flat tag shared by all users.
type NoteType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (NoteType) TableName() string { return "app_note_type" }

type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	TypeID    *uint     `gorm:"index" json:"type_id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsDeleted bool      `gorm:"index;not null;default:false" json:"is_deleted"`

	Type  *NoteType  `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Attrs []NoteAttr `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE" json:"attrs,omitempty"`
}

func (Note) TableName() string { return "app_note" }

func (n *Note) OwnerID() uint { return n.UserID }

// NoteAttr is an open-ended key/value attribute of a note.
type NoteAttr struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	NoteID uint   `gorm:"index;not null" json:"note_id"`
	Key    string `gorm:"column:key;size:50;not null" json:"key"`
	Value  string `gorm:"type:text" json:"value"`
}

func (NoteAttr) TableName() string { return "app_note_attr" }
