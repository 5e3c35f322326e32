package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table. Exactly one of ReceiverID and GroupID is set.
type MessageModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceiverID *uuid.UUID `gorm:"type:uuid;index"`
	GroupID    *uuid.UUID `gorm:"type:uuid;index"`
	Content    string     `gorm:"type:text;not null"`
	Timestamp  time.Time  `gorm:"not null;index"`
	IsRead     bool       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

// MessageRow is a message joined with sender, receiver and group names.
type MessageRow struct {
	MessageModel
	SenderName   string
	ReceiverName *string
	GroupName    *string
}
