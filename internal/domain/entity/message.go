package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind distinguishes direct messages from group messages.
type MessageKind string

const (
	MessageKindDirect MessageKind = "direct"
	MessageKindGroup  MessageKind = "group"
)

// Message is addressed to exactly one of a receiver or a group.
type Message struct {
	ID           uuid.UUID  `json:"id"`
	SenderID     uuid.UUID  `json:"sender"`
	SenderName   string     `json:"sender_name"`
	ReceiverID   *uuid.UUID `json:"receiver"`
	ReceiverName string     `json:"receiver_name,omitempty"`
	GroupID      *uuid.UUID `json:"group"`
	GroupName    string     `json:"group_name,omitempty"`
	Content      string     `json:"content"`
	Timestamp    time.Time  `json:"timestamp"`
	IsRead       bool       `json:"is_read"`
}

// Kind returns whether the message is direct or addressed to a group.
func (m *Message) Kind() MessageKind {
	if m.GroupID != nil {
		return MessageKindGroup
	}

	return MessageKindDirect
}

// HasValidRecipient reports whether exactly one of receiver and group is set.
func (m *Message) HasValidRecipient() bool {
	return (m.ReceiverID == nil) != (m.GroupID == nil)
}

// IsReceiver reports whether userID is the direct receiver.
func (m *Message) IsReceiver(userID uuid.UUID) bool {
	return m.ReceiverID != nil && *m.ReceiverID == userID
}

// Conversations splits a user's messages into direct and group threads.
type Conversations struct {
	Direct []*Message `json:"direct_messages"`
	Group  []*Message `json:"group_messages"`
}
