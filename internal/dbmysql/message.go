package dbmysql

import (
	"time"
)

// Message is the persisted chat row. Exactly one of ReceiverID or GroupID is
// expected to be set; readers must tolerate rows that violate this.
type Message struct {
	MessageID   string    `gorm:"column:message_id;primaryKey;size:36" json:"message_id"`
	ClientID    *string   `gorm:"column:client_id;uniqueIndex;size:64" json:"client_id,omitempty"`
	SenderID    int64     `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID  *int64    `gorm:"column:receiver_id;index" json:"receiver_id,omitempty"`
	GroupID     *int64    `gorm:"column:group_id;index" json:"group_id,omitempty"`
	Content     string    `gorm:"column:content;type:text" json:"content"`
	MediaKey    *string   `gorm:"column:media_key;size:512" json:"media_key,omitempty"`
	MessageType string    `gorm:"column:message_type;size:16;default:'text'" json:"message_type"`
	Timestamp   int64     `gorm:"column:timestamp;not null;index" json:"timestamp"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Message) TableName() string { return "messages" }
