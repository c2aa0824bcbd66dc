package models

import (
	"gosocial-realtime/internal/common"
)

// Message is a persisted chat message. It is either direct (ReceiverID set)
// or group (GroupID set); the constructors enforce that exactly one is.
type Message struct {
	MessageID  string             `json:"messageId"`
	ClientID   string             `json:"cid,omitempty"`
	SenderID   int64              `json:"senderId"`
	ReceiverID int64              `json:"receiverId,omitempty"`
	GroupID    int64              `json:"groupId,omitempty"`
	Content    string             `json:"content"`
	MediaKey   string             `json:"mediaKey,omitempty"`
	Type       common.MessageType `json:"messageType"`
	Timestamp  int64              `json:"timestamp"`
}

// Draft is what a sender supplies; the store fills in the rest.
type Draft struct {
	ClientID string
	Content  string
	MediaKey string
	Type     common.MessageType
}

func (d Draft) Validate() error {
	if d.Content == "" && d.MediaKey == "" {
		return common.Invalid("message needs content or a media key")
	}
	if err := common.ValidateClientID(d.ClientID); err != nil {
		return err
	}
	return common.ValidateMediaKey(d.MediaKey)
}

func NewDirect(messageID string, senderID, receiverID int64, d Draft, ts int64) (*Message, error) {
	if senderID <= 0 {
		return nil, common.Invalid("sender id is required")
	}
	if receiverID <= 0 {
		return nil, common.Invalid("recipient id is required")
	}
	return build(messageID, senderID, d, ts, func(m *Message) { m.ReceiverID = receiverID }), nil
}

func NewGroup(messageID string, senderID, groupID int64, d Draft, ts int64) (*Message, error) {
	if senderID <= 0 {
		return nil, common.Invalid("sender id is required")
	}
	if groupID <= 0 {
		return nil, common.Invalid("group id is required")
	}
	return build(messageID, senderID, d, ts, func(m *Message) { m.GroupID = groupID }), nil
}

func build(messageID string, senderID int64, d Draft, ts int64, target func(*Message)) *Message {
	m := &Message{
		MessageID: messageID,
		ClientID:  d.ClientID,
		SenderID:  senderID,
		Content:   d.Content,
		MediaKey:  d.MediaKey,
		Type:      common.ResolveMessageType(d.Type, d.MediaKey),
		Timestamp: ts,
	}
	target(m)
	return m
}

func (m *Message) IsGroup() bool {
	return m.GroupID != 0
}

// Involves reports whether userID takes part in a direct message.
func (m *Message) Involves(userID int64) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
