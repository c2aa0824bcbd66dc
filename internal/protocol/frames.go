// Package protocol defines the JSON frames exchanged over a realtime
// connection. Every frame carries a `kind` discriminator.
package protocol

import (
	"encoding/json"

	"gosocial-realtime/internal/chat/models"
)

type Kind string

const (
	KindChat           Kind = "chat"
	KindAck            Kind = "ack"
	KindStatus         Kind = "status"
	KindPresenceList   Kind = "presence_list"
	KindTyping         Kind = "typing"
	KindDeliveryStatus Kind = "delivery_status"
	KindSignal         Kind = "signal"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	AckSent       = "SENT"

	DeliveryDelivered = "DELIVERED"
	DeliveryRead      = "READ"
)

type SignalType string

const (
	SignalOffer        SignalType = "OFFER"
	SignalAnswer       SignalType = "ANSWER"
	SignalICECandidate SignalType = "ICE_CANDIDATE"
	SignalHangup       SignalType = "HANGUP"
	SignalBusy         SignalType = "BUSY"
)

func (s SignalType) IsValid() bool {
	switch s {
	case SignalOffer, SignalAnswer, SignalICECandidate, SignalHangup, SignalBusy:
		return true
	}
	return false
}

// Frame is anything that can travel on the wire.
type Frame interface {
	FrameKind() Kind
}

// Chat is sent by clients (RecipientID or GroupID) and broadcast by the
// server (ReceiverID or GroupID, plus sender and timestamp).
type Chat struct {
	Kind        Kind   `json:"kind"`
	MessageID   string `json:"messageId,omitempty"`
	CID         string `json:"cid,omitempty"`
	SenderID    int64  `json:"senderId,omitempty"`
	SenderName  string `json:"senderName,omitempty"`
	Content     string `json:"content"`
	Timestamp   int64  `json:"timestamp,omitempty"`
	RecipientID int64  `json:"recipientId,omitempty"`
	ReceiverID  int64  `json:"receiverId,omitempty"`
	GroupID     int64  `json:"groupId,omitempty"`
	MediaKey    string `json:"mediaKey,omitempty"`
	MessageType string `json:"messageType,omitempty"`
}

type Ack struct {
	Kind   Kind   `json:"kind"`
	ID     string `json:"id"`
	CID    string `json:"cid"`
	Status string `json:"status"`
}

type Status struct {
	Kind   Kind   `json:"kind"`
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

type PresenceList struct {
	Kind          Kind    `json:"kind"`
	OnlineUserIDs []int64 `json:"onlineUserIds"`
}

type Typing struct {
	Kind        Kind  `json:"kind"`
	SenderID    int64 `json:"senderId"`
	IsTyping    bool  `json:"isTyping"`
	RecipientID int64 `json:"recipientId,omitempty"`
	GroupID     int64 `json:"groupId,omitempty"`
}

type DeliveryStatus struct {
	Kind        Kind   `json:"kind"`
	MessageID   string `json:"messageId,omitempty"`
	CID         string `json:"cid"`
	Status      string `json:"status"`
	UserID      int64  `json:"userId"`
	RecipientID int64  `json:"recipientId,omitempty"`
	GroupID     int64  `json:"groupId,omitempty"`
}

type Signal struct {
	Kind       Kind            `json:"kind"`
	Type       SignalType      `json:"type"`
	SenderID   int64           `json:"senderId"`
	ReceiverID int64           `json:"receiverId"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

func (*Chat) FrameKind() Kind           { return KindChat }
func (*Ack) FrameKind() Kind            { return KindAck }
func (*Status) FrameKind() Kind         { return KindStatus }
func (*PresenceList) FrameKind() Kind   { return KindPresenceList }
func (*Typing) FrameKind() Kind         { return KindTyping }
func (*DeliveryStatus) FrameKind() Kind { return KindDeliveryStatus }
func (*Signal) FrameKind() Kind         { return KindSignal }

func NewAck(messageID, cid string) *Ack {
	return &Ack{Kind: KindAck, ID: messageID, CID: cid, Status: AckSent}
}

func NewStatus(userID int64, online bool) *Status {
	s := &Status{Kind: KindStatus, UserID: userID, Status: StatusOffline}
	if online {
		s.Status = StatusOnline
	}
	return s
}

func NewPresenceList(online []int64) *PresenceList {
	if online == nil {
		online = []int64{}
	}
	return &PresenceList{Kind: KindPresenceList, OnlineUserIDs: online}
}

// NewBusy answers an OFFER whose target has no open connection.
func NewBusy(offer *Signal) *Signal {
	return &Signal{Kind: KindSignal, Type: SignalBusy, SenderID: offer.ReceiverID, ReceiverID: offer.SenderID}
}

// ChatFromMessage renders a stored message as a broadcast frame.
func ChatFromMessage(m *models.Message, senderName string) *Chat {
	return &Chat{
		Kind:        KindChat,
		MessageID:   m.MessageID,
		CID:         m.ClientID,
		SenderID:    m.SenderID,
		SenderName:  senderName,
		Content:     m.Content,
		Timestamp:   m.Timestamp,
		ReceiverID:  m.ReceiverID,
		GroupID:     m.GroupID,
		MediaKey:    m.MediaKey,
		MessageType: string(m.Type),
	}
}
