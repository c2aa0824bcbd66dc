package repository

import (
	"errors"
	"fmt"

	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/common"
	"gosocial-realtime/internal/dbmysql"
)

// ErrMalformedRow marks a stored message that is neither direct nor group.
var ErrMalformedRow = errors.New("message row has no single target")

func FromModel(m *models.Message) *dbmysql.Message {
	row := &dbmysql.Message{
		MessageID:   m.MessageID,
		SenderID:    m.SenderID,
		Content:     m.Content,
		MessageType: string(m.Type),
		Timestamp:   m.Timestamp,
	}
	if m.ClientID != "" {
		cid := m.ClientID
		row.ClientID = &cid
	}
	if m.MediaKey != "" {
		key := m.MediaKey
		row.MediaKey = &key
	}
	if m.IsGroup() {
		gid := m.GroupID
		row.GroupID = &gid
	} else {
		rid := m.ReceiverID
		row.ReceiverID = &rid
	}
	return row
}

// ToModel converts a row, rejecting rows that violate the direct/group XOR.
func ToModel(row *dbmysql.Message) (*models.Message, error) {
	hasReceiver := row.ReceiverID != nil && *row.ReceiverID > 0
	hasGroup := row.GroupID != nil && *row.GroupID > 0
	if hasReceiver == hasGroup {
		return nil, fmt.Errorf("%w: %s", ErrMalformedRow, row.MessageID)
	}

	m := &models.Message{
		MessageID: row.MessageID,
		SenderID:  row.SenderID,
		Content:   row.Content,
		Timestamp: row.Timestamp,
	}
	if row.ClientID != nil {
		m.ClientID = *row.ClientID
	}
	if row.MediaKey != nil {
		m.MediaKey = *row.MediaKey
	}
	m.Type = common.ResolveMessageType(common.MessageType(row.MessageType), m.MediaKey)
	if hasGroup {
		m.GroupID = *row.GroupID
	} else {
		m.ReceiverID = *row.ReceiverID
	}
	return m, nil
}
