package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/chat/repository"
	"gosocial-realtime/internal/common"
	"gosocial-realtime/internal/dbmysql"
	applog "gosocial-realtime/internal/logger"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// MessageStore persists chat messages idempotently on their client id.
type MessageStore interface {
	SaveDirect(ctx context.Context, senderID, recipientID int64, draft models.Draft) (*models.Message, error)
	SaveGroup(ctx context.Context, senderID, groupID int64, draft models.Draft) (*models.Message, error)
	// FindDirectMessages and FindGroupMessages return chronological pages
	// ending just before `before` (0 means latest).
	FindDirectMessages(ctx context.Context, userID, partnerID int64, limit int, before int64) ([]*models.Message, error)
	FindGroupMessages(ctx context.Context, groupID int64, limit int, before int64) ([]*models.Message, error)
	FindByClientID(ctx context.Context, clientID string) (*models.Message, error)
	FindByID(ctx context.Context, messageID string) (*models.Message, error)
	DeleteMessage(ctx context.Context, requesterID int64, messageID string) error
}

type messageStore struct {
	messages   repository.MessageRepository
	tombstones repository.TombstoneRepository
	clock      *Clock
	newID      func() string
	log        *slog.Logger
}

// Constructor used in DI/wire
func NewMessageStore(messages repository.MessageRepository, tombstones repository.TombstoneRepository, clock *Clock, log *slog.Logger) MessageStore {
	return &messageStore{
		messages:   messages,
		tombstones: tombstones,
		clock:      clock,
		newID:      uuid.NewString,
		log:        applog.OrDefault(log).With("component", "message_store"),
	}
}

func (s *messageStore) SaveDirect(ctx context.Context, senderID, recipientID int64, draft models.Draft) (*models.Message, error) {
	draft = normalize(draft)
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	ts := s.clock.Next()
	defer s.clock.Done(ts)

	msg, err := models.NewDirect(s.newID(), senderID, recipientID, draft, ts)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, "save direct", msg)
}

func (s *messageStore) SaveGroup(ctx context.Context, senderID, groupID int64, draft models.Draft) (*models.Message, error) {
	draft = normalize(draft)
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	ts := s.clock.Next()
	defer s.clock.Done(ts)

	msg, err := models.NewGroup(s.newID(), senderID, groupID, draft, ts)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, "save group", msg)
}

func (s *messageStore) save(ctx context.Context, op string, msg *models.Message) (*models.Message, error) {
	stored, created, err := s.messages.Insert(ctx, repository.FromModel(msg))
	if err != nil {
		return nil, &common.PersistenceError{Op: op, Err: err}
	}
	if !created {
		if stored.SenderID != msg.SenderID {
			s.log.Warn("client id already used by another sender",
				"cid", msg.ClientID, "sender_id", msg.SenderID,
				"stored_sender_id", stored.SenderID, "message_id", stored.MessageID)
		} else {
			s.log.Debug("duplicate client id, returning stored message",
				"cid", msg.ClientID, "message_id", stored.MessageID)
		}
	}

	out, err := repository.ToModel(stored)
	if err != nil {
		return nil, &common.PersistenceError{Op: op, Err: err}
	}
	return out, nil
}

func (s *messageStore) FindDirectMessages(ctx context.Context, userID, partnerID int64, limit int, before int64) ([]*models.Message, error) {
	if userID <= 0 || partnerID <= 0 {
		return nil, common.Invalid("user and partner ids are required")
	}
	rows, err := s.messages.FindDirect(ctx, userID, partnerID, clampLimit(limit), before)
	if err != nil {
		return nil, &common.PersistenceError{Op: "find direct", Err: err}
	}
	return s.chronological(rows), nil
}

func (s *messageStore) FindGroupMessages(ctx context.Context, groupID int64, limit int, before int64) ([]*models.Message, error) {
	if groupID <= 0 {
		return nil, common.Invalid("group id is required")
	}
	rows, err := s.messages.FindGroup(ctx, groupID, clampLimit(limit), before)
	if err != nil {
		return nil, &common.PersistenceError{Op: "find group", Err: err}
	}
	return s.chronological(rows), nil
}

func (s *messageStore) FindByClientID(ctx context.Context, clientID string) (*models.Message, error) {
	row, err := s.messages.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, lookupError("find by client id", err)
	}
	return repository.ToModel(row)
}

func (s *messageStore) FindByID(ctx context.Context, messageID string) (*models.Message, error) {
	row, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return nil, lookupError("find by id", err)
	}
	return repository.ToModel(row)
}

// DeleteMessage removes a message its sender owns and records a tombstone
// so clients catching up through delta sync drop their copy.
func (s *messageStore) DeleteMessage(ctx context.Context, requesterID int64, messageID string) error {
	row, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return lookupError("delete", err)
	}
	if row.SenderID != requesterID {
		return common.ErrForbidden
	}

	ts := s.clock.Next()
	defer s.clock.Done(ts)

	// tombstone before delete so every deleted row has one
	tomb := models.Tombstone{ItemID: messageID, ItemType: models.ItemTypeMessage, DeletedAt: ts}
	if err := s.tombstones.Append(ctx, tomb); err != nil {
		return &common.PersistenceError{Op: "append tombstone", Err: err}
	}
	if err := s.messages.Delete(ctx, messageID); err != nil {
		return lookupError("delete", err)
	}

	s.log.Info("message deleted", "message_id", messageID, "sender_id", requesterID)
	return nil
}

// rows arrive newest first
func (s *messageStore) chronological(rows []*dbmysql.Message) []*models.Message {
	out := make([]*models.Message, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		m, err := repository.ToModel(rows[i])
		if err != nil {
			s.log.Warn("skipping malformed message row", "error", err)
			continue
		}
		out = append(out, m)
	}
	return out
}

func normalize(d models.Draft) models.Draft {
	d.ClientID = strings.TrimSpace(d.ClientID)
	d.MediaKey = strings.TrimSpace(d.MediaKey)
	return d
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

func lookupError(op string, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrNotFound
	}
	return &common.PersistenceError{Op: op, Err: err}
}
