package delta

import (
	"context"
	"log/slog"

	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/chat/repository"
	"gosocial-realtime/internal/common"
	applog "gosocial-realtime/internal/logger"
)

const DefaultPageSize = 500

// GroupLister resolves the groups a user currently belongs to.
type GroupLister interface {
	GroupIDsForUser(ctx context.Context, userID int64) ([]int64, error)
}

// Watermarker bounds a sync window to writes that have completed.
type Watermarker interface {
	Watermark() int64
}

// Engine computes what a user missed since a watermark.
type Engine interface {
	GetDelta(ctx context.Context, userID, lastTs int64) (*models.Delta, error)
}

type engine struct {
	messages   repository.MessageRepository
	tombstones repository.TombstoneRepository
	groups     GroupLister
	clock      Watermarker
	pageSize   int
	log        *slog.Logger
}

func NewEngine(messages repository.MessageRepository, tombstones repository.TombstoneRepository, groups GroupLister, clock Watermarker, pageSize int, log *slog.Logger) Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &engine{
		messages:   messages,
		tombstones: tombstones,
		groups:     groups,
		clock:      clock,
		pageSize:   pageSize,
		log:        applog.OrDefault(log).With("component", "delta_sync"),
	}
}

// GetDelta returns messages and tombstones in (lastTs, NextTs]. Group
// participation uses current membership.
func (e *engine) GetDelta(ctx context.Context, userID, lastTs int64) (*models.Delta, error) {
	if userID <= 0 {
		return nil, common.Invalid("user id is required")
	}
	if lastTs < 0 {
		return nil, common.Invalid("last_ts must not be negative")
	}

	out := &models.Delta{
		Messages:   []*models.Message{},
		Tombstones: []models.Tombstone{},
	}

	upTo := e.clock.Watermark()
	if lastTs >= upTo {
		// never hand the cursor back
		out.NextTs = lastTs
		return out, nil
	}

	groupIDs, err := e.groups.GroupIDsForUser(ctx, userID)
	if err != nil {
		return nil, &common.PersistenceError{Op: "list groups", Err: err}
	}

	rows, err := e.messages.FindSince(ctx, userID, groupIDs, lastTs, upTo, e.pageSize+1)
	if err != nil {
		return nil, &common.PersistenceError{Op: "find since", Err: err}
	}

	out.NextTs = upTo
	if len(rows) > e.pageSize {
		rows = rows[:e.pageSize]
		out.HasMore = true
		out.NextTs = rows[len(rows)-1].Timestamp
	}

	for _, row := range rows {
		msg, err := repository.ToModel(row)
		if err != nil {
			e.log.Warn("skipping malformed message row", "user_id", userID, "error", err)
			continue
		}
		out.Messages = append(out.Messages, msg)
	}

	tombs, err := e.tombstones.Since(ctx, lastTs, out.NextTs)
	if err != nil {
		return nil, &common.PersistenceError{Op: "tombstones since", Err: err}
	}
	out.Tombstones = append(out.Tombstones, tombs...)

	e.log.Debug("delta computed",
		"user_id", userID,
		"last_ts", lastTs,
		"next_ts", out.NextTs,
		"messages", len(out.Messages),
		"tombstones", len(out.Tombstones),
		"has_more", out.HasMore,
	)
	return out, nil
}
