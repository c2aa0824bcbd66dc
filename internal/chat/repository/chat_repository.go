package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"gosocial-realtime/internal/common"
	"gosocial-realtime/internal/dbmysql"
)

const mysqlDuplicateEntry = 1062

// MessageRepository is the system of record for chat messages.
type MessageRepository interface {
	// Insert stores row unless a row with the same client id exists, in
	// which case the existing row is returned and created is false.
	Insert(ctx context.Context, row *dbmysql.Message) (stored *dbmysql.Message, created bool, err error)
	FindByClientID(ctx context.Context, clientID string) (*dbmysql.Message, error)
	FindByID(ctx context.Context, messageID string) (*dbmysql.Message, error)
	// FindDirect and FindGroup return newest first.
	FindDirect(ctx context.Context, userID, partnerID int64, limit int, before int64) ([]*dbmysql.Message, error)
	FindGroup(ctx context.Context, groupID int64, limit int, before int64) ([]*dbmysql.Message, error)
	// FindSince returns rows in (after, upTo] that userID sent, received, or
	// that belong to one of groupIDs, oldest first.
	FindSince(ctx context.Context, userID int64, groupIDs []int64, after, upTo int64, limit int) ([]*dbmysql.Message, error)
	Delete(ctx context.Context, messageID string) error
	LatestTimestamp(ctx context.Context) (int64, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Insert(ctx context.Context, row *dbmysql.Message) (*dbmysql.Message, bool, error) {
	if row.ClientID != nil {
		existing, err := r.FindByClientID(ctx, *row.ClientID)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, false, err
		}
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		// lost a race with a concurrent insert of the same client id
		if row.ClientID != nil && isDuplicateKey(err) {
			existing, ferr := r.FindByClientID(ctx, *row.ClientID)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("insert message: %w", err)
	}
	return row, true, nil
}

func (r *messageRepo) FindByClientID(ctx context.Context, clientID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&msg).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &msg, nil
}

func (r *messageRepo) FindByID(ctx context.Context, messageID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Where("message_id = ?", messageID).First(&msg).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &msg, nil
}

func (r *messageRepo) FindDirect(ctx context.Context, userID, partnerID int64, limit int, before int64) ([]*dbmysql.Message, error) {
	q := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userID, partnerID, partnerID, userID)
	return r.page(q, limit, before)
}

func (r *messageRepo) FindGroup(ctx context.Context, groupID int64, limit int, before int64) ([]*dbmysql.Message, error) {
	q := r.db.WithContext(ctx).Where("group_id = ?", groupID)
	return r.page(q, limit, before)
}

func (r *messageRepo) page(q *gorm.DB, limit int, before int64) ([]*dbmysql.Message, error) {
	if before > 0 {
		q = q.Where("timestamp < ?", before)
	}
	var messages []*dbmysql.Message
	if err := q.Order("timestamp DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepo) FindSince(ctx context.Context, userID int64, groupIDs []int64, after, upTo int64, limit int) ([]*dbmysql.Message, error) {
	q := r.db.WithContext(ctx)
	if len(groupIDs) > 0 {
		q = q.Where("sender_id = ? OR receiver_id = ? OR group_id IN ?", userID, userID, groupIDs)
	} else {
		q = q.Where("sender_id = ? OR receiver_id = ?", userID, userID)
	}

	var messages []*dbmysql.Message
	err := q.Where("timestamp > ? AND timestamp <= ?", after, upTo).
		Order("timestamp ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepo) Delete(ctx context.Context, messageID string) error {
	res := r.db.WithContext(ctx).Where("message_id = ?", messageID).Delete(&dbmysql.Message{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *messageRepo) LatestTimestamp(ctx context.Context) (int64, error) {
	var ts int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Message{}).
		Select("COALESCE(MAX(timestamp), 0)").
		Scan(&ts).Error
	return ts, err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
