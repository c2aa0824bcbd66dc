package repository

import (
	"context"

	"gorm.io/gorm"

	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/dbmysql"
)

// TombstoneRepository is the append-only deletion log read by delta sync.
type TombstoneRepository interface {
	Append(ctx context.Context, t models.Tombstone) error
	// Since returns tombstones with DeletedAt in (after, upTo], oldest first.
	Since(ctx context.Context, after, upTo int64) ([]models.Tombstone, error)
}

type tombstoneRepo struct {
	db *gorm.DB
}

func NewTombstoneRepository(db *gorm.DB) TombstoneRepository {
	return &tombstoneRepo{db: db}
}

func (r *tombstoneRepo) Append(ctx context.Context, t models.Tombstone) error {
	row := &dbmysql.Tombstone{ItemID: t.ItemID, ItemType: t.ItemType, DeletedAt: t.DeletedAt}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *tombstoneRepo) Since(ctx context.Context, after, upTo int64) ([]models.Tombstone, error) {
	var rows []dbmysql.Tombstone
	err := r.db.WithContext(ctx).
		Where("deleted_at > ? AND deleted_at <= ?", after, upTo).
		Order("deleted_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.Tombstone, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Tombstone{ItemID: row.ItemID, ItemType: row.ItemType, DeletedAt: row.DeletedAt})
	}
	return out, nil
}
