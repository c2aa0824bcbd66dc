package social

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gosocial-realtime/internal/dbmysql"
)

// GroupDirectory answers membership in both directions.
type GroupDirectory interface {
	MemberIDs(ctx context.Context, groupID int64) ([]int64, error)
	GroupIDsForUser(ctx context.Context, userID int64) ([]int64, error)
}

type groupDirectory struct {
	db *gorm.DB
}

func NewGroupDirectory(db *gorm.DB) GroupDirectory {
	return &groupDirectory{db: db}
}

func (r *groupDirectory) MemberIDs(ctx context.Context, groupID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&dbmysql.GroupMember{}).
		Where("group_id = ?", groupID).
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list members of group %d: %w", groupID, err)
	}
	return ids, nil
}

func (r *groupDirectory) GroupIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&dbmysql.GroupMember{}).
		Where("user_id = ?", userID).
		Order("group_id").
		Pluck("group_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list groups of user %d: %w", userID, err)
	}
	return ids, nil
}
