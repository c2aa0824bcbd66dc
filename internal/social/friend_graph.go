// Package social reads the friendship graph and group rosters the realtime
// layer fans out over. Both tables are owned by the user service.
package social

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gosocial-realtime/internal/dbmysql"
)

type FriendGraph interface {
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
}

type friendGraph struct {
	db *gorm.DB
}

func NewFriendGraph(db *gorm.DB) FriendGraph {
	return &friendGraph{db: db}
}

// FriendIDs returns the accepted friends of userID. Friendships are stored
// as one row per side, so only the caller's rows are read.
func (r *friendGraph) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Friend{}).
		Where("user_id = ? AND status = ?", userID, dbmysql.FriendStatusAccepted).
		Pluck("friend_user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list friends of %d: %w", userID, err)
	}
	return ids, nil
}
