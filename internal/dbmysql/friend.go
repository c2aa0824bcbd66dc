package dbmysql

import (
	"time"
)

const FriendStatusAccepted = "accepted"

// Friend is one directed edge of the friendship graph. An accepted
// friendship is stored as a row per side.
type Friend struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64      `gorm:"column:user_id;not null;index:idx_user_friend,unique" json:"user_id"`
	FriendUserID int64      `gorm:"column:friend_user_id;not null;index:idx_user_friend,unique" json:"friend_user_id"`
	Status       string     `gorm:"column:status;size:16;default:'pending'" json:"status"`
	RequestedAt  time.Time  `gorm:"column:requested_at;autoCreateTime" json:"requested_at"`
	AcceptedAt   *time.Time `gorm:"column:accepted_at" json:"accepted_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Friend) TableName() string { return "friends" }
