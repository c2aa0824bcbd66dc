package dbmysql

import (
	"time"
)

type GroupMember struct {
	GroupID  int64     `gorm:"column:group_id;primaryKey" json:"group_id"`
	UserID   int64     `gorm:"column:user_id;primaryKey;index" json:"user_id"`
	JoinedAt time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

func (GroupMember) TableName() string { return "group_members" }
