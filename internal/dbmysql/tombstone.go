package dbmysql

// Tombstone marks a deleted entity. Rows are only ever inserted.
type Tombstone struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemID    string `gorm:"column:item_id;size:64;not null" json:"item_id"`
	ItemType  string `gorm:"column:item_type;size:32;not null" json:"item_type"`
	DeletedAt int64  `gorm:"column:deleted_at;not null;index" json:"deleted_at"`
}

func (Tombstone) TableName() string { return "tombstones" }
