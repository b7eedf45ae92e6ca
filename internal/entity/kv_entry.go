package entity

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one persisted dashboard setting in the postgres state store.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;type:varchar(128)" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the KVEntry model.
func (KVEntry) TableName() string {
	return "kv_entries"
}
