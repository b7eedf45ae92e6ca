package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"golang-stock-dashboard/internal/entity"
)

// NewPostgresStore creates a store backed by the kv_entries table.
func NewPostgresStore(db *gorm.DB) KVStore {
	return &postgresStore{db: db}
}

type postgresStore struct {
	db *gorm.DB
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row entity.KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get kv entry %s: %w", key, err)
	}
	return []byte(row.Value), true, nil
}

// Set upserts the entry; the last write wins.
func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	row := entity.KVEntry{Key: key, Value: datatypes.JSON(value)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert kv entry %s: %w", key, err)
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&entity.KVEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete kv entry %s: %w", key, err)
	}
	return nil
}
