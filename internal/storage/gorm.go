// internal/storage/gorm.go
package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the row shape for the SQL-backed store.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text;not null"`
}

// TableName overrides the table name
func (KVEntry) TableName() string {
	return "kv_entries"
}

// Gorm is a Store backed by a SQL database through GORM, for deployments
// that already run Postgres and want the durable tier there.
type Gorm struct {
	db *gorm.DB
}

// NewGorm creates a SQL-backed store and migrates its table.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}
	return &Gorm{db: db}, nil
}

// Get returns the value for key or ErrNotFound.
func (g *Gorm) Get(key string) (string, error) {
	var entry KVEntry
	err := g.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	return entry.Value, nil
}

// Set stores value under key, inserting or updating as needed.
func (g *Gorm) Set(key, value string) error {
	entry := KVEntry{Key: key, Value: value}
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (g *Gorm) Delete(key string) error {
	if err := g.db.Where("key = ?", key).Delete(&KVEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
