// internal/infrastructure/storage/sqlite/connection.go
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one keyed JSON blob in the local database file
type Record struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value []byte `gorm:"not null"`
}

// TableName overrides the table name
func (Record) TableName() string {
	return "kv_records"
}

// Client wraps a local SQLite file behind the storage.Store interface
type Client struct {
	db *gorm.DB
}

// NewConnection opens (or creates) the local database file
func NewConnection(cfg *config.Config) (*Client, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLite.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite storage: %w", err)
	}

	log.Printf("✅ SQLite storage ready at %s", cfg.SQLite.Path)

	return &Client{db: db}, nil
}

// GetDB returns the underlying gorm handle
func (c *Client) GetDB() *gorm.DB {
	return c.db
}

// Get returns the value stored under key, or storage.ErrNotFound
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var record Record
	result := c.db.WithContext(ctx).Where("key = ?", key).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read record: %w", result.Error)
	}
	return record.Value, nil
}

// Set writes value under key, replacing any previous value
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	record := Record{Key: key, Value: value}
	result := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record)
	if result.Error != nil {
		return fmt.Errorf("failed to write record: %w", result.Error)
	}
	return nil
}

// Delete removes key
func (c *Client) Delete(ctx context.Context, key string) error {
	result := c.db.WithContext(ctx).Where("key = ?", key).Delete(&Record{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	return nil
}

// Health checks the database file is usable
func (c *Client) Health() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close closes the database file
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
