package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// entry is one persisted key-value pair.
type entry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

// SQLiteBackend stores all keys in a single SQLite database. The values
// are the same JSON documents the file backend writes, so profiles can
// switch backends without a data-model change.
type SQLiteBackend struct {
	db *gorm.DB
}

// NewSQLiteBackend opens (creating if needed) the database at dsn and
// runs migrations.
func NewSQLiteBackend(dsn string) (*SQLiteBackend, error) {
	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Get reads the value stored under key.
func (b *SQLiteBackend) Get(key string) ([]byte, bool, error) {
	var e entry
	err := b.db.First(&e, "key = ?", key).Error
	switch {
	case err == nil:
		return e.Value, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("read %q: %w", key, err)
	}
}

// Put writes value under key, overwriting any prior value.
func (b *SQLiteBackend) Put(key string, value []byte) error {
	err := b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (b *SQLiteBackend) Delete(key string) error {
	if err := b.db.Delete(&entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (b *SQLiteBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureDirForSQLite creates the parent dir for the SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
