package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow is one serialized collection keyed by its storage key.
type collectionRow struct {
	Key  string `gorm:"primaryKey;column:key"`
	Data []byte `gorm:"column:data"`
}

func (collectionRow) TableName() string { return "collections" }

// GormBackend stores each collection as a single blob row. The driver is
// chosen from the DSN: a postgres keyword DSN opens postgres, anything else
// is treated as a SQLite file path.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(dsn string) (*GormBackend, error) {
	var dialector gorm.Dialector
	if strings.Contains(dsn, "host=") || strings.HasPrefix(dsn, "postgres://") {
		dialector = postgres.Open(dsn)
	} else {
		if err := ensureDirForSQLite(dsn); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return &GormBackend{db: db}, nil
}

// ensureDirForSQLite creates the parent dir for a SQLite file if needed.
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

func (g *GormBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var row collectionRow
	err := g.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return row.Data, nil
}

func (g *GormBackend) Set(ctx context.Context, key string, data []byte) error {
	row := collectionRow{Key: key, Data: data}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (g *GormBackend) Delete(ctx context.Context, key string) error {
	if err := g.db.WithContext(ctx).Delete(&collectionRow{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
