package remote

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/olkkari/menuload/pkg/menuload/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite is a local stand-in for the remote tables, used to rehearse a load.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens the database file at path. With migrate set, the
// food_menu and cocktails tables are created when missing.
func NewSQLite(path string, migrate bool) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: database path is empty")
	}
	gormLogger := logger.New(
		log.New(os.Stderr, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open DB: %w", err)
	}

	if migrate {
		if err := db.AutoMigrate(&models.FoodMenuItem{}, &models.Cocktail{}); err != nil {
			return nil, fmt.Errorf("sqlite: auto-migration failed: %w", err)
		}
	}
	return &SQLite{db: db}, nil
}

// Insert creates all rows with one statement.
func (s *SQLite) Insert(ctx context.Context, table string, rows []models.Record) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	values := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		m := row.Map()
		for k, v := range m {
			m[k] = plainValue(v)
		}
		values[i] = m
	}

	result := s.db.WithContext(ctx).Table(table).Create(values)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

// Count returns the number of rows in table.
func (s *SQLite) Count(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Table(table).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
