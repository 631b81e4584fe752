package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/raykavin/chartplot/pkg/core"
)

// ChartObjectRow is the SQL table of chart objects
type ChartObjectRow struct {
	ID        uint   `gorm:"primaryKey"`
	Chart     string `gorm:"uniqueIndex:idx_chart_object;size:255"`
	Name      string `gorm:"uniqueIndex:idx_chart_object;size:255"`
	Type      string `gorm:"size:64"`
	Settings  string
	UpdatedAt time.Time
}

// TableName implements gorm's tabler
func (ChartObjectRow) TableName() string {
	return "chart_objects"
}

// Config holds the configuration for SQL database connections
type Config struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConfig returns a default configuration for SQL connections
func DefaultConfig() Config {
	return Config{
		MaxIdleConns:    5,
		MaxOpenConns:    10,
		ConnMaxLifetime: time.Hour,
	}
}

// SQLStore implements ObjectStore on any database gorm has a dialector for
type SQLStore struct {
	db *gorm.DB
}

// FromSQL opens a SQL store and migrates the chart object table
func FromSQL(dialect gorm.Dialector, config Config, opts ...gorm.Option) (*SQLStore, error) {
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err = db.AutoMigrate(&ChartObjectRow{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLStore{db: db}, nil
}

// Save inserts or replaces the settings of a chart object
func (s *SQLStore) Save(chart string, settings *core.Setting) error {
	name, err := objectName(settings)
	if err != nil {
		return err
	}

	content, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal chart object: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var row ChartObjectRow
		result := tx.Where("chart = ? AND name = ?", chart, name).First(&row)
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up chart object: %w", result.Error)
		}

		row.Chart = chart
		row.Name = name
		row.Type = settings.Get("Type")
		row.Settings = string(content)

		if result := tx.Save(&row); result.Error != nil {
			return fmt.Errorf("failed to store chart object: %w", result.Error)
		}
		return nil
	})
}

// Delete removes a chart object
func (s *SQLStore) Delete(chart, name string) error {
	result := s.db.Where("chart = ? AND name = ?", chart, name).Delete(&ChartObjectRow{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete chart object: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, name)
	}
	return nil
}

// DeleteAll removes every chart object of chart
func (s *SQLStore) DeleteAll(chart string) error {
	if result := s.db.Where("chart = ?", chart).Delete(&ChartObjectRow{}); result.Error != nil {
		return fmt.Errorf("failed to delete chart objects: %w", result.Error)
	}
	return nil
}

// Objects returns the settings of every chart object of chart
func (s *SQLStore) Objects(chart string) ([]*core.Setting, error) {
	var rows []ChartObjectRow
	result := s.db.Where("chart = ?", chart).Order("id").Find(&rows)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch chart objects: %w", result.Error)
	}

	return lo.FilterMap(rows, func(row ChartObjectRow, _ int) (*core.Setting, bool) {
		settings := core.NewSetting()
		if err := json.Unmarshal([]byte(row.Settings), settings); err != nil {
			return nil, false
		}
		return settings, true
	}), nil
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
