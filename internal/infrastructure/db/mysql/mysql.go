// Package mysql implements the repository ports on a MySQL database through GORM.
package mysql

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
)

// Connect opens a GORM connection against MySQL. TranslateError is enabled so
// driver-specific duplicate-key failures surface as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for both tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Submission{}, &domain.AdminUser{}); err != nil {
		return fmt.Errorf("mysql migrate: %w", err)
	}
	return nil
}
