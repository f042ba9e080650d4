// database/bootstrap.go
package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rotaplan/entities"
)

// OpenSQLite opens the database at path and brings the schema up to date.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&entities.Field{},
		&entities.Crop{},
		&entities.CropSelection{},
		&entities.Rotation{},
		&entities.RotationEntry{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
