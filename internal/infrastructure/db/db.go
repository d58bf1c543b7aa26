package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database. PostgreSQL when a URL is configured,
// otherwise a local SQLite file with foreign keys enforced so that the
// cascade constraints actually fire.
func Connect(databaseURL, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on", sqlitePath))
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(gormDB); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func Migrate(gormDB *gorm.DB) error {
	err := gormDB.AutoMigrate(
		&UserModel{},
		&ProjectModel{},
		&TaskModel{},
		&TagModel{},
		&ProjectShareModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
