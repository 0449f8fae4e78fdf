package db

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"backoffice/internal/model"
)

// NewMySQL returns a connected GORM DB instance. Driver errors such as duplicate keys are
// translated into gorm sentinel errors.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := Open(mysql.Open(dsn))
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Open opens a GORM DB on the given dialector with the service defaults.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}

// models lists every table owned by the service, in drop order.
func models() []interface{} {
	return []interface{}{
		&model.Subscriber{},
		&model.Testimonial{},
		&model.Product{},
		&model.Account{},
	}
}

// Reset drops all service tables.
func Reset(db *gorm.DB, log *slog.Logger) {
	for _, table := range models() {
		if err := db.Migrator().DropTable(table); err != nil {
			log.Warn("drop table failed (may not exist)", slog.Any("error", err))
		}
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
