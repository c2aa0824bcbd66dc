package dbmysql

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gosocial-realtime/internal/config"
	applog "gosocial-realtime/internal/logger"
)

// NewMySQL returns a GORM DB instance connected to MySQL
func NewMySQL(cnf *config.Config, log *slog.Logger) (*gorm.DB, error) {
	log = applog.OrDefault(log)

	if cnf.Database.Host == "" || cnf.Database.DatabaseName == "" {
		return nil, fmt.Errorf("MySQL host or database name is not set")
	}
	dsn := cnf.DSN()

	level := logger.Warn
	if cnf.Server.Environment == "test" {
		level = logger.Silent
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("connected to MySQL", "host", cnf.Database.Host, "database", cnf.Database.DatabaseName)
	return db, nil
}

// Migrate creates or updates every table the realtime core owns or reads.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Message{}, &Tombstone{}, &Friend{}, &GroupMember{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
