package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blog-backend/pkg/config"
)

// Connection pool settings, tuned for a single API process.
const (
	maxOpenConns    = 10
	maxIdleConns    = 2
	connMaxIdleTime = 30 * time.Second
)

// NewPostgresConnection opens a GORM handle backed by a bounded connection pool.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return db, nil
}
