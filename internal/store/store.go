// Package store provides PostgreSQL persistence for documents,
// conversations and turn records.
package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// Open connects to PostgreSQL and migrates the schema. The returned
// cleanup closes the underlying connection pool.
func Open(dsn string) (*gorm.DB, func(), error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Document{},
		&model.Asset{},
		&model.Conversation{},
		&model.Message{},
		&model.Attachment{},
	); err != nil {
		return nil, nil, fmt.Errorf("schema migration failed: %w", err)
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// Healthy pings the database. Used by the readiness probe.
func Healthy(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
