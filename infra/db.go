package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupDB connects to PostgreSQL when DATABASE_URL is set and falls back
// to an in-memory SQLite database otherwise (local development and tests).
func SetupDB(cfg *Config) *gorm.DB {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			panic("Failed to connect to database")
		}
		zap.L().Info("Setup postgres database")
		return db
	}

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database")
	}
	zap.L().Info("Setup sqlite database (in-memory)")
	return db
}
