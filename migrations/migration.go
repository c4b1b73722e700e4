package main

import (
	"gin-accounts/infra"
	"gin-accounts/models"

	"go.uber.org/zap"
)

func main() {
	infra.Initialize()
	infra.SetupLogger()

	cfg, err := infra.LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	db := infra.SetupDB(cfg)
	if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		zap.L().Fatal("Failed to migrate database", zap.Error(err))
	}
}
