package infra

import (
	"os"

	"go.uber.org/zap"
)

// SetupLogger installs the process-wide zap logger (zap.L()).
func SetupLogger() *zap.Logger {
	var logger *zap.Logger
	var err error

	if os.Getenv("ENV") == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("Failed to initialize logger")
	}

	zap.ReplaceGlobals(logger)
	return logger
}
