package main

import (
	"fmt"

	"github.com/Diego-EC/questioner-backend/internal/config"
	"github.com/Diego-EC/questioner-backend/internal/database"
	"github.com/Diego-EC/questioner-backend/internal/logger"
)

// bootstrap loads configuration, initialises the loggers and opens the
// database. Callers own the returned service.
func bootstrap() (*config.Config, database.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.InitLoggers(cfg.Log); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize loggers: %w", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		logger.Sync()
		return nil, nil, err
	}
	return cfg, db, nil
}
