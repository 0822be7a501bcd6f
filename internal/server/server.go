package server

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Diego-EC/questioner-backend/internal/config"
	"github.com/Diego-EC/questioner-backend/internal/database"
	"github.com/Diego-EC/questioner-backend/internal/logger"
	"github.com/Diego-EC/questioner-backend/internal/storage"
)

type Server struct {
	port int
	cfg  *config.Config

	db    database.Service
	blobs storage.BlobStore
}

// NewServer wires the API over an open database and blob store.
func NewServer(cfg *config.Config, db database.Service, blobs storage.BlobStore) *http.Server {
	s := &Server{
		port:  cfg.Port,
		cfg:   cfg,
		db:    db,
		blobs: blobs,
	}

	logger.AppLogger.Info("Server initialization",
		zap.Int("port", s.port),
		zap.String("environment", cfg.Env),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("version", "1.0.0"))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
