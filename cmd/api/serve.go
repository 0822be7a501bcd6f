package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Diego-EC/questioner-backend/internal/database"
	"github.com/Diego-EC/questioner-backend/internal/logger"
	"github.com/Diego-EC/questioner-backend/internal/repository"
	"github.com/Diego-EC/questioner-backend/internal/server"
	"github.com/Diego-EC/questioner-backend/internal/storage"
	"github.com/Diego-EC/questioner-backend/internal/store"
)

var serveMigrate bool

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&serveMigrate, "migrate", true, "migrate the schema and seed roles before serving")
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  runServe,
	}
	addServeFlags(cmd)
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer db.Close()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if serveMigrate {
		if err := database.Migrate(db.DB()); err != nil {
			return err
		}
		if _, err := repository.NewRoles(store.New(db.DB())).Seed(cmd.Context()); err != nil {
			return err
		}
	}

	blobs, err := storage.New(cmd.Context(), cfg.Storage)
	if err != nil {
		return err
	}

	server := server.NewServer(cfg, db, blobs)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.AppLogger.Info("Server starting",
			zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.AppLogger.Error("Server failed to start",
				zap.Error(err))
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.AppLogger.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.AppLogger.Error("Server forced to shutdown",
			zap.Error(err))
		return err
	}

	logger.AppLogger.Info("Server exited properly")
	return nil
}
