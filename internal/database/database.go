package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger" // Renamed import to avoid conflict

	"github.com/Diego-EC/questioner-backend/internal/config"
	"github.com/Diego-EC/questioner-backend/internal/logger"
	"github.com/Diego-EC/questioner-backend/internal/model"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	// DB returns the underlying GORM database instance.
	DB() *gorm.DB
}

type service struct {
	db   *gorm.DB
	name string
}

// DB returns the underlying GORM database instance.
func (s *service) DB() *gorm.DB {
	return s.db
}

// Now is the clock gorm and the store share. Postgres keeps microseconds,
// so values round-trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// New opens a connection for cfg.Driver. It does not migrate.
func New(cfg config.DatabaseConfig) (Service, error) {
	logger.AppLogger.Info("Initializing database service",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port),
		zap.String("database", cfg.Name))

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	customLogger := gormLogger.New(
		&GormWriter{},
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         customLogger,
		NowFunc:        Now,
		TranslateError: true,
	})
	if err != nil {
		logger.AppLogger.Error("Database connection failed",
			zap.Error(err),
			zap.String("driver", cfg.Driver),
			zap.String("database", cfg.Name))
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite" {
		// One connection keeps an in-memory database alive and serialises writers.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	logger.AppLogger.Info("Database connection established",
		zap.String("driver", cfg.Driver),
		zap.String("database", cfg.Name))

	return &service{db: db, name: cfg.Name}, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
				cfg.Host, cfg.Username, cfg.Password, cfg.Name, cfg.Port)
		}
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
				cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		}
		return mysql.Open(dsn), nil
	case "sqlite":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = "questioner.db?_foreign_keys=on"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	logger.AppLogger.Info("Starting database migration")

	if err := db.AutoMigrate(model.All()...); err != nil {
		logger.AppLogger.Error("Database migration failed", zap.Error(err))
		return fmt.Errorf("migrate: %w", err)
	}

	logger.AppLogger.Info("Database migration completed successfully")
	return nil
}

// Custom writer for GORM that uses our QueryLogger
type GormWriter struct{}

func (w *GormWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.QueryLogger.Info(msg,
		zap.String("timestamp", time.Now().Format(time.RFC3339)))
}

func (s *service) Health() map[string]string {
	stats := make(map[string]string)

	sqlDB, err := s.db.DB()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = "db down"
		logger.AppLogger.Error("Database health check failed - cannot get DB instance",
			zap.Error(err),
			zap.String("database", s.name))
		return stats
	}

	if err := sqlDB.Ping(); err != nil {
		stats["status"] = "down"
		stats["error"] = "db down"
		logger.AppLogger.Error("Database health check failed - ping failed",
			zap.Error(err),
			zap.String("database", s.name))
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "Database connection is healthy"
	return stats
}

func (s *service) Close() error {
	logger.AppLogger.Info("Initiating database connection closure")

	sqlDB, err := s.db.DB()
	if err != nil {
		logger.AppLogger.Error("Failed to get database instance for closure",
			zap.Error(err),
			zap.String("database", s.name))
		return err
	}

	if err := sqlDB.Close(); err != nil {
		logger.AppLogger.Error("Failed to close database connection",
			zap.Error(err),
			zap.String("database", s.name))
		return err
	}

	logger.AppLogger.Info("Database connection closed successfully",
		zap.String("database", s.name))
	return nil
}
