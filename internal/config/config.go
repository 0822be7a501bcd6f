package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the runtime configuration of the API server and CLI.
type Config struct {
	Port           int
	Env            string
	RequestTimeout time.Duration

	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Log      LogConfig
}

// DatabaseConfig selects the gorm driver and how to reach it. DSN wins
// over the individual host fields when set.
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// StorageConfig configures the blob store used for uploaded images.
type StorageConfig struct {
	Driver          string
	UploadDir       string
	PublicPath      string
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Timeout         time.Duration
}

type LogConfig struct {
	Dir     string
	Console bool
}

const devSecret = "dev-secret-change-me"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("ENV", "development")
	v.SetDefault("REQUEST_TIMEOUT", "15s")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_CONNECTION_STRING", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USERNAME", "questioner")
	v.SetDefault("DB_PASSWORD", "questioner")
	v.SetDefault("DB_DATABASE", "questioner")

	v.SetDefault("JWT_SECRET_KEY", "")
	v.SetDefault("JWT_ACCESS_TOKEN_EXPIRES", "720h")

	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("UPLOAD_DIR", "./upload")
	v.SetDefault("UPLOAD_PUBLIC_PATH", "/upload")
	v.SetDefault("S3_BUCKET_NAME", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ID", "")
	v.SetDefault("S3_SECRET", "")
	v.SetDefault("STORAGE_TIMEOUT", "30s")

	v.SetDefault("LOG_DIR", "logs")
	v.SetDefault("LOG_CONSOLE", false)
}

// Load reads configuration from the environment on top of defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetInt("PORT"),
		Env:            v.GetString("ENV"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		Database: DatabaseConfig{
			Driver:   v.GetString("DB_DRIVER"),
			DSN:      v.GetString("DB_CONNECTION_STRING"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Username: v.GetString("DB_USERNAME"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_DATABASE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET_KEY"),
			TTL:    v.GetDuration("JWT_ACCESS_TOKEN_EXPIRES"),
		},
		Storage: StorageConfig{
			Driver:          v.GetString("STORAGE_DRIVER"),
			UploadDir:       v.GetString("UPLOAD_DIR"),
			PublicPath:      v.GetString("UPLOAD_PUBLIC_PATH"),
			Bucket:          v.GetString("S3_BUCKET_NAME"),
			Region:          v.GetString("S3_REGION"),
			AccessKeyID:     v.GetString("S3_ID"),
			SecretAccessKey: v.GetString("S3_SECRET"),
			Timeout:         v.GetDuration("STORAGE_TIMEOUT"),
		},
		Log: LogConfig{
			Dir:     v.GetString("LOG_DIR"),
			Console: v.GetBool("LOG_CONSOLE"),
		},
	}

	if cfg.JWT.Secret == "" && cfg.IsDevelopment() {
		cfg.JWT.Secret = devSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether ENV is development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks the combinations Load cannot default.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET_KEY is required outside development")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("JWT_ACCESS_TOKEN_EXPIRES must be positive")
	}
	switch c.Storage.Driver {
	case "local":
	case "s3":
		if c.Storage.Bucket == "" {
			return errors.New("S3_BUCKET_NAME is required for STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}
