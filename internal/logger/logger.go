package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Diego-EC/questioner-backend/internal/config"
)

// The loggers start as no-ops so packages can log before (or without)
// InitLoggers, e.g. in tests.
var (
	AppLogger   = zap.NewNop() // For application events (server/db start/stop, requests)
	ErrorLogger = zap.NewNop() // For API errors
	QueryLogger = zap.NewNop() // For SQL queries
)

func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.LevelKey = "level"
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = customTimeEncoder
	encoderConfig.EncodeLevel = customLevelEncoder
	encoderConfig.CallerKey = ""
	encoderConfig.NameKey = ""
	encoderConfig.StacktraceKey = ""

	return zapcore.NewConsoleEncoder(encoderConfig)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func customLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(level.String())
}

// InitLoggers builds the three loggers. With cfg.Console every logger
// writes to stdout; otherwise each gets its own daily file under cfg.Dir.
func InitLoggers(cfg config.LogConfig) error {
	if cfg.Console {
		AppLogger = newLogger(os.Stdout, zap.InfoLevel)
		ErrorLogger = newLogger(os.Stdout, zap.ErrorLevel)
		QueryLogger = newLogger(os.Stdout, zap.InfoLevel)
		return nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	currentDate := time.Now().Format("2006-01-02")

	appLogFile, err := openLogFile(cfg.Dir, "app", currentDate)
	if err != nil {
		return err
	}
	errorLogFile, err := openLogFile(cfg.Dir, "error", currentDate)
	if err != nil {
		return err
	}
	queryLogFile, err := openLogFile(cfg.Dir, "query", currentDate)
	if err != nil {
		return err
	}

	AppLogger = newLogger(appLogFile, zap.InfoLevel)
	ErrorLogger = newLogger(errorLogFile, zap.ErrorLevel)
	QueryLogger = newLogger(queryLogFile, zap.InfoLevel)

	return nil
}

// Sync flushes buffered entries of all loggers.
func Sync() {
	_ = AppLogger.Sync()
	_ = ErrorLogger.Sync()
	_ = QueryLogger.Sync()
}

func openLogFile(dir, name, date string) (*os.File, error) {
	return os.OpenFile(
		filepath.Join(dir, fmt.Sprintf("%s_%s.log", name, date)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		getEncoder(),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
