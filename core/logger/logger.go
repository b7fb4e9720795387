package logger

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger. Production emits JSON at info level,
// everything else gets a colored console at debug level.
func Init(env string) {
	once.Do(func() {
		sugar = build(env)
	})
}

func build(env string) *zap.SugaredLogger {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return l.Sugar()
}

func get() *zap.SugaredLogger {
	Init(os.Getenv("APP_ENV"))
	return sugar
}

// normalize accepts the loose call styles used across the codebase:
// key/value pairs, or a bare error appended after the message.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	if len(args) == 1 {
		return []any{"error", args[0]}
	}
	return append(args[:len(args)-1:len(args)-1], "extra", args[len(args)-1])
}

func Debug(msg string, args ...any) { get().Debugw(msg, normalize(args)...) }

func Info(msg string, args ...any) { get().Infow(msg, normalize(args)...) }

func Warn(msg string, args ...any) { get().Warnw(msg, normalize(args)...) }

func Error(msg string, args ...any) { get().Errorw(msg, normalize(args)...) }

// Sync flushes buffered entries, called on shutdown.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

// Zap exposes the underlying logger for libraries that want one.
func Zap() *zap.Logger {
	return get().Desugar()
}
