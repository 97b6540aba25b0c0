// Package logger wraps zap behind a package-level logger initialized once at
// startup.
package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Init builds the global logger. asJSON selects the production JSON encoder;
// otherwise a console encoder is used.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	if !asJSON {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	mu.Lock()
	global = l
	mu.Unlock()
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Debug(_ context.Context, msg string, fields ...Field) { L().Debug(msg, fields...) }
func Info(_ context.Context, msg string, fields ...Field)  { L().Info(msg, fields...) }
func Warn(_ context.Context, msg string, fields ...Field)  { L().Warn(msg, fields...) }
func Error(_ context.Context, msg string, fields ...Field) { L().Error(msg, fields...) }

// Logger is a child logger carrying preset fields. The context parameter is
// accepted for call-site symmetry with the package-level functions.
type Logger struct {
	l *zap.Logger
}

// With returns a child logger carrying the fields.
func With(fields ...Field) *Logger {
	return &Logger{l: L().With(fields...)}
}

func (lg *Logger) Debug(_ context.Context, msg string, fields ...Field) { lg.l.Debug(msg, fields...) }
func (lg *Logger) Info(_ context.Context, msg string, fields ...Field)  { lg.l.Info(msg, fields...) }
func (lg *Logger) Warn(_ context.Context, msg string, fields ...Field)  { lg.l.Warn(msg, fields...) }
func (lg *Logger) Error(_ context.Context, msg string, fields ...Field) { lg.l.Error(msg, fields...) }

// Sync flushes buffered entries; called on shutdown.
func Sync() error {
	return L().Sync()
}
