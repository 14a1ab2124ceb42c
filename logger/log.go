package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the global logger: production config when ENV=production,
// development config otherwise.
func Init() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log = l
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if log == nil {
		Init()
	}
	return log
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	// Syncing stderr can fail on some platforms; nothing useful to do with it.
	_ = L().Sync()
}

func Debug(msg string, fields ...zapcore.Field) { L().Debug(msg, fields...) }

func Info(msg string, fields ...zapcore.Field) { L().Info(msg, fields...) }

func Warn(msg string, fields ...zapcore.Field) { L().Warn(msg, fields...) }

func Error(msg string, fields ...zapcore.Field) { L().Error(msg, fields...) }

func Fatal(msg string, fields ...zapcore.Field) { L().Fatal(msg, fields...) }
