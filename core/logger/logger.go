package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// Usable before Init for early startup logging
	l, _ := zap.NewDevelopmentConfig().Build(zap.AddCallerSkip(1))
	sugar = l.Sugar()
}

// Init builds the global logger for the given environment
func Init(env string) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.OutputPaths = []string{"stdout"}

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	sugar = l.Sugar()
}

// Info logs a message with alternating key-value pairs
func Info(msg string, keysAndValues ...any) {
	sugar.Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	sugar.Warnw(msg, normalize(keysAndValues)...)
}

func Error(msg string, keysAndValues ...any) {
	sugar.Errorw(msg, normalize(keysAndValues)...)
}

func Debug(msg string, keysAndValues ...any) {
	sugar.Debugw(msg, normalize(keysAndValues)...)
}

func Fatal(msg string, keysAndValues ...any) {
	sugar.Fatalw(msg, normalize(keysAndValues)...)
}

func Sync() {
	_ = sugar.Sync()
}

// normalize tolerates the shorthand logger.Error("tag", err) used across
// services by promoting a lone error value to an "error" key
func normalize(kv []any) []any {
	if len(kv) == 1 {
		if err, ok := kv[0].(error); ok {
			return []any{"error", err}
		}
	}
	if len(kv)%2 != 0 {
		return append(kv, "(MISSING)")
	}
	return kv
}
