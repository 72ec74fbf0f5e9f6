package logger

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Context(ctx context.Context) context.Context

	Debug(ctx context.Context, log string, fields ...zapcore.Field)
	Info(ctx context.Context, log string, fields ...zapcore.Field)
	Warn(ctx context.Context, log string, fields ...zapcore.Field)
	Error(ctx context.Context, log string, fields ...zapcore.Field)
}

var Module = fx.Provide(func() Logger {
	return New("debug")
})

// New constructs a new logger.
func New(level string) Logger {
	stdoutSyncer := zapcore.Lock(os.Stdout)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.FunctionKey = "func"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		stdoutSyncer,
		getLevel(level),
	)

	log := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &logger{
		lg:          log,
		idGenerator: defaultIDGenerator(),
	}
}

type logger struct {
	lg          *zap.Logger
	idGenerator IDGenerator
}

func getLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

func (l *logger) Debug(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Debug(log, fields...)
}

func (l *logger) Info(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Info(log, fields...)
}

func (l *logger) Warn(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Warn(log, fields...)
}

func (l *logger) Error(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Error(log, fields...)
}
