package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
}

type logger struct {
	zap *otelzap.Logger
}

func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("error build logger: %v", err))
	}
	return l
}

// Init replaces the global otelzap logger.
func Init(l *zap.Logger) {
	otelzap.ReplaceGlobals(otelzap.New(l, otelzap.WithMinLevel(zapcore.InfoLevel)))
}

func GetLogger() Logger {
	return &logger{zap: otelzap.L()}
}

// Setup returns a ready to use otelzap logger, used by handlers and tests.
func Setup() *otelzap.Logger {
	return otelzap.New(SetupLogger())
}

// New wraps an otelzap logger into a Logger.
func New(l *otelzap.Logger) Logger {
	return &logger{zap: l}
}

func (l *logger) Info(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Info(msg, l.fields(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Warn(msg, l.fields(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Error(msg, l.fields(ctx, fields)...)
}

func (l *logger) fields(ctx context.Context, args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args)+1)
	if cid := CorrelationIDFromContext(ctx); cid != "" {
		fields = append(fields, zap.String("correlation_id", cid))
	}
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			fields = append(fields, v)
		case error:
			fields = append(fields, zap.Error(v))
		default:
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return fields
}
