package log

import (
	"context"
	"fmt"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logger used below the handler layer. Extra
// arguments may be zap fields, errors or plain values.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

type logger struct {
	otel *otelzap.Logger
}

var (
	mu     sync.Mutex
	global *otelzap.Logger
)

func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return z
}

func Init(z *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = otelzap.New(z)
}

// Setup returns the process logger, creating it on first use.
func Setup() *otelzap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = otelzap.New(SetupLogger())
	}
	return global
}

func GetLogger() Logger {
	return &logger{otel: Setup()}
}

func (l *logger) Debug(ctx context.Context, msg string, args ...any) {
	l.otel.Ctx(ctx).Debug(msg, fields(args)...)
}

func (l *logger) Info(ctx context.Context, msg string, args ...any) {
	l.otel.Ctx(ctx).Info(msg, fields(args)...)
}

func (l *logger) Warn(ctx context.Context, msg string, args ...any) {
	l.otel.Ctx(ctx).Warn(msg, fields(args)...)
}

func (l *logger) Error(ctx context.Context, msg string, args ...any) {
	l.otel.Ctx(ctx).Error(msg, fields(args)...)
}

func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return out
}
