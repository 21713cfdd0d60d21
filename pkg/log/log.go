package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the application-wide logging interface.
// Context is passed on every call so request-scoped fields can be attached later
// without changing call sites.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

// ZapConfig controls how the zap logger is built.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// Init builds the process logger from config. Falls back to a production JSON
// logger when the config is unusable rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Mode == "development" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zc.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		l, _ = zap.NewProduction(zap.AddCallerSkip(1))
	}

	return &zapLogger{s: l.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any)  { z.s.Debug(arg...) }
func (z *zapLogger) Info(ctx context.Context, arg ...any)   { z.s.Info(arg...) }
func (z *zapLogger) Warn(ctx context.Context, arg ...any)   { z.s.Warn(arg...) }
func (z *zapLogger) Error(ctx context.Context, arg ...any)  { z.s.Error(arg...) }
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.s.DPanic(arg...) }
func (z *zapLogger) Panic(ctx context.Context, arg ...any)  { z.s.Panic(arg...) }
func (z *zapLogger) Fatal(ctx context.Context, arg ...any)  { z.s.Fatal(arg...) }

func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.s.Debugf(template, arg...)
}
func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.s.Infof(template, arg...)
}
func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.s.Warnf(template, arg...)
}
func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.s.Errorf(template, arg...)
}
func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.s.DPanicf(template, arg...)
}
func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.s.Panicf(template, arg...)
}
func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.s.Fatalf(template, arg...)
}
