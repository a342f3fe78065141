package xlog

import (
	"context"
	"log/slog"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 日志接口。
//
// 所有方法都需要 context.Context 参数，确保追踪字段正确注入。
// 方法签名只接受 slog.Attr，保证类型安全。
type Logger interface {
	// Debug 记录 Debug 级别日志。
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)

	// Info 记录 Info 级别日志。
	Info(ctx context.Context, msg string, attrs ...slog.Attr)

	// Warn 记录 Warn 级别日志。
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)

	// Error 记录 Error 级别日志。
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带额外属性的派生 Logger。
	// 派生 logger 共享父级的 LevelVar，动态级别变更会同步生效。
	With(attrs ...slog.Attr) Logger

	// SetLevel 动态设置日志级别，运行时生效。
	SetLevel(level Level)

	// Enabled 检查指定级别是否启用。
	// 用于在构造昂贵的日志参数前先检查级别。
	Enabled(ctx context.Context, level Level) bool
}

// 编译时接口检查
var (
	_ Logger = (*xlogger)(nil)
	_ Logger = NoopLogger{}
)

// xlogger Logger 接口的实现。
type xlogger struct {
	handler  slog.Handler
	levelVar *slog.LevelVar
}

// New 创建 Logger。
//
// 默认输出到 os.Stderr，Info 级别，text 格式，启用追踪字段注入。
func New(opts ...Option) (Logger, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	output := cfg.output
	if cfg.rotation != nil {
		output = &lumberjack.Logger{
			Filename:   cfg.rotation.Filename,
			MaxSize:    cfg.rotation.MaxSizeMB,
			MaxBackups: cfg.rotation.MaxBackups,
			MaxAge:     cfg.rotation.MaxAgeDays,
			Compress:   cfg.rotation.Compress,
		}
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.Level(cfg.level))

	handlerOpts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: cfg.addSource,
	}

	var handler slog.Handler
	if cfg.format == "json" {
		handler = slog.NewJSONHandler(output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	if cfg.enrich {
		handler = newEnrichHandler(handler)
	}

	return &xlogger{
		handler:  handler,
		levelVar: levelVar,
	}, nil
}

// log 通用日志方法。
// Handler.Handle 的错误被有意忽略：日志子系统遵循"失败不扩散"原则，
// 写入失败不应中断业务调用链。
func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}

	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.AddAttrs(attrs...)
	_ = l.handler.Handle(ctx, r)
}

// Debug 记录 Debug 级别日志。
func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

// Info 记录 Info 级别日志。
func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

// Warn 记录 Warn 级别日志。
func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

// Error 记录 Error 级别日志。
func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

// With 返回带额外属性的派生 Logger。
func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return &xlogger{
		handler:  l.handler.WithAttrs(attrs),
		levelVar: l.levelVar,
	}
}

// SetLevel 动态设置日志级别。
func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

// Enabled 检查指定级别是否启用。
func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.handler.Enabled(ctx, slog.Level(level))
}

// NoopLogger 是 Logger 的空实现，丢弃所有日志。
// 适用于测试和未显式配置日志的库调用方。
type NoopLogger struct{}

// Noop 返回空 Logger。
func Noop() Logger { return NoopLogger{} }

// Debug 空实现。
func (NoopLogger) Debug(context.Context, string, ...slog.Attr) {}

// Info 空实现。
func (NoopLogger) Info(context.Context, string, ...slog.Attr) {}

// Warn 空实现。
func (NoopLogger) Warn(context.Context, string, ...slog.Attr) {}

// Error 空实现。
func (NoopLogger) Error(context.Context, string, ...slog.Attr) {}

// With 返回自身。
func (n NoopLogger) With(...slog.Attr) Logger { return n }

// SetLevel 空实现。
func (NoopLogger) SetLevel(Level) {}

// Enabled 始终返回 false。
func (NoopLogger) Enabled(context.Context, Level) bool { return false }
