package xlog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// =============================================================================
// 全局 Logger
//
// 定位：脚手架/小工具等简单场景。
// 在服务端推荐依赖注入（显式持有 Logger）。
// =============================================================================

// globalLogger 全局 Logger 实例（并发安全）。
var globalLogger atomic.Pointer[Logger]

func init() {
	// 默认参数下 New 不会失败（无 rotation、无非法 format/level）
	logger, _ := New()
	globalLogger.Store(&logger)
}

// Default 返回全局默认 Logger。
func Default() Logger {
	return *globalLogger.Load()
}

// SetDefault 替换全局默认 Logger。
// 传入 nil 时操作被忽略。
func SetDefault(logger Logger) {
	if logger == nil {
		return
	}
	globalLogger.Store(&logger)
}

// Debug 使用全局 Logger 记录 Debug 级别日志。
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Debug(ctx, msg, attrs...)
}

// Info 使用全局 Logger 记录 Info 级别日志。
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Info(ctx, msg, attrs...)
}

// Warn 使用全局 Logger 记录 Warn 级别日志。
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Warn(ctx, msg, attrs...)
}

// Error 使用全局 Logger 记录 Error 级别日志。
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Error(ctx, msg, attrs...)
}
