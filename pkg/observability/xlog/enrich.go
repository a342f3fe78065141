package xlog

import (
	"context"
	"log/slog"

	"github.com/omeyang/tracectx/pkg/context/xctx"
)

// enrichHandler 装饰底层 Handler，自动注入 xctx 中的追踪字段。
//
// 注入的字段：trace_id、span_id、txn_id（缺失的字段跳过，不输出空值）。
// 采样标志不注入：它属于传播语义而非日志归因信息。
type enrichHandler struct {
	inner slog.Handler
}

func newEnrichHandler(inner slog.Handler) slog.Handler {
	return &enrichHandler{inner: inner}
}

// Enabled 委托给底层 Handler。
func (h *enrichHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle 在记录前追加 context 中的追踪字段。
func (h *enrichHandler) Handle(ctx context.Context, r slog.Record) error {
	if v := xctx.TraceID(ctx); v != "" {
		r.AddAttrs(slog.String(xctx.KeyTraceID, v))
	}
	if v := xctx.SpanID(ctx); v != "" {
		r.AddAttrs(slog.String(xctx.KeySpanID, v))
	}
	if v := xctx.TxnID(ctx); v != "" {
		r.AddAttrs(slog.String(xctx.KeyTxnID, v))
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs 保持装饰链：对底层 Handler 应用属性后重新包装。
func (h *enrichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &enrichHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup 保持装饰链。
func (h *enrichHandler) WithGroup(name string) slog.Handler {
	return &enrichHandler{inner: h.inner.WithGroup(name)}
}
