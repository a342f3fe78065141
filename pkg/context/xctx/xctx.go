package xctx

import "context"

// contextKey context key 专用类型，避免与其他包的 key 冲突。
type contextKey string

const (
	keyTraceID = contextKey("xctx:trace_id")
	keySpanID  = contextKey("xctx:span_id")
	keySampled = contextKey("xctx:sampled")
	keyTxnID   = contextKey("xctx:txn_id")
)

// 日志属性 Key 常量，遵循 OpenTelemetry 语义约定（下划线分隔）。
const (
	KeyTraceID = "trace_id"
	KeySpanID  = "span_id"
	KeySampled = "sampled"
	KeyTxnID   = "txn_id"
)

// =============================================================================
// TraceID 操作
// =============================================================================

// WithTraceID 将 trace ID 注入 context。
//
// 如果 ctx 为 nil，返回 ErrNilContext。
func WithTraceID(ctx context.Context, traceID string) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return context.WithValue(ctx, keyTraceID, traceID), nil
}

// TraceID 从 context 提取 trace ID，不存在返回空字符串。
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(keyTraceID).(string); ok {
		return v
	}
	return ""
}

// =============================================================================
// SpanID 操作
// =============================================================================

// WithSpanID 将当前活跃 span ID 注入 context。
//
// 如果 ctx 为 nil，返回 ErrNilContext。
func WithSpanID(ctx context.Context, spanID string) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return context.WithValue(ctx, keySpanID, spanID), nil
}

// SpanID 从 context 提取当前活跃 span ID，不存在返回空字符串。
func SpanID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(keySpanID).(string); ok {
		return v
	}
	return ""
}

// =============================================================================
// Sampled 操作
// =============================================================================

// WithSampled 将采样标志注入 context。
//
// 如果 ctx 为 nil，返回 ErrNilContext。
func WithSampled(ctx context.Context, sampled bool) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return context.WithValue(ctx, keySampled, sampled), nil
}

// Sampled 从 context 提取采样标志，不存在返回 false。
func Sampled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(keySampled).(bool); ok {
		return v
	}
	return false
}

// =============================================================================
// TxnID 操作
// =============================================================================

// WithTxnID 将事务（工作单元）ID 注入 context。
//
// 如果 ctx 为 nil，返回 ErrNilContext。
func WithTxnID(ctx context.Context, txnID string) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return context.WithValue(ctx, keyTxnID, txnID), nil
}

// TxnID 从 context 提取事务 ID，不存在返回空字符串。
func TxnID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(keyTxnID).(string); ok {
		return v
	}
	return ""
}

// =============================================================================
// Ensure 函数：自动补全模式（有则沿用，无则生成）
// =============================================================================

// EnsureTraceID 确保 context 中存在 TraceID。
//
// 语义：确保非空。如果 context 中已有 TraceID，原样返回（不验证/不纠正）；
// 否则自动生成新的并注入。
// 如果 ctx 为 nil，返回 ErrNilContext。
func EnsureTraceID(ctx context.Context) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if TraceID(ctx) != "" {
		return ctx, nil
	}
	return WithTraceID(ctx, GenerateTraceID())
}

// EnsureSpanID 确保 context 中存在 SpanID。
//
// 语义：确保非空。如果 context 中已有 SpanID，原样返回（不验证/不纠正）；
// 否则自动生成新的并注入。
// 如果 ctx 为 nil，返回 ErrNilContext。
func EnsureSpanID(ctx context.Context) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if SpanID(ctx) != "" {
		return ctx, nil
	}
	return WithSpanID(ctx, GenerateSpanID())
}
