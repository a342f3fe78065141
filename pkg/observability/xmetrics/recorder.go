package xmetrics

import "context"

// Outcome 表示一次传播编码/解码的结果类别。
type Outcome string

// 预定义结果类别。
// 命名沿用支撑性指标的层级路径约定，直接作为计数维度上报。
const (
	// OutcomeCreateSuccess 出站 traceparent/tracestate 生成成功。
	OutcomeCreateSuccess Outcome = "TraceContext/Create/Success"

	// OutcomeAcceptSuccess 入站头完整接受（含厂商条目）。
	OutcomeAcceptSuccess Outcome = "TraceContext/Accept/Success"

	// OutcomeParseException 入站 traceparent 解析失败。
	OutcomeParseException Outcome = "TraceContext/TraceParent/Parse/Exception"

	// OutcomeInvalidVendorEntry 入站厂商条目存在但未通过校验。
	OutcomeInvalidVendorEntry Outcome = "TraceContext/TraceState/InvalidNrEntry"
)

// Recorder 定义结果计数上报接口。
// 实现必须支持多工作单元并发调用。
type Recorder interface {
	// Increment 将指定结果类别的计数加一。
	Increment(ctx context.Context, outcome Outcome)
}

// NoopRecorder 是 Recorder 的空实现。
type NoopRecorder struct{}

// Increment 空实现，不做任何处理。
func (NoopRecorder) Increment(context.Context, Outcome) {}

// Increment 使用 recorder 上报结果，nil recorder 和 nil ctx 均安全。
//
// 设计决策: nil 归一化在包级函数统一处理，调用方（编解码热路径）
// 无需在每个上报点做判空。
func Increment(ctx context.Context, recorder Recorder, outcome Outcome) {
	if recorder == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	recorder.Increment(ctx, outcome)
}
