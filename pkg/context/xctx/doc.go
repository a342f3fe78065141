// Package xctx 提供链路追踪标识的生成与 context 传递能力。
//
// xctx 是传播编解码层（xw3c）的底层协作方：它负责生成符合
// W3C Trace Context 规范的 trace ID / span ID，并把当前执行单元的
// 追踪状态（trace ID、活跃 span ID、采样标志、事务 ID）挂载到
// context.Context 上，供编码路径按需读取。
//
// # 标识格式
//
//   - TraceID: 32 位小写十六进制（128-bit），禁止全零
//   - SpanID: 16 位小写十六进制（64-bit），禁止全零
//   - TxnID: 事务（工作单元）标识，UUID 格式，仅用于日志归因
//
// # 使用方式
//
//	ctx, _ := xctx.WithTraceID(context.Background(), xctx.GenerateTraceID())
//	ctx, _ = xctx.WithSpanID(ctx, xctx.GenerateSpanID())
//	ctx, _ = xctx.WithSampled(ctx, true)
//
// 所有 WithXxx 函数在 ctx 为 nil 时返回 ErrNilContext，
// 所有读取函数在字段缺失时返回零值，不报错。
package xctx
