// Package xw3c 实现 W3C Trace Context 头的编解码。
//
// # 设计理念
//
// xw3c 是一个零信任的防御式文本编解码器：为出站调用生成
// traceparent/tracestate 头值，并解析、校验来自上游的入站头值，
// 包括 tracestate 中以 "<受信账户Key>@nr" 为 key 的厂商私有子编码。
//
// 解码路径对非法输入永不返回 error、永不 panic：所有结果以
// [AcceptanceResult] 的布尔接受标志表达，调用方按标志分支。
//
// # 解码规则（来自 W3C Trace Context 规范）
//
//   - traceparent 非法时整个入站上下文作废，不再解析 tracestate
//   - 版本 "ff" 保留，始终无效；版本 "00" 必须恰好 4 个字段
//   - 未知版本（> "00"）按前 4 个字段解析，额外字段忽略（前向兼容）
//   - trace-id / parent-id 禁止全零
//   - tracestate 任一列表成员不是恰好一个 "=" 分隔的键值对时，
//     整个 tracestate 作废（不做部分接受）
//
// # 厂商条目
//
// 厂商条目的值是 9 个 "-" 分隔的位置字段（空字符串表示缺省）：
// 版本、父类型索引、账户 ID、应用 ID、span ID、事务 ID、采样标志、
// 优先级、时间戳（epoch 毫秒）。字段级校验策略见 intrinsics.go
// 的策略表。无论厂商条目值是否合法，找到条目后都会把它从
// tracestate 中剥除，剩余部分存为透传值，供下一次出站编码原样转发。
//
// # 生命周期与并发
//
// 每个在途工作单元持有一个 [Codec] 实例，随工作单元创建和丢弃。
// Codec 的可变状态（透传 tracestate、受信父 span ID）只被同一
// 工作单元的解码/编码调用读写，因此 Codec 本身不加锁、非并发安全；
// 不同工作单元的 Codec 实例互不共享，可自由并发。
//
// # 使用方式
//
//	codec, err := xw3c.New(settings,
//	    xw3c.WithLogger(logger),
//	    xw3c.WithRecorder(recorder),
//	)
//	if err != nil { ... }
//
//	// 入站
//	result := codec.Accept(ctx, traceparent, tracestate)
//	if result.AcceptedTraceState { ... }
//
//	// 出站
//	tp, ts := codec.CreateHeaders(ctx, xw3c.TxnState{
//	    TraceID: traceID, SpanID: spanID, Sampled: true,
//	})
package xw3c
