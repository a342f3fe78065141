// Package xmetrics 提供追踪传播结果计数器。
//
// 传播编解码层（xw3c）在每次编码/解码结束时上报一个命名结果
// （成功创建、成功接受、traceparent 解析失败、厂商条目无效）。
// xmetrics 定义上报接口 [Recorder] 并提供两个实现：
//
//   - [NewOTelRecorder]: 基于 OpenTelemetry Int64Counter，
//     计数维度为 outcome 属性
//   - [NoopRecorder]: 空实现，未接入指标系统时使用
//
// # 并发安全
//
// Recorder 会被多个工作单元并发调用，实现必须支持并发递增。
// OTel Counter 本身并发安全；自定义实现需自行保证。
//
// # 使用方式
//
//	rec, err := xmetrics.NewOTelRecorder()
//	if err != nil { ... }
//	rec.Increment(ctx, xmetrics.OutcomeAcceptSuccess)
package xmetrics
