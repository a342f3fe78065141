// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持轮转输出
//   - xmetrics: 编解码结果计数接口，OpenTelemetry 实现
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 自动从 context 中提取追踪信息注入日志
//   - 默认实现为 Noop，可观测性永远不阻断业务路径
package observability
