// Package xlog 提供基于 log/slog 的结构化诊断日志能力。
//
// # 设计理念
//
//   - 强制 context 传递：所有日志方法接受 context.Context，
//     自动注入 xctx 中的追踪字段（trace_id、span_id、txn_id）
//   - 动态级别控制：运行时通过 SetLevel 调整，无需重启
//   - 类型安全：方法签名只接受 slog.Attr，避免隐式 key-value 转换
//   - 失败不扩散：日志子系统内部错误不会 panic 或中断业务调用链
//
// # 使用方式
//
//	logger, err := xlog.New(xlog.WithLevel(xlog.LevelDebug))
//	if err != nil { ... }
//	logger.Info(ctx, "trace context accepted", slog.String("trace_id", id))
//
// 文件输出与轮转（lumberjack）：
//
//	logger, err := xlog.New(xlog.WithRotation(xlog.RotationConfig{
//	    Filename: "/var/log/app/trace.log",
//	    MaxSizeMB: 100,
//	    MaxBackups: 3,
//	}))
//
// # 全局 Logger
//
// 包级函数（xlog.Info 等）委托给全局默认 Logger，定位为脚手架/小工具
// 等简单场景；服务端推荐依赖注入（显式持有 Logger）。
package xlog
