// Package propagation 提供链路上下文传播相关的子包。
//
// 子包列表：
//   - xw3c: W3C Trace Context 头（traceparent/tracestate）的编解码
//
// 设计原则：
//   - 对不可信的入站头值零信任：解析失败不返回 error，产出结构化结果
//   - 非本系统的 tracestate 条目原样透传，不破坏其他厂商的数据
//   - 每个在途工作单元一个编解码器实例，实例内不加锁
package propagation
