// Package context 提供上下文管理相关的子包。
//
// 子包列表：
//   - xctx: Context 增强，注入/提取追踪标识（trace id、span id、采样标志、事务 id）
//
// 设计原则：
//   - 所有追踪信息通过 context.Context 传递，不使用全局变量
//   - 标识生成与标识传递分离，生成器可被调用方替换
//   - 支持 W3C Trace Context 标准
package context
