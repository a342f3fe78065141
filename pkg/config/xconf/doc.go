// Package xconf 提供分布式追踪传播配置的加载与监视能力。
//
// xconf 基于 koanf 实现，负责把传播编解码层（xw3c）依赖的配置项
// （受信账户 Key、主应用 ID、账户 ID、span/事务事件开关）从
// YAML/JSON 文件或字节数据加载为类型化的 [Settings]。
//
// # 配置格式
//
//	distributed_tracing:
//	  trusted_account_key: "33"
//	  account_id: "33"
//	  primary_app_id: "2827902"
//	  span_events: true
//	  transaction_events: true
//
// # 使用方式
//
//	cfg, err := xconf.New("/etc/app/tracing.yaml")
//	if err != nil { ... }
//	st := cfg.Settings()
//
// 从 K8s ConfigMap 等字节数据加载：
//
//	cfg, err := xconf.NewFromBytes(data, xconf.FormatYAML)
//
// # 热更新
//
// [Watch] 监视配置文件变更并自动重载；编解码层每个工作单元读取一份
// 不可变的 [Settings] 快照，重载不影响已在途的工作单元。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xconf.New("missing.toml")
//	if errors.Is(err, xconf.ErrUnsupportedFormat) { ... }
package xconf
