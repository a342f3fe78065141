package xconf

import "fmt"

// settingsPath Settings 在配置树中的根路径。
const settingsPath = "distributed_tracing"

// Settings 分布式追踪传播配置。
//
// 字段语义与传播编解码层的协作约定一一对应：
//   - TrustedAccountKey 决定本系统在 tracestate 中拥有的厂商条目 key
//     （"<trusted_account_key>@nr"）
//   - SpanEvents / TransactionEvents 控制出站厂商条目中 span ID 和
//     事务 ID 字段是否填充（关闭时渲染为空槽位，不省略）
type Settings struct {
	// TrustedAccountKey 受信账户 Key。
	// 为空时回退使用 AccountID（TrustedKey 方法统一处理）。
	TrustedAccountKey string `koanf:"trusted_account_key"`

	// AccountID 账户 ID，必填。
	AccountID string `koanf:"account_id"`

	// PrimaryAppID 主应用 ID，必填。
	PrimaryAppID string `koanf:"primary_app_id"`

	// SpanEvents span 事件开关，默认开启。
	SpanEvents bool `koanf:"span_events"`

	// TransactionEvents 事务事件开关，默认开启。
	TransactionEvents bool `koanf:"transaction_events"`
}

// defaultSettings 返回默认配置。
// 两个事件开关默认开启；反序列化在此基础上覆盖，未出现的键保持默认值。
func defaultSettings() Settings {
	return Settings{
		SpanEvents:        true,
		TransactionEvents: true,
	}
}

// TrustedKey 返回生效的受信账户 Key。
// TrustedAccountKey 未配置时回退为 AccountID。
func (s Settings) TrustedKey() string {
	if s.TrustedAccountKey != "" {
		return s.TrustedAccountKey
	}
	return s.AccountID
}

// Validate 校验配置完整性。
func (s Settings) Validate() error {
	if s.AccountID == "" {
		return fmt.Errorf("%w: account_id is required", ErrInvalidSettings)
	}
	if s.PrimaryAppID == "" {
		return fmt.Errorf("%w: primary_app_id is required", ErrInvalidSettings)
	}
	return nil
}
