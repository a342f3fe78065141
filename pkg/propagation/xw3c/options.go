package xw3c

import (
	"time"

	"github.com/omeyang/tracectx/pkg/context/xctx"
	"github.com/omeyang/tracectx/pkg/observability/xlog"
	"github.com/omeyang/tracectx/pkg/observability/xmetrics"
)

type config struct {
	logger    xlog.Logger
	recorder  xmetrics.Recorder
	txnID     string
	now       func() time.Time
	newSpanID func() string
}

// Option 定义 Codec 配置选项。
type Option func(*config)

func defaultCodecConfig() *config {
	return &config{
		logger:    xlog.Noop(),
		recorder:  xmetrics.NoopRecorder{},
		now:       time.Now,
		newSpanID: xctx.GenerateSpanID,
	}
}

// WithLogger 设置诊断日志 Logger，默认为 Noop。
func WithLogger(logger xlog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRecorder 设置结果计数 Recorder，默认为 Noop。
func WithRecorder(recorder xmetrics.Recorder) Option {
	return func(cfg *config) {
		if recorder != nil {
			cfg.recorder = recorder
		}
	}
}

// WithTxnID 设置所属工作单元 ID，仅用于拒绝路径的日志归因。
func WithTxnID(txnID string) Option {
	return func(cfg *config) {
		cfg.txnID = txnID
	}
}

// WithNow 替换时钟，用于测试传输时延的计算。
func WithNow(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithSpanIDGenerator 替换 span ID 生成器，用于测试出站编码的确定性。
// 默认使用 xctx.GenerateSpanID。
func WithSpanIDGenerator(gen func() string) Option {
	return func(cfg *config) {
		if gen != nil {
			cfg.newSpanID = gen
		}
	}
}
