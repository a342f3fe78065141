package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultInstrumentationName = "github.com/omeyang/tracectx/xmetrics"

	metricOutcomeTotal = "tracectx.outcome.total"
	attrOutcome        = "outcome"
)

type otelConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// Option 定义 OTel Recorder 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// NewOTelRecorder 创建基于 OpenTelemetry 的 Recorder。
// 默认使用全局 MeterProvider。
func NewOTelRecorder(opts ...Option) (Recorder, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	total, err := meter.Int64Counter(
		metricOutcomeTotal,
		metric.WithDescription("trace context propagation outcomes"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xmetrics: create counter failed: %w", err)
	}

	return &otelRecorder{total: total}, nil
}

type otelRecorder struct {
	total metric.Int64Counter
}

// Increment 将指定结果类别的计数加一。
func (r *otelRecorder) Increment(ctx context.Context, outcome Outcome) {
	if ctx == nil {
		ctx = context.Background()
	}
	r.total.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrOutcome, string(outcome)),
	))
}
