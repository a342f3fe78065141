package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/tracectx/pkg/context/xctx"
)

func newBufLogger(t *testing.T, opts ...Option) (*bytes.Buffer, Logger) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger, err := New(append([]Option{WithWriter(buf)}, opts...)...)
	require.NoError(t, err)
	return buf, logger
}

func TestNew_Defaults(t *testing.T) {
	buf, logger := newBufLogger(t)

	logger.Info(context.Background(), "hello", slog.String("k", "v"))
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "k=v")

	// Debug 默认不输出
	buf.Reset()
	logger.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestNew_JSONFormat(t *testing.T) {
	buf, logger := newBufLogger(t, WithFormat("json"))

	logger.Warn(context.Background(), "warn message", slog.Int("count", 3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "warn message", record["msg"])
	assert.Equal(t, float64(3), record["count"])
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := New(WithFormat("xml"))
	assert.Error(t, err)
}

func TestNew_InvalidLevelString(t *testing.T) {
	_, err := New(WithLevelString("verbose"))
	assert.Error(t, err)
}

func TestNew_EmptyRotationFilename(t *testing.T) {
	_, err := New(WithRotation(RotationConfig{}))
	assert.Error(t, err)
}

func TestSetLevel_Dynamic(t *testing.T) {
	buf, logger := newBufLogger(t)

	logger.Debug(context.Background(), "before")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelDebug)
	logger.Debug(context.Background(), "after")
	assert.Contains(t, buf.String(), "after")
	assert.True(t, logger.Enabled(context.Background(), LevelDebug))
}

func TestWith_SharedLevel(t *testing.T) {
	buf, logger := newBufLogger(t)
	derived := logger.With(slog.String("component", "codec"))

	// 派生 logger 共享父级 LevelVar
	logger.SetLevel(LevelError)
	derived.Info(context.Background(), "suppressed")
	assert.Empty(t, buf.String())

	derived.Error(context.Background(), "visible")
	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "component=codec")
}

func TestEnrich_InjectsTraceFields(t *testing.T) {
	buf, logger := newBufLogger(t, WithFormat("json"))

	ctx, err := xctx.WithTraceID(context.Background(), "0af7651916cd43dd8448eb211c80319c")
	require.NoError(t, err)
	ctx, err = xctx.WithTxnID(ctx, "txn-9")
	require.NoError(t, err)

	logger.Info(ctx, "enriched")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "0af7651916cd43dd8448eb211c80319c", record["trace_id"])
	assert.Equal(t, "txn-9", record["txn_id"])
	// 缺失字段不输出空值
	_, hasSpan := record["span_id"]
	assert.False(t, hasSpan)
}

func TestEnrich_Disabled(t *testing.T) {
	buf, logger := newBufLogger(t, WithEnrich(false))

	ctx, err := xctx.WithTraceID(context.Background(), "0af7651916cd43dd8448eb211c80319c")
	require.NoError(t, err)

	logger.Info(ctx, "plain")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestLogger_NilContext(t *testing.T) {
	buf, logger := newBufLogger(t)
	//nolint:staticcheck // 故意传 nil 验证防御分支
	logger.Info(nil, "nil ctx ok")
	assert.Contains(t, buf.String(), "nil ctx ok")
}

func TestNoop(t *testing.T) {
	logger := Noop()
	logger.Info(context.Background(), "discarded")
	assert.False(t, logger.Enabled(context.Background(), LevelError))
	assert.Equal(t, logger, logger.With(slog.String("k", "v")))
}

func TestGlobal(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(WithWriter(buf))
	require.NoError(t, err)

	old := Default()
	defer SetDefault(old)

	SetDefault(logger)
	Info(context.Background(), "global message")
	assert.Contains(t, buf.String(), "global message")

	// nil 被忽略
	SetDefault(nil)
	assert.Equal(t, logger, Default())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: " warn ", want: LevelWarn},
		{input: "warning", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
