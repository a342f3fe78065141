package xw3c

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTraceParent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TraceParent
		ok    bool
	}{
		{
			name:  "valid sampled",
			input: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
			want: TraceParent{
				Version:  "00",
				TraceID:  "4bf92f3577b34da6a3ce929d0e0e4736",
				ParentID: "00f067aa0ba902b7",
				Flags:    "01",
			},
			ok: true,
		},
		{
			name:  "valid not sampled",
			input: "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-00",
			want: TraceParent{
				Version:  "00",
				TraceID:  "0af7651916cd43dd8448eb211c80319c",
				ParentID: "b7ad6b7169203331",
				Flags:    "00",
			},
			ok: true,
		},
		{
			name:  "uppercase hex accepted on parse",
			input: "00-4BF92F3577B34DA6A3CE929D0E0E4736-00F067AA0BA902B7-01",
			want: TraceParent{
				Version:  "00",
				TraceID:  "4BF92F3577B34DA6A3CE929D0E0E4736",
				ParentID: "00F067AA0BA902B7",
				Flags:    "01",
			},
			ok: true,
		},
		{
			name:  "unknown version with extra field",
			input: "01-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01-extra",
			want: TraceParent{
				Version:  "01",
				TraceID:  "4bf92f3577b34da6a3ce929d0e0e4736",
				ParentID: "00f067aa0ba902b7",
				Flags:    "01",
			},
			ok: true,
		},
		{
			name:  "version ff always invalid",
			input: "ff-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
		},
		{
			name:  "version FF case-insensitively invalid",
			input: "FF-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
		},
		{
			name:  "supported version with extra field",
			input: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01-extra",
		},
		{
			name:  "all-zero trace id",
			input: "00-00000000000000000000000000000000-00f067aa0ba902b7-01",
		},
		{
			name:  "all-zero parent id",
			input: "00-4bf92f3577b34da6a3ce929d0e0e4736-0000000000000000-01",
		},
		{
			name:  "trace id too short",
			input: "00-4bf92f3577b34da6a3ce929d0e0e473-00f067aa0ba902b7-01",
		},
		{
			name:  "trace id too long",
			input: "00-4bf92f3577b34da6a3ce929d0e0e47361-00f067aa0ba902b7-01",
		},
		{
			name:  "parent id not hex",
			input: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902zz-01",
		},
		{
			name:  "flags too long",
			input: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-001",
		},
		{
			name:  "version not hex",
			input: "0x-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
		},
		{
			name:  "too few fields",
			input: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7",
		},
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "garbage",
			input: "not a traceparent at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTraceParent(tt.input)
			if !tt.ok {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTraceParent_Sampled(t *testing.T) {
	tp, ok := parseTraceParent("00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	require.True(t, ok)
	assert.True(t, tp.Sampled())

	tp, ok = parseTraceParent("00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-00")
	require.True(t, ok)
	assert.False(t, tp.Sampled())

	// bit0 之外的标志位不影响采样判断
	tp, ok = parseTraceParent("00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-fe")
	require.True(t, ok)
	assert.False(t, tp.Sampled())
}

func TestFormatTraceParent(t *testing.T) {
	tests := []struct {
		name     string
		traceID  string
		parentID string
		sampled  bool
		want     string
	}{
		{
			name:     "full width sampled",
			traceID:  "4bf92f3577b34da6a3ce929d0e0e4736",
			parentID: "00f067aa0ba902b7",
			sampled:  true,
			want:     "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
		},
		{
			name:     "short ids zero left padded",
			traceID:  "12345",
			parentID: "abc",
			sampled:  false,
			want:     "00-00000000000000000000000000012345-0000000000000abc-00",
		},
		{
			name:     "uppercase input lowered",
			traceID:  "4BF92F3577B34DA6A3CE929D0E0E4736",
			parentID: "00F067AA0BA902B7",
			sampled:  true,
			want:     "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatTraceParent(tt.traceID, tt.parentID, tt.sampled)
			assert.Equal(t, tt.want, got)

			// 产物必须能被自身的解析器接受
			_, ok := parseTraceParent(got)
			assert.True(t, ok)
		})
	}
}

func TestIsHex(t *testing.T) {
	assert.True(t, isHex("0123456789abcdefABCDEF"))
	assert.False(t, isHex(""))
	assert.False(t, isHex("xyz"))
	assert.False(t, isHex("01-23"))
}

func TestIsAllZeroHex(t *testing.T) {
	assert.True(t, isAllZeroHex("0000"))
	assert.False(t, isAllZeroHex("0001"))
}
