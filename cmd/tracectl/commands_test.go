package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp 以给定参数执行应用，返回标准输出内容和错误。
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := createApp()
	app.Writer = &buf
	err := app.Run(context.Background(), append([]string{"tracectl"}, args...))
	return buf.String(), err
}

func TestDecodeCommand(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		out, err := runApp(t, "decode",
			"-p", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
			"-s", "other=1,190@nr=0-0-33-5043-27ddd2d8890283b4-5569065a5b1313bd-1-1.234567-1518469636035,another=2",
			"--account-id", "33", "--app-id", "5043", "--trusted-key", "190",
		)
		require.NoError(t, err)
		assert.Contains(t, out, "traceparent.accepted: true")
		assert.Contains(t, out, "trace_id:             4bf92f3577b34da6a3ce929d0e0e4736")
		assert.Contains(t, out, "tracestate.accepted:  true")
		assert.Contains(t, out, "parent_type:          App")
		assert.Contains(t, out, "trusted_parent_id:    27ddd2d8890283b4")
		assert.Contains(t, out, "pass_through:         other=1,another=2")
	})

	t.Run("rejected traceparent maps to exit code 1", func(t *testing.T) {
		out, err := runApp(t, "decode",
			"-p", "ff-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
			"--account-id", "33", "--app-id", "5043",
		)
		var exitErr *exitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.code)
		assert.Contains(t, out, "traceparent.accepted: false")
	})

	t.Run("rejected vendor entry maps to exit code 1", func(t *testing.T) {
		_, err := runApp(t, "decode",
			"-p", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
			"-s", "190@nr=0-0-33",
			"--account-id", "33", "--app-id", "5043", "--trusted-key", "190",
		)
		var exitErr *exitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.code)
	})

	t.Run("missing traceparent is a usage error", func(t *testing.T) {
		_, err := runApp(t, "decode", "--account-id", "33", "--app-id", "5043")
		var usageErr *usageError
		assert.ErrorAs(t, err, &usageErr)
	})

	t.Run("missing settings is a usage error", func(t *testing.T) {
		_, err := runApp(t, "decode",
			"-p", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
		var usageErr *usageError
		assert.ErrorAs(t, err, &usageErr)
	})
}

func TestEncodeCommand(t *testing.T) {
	t.Run("explicit ids", func(t *testing.T) {
		out, err := runApp(t, "encode",
			"--trace-id", "4bf92f3577b34da6a3ce929d0e0e4736",
			"--span-id", "00f067aa0ba902b7",
			"--sampled",
			"--account-id", "33", "--app-id", "5043", "--trusted-key", "190",
		)
		require.NoError(t, err)
		assert.Contains(t, out, "traceparent: 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
		assert.Contains(t, out, "tracestate:  190@nr=0-0-33-5043-00f067aa0ba902b7-")
	})

	t.Run("inbound pass-through carried into outbound tracestate", func(t *testing.T) {
		out, err := runApp(t, "encode",
			"--trace-id", "4bf92f3577b34da6a3ce929d0e0e4736",
			"--span-id", "00f067aa0ba902b7",
			"--inbound-traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-b7ad6b7169203331-01",
			"--inbound-tracestate", "other=1,another=2",
			"--account-id", "33", "--app-id", "5043", "--trusted-key", "190",
		)
		require.NoError(t, err)
		assert.Contains(t, out, ",other=1,another=2")
	})

	t.Run("generated ids when absent", func(t *testing.T) {
		out, err := runApp(t, "encode", "--account-id", "33", "--app-id", "5043")
		require.NoError(t, err)
		assert.Contains(t, out, "traceparent: 00-")
	})
}

func TestGenCommand(t *testing.T) {
	out, err := runApp(t, "gen")
	require.NoError(t, err)
	assert.Contains(t, out, "trace_id: ")
	assert.Contains(t, out, "span_id:  ")
	assert.Contains(t, out, "txn_id:   ")
}

func TestRunExitCodeMapping(t *testing.T) {
	assert.Equal(t, 1, (&exitError{code: 1}).code)

	var target *usageError
	assert.True(t, errors.As(&usageError{msg: "x"}, &target))
}
