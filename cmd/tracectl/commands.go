package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/tracectx/pkg/config/xconf"
	"github.com/omeyang/tracectx/pkg/context/xctx"
	"github.com/omeyang/tracectx/pkg/observability/xlog"
	"github.com/omeyang/tracectx/pkg/propagation/xw3c"
)

// settingsFlags decode/encode 命令共用的内联配置参数。
// 与全局 --config 互斥使用：提供配置文件时内联参数被忽略。
func settingsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "account-id", Usage: "本方账户 ID"},
		&cli.StringFlag{Name: "app-id", Usage: "本方应用 ID"},
		&cli.StringFlag{Name: "trusted-key", Usage: "受信账户 key（缺省时退化为账户 ID）"},
		&cli.BoolFlag{Name: "no-span-events", Usage: "关闭 span 事件（厂商条目不携带 span id）"},
		&cli.BoolFlag{Name: "no-txn-events", Usage: "关闭事务事件（厂商条目不携带事务 id）"},
	}
}

// resolveSettings 从配置文件或内联参数获得编解码器配置。
func resolveSettings(cmd *cli.Command) (xconf.Settings, error) {
	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.New(path)
		if err != nil {
			return xconf.Settings{}, err
		}
		return cfg.Settings(), nil
	}

	settings := xconf.Settings{
		TrustedAccountKey: cmd.String("trusted-key"),
		AccountID:         cmd.String("account-id"),
		PrimaryAppID:      cmd.String("app-id"),
		SpanEvents:        !cmd.Bool("no-span-events"),
		TransactionEvents: !cmd.Bool("no-txn-events"),
	}
	if err := settings.Validate(); err != nil {
		return xconf.Settings{}, &usageError{msg: err.Error()}
	}
	return settings, nil
}

// newCodec 按全局选项组装编解码器。
func newCodec(cmd *cli.Command) (*xw3c.Codec, error) {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}

	logger := xlog.Noop()
	if cmd.Bool("verbose") {
		logger, err = xlog.New(
			xlog.WithWriter(os.Stderr),
			xlog.WithLevel(xlog.LevelDebug),
			xlog.WithEnrich(false),
		)
		if err != nil {
			return nil, err
		}
	}
	return xw3c.New(settings, xw3c.WithLogger(logger))
}

func createCommands() []*cli.Command {
	return []*cli.Command{
		decodeCommand(),
		encodeCommand(),
		genCommand(),
	}
}

// =============================================================================
// decode
// =============================================================================

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "解析并校验一对 traceparent/tracestate 头值",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "traceparent", Aliases: []string{"p"}, Usage: "traceparent 头值"},
			&cli.StringFlag{Name: "tracestate", Aliases: []string{"s"}, Usage: "tracestate 头值"},
		}, settingsFlags()...),
		Action: runDecode,
	}
}

func runDecode(ctx context.Context, cmd *cli.Command) error {
	traceparent := cmd.String("traceparent")
	if traceparent == "" {
		return &usageError{msg: "decode 需要 --traceparent"}
	}

	codec, err := newCodec(cmd)
	if err != nil {
		return err
	}

	result := codec.Accept(ctx, traceparent, cmd.String("tracestate"))
	printResult(cmd.Root().Writer, codec, result)

	if !result.AcceptedTraceParent {
		return &exitError{code: 1, msg: "traceparent 被拒绝"}
	}
	if cmd.String("tracestate") != "" && !result.AcceptedTraceState {
		return &exitError{code: 1, msg: "tracestate 的厂商条目未被接受"}
	}
	return nil
}

// printResult 按固定键序输出解码结果。
func printResult(w io.Writer, codec *xw3c.Codec, result xw3c.AcceptanceResult) {
	fmt.Fprintf(w, "traceparent.accepted: %v\n", result.AcceptedTraceParent)
	if result.AcceptedTraceParent {
		fmt.Fprintf(w, "trace_id:             %s\n", result.TraceID)
		fmt.Fprintf(w, "parent_span_id:       %s\n", result.ParentSpanID)
	}
	fmt.Fprintf(w, "tracestate.accepted:  %v\n", result.AcceptedTraceState)
	if result.AcceptedTraceState {
		fmt.Fprintf(w, "parent_type:          %s\n", result.ParentType)
		fmt.Fprintf(w, "account_id:           %s\n", result.AccountID)
		fmt.Fprintf(w, "app_id:               %s\n", result.AppID)
		if result.TransactionID != "" {
			fmt.Fprintf(w, "transaction_id:       %s\n", result.TransactionID)
		}
		if result.HasSampled {
			fmt.Fprintf(w, "sampled:              %v\n", result.Sampled)
		}
		if result.HasPriority {
			fmt.Fprintf(w, "priority:             %.6f\n", result.Priority)
		}
		fmt.Fprintf(w, "transport_duration:   %s\n", result.TransportDuration)
		fmt.Fprintf(w, "trusted_parent_id:    %s\n", codec.TrustedParentID())
	}
	if pass := codec.PassThrough(); pass != "" {
		fmt.Fprintf(w, "pass_through:         %s\n", pass)
	}
	if keys := codec.VendorKeys(); keys != "" {
		fmt.Fprintf(w, "vendor_keys:          %s\n", keys)
	}
}

// =============================================================================
// encode
// =============================================================================

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "从命令行参数生成出站头值",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "trace-id", Usage: "链路 ID（缺省时生成）"},
			&cli.StringFlag{Name: "span-id", Usage: "活跃 span ID（缺省时生成）"},
			&cli.StringFlag{Name: "txn-id", Usage: "事务 ID"},
			&cli.BoolFlag{Name: "sampled", Usage: "采样标志"},
			&cli.FloatFlag{Name: "priority", Usage: "采样优先级", Value: -1},
			&cli.StringFlag{Name: "inbound-traceparent", Usage: "先解码的入站 traceparent（透传其 tracestate 剩余部分）"},
			&cli.StringFlag{Name: "inbound-tracestate", Usage: "先解码的入站 tracestate"},
		}, settingsFlags()...),
		Action: runEncode,
	}
}

func runEncode(ctx context.Context, cmd *cli.Command) error {
	codec, err := newCodec(cmd)
	if err != nil {
		return err
	}

	// 透传值只能来自一次真实的入站解码
	if inbound := cmd.String("inbound-traceparent"); inbound != "" {
		codec.Accept(ctx, inbound, cmd.String("inbound-tracestate"))
	}

	traceID := cmd.String("trace-id")
	if traceID == "" {
		traceID = xctx.GenerateTraceID()
	}
	spanID := cmd.String("span-id")
	if spanID == "" {
		spanID = xctx.GenerateSpanID()
	}

	txn := xw3c.TxnState{
		TraceID: traceID,
		SpanID:  spanID,
		TxnID:   cmd.String("txn-id"),
		Sampled: cmd.Bool("sampled"),
	}
	if p := cmd.Float("priority"); p >= 0 {
		txn.Priority = p
		txn.HasPriority = true
	}

	traceparent, tracestate := codec.CreateHeaders(ctx, txn)
	fmt.Fprintf(cmd.Root().Writer, "traceparent: %s\n", traceparent)
	fmt.Fprintf(cmd.Root().Writer, "tracestate:  %s\n", tracestate)
	return nil
}

// =============================================================================
// gen
// =============================================================================

func genCommand() *cli.Command {
	return &cli.Command{
		Name:   "gen",
		Usage:  "生成新的 trace id / span id / 事务 id",
		Action: runGen,
	}
}

func runGen(_ context.Context, cmd *cli.Command) error {
	fmt.Fprintf(cmd.Root().Writer, "trace_id: %s\n", xctx.GenerateTraceID())
	fmt.Fprintf(cmd.Root().Writer, "span_id:  %s\n", xctx.GenerateSpanID())
	fmt.Fprintf(cmd.Root().Writer, "txn_id:   %s\n", xctx.GenerateTxnID())
	fmt.Fprintf(cmd.Root().Writer, "ts_milli: %d\n", time.Now().UnixMilli())
	return nil
}
