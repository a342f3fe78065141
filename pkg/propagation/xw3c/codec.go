package xw3c

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/omeyang/tracectx/pkg/config/xconf"
	"github.com/omeyang/tracectx/pkg/observability/xlog"
	"github.com/omeyang/tracectx/pkg/observability/xmetrics"
)

// TxnState 出站编码所需的工作单元状态快照。
//
// 设计决策: 编码器不持有对工作单元的引用、不回调其 getter，
// 而是由调用方在每次编码时传入一份显式快照。"永远取当前值"的语义
// 由调用时机保证，避免隐式共享可变状态。
type TxnState struct {
	// TraceID 当前链路 ID，必填。
	TraceID string

	// SpanID 当前活跃 span ID，可为空（无活跃 span 时出站
	// traceparent 使用新生成的随机 ID）。
	SpanID string

	// TxnID 事务 ID，可为空。
	TxnID string

	// Sampled 采样标志。
	Sampled bool

	// Priority 采样优先级；HasPriority 为 false 时视为缺省。
	Priority    float64
	HasPriority bool
}

// AcceptanceResult 入站头解码的结构化结果。
//
// 解码路径对非法输入不返回 error：调用方按两个 Accepted 布尔标志
// 分支。厂商条目字段（ParentType 及其后）仅在 AcceptedTraceState
// 为 true 时有效。
type AcceptanceResult struct {
	AcceptedTraceParent bool
	AcceptedTraceState  bool

	// TraceID / ParentSpanID 来自 traceparent，
	// AcceptedTraceParent 为 true 时有效。
	TraceID      string
	ParentSpanID string

	// 以下字段来自厂商条目，AcceptedTraceState 为 true 时有效。
	ParentType    ParentType
	AccountID     string
	AppID         string
	TransactionID string
	Sampled       bool
	HasSampled    bool
	Priority      float64
	HasPriority   bool

	// TransportDuration 上游发出与本地接受之间的传输时延，
	// 非负，仅在完整接受时计算。
	TransportDuration time.Duration
}

// Codec W3C Trace Context 头编解码器。
//
// 每个在途工作单元持有一个实例，随工作单元创建和丢弃，不持有
// 需要显式释放的资源。实例状态只被同一工作单元串行读写，非并发安全。
type Codec struct {
	settings xconf.Settings
	logger   xlog.Logger
	recorder xmetrics.Recorder
	now      func() time.Time
	newSpan  func() string

	// passThrough 最近一次入站 tracestate 剥除本系统厂商条目后的
	// 剩余部分，由解码写入、下一次出站编码读取。
	passThrough string

	// trustedParentID 最近一次成功接受的厂商条目 span ID。
	trustedParentID string

	// vendorKeys 最近一次入站 tracestate 中观察到的全部 key
	// （逗号拼接），仅用于诊断归因。
	vendorKeys string
}

// New 创建编解码器。settings 未通过校验时返回错误。
func New(settings xconf.Settings, opts ...Option) (*Codec, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("xw3c: %w", err)
	}

	cfg := defaultCodecConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if cfg.txnID != "" {
		logger = logger.With(slog.String("txn_id", cfg.txnID))
	}

	return &Codec{
		settings: settings,
		logger:   logger,
		recorder: cfg.recorder,
		now:      cfg.now,
		newSpan:  cfg.newSpanID,
	}, nil
}

// =============================================================================
// 出站编码
// =============================================================================

// CreateHeaders 为一次出站调用生成 traceparent 和 tracestate 头值。
//
// traceparent 的 parent-id 使用当前活跃 span ID；无活跃 span 时
// 生成随机 64-bit ID。tracestate 的本系统厂商条目永远排在最前，
// 已存储的入站透传值跟随其后。
func (c *Codec) CreateHeaders(ctx context.Context, txn TxnState) (traceparent, tracestate string) {
	parentID := txn.SpanID
	if parentID == "" {
		parentID = c.newSpan()
	}

	traceparent = formatTraceParent(txn.TraceID, parentID, txn.Sampled)
	tracestate = formatTraceState(c.settings.TrustedKey(), c.vendorValue(txn), c.passThrough)

	xmetrics.Increment(ctx, c.recorder, xmetrics.OutcomeCreateSuccess)
	return traceparent, tracestate
}

// vendorValue 组装本系统厂商条目的 9 槽位值。
//
// 配置关闭的字段（span 事件关闭时的 span ID、事务事件关闭时的
// 事务 ID）渲染为空槽位而非省略——槽位永远齐全。
func (c *Codec) vendorValue(txn TxnState) string {
	spanID := ""
	if c.settings.SpanEvents {
		spanID = txn.SpanID
	}
	txnID := ""
	if c.settings.TransactionEvents {
		txnID = txn.TxnID
	}
	priority := ""
	if txn.HasPriority {
		// 优先级固定渲染为 6 位小数
		priority = strconv.FormatFloat(txn.Priority, 'f', 6, 64)
	}
	return joinVendorValue(
		c.settings.AccountID,
		c.settings.PrimaryAppID,
		spanID,
		txnID,
		txn.Sampled,
		priority,
		c.now().UnixMilli(),
	)
}

// =============================================================================
// 入站解码
// =============================================================================

// Accept 解析并校验入站的 traceparent/tracestate 头值。
//
// 状态机（短路终止）：
//  1. traceparent 缺失 → 全否定结果，不再解析 tracestate
//  2. traceparent 非法 → 上报解析失败计数，返回；不触碰 tracestate
//  3. traceparent 合法、tracestate 缺失 → 仅接受 traceparent
//  4. tracestate 列表语法非法 → traceparent 的接受结果保留
//  5. 列表合法 → 无条件存储剥除厂商条目后的透传值（条目值非法
//     也剥除，避免把坏载荷再次传播）
//  6. 厂商条目合法 → 填充 intrinsics、计算传输时延、上报成功计数
//  7. 厂商条目非法 → 上报校验失败计数，tracestate 保持未接受
func (c *Codec) Accept(ctx context.Context, traceparent, tracestate string) AcceptanceResult {
	var result AcceptanceResult

	if traceparent == "" {
		return result
	}

	tp, ok := parseTraceParent(traceparent)
	if !ok {
		c.logger.Warn(ctx, "xw3c: invalid inbound traceparent",
			slog.String(HeaderTraceParent, traceparent))
		xmetrics.Increment(ctx, c.recorder, xmetrics.OutcomeParseException)
		return result
	}
	if tp.Version != supportedVersion {
		// 版本不匹配仅记录，不拒绝（前向兼容）
		c.logger.Debug(ctx, "xw3c: traceparent version differs from supported",
			slog.String("version", tp.Version),
			slog.String("supported", supportedVersion))
	}

	result.AcceptedTraceParent = true
	result.TraceID = tp.TraceID
	result.ParentSpanID = tp.ParentID

	if tracestate == "" {
		return result
	}

	ts := parseTraceState(tracestate, c.settings.TrustedKey())
	if !ts.listValid {
		c.logger.Warn(ctx, "xw3c: malformed inbound tracestate",
			slog.String(HeaderTraceState, tracestate))
		return result
	}

	// 列表语法合法后即存储透传值与 key 清单，与厂商条目值的
	// 合法性无关：坏载荷也必须在再传播前剥除
	c.passThrough = ts.newTraceState
	c.vendorKeys = strings.Join(ts.vendorKeys, ",")

	if !ts.entryFound {
		return result
	}

	fields, ok := parseVendorValue(ts.entryValue)
	if !ok {
		c.logger.Warn(ctx, "xw3c: vendor entry has wrong field count",
			slog.String("entry", ts.entryValue))
		xmetrics.Increment(ctx, c.recorder, xmetrics.OutcomeInvalidVendorEntry)
		return result
	}

	valid, invalidField := validateIntrinsics(fields)
	if !valid {
		c.logger.Warn(ctx, "xw3c: vendor entry failed validation",
			slog.String("field", invalidField),
			slog.String("entry", ts.entryValue))
		xmetrics.Increment(ctx, c.recorder, xmetrics.OutcomeInvalidVendorEntry)
		return result
	}

	entry := normalizeIntrinsics(fields)
	result.AcceptedTraceState = true
	result.ParentType = entry.ParentType
	result.AccountID = entry.AccountID
	result.AppID = entry.AppID
	result.TransactionID = entry.TxnID
	result.Sampled = entry.Sampled
	result.HasSampled = entry.HasSampled
	result.Priority = entry.Priority
	result.HasPriority = entry.HasPriority
	result.TransportDuration = c.transportDuration(entry.Timestamp)

	c.trustedParentID = entry.SpanID
	xmetrics.Increment(ctx, c.recorder, xmetrics.OutcomeAcceptSuccess)
	return result
}

// transportDuration 计算上游时间戳到当前时刻的传输时延，负值归零。
func (c *Codec) transportDuration(timestampMilli int64) time.Duration {
	d := c.now().Sub(time.UnixMilli(timestampMilli))
	if d < 0 {
		return 0
	}
	return d
}

// =============================================================================
// 实例状态读取
// =============================================================================

// PassThrough 返回当前存储的透传 tracestate（可能为空）。
func (c *Codec) PassThrough() string {
	return c.passThrough
}

// TrustedParentID 返回最近一次成功接受的厂商条目 span ID。
func (c *Codec) TrustedParentID() string {
	return c.trustedParentID
}

// VendorKeys 返回最近一次入站 tracestate 中观察到的 key 清单
// （逗号拼接），用于诊断归因。
func (c *Codec) VendorKeys() string {
	return c.vendorKeys
}
