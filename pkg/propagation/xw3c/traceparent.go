package xw3c

import (
	"fmt"
	"strings"
)

// W3C Trace Context 头名称。
const (
	// HeaderTraceParent W3C 标准头：traceparent。
	HeaderTraceParent = "traceparent"

	// HeaderTraceState W3C 标准头：tracestate。
	HeaderTraceState = "tracestate"
)

const (
	// supportedVersion 本编解码器支持的 traceparent 版本。
	supportedVersion = "00"

	// invalidVersion 版本 "ff" 保留，始终无效（大小写不敏感）。
	invalidVersion = "ff"

	// flagSampled trace-flags 的 bit0：采样标志。
	flagSampled byte = 0x01

	versionLen  = 2
	traceIDLen  = 32
	parentIDLen = 16
	flagsLen    = 2
)

// TraceParent 解析后的 traceparent 字段。
// 各字段保留原始十六进制字符串形态；Sampled 方法解析 flags 的 bit0。
type TraceParent struct {
	Version  string
	TraceID  string
	ParentID string
	Flags    string
}

// Sampled 返回 flags 的采样位是否置位。
func (tp TraceParent) Sampled() bool {
	// Flags 已通过格式校验（2 位十六进制），低位字符承载 bit0
	return hexNibble(tp.Flags[1])&flagSampled != 0
}

// parseTraceParent 解析并校验 traceparent 头值。
//
// 按 "-" 拆分。版本为支持版本时必须恰好 4 个字段（额外字段保留给
// 未来版本，对版本 00 出现即非法）；未知版本只取前 4 个字段解析，
// 额外字段忽略。四个字段各自通过格式规则后才返回 ok=true。
func parseTraceParent(value string) (TraceParent, bool) {
	fields := strings.Split(value, "-")
	if len(fields) < 4 {
		return TraceParent{}, false
	}

	version := fields[0]
	if !isValidVersion(version) {
		return TraceParent{}, false
	}
	// 版本 00 严格要求 4 个字段；未知版本允许额外字段（前向兼容）
	if version == supportedVersion && len(fields) != 4 {
		return TraceParent{}, false
	}

	tp := TraceParent{
		Version:  version,
		TraceID:  fields[1],
		ParentID: fields[2],
		Flags:    fields[3],
	}

	if !isValidTraceID(tp.TraceID) {
		return TraceParent{}, false
	}
	if !isValidParentID(tp.ParentID) {
		return TraceParent{}, false
	}
	if !isValidFlags(tp.Flags) {
		return TraceParent{}, false
	}
	return tp, true
}

// formatTraceParent 生成 traceparent 头值。
//
// traceID 左补零到 32 位，parentID 左补零到 16 位，统一小写；
// flags 由各激活标志位按位或构成，渲染为 2 位小写十六进制。
// 输入来自工作单元自身状态，无失败分支。
func formatTraceParent(traceID, parentID string, sampled bool) string {
	var flags byte
	if sampled {
		flags |= flagSampled
	}
	return fmt.Sprintf("%s-%s-%s-%02x",
		supportedVersion,
		padHex(traceID, traceIDLen),
		padHex(parentID, parentIDLen),
		flags,
	)
}

// =============================================================================
// 字段级校验
// =============================================================================

// isValidVersion 版本必须是 2 位十六进制且不为 "ff"。
func isValidVersion(version string) bool {
	if len(version) != versionLen || !isHex(version) {
		return false
	}
	return !strings.EqualFold(version, invalidVersion)
}

// isValidTraceID trace-id 必须是 32 位十六进制且非全零。
func isValidTraceID(id string) bool {
	return len(id) == traceIDLen && isHex(id) && !isAllZeroHex(id)
}

// isValidParentID parent-id 必须是 16 位十六进制且非全零。
func isValidParentID(id string) bool {
	return len(id) == parentIDLen && isHex(id) && !isAllZeroHex(id)
}

// isValidFlags trace-flags 必须是 2 位十六进制。
func isValidFlags(flags string) bool {
	return len(flags) == flagsLen && isHex(flags)
}

// isHex 校验字符串是否为非空十六进制。
// 解析端容错：同时接受大写和小写，确保与不同实现的互操作性；
// 输出端统一渲染为小写。
func isHex(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isDigit := c >= '0' && c <= '9'
		isLowerHex := c >= 'a' && c <= 'f'
		isUpperHex := c >= 'A' && c <= 'F'
		if !isDigit && !isLowerHex && !isUpperHex {
			return false
		}
	}
	return true
}

// isAllZeroHex 校验十六进制字符串是否全零。
// 调用方保证输入已通过 isHex。
func isAllZeroHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// hexNibble 把单个十六进制字符转为数值。
// 调用方保证输入已通过 isHex。
func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// padHex 把十六进制字符串左补零到指定宽度并转小写。
func padHex(s string, width int) string {
	s = strings.ToLower(s)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
