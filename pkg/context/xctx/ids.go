package xctx

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// ID 长度常量（遵循 W3C Trace Context 规范）。
const (
	// TraceIDSize W3C 规范: 128-bit (16 bytes) -> 32 hex chars
	TraceIDSize = 16

	// SpanIDSize W3C 规范: 64-bit (8 bytes) -> 16 hex chars
	SpanIDSize = 8
)

// isAllZeros 检查字节切片是否全为零。
// W3C Trace Context 规范禁止全零的 trace-id 和 span-id。
func isAllZeros(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}
	return true
}

// generateHexID 生成指定字节数的随机十六进制 ID，全零时重新生成。
//
// Panic 策略说明：如果底层熵源不可用（极罕见的系统级错误），函数会 panic。
// crypto/rand 失败意味着系统无法提供安全随机数，此时继续运行会导致
// 追踪标识可预测，服务应立即终止而非静默降级。
// 这与 OpenTelemetry SDK 的 ID 生成器采用相同策略。
func generateHexID(size int) string {
	buf := make([]byte, size)
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("xctx: crypto/rand.Read failed: " + err.Error())
		}
		if !isAllZeros(buf) {
			return hex.EncodeToString(buf)
		}
		// 全零概率极低（2^-128 / 2^-64），重新生成即可
	}
}

// GenerateTraceID 生成符合 W3C Trace Context 规范的 TraceID。
//
// 格式: 32 位小写十六进制字符串 (128-bit)，保证非全零。
// 示例: "0af7651916cd43dd8448eb211c80319c"
func GenerateTraceID() string {
	return generateHexID(TraceIDSize)
}

// GenerateSpanID 生成符合 W3C Trace Context 规范的 SpanID。
//
// 格式: 16 位小写十六进制字符串 (64-bit)，保证非全零。
// 示例: "b7ad6b7169203331"
func GenerateSpanID() string {
	return generateHexID(SpanIDSize)
}

// GenerateTxnID 生成事务（工作单元）ID。
//
// TxnID 不在 W3C 标准中，仅用于日志归因，采用 UUID v4 格式。
func GenerateTxnID() string {
	return uuid.NewString()
}
