package xw3c

import "strings"

// vendorKeySuffix 本系统厂商条目 key 的固定后缀。
const vendorKeySuffix = "@nr"

// traceStateResult tracestate 列表解析结果。
//
// entryValue 是厂商条目的原始值（entryFound 时有效），
// 其位置字段的解析与校验由 vendor.go / intrinsics.go 完成。
type traceStateResult struct {
	listValid  bool
	entryFound bool
	entryValue string

	// newTraceState 剥除本系统厂商条目后的剩余列表（逗号重连，
	// 保持原有相对顺序），用于下一次出站编码的透传。
	newTraceState string

	// vendorKeys 剥除前看到的全部 key，按出现顺序排列，用于诊断归因。
	vendorKeys []string
}

// parseTraceState 解析 tracestate 列表并定位本系统的厂商条目。
//
// 按 "," 拆分为列表成员，每个成员按 "=" 拆分。任一成员不是恰好
// 2 段时整个 tracestate 作废（短路，不做部分解析）。
// 最多把第一个 key 等于 "<trustedKey>@nr" 的成员作为厂商条目，
// 无论其值是否合法都从列表中移除。
func parseTraceState(value, trustedKey string) traceStateResult {
	members := strings.Split(value, ",")
	vendorKey := trustedKey + vendorKeySuffix

	result := traceStateResult{
		vendorKeys: make([]string, 0, len(members)),
	}
	remaining := make([]string, 0, len(members))

	for _, member := range members {
		parts := strings.Split(member, "=")
		if len(parts) != 2 {
			return traceStateResult{listValid: false}
		}
		result.vendorKeys = append(result.vendorKeys, parts[0])

		// 只认第一个匹配的厂商条目；重复出现的后续条目原样保留
		if !result.entryFound && parts[0] == vendorKey {
			result.entryFound = true
			result.entryValue = parts[1]
			continue
		}
		remaining = append(remaining, member)
	}

	result.listValid = true
	if result.entryFound {
		result.newTraceState = strings.Join(remaining, ",")
	} else {
		// 未找到厂商条目时保留原始字符串，不做重连（避免无谓的规范化）
		result.newTraceState = value
	}
	return result
}

// formatTraceState 生成 tracestate 头值。
//
// 本系统的厂商条目永远排在最前；存在透传值时以逗号拼接在其后。
func formatTraceState(trustedKey, vendorValue, passThrough string) string {
	entry := trustedKey + vendorKeySuffix + "=" + vendorValue
	if passThrough == "" {
		return entry
	}
	return entry + "," + passThrough
}
