package xw3c

// VendorEntry 通过校验后的厂商条目内部字段（intrinsics）。
//
// 可选字段用 Has 前缀的布尔位表达存在性；SpanID/TxnID 缺省时为空字符串。
type VendorEntry struct {
	Version     int
	ParentType  ParentType
	AccountID   string
	AppID       string
	SpanID      string
	TxnID       string
	Sampled     bool
	HasSampled  bool
	Priority    float64
	HasPriority bool
	Timestamp   int64 // epoch 毫秒
}

// intrinsicPolicy 字段级校验策略表。
//
// 策略保持为数据而非分支代码：每行一个 (字段名, 谓词)，按序全量求值
// 而非短路——多个字段同时非法时，记录的失败原因是最后一个非法字段名。
var intrinsicPolicy = []struct {
	field string
	valid func(f vendorFields) bool
}{
	// version: 必填，类型转换失败即非法
	{"version", func(f vendorFields) bool {
		return f.version.state == fieldValid
	}},
	// parentType: 必填，且索引必须落在枚举集合内
	{"parentType", func(f vendorFields) bool {
		if f.parentType.state != fieldValid {
			return false
		}
		_, ok := parentTypeFromIndex(f.parentType.value)
		return ok
	}},
	// accountId: 必填
	{"accountId", func(f vendorFields) bool {
		return f.accountID.present
	}},
	// appId: 必填
	{"appId", func(f vendorFields) bool {
		return f.appID.present
	}},
	// sampled: 可选，存在时类型转换失败即非法
	{"sampled", func(f vendorFields) bool {
		return f.sampled.state != fieldInvalid
	}},
	// priority: 可选，存在时类型转换失败即非法
	{"priority", func(f vendorFields) bool {
		return f.priority.state != fieldInvalid
	}},
	// timestamp: 必填，类型转换失败即非法
	{"timestamp", func(f vendorFields) bool {
		return f.timestamp.state == fieldValid
	}},
}

// validateIntrinsics 按策略表校验字段集合。
//
// 返回 (条目是否合法, 失败字段名)。所有行都会被求值，
// invalidField 反映最后一个失败的字段。
func validateIntrinsics(f vendorFields) (bool, string) {
	valid := true
	invalidField := ""
	for _, rule := range intrinsicPolicy {
		if !rule.valid(f) {
			valid = false
			invalidField = rule.field
		}
	}
	return valid, invalidField
}

// normalizeIntrinsics 把通过校验的字段集合归一化为 VendorEntry。
//
// 归一化规则：sampled 非零即真；parentType 从数字索引解析为枚举。
// 调用方保证 f 已通过 validateIntrinsics。
func normalizeIntrinsics(f vendorFields) VendorEntry {
	parentType, _ := parentTypeFromIndex(f.parentType.value)
	return VendorEntry{
		Version:     int(f.version.value),
		ParentType:  parentType,
		AccountID:   f.accountID.value,
		AppID:       f.appID.value,
		SpanID:      f.spanID.value,
		TxnID:       f.txnID.value,
		Sampled:     f.sampled.value != 0,
		HasSampled:  f.sampled.state == fieldValid,
		Priority:    f.priority.value,
		HasPriority: f.priority.state == fieldValid,
		Timestamp:   f.timestamp.value,
	}
}
