package xw3c

import (
	"strconv"
	"strings"
)

// vendorFieldCount 厂商条目值的固定槽位数。
const vendorFieldCount = 9

// 槽位索引。位置编码，顺序即协议。
const (
	slotVersion = iota
	slotParentType
	slotAccountID
	slotAppID
	slotSpanID
	slotTxnID
	slotSampled
	slotPriority
	slotTimestamp
)

// fieldState 可选槽位的三态：缺省 / 合法 / 非法（类型转换失败）。
//
// 类型转换失败不在解析层报错，而是记为 fieldInvalid 哨兵值，
// 由校验层（intrinsics.go）按字段策略统一裁决。
type fieldState int

const (
	fieldAbsent fieldState = iota
	fieldValid
	fieldInvalid
)

// intSlot 整型槽位。
type intSlot struct {
	value int64
	state fieldState
}

// floatSlot 浮点槽位。
type floatSlot struct {
	value float64
	state fieldState
}

// strSlot 字符串槽位。空字符串视为缺省。
type strSlot struct {
	value   string
	present bool
}

// vendorFields 厂商条目值经类型转换后的字段集合。
type vendorFields struct {
	version    intSlot
	parentType intSlot
	accountID  strSlot
	appID      strSlot
	spanID     strSlot
	txnID      strSlot
	sampled    intSlot
	priority   floatSlot
	timestamp  intSlot
}

// parseVendorValue 把厂商条目的原始值拆为 9 个位置槽位并做类型转换。
//
// 空字符串槽位视为缺省。槽位数不足 9 个为结构性错误，返回 ok=false；
// 槽位多于 9 个仅在版本槽位为 "0" 时视为非法（版本 0 的固定 9 槽语法），
// 未知版本允许尾部追加槽位（前向兼容），多余槽位忽略。
func parseVendorValue(value string) (vendorFields, bool) {
	slots := strings.Split(value, "-")
	if len(slots) < vendorFieldCount {
		return vendorFields{}, false
	}
	if len(slots) > vendorFieldCount && slots[slotVersion] == "0" {
		return vendorFields{}, false
	}

	return vendorFields{
		version:    parseIntSlot(slots[slotVersion]),
		parentType: parseIntSlot(slots[slotParentType]),
		accountID:  parseStrSlot(slots[slotAccountID]),
		appID:      parseStrSlot(slots[slotAppID]),
		spanID:     parseStrSlot(slots[slotSpanID]),
		txnID:      parseStrSlot(slots[slotTxnID]),
		sampled:    parseIntSlot(slots[slotSampled]),
		priority:   parseFloatSlot(slots[slotPriority]),
		timestamp:  parseIntSlot(slots[slotTimestamp]),
	}, true
}

func parseIntSlot(raw string) intSlot {
	if raw == "" {
		return intSlot{state: fieldAbsent}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return intSlot{state: fieldInvalid}
	}
	return intSlot{value: v, state: fieldValid}
}

func parseFloatSlot(raw string) floatSlot {
	if raw == "" {
		return floatSlot{state: fieldAbsent}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return floatSlot{state: fieldInvalid}
	}
	return floatSlot{value: v, state: fieldValid}
}

func parseStrSlot(raw string) strSlot {
	return strSlot{value: raw, present: raw != ""}
}

// joinVendorValue 生成厂商条目的 9 槽位值。
// 缺省字段渲染为空字符串，槽位永远齐全——这是与 parseVendorValue
// 配对的唯一编码出口，共同保证 9 槽位的元数约束。
func joinVendorValue(accountID, appID, spanID, txnID string, sampled bool, priority string, timestampMilli int64) string {
	sampledSlot := "0"
	if sampled {
		sampledSlot = "1"
	}
	slots := [vendorFieldCount]string{
		slotVersion:    "0",
		slotParentType: strconv.Itoa(int(ParentTypeApp)),
		slotAccountID:  accountID,
		slotAppID:      appID,
		slotSpanID:     spanID,
		slotTxnID:      txnID,
		slotSampled:    sampledSlot,
		slotPriority:   priority,
		slotTimestamp:  strconv.FormatInt(timestampMilli, 10),
	}
	return strings.Join(slots[:], "-")
}
