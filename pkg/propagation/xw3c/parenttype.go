package xw3c

import "strconv"

// ParentType 厂商条目中的父实体类型。
type ParentType int

// 枚举值与厂商条目第 2 槽位的数字索引一一对应。
const (
	// ParentTypeApp 服务端应用。
	ParentTypeApp ParentType = iota
	// ParentTypeBrowser 浏览器端。
	ParentTypeBrowser
	// ParentTypeMobile 移动端。
	ParentTypeMobile
)

// String 返回 ParentType 的标准标签。
func (p ParentType) String() string {
	switch p {
	case ParentTypeApp:
		return "App"
	case ParentTypeBrowser:
		return "Browser"
	case ParentTypeMobile:
		return "Mobile"
	default:
		return "ParentType(" + strconv.Itoa(int(p)) + ")"
	}
}

// parentTypeFromIndex 把数字索引解析为 ParentType。
// 索引超出枚举集合时返回 false。
func parentTypeFromIndex(idx int64) (ParentType, bool) {
	if idx < int64(ParentTypeApp) || idx > int64(ParentTypeMobile) {
		return 0, false
	}
	return ParentType(idx), true
}
