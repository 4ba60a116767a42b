package types

import "strings"

// ErrorSet 签名可能触发的错误级别集合（位掩码）
type ErrorSet uint32

// 错误级别，取值与运行时常量一致
const (
	E_ERROR             ErrorSet = 1 << iota // 1
	E_WARNING                                // 2
	E_PARSE                                  // 4
	E_NOTICE                                 // 8
	E_CORE_ERROR                             // 16
	E_CORE_WARNING                           // 32
	E_COMPILE_ERROR                          // 64
	E_COMPILE_WARNING                        // 128
	E_USER_ERROR                             // 256
	E_USER_WARNING                           // 512
	E_USER_NOTICE                            // 1024
	E_STRICT                                 // 2048
	E_RECOVERABLE_ERROR                      // 4096
	E_DEPRECATED                             // 8192
	E_USER_DEPRECATED                        // 16384
)

var errorNames = []string{
	"E_ERROR", "E_WARNING", "E_PARSE", "E_NOTICE",
	"E_CORE_ERROR", "E_CORE_WARNING", "E_COMPILE_ERROR", "E_COMPILE_WARNING",
	"E_USER_ERROR", "E_USER_WARNING", "E_USER_NOTICE", "E_STRICT",
	"E_RECOVERABLE_ERROR", "E_DEPRECATED", "E_USER_DEPRECATED",
}

// ParseErrorName 解析错误级别名称（大小写敏感）
func ParseErrorName(name string) (ErrorSet, bool) {
	for i, n := range errorNames {
		if n == name {
			return 1 << i, true
		}
	}
	return 0, false
}

// Has 是否包含 e 中的全部级别
func (s ErrorSet) Has(e ErrorSet) bool { return s&e == e }

// Subset 是否为 other 的子集
func (s ErrorSet) Subset(other ErrorSet) bool { return s&^other == 0 }

// String 按位序以 | 连接
func (s ErrorSet) String() string {
	if s == 0 {
		return ""
	}
	var names []string
	for i, n := range errorNames {
		if s&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

// ErrorNames 按位序返回全部错误级别名称
func ErrorNames() []string {
	return append([]string(nil), errorNames...)
}
