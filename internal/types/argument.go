package types

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/token"
)

// FormalArgument 形式参数
type FormalArgument struct {
	Name        string // 不含 $
	Type        Type
	ByRef       bool // 按引用传递
	ByRefReturn bool // 经引用返回：入口处可以未赋值，返回时保证已赋值
	Mandatory   bool
	Variadic    bool
	Default     Type        // 默认值的类型，没有默认值时为 nil
	Value       interface{} // 默认值（若可静态求值）
	Pos         token.Position
}

// CallCompatibleWithReason 判断作为重写方的参数 a 能否替代基方法的参数 other；兼容时返回空串
func (a *FormalArgument) CallCompatibleWithReason(other *FormalArgument) string {
	if a.ByRef != other.ByRef || a.ByRefReturn != other.ByRefReturn {
		return i18n.T(i18n.ReasonArgByRef)
	}
	if a.Variadic != other.Variadic {
		return i18n.T(i18n.ReasonArgVariadic)
	}
	if !argTypeCompatible(a.Type, other.Type) {
		return i18n.T(i18n.ReasonArgType, a.Type, other.Type)
	}
	return ""
}

// argTypeCompatible 参数类型逆变：类参数要求基方法的类型是重写方类型的子类，其他类型要求相等
func argTypeCompatible(this, other Type) bool {
	if IsUnknown(this) || IsUnknown(other) {
		return true
	}
	tc, ok1 := this.(*ClassType)
	oc, ok2 := other.(*ClassType)
	if ok1 && ok2 {
		return oc.IsSubclassOf(tc)
	}
	return this.Equals(other)
}

// String 返回形如 "string &$name = " 的写法
func (a *FormalArgument) String() string {
	var sb strings.Builder
	if a.ByRefReturn {
		sb.WriteString("return ")
	}
	if a.Type != nil {
		sb.WriteString(a.Type.String())
		sb.WriteByte(' ')
	}
	if a.ByRef {
		sb.WriteByte('&')
	}
	if a.Variadic {
		sb.WriteString("...")
	}
	sb.WriteString("$" + a.Name)
	if !a.Mandatory && !a.Variadic {
		sb.WriteString(" =")
	}
	return sb.String()
}
