// Package types 实现分析器的类型系统
//
// Type 是一个封闭的变体集合：
//
//	Void | Null | Boolean | Int | Float | String | Resource | Mixed | Unknown | Guess
//	| Array{index, elem} | Class
//
// 无状态的基本类型是单例，按指针比较；ArrayType 只能通过 Universe.Array
// 创建；ClassType 由解析器声明，泛型实例由 Universe 按规范名缓存，
// 因此同一组实参永远得到同一个实例。
package types

// Kind 类型变体
type Kind int

const (
	KindVoid Kind = iota
	KindNull
	KindBoolean
	KindInt
	KindFloat
	KindString
	KindResource
	KindMixed
	KindUnknown
	KindGuess
	KindArray
	KindClass
)

// Type 所有类型的公共接口
type Type interface {
	// String 返回类型在类型描述语法中的写法
	String() string

	// Kind 返回类型变体
	Kind() Kind

	// Equals 结构相等
	Equals(other Type) bool

	// AssignableTo 判断此类型的值能否赋给 lhs 类型的变量
	AssignableTo(lhs Type) bool

	// CanCastTo 判断能否通过显式的 cast() 转换为 target
	CanCastTo(target Type) bool

	typeNode()
}

// IsUnknown 判断是否为尚未确定的类型（Unknown 或 Guess）
func IsUnknown(t Type) bool {
	return t == nil || t == Unknown || t == Guess
}

// acceptsAnything 左值为 Mixed/Unknown/Guess 时接受任何值
func acceptsAnything(lhs Type) bool {
	return lhs == Mixed || lhs == Unknown || lhs == Guess
}

// IsClass 判断是否为类类型，返回对应的 ClassType
func IsClass(t Type) (*ClassType, bool) {
	c, ok := t.(*ClassType)
	return c, ok
}

// IsArray 判断是否为数组类型
func IsArray(t Type) (*ArrayType, bool) {
	a, ok := t.(*ArrayType)
	return a, ok
}
