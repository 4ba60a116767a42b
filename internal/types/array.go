package types

import "strings"

// ArrayType 数组类型
//
// 索引类型只能是 Int、String、Mixed（两者皆可）或 Unknown（空数组字面量）。
// 实例只能由 Universe.Array 创建。
type ArrayType struct {
	index Type
	elem  Type
}

// Index 索引类型
func (a *ArrayType) Index() Type { return a.index }

// Elem 元素类型
func (a *ArrayType) Elem() Type { return a.elem }

func (a *ArrayType) Kind() Kind { return KindArray }
func (a *ArrayType) typeNode()  {}

// String 嵌套数组打印为 Elem[k1][k2]...，外层索引在前，Mixed 索引打印为 []
func (a *ArrayType) String() string {
	var sb strings.Builder
	var t Type = a
	for {
		arr, ok := t.(*ArrayType)
		if !ok {
			break
		}
		switch arr.index {
		case Int:
			sb.WriteString("[int]")
		case String:
			sb.WriteString("[string]")
		default:
			sb.WriteString("[]")
		}
		t = arr.elem
	}
	return t.String() + sb.String()
}

// Equals 结构相等
func (a *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	if !ok {
		return false
	}
	return a == o || (a.index.Equals(o.index) && a.elem.Equals(o.elem))
}

// AssignableTo 索引和元素分别递归可赋值
func (a *ArrayType) AssignableTo(lhs Type) bool {
	if acceptsAnything(lhs) {
		return true
	}
	o, ok := lhs.(*ArrayType)
	if !ok {
		return false
	}
	if !indexAssignable(a.index, o.index) {
		return false
	}
	return a.elem.AssignableTo(o.elem)
}

// CanCastTo 实现 Type
func (a *ArrayType) CanCastTo(target Type) bool {
	if target == Mixed {
		return true
	}
	o, ok := target.(*ArrayType)
	if !ok {
		return false
	}
	if !indexAssignable(a.index, o.index) && !indexAssignable(o.index, a.index) {
		return false
	}
	return a.elem.CanCastTo(o.elem)
}

func indexAssignable(rhs, lhs Type) bool {
	return rhs == lhs || lhs == Mixed || rhs == Unknown || lhs == Unknown
}
