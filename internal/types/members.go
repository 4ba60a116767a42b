package types

import (
	"github.com/rvtraveller/phplint/internal/token"
	"golang.org/x/text/cases"
)

// Visibility 成员可见性
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "public"
	}
}

// Fold 名称的大小写折叠形式，用于类、函数与方法的查找键
func Fold(name string) string {
	return cases.Fold().String(name)
}

// ClassConstant 类常量
type ClassConstant struct {
	Name  string
	Class *ClassType
	Vis   Visibility
	Type  Type
	Value interface{}
	Pos   token.Position
	Used  bool
}

// ClassProperty 类属性
type ClassProperty struct {
	Name   string // 不含 $
	Class  *ClassType
	Vis    Visibility
	Static bool
	Type   Type
	Pos    token.Position
	Used   bool

	// Origin 实例化产生的属性指向模板中的原始声明
	Origin *ClassProperty
}

// MarkUsed 标记为已使用（实例化的成员标记其原始声明）
func (p *ClassProperty) MarkUsed() {
	for p.Origin != nil {
		p = p.Origin
	}
	p.Used = true
}

// ClassMethod 类方法
type ClassMethod struct {
	Name     string
	Class    *ClassType
	Vis      Visibility
	Static   bool
	Abstract bool
	Final    bool
	Forward  bool // 仅有前向声明，尚未实现
	Sig      *Signature
	Pos      token.Position
	Used     bool

	Origin *ClassMethod
}

// MarkUsed 标记为已使用
func (m *ClassMethod) MarkUsed() {
	for m.Origin != nil {
		m = m.Origin
	}
	m.Used = true
}

// IsConstructor 是否为构造方法
func (m *ClassMethod) IsConstructor() bool {
	return Fold(m.Name) == "__construct"
}

// FullName 返回 Class::name 形式
func (m *ClassMethod) FullName() string {
	return m.Class.String() + "::" + m.Name
}

// FullName 返回 Class::$name 形式
func (p *ClassProperty) FullName() string {
	return p.Class.String() + "::$" + p.Name
}

// FullName 返回 Class::NAME 形式
func (k *ClassConstant) FullName() string {
	return k.Class.String() + "::" + k.Name
}
