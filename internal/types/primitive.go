package types

// Primitive 无状态的基本类型
type Primitive struct {
	name string
	kind Kind
}

// 基本类型单例
var (
	Void     = &Primitive{"void", KindVoid}
	Null     = &Primitive{"null", KindNull}
	Boolean  = &Primitive{"boolean", KindBoolean}
	Int      = &Primitive{"int", KindInt}
	Float    = &Primitive{"float", KindFloat}
	String   = &Primitive{"string", KindString}
	Resource = &Primitive{"resource", KindResource}
	Mixed    = &Primitive{"mixed", KindMixed}
	Unknown  = &Primitive{"unknown", KindUnknown}
	Guess    = &Primitive{"guess", KindGuess}
)

// Primitives 全部基本类型，按声明顺序
var Primitives = []*Primitive{Void, Null, Boolean, Int, Float, String, Resource, Mixed, Unknown, Guess}

func (p *Primitive) String() string { return p.name }
func (p *Primitive) Kind() Kind     { return p.kind }
func (p *Primitive) typeNode()      {}

// Equals 基本类型是单例，按指针比较
func (p *Primitive) Equals(other Type) bool {
	return Type(p) == other
}

// AssignableTo 实现 Type
func (p *Primitive) AssignableTo(lhs Type) bool {
	if p == Unknown || p == Guess || acceptsAnything(lhs) {
		return true
	}
	if Type(p) == lhs {
		return true
	}
	switch p {
	case Int:
		return lhs == Float
	case Null:
		switch lhs.Kind() {
		case KindString, KindResource, KindArray, KindClass:
			return true
		}
	}
	return false
}

// CanCastTo 实现 Type
func (p *Primitive) CanCastTo(target Type) bool {
	if !validCastTarget(target) {
		return false
	}
	if p == Mixed || p == Unknown || p == Guess || target == Mixed {
		return true
	}
	if Type(p) == target {
		return true
	}
	switch p {
	case Int:
		return target == Float
	case Float:
		return target == Int
	case Null:
		switch target.Kind() {
		case KindString, KindResource, KindArray, KindClass:
			return true
		}
	}
	return false
}

// validCastTarget void、null、未确定类型以及类型参数不能作为转换目标
func validCastTarget(t Type) bool {
	switch t {
	case Void, Null, Unknown, Guess, nil:
		return false
	}
	if c, ok := t.(*ClassType); ok {
		return !c.IsParam && !c.IsWildcard
	}
	return true
}
