package types

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/token"
)

// ============================================================================
// ClassType - 类、抽象类、接口与泛型参数
// ============================================================================
//
// 同一个结构承担四种角色：
//   - 普通类与接口（Params 为空，Template 为空）
//   - 泛型模板（Params 非空）
//   - 模板的实例（Template 与 Actuals 非空），由 Universe 缓存
//   - 形式类型参数与通配符（IsParam / IsWildcard），其 Extended 与
//     Implemented 由约束合成，因而可以在所有需要子类判断的地方当作类使用
//
// Extended 为 nil 表示直接继承根类 object。
//
// ============================================================================

// ClassType 类类型
type ClassType struct {
	Name string         // 完全限定名，按声明时的大小写
	Pos  token.Position // 声明位置

	Extended    *ClassType   // 父类；接口与根类为 nil
	Implemented []*ClassType // 实现（接口则为继承）的接口，保持最小集合

	Interface bool
	Abstract  bool
	Final     bool
	Private   bool // 私有类，仅在声明它的源单元中可见
	Exception bool // 是否为异常类（Throwable 的子类）
	Unchecked bool // 非受检异常
	Builtin   bool

	Forward  bool // 仅由 forward 声明，尚未给出实现
	Complete bool // 声明已结束
	Used     bool

	// 成员
	constants  map[string]*ClassConstant
	properties map[string]*ClassProperty
	methods    map[string]*ClassMethod // 键为折叠后的名称
	constOrder []string
	propOrder  []string
	methOrder  []string

	// 泛型
	Params   []*ClassType // 模板的形式参数
	Template *ClassType   // 实例所属的模板
	Actuals  []*ClassType // 实例的实参
	Real     bool         // 非模板，且所有实参都已是实际类型

	// 形式参数与通配符
	IsParam    bool
	IsWildcard bool
	Owner      *ClassType   // 声明该形式参数的模板
	Bounds     []*ClassType // 约束：第一个可以是类，其余必须是接口
	LowerBound bool         // ? parent B

	root       bool
	defaultAct *ClassType   // 缓存的默认实例
	instances  []*ClassType // 由此模板创建的全部实例
}

// NewClass 创建普通类或接口
func NewClass(name string, pos token.Position) *ClassType {
	return &ClassType{
		Name:       name,
		Pos:        pos,
		Real:       true,
		constants:  make(map[string]*ClassConstant),
		properties: make(map[string]*ClassProperty),
		methods:    make(map[string]*ClassMethod),
	}
}

// NewParameter 创建模板 owner 的形式类型参数
func NewParameter(name string, owner *ClassType, pos token.Position) *ClassType {
	p := NewClass(name, pos)
	p.IsParam = true
	p.Owner = owner
	p.Real = false
	p.Complete = true
	return p
}

// SetBounds 设置形式参数的约束并据此合成父类与接口
func (c *ClassType) SetBounds(bounds []*ClassType) {
	c.Bounds = bounds
	c.Extended = nil
	c.Implemented = nil
	for _, b := range bounds {
		if b.Interface {
			c.Implemented = append(c.Implemented, b)
		} else if c.Extended == nil {
			c.Extended = b
		}
	}
}

// AddParameter 为模板追加形式参数
func (c *ClassType) AddParameter(p *ClassType) {
	c.Params = append(c.Params, p)
	c.Real = false
}

func (c *ClassType) Kind() Kind { return KindClass }
func (c *ClassType) typeNode()  {}

// IsRoot 是否为根类 object
func (c *ClassType) IsRoot() bool { return c.root }

// IsTemplate 是否为泛型模板
func (c *ClassType) IsTemplate() bool { return len(c.Params) > 0 && c.Template == nil }

// Generic 返回实例或模板对应的模板
func (c *ClassType) Generic() *ClassType {
	if c.Template != nil {
		return c.Template
	}
	if len(c.Params) > 0 {
		return c
	}
	return nil
}

// String 返回类名；实例附带实参列表，通配符打印为 ? / ? extends B / ? parent B
func (c *ClassType) String() string {
	switch {
	case c.IsWildcard:
		if len(c.Bounds) == 0 {
			return "?"
		}
		if c.LowerBound {
			return "? parent " + c.Bounds[0].String()
		}
		return "? extends " + c.Bounds[0].String()
	case c.Template != nil:
		args := make([]string, len(c.Actuals))
		for i, a := range c.Actuals {
			args[i] = a.String()
		}
		return c.Template.Name + "<" + strings.Join(args, ", ") + ">"
	}
	return c.Name
}

// Equals 类按标识比较；实例由缓存保证唯一
func (c *ClassType) Equals(other Type) bool {
	return Type(c) == other
}

// IsSubclassOf 子类关系：自反，根类接受一切，final 类只接受自身
func (c *ClassType) IsSubclassOf(other *ClassType) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}
	if other.root {
		return true
	}
	if c.root || (other.Final && !c.IsParam && !c.IsWildcard) {
		return false
	}
	if c.Extended != nil && c.Extended.IsSubclassOf(other) {
		return true
	}
	for _, i := range c.Implemented {
		if i.IsSubclassOf(other) {
			return true
		}
	}
	return false
}

// AssignableTo 子类关系，或同一模板的实例被通配符捕获
func (c *ClassType) AssignableTo(lhs Type) bool {
	if acceptsAnything(lhs) {
		return true
	}
	l, ok := lhs.(*ClassType)
	if !ok {
		return false
	}
	if c.IsSubclassOf(l) {
		return true
	}
	if l.Template == nil {
		return false
	}
	anc := c.AncestorOf(l.Template)
	if anc == nil {
		return false
	}
	return captures(l.Actuals, anc.typeArgs())
}

// CanCastTo 类型参数永远不是合法的转换目标；相关的类，或接口与非 final 类之间可以转换
func (c *ClassType) CanCastTo(target Type) bool {
	if target == Mixed {
		return true
	}
	t, ok := target.(*ClassType)
	if !ok {
		return false
	}
	if t.IsParam || t.IsWildcard {
		return false
	}
	if c.AssignableTo(t) || t.IsSubclassOf(c) {
		return true
	}
	if c.Interface && !t.Final {
		return true
	}
	return t.Interface && !c.Final
}

// typeArgs 实例返回实参，模板返回其形式参数
func (c *ClassType) typeArgs() []*ClassType {
	if c.Template != nil {
		return c.Actuals
	}
	return c.Params
}

// AncestorOf 在继承层次中查找模板 tmpl 自身或它的某个实例
func (c *ClassType) AncestorOf(tmpl *ClassType) *ClassType {
	if c == tmpl || (c.Template != nil && c.Template == tmpl) {
		return c
	}
	if c.Extended != nil {
		if a := c.Extended.AncestorOf(tmpl); a != nil {
			return a
		}
	}
	for _, i := range c.Implemented {
		if a := i.AncestorOf(tmpl); a != nil {
			return a
		}
	}
	return nil
}

// captures 判断实参是否逐一被形参（可能是通配符）捕获
func captures(formal, actual []*ClassType) bool {
	if len(formal) != len(actual) {
		return false
	}
	for i, f := range formal {
		if !captured(f, actual[i]) {
			return false
		}
	}
	return true
}

func captured(f, a *ClassType) bool {
	if f == a {
		return true
	}
	if !f.IsWildcard {
		return false
	}
	if len(f.Bounds) == 0 {
		return true
	}
	bound := f.Bounds[0]
	if f.LowerBound {
		if a.IsWildcard {
			return a.LowerBound && len(a.Bounds) > 0 && bound.IsSubclassOf(a.Bounds[0])
		}
		return bound.IsSubclassOf(a)
	}
	if a.IsWildcard && (a.LowerBound || len(a.Bounds) == 0) {
		return false
	}
	return a.IsSubclassOf(bound)
}

// IsUnchecked 异常类的受检属性沿继承链传递
func (c *ClassType) IsUnchecked() bool {
	for k := c; k != nil; k = k.Extended {
		if k.Unchecked {
			return true
		}
	}
	return false
}

// IsChecked 是否为受检异常
func (c *ClassType) IsChecked() bool {
	return c.Exception && !c.IsUnchecked()
}

// ============================================================================
// 成员表
// ============================================================================

// AddConstant 添加常量，返回同名的已有常量（此时不添加）
func (c *ClassType) AddConstant(k *ClassConstant) *ClassConstant {
	if old, ok := c.constants[k.Name]; ok {
		return old
	}
	k.Class = c
	c.constants[k.Name] = k
	c.constOrder = append(c.constOrder, k.Name)
	return nil
}

// AddProperty 添加属性，返回同名的已有属性（此时不添加）
func (c *ClassType) AddProperty(p *ClassProperty) *ClassProperty {
	if old, ok := c.properties[p.Name]; ok {
		return old
	}
	p.Class = c
	c.properties[p.Name] = p
	c.propOrder = append(c.propOrder, p.Name)
	return nil
}

// AddMethod 添加方法（名称大小写不敏感），返回同名的已有方法（此时不添加）
func (c *ClassType) AddMethod(m *ClassMethod) *ClassMethod {
	key := Fold(m.Name)
	if old, ok := c.methods[key]; ok {
		return old
	}
	m.Class = c
	c.methods[key] = m
	c.methOrder = append(c.methOrder, key)
	return nil
}

// ReplaceMethod 用实现替换前向声明的方法
func (c *ClassType) ReplaceMethod(m *ClassMethod) {
	key := Fold(m.Name)
	if _, ok := c.methods[key]; !ok {
		c.methOrder = append(c.methOrder, key)
	}
	m.Class = c
	c.methods[key] = m
}

// Constant 查找本类声明的常量
func (c *ClassType) Constant(name string) *ClassConstant { return c.constants[name] }

// Property 查找本类声明的属性
func (c *ClassType) Property(name string) *ClassProperty { return c.properties[name] }

// Method 查找本类声明的方法
func (c *ClassType) Method(name string) *ClassMethod { return c.methods[Fold(name)] }

// Constants 按声明顺序返回本类常量
func (c *ClassType) Constants() []*ClassConstant {
	out := make([]*ClassConstant, 0, len(c.constOrder))
	for _, n := range c.constOrder {
		out = append(out, c.constants[n])
	}
	return out
}

// Properties 按声明顺序返回本类属性
func (c *ClassType) Properties() []*ClassProperty {
	out := make([]*ClassProperty, 0, len(c.propOrder))
	for _, n := range c.propOrder {
		out = append(out, c.properties[n])
	}
	return out
}

// Methods 按声明顺序返回本类方法
func (c *ClassType) Methods() []*ClassMethod {
	out := make([]*ClassMethod, 0, len(c.methOrder))
	for _, n := range c.methOrder {
		out = append(out, c.methods[n])
	}
	return out
}

// SearchConstant 在本类、父类及接口中查找常量
func (c *ClassType) SearchConstant(name string) *ClassConstant {
	if k := c.constants[name]; k != nil {
		return k
	}
	if c.Extended != nil {
		if k := c.Extended.SearchConstant(name); k != nil {
			return k
		}
	}
	for _, i := range c.Implemented {
		if k := i.SearchConstant(name); k != nil {
			return k
		}
	}
	return nil
}

// SearchProperty 在本类及父类中查找属性
func (c *ClassType) SearchProperty(name string) *ClassProperty {
	for k := c; k != nil; k = k.Extended {
		if p := k.properties[name]; p != nil {
			return p
		}
	}
	return nil
}

// SearchMethod 在本类、父类及接口中查找方法；类中的实现优先于接口中的声明
func (c *ClassType) SearchMethod(name string) *ClassMethod {
	key := Fold(name)
	for k := c; k != nil; k = k.Extended {
		if m := k.methods[key]; m != nil {
			return m
		}
	}
	for k := c; k != nil; k = k.Extended {
		for _, i := range k.Implemented {
			if m := i.SearchMethod(name); m != nil {
				return m
			}
		}
	}
	return nil
}

// UnimplementedMethods 返回继承而来、本类（及父类）没有实现的抽象方法
func (c *ClassType) UnimplementedMethods() []*ClassMethod {
	var out []*ClassMethod
	seen := make(map[string]bool)
	var visit func(k *ClassType)
	visit = func(k *ClassType) {
		for _, m := range k.Methods() {
			key := Fold(m.Name)
			if seen[key] || !(m.Abstract || k.Interface) {
				continue
			}
			seen[key] = true
			if impl := c.concreteMethod(key); impl == nil {
				out = append(out, m)
			}
		}
		if k.Extended != nil {
			visit(k.Extended)
		}
		for _, i := range k.Implemented {
			visit(i)
		}
	}
	visit(c)
	return out
}

func (c *ClassType) concreteMethod(key string) *ClassMethod {
	for k := c; k != nil; k = k.Extended {
		if m := k.methods[key]; m != nil && !m.Abstract && !k.Interface {
			return m
		}
	}
	return nil
}

// MarkUsed 标记为已使用；实例标记其模板
func (c *ClassType) MarkUsed() {
	if c.Template != nil {
		c = c.Template
	}
	c.Used = true
}
