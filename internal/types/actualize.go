package types

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/token"
	"go.uber.org/zap"
)

var noPos token.Position

// ============================================================================
// 泛型实例化
// ============================================================================
//
// Actualize 以替换表中的实参代换形式参数。实例按规范名（模板名加实参的
// 规范名，形式参数带上所属模板，如 Box<T@Foo>）缓存，同一组实参只构造一次。
// 新实例在递归处理父类、接口与成员之前先登记到缓存中，引用自身的泛型
// 因此可以终止。静态成员与常量原样共享。
//
// 模板声明尚未结束时创建的实例，在模板结束后由 CompleteTemplate 补齐。
//
// ============================================================================

// Replacements 形式参数到实参的映射
type Replacements map[*ClassType]*ClassType

// Actualize 实例化 c；c 已是实际类型或没有任何参数被替换时返回 c 本身
func (u *Universe) Actualize(c *ClassType, repl Replacements) *ClassType {
	if c == nil || c.Real || len(repl) == 0 {
		return c
	}
	if c.IsParam {
		if r, ok := repl[c]; ok {
			return r
		}
		return c
	}
	if c.IsWildcard {
		if len(c.Bounds) == 0 {
			return c
		}
		b := u.Actualize(c.Bounds[0], repl)
		if b == c.Bounds[0] {
			return c
		}
		return u.Wildcard(b, c.LowerBound)
	}

	tmpl := c.Generic()
	if tmpl == nil {
		return c
	}
	args := c.typeArgs()
	actuals := make([]*ClassType, len(args))
	changed := false
	for i, a := range args {
		actuals[i] = u.Actualize(a, repl)
		if actuals[i] != a {
			changed = true
		}
	}
	if !changed {
		return c
	}
	return u.Instance(tmpl, actuals)
}

// Instance 返回模板 tmpl 以 actuals 为实参的缓存实例
func (u *Universe) Instance(tmpl *ClassType, actuals []*ClassType) *ClassType {
	key := mangleInstance(tmpl, actuals)
	if inst, ok := u.cache[key]; ok {
		return inst
	}
	u.logger.Debug("actualize", zap.String("instance", key))

	inst := &ClassType{
		Name:      tmpl.Name,
		Pos:       tmpl.Pos,
		Template:  tmpl,
		Actuals:   actuals,
		Interface: tmpl.Interface,
		Abstract:  tmpl.Abstract,
		Final:     tmpl.Final,
		Private:   tmpl.Private,
		Exception: tmpl.Exception,
		Unchecked: tmpl.Unchecked,
		Builtin:   tmpl.Builtin,
		Complete:  true,
		Real:      true,
	}
	for _, a := range actuals {
		if !a.Real {
			inst.Real = false
		}
	}
	u.cache[key] = inst
	tmpl.instances = append(tmpl.instances, inst)
	u.fill(inst)
	return inst
}

// fill 按模板当前的结构填充实例
func (u *Universe) fill(inst *ClassType) {
	tmpl := inst.Template
	repl := make(Replacements, len(tmpl.Params))
	for i, p := range tmpl.Params {
		if i < len(inst.Actuals) {
			repl[p] = inst.Actuals[i]
		}
	}

	inst.Extended = u.Actualize(tmpl.Extended, repl)
	inst.Implemented = make([]*ClassType, len(tmpl.Implemented))
	for i, iface := range tmpl.Implemented {
		inst.Implemented[i] = u.Actualize(iface, repl)
	}

	inst.constants = tmpl.constants
	inst.constOrder = tmpl.constOrder

	inst.properties = make(map[string]*ClassProperty, len(tmpl.properties))
	inst.propOrder = append([]string(nil), tmpl.propOrder...)
	for _, name := range tmpl.propOrder {
		p := tmpl.properties[name]
		if p.Static {
			inst.properties[name] = p
			continue
		}
		np := *p
		np.Class = inst
		np.Type = u.Subst(p.Type, repl)
		np.Origin = p
		inst.properties[name] = &np
	}

	inst.methods = make(map[string]*ClassMethod, len(tmpl.methods))
	inst.methOrder = append([]string(nil), tmpl.methOrder...)
	for _, key := range tmpl.methOrder {
		m := tmpl.methods[key]
		if m.Static {
			inst.methods[key] = m
			continue
		}
		nm := *m
		nm.Class = inst
		nm.Sig = u.SubstSignature(m.Sig, repl)
		nm.Origin = m
		inst.methods[key] = &nm
	}
}

// CompleteTemplate 模板声明结束时补齐此前创建的实例
func (u *Universe) CompleteTemplate(tmpl *ClassType) {
	for _, inst := range tmpl.instances {
		u.fill(inst)
	}
}

// DefaultActualization 默认实例：每个形式参数替换为 ? 或 ? extends 第一个约束
func (u *Universe) DefaultActualization(tmpl *ClassType) *ClassType {
	if !tmpl.IsTemplate() {
		return tmpl
	}
	if tmpl.defaultAct != nil {
		return tmpl.defaultAct
	}
	args := make([]*ClassType, len(tmpl.Params))
	for i, p := range tmpl.Params {
		var bound *ClassType
		if len(p.Bounds) > 0 {
			bound = p.Bounds[0]
		}
		args[i] = u.Wildcard(bound, false)
	}
	tmpl.defaultAct = u.Instance(tmpl, args)
	return tmpl.defaultAct
}

// BoundViolation 检查实参是否满足形式参数的约束，返回第一个不满足的参数与约束
func (u *Universe) BoundViolation(tmpl *ClassType, actuals []*ClassType) (param, bound *ClassType) {
	repl := make(Replacements, len(tmpl.Params))
	for i, p := range tmpl.Params {
		if i < len(actuals) {
			repl[p] = actuals[i]
		}
	}
	for i, p := range tmpl.Params {
		if i >= len(actuals) {
			break
		}
		a := actuals[i]
		if a.IsWildcard && (len(a.Bounds) == 0 || a.LowerBound) {
			continue
		}
		for _, b := range p.Bounds {
			ab := u.Actualize(b, repl)
			if !a.AssignableTo(ab) {
				return p, ab
			}
		}
	}
	return nil, nil
}

// Subst 代换类型中出现的形式参数
func (u *Universe) Subst(t Type, repl Replacements) Type {
	switch x := t.(type) {
	case *ClassType:
		return u.Actualize(x, repl)
	case *ArrayType:
		elem := u.Subst(x.elem, repl)
		if elem == x.elem {
			return x
		}
		return u.Array(x.index, elem)
	}
	return t
}

// SubstSignature 代换签名中出现的形式参数；没有变化时返回原签名
func (u *Universe) SubstSignature(sig *Signature, repl Replacements) *Signature {
	if sig == nil {
		return nil
	}
	ns := *sig
	changed := false
	ns.Return = u.Subst(sig.Return, repl)
	changed = ns.Return != sig.Return

	ns.Args = make([]*FormalArgument, len(sig.Args))
	for i, a := range sig.Args {
		ns.Args[i] = u.substArg(a, repl)
		changed = changed || ns.Args[i] != a
	}
	if sig.Variadic != nil {
		ns.Variadic = u.substArg(sig.Variadic, repl)
		changed = changed || ns.Variadic != sig.Variadic
	}
	if !changed {
		return sig
	}
	return &ns
}

func (u *Universe) substArg(a *FormalArgument, repl Replacements) *FormalArgument {
	t := u.Subst(a.Type, repl)
	if t == a.Type {
		return a
	}
	na := *a
	na.Type = t
	return &na
}

// ============================================================================
// 规范名
// ============================================================================

func mangle(c *ClassType) string {
	switch {
	case c.IsParam:
		if c.Owner != nil {
			return c.Name + "@" + c.Owner.Name
		}
		return c.Name
	case c.IsWildcard:
		if len(c.Bounds) == 0 {
			return "?"
		}
		if c.LowerBound {
			return "? parent " + mangle(c.Bounds[0])
		}
		return "? extends " + mangle(c.Bounds[0])
	case c.Template != nil:
		return mangleInstance(c.Template, c.Actuals)
	}
	return c.Name
}

func mangleInstance(tmpl *ClassType, actuals []*ClassType) string {
	var sb strings.Builder
	sb.WriteString(tmpl.Name)
	sb.WriteByte('<')
	for i, a := range actuals {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(mangle(a))
	}
	sb.WriteByte('>')
	return sb.String()
}

// typeKey 类型的规范键，用于数组驻留
func typeKey(t Type) string {
	switch x := t.(type) {
	case *ClassType:
		return "C:" + mangle(x)
	case *ArrayType:
		return "A(" + typeKey(x.index) + "|" + typeKey(x.elem) + ")"
	}
	return t.String()
}
