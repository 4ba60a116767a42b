package parser

import (
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/docblock"
	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

// ============================================================================
// 类成员
// ============================================================================

// memberModifiers 成员声明前的修饰符
type memberModifiers struct {
	vis      types.Visibility
	hasVis   bool
	static   bool
	abstract bool
	final    bool
	forward  bool
	pos      token.Position
}

// members 解析类体中的成员直到 }；遇到 suspend 时返回，类保持打开
func (p *Parser) members() {
	for {
		if p.match(token.RBRACE) {
			return
		}
		if p.isAtEnd() {
			p.fatalExpected("'}'")
		}
		p.member()
		if p.suspended {
			return
		}
	}
}

func (p *Parser) member() {
	t := p.peek()
	switch {
	case t.Type == token.TEXT || t.Type == token.CLOSE_TAG:
		p.fatal(diag.E0004, t.Pos, p.cls.c.Name)
	case t.Is("pragma") && p.peekNext().Type == token.STRING:
		p.pragmaStmt()
		return
	case t.Type == token.SEMICOLON:
		p.advance()
		return
	case t.Type == token.USE:
		p.skimStatement()
		return
	}

	doc := p.docAt(p.current)
	mods := p.modifiers()
	switch {
	case p.check(token.FUNCTION):
		p.method(mods, doc)
	case p.cls.forward:
		p.fatalUnexpected()
	case p.check(token.CONST):
		p.constantMember(mods, doc)
	default:
		p.property(mods, doc)
	}
}

func (p *Parser) modifiers() memberModifiers {
	m := memberModifiers{pos: p.peek().Pos}
	for {
		t := p.peek()
		var flag *bool
		switch {
		case t.Type == token.PUBLIC, t.Type == token.PROTECTED, t.Type == token.PRIVATE, t.Type == token.VAR:
			if m.hasVis {
				p.report(diag.E0312, t.Pos, lower(t.Literal))
			}
			m.hasVis = true
			switch t.Type {
			case token.PROTECTED:
				m.vis = types.Protected
			case token.PRIVATE:
				m.vis = types.Private
			default:
				m.vis = types.Public
			}
			p.advance()
			continue
		case t.Type == token.STATIC:
			flag = &m.static
		case t.Type == token.ABSTRACT:
			flag = &m.abstract
		case t.Type == token.FINAL:
			flag = &m.final
		case t.Is("forward"):
			flag = &m.forward
		}
		if flag == nil {
			return m
		}
		if *flag {
			p.report(diag.E0312, t.Pos, lower(t.Literal))
		}
		*flag = true
		p.advance()
	}
}

// visibility 成员的可见性：修饰符、文档注释中的 @private，否则按 public 并提示
func (p *Parser) visibility(m memberModifiers, doc *docblock.DocBlock, what string, pos token.Position) types.Visibility {
	switch {
	case m.hasVis:
		return m.vis
	case docPrivate(doc):
		return types.Private
	}
	if !p.cls.c.Interface && !p.cls.forward {
		p.report(diag.N0300, pos, what)
	}
	return types.Public
}

// ============================================================================
// 方法
// ============================================================================

func (p *Parser) method(m memberModifiers, doc *docblock.DocBlock) {
	st := p.cls
	c := st.c
	p.advance()
	h := p.signature(doc)

	meth := &types.ClassMethod{
		Name:     h.name,
		Class:    c,
		Static:   m.static,
		Abstract: m.abstract || c.Interface,
		Final:    m.final,
		Forward:  m.forward || st.forward,
		Sig:      h.sig,
		Pos:      h.pos,
	}
	full := meth.FullName()
	meth.Vis = p.visibility(m, doc, full+"()", h.pos)

	if c.Interface {
		if meth.Vis != types.Public {
			p.report(diag.E0212, h.pos, full)
		}
		if m.abstract {
			p.report(diag.E0214, h.pos, "abstract", full)
		}
		if m.final {
			p.report(diag.E0214, h.pos, "final", full)
		}
	} else if m.abstract {
		if m.final {
			p.report(diag.E0311, h.pos, full)
		}
		if !c.Abstract {
			p.report(diag.E0307, h.pos, full, c.Name)
		}
		if meth.Vis == types.Private {
			p.report(diag.E0310, h.pos, full)
		}
	}

	if p.check(token.LBRACE) {
		switch {
		case c.Interface:
			p.report(diag.E0213, h.pos, full)
		case meth.Abstract:
			p.report(diag.E0308, h.pos, full)
		case meth.Forward:
			p.fatalExpected("';'")
		}
		p.body(h)
	} else {
		p.endStatement()
		if !meth.Abstract && !meth.Forward {
			p.report(diag.E0309, h.pos, full)
		}
	}
	p.g.NoteSignature(h.sig, h.pos)
	p.addMethod(meth)
}

func (p *Parser) addMethod(m *types.ClassMethod) {
	c := p.cls.c
	old := c.Method(m.Name)
	switch {
	case old == nil:
		c.AddMethod(m)
	case old.Forward && !m.Forward:
		p.checkMethodPrototype(m, old)
		m.Used = old.Used
		c.ReplaceMethod(m)
	default:
		p.report(diag.E0300, m.Pos, m.FullName()+"()", where(old.Pos))
		return
	}
	p.checkOverride(m)
}

// checkMethodPrototype 方法的实现必须与其前向声明一致
func (p *Parser) checkMethodPrototype(impl, proto *types.ClassMethod) {
	reason := impl.Sig.CallCompatibleWithReason(proto.Sig)
	if reason == "" && (impl.Static != proto.Static || impl.Vis != proto.Vis || impl.Final != proto.Final) {
		reason = i18n.T(i18n.ReasonProtoModifiers)
	}
	if reason != "" {
		p.report(diag.E0207, impl.Pos, impl.Class.Name, proto.Pos, i18n.T(i18n.ReasonProtoMethod, impl.Name, reason))
	}
}

// checkOverride 检查方法对父类方法与接口方法的重写或实现
//
// 私有方法不被继承；构造方法只在基方法为抽象或接口方法时检查签名。
func (p *Parser) checkOverride(m *types.ClassMethod) {
	c := p.cls.c
	var bases []*types.ClassMethod
	if c.Extended != nil {
		if b := c.Extended.SearchMethod(m.Name); b != nil {
			bases = append(bases, b)
		}
	}
	for _, i := range c.Implemented {
		if b := i.SearchMethod(m.Name); b != nil && !containsMethod(bases, b) {
			bases = append(bases, b)
		}
	}

	full := m.FullName()
	for _, b := range bases {
		if b.Vis == types.Private {
			continue
		}
		base := b.FullName()
		if b.Final {
			p.report(diag.E0301, m.Pos, full, base)
		}
		if m.Vis > b.Vis {
			p.report(diag.E0302, m.Pos, full, base, b.Vis, m.Vis)
		}
		if m.Static != b.Static {
			p.report(diag.E0303, m.Pos, full, base)
		}
		if m.IsConstructor() && !b.Abstract && !b.Class.Interface {
			continue
		}
		if reason := m.Sig.CallCompatibleWithReason(b.Sig); reason != "" {
			p.report(diag.E0304, m.Pos, full, base, reason)
		}
	}
}

func containsMethod(list []*types.ClassMethod, m *types.ClassMethod) bool {
	for _, x := range list {
		if x == m {
			return true
		}
	}
	return false
}

// ============================================================================
// 属性
// ============================================================================

// property 解析属性声明：[Type] $a [= expr], $b ... ;
func (p *Parser) property(m memberModifiers, doc *docblock.DocBlock) {
	c := p.cls.c
	for _, bad := range []struct {
		set  bool
		name string
	}{{m.abstract, "abstract"}, {m.final, "final"}, {m.forward, "forward"}} {
		if bad.set {
			p.report(diag.E0313, m.pos, bad.name)
		}
	}

	var inline types.Type
	if p.isTypeStart() {
		inline = p.parseType()
	}
	for n := 0; ; n++ {
		nt := p.expect(token.VARIABLE, "property name")
		prop := &types.ClassProperty{Name: nt.Literal[1:], Class: c, Static: m.static, Pos: nt.Pos}
		full := prop.FullName()
		prop.Vis = p.visibility(m, doc, full, nt.Pos)

		var init types.Type
		if p.match(token.ASSIGN) {
			init, _ = p.staticExpr()
		}
		t := inline
		if doc != nil && n == 0 {
			t = p.withDoc(full, inline, doc.Var)
		}
		if t == nil {
			if init != nil && init != types.Null && !types.IsUnknown(init) {
				t = init
			} else {
				p.report(diag.E0111, nt.Pos, full)
				t = types.Unknown
			}
		}
		if t == types.Void {
			p.report(diag.E0112, nt.Pos, full)
			t = types.Unknown
		}
		if init != nil && !types.IsUnknown(init) && !init.AssignableTo(t) {
			p.report(diag.E0110, nt.Pos, full, init, t)
		}
		prop.Type = t

		switch {
		case c.Interface:
			p.report(diag.E0211, nt.Pos, c.Name, "$"+prop.Name)
		default:
			if old := c.AddProperty(prop); old != nil {
				p.report(diag.E0300, nt.Pos, full, where(old.Pos))
			} else {
				p.checkPropertyOverride(prop)
			}
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.endStatement()
}

// checkPropertyOverride 重新声明继承的属性时类型必须相同，可见性不能缩小
func (p *Parser) checkPropertyOverride(prop *types.ClassProperty) {
	c := p.cls.c
	if c.Extended == nil {
		return
	}
	base := c.Extended.SearchProperty(prop.Name)
	if base == nil || base.Vis == types.Private {
		return
	}
	full := prop.FullName()
	if !prop.Type.Equals(base.Type) {
		p.report(diag.E0305, prop.Pos, c.Name, base.FullName(), prop.Type, base.Type)
	}
	if prop.Vis > base.Vis {
		p.report(diag.E0302, prop.Pos, full, base.FullName(), base.Vis, prop.Vis)
	}
	if prop.Static != base.Static {
		p.report(diag.E0303, prop.Pos, full, base.FullName())
	}
}

// ============================================================================
// 类常量
// ============================================================================

// constantMember 解析 [vis] const [Type] NAME = expr, ... ;
func (p *Parser) constantMember(m memberModifiers, doc *docblock.DocBlock) {
	c := p.cls.c
	p.advance()
	for _, bad := range []struct {
		set  bool
		name string
	}{{m.static, "static"}, {m.abstract, "abstract"}, {m.forward, "forward"}} {
		if bad.set {
			p.report(diag.E0313, m.pos, bad.name)
		}
	}

	var declared types.Type
	if p.isTypeStart() && isNameToken(p.peekNext()) && p.peekAt(2).Type == token.ASSIGN {
		declared = p.parseType()
	}
	for {
		nt := p.expectName("constant name")
		p.expect(token.ASSIGN, "'='")
		t, v := p.staticExpr()
		k := &types.ClassConstant{Name: nt.Literal, Class: c, Type: t, Value: v, Pos: nt.Pos}
		full := k.FullName()
		if declared != nil {
			if !types.IsUnknown(t) && !t.AssignableTo(declared) {
				p.report(diag.E0110, nt.Pos, full, t, declared)
			}
			k.Type = declared
		}
		k.Vis = p.visibility(m, doc, full, nt.Pos)
		if c.Interface && k.Vis != types.Public {
			p.report(diag.E0212, nt.Pos, full)
		}

		if old := c.AddConstant(k); old != nil {
			p.report(diag.E0300, nt.Pos, full, where(old.Pos))
		} else {
			for _, i := range c.Implemented {
				if ik := i.SearchConstant(k.Name); ik != nil {
					p.report(diag.E0306, nt.Pos, full, ik.FullName())
					break
				}
			}
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.endStatement()
}

// ============================================================================
// 成员引用
// ============================================================================

// memberKind 被引用的成员种类
type memberKind int

const (
	refMethod memberKind = iota
	refProperty
	refConstant
)

// memberRef 对类成员的引用
type memberRef struct {
	class *types.ClassType
	kind  memberKind
	name  string
	pos   token.Position
}

// referMember 记录对类成员的引用；对当前类的引用延迟到类结束时检查
func (p *Parser) referMember(r memberRef) {
	if p.cls != nil && r.class == p.cls.c {
		p.cls.refs = append(p.cls.refs, r)
		return
	}
	p.checkMember(r)
}

func (p *Parser) resolveMemberRefs(st *classState) {
	for _, r := range st.refs {
		p.checkMember(r)
	}
	st.refs = nil
}

// checkMember 查找被引用的成员并标记为已使用；类没有对应的魔术方法时报告未定义
func (p *Parser) checkMember(r memberRef) {
	c := r.class
	if incomplete(c) && (p.cls == nil || c != p.cls.c) {
		return
	}
	switch r.kind {
	case refMethod:
		if m := c.SearchMethod(r.name); m != nil {
			m.MarkUsed()
			return
		}
		if c.SearchMethod("__call") != nil || c.SearchMethod("__callStatic") != nil {
			return
		}
		p.report(diag.E0314, r.pos, c.String()+"::"+r.name+"()")
	case refProperty:
		if prop := c.SearchProperty(r.name); prop != nil {
			prop.MarkUsed()
			return
		}
		if c.SearchMethod("__get") != nil || c.SearchMethod("__set") != nil {
			return
		}
		p.report(diag.E0314, r.pos, c.String()+"::$"+r.name)
	case refConstant:
		if k := c.SearchConstant(r.name); k != nil {
			k.Used = true
			return
		}
		p.report(diag.E0314, r.pos, c.String()+"::"+r.name)
	}
}
