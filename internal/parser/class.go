package parser

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/docblock"
	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
	"go.uber.org/zap"
)

// ============================================================================
// 类与接口声明
// ============================================================================
//
//	[forward] [private] [abstract|final] [unchecked] class Name [<T ...>]
//	    [extends Parent] [implements I, J] { members } | ;
//	[forward] [private] interface Name [<T ...>] [extends I, J] { members } | ;
//
// 类在解析 extends 之前登记，成员可以引用类自身。前向声明的类在真正的
// 声明中被复用（同一个对象），真正的声明必须与原型一致。
//
// ============================================================================

// classState 正在解析的类
type classState struct {
	c       *types.ClassType
	proto   *protoInfo       // 正在完成的前向声明
	forward bool             // 本声明只是原型
	real    *types.ClassType // 实现已存在时，原型与之比较
	refs    []memberRef      // 延迟到类结束时检查的 self/$this 成员引用
}

// protoInfo 前向声明的原型快照
type protoInfo struct {
	pos         token.Position
	iface       bool
	final       bool
	abstract    bool
	exception   bool
	unchecked   bool
	extended    *types.ClassType
	implemented []*types.ClassType
	params      []*types.ClassType
}

func snapshot(c *types.ClassType) *protoInfo {
	return &protoInfo{
		pos:         c.Pos,
		iface:       c.Interface,
		final:       c.Final,
		abstract:    c.Abstract && !c.Interface,
		exception:   c.Exception,
		unchecked:   c.Unchecked,
		extended:    c.Extended,
		implemented: c.Implemented,
		params:      c.Params,
	}
}

// classModifiers 类声明前的修饰符
type classModifiers struct {
	abstract, final, private, unchecked bool
}

// atClassDecl 从当前位置之后第 from 个 token 起（跳过修饰符后）是否为类或接口声明
func (p *Parser) atClassDecl(from int) bool {
	for i := from; ; i++ {
		t := p.peekAt(i)
		switch {
		case t.Type == token.CLASS || t.Type == token.INTERFACE:
			return true
		case t.Type == token.ABSTRACT || t.Type == token.FINAL || t.Type == token.PRIVATE || t.Is("unchecked"):
			continue
		}
		return false
	}
}

// classDecl 解析类或接口声明
func (p *Parser) classDecl(forward bool) {
	doc := p.docAt(p.current)
	if forward {
		p.advance()
	}
	var mods classModifiers
	for {
		t := p.peek()
		var flag *bool
		switch {
		case t.Type == token.ABSTRACT:
			flag = &mods.abstract
		case t.Type == token.FINAL:
			flag = &mods.final
		case t.Type == token.PRIVATE:
			flag = &mods.private
		case t.Is("unchecked"):
			flag = &mods.unchecked
		}
		if flag == nil {
			break
		}
		if *flag {
			p.report(diag.E0312, t.Pos, lower(t.Literal))
		}
		*flag = true
		p.advance()
	}
	if docPrivate(doc) {
		mods.private = true
	}

	if p.match(token.INTERFACE) {
		p.interfaceDecl(forward, mods)
		return
	}
	p.expect(token.CLASS, "'class'")
	nt := p.expect(token.IDENT, "class name")
	if mods.abstract && mods.final {
		p.report(diag.E0206, nt.Pos, p.qualify(nt.Literal))
	}

	c := p.openClass(p.qualify(nt.Literal), nt.Pos, forward)
	c.Abstract = mods.abstract
	c.Final = mods.final
	c.Private = mods.private
	c.Unchecked = mods.unchecked

	if p.check(token.LT) {
		p.typeParameters()
	}
	if p.match(token.EXTENDS) {
		p.extendsClass()
	}
	if p.match(token.IMPLEMENTS) {
		for {
			p.implementsInterface()
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	c.Exception = c.IsSubclassOf(p.u.Throwable)
	if c.Unchecked && !c.Exception {
		p.report(diag.E0215, nt.Pos, c.Name)
	}
	p.classBody()
}

// interfaceDecl 解析 interface 关键字之后的接口声明
func (p *Parser) interfaceDecl(forward bool, mods classModifiers) {
	nt := p.expect(token.IDENT, "interface name")
	for _, m := range []struct {
		set  bool
		name string
	}{{mods.abstract, "abstract"}, {mods.final, "final"}, {mods.unchecked, "unchecked"}} {
		if m.set {
			p.report(diag.E0313, nt.Pos, m.name)
		}
	}

	c := p.openClass(p.qualify(nt.Literal), nt.Pos, forward)
	c.Interface = true
	c.Abstract = true
	c.Private = mods.private

	if p.check(token.LT) {
		p.typeParameters()
	}
	if p.match(token.EXTENDS) {
		for {
			p.implementsInterface()
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	c.Exception = c.IsSubclassOf(p.u.Throwable)
	p.classBody()
}

// classBody 检查原型后解析成员；原型可以以 ; 结束
func (p *Parser) classBody() {
	st := p.cls
	if st.proto != nil {
		p.checkPrototype(st.proto, st.c, st.c.Pos)
	}
	if st.forward && p.match(token.SEMICOLON) {
		p.closeClass()
		return
	}
	p.expect(token.LBRACE, "'{'")
	p.members()
	if p.suspended {
		return
	}
	p.closeClass()
}

// openClass 登记类并建立 classState
//
// 同名的前向声明被复用；原型在实现之后出现时，原型解析到一个影子对象，
// 结束时与实现比较。
func (p *Parser) openClass(name string, pos token.Position, forward bool) *types.ClassType {
	st := &classState{forward: forward}
	p.cls = st
	old := p.g.Class(name)
	switch {
	case old == nil:
		st.c = types.NewClass(name, pos)
		st.c.Forward = forward
		p.g.DeclareClass(st.c, p.unit)

	case old.Forward && !forward && !old.Builtin:
		st.proto = snapshot(old)
		st.c = old
		old.Forward = false
		old.Pos = pos
		old.Extended = nil
		old.Implemented = nil
		old.Params = nil
		old.Interface, old.Abstract, old.Final = false, false, false
		old.Exception, old.Unchecked = false, false
		p.g.SetClassUnit(old, p.unit)

	case forward && !old.Forward && !old.Builtin && !old.Complete:
		// 实现正在解析（例如已挂起），原型无从比较
		st.c = types.NewClass(name, pos)
		st.c.Forward = true

	case forward && !old.Forward && !old.Builtin:
		st.real = old
		st.c = types.NewClass(name, pos)
		st.c.Forward = true

	default:
		p.report(diag.E0200, pos, name, where(old.Pos))
		st.c = types.NewClass(name, pos)
		st.c.Forward = forward
	}
	p.log.Debug("class open", zap.String("name", name), zap.Bool("forward", forward))
	return st.c
}

// extendsClass 解析 extends 之后的父类
func (p *Parser) extendsClass() {
	c := p.cls.c
	parent, text, pos, notClass := p.parseClass()
	switch {
	case notClass:
		p.report(diag.E0100, pos, text)
	case parent == nil:
	case parent == c || parent.Template == c:
		p.report(diag.E0204, pos, c.Name)
	case parent.Interface:
		p.report(diag.E0201, pos, c.Name, parent)
	case parent.IsParam:
		p.report(diag.E0100, pos, text)
	case parent.Final:
		p.report(diag.E0202, pos, c.Name, parent)
	case incomplete(parent):
		p.report(diag.E0203, pos, c.Name, parent)
	default:
		c.Extended = parent
	}
}

// implementsInterface 解析一个被实现（或被继承）的接口，维护最小接口集合
func (p *Parser) implementsInterface() {
	c := p.cls.c
	i, text, pos, notClass := p.parseClass()
	switch {
	case notClass:
		p.report(diag.E0205, pos, text)
		return
	case i == nil:
		return
	case i == c || i.Template == c:
		p.report(diag.E0204, pos, c.Name)
		return
	case !i.Interface:
		p.report(diag.E0205, pos, i)
		return
	case incomplete(i):
		p.report(diag.E0203, pos, c.Name, i)
		return
	}
	p.addInterface(c, i, pos)
}

// incomplete 类（或实例所属的模板）的声明尚未结束
func incomplete(c *types.ClassType) bool {
	if c.Template != nil {
		c = c.Template
	}
	return !c.Complete && !c.Builtin
}

func (p *Parser) addInterface(c, i *types.ClassType, pos token.Position) {
	if c.Extended != nil && c.Extended.IsSubclassOf(i) {
		p.report(diag.N0200, pos, i, c.Extended)
		return
	}
	for _, j := range c.Implemented {
		if j.IsSubclassOf(i) {
			p.report(diag.N0200, pos, i, j)
			return
		}
	}
	kept := c.Implemented[:0]
	for _, j := range c.Implemented {
		if i.IsSubclassOf(j) {
			p.report(diag.N0200, pos, j, i)
			continue
		}
		kept = append(kept, j)
	}
	c.Implemented = append(kept, i)
}

// checkPrototype 比较声明与原型的类头
func (p *Parser) checkPrototype(proto *protoInfo, c *types.ClassType, pos token.Position) {
	var reason string
	switch {
	case proto.iface != c.Interface:
		reason = i18n.T(i18n.ReasonProtoKind)
	case proto.final != c.Final:
		reason = i18n.T(i18n.ReasonProtoFinal)
	case proto.abstract != (c.Abstract && !c.Interface):
		reason = i18n.T(i18n.ReasonProtoAbstract)
	case proto.exception != c.Exception || proto.unchecked != c.Unchecked:
		reason = i18n.T(i18n.ReasonProtoException)
	case proto.extended != nil && (c.Extended == nil || !c.Extended.IsSubclassOf(proto.extended)):
		var ext interface{} = p.u.Object
		if c.Extended != nil {
			ext = c.Extended
		}
		reason = i18n.T(i18n.ReasonProtoExtends, ext, proto.extended)
	case !sameParams(proto.params, c.Params):
		reason = i18n.T(i18n.ReasonProtoParams)
	default:
		for _, i := range proto.implemented {
			if !c.IsSubclassOf(i) {
				reason = i18n.T(i18n.ReasonProtoImplements, i)
				break
			}
		}
	}
	if reason != "" {
		p.report(diag.E0207, pos, c.Name, proto.pos, reason)
	}
}

// closeClass 结束类声明：检查延迟的成员引用、未实现的方法，标记为完成
func (p *Parser) closeClass() {
	st := p.cls
	c := st.c
	p.resolveMemberRefs(st)

	switch {
	case st.real != nil:
		p.checkPrototype(snapshot(c), st.real, c.Pos)
		for _, m := range c.Methods() {
			if rm := st.real.Method(m.Name); rm != nil {
				p.checkMethodPrototype(rm, m)
			}
		}
	case st.forward:
	default:
		for _, m := range c.Methods() {
			if m.Forward {
				p.report(diag.E0209, m.Pos, m.FullName())
			}
		}
		if !c.Abstract && !c.Interface {
			if missing := c.UnimplementedMethods(); len(missing) > 0 {
				names := make([]string, len(missing))
				for i, m := range missing {
					names[i] = m.FullName()
				}
				p.report(diag.E0208, c.Pos, c.Name, strings.Join(names, ", "))
			}
		}
		if !c.Interface {
			p.checkInheritedImplementations(c)
		}
		c.Complete = true
		if c.IsTemplate() {
			p.u.CompleteTemplate(c)
		}
	}
	p.cls = nil
	p.log.Debug("class closed", zap.String("name", c.Name))
}

// checkInheritedImplementations 检查从父类继承来实现接口方法的兼容性
func (p *Parser) checkInheritedImplementations(c *types.ClassType) {
	if c.Extended == nil {
		return
	}
	for _, i := range c.Implemented {
		for _, im := range allMethods(i) {
			if c.Method(im.Name) != nil {
				continue
			}
			impl := c.Extended.SearchMethod(im.Name)
			if impl == nil || impl.Abstract || impl.Class.Interface {
				continue
			}
			if reason := impl.Sig.CallCompatibleWithReason(im.Sig); reason != "" {
				p.report(diag.E0304, c.Pos, impl.FullName(), im.FullName(), reason)
			}
		}
	}
}

// allMethods 接口及其父接口的全部方法
func allMethods(i *types.ClassType) []*types.ClassMethod {
	out := i.Methods()
	for _, j := range i.Implemented {
		out = append(out, allMethods(j)...)
	}
	return out
}

// docPrivate 文档注释中的 @private / @access private
func docPrivate(doc *docblock.DocBlock) bool {
	return doc != nil && doc.Private
}
