package parser

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/globals"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

// useKind use 语句导入的名称种类
type useKind int

const (
	useClass useKind = iota
	useFunction
	useConst
)

// useEntry 一个导入的别名
type useEntry struct {
	alias  string
	target string // 完全限定名，不含前导 \
	kind   useKind
	pos    token.Position
	used   bool
}

// useTable 当前命名空间的导入表
type useTable struct {
	entries [3]map[string]*useEntry // 类与函数按折叠后的别名，常量大小写敏感
	order   []*useEntry
}

func newUseTable() *useTable {
	t := &useTable{}
	for i := range t.entries {
		t.entries[i] = make(map[string]*useEntry)
	}
	return t
}

func aliasKey(kind useKind, alias string) string {
	if kind == useConst {
		return alias
	}
	return types.Fold(alias)
}

func (t *useTable) lookup(kind useKind, alias string) *useEntry {
	e := t.entries[kind][aliasKey(kind, alias)]
	if e != nil {
		e.used = true
	}
	return e
}

// add 登记别名；别名已存在时返回已有的条目
func (t *useTable) add(e *useEntry) *useEntry {
	k := aliasKey(e.kind, e.alias)
	if old := t.entries[e.kind][k]; old != nil {
		return old
	}
	t.entries[e.kind][k] = e
	t.order = append(t.order, e)
	return nil
}

// flushUses 报告未使用的导入并清空导入表
func (p *Parser) flushUses() {
	for _, e := range p.uses.order {
		if !e.used {
			p.report(diag.N0620, e.pos, e.target)
		}
	}
	p.uses = newUseTable()
}

// ============================================================================
// 名称
// ============================================================================

// qualifiedName 读取可能带命名空间的名称：[\]a\b\c
func (p *Parser) qualifiedName(what string) (string, token.Position) {
	pos := p.peek().Pos
	var sb strings.Builder
	if p.match(token.BACKSLASH) {
		sb.WriteByte('\\')
	}
	for {
		t := p.expectName(what)
		sb.WriteString(t.Literal)
		if p.check(token.BACKSLASH) && isNameToken(p.peekNext()) {
			p.advance()
			sb.WriteByte('\\')
			continue
		}
		return sb.String(), pos
	}
}

func isNameToken(t token.Token) bool {
	return t.Type == token.IDENT || token.IsKeyword(t.Type) && t.Type != token.THIS
}

// splitFirst 拆分出名称的第一段
func splitFirst(name string) (first, rest string) {
	if i := strings.IndexByte(name, '\\'); i >= 0 {
		return name[:i], name[i:]
	}
	return name, ""
}

// className 把源代码中的类名解析为完全限定名
func (p *Parser) className(name string) string {
	if strings.HasPrefix(name, `\`) {
		return name[1:]
	}
	first, rest := splitFirst(name)
	if e := p.uses.lookup(useClass, first); e != nil {
		return e.target + rest
	}
	return p.qualify(name)
}

// ResolveClass 解析类型描述与语句中出现的类名
//
// 依次识别 self/static/parent、当前模板的形式参数、use 别名与命名空间。
func (p *Parser) ResolveClass(name string, pos token.Position) *types.ClassType {
	switch lower(name) {
	case "self", "static":
		if p.cls != nil {
			return p.cls.c
		}
	case "parent":
		if p.cls != nil && p.cls.c.Extended != nil {
			p.cls.c.Extended.MarkUsed()
			return p.cls.c.Extended
		}
	}
	if p.cls != nil && !strings.Contains(name, `\`) {
		for _, tp := range p.cls.c.Params {
			if tp.Name == name {
				return tp
			}
		}
	}
	c := p.g.ResolveClass(p.className(name), pos, p.unit)
	if c != nil && (p.cls == nil || c != p.cls.c) {
		c.MarkUsed()
	}
	return c
}

// lookupFunction 按 PHP 的规则查找被调用的函数：命名空间内的非限定名称回退到全局
func (p *Parser) lookupFunction(name string, pos token.Position) *globals.Function {
	switch {
	case strings.HasPrefix(name, `\`):
		return p.g.UseFunction(name[1:], pos, p.unit)
	case strings.Contains(name, `\`):
		first, rest := splitFirst(name)
		if e := p.uses.lookup(useClass, first); e != nil {
			return p.g.UseFunction(e.target+rest, pos, p.unit)
		}
		return p.g.UseFunction(p.qualify(name), pos, p.unit)
	}
	if e := p.uses.lookup(useFunction, name); e != nil {
		return p.g.UseFunction(e.target, pos, p.unit)
	}
	if p.ns != "" {
		if f := p.g.Function(p.qualify(name)); f != nil {
			return p.g.UseFunction(p.qualify(name), pos, p.unit)
		}
	}
	return p.g.UseFunction(name, pos, p.unit)
}

// lookupConstant 按 PHP 的规则查找常量
func (p *Parser) lookupConstant(name string) *globals.Constant {
	switch {
	case strings.HasPrefix(name, `\`):
		return p.g.UseConstant(name[1:], p.unit)
	case strings.Contains(name, `\`):
		first, rest := splitFirst(name)
		if e := p.uses.lookup(useClass, first); e != nil {
			return p.g.UseConstant(e.target+rest, p.unit)
		}
		return p.g.UseConstant(p.qualify(name), p.unit)
	}
	if e := p.uses.lookup(useConst, name); e != nil {
		return p.g.UseConstant(e.target, p.unit)
	}
	if p.ns != "" {
		if k := p.g.Constant(p.qualify(name)); k != nil {
			return p.g.UseConstant(k.Name, p.unit)
		}
	}
	return p.g.UseConstant(name, p.unit)
}
