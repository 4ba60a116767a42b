package parser

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/token"
)

// ============================================================================
// namespace 与 use
// ============================================================================

// namespaceStmt 解析 namespace a\b; 或 namespace [a\b] { ... }
//
// 切换命名空间时报告上一个命名空间中未使用的导入。
func (p *Parser) namespaceStmt() {
	kw := p.advance()
	if p.code && !p.nsSeen {
		p.report(diag.E0621, kw.Pos)
	}
	p.nsSeen = true
	p.flushUses()

	name := ""
	if !p.check(token.LBRACE) {
		name, _ = p.qualifiedName("namespace name")
		name = strings.TrimPrefix(name, `\`)
	}
	p.ns = name

	if p.check(token.LBRACE) {
		p.compound()
		p.flushUses()
		p.ns = ""
		return
	}
	p.endStatement()
}

// useStmt 解析 use 导入
//
//	use a\B [as C], d\E;
//	use function a\f [as g];
//	use const a\X;
//	use a\{B, function f, const X as Y};
func (p *Parser) useStmt() {
	p.advance()
	kind := p.useKind(useClass)
	for {
		name, pos := p.qualifiedName("imported name")
		name = strings.TrimPrefix(name, `\`)
		if p.check(token.BACKSLASH) && p.peekNext().Type == token.LBRACE {
			p.advance()
			p.advance()
			for !p.match(token.RBRACE) {
				k := p.useKind(kind)
				member, mpos := p.qualifiedName("imported name")
				p.addUse(k, name+`\`+member, mpos)
				if !p.match(token.COMMA) {
					p.expect(token.RBRACE, "'}'")
					break
				}
			}
		} else {
			p.addUse(kind, name, pos)
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.endStatement()
}

// useKind 可选的 function / const 前缀
func (p *Parser) useKind(def useKind) useKind {
	switch {
	case p.check(token.FUNCTION) && isNameToken(p.peekNext()):
		p.advance()
		return useFunction
	case p.check(token.CONST) && isNameToken(p.peekNext()):
		p.advance()
		return useConst
	}
	return def
}

// addUse 登记一个导入及其 as 别名
func (p *Parser) addUse(kind useKind, target string, pos token.Position) {
	alias := target
	if i := strings.LastIndexByte(target, '\\'); i >= 0 {
		alias = target[i+1:]
	}
	if p.match(token.AS) {
		alias = p.expectName("alias").Literal
	}

	e := &useEntry{alias: alias, target: target, kind: kind, pos: pos}
	if old := p.uses.add(e); old != nil {
		p.report(diag.E0620, pos, alias, old.target)
	}
}
