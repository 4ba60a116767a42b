package parser

import (
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/docblock"
	"github.com/rvtraveller/phplint/internal/globals"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
	"go.uber.org/zap"
)

// funcState 正在扫描的函数体
type funcState struct {
	returnsValue bool // 出现过带值的 return
}

// header 函数或方法的声明头
type header struct {
	name      string
	pos       token.Position
	sig       *types.Signature
	hasReturn bool // 返回类型由内联类型或文档注释给出
}

// signature 解析 function 关键字之后的声明头
//
//	[&] [RetType] name ( args ) [: RetType] [throws A, B] [triggers E_X, E_Y]
func (p *Parser) signature(doc *docblock.DocBlock) *header {
	h := &header{sig: types.NewSignature()}
	h.sig.ByRefReturn = p.match(token.BIT_AND)

	var ret types.Type
	if !(isNameToken(p.peek()) && p.peekNext().Type == token.LPAREN) {
		ret = p.parseType()
	}
	nt := p.expectName("function name")
	h.name, h.pos = nt.Literal, nt.Pos

	p.expect(token.LPAREN, "'('")
	p.formalArguments(h.sig, doc)
	p.expect(token.RPAREN, "')'")

	if p.match(token.COLON) {
		t := p.parseType()
		if ret != nil && !types.IsUnknown(ret) && !types.IsUnknown(t) && !ret.Equals(t) {
			p.report(diag.E0404, h.pos, h.name+"()", ret, t)
		}
		if ret == nil {
			ret = t
		}
	}
	p.clauses(h.sig)

	if doc != nil {
		ret = p.withDoc(h.name+"()", ret, doc.Return)
		for _, tag := range doc.Throws {
			p.addThrows(h.sig, tag.Type, tag.Pos)
		}
		for _, tag := range doc.Triggers {
			p.addTriggers(h.sig, tag.Type, tag.Pos)
		}
	}
	if ret != nil {
		h.sig.Return = ret
		h.hasReturn = true
	}
	return h
}

// clauses 解析签名之后的 throws 与 triggers 子句
func (p *Parser) clauses(sig *types.Signature) {
	for {
		switch {
		case p.checkWord("throws"):
			p.advance()
			for {
				name, pos := p.qualifiedName("exception class")
				p.addThrows(sig, name, pos)
				if !p.match(token.COMMA) {
					break
				}
			}
		case p.checkWord("triggers"):
			p.advance()
			for {
				nt := p.expect(token.IDENT, "error name")
				p.addTriggers(sig, nt.Literal, nt.Pos)
				if !p.match(token.COMMA, token.BIT_OR) {
					break
				}
			}
		default:
			return
		}
	}
}

func (p *Parser) addThrows(sig *types.Signature, name string, pos token.Position) {
	c := p.ResolveClass(name, pos)
	switch {
	case c == nil:
	case !c.Exception:
		p.report(diag.E0408, pos, c.Name)
	case c.IsChecked():
		sig.Exceptions.Add(c)
	}
}

func (p *Parser) addTriggers(sig *types.Signature, name string, pos token.Position) {
	e, ok := types.ParseErrorName(name)
	if !ok {
		p.report(diag.E0407, pos, name)
		return
	}
	sig.Errors |= e
}

// body 扫描函数体并确定未声明的返回类型：没有带值的 return 时为 void
func (p *Parser) body(h *header) {
	saved := p.fn
	p.fn = &funcState{}
	p.compound()
	if !h.hasReturn {
		if p.fn.returnsValue {
			h.sig.Return = types.Unknown
		} else {
			h.sig.Return = types.Void
		}
	}
	p.fn = saved
}

// ============================================================================
// 函数声明
// ============================================================================

// functionStmt 解析函数声明；forward 表示只有原型
func (p *Parser) functionStmt(forward bool) {
	doc := p.docAt(p.current)
	if forward {
		p.advance()
	}
	p.expect(token.FUNCTION, "'function'")
	h := p.signature(doc)
	name := p.qualify(h.name)

	if forward {
		p.endStatement()
	} else {
		if !p.check(token.LBRACE) {
			p.fatalExpected("'{'")
		}
		p.body(h)
	}
	p.g.NoteSignature(h.sig, h.pos)

	f := &globals.Function{Name: name, Sig: h.sig, Pos: h.pos, Unit: p.unit, Forward: forward}
	old := p.g.Function(name)
	switch {
	case old == nil:
		p.g.DeclareFunction(f)
	case old.Forward && !forward && !old.Builtin:
		if reason := h.sig.CallCompatibleWithReason(old.Sig); reason != "" {
			p.report(diag.E0207, h.pos, name, old.Pos, reason)
		}
		f.Used = old.Used
		p.g.ReplaceFunction(f)
	default:
		p.report(diag.E0405, h.pos, name, where(old.Pos))
		return
	}
	p.log.Debug("function", zap.String("name", name), zap.Bool("forward", forward))
}
