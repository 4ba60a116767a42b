package parser

import (
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/docblock"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

// formalArguments 解析 ( 之后的形式参数列表，停在 ) 之前
//
//	[Type] [&] [...] $name [= static-expr]
//	return [Type] &$name      经引用返回的参数
//	args                      接受任意多个额外参数，必须在最后
func (p *Parser) formalArguments(sig *types.Signature, doc *docblock.DocBlock) {
	seen := make(map[string]bool)
	optional := false
	for !p.check(token.RPAREN) {
		if p.checkWord("args") && p.peekNext().Type != token.VARIABLE {
			p.advance()
			sig.MoreArgs = true
			break
		}
		a := p.formalArgument(doc)

		switch {
		case seen[a.Name]:
			p.report(diag.E0400, a.Pos, "$"+a.Name)
		case sig.Variadic != nil:
			p.report(diag.E0402, sig.Variadic.Pos, "$"+sig.Variadic.Name)
		}
		seen[a.Name] = true

		if a.Variadic {
			a.Mandatory = false
		} else if a.Mandatory && optional {
			p.report(diag.E0401, a.Pos, "$"+a.Name)
			a.Mandatory = false
		}
		if !a.Mandatory && !a.Variadic {
			optional = true
		}
		if sig.Variadic == nil {
			sig.AddArg(a)
		}
		if !p.match(token.COMMA) {
			break
		}
	}
}

func (p *Parser) formalArgument(doc *docblock.DocBlock) *types.FormalArgument {
	a := &types.FormalArgument{Mandatory: true, Pos: p.peek().Pos}
	if p.match(token.RETURN) {
		a.ByRefReturn = true
	}
	var inline types.Type
	if p.isTypeStart() {
		inline = p.parseType()
	}
	if p.match(token.BIT_AND) {
		a.ByRef = true
	}
	if p.match(token.ELLIPSIS) {
		a.Variadic = true
	}
	nt := p.expect(token.VARIABLE, "argument name")
	a.Name = nt.Literal[1:]
	a.Pos = nt.Pos
	if a.ByRefReturn {
		a.ByRef = true
	}

	if p.match(token.ASSIGN) {
		a.Default, a.Value = p.staticExpr()
		a.Mandatory = false
		if a.Variadic {
			p.report(diag.E0403, a.Pos, "$"+a.Name)
			a.Default, a.Value = nil, nil
		}
	}

	what := "$" + a.Name
	var tag *docblock.Tag
	if dp := doc.Param(a.Name); dp != nil {
		tag = &dp.Tag
	}
	a.Type = p.withDoc(what, inline, tag)
	if a.Type == nil {
		if a.Default != nil && a.Default != types.Null && !types.IsUnknown(a.Default) {
			a.Type = a.Default
		} else {
			p.report(diag.E0111, a.Pos, what)
			a.Type = types.Unknown
		}
	}
	if a.Type == types.Void {
		p.report(diag.E0112, a.Pos, what)
		a.Type = types.Unknown
	}
	if a.Default != nil && !types.IsUnknown(a.Default) && !a.Default.AssignableTo(a.Type) {
		p.report(diag.E0110, a.Pos, what, a.Default, a.Type)
	}
	return a
}
