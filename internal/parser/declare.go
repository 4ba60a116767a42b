package parser

import (
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

// declareStmt 解析 declare(directive=value, ...) 及其可选的语句体
//
//	declare(strict_types=1);
//	declare(ticks=1) { ... }
//	declare(ticks=1): ... enddeclare;
func (p *Parser) declareStmt() {
	p.advance()
	p.expect(token.LPAREN, "'('")
	for {
		nt := p.expect(token.IDENT, "directive name")
		p.expect(token.ASSIGN, "'='")
		t, v := p.staticExpr()
		p.directive(nt, t, v)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN, "')'")

	switch {
	case p.check(token.LBRACE):
		p.compound()
	case p.match(token.COLON):
		for !p.checkWord("enddeclare") {
			if p.isAtEnd() {
				p.fatalExpected("'enddeclare'")
			}
			p.statement()
		}
		p.advance()
		p.endStatement()
	default:
		p.endStatement()
	}
}

func (p *Parser) directive(nt token.Token, t types.Type, v interface{}) {
	name := lower(nt.Literal)
	switch name {
	case "strict_types":
		if n, ok := v.(int64); !ok || (n != 0 && n != 1) {
			p.report(diag.E0611, nt.Pos, name)
		}
		if p.code {
			p.report(diag.E0612, nt.Pos)
		}
	case "ticks":
		if _, ok := v.(int64); !ok || t != types.Int {
			p.report(diag.E0611, nt.Pos, name)
		}
	case "encoding":
		if _, ok := v.(string); !ok {
			p.report(diag.E0611, nt.Pos, name)
		}
	default:
		p.report(diag.E0610, nt.Pos, nt.Literal)
	}
}
