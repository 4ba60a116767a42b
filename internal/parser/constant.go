package parser

import (
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/globals"
	"github.com/rvtraveller/phplint/internal/token"
	"go.uber.org/zap"
)

// constStmt 解析全局常量声明 const NAME = expr [, NAME = expr] ;
func (p *Parser) constStmt() {
	p.advance()
	for {
		nt := p.expectName("constant name")
		p.expect(token.ASSIGN, "'='")
		t, v := p.staticExpr()
		name := p.qualify(nt.Literal)
		k := &globals.Constant{Name: name, Type: t, Value: v, Pos: nt.Pos, Unit: p.unit}
		if old := p.g.DeclareConstant(k); old != nil {
			p.report(diag.E0630, nt.Pos, name, where(old.Pos))
		} else {
			p.log.Debug("constant", zap.String("name", name), zap.Stringer("type", t))
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.endStatement()
}
