package parser

import (
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/loader"
	"go.uber.org/zap"
)

// requireStmt 解析 require/include 语句并加载路径可以静态求值的源单元
func (p *Parser) requireStmt() {
	kw := p.advance()
	v, ok := p.tryStaticExpr()
	p.endStatement()
	if !ok {
		return
	}
	path, isString := v.v.(string)
	if !isString {
		p.report(diag.E0701, kw.Pos)
		return
	}
	resolved, err := loader.ResolveRequire(p.unit.Path, path)
	if err != nil {
		p.report(diag.E0702, kw.Pos, path)
		return
	}
	p.log.Debug("require", zap.String("path", resolved))
	if to := p.pp.ParseUnit(resolved, p.unit, kw.Pos); to != nil {
		p.g.AddRequire(p.unit, to, kw.Pos)
	}
}
