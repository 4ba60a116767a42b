package parser

import (
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/token"
	"go.uber.org/zap"
)

// pragmaArity 各编译指令的参数个数
var pragmaArity = map[string]int{
	"suspend":                0,
	"autoload":               3,
	"error_throws_exception": 1,
}

// pragmaStmt 解析 pragma 'name' 'arg' ... ;
func (p *Parser) pragmaStmt() {
	p.advance()
	nt := p.expect(token.STRING, "pragma name")
	name, _ := nt.Value.(string)

	var args []token.Token
	for p.check(token.STRING) {
		args = append(args, p.advance())
	}
	p.endStatement()

	want, ok := pragmaArity[name]
	if !ok {
		p.report(diag.E0600, nt.Pos, name)
		return
	}
	if len(args) != want {
		p.report(diag.E0601, nt.Pos, name, want, len(args))
		return
	}
	p.log.Debug("pragma", zap.String("name", name), zap.Int("args", len(args)))

	switch name {
	case "suspend":
		if p.depth > 0 || p.fn != nil {
			p.report(diag.E0602, nt.Pos)
			return
		}
		p.suspended = true

	case "autoload":
		fn := stringValue(args[0])
		if lf := p.lookupFunction(fn, args[0].Pos); lf != nil {
			fn = lf.Name
		}
		p.g.SetAutoload(fn, stringValue(args[1]), stringValue(args[2]), nt.Pos, p.unit)

	case "error_throws_exception":
		if c := p.ResolveClass(stringValue(args[0]), args[0].Pos); c != nil {
			p.g.SetErrorThrows(c, nt.Pos)
		}
	}
}

func stringValue(t token.Token) string {
	s, _ := t.Value.(string)
	return s
}
