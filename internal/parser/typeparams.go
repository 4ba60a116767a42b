package parser

import (
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

// typeParameters 解析模板的形式类型参数声明
//
//	< T [extends Bound [& Iface ...]] , ... >
//
// 参数在解析约束之前加入模板，因此约束可以引用参数自身（T extends Comparable<T>）。
// 完成前向声明时，同名同位置的参数沿用原型中的对象。
func (p *Parser) typeParameters() {
	st := p.cls
	c := st.c
	p.expect(token.LT, "'<'")
	for {
		nt := p.expect(token.IDENT, "type parameter name")
		name := nt.Literal

		redeclared := false
		for _, tp := range c.Params {
			if tp.Name == name {
				p.report(diag.E0500, nt.Pos, name)
				redeclared = true
			}
		}
		if shadowed := p.g.Class(p.qualify(name)); shadowed != nil {
			p.report(diag.N0500, nt.Pos, name, shadowed.Name)
		}

		var tp *types.ClassType
		if st.proto != nil && len(c.Params) < len(st.proto.params) && st.proto.params[len(c.Params)].Name == name {
			tp = st.proto.params[len(c.Params)]
			tp.Pos = nt.Pos
		} else {
			tp = types.NewParameter(name, c, nt.Pos)
		}
		if !redeclared {
			c.AddParameter(tp)
		}

		var bounds []*types.ClassType
		if p.match(token.EXTENDS) {
			for {
				b, text, pos, notClass := p.parseClass()
				switch {
				case notClass:
					p.report(diag.E0502, pos, text, name)
				case b == nil:
				case b.IsParam && b.Owner == c && b.Name == name:
					p.report(diag.E0502, pos, text, name)
				case len(bounds) > 0 && !b.Interface:
					p.report(diag.E0501, pos, b, name)
				default:
					bounds = append(bounds, b)
				}
				if !p.match(token.BIT_AND) {
					break
				}
			}
		}
		tp.SetBounds(bounds)

		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.GT, "'>'")
}

func sameParams(a, b []*types.ClassType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
