package parser

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

// ============================================================================
// 静态表达式
// ============================================================================
//
// 常量、参数默认值、属性初值与 require 路径必须能在解析时求值。
// 求值得到类型，能确定时同时得到值（int64、float64、string、bool 或 nil）。
//
// 优先级（从低到高）：
//
//	?:  ??  ||  &&  |  ^  &  == != === !==  < <= > >=  << >>  .  + -  * / %  一元
//
// ============================================================================

// value 静态表达式的结果
type value struct {
	t types.Type
	v interface{}
}

// notStatic 表达式不是静态表达式
type notStatic struct {
	pos token.Position
}

// staticExpr 解析一个静态表达式；不是静态表达式时报告错误并跳过它
func (p *Parser) staticExpr() (types.Type, interface{}) {
	v, ok := p.tryStaticExpr()
	if !ok {
		return types.Unknown, nil
	}
	return v.t, v.v
}

// tryStaticExpr 解析一个静态表达式；失败时跳过表达式并返回 false
func (p *Parser) tryStaticExpr() (res value, ok bool) {
	start := p.current
	defer func() {
		if r := recover(); r != nil {
			ns, isNS := r.(notStatic)
			if !isNS {
				panic(r)
			}
			p.report(diag.E0632, ns.pos)
			p.current = start
			p.skipExpr()
			res, ok = value{types.Unknown, nil}, false
		}
	}()
	return p.ternary(), true
}

// skipExpr 跳过一个表达式，停在同层的 , ; ) ] 之前
func (p *Parser) skipExpr() {
	depth := 0
	for !p.isAtEnd() {
		switch p.peek().Type {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			if depth == 0 {
				return
			}
			depth--
		case token.COMMA, token.SEMICOLON, token.CLOSE_TAG:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}

func (p *Parser) notStatic() {
	panic(notStatic{p.peek().Pos})
}

func (p *Parser) ternary() value {
	cond := p.coalesce()
	if !p.match(token.QUESTION) {
		return cond
	}
	var then value
	if p.check(token.COLON) {
		then = cond
	} else {
		then = p.ternary()
	}
	p.expect(token.COLON, "':'")
	els := p.ternary()
	if b, ok := cond.v.(bool); ok {
		if b {
			return then
		}
		return els
	}
	if then.t.Equals(els.t) {
		return value{then.t, nil}
	}
	return value{types.Mixed, nil}
}

func (p *Parser) coalesce() value {
	left := p.logicalOr()
	for p.match(token.NULL_COALESCE) {
		right := p.logicalOr()
		if left.t != types.Null {
			continue
		}
		left = right
	}
	return left
}

func (p *Parser) logicalOr() value {
	left := p.logicalAnd()
	for p.match(token.OR) {
		right := p.logicalAnd()
		left = logic(left, right, func(a, b bool) bool { return a || b })
	}
	return left
}

func (p *Parser) logicalAnd() value {
	left := p.bitOr()
	for p.match(token.AND) {
		right := p.bitOr()
		left = logic(left, right, func(a, b bool) bool { return a && b })
	}
	return left
}

func logic(a, b value, op func(a, b bool) bool) value {
	x, ok1 := a.v.(bool)
	y, ok2 := b.v.(bool)
	if ok1 && ok2 {
		return value{types.Boolean, op(x, y)}
	}
	return value{types.Boolean, nil}
}

func (p *Parser) bitOr() value {
	left := p.bitXor()
	for p.match(token.BIT_OR) {
		left = intOp(left, p.bitXor(), func(a, b int64) int64 { return a | b })
	}
	return left
}

func (p *Parser) bitXor() value {
	left := p.bitAnd()
	for p.match(token.BIT_XOR) {
		left = intOp(left, p.bitAnd(), func(a, b int64) int64 { return a ^ b })
	}
	return left
}

func (p *Parser) bitAnd() value {
	left := p.equality()
	for p.match(token.BIT_AND) {
		left = intOp(left, p.equality(), func(a, b int64) int64 { return a & b })
	}
	return left
}

func intOp(a, b value, op func(a, b int64) int64) value {
	x, ok1 := a.v.(int64)
	y, ok2 := b.v.(int64)
	if ok1 && ok2 {
		return value{types.Int, op(x, y)}
	}
	return value{types.Int, nil}
}

func (p *Parser) equality() value {
	left := p.comparison()
	for p.checkAny(token.EQ, token.NE, token.IDENTICAL, token.NOT_IDENTICAL) {
		op := p.advance().Type
		right := p.comparison()
		res := value{types.Boolean, nil}
		if left.v != nil && right.v != nil && left.t == right.t {
			eq := left.v == right.v
			res.v = eq == (op == token.EQ || op == token.IDENTICAL)
		}
		left = res
	}
	return left
}

func (p *Parser) comparison() value {
	left := p.shift()
	for p.checkAny(token.LT, token.LE, token.GT, token.GE) {
		p.advance()
		p.shift()
		left = value{types.Boolean, nil}
	}
	return left
}

func (p *Parser) shift() value {
	left := p.concat()
	for p.checkAny(token.LEFT_SHIFT, token.RIGHT_SHIFT) {
		op := p.advance().Type
		right := p.concat()
		left = intOp(left, right, func(a, b int64) int64 {
			if b < 0 || b > 63 {
				return 0
			}
			if op == token.LEFT_SHIFT {
				return a << uint(b)
			}
			return a >> uint(b)
		})
	}
	return left
}

func (p *Parser) concat() value {
	left := p.additive()
	for p.match(token.DOT) {
		right := p.additive()
		res := value{types.String, nil}
		x, ok1 := toString(left.v)
		y, ok2 := toString(right.v)
		if ok1 && ok2 {
			res.v = x + y
		}
		left = res
	}
	return left
}

// toString 静态值按 PHP 的规则转为字符串
func toString(v interface{}) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'G', 14, 64), true
	case bool:
		if x {
			return "1", true
		}
		return "", true
	}
	return "", false
}

func (p *Parser) additive() value {
	left := p.multiplicative()
	for p.checkAny(token.PLUS, token.MINUS) {
		op := p.advance().Type
		right := p.multiplicative()
		if op == token.PLUS {
			left = arith(left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
		} else {
			left = arith(left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
		}
	}
	return left
}

func (p *Parser) multiplicative() value {
	left := p.unary()
	for p.checkAny(token.STAR, token.SLASH, token.PERCENT) {
		op := p.advance().Type
		right := p.unary()
		switch op {
		case token.STAR:
			left = arith(left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
		case token.PERCENT:
			left = intOp(left, right, func(a, b int64) int64 {
				if b == 0 {
					return 0
				}
				return a % b
			})
		default:
			left = divide(left, right)
		}
	}
	return left
}

// arith 算术运算：两个 int 得 int，其他数值得 float
func arith(a, b value, iop func(a, b int64) int64, fop func(a, b float64) float64) value {
	if a.t == types.Int && b.t == types.Int {
		return intOp(a, b, iop)
	}
	if !isNumber(a.t) || !isNumber(b.t) {
		return value{types.Unknown, nil}
	}
	x, ok1 := toFloat(a.v)
	y, ok2 := toFloat(b.v)
	if ok1 && ok2 {
		return value{types.Float, fop(x, y)}
	}
	return value{types.Float, nil}
}

func divide(a, b value) value {
	x, ok1 := a.v.(int64)
	y, ok2 := b.v.(int64)
	if ok1 && ok2 && y != 0 && x%y == 0 {
		return value{types.Int, x / y}
	}
	if !isNumber(a.t) || !isNumber(b.t) {
		return value{types.Unknown, nil}
	}
	fx, ok1 := toFloat(a.v)
	fy, ok2 := toFloat(b.v)
	if ok1 && ok2 && fy != 0 {
		return value{types.Float, fx / fy}
	}
	return value{types.Float, nil}
}

func isNumber(t types.Type) bool {
	return t == types.Int || t == types.Float
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func (p *Parser) unary() value {
	switch p.peek().Type {
	case token.MINUS:
		p.advance()
		v := p.unary()
		switch x := v.v.(type) {
		case int64:
			return value{types.Int, -x}
		case float64:
			return value{types.Float, -x}
		}
		if isNumber(v.t) {
			return value{v.t, nil}
		}
		return value{types.Unknown, nil}
	case token.PLUS:
		p.advance()
		return p.unary()
	case token.NOT:
		p.advance()
		v := p.unary()
		if b, ok := v.v.(bool); ok {
			return value{types.Boolean, !b}
		}
		return value{types.Boolean, nil}
	case token.BIT_NOT:
		p.advance()
		v := p.unary()
		if x, ok := v.v.(int64); ok {
			return value{types.Int, ^x}
		}
		return value{types.Int, nil}
	}
	return p.primary()
}

func (p *Parser) primary() value {
	t := p.peek()
	switch t.Type {
	case token.INT:
		p.advance()
		return value{types.Int, t.Value}
	case token.FLOAT:
		p.advance()
		return value{types.Float, t.Value}
	case token.STRING:
		p.advance()
		return value{types.String, t.Value}
	case token.LPAREN:
		p.advance()
		v := p.ternary()
		p.expect(token.RPAREN, "')'")
		return v
	case token.LBRACKET:
		p.advance()
		return p.arrayLiteral(token.RBRACKET)
	case token.STATIC:
		if p.peekNext().Type == token.DOUBLE_COLON {
			p.advance()
			return p.classConstant("static", t.Pos)
		}
	case token.IDENT, token.BACKSLASH:
		return p.namedValue()
	}
	p.notStatic()
	return value{}
}

// namedValue 字面常量、魔术常量、array(...)、类常量与常量
func (p *Parser) namedValue() value {
	t := p.peek()
	if t.Type == token.IDENT {
		switch lower(t.Literal) {
		case "true":
			p.advance()
			return value{types.Boolean, true}
		case "false":
			p.advance()
			return value{types.Boolean, false}
		case "null":
			p.advance()
			return value{types.Null, nil}
		case "array":
			if p.peekNext().Type == token.LPAREN {
				p.advance()
				p.advance()
				return p.arrayLiteral(token.RPAREN)
			}
		}
		if v, ok := p.magicConstant(t); ok {
			p.advance()
			return v
		}
	}
	name, pos := p.qualifiedName("name")
	if p.check(token.DOUBLE_COLON) {
		return p.classConstant(name, pos)
	}
	if p.check(token.LPAREN) {
		p.notStatic()
	}
	k := p.lookupConstant(name)
	if k == nil {
		p.report(diag.E0631, pos, strings.TrimPrefix(name, `\`))
		return value{types.Unknown, nil}
	}
	return value{k.Type, k.Value}
}

func (p *Parser) magicConstant(t token.Token) (value, bool) {
	switch strings.ToUpper(t.Literal) {
	case "__LINE__":
		return value{types.Int, int64(t.Pos.Line)}, true
	case "__FILE__":
		return value{types.String, absPath(p.unit.Path)}, true
	case "__DIR__":
		return value{types.String, filepath.Dir(absPath(p.unit.Path))}, true
	case "__NAMESPACE__":
		return value{types.String, p.ns}, true
	case "__CLASS__":
		if p.cls != nil {
			return value{types.String, p.cls.c.Name}, true
		}
		return value{types.String, ""}, true
	case "__FUNCTION__", "__METHOD__":
		return value{types.String, nil}, true
	}
	return value{}, false
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// classConstant 解析 Name::CONST 或 Name::class
func (p *Parser) classConstant(name string, pos token.Position) value {
	p.expect(token.DOUBLE_COLON, "'::'")
	c := p.ResolveClass(name, pos)
	if p.match(token.CLASS) {
		if c == nil {
			return value{types.String, nil}
		}
		return value{types.String, c.Name}
	}
	if p.check(token.VARIABLE) {
		p.notStatic()
	}
	nt := p.expectName("constant name")
	if p.check(token.LPAREN) {
		p.notStatic()
	}
	if c == nil {
		return value{types.Unknown, nil}
	}
	k := c.SearchConstant(nt.Literal)
	if k == nil {
		if c.Complete || p.cls != nil && c == p.cls.c {
			p.report(diag.E0314, nt.Pos, c.Name+"::"+nt.Literal)
		}
		return value{types.Unknown, nil}
	}
	k.Used = true
	return value{k.Type, k.Value}
}

// arrayLiteral 解析数组字面量的元素直到 closer，推断下标与元素类型
func (p *Parser) arrayLiteral(closer token.TokenType) value {
	var index, elem types.Type
	n := 0
	next := int64(0)
	for !p.check(closer) {
		if p.check(token.ELLIPSIS) {
			p.notStatic()
		}
		v := p.ternary()
		var kt types.Type = types.Int
		if p.match(token.DOUBLE_ARROW) {
			kt = v.t
			if x, ok := v.v.(int64); ok && x >= next {
				next = x + 1
			}
			v = p.ternary()
		} else {
			next++
		}
		switch kt {
		case types.Int, types.String:
		case types.Boolean, types.Float, types.Null:
			kt = types.Int
		default:
			kt = types.Mixed
		}
		index = mergeIndex(index, kt)
		elem = mergeElem(elem, v.t)
		n++
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(closer, "'"+closer.String()+"'")
	if n == 0 {
		return value{p.u.Array(types.Unknown, types.Unknown), nil}
	}
	return value{p.u.Array(index, elem), nil}
}

func mergeIndex(a, b types.Type) types.Type {
	if a == nil || a == b {
		return b
	}
	return types.Mixed
}

func mergeElem(a, b types.Type) types.Type {
	switch {
	case a == nil:
		return b
	case a.Equals(b):
		return a
	case isNumber(a) && isNumber(b):
		return types.Float
	case a == types.Null:
		return b
	case b == types.Null:
		return a
	}
	return types.Mixed
}
