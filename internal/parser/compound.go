package parser

import (
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

// ============================================================================
// 语句
// ============================================================================
//
// 声明语句被完整解析；其余语句只被扫描：跟踪括号与花括号的嵌套，
// 识别嵌套的复合语句、文本块与闭包，并收集对类、成员、函数与常量的引用。
//
// ============================================================================

// statements 解析顶层语句直到文件结束或挂起
func (p *Parser) statements() {
	for !p.isAtEnd() {
		p.statement()
		if p.suspended {
			return
		}
	}
}

func (p *Parser) statement() {
	t := p.peek()
	switch t.Type {
	case token.SEMICOLON:
		p.advance()
		return
	case token.TEXT, token.CLOSE_TAG:
		p.textBlock()
		return
	case token.DECLARE:
		p.declareStmt()
		return
	case token.NAMESPACE:
		if p.peekNext().Type != token.BACKSLASH {
			p.namespaceStmt()
			return
		}
	}
	p.code = true

	switch {
	case t.Type == token.USE:
		p.useStmt()
	case t.Is("pragma") && p.peekNext().Type == token.STRING:
		p.pragmaStmt()
	case t.Is("forward") && p.peekNext().Type == token.FUNCTION:
		p.functionStmt(true)
	case t.Is("forward") && p.atClassDecl(1):
		p.nestedClass(true)
	case t.Type == token.REQUIRE, t.Type == token.REQUIRE_ONCE, t.Type == token.INCLUDE, t.Type == token.INCLUDE_ONCE:
		p.requireStmt()
	case t.Type == token.CONST:
		p.constStmt()
	case t.Type == token.FUNCTION && p.isFunctionDecl():
		p.functionStmt(false)
	case p.atClassDecl(0):
		p.nestedClass(false)
	case t.Type == token.LBRACE:
		p.compound()
	default:
		p.skimStatement()
	}
}

// nestedClass 解析类声明；出现在方法体内时保存并恢复外层类
func (p *Parser) nestedClass(forward bool) {
	outer := p.cls
	p.cls = nil
	p.classDecl(forward)
	if p.suspended {
		return
	}
	if outer != nil {
		p.cls = outer
	}
}

// isFunctionDecl function 之后是函数名（而不是闭包的参数表）
func (p *Parser) isFunctionDecl() bool {
	i := 1
	if p.peekAt(i).Type == token.BIT_AND {
		i++
	}
	return p.peekAt(i).Type != token.LPAREN && p.peekAt(i).Type != token.USE
}

// compound 解析 { 语句 ... }
func (p *Parser) compound() {
	p.expect(token.LBRACE, "'{'")
	p.depth++
	for !p.match(token.RBRACE) {
		if p.isAtEnd() {
			p.fatalExpected("'}'")
		}
		p.statement()
	}
	p.depth--
}

// skimStatement 扫描一条非声明语句直到 ; 、同层的 } 或 ?>
//
// 语句中的 { 开始一个嵌套的复合语句；if/while 等语句的语句体因此被
// 当作随后的复合语句处理。
func (p *Parser) skimStatement() {
	if p.match(token.RETURN) && p.fn != nil && !p.checkAny(token.SEMICOLON, token.CLOSE_TAG) {
		p.fn.returnsValue = true
	}
	parens := 0
	for !p.isAtEnd() {
		switch p.peek().Type {
		case token.LPAREN, token.LBRACKET:
			parens++
			p.advance()
		case token.RPAREN, token.RBRACKET:
			if parens > 0 {
				parens--
			}
			p.advance()
		case token.SEMICOLON:
			p.advance()
			if parens == 0 {
				return
			}
		case token.LBRACE:
			p.compound()
			if parens == 0 {
				return
			}
		case token.RBRACE, token.CLOSE_TAG, token.TEXT:
			return
		default:
			p.reference()
		}
	}
}

// ============================================================================
// 引用
// ============================================================================

// skipCalls 语句中出现在名称之后、带 ( 的语言结构
var skipCalls = map[string]bool{
	"if": true, "elseif": true, "while": true, "for": true, "foreach": true,
	"switch": true, "match": true, "array": true, "list": true, "isset": true,
	"empty": true, "unset": true, "eval": true, "exit": true, "die": true,
	"echo": true, "print": true, "fn": true,
}

// plainWords 不是常量引用的标识符
var plainWords = map[string]bool{
	"true": true, "false": true, "null": true, "else": true, "do": true,
	"try": true, "finally": true, "echo": true, "print": true, "break": true,
	"continue": true, "case": true, "default": true, "goto": true,
	"endif": true, "endwhile": true, "endfor": true, "endforeach": true,
	"endswitch": true, "yield": true, "from": true, "and": true, "or": true,
	"xor": true, "clone": true, "global": true, "insteadof": true,
	"self": true, "parent": true, "static": true, "enddeclare": true,
	"array": true, "list": true, "isset": true, "empty": true, "unset": true,
	"exit": true, "die": true, "fn": true, "match": true, "pragma": true,
}

// reference 消耗当前位置的一个或多个 token，记录其中的引用
func (p *Parser) reference() {
	t := p.peek()
	switch t.Type {
	case token.NEW:
		p.advance()
		switch {
		case p.check(token.CLASS):
			p.advance()
		case p.check(token.STATIC):
			p.advance()
		case isNameToken(p.peek()) || p.check(token.BACKSLASH):
			name, pos := p.qualifiedName("class name")
			p.ResolveClass(name, pos)
		}

	case token.INSTANCEOF:
		p.advance()
		if isNameToken(p.peek()) || p.check(token.BACKSLASH) {
			name, pos := p.qualifiedName("class name")
			p.ResolveClass(name, pos)
		}

	case token.CATCH:
		p.advance()
		if !p.match(token.LPAREN) {
			return
		}
		for isNameToken(p.peek()) || p.check(token.BACKSLASH) {
			name, pos := p.qualifiedName("exception class")
			p.ResolveClass(name, pos)
			if !p.match(token.BIT_OR) {
				break
			}
		}

	case token.THIS:
		p.advance()
		if p.cls == nil || !p.check(token.ARROW) || !isNameToken(p.peekNext()) {
			return
		}
		p.advance()
		nt := p.advance()
		kind := refProperty
		if p.check(token.LPAREN) {
			kind = refMethod
		}
		p.referMember(memberRef{class: p.cls.c, kind: kind, name: nt.Literal, pos: nt.Pos})

	case token.ARROW, token.DOUBLE_COLON:
		p.advance()
		if isNameToken(p.peek()) {
			p.advance()
		}

	case token.FUNCTION:
		p.closure()

	case token.STATIC:
		p.advance()
		if p.check(token.DOUBLE_COLON) {
			p.staticRef("static", t.Pos)
		}

	case token.IDENT, token.BACKSLASH, token.NAMESPACE:
		p.namedRef()

	default:
		p.advance()
	}
}

// namedRef 名称之后跟 :: 是类引用，跟 ( 是函数调用，否则是常量
func (p *Parser) namedRef() {
	t := p.peek()
	if t.Type == token.NAMESPACE {
		// namespace\name 相对于当前命名空间
		p.advance()
		if !p.match(token.BACKSLASH) || !isNameToken(p.peek()) {
			return
		}
		name, pos := p.qualifiedName("name")
		p.callOrConstant(`\`+p.qualify(name), pos)
		return
	}
	name, pos := p.qualifiedName("name")
	if p.check(token.DOUBLE_COLON) {
		p.staticRef(name, pos)
		return
	}
	p.callOrConstant(name, pos)
}

func (p *Parser) callOrConstant(name string, pos token.Position) {
	word := lower(name)
	if p.check(token.LPAREN) {
		switch {
		case skipCalls[word]:
		case word == "cast":
			p.castRef()
			p.lookupFunction(name, pos)
		default:
			p.lookupFunction(name, pos)
		}
		return
	}
	if plainWords[word] || p.check(token.VARIABLE) || p.check(token.THIS) {
		return
	}
	p.lookupConstant(name)
}

// staticRef 解析 Name:: 之后的成员引用
func (p *Parser) staticRef(name string, pos token.Position) {
	var c *types.ClassType
	switch lower(name) {
	case "self", "static":
		if p.cls != nil {
			c = p.cls.c
		}
	case "parent":
		if p.cls != nil {
			c = p.cls.c.Extended
		}
	default:
		c = p.ResolveClass(name, pos)
	}
	p.advance()
	var r memberRef
	switch nt := p.peek(); {
	case nt.Type == token.CLASS:
		p.advance()
		return
	case nt.Type == token.VARIABLE:
		p.advance()
		r = memberRef{kind: refProperty, name: nt.Literal[1:], pos: nt.Pos}
	case isNameToken(nt):
		p.advance()
		r = memberRef{kind: refConstant, name: nt.Literal, pos: nt.Pos}
		if p.check(token.LPAREN) {
			r.kind = refMethod
		}
	default:
		return
	}
	if c == nil || c.IsParam {
		return
	}
	r.class = c
	p.referMember(r)
}

// castRef 检查 cast('Type', value)：目标类型必须合法，已知类型的字面量必须能转换
func (p *Parser) castRef() {
	st := p.peekAt(1)
	if st.Type != token.STRING || p.peekAt(2).Type != token.COMMA {
		return
	}
	target := p.td.Parse(stringValue(st), st.Pos)
	if target == types.Void {
		p.report(diag.E0108, st.Pos, target)
		return
	}
	if p.peekAt(4).Type != token.RPAREN {
		return
	}
	var vt types.Type
	switch lt := p.peekAt(3); {
	case lt.Type == token.INT:
		vt = types.Int
	case lt.Type == token.FLOAT:
		vt = types.Float
	case lt.Type == token.STRING:
		vt = types.String
	case lt.Is("true"), lt.Is("false"):
		vt = types.Boolean
	case lt.Is("null"):
		vt = types.Null
	default:
		return
	}
	if !types.IsUnknown(target) && !vt.CanCastTo(target) {
		p.report(diag.E0108, st.Pos, target)
	}
}

// closure 扫描闭包：参数表、use 子句、返回类型与函数体
func (p *Parser) closure() {
	p.advance()
	p.match(token.BIT_AND)
	if isNameToken(p.peek()) {
		// 匿名类中的方法
		p.advance()
	}
	if p.check(token.LPAREN) {
		p.skipParens()
	}
	if p.match(token.USE) && p.check(token.LPAREN) {
		p.skipParens()
	}
	if p.match(token.COLON) {
		for !p.checkAny(token.LBRACE, token.SEMICOLON) && !p.isAtEnd() {
			p.advance()
		}
	}
	if !p.check(token.LBRACE) {
		return
	}
	saved := p.fn
	p.fn = &funcState{}
	p.compound()
	p.fn = saved
}

// skipParens 跳过配对的圆括号，其中的引用同样被记录
func (p *Parser) skipParens() {
	p.expect(token.LPAREN, "'('")
	depth := 1
	for depth > 0 && !p.isAtEnd() {
		switch p.peek().Type {
		case token.LPAREN:
			depth++
			p.advance()
		case token.RPAREN:
			depth--
			p.advance()
		case token.LBRACE, token.RBRACE, token.CLOSE_TAG, token.TEXT:
			return
		default:
			p.reference()
		}
	}
}
