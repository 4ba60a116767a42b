package parser

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/docblock"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

// ============================================================================
// 内联类型
// ============================================================================
//
// 源代码中的类型（参数、返回值、属性，包括元代码 /*. .*/ 中的类型）
// 先被收集为类型描述文本，再交给 typedesc 解析：
//
//	?Type            可空标记被忽略
//	Name<A, B>       泛型实参，>> 按两个 > 处理
//	Name[int][]      新式数组
//	array[K]Elem     旧式数组
//	A|B              多重类型
//
// ============================================================================

// isTypeStart 当前 token 能否开始一个内联类型
func (p *Parser) isTypeStart() bool {
	return p.checkAny(token.IDENT, token.BACKSLASH, token.QUESTION, token.STATIC)
}

// parseType 读取并解析一个内联类型；错误已报告时返回 Unknown
func (p *Parser) parseType() types.Type {
	text, pos := p.typeText()
	return p.td.Parse(text, pos)
}

// parseClass 读取一个应当是类的内联类型
//
// 解析失败（错误已报告）时返回 nil；解析得到类以外的类型时 notClass 为 true，
// 由调用方报告。
func (p *Parser) parseClass() (c *types.ClassType, text string, pos token.Position, notClass bool) {
	text, pos = p.typeText()
	t := p.td.Parse(text, pos)
	if c, ok := t.(*types.ClassType); ok {
		return c, text, pos, false
	}
	return nil, text, pos, !types.IsUnknown(t)
}

func (p *Parser) typeText() (string, token.Position) {
	pos := p.peek().Pos
	var sb strings.Builder
	p.match(token.QUESTION)
	p.singleType(&sb)
	for p.check(token.BIT_OR) {
		p.advance()
		sb.WriteByte('|')
		p.match(token.QUESTION)
		p.singleType(&sb)
	}
	return sb.String(), pos
}

func (p *Parser) singleType(sb *strings.Builder) {
	var name string
	if p.match(token.STATIC) {
		name = "static"
	} else {
		name, _ = p.qualifiedName("type")
	}
	writeWord(sb, name)
	if p.check(token.LT) {
		p.genericText(sb)
	}
	brackets := false
	for p.check(token.LBRACKET) {
		brackets = true
		p.advance()
		sb.WriteByte('[')
		for !p.check(token.RBRACKET) {
			if !p.check(token.IDENT) {
				p.fatalExpected("']'")
			}
			sb.WriteString(p.advance().Literal)
		}
		p.advance()
		sb.WriteByte(']')
	}
	// 旧语法 array[K]E
	if brackets && strings.EqualFold(name, "array") &&
		p.checkAny(token.IDENT, token.BACKSLASH) && p.peekNext().Type != token.LPAREN {
		p.singleType(sb)
	}
}

// genericText 读取 <...>；只属于外层的半个 >> 留在 token 流中
func (p *Parser) genericText(sb *strings.Builder) {
	depth := 0
	for {
		t := p.peek()
		switch t.Type {
		case token.LT:
			depth++
			sb.WriteByte('<')
			p.advance()
		case token.GT:
			depth--
			sb.WriteByte('>')
			p.advance()
		case token.RIGHT_SHIFT:
			if depth == 1 {
				sb.WriteByte('>')
				t.Type = token.GT
				t.Literal = ">"
				t.Pos.Column++
				t.Pos.Offset++
				p.tokens[p.current] = t
				depth--
			} else {
				sb.WriteString(">>")
				depth -= 2
				p.advance()
			}
		case token.COMMA:
			sb.WriteString(", ")
			p.advance()
		case token.QUESTION:
			sb.WriteByte('?')
			p.advance()
		case token.EXTENDS:
			sb.WriteString(" extends")
			p.advance()
		case token.IDENT, token.BACKSLASH:
			name, _ := p.qualifiedName("type")
			writeWord(sb, name)
		default:
			p.fatalExpected("'>'")
		}
		if depth <= 0 {
			return
		}
	}
}

// writeWord 写入一个名称，与前面的名称或 ? 之间留一个空格
func writeWord(sb *strings.Builder, word string) {
	if s := sb.String(); s != "" {
		last := s[len(s)-1]
		if last == '?' || last == '_' || isWordByte(last) {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(word)
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b >= 0x80
}

// ============================================================================
// 文档注释中的类型
// ============================================================================

// withDoc 合并内联类型与文档注释中的类型；两者都给出时必须一致
func (p *Parser) withDoc(what string, inline types.Type, tag *docblock.Tag) types.Type {
	if tag == nil || tag.Type == "" {
		return inline
	}
	dt := p.td.Parse(tag.Type, tag.Pos)
	if inline == nil {
		return dt
	}
	if !types.IsUnknown(inline) && !types.IsUnknown(dt) && !inline.Equals(dt) {
		p.report(diag.E0404, tag.Pos, what, inline, dt)
	}
	return inline
}
