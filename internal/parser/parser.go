// Package parser 解析源单元中的声明语句并登记到全局符号表
//
// 解析器只理解声明：类、接口、函数、常量、use、namespace、declare、
// require 以及编译指令；函数体与其他语句被扫描而不建立语法树，
// 扫描时收集对类、函数、常量与成员的引用。
//
// 致命错误通过 panic(*fatalError) 展开到源单元边界，报告后中止该单元。
// 遇到 suspend 编译指令时解析器记录现场并加入全局挂起队列，
// 由 PackageParser 在第一遍结束后恢复。
package parser

import (
	"fmt"
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/docblock"
	"github.com/rvtraveller/phplint/internal/globals"
	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/lexer"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/typedesc"
	"github.com/rvtraveller/phplint/internal/types"
	"go.uber.org/zap"
)

// Parser 单个源单元的解析器
type Parser struct {
	pp   *PackageParser
	g    *globals.Globals
	u    *types.Universe
	unit *globals.Unit
	log  *zap.Logger

	tokens  []token.Token
	docs    map[int]token.Token // token 下标 -> 紧邻其前的文档注释
	current int
	lexErrs []lexer.Error

	td *typedesc.Parser

	// 作用域
	ns     string
	uses   *useTable
	code   bool // 已出现过 declare 与 namespace 之外的语句
	nsSeen bool
	depth  int // 复合语句嵌套层数
	cls    *classState
	fn     *funcState

	suspended bool
	aborted   bool
}

// fatalError 致命错误，展开到源单元边界
type fatalError struct {
	d *diag.Diagnostic
}

func newParser(pp *PackageParser, unit *globals.Unit, src string) *Parser {
	l := lexer.New(src, unit.Path)
	raw := l.ScanTokens()

	p := &Parser{
		pp:      pp,
		g:       pp.g,
		u:       pp.g.U,
		unit:    unit,
		log:     pp.log.With(zap.String("unit", unit.Path)),
		docs:    make(map[int]token.Token),
		lexErrs: l.Errors(),
		uses:    newUseTable(),
	}
	p.tokens = make([]token.Token, 0, len(raw))
	var doc *token.Token
	for i := range raw {
		if raw[i].Type == token.DOC_COMMENT {
			doc = &raw[i]
			continue
		}
		if doc != nil {
			p.docs[len(p.tokens)] = *doc
			doc = nil
		}
		p.tokens = append(p.tokens, raw[i])
	}
	p.td = typedesc.New(p.u, p, p.g.Sink)
	return p
}

// ============================================================================
// 运行与恢复
// ============================================================================

// run 第一遍解析
func (p *Parser) run() {
	p.unit.Parsing = true
	p.log.Debug("unit start", zap.Int("tokens", len(p.tokens)))
	p.guard(func() {
		if len(p.lexErrs) > 0 {
			e := p.lexErrs[0]
			panic(&fatalError{diag.New(diag.E0003, e.Pos, e.Message)})
		}
		p.statements()
	})
	p.afterPass()
}

// Resume 从 suspend 编译指令处继续解析
func (p *Parser) Resume() {
	p.suspended = false
	p.log.Debug("unit resumed", zap.Int("at", p.current))
	p.guard(func() {
		if p.cls != nil {
			p.members()
			if p.suspended {
				return
			}
			p.closeClass()
		}
		p.statements()
	})
	p.afterPass()
}

func (p *Parser) afterPass() {
	if p.suspended {
		p.g.Suspend(p)
		return
	}
	p.finishUnit()
}

// guard 执行 fn，把致命错误转换为诊断并中止源单元
func (p *Parser) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(*fatalError)
			if !ok {
				panic(r)
			}
			p.g.Sink.Report(fe.d)
			p.abort()
		}
	}()
	fn()
}

// abort 中止源单元：未结束的类视为已完成以免级联报错
func (p *Parser) abort() {
	if p.cls != nil {
		p.cls.c.Complete = true
		p.cls = nil
	}
	p.fn = nil
	p.suspended = false
	p.aborted = true
	p.current = len(p.tokens) - 1
	p.log.Debug("unit aborted")
}

func (p *Parser) finishUnit() {
	if !p.aborted {
		p.flushUses()
	}
	p.unit.Parsing = false
	p.unit.Done = true
	p.log.Debug("unit done")
}

// ============================================================================
// 辅助方法
// ============================================================================

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekAt(n int) token.Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *Parser) peekNext() token.Token {
	return p.peekAt(1)
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t token.TokenType) bool {
	return p.peek().Type == t
}

func (p *Parser) checkAny(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			return true
		}
	}
	return false
}

func (p *Parser) checkWord(word string) bool {
	return p.peek().Is(word)
}

func (p *Parser) match(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect 消耗给定类型的 token，否则以致命错误中止
func (p *Parser) expect(t token.TokenType, what string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	p.fatalExpected(what)
	return token.Token{}
}

// expectName 消耗一个名称：标识符或关键字（成员名可以是关键字）
func (p *Parser) expectName(what string) token.Token {
	t := p.peek()
	if t.Type == token.IDENT || token.IsKeyword(t.Type) && t.Type != token.THIS {
		return p.advance()
	}
	p.fatalExpected(what)
	return token.Token{}
}

func (p *Parser) fatal(code string, pos token.Position, args ...interface{}) {
	panic(&fatalError{diag.New(code, pos, args...)})
}

func (p *Parser) fatalExpected(what string) {
	p.fatal(diag.E0001, p.peek().Pos, what, describe(p.peek()))
}

func (p *Parser) fatalUnexpected() {
	p.fatal(diag.E0002, p.peek().Pos, describe(p.peek()))
}

func (p *Parser) report(code string, pos token.Position, args ...interface{}) {
	p.g.Report(code, pos, args...)
}

// endStatement 语句以 ; 结束；?> 同样结束语句，留给文本块处理
func (p *Parser) endStatement() {
	if p.match(token.SEMICOLON) || p.check(token.CLOSE_TAG) || p.isAtEnd() {
		return
	}
	p.fatalExpected("';'")
}

// docAt 返回紧邻下标 i 处 token 之前的文档注释
func (p *Parser) docAt(i int) *docblock.DocBlock {
	t, ok := p.docs[i]
	if !ok {
		return nil
	}
	text, _ := t.Value.(string)
	if text == "" {
		text = t.Literal
	}
	return docblock.Parse(text, t.Pos)
}

func describe(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return i18n.T(i18n.WordEOF)
	case token.TEXT:
		return i18n.T(i18n.WordText)
	case token.STRING:
		return fmt.Sprintf("%q", t.Value)
	}
	return "'" + t.Literal + "'"
}

// where 描述声明位置；内建符号没有位置
func where(pos token.Position) string {
	if !pos.IsValid() {
		return "builtin"
	}
	return pos.String()
}

// qualify 以当前命名空间限定一个声明名称
func (p *Parser) qualify(name string) string {
	if p.ns == "" {
		return name
	}
	return p.ns + `\` + name
}

func lower(s string) string {
	return strings.ToLower(s)
}
