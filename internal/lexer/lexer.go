package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/token"
)

// ============================================================================
// Lexer - 词法分析器
// ============================================================================
//
// 将被分析语言的源代码转换为 Token 序列。
//
// 扫描有两种模式：
//   1. 文本模式：<?php 之前以及 ?> 之后的内容整体作为 TEXT token
//   2. 代码模式：普通的词法扫描
//
// 元代码 "/*." 与 ".*/" 对词法分析器透明：两者之间的内容按普通代码扫描，
// 这样 forward、pragma、泛型参数、throws 子句等可以写在注释中。
//
// 文档注释 "/** ... */" 生成 DOC_COMMENT token，其 Value 为注释全文，
// 由语句解析器关联到随后的声明。
//
// ============================================================================

// Lexer 词法分析器结构体
type Lexer struct {
	source   string        // 源代码字符串
	filename string        // 源文件名（用于错误报告）
	tokens   []token.Token // 已扫描的 Token 列表

	start     int // 当前 Token 的起始位置（字节偏移）
	current   int // 当前扫描位置（字节偏移）
	line      int // 当前行号（从1开始）
	column    int // 当前列号（从1开始）
	startLine int // 当前 Token 起始行
	startCol  int // 当前 Token 起始列

	inCode bool           // 是否处于 <?php ... ?> 之内
	inMeta bool           // 是否处于 /*. ... .*/ 之内
	metaAt token.Position // 最近一次进入元代码的位置

	errors []Error // 词法错误列表
}

// Error 表示词法分析错误
type Error struct {
	Pos     token.Position // 错误位置
	Message string         // 错误信息
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// New 创建一个新的词法分析器
func New(source, filename string) *Lexer {
	estimated := len(source) / 5
	if estimated < 16 {
		estimated = 16
	}
	return &Lexer{
		source:   source,
		filename: filename,
		tokens:   make([]token.Token, 0, estimated),
		line:     1,
		column:   1,
	}
}

// ScanTokens 扫描所有 tokens，最后一个 Token 总是 EOF
func (l *Lexer) ScanTokens() []token.Token {
	for !l.isAtEnd() {
		l.mark()
		if l.inCode {
			l.scanToken()
		} else {
			l.text()
		}
	}
	if l.inMeta {
		l.errors = append(l.errors, Error{Pos: l.metaAt, Message: i18n.T(i18n.ErrUnterminatedMeta)})
		l.mark()
		l.addToken(token.ILLEGAL)
	}
	l.mark()
	l.tokens = append(l.tokens, token.Token{Type: token.EOF, Pos: l.startPos()})
	return l.tokens
}

// Errors 返回所有词法错误
func (l *Lexer) Errors() []Error {
	return l.errors
}

// HasErrors 检查是否有错误
func (l *Lexer) HasErrors() bool {
	return len(l.errors) > 0
}

// ============================================================================
// 文本模式
// ============================================================================

// text 扫描 <?php 之前（或 ?> 之后）的文本块
func (l *Lexer) text() {
	idx := indexFold(l.source[l.current:], "<?php")
	end := len(l.source)
	if idx >= 0 {
		end = l.current + idx
	}
	for l.current < end {
		if l.advance() == '\n' {
			l.newLine()
		}
	}
	if l.current > l.start {
		l.addTokenWithValue(token.TEXT, l.source[l.start:l.current])
	}
	if idx >= 0 {
		l.skip(len("<?php"))
		l.inCode = true
	}
}

// ============================================================================
// 代码模式
// ============================================================================

func (l *Lexer) scanToken() {
	ch := l.advance()

	switch ch {
	case ' ', '\t', '\r':
		// 空白
	case '\n':
		l.newLine()

	case '(':
		l.addToken(token.LPAREN)
	case ')':
		l.addToken(token.RPAREN)
	case '{':
		l.addToken(token.LBRACE)
	case '}':
		l.addToken(token.RBRACE)
	case '[':
		l.addToken(token.LBRACKET)
	case ']':
		l.addToken(token.RBRACKET)
	case ',':
		l.addToken(token.COMMA)
	case ';':
		l.addToken(token.SEMICOLON)
	case '\\':
		l.addToken(token.BACKSLASH)
	case '@':
		l.addToken(token.AT)
	case '^':
		l.addToken(token.BIT_XOR)
	case '~':
		l.addToken(token.BIT_NOT)

	case '=':
		switch {
		case l.match('='):
			if l.match('=') {
				l.addToken(token.IDENTICAL)
			} else {
				l.addToken(token.EQ)
			}
		case l.match('>'):
			l.addToken(token.DOUBLE_ARROW)
		default:
			l.addToken(token.ASSIGN)
		}

	case '!':
		if l.match('=') {
			if l.match('=') {
				l.addToken(token.NOT_IDENTICAL)
			} else {
				l.addToken(token.NE)
			}
		} else {
			l.addToken(token.NOT)
		}

	case ':':
		if l.match(':') {
			l.addToken(token.DOUBLE_COLON)
		} else {
			l.addToken(token.COLON)
		}

	case '.':
		switch {
		case l.inMeta && l.peekByte() == '*' && l.peekNextByte() == '/':
			l.skip(2)
			l.inMeta = false
		case isDigit(l.peek()):
			l.number()
		case l.peekByte() == '.' && l.peekNextByte() == '.':
			l.skip(2)
			l.addToken(token.ELLIPSIS)
		case l.match('='):
			l.addToken(token.CONCAT_ASSIGN)
		default:
			l.addToken(token.DOT)
		}

	case '+':
		switch {
		case l.match('+'):
			l.addToken(token.INCREMENT)
		case l.match('='):
			l.addToken(token.PLUS_ASSIGN)
		default:
			l.addToken(token.PLUS)
		}

	case '-':
		switch {
		case l.match('-'):
			l.addToken(token.DECREMENT)
		case l.match('='):
			l.addToken(token.MINUS_ASSIGN)
		case l.match('>'):
			l.addToken(token.ARROW)
		default:
			l.addToken(token.MINUS)
		}

	case '*':
		if l.match('=') {
			l.addToken(token.STAR_ASSIGN)
		} else {
			l.addToken(token.STAR)
		}

	case '/':
		switch {
		case l.match('/'):
			l.lineComment()
		case l.match('*'):
			l.blockComment()
		case l.match('='):
			l.addToken(token.SLASH_ASSIGN)
		default:
			l.addToken(token.SLASH)
		}

	case '#':
		l.lineComment()

	case '%':
		l.addToken(token.PERCENT)

	case '<':
		switch {
		case l.match('='):
			l.addToken(token.LE)
		case l.match('<'):
			l.addToken(token.LEFT_SHIFT)
		default:
			l.addToken(token.LT)
		}

	case '>':
		switch {
		case l.match('='):
			l.addToken(token.GE)
		case l.match('>'):
			l.addToken(token.RIGHT_SHIFT)
		default:
			l.addToken(token.GT)
		}

	case '&':
		if l.match('&') {
			l.addToken(token.AND)
		} else {
			l.addToken(token.BIT_AND)
		}

	case '|':
		if l.match('|') {
			l.addToken(token.OR)
		} else {
			l.addToken(token.BIT_OR)
		}

	case '?':
		switch {
		case l.match('>'):
			l.closeTag()
		case l.match('?'):
			l.addToken(token.NULL_COALESCE)
		default:
			l.addToken(token.QUESTION)
		}

	case '"', '\'':
		l.string(ch)

	case '$':
		l.variable()

	default:
		switch {
		case isDigit(ch):
			l.number()
		case isAlpha(ch):
			l.identifier()
		default:
			l.error(i18n.T(i18n.ErrUnexpectedChar, ch))
		}
	}
}

// closeTag 处理 ?>：紧随其后的单个换行属于标签本身
func (l *Lexer) closeTag() {
	l.addToken(token.CLOSE_TAG)
	if l.peekByte() == '\r' {
		l.advanceByte()
	}
	if l.peekByte() == '\n' {
		l.advanceByte()
		l.newLine()
	}
	l.inCode = false
}

// ============================================================================
// 注释
// ============================================================================

// lineComment 行注释在换行或 ?> 处结束
func (l *Lexer) lineComment() {
	for !l.isAtEnd() && l.peekByte() != '\n' {
		if l.peekByte() == '?' && l.peekNextByte() == '>' {
			return
		}
		l.advance()
	}
}

// blockComment 处理 /* */、/** */ 与元代码起始 /*.
func (l *Lexer) blockComment() {
	if l.peekByte() == '.' {
		l.advanceByte()
		l.inMeta = true
		l.metaAt = l.startPos()
		return
	}
	doc := l.peekByte() == '*' && l.peekNextByte() != '/'

	for !l.isAtEnd() {
		if l.peekByte() == '*' && l.peekNextByte() == '/' {
			l.skip(2)
			if doc {
				l.addTokenWithValue(token.DOC_COMMENT, l.source[l.start:l.current])
			}
			return
		}
		if l.advance() == '\n' {
			l.newLine()
		}
	}
	l.error(i18n.T(i18n.ErrUnterminatedComment))
}

// ============================================================================
// 字面量
// ============================================================================

// string 扫描单引号或双引号字符串；单引号只识别 \' 与 \\ 转义
func (l *Lexer) string(quote rune) {
	var sb strings.Builder
	for !l.isAtEnd() {
		ch := l.advance()
		switch ch {
		case quote:
			l.addTokenWithValue(token.STRING, sb.String())
			return
		case '\n':
			l.newLine()
			sb.WriteRune(ch)
		case '\\':
			if l.isAtEnd() {
				continue
			}
			esc := l.advance()
			if quote == '\'' {
				if esc != '\'' && esc != '\\' {
					sb.WriteByte('\\')
				}
				sb.WriteRune(esc)
				continue
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '0':
				sb.WriteByte(0)
			case '\\', '"', '$':
				sb.WriteRune(esc)
			default:
				sb.WriteByte('\\')
				sb.WriteRune(esc)
			}
		default:
			sb.WriteRune(ch)
		}
	}
	l.error(i18n.T(i18n.ErrUnterminatedString))
}

// variable 扫描 $name 与 $this
func (l *Lexer) variable() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	literal := l.source[l.start:l.current]
	switch literal {
	case "$":
		l.error(i18n.T(i18n.ErrExpectedVarName))
	case "$this":
		l.addToken(token.THIS)
	default:
		l.addToken(token.VARIABLE)
	}
}

// number 扫描十进制、十六进制、二进制、八进制整数与浮点数
func (l *Lexer) number() {
	first := l.source[l.start]

	if first == '0' && (l.peekByte() == 'x' || l.peekByte() == 'X' || l.peekByte() == 'b' || l.peekByte() == 'B') {
		l.advanceByte()
		for isHexDigit(l.peek()) || l.peekByte() == '_' {
			l.advanceByte()
		}
		l.intToken(0)
		return
	}

	isFloat := first == '.'
	for isDigit(l.peek()) || l.peekByte() == '_' {
		l.advanceByte()
	}
	if !isFloat && l.peekByte() == '.' && isDigit(rune(l.peekNextByte())) {
		isFloat = true
		l.advanceByte()
		for isDigit(l.peek()) {
			l.advanceByte()
		}
	}
	if l.peekByte() == 'e' || l.peekByte() == 'E' {
		isFloat = true
		l.advanceByte()
		if l.peekByte() == '+' || l.peekByte() == '-' {
			l.advanceByte()
		}
		for isDigit(l.peek()) {
			l.advanceByte()
		}
	}

	if isFloat {
		literal := strings.ReplaceAll(l.source[l.start:l.current], "_", "")
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			l.error(i18n.T(i18n.ErrInvalidNumber, literal))
			return
		}
		l.addTokenWithValue(token.FLOAT, v)
		return
	}
	if first == '0' && l.current-l.start > 1 {
		l.intToken(8)
		return
	}
	l.intToken(10)
}

func (l *Lexer) intToken(base int) {
	literal := strings.ReplaceAll(l.source[l.start:l.current], "_", "")
	if base == 8 {
		literal = "0o" + literal[1:]
		base = 0
	}
	v, err := strconv.ParseInt(literal, base, 64)
	if err != nil {
		// 超出整数范围时按浮点数处理
		if f, ferr := strconv.ParseFloat(literal, 64); ferr == nil && base == 10 {
			l.addTokenWithValue(token.FLOAT, f)
			return
		}
		l.error(i18n.T(i18n.ErrInvalidNumber, literal))
		return
	}
	l.addTokenWithValue(token.INT, v)
}

// identifier 扫描标识符或关键字
func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	l.addToken(token.LookupIdent(l.source[l.start:l.current]))
}

// ============================================================================
// 字符操作
// ============================================================================

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) advance() rune {
	if l.current >= len(l.source) {
		return 0
	}
	b := l.source[l.current]
	if b < utf8.RuneSelf {
		l.current++
		l.column++
		return rune(b)
	}
	r, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	l.column++
	return r
}

func (l *Lexer) advanceByte() {
	l.current++
	l.column++
}

func (l *Lexer) skip(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advanceByte()
	}
}

func (l *Lexer) peek() rune {
	if l.current >= len(l.source) {
		return 0
	}
	b := l.source[l.current]
	if b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

func (l *Lexer) peekByte() byte {
	if l.current >= len(l.source) {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNextByte() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) match(expected rune) bool {
	if l.current >= len(l.source) || rune(l.source[l.current]) != expected {
		return false
	}
	l.current++
	l.column++
	return true
}

// ============================================================================
// 位置
// ============================================================================

func (l *Lexer) mark() {
	l.start = l.current
	l.startLine = l.line
	l.startCol = l.column
}

func (l *Lexer) newLine() {
	l.line++
	l.column = 1
}

func (l *Lexer) startPos() token.Position {
	return token.Position{
		Filename: l.filename,
		Line:     l.startLine,
		Column:   l.startCol,
		Offset:   l.start,
	}
}

// ============================================================================
// Token 生成
// ============================================================================

func (l *Lexer) addToken(t token.TokenType) {
	l.tokens = append(l.tokens, token.New(t, l.source[l.start:l.current], l.startPos()))
}

func (l *Lexer) addTokenWithValue(t token.TokenType, value interface{}) {
	l.tokens = append(l.tokens, token.NewWithValue(t, l.source[l.start:l.current], value, l.startPos()))
}

func (l *Lexer) error(message string) {
	l.errors = append(l.errors, Error{Pos: l.startPos(), Message: message})
	l.addToken(token.ILLEGAL)
}

// ============================================================================
// 字符分类
// ============================================================================

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_' ||
		(ch >= utf8.RuneSelf && unicode.IsLetter(ch))
}

func isAlphaNumeric(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}

// indexFold 大小写不敏感地查找 ASCII 子串
func indexFold(s, sub string) int {
	n := len(sub)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], sub) {
			return i
		}
	}
	return -1
}
