package token

import (
	"fmt"
	"strings"
)

// ============================================================================
// Token 类型定义
// ============================================================================
//
// TokenType 使用 iota 自动编号，按类别分组：
// 1. 特殊标记（ILLEGAL, EOF, TEXT, DOC_COMMENT）
// 2. 字面量（标识符、变量、数字、字符串）
// 3. 运算符（算术、比较、逻辑、位运算）
// 4. 分隔符（括号、逗号、分号等）
// 5. 关键字（声明、访问控制、控制流等）
//
// 被分析语言的关键字大小写不敏感，类型名（int、string、array ...）
// 以及 forward / pragma / throws 等元代码词不是关键字，而是 IDENT，
// 由语句解析器按上下文识别。
//
// ============================================================================

// TokenType 表示 Token 的类型
type TokenType int

const (
	// ----------------------------------------------------------
	// 特殊标记
	// ----------------------------------------------------------
	ILLEGAL     TokenType = iota // 非法字符
	EOF                          // 文件结束
	TEXT                         // <?php ... ?> 之外的文本块
	CLOSE_TAG                    // ?>
	DOC_COMMENT                  // /** ... */

	// ----------------------------------------------------------
	// 字面量
	// ----------------------------------------------------------
	IDENT    // 标识符
	VARIABLE // 变量 ($开头)
	INT      // 整数字面量
	FLOAT    // 浮点数字面量
	STRING   // 字符串字面量

	// ----------------------------------------------------------
	// 算术与赋值运算符
	// ----------------------------------------------------------
	PLUS          // +
	MINUS         // -
	STAR          // *
	SLASH         // /
	PERCENT       // %
	ASSIGN        // =
	PLUS_ASSIGN   // +=
	MINUS_ASSIGN  // -=
	STAR_ASSIGN   // *=
	SLASH_ASSIGN  // /=
	CONCAT_ASSIGN // .=
	INCREMENT     // ++
	DECREMENT     // --

	// ----------------------------------------------------------
	// 比较运算符
	// ----------------------------------------------------------
	EQ            // ==
	NE            // !=
	IDENTICAL     // ===
	NOT_IDENTICAL // !==
	LT            // <
	LE            // <=
	GT            // >
	GE            // >=

	// ----------------------------------------------------------
	// 逻辑运算符
	// ----------------------------------------------------------
	AND // &&
	OR  // ||
	NOT // !

	// ----------------------------------------------------------
	// 位运算符
	// ----------------------------------------------------------
	BIT_AND     // &
	BIT_OR      // |
	BIT_XOR     // ^
	BIT_NOT     // ~
	LEFT_SHIFT  // <<
	RIGHT_SHIFT // >>

	// ----------------------------------------------------------
	// 分隔符
	// ----------------------------------------------------------
	LPAREN        // (
	RPAREN        // )
	LBRACE        // {
	RBRACE        // }
	LBRACKET      // [
	RBRACKET      // ]
	COMMA         // ,
	DOT           // . (字符串连接)
	SEMICOLON     // ;
	COLON         // :
	QUESTION      // ?
	ARROW         // ->
	DOUBLE_ARROW  // =>
	DOUBLE_COLON  // ::
	AT            // @
	BACKSLASH     // \ (命名空间分隔符)
	ELLIPSIS      // ...
	NULL_COALESCE // ??

	// ----------------------------------------------------------
	// 关键字
	// ----------------------------------------------------------
	keyword_beg // 关键字起始标记（不是实际 token）

	ABSTRACT     // abstract
	AS           // as
	CATCH        // catch
	CLASS        // class
	CONST        // const
	DECLARE      // declare
	EXTENDS      // extends
	FINAL        // final
	FUNCTION     // function
	IMPLEMENTS   // implements
	INCLUDE      // include
	INCLUDE_ONCE // include_once
	INSTANCEOF   // instanceof
	INTERFACE    // interface
	NAMESPACE    // namespace
	NEW          // new
	PRIVATE      // private
	PROTECTED    // protected
	PUBLIC       // public
	REQUIRE      // require
	REQUIRE_ONCE // require_once
	RETURN       // return
	STATIC       // static
	THIS         // $this (特殊处理)
	THROW        // throw
	USE          // use
	VAR          // var

	keyword_end // 关键字结束标记（不是实际 token）
)

// ============================================================================
// Token 类型名称映射
// ============================================================================

var tokenNames = map[TokenType]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	TEXT:        "TEXT",
	CLOSE_TAG:   "?>",
	DOC_COMMENT: "DOC_COMMENT",

	IDENT:    "IDENT",
	VARIABLE: "VARIABLE",
	INT:      "INT",
	FLOAT:    "FLOAT",
	STRING:   "STRING",

	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	PERCENT:       "%",
	ASSIGN:        "=",
	PLUS_ASSIGN:   "+=",
	MINUS_ASSIGN:  "-=",
	STAR_ASSIGN:   "*=",
	SLASH_ASSIGN:  "/=",
	CONCAT_ASSIGN: ".=",
	INCREMENT:     "++",
	DECREMENT:     "--",

	EQ:            "==",
	NE:            "!=",
	IDENTICAL:     "===",
	NOT_IDENTICAL: "!==",
	LT:            "<",
	LE:            "<=",
	GT:            ">",
	GE:            ">=",

	AND: "&&",
	OR:  "||",
	NOT: "!",

	BIT_AND:     "&",
	BIT_OR:      "|",
	BIT_XOR:     "^",
	BIT_NOT:     "~",
	LEFT_SHIFT:  "<<",
	RIGHT_SHIFT: ">>",

	LPAREN:        "(",
	RPAREN:        ")",
	LBRACE:        "{",
	RBRACE:        "}",
	LBRACKET:      "[",
	RBRACKET:      "]",
	COMMA:         ",",
	DOT:           ".",
	SEMICOLON:     ";",
	COLON:         ":",
	QUESTION:      "?",
	ARROW:         "->",
	DOUBLE_ARROW:  "=>",
	DOUBLE_COLON:  "::",
	AT:            "@",
	BACKSLASH:     "\\",
	ELLIPSIS:      "...",
	NULL_COALESCE: "??",

	ABSTRACT:     "abstract",
	AS:           "as",
	CATCH:        "catch",
	CLASS:        "class",
	CONST:        "const",
	DECLARE:      "declare",
	EXTENDS:      "extends",
	FINAL:        "final",
	FUNCTION:     "function",
	IMPLEMENTS:   "implements",
	INCLUDE:      "include",
	INCLUDE_ONCE: "include_once",
	INSTANCEOF:   "instanceof",
	INTERFACE:    "interface",
	NAMESPACE:    "namespace",
	NEW:          "new",
	PRIVATE:      "private",
	PROTECTED:    "protected",
	PUBLIC:       "public",
	REQUIRE:      "require",
	REQUIRE_ONCE: "require_once",
	RETURN:       "return",
	STATIC:       "static",
	THIS:         "$this",
	THROW:        "throw",
	USE:          "use",
	VAR:          "var",
}

// ============================================================================
// 关键字查找表
// ============================================================================

var keywords = map[string]TokenType{
	"abstract":     ABSTRACT,
	"as":           AS,
	"catch":        CATCH,
	"class":        CLASS,
	"const":        CONST,
	"declare":      DECLARE,
	"extends":      EXTENDS,
	"final":        FINAL,
	"function":     FUNCTION,
	"implements":   IMPLEMENTS,
	"include":      INCLUDE,
	"include_once": INCLUDE_ONCE,
	"instanceof":   INSTANCEOF,
	"interface":    INTERFACE,
	"namespace":    NAMESPACE,
	"new":          NEW,
	"private":      PRIVATE,
	"protected":    PROTECTED,
	"public":       PUBLIC,
	"require":      REQUIRE,
	"require_once": REQUIRE_ONCE,
	"return":       RETURN,
	"static":       STATIC,
	"throw":        THROW,
	"use":          USE,
	"var":          VAR,
}

// LookupIdent 查找标识符是否为关键字（大小写不敏感）
func LookupIdent(ident string) TokenType {
	switch len(ident) {
	case 2:
		if strings.EqualFold(ident, "as") {
			return AS
		}
		return IDENT
	case 3:
		switch strings.ToLower(ident) {
		case "new":
			return NEW
		case "use":
			return USE
		case "var":
			return VAR
		}
		return IDENT
	}
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword 判断 TokenType 是否为关键字
func IsKeyword(t TokenType) bool {
	return t > keyword_beg && t < keyword_end
}

// String 返回 TokenType 的字符串表示
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// ============================================================================
// Position - 源代码位置
// ============================================================================

// Position 表示源代码中的位置
type Position struct {
	Filename string // 文件名
	Line     int    // 行号 (从1开始)
	Column   int    // 列号 (从1开始)
	Offset   int    // 字节偏移量 (从0开始)
}

// String 返回位置的字符串表示，格式为 "filename:line:column"
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid 检查位置是否有效
func (p Position) IsValid() bool {
	return p.Line > 0
}

// ============================================================================
// Token
// ============================================================================

// Token 词法单元
type Token struct {
	Type    TokenType   // 类型
	Literal string      // 源代码中的原始文本
	Value   interface{} // 解码后的值（字符串内容、数字、文档注释文本）
	Pos     Position    // 起始位置
}

// New 创建新的 Token
func New(t TokenType, literal string, pos Position) Token {
	return Token{Type: t, Literal: literal, Pos: pos}
}

// NewWithValue 创建带解码值的 Token
func NewWithValue(t TokenType, literal string, value interface{}, pos Position) Token {
	return Token{Type: t, Literal: literal, Value: value, Pos: pos}
}

// String 返回 Token 的字符串表示
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Type, t.Literal, t.Pos)
}

// Is 判断 Token 是否为给定的上下文词（大小写不敏感的 IDENT）
func (t Token) Is(word string) bool {
	return t.Type == IDENT && strings.EqualFold(t.Literal, word)
}
