// Package typedesc 解析类型描述文本（来自文档注释或 cast() 调用）
//
// 语法：
//
//	type     = single { "|" single }
//	single   = ( "array" { index } [ single ] | name [ generic ] ) { index }
//	index    = "[" [ "int" | "string" ] "]"
//	generic  = "<" actual { "," actual } ">"
//	actual   = "?" [ ( "extends" | "parent" ) class ] | class
//
// 旧语法 array[K]E 与新语法 E[K] 等价；单独的 array 表示 mixed[]。
package typedesc

import (
	"fmt"
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

// Resolver 将类名解析为类；解析失败时自行报告诊断并返回 nil
//
// 名称可能是相对名称、use 别名、self/parent 或当前模板的形式参数。
type Resolver interface {
	ResolveClass(name string, pos token.Position) *types.ClassType
}

// ResolverFunc 函数适配器
type ResolverFunc func(name string, pos token.Position) *types.ClassType

// ResolveClass 实现 Resolver
func (f ResolverFunc) ResolveClass(name string, pos token.Position) *types.ClassType {
	return f(name, pos)
}

// predefined 预定义类型名
var predefined = map[string]types.Type{
	"void":     types.Void,
	"null":     types.Null,
	"boolean":  types.Boolean,
	"bool":     types.Boolean,
	"int":      types.Int,
	"float":    types.Float,
	"string":   types.String,
	"resource": types.Resource,
	"mixed":    types.Mixed,
	"unknown":  types.Unknown,
	"guess":    types.Guess,
}

// Error 类型描述错误
type Error struct {
	Code string
	Args []interface{}

	reported bool // 已由 Resolver 报告
}

func (e *Error) Error() string {
	return diag.New(e.Code, token.Position{}, e.Args...).Message
}

// Parser 类型描述解析器
type Parser struct {
	u    *types.Universe
	r    Resolver
	sink diag.Sink
	pos  token.Position

	text string
	src  []rune
	i    int
}

// New 创建解析器；sink 为 nil 时丢弃诊断
func New(u *types.Universe, r Resolver, sink diag.Sink) *Parser {
	if sink == nil {
		sink = diag.Discard
	}
	return &Parser{u: u, r: r, sink: sink}
}

// Parse 解析类型描述；出错时报告诊断并返回 Unknown
func (p *Parser) Parse(text string, pos token.Position) types.Type {
	t, err := p.parse(text, pos)
	if err != nil {
		if e, ok := err.(*Error); ok && !e.reported {
			p.sink.Report(diag.New(e.Code, pos, e.Args...))
		}
		return types.Unknown
	}
	return t
}

// ParseType 解析类型描述并返回错误（不报告语法错误）
func (p *Parser) ParseType(text string) (types.Type, error) {
	return p.parse(text, token.Position{})
}

func (p *Parser) parse(text string, pos token.Position) (types.Type, error) {
	p.text = strings.TrimSpace(text)
	p.src = []rune(p.text)
	p.i = 0
	p.pos = pos

	if p.text == "" {
		return nil, p.syntax("empty type")
	}

	first, err := p.single()
	if err != nil {
		return nil, err
	}
	if p.peek() == '|' {
		for p.peek() == '|' {
			p.i++
			if _, err := p.single(); err != nil {
				return nil, err
			}
		}
		p.sink.Report(diag.New(diag.W0100, pos, p.text, first.String()))
	}
	p.skipSpace()
	if p.i < len(p.src) {
		return nil, p.syntax(fmt.Sprintf("unexpected %q", string(p.src[p.i:])))
	}
	return first, nil
}

func (p *Parser) syntax(detail string) *Error {
	return &Error{Code: diag.E0102, Args: []interface{}{p.text, detail}}
}

// ============================================================================
// 扫描
// ============================================================================

func (p *Parser) skipSpace() {
	for p.i < len(p.src) && (p.src[p.i] == ' ' || p.src[p.i] == '\t') {
		p.i++
	}
}

func (p *Parser) peek() rune {
	p.skipSpace()
	if p.i >= len(p.src) {
		return 0
	}
	return p.src[p.i]
}

func isNameStart(r rune) bool {
	return r == '_' || r == '\\' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= 0x80
}

func isNameChar(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9')
}

// name 扫描（可能带命名空间的）名称
func (p *Parser) name() string {
	p.skipSpace()
	start := p.i
	if p.i < len(p.src) && isNameStart(p.src[p.i]) {
		p.i++
		for p.i < len(p.src) && isNameChar(p.src[p.i]) {
			p.i++
		}
	}
	return string(p.src[start:p.i])
}

// word 预读一个名称而不移动位置
func (p *Parser) word() string {
	save := p.i
	w := p.name()
	p.i = save
	return w
}

// ============================================================================
// 语法
// ============================================================================

func (p *Parser) single() (types.Type, error) {
	var t types.Type
	if w := p.word(); strings.EqualFold(w, "array") {
		p.name()
		if w != "array" {
			p.sink.Report(diag.New(diag.N0100, p.pos, w, "array"))
		}
		idx, err := p.indexes()
		if err != nil {
			return nil, err
		}
		var elem types.Type = types.Mixed
		if isNameStart(p.peek()) {
			if elem, err = p.single(); err != nil {
				return nil, err
			}
		}
		if len(idx) == 0 {
			idx = []types.Type{types.Mixed}
		}
		t = p.wrap(idx, elem)
	} else {
		var err error
		if t, err = p.named(); err != nil {
			return nil, err
		}
	}

	idx, err := p.indexes()
	if err != nil {
		return nil, err
	}
	if len(idx) > 0 {
		t = p.wrap(idx, t)
	}
	return t, nil
}

// wrap 以外层在前的索引列表构造嵌套数组
func (p *Parser) wrap(idx []types.Type, elem types.Type) types.Type {
	for i := len(idx) - 1; i >= 0; i-- {
		elem = p.u.Array(idx[i], elem)
	}
	return elem
}

func (p *Parser) indexes() ([]types.Type, error) {
	var idx []types.Type
	for p.peek() == '[' {
		p.i++
		switch w := p.name(); w {
		case "":
			idx = append(idx, types.Mixed)
		case "int":
			idx = append(idx, types.Int)
		case "string":
			idx = append(idx, types.String)
		default:
			return nil, p.syntax(fmt.Sprintf("invalid array index %s", w))
		}
		if p.peek() != ']' {
			return nil, p.syntax("missing ]")
		}
		p.i++
	}
	return idx, nil
}

// named 预定义类型或类
func (p *Parser) named() (types.Type, error) {
	pos := p.pos
	n := p.name()
	if n == "" {
		if p.i < len(p.src) {
			return nil, p.syntax(fmt.Sprintf("unexpected %q", string(p.src[p.i])))
		}
		return nil, p.syntax("missing type name")
	}

	if t, ok := predefined[n]; ok {
		return t, nil
	}
	if n == "object" {
		return p.u.Object, nil
	}
	lower := strings.ToLower(n)
	if t, ok := predefined[lower]; ok {
		p.sink.Report(diag.New(diag.N0100, pos, n, lower))
		return t, nil
	}
	if lower == "object" {
		p.sink.Report(diag.New(diag.N0100, pos, n, lower))
		return p.u.Object, nil
	}

	c, err := p.class(n)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// class 解析类名及其可选的泛型实参
func (p *Parser) class(n string) (*types.ClassType, error) {
	c := p.r.ResolveClass(n, p.pos)
	if c == nil {
		return nil, &Error{Code: diag.E0100, Args: []interface{}{n}, reported: true}
	}

	if p.peek() != '<' {
		if c.IsTemplate() {
			return p.u.DefaultActualization(c), nil
		}
		return c, nil
	}
	p.i++

	var args []*types.ClassType
	for {
		a, err := p.actual()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.peek() == ',' {
			p.i++
			continue
		}
		break
	}
	if p.peek() != '>' {
		return nil, p.syntax("missing >")
	}
	p.i++

	switch {
	case c.IsParam:
		return nil, &Error{Code: diag.E0107, Args: []interface{}{c.Name}}
	case !c.IsTemplate():
		return nil, &Error{Code: diag.E0104, Args: []interface{}{c.Name}}
	case len(args) != len(c.Params):
		return nil, &Error{Code: diag.E0105, Args: []interface{}{c.Name, len(c.Params), len(args)}}
	}
	if param, bound := p.u.BoundViolation(c, args); param != nil {
		return nil, &Error{Code: diag.E0106, Args: []interface{}{args[indexOf(c.Params, param)], bound, param.Name}}
	}
	return p.u.Instance(c, args), nil
}

func indexOf(list []*types.ClassType, c *types.ClassType) int {
	for i, x := range list {
		if x == c {
			return i
		}
	}
	return 0
}

// actual 泛型实参：类或通配符
func (p *Parser) actual() (*types.ClassType, error) {
	if p.peek() == '?' {
		p.i++
		switch w := p.word(); w {
		case "extends", "parent":
			p.name()
			b, err := p.actualClass()
			if err != nil {
				return nil, err
			}
			return p.u.Wildcard(b, w == "parent"), nil
		}
		return p.u.Wildcard(nil, false), nil
	}
	return p.actualClass()
}

func (p *Parser) actualClass() (*types.ClassType, error) {
	n := p.name()
	if n == "" {
		return nil, p.syntax("missing class name")
	}
	lower := strings.ToLower(n)
	if lower == "object" {
		return p.u.Object, nil
	}
	if _, ok := predefined[lower]; ok {
		return nil, p.syntax(fmt.Sprintf("type argument %s is not a class", n))
	}
	return p.class(n)
}
