// Package docblock 解析 /** ... */ 文档注释中的类型与可见性提示
//
// 识别的标签：
//
//	@param Type [&][...]$name [描述]
//	@return Type [描述]
//	@var Type [描述]
//	@throws Class [, Class ...]
//	@triggers E_XXX [, E_XXX ...]
//	@private / @access private
//
// 其他标签保留在 Tags 中但不解释。
package docblock

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/token"
)

// Tag 一个带类型的标签
type Tag struct {
	Type string // 类型描述文本
	Pos  token.Position
}

// Param @param 标签
type Param struct {
	Tag
	Name     string // 不含 $
	ByRef    bool
	Variadic bool
}

// DocBlock 解析后的文档注释
type DocBlock struct {
	Description string
	Params      map[string]*Param
	ParamOrder  []string
	Return      *Tag
	Var         *Tag
	Throws      []Tag // Type 为类名
	Triggers    []Tag // Type 为错误级别名
	Private     bool
	Tags        map[string][]string // 其他标签的原始文本
	Pos         token.Position
}

// Param 按名称取 @param
func (d *DocBlock) Param(name string) *Param {
	if d == nil {
		return nil
	}
	return d.Params[name]
}

// Parse 解析文档注释文本（包括 /** 与 */），pos 为注释起始位置
func Parse(text string, pos token.Position) *DocBlock {
	d := &DocBlock{
		Params: make(map[string]*Param),
		Tags:   make(map[string][]string),
		Pos:    pos,
	}
	body := strings.TrimPrefix(text, "/**")
	body = strings.TrimSuffix(body, "*/")

	var desc []string
	for i, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line == "" {
			continue
		}
		lpos := pos
		lpos.Line += i
		if i > 0 {
			lpos.Column = 1
		}
		if !strings.HasPrefix(line, "@") {
			if len(d.Params) == 0 && d.Return == nil && d.Var == nil {
				desc = append(desc, line)
			}
			continue
		}
		d.tag(line, lpos)
	}
	d.Description = strings.Join(desc, " ")
	return d
}

func (d *DocBlock) tag(line string, pos token.Position) {
	name, rest := cut(line[1:])
	switch name {
	case "param":
		t, rest := typeText(rest)
		p := &Param{Tag: Tag{Type: t, Pos: pos}}
		v, _ := cut(rest)
		if strings.HasPrefix(v, "&") {
			p.ByRef = true
			v = v[1:]
		}
		if strings.HasPrefix(v, "...") {
			p.Variadic = true
			v = v[3:]
		}
		if !strings.HasPrefix(v, "$") {
			// 只有变量名没有类型的写法：@param $x
			if strings.HasPrefix(t, "$") {
				p.Name = strings.TrimPrefix(t, "$")
				p.Type = ""
				d.addParam(p)
			}
			return
		}
		p.Name = v[1:]
		d.addParam(p)
	case "return":
		t, _ := typeText(rest)
		d.Return = &Tag{Type: t, Pos: pos}
	case "var":
		t, _ := typeText(rest)
		d.Var = &Tag{Type: t, Pos: pos}
	case "throws":
		for _, c := range list(rest) {
			d.Throws = append(d.Throws, Tag{Type: c, Pos: pos})
		}
	case "triggers":
		for _, e := range list(rest) {
			d.Triggers = append(d.Triggers, Tag{Type: e, Pos: pos})
		}
	case "private":
		d.Private = true
	case "access":
		if v, _ := cut(rest); v == "private" {
			d.Private = true
		}
	default:
		d.Tags[name] = append(d.Tags[name], rest)
	}
}

func (d *DocBlock) addParam(p *Param) {
	if _, ok := d.Params[p.Name]; !ok {
		d.ParamOrder = append(d.ParamOrder, p.Name)
	}
	d.Params[p.Name] = p
}

// cut 切出第一个空白分隔的词
func cut(s string) (string, string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:])
	}
	return s, ""
}

// typeText 切出类型描述，泛型尖括号内的空白不作为分隔
func typeText(s string) (string, string) {
	s = strings.TrimSpace(s)
	depth := 0
	for i, r := range s {
		switch r {
		case '<', '[':
			depth++
		case '>', ']':
			depth--
		case ' ', '\t':
			if depth <= 0 {
				// 允许 "A | B" 写法
				if next := strings.TrimSpace(s[i:]); strings.HasPrefix(next, "|") || strings.HasSuffix(strings.TrimSpace(s[:i]), "|") {
					continue
				}
				return s[:i], strings.TrimSpace(s[i:])
			}
		}
	}
	return s, ""
}

// list 逗号分隔的名称列表，其后的描述文本被忽略
func list(s string) []string {
	var out []string
	for {
		w, rest := cut(s)
		if w == "" {
			break
		}
		for _, n := range strings.Split(w, ",") {
			if n != "" {
				out = append(out, n)
			}
		}
		if !strings.HasSuffix(w, ",") && !strings.HasPrefix(rest, ",") {
			break
		}
		s = strings.TrimPrefix(rest, ",")
	}
	return out
}
