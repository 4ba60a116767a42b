// Package builtins 提供预加载的内建环境：内建类、函数与常量
//
// 环境在 Load 之后只读，解析器只按名称查询。
package builtins

import (
	"fmt"
	"strings"

	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/typedesc"
	"github.com/rvtraveller/phplint/internal/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Function 内建函数
type Function struct {
	Name string
	Sig  *types.Signature
}

// Constant 内建常量
type Constant struct {
	Name  string
	Type  types.Type
	Value interface{}
}

// Env 内建环境
type Env struct {
	u         *types.Universe
	classes   map[string]*types.ClassType // 折叠后的名称
	functions map[string]*Function        // 折叠后的名称
	constants map[string]*Constant        // 常量名大小写敏感
}

// Class 按名称查找内建类（大小写不敏感）
func (e *Env) Class(name string) *types.ClassType {
	return e.classes[types.Fold(strings.TrimPrefix(name, `\`))]
}

// Function 按名称查找内建函数（大小写不敏感）
func (e *Env) Function(name string) *Function {
	return e.functions[types.Fold(strings.TrimPrefix(name, `\`))]
}

// Constant 按名称查找内建常量
func (e *Env) Constant(name string) *Constant {
	return e.constants[strings.TrimPrefix(name, `\`)]
}

// Classes 按名称排序返回全部内建类
func (e *Env) Classes() []*types.ClassType {
	keys := maps.Keys(e.classes)
	slices.Sort(keys)
	out := make([]*types.ClassType, len(keys))
	for i, k := range keys {
		out[i] = e.classes[k]
	}
	return out
}

// Resolver 仅解析内建类的 typedesc.Resolver
func (e *Env) Resolver() typedesc.Resolver {
	return typedesc.ResolverFunc(func(name string, _ token.Position) *types.ClassType {
		return e.Class(name)
	})
}

// ============================================================================
// 加载
// ============================================================================

// Load 构造内建环境，并在 u 中登记内建根类
func Load(u *types.Universe) *Env {
	e := &Env{
		u:         u,
		classes:   make(map[string]*types.ClassType),
		functions: make(map[string]*Function),
		constants: make(map[string]*Constant),
	}
	e.classes[types.Fold(u.Object.Name)] = u.Object
	td := typedesc.New(u, e.Resolver(), nil)

	// 先登记全部类名，成员签名中才能引用尚未定义成员的类
	for _, spec := range classTable {
		c := types.NewClass(spec.name, token.Position{})
		c.Interface = spec.iface
		c.Abstract = spec.iface
		c.Final = spec.final
		c.Unchecked = spec.unchecked
		c.Builtin = true
		c.Complete = true
		e.classes[types.Fold(spec.name)] = c
	}
	for _, spec := range classTable {
		c := e.Class(spec.name)
		if spec.extends != "" {
			parent := e.mustClass(spec.extends)
			if c.Interface {
				c.Implemented = append(c.Implemented, parent)
			} else {
				c.Extended = parent
			}
		}
		for _, i := range spec.implements {
			c.Implemented = append(c.Implemented, e.mustClass(i))
		}
	}
	for _, spec := range classTable {
		c := e.Class(spec.name)
		c.Exception = c.IsSubclassOf(e.mustClass("Throwable"))
		for _, k := range spec.constants {
			c.AddConstant(&types.ClassConstant{Name: k.name, Type: k.typ, Value: k.value})
		}
		for _, m := range spec.methods {
			c.AddMethod(&types.ClassMethod{
				Name:     m.name,
				Static:   m.static,
				Abstract: c.Interface,
				Sig:      mustProto(td, m.proto),
			})
		}
	}

	for _, f := range functionTable {
		e.functions[types.Fold(f.name)] = &Function{Name: f.name, Sig: mustProto(td, f.proto)}
	}
	for i, name := range types.ErrorNames() {
		e.constants[name] = &Constant{Name: name, Type: types.Int, Value: int64(1) << i}
	}
	e.constants["E_ALL"] = &Constant{Name: "E_ALL", Type: types.Int, Value: int64(32767)}
	for _, k := range constantTable {
		e.constants[k.name] = &Constant{Name: k.name, Type: k.typ, Value: k.value}
	}

	u.Throwable = e.Class("Throwable")
	u.Exception = e.Class("Exception")
	u.Error = e.Class("Error")
	u.ErrorException = e.Class("ErrorException")
	u.Traversable = e.Class("Traversable")
	u.Iterator = e.Class("Iterator")
	u.IteratorAggregate = e.Class("IteratorAggregate")
	u.Countable = e.Class("Countable")
	u.ArrayAccess = e.Class("ArrayAccess")
	return e
}

func (e *Env) mustClass(name string) *types.ClassType {
	c := e.Class(name)
	if c == nil {
		panic(fmt.Sprintf("builtins: undefined class %s", name))
	}
	return c
}

// ============================================================================
// 原型
// ============================================================================
//
// 原型写法与 Signature.String 一致：
//
//	RET(Type $a, Type &$b =, Type ...$c, args) triggers E_X|E_Y
//
// ============================================================================

func mustProto(td *typedesc.Parser, proto string) *types.Signature {
	sig, err := ParsePrototype(td, proto)
	if err != nil {
		panic(fmt.Sprintf("builtins: prototype %q: %v", proto, err))
	}
	return sig
}

// ParsePrototype 解析函数原型文本
func ParsePrototype(td *typedesc.Parser, proto string) (*types.Signature, error) {
	open := strings.IndexByte(proto, '(')
	closing := strings.LastIndexByte(proto, ')')
	if open < 0 || closing < open {
		return nil, fmt.Errorf("missing argument list")
	}
	sig := types.NewSignature()

	ret := strings.TrimSpace(proto[:open])
	if strings.HasPrefix(ret, "&") {
		sig.ByRefReturn = true
		ret = strings.TrimSpace(ret[1:])
	}
	t, err := td.ParseType(ret)
	if err != nil {
		return nil, err
	}
	sig.Return = t

	if args := strings.TrimSpace(proto[open+1 : closing]); args != "" {
		for _, a := range strings.Split(args, ",") {
			if err := parseArg(td, sig, strings.TrimSpace(a)); err != nil {
				return nil, err
			}
		}
	}

	tail := strings.Fields(proto[closing+1:])
	for i := 0; i+1 < len(tail); i += 2 {
		switch tail[i] {
		case "triggers":
			for _, n := range strings.Split(tail[i+1], "|") {
				e, ok := types.ParseErrorName(n)
				if !ok {
					return nil, fmt.Errorf("unknown error level %s", n)
				}
				sig.Errors |= e
			}
		default:
			return nil, fmt.Errorf("unexpected %s", tail[i])
		}
	}
	return sig, nil
}

func parseArg(td *typedesc.Parser, sig *types.Signature, text string) error {
	if text == "args" {
		sig.MoreArgs = true
		return nil
	}
	a := &types.FormalArgument{Mandatory: true}
	if strings.HasSuffix(text, "=") {
		a.Mandatory = false
		text = strings.TrimSpace(strings.TrimSuffix(text, "="))
	}
	dollar := strings.LastIndexByte(text, '$')
	if dollar < 0 {
		return fmt.Errorf("argument %q without name", text)
	}
	a.Name = text[dollar+1:]
	head := strings.TrimSpace(text[:dollar])
	if strings.HasSuffix(head, "...") {
		a.Variadic = true
		a.Mandatory = false
		head = strings.TrimSpace(strings.TrimSuffix(head, "..."))
	}
	if strings.HasSuffix(head, "&") {
		a.ByRef = true
		head = strings.TrimSpace(strings.TrimSuffix(head, "&"))
	}
	t, err := td.ParseType(head)
	if err != nil {
		return err
	}
	a.Type = t
	if !a.Mandatory && !a.Variadic {
		a.Default = t
	}
	sig.AddArg(a)
	return nil
}
