package globals

import (
	"os"
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/loader"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Function 函数（用户声明或内建）
type Function struct {
	Name    string
	Sig     *types.Signature
	Pos     token.Position
	Unit    *Unit
	Forward bool // 仅有前向声明
	Builtin bool
	Used    bool
}

// Constant 全局常量（用户声明或内建）
type Constant struct {
	Name    string
	Type    types.Type
	Value   interface{}
	Pos     token.Position
	Unit    *Unit
	Builtin bool
	Used    bool
}

func key(name string) string {
	return types.Fold(strings.TrimPrefix(name, `\`))
}

// ============================================================================
// 类
// ============================================================================

// Class 按完全限定名查找类：先用户声明，再内建（大小写不敏感）
func (g *Globals) Class(name string) *types.ClassType {
	if c := g.classes[key(name)]; c != nil {
		return c
	}
	return g.Env.Class(name)
}

// DeclareClass 登记用户声明的类；同名类已存在（包括内建类）时返回已有的类且不登记
func (g *Globals) DeclareClass(c *types.ClassType, unit *Unit) *types.ClassType {
	if old := g.Class(c.Name); old != nil {
		return old
	}
	g.classes[key(c.Name)] = c
	g.classUnits[c] = unit
	return nil
}

// ClassUnit 返回声明类的源单元；内建类返回 nil
func (g *Globals) ClassUnit(c *types.ClassType) *Unit {
	if c == nil {
		return nil
	}
	if c.Template != nil {
		c = c.Template
	}
	return g.classUnits[c]
}

// SetClassUnit 前向声明的类在另一个源单元中给出实现时，改记实现所在的单元
func (g *Globals) SetClassUnit(c *types.ClassType, unit *Unit) {
	g.classUnits[c] = unit
}

// Classes 按名称排序返回全部用户声明的类
func (g *Globals) Classes() []*types.ClassType {
	out := maps.Values(g.classes)
	slices.SortFunc(out, func(a, b *types.ClassType) int {
		return strings.Compare(types.Fold(a.Name), types.Fold(b.Name))
	})
	return out
}

// classNames 用于拼写建议的候选类名
func (g *Globals) classNames() []string {
	names := make([]string, 0, len(g.classes))
	for _, c := range g.classes {
		names = append(names, c.Name)
	}
	for _, c := range g.Env.Classes() {
		names = append(names, c.Name)
	}
	slices.Sort(names)
	return names
}

// ResolveClass 解析完全限定的类名
//
// 未找到时依次尝试自动加载；仍未找到则报告错误并返回 nil。
// 找到时检查拼写大小写与私有类的可见性，并记录单元之间的使用关系。
func (g *Globals) ResolveClass(name string, pos token.Position, from *Unit) *types.ClassType {
	name = strings.TrimPrefix(name, `\`)
	c := g.Class(name)
	if c == nil && g.autoload != nil {
		c = g.autoloadClass(name, pos, from)
		if c == nil && g.autoloadPending(name) {
			return nil
		}
	}
	if c == nil {
		hint := ""
		if similar := diag.FindSimilar(name, g.classNames(), 2); similar != "" {
			hint = i18n.T(i18n.HintDidYouMean, similar)
		}
		g.ReportHint(hint, diag.E0100, pos, name)
		return nil
	}
	if c.Name != name {
		g.Report(diag.N0101, pos, c.Name, name)
	}
	owner := g.ClassUnit(c)
	if c.Private && owner != nil && owner != from {
		g.Report(diag.E0109, pos, c.Name, owner.Path)
	}
	g.Touch(from, owner)
	return c
}

// autoloadClass 通过自动加载函数的映射加载类所在的源单元
func (g *Globals) autoloadClass(name string, pos token.Position, from *Unit) *types.ClassType {
	path := loader.AutoloadPath(g.autoload.BaseDir, name, g.autoload.Ext)
	if u := g.Unit(path); u != nil {
		if !u.Done {
			g.Report(diag.E0101, pos, name, u.Path)
		}
		return g.Class(name)
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	g.Log.Debug("autoload", zap.String("class", name), zap.String("path", path))
	if g.LoadUnit(path, from, pos) == nil {
		return nil
	}
	g.autoload.Func.Used = true
	return g.Class(name)
}

// autoloadPending 类所在的源单元是否仍在解析中（已报告 E0101）
func (g *Globals) autoloadPending(name string) bool {
	u := g.Unit(loader.AutoloadPath(g.autoload.BaseDir, name, g.autoload.Ext))
	return u != nil && !u.Done
}

// ============================================================================
// 函数
// ============================================================================

// Function 按完全限定名查找函数：先用户声明，再内建（大小写不敏感）
func (g *Globals) Function(name string) *Function {
	k := key(name)
	if f := g.functions[k]; f != nil {
		return f
	}
	if f := g.builtinFns[k]; f != nil {
		return f
	}
	b := g.Env.Function(name)
	if b == nil {
		return nil
	}
	f := &Function{Name: b.Name, Sig: b.Sig, Builtin: true}
	g.builtinFns[k] = f
	return f
}

// DeclareFunction 登记用户声明的函数；同名函数已存在时返回已有的函数且不登记
func (g *Globals) DeclareFunction(f *Function) *Function {
	if old := g.Function(f.Name); old != nil {
		return old
	}
	g.functions[key(f.Name)] = f
	return nil
}

// ReplaceFunction 用实现替换前向声明的函数
func (g *Globals) ReplaceFunction(f *Function) {
	g.functions[key(f.Name)] = f
}

// Functions 按名称排序返回全部用户声明的函数
func (g *Globals) Functions() []*Function {
	out := maps.Values(g.functions)
	slices.SortFunc(out, func(a, b *Function) int {
		return strings.Compare(key(a.Name), key(b.Name))
	})
	return out
}

// UseFunction 查找被调用的函数；找到时检查拼写并记录使用关系，未找到返回 nil
func (g *Globals) UseFunction(name string, pos token.Position, from *Unit) *Function {
	f := g.Function(name)
	if f == nil {
		return nil
	}
	if want := strings.TrimPrefix(name, `\`); f.Name != want {
		g.Report(diag.N0101, pos, f.Name, want)
	}
	f.Used = true
	g.Touch(from, f.Unit)
	return f
}

// ============================================================================
// 常量
// ============================================================================

// Constant 按完全限定名查找常量（大小写敏感）
func (g *Globals) Constant(name string) *Constant {
	name = strings.TrimPrefix(name, `\`)
	if k := g.constants[name]; k != nil {
		return k
	}
	b := g.Env.Constant(name)
	if b == nil {
		return nil
	}
	return &Constant{Name: b.Name, Type: b.Type, Value: b.Value, Builtin: true}
}

// DeclareConstant 登记用户声明的常量；同名常量已存在时返回已有的常量且不登记
func (g *Globals) DeclareConstant(k *Constant) *Constant {
	if old := g.Constant(k.Name); old != nil {
		return old
	}
	g.constants[k.Name] = k
	return nil
}

// UseConstant 查找被引用的常量并记录使用关系，未找到返回 nil
func (g *Globals) UseConstant(name string, from *Unit) *Constant {
	k := g.Constant(name)
	if k == nil {
		return nil
	}
	k.Used = true
	g.Touch(from, k.Unit)
	return k
}
