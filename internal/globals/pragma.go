package globals

import (
	"path/filepath"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
	"go.uber.org/zap"
)

// ============================================================================
// error_throws_exception
// ============================================================================
//
// 每次运行最多设置一次，并且必须在任何声明触发错误的签名之前。
// 设置之后，每个签名触发的错误都转换为抛出映射的受检异常。
//
// ============================================================================

// SetErrorThrows 设置错误到异常的映射；违反约束时报告错误并返回 false
func (g *Globals) SetErrorThrows(c *types.ClassType, pos token.Position) bool {
	switch {
	case g.errorThrows != nil:
		g.Report(diag.E0603, pos, g.errorThrowsPos)
		return false
	case g.firstTrigger != nil:
		g.Report(diag.E0604, pos, *g.firstTrigger)
		return false
	case !c.Exception:
		g.Report(diag.E0408, pos, c.Name)
		return false
	case !c.IsChecked():
		g.Report(diag.E0605, pos, c.Name)
		return false
	}
	g.errorThrows = c
	g.errorThrowsPos = pos
	g.Log.Debug("error_throws_exception", zap.String("class", c.Name))
	return true
}

// ErrorThrows 返回错误映射到的异常类；未设置时为 nil
func (g *Globals) ErrorThrows() *types.ClassType {
	return g.errorThrows
}

// NoteSignature 登记一个刚声明完的签名
//
// 已设置映射时将其触发的错误转换为异常；否则记录第一个触发错误的签名位置。
func (g *Globals) NoteSignature(sig *types.Signature, pos token.Position) {
	if sig.Errors == 0 {
		return
	}
	if g.errorThrows != nil {
		sig.ConvertErrors(g.errorThrows)
		return
	}
	if g.firstTrigger == nil {
		p := pos
		g.firstTrigger = &p
	}
}

// ============================================================================
// autoload
// ============================================================================

// Autoload 已登记的自动加载函数及其类名到文件的映射
type Autoload struct {
	Func    *Function
	BaseDir string // 绝对路径
	Ext     string
	Pos     token.Position
}

// SetAutoload 登记自动加载函数
//
// 函数必须已声明，且恰好接受一个必选的 string 参数。baseDir 为相对路径时
// 相对于声明编译指令的源单元所在目录。
func (g *Globals) SetAutoload(name, baseDir, ext string, pos token.Position, from *Unit) bool {
	if g.autoload != nil {
		g.Report(diag.E0606, pos, g.autoload.Pos)
		return false
	}
	f := g.Function(name)
	if f == nil || f.Builtin {
		g.Report(diag.E0608, pos, name)
		return false
	}
	sig := f.Sig
	if len(sig.Args) != 1 || sig.Mandatory != 1 || sig.Variadic != nil || sig.MoreArgs ||
		!(sig.Args[0].Type == types.String || types.IsUnknown(sig.Args[0].Type)) {
		g.Report(diag.E0607, pos, f.Name)
		return false
	}
	if !filepath.IsAbs(baseDir) && from != nil {
		baseDir = filepath.Join(filepath.Dir(from.Path), baseDir)
	}
	g.autoload = &Autoload{Func: f, BaseDir: filepath.Clean(baseDir), Ext: ext, Pos: pos}
	g.Touch(from, f.Unit)
	g.Log.Debug("autoload registered", zap.String("func", f.Name), zap.String("dir", g.autoload.BaseDir))
	return true
}

// Autoload 返回已登记的自动加载函数；未登记时为 nil
func (g *Globals) Autoload() *Autoload {
	return g.autoload
}
