// Package report 在一次运行结束后遍历符号表，报告未使用的私有声明与多余的 require
package report

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/globals"
	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/types"
	"go.uber.org/zap"
)

// Unused 报告未使用的私有类、私有成员与未使用的 require，返回报告的条数
//
// 必须在 PackageParser.Finish 之后调用：此时挂起队列已清空，使用标记不再变化。
func Unused(g *globals.Globals) int {
	n := 0
	for _, c := range g.Classes() {
		n += unusedClass(g, c)
	}
	for _, u := range g.Units() {
		for _, r := range u.Requires {
			if !r.From.Uses(r.To) {
				g.Report(diag.N0804, r.Pos, r.From.Path, r.To.Path)
				n++
			}
		}
	}
	g.Log.Debug("unused report", zap.Int("notices", n))
	return n
}

func unusedClass(g *globals.Globals, c *types.ClassType) int {
	n := 0
	if c.Private && !c.Used {
		g.Report(diag.N0800, c.Pos, c.Name)
		n++
	}
	for _, k := range c.Constants() {
		if k.Vis == types.Private && !k.Used {
			g.Report(diag.N0801, k.Pos, k.FullName())
			n++
		}
	}
	for _, p := range c.Properties() {
		if p.Vis == types.Private && !p.Used {
			g.Report(diag.N0802, p.Pos, p.FullName())
			n++
		}
	}
	for _, m := range c.Methods() {
		// 构造方法与魔术方法由运行时隐式调用
		if m.Vis != types.Private || m.Used || strings.HasPrefix(m.Name, "__") {
			continue
		}
		g.Report(diag.N0803, m.Pos, m.FullName())
		n++
	}
	return n
}

// Summary 返回运行摘要，例如 "1,234 lines in 12 source units: no problems found"
func Summary(g *globals.Globals, r *diag.Reporter) string {
	lines := humanize.Comma(int64(g.Lines()))
	units := humanize.Comma(int64(len(g.Units())))
	if r.Len() == 0 {
		return i18n.T(i18n.MsgSummaryNone, lines, units)
	}
	return i18n.T(i18n.MsgSummary, lines, units,
		r.Count(diag.LevelFatal),
		r.Count(diag.LevelError),
		r.Count(diag.LevelWarning),
		r.Count(diag.LevelNotice),
	)
}
