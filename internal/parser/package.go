package parser

import (
	"fmt"
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/globals"
	"github.com/rvtraveller/phplint/internal/token"
	"go.uber.org/zap"
)

// ============================================================================
// PackageParser - 一次批量分析
// ============================================================================
//
// 第一遍依次解析命令行给出的源单元（require 与 autoload 递归加载其他单元），
// 然后按顺序恢复挂起的解析器直到队列为空，最后检查从未给出实现的前向声明。
//
// ============================================================================

// PackageParser 驱动一次分析运行中全部源单元的解析
type PackageParser struct {
	g   *globals.Globals
	log *zap.Logger
}

// sourceKeeper 可以缓存源代码的诊断接收者
type sourceKeeper interface {
	SetSource(filename, content string)
}

// NewPackageParser 创建批量解析器，并向 g 注入源单元加载函数
func NewPackageParser(g *globals.Globals) *PackageParser {
	pp := &PackageParser{g: g, log: g.Log.Named("parser")}
	g.SetUnitLoader(pp.ParseUnit)
	return pp
}

// ParseFiles 解析给定的文件与目录（目录按扩展名展开），然后恢复挂起的解析器并结束运行
func (pp *PackageParser) ParseFiles(paths []string) error {
	files, err := pp.g.Files.Expand(paths)
	if err != nil {
		return fmt.Errorf("expand sources: %w", err)
	}
	for _, f := range files {
		pp.ParseUnit(f, nil, token.Position{Filename: f})
	}
	pp.Finish()
	return nil
}

// ParseSource 以给定内容解析一个源单元，路径只用于定位与 require 的相对解析
func (pp *PackageParser) ParseSource(path, src string) *globals.Unit {
	if u := pp.g.Unit(path); u != nil {
		return u
	}
	return pp.parse(path, src, token.Position{Filename: path})
}

// ParseUnit 加载并解析一个源单元；已登记的单元直接返回（可能仍在解析中）
func (pp *PackageParser) ParseUnit(path string, from *globals.Unit, pos token.Position) *globals.Unit {
	if u := pp.g.Unit(path); u != nil {
		return u
	}
	src, err := pp.g.Files.LoadFile(path)
	if err != nil {
		pp.g.Report(diag.E0005, pos, path, err)
		return nil
	}
	return pp.parse(path, src, pos)
}

func (pp *PackageParser) parse(path, src string, pos token.Position) *globals.Unit {
	if !pp.g.Enter(path, pos) {
		return nil
	}
	defer pp.g.Leave()

	if sk, ok := pp.g.Sink.(sourceKeeper); ok {
		sk.SetSource(path, src)
	}
	unit, _ := pp.g.NewUnit(path)
	if src != "" {
		unit.Lines = strings.Count(src, "\n") + 1
	}
	newParser(pp, unit, src).run()
	return unit
}

// Finish 恢复全部挂起的解析器，报告从未实现的前向声明
func (pp *PackageParser) Finish() {
	pp.g.Drain()

	for _, c := range pp.g.Classes() {
		if c.Forward {
			pp.g.Report(diag.E0210, c.Pos, c.Name, c.Pos)
		}
	}
	for _, f := range pp.g.Functions() {
		if f.Forward {
			pp.g.Report(diag.E0406, f.Pos, f.Name, f.Pos)
		}
	}
	pp.log.Info("run finished",
		zap.Int("units", len(pp.g.Units())),
		zap.Int("lines", pp.g.Lines()),
		zap.Int("classes", len(pp.g.Classes())),
	)
}
