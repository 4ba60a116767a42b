package globals

import (
	"github.com/rvtraveller/phplint/internal/loader"
	"github.com/rvtraveller/phplint/internal/token"
	"golang.org/x/exp/slices"
)

// Unit 源单元（一个源文件）
type Unit struct {
	Path     string
	Lines    int
	Parsing  bool // 首遍或恢复尚未结束
	Done     bool // 已解析完毕（包括致命错误中止）
	Requires []*Require

	uses map[*Unit]bool // 本单元使用了哪些其他单元中的符号
}

// Require 源单元之间的 require/include 关系
type Require struct {
	From *Unit
	To   *Unit
	Pos  token.Position
}

// Uses 本单元是否使用了 other 中声明的符号
func (u *Unit) Uses(other *Unit) bool {
	return u.uses[other]
}

// Unit 按路径查找已登记的源单元
func (g *Globals) Unit(path string) *Unit {
	return g.units[loader.Normalize(path)]
}

// NewUnit 登记新的源单元；已存在时返回已有的单元
func (g *Globals) NewUnit(path string) (*Unit, bool) {
	key := loader.Normalize(path)
	if u, ok := g.units[key]; ok {
		return u, false
	}
	u := &Unit{Path: path, uses: make(map[*Unit]bool)}
	g.units[key] = u
	g.unitOrder = append(g.unitOrder, u)
	return u, true
}

// Units 按登记顺序返回全部源单元
func (g *Globals) Units() []*Unit {
	return slices.Clone(g.unitOrder)
}

// AddRequire 记录 from 对 to 的引入；同一对单元只记录一次
func (g *Globals) AddRequire(from, to *Unit, pos token.Position) {
	if from == nil || to == nil || from == to {
		return
	}
	for _, r := range from.Requires {
		if r.To == to {
			return
		}
	}
	from.Requires = append(from.Requires, &Require{From: from, To: to, Pos: pos})
}

// Touch 记录 from 使用了 to 中声明的符号
func (g *Globals) Touch(from, to *Unit) {
	if from == nil || to == nil || from == to {
		return
	}
	from.uses[to] = true
}

// LoadUnit 通过注入的加载函数解析一个源单元
func (g *Globals) LoadUnit(path string, from *Unit, pos token.Position) *Unit {
	if g.loadUnit == nil {
		return nil
	}
	return g.loadUnit(path, from, pos)
}

// Lines 全部源单元的总行数
func (g *Globals) Lines() int {
	n := 0
	for _, u := range g.unitOrder {
		n += u.Lines
	}
	return n
}
