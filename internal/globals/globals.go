// Package globals 持有一次分析运行的全局状态
//
// 包括用户声明的类、函数与常量表，源单元及其 require 关系，挂起队列，
// 以及 error_throws_exception 与 autoload 两个编译指令的运行级状态。
// 所有解析器共享同一个 Globals，通过它查找符号并报告诊断。
package globals

import (
	"github.com/google/uuid"
	"github.com/rvtraveller/phplint/internal/builtins"
	"github.com/rvtraveller/phplint/internal/config"
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/loader"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
	"go.uber.org/zap"
)

// UnitLoader 加载并解析一个源单元，由解析器包注入
type UnitLoader func(path string, from *Unit, pos token.Position) *Unit

// Globals 运行级全局状态
type Globals struct {
	U      *types.Universe
	Env    *builtins.Env
	Sink   diag.Sink
	Log    *zap.Logger
	Config *config.Config
	Files  *loader.Loader
	RunID  string

	classes    map[string]*types.ClassType // 折叠后的完全限定名
	classUnits map[*types.ClassType]*Unit
	functions  map[string]*Function // 折叠后的完全限定名
	builtinFns map[string]*Function
	constants  map[string]*Constant // 大小写敏感

	units     map[string]*Unit // 规范化路径
	unitOrder []*Unit

	queue    []Resumable
	level    int
	loadUnit UnitLoader
	maxLevel int

	errorThrows    *types.ClassType
	errorThrowsPos token.Position
	firstTrigger   *token.Position
	autoload       *Autoload
}

// New 创建运行级状态；sink 为 nil 时丢弃诊断，logger 为 nil 时不记录日志
func New(cfg *config.Config, sink diag.Sink, logger *zap.Logger) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}
	if sink == nil {
		sink = diag.Discard
	}
	runID := uuid.NewString()
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run", runID))

	u := types.NewUniverse(logger)
	g := &Globals{
		U:      u,
		Env:    builtins.Load(u),
		Sink:   sink,
		Log:    logger,
		Config: cfg,
		Files:  loader.New(cfg.Analysis.Extensions),
		RunID:  runID,

		classes:    make(map[string]*types.ClassType),
		classUnits: make(map[*types.ClassType]*Unit),
		functions:  make(map[string]*Function),
		builtinFns: make(map[string]*Function),
		constants:  make(map[string]*Constant),
		units:      make(map[string]*Unit),
		maxLevel:   cfg.Analysis.RecursionLimit,
	}
	return g
}

// Report 报告一条诊断
func (g *Globals) Report(code string, pos token.Position, args ...interface{}) *diag.Diagnostic {
	d := diag.New(code, pos, args...)
	g.Sink.Report(d)
	return d
}

// ReportHint 报告一条附带修复建议的诊断
func (g *Globals) ReportHint(hint, code string, pos token.Position, args ...interface{}) {
	g.Sink.Report(diag.New(code, pos, args...).WithHint(hint))
}

// SetUnitLoader 注入源单元加载函数（require 与 autoload 使用）
func (g *Globals) SetUnitLoader(fn UnitLoader) {
	g.loadUnit = fn
}

// ============================================================================
// 挂起队列
// ============================================================================

// Resumable 被挂起的解析器，Resume 从挂起处继续
type Resumable interface {
	Resume()
}

// Suspend 将解析器加入挂起队列末尾
func (g *Globals) Suspend(r Resumable) {
	g.queue = append(g.queue, r)
	g.Log.Debug("suspended", zap.Int("pending", len(g.queue)))
}

// Pending 挂起队列中的解析器个数
func (g *Globals) Pending() int {
	return len(g.queue)
}

// Drain 按加入顺序恢复挂起的解析器，直到队列为空
//
// 恢复过程中再次挂起的解析器追加到队列末尾，在同一轮中处理。
func (g *Globals) Drain() {
	for len(g.queue) > 0 {
		r := g.queue[0]
		g.queue[0] = nil
		g.queue = g.queue[1:]
		g.Log.Debug("resuming", zap.Int("pending", len(g.queue)))
		r.Resume()
	}
}

// ============================================================================
// 嵌套加载
// ============================================================================

// Enter 进入一层嵌套加载；超过上限时报告错误并返回 false
func (g *Globals) Enter(path string, pos token.Position) bool {
	if g.maxLevel > 0 && g.level >= g.maxLevel {
		g.Report(diag.E0700, pos, path, g.maxLevel)
		return false
	}
	g.level++
	return true
}

// Leave 退出一层嵌套加载
func (g *Globals) Leave() {
	if g.level > 0 {
		g.level--
	}
}

// Level 当前嵌套层数
func (g *Globals) Level() int {
	return g.level
}
