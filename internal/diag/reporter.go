package diag

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

// ============================================================================
// Reporter - 诊断收集器
// ============================================================================

// Reporter 收集诊断，过滤提示，去重并按位置排序
type Reporter struct {
	Notices bool // 是否记录提示

	diags   []*Diagnostic
	seen    map[string]bool
	counts  [levelCount]int
	sources map[string][]string // 源代码缓存，供格式化器显示上下文
}

// NewReporter 创建诊断收集器（默认记录提示）
func NewReporter() *Reporter {
	return &Reporter{
		Notices: true,
		seen:    make(map[string]bool),
		sources: make(map[string][]string),
	}
}

// Report 实现 Sink
func (r *Reporter) Report(d *Diagnostic) {
	if d == nil {
		return
	}
	if d.Level == LevelNotice && !r.Notices {
		return
	}
	key := d.Error()
	if r.seen[key] {
		return
	}
	r.seen[key] = true
	r.diags = append(r.diags, d)
	if d.Level >= 0 && d.Level < levelCount {
		r.counts[d.Level]++
	}
}

// SetSource 缓存源代码
func (r *Reporter) SetSource(filename, content string) {
	r.sources[filename] = strings.Split(content, "\n")
}

// LoadSource 从文件加载源代码到缓存
func (r *Reporter) LoadSource(filename string) error {
	if _, ok := r.sources[filename]; ok {
		return nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("load source %s: %w", filename, err)
	}
	r.SetSource(filename, string(content))
	return nil
}

// SourceLines 返回缓存的源代码行
func (r *Reporter) SourceLines(filename string) []string {
	return r.sources[filename]
}

// Count 返回某级别的诊断数量
func (r *Reporter) Count(level Level) int {
	if level < 0 || level >= levelCount {
		return 0
	}
	return r.counts[level]
}

// HasErrors 是否存在致命错误或错误
func (r *Reporter) HasErrors() bool {
	return r.counts[LevelFatal] > 0 || r.counts[LevelError] > 0
}

// Len 诊断总数
func (r *Reporter) Len() int {
	return len(r.diags)
}

// Diagnostics 返回按文件、行、列排序的诊断
func (r *Reporter) Diagnostics() []*Diagnostic {
	out := slices.Clone(r.diags)
	slices.SortStableFunc(out, compareDiagnostics)
	return out
}

// ByCode 返回指定错误码的诊断（按报告顺序）
func (r *Reporter) ByCode(code string) []*Diagnostic {
	var out []*Diagnostic
	for _, d := range r.diags {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// Clear 清空收集的诊断
func (r *Reporter) Clear() {
	r.diags = nil
	r.seen = make(map[string]bool)
	r.counts = [levelCount]int{}
}

func compareDiagnostics(a, b *Diagnostic) int {
	switch {
	case a.Pos.Filename != b.Pos.Filename:
		return strings.Compare(a.Pos.Filename, b.Pos.Filename)
	case a.Pos.Line != b.Pos.Line:
		return a.Pos.Line - b.Pos.Line
	case a.Pos.Column != b.Pos.Column:
		return a.Pos.Column - b.Pos.Column
	default:
		return int(a.Level) - int(b.Level)
	}
}
