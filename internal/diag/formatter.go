package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ============================================================================
// Formatter - 文本格式化器
// ============================================================================
//
// 输出形如：
//
//   error[E0100]: undefined class Foo
//    --> src/a.php:5:12
//     |
//   5 |     public Foo $x;
//     |            ^^^
//    = help: did you mean Food?
//
// ============================================================================

// Formatter 诊断格式化器
type Formatter struct {
	ShowSource bool // 是否显示源代码
	ShowHints  bool // 是否显示修复建议
	TabWidth   int  // Tab 宽度

	fatal, err, warn, notice *color.Color
	location, gutter, hint   *color.Color
}

// NewFormatter 创建格式化器
func NewFormatter(colors bool) *Formatter {
	f := &Formatter{
		ShowSource: true,
		ShowHints:  true,
		TabWidth:   4,
		fatal:      color.New(color.FgHiRed, color.Bold),
		err:        color.New(color.FgRed, color.Bold),
		warn:       color.New(color.FgYellow, color.Bold),
		notice:     color.New(color.FgCyan),
		location:   color.New(color.FgCyan),
		gutter:     color.New(color.FgBlue),
		hint:       color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{f.fatal, f.err, f.warn, f.notice, f.location, f.gutter, f.hint} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// ColorEnabled 根据配置（auto/always/never）与终端类型决定是否着色
func ColorEnabled(mode string, out *os.File) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" || out == nil {
		return false
	}
	return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
}

func (f *Formatter) levelColor(level Level) *color.Color {
	switch level {
	case LevelFatal:
		return f.fatal
	case LevelError:
		return f.err
	case LevelWarning:
		return f.warn
	default:
		return f.notice
	}
}

// Format 格式化单条诊断
func (f *Formatter) Format(d *Diagnostic, lines []string) string {
	var sb strings.Builder

	lc := f.levelColor(d.Level)
	sb.WriteString(lc.Sprintf("%s[%s]", d.Level, d.Code))
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	sb.WriteByte('\n')

	if d.Pos.IsValid() {
		sb.WriteString(" " + f.location.Sprint("-->") + " " + f.location.Sprint(d.Pos.String()) + "\n")
	}

	if f.ShowSource && d.Pos.Line > 0 && d.Pos.Line <= len(lines) {
		sb.WriteString(f.sourceContext(lines[d.Pos.Line-1], d.Pos.Line, d.Pos.Column, lc))
	}

	if f.ShowHints {
		for _, h := range d.Hints {
			sb.WriteString(" " + f.hint.Sprint("= help:") + " " + h + "\n")
		}
	}
	return sb.String()
}

// sourceContext 显示出错的源代码行并在列位置下划线
func (f *Formatter) sourceContext(line string, lineNum, col int, lc *color.Color) string {
	var sb strings.Builder
	width := len(fmt.Sprintf("%d", lineNum))
	blank := f.gutter.Sprint(strings.Repeat(" ", width) + " |")

	sb.WriteString(blank + "\n")
	sb.WriteString(f.gutter.Sprintf("%*d |", width, lineNum) + " " + f.expandTabs(strings.TrimRight(line, "\r")) + "\n")
	if col > 0 {
		actual := f.actualColumn(line, col)
		length := wordLength(line, col)
		sb.WriteString(blank + " " + strings.Repeat(" ", actual-1) + lc.Sprint(strings.Repeat("^", length)) + "\n")
	}
	return sb.String()
}

func (f *Formatter) expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", f.TabWidth))
}

// actualColumn 计算展开 Tab 后的列位置
func (f *Formatter) actualColumn(line string, col int) int {
	actual := 1
	for i, r := range []rune(line) {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			actual += f.TabWidth
		} else {
			actual++
		}
	}
	return actual
}

// wordLength 标注长度：从列位置开始的标识符长度，至少为 1
func wordLength(line string, col int) int {
	runes := []rune(line)
	n := 0
	for i := col - 1; i >= 0 && i < len(runes); i++ {
		r := runes[i]
		if r == '_' || r == '$' || r == '\\' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r >= 0x80 {
			n++
			continue
		}
		break
	}
	if n == 0 {
		return 1
	}
	return n
}

// WriteAll 按位置顺序输出收集器中的全部诊断
func (f *Formatter) WriteAll(w io.Writer, r *Reporter) error {
	for _, d := range r.Diagnostics() {
		if _, err := io.WriteString(w, f.Format(d, r.SourceLines(d.Pos.Filename))); err != nil {
			return err
		}
	}
	return nil
}
