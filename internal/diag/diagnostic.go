package diag

import (
	"fmt"

	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/token"
)

// Diagnostic 一条诊断记录
type Diagnostic struct {
	Code    string         // 错误码
	Level   Level          // 级别
	Pos     token.Position // 位置
	Message string         // 已翻译的消息
	Hints   []string       // 修复建议
}

// Error 实现 error 接口，格式为 "file:line:col: level[code]: message"
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s[%s]: %s", d.Pos, d.Level, d.Code, d.Message)
}

// WithHint 追加一条修复建议
func (d *Diagnostic) WithHint(hint string) *Diagnostic {
	if hint != "" {
		d.Hints = append(d.Hints, hint)
	}
	return d
}

// New 按错误码创建诊断；消息通过 i18n 目录格式化
func New(code string, pos token.Position, args ...interface{}) *Diagnostic {
	info, ok := codeTable[code]
	if !ok {
		return &Diagnostic{Code: code, Level: LevelError, Pos: pos, Message: fmt.Sprint(args...)}
	}
	var msg string
	if info.MessageID == "" {
		msg = fmt.Sprint(args...)
	} else {
		msg = i18n.T(info.MessageID, args...)
	}
	return &Diagnostic{Code: code, Level: info.Level, Pos: pos, Message: msg}
}

// Sink 诊断接收者，分析核心只依赖此接口
type Sink interface {
	Report(d *Diagnostic)
}

// SinkFunc 函数适配器
type SinkFunc func(d *Diagnostic)

// Report 实现 Sink
func (f SinkFunc) Report(d *Diagnostic) { f(d) }

// Discard 丢弃所有诊断
var Discard Sink = SinkFunc(func(*Diagnostic) {})
