package parser

import (
	"strings"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/token"
)

// textBlock 解析 ?> 与随后的文本块
//
// 文件末尾 ?> 之后只剩空白时给出提示：这些空白会被原样输出。
func (p *Parser) textBlock() {
	closed := p.match(token.CLOSE_TAG)
	if !p.check(token.TEXT) {
		return
	}
	t := p.advance()
	text, _ := t.Value.(string)
	if closed && p.isAtEnd() && strings.TrimSpace(text) == "" {
		p.report(diag.N0640, t.Pos)
	}
}
