package diag

import (
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// Source LSP 诊断中的来源名称
const Source = "phplint"

// ToLSP 将诊断按文件分组为 LSP publishDiagnostics 参数，供 JSON 输出
func ToLSP(diags []*Diagnostic) []protocol.PublishDiagnosticsParams {
	var out []protocol.PublishDiagnosticsParams
	index := make(map[string]int)

	for _, d := range diags {
		i, ok := index[d.Pos.Filename]
		if !ok {
			i = len(out)
			index[d.Pos.Filename] = i
			out = append(out, protocol.PublishDiagnosticsParams{
				URI:         protocol.DocumentURI(uri.File(d.Pos.Filename)),
				Diagnostics: []protocol.Diagnostic{},
			})
		}
		out[i].Diagnostics = append(out[i].Diagnostics, toProtocol(d))
	}
	return out
}

func toProtocol(d *Diagnostic) protocol.Diagnostic {
	line := uint32(0)
	if d.Pos.Line > 0 {
		line = uint32(d.Pos.Line - 1) // LSP 行号从 0 开始
	}
	col := uint32(0)
	if d.Pos.Column > 0 {
		col = uint32(d.Pos.Column - 1)
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		},
		Severity: severity(d.Level),
		Code:     d.Code,
		Source:   Source,
		Message:  d.Message,
	}
}

func severity(level Level) protocol.DiagnosticSeverity {
	switch level {
	case LevelFatal, LevelError:
		return protocol.DiagnosticSeverityError
	case LevelWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
