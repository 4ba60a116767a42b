package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/token"
	"go.lsp.dev/protocol"
)

func pos(file string, line, col int) token.Position {
	return token.Position{Filename: file, Line: line, Column: col}
}

func TestNewUsesCodeTable(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)

	d := New(E0100, pos("a.php", 3, 7), "Foo")
	if d.Level != LevelError {
		t.Errorf("level = %s, want error", d.Level)
	}
	if d.Message != "undefined class Foo" {
		t.Errorf("message = %q", d.Message)
	}
	if got := d.Error(); got != "a.php:3:7: error[E0100]: undefined class Foo" {
		t.Errorf("Error() = %q", got)
	}

	raw := New(E0003, pos("a.php", 1, 1), "unterminated string")
	if raw.Level != LevelFatal || raw.Message != "unterminated string" {
		t.Errorf("raw diagnostic = %+v", raw)
	}
}

func TestEveryCodeHasMessage(t *testing.T) {
	for code, info := range codeTable {
		if info.Code != code {
			t.Errorf("%s: table entry carries code %s", code, info.Code)
		}
		if info.MessageID != "" && !i18n.Has(info.MessageID) {
			t.Errorf("%s: message %s not in catalogue", code, info.MessageID)
		}
	}
}

func TestReporterFiltersAndDedupes(t *testing.T) {
	r := NewReporter()
	r.Notices = false

	r.Report(New(N0101, pos("a.php", 1, 1), "Foo", "foo"))
	r.Report(New(E0100, pos("a.php", 2, 1), "Foo"))
	r.Report(New(E0100, pos("a.php", 2, 1), "Foo"))
	r.Report(nil)

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if r.Count(LevelNotice) != 0 || r.Count(LevelError) != 1 {
		t.Errorf("counts: notice=%d error=%d", r.Count(LevelNotice), r.Count(LevelError))
	}
	if !r.HasErrors() {
		t.Error("HasErrors() = false")
	}

	r.Clear()
	if r.Len() != 0 || r.HasErrors() {
		t.Error("Clear() left diagnostics behind")
	}
}

func TestReporterOrdering(t *testing.T) {
	r := NewReporter()
	r.Report(New(E0100, pos("b.php", 1, 1), "X"))
	r.Report(New(E0100, pos("a.php", 9, 1), "Y"))
	r.Report(New(E0100, pos("a.php", 2, 5), "Z"))
	r.Report(New(N0101, pos("a.php", 2, 5), "Z", "z"))

	got := r.Diagnostics()
	want := []string{"a.php:2:5", "a.php:2:5", "a.php:9:1", "b.php:1:1"}
	for i, d := range got {
		if d.Pos.String() != want[i] {
			t.Errorf("diag %d at %s, want %s", i, d.Pos, want[i])
		}
	}
	if got[0].Level != LevelError || got[1].Level != LevelNotice {
		t.Error("same position should order by level")
	}
	if len(r.ByCode(E0100)) != 3 {
		t.Errorf("ByCode(E0100) = %d", len(r.ByCode(E0100)))
	}
}

func TestFormatterPlain(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)

	r := NewReporter()
	r.SetSource("a.php", "<?php\nclass A extends Foo {}\n")
	r.Report(New(E0100, pos("a.php", 2, 17), "Foo").WithHint("did you mean Food?"))

	var buf bytes.Buffer
	if err := NewFormatter(false).WriteAll(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"error[E0100]: undefined class Foo",
		" --> a.php:2:17",
		"2 | class A extends Foo {}",
		"  |                 ^^^",
		"= help: did you mean Food?",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	if !ColorEnabled("always", nil) {
		t.Error("always should enable colors")
	}
	if ColorEnabled("never", nil) {
		t.Error("never should disable colors")
	}
	if ColorEnabled("auto", nil) {
		t.Error("auto without a terminal should disable colors")
	}
}

func TestToLSP(t *testing.T) {
	diags := []*Diagnostic{
		New(E0100, pos("/src/a.php", 3, 5), "Foo"),
		New(N0101, pos("/src/a.php", 4, 1), "Foo", "foo"),
		New(E0001, pos("/src/b.php", 1, 1), "';'", "'}'"),
	}
	params := ToLSP(diags)
	if len(params) != 2 {
		t.Fatalf("got %d files, want 2", len(params))
	}
	if params[0].URI != protocol.DocumentURI("file:///src/a.php") {
		t.Errorf("URI = %s", params[0].URI)
	}
	a := params[0].Diagnostics
	if len(a) != 2 {
		t.Fatalf("a.php has %d diagnostics", len(a))
	}
	if a[0].Range.Start.Line != 2 || a[0].Range.Start.Character != 4 {
		t.Errorf("range start = %+v", a[0].Range.Start)
	}
	if a[0].Severity != protocol.DiagnosticSeverityError || a[1].Severity != protocol.DiagnosticSeverityInformation {
		t.Errorf("severities = %v, %v", a[0].Severity, a[1].Severity)
	}
	if a[0].Source != Source || a[0].Code != E0100 {
		t.Errorf("source/code = %s/%v", a[0].Source, a[0].Code)
	}
}

func TestFindSimilar(t *testing.T) {
	candidates := []string{"Exception", "ErrorException", "Iterator"}
	if got := FindSimilar("Exceptoin", candidates, 2); got != "Exception" {
		t.Errorf("got %q", got)
	}
	if got := FindSimilar("iterator", candidates, 0); got != "Iterator" {
		t.Errorf("case-insensitive match: got %q", got)
	}
	if got := FindSimilar("Countable", candidates, 2); got != "" {
		t.Errorf("unexpected suggestion %q", got)
	}
}
