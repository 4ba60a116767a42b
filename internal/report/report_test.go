package report

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/globals"
	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/parser"
	"github.com/rvtraveller/phplint/internal/token"
	"go.uber.org/zap"
)

const mainSrc = `<?php
require_once __DIR__ . '/lib.php';
require_once __DIR__ . '/unused.php';

private class Hidden {}
private class Seen {}

class Box {
	private const LIMIT = 1;
	private const KEPT = 2;
	private int $count = 0;
	private int $kept = 0;

	public function __construct() {}

	private function helper(): void {}

	private function used(): int { return $this->kept + self::KEPT; }

	public function run(): int { return $this->used(); }
}

$x = new Lib();
$y = new Seen();
`

func analyze(t *testing.T, files map[string]string, entry string) (*globals.Globals, *diag.Reporter) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	r := diag.NewReporter()
	g := globals.New(nil, r, zap.NewNop())
	if err := parser.NewPackageParser(g).ParseFiles([]string{filepath.Join(dir, entry)}); err != nil {
		t.Fatal(err)
	}
	return g, r
}

func TestUnused(t *testing.T) {
	g, r := analyze(t, map[string]string{
		"main.php":   mainSrc,
		"lib.php":    "<?php\nclass Lib {}\n",
		"unused.php": "<?php\nconst UNUSED_X = 1;\n",
	}, "main.php")
	for _, d := range r.Diagnostics() {
		if d.Level == diag.LevelFatal || d.Level == diag.LevelError {
			t.Fatalf("unexpected %v", d)
		}
	}
	r.Clear()

	n := Unused(g)

	var got []string
	for _, d := range r.Diagnostics() {
		got = append(got, d.Code)
	}
	sort.Strings(got)
	want := []string{diag.N0800, diag.N0801, diag.N0802, diag.N0803, diag.N0804}
	if n != len(want) || len(got) != len(want) {
		t.Fatalf("Unused = %d, codes = %v, want %v", n, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("codes = %v, want %v", got, want)
			break
		}
	}
}

func TestUnusedCleanRun(t *testing.T) {
	g, r := analyze(t, map[string]string{
		"main.php": "<?php\nrequire_once __DIR__ . '/lib.php';\n$x = new Lib();\n",
		"lib.php":  "<?php\nclass Lib {\n\tprivate int $n = 0;\n\tpublic function get(): int { return $this->n; }\n}\n",
	}, "main.php")
	r.Clear()
	if n := Unused(g); n != 0 {
		t.Errorf("Unused = %d: %v", n, r.Diagnostics())
	}
}

func TestSummary(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)

	r := diag.NewReporter()
	g := globals.New(nil, r, nil)
	if got, want := Summary(g, r), "0 lines in 0 source units: no problems found"; got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}

	g.Report(diag.E0100, token.Position{Filename: "a.php", Line: 1, Column: 1}, "Missing")
	if got, want := Summary(g, r), "0 lines in 0 source units: 0 fatal, 1 errors, 0 warnings, 0 notices"; got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}
