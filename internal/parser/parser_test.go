package parser

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/globals"
	"github.com/rvtraveller/phplint/internal/types"
	"go.uber.org/zap"
)

// run 把 files 写入临时目录，按 order 解析（为空时按文件名顺序），返回运行状态与诊断
func run(t *testing.T, files map[string]string, order ...string) (*globals.Globals, *diag.Reporter, string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if len(order) == 0 {
		for name := range files {
			order = append(order, name)
		}
		sort.Strings(order)
	}
	paths := make([]string, len(order))
	for i, name := range order {
		paths[i] = filepath.Join(dir, filepath.FromSlash(name))
	}

	r := diag.NewReporter()
	g := globals.New(nil, r, zap.NewNop())
	pp := NewPackageParser(g)
	if err := pp.ParseFiles(paths); err != nil {
		t.Fatal(err)
	}
	return g, r, dir
}

// errorCodes 致命错误与错误的错误码，按报告顺序
func errorCodes(r *diag.Reporter) []string {
	var out []string
	for _, d := range r.Diagnostics() {
		if d.Level == diag.LevelFatal || d.Level == diag.LevelError {
			out = append(out, d.Code)
		}
	}
	return out
}

func expectClean(t *testing.T, r *diag.Reporter) {
	t.Helper()
	for _, d := range r.Diagnostics() {
		if d.Level == diag.LevelFatal || d.Level == diag.LevelError {
			t.Errorf("unexpected %v", d)
		}
	}
}

func TestSuspendResolvesMutualReferences(t *testing.T) {
	g, r, _ := run(t, map[string]string{
		"a.php": `<?php
/*. forward class B; .*/
class A {
	/*. pragma 'suspend'; .*/
	public B $b = NULL;
}
`,
		"b.php": `<?php
class B {
	public A $a = NULL;
}
`,
	}, "a.php", "b.php")
	expectClean(t, r)

	a, b := g.Class("A"), g.Class("B")
	if a == nil || b == nil {
		t.Fatalf("classes not declared: A=%v B=%v", a, b)
	}
	if !a.Complete || !b.Complete {
		t.Errorf("complete: A=%v B=%v", a.Complete, b.Complete)
	}
	if b.Forward {
		t.Error("B still marked forward")
	}
	if got := a.Property("b"); got == nil || got.Type != b {
		t.Errorf("A::$b = %v, want the declared B", got)
	}
	if got := b.Property("a"); got == nil || got.Type != a {
		t.Errorf("B::$a = %v, want the declared A", got)
	}
	if g.Pending() != 0 {
		t.Errorf("pending = %d", g.Pending())
	}
}

func TestGenericActualizationIsShared(t *testing.T) {
	g, r, _ := run(t, map[string]string{
		"box.php": `<?php
interface Comparable {}
class Number implements Comparable {}
class Text implements Comparable {}
class Box<T extends Comparable> {
	public T $item;
}
class Holder {
	public Box<Number> $a;
	public Box<Number> $b;
	public Box<Text> $c;
}
`,
	})
	expectClean(t, r)

	h := g.Class("Holder")
	box := g.Class("Box")
	a := h.Property("a").Type
	b := h.Property("b").Type
	c := h.Property("c").Type
	if a != b {
		t.Errorf("Box<Number> actualized twice: %p %p", a, b)
	}
	if a == c {
		t.Error("Box<Number> and Box<Text> share an instance")
	}
	inst, ok := types.IsClass(a)
	if !ok || inst.Template != box || inst.String() != "Box<Number>" {
		t.Errorf("instance = %v", a)
	}
}

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"final override", `class P { public final function f(): void {} }
class C extends P { public function f(): void {} }`, []string{diag.E0301}},
		{"narrowed visibility", `class P { public function f(): void {} }
class C extends P { protected function f(): void {} }`, []string{diag.E0302}},
		{"static mismatch", `class P { public static function f(): void {} }
class C extends P { public function f(): void {} }`, []string{diag.E0303}},
		{"incompatible signature", `class P { public function f(int $a): void {} }
class C extends P { public function f(string $a): void {} }`, []string{diag.E0304}},
		{"missing implementation", `abstract class P { abstract public function f(): void; }
class C extends P {}`, []string{diag.E0208}},
		{"missing body", `class P { public function f(): void; }`, []string{diag.E0309}},
		{"duplicate method", `class P { public function f(): void {} public function F(): void {} }`, []string{diag.E0300}},
		{"repeated modifier", `class P { public public function f(): void {} }`, []string{diag.E0312}},
		{"interface property", `interface I { public int $x; }`, []string{diag.E0211}},
		{"interface visibility", `interface I { protected function f(): void; }`, []string{diag.E0212}},
		{"interface body", `interface I { public function f(): void {} }`, []string{diag.E0213}},
		{"extends interface", `interface I {}
class C extends I {}`, []string{diag.E0201}},
		{"extends final", `final class P {}
class C extends P {}`, []string{diag.E0202}},
		{"abstract final", `abstract final class P {}`, []string{diag.E0206}},
		{"duplicate class", `class P {}
class P {}`, []string{diag.E0200}},
		{"duplicate function", `function f(): void {}
function f(): void {}`, []string{diag.E0405}},
		{"duplicate constant", `const X = 1;
const X = 2;`, []string{diag.E0630}},
		{"property type", `class P { public int $x = "a"; }`, []string{diag.E0110}},
		{"duplicate argument", `function f(int $a, int $a): void {}`, []string{diag.E0400}},
		{"mandatory after optional", `function f(int $a = 1, int $b): void {}`, []string{diag.E0401}},
		{"unknown pragma", `/*. pragma 'nonsense'; .*/`, []string{diag.E0600}},
		{"suspend in function", `function f(): void { /*. pragma 'suspend'; .*/ }`, []string{diag.E0602}},
		{"namespace after code", `const X = 1;
namespace a;`, []string{diag.E0621}},
		{"duplicate alias", `use a\B;
use c\B;`, []string{diag.E0620}},
		{"undefined constant", `const X = Y;`, []string{diag.E0631}},
		{"not static", `const X = f();`, []string{diag.E0632}},
		{"undefined member", `class C { public function f(): void { $this->g(); } }`, []string{diag.E0314}},
		{"invalid cast", `$x = cast('int', "abc");`, []string{diag.E0108}},
		{"forward method mismatch", `/*. forward class C { public function f(int $a): void; } .*/
class C { public function f(string $a): void {} }`, []string{diag.E0207}},
		{"forward method missing", `/*. forward class C { public function f(): void; } .*/
class C {}`, []string{diag.E0209}},
		{"forward class unresolved", `/*. forward class C; .*/`, []string{diag.E0210}},
		{"forward function unresolved", `/*. forward function f(): void; .*/`, []string{diag.E0406}},
		{"syntax", `class { }`, []string{diag.E0001}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r, _ := run(t, map[string]string{"t.php": "<?php\n" + tt.src + "\n"})
			got := errorCodes(r)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				for _, d := range r.Diagnostics() {
					t.Log(d)
				}
				t.Errorf("codes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCleanSources(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"override", `class P { public function f(int $a): void {} }
class C extends P { public function f(int $a, int $b = 0): void {} }`},
		{"implementation", `interface I { public function f(): int; }
class C implements I { public function f(): int { return 1; } }`},
		{"own member", `class C {
	private int $n = 0;
	public function f(): void { $this->g(); $this->n = 1; }
	private function g(): void {}
}`},
		{"forward completed", `/*. forward class C { public function f(int $a): void; } .*/
class C { public function f(int $a): void {} }`},
		{"forward function", `/*. forward function f(int $a): void; .*/
function f(int $a): void {}`},
		{"namespaces", `namespace a;
class B {}
namespace c;
use a\B;
$x = new B();`},
		{"valid cast", `$x = cast('float', 1);`},
		{"declare", `declare(strict_types=1);
const X = 1 + 2 * 3;`},
		{"static constants", `class C {
	const A = 1;
	const B = self::A + 1;
	public int $x = self::B;
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r, _ := run(t, map[string]string{"t.php": "<?php\n" + tt.src + "\n"})
			expectClean(t, r)
		})
	}
}

func TestRequireRecordsUsage(t *testing.T) {
	g, r, dir := run(t, map[string]string{
		"main.php": `<?php
require_once __DIR__ . '/lib.php';
require_once __DIR__ . '/unused.php';
$x = new Lib();
`,
		"lib.php":    "<?php\nclass Lib {}\n",
		"unused.php": "<?php\nconst UNUSED_X = 1;\n",
	}, "main.php")
	expectClean(t, r)

	main := g.Unit(filepath.Join(dir, "main.php"))
	lib := g.Unit(filepath.Join(dir, "lib.php"))
	unused := g.Unit(filepath.Join(dir, "unused.php"))
	if main == nil || lib == nil || unused == nil {
		t.Fatalf("units not loaded: %v %v %v", main, lib, unused)
	}
	if len(main.Requires) != 2 {
		t.Errorf("requires = %d, want 2", len(main.Requires))
	}
	if !main.Uses(lib) {
		t.Error("main should use lib")
	}
	if main.Uses(unused) {
		t.Error("main should not use unused")
	}
}

func TestRequireMissingFile(t *testing.T) {
	_, r, _ := run(t, map[string]string{"main.php": "<?php\nrequire 'nowhere.php';\n"})
	if got := errorCodes(r); strings.Join(got, ",") != diag.E0702 {
		t.Errorf("codes = %v", got)
	}
}

func TestAutoload(t *testing.T) {
	g, r, _ := run(t, map[string]string{
		"main.php": `<?php
function my_autoload(string $name): void {}
/*. pragma 'autoload' 'my_autoload' 'classes' '.php'; .*/
$x = new Foo\Bar();
`,
		"classes/Foo/Bar.php": "<?php\nnamespace Foo;\nclass Bar {}\n",
	}, "main.php")
	expectClean(t, r)

	if g.Class(`Foo\Bar`) == nil {
		t.Fatal("Foo\\Bar was not autoloaded")
	}
	al := g.Autoload()
	if al == nil || al.Func.Name != "my_autoload" {
		t.Fatalf("autoload = %+v", al)
	}
	if !al.Func.Used {
		t.Error("autoload function not marked used")
	}
}

func TestErrorThrowsException(t *testing.T) {
	g, r, _ := run(t, map[string]string{"t.php": `<?php
/*. pragma 'error_throws_exception' 'ErrorException'; .*/
function f(): void /*. triggers E_WARNING .*/ {}
`})
	expectClean(t, r)

	sig := g.Function("f").Sig
	if sig.Errors != 0 {
		t.Errorf("errors = %v, want none", sig.Errors)
	}
	list := sig.Exceptions.List()
	if len(list) != 1 || list[0].Name != "ErrorException" {
		t.Errorf("exceptions = %v", list)
	}
}

func TestErrorThrowsExceptionTooLate(t *testing.T) {
	_, r, _ := run(t, map[string]string{"t.php": `<?php
function f(): void /*. triggers E_WARNING .*/ {}
/*. pragma 'error_throws_exception' 'ErrorException'; .*/
`})
	if got := errorCodes(r); strings.Join(got, ",") != diag.E0604 {
		t.Errorf("codes = %v", got)
	}
}

func TestFatalErrorAbortsOnlyItsUnit(t *testing.T) {
	g, r, _ := run(t, map[string]string{
		"bad.php":  "<?php\nclass Broken {\n\tpublic function f(: void {}\n}\n",
		"good.php": "<?php\nclass Good {}\n",
	})
	if n := r.Count(diag.LevelFatal); n != 1 {
		t.Errorf("fatal = %d, want 1", n)
	}
	if g.Class("Good") == nil {
		t.Error("Good not declared")
	}
	if c := g.Class("Broken"); c == nil || !c.Complete {
		t.Error("aborted class should be closed")
	}
}

func TestUnusedUseNotice(t *testing.T) {
	_, r, _ := run(t, map[string]string{"t.php": "<?php\nuse a\\B;\nuse c\\D;\n$x = new D();\n"})
	got := r.ByCode(diag.N0620)
	if len(got) != 1 || !strings.Contains(got[0].Message, `a\B`) {
		t.Errorf("N0620 = %v", got)
	}
}

func TestMissingVisibilityNotice(t *testing.T) {
	_, r, _ := run(t, map[string]string{"t.php": "<?php\nclass C { function f(): void {} }\n"})
	if got := r.ByCode(diag.N0300); len(got) != 1 {
		t.Errorf("N0300 = %v", got)
	}
}

func TestInferredReturnType(t *testing.T) {
	g, r, _ := run(t, map[string]string{"t.php": `<?php
function a() { return 1; }
function b() { echo 1; }
`})
	expectClean(t, r)
	if got := g.Function("a").Sig.Return; !types.IsUnknown(got) {
		t.Errorf("a() returns %v, want unknown", got)
	}
	if got := g.Function("b").Sig.Return; got != types.Void {
		t.Errorf("b() returns %v, want void", got)
	}
}
