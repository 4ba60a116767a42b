package builtins

import (
	"testing"

	"github.com/rvtraveller/phplint/internal/typedesc"
	"github.com/rvtraveller/phplint/internal/types"
)

func TestLoadRegistersRoots(t *testing.T) {
	u := types.NewUniverse(nil)
	env := Load(u)

	roots := map[string]*types.ClassType{
		"Throwable":         u.Throwable,
		"Exception":         u.Exception,
		"Error":             u.Error,
		"ErrorException":    u.ErrorException,
		"Traversable":       u.Traversable,
		"Iterator":          u.Iterator,
		"IteratorAggregate": u.IteratorAggregate,
		"Countable":         u.Countable,
		"ArrayAccess":       u.ArrayAccess,
	}
	for name, c := range roots {
		if c == nil || c != env.Class(name) {
			t.Errorf("root %s not registered", name)
		}
	}
	if env.Class("object") != u.Object {
		t.Error("object not reachable through the environment")
	}
	if env.Class(`\runtimeexception`) == nil {
		t.Error("class lookup should be case-insensitive and accept a leading backslash")
	}
}

func TestExceptionHierarchy(t *testing.T) {
	u := types.NewUniverse(nil)
	env := Load(u)

	oor := env.Class("OutOfRangeException")
	if !oor.Exception || !oor.IsChecked() || !oor.IsSubclassOf(u.Exception) {
		t.Errorf("OutOfRangeException: exception=%v checked=%v", oor.Exception, oor.IsChecked())
	}
	te := env.Class("TypeError")
	if !te.Exception || te.IsChecked() {
		t.Error("TypeError should be an unchecked exception")
	}
	if !u.Iterator.IsSubclassOf(u.Traversable) || !u.Iterator.Interface {
		t.Error("Iterator should extend Traversable")
	}
	if env.Class("Closure").Final != true {
		t.Error("Closure should be final")
	}
	if m := env.Class("ArrayIterator").SearchMethod("COUNT"); m == nil || m.Sig.Return != types.Int {
		t.Error("ArrayIterator::count() not found")
	}
	if got := env.Class("ArrayIterator").UnimplementedMethods(); len(got) != 0 {
		t.Errorf("ArrayIterator leaves %d methods unimplemented", len(got))
	}
}

func TestFunctionsAndConstants(t *testing.T) {
	u := types.NewUniverse(nil)
	env := Load(u)

	f := env.Function("SPRINTF")
	if f == nil {
		t.Fatal("sprintf not found")
	}
	if got := f.Sig.String(); got != "string(string $format, mixed ...$values)" {
		t.Errorf("sprintf = %s", got)
	}
	fopen := env.Function("fopen")
	if !fopen.Sig.Errors.Has(types.E_WARNING) || fopen.Sig.Return != types.Resource {
		t.Errorf("fopen = %s", fopen.Sig)
	}
	if !env.Function("max").Sig.MoreArgs {
		t.Error("max should accept extra arguments")
	}

	if k := env.Constant("E_WARNING"); k == nil || k.Value != int64(2) || k.Type != types.Int {
		t.Errorf("E_WARNING = %+v", k)
	}
	if env.Constant("e_warning") != nil {
		t.Error("constants are case-sensitive")
	}
	if k := env.Constant("PHP_EOL"); k == nil || k.Type != types.String {
		t.Errorf("PHP_EOL = %+v", k)
	}
}

func TestParsePrototype(t *testing.T) {
	u := types.NewUniverse(nil)
	env := Load(u)
	td := typedesc.New(u, env.Resolver(), nil)

	sig, err := ParsePrototype(td, "&Exception[int](int &$a, string $b =, args) triggers E_NOTICE|E_WARNING")
	if err != nil {
		t.Fatal(err)
	}
	if !sig.ByRefReturn || sig.Mandatory != 1 || len(sig.Args) != 2 || !sig.MoreArgs {
		t.Errorf("sig = %s", sig)
	}
	if !sig.Args[0].ByRef || sig.Args[1].Mandatory {
		t.Errorf("args = %s, %s", sig.Args[0], sig.Args[1])
	}
	if sig.Errors != types.E_NOTICE|types.E_WARNING {
		t.Errorf("errors = %s", sig.Errors)
	}

	for _, bad := range []string{"int", "int($x", "int(int)", "Nope()", "int() triggers E_BOGUS", "int() returns int"} {
		if _, err := ParsePrototype(td, bad); err == nil {
			t.Errorf("ParsePrototype(%q) succeeded", bad)
		}
	}

	all := env.Classes()
	for i := 1; i < len(all); i++ {
		if types.Fold(all[i-1].Name) > types.Fold(all[i].Name) {
			t.Fatalf("Classes() not sorted at %s", all[i].Name)
		}
	}
}
