package typedesc

import (
	"testing"

	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/i18n"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/types"
)

type fixture struct {
	u        *types.Universe
	classes  map[string]*types.ClassType
	reporter *diag.Reporter
	parser   *Parser
}

func newFixture() *fixture {
	i18n.SetLanguage(i18n.LangEnglish)
	f := &fixture{
		u:        types.NewUniverse(nil),
		classes:  make(map[string]*types.ClassType),
		reporter: diag.NewReporter(),
	}
	add := func(name string) *types.ClassType {
		c := types.NewClass(name, token.Position{})
		f.classes[name] = c
		return c
	}
	comparable := add("Comparable")
	comparable.Interface = true
	number := add("Number")
	number.Implemented = []*types.ClassType{comparable}
	add("Exception")
	add(`ns\Thing`)

	box := add("Box")
	t := types.NewParameter("T", box, token.Position{})
	t.SetBounds([]*types.ClassType{comparable})
	box.AddParameter(t)
	box.Complete = true

	pair := add("Pair")
	for _, n := range []string{"K", "V"} {
		pair.AddParameter(types.NewParameter(n, pair, token.Position{}))
	}
	pair.Complete = true
	f.classes["T"] = t

	resolver := ResolverFunc(func(name string, pos token.Position) *types.ClassType {
		if c, ok := f.classes[name]; ok {
			return c
		}
		f.reporter.Report(diag.New(diag.E0100, pos, name))
		return nil
	})
	f.parser = New(f.u, resolver, f.reporter)
	return f
}

func TestRoundTrip(t *testing.T) {
	f := newFixture()
	u := f.u
	all := []types.Type{
		types.Void, types.Null, types.Boolean, types.Int, types.Float, types.String,
		types.Resource, types.Mixed, types.Unknown, types.Guess, u.Object,
		f.classes["Number"], f.classes[`ns\Thing`],
		u.Array(types.Int, types.String),
		u.Array(types.Mixed, types.Mixed),
		u.Array(types.Int, u.Array(types.String, types.Float)),
		u.Array(types.String, f.classes["Number"]),
	}
	for _, want := range all {
		got, err := f.parser.ParseType(want.String())
		if err != nil {
			t.Errorf("ParseType(%q): %v", want.String(), err)
			continue
		}
		if !got.Equals(want) {
			t.Errorf("ParseType(%q) = %s", want.String(), got)
		}
	}
	if f.reporter.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", f.reporter.Diagnostics())
	}
}

func TestArraySyntaxes(t *testing.T) {
	f := newFixture()
	u := f.u
	tests := []struct {
		text string
		want types.Type
	}{
		{"array", u.Array(types.Mixed, types.Mixed)},
		{"array[]", u.Array(types.Mixed, types.Mixed)},
		{"array[int]string", u.Array(types.Int, types.String)},
		{"array[int][string]float", u.Array(types.Int, u.Array(types.String, types.Float))},
		{"array[]Number", u.Array(types.Mixed, f.classes["Number"])},
		{"string[int]", u.Array(types.Int, types.String)},
		{" int [ ] ", u.Array(types.Mixed, types.Int)},
		{"bool", types.Boolean},
	}
	for _, tt := range tests {
		got, err := f.parser.ParseType(tt.text)
		if err != nil {
			t.Errorf("ParseType(%q): %v", tt.text, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("ParseType(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestGenerics(t *testing.T) {
	f := newFixture()
	u := f.u
	box := f.classes["Box"]

	b1 := f.parser.Parse("Box<Number>", token.Position{})
	b2 := f.parser.Parse("Box < Number >", token.Position{})
	if b1 != types.Type(u.Instance(box, []*types.ClassType{f.classes["Number"]})) || b1 != b2 {
		t.Errorf("Box<Number> = %s / %s", b1, b2)
	}
	if got := f.parser.Parse("Box", token.Position{}); got != types.Type(u.DefaultActualization(box)) {
		t.Errorf("raw template = %s, want default actualization", got)
	}
	if got := f.parser.Parse("Pair<?, ? extends Number>", token.Position{}); got.String() != "Pair<?, ? extends Number>" {
		t.Errorf("wildcards = %s", got)
	}
	if got := f.parser.Parse("Pair<Number, ? parent Number>[]", token.Position{}); got.String() != "Pair<Number, ? parent Number>[]" {
		t.Errorf("generic array = %s", got)
	}
	if f.reporter.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", f.reporter.Diagnostics())
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		text string
		code string
	}{
		{"Missing", diag.E0100},
		{"Box<Exception>", diag.E0106},
		{"Number<Number>", diag.E0104},
		{"Pair<Number>", diag.E0105},
		{"T<Number>", diag.E0107},
		{"int[float]", diag.E0102},
		{"Box<int>", diag.E0102},
		{"int[", diag.E0102},
		{"", diag.E0102},
		{"int string", diag.E0102},
	}
	for _, tt := range tests {
		f := newFixture()
		got := f.parser.Parse(tt.text, token.Position{Filename: "a.php", Line: 3, Column: 5})
		if got != types.Unknown {
			t.Errorf("Parse(%q) = %s, want unknown", tt.text, got)
		}
		if n := len(f.reporter.ByCode(tt.code)); n != 1 {
			t.Errorf("Parse(%q): %d diagnostics with %s, all: %v", tt.text, n, tt.code, f.reporter.Diagnostics())
		}
	}
}

func TestCaseMismatchAndUnion(t *testing.T) {
	f := newFixture()
	if got := f.parser.Parse("Int", token.Position{}); got != types.Int {
		t.Errorf("Int = %s", got)
	}
	if got := f.parser.Parse("OBJECT", token.Position{}); got != types.Type(f.u.Object) {
		t.Errorf("OBJECT = %s", got)
	}
	if n := len(f.reporter.ByCode(diag.N0100)); n != 2 {
		t.Errorf("%d case notices, want 2", n)
	}

	if got := f.parser.Parse("string|Number", token.Position{}); got != types.String {
		t.Errorf("union = %s, want first alternative", got)
	}
	w := f.reporter.ByCode(diag.W0100)
	if len(w) != 1 || w[0].Message != "multiple types string|Number are not supported, using string" {
		t.Errorf("union warning = %v", w)
	}
}
