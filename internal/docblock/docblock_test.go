package docblock

import (
	"reflect"
	"testing"

	"github.com/rvtraveller/phplint/internal/token"
)

func TestParse(t *testing.T) {
	text := `/**
 * Returns the element at the given index.
 * Second line of description.
 *
 * @param int $index  Position to read.
 * @param Box<K, V> &$out Receives the value.
 * @param string ...$rest
 * @return mixed[int] the element
 * @throws OutOfRangeException, \ns\Other if out of bounds
 * @triggers E_WARNING
 * @access private
 * @since 1.2
 */`
	d := Parse(text, token.Position{Filename: "a.php", Line: 10, Column: 5})

	if d.Description != "Returns the element at the given index. Second line of description." {
		t.Errorf("description = %q", d.Description)
	}
	if !reflect.DeepEqual(d.ParamOrder, []string{"index", "out", "rest"}) {
		t.Errorf("params = %v", d.ParamOrder)
	}
	if p := d.Param("index"); p == nil || p.Type != "int" || p.Pos.Line != 14 {
		t.Errorf("index = %+v", p)
	}
	if p := d.Param("out"); p == nil || p.Type != "Box<K, V>" || !p.ByRef {
		t.Errorf("out = %+v", p)
	}
	if p := d.Param("rest"); p == nil || p.Type != "string" || !p.Variadic {
		t.Errorf("rest = %+v", p)
	}
	if d.Return == nil || d.Return.Type != "mixed[int]" {
		t.Errorf("return = %+v", d.Return)
	}
	if len(d.Throws) != 2 || d.Throws[0].Type != "OutOfRangeException" || d.Throws[1].Type != `\ns\Other` {
		t.Errorf("throws = %+v", d.Throws)
	}
	if len(d.Triggers) != 1 || d.Triggers[0].Type != "E_WARNING" {
		t.Errorf("triggers = %+v", d.Triggers)
	}
	if !d.Private {
		t.Error("@access private not recognized")
	}
	if got := d.Tags["since"]; len(got) != 1 || got[0] != "1.2" {
		t.Errorf("since = %v", got)
	}
}

func TestParseVarAndUnion(t *testing.T) {
	d := Parse("/** @var int | string counter */", token.Position{Line: 1, Column: 1})
	if d.Var == nil || d.Var.Type != "int | string" {
		t.Errorf("var = %+v", d.Var)
	}

	d = Parse("/** @private */", token.Position{Line: 1})
	if !d.Private || d.Var != nil || len(d.Params) != 0 {
		t.Errorf("doc = %+v", d)
	}

	d = Parse("/** @param $x untyped */", token.Position{Line: 1})
	if p := d.Param("x"); p == nil || p.Type != "" {
		t.Errorf("untyped param = %+v", p)
	}
	var nilDoc *DocBlock
	if nilDoc.Param("x") != nil {
		t.Error("nil doc block should have no params")
	}
}
