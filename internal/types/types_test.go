package types

import (
	"testing"

	"github.com/rvtraveller/phplint/internal/i18n"
)

// hierarchy 构造测试用的类层次：
//
//	interface Comparable
//	class Number implements Comparable
//	final class Text implements Comparable
//	class Exception (exception)
//	class RuntimeException extends Exception (unchecked)
type hierarchy struct {
	u                          *Universe
	comparable, number, text   *ClassType
	exception, runtime, logicE *ClassType
}

func newHierarchy() *hierarchy {
	u := NewUniverse(nil)
	h := &hierarchy{u: u}

	h.comparable = NewClass("Comparable", noPos)
	h.comparable.Interface = true

	h.number = NewClass("Number", noPos)
	h.number.Implemented = []*ClassType{h.comparable}

	h.text = NewClass("Text", noPos)
	h.text.Final = true
	h.text.Implemented = []*ClassType{h.comparable}

	h.exception = NewClass("Exception", noPos)
	h.exception.Exception = true
	u.Exception = h.exception

	h.runtime = NewClass("RuntimeException", noPos)
	h.runtime.Exception = true
	h.runtime.Unchecked = true
	h.runtime.Extended = h.exception

	h.logicE = NewClass("LogicException", noPos)
	h.logicE.Exception = true
	h.logicE.Extended = h.exception
	return h
}

func TestSubclassReflexiveAndFinal(t *testing.T) {
	h := newHierarchy()
	all := []*ClassType{h.u.Object, h.comparable, h.number, h.text, h.exception, h.runtime}
	for _, c := range all {
		if !c.IsSubclassOf(c) {
			t.Errorf("%s is not a subclass of itself", c)
		}
		if !c.IsSubclassOf(h.u.Object) {
			t.Errorf("%s is not a subclass of object", c)
		}
		if c != h.text && c.IsSubclassOf(h.text) {
			t.Errorf("%s is a subclass of final %s", c, h.text)
		}
	}
	if !h.number.IsSubclassOf(h.comparable) || !h.text.IsSubclassOf(h.comparable) {
		t.Error("implemented interface not reached")
	}
	if h.u.Object.IsSubclassOf(h.number) {
		t.Error("object is a subclass of Number")
	}
	if !h.runtime.IsSubclassOf(h.exception) || h.exception.IsSubclassOf(h.runtime) {
		t.Error("extends chain wrong")
	}
}

func TestPrimitiveAssignability(t *testing.T) {
	h := newHierarchy()
	arr := h.u.Array(Int, String)
	tests := []struct {
		rhs, lhs Type
		want     bool
	}{
		{Int, Int, true},
		{Int, Float, true},
		{Float, Int, false},
		{String, Int, false},
		{Boolean, Mixed, true},
		{arr, Mixed, true},
		{h.number, Unknown, true},
		{Unknown, Int, true},
		{Guess, h.number, true},
		{Null, String, true},
		{Null, arr, true},
		{Null, h.number, true},
		{Null, Int, false},
		{Void, Void, true},
		{Void, Int, false},
		{Int, Void, false},
		{h.number, h.comparable, true},
		{h.comparable, h.number, false},
		{h.number, String, false},
		{String, h.number, false},
	}
	for _, tt := range tests {
		if got := tt.rhs.AssignableTo(tt.lhs); got != tt.want {
			t.Errorf("%s.AssignableTo(%s) = %v, want %v", tt.rhs, tt.lhs, got, tt.want)
		}
	}
}

func TestArrayFactory(t *testing.T) {
	u := NewUniverse(nil)
	a1 := u.Array(Int, String)
	a2 := u.Array(Int, String)
	if !a1.Equals(a2) {
		t.Error("equal arrays compare unequal")
	}
	if a1.Equals(u.Array(String, String)) || a1.Equals(u.Array(Int, Float)) {
		t.Error("different arrays compare equal")
	}
	if u.Array(Boolean, Int).Index() != Mixed {
		t.Error("invalid index kind not normalized to mixed")
	}

	nested := u.Array(Int, u.Array(String, Float))
	if got := nested.String(); got != "float[int][string]" {
		t.Errorf("nested array prints %q", got)
	}
	if got := u.Array(Mixed, Mixed).String(); got != "mixed[]" {
		t.Errorf("mixed array prints %q", got)
	}

	if !u.Array(Int, Int).AssignableTo(u.Array(Mixed, Float)) {
		t.Error("int[int] should be assignable to float[]")
	}
	if u.Array(String, Int).AssignableTo(u.Array(Int, Int)) {
		t.Error("int[string] should not be assignable to int[int]")
	}
	if !u.Array(Unknown, Unknown).AssignableTo(u.Array(Int, String)) {
		t.Error("empty array literal should be assignable to any array")
	}
}

func TestCanCastTo(t *testing.T) {
	h := newHierarchy()
	u := h.u
	tmpl := NewClass("Box", noPos)
	param := NewParameter("T", tmpl, noPos)
	tmpl.AddParameter(param)

	tests := []struct {
		from, to Type
		want     bool
	}{
		{Mixed, Int, true},
		{Mixed, h.number, true},
		{Int, Float, true},
		{Float, Int, true},
		{String, Int, false},
		{Mixed, Void, false},
		{Mixed, Null, false},
		{Mixed, Unknown, false},
		{h.comparable, h.number, true},
		{h.number, h.comparable, true},
		{h.exception, h.runtime, true},
		{h.number, h.exception, false},
		{h.comparable, h.text, true},
		{Mixed, param, false},
		{h.number, param, false},
		{u.Array(Mixed, Mixed), u.Array(Int, String), true},
		{u.Array(Int, h.comparable), u.Array(Int, h.number), true},
		{u.Array(Int, String), u.Array(Int, Int), false},
	}
	for _, tt := range tests {
		if got := tt.from.CanCastTo(tt.to); got != tt.want {
			t.Errorf("%s.CanCastTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestErrorSet(t *testing.T) {
	w, ok := ParseErrorName("E_WARNING")
	if !ok || w != E_WARNING {
		t.Fatalf("ParseErrorName(E_WARNING) = %v, %v", w, ok)
	}
	if _, ok := ParseErrorName("e_warning"); ok {
		t.Error("error names are case-sensitive")
	}
	s := E_NOTICE | E_WARNING
	if s.String() != "E_WARNING|E_NOTICE" {
		t.Errorf("String() = %q", s.String())
	}
	if !E_WARNING.Subset(s) || s.Subset(E_WARNING) {
		t.Error("Subset wrong")
	}
}

func TestExceptionSetMinimal(t *testing.T) {
	h := newHierarchy()
	var s ExceptionSet
	s.Add(h.runtime)
	s.Add(h.logicE)
	s.Add(h.exception)
	if s.Len() != 1 || s.List()[0] != h.exception {
		t.Errorf("set = %s, want Exception", s.String())
	}
	s.Add(h.logicE)
	if s.Len() != 1 {
		t.Errorf("subclass added to covering set: %s", s.String())
	}

	var narrow ExceptionSet
	narrow.Add(h.logicE)
	narrow.Add(h.runtime)
	if got := s.NotCoveredBy(&narrow); len(got) != 1 || got[0] != h.exception {
		t.Errorf("NotCoveredBy = %v", got)
	}
	if got := narrow.NotCoveredBy(&ExceptionSet{}); len(got) != 1 || got[0] != h.logicE {
		t.Errorf("unchecked exception should be ignored, got %v", got)
	}
}

func TestMemberLookup(t *testing.T) {
	h := newHierarchy()
	iface := NewClass("Shape", noPos)
	iface.Interface = true
	iface.AddMethod(&ClassMethod{Name: "area", Abstract: true, Sig: NewSignature()})
	iface.AddConstant(&ClassConstant{Name: "SIDES", Type: Int})

	base := NewClass("Base", noPos)
	base.Abstract = true
	base.Implemented = []*ClassType{iface}
	base.AddProperty(&ClassProperty{Name: "x", Type: Int})

	child := NewClass("Child", noPos)
	child.Extended = base

	if child.SearchProperty("x") == nil || child.SearchConstant("SIDES") == nil {
		t.Error("inherited members not found")
	}
	if m := child.SearchMethod("AREA"); m == nil || m.Class != iface {
		t.Error("method lookup should be case-insensitive and reach interfaces")
	}
	if got := child.UnimplementedMethods(); len(got) != 1 || got[0].Name != "area" {
		t.Errorf("UnimplementedMethods = %v", got)
	}

	child.AddMethod(&ClassMethod{Name: "Area", Sig: NewSignature()})
	if got := child.UnimplementedMethods(); len(got) != 0 {
		t.Errorf("implemented method still reported: %v", got)
	}
	if old := child.AddMethod(&ClassMethod{Name: "area"}); old == nil {
		t.Error("duplicate method accepted")
	}
	_ = h
}

func TestVisibilityString(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)
	if Public.String() != "public" || Protected.String() != "protected" || Private.String() != "private" {
		t.Error("visibility names")
	}
}
