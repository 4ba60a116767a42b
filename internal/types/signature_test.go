package types

import (
	"strings"
	"testing"

	"github.com/rvtraveller/phplint/internal/i18n"
)

func sig(ret Type, args ...*FormalArgument) *Signature {
	s := NewSignature()
	s.Return = ret
	for _, a := range args {
		s.AddArg(a)
	}
	return s
}

func arg(name string, t Type) *FormalArgument {
	return &FormalArgument{Name: name, Type: t, Mandatory: true}
}

func optional(name string, t Type) *FormalArgument {
	return &FormalArgument{Name: name, Type: t}
}

func TestSignatureCompatibleWithItself(t *testing.T) {
	h := newHierarchy()
	u := h.u

	full := sig(u.Array(Int, String), arg("a", h.number), optional("b", Float))
	full.Variadic = &FormalArgument{Name: "rest", Type: Mixed, Variadic: true}
	full.Errors = E_WARNING | E_NOTICE
	full.Exceptions.Add(h.logicE)

	byRef := sig(h.number, &FormalArgument{Name: "x", Type: Int, ByRef: true, Mandatory: true})
	byRef.ByRefReturn = true

	more := sig(Void)
	more.MoreArgs = true

	for _, s := range []*Signature{NewSignature(), full, byRef, more, sig(Unknown, arg("u", Unknown))} {
		if r := s.CallCompatibleWithReason(s); r != "" {
			t.Errorf("%s incompatible with itself: %s", s, r)
		}
	}
}

func TestSignatureRules(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)
	h := newHierarchy()
	object := h.u.Object

	withErrors := func(s *Signature, e ErrorSet) *Signature { s.Errors = e; return s }
	throwing := func(s *Signature, ex ...*ClassType) *Signature {
		for _, e := range ex {
			s.Exceptions.Add(e)
		}
		return s
	}
	byRefReturn := func(s *Signature) *Signature { s.ByRefReturn = true; return s }
	moreArgs := func(s *Signature) *Signature { s.MoreArgs = true; return s }
	variadic := func(s *Signature, t Type) *Signature {
		s.Variadic = &FormalArgument{Name: "v", Type: t, Variadic: true}
		return s
	}

	tests := []struct {
		name       string
		over, base *Signature
		reason     string // 期望原因中出现的片段，空表示兼容
	}{
		{"contravariant arg fails", sig(Void, arg("x", h.exception)), sig(Void, arg("x", object)), "argument #1"},
		{"wider arg ok", sig(Void, arg("x", object)), sig(Void, arg("x", h.exception)), ""},
		{"non-class arg must be equal", sig(Void, arg("x", Float)), sig(Void, arg("x", Int)), "type float is not compatible with int"},
		{"unknown arg ok", sig(Void, arg("x", Unknown)), sig(Void, arg("x", h.number)), ""},
		{"covariant return ok", sig(h.exception), sig(object), ""},
		{"unrelated return fails", sig(h.exception), sig(Int), "return type"},
		{"void vs int", sig(Void), sig(Int), "return type void"},
		{"int vs void", sig(Int), sig(Void), "return type int"},
		{"by-ref flag", byRefReturn(sig(Int)), sig(Int), "by reference"},
		{"by-ref needs equal types", byRefReturn(sig(h.runtime)), byRefReturn(sig(h.exception)), "same type"},
		{"more args added", moreArgs(sig(Void)), sig(Void), "unlimited extra arguments but the overridden"},
		{"more args dropped", sig(Void), moreArgs(sig(Void)), "overridden one accepts"},
		{"too many mandatory", sig(Void, arg("a", Int), arg("b", Int)), sig(Void, arg("a", Int), optional("b", Int)), "requires 2 mandatory"},
		{"too few args", sig(Void, arg("a", Int)), sig(Void, arg("a", Int), optional("b", Int)), "declares 1 arguments"},
		{"extra optional ok", sig(Void, arg("a", Int), optional("b", Int)), sig(Void, arg("a", Int)), ""},
		{"by-ref arg", sig(Void, &FormalArgument{Name: "a", Type: Int, ByRef: true, Mandatory: true}), sig(Void, arg("a", Int)), "by-reference mode"},
		{"variadic missing", sig(Void), variadic(sig(Void), Int), "variadic argument, this one does not"},
		{"variadic type", variadic(sig(Void), String), variadic(sig(Void), Int), "variadic argument: type string"},
		{"variadic added ok", variadic(sig(Void), Int), sig(Void), ""},
		{"extra errors", withErrors(sig(Void), E_WARNING|E_NOTICE), withErrors(sig(Void), E_WARNING), "triggers E_NOTICE"},
		{"fewer errors ok", withErrors(sig(Void), E_WARNING), withErrors(sig(Void), E_WARNING|E_NOTICE), ""},
		{"broader exception", throwing(sig(Void), h.exception), throwing(sig(Void), h.logicE), "throws Exception"},
		{"narrower exception ok", throwing(sig(Void), h.logicE), throwing(sig(Void), h.exception), ""},
		{"unchecked exception ignored", throwing(sig(Void), h.runtime), sig(Void), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.over.CallCompatibleWithReason(tt.base)
			if tt.reason == "" {
				if got != "" {
					t.Errorf("unexpected incompatibility: %s", got)
				}
				return
			}
			if !strings.Contains(got, tt.reason) {
				t.Errorf("reason %q does not mention %q", got, tt.reason)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	h := newHierarchy()
	s := NewSignature()
	s.Errors = E_WARNING
	s.ConvertErrors(h.logicE)
	if s.Errors != 0 || !s.Exceptions.Covers(h.logicE) {
		t.Errorf("errors=%s exceptions=%s", s.Errors, s.Exceptions.String())
	}

	clean := NewSignature()
	clean.ConvertErrors(h.logicE)
	if clean.Exceptions.Len() != 0 {
		t.Error("signature without triggers gained an exception")
	}
}

func TestSignatureString(t *testing.T) {
	h := newHierarchy()
	s := sig(Int, arg("a", String), optional("b", h.number))
	s.Variadic = &FormalArgument{Name: "c", Type: Float, Variadic: true}
	s.Errors = E_WARNING
	want := "int(string $a, Number $b =, float ...$c) triggers E_WARNING"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSubstSignature(t *testing.T) {
	g := newGenerics()
	s := sig(g.paramT, arg("x", g.u.Array(Int, g.paramT)), arg("n", Int))
	ns := g.u.SubstSignature(s, Replacements{g.paramT: g.number})
	if ns == s {
		t.Fatal("signature not copied")
	}
	if ns.Return != g.number || ns.Args[0].Type.String() != "Number[int]" || ns.Args[1] != s.Args[1] {
		t.Errorf("substituted = %s", ns)
	}
	if g.u.SubstSignature(s, Replacements{g.paramC: g.number}) != s {
		t.Error("unchanged signature should be shared")
	}
}
