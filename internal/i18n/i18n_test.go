package i18n

import "testing"

func TestCataloguesComplete(t *testing.T) {
	for id := range messagesEN {
		if _, ok := messagesZH[id]; !ok {
			t.Errorf("message %s missing from zh catalogue", id)
		}
	}
	for id := range messagesZH {
		if _, ok := messagesEN[id]; !ok {
			t.Errorf("message %s missing from en catalogue", id)
		}
	}
}

func TestTranslate(t *testing.T) {
	defer SetLanguage(LangEnglish)

	SetLanguage(LangEnglish)
	if got := T(ErrUndefinedClass, "Foo"); got != "undefined class Foo" {
		t.Errorf("en: got %q", got)
	}
	SetLanguage(LangChinese)
	if got := T(ErrUndefinedClass, "Foo"); got != "未定义的类 Foo" {
		t.Errorf("zh: got %q", got)
	}
	if got := T(ErrInterfaceModifier, "static", "I::m()"); got != "接口成员 I::m() 不允许使用修饰符 static" {
		t.Errorf("zh indexed args: got %q", got)
	}
	if got := T("no.such.message"); got != "no.such.message" {
		t.Errorf("missing id: got %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"zh", LangChinese},
		{"zh_CN.UTF-8", LangChinese},
		{"ZH-CN", LangChinese},
		{"en_US.UTF-8", LangEnglish},
		{"", LangEnglish},
		{"fr", LangEnglish},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
