package lexer

import (
	"testing"

	"github.com/rvtraveller/phplint/internal/token"
)

func types(tokens []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestLexerBasicTokens(t *testing.T) {
	input := `<?php + - * / % = == === != !== < <= > >= && || ! ( ) { } [ ] , . ; : ? -> => :: @ \ ... ?? .=`

	expected := []token.TokenType{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.ASSIGN, token.EQ, token.IDENTICAL, token.NE, token.NOT_IDENTICAL,
		token.LT, token.LE, token.GT, token.GE,
		token.AND, token.OR, token.NOT,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET,
		token.COMMA, token.DOT, token.SEMICOLON, token.COLON, token.QUESTION,
		token.ARROW, token.DOUBLE_ARROW, token.DOUBLE_COLON,
		token.AT, token.BACKSLASH, token.ELLIPSIS, token.NULL_COALESCE, token.CONCAT_ASSIGN,
		token.EOF,
	}

	l := New(input, "test.php")
	tokens := l.ScanTokens()
	if l.HasErrors() {
		t.Fatalf("unexpected errors: %v", l.Errors())
	}
	if len(tokens) != len(expected) {
		t.Fatalf("token count mismatch: got %d, want %d (%v)", len(tokens), len(expected), types(tokens))
	}
	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("token[%d] type mismatch: got %s, want %s", i, tok.Type, expected[i])
		}
	}
}

func TestLexerKeywordsCaseInsensitive(t *testing.T) {
	input := `<?php CLASS Interface abstract EXTENDS implements function const static
	public protected private new use var namespace declare require_once instanceof
	int string forward pragma`

	expected := []token.TokenType{
		token.CLASS, token.INTERFACE, token.ABSTRACT, token.EXTENDS, token.IMPLEMENTS,
		token.FUNCTION, token.CONST, token.STATIC,
		token.PUBLIC, token.PROTECTED, token.PRIVATE, token.NEW, token.USE, token.VAR,
		token.NAMESPACE, token.DECLARE, token.REQUIRE_ONCE, token.INSTANCEOF,
		token.IDENT, token.IDENT, token.IDENT, token.IDENT,
		token.EOF,
	}

	tokens := New(input, "test.php").ScanTokens()
	if len(tokens) != len(expected) {
		t.Fatalf("token count mismatch: got %d, want %d", len(tokens), len(expected))
	}
	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("token[%d] type mismatch: got %s, want %s (literal: %s)", i, tok.Type, expected[i], tok.Literal)
		}
	}
}

func TestLexerVariables(t *testing.T) {
	tokens := New(`<?php $name $this $user123 $thisOne`, "test.php").ScanTokens()

	expected := []struct {
		typ     token.TokenType
		literal string
	}{
		{token.VARIABLE, "$name"},
		{token.THIS, "$this"},
		{token.VARIABLE, "$user123"},
		{token.VARIABLE, "$thisOne"},
	}
	for i, exp := range expected {
		if tokens[i].Type != exp.typ || tokens[i].Literal != exp.literal {
			t.Errorf("token[%d]: got %s %q, want %s %q", i, tokens[i].Type, tokens[i].Literal, exp.typ, exp.literal)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   token.TokenType
		value interface{}
	}{
		{"42", token.INT, int64(42)},
		{"0x1F", token.INT, int64(31)},
		{"0b101", token.INT, int64(5)},
		{"017", token.INT, int64(15)},
		{"1_000", token.INT, int64(1000)},
		{"3.14", token.FLOAT, 3.14},
		{"1e3", token.FLOAT, 1000.0},
		{".5", token.FLOAT, 0.5},
	}
	for _, tt := range tests {
		tokens := New("<?php "+tt.input, "test.php").ScanTokens()
		if tokens[0].Type != tt.typ {
			t.Errorf("%s: type %s, want %s", tt.input, tokens[0].Type, tt.typ)
			continue
		}
		if tokens[0].Value != tt.value {
			t.Errorf("%s: value %v, want %v", tt.input, tokens[0].Value, tt.value)
		}
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`'hello'`, "hello"},
		{`'it\'s'`, "it's"},
		{`'a\nb'`, `a\nb`},
		{`"a\nb"`, "a\nb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"\$x"`, "$x"},
	}
	for _, tt := range tests {
		tokens := New("<?php "+tt.input, "test.php").ScanTokens()
		if tokens[0].Type != token.STRING {
			t.Errorf("%s: type %s", tt.input, tokens[0].Type)
			continue
		}
		if tokens[0].Value != tt.want {
			t.Errorf("%s: value %q, want %q", tt.input, tokens[0].Value, tt.want)
		}
	}
}

func TestLexerTextBlocks(t *testing.T) {
	input := "<html>\n<?php echo 1; ?>\n<p>x</p>\n<?php $a;"
	tokens := New(input, "page.php").ScanTokens()

	expected := []token.TokenType{
		token.TEXT, token.IDENT, token.INT, token.SEMICOLON, token.CLOSE_TAG,
		token.TEXT, token.VARIABLE, token.SEMICOLON, token.EOF,
	}
	got := types(tokens)
	if len(got) != len(expected) {
		t.Fatalf("got %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("token[%d]: got %s, want %s", i, got[i], expected[i])
		}
	}
	if tokens[0].Value != "<html>\n" {
		t.Errorf("first text block = %q", tokens[0].Value)
	}
	// ?> 之后的换行属于结束标签
	if tokens[5].Value != "<p>x</p>\n" {
		t.Errorf("second text block = %q", tokens[5].Value)
	}
	if tokens[6].Pos.Line != 4 {
		t.Errorf("$a on line %d, want 4", tokens[6].Pos.Line)
	}
}

func TestLexerMetaCode(t *testing.T) {
	input := `<?php /*. forward class A; .*/ function f(/*. int .*/ $x) /*. throws E .*/ {}`
	tokens := New(input, "meta.php").ScanTokens()

	want := []string{"forward", "class", "A", ";", "function", "f", "(", "int", "$x", ")", "throws", "E", "{", "}", ""}
	if len(tokens) != len(want) {
		t.Fatalf("token count %d, want %d: %v", len(tokens), len(want), types(tokens))
	}
	for i, w := range want {
		if tokens[i].Literal != w {
			t.Errorf("token[%d] = %q, want %q", i, tokens[i].Literal, w)
		}
	}
}

func TestLexerComments(t *testing.T) {
	input := "<?php // line\n# hash\n/* block */ /** doc */ $x /**/ ;"
	tokens := New(input, "c.php").ScanTokens()

	expected := []token.TokenType{token.DOC_COMMENT, token.VARIABLE, token.SEMICOLON, token.EOF}
	got := types(tokens)
	if len(got) != len(expected) {
		t.Fatalf("got %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("token[%d]: got %s, want %s", i, got[i], expected[i])
		}
	}
	if tokens[0].Value != "/** doc */" {
		t.Errorf("doc comment value %q", tokens[0].Value)
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := New("<?php\nclass Foo {\n  public $x;\n}", "pos.php").ScanTokens()

	tests := []struct {
		idx       int
		line, col int
	}{
		{0, 2, 1},  // class
		{1, 2, 7},  // Foo
		{3, 3, 3},  // public
		{4, 3, 10}, // $x
	}
	for _, tt := range tests {
		pos := tokens[tt.idx].Pos
		if pos.Line != tt.line || pos.Column != tt.col {
			t.Errorf("token %q at %d:%d, want %d:%d", tokens[tt.idx].Literal, pos.Line, pos.Column, tt.line, tt.col)
		}
		if pos.Filename != "pos.php" {
			t.Errorf("filename %q", pos.Filename)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []string{
		`<?php 'unterminated`,
		`<?php /* open`,
		`<?php /*. class A {`,
		"<?php $ ;",
		"<?php `",
	}
	for _, input := range tests {
		l := New(input, "bad.php")
		tokens := l.ScanTokens()
		if !l.HasErrors() {
			t.Errorf("%q: expected errors", input)
		}
		found := false
		for _, tok := range tokens {
			if tok.Type == token.ILLEGAL {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: expected an ILLEGAL token", input)
		}
	}
}
