package lexer

import "testing"

func collectTokens(input string) []Token {
	l := New(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}
	return toks
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	toks := collectTokens("Wake wake Sleep sleep")
	want := []TokenType{WAKE, IDENT, SLEEP, IDENT, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, typ)
		}
	}
}

func TestTwoCharOperatorsPrecedeSingleChar(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"==", EQ_EQ},
		{"!=", NOT_EQ},
		{"<=", LESS_EQ},
		{">=", GREATER_EQ},
		{"&&", AND_AND},
		{"||", OR_OR},
		{"!", EXCLAMATION},
		{"<", LESS},
		{">", GREATER},
	}
	for _, tt := range tests {
		toks := collectTokens(tt.input)
		if toks[0].Type != tt.want {
			t.Errorf("input %q: got %s, want %s", tt.input, toks[0].Type, tt.want)
		}
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		input   string
		typ     TokenType
		literal string
	}{
		{"123", INT, "123"},
		{"3.14", FLOAT, "3.14"},
		{"0", INT, "0"},
	}
	for _, tt := range tests {
		toks := collectTokens(tt.input)
		if toks[0].Type != tt.typ || toks[0].Literal != tt.literal {
			t.Errorf("input %q: got (%s, %q), want (%s, %q)", tt.input, toks[0].Type, toks[0].Literal, tt.typ, tt.literal)
		}
	}
}

func TestTrailingDotIsError(t *testing.T) {
	l := New("1. Sleep")
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lexical error for a trailing dot")
	}
}

func TestDoubleDotIsError(t *testing.T) {
	l := New("1.2.3")
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lexical error for a second '.'")
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{`"drop \q"`, "drop q"},
	}
	for _, tt := range tests {
		toks := collectTokens(tt.input)
		if toks[0].Type != STRING {
			t.Fatalf("input %q: got token type %s, want STRING", tt.input, toks[0].Type)
		}
		if toks[0].Literal != tt.want {
			t.Errorf("input %q: got %q, want %q", tt.input, toks[0].Literal, tt.want)
		}
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	l := New(`"never closes`)
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lexical error for an unterminated string")
	}
}

func TestRawNewlineInStringIsError(t *testing.T) {
	l := New("\"line1\nline2\"")
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lexical error for a raw newline in a string")
	}
}

func TestUnterminatedBlockCommentIsError(t *testing.T) {
	l := New("/* never closes")
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lexical error for an unterminated block comment")
	}
}

func TestLineCommentSkipped(t *testing.T) {
	toks := collectTokens("Box // comment\nx")
	if toks[0].Type != BOX || toks[1].Type != IDENT || toks[1].Literal != "x" {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("Box\nx paws 1")
	first := l.NextToken() // Box at 1:1
	if first.Pos.Line != 1 || first.Pos.Column != 1 {
		t.Errorf("Box: got %s, want 1:1", first.Pos)
	}
	second := l.NextToken() // x at 2:1
	if second.Pos.Line != 2 || second.Pos.Column != 1 {
		t.Errorf("x: got %s, want 2:1", second.Pos)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors()))
	}
}

func TestKeywordRoundTrip(t *testing.T) {
	// A lexer-emitted keyword token's lexeme, fed back as source,
	// retokenizes to the same kind.
	for lexeme, typ := range keywords {
		toks := collectTokens(lexeme)
		if toks[0].Type != typ {
			t.Errorf("round-trip %q: got %s, want %s", lexeme, toks[0].Type, typ)
		}
	}
}

func TestEmptyProgramTokens(t *testing.T) {
	toks := collectTokens("Wake Sleep")
	want := []TokenType{WAKE, SLEEP, EOF}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, typ)
		}
	}
}
