package parser

import (
	"testing"

	"github.com/ShahzebX/MeowScript/internal/ast"
	"github.com/ShahzebX/MeowScript/internal/lexer"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	l := lexer.New(src)
	p := New(l, src, "")
	prog := p.Parse()
	return prog, p
}

func TestParseVarDeclAndPrint(t *testing.T) {
	src := `Wake
Box x paws 1 + 2
Meow(x)
Sleep`
	prog, p := parseProgram(t, src)
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("statement 0: got %T, want *ast.VarDecl", prog.Statements[0])
	}
	if decl.Name != "x" {
		t.Errorf("got name %q, want x", decl.Name)
	}
	bin, ok := decl.Init.(*ast.Binary)
	if !ok || bin.Op != "+" {
		t.Fatalf("init: got %#v, want Binary(+)", decl.Init)
	}
	if _, ok := prog.Statements[1].(*ast.Print); !ok {
		t.Fatalf("statement 1: got %T, want *ast.Print", prog.Statements[1])
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"1 < 2 == 3 < 4", "((1 < 2) == (3 < 4))"},
		{"a || b && c", "(a || (b && c))"},
		{"!a == b", "((!a) == b)"},
		{"-a * b", "((-a) * b)"},
	}
	for _, tt := range tests {
		src := "Wake\nBox r paws " + tt.src + "\nSleep"
		prog, p := parseProgram(t, src)
		if len(p.Errors()) != 0 {
			t.Fatalf("input %q: unexpected errors: %v", tt.src, p.Errors())
		}
		decl := prog.Statements[0].(*ast.VarDecl)
		if got := decl.Init.String(); got != tt.want {
			t.Errorf("input %q: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestParseFuncDefAndCall(t *testing.T) {
	src := `Wake
Hunt add(a, b) {
  Bring a + b
}
Box total paws add(1, 2)
Sleep`
	prog, p := parseProgram(t, src)
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	fn, ok := prog.Statements[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("statement 0: got %T, want *ast.FuncDef", prog.Statements[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("got %+v", fn)
	}
	ret, ok := fn.Body[0].(*ast.Return)
	if !ok {
		t.Fatalf("body 0: got %T, want *ast.Return", fn.Body[0])
	}
	if _, ok := ret.Value.(*ast.Binary); !ok {
		t.Fatalf("return value: got %T, want *ast.Binary", ret.Value)
	}

	decl := prog.Statements[1].(*ast.VarDecl)
	call, ok := decl.Init.(*ast.Call)
	if !ok || call.Callee != "add" || len(call.Args) != 2 {
		t.Fatalf("got %+v", decl.Init)
	}
}

func TestParseIfElseAndWhile(t *testing.T) {
	src := `Wake
Purr (x < 10) {
  Meow(x)
} Hiss {
  Meow(0)
}
Chase (x < 10) {
  x paws x + 1
}
Sleep`
	prog, p := parseProgram(t, src)
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	ifNode, ok := prog.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("statement 0: got %T, want *ast.If", prog.Statements[0])
	}
	if !ifNode.HasElse || len(ifNode.Then) != 1 || len(ifNode.Else) != 1 {
		t.Fatalf("got %+v", ifNode)
	}
	whileNode, ok := prog.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("statement 1: got %T, want *ast.While", prog.Statements[1])
	}
	if len(whileNode.Body) != 1 {
		t.Fatalf("got %+v", whileNode)
	}
	if _, ok := whileNode.Body[0].(*ast.Assign); !ok {
		t.Fatalf("while body 0: got %T, want *ast.Assign", whileNode.Body[0])
	}
}

func TestMissingSleepIsSyntaxError(t *testing.T) {
	_, p := parseProgram(t, "Wake\nBox x paws 1")
	if len(p.Errors()) == 0 {
		t.Fatal("expected a syntax error for a missing Sleep")
	}
}

// A stray ';' is not consumed by any production — the grammar is
// whitespace-delimited, not semicolon-terminated — so it is a syntax
// error that the parser must recover from at the next statement.
func TestStraySemicolonIsSyntaxError(t *testing.T) {
	src := `Wake
Box x paws 1
;
Box y paws 2
Sleep`
	prog, p := parseProgram(t, src)
	if len(p.Errors()) != 1 {
		t.Fatalf("got %d errors, want exactly 1 for the stray ';': %v", len(p.Errors()), p.Errors())
	}
	found := false
	for _, s := range prog.Statements {
		if decl, ok := s.(*ast.VarDecl); ok && decl.Name == "y" {
			found = true
		}
	}
	if !found {
		t.Fatal("parser did not recover to parse the statement after the stray ';'")
	}
}

func TestCallStatement(t *testing.T) {
	src := `Wake
Hunt noop() {
  Bring 0
}
noop()
Sleep`
	prog, p := parseProgram(t, src)
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	stmt, ok := prog.Statements[1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("statement 1: got %T, want *ast.ExprStmt", prog.Statements[1])
	}
	if stmt.Call.Callee != "noop" {
		t.Errorf("got callee %q, want noop", stmt.Call.Callee)
	}
}

// TestEndToEndScenarioSources parses the exact §8 end-to-end scenario
// sources (semicolon-free, as the grammar defines) and checks the
// shape each one must produce.
func TestEndToEndScenarioSources(t *testing.T) {
	t.Run("assignment and arithmetic", func(t *testing.T) {
		prog, p := parseProgram(t, "Wake Box x paws 10 + 20 Sleep")
		if len(p.Errors()) != 0 {
			t.Fatalf("unexpected errors: %v", p.Errors())
		}
		if len(prog.Statements) != 1 {
			t.Fatalf("got %d statements, want 1", len(prog.Statements))
		}
		decl, ok := prog.Statements[0].(*ast.VarDecl)
		if !ok || decl.Name != "x" {
			t.Fatalf("got %+v", prog.Statements[0])
		}
		if _, ok := decl.Init.(*ast.Binary); !ok {
			t.Fatalf("init: got %T, want *ast.Binary", decl.Init)
		}
	})

	t.Run("if-else", func(t *testing.T) {
		prog, p := parseProgram(t, "Wake Purr (1) { Meow(1) } Hiss { Meow(2) } Sleep")
		if len(p.Errors()) != 0 {
			t.Fatalf("unexpected errors: %v", p.Errors())
		}
		ifNode, ok := prog.Statements[0].(*ast.If)
		if !ok || !ifNode.HasElse {
			t.Fatalf("got %+v", prog.Statements[0])
		}
	})

	t.Run("while loop", func(t *testing.T) {
		prog, p := parseProgram(t, "Wake Box i paws 0 Chase (i < 3) { i paws i + 1 } Sleep")
		if len(p.Errors()) != 0 {
			t.Fatalf("unexpected errors: %v", p.Errors())
		}
		if len(prog.Statements) != 2 {
			t.Fatalf("got %d statements, want 2", len(prog.Statements))
		}
		if _, ok := prog.Statements[1].(*ast.While); !ok {
			t.Fatalf("statement 1: got %T, want *ast.While", prog.Statements[1])
		}
	})

	t.Run("function call", func(t *testing.T) {
		prog, p := parseProgram(t, "Wake Hunt add(x, y) { Bring x + y } add(5, 3) Sleep")
		if len(p.Errors()) != 0 {
			t.Fatalf("unexpected errors: %v", p.Errors())
		}
		if len(prog.Statements) != 2 {
			t.Fatalf("got %d statements, want 2", len(prog.Statements))
		}
		if _, ok := prog.Statements[0].(*ast.FuncDef); !ok {
			t.Fatalf("statement 0: got %T, want *ast.FuncDef", prog.Statements[0])
		}
		stmt, ok := prog.Statements[1].(*ast.ExprStmt)
		if !ok || stmt.Call.Callee != "add" {
			t.Fatalf("got %+v", prog.Statements[1])
		}
	})
}
