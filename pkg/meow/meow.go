// Package meow is the public façade over the four MeowScript compiler
// phases: it wires lexer, parser, semantic analyzer, and IR generator
// into the single Compile call the CLI (and any embedder) drives.
package meow

import (
	"github.com/ShahzebX/MeowScript/internal/ast"
	"github.com/ShahzebX/MeowScript/internal/errors"
	"github.com/ShahzebX/MeowScript/internal/ir"
	"github.com/ShahzebX/MeowScript/internal/lexer"
	"github.com/ShahzebX/MeowScript/internal/parser"
	"github.com/ShahzebX/MeowScript/internal/semantic"
)

// Result carries everything a caller might want from a compilation:
// the AST (always present once parsing starts), the symbol table
// (present once semantic analysis runs), the generated code, and
// every diagnostic collected along the way.
type Result struct {
	Program     *ast.Program
	Symbols     *semantic.SymbolTable
	Code        []ir.Instruction
	Diagnostics []*errors.CompilerError
}

// Options carries per-call settings; it does not change which phases run.
type Options struct {
	File string // used only in diagnostic messages; may be empty
}

// Lex runs only the lexical phase, returning every token and halting
// its own collection at the first lexical error (the lexer's
// contract), converted to CompilerErrors.
func Lex(source string, opts Options) ([]lexer.Token, []*errors.CompilerError) {
	l := lexer.New(source)
	var tokens []lexer.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return tokens, convertLexErrors(l.Errors(), source, opts.File)
}

// Parse runs the lexer and parser, halting at the first unrecoverable
// syntax error the parser cannot synchronize past.
func Parse(source string, opts Options) (*ast.Program, []*errors.CompilerError) {
	l := lexer.New(source)
	p := parser.New(l, source, opts.File)
	program := p.Parse()

	diags := convertLexErrors(l.Errors(), source, opts.File)
	diags = append(diags, p.Errors()...)
	return program, diags
}

// Compile runs the full pipeline: lex, parse, analyze, generate. It
// stops after parsing if there are syntax errors (codegen over a
// malformed tree is meaningless), and stops after semantic analysis if
// there are semantic errors, matching each phase's own halting
// contract.
func Compile(source string, opts Options) *Result {
	program, diags := Parse(source, opts)
	result := &Result{Program: program, Diagnostics: diags}
	if len(diags) > 0 {
		return result
	}

	analyzer := semantic.New(source, opts.File)
	analyzer.Analyze(program)
	result.Symbols = analyzer.Symbols()
	result.Diagnostics = append(result.Diagnostics, analyzer.Errors()...)
	if len(analyzer.Errors()) > 0 {
		return result
	}

	result.Code = ir.New().Generate(program)
	return result
}

func convertLexErrors(errs []*lexer.Error, source, file string) []*errors.CompilerError {
	out := make([]*errors.CompilerError, len(errs))
	for i, e := range errs {
		out[i] = errors.New(errors.Lexical, e.Pos, e.Message, source, file)
	}
	return out
}
