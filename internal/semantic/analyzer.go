// Package semantic implements the third compiler phase: scope-aware
// name resolution and type inference over the AST, accumulating every
// diagnostic it finds rather than stopping at the first.
package semantic

import (
	"fmt"

	"github.com/ShahzebX/MeowScript/internal/ast"
	"github.com/ShahzebX/MeowScript/internal/errors"
	"github.com/ShahzebX/MeowScript/internal/lexer"
)

// Analyzer walks a Program, building a SymbolTable and inferring the
// type of every expression as it goes.
type Analyzer struct {
	symbols *SymbolTable
	errors  []*errors.CompilerError
	source  string
	file    string

	currentFunction string
	inFunction      bool
}

// New creates an Analyzer. source and file are used only to render
// caret diagnostics; file may be empty.
func New(source, file string) *Analyzer {
	return &Analyzer{symbols: NewSymbolTable(), source: source, file: file}
}

// Symbols exposes the table built during Analyze; pkg/meow returns it
// as Result.Symbols.
func (a *Analyzer) Symbols() *SymbolTable {
	return a.symbols
}

// Errors returns every semantic diagnostic found during Analyze.
func (a *Analyzer) Errors() []*errors.CompilerError {
	return a.errors
}

func (a *Analyzer) addError(pos lexer.Position, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	a.errors = append(a.errors, errors.New(errors.Semantic, pos, msg, a.source, a.file))
}

// Analyze walks the whole program and returns true if no semantic
// errors were found.
func (a *Analyzer) Analyze(program *ast.Program) bool {
	for _, stmt := range program.Statements {
		a.visitStatement(stmt)
	}
	return len(a.errors) == 0
}

func (a *Analyzer) visitStatement(stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		a.visitVarDecl(n)
	case *ast.Assign:
		a.visitAssign(n)
	case *ast.FuncDef:
		a.visitFuncDef(n)
	case *ast.If:
		a.visitIf(n)
	case *ast.While:
		a.visitWhile(n)
	case *ast.Return:
		a.visitReturn(n)
	case *ast.Print:
		a.visitPrint(n)
	case *ast.ExprStmt:
		a.visitExpression(n.Call)
	}
}

func (a *Analyzer) visitVarDecl(n *ast.VarDecl) {
	valueType := a.visitExpression(n.Init)
	sym := &Symbol{
		Name:       n.Name,
		Type:       valueType,
		ScopeLevel: a.symbols.CurrentLevel(),
		Line:       n.Pos().Line,
		Column:     n.Pos().Column,
	}
	if existing, declared := a.symbols.Declare(sym); !declared {
		a.addError(n.Pos(), "variable %q already declared in current scope at line %d", n.Name, existing.Line)
	}
}

func (a *Analyzer) visitAssign(n *ast.Assign) {
	sym := a.symbols.Lookup(n.Name)
	if sym == nil {
		a.addError(n.Pos(), "undeclared variable %q", n.Name)
		return
	}
	if sym.IsFunction {
		a.addError(n.Pos(), "cannot assign to function %q", n.Name)
		return
	}

	valueType := a.visitExpression(n.Value)
	if sym.Type != Unknown && valueType != Unknown && !compatible(sym.Type, valueType) {
		a.addError(n.Pos(), "type mismatch: cannot assign %s to %s", valueType, sym.Type)
	}
}

func (a *Analyzer) visitFuncDef(n *ast.FuncDef) {
	sym := &Symbol{
		Name:       n.Name,
		Type:       Unknown,
		ScopeLevel: a.symbols.CurrentLevel(),
		IsFunction: true,
		Params:     n.Params,
		Line:       n.Pos().Line,
		Column:     n.Pos().Column,
	}
	if existing, declared := a.symbols.Declare(sym); !declared {
		a.addError(n.Pos(), "function %q already declared in current scope at line %d", n.Name, existing.Line)
		return
	}

	a.symbols.EnterScope()
	prevFunc, prevIn := a.currentFunction, a.inFunction
	a.currentFunction = n.Name
	a.inFunction = true

	for _, param := range n.Params {
		paramSym := &Symbol{
			Name:       param,
			Type:       Unknown,
			ScopeLevel: a.symbols.CurrentLevel(),
			Line:       n.Pos().Line,
			Column:     n.Pos().Column,
		}
		if existing, declared := a.symbols.Declare(paramSym); !declared {
			a.addError(n.Pos(), "parameter %q already declared at line %d", param, existing.Line)
		}
	}

	for _, stmt := range n.Body {
		a.visitStatement(stmt)
	}

	a.symbols.ExitScope()
	a.currentFunction = prevFunc
	a.inFunction = prevIn
}

func (a *Analyzer) visitIf(n *ast.If) {
	a.visitExpression(n.Cond)

	a.symbols.EnterScope()
	for _, stmt := range n.Then {
		a.visitStatement(stmt)
	}
	a.symbols.ExitScope()

	if n.HasElse {
		a.symbols.EnterScope()
		for _, stmt := range n.Else {
			a.visitStatement(stmt)
		}
		a.symbols.ExitScope()
	}
}

func (a *Analyzer) visitWhile(n *ast.While) {
	a.visitExpression(n.Cond)

	a.symbols.EnterScope()
	for _, stmt := range n.Body {
		a.visitStatement(stmt)
	}
	a.symbols.ExitScope()
}

func (a *Analyzer) visitReturn(n *ast.Return) {
	if !a.inFunction {
		a.addError(n.Pos(), "return statement outside of function")
		a.visitExpression(n.Value)
		return
	}

	returnType := a.visitExpression(n.Value)

	if a.currentFunction == "" {
		return
	}
	sym := a.symbols.Lookup(a.currentFunction)
	if sym == nil {
		return
	}
	if sym.Type == Unknown {
		sym.Type = returnType
		return
	}
	if sym.Type != returnType && !compatible(sym.Type, returnType) {
		a.addError(n.Pos(), "inconsistent return type: expected %s, got %s", sym.Type, returnType)
	}
}

func (a *Analyzer) visitPrint(n *ast.Print) {
	a.visitExpression(n.Value)
}

// visitExpression dispatches over an Expression and returns its
// inferred DataType, recording any errors it finds along the way.
func (a *Analyzer) visitExpression(expr ast.Expression) DataType {
	switch n := expr.(type) {
	case *ast.IntLit:
		return Int
	case *ast.FloatLit:
		return Float
	case *ast.StrLit:
		return Str
	case *ast.Ident:
		return a.visitIdent(n)
	case *ast.Unary:
		return a.visitUnary(n)
	case *ast.Binary:
		return a.visitBinary(n)
	case *ast.Call:
		return a.visitCall(n)
	default:
		return Unknown
	}
}

func (a *Analyzer) visitIdent(n *ast.Ident) DataType {
	sym := a.symbols.Lookup(n.Name)
	if sym == nil {
		a.addError(n.Pos(), "undeclared variable %q", n.Name)
		return Unknown
	}
	if sym.IsFunction {
		a.addError(n.Pos(), "cannot use function %q as a variable", n.Name)
		return Unknown
	}
	return sym.Type
}

func (a *Analyzer) visitUnary(n *ast.Unary) DataType {
	operandType := a.visitExpression(n.Operand)

	switch n.Op {
	case "!":
		return Int
	case "-":
		if operandType == Int || operandType == Float {
			return operandType
		}
		if operandType != Unknown {
			a.addError(n.Pos(), "type error: cannot apply unary '-' to %s", operandType)
		}
		return Unknown
	default:
		return Unknown
	}
}

func isNumeric(t DataType) bool { return t == Int || t == Float }

func (a *Analyzer) visitBinary(n *ast.Binary) DataType {
	leftType := a.visitExpression(n.Left)
	rightType := a.visitExpression(n.Right)

	switch n.Op {
	case "+", "-", "*", "/", "%":
		if n.Op == "+" && (leftType == Str || rightType == Str) {
			return Str
		}
		if isNumeric(leftType) && isNumeric(rightType) {
			if n.Op == "/" {
				return Float
			}
			if leftType == Float || rightType == Float {
				return Float
			}
			return Int
		}
		if leftType != Unknown && rightType != Unknown {
			a.addError(n.Pos(), "type error: cannot apply operator '%s' to %s and %s", n.Op, leftType, rightType)
		}
		return Unknown

	case "==", "!=", "<", ">", "<=", ">=":
		if leftType == rightType {
			return Int
		}
		if isNumeric(leftType) && isNumeric(rightType) {
			return Int
		}
		if leftType != Unknown && rightType != Unknown {
			a.addError(n.Pos(), "type error: cannot compare %s and %s", leftType, rightType)
		}
		return Int

	case "&&", "||":
		return Int

	default:
		return Unknown
	}
}

func (a *Analyzer) visitCall(n *ast.Call) DataType {
	sym := a.symbols.Lookup(n.Callee)
	if sym == nil {
		a.addError(n.Pos(), "undeclared function %q", n.Callee)
		return Unknown
	}
	if !sym.IsFunction {
		a.addError(n.Pos(), "%q is not a function", n.Callee)
		return Unknown
	}

	if len(sym.Params) != len(n.Args) {
		a.addError(n.Pos(), "function %q expects %d arguments, got %d", n.Callee, len(sym.Params), len(n.Args))
	}

	for _, arg := range n.Args {
		a.visitExpression(arg)
	}

	return sym.Type
}
