// Package ir lowers a type-checked AST into linear three-address code:
// the final compiler phase. Every temporary and label is fresh within
// one Generate call; nothing is shared across compilations.
package ir

import (
	"strconv"

	"github.com/ShahzebX/MeowScript/internal/ast"
)

// Generator produces a flat instruction stream from a Program.
type Generator struct {
	instructions []Instruction
	tempCounter  int
	labelCounter int
}

// New returns a Generator ready for a single Generate call.
func New() *Generator {
	return &Generator{}
}

func (g *Generator) newTemp() string {
	t := "t" + strconv.Itoa(g.tempCounter)
	g.tempCounter++
	return t
}

func (g *Generator) newLabel() string {
	l := "L" + strconv.Itoa(g.labelCounter)
	g.labelCounter++
	return l
}

func (g *Generator) emit(op Op, arg1, arg2, result string) {
	g.instructions = append(g.instructions, Instruction{Op: op, Arg1: arg1, Arg2: arg2, Result: result})
}

// Generate lowers program into a three-address-code instruction list.
func (g *Generator) Generate(program *ast.Program) []Instruction {
	for _, stmt := range program.Statements {
		g.visitStatement(stmt)
	}
	return g.instructions
}

func (g *Generator) visitStatement(stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		value := g.visitExpression(n.Init)
		g.emit(OpAssign, value, "", n.Name)
	case *ast.Assign:
		value := g.visitExpression(n.Value)
		g.emit(OpAssign, value, "", n.Name)
	case *ast.FuncDef:
		g.visitFuncDef(n)
	case *ast.If:
		g.visitIf(n)
	case *ast.While:
		g.visitWhile(n)
	case *ast.Return:
		value := g.visitExpression(n.Value)
		g.emit(OpReturn, value, "", "")
	case *ast.Print:
		value := g.visitExpression(n.Value)
		g.emit(OpPrint, value, "", "")
	case *ast.ExprStmt:
		g.visitCall(n.Call)
	}
}

func (g *Generator) visitFuncDef(n *ast.FuncDef) {
	g.emit(OpBeginFunc, n.Name, "", "")
	for _, stmt := range n.Body {
		g.visitStatement(stmt)
	}
	g.emit(OpEndFunc, n.Name, "", "")
}

// visitIf lowers:
//
//	<condition>
//	if_false cond goto L_else   (or L_end when there is no else block)
//	<then>
//	goto L_end
//
// L_else:
//
//	<else>
//
// L_end:
func (g *Generator) visitIf(n *ast.If) {
	cond := g.visitExpression(n.Cond)

	if n.HasElse {
		elseLabel := g.newLabel()
		endLabel := g.newLabel()

		g.emit(OpIfFalse, cond, "", elseLabel)
		for _, stmt := range n.Then {
			g.visitStatement(stmt)
		}
		g.emit(OpGoto, "", "", endLabel)

		g.emit(OpLabel, "", "", elseLabel)
		for _, stmt := range n.Else {
			g.visitStatement(stmt)
		}

		g.emit(OpLabel, "", "", endLabel)
		return
	}

	endLabel := g.newLabel()
	g.emit(OpIfFalse, cond, "", endLabel)
	for _, stmt := range n.Then {
		g.visitStatement(stmt)
	}
	g.emit(OpLabel, "", "", endLabel)
}

// visitWhile lowers:
//
// L_start:
//
//	<condition>
//	if_false cond goto L_end
//	<body>
//	goto L_start
//
// L_end:
func (g *Generator) visitWhile(n *ast.While) {
	startLabel := g.newLabel()
	endLabel := g.newLabel()

	g.emit(OpLabel, "", "", startLabel)
	cond := g.visitExpression(n.Cond)
	g.emit(OpIfFalse, cond, "", endLabel)

	for _, stmt := range n.Body {
		g.visitStatement(stmt)
	}

	g.emit(OpGoto, "", "", startLabel)
	g.emit(OpLabel, "", "", endLabel)
}

// visitExpression lowers an expression and returns the name of the
// temporary, literal, or identifier that now holds its value.
func (g *Generator) visitExpression(expr ast.Expression) string {
	switch n := expr.(type) {
	case *ast.IntLit:
		return strconv.FormatInt(n.Value, 10)
	case *ast.FloatLit:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.StrLit:
		return `"` + n.Value + `"`
	case *ast.Ident:
		return n.Name
	case *ast.Unary:
		operand := g.visitExpression(n.Operand)
		result := g.newTemp()
		g.emit(Op(n.Op), operand, "", result)
		return result
	case *ast.Binary:
		left := g.visitExpression(n.Left)
		right := g.visitExpression(n.Right)
		result := g.newTemp()
		g.emit(Op(n.Op), left, right, result)
		return result
	case *ast.Call:
		return g.visitCall(n)
	default:
		temp := g.newTemp()
		g.emit(OpAssign, "0", "", temp)
		return temp
	}
}

func (g *Generator) visitCall(n *ast.Call) string {
	for _, arg := range n.Args {
		argTemp := g.visitExpression(arg)
		g.emit(OpParam, argTemp, "", "")
	}
	result := g.newTemp()
	g.emit(OpCall, n.Callee, strconv.Itoa(len(n.Args)), result)
	return result
}
