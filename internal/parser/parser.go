// Package parser implements the MeowScript parser: a recursive-descent
// parser for statements and a Pratt (precedence-climbing) parser for
// expressions, with single-token lookahead and panic-mode error
// recovery.
package parser

import (
	"fmt"
	"strconv"

	"github.com/ShahzebX/MeowScript/internal/ast"
	"github.com/ShahzebX/MeowScript/internal/errors"
	"github.com/ShahzebX/MeowScript/internal/lexer"
)

// Precedence levels, lowest to highest, per the 8-level operator table.
const (
	_ int = iota
	LOWEST
	LOGIC_OR   // ||
	LOGIC_AND  // &&
	EQUALITY   // == !=
	RELATIONAL // < > <= >=
	SUM        // + -
	PRODUCT    // * / %
	PREFIX     // ! - (unary)
	CALL       // f(args)
)

var precedences = map[lexer.TokenType]int{
	lexer.OR_OR:      LOGIC_OR,
	lexer.AND_AND:    LOGIC_AND,
	lexer.EQ_EQ:      EQUALITY,
	lexer.NOT_EQ:     EQUALITY,
	lexer.LESS:       RELATIONAL,
	lexer.GREATER:    RELATIONAL,
	lexer.LESS_EQ:    RELATIONAL,
	lexer.GREATER_EQ: RELATIONAL,
	lexer.PLUS:       SUM,
	lexer.MINUS:      SUM,
	lexer.ASTERISK:   PRODUCT,
	lexer.SLASH:      PRODUCT,
	lexer.PERCENT:    PRODUCT,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// statementStarters is the panic-mode synchronization set: the tokens
// that can legally open a new statement, plus the block closer and EOF.
var statementStarters = map[lexer.TokenType]bool{
	lexer.BOX:       true,
	lexer.HUNT:      true,
	lexer.PURR:      true,
	lexer.CHASE:     true,
	lexer.BRING:     true,
	lexer.MEOW:      true,
	lexer.IDENT:     true,
	lexer.RBRACE:    true,
	lexer.SLEEP:     true,
	lexer.EOF:       true,
}

// Parser is a single-pass recursive-descent parser over a token stream
// produced by a lexer.Lexer. It never backtracks past curToken/peekToken.
type Parser struct {
	l      *lexer.Lexer
	source string
	file   string

	curToken  lexer.Token
	peekToken lexer.Token

	errors []*errors.CompilerError

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over l. source and file are carried only for
// diagnostic rendering; file may be empty.
func New(l *lexer.Lexer, source, file string) *Parser {
	p := &Parser{l: l, source: source, file: file}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.INT:         p.parseIntLiteral,
		lexer.FLOAT:       p.parseFloatLiteral,
		lexer.STRING:      p.parseStringLiteral,
		lexer.IDENT:       p.parseIdentOrCall,
		lexer.EXCLAMATION: p.parseUnary,
		lexer.MINUS:       p.parseUnary,
		lexer.LPAREN:      p.parseGroupedExpression,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:       p.parseBinary,
		lexer.MINUS:      p.parseBinary,
		lexer.ASTERISK:   p.parseBinary,
		lexer.SLASH:      p.parseBinary,
		lexer.PERCENT:    p.parseBinary,
		lexer.LESS:       p.parseBinary,
		lexer.GREATER:    p.parseBinary,
		lexer.LESS_EQ:    p.parseBinary,
		lexer.GREATER_EQ: p.parseBinary,
		lexer.EQ_EQ:      p.parseBinary,
		lexer.NOT_EQ:     p.parseBinary,
		lexer.AND_AND:    p.parseBinary,
		lexer.OR_OR:      p.parseBinary,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the syntax diagnostics accumulated during Parse.
func (p *Parser) Errors() []*errors.CompilerError {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// expectPeek advances and returns true if the peek token matches t,
// otherwise records a syntax error and leaves the cursor unmoved.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	msg := fmt.Sprintf("expected %s, got %s instead", t, p.peekToken.Type)
	p.addError(msg, p.peekToken.Pos)
}

func (p *Parser) addError(msg string, pos lexer.Position) {
	p.errors = append(p.errors, errors.New(errors.Syntax, pos, msg, p.source, p.file))
}

// synchronize implements panic-mode recovery: it discards tokens until
// it finds a statement starter, a closing brace, Sleep, or EOF, so
// parsing of the enclosing block (or program) can continue.
func (p *Parser) synchronize() {
	p.nextToken() // always skip past the token that caused the error first
	for {
		if statementStarters[p.curToken.Type] {
			return
		}
		if p.curTokenIs(lexer.EOF) {
			return
		}
		p.nextToken()
	}
}

// Parse parses the whole program: Wake, a statement sequence, Sleep.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{}

	if !p.curTokenIs(lexer.WAKE) {
		p.addError(fmt.Sprintf("expected Wake, got %s instead", p.curToken.Type), p.curToken.Pos)
		return program
	}
	p.nextToken()

	for !p.curTokenIs(lexer.SLEEP) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
			p.nextToken()
		} else {
			p.synchronize()
		}
	}

	if !p.curTokenIs(lexer.SLEEP) {
		p.addError("expected Sleep before end of file", p.curToken.Pos)
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.BOX:
		return p.parseVarDecl()
	case lexer.HUNT:
		return p.parseFuncDef()
	case lexer.PURR:
		return p.parseIf()
	case lexer.CHASE:
		return p.parseWhile()
	case lexer.BRING:
		return p.parseReturn()
	case lexer.MEOW:
		return p.parsePrint()
	case lexer.IDENT:
		return p.parseIdentStatement()
	default:
		p.addError(fmt.Sprintf("unexpected token %s at start of statement", p.curToken.Type), p.curToken.Pos)
		return nil
	}
}

// parseIdentStatement disambiguates an identifier-opened statement by
// its single-token lookahead: "name paws expr" is an assignment,
// "name ( ... )" is a call statement. Neither is terminated by a ;
// — the grammar is whitespace-delimited, not semicolon-delimited; a
// statement ends wherever its expression ends.
func (p *Parser) parseIdentStatement() ast.Statement {
	tok := p.curToken
	name := p.curToken.Literal

	if p.peekTokenIs(lexer.PAWS) {
		p.nextToken() // consume PAWS
		p.nextToken() // move to start of expression
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		return &ast.Assign{Token: tok, Name: name, Value: value}
	}

	if p.peekTokenIs(lexer.LPAREN) {
		expr := p.parseExpression(LOWEST)
		call, ok := expr.(*ast.Call)
		if !ok {
			p.addError("expected a function call statement", tok.Pos)
			return nil
		}
		return &ast.ExprStmt{Token: tok, Call: call}
	}

	p.addError(fmt.Sprintf("expected %s or %s after identifier %q", lexer.PAWS, lexer.LPAREN, name), p.peekToken.Pos)
	return nil
}

func (p *Parser) parseVarDecl() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	if !p.expectPeek(lexer.PAWS) {
		return nil
	}
	p.nextToken()

	init := p.parseExpression(LOWEST)
	if init == nil {
		return nil
	}

	return &ast.VarDecl{Token: tok, Name: name, Init: init}
}

func (p *Parser) parseFuncDef() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	var params []string
	if !p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		params = append(params, p.curToken.Literal)
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			params = append(params, p.curToken.Literal)
		}
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil
	}

	return &ast.FuncDef{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	thenBlock, ok := p.parseBlock()
	if !ok {
		return nil
	}

	ifNode := &ast.If{Token: tok, Cond: cond, Then: thenBlock}

	if p.peekTokenIs(lexer.HISS) {
		p.nextToken()
		elseBlock, ok := p.parseBlock()
		if !ok {
			return nil
		}
		ifNode.Else = elseBlock
		ifNode.HasElse = true
	}

	return ifNode
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil
	}

	return &ast.While{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.curToken
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	return &ast.Return{Token: tok, Value: value}
}

func (p *Parser) parsePrint() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return &ast.Print{Token: tok, Value: value}
}

// parseBlock parses a brace-delimited statement sequence, reporting and
// recovering from any malformed statement inside so the closing brace
// is still found when possible.
func (p *Parser) parseBlock() ([]ast.Statement, bool) {
	if !p.expectPeek(lexer.LBRACE) {
		return nil, false
	}
	p.nextToken()

	var stmts []ast.Statement
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
			p.nextToken()
		} else {
			p.synchronize()
		}
	}

	if !p.curTokenIs(lexer.RBRACE) {
		p.addError("expected } to close block", p.curToken.Pos)
		return stmts, false
	}

	return stmts, true
}

// parseExpression is the precedence-climbing core: it parses a prefix
// expression then repeatedly folds in infix operators whose precedence
// exceeds the caller's minimum.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.addError(fmt.Sprintf("unexpected token %s in expression", p.curToken.Type), p.curToken.Pos)
		return nil
	}
	left := prefix()

	for precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.curToken
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addError(fmt.Sprintf("could not parse %q as an integer", tok.Literal), tok.Pos)
		return nil
	}
	return &ast.IntLit{Token: tok, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError(fmt.Sprintf("could not parse %q as a float", tok.Literal), tok.Pos)
		return nil
	}
	return &ast.FloatLit{Token: tok, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StrLit{Token: p.curToken, Value: p.curToken.Literal}
}

// parseIdentOrCall disambiguates a bare identifier from a call
// expression using the single peek token, the same lookahead rule used
// for identifier-opened statements.
func (p *Parser) parseIdentOrCall() ast.Expression {
	tok := p.curToken
	name := p.curToken.Literal

	if !p.peekTokenIs(lexer.LPAREN) {
		return &ast.Ident{Token: tok, Name: name}
	}

	p.nextToken() // consume LPAREN
	var args []ast.Expression
	if !p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			args = append(args, p.parseExpression(LOWEST))
		}
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return &ast.Call{Token: tok, Callee: name, Args: args}
}

func (p *Parser) parseUnary() ast.Expression {
	tok := p.curToken
	op := p.curToken.Literal
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.Unary{Token: tok, Op: op, Operand: operand}
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.Binary{Token: tok, Op: op, Left: left, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}
