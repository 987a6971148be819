// Package parser implements syntax analysis for the compiler.
//
// PARSING STRATEGY:
//  1. Recursive descent for statements: each statement form has its own
//     parse function, dispatched on the current token.
//  2. Precedence climbing (Pratt parsing) for expressions: a fixed
//     operator→precedence table and a minimum-precedence threshold
//     resolve binding order and associativity.
//
// ERROR HANDLING:
// Errors are reported with their source line/column and accumulated so a
// single pass surfaces every problem. Recovery is panic-mode: a parse
// error raises a panic that is caught at the statement loop, which then
// discards tokens up to a semicolon or a statement-introducing keyword
// and resumes. One malformed statement therefore never aborts the whole
// parse.
package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/Priya00300/CppCompiler/internal/lexer"
	"github.com/Priya00300/CppCompiler/internal/parser/ast"
)

// Parser converts a token stream into an AST. It holds exactly one
// token of lookahead in current; previous is the last consumed token,
// kept for error messages and synchronization.
type Parser struct {
	src lexer.TokenSource

	current  lexer.Token
	previous lexer.Token

	// errors accumulates every parse error in source order.
	errors []error

	// panicMode suppresses cascading error reports between the first
	// error of a statement and the next synchronization point.
	panicMode bool
}

// New creates a parser over the given token source and primes the
// one-token lookahead.
func New(src lexer.TokenSource) *Parser {
	p := &Parser{
		src:    src,
		errors: make([]error, 0),
	}
	p.advance()
	return p
}

// Parse consumes the entire token stream and returns the Program root
// together with every syntax error encountered. The Program is partial
// when errors are non-empty: statements that failed to parse are simply
// absent.
func (p *Parser) Parse() (*ast.Program, []error) {
	program := &ast.Program{Statements: make([]ast.Stmt, 0)}

	for !p.isAtEnd() {
		if stmt := p.parseStmt(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}

	return program, p.errors
}

// ParseExpression parses a single expression, optionally terminated by
// a semicolon. Handy for tools that evaluate one expression at a time.
func (p *Parser) ParseExpression() (expr ast.Expr, errs []error) {
	defer func() {
		if r := recover(); r != nil {
			expr = nil
			errs = p.errors
		}
	}()

	expr = p.parsePrecedence(PrecAssignment)
	p.match(lexer.TokenSemicolon)
	return expr, p.errors
}

// Statement parsing (recursive descent)

// parseStmt parses one statement, dispatching on the current token.
//
// GRAMMAR:
//
//	stmt = varDecl | ifStmt | whileStmt | forStmt | returnStmt
//	     | coutStmt | cinStmt | blockStmt | exprStmt
//
// Parse errors raised anywhere below are recovered here: the statement
// is dropped, tokens are discarded to a synchronization point, and nil
// is returned.
func (p *Parser) parseStmt() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.current.Type.IsTypeKeyword():
		return p.parseVarDecl()
	case p.match(lexer.TokenIf):
		return p.parseIfStmt()
	case p.match(lexer.TokenWhile):
		return p.parseWhileStmt()
	case p.match(lexer.TokenFor):
		return p.parseForStmt()
	case p.match(lexer.TokenReturn):
		return p.parseReturnStmt()
	case p.match(lexer.TokenCout):
		return p.parseCoutStmt()
	case p.match(lexer.TokenCin):
		return p.parseCinStmt()
	case p.check(lexer.TokenLeftBrace):
		return p.parseBlockStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseVarDecl parses: type identifier [= expression] ;
func (p *Parser) parseVarDecl() *ast.VarDeclStmt {
	typeTok := p.current
	p.advance()

	if !p.check(lexer.TokenIdentifier) {
		p.errorf("expected variable name after %q", typeTok.Lexeme)
		panic(parseError{})
	}
	name := p.current
	p.advance()

	var init ast.Expr
	if p.match(lexer.TokenAssign) {
		init = p.parseExpressionFull()
	}

	p.consume(lexer.TokenSemicolon, "expected ';' after variable declaration")

	return &ast.VarDeclStmt{TypeTok: typeTok, Name: name, Init: init}
}

// parseIfStmt parses: if ( expression ) statement [else statement]
// The 'if' keyword is already consumed.
func (p *Parser) parseIfStmt() *ast.IfStmt {
	ifTok := p.previous

	p.consume(lexer.TokenLeftParen, "expected '(' after 'if'")
	condition := p.parseExpressionFull()
	p.consume(lexer.TokenRightParen, "expected ')' after condition")

	then := p.parseStmt()

	var elseStmt ast.Stmt
	if p.match(lexer.TokenElse) {
		elseStmt = p.parseStmt()
	}

	return &ast.IfStmt{IfTok: ifTok, Condition: condition, Then: then, Else: elseStmt}
}

// parseWhileStmt parses: while ( expression ) statement
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	whileTok := p.previous

	p.consume(lexer.TokenLeftParen, "expected '(' after 'while'")
	condition := p.parseExpressionFull()
	p.consume(lexer.TokenRightParen, "expected ')' after condition")

	body := p.parseStmt()

	return &ast.WhileStmt{WhileTok: whileTok, Condition: condition, Body: body}
}

// parseForStmt parses: for ( [decl|expr] ; [expr] ; [expr] ) statement
// with every clause optional.
func (p *Parser) parseForStmt() *ast.ForStmt {
	forTok := p.previous

	p.consume(lexer.TokenLeftParen, "expected '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(lexer.TokenSemicolon):
		// No init clause.
	case p.current.Type.IsTypeKeyword():
		init = p.parseVarDecl() // consumes its ';'
	default:
		init = p.parseExprStmt() // consumes its ';'
	}

	var condition ast.Expr
	if !p.check(lexer.TokenSemicolon) {
		condition = p.parseExpressionFull()
	}
	p.consume(lexer.TokenSemicolon, "expected ';' after loop condition")

	var update ast.Expr
	if !p.check(lexer.TokenRightParen) {
		update = p.parseExpressionFull()
	}
	p.consume(lexer.TokenRightParen, "expected ')' after for clauses")

	body := p.parseStmt()

	return &ast.ForStmt{ForTok: forTok, Init: init, Condition: condition, Update: update, Body: body}
}

// parseReturnStmt parses: return [expression] ;
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	returnTok := p.previous

	var value ast.Expr
	if !p.check(lexer.TokenSemicolon) {
		value = p.parseExpressionFull()
	}
	p.consume(lexer.TokenSemicolon, "expected ';' after return statement")

	return &ast.ReturnStmt{ReturnTok: returnTok, Value: value}
}

// parseCoutStmt parses: cout << expression {<< expression} ;
// Each operand is parsed one level above shift precedence so the '<<'
// separators are not swallowed as shift operators.
func (p *Parser) parseCoutStmt() *ast.CoutStmt {
	coutTok := p.previous

	stmt := &ast.CoutStmt{CoutTok: coutTok, Operands: make([]ast.Expr, 0)}
	if !p.check(lexer.TokenShl) {
		p.errorf("expected '<<' after 'cout'")
		panic(parseError{})
	}
	for p.match(lexer.TokenShl) {
		stmt.Operands = append(stmt.Operands, p.parsePrecedence(PrecShift+1))
	}
	p.consume(lexer.TokenSemicolon, "expected ';' after cout statement")

	return stmt
}

// parseCinStmt parses: cin >> expression {>> expression} ;
func (p *Parser) parseCinStmt() *ast.CinStmt {
	cinTok := p.previous

	stmt := &ast.CinStmt{CinTok: cinTok, Operands: make([]ast.Expr, 0)}
	if !p.check(lexer.TokenShr) {
		p.errorf("expected '>>' after 'cin'")
		panic(parseError{})
	}
	for p.match(lexer.TokenShr) {
		stmt.Operands = append(stmt.Operands, p.parsePrecedence(PrecShift+1))
	}
	p.consume(lexer.TokenSemicolon, "expected ';' after cin statement")

	return stmt
}

// parseBlockStmt parses: { stmt* }
func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	p.consume(lexer.TokenLeftBrace, "expected '{'")
	leftBrace := p.previous

	statements := make([]ast.Stmt, 0)
	for !p.check(lexer.TokenRightBrace) && !p.isAtEnd() {
		// A recovered statement comes back nil; keep going so one bad
		// statement does not lose the rest of the block.
		if stmt := p.parseStmt(); stmt != nil {
			statements = append(statements, stmt)
		}
	}

	p.consume(lexer.TokenRightBrace, "expected '}' after block")

	return &ast.BlockStmt{LeftBrace: leftBrace, Statements: statements}
}

// parseExprStmt parses: expression ;
func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpressionFull()
	p.consume(lexer.TokenSemicolon, "expected ';' after expression")
	return &ast.ExprStmt{Expression: expr}
}

// Expression parsing (precedence climbing)

// parseExpressionFull parses an expression at the lowest operator
// threshold, admitting the whole operator table including assignment.
func (p *Parser) parseExpressionFull() ast.Expr {
	return p.parsePrecedence(PrecAssignment)
}

// parsePrecedence parses an expression whose operators all bind at
// least as tightly as min.
//
// This is the climbing core: parse a prefix expression as the left
// operand, then while the current token is an operator with precedence
// >= min, let parseInfix consume it and fold the right operand in.
// Associativity is handled by the threshold passed when parsing the
// right operand: precedence+1 for left-associative operators,
// precedence itself for the right-associative assignment family.
func (p *Parser) parsePrecedence(min Precedence) ast.Expr {
	left := p.parsePrefix()

	for getPrecedence(p.current.Type) >= min {
		left = p.parseInfix(left)
	}

	return left
}

// parsePrefix parses the expressions that can start an expression:
// literals, identifiers, grouping, and prefix unary operators.
func (p *Parser) parsePrefix() ast.Expr {
	switch p.current.Type {
	case lexer.TokenIntLit:
		return p.parseIntLiteral()
	case lexer.TokenFloatLit:
		return p.parseFloatLiteral()
	case lexer.TokenStringLit:
		tok := p.current
		p.advance()
		return &ast.LiteralExpr{Token: tok, Value: tok.Lexeme}
	case lexer.TokenCharLit:
		return p.parseCharLiteral()
	case lexer.TokenTrue, lexer.TokenFalse:
		tok := p.current
		p.advance()
		return &ast.LiteralExpr{Token: tok, Value: tok.Type == lexer.TokenTrue}
	case lexer.TokenIdentifier:
		tok := p.current
		p.advance()
		return &ast.IdentifierExpr{Token: tok, Name: tok.Lexeme}
	case lexer.TokenEndl:
		// endl only makes sense as a cout operand; the code generator
		// rejects it anywhere else.
		tok := p.current
		p.advance()
		return &ast.IdentifierExpr{Token: tok, Name: tok.Lexeme}
	case lexer.TokenLeftParen:
		return p.parseGrouping()
	case lexer.TokenMinus, lexer.TokenPlus, lexer.TokenNot,
		lexer.TokenPlusPlus, lexer.TokenMinusMinus:
		return p.parseUnary()
	case lexer.TokenError:
		p.errorf("%s", p.current.Lexeme)
		panic(parseError{})
	default:
		p.errorf("expected expression, got %s", p.current.Type)
		panic(parseError{})
	}
}

// parseInfix consumes one infix or postfix operator and returns the
// folded expression.
func (p *Parser) parseInfix(left ast.Expr) ast.Expr {
	switch p.current.Type {
	case lexer.TokenPlus, lexer.TokenMinus,
		lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent,
		lexer.TokenEqual, lexer.TokenNotEqual,
		lexer.TokenLess, lexer.TokenLessEqual,
		lexer.TokenGreater, lexer.TokenGreaterEqual,
		lexer.TokenBitAnd, lexer.TokenBitOr, lexer.TokenBitXor,
		lexer.TokenShl, lexer.TokenShr:
		return p.parseBinary(left)

	case lexer.TokenAnd, lexer.TokenOr:
		return p.parseLogical(left)

	case lexer.TokenAssign, lexer.TokenPlusEq, lexer.TokenMinusEq,
		lexer.TokenStarEq, lexer.TokenSlashEq:
		return p.parseAssignment(left)

	case lexer.TokenPlusPlus, lexer.TokenMinusMinus:
		operator := p.current
		p.advance()
		return &ast.UnaryExpr{Operator: operator, Operand: left, IsPostfix: true}

	default:
		return left
	}
}

// parseBinary folds one left-associative binary operator: the right
// operand is parsed at precedence+1 so equal-precedence operators stay
// left-associated (10 - 2 - 3 is (10 - 2) - 3).
func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	operator := p.current
	precedence := getPrecedence(operator.Type)
	p.advance()

	right := p.parsePrecedence(precedence + 1)

	return &ast.BinaryExpr{Left: left, Operator: operator, Right: right}
}

// parseLogical folds one && or || operator. Same associativity rule as
// parseBinary; only the node type differs so codegen can short-circuit.
func (p *Parser) parseLogical(left ast.Expr) ast.Expr {
	operator := p.current
	precedence := getPrecedence(operator.Type)
	p.advance()

	right := p.parsePrecedence(precedence + 1)

	return &ast.LogicalExpr{Left: left, Operator: operator, Right: right}
}

// parseAssignment folds one assignment-family operator. The right
// operand is parsed at the operator's own precedence, which is what
// makes assignment right-associative: a = b = c is a = (b = c).
func (p *Parser) parseAssignment(left ast.Expr) ast.Expr {
	operator := p.current
	p.advance()

	right := p.parsePrecedence(PrecAssignment)

	return &ast.AssignmentExpr{Target: left, Operator: operator, Value: right}
}

// parseUnary parses a prefix unary operator and recurses into unary
// parsing, so stacked operators like --x and -!x are legal.
func (p *Parser) parseUnary() ast.Expr {
	operator := p.current
	p.advance()

	operand := p.parsePrefix()

	return &ast.UnaryExpr{Operator: operator, Operand: operand}
}

// parseGrouping parses ( expression ) with a required closing paren.
func (p *Parser) parseGrouping() ast.Expr {
	leftParen := p.current
	p.advance()

	expr := p.parseExpressionFull()
	p.consume(lexer.TokenRightParen, "expected ')' after expression")

	return &ast.GroupingExpr{LeftParen: leftParen, Expression: expr}
}

// Literal decoding

func (p *Parser) parseIntLiteral() ast.Expr {
	tok := p.current
	p.advance()

	value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal: %s", tok.Lexeme)
		value = 0
	}
	return &ast.LiteralExpr{Token: tok, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expr {
	tok := p.current
	p.advance()

	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		p.errorf("invalid float literal: %s", tok.Lexeme)
		value = 0
	}
	return &ast.LiteralExpr{Token: tok, Value: value}
}

func (p *Parser) parseCharLiteral() ast.Expr {
	tok := p.current
	p.advance()

	// The scanner already decoded escapes; the lexeme is the character.
	var value rune
	if tok.Lexeme != "" {
		value, _ = utf8.DecodeRuneInString(tok.Lexeme)
	}
	return &ast.LiteralExpr{Token: tok, Value: value}
}

// Helper methods

// parseError is the panic payload used for error recovery. Anything else
// reaching the recover in parseStmt is a real bug and is re-raised.
type parseError struct{}

// advance consumes the current token. Newline and comment tokens are
// transparently skipped so the grammar never sees them.
func (p *Parser) advance() {
	p.previous = p.current
	for {
		p.current = p.src.NextToken()
		if p.current.Type != lexer.TokenNewline && p.current.Type != lexer.TokenComment {
			return
		}
	}
}

// check reports whether the current token has the given type.
func (p *Parser) check(tt lexer.TokenType) bool {
	return p.current.Type == tt
}

// match consumes the current token and reports true if it has the given
// type.
func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

// consume advances past a required token or reports message and raises
// the recovery panic.
func (p *Parser) consume(tt lexer.TokenType, message string) {
	if p.check(tt) {
		p.advance()
		return
	}
	p.errorf("%s", message)
	panic(parseError{})
}

func (p *Parser) isAtEnd() bool {
	return p.current.Type == lexer.TokenEOF
}

// errorf records an error at the current token. While in panic mode,
// further errors are suppressed until the next synchronization point so
// one mistake does not cascade into a wall of noise.
func (p *Parser) errorf(format string, args ...interface{}) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors,
		fmt.Errorf("%d:%d: %s", p.current.Line, p.current.Column, msg))
}

// synchronize discards tokens until a statement boundary: just past a
// semicolon, or just before a statement-introducing keyword, or end of
// input. The offending token itself is always discarded so recovery can
// never loop in place.
func (p *Parser) synchronize() {
	p.panicMode = false
	p.advance()

	for !p.isAtEnd() {
		if p.previous.Type == lexer.TokenSemicolon {
			return
		}

		switch p.current.Type {
		case lexer.TokenClass, lexer.TokenFor, lexer.TokenIf,
			lexer.TokenWhile, lexer.TokenReturn:
			return
		}

		p.advance()
	}
}
