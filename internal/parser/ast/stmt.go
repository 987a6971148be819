package ast

import (
	"github.com/Priya00300/CppCompiler/internal/lexer"
)

// Statement nodes.

// VarDeclStmt is a variable declaration: type name [= init] ;
// TypeTok is the declaring type keyword (int, float, char, double,
// bool); Init is nil when no initializer was written.
type VarDeclStmt struct {
	TypeTok lexer.Token
	Name    lexer.Token
	Init    Expr
}

func (d *VarDeclStmt) Pos() (int, int) { return tokenPos(d.TypeTok) }
func (d *VarDeclStmt) stmtNode()       {}
func (d *VarDeclStmt) Accept(v Visitor) error {
	return v.VisitVarDeclStmt(d)
}

// ExprStmt is an expression used as a statement: expr ;
type ExprStmt struct {
	Expression Expr
}

func (e *ExprStmt) Pos() (int, int) { return e.Expression.Pos() }
func (e *ExprStmt) stmtNode()       {}
func (e *ExprStmt) Accept(v Visitor) error {
	return v.VisitExprStmt(e)
}

// BlockStmt is a compound statement: { stmt* }. Blocks open a new scope
// in the symbol table during code generation.
type BlockStmt struct {
	LeftBrace  lexer.Token
	Statements []Stmt
}

func (b *BlockStmt) Pos() (int, int) { return tokenPos(b.LeftBrace) }
func (b *BlockStmt) stmtNode()       {}
func (b *BlockStmt) Accept(v Visitor) error {
	return v.VisitBlockStmt(b)
}

// IfStmt is if (cond) stmt [else stmt]. Both branches are arbitrary
// statements, so else-if chains are just an IfStmt in the Else slot.
type IfStmt struct {
	IfTok     lexer.Token
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when there is no else branch
}

func (i *IfStmt) Pos() (int, int) { return tokenPos(i.IfTok) }
func (i *IfStmt) stmtNode()       {}
func (i *IfStmt) Accept(v Visitor) error {
	return v.VisitIfStmt(i)
}

// WhileStmt is while (cond) stmt.
type WhileStmt struct {
	WhileTok  lexer.Token
	Condition Expr
	Body      Stmt
}

func (w *WhileStmt) Pos() (int, int) { return tokenPos(w.WhileTok) }
func (w *WhileStmt) stmtNode()       {}
func (w *WhileStmt) Accept(v Visitor) error {
	return v.VisitWhileStmt(w)
}

// ForStmt is for (init; cond; update) stmt. All three clauses are
// optional: Init may be a declaration or an expression statement,
// a nil Condition loops forever, Update runs after every iteration.
type ForStmt struct {
	ForTok    lexer.Token
	Init      Stmt
	Condition Expr
	Update    Expr
	Body      Stmt
}

func (f *ForStmt) Pos() (int, int) { return tokenPos(f.ForTok) }
func (f *ForStmt) stmtNode()       {}
func (f *ForStmt) Accept(v Visitor) error {
	return v.VisitForStmt(f)
}

// ReturnStmt is return [expr] ;
type ReturnStmt struct {
	ReturnTok lexer.Token
	Value     Expr // nil for a bare return
}

func (r *ReturnStmt) Pos() (int, int) { return tokenPos(r.ReturnTok) }
func (r *ReturnStmt) stmtNode()       {}
func (r *ReturnStmt) Accept(v Visitor) error {
	return v.VisitReturnStmt(r)
}

// CoutStmt is cout << expr {<< expr} ; with operands in source order.
type CoutStmt struct {
	CoutTok  lexer.Token
	Operands []Expr
}

func (c *CoutStmt) Pos() (int, int) { return tokenPos(c.CoutTok) }
func (c *CoutStmt) stmtNode()       {}
func (c *CoutStmt) Accept(v Visitor) error {
	return v.VisitCoutStmt(c)
}

// CinStmt is cin >> expr {>> expr} ; with operands in source order.
// Each operand must resolve to a plain identifier; the code generator
// enforces that.
type CinStmt struct {
	CinTok   lexer.Token
	Operands []Expr
}

func (c *CinStmt) Pos() (int, int) { return tokenPos(c.CinTok) }
func (c *CinStmt) stmtNode()       {}
func (c *CinStmt) Accept(v Visitor) error {
	return v.VisitCinStmt(c)
}
