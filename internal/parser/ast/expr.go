package ast

import (
	"github.com/Priya00300/CppCompiler/internal/lexer"
)

// Expression nodes.

// LiteralExpr is a literal leaf carrying its decoded value.
//
// Value holds one of:
//   - int64 for integer literals
//   - float64 for floating-point literals
//   - string for string literals
//   - rune for character literals
//   - bool for true/false
type LiteralExpr struct {
	Token lexer.Token
	Value interface{}
}

func (l *LiteralExpr) Pos() (int, int) { return tokenPos(l.Token) }
func (l *LiteralExpr) exprNode()       {}
func (l *LiteralExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitLiteralExpr(l)
}

// IdentifierExpr is a variable name leaf. Name resolution happens during
// code generation against the symbol table.
type IdentifierExpr struct {
	Token lexer.Token
	Name  string
}

func (i *IdentifierExpr) Pos() (int, int) { return tokenPos(i.Token) }
func (i *IdentifierExpr) exprNode()       {}
func (i *IdentifierExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitIdentifierExpr(i)
}

// BinaryExpr is a binary operation: left op right. The operator token
// distinguishes arithmetic, comparison, shift, and bitwise operations;
// one node type covers them all since they share structure.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (b *BinaryExpr) Pos() (int, int) { return b.Left.Pos() }
func (b *BinaryExpr) exprNode()       {}
func (b *BinaryExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitBinaryExpr(b)
}

// UnaryExpr is a unary operation. Prefix for - + ! and prefix ++/--;
// IsPostfix marks i++ and i--, where the operand is evaluated before the
// update.
type UnaryExpr struct {
	Operator  lexer.Token
	Operand   Expr
	IsPostfix bool
}

func (u *UnaryExpr) Pos() (int, int) {
	if u.IsPostfix {
		return u.Operand.Pos()
	}
	return tokenPos(u.Operator)
}
func (u *UnaryExpr) exprNode() {}
func (u *UnaryExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitUnaryExpr(u)
}

// AssignmentExpr is an assignment: target op value, where op is = or a
// compound form (+= -= *= /=). Assignment is an expression producing the
// stored value, which is what makes a = b = c chain. The target must
// resolve to a plain identifier; the code generator enforces that.
type AssignmentExpr struct {
	Target   Expr
	Operator lexer.Token
	Value    Expr
}

func (a *AssignmentExpr) Pos() (int, int) { return a.Target.Pos() }
func (a *AssignmentExpr) exprNode()       {}
func (a *AssignmentExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitAssignmentExpr(a)
}

// LogicalExpr is && or ||, kept separate from BinaryExpr since the right
// operand is only conditionally evaluated (short-circuit lowering).
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (l *LogicalExpr) Pos() (int, int) { return l.Left.Pos() }
func (l *LogicalExpr) exprNode()       {}
func (l *LogicalExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitLogicalExpr(l)
}

// GroupingExpr is a parenthesized sub-expression. It has no semantics of
// its own but preserves what the user wrote for the AST dump.
type GroupingExpr struct {
	LeftParen  lexer.Token
	Expression Expr
}

func (g *GroupingExpr) Pos() (int, int) { return tokenPos(g.LeftParen) }
func (g *GroupingExpr) exprNode()       {}
func (g *GroupingExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitGroupingExpr(g)
}
