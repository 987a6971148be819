// Package ast defines the Abstract Syntax Tree node types for the
// compiler.
//
// The AST is an ownership tree: every non-leaf node exclusively owns its
// children, the tree is acyclic, and each node has exactly one parent.
// Nodes are created bottom-up during parsing and consumed top-down,
// exactly once, during code generation. The only mutation after a
// subtree is complete is appending to a statement list while its block
// is still being parsed.
//
// Operations on the tree use the visitor pattern: each node has an
// Accept method dispatching to the matching Visitor method, so passes
// like code generation live outside this package.
package ast

import (
	"github.com/Priya00300/CppCompiler/internal/lexer"
)

// Node is the base interface for all AST nodes. Every node reports the
// source position of its first token for error messages.
type Node interface {
	// Pos returns the 1-based line and column of the node's first token.
	Pos() (line, column int)
}

// Expr is the interface for all expression nodes: code that produces a
// value (2 + 3, x, a = b).
type Expr interface {
	Node
	// Accept dispatches to the visitor. Expression visitors return a
	// value whose meaning belongs to the pass (the code generator
	// returns the register index holding the result).
	Accept(v Visitor) (interface{}, error)
	exprNode()
}

// Stmt is the interface for all statement nodes: code that performs an
// action (declarations, control flow, blocks).
type Stmt interface {
	Node
	Accept(v Visitor) error
	stmtNode()
}

// Visitor is the interface for AST traversal. One method per concrete
// node type; expression visitors carry a result value, statement
// visitors only an error.
type Visitor interface {
	VisitLiteralExpr(expr *LiteralExpr) (interface{}, error)
	VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error)
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitUnaryExpr(expr *UnaryExpr) (interface{}, error)
	VisitAssignmentExpr(expr *AssignmentExpr) (interface{}, error)
	VisitLogicalExpr(expr *LogicalExpr) (interface{}, error)
	VisitGroupingExpr(expr *GroupingExpr) (interface{}, error)

	VisitVarDeclStmt(stmt *VarDeclStmt) error
	VisitExprStmt(stmt *ExprStmt) error
	VisitBlockStmt(stmt *BlockStmt) error
	VisitIfStmt(stmt *IfStmt) error
	VisitWhileStmt(stmt *WhileStmt) error
	VisitForStmt(stmt *ForStmt) error
	VisitReturnStmt(stmt *ReturnStmt) error
	VisitCoutStmt(stmt *CoutStmt) error
	VisitCinStmt(stmt *CinStmt) error
}

// Program is the root of the tree: the ordered list of top-level
// statements of one compilation unit.
type Program struct {
	Statements []Stmt
}

func (p *Program) Pos() (int, int) {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return 1, 1
}

// Walk traverses the tree rooted at n in pre-order, calling fn for every
// node. Children are visited in source order. Used by conformance tests
// to compare node-kind sequences, and by the driver's AST dump.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)

	switch node := n.(type) {
	case *Program:
		for _, s := range node.Statements {
			Walk(s, fn)
		}
	case *LiteralExpr, *IdentifierExpr:
		// Leaves.
	case *BinaryExpr:
		Walk(node.Left, fn)
		Walk(node.Right, fn)
	case *UnaryExpr:
		Walk(node.Operand, fn)
	case *AssignmentExpr:
		Walk(node.Target, fn)
		Walk(node.Value, fn)
	case *LogicalExpr:
		Walk(node.Left, fn)
		Walk(node.Right, fn)
	case *GroupingExpr:
		Walk(node.Expression, fn)
	case *VarDeclStmt:
		if node.Init != nil {
			Walk(node.Init, fn)
		}
	case *ExprStmt:
		Walk(node.Expression, fn)
	case *BlockStmt:
		for _, s := range node.Statements {
			Walk(s, fn)
		}
	case *IfStmt:
		Walk(node.Condition, fn)
		Walk(node.Then, fn)
		if node.Else != nil {
			Walk(node.Else, fn)
		}
	case *WhileStmt:
		Walk(node.Condition, fn)
		Walk(node.Body, fn)
	case *ForStmt:
		if node.Init != nil {
			Walk(node.Init, fn)
		}
		if node.Condition != nil {
			Walk(node.Condition, fn)
		}
		if node.Update != nil {
			Walk(node.Update, fn)
		}
		Walk(node.Body, fn)
	case *ReturnStmt:
		if node.Value != nil {
			Walk(node.Value, fn)
		}
	case *CoutStmt:
		for _, e := range node.Operands {
			Walk(e, fn)
		}
	case *CinStmt:
		for _, e := range node.Operands {
			Walk(e, fn)
		}
	}
}

// tokenPos is shared by nodes whose position is their introducing token.
func tokenPos(t lexer.Token) (int, int) {
	return t.Line, t.Column
}
