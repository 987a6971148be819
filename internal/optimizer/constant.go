package optimizer

import (
	"github.com/Priya00300/CppCompiler/internal/lexer"
	"github.com/Priya00300/CppCompiler/internal/parser/ast"
)

// ConstantFolding evaluates constant integer and boolean expressions
// at compile time, replacing them with literal nodes.
//
// RULES:
//   - Only int and bool constants fold; float arithmetic is left to the
//     code generator's truncation rule.
//   - x/0 and x%0 never fold: the runtime fault is part of program
//     behavior.
//   - && and || fold when both operands are constant, or when the left
//     operand alone decides the result. The right operand is then
//     discarded exactly as short-circuit lowering would skip it.
//   - Variables never fold. There is no constant propagation across
//     assignments, so reads through cin and loop-carried values stay
//     untouched.
type ConstantFolding struct{}

func (c *ConstantFolding) Name() string {
	return "ConstantFolding"
}

func (c *ConstantFolding) Run(program *ast.Program) (bool, error) {
	f := &folder{}
	for i, stmt := range program.Statements {
		program.Statements[i] = f.stmt(stmt)
	}
	return f.changed, nil
}

// folder rewrites expressions bottom-up, tracking whether any node was
// replaced.
type folder struct {
	changed bool
}

func (f *folder) stmt(stmt ast.Stmt) ast.Stmt {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		if s.Init != nil {
			s.Init = f.expr(s.Init)
		}
	case *ast.ExprStmt:
		s.Expression = f.expr(s.Expression)
	case *ast.BlockStmt:
		for i, child := range s.Statements {
			s.Statements[i] = f.stmt(child)
		}
	case *ast.IfStmt:
		s.Condition = f.expr(s.Condition)
		s.Then = f.stmt(s.Then)
		if s.Else != nil {
			s.Else = f.stmt(s.Else)
		}
	case *ast.WhileStmt:
		s.Condition = f.expr(s.Condition)
		s.Body = f.stmt(s.Body)
	case *ast.ForStmt:
		if s.Init != nil {
			s.Init = f.stmt(s.Init)
		}
		if s.Condition != nil {
			s.Condition = f.expr(s.Condition)
		}
		if s.Update != nil {
			s.Update = f.expr(s.Update)
		}
		s.Body = f.stmt(s.Body)
	case *ast.ReturnStmt:
		if s.Value != nil {
			s.Value = f.expr(s.Value)
		}
	case *ast.CoutStmt:
		for i, operand := range s.Operands {
			s.Operands[i] = f.expr(operand)
		}
	}
	return stmt
}

func (f *folder) expr(expr ast.Expr) ast.Expr {
	switch e := expr.(type) {
	case *ast.GroupingExpr:
		inner := f.expr(e.Expression)
		// Parentheses around a literal carry no information.
		if lit, ok := inner.(*ast.LiteralExpr); ok {
			f.changed = true
			return lit
		}
		e.Expression = inner
		return e

	case *ast.UnaryExpr:
		return f.unary(e)

	case *ast.BinaryExpr:
		return f.binary(e)

	case *ast.LogicalExpr:
		return f.logical(e)

	case *ast.AssignmentExpr:
		e.Value = f.expr(e.Value)
		return e

	default:
		return expr
	}
}

// constValue extracts an integer value from a foldable literal. Bools
// fold as 0/1, matching their runtime representation.
func constValue(expr ast.Expr) (int64, bool) {
	lit, ok := expr.(*ast.LiteralExpr)
	if !ok {
		return 0, false
	}
	switch v := lit.Value.(type) {
	case int64:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func literal(at ast.Expr, value int64) *ast.LiteralExpr {
	line, column := at.Pos()
	return &ast.LiteralExpr{
		Token: lexer.Token{Type: lexer.TokenIntLit, Line: line, Column: column},
		Value: value,
	}
}

func (f *folder) unary(e *ast.UnaryExpr) ast.Expr {
	e.Operand = f.expr(e.Operand)

	v, ok := constValue(e.Operand)
	if !ok {
		return e
	}

	var result int64
	switch e.Operator.Type {
	case lexer.TokenMinus:
		result = -v
	case lexer.TokenPlus:
		result = v
	case lexer.TokenNot:
		if v == 0 {
			result = 1
		}
	default:
		return e
	}

	f.changed = true
	return literal(e, result)
}

func (f *folder) binary(e *ast.BinaryExpr) ast.Expr {
	e.Left = f.expr(e.Left)
	e.Right = f.expr(e.Right)

	l, lok := constValue(e.Left)
	r, rok := constValue(e.Right)
	if !lok || !rok {
		return e
	}

	boolToInt := func(b bool) int64 {
		if b {
			return 1
		}
		return 0
	}

	var result int64
	switch e.Operator.Type {
	case lexer.TokenPlus:
		result = l + r
	case lexer.TokenMinus:
		result = l - r
	case lexer.TokenStar:
		result = l * r
	case lexer.TokenSlash:
		if r == 0 {
			return e
		}
		result = l / r
	case lexer.TokenPercent:
		if r == 0 {
			return e
		}
		result = l % r
	case lexer.TokenEqual:
		result = boolToInt(l == r)
	case lexer.TokenNotEqual:
		result = boolToInt(l != r)
	case lexer.TokenLess:
		result = boolToInt(l < r)
	case lexer.TokenLessEqual:
		result = boolToInt(l <= r)
	case lexer.TokenGreater:
		result = boolToInt(l > r)
	case lexer.TokenGreaterEqual:
		result = boolToInt(l >= r)
	case lexer.TokenBitAnd:
		result = l & r
	case lexer.TokenBitOr:
		result = l | r
	case lexer.TokenBitXor:
		result = l ^ r
	case lexer.TokenShl:
		if r < 0 || r > 63 {
			return e
		}
		result = l << uint(r)
	case lexer.TokenShr:
		if r < 0 || r > 63 {
			return e
		}
		result = l >> uint(r)
	default:
		return e
	}

	f.changed = true
	return literal(e, result)
}

func (f *folder) logical(e *ast.LogicalExpr) ast.Expr {
	e.Left = f.expr(e.Left)
	e.Right = f.expr(e.Right)

	l, lok := constValue(e.Left)

	// A deciding left operand folds the whole expression regardless of
	// the right side, mirroring short-circuit evaluation.
	if lok {
		switch e.Operator.Type {
		case lexer.TokenAnd:
			if l == 0 {
				f.changed = true
				return literal(e, 0)
			}
		case lexer.TokenOr:
			if l != 0 {
				f.changed = true
				return literal(e, 1)
			}
		}
	}

	r, rok := constValue(e.Right)
	if !lok || !rok {
		return e
	}

	var result int64
	switch e.Operator.Type {
	case lexer.TokenAnd:
		if l != 0 && r != 0 {
			result = 1
		}
	case lexer.TokenOr:
		if l != 0 || r != 0 {
			result = 1
		}
	default:
		return e
	}

	f.changed = true
	return literal(e, result)
}
