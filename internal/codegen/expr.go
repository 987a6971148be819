package codegen

import (
	"github.com/Priya00300/CppCompiler/internal/lexer"
	"github.com/Priya00300/CppCompiler/internal/parser/ast"
)

// VisitLiteralExpr loads an immediate into a fresh register. Float
// literals are truncated to their integer value; the generator does no
// IEEE arithmetic.
func (g *Generator) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	reg, err := g.allocate()
	if err != nil {
		return nil, g.errorf(e, "%v", err)
	}

	switch v := e.Value.(type) {
	case int64:
		g.emit("movq $%d, %s", v, registerNames[reg])
	case float64:
		g.emit("movq $%d, %s", int64(v), registerNames[reg])
	case rune:
		g.emit("movq $%d, %s", v, registerNames[reg])
	case bool:
		if v {
			g.emit("movq $1, %s", registerNames[reg])
		} else {
			g.emit("movq $0, %s", registerNames[reg])
		}
	case string:
		g.free(reg)
		return nil, g.errorf(e, "string literals cannot be used in expressions")
	default:
		g.free(reg)
		return nil, g.errorf(e, "malformed tree: unknown literal kind")
	}

	return reg, nil
}

// VisitIdentifierExpr loads a declared, initialized variable from its
// stack slot into a fresh register.
func (g *Generator) VisitIdentifierExpr(e *ast.IdentifierExpr) (interface{}, error) {
	if e.Token.Type == lexer.TokenEndl {
		return nil, g.errorf(e, "'endl' is only valid in a cout statement")
	}

	sym := g.table.Find(e.Name)
	if sym == nil {
		return nil, g.errorf(e, "undeclared variable %q", e.Name)
	}
	if !sym.Initialized {
		return nil, g.errorf(e, "variable %q used before initialization", e.Name)
	}

	reg, err := g.allocate()
	if err != nil {
		return nil, g.errorf(e, "%v", err)
	}
	g.emit("movq %d(%%rbp), %s", sym.Offset, registerNames[reg])
	return reg, nil
}

// VisitBinaryExpr lowers both operands, folds the operation into the
// left register, and frees the right one.
func (g *Generator) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	left, err := g.expr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := g.expr(e.Right)
	if err != nil {
		return nil, err
	}

	if err := g.binaryOp(e, e.Operator.Type, left, right); err != nil {
		return nil, err
	}

	g.free(right)
	return left, nil
}

// binaryOp emits one binary operation, leaving the result in left.
func (g *Generator) binaryOp(n ast.Node, op lexer.TokenType, left, right int) error {
	l := registerNames[left]
	r := registerNames[right]

	switch op {
	case lexer.TokenPlus:
		g.emit("addq %s, %s", r, l)
	case lexer.TokenMinus:
		g.emit("subq %s, %s", r, l)
	case lexer.TokenStar:
		g.emit("imulq %s, %s", r, l)

	case lexer.TokenSlash:
		g.divide(l, r, "%rax")
	case lexer.TokenPercent:
		g.divide(l, r, "%rdx")

	case lexer.TokenEqual:
		g.compare(l, r, "sete")
	case lexer.TokenNotEqual:
		g.compare(l, r, "setne")
	case lexer.TokenLess:
		g.compare(l, r, "setl")
	case lexer.TokenLessEqual:
		g.compare(l, r, "setle")
	case lexer.TokenGreater:
		g.compare(l, r, "setg")
	case lexer.TokenGreaterEqual:
		g.compare(l, r, "setge")

	case lexer.TokenBitAnd:
		g.emit("andq %s, %s", r, l)
	case lexer.TokenBitOr:
		g.emit("orq %s, %s", r, l)
	case lexer.TokenBitXor:
		g.emit("xorq %s, %s", r, l)

	case lexer.TokenShl:
		g.shift(l, r, "shlq")
	case lexer.TokenShr:
		g.shift(l, r, "sarq")

	default:
		return g.errorf(n, "unsupported binary operator %s", op)
	}
	return nil
}

// divide routes l/r through the hardware divide registers, saving and
// restoring their prior contents. result names %rax for the quotient or
// %rdx for the remainder.
func (g *Generator) divide(l, r, result string) {
	g.emit("pushq %%rax")
	g.emit("pushq %%rdx")
	g.emit("movq %s, %%rax", l)
	g.emit("cqto")
	g.emit("idivq %s", r)
	g.emit("movq %s, %s", result, l)
	g.emit("popq %%rdx")
	g.emit("popq %%rax")
}

// compare materializes a 0/1 boolean into l using the given flag-set
// instruction.
func (g *Generator) compare(l, r, set string) {
	g.emit("cmpq %s, %s", r, l)
	g.emit("%s %%al", set)
	g.emit("movzbq %%al, %s", l)
}

// shift routes the count through %cl, preserving %rcx.
func (g *Generator) shift(l, r, op string) {
	g.emit("pushq %%rcx")
	g.emit("movq %s, %%rcx", r)
	g.emit("%s %%cl, %s", op, l)
	g.emit("popq %%rcx")
}

// VisitLogicalExpr emits short-circuit && and ||. The right operand's
// code sits behind a conditional branch, so it never executes when the
// left operand already determines the result.
func (g *Generator) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	left, err := g.expr(e.Left)
	if err != nil {
		return nil, err
	}
	l := registerNames[left]

	switch e.Operator.Type {
	case lexer.TokenAnd:
		shortLabel := g.newLabel("and_false_")
		endLabel := g.newLabel("and_end_")

		g.emit("testq %s, %s", l, l)
		g.emit("jz %s", shortLabel)

		right, err := g.expr(e.Right)
		if err != nil {
			return nil, err
		}
		r := registerNames[right]
		g.emit("testq %s, %s", r, r)
		g.emit("setnz %%al")
		g.emit("movzbq %%al, %s", l)
		g.free(right)
		g.emit("jmp %s", endLabel)

		g.emitLabel(shortLabel)
		g.emit("movq $0, %s", l)
		g.emitLabel(endLabel)

	case lexer.TokenOr:
		shortLabel := g.newLabel("or_true_")
		endLabel := g.newLabel("or_end_")

		g.emit("testq %s, %s", l, l)
		g.emit("jnz %s", shortLabel)

		right, err := g.expr(e.Right)
		if err != nil {
			return nil, err
		}
		r := registerNames[right]
		g.emit("testq %s, %s", r, r)
		g.emit("setnz %%al")
		g.emit("movzbq %%al, %s", l)
		g.free(right)
		g.emit("jmp %s", endLabel)

		g.emitLabel(shortLabel)
		g.emit("movq $1, %s", l)
		g.emitLabel(endLabel)

	default:
		return nil, g.errorf(e, "malformed tree: %s in logical node", e.Operator.Type)
	}

	return left, nil
}

// VisitUnaryExpr lowers negate, not, plus, and the increment/decrement
// forms. Increment and decrement operate directly on a variable's stack
// slot and require a plain identifier operand.
func (g *Generator) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	switch e.Operator.Type {
	case lexer.TokenPlusPlus, lexer.TokenMinusMinus:
		return g.incDec(e)
	}

	reg, err := g.expr(e.Operand)
	if err != nil {
		return nil, err
	}
	name := registerNames[reg]

	switch e.Operator.Type {
	case lexer.TokenMinus:
		g.emit("negq %s", name)
	case lexer.TokenPlus:
		// Unary plus is a no-op.
	case lexer.TokenNot:
		g.emit("testq %s, %s", name, name)
		g.emit("setz %%al")
		g.emit("movzbq %%al, %s", name)
	default:
		g.free(reg)
		return nil, g.errorf(e, "unsupported unary operator %s", e.Operator.Type)
	}

	return reg, nil
}

// incDec lowers ++x, --x, x++, x--. The prefix forms yield the updated
// value, the postfix forms the original one.
func (g *Generator) incDec(e *ast.UnaryExpr) (interface{}, error) {
	ident, ok := e.Operand.(*ast.IdentifierExpr)
	if !ok {
		return nil, g.errorf(e, "operand of %q must be a variable", e.Operator.Lexeme)
	}

	sym := g.table.Find(ident.Name)
	if sym == nil {
		return nil, g.errorf(e, "undeclared variable %q", ident.Name)
	}
	if !sym.Initialized {
		return nil, g.errorf(e, "variable %q used before initialization", ident.Name)
	}

	op := "incq"
	if e.Operator.Type == lexer.TokenMinusMinus {
		op = "decq"
	}

	reg, err := g.allocate()
	if err != nil {
		return nil, g.errorf(e, "%v", err)
	}

	if e.IsPostfix {
		g.emit("movq %d(%%rbp), %s", sym.Offset, registerNames[reg])
		g.emit("%s %d(%%rbp)", op, sym.Offset)
	} else {
		g.emit("%s %d(%%rbp)", op, sym.Offset)
		g.emit("movq %d(%%rbp), %s", sym.Offset, registerNames[reg])
	}

	return reg, nil
}

// VisitAssignmentExpr stores into a plain identifier's stack slot and
// yields the stored value's register, which is what makes chained
// assignment work.
func (g *Generator) VisitAssignmentExpr(e *ast.AssignmentExpr) (interface{}, error) {
	ident, ok := e.Target.(*ast.IdentifierExpr)
	if !ok {
		return nil, g.errorf(e, "assignment target must be a variable")
	}

	sym := g.table.Find(ident.Name)
	if sym == nil {
		return nil, g.errorf(e, "undeclared variable %q", ident.Name)
	}

	value, err := g.expr(e.Value)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == lexer.TokenAssign {
		g.emit("movq %s, %d(%%rbp)", registerNames[value], sym.Offset)
		g.table.MarkInitialized(ident.Name)
		return value, nil
	}

	// Compound assignment reads the current value, so plain = must have
	// happened first.
	if !sym.Initialized {
		return nil, g.errorf(e, "variable %q used before initialization", ident.Name)
	}

	current, err := g.allocate()
	if err != nil {
		return nil, g.errorf(e, "%v", err)
	}
	g.emit("movq %d(%%rbp), %s", sym.Offset, registerNames[current])

	var op lexer.TokenType
	switch e.Operator.Type {
	case lexer.TokenPlusEq:
		op = lexer.TokenPlus
	case lexer.TokenMinusEq:
		op = lexer.TokenMinus
	case lexer.TokenStarEq:
		op = lexer.TokenStar
	case lexer.TokenSlashEq:
		op = lexer.TokenSlash
	default:
		return nil, g.errorf(e, "unsupported assignment operator %s", e.Operator.Type)
	}
	if err := g.binaryOp(e, op, current, value); err != nil {
		return nil, err
	}

	g.emit("movq %s, %d(%%rbp)", registerNames[current], sym.Offset)
	g.free(value)
	return current, nil
}

// VisitGroupingExpr lowers the wrapped expression; parentheses have no
// runtime effect.
func (g *Generator) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	reg, err := g.expr(e.Expression)
	if err != nil {
		return nil, err
	}
	return reg, nil
}
