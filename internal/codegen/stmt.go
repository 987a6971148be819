package codegen

import (
	"fmt"

	"github.com/Priya00300/CppCompiler/internal/lexer"
	"github.com/Priya00300/CppCompiler/internal/parser/ast"
	"github.com/Priya00300/CppCompiler/internal/symtab"
)

// VisitVarDeclStmt registers the variable in the current scope and, when
// an initializer is present, stores its value into the fresh stack slot.
func (g *Generator) VisitVarDeclStmt(s *ast.VarDeclStmt) error {
	typ, err := declaredType(s.TypeTok.Type)
	if err != nil {
		return g.errorf(s, "%v", err)
	}

	if !g.table.Add(s.Name.Lexeme, typ) {
		return g.errorf(s, "redeclaration of %q", s.Name.Lexeme)
	}
	if g.table.FrameSize() > frameSize {
		return g.errorf(s, "stack frame exhausted: more than %d variables", frameSize/8)
	}

	if s.Init == nil {
		return nil
	}

	reg, err := g.expr(s.Init)
	if err != nil {
		return err
	}
	sym := g.table.Find(s.Name.Lexeme)
	g.emit("movq %s, %d(%%rbp)", registerNames[reg], sym.Offset)
	g.table.MarkInitialized(s.Name.Lexeme)
	g.free(reg)
	return nil
}

func declaredType(tt lexer.TokenType) (symtab.Type, error) {
	switch tt {
	case lexer.TokenInt:
		return symtab.Int, nil
	case lexer.TokenFloat, lexer.TokenDouble:
		return symtab.Float, nil
	case lexer.TokenChar:
		return symtab.Char, nil
	case lexer.TokenBool:
		return symtab.Bool, nil
	default:
		return symtab.Void, fmt.Errorf("%s cannot declare a variable", tt)
	}
}

// VisitExprStmt lowers the expression for its side effects and frees
// the result register.
func (g *Generator) VisitExprStmt(s *ast.ExprStmt) error {
	reg, err := g.expr(s.Expression)
	if err != nil {
		return err
	}
	g.free(reg)
	return nil
}

// VisitBlockStmt lowers children inside a fresh symbol-table scope.
func (g *Generator) VisitBlockStmt(s *ast.BlockStmt) error {
	g.table.EnterScope()
	defer g.table.ExitScope()

	for _, stmt := range s.Statements {
		if err := stmt.Accept(g); err != nil {
			return err
		}
	}
	return nil
}

// VisitIfStmt emits: test condition, skip to else on zero, then branch
// over the else arm.
func (g *Generator) VisitIfStmt(s *ast.IfStmt) error {
	elseLabel := g.newLabel("else_")
	endLabel := g.newLabel("end_if_")

	cond, err := g.expr(s.Condition)
	if err != nil {
		return err
	}
	g.emit("testq %s, %s", registerNames[cond], registerNames[cond])
	g.emit("jz %s", elseLabel)
	g.free(cond)

	if err := s.Then.Accept(g); err != nil {
		return err
	}
	g.emit("jmp %s", endLabel)

	g.emitLabel(elseLabel)
	if s.Else != nil {
		if err := s.Else.Accept(g); err != nil {
			return err
		}
	}
	g.emitLabel(endLabel)
	return nil
}

// VisitWhileStmt emits: loop label, condition test exiting on zero,
// body, back edge.
func (g *Generator) VisitWhileStmt(s *ast.WhileStmt) error {
	loopLabel := g.newLabel("while_")
	endLabel := g.newLabel("end_while_")

	g.emitLabel(loopLabel)
	cond, err := g.expr(s.Condition)
	if err != nil {
		return err
	}
	g.emit("testq %s, %s", registerNames[cond], registerNames[cond])
	g.emit("jz %s", endLabel)
	g.free(cond)

	if err := s.Body.Accept(g); err != nil {
		return err
	}
	g.emit("jmp %s", loopLabel)
	g.emitLabel(endLabel)
	return nil
}

// VisitForStmt desugars to: init, loop label, optional condition test,
// body, update, back edge. The init clause's declaration lives in a
// scope covering the whole loop.
func (g *Generator) VisitForStmt(s *ast.ForStmt) error {
	g.table.EnterScope()
	defer g.table.ExitScope()

	if s.Init != nil {
		if err := s.Init.Accept(g); err != nil {
			return err
		}
	}

	loopLabel := g.newLabel("for_")
	endLabel := g.newLabel("end_for_")

	g.emitLabel(loopLabel)
	if s.Condition != nil {
		cond, err := g.expr(s.Condition)
		if err != nil {
			return err
		}
		g.emit("testq %s, %s", registerNames[cond], registerNames[cond])
		g.emit("jz %s", endLabel)
		g.free(cond)
	}

	if err := s.Body.Accept(g); err != nil {
		return err
	}

	if s.Update != nil {
		reg, err := g.expr(s.Update)
		if err != nil {
			return err
		}
		g.free(reg)
	}
	g.emit("jmp %s", loopLabel)
	g.emitLabel(endLabel)
	return nil
}

// VisitReturnStmt places the value (default 0) in %rdi and jumps to the
// shared exit sequence.
func (g *Generator) VisitReturnStmt(s *ast.ReturnStmt) error {
	if s.Value == nil {
		g.emit("movq $0, %%rdi")
	} else {
		reg, err := g.expr(s.Value)
		if err != nil {
			return err
		}
		g.emit("movq %s, %%rdi", registerNames[reg])
		g.free(reg)
	}
	g.emit("jmp exit")
	return nil
}

// VisitCoutStmt prints each operand through the print_int runtime
// helper; an endl operand prints a newline instead.
func (g *Generator) VisitCoutStmt(s *ast.CoutStmt) error {
	for _, operand := range s.Operands {
		if ident, ok := operand.(*ast.IdentifierExpr); ok && ident.Token.Type == lexer.TokenEndl {
			g.emit("movq $10, %%rdi")
			g.emit("call print_char")
			continue
		}

		reg, err := g.expr(operand)
		if err != nil {
			return err
		}
		g.emit("movq %s, %%rdi", registerNames[reg])
		g.emit("call print_int")
		g.free(reg)
	}
	return nil
}

// VisitCinStmt reads an integer into each operand's stack slot via the
// read_int runtime helper. Operands must be declared variables; a read
// counts as initialization.
func (g *Generator) VisitCinStmt(s *ast.CinStmt) error {
	for _, operand := range s.Operands {
		ident, ok := operand.(*ast.IdentifierExpr)
		if !ok || ident.Token.Type == lexer.TokenEndl {
			return g.errorf(s, "cin target must be a variable")
		}
		sym := g.table.Find(ident.Name)
		if sym == nil {
			return g.errorf(operand, "undeclared variable %q", ident.Name)
		}

		g.emit("call read_int")
		g.emit("movq %%rax, %d(%%rbp)", sym.Offset)
		g.table.MarkInitialized(ident.Name)
	}
	return nil
}
