package optimizer

import (
	"github.com/Priya00300/CppCompiler/internal/parser/ast"
)

// DeadCodeElimination removes statements that can never execute:
//
//   - if statements with a constant condition collapse to the taken arm
//   - while loops with a constant-false condition disappear
//   - statements following a return in the same statement list disappear
//
// It relies on ConstantFolding having already reduced conditions to
// literals, which is why the optimizer iterates the pass list to a
// fixpoint.
type DeadCodeElimination struct{}

func (d *DeadCodeElimination) Name() string {
	return "DeadCodeElimination"
}

func (d *DeadCodeElimination) Run(program *ast.Program) (bool, error) {
	e := &eliminator{}
	program.Statements = e.stmtList(program.Statements)
	return e.changed, nil
}

type eliminator struct {
	changed bool
}

// stmtList rewrites each statement and truncates the list at the first
// return, whose trailing statements are unreachable.
func (e *eliminator) stmtList(stmts []ast.Stmt) []ast.Stmt {
	out := stmts[:0]
	for i, stmt := range stmts {
		rewritten, keep := e.stmt(stmt)
		if !keep {
			e.changed = true
			continue
		}
		out = append(out, rewritten)

		if _, isReturn := rewritten.(*ast.ReturnStmt); isReturn {
			if i < len(stmts)-1 {
				e.changed = true
			}
			break
		}
	}
	return out
}

// stmt rewrites one statement. The second result is false when the
// statement should be dropped entirely.
func (e *eliminator) stmt(stmt ast.Stmt) (ast.Stmt, bool) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		s.Statements = e.stmtList(s.Statements)
		return s, true

	case *ast.IfStmt:
		if v, ok := constValue(s.Condition); ok {
			e.changed = true
			if v != 0 {
				return e.stmt(s.Then)
			}
			if s.Else != nil {
				return e.stmt(s.Else)
			}
			return nil, false
		}
		s.Then = e.keepOrEmpty(s.Then)
		if s.Else != nil {
			if rewritten, keep := e.stmt(s.Else); keep {
				s.Else = rewritten
			} else {
				s.Else = nil
			}
		}
		return s, true

	case *ast.WhileStmt:
		if v, ok := constValue(s.Condition); ok && v == 0 {
			return nil, false
		}
		s.Body = e.keepOrEmpty(s.Body)
		return s, true

	case *ast.ForStmt:
		// The init clause may still declare and run; only a loop with
		// no init and a constant-false condition is fully dead.
		if s.Condition != nil && s.Init == nil {
			if v, ok := constValue(s.Condition); ok && v == 0 {
				return nil, false
			}
		}
		s.Body = e.keepOrEmpty(s.Body)
		return s, true

	default:
		return stmt, true
	}
}

// keepOrEmpty rewrites a required child statement, substituting an
// empty block when the child itself was eliminated.
func (e *eliminator) keepOrEmpty(stmt ast.Stmt) ast.Stmt {
	rewritten, keep := e.stmt(stmt)
	if !keep {
		return &ast.BlockStmt{}
	}
	return rewritten
}
