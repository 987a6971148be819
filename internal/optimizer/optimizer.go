// Package optimizer applies source-level optimization passes to the
// syntax tree before code generation.
//
// Passes transform the tree in place and must preserve observable
// behavior: process exit code, output, and runtime faults. In
// particular a division whose right operand may be zero is never folded
// away, and short-circuit evaluation order is respected when folding
// logical operators.
package optimizer

import (
	"fmt"

	"github.com/Priya00300/CppCompiler/internal/parser/ast"
)

// Pass is one tree transformation.
type Pass interface {
	// Name identifies the pass in logs and errors.
	Name() string

	// Run transforms the program in place. It reports whether anything
	// changed, so the optimizer knows when a fixpoint is reached.
	Run(program *ast.Program) (bool, error)
}

// Optimizer runs a pass list repeatedly until no pass changes the tree
// or the iteration cap is hit.
type Optimizer struct {
	passes        []Pass
	maxIterations int
}

// New creates an optimizer with the default pass list: constant
// folding, then dead code elimination.
func New() *Optimizer {
	return &Optimizer{
		passes: []Pass{
			&ConstantFolding{},
			&DeadCodeElimination{},
		},
		maxIterations: 10,
	}
}

// Optimize runs all passes to a fixpoint.
func (o *Optimizer) Optimize(program *ast.Program) error {
	for i := 0; i < o.maxIterations; i++ {
		changed := false
		for _, pass := range o.passes {
			c, err := pass.Run(program)
			if err != nil {
				return fmt.Errorf("%s: %w", pass.Name(), err)
			}
			changed = changed || c
		}
		if !changed {
			return nil
		}
	}
	return nil
}
