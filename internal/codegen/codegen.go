// Package codegen lowers the AST to x86-64 assembly in AT&T syntax.
//
// The generator is a tree walker implementing ast.Visitor. Expression
// visits return the index of the pool register holding the result;
// statement visits return only an error.
//
// REGISTER MODEL:
// Temporaries come from a fixed pool of eight registers (%r8 through
// %r15). There is no spilling: an expression needing more than eight
// live temporaries is a fatal error. Binary lowering folds the result
// into the left operand's register and frees the right one, so pressure
// grows with tree depth rather than node count.
//
// Codegen errors (undeclared variable, use before initialization,
// register exhaustion and friends) are fatal. Output is buffered
// internally and written to the sink only when the whole program
// lowered cleanly, so a failed run produces no partial assembly.
package codegen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Priya00300/CppCompiler/internal/parser/ast"
	"github.com/Priya00300/CppCompiler/internal/symtab"
)

// frameSize is the fixed stack frame reserved at _start. With 8-byte
// slots this bounds a program to 32 live variable declarations.
const frameSize = 256

var registerNames = [...]string{
	"%r8", "%r9", "%r10", "%r11", "%r12", "%r13", "%r14", "%r15",
}

// Generator emits assembly for one program. Zero value is not usable;
// construct with New.
type Generator struct {
	out io.Writer
	buf bytes.Buffer

	used         [len(registerNames)]bool
	labelCounter int
	table        *symtab.Table
}

// New creates a generator writing to out.
func New(out io.Writer) *Generator {
	return &Generator{
		out:   out,
		table: symtab.New(),
	}
}

// Generate resets all generator state, lowers the program, and on
// success writes the complete assembly text to the sink.
//
// EXIT CODE CONVENTION:
// When the top-level statement list ends with an expression statement,
// that expression's value becomes the process exit status (truncated to
// 8 bits by the kernel); otherwise the program exits 0. A return
// statement anywhere overrides both by jumping to the exit sequence
// with its value already in %rdi.
func (g *Generator) Generate(program *ast.Program) error {
	if program == nil {
		return fmt.Errorf("cannot generate code for nil program")
	}

	g.buf.Reset()
	g.freeAllRegisters()
	g.labelCounter = 0
	g.table.Clear()

	g.emitPreamble()

	stmts := program.Statements
	last := len(stmts) - 1
	exitValueSet := false

	for i, stmt := range stmts {
		if i == last {
			if es, ok := stmt.(*ast.ExprStmt); ok {
				reg, err := g.expr(es.Expression)
				if err != nil {
					return err
				}
				g.emit("movq %s, %%rdi", registerNames[reg])
				g.free(reg)
				exitValueSet = true
				break
			}
		}
		if err := stmt.Accept(g); err != nil {
			return err
		}
	}

	if !exitValueSet {
		g.emit("movq $0, %%rdi")
	}
	g.emitPostamble()

	_, err := g.out.Write(g.buf.Bytes())
	return err
}

// expr lowers an expression and returns the pool register index holding
// its value.
func (g *Generator) expr(e ast.Expr) (int, error) {
	if e == nil {
		return 0, fmt.Errorf("malformed tree: nil expression node")
	}
	v, err := e.Accept(g)
	if err != nil {
		return 0, err
	}
	reg, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("malformed tree: expression produced no register")
	}
	return reg, nil
}

// Register pool

// allocate returns the first free pool register.
func (g *Generator) allocate() (int, error) {
	for i := range g.used {
		if !g.used[i] {
			g.used[i] = true
			return i, nil
		}
	}
	return 0, fmt.Errorf("register pool exhausted: expression needs more than %d temporaries", len(registerNames))
}

func (g *Generator) free(reg int) {
	g.used[reg] = false
}

func (g *Generator) freeAllRegisters() {
	for i := range g.used {
		g.used[i] = false
	}
}

// Labels

// newLabel returns a process-unique label with the given prefix. The
// counter is shared across all prefixes and never reset mid-program.
func (g *Generator) newLabel(prefix string) string {
	label := fmt.Sprintf("%s%d", prefix, g.labelCounter)
	g.labelCounter++
	return label
}

// Emission

func (g *Generator) emit(format string, args ...interface{}) {
	fmt.Fprintf(&g.buf, "    "+format+"\n", args...)
}

func (g *Generator) emitLabel(label string) {
	fmt.Fprintf(&g.buf, "%s:\n", label)
}

func (g *Generator) emitRaw(line string) {
	g.buf.WriteString(line)
	g.buf.WriteByte('\n')
}

func (g *Generator) emitPreamble() {
	g.emitRaw("# x86-64 assembly, AT&T syntax")
	g.emitRaw("")
	g.emitRaw(".section .text")
	g.emitRaw(".global _start")
	g.emitRaw("")

	g.emitRuntime()

	g.emitLabel("_start")
	g.emit("movq %%rsp, %%rbp")
	g.emit("subq $%d, %%rsp", frameSize)
}

func (g *Generator) emitPostamble() {
	g.emitLabel("exit")
	g.emit("movq $60, %%rax")
	g.emit("syscall")
}

// errorf formats a fatal codegen error carrying the node's source
// position.
func (g *Generator) errorf(n ast.Node, format string, args ...interface{}) error {
	line, column := n.Pos()
	return fmt.Errorf("%d:%d: %s", line, column, fmt.Sprintf(format, args...))
}
