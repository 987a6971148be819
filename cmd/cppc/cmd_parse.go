package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/Priya00300/CppCompiler/internal/lexer"
	"github.com/Priya00300/CppCompiler/internal/parser"
	"github.com/Priya00300/CppCompiler/internal/parser/ast"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its syntax tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0])
		},
		Args: cobra.ExactArgs(1),
	}
	return cmd
}

func runParse(path string) error {
	log := commonlog.GetLogger("cppc.parse")

	src, err := lexer.NewFileSource(path)
	if err != nil {
		return err
	}
	defer src.Close()

	program, errs := parser.New(src).Parse()
	log.Infof("parsed %s: %d statements, %d errors", path, len(program.Statements), len(errs))

	printProgram(os.Stdout, program)

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, e)
		}
		return fmt.Errorf("%d syntax errors", len(errs))
	}
	return nil
}

// AST pretty-printer. Lives in the driver: the core packages never
// print, they only build and consume the tree.

func printProgram(w io.Writer, program *ast.Program) {
	fmt.Fprintln(w, "Program")
	for _, stmt := range program.Statements {
		printStmt(w, stmt, 1)
	}
}

func indent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat("  ", depth))
}

func printStmt(w io.Writer, stmt ast.Stmt, depth int) {
	indent(w, depth)

	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		fmt.Fprintf(w, "VarDecl %s %s\n", s.TypeTok.Lexeme, s.Name.Lexeme)
		if s.Init != nil {
			printExpr(w, s.Init, depth+1)
		}
	case *ast.ExprStmt:
		fmt.Fprintln(w, "ExprStmt")
		printExpr(w, s.Expression, depth+1)
	case *ast.BlockStmt:
		fmt.Fprintln(w, "Block")
		for _, child := range s.Statements {
			printStmt(w, child, depth+1)
		}
	case *ast.IfStmt:
		fmt.Fprintln(w, "If")
		printExpr(w, s.Condition, depth+1)
		printStmt(w, s.Then, depth+1)
		if s.Else != nil {
			indent(w, depth)
			fmt.Fprintln(w, "Else")
			printStmt(w, s.Else, depth+1)
		}
	case *ast.WhileStmt:
		fmt.Fprintln(w, "While")
		printExpr(w, s.Condition, depth+1)
		printStmt(w, s.Body, depth+1)
	case *ast.ForStmt:
		fmt.Fprintln(w, "For")
		if s.Init != nil {
			printStmt(w, s.Init, depth+1)
		}
		if s.Condition != nil {
			printExpr(w, s.Condition, depth+1)
		}
		if s.Update != nil {
			printExpr(w, s.Update, depth+1)
		}
		printStmt(w, s.Body, depth+1)
	case *ast.ReturnStmt:
		fmt.Fprintln(w, "Return")
		if s.Value != nil {
			printExpr(w, s.Value, depth+1)
		}
	case *ast.CoutStmt:
		fmt.Fprintln(w, "Cout")
		for _, operand := range s.Operands {
			printExpr(w, operand, depth+1)
		}
	case *ast.CinStmt:
		fmt.Fprintln(w, "Cin")
		for _, operand := range s.Operands {
			printExpr(w, operand, depth+1)
		}
	default:
		fmt.Fprintf(w, "%T\n", stmt)
	}
}

func printExpr(w io.Writer, expr ast.Expr, depth int) {
	indent(w, depth)

	switch e := expr.(type) {
	case *ast.LiteralExpr:
		fmt.Fprintf(w, "Literal %v\n", e.Value)
	case *ast.IdentifierExpr:
		fmt.Fprintf(w, "Identifier %s\n", e.Name)
	case *ast.BinaryExpr:
		fmt.Fprintf(w, "Binary %s\n", e.Operator.Lexeme)
		printExpr(w, e.Left, depth+1)
		printExpr(w, e.Right, depth+1)
	case *ast.LogicalExpr:
		fmt.Fprintf(w, "Logical %s\n", e.Operator.Lexeme)
		printExpr(w, e.Left, depth+1)
		printExpr(w, e.Right, depth+1)
	case *ast.UnaryExpr:
		form := "prefix"
		if e.IsPostfix {
			form = "postfix"
		}
		fmt.Fprintf(w, "Unary %s %s\n", form, e.Operator.Lexeme)
		printExpr(w, e.Operand, depth+1)
	case *ast.AssignmentExpr:
		fmt.Fprintf(w, "Assign %s\n", e.Operator.Lexeme)
		printExpr(w, e.Target, depth+1)
		printExpr(w, e.Value, depth+1)
	case *ast.GroupingExpr:
		fmt.Fprintln(w, "Grouping")
		printExpr(w, e.Expression, depth+1)
	default:
		fmt.Fprintf(w, "%T\n", expr)
	}
}
