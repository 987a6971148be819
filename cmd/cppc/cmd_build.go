package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/Priya00300/CppCompiler/internal/codegen"
	"github.com/Priya00300/CppCompiler/internal/lexer"
	"github.com/Priya00300/CppCompiler/internal/optimizer"
	"github.com/Priya00300/CppCompiler/internal/parser"
)

func newBuildCmd() *cobra.Command {
	var output string
	var optimize bool

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Compile a source file to x86-64 assembly",
		Long: `Compile a source file to x86-64 assembly in AT&T syntax.

The output is written to the file named by -o, or to standard output
when no output file is given. The emitted program defines the _start
entry symbol and exits with the value of the last top-level expression,
so it can be assembled and linked without libc:

  cppc build prog.cpp -o prog.s
  as prog.s -o prog.o && ld prog.o -o prog`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], output, optimize)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output assembly file (default stdout)")
	cmd.Flags().BoolVarP(&optimize, "optimize", "O", false, "run constant folding and dead code elimination")

	return cmd
}

func runBuild(path, output string, optimize bool) error {
	log := commonlog.GetLogger("cppc.build")

	src, err := lexer.NewFileSource(path)
	if err != nil {
		return err
	}
	defer src.Close()

	program, errs := parser.New(src).Parse()
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, e)
		}
		return fmt.Errorf("%d syntax errors", len(errs))
	}
	log.Infof("parsed %s: %d statements", path, len(program.Statements))

	if optimize {
		if err := optimizer.New().Optimize(program); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Infof("optimized: %d statements remain", len(program.Statements))
	}

	// Generate into memory first so a codegen failure leaves no file
	// behind.
	var buf bytes.Buffer
	if err := codegen.New(&buf).Generate(program); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("generated %d bytes of assembly", buf.Len())

	if output == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(output, buf.Bytes(), 0o644)
}
