package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/Priya00300/CppCompiler/internal/lexer"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Tokenize a source file and print the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0])
		},
	}
	return cmd
}

func runScan(path string) error {
	log := commonlog.GetLogger("cppc.scan")

	src, err := lexer.NewFileSource(path)
	if err != nil {
		return err
	}
	defer src.Close()

	log.Infof("scanning %s", path)

	count := 0
	errors := 0
	for {
		tok := src.NextToken()
		if tok.Type == lexer.TokenNewline {
			continue
		}
		if tok.Type == lexer.TokenEOF {
			break
		}
		if tok.Type == lexer.TokenError {
			errors++
		}
		fmt.Printf("%4d:%-4d %-14s %s\n", tok.Line, tok.Column, tok.Type, tok.Lexeme)
		count++
	}

	log.Infof("%d tokens, %d lexical errors", count, errors)
	if errors > 0 {
		return fmt.Errorf("%d lexical errors", errors)
	}
	return nil
}
