package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/riva/parser"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a .riva file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			tokens, err := parser.Scan(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			for _, tok := range tokens {
				fmt.Printf("%4d:%-4d %-14s %s\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Lexeme)
			}
			return nil
		},
	}
}
