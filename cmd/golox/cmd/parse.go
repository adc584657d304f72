package cmd

import (
	"fmt"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/errors"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <script>",
	Short: "Parse a Lang script and print its AST as an s-expression dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	program, diags := parseAll(source)
	if program != nil {
		fmt.Print(ast.Print(program))
	}
	if len(diags) > 0 {
		printDiagnostics(diags)
		exitWithCode(errors.ExitStatic)
	}
	return nil
}
