package cmd

import (
	"fmt"
	"os"

	"github.com/loxlang/golox/internal/errors"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <script>",
	Short: "Run the lexer, parser, and resolver, reporting scope diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(args)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	_, _, diags := resolveAll(source)
	if len(diags) > 0 {
		printDiagnostics(diags)
		exitWithCode(errors.ExitStatic)
		return nil
	}
	fmt.Fprintln(os.Stdout, "resolved with no diagnostics")
	return nil
}
