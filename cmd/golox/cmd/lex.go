package cmd

import (
	"fmt"
	"os"

	"github.com/loxlang/golox/internal/errors"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <script>",
	Short: "Tokenize a Lang script and print the token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLex(args)
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	tokens, lexErrs := lexAll(source)
	for _, t := range tokens {
		fmt.Println(t.String())
	}
	if len(lexErrs) > 0 {
		for _, le := range lexErrs {
			ce := &errors.CompilerError{Line: le.Line, Message: le.Message}
			fmt.Fprintln(os.Stderr, ce.Format(useColor()))
		}
		exitWithCode(errors.ExitStatic)
	}
	return nil
}
