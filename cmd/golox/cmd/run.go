package cmd

import (
	"fmt"
	"os"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/builtins"
	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/repl"
	"github.com/spf13/cobra"
)

var (
	dumpAST    bool
	dumpTokens bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a Lang script, or start the REPL with no argument",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before running")
	runCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream before running")
}

func runScript(args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}
	if filename == "" {
		repl.New(os.Stdin, os.Stdout, useColor()).Start()
		return nil
	}

	if dumpTokens {
		tokens, _ := lexAll(source)
		for _, t := range tokens {
			fmt.Println(t.String())
		}
	}

	program, locals, diags := resolveAll(source)
	if dumpAST && program != nil {
		fmt.Print(ast.Print(program))
	}
	if len(diags) > 0 {
		printDiagnostics(diags)
		exitWithCode(errors.ExitStatic)
		return nil
	}

	i := interp.New(os.Stdout, locals)
	builtins.Install(i.Globals)

	if err := i.Interpret(program); err != nil {
		if rerr, ok := err.(*errors.RuntimeError); ok {
			fmt.Fprintln(os.Stderr, rerr.Format(useColor()))
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		exitWithCode(errors.ExitRuntime)
	}
	return nil
}
