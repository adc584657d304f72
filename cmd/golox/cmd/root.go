package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "Lang interpreter",
	Long: `golox is a tree-walking interpreter for Lang, a small dynamically-typed,
class-based scripting language.

Run with no arguments to start the REPL, or pass a script path to run it.
Subcommands expose the individual pipeline stages for debugging.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	rootCmd.SetVersionTemplate(fmt.Sprintf("golox version {{.Version}} (%s)\n", GitCommit))
}

func useColor() bool {
	return !noColor && !color.NoColor
}

// osExit is exitWithCode's indirection point so tests can observe the
// requested exit code instead of killing the test process.
var osExit = os.Exit

func exitWithCode(code int) {
	osExit(code)
}
