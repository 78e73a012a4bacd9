package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// invalidArgument marks failures caused by the configuration input or the
// settings, as opposed to I/O failures while rendering.
type invalidArgument struct{ err error }

func (e *invalidArgument) Error() string { return e.err.Error() }
func (e *invalidArgument) Unwrap() error { return e.err }

func reportError(w io.Writer, err error) {
	var ia *invalidArgument
	if errors.As(err, &ia) {
		fmt.Fprintf(w, "Invalid argument: %v\n", ia.err)
		return
	}
	fmt.Fprintf(w, "lca: %v\n", err)
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lca",
		Short: "Linear cellular automaton simulator",
		Long: `lca evolves a finite one-dimensional binary cellular automaton.

The configuration is read as whitespace-separated tokens:

  TYPE CELL_COUNT GEN_COUNT init_start INDEX... init_end [RULE x8]

TYPE is A, B or U. Rules are only given for type U. Each generation is
printed as one line, a space for a dead cell and '*' for a live one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().String("config", "", "Settings YAML file (default ~/.lca/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON where supported")

	run := newRunCmd()
	// The bare command behaves like "lca run".
	rootCmd.Flags().AddFlagSet(run.Flags())
	rootCmd.RunE = run.RunE

	rootCmd.AddCommand(
		run,
		newRulesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
