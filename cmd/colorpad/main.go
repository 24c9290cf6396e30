// Colorpad is an interactive terminal converter between #rrggbb hex
// colors and RGB triplets scaled to 0-1000, with a rendered swatch
// and a persistent color history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathoo/colorpad/cli"
	"github.com/nathoo/colorpad/history"
	"github.com/nathoo/colorpad/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		plain    bool
		histPath string
	)

	cmd := &cobra.Command{
		Use:     "colorpad",
		Short:   "Convert between hex colors and 0-1000 RGB triplets",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Plain mode for pipes and scripts.
			if plain || !isTerminal() {
				c := cli.New(histPath)
				c.Run()
				return nil
			}

			support := tui.DetectColorSupport()
			if !support.SupportsColor() {
				return fmt.Errorf("terminal does not support colors; use --plain")
			}
			return tui.Run(support, histPath)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "line-oriented mode without the full-screen UI")
	cmd.Flags().StringVar(&histPath, "history", history.DefaultFile, "history file path")
	return cmd
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
