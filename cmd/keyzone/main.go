package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"keyzone/internal/version"
)

// newRootCmd builds the command tree. Every call returns fresh flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "keyzone",
		Short: "Render ZMK keymaps for split keyboards",
		Long: `Keyzone reads a ZMK .keymap file, classifies every binding and lays the
layers out on the keyboard's zones for the terminal, JSON, msgpack or HTML.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: setupApp,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")
	flags.String("log-format", "text", "log format (text|json)")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	flags.String("diag-format", "pretty", "diagnostics format (pretty|json)")
	flags.String("config", "", "path to keyzone.toml (default: search upwards from the working directory)")
	flags.String("keyboard", "", "keyboard layout table (default from config, else glove80)")
	flags.Int("jobs", 0, "parallel layer workers (0 = GOMAXPROCS)")
	flags.String("cpu-profile", "", "write a pprof CPU profile to this file")
	flags.String("mem-profile", "", "write a pprof heap profile to this file")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newHTMLCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// main executes the root command and exits with status 1 on any error.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
