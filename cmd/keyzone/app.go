package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"keyzone/internal/config"
	"keyzone/internal/ctxlog"
	"keyzone/internal/diagfmt"
	"keyzone/internal/keymap"
	"keyzone/internal/observ"
	"keyzone/internal/prof"
)

// app is the per-invocation state shared by the subcommands.
type app struct {
	cfg        config.Config
	colorMode  string
	diagFormat string
	timings    bool
	timer      *observ.Timer
	prof       *prof.Session
	opts       keymap.Options
}

type appKey struct{}

func contextWithApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

func appFrom(cmd *cobra.Command) (*app, error) {
	if a, ok := cmd.Context().Value(appKey{}).(*app); ok {
		return a, nil
	}
	return nil, errors.New("command run without setup")
}

// appRunE adapts a subcommand to receive the app. Timings and profiles are
// flushed after it returns, whether or not it failed.
func appRunE(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		err = run(cmd, a, args)
		a.printTimings(cmd.ErrOrStderr())
		if perr := a.prof.Stop(); err == nil {
			err = perr
		}
		return err
	}
}

// setupApp resolves config and global flags once, before any subcommand runs.
func setupApp(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	logLevel, _ := flags.GetString("log-level")
	logFormat, _ := flags.GetString("log-format")
	logger := ctxlog.New(logLevel, logFormat, cmd.ErrOrStderr())
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}

	a := &app{cfg: cfg}
	a.colorMode = cfg.Render.Color
	if flags.Changed("color") {
		a.colorMode, _ = flags.GetString("color")
	}
	switch a.colorMode {
	case config.ColorAuto, config.ColorOn, config.ColorOff:
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", a.colorMode)
	}
	a.diagFormat, _ = flags.GetString("diag-format")
	switch a.diagFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported diagnostics format %q (must be pretty or json)", a.diagFormat)
	}

	a.timings, _ = flags.GetBool("timings")
	if a.timings {
		a.timer = observ.NewTimer()
	}
	a.opts.Keyboard = cfg.Keyboard.Name
	if flags.Changed("keyboard") {
		a.opts.Keyboard, _ = flags.GetString("keyboard")
	}
	a.opts.Jobs, _ = flags.GetInt("jobs")
	a.opts.MaxDiagnostics, _ = flags.GetInt("max-diagnostics")
	a.opts.Timer = a.timer

	cpuProfile, _ := flags.GetString("cpu-profile")
	memProfile, _ := flags.GetString("mem-profile")
	if a.prof, err = prof.Start(cpuProfile, memProfile); err != nil {
		return err
	}

	cmd.SetContext(contextWithApp(ctx, a))
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// useColor applies the color mode to one output stream.
func (a *app) useColor(w io.Writer) bool {
	return a.colorMode == config.ColorOn || (a.colorMode == config.ColorAuto && isTerminal(w))
}

// keymapPath picks the positional argument, else [keymap].path.
func (a *app) keymapPath(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if p := a.cfg.KeymapPath(); p != "" {
		return p, nil
	}
	return "", errors.New("no keymap file given and no [keymap].path in " + config.FileName)
}

// load builds the keymap and prints its diagnostics, even when the build
// failed.
func (a *app) load(cmd *cobra.Command, path string) (*keymap.Keymap, error) {
	km, err := keymap.Load(cmd.Context(), path, a.opts)
	if km != nil && km.Bag.Len() > 0 {
		if perr := a.printDiagnostics(cmd.ErrOrStderr(), km); perr != nil {
			return nil, perr
		}
	}
	return km, err
}

func (a *app) printDiagnostics(w io.Writer, km *keymap.Keymap) error {
	km.Bag.Sort()
	if a.diagFormat == "json" {
		return diagfmt.JSON(w, km.Bag, km.FileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	}
	diagfmt.Pretty(w, km.Bag, km.FileSet, diagfmt.PrettyOpts{Color: a.useColor(w), ShowNotes: true})
	return nil
}

func (a *app) printTimings(w io.Writer) {
	if a.timings {
		fmt.Fprint(w, a.timer.Summary())
	}
}

// outputFile opens path for writing; "" and "-" mean fallback.
func outputFile(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func normalizeFormat(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
