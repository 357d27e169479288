package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"keyzone/internal/keymap"
	"keyzone/internal/keymapfmt"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [file.keymap] [layer]",
		Short: "Draw a layer as a terminal grid",
		Long: `Show draws one layer, by index or name, split into its keyboard zones.
The file may be omitted when keyzone.toml names one; the layer defaults to
[render].default_layer.`,
		Args: cobra.MaximumNArgs(2),
		RunE: appRunE(runShow),
	}
	cmd.Flags().Bool("all", false, "draw every layer")
	cmd.Flags().Int("width", 0, "label width in cells (default from config)")
	cmd.Flags().Bool("combos", true, "list combos under the grid")
	return cmd
}

func runShow(cmd *cobra.Command, a *app, args []string) error {
	fileArg, layerArg := splitShowArgs(a, args)
	path, err := a.keymapPath(fileArg)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	withCombos, _ := cmd.Flags().GetBool("combos")
	width := a.cfg.Render.LabelWidth
	if cmd.Flags().Changed("width") {
		width, _ = cmd.Flags().GetInt("width")
		if width < 1 {
			return fmt.Errorf("--width must be positive, got %d", width)
		}
	}

	km, err := a.load(cmd, path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	opts := keymapfmt.TerminalOpts{Color: a.useColor(out), LabelWidth: width}

	var layers []*keymap.Layer
	if all {
		for i := range km.Layers {
			layers = append(layers, &km.Layers[i])
		}
	} else {
		l, err := selectLayer(km, layerArg, a.cfg.Render.DefaultLayer)
		if err != nil {
			return err
		}
		layers = append(layers, l)
	}

	for i, l := range layers {
		opts.Combos = withCombos && i == len(layers)-1
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := keymapfmt.Terminal(out, km, l, opts); err != nil {
			return err
		}
	}
	return nil
}

// splitShowArgs sorts out "show X": X is a layer when a keymap path comes
// from the config and X is not an existing file.
func splitShowArgs(a *app, args []string) (file, layer string) {
	switch len(args) {
	case 2:
		return args[0], args[1]
	case 1:
		if a.cfg.KeymapPath() != "" {
			if _, err := os.Stat(args[0]); err != nil {
				return "", args[0]
			}
		}
		return args[0], ""
	}
	return "", ""
}

// selectLayer resolves a layer by index or name. An empty arg selects def.
func selectLayer(km *keymap.Keymap, arg string, def int) (*keymap.Layer, error) {
	if arg == "" {
		return km.Layer(def)
	}
	if idx, err := strconv.Atoi(arg); err == nil {
		return km.Layer(idx)
	}
	if l, ok := km.LayerByName(arg); ok {
		return l, nil
	}
	return nil, fmt.Errorf("no layer named %q", arg)
}
