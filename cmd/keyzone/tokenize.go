package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"keyzone/internal/keymap"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [file.keymap]",
		Short: "List every layer's binding tokens with their kind and label",
		Args:  cobra.MaximumNArgs(1),
		RunE:  appRunE(runTokenize),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Int("layer", -1, "only this layer index (default all)")
	return cmd
}

type tokenRecord struct {
	Position int    `json:"position"`
	Raw      string `json:"raw"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	Class    string `json:"class"`
}

type layerTokens struct {
	Index  int           `json:"index"`
	Name   string        `json:"name"`
	Node   string        `json:"node"`
	Tokens []tokenRecord `json:"tokens"`
}

func runTokenize(cmd *cobra.Command, a *app, args []string) error {
	path, err := a.keymapPath(firstArg(args))
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	format = normalizeFormat(format)
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	only, _ := cmd.Flags().GetInt("layer")

	km, err := a.load(cmd, path)
	if err != nil {
		return err
	}

	var layers []layerTokens
	if cmd.Flags().Changed("layer") {
		l, err := km.Layer(only)
		if err != nil {
			return err
		}
		layers = append(layers, collectTokens(l))
	} else {
		for i := range km.Layers {
			layers = append(layers, collectTokens(&km.Layers[i]))
		}
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(layers); err != nil {
			return err
		}
	} else {
		formatTokensPretty(out, layers, a.useColor(out))
	}
	return nil
}

func collectTokens(l *keymap.Layer) layerTokens {
	lt := layerTokens{Index: l.Index, Name: l.Name, Node: l.Node, Tokens: make([]tokenRecord, 0, len(l.Keys))}
	for i, d := range l.Keys {
		lt.Tokens = append(lt.Tokens, tokenRecord{
			Position: i,
			Raw:      d.Raw,
			Type:     d.Kind.String(),
			Label:    d.Label,
			Class:    d.Class,
		})
	}
	return lt
}

func formatTokensPretty(w io.Writer, layers []layerTokens, useColor bool) {
	head := color.New(color.Bold)
	kind := color.New(color.FgCyan)
	if useColor {
		head.EnableColor()
		kind.EnableColor()
	} else {
		head.DisableColor()
		kind.DisableColor()
	}
	for i, l := range layers {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d tokens)\n", head.Sprintf("layer %d %s", l.Index, l.Name), len(l.Tokens))
		for _, t := range l.Tokens {
			fmt.Fprintf(w, "  %3d  %s  %-20s %s\n", t.Position, kind.Sprintf("%-16s", t.Type), t.Label, t.Raw)
		}
	}
}
