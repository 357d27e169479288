package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"keyzone/internal/config"
	"keyzone/internal/keymapfmt"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file.keymap]",
		Short: "Write the classified keymap as JSON, msgpack or a debug dump",
		Args:  cobra.MaximumNArgs(1),
		RunE:  appRunE(runExport),
	}
	cmd.Flags().String("format", "", "output format (json|json-min|msgpack|dump, default from config)")
	cmd.Flags().StringP("output", "o", "", "output file (default from config, else stdout)")
	return cmd
}

func runExport(cmd *cobra.Command, a *app, args []string) error {
	path, err := a.keymapPath(firstArg(args))
	if err != nil {
		return err
	}

	format := a.cfg.Export.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	format = normalizeFormat(format)
	if !slices.Contains(config.ExportFormats, format) {
		return fmt.Errorf("unsupported format %q (must be %s)", format, strings.Join(config.ExportFormats, ", "))
	}
	output := a.cfg.Resolve(a.cfg.Export.Output)
	if cmd.Flags().Changed("output") {
		output, _ = cmd.Flags().GetString("output")
	}

	km, err := a.load(cmd, path)
	if err != nil {
		return err
	}
	doc := keymapfmt.NewDocument(km)

	w, closeOut, err := outputFile(output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	switch format {
	case "json":
		err = keymapfmt.WriteJSON(w, doc, false)
	case "json-min":
		err = keymapfmt.WriteJSON(w, doc, true)
	case "msgpack":
		err = keymapfmt.WriteMsgpack(w, doc)
	case "dump":
		err = keymapfmt.WriteDump(w, doc)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
