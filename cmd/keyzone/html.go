package main

import (
	"github.com/spf13/cobra"

	"keyzone/internal/keymapfmt"
)

func newHTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html [file.keymap]",
		Short: "Generate a standalone HTML page with a layer selector",
		Args:  cobra.MaximumNArgs(1),
		RunE:  appRunE(runHTML),
	}
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cmd.Flags().String("title", keymapfmt.DefaultHTMLTitle, "page title")
	return cmd
}

func runHTML(cmd *cobra.Command, a *app, args []string) error {
	path, err := a.keymapPath(firstArg(args))
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	title, _ := cmd.Flags().GetString("title")

	km, err := a.load(cmd, path)
	if err != nil {
		return err
	}
	w, closeOut, err := outputFile(output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	err = keymapfmt.HTML(w, km, keymapfmt.HTMLOpts{Title: title})
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}
