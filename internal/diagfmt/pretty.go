// Package diagfmt renders diagnostics for people (Pretty) and tools (JSON).
package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"keyzone/internal/diag"
	"keyzone/internal/source"
)

// Pretty prints every diagnostic in bag as
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//	   3 | offending source line
//	     |     ^~~~
//
// followed by its notes. Call bag.Sort() first for stable output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		start, end := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)

		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.loc(formatLoc(f, start, opts.PathMode)),
			p.severity(d.Severity),
			p.code(d.Code.ID()),
			d.Message)
		writeSnippet(w, p, f, start, end)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  %s %s: %s\n", p.note("note:"), p.loc(formatLoc(nf, ns, opts.PathMode)), n.Msg)
		}
	}
	if dropped := bag.Dropped(); dropped > 0 {
		fmt.Fprintf(w, "%s\n", p.note(fmt.Sprintf("... %d more diagnostics not shown", dropped)))
	}
}

func formatLoc(f *source.File, lc source.LineCol, mode PathMode) string {
	path := f.Path
	if mode == PathModeBasename {
		path = source.BaseName(path)
	}
	return fmt.Sprintf("%s:%d:%d", path, lc.Line, lc.Col)
}

// writeSnippet prints the primary line with a caret underline. Spans that
// run past the line are underlined to its end.
func writeSnippet(w io.Writer, p palette, f *source.File, start, end source.LineCol) {
	line := f.GetLine(start.Line)
	if line == "" && start.Line > 1 {
		return
	}
	gutter := strconv.Itoa(int(start.Line))
	pad := strings.Repeat(" ", len(gutter))
	line = strings.ReplaceAll(line, "\t", " ")

	col := int(start.Col) - 1
	col = min(max(col, 0), len(line))
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		width = max(len(line)-col, 1)
	}
	prefix := runewidth.StringWidth(line[:col])

	fmt.Fprintf(w, " %s | %s\n", p.gutter(gutter), line)
	fmt.Fprintf(w, " %s | %s%s\n", pad, strings.Repeat(" ", prefix), p.caret("^"+strings.Repeat("~", width-1)))
}

type palette struct {
	on bool
}

func newPalette(on bool) palette {
	return palette{on: on}
}

func (p palette) paint(c *color.Color, s string) string {
	if !p.on {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

func (p palette) loc(s string) string {
	return p.paint(color.New(color.Bold), s)
}

func (p palette) code(s string) string {
	return p.paint(color.New(color.Faint), s)
}

func (p palette) gutter(s string) string {
	return p.paint(color.New(color.FgBlue), s)
}

func (p palette) caret(s string) string {
	return p.paint(color.New(color.FgRed, color.Bold), s)
}

func (p palette) note(s string) string {
	return p.paint(color.New(color.FgCyan), s)
}

func (p palette) severity(s diag.Severity) string {
	text := strings.ToLower(s.String())
	switch s {
	case diag.SevError:
		return p.paint(color.New(color.FgRed, color.Bold), text)
	case diag.SevWarning:
		return p.paint(color.New(color.FgYellow, color.Bold), text)
	}
	return p.paint(color.New(color.FgCyan), text)
}
