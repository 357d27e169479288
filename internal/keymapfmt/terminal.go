package keymapfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"keyzone/internal/binding"
	"keyzone/internal/keymap"
	"keyzone/internal/layout"
)

// DefaultLabelWidth is the cell width used when TerminalOpts leaves it zero.
const DefaultLabelWidth = 7

type TerminalOpts struct {
	// Color paints keys by class and adds a legend under the grid.
	Color      bool
	LabelWidth int
	// Combos lists the keymap's combos under the grid.
	Combos bool
}

// zoneOrder is the left-to-right order of the boxes on screen.
var zoneOrder = []layout.Zone{layout.LeftMain, layout.LeftThumb, layout.RightThumb, layout.RightMain}

var zoneTitles = map[layout.Zone]string{
	layout.LeftMain:   "left",
	layout.LeftThumb:  "left thumb",
	layout.RightThumb: "right thumb",
	layout.RightMain:  "right",
}

// Terminal draws one layer as four bordered zone boxes.
func Terminal(w io.Writer, km *keymap.Keymap, l *keymap.Layer, opts TerminalOpts) error {
	width := opts.LabelWidth
	if width <= 0 {
		width = DefaultLabelWidth
	}

	header := fmt.Sprintf("KEYZONE – %s  (layer %d, %s)", Title(l.Name), l.Index, km.Keyboard)
	headerStyle := lipgloss.NewStyle().Bold(true).MarginBottom(1)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	boxes := make([]string, 0, len(zoneOrder))
	for _, z := range zoneOrder {
		boxes = append(boxes, box.Render(renderZone(z, l.Zones.Zone(z), width, opts.Color)))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(header))
	sb.WriteByte('\n')
	sb.WriteString(grid)
	sb.WriteByte('\n')
	if opts.Color {
		sb.WriteString(renderLegend())
	}
	if opts.Combos && len(km.Combos) > 0 {
		sb.WriteString(renderCombos(km.Combos, opts.Color))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// renderZone lays out rows of fixed-width cells. Short rows are pushed
// towards the middle of the keyboard, matching the physical stagger.
func renderZone(z layout.Zone, rows [][]binding.Descriptor, width int, color bool) string {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	alignRight := z == layout.LeftMain || z == layout.LeftThumb

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, lipgloss.NewStyle().Faint(true).Render(zoneTitles[z]))
	blank := strings.Repeat(" ", width)
	for _, row := range rows {
		cells := make([]string, 0, cols)
		pad := cols - len(row)
		if alignRight {
			for i := 0; i < pad; i++ {
				cells = append(cells, blank)
			}
		}
		for _, d := range row {
			cells = append(cells, paint(color, d.Class, Cell(d.Label, width)))
		}
		if !alignRight {
			for i := 0; i < pad; i++ {
				cells = append(cells, blank)
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// Cell fits label into exactly width display columns: longer labels are
// truncated with "…", shorter ones centred.
func Cell(label string, width int) string {
	label = runewidth.Truncate(label, width, "…")
	gap := width - runewidth.StringWidth(label)
	left := gap / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", gap-left)
}

func renderLegend() string {
	var sb strings.Builder
	sb.WriteString("legend:")
	for _, e := range Legend {
		if _, ok := classColors[e.Class]; !ok {
			continue
		}
		sb.WriteString("  " + paint(true, e.Class, "████") + " " + e.Title)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func renderCombos(combos []keymap.Combo, color bool) string {
	var sb strings.Builder
	sb.WriteString("combos:\n")
	for _, c := range combos {
		pos := make([]string, len(c.Positions))
		for i, p := range c.Positions {
			pos[i] = strconv.Itoa(p)
		}
		fmt.Fprintf(&sb, "  %-20s %-10s → %s", c.Name, strings.Join(pos, "+"), paint(color, c.Key.Class, c.Key.Label))
		var extra []string
		if len(c.Layers) > 0 {
			ls := make([]string, len(c.Layers))
			for i, l := range c.Layers {
				ls[i] = strconv.Itoa(l)
			}
			extra = append(extra, "layers "+strings.Join(ls, ","))
		}
		if c.TimeoutMs > 0 {
			extra = append(extra, strconv.Itoa(c.TimeoutMs)+"ms")
		}
		if len(extra) > 0 {
			sb.WriteString("  (" + strings.Join(extra, ", ") + ")")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var titleCaser = cases.Title(language.English)

// Title converts a layer name such as "lower_nav" into "Lower Nav".
func Title(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}
