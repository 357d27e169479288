package extract

import (
	"strconv"
	"strings"

	"keyzone/internal/dts"
	"keyzone/internal/source"
)

// Combo is a chord: pressing every key in Positions together triggers
// Binding. Layers is nil when the combo is active everywhere; TimeoutMs is 0
// when unset.
type Combo struct {
	Name      string
	Positions []int
	Binding   string
	Layers    []int
	TimeoutMs int
	Span      source.Span
}

const (
	propLayers  = "layers"
	propTimeout = "timeout-ms"
)

// Combos returns every node that has both key-positions and bindings, in
// source order. Non-numeric cells in the integer lists are skipped.
func Combos(doc *dts.Document) []Combo {
	var combos []Combo
	doc.Walk(func(n *dts.Node) bool {
		if !n.Has(propKeyPositions) || !n.Has(propBindings) {
			return true
		}
		c := Combo{
			Name:      n.Name,
			Positions: cellInts(n.Prop(propKeyPositions)),
			Binding:   n.Prop(propBindings).CellsText(),
			Span:      n.Span,
		}
		if p := n.Prop(propLayers); p != nil {
			c.Layers = cellInts(p)
		}
		if ts := cellInts(n.Prop(propTimeout)); len(ts) > 0 {
			c.TimeoutMs = ts[0]
		}
		combos = append(combos, c)
		return false
	})
	return combos
}

func cellInts(p *dts.Property) []int {
	fields := strings.Fields(p.CellsText())
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 0, 64)
		if err != nil {
			continue
		}
		out = append(out, int(n))
	}
	return out
}
