package extract

import (
	"strconv"
	"strings"

	"keyzone/internal/dts"
	"keyzone/internal/source"
	"keyzone/internal/token"
)

// Strategy names the extraction pattern that produced the layers.
type Strategy uint8

const (
	StrategyNone Strategy = iota
	// StrategyKeymap takes the children of `compatible = "zmk,keymap"` nodes.
	StrategyKeymap
	// StrategyNamed takes nodes named layer_* or *_layer.
	StrategyNamed
	// StrategyBindings takes any node with bindings that is not a combo or
	// a behavior definition.
	StrategyBindings
	// StrategyTokens scans raw tokens for `bindings = <...>`.
	StrategyTokens
)

func (s Strategy) String() string {
	switch s {
	case StrategyKeymap:
		return "keymap"
	case StrategyNamed:
		return "named"
	case StrategyBindings:
		return "bindings"
	case StrategyTokens:
		return "tokens"
	}
	return "none"
}

// Layer is one extracted layer block. Index is its position in the source;
// Name is Node without a leading "layer_".
type Layer struct {
	Index    int
	Name     string
	Node     string
	Bindings string
	Span     source.Span
}

const (
	propBindings     = "bindings"
	propKeyPositions = "key-positions"
	propBindingCells = "#binding-cells"
	propCompatible   = "compatible"

	keymapCompatible = "zmk,keymap"
)

// Layers extracts layers from doc in source order.
func Layers(doc *dts.Document) ([]Layer, Strategy, error) {
	strategies := []struct {
		s   Strategy
		run func(*dts.Document) []Layer
	}{
		{StrategyKeymap, fromKeymapNodes},
		{StrategyNamed, fromNamedNodes},
		{StrategyBindings, fromBindingNodes},
		{StrategyTokens, fromTokens},
	}
	for _, st := range strategies {
		if layers := st.run(doc); len(layers) > 0 {
			for i := range layers {
				layers[i].Index = i
			}
			return layers, st.s, nil
		}
	}
	return nil, StrategyNone, ErrNoLayers
}

func fromKeymapNodes(doc *dts.Document) []Layer {
	var layers []Layer
	doc.Walk(func(n *dts.Node) bool {
		if !isKeymapNode(n) {
			return true
		}
		for _, child := range n.Children {
			if child.Has(propBindings) {
				layers = append(layers, layerFromNode(child))
			}
		}
		return false
	})
	return layers
}

func fromNamedNodes(doc *dts.Document) []Layer {
	var layers []Layer
	doc.Walk(func(n *dts.Node) bool {
		named := strings.HasPrefix(n.Name, "layer_") || strings.HasSuffix(n.Name, "_layer")
		if named && n.Has(propBindings) {
			layers = append(layers, layerFromNode(n))
			return false
		}
		return true
	})
	return layers
}

func fromBindingNodes(doc *dts.Document) []Layer {
	var layers []Layer
	doc.Walk(func(n *dts.Node) bool {
		if n.Has(propBindings) && !n.Has(propKeyPositions) && !n.Has(propBindingCells) {
			layers = append(layers, layerFromNode(n))
			return false
		}
		return true
	})
	return layers
}

// fromTokens finds `bindings = <...>` in the raw stream. The layer is named
// after the closest preceding `name {`.
func fromTokens(doc *dts.Document) []Layer {
	toks := make([]token.Token, 0, len(doc.Tokens))
	for _, t := range doc.Tokens {
		if t.Kind != token.Invalid {
			toks = append(toks, t)
		}
	}

	var layers []Layer
	for i := 0; i+2 < len(toks); i++ {
		if toks[i].Kind != token.Ident || toks[i].Text != propBindings ||
			toks[i+1].Kind != token.Assign || toks[i+2].Kind != token.LAngle {
			continue
		}
		end := i + 3
		depth := 0
		for end < len(toks) {
			k := toks[end].Kind
			if k == token.LParen {
				depth++
			} else if k == token.RParen && depth > 0 {
				depth--
			} else if depth == 0 && k == token.RAngle {
				break
			} else if k.IsTerminator() {
				break
			}
			end++
		}

		node := precedingNodeName(toks, i)
		if node == "" {
			node = "layer_" + strconv.Itoa(len(layers))
		}
		last := toks[min(end, len(toks)-1)]
		layers = append(layers, Layer{
			Name:     layerName(node),
			Node:     node,
			Bindings: dts.JoinTokens(toks[i+3 : end]),
			Span:     toks[i].Span.Cover(last.Span),
		})
		i = end
	}
	return layers
}

func precedingNodeName(toks []token.Token, i int) string {
	for j := i - 1; j > 0; j-- {
		if toks[j].Kind == token.LBrace && toks[j-1].Kind == token.Ident {
			return toks[j-1].Text
		}
	}
	return ""
}

func isKeymapNode(n *dts.Node) bool {
	p := n.Prop(propCompatible)
	if p == nil {
		return false
	}
	for _, v := range p.Values {
		if v.Kind == dts.ValueString && v.Text == keymapCompatible {
			return true
		}
	}
	return false
}

func layerFromNode(n *dts.Node) Layer {
	return Layer{
		Name:     layerName(n.Name),
		Node:     n.Name,
		Bindings: n.Prop(propBindings).CellsText(),
		Span:     n.Span,
	}
}

func layerName(node string) string {
	if name := strings.TrimPrefix(node, "layer_"); name != "" {
		return name
	}
	return node
}
