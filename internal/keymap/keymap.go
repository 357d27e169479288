// Package keymap drives the pipeline from a .keymap source to a zoned,
// classified model that renderers consume.
package keymap

import (
	"keyzone/internal/binding"
	"keyzone/internal/diag"
	"keyzone/internal/extract"
	"keyzone/internal/layout"
	"keyzone/internal/source"
)

// DefaultKeyboard is used when Options.Keyboard is empty.
const DefaultKeyboard = "glove80"

// DefaultMaxDiagnostics caps the diagnostics bag when Options leaves it zero.
const DefaultMaxDiagnostics = 100

// Layer is one classified layer. Keys is indexed by physical position;
// Zones is the same data laid out on the keyboard table.
type Layer struct {
	Index  int
	Name   string
	Node   string
	Tokens []string
	Keys   []binding.Descriptor
	Zones  layout.Model
}

// Unclassified counts keys the classifier did not recognise.
func (l *Layer) Unclassified() int {
	n := 0
	for _, k := range l.Keys {
		if k.Kind == binding.KindUnclassified {
			n++
		}
	}
	return n
}

// Combo is an extracted combo with its classified binding.
type Combo struct {
	extract.Combo
	Key binding.Descriptor
}

// Keymap is the read-only result of Build.
type Keymap struct {
	File *source.File
	// FileSet resolves the Bag's spans; set by Load, nil after Build.
	FileSet  *source.FileSet
	Keyboard string
	Table    *layout.Table
	Layers   []Layer
	Combos   []Combo
	Strategy extract.Strategy
	Bag      *diag.Bag
}

// Layer returns layer idx or a *extract.LayerNotFoundError.
func (k *Keymap) Layer(idx int) (*Layer, error) {
	if _, err := extract.SelectLayer(k.Layers, idx); err != nil {
		return nil, err
	}
	return &k.Layers[idx], nil
}

// LayerByName finds a layer by its name or node name.
func (k *Keymap) LayerByName(name string) (*Layer, bool) {
	for i := range k.Layers {
		if k.Layers[i].Name == name || k.Layers[i].Node == name {
			return &k.Layers[i], true
		}
	}
	return nil, false
}
