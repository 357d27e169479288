// Package keymapfmt renders a keymap.Keymap: a terminal grid, an exported
// document (JSON, msgpack or a debug dump) and a standalone HTML page. It
// only reads the model.
package keymapfmt

import (
	"encoding/json"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/vmihailenco/msgpack/v5"

	"keyzone/internal/binding"
	"keyzone/internal/keymap"
	"keyzone/internal/layout"
)

// LayoutType is the only layout kind keyzone models.
const LayoutType = "split"

type Key struct {
	Raw   string  `json:"raw" msgpack:"raw"`
	Type  string  `json:"type" msgpack:"type"`
	Label string  `json:"label" msgpack:"label"`
	Hold  *string `json:"hold" msgpack:"hold"`
	Tap   *string `json:"tap" msgpack:"tap"`
	Class string  `json:"class" msgpack:"class"`
}

type Metadata struct {
	LeftKeys       int `json:"left_keys" msgpack:"left_keys"`
	RightKeys      int `json:"right_keys" msgpack:"right_keys"`
	LeftThumbKeys  int `json:"left_thumb_keys" msgpack:"left_thumb_keys"`
	RightThumbKeys int `json:"right_thumb_keys" msgpack:"right_thumb_keys"`
}

type Layer struct {
	Index      int     `json:"index" msgpack:"index"`
	Name       string  `json:"name" msgpack:"name"`
	Left       [][]Key `json:"left" msgpack:"left"`
	Right      [][]Key `json:"right" msgpack:"right"`
	LeftThumb  [][]Key `json:"left_thumb" msgpack:"left_thumb"`
	RightThumb [][]Key `json:"right_thumb" msgpack:"right_thumb"`
}

type Combo struct {
	Name      string `json:"name" msgpack:"name"`
	Positions []int  `json:"key_positions" msgpack:"key_positions"`
	Binding   string `json:"binding" msgpack:"binding"`
	Key       Key    `json:"key" msgpack:"key"`
	Layers    []int  `json:"layers,omitempty" msgpack:"layers,omitempty"`
	TimeoutMs int    `json:"timeout_ms,omitempty" msgpack:"timeout_ms,omitempty"`
}

// Document is the exported form of a keymap.
type Document struct {
	Keyboard   string   `json:"keyboard" msgpack:"keyboard"`
	TotalKeys  int      `json:"total_keys" msgpack:"total_keys"`
	LayoutType string   `json:"layout_type" msgpack:"layout_type"`
	Metadata   Metadata `json:"metadata" msgpack:"metadata"`
	Layers     []Layer  `json:"layers" msgpack:"layers"`
	Combos     []Combo  `json:"combos" msgpack:"combos"`
}

// NewDocument builds the exported form of km.
func NewDocument(km *keymap.Keymap) *Document {
	t := km.Table
	doc := &Document{
		Keyboard:   km.Keyboard,
		TotalKeys:  t.TotalKeys,
		LayoutType: LayoutType,
		Metadata: Metadata{
			LeftKeys:       t.ZoneSize(layout.LeftMain),
			RightKeys:      t.ZoneSize(layout.RightMain),
			LeftThumbKeys:  t.ZoneSize(layout.LeftThumb),
			RightThumbKeys: t.ZoneSize(layout.RightThumb),
		},
		Layers: make([]Layer, 0, len(km.Layers)),
		Combos: make([]Combo, 0, len(km.Combos)),
	}
	for i := range km.Layers {
		l := &km.Layers[i]
		doc.Layers = append(doc.Layers, Layer{
			Index:      l.Index,
			Name:       l.Name,
			Left:       keyRows(l.Zones[layout.LeftMain]),
			Right:      keyRows(l.Zones[layout.RightMain]),
			LeftThumb:  keyRows(l.Zones[layout.LeftThumb]),
			RightThumb: keyRows(l.Zones[layout.RightThumb]),
		})
	}
	for _, c := range km.Combos {
		doc.Combos = append(doc.Combos, Combo{
			Name:      c.Name,
			Positions: c.Positions,
			Binding:   c.Binding,
			Key:       keyOf(c.Key),
			Layers:    c.Layers,
			TimeoutMs: c.TimeoutMs,
		})
	}
	return doc
}

func keyRows(rows [][]binding.Descriptor) [][]Key {
	out := make([][]Key, len(rows))
	for i, row := range rows {
		keys := make([]Key, len(row))
		for j, d := range row {
			keys[j] = keyOf(d)
		}
		out[i] = keys
	}
	return out
}

func keyOf(d binding.Descriptor) Key {
	return Key{
		Raw:   d.Raw,
		Type:  d.Kind.String(),
		Label: d.Label,
		Hold:  d.Hold,
		Tap:   d.Tap,
		Class: d.Class,
	}
}

// WriteJSON encodes doc as JSON, indented unless compact is set.
func WriteJSON(w io.Writer, doc *Document, compact bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}

// WriteMsgpack encodes doc as msgpack using the JSON field names.
func WriteMsgpack(w io.Writer, doc *Document) error {
	return msgpack.NewEncoder(w).Encode(doc)
}

// ReadMsgpack decodes a document written by WriteMsgpack.
func ReadMsgpack(r io.Reader) (*Document, error) {
	var doc Document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// WriteDump writes a go-spew dump of doc for debugging.
func WriteDump(w io.Writer, doc *Document) error {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	cfg.Fdump(w, doc)
	return nil
}
