package dts_test

import (
	"testing"

	"keyzone/internal/diag"
	"keyzone/internal/dts"
	"keyzone/internal/source"
	"keyzone/internal/testkit"
)

func parseString(t *testing.T, input string) (*dts.Document, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.keymap", []byte(input)))
	bag := diag.NewBag(64)
	doc := dts.Parse(file, dts.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err := testkit.CheckSpanInvariants(doc); err != nil {
		t.Errorf("span invariants: %v", err)
	}
	return doc, bag
}

func mustParse(t *testing.T, input string) *dts.Document {
	t.Helper()
	doc, bag := parseString(t, input)
	if bag.Len() != 0 {
		for _, d := range bag.Items() {
			t.Errorf("unexpected diagnostic %s: %s", d.Code.ID(), d.Message)
		}
		t.FailNow()
	}
	return doc
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

const basicKeymap = `/dts-v1/;
#include <behaviors.dtsi>
#include <dt-bindings/zmk/keys.h>

/ {
    behaviors {
        hml: home_row_mods_left {
            compatible = "zmk,behavior-hold-tap";
            #binding-cells = <2>;
            tapping-term-ms = <200>;
            hold-trigger-on-release;
            bindings = <&kp>, <&kp>;
        };
    };

    keymap {
        compatible = "zmk,keymap";

        layer_base {
            bindings = <
                &kp A  &kp B   // first row
                /* thumb */ &mo 1
            >;
        };
    };
};
`

func TestParseStructure(t *testing.T) {
	doc := mustParse(t, basicKeymap)

	if len(doc.Nodes) != 1 || doc.Nodes[0].Name != "/" {
		t.Fatalf("expected single root node, got %d", len(doc.Nodes))
	}
	root := doc.Nodes[0]
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}

	behaviors := root.Children[0]
	hml := behaviors.Children[0]
	if hml.Label != "hml" || hml.Name != "home_row_mods_left" {
		t.Errorf("label/name = %q/%q", hml.Label, hml.Name)
	}
	if got := hml.Prop("#binding-cells").CellsText(); got != "2" {
		t.Errorf("#binding-cells = %q", got)
	}
	if p := hml.Prop("hold-trigger-on-release"); p == nil || len(p.Values) != 0 {
		t.Errorf("boolean property = %+v", p)
	}
	if got := hml.Prop("bindings").CellsText(); got != "&kp &kp" {
		t.Errorf("multi-value cells = %q", got)
	}

	keymap := root.Children[1]
	if s, ok := keymap.Prop("compatible").StringValue(); !ok || s != "zmk,keymap" {
		t.Errorf("compatible = %q, %v", s, ok)
	}
	layer := keymap.Children[0]
	if got := layer.Prop("bindings").CellsText(); got != "&kp A &kp B &mo 1" {
		t.Errorf("bindings text = %q", got)
	}
	if text := doc.File.Text(layer.Span); text[:len("layer_base")] != "layer_base" {
		t.Errorf("layer span starts with %q", text)
	}
}

func TestParseTokensRetained(t *testing.T) {
	doc := mustParse(t, `/ { };`)
	if len(doc.Tokens) != 5 {
		t.Fatalf("tokens = %d, want 5 (incl. EOF)", len(doc.Tokens))
	}
}

func TestParseUnitAddressAndOverride(t *testing.T) {
	doc := mustParse(t, `
&kp { flavor = "balanced"; };
kb: keyboard@0 { status = "okay"; };
`)
	if len(doc.Nodes) != 2 {
		t.Fatalf("nodes = %d", len(doc.Nodes))
	}
	if doc.Nodes[0].Name != "&kp" {
		t.Errorf("override name = %q", doc.Nodes[0].Name)
	}
	kb := doc.Nodes[1]
	if kb.Label != "kb" || kb.Name != "keyboard" || kb.Unit != "0" {
		t.Errorf("got %+v", kb)
	}
}

func TestParseCellExpressions(t *testing.T) {
	doc := mustParse(t, `n { bindings = <&kp LS(N1) &kp LC(LA(DEL))>; mask = <(1 << 3)>; data = [00 ff]; ref = &kp; };`)
	n := doc.Nodes[0]
	if got := n.Prop("bindings").CellsText(); got != "&kp LS(N1) &kp LC(LA(DEL))" {
		t.Errorf("bindings = %q", got)
	}
	if got := n.Prop("mask").CellsText(); got != "(1 << 3)" {
		t.Errorf("mask = %q", got)
	}
	if v := n.Prop("data").Values[0]; v.Kind != dts.ValueBytes || v.Text != "00 ff" {
		t.Errorf("data = %+v", v)
	}
	if v := n.Prop("ref").Values[0]; v.Kind != dts.ValueRef || v.Text != "kp" {
		t.Errorf("ref = %+v", v)
	}
}

func TestParseSkipsMacroCalls(t *testing.T) {
	doc := mustParse(t, `
ZMK_BEHAVIOR(lt_thumb, hold_tap, flavor = "balanced";)
/ {
    keymap {
        ZMK_LAYER(base, &kp A)
        layer_x { bindings = <&kp X>; };
    };
};
`)
	if len(doc.Nodes) != 1 {
		t.Fatalf("nodes = %d", len(doc.Nodes))
	}
	keymap := doc.Nodes[0].Children[0]
	if len(keymap.Children) != 1 || keymap.Children[0].Name != "layer_x" {
		t.Errorf("children = %+v", keymap.Children)
	}
}

func TestParseRecovery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
		check func(t *testing.T, doc *dts.Document)
	}{
		{
			name:  "missing semicolon after property",
			input: "/ { a { x = <1> y = <2>; }; };",
			code:  diag.SynExpectSemicolon,
			check: func(t *testing.T, doc *dts.Document) {
				a := doc.Nodes[0].Children[0]
				if a.Prop("x") == nil || a.Prop("y") == nil {
					t.Errorf("properties lost: %+v", a.Props)
				}
			},
		},
		{
			name:  "stray token in body",
			input: "/ { = ; layer_a { bindings = <&kp A>; }; };",
			code:  diag.SynUnexpectedToken,
			check: func(t *testing.T, doc *dts.Document) {
				if len(doc.Nodes[0].Children) != 1 {
					t.Errorf("sibling after error lost")
				}
			},
		},
		{
			name:  "unclosed brace",
			input: "/ { layer_a { bindings = <&kp A>; };",
			code:  diag.SynUnclosedBrace,
			check: func(t *testing.T, doc *dts.Document) {
				if len(doc.Nodes) != 1 || len(doc.Nodes[0].Children) != 1 {
					t.Errorf("partial tree lost")
				}
			},
		},
		{
			name:  "unclosed angle bracket",
			input: "/ { layer_a { bindings = <&kp A &kp B; }; };",
			code:  diag.SynUnclosedAngleBracket,
			check: func(t *testing.T, doc *dts.Document) {
				got := doc.Nodes[0].Children[0].Prop("bindings").CellsText()
				if got != "&kp A &kp B" {
					t.Errorf("partial cells = %q", got)
				}
			},
		},
		{
			name:  "garbage at top level",
			input: "} layer_a { bindings = <&kp A>; };",
			code:  diag.SynUnexpectedToken,
			check: func(t *testing.T, doc *dts.Document) {
				if len(doc.Nodes) != 1 {
					t.Errorf("nodes = %d", len(doc.Nodes))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, bag := parseString(t, tt.input)
			if !hasCode(bag, tt.code) {
				t.Fatalf("expected %s, got %+v", tt.code.ID(), bag.Items())
			}
			tt.check(t, doc)
		})
	}
}

func TestWalkOrder(t *testing.T) {
	doc := mustParse(t, `/ { a { b { }; }; c { }; };`)
	var names []string
	doc.Walk(func(n *dts.Node) bool {
		names = append(names, n.Name)
		return n.Name != "a"
	})
	want := []string{"/", "a", "c"}
	if len(names) != len(want) {
		t.Fatalf("visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("visited %v, want %v", names, want)
		}
	}
}
