package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"keyzone/internal/diag"
	"keyzone/internal/dts"
	"keyzone/internal/extract"
	"keyzone/internal/keymap"
	"keyzone/internal/layout"
	"keyzone/internal/source"
	"keyzone/internal/testkit"
)

// readTimeout bounds a single parse. Exceeding it points at a recovery loop.
const readTimeout = 5 * time.Second

// FuzzDocumentNoHang feeds the devicetree reader arbitrary input and fails
// when it does not return in time.
func FuzzDocumentNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("/ { a { b = <1 2 3; }; };"))   // unclosed angle bracket
	f.Add([]byte("/ { a { b = <1> } c { }; };")) // missing semicolons
	f.Add([]byte("} } } ; ; ; {"))               // stray closers at top level
	f.Add([]byte("FOO(BAR((1, 2)) / { };"))      // macro call
	f.Add([]byte("/ { a = [00 11"))              // unclosed byte string

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan *dts.Document, 1)
		go func() {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.keymap", input))
			done <- dts.Parse(file, dts.Options{Reporter: diag.BagReporter{Bag: diag.NewBag(128)}})
		}()

		select {
		case doc := <-done:
			if err := testkit.CheckSpanInvariants(doc); err != nil {
				t.Fatal(err)
			}
		case <-time.After(readTimeout):
			t.Fatalf("parser hung on input of %d bytes", len(input))
		}
	})
}

// FuzzPipeline runs the whole build and checks the model's shape: every
// layer maps onto exactly the zone shape of the layout table.
func FuzzPipeline(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.keymap", input))
		km, err := keymap.Build(context.Background(), file, keymap.Options{Jobs: 2, MaxDiagnostics: 32})
		if err != nil {
			if !errors.Is(err, extract.ErrNoLayers) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		for i, l := range km.Layers {
			if l.Index != i {
				t.Fatalf("layer %d has index %d", i, l.Index)
			}
			for _, z := range layout.Zones {
				rows := l.Zones.Zone(z)
				want := km.Table.Zones[z]
				if len(rows) != len(want) {
					t.Fatalf("layer %d zone %s: %d rows, want %d", i, z, len(rows), len(want))
				}
				for r := range rows {
					if len(rows[r]) != len(want[r]) {
						t.Fatalf("layer %d zone %s row %d: %d keys, want %d", i, z, r, len(rows[r]), len(want[r]))
					}
				}
			}
		}
	})
}
