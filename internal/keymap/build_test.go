package keymap_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyzone/internal/binding"
	"keyzone/internal/extract"
	"keyzone/internal/keymap"
	"keyzone/internal/layout"
	"keyzone/internal/observ"
	"keyzone/internal/source"
)

func loadFixture(t *testing.T, name string, opts keymap.Options) *keymap.Keymap {
	t.Helper()
	km, err := keymap.Load(context.Background(), filepath.Join("testdata", name), opts)
	require.NoError(t, err)
	return km
}

func TestLoadGlove80(t *testing.T) {
	timer := observ.NewTimer()
	km := loadFixture(t, "glove80.keymap", keymap.Options{Jobs: 2, Timer: timer})

	assert.Equal(t, "glove80", km.Keyboard)
	require.NotNil(t, km.FileSet)
	assert.Same(t, km.File, km.FileSet.Get(km.File.ID))
	assert.Equal(t, extract.StrategyKeymap, km.Strategy)
	assert.False(t, km.Bag.HasErrors(), "diagnostics: %+v", km.Bag.Items())

	require.Len(t, km.Layers, 3)
	for i, want := range []string{"base", "lower", "magic"} {
		assert.Equal(t, i, km.Layers[i].Index)
		assert.Equal(t, want, km.Layers[i].Name)
		assert.Len(t, km.Layers[i].Keys, 80, "layer %s", want)
		assert.Len(t, km.Layers[i].Tokens, 80, "layer %s", want)
	}

	var phases []string
	for _, p := range timer.Report().Phases {
		phases = append(phases, p.Name)
	}
	assert.Equal(t, []string{"load", "parse", "extract", "classify"}, phases)
}

func TestGlove80BaseLayerPlacement(t *testing.T) {
	km := loadFixture(t, "glove80.keymap", keymap.Options{})
	base, err := km.Layer(0)
	require.NoError(t, err)

	assert.Equal(t, "F1", base.Zones[layout.LeftMain][0][0].Label)
	assert.Equal(t, "F10", base.Zones[layout.RightMain][0][4].Label)

	hrm := base.Zones[layout.LeftMain][3][1]
	assert.Equal(t, binding.KindHoldTap, hrm.Kind)
	assert.Equal(t, "A/C", hrm.Label)

	// position 52 is the outer key of the left thumb's upper row
	assert.Equal(t, "LShift", base.Zones[layout.LeftThumb][0][0].Label)
	assert.Equal(t, "LOWER", base.Zones[layout.LeftThumb][0][2].Label)
	assert.Equal(t, "LGui", base.Zones[layout.RightThumb][0][0].Label)
	assert.Equal(t, "Space/LLAYER_Lower", base.Zones[layout.RightThumb][1][2].Label)
	assert.Equal(t, "MAGIC", base.Zones[layout.LeftMain][5][0].Label)
	assert.Equal(t, "PgDn", base.Zones[layout.RightMain][5][4].Label)
	assert.Zero(t, base.Unclassified())
}

func TestGlove80OtherLayers(t *testing.T) {
	km := loadFixture(t, "glove80.keymap", keymap.Options{})

	lower, ok := km.LayerByName("lower")
	require.True(t, ok)
	assert.Equal(t, binding.KindTransparent, lower.Keys[10].Kind)
	assert.Equal(t, binding.KindLayerGoto, lower.Keys[54].Kind)

	magic, ok := km.LayerByName("layer_magic")
	require.True(t, ok)
	assert.Equal(t, "BT CLR", magic.Keys[0].Label)
	assert.Equal(t, "BT CLR ALL", magic.Keys[9].Label)
	assert.Equal(t, "TOG", magic.Keys[27].Label)
	assert.Equal(t, binding.KindSystem, magic.Keys[34].Kind)
	assert.Equal(t, "USB", magic.Keys[71].Label)
}

func TestGlove80Combos(t *testing.T) {
	km := loadFixture(t, "glove80.keymap", keymap.Options{})
	require.Len(t, km.Combos, 2)
	assert.Equal(t, "combo_esc", km.Combos[0].Name)
	assert.Equal(t, []int{24, 25}, km.Combos[0].Positions)
	assert.Equal(t, 50, km.Combos[0].TimeoutMs)
	assert.Equal(t, "Esc", km.Combos[0].Key.Label)
	assert.Equal(t, binding.KindUnclassified, km.Combos[1].Key.Kind)
	assert.Equal(t, "caps_word", km.Combos[1].Key.Label)
}

func TestShortLayerPlaceholders(t *testing.T) {
	km := loadFixture(t, "short.keymap", keymap.Options{})
	require.Len(t, km.Layers, 1)
	l := km.Layers[0]
	assert.Equal(t, "short", l.Name)
	require.Len(t, l.Keys, 60)

	for _, z := range layout.Zones {
		for i, row := range l.Zones.Zone(z) {
			require.Len(t, row, len(km.Table.Zones[z][i]))
			for j, d := range row {
				if km.Table.Zones[z][i][j] >= 60 {
					assert.Equal(t, binding.Placeholder(), d)
				}
			}
		}
	}
}

func TestLayerOutOfRange(t *testing.T) {
	km := loadFixture(t, "glove80.keymap", keymap.Options{})
	_, err := km.Layer(3)
	var nf *extract.LayerNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.EqualError(t, err, "layer 3 not found, valid range is 0..2")

	_, err = km.Layer(-1)
	assert.Error(t, err)
}

func TestBuildNoLayers(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("empty.keymap", []byte("/ { chosen { }; };")))
	km, err := keymap.Build(context.Background(), file, keymap.Options{})
	require.ErrorIs(t, err, extract.ErrNoLayers)
	assert.EqualError(t, err, "empty.keymap: no layer blocks found")
	require.NotNil(t, km)
	assert.NotNil(t, km.Bag)
}

func TestBuildUnknownKeyboard(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.keymap", []byte("layer_a { bindings = <&kp A>; };")))
	_, err := keymap.Build(context.Background(), file, keymap.Options{Keyboard: "ergodox"})
	assert.ErrorIs(t, err, layout.ErrUnknownKeyboard)
}

func TestBuildKeepsDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("broken.keymap", []byte(`/ { keymap { compatible = "zmk,keymap";
        layer_a { bindings = <&kp A &kp B>; };
        layer_b { bindings = <&kp C $ &kp D>; };
    };`)))
	km, err := keymap.Build(context.Background(), file, keymap.Options{})
	require.NoError(t, err)
	assert.True(t, km.Bag.HasErrors())
	require.Len(t, km.Layers, 2)
	assert.Equal(t, []string{"&kp C", "&kp D"}, km.Layers[1].Tokens)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := keymap.Load(ctx, filepath.Join("testdata", "glove80.keymap"), keymap.Options{Jobs: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := keymap.Load(context.Background(), filepath.Join("testdata", "nope.keymap"), keymap.Options{})
	assert.Error(t, err)
}
