package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var inlineSeeds = []string{
	"",
	"/ { };",
	"/ { keymap { compatible = \"zmk,keymap\"; l { bindings = <&kp A &trans>; }; }; };",
	"layer_x { bindings = <&mo 1 &lt 2 SPACE>; };",
	"#define X 1\n/ { a: b@1 { c = <1 (2 << 3)>, [00 ff]; }; };",
	"/* unterminated",
	"\"unterminated",
	"/ { { { { } } } }",
	"&kp A &kp B &kp C",
	"&{};<>[]()=:,/@",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "keymap", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".keymap" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
