package keymap

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"keyzone/internal/binding"
	"keyzone/internal/ctxlog"
	"keyzone/internal/diag"
	"keyzone/internal/dts"
	"keyzone/internal/extract"
	"keyzone/internal/layout"
	"keyzone/internal/observ"
	"keyzone/internal/source"
)

type Options struct {
	// Keyboard selects the layout table; empty means DefaultKeyboard.
	Keyboard string
	// Jobs limits parallel layer workers; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps the diagnostics bag; 0 means DefaultMaxDiagnostics.
	MaxDiagnostics int
	// Timer, if set, records the load/parse/extract/classify phases.
	Timer *observ.Timer
}

// Load reads path and builds its keymap.
func Load(ctx context.Context, path string, opts Options) (*Keymap, error) {
	idx := opts.Timer.Begin("load")
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	opts.Timer.End(idx, path)
	if err != nil {
		return nil, fmt.Errorf("load keymap: %w", err)
	}
	km, err := Build(ctx, fs.Get(id), opts)
	if km != nil {
		km.FileSet = fs
	}
	return km, err
}

// Build runs the pipeline over an already loaded file. Syntax problems end
// up in the returned Keymap's Bag. When no layer can be found the error
// wraps extract.ErrNoLayers and the Keymap still carries the diagnostics.
func Build(ctx context.Context, file *source.File, opts Options) (*Keymap, error) {
	log := ctxlog.FromContext(ctx)

	keyboard := opts.Keyboard
	if keyboard == "" {
		keyboard = DefaultKeyboard
	}
	table, err := layout.Lookup(keyboard)
	if err != nil {
		return nil, err
	}
	maxDiag := opts.MaxDiagnostics
	if maxDiag == 0 {
		maxDiag = DefaultMaxDiagnostics
	}

	km := &Keymap{
		File:     file,
		Keyboard: table.Name,
		Table:    table,
		Bag:      diag.NewBag(maxDiag),
	}

	idx := opts.Timer.Begin("parse")
	doc := dts.Parse(file, dts.Options{Reporter: diag.BagReporter{Bag: km.Bag}})
	opts.Timer.End(idx, fmt.Sprintf("%d nodes, %d diagnostics", len(doc.Nodes), km.Bag.Len()))

	idx = opts.Timer.Begin("extract")
	layers, strategy, err := extract.Layers(doc)
	combos := extract.Combos(doc)
	opts.Timer.End(idx, fmt.Sprintf("%d layers via %s", len(layers), strategy))
	if err != nil {
		return km, fmt.Errorf("%s: %w", file.Path, err)
	}
	km.Strategy = strategy
	log.Debug("layers extracted", "file", file.Path, "strategy", strategy.String(), "layers", len(layers), "combos", len(combos))

	idx = opts.Timer.Begin("classify")
	defer func() { opts.Timer.End(idx, fmt.Sprintf("%d layers", len(km.Layers))) }()

	results, err := classifyLayers(ctx, layers, table, opts.Jobs)
	if err != nil {
		return nil, err
	}
	km.Layers = results

	km.Combos = make([]Combo, len(combos))
	for i, c := range combos {
		key := binding.Placeholder()
		if toks := binding.Tokenize(c.Binding); len(toks) > 0 {
			key = binding.Classify(toks[0])
		}
		km.Combos[i] = Combo{Combo: c, Key: key}
	}
	return km, nil
}

// classifyLayers processes layers in parallel. Every worker writes only its
// own slot, so the result keeps source order.
func classifyLayers(ctx context.Context, layers []extract.Layer, table *layout.Table, jobs int) ([]Layer, error) {
	if len(layers) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log := ctxlog.FromContext(ctx)

	results := make([]Layer, len(layers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(layers)))

	for i := range layers {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			src := layers[i]
			tokens := binding.Tokenize(src.Bindings)
			keys := make([]binding.Descriptor, len(tokens))
			for j, tok := range tokens {
				keys[j] = binding.Classify(tok)
			}

			results[i] = Layer{
				Index:  src.Index,
				Name:   src.Name,
				Node:   src.Node,
				Tokens: tokens,
				Keys:   keys,
				Zones:  layout.Map(keys, table),
			}

			log.Debug("layer classified", "layer", src.Name, "index", src.Index,
				"tokens", len(tokens), "unclassified", results[i].Unclassified())
			if len(tokens) > table.TotalKeys {
				log.Warn("layer has more bindings than keys", "layer", src.Name,
					"bindings", len(tokens), "keys", table.TotalKeys)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
