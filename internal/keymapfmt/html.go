package keymapfmt

import (
	"fmt"
	"html/template"
	"io"

	"keyzone/internal/keymap"
)

// DefaultHTMLTitle is used when HTMLOpts.Title is empty.
const DefaultHTMLTitle = "Keyzone keymap"

type HTMLOpts struct {
	Title string
}

type htmlPage struct {
	Title  string
	Layers []htmlLayerOption
	Legend []LegendEntry
	Doc    *Document
}

type htmlLayerOption struct {
	Index int
	Title string
}

// HTML writes a self-contained page that draws every layer client side.
// The document is embedded as data; html/template escapes it for the
// script context.
func HTML(w io.Writer, km *keymap.Keymap, opts HTMLOpts) error {
	title := opts.Title
	if title == "" {
		title = DefaultHTMLTitle
	}
	doc := NewDocument(km)
	page := htmlPage{Title: title, Legend: Legend, Doc: doc}
	for _, l := range doc.Layers {
		page.Layers = append(page.Layers, htmlLayerOption{Index: l.Index, Title: Title(l.Name)})
	}
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

const pageSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; background: #1e1e2e; color: #cdd6f4; margin: 2rem; }
h1 { font-size: 1.4rem; }
.board { display: flex; gap: 1.5rem; align-items: flex-start; }
.zone { border: 1px solid #585b70; border-radius: 8px; padding: .5rem; }
.zone h2 { font-size: .8rem; color: #a6adc8; margin: 0 0 .4rem; font-weight: normal; }
.row { display: flex; gap: .25rem; margin-bottom: .25rem; }
.zone.left .row, .zone.left_thumb .row { justify-content: flex-end; }
.key { width: 4.2rem; height: 2.6rem; border-radius: 4px; background: #313244; display: flex; flex-direction: column; align-items: center; justify-content: center; font-size: .72rem; overflow: hidden; }
.key .hold { font-size: .6rem; color: #a6adc8; }
.key.layer, .key.layer_tap { background: #1e4d5c; }
.key.hrm { background: #4a2f5c; }
.key.trans, .key.none { background: #262637; color: #6c7086; }
.key.system { background: #6b2737; }
.key.bluetooth { background: #25406b; }
.key.rgb { background: #5c5121; }
.key.output { background: #2b5c35; }
.key.macro, .key.magic { background: #5c3a21; }
.key.behavior { background: #5c2121; }
.legend { display: flex; flex-wrap: wrap; gap: 1rem; margin-top: 1.5rem; font-size: .8rem; }
.legend-item { display: flex; align-items: center; gap: .4rem; }
.legend-key { width: 1.2rem; height: 1.2rem; }
table.combos { margin-top: 1.5rem; border-collapse: collapse; }
table.combos td, table.combos th { padding: .2rem .8rem; border-bottom: 1px solid #45475a; text-align: left; }
</style>
</head>
<body>
<h1>{{.Title}} <small>({{.Doc.Keyboard}}, {{.Doc.TotalKeys}} keys)</small></h1>
<label for="layer">Layer</label>
<select id="layer">
{{- range .Layers}}
<option value="{{.Index}}">{{.Index}}: {{.Title}}</option>
{{- end}}
</select>
<div id="board" class="board"></div>
<div class="legend">
{{- range .Legend}}
<div class="legend-item"><div class="legend-key key {{.Class}}"></div><span>{{.Title}}</span></div>
{{- end}}
</div>
<table class="combos" id="combos"></table>
<script>
const keymap = {{.Doc}};
const zones = [["left", "left"], ["left_thumb", "left thumb"], ["right_thumb", "right thumb"], ["right", "right"]];

function keyCell(k) {
  const el = document.createElement("div");
  el.className = "key " + k.class;
  el.title = k.raw;
  const tap = document.createElement("span");
  tap.textContent = k.label;
  el.appendChild(tap);
  if (k.hold !== null) {
    const hold = document.createElement("span");
    hold.className = "hold";
    hold.textContent = k.hold;
    el.appendChild(hold);
  }
  return el;
}

function draw(index) {
  const layer = keymap.layers[index];
  const board = document.getElementById("board");
  board.replaceChildren();
  for (const [field, title] of zones) {
    const zone = document.createElement("div");
    zone.className = "zone " + field;
    const h = document.createElement("h2");
    h.textContent = title;
    zone.appendChild(h);
    for (const row of layer[field]) {
      const r = document.createElement("div");
      r.className = "row";
      row.forEach(k => r.appendChild(keyCell(k)));
      zone.appendChild(r);
    }
    board.appendChild(zone);
  }
}

function drawCombos() {
  const table = document.getElementById("combos");
  if (!keymap.combos.length) return;
  const head = table.insertRow();
  for (const t of ["combo", "positions", "key", "layers"]) {
    const th = document.createElement("th");
    th.textContent = t;
    head.appendChild(th);
  }
  for (const c of keymap.combos) {
    const row = table.insertRow();
    for (const v of [c.name, c.key_positions.join(" + "), c.key.label, (c.layers || []).join(", ")]) {
      row.insertCell().textContent = v;
    }
  }
}

const select = document.getElementById("layer");
select.addEventListener("change", () => draw(Number(select.value)));
drawCombos();
if (keymap.layers.length) draw(0);
</script>
</body>
</html>
`
