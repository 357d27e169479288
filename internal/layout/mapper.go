package layout

import "keyzone/internal/binding"

// Model is one layer laid out by zone; row lengths match the table.
type Model [NumZones][][]binding.Descriptor

// Map places keys (indexed by physical position) onto t. Positions past the
// end of keys get binding.Placeholder().
func Map(keys []binding.Descriptor, t *Table) Model {
	var m Model
	for _, z := range Zones {
		rows := make([][]binding.Descriptor, len(t.Zones[z]))
		for i, row := range t.Zones[z] {
			out := make([]binding.Descriptor, len(row))
			for j, pos := range row {
				if pos >= 0 && pos < len(keys) {
					out[j] = keys[pos]
				} else {
					out[j] = binding.Placeholder()
				}
			}
			rows[i] = out
		}
		m[z] = rows
	}
	return m
}

// Zone returns the rows of zone z.
func (m Model) Zone(z Zone) [][]binding.Descriptor {
	return m[z]
}
