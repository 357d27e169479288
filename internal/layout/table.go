// Package layout holds the physical key tables and maps flat per-layer
// binding lists onto them.
package layout

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Table describes a keyboard: every zone is a list of rows, every row a list
// of binding positions in reading order. Tables are static and must not be
// modified.
type Table struct {
	Name      string
	TotalKeys int
	Zones     [NumZones][][]int
}

// Glove80 is the MoErgo Glove80 table. Position 52 sits in the left thumb
// cluster as the outer key of its upper row.
var Glove80 = &Table{
	Name:      "glove80",
	TotalKeys: 80,
	Zones: [NumZones][][]int{
		LeftMain: {
			{0, 1, 2, 3, 4},
			{10, 11, 12, 13, 14, 15},
			{22, 23, 24, 25, 26, 27},
			{34, 35, 36, 37, 38, 39},
			{46, 47, 48, 49, 50, 51},
			{64, 65, 66, 67, 68},
		},
		RightMain: {
			{5, 6, 7, 8, 9},
			{16, 17, 18, 19, 20, 21},
			{28, 29, 30, 31, 32, 33},
			{40, 41, 42, 43, 44, 45},
			{58, 59, 60, 61, 62, 63},
			{75, 76, 77, 78, 79},
		},
		LeftThumb: {
			{52, 53, 54},
			{69, 70, 71},
		},
		RightThumb: {
			{55, 56, 57},
			{72, 73, 74},
		},
	},
}

var tables = map[string]*Table{
	Glove80.Name: Glove80,
}

// ErrUnknownKeyboard is returned by Lookup for a name with no table.
var ErrUnknownKeyboard = errors.New("unknown keyboard")

// Lookup returns the table registered under name, ignoring case.
func Lookup(name string) (*Table, error) {
	if t, ok := tables[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownKeyboard, name, strings.Join(Names(), ", "))
}

// Names lists registered keyboards, sorted.
func Names() []string {
	names := make([]string, 0, len(tables))
	for n := range tables {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// ZoneSize is the number of positions in zone z.
func (t *Table) ZoneSize(z Zone) int {
	n := 0
	for _, row := range t.Zones[z] {
		n += len(row)
	}
	return n
}

// Validate checks that the zones partition 0..TotalKeys-1: every position
// appears exactly once.
func (t *Table) Validate() error {
	seen := make([]Zone, t.TotalKeys)
	filled := make([]bool, t.TotalKeys)
	for _, z := range Zones {
		for _, row := range t.Zones[z] {
			for _, pos := range row {
				if pos < 0 || pos >= t.TotalKeys {
					return fmt.Errorf("%s: position %d of zone %s is outside 0..%d", t.Name, pos, z, t.TotalKeys-1)
				}
				if filled[pos] {
					return fmt.Errorf("%s: position %d is in both %s and %s", t.Name, pos, seen[pos], z)
				}
				filled[pos], seen[pos] = true, z
			}
		}
	}
	for pos, ok := range filled {
		if !ok {
			return fmt.Errorf("%s: position %d is not assigned to any zone", t.Name, pos)
		}
	}
	return nil
}
