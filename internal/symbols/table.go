// Package symbols contains the static name tables used to decode EDMAC
// configuration values.
package symbols

import (
	"maps"
	"slices"
)

// Table maps numeric codes to names. It is immutable after creation.
type Table struct {
	name  string
	items map[uint32]string
}

// New creates a symbol table.
func New(name string, items map[uint32]string) *Table {
	return &Table{
		name:  name,
		items: items,
	}
}

// Name returns the name of the table.
func (t *Table) Name() string {
	return t.name
}

// Lookup returns the name of the given code.
func (t *Table) Lookup(code uint32) (string, bool) {
	name, ok := t.items[code]
	return name, ok
}

// Len returns the number of names in the table.
func (t *Table) Len() int {
	return len(t.items)
}

// Codes returns all codes of the table in ascending order.
func (t *Table) Codes() []uint32 {
	return slices.Sorted(maps.Keys(t.items))
}

// Catalog bundles the tables that the formatter needs.
type Catalog struct {
	Vectors      *Table
	ISRs         *Table
	ChannelFlags *Table // indexed by bit position
	PackModes    *Table // indexed by bit position
	VdTypes      *Table
}

// References returns the symbol tables that are kept for reference only and
// are not joined to any channel.
func References() []*Table {
	return []*Table{ChasePorts, SelectIDs}
}

// Default returns the catalog of the R.180 ROM.
func Default() Catalog {
	return Catalog{
		Vectors:      IVT,
		ISRs:         ISRs,
		ChannelFlags: ChannelFlags,
		PackModes:    PackUnpackModes,
		VdTypes:      BoomerVdTypes,
	}
}
