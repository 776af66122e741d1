package writer

import (
	"fmt"

	"github.com/retroenv/edmacinfo/internal/symbols"
)

// Bit is a set bit of a bitfield.
type Bit struct {
	Position int
	Name     string
	Known    bool // false if Name is a placeholder
}

// DecodeBits returns all set bits of value in ascending order, named by the
// table which is indexed by bit position. Bits without a name get the
// placeholder prefix followed by the hex bit position.
func DecodeBits(value uint32, table *symbols.Table, placeholder string) []Bit {
	var bits []Bit
	for position := range 32 {
		if value&(1<<position) == 0 {
			continue
		}

		name, ok := table.Lookup(uint32(position))
		if !ok {
			name = fmt.Sprintf("%s0x%x", placeholder, position)
		}
		bits = append(bits, Bit{
			Position: position,
			Name:     name,
			Known:    ok,
		})
	}
	return bits
}
