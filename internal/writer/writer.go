// Package writer renders resolved EDMAC channels as diagnostic text.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/edmacinfo/internal/resolve"
	"github.com/retroenv/edmacinfo/internal/symbols"
	"github.com/retroenv/edmacinfo/internal/tables"
)

// Boomer binding field masks.
const (
	InSelTypeMask  = 0x0000FF00
	AssertInfoMask = 0xFFFF0000
)

// Placeholders for codes without a symbol name.
const (
	unknownFlag     = "__INFO_"
	unknownPackMode = "__INFO_PACK_"
	unknownVdType   = "__UNKNOWN_"
	unknownName     = "?"
)

const separator = "================================================================"

// Writer writes the text representation of resolved channels.
type Writer struct {
	out     io.Writer
	symbols symbols.Catalog
	tracker *symbols.Tracker
	err     error
}

// New creates a new writer that resolves names using the catalog.
func New(out io.Writer, catalog symbols.Catalog) *Writer {
	return &Writer{
		out:     out,
		symbols: catalog,
		tracker: symbols.NewTracker(),
	}
}

// Unresolved returns the tracker of all codes that had no symbol name.
func (w *Writer) Unresolved() *symbols.Tracker {
	return w.tracker
}

// WriteAll writes all channels.
func (w *Writer) WriteAll(channels []resolve.Channel) error {
	for _, channel := range channels {
		if err := w.WriteChannel(channel); err != nil {
			return err
		}
	}
	return nil
}

// WriteChannel writes the block of a single channel.
func (w *Writer) WriteChannel(channel resolve.Channel) error {
	w.printf("%s\n", separator)
	w.printf("ID: %2d, addr: %#x\n", channel.Info.ID, channel.Info.Address)

	w.writeFlags(channel.Info.Flags)
	w.writeInterrupt(channel.Interrupt)
	if channel.PackUnpack != nil {
		w.writePackUnpack(channel.PackUnpack)
	}
	w.writeBoomer(channel.Binding, channel.Boomer)
	w.printf("\n")

	if w.err != nil {
		return fmt.Errorf("writing channel %d: %w", channel.Info.ID, w.err)
	}
	return nil
}

func (w *Writer) writeFlags(flags uint32) {
	w.printf("FLAGS 0b%032b\n", flags)
	w.printf("  INDEX: FLAG_NAME\n")
	for _, bit := range w.decodeBits(flags, w.symbols.ChannelFlags, unknownFlag) {
		w.printf("     %2d: %s\n", bit.Position, bit.Name)
	}
	w.printf("\n")
}

func (w *Writer) writeInterrupt(interrupt tables.InterruptBinding) {
	w.printf("Interrupt\n")
	w.printf("    ID : 0x%03x      %s\n", interrupt.Vector, w.name(w.symbols.Vectors, interrupt.Vector))
	w.printf("    ISR: %#x %s\n", interrupt.Handler, w.name(w.symbols.ISRs, interrupt.Handler))
	w.printf("\n")
}

func (w *Writer) writePackUnpack(pu *resolve.PackUnpack) {
	w.printf("PackUnpackInfo\n")
	w.printf("    PackUnpackId      : %d\n", pu.ID)
	w.printf("    ptr               : %#x\n", pu.Record.Pointer)
	w.printf("    unk               : %d\n", pu.Record.Unknown)
	w.printf("PackUnpackInfoMode\n")
	for _, bit := range w.decodeBits(pu.Record.Mode, w.symbols.PackModes, unknownPackMode) {
		w.printf("    %2d: %s\n", bit.Position, bit.Name)
	}
	w.printf("\n")
}

func (w *Writer) writeBoomer(binding tables.BoomerBinding, boomer *resolve.Boomer) {
	if binding.ID.Undefined() {
		w.printf("DmacBoomerInfo BOOMER_UNDEFINED\n")
		return
	}

	w.printf("DmacBoomerInfo %#x\n", uint32(binding.ID))
	w.printf("    BoomerInSelType         : 0x%08x\n", binding.InSelectType)
	w.printf("        `-- & InSelType     : 0x%08x\n", binding.InSelectType&InSelTypeMask)
	w.printf("    BoomerInSelEdmacType    : 0x%08x\n", binding.InSelectEdmacType)
	w.printf("        `-- & AssertInfo    : 0x%08x\n", binding.InSelectEdmacType&AssertInfoMask)
	if boomer == nil {
		return
	}

	vdType := boomer.VdKick.VdType
	vdTypeName, ok := w.tracker.Resolve(w.symbols.VdTypes, vdType)
	if !ok {
		vdTypeName = fmt.Sprintf("%s%#x", unknownVdType, vdType)
	}

	w.printf("BoomerVdKickInfo for BoomerID %#x (%#x, sub %#x)\n", uint32(binding.ID), boomer.VdKickID, boomer.Sub)
	w.printf("    VdType                  : %#x %s\n", vdType, vdTypeName)
	w.printf("    addr1                   : %#x\n", boomer.VdKick.Addr1)
	w.printf("    addr2                   : %#x\n", boomer.VdKick.Addr2)

	if boomer.Selector != nil {
		w.printf("BoomerSelector for %#x\n", uint32(binding.ID))
		w.printf("    addr1               : %#x\n", boomer.Selector.Address)
		w.printf("    addr2 (InputPort?)  : %#x\n", boomer.Selector.InputPort)
	}
}

// decodeBits decodes a bitfield and records the positions without a name.
func (w *Writer) decodeBits(value uint32, table *symbols.Table, placeholder string) []Bit {
	bits := DecodeBits(value, table, placeholder)
	for _, bit := range bits {
		if !bit.Known {
			w.tracker.MarkUnresolved(table.Name(), uint32(bit.Position))
		}
	}
	return bits
}

// name returns the symbol name of the code or a placeholder.
func (w *Writer) name(table *symbols.Table, code uint32) string {
	name, ok := w.tracker.Resolve(table, code)
	if !ok {
		return unknownName
	}
	return name
}

// printf writes formatted output, after the first error all writes are skipped.
func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}
