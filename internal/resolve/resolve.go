// Package resolve joins the decoded EDMAC tables into one record per channel.
package resolve

import (
	"github.com/retroenv/edmacinfo/internal/layout"
	"github.com/retroenv/edmacinfo/internal/tables"
)

// Channel is the fully resolved configuration of one DMA channel.
// Sections that are not configured for the channel are nil.
type Channel struct {
	Info       tables.ChannelInfo
	Interrupt  tables.InterruptBinding
	PackUnpack *PackUnpack
	Binding    tables.BoomerBinding
	Boomer     *Boomer // nil if Binding.ID is the undefined sentinel
}

// PackUnpack is the pack/unpack configuration of a channel.
type PackUnpack struct {
	ID     uint32
	Record tables.PackUnpackRecord
}

// Boomer is the Boomer VD kick configuration of a channel.
type Boomer struct {
	VdKickID uint32
	Sub      uint32 // lower 16 bits of the Boomer ID, not decoded
	VdKick   tables.VdKickRecord
	Selector *Selector // only set for the kick VD type
}

// Selector contains the selector and input port addresses of a kick type
// Boomer binding.
type Selector struct {
	Address   uint32
	InputPort uint32
}

// Resolve resolves all channels of the tables.
func Resolve(t *tables.Tables) ([]Channel, error) {
	channels := make([]Channel, 0, len(t.Channels))
	for id := range t.Channels {
		channel, err := ResolveChannel(t, id)
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}
	return channels, nil
}

// ResolveChannel joins all table entries that belong to the given channel.
func ResolveChannel(t *tables.Tables, id int) (Channel, error) {
	var channel Channel
	var err error

	if channel.Info, err = lookup(t.Channels, id, uint64(id), layout.DmacInfo); err != nil {
		return Channel{}, err
	}
	if channel.Interrupt, err = lookup(t.Interrupts, id, uint64(id), layout.InterruptHandlers); err != nil {
		return Channel{}, err
	}
	if channel.PackUnpack, err = resolvePackUnpack(t, id); err != nil {
		return Channel{}, err
	}
	if channel.Binding, err = lookup(t.Boomers, id, uint64(id), layout.DmacBoomerInfo); err != nil {
		return Channel{}, err
	}
	if channel.Boomer, err = resolveBoomer(t, id, channel.Binding.ID); err != nil {
		return Channel{}, err
	}
	return channel, nil
}

// resolvePackUnpack returns nil if the referenced record has no mode set.
func resolvePackUnpack(t *tables.Tables, channel int) (*PackUnpack, error) {
	id, err := lookup(t.PackUnpackIndex, channel, uint64(channel), layout.PackUnpackID)
	if err != nil {
		return nil, err
	}
	record, err := lookup(t.PackUnpack, channel, uint64(id), layout.PackUnpackInfo)
	if err != nil {
		return nil, err
	}
	if record.Mode == 0 {
		return nil, nil
	}
	return &PackUnpack{ID: id, Record: record}, nil
}

func resolveBoomer(t *tables.Tables, channel int, id tables.BoomerID) (*Boomer, error) {
	if id.Undefined() {
		return nil, nil
	}

	vdKickID := id.VdKickID()
	vdKick, err := lookup(t.VdKicks, channel, uint64(vdKickID), layout.BoomerVdKickInfo)
	if err != nil {
		return nil, err
	}

	boomer := &Boomer{
		VdKickID: vdKickID,
		Sub:      id.Sub(),
		VdKick:   vdKick,
	}
	if vdKick.VdType != tables.VdTypeKick {
		return boomer, nil
	}

	selector, err := lookup(t.Selectors, channel, uint64(vdKickID), layout.BoomerSelector)
	if err != nil {
		return nil, err
	}
	inputPort, err := lookup(t.InputPorts, channel, uint64(vdKickID), layout.BoomerInputPort)
	if err != nil {
		return nil, err
	}
	boomer.Selector = &Selector{
		Address:   selector,
		InputPort: inputPort,
	}
	return boomer, nil
}

// lookup returns the entry at index or a DataIntegrityError if the index is
// out of range.
func lookup[T any](entries []T, channel int, index uint64, table layout.RegionName) (T, error) {
	if index >= uint64(len(entries)) {
		var zero T
		return zero, &DataIntegrityError{
			Channel: channel,
			Table:   string(table),
			Index:   index,
			Size:    len(entries),
		}
	}
	return entries[index], nil
}
