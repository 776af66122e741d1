// Package tablestest builds synthetic firmware images for tests.
package tablestest

import (
	"encoding/binary"
	"fmt"

	"github.com/retroenv/edmacinfo/internal/layout"
)

// Base is the ROM base address of layouts created by Layout.
const Base = 0x10000000

// packUnpackSlots is the space reserved for pack/unpack records, which have no
// fixed count.
const packUnpackSlots = 16

// Layout returns a compact layout with all regions placed back to back.
func Layout(channels, vdKicks, selectors int) layout.Layout {
	definitions := []layout.Definition{
		{Name: layout.DmacInfo, Count: channels, Stride: 8},
		{Name: layout.InterruptHandlers, Count: channels, Stride: 8},
		{Name: layout.PackUnpackID, Count: channels, Stride: 4},
		{Name: layout.PackUnpackInfo, Stride: 12},
		{Name: layout.DmacBoomerInfo, Count: channels, Stride: 12},
		{Name: layout.BoomerVdKickInfo, Count: vdKicks, Stride: 12},
		{Name: layout.BoomerSelector, Count: selectors, Stride: 4},
		{Name: layout.BoomerInputPort, Count: selectors, Stride: 4},
	}

	address := uint32(Base)
	for i := range definitions {
		definitions[i].Address = address
		count := definitions[i].Count
		if definitions[i].Name == layout.PackUnpackInfo {
			count = packUnpackSlots
		}
		address += uint32(count * definitions[i].Stride)
	}
	return layout.New(Base, definitions...)
}

// Image is a synthetic firmware image.
type Image struct {
	layout layout.Layout
	data   []byte
}

// New creates an empty image for the layout.
func New(l layout.Layout) *Image {
	return &Image{layout: l}
}

// Put writes records to consecutive slots of a region. Every record is a
// list of 32-bit fields that is encoded little-endian.
func (img *Image) Put(name layout.RegionName, records ...[]uint32) *Image {
	region, ok := img.layout.Region(name)
	if !ok {
		panic(fmt.Sprintf("region %s not in layout", name))
	}

	for i, rec := range records {
		offset := int(region.Offset) + i*region.Stride
		end := offset + len(rec)*4
		if end > len(img.data) {
			img.data = append(img.data, make([]byte, end-len(img.data))...)
		}
		for j, value := range rec {
			binary.LittleEndian.PutUint32(img.data[offset+j*4:], value)
		}
	}
	return img
}

// Words writes single field records to a region.
func (img *Image) Words(name layout.RegionName, words ...uint32) *Image {
	records := make([][]uint32, len(words))
	for i, w := range words {
		records[i] = []uint32{w}
	}
	return img.Put(name, records...)
}

// Pad extends the image to cover every region of the layout completely,
// using the reserved pack/unpack space.
func (img *Image) Pad() *Image {
	var end int
	for _, region := range img.layout.Regions() {
		count := region.Count
		if region.Name == layout.PackUnpackInfo {
			count = packUnpackSlots
		}
		end = max(end, int(region.Offset)+count*region.Stride)
	}
	if end > len(img.data) {
		img.data = append(img.data, make([]byte, end-len(img.data))...)
	}
	return img
}

// Bytes returns the encoded image.
func (img *Image) Bytes() []byte {
	return img.data
}
