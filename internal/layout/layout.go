// Package layout describes where the EDMAC configuration tables are located
// inside a firmware image.
package layout

import "fmt"

// RegionName identifies a table inside the firmware image.
type RegionName string

// Regions of the EDMAC configuration, named after the firmware symbols.
const (
	DmacInfo          RegionName = "DmacInfo"
	InterruptHandlers RegionName = "InterruptHandlers"
	PackUnpackID      RegionName = "PackUnpackId"
	PackUnpackInfo    RegionName = "PackUnpackInfo"
	DmacBoomerInfo    RegionName = "DmacBoomerInfo"
	BoomerVdKickInfo  RegionName = "BoomerVdKickInfo"
	BoomerSelector    RegionName = "BoomerSelector1"
	BoomerInputPort   RegionName = "BoomerInputPort"
)

// Definition declares a region by its linked address.
type Definition struct {
	Name    RegionName
	Address uint32 // linked (absolute) address inside the ROM
	Count   int    // number of records, 0 if it is derived from other table data
	Stride  int    // record size in bytes
}

// Region is a resolved table location inside the image file.
type Region struct {
	Name    RegionName
	Address uint32
	Offset  int64 // file offset, Address minus the layout base address
	Count   int
	Stride  int
}

// Size returns the number of bytes covered by all records of the region.
func (r Region) Size() int64 {
	return int64(r.Count) * int64(r.Stride)
}

// WithCount returns a copy of the region with a different record count.
// It is used for tables whose size is only known after reading another table.
func (r Region) WithCount(count int) Region {
	r.Count = count
	return r
}

// Layout is an immutable catalog of all table regions of one firmware version.
type Layout struct {
	base    uint32
	order   []RegionName
	regions map[RegionName]Region
}

// New creates a layout for the given ROM base address. The file offsets of
// all regions are computed once here.
// A region located below the base address or declared twice is a programming
// error and causes a panic.
func New(base uint32, definitions ...Definition) Layout {
	l := Layout{
		base:    base,
		order:   make([]RegionName, 0, len(definitions)),
		regions: make(map[RegionName]Region, len(definitions)),
	}

	for _, def := range definitions {
		if def.Address < base {
			panic(fmt.Sprintf("region %s at 0x%08X is below base address 0x%08X", def.Name, def.Address, base))
		}
		if _, ok := l.regions[def.Name]; ok {
			panic(fmt.Sprintf("region %s declared twice", def.Name))
		}

		l.order = append(l.order, def.Name)
		l.regions[def.Name] = Region{
			Name:    def.Name,
			Address: def.Address,
			Offset:  int64(def.Address - base),
			Count:   def.Count,
			Stride:  def.Stride,
		}
	}
	return l
}

// Base returns the ROM base address that file offset 0 maps to.
func (l Layout) Base() uint32 {
	return l.base
}

// Region returns the region with the given name.
func (l Layout) Region(name RegionName) (Region, bool) {
	region, ok := l.regions[name]
	return region, ok
}

// Regions returns all regions in declaration order.
func (l Layout) Regions() []Region {
	regions := make([]Region, 0, len(l.order))
	for _, name := range l.order {
		regions = append(regions, l.regions[name])
	}
	return regions
}

// Channels returns the number of DMA channels described by the layout.
func (l Layout) Channels() int {
	return l.regions[DmacInfo].Count
}
