package layout

// Table dimensions of the R.180 ROM.
const (
	R180Base           = 0xE0000000
	R180Channels       = 76
	R180VdKickCount    = 265
	R180SelectorCount  = 225
	channelInfoStride  = 8
	interruptStride    = 8
	packUnpackIDStride = 4
	packUnpackStride   = 12
	boomerStride       = 12
	vdKickStride       = 12
	selectorStride     = 4
)

// R180 returns the layout of the R.180 ROM dump.
func R180() Layout {
	return New(R180Base,
		Definition{Name: DmacInfo, Address: 0xE0DD5C64, Count: R180Channels, Stride: channelInfoStride},
		Definition{Name: InterruptHandlers, Address: 0xE0DD641C, Count: R180Channels, Stride: interruptStride},
		Definition{Name: PackUnpackID, Address: 0xE0DD5B34, Count: R180Channels, Stride: packUnpackIDStride},
		Definition{Name: PackUnpackInfo, Address: 0xE0DD5EC4, Stride: packUnpackStride},
		Definition{Name: DmacBoomerInfo, Address: 0xE0DD608C, Count: R180Channels, Stride: boomerStride},
		Definition{Name: BoomerVdKickInfo, Address: 0xE0F73510, Count: R180VdKickCount, Stride: vdKickStride},
		Definition{Name: BoomerSelector, Address: 0xE0F72E08, Count: R180SelectorCount, Stride: selectorStride},
		Definition{Name: BoomerInputPort, Address: 0xE0F7318C, Count: R180SelectorCount, Stride: selectorStride},
	)
}
