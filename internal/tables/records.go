package tables

// BoomerUndefined marks a channel that is not bound to any Boomer block.
const BoomerUndefined BoomerID = 0xFFFFFFFF

// VdTypeKick is the only VD type that has selector and input port entries.
const VdTypeKick = 0x1

// ChannelInfo is one DmacInfo entry.
type ChannelInfo struct {
	ID      int
	Address uint32
	Flags   uint32
}

// InterruptBinding is one InterruptHandlers entry.
type InterruptBinding struct {
	Channel int
	Vector  uint32 // interrupt vector table index
	Handler uint32 // ISR address, including the thumb bit
}

// PackUnpackRecord is one PackUnpackInfo entry.
type PackUnpackRecord struct {
	ID      int
	Pointer uint32
	Unknown uint32
	Mode    uint32 // 0 if pack/unpack is not configured
}

// BoomerID links a channel to a Boomer block. The upper 16 bits select the
// VD kick info slot, the lower 16 bits are not decoded.
type BoomerID uint32

// Undefined returns whether the ID is the unbound sentinel.
func (id BoomerID) Undefined() bool {
	return id == BoomerUndefined
}

// VdKickID returns the VD kick info index.
func (id BoomerID) VdKickID() uint32 {
	return uint32(id) >> 16
}

// Sub returns the opaque lower 16 bits.
func (id BoomerID) Sub() uint32 {
	return uint32(id) & 0xFFFF
}

// BoomerBinding is one DmacBoomerInfo entry.
type BoomerBinding struct {
	Channel           int
	ID                BoomerID
	InSelectType      uint32
	InSelectEdmacType uint32
}

// VdKickRecord is one BoomerVdKickInfo entry.
type VdKickRecord struct {
	ID     int
	VdType uint32
	Addr1  uint32
	Addr2  uint32
}

// Tables contains all decoded tables of an image.
type Tables struct {
	Channels        []ChannelInfo
	Interrupts      []InterruptBinding
	PackUnpackIndex []uint32
	PackUnpack      []PackUnpackRecord
	Boomers         []BoomerBinding
	VdKicks         []VdKickRecord
	Selectors       []uint32
	InputPorts      []uint32
}
