package symbols

// ThumbFlag is set in handler addresses of thumb mode functions.
const ThumbFlag = 0x1

// ISRs names the known EDMAC interrupt service routines.
var ISRs = New("ISR", map[uint32]string{
	0xE05378D6 | ThumbFlag: "EDMAC_ReadISR",
	0xE0537990 | ThumbFlag: "EDMAC_WriteISR",
	0xE0535C4B | ThumbFlag: "EDMAC_UnknownISR",
})

// ChannelFlags names the DmacInfo flag bits.
var ChannelFlags = New("ChannelFlags", map[uint32]string{
	0x0:  "INFO_DMAC_TYPE_WRITE",
	0x1:  "INFO_DMAC_TYPE_READ",
	0x2:  "INFO_DMAC_SS",
	0x7:  "INFO_DMAC_DANCING",
	0x8:  "INFO_128BIT_MODE",
	0x9:  "INFO_64BIT_MODE",
	0xA:  "INFO_32BIT_MODE",
	0xB:  "INFO_DIV_MODE",
	0xC:  "INFO_XSYS_DIV_MODE",
	0x10: "INFO_OPTI_MODE",
	0x11: "INFO_VITON_MODE",
})

// PackUnpackModes names the PackUnpackInfo mode bits.
var PackUnpackModes = New("PackUnpackModes", map[uint32]string{
	0x0: "INFO_PACK_UNPACK_MODE",
	0x1: "INFO_PACK_UNPACK_XMODE",
})

// BoomerVdTypes names the Boomer VD kick types.
var BoomerVdTypes = New("BoomerVdTypes", map[uint32]string{
	0x1: "E_BOOMER_VD_KICK",
})

// ChasePorts names chaser ports. No relation to EDMAC IDs is known, the
// table is not used for decoding.
var ChasePorts = New("ChasePorts", map[uint32]string{
	0x2E: "ELD_EDMAC_CHASER_EMPTY",
})

// SelectIDs names Boomer select IDs. They match Boomer IDs, but no relation
// to EDMAC IDs is known and the table is not used for decoding.
var SelectIDs = New("SelectIDs", map[uint32]string{
	0xD70000: "ELD_BOOMER_DAFIGARO_1",
	0xD80000: "ELD_BOOMER_DAFIGARO_2",
	0xD90000: "ELD_BOOMER_DAFIGARO_3",
})
