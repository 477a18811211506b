// Package gpureg defines the PICA200 GPU register addresses written by the
// shader program configurator.
//
// Addresses are register indices (not byte offsets) as encoded in the low
// bits of a command-buffer header. Geometry shader registers mirror the
// vertex shader block at GeometryOffset.
package gpureg

// Reg is a GPU register index.
type Reg = uint16

// Pipeline registers.
const (
	Finalize        Reg = 0x0010
	ShOutmapTotal   Reg = 0x004F
	ShOutmapO0      Reg = 0x0050
	ShOutattrMode   Reg = 0x0064
	ShOutattrClock  Reg = 0x006F
	GeostageConfig  Reg = 0x0229
	VshComMode      Reg = 0x0244
	VshOutmapTotal1 Reg = 0x024A
	VshOutmapTotal2 Reg = 0x0251
	GshMisc0        Reg = 0x0252
	PrimitiveConfig Reg = 0x025E
)

// Geometry shader registers.
const (
	GshBoolUniform               Reg = 0x0280
	GshIntUniformI0              Reg = 0x0281
	GshInputBufferConfig         Reg = 0x0289
	GshEntryPoint                Reg = 0x028A
	GshAttributesPermutationLow  Reg = 0x028B
	GshAttributesPermutationHigh Reg = 0x028C
	GshOutmapMask                Reg = 0x028D
	GshCodeTransferEnd           Reg = 0x028F
	GshFloatUniformConfig        Reg = 0x0290
	GshFloatUniformData          Reg = 0x0291
	GshCodeTransferConfig        Reg = 0x029B
	GshCodeTransferData          Reg = 0x029C
	GshOpdescsConfig             Reg = 0x02A5
	GshOpdescsData               Reg = 0x02A6
)

// Vertex shader registers.
const (
	VshBoolUniform               Reg = 0x02B0
	VshIntUniformI0              Reg = 0x02B1
	VshInputBufferConfig         Reg = 0x02B9
	VshEntryPoint                Reg = 0x02BA
	VshAttributesPermutationLow  Reg = 0x02BB
	VshAttributesPermutationHigh Reg = 0x02BC
	VshOutmapMask                Reg = 0x02BD
	VshCodeTransferEnd           Reg = 0x02BF
	VshFloatUniformConfig        Reg = 0x02C0
	VshFloatUniformData          Reg = 0x02C1
	VshCodeTransferConfig        Reg = 0x02CB
	VshCodeTransferData          Reg = 0x02CC
	VshOpdescsConfig             Reg = 0x02D5
	VshOpdescsData               Reg = 0x02D6
)

// GeometryOffset is the distance from a vertex shader register to its
// geometry shader counterpart. It is negative: the geometry block sits
// below the vertex block.
const GeometryOffset = -0x30

// ForGeometry maps a vertex shader register to the matching geometry shader
// register.
func ForGeometry(vsh Reg) Reg {
	return Reg(int(vsh) + GeometryOffset)
}

// MaxReg is the highest register index a command header can address.
const MaxReg Reg = 0x03FF
