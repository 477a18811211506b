package pica

// Float24 encodings of 1.0, 2.0, 3.0 and 4.0.
const (
	f24One   = 0x3F0000
	f24Two   = 0x400000
	f24Three = 0x408000
	f24Four  = 0x410000
)

// packedOneToFour is PackFloat24 of (1, 2, 3, 4).
var packedOneToFour = [3]uint32{0x41000040, 0x80004000, 0x003F0000}

func testVertexDescriptor() *Descriptor {
	return &Descriptor{
		Stage: StageVertex,
		Code: &Code{
			Words:              []uint32{0x1, 0x2, 0x3},
			OperandDescriptors: []uint32{0xA},
		},
		EntryOffset: 0x10,
		OutmapMask:  0x3,
		Outmap:      [8]uint32{2, 0x03020100, 0x0B0A0908, 0x1F1F1F1F, 0x1F1F1F1F, 0x1F1F1F1F, 0x1F1F1F1F, 0x1F1F1F1F},
		Constants: []ConstEntry{
			{Kind: ConstBool, ID: 3, Data: [4]uint32{1}},
			{Kind: ConstInt, ID: 1, Data: [4]uint32{0x42}},
			{Kind: ConstFloat24, ID: 0x5F, Data: [4]uint32{f24One, f24Two, f24Three, f24Four}},
		},
		Uniforms: []UniformEntry{
			{Name: "projection", StartReg: 0x10, EndReg: 0x13},
			{Name: "modelView", StartReg: 0x14, EndReg: 0x17},
		},
	}
}

func testGeometryDescriptor() *Descriptor {
	return &Descriptor{
		Stage: StageGeometry,
		Code: &Code{
			Words:              []uint32{0x4, 0x5},
			OperandDescriptors: []uint32{0xB},
		},
		EntryOffset: 0x20,
		OutmapMask:  0x1,
		Outmap:      [8]uint32{1, 0x03020100, 0x1F1F1F1F, 0x1F1F1F1F, 0x1F1F1F1F, 0x1F1F1F1F, 0x1F1F1F1F, 0x1F1F1F1F},
		Constants: []ConstEntry{
			{Kind: ConstBool, ID: 0, Data: [4]uint32{1}},
		},
	}
}
