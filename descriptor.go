package pica

import "fmt"

// Stage identifies a programmable shader unit.
type Stage uint8

const (
	// StageVertex is the vertex shader stage.
	StageVertex Stage = iota

	// StageGeometry is the geometry shader stage.
	StageGeometry
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "Vertex"
	case StageGeometry:
		return "Geometry"
	default:
		return "Unknown"
	}
}

// ConstKind is the type of a constant table entry.
type ConstKind uint8

const (
	ConstBool    ConstKind = iota // Boolean uniform b0-b15
	ConstInt                      // Integer uniform i0-i3
	ConstFloat24                  // 24-bit float vector uniform
)

// String returns the constant kind name.
func (k ConstKind) String() string {
	switch k {
	case ConstBool:
		return "Bool"
	case ConstInt:
		return "Int"
	case ConstFloat24:
		return "Float24"
	default:
		return "Unknown"
	}
}

// ConstEntry is one default uniform value from a shader's constant table.
//
// For ConstBool only bit 0 of Data[0] is used. For ConstInt Data[0] is the
// packed integer uniform word. For ConstFloat24 each Data word carries one
// 24-bit float component (x, y, z, w) in its low 24 bits.
type ConstEntry struct {
	Kind ConstKind
	ID   uint16
	Data [4]uint32
}

// UniformEntry maps a uniform name to its register range.
// Registers use the unified numbering where float uniforms start at 0x10.
type UniformEntry struct {
	Name     string
	StartReg uint16
	EndReg   uint16
}

// floatRegBase is the unified register number of float uniform c0.
const floatRegBase = 0x10

// Code holds the machine code and operand descriptors shared by every
// entry point of one shader binary.
type Code struct {
	Words              []uint32
	OperandDescriptors []uint32
}

// Descriptor describes one compiled shader entry point.
//
// Descriptors are produced by the shader binary parser and are read-only
// to this package. A Descriptor must outlive every Instance built from it.
type Descriptor struct {
	Stage       Stage
	Code        *Code
	EntryOffset uint16

	// OutmapMask selects the active output registers; Outmap[0] is the
	// number of active outputs and Outmap[1:] the per-slot attribute maps.
	OutmapMask uint32
	Outmap     [8]uint32

	Constants []ConstEntry
	Uniforms  []UniformEntry
}

// UniformRegister returns the register index of the named uniform,
// relative to float uniform c0. It returns -1 and ErrNotFound if the
// symbol table has no such name.
func (d *Descriptor) UniformRegister(name string) (int8, error) {
	if d == nil {
		return -1, fmt.Errorf("uniform register %q: nil descriptor: %w", name, ErrInvalidArgument)
	}
	for _, u := range d.Uniforms {
		if u.Name == name {
			return int8(int(u.StartReg) - floatRegBase), nil
		}
	}
	return -1, fmt.Errorf("uniform register %q: %w", name, ErrNotFound)
}
