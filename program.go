package pica

import "fmt"

// Identity geometry shader input permutation: input i reads attribute i.
const (
	identityPermutationLow  = 0x76543210
	identityPermutationHigh = 0xFEDCBA98
)

// Program combines a vertex shader stage with an optional geometry shader
// stage. A Program owns its instances: replacing or destroying a stage
// releases the previous instance.
//
// A Program can be configured only while it has a vertex stage.
// Program is not safe for concurrent use.
type Program struct {
	vertex   *Instance
	geometry *Instance

	// Geometry shader input wiring; meaningful only with a geometry stage.
	inputPermutation [2]uint32
	inputStride      uint8
}

// NewProgram creates a Program with no stages attached.
func NewProgram() *Program {
	return &Program{}
}

// VertexStage returns the vertex stage instance, or nil.
func (p *Program) VertexStage() *Instance {
	return p.vertex
}

// GeometryStage returns the geometry stage instance, or nil.
func (p *Program) GeometryStage() *Instance {
	return p.geometry
}

// SetVertexStage attaches a vertex shader built from d, releasing any
// previous vertex stage. A descriptor for another stage is rejected with
// ErrInvalidArgument and the current vertex stage is kept.
func (p *Program) SetVertexStage(d *Descriptor) error {
	si, err := p.newStage(d, StageVertex)
	if err != nil {
		return fmt.Errorf("set vertex stage: %w", err)
	}
	p.vertex.Destroy()
	p.vertex = si

	Logger().Debug("pica: vertex stage attached",
		"entry", d.EntryOffset, "floats", len(si.floats))
	return nil
}

// SetGeometryStage attaches a geometry shader built from d, releasing any
// previous geometry stage. stride is the number of vertex attributes the
// geometry shader consumes per input vertex. The input permutation is
// reset to identity.
func (p *Program) SetGeometryStage(d *Descriptor, stride uint8) error {
	si, err := p.newStage(d, StageGeometry)
	if err != nil {
		return fmt.Errorf("set geometry stage: %w", err)
	}
	p.geometry.Destroy()
	p.geometry = si
	p.inputPermutation = [2]uint32{identityPermutationLow, identityPermutationHigh}
	p.inputStride = stride

	Logger().Debug("pica: geometry stage attached",
		"entry", d.EntryOffset, "stride", stride, "floats", len(si.floats))
	return nil
}

func (p *Program) newStage(d *Descriptor, want Stage) (*Instance, error) {
	if d == nil {
		return nil, fmt.Errorf("nil descriptor: %w", ErrInvalidArgument)
	}
	if d.Stage != want {
		return nil, fmt.Errorf("descriptor is a %v shader: %w", d.Stage, ErrInvalidArgument)
	}
	return NewInstance(d)
}

// SetGeometryInputPermutation sets which input attribute feeds each
// geometry shader input register, one nibble per register. The low 32
// bits cover registers 0-7, the high 32 bits registers 8-15.
func (p *Program) SetGeometryInputPermutation(permutation uint64) error {
	if p.geometry == nil {
		return fmt.Errorf("set geometry input permutation: no geometry stage: %w", ErrInvalidState)
	}
	p.inputPermutation[0] = uint32(permutation)
	p.inputPermutation[1] = uint32(permutation >> 32)
	return nil
}

// GeometryInputPermutation returns the low and high permutation words.
func (p *Program) GeometryInputPermutation() [2]uint32 {
	return p.inputPermutation
}

// GeometryInputStride returns the geometry shader input stride.
func (p *Program) GeometryInputStride() uint8 {
	return p.inputStride
}

// Destroy releases both stages.
func (p *Program) Destroy() {
	p.vertex.Destroy()
	p.geometry.Destroy()
	p.vertex = nil
	p.geometry = nil
}
