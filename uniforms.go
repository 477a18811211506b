package pica

import (
	"fmt"

	"github.com/gogpu/pica/gpucmd"
	"github.com/gogpu/pica/gpureg"
)

// boolUniformBits are set above the inverted boolean uniform word.
const boolUniformBits = 0x7FFF0000

// UploadUniforms writes the uniform values of every attached stage:
// booleans, then the four integer registers, then each float uniform in
// stored order; vertex stage first. Call it after Configure and before
// the draw that uses the values.
func (p *Program) UploadUniforms(t gpucmd.Target) error {
	if t == nil {
		return fmt.Errorf("upload uniforms: nil target: %w", ErrInvalidArgument)
	}
	if p.vertex == nil {
		return fmt.Errorf("upload uniforms: no vertex stage: %w", ErrInvalidState)
	}

	uploadStage(t, p.vertex)
	if p.geometry != nil {
		uploadStage(t, p.geometry)
	}
	return nil
}

// Use configures the program, uploading the code of both stages, and
// then uploads its uniforms.
func (p *Program) Use(t gpucmd.Target) error {
	if err := p.Configure(t); err != nil {
		return err
	}
	return p.UploadUniforms(t)
}

func uploadStage(t gpucmd.Target, si *Instance) {
	d := si.desc

	// The hardware treats a set bit as "false".
	t.Write(stageReg(d, gpureg.VshBoolUniform), boolUniformBits|^uint32(si.boolValue))
	t.IncrementalWrites(stageReg(d, gpureg.VshIntUniformI0), si.intValues[:])

	floatReg := stageReg(d, gpureg.VshFloatUniformConfig)
	for _, u := range si.floats {
		t.IncrementalWrites(floatReg, u.words())
	}

	Logger().Debug("pica: uniforms uploaded", "stage", d.Stage, "floats", len(si.floats))
}
