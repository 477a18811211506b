package pica

import (
	"fmt"

	"github.com/gogpu/pica/gpucmd"
	"github.com/gogpu/pica/gpureg"
)

// Register values written by Configure. The output attribute mode and
// clock values are required by the hardware but undocumented.
const (
	entryPointBits      = 0x7FFF0000
	gshInputBufferBits  = 0x08000000
	outattrMode         = 0x00000001
	outattrClockVertex  = 0x00000703
	outattrClockGeometry = 0x01030703

	// transferChunk is the largest number of words sent to a data port
	// in one command.
	transferChunk = 0x80
)

// Configure writes the register sequence that wires the program into the
// shader pipeline. It fails with ErrInvalidState if no vertex stage is
// attached.
//
// The geometry stage is enabled or disabled before any vertex shader
// register is touched; otherwise the vertex registers only reach some of
// the shader units. By default the code of every attached stage is
// uploaded, see WithVertexCode and WithGeometryCode.
func (p *Program) Configure(t gpucmd.Target, opts ...ConfigureOption) error {
	if t == nil {
		return fmt.Errorf("configure: nil target: %w", ErrInvalidArgument)
	}
	if p.vertex == nil {
		return fmt.Errorf("configure: no vertex stage: %w", ErrInvalidState)
	}

	o := defaultConfigureOptions()
	for _, opt := range opts {
		opt(&o)
	}

	gsh := p.geometry
	if gsh == nil {
		t.MaskedWrite(gpureg.GeostageConfig, 0x1, 0x00000000)
		t.MaskedWrite(gpureg.VshComMode, 0x1, 0x00000000)
	} else {
		t.MaskedWrite(gpureg.GeostageConfig, 0x1, 0x00000002)
		t.MaskedWrite(gpureg.VshComMode, 0x1, 0x00000001)
	}

	vsh := p.vertex.desc
	if o.vertexCode {
		sendCode(t, vsh)
	}
	t.Write(gpureg.VshEntryPoint, entryPointBits|uint32(vsh.EntryOffset))
	t.Write(gpureg.VshOutmapMask, vsh.OutmapMask)

	t.Write(gpureg.VshOutmapTotal1, vsh.Outmap[0]-1)
	t.Write(gpureg.VshOutmapTotal2, vsh.Outmap[0]-1)

	t.MaskedWrite(gpureg.GeostageConfig, 0x8, 0x00000000)
	t.Write(gpureg.GshMisc0, 0x00000000)

	if gsh == nil {
		setOutmap(t, &vsh.Outmap)
		t.Write(gpureg.ShOutattrMode, outattrMode)
		t.Write(gpureg.ShOutattrClock, outattrClockVertex)

		Logger().Debug("pica: program configured", "geometry", false, "code", o.vertexCode)
		return nil
	}

	gd := gsh.desc
	if o.geometryCode {
		sendCode(t, gd)
	}
	t.Write(gpureg.GshEntryPoint, entryPointBits|uint32(gd.EntryOffset))
	t.Write(gpureg.GshOutmapMask, gd.OutmapMask)

	setOutmap(t, &gd.Outmap)

	t.Write(gpureg.GshInputBufferConfig, gshInputBufferBits|uint32(p.inputStride-1))
	t.IncrementalWrites(gpureg.GshAttributesPermutationLow, p.inputPermutation[:])

	t.Write(gpureg.ShOutattrMode, outattrMode)
	t.Write(gpureg.ShOutattrClock, outattrClockGeometry)

	Logger().Debug("pica: program configured", "geometry", true,
		"code", o.vertexCode, "geometryCode", o.geometryCode, "stride", p.inputStride)
	return nil
}

// setOutmap writes the output count and the eight output map slots.
func setOutmap(t gpucmd.Target, outmap *[8]uint32) {
	t.MaskedWrite(gpureg.PrimitiveConfig, 0x1, outmap[0]-1)
	t.IncrementalWrites(gpureg.ShOutmapTotal, outmap[:])
}

// stageReg maps a vertex shader register to the register of d's stage.
func stageReg(d *Descriptor, vsh uint16) uint16 {
	if d.Stage == StageGeometry {
		return gpureg.ForGeometry(vsh)
	}
	return vsh
}

// sendCode uploads the machine code and operand descriptors of d's
// binary to d's stage. Empty payloads are skipped.
func sendCode(t gpucmd.Target, d *Descriptor) {
	if d.Code == nil {
		return
	}

	if words := d.Code.Words; len(words) > 0 {
		t.Write(stageReg(d, gpureg.VshCodeTransferConfig), 0)
		sendChunked(t, stageReg(d, gpureg.VshCodeTransferData), words)
		t.Write(stageReg(d, gpureg.VshCodeTransferEnd), 0x00000001)
	}

	if opdescs := d.Code.OperandDescriptors; len(opdescs) > 0 {
		t.Write(stageReg(d, gpureg.VshOpdescsConfig), 0)
		sendChunked(t, stageReg(d, gpureg.VshOpdescsData), opdescs)
	}
}

func sendChunked(t gpucmd.Target, reg uint16, words []uint32) {
	for i := 0; i < len(words); i += transferChunk {
		t.Writes(reg, words[i:min(i+transferChunk, len(words))])
	}
}
