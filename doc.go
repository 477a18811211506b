// Package pica configures the programmable shader stages of the PICA200 GPU.
//
// # Overview
//
// pica turns pre-parsed shader binaries into the register writes that load
// and wire them into the GPU pipeline. It does not parse shader binaries and
// does not own the command buffer: descriptors come from the binary parser,
// and register writes go to any gpucmd.Target.
//
// # Quick Start
//
//	prog := pica.NewProgram()
//	if err := prog.SetVertexStage(vshDesc); err != nil {
//	    return err
//	}
//
//	buf := gpucmd.NewBuffer(0x4000)
//	if err := prog.Use(buf); err != nil {
//	    return err
//	}
//	if err := buf.Err(); err != nil {
//	    return err
//	}
//
// # Architecture
//
// The package is organized into:
//   - Descriptor: a compiled entry point (stage, code, outputs, constants)
//   - Instance: one stage's uniform state, loaded from the constant table
//   - Program: a vertex stage plus an optional geometry stage
//   - Program.Configure: the ordered pipeline register sequence
//   - Program.UploadUniforms: the per-draw uniform register writes
//
// # Uniforms
//
// Each stage has 16 boolean, 4 integer and 96 float vector uniforms.
// Float uniforms use the GPU's 24-bit float format; see Float24 and
// PackFloat24.
//
// # Concurrency
//
// Programs, instances and command targets are single-writer values. Guard
// them externally when shared between goroutines.
package pica
