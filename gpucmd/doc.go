// Package gpucmd provides register command targets for the PICA200 GPU.
//
// A Target is the append-only sink the shader program configurator writes
// register updates to. Two implementations are provided:
//
//   - Buffer encodes writes into the GPU command-buffer word format consumed
//     by the command processor (header word, parameters, 8-byte alignment).
//   - Recorder captures writes as typed command structs for inspection and
//     can replay them to any other Target.
//
// # Command-buffer format
//
// Each command is a parameter word followed by a header word, then the
// remaining parameters, padded to an even word count:
//
//	param[0] | header | param[1..n-1] | (pad)
//
// The header packs the register index (bits 0-9), the byte-enable mask
// (bits 16-19), the parameter count minus one (bits 20-27) and the
// incremental flag (bit 31).
//
// # Example
//
//	rec := gpucmd.NewRecorder()
//	rec.Write(gpureg.VshEntryPoint, 0x7FFF0000)
//
//	buf := gpucmd.NewBuffer(0x4000)
//	rec.Playback(buf)
//	buf.Finalize()
//	if err := buf.Err(); err != nil {
//	    // buffer too small
//	}
package gpucmd

// Target receives GPU register writes in submission order.
//
// Implementations are not required to be safe for concurrent use.
type Target interface {
	// MaskedWrite writes v to reg, updating only the bytes selected by
	// the 4-bit byte-enable mask.
	MaskedWrite(reg uint16, mask uint8, v uint32)

	// Write writes v to reg with all bytes enabled.
	Write(reg uint16, v uint32)

	// Writes writes every value of vs to the same register, in order.
	// Data ports (shader code, operand descriptors) are fed this way.
	Writes(reg uint16, vs []uint32)

	// IncrementalWrites writes vs to consecutive registers starting at reg.
	IncrementalWrites(reg uint16, vs []uint32)
}

// MaskAll enables all four bytes of a register write.
const MaskAll uint8 = 0xF
