package gpucmd

import (
	"errors"

	"github.com/gogpu/pica/gpureg"
)

// ErrBufferFull is reported by Buffer.Err when a command did not fit in
// the buffer's capacity.
var ErrBufferFull = errors.New("gpucmd: command buffer full")

// Header field layout.
const (
	headerMaskShift   = 16
	headerCountShift  = 20
	headerIncremental = 1 << 31

	// MaxParams is the largest parameter count a single header can carry.
	MaxParams = 256

	// FinalizeValue is the marker written to the finalize register.
	FinalizeValue = 0x12345678
)

// Header builds a command header word. count is the number of parameter
// words that follow (1..MaxParams).
func Header(reg uint16, mask uint8, count int, incremental bool) uint32 {
	h := uint32(reg&gpureg.MaxReg) |
		uint32(mask&0xF)<<headerMaskShift |
		uint32(count-1)&0xFF<<headerCountShift
	if incremental {
		h |= headerIncremental
	}
	return h
}

// Buffer encodes register writes into GPU command-buffer words.
//
// A Buffer with a fixed capacity never grows past it: a command that does
// not fit is dropped whole and the buffer records ErrBufferFull, which
// stays set until Reset. Later commands are dropped as well so the words
// never describe a partial sequence.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	words    []uint32
	capacity int
	err      error
}

// NewBuffer creates a Buffer holding at most capacity words.
// A capacity of zero or less means the buffer grows without bound.
func NewBuffer(capacity int) *Buffer {
	b := &Buffer{capacity: capacity}
	if capacity > 0 {
		b.words = make([]uint32, 0, capacity)
	}
	return b
}

// Words returns the encoded command words. The slice aliases the buffer's
// storage until the next write or Reset.
func (b *Buffer) Words() []uint32 {
	return b.words
}

// Len returns the number of encoded words.
func (b *Buffer) Len() int {
	return len(b.words)
}

// Err returns ErrBufferFull if any command was dropped, nil otherwise.
func (b *Buffer) Err() error {
	return b.err
}

// Reset discards all words and clears the error, keeping the storage.
func (b *Buffer) Reset() {
	b.words = b.words[:0]
	b.err = nil
}

// MaskedWrite implements Target.
func (b *Buffer) MaskedWrite(reg uint16, mask uint8, v uint32) {
	b.add(reg, mask, []uint32{v}, false)
}

// Write implements Target.
func (b *Buffer) Write(reg uint16, v uint32) {
	b.add(reg, MaskAll, []uint32{v}, false)
}

// Writes implements Target.
func (b *Buffer) Writes(reg uint16, vs []uint32) {
	b.addSplit(reg, vs, false)
}

// IncrementalWrites implements Target.
func (b *Buffer) IncrementalWrites(reg uint16, vs []uint32) {
	b.addSplit(reg, vs, true)
}

// Finalize appends the finalize marker, repeated as needed to leave the
// buffer length a multiple of 16 bytes.
func (b *Buffer) Finalize() {
	b.Write(gpureg.Finalize, FinalizeValue)
	if len(b.words)%4 != 0 {
		b.Write(gpureg.Finalize, FinalizeValue)
	}
}

// addSplit emits vs as one or more commands of at most MaxParams words.
// Incremental runs continue at the register following the previous chunk.
func (b *Buffer) addSplit(reg uint16, vs []uint32, incremental bool) {
	if len(vs) == 0 {
		return
	}
	for len(vs) > 0 {
		n := min(len(vs), MaxParams)
		b.add(reg, MaskAll, vs[:n], incremental)
		if incremental {
			reg += uint16(n)
		}
		vs = vs[n:]
	}
}

func (b *Buffer) add(reg uint16, mask uint8, params []uint32, incremental bool) {
	if b.err != nil {
		return
	}

	n := len(params)
	need := n + 1
	if need%2 != 0 {
		need++
	}
	if b.capacity > 0 && len(b.words)+need > b.capacity {
		b.err = ErrBufferFull
		return
	}

	b.words = append(b.words, params[0], Header(reg, mask, n, incremental))
	b.words = append(b.words, params[1:]...)
	if (n+1)%2 != 0 {
		b.words = append(b.words, 0)
	}
}
