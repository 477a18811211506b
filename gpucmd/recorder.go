package gpucmd

// Recorder captures register writes as typed commands.
// It implements Target, so it can stand in for a real command buffer;
// the captured sequence can be inspected or replayed with Playback.
//
// Value slices passed to Writes and IncrementalWrites are copied, so
// callers may reuse them.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 64),
	}
}

// Commands returns the recorded commands in submission order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// MaskedWrite implements Target.
func (r *Recorder) MaskedWrite(reg uint16, mask uint8, v uint32) {
	r.commands = append(r.commands, MaskedWriteCommand{Reg: reg, Mask: mask, Value: v})
}

// Write implements Target.
func (r *Recorder) Write(reg uint16, v uint32) {
	r.commands = append(r.commands, WriteCommand{Reg: reg, Value: v})
}

// Writes implements Target.
func (r *Recorder) Writes(reg uint16, vs []uint32) {
	r.commands = append(r.commands, WritesCommand{Reg: reg, Values: clone(vs)})
}

// IncrementalWrites implements Target.
func (r *Recorder) IncrementalWrites(reg uint16, vs []uint32) {
	r.commands = append(r.commands, IncrementalWritesCommand{Reg: reg, Values: clone(vs)})
}

// Index returns the position of the first command writing reg, or -1.
func (r *Recorder) Index(reg uint16) int {
	for i, cmd := range r.commands {
		if cmd.Register() == reg {
			return i
		}
	}
	return -1
}

// Playback replays the recorded commands to t in order.
func (r *Recorder) Playback(t Target) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case MaskedWriteCommand:
			t.MaskedWrite(c.Reg, c.Mask, c.Value)
		case WriteCommand:
			t.Write(c.Reg, c.Value)
		case WritesCommand:
			t.Writes(c.Reg, c.Values)
		case IncrementalWritesCommand:
			t.IncrementalWrites(c.Reg, c.Values)
		}
	}
}

func clone(vs []uint32) []uint32 {
	out := make([]uint32, len(vs))
	copy(out, vs)
	return out
}
