package gpucmd

// CommandType identifies the kind of a recorded register write.
type CommandType uint8

const (
	CmdMaskedWrite       CommandType = iota // Single write with byte mask
	CmdWrite                                // Single write, all bytes
	CmdWrites                               // Repeated writes to one register
	CmdIncrementalWrites                    // Writes to consecutive registers
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdMaskedWrite:       "MaskedWrite",
	CmdWrite:             "Write",
	CmdWrites:            "Writes",
	CmdIncrementalWrites: "IncrementalWrites",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// Register returns the (first) register the command writes.
	Register() uint16
}

// MaskedWriteCommand writes Value to Reg through a byte-enable mask.
type MaskedWriteCommand struct {
	Reg   uint16
	Mask  uint8
	Value uint32
}

// Type implements Command.
func (MaskedWriteCommand) Type() CommandType { return CmdMaskedWrite }

// Register implements Command.
func (c MaskedWriteCommand) Register() uint16 { return c.Reg }

// WriteCommand writes Value to Reg.
type WriteCommand struct {
	Reg   uint16
	Value uint32
}

// Type implements Command.
func (WriteCommand) Type() CommandType { return CmdWrite }

// Register implements Command.
func (c WriteCommand) Register() uint16 { return c.Reg }

// WritesCommand writes every element of Values to Reg.
type WritesCommand struct {
	Reg    uint16
	Values []uint32
}

// Type implements Command.
func (WritesCommand) Type() CommandType { return CmdWrites }

// Register implements Command.
func (c WritesCommand) Register() uint16 { return c.Reg }

// IncrementalWritesCommand writes Values to Reg, Reg+1, ...
type IncrementalWritesCommand struct {
	Reg    uint16
	Values []uint32
}

// Type implements Command.
func (IncrementalWritesCommand) Type() CommandType { return CmdIncrementalWrites }

// Register implements Command.
func (c IncrementalWritesCommand) Register() uint16 { return c.Reg }
