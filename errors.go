package pica

import "errors"

// Errors returned by pica operations. Callers match them with errors.Is;
// most are wrapped with the name of the failing operation.
var (
	// ErrInvalidArgument is returned for a missing required object or a
	// descriptor attached to the wrong stage.
	ErrInvalidArgument = errors.New("pica: invalid argument")

	// ErrOutOfRange is returned for a uniform ID outside the range the
	// hardware supports.
	ErrOutOfRange = errors.New("pica: uniform id out of range")

	// ErrInvalidState is returned when an operation needs a stage that is
	// not attached.
	ErrInvalidState = errors.New("pica: invalid state")

	// ErrAllocation is returned when float uniform storage cannot be
	// allocated within the hardware register file.
	ErrAllocation = errors.New("pica: uniform storage allocation failed")

	// ErrNotFound is returned when a uniform name is not in the symbol table.
	ErrNotFound = errors.New("pica: uniform not found")
)
