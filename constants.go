package pica

import "fmt"

// Hardware uniform register file sizes.
const (
	// MaxBoolUniforms is the number of boolean uniforms per stage.
	MaxBoolUniforms = 16

	// MaxIntUniforms is the number of integer uniforms per stage.
	MaxIntUniforms = 4

	// MaxFloatUniforms is the number of float vector uniforms per stage.
	MaxFloatUniforms = 96
)

// Float24Uniform is one float vector uniform ready for upload: the target
// register ID followed by the three packed data words.
type Float24Uniform struct {
	ID   uint32
	Data [3]uint32
}

// words returns the uniform in float uniform config-port order.
func (u Float24Uniform) words() []uint32 {
	return []uint32{u.ID, u.Data[0], u.Data[1], u.Data[2]}
}

// loadConstants fills the uniform state of si from the descriptor's
// constant table. Bool IDs come from trusted binaries and are not range
// checked; bits above 15 fall off the 16-bit mask. Int entries beyond i3
// are dropped.
func loadConstants(si *Instance, table []ConstEntry) error {
	floatCount := 0
	for _, c := range table {
		switch c.Kind {
		case ConstBool:
			bit := uint16(1) << c.ID
			si.boolValue &^= bit
			if c.Data[0]&1 != 0 {
				si.boolValue |= bit
			}
			si.boolMask |= bit
		case ConstInt:
			if c.ID < MaxIntUniforms {
				si.intValues[c.ID] = c.Data[0]
				si.intMask |= 1 << c.ID
			}
		case ConstFloat24:
			floatCount++
		}
	}

	if floatCount == 0 {
		return nil
	}
	if floatCount > MaxFloatUniforms {
		return fmt.Errorf("%d float constants, register file holds %d: %w",
			floatCount, MaxFloatUniforms, ErrAllocation)
	}

	si.floats = make([]Float24Uniform, 0, floatCount)
	for _, c := range table {
		if c.Kind != ConstFloat24 {
			continue
		}
		lanes := [4]uint32{c.Data[0], c.Data[1], c.Data[2], c.Data[3]}
		si.floats = append(si.floats, Float24Uniform{
			ID:   uint32(c.ID & 0xFF),
			Data: PackFloat24(lanes),
		})
	}
	return nil
}
