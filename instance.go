package pica

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Instance is the runtime state of one shader stage: the uniform values
// initialized from its descriptor's constant table plus any later updates.
//
// An Instance references its Descriptor without owning it. It is not safe
// for concurrent use.
type Instance struct {
	desc *Descriptor

	boolValue uint16
	boolMask  uint16
	intValues [MaxIntUniforms]uint32
	intMask   uint8
	floats    []Float24Uniform

	destroyed bool
}

// releaseUniforms drops the float uniform storage of si.
var releaseUniforms = func(si *Instance) {
	si.floats = nil
}

// NewInstance creates an Instance for d and loads its constant table.
// It returns ErrInvalidArgument if d is nil and ErrAllocation if the
// float constants do not fit the uniform register file.
func NewInstance(d *Descriptor) (*Instance, error) {
	if d == nil {
		return nil, fmt.Errorf("new instance: nil descriptor: %w", ErrInvalidArgument)
	}

	si := &Instance{desc: d}
	if err := loadConstants(si, d.Constants); err != nil {
		Logger().Warn("pica: constant table rejected", "stage", d.Stage, "error", err)
		return nil, fmt.Errorf("new instance: %w", err)
	}
	return si, nil
}

// Descriptor returns the descriptor the instance was built from.
func (si *Instance) Descriptor() *Descriptor {
	return si.desc
}

// Stage returns the stage of the instance's descriptor.
func (si *Instance) Stage() Stage {
	return si.desc.Stage
}

// SetBool sets boolean uniform id (0-15).
func (si *Instance) SetBool(id int, value bool) error {
	if id < 0 || id >= MaxBoolUniforms {
		return fmt.Errorf("set bool %d: %w", id, ErrOutOfRange)
	}
	bit := uint16(1) << id
	si.boolValue &^= bit
	if value {
		si.boolValue |= bit
	}
	si.boolMask |= bit
	return nil
}

// Bool returns boolean uniform id (0-15).
func (si *Instance) Bool(id int) (bool, error) {
	if id < 0 || id >= MaxBoolUniforms {
		return false, fmt.Errorf("get bool %d: %w", id, ErrOutOfRange)
	}
	return si.boolValue>>id&1 != 0, nil
}

// BoolUniforms returns the boolean uniform values and the mask of
// explicitly set bits.
func (si *Instance) BoolUniforms() (value, mask uint16) {
	return si.boolValue, si.boolMask
}

// SetInt sets integer uniform id (0-3) to a packed word, see IntUniform.
func (si *Instance) SetInt(id int, value uint32) error {
	if id < 0 || id >= MaxIntUniforms {
		return fmt.Errorf("set int %d: %w", id, ErrOutOfRange)
	}
	si.intValues[id] = value
	si.intMask |= 1 << id
	return nil
}

// IntUniforms returns the four integer uniform words and the mask of
// explicitly set registers.
func (si *Instance) IntUniforms() ([MaxIntUniforms]uint32, uint8) {
	return si.intValues, si.intMask
}

// IntUniform packs a loop-control integer uniform: x is the iteration
// count minus one, y the initial loop register value, z the increment.
func IntUniform(x, y, z uint8) uint32 {
	return uint32(x) | uint32(y)<<8 | uint32(z)<<16
}

// SetFloat sets float uniform register id, replacing an earlier value for
// the same register.
func (si *Instance) SetFloat(id uint8, v f32.Vec4) error {
	if int(id) >= MaxFloatUniforms {
		return fmt.Errorf("set float %d: %w", id, ErrOutOfRange)
	}
	u := Float24Uniform{ID: uint32(id), Data: PackFloat24(Float24Vec(v))}
	for i := range si.floats {
		if si.floats[i].ID == u.ID {
			si.floats[i] = u
			return nil
		}
	}
	if len(si.floats) >= MaxFloatUniforms {
		return fmt.Errorf("set float %d: %w", id, ErrAllocation)
	}
	si.floats = append(si.floats, u)
	return nil
}

// Float24Uniforms returns the float uniforms in upload order.
func (si *Instance) Float24Uniforms() []Float24Uniform {
	return si.floats
}

// UniformRegister looks up a uniform by name in the descriptor's symbol
// table. See Descriptor.UniformRegister.
func (si *Instance) UniformRegister(name string) (int8, error) {
	return si.desc.UniformRegister(name)
}

// Destroy releases the float uniform storage. The descriptor is not
// touched. Calling Destroy more than once has no effect.
func (si *Instance) Destroy() {
	if si == nil || si.destroyed {
		return
	}
	releaseUniforms(si)
	si.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (si *Instance) Destroyed() bool {
	return si.destroyed
}
