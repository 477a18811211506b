package pica

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// float24 layout: 1 sign bit, 7 exponent bits (bias 63), 16 mantissa bits.
const (
	f24Mask     = 0xFFFFFF
	f24Sign     = 1 << 23
	f24ExpShift = 16
	f24ExpMax   = 0x7F
	f24Bias     = 63
	f32Bias     = 127
)

// Float24 converts f to the GPU's 24-bit float format.
// Values too small for the format flush to signed zero and values too
// large saturate to signed infinity.
func Float24(f float32) uint32 {
	bits := math.Float32bits(f)
	sign := (bits >> 31) << 23

	switch {
	case math32.IsNaN(f):
		return f24Mask
	case math32.IsInf(f, 0):
		return sign | f24ExpMax<<f24ExpShift
	case f == 0:
		return sign
	}

	exp := int((bits>>23)&0xFF) - f32Bias + f24Bias
	switch {
	case exp <= 0:
		return sign
	case exp >= f24ExpMax:
		return sign | f24ExpMax<<f24ExpShift
	}
	return sign | uint32(exp)<<f24ExpShift | (bits>>7)&0xFFFF
}

// Float32 converts a 24-bit float back to float32. Only the low 24 bits of
// v are used.
func Float32(v uint32) float32 {
	neg := v&f24Sign != 0
	exp := (v >> f24ExpShift) & f24ExpMax
	man := v & 0xFFFF

	switch exp {
	case 0:
		if neg {
			return math32.Copysign(0, -1)
		}
		return 0
	case f24ExpMax:
		if man != 0 {
			return math32.NaN()
		}
		if neg {
			return math32.Inf(-1)
		}
		return math32.Inf(1)
	}

	bits := (exp-f24Bias+f32Bias)<<23 | man<<7
	if neg {
		bits |= 1 << 31
	}
	return math.Float32frombits(bits)
}

// Float24Vec converts a float32 vector into four 24-bit lanes (x, y, z, w),
// the layout used by constant table entries.
func Float24Vec(v f32.Vec4) [4]uint32 {
	return [4]uint32{Float24(v[0]), Float24(v[1]), Float24(v[2]), Float24(v[3])}
}

// PackFloat24 packs four 24-bit lanes (x, y, z, w) into the three words the
// float uniform data port expects. The words are ordered from the w end:
//
//	out[0] = w<<8  | z>>16
//	out[1] = z<<16 | y>>8
//	out[2] = y<<24 | x
func PackFloat24(lanes [4]uint32) [3]uint32 {
	x := lanes[0] & f24Mask
	y := lanes[1] & f24Mask
	z := lanes[2] & f24Mask
	w := lanes[3] & f24Mask
	return [3]uint32{
		w<<8 | z>>16,
		z<<16 | y>>8,
		y<<24 | x,
	}
}

// UnpackFloat24 is the inverse of PackFloat24.
func UnpackFloat24(words [3]uint32) [4]uint32 {
	return [4]uint32{
		words[2] & f24Mask,
		words[2]>>24 | (words[1]&0xFFFF)<<8,
		words[1]>>16 | (words[0]&0xFF)<<16,
		words[0] >> 8,
	}
}
