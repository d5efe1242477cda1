package simd128

import (
	"math"

	"github.com/wippyai/simd128/internal/lanes"
)

// Float32x4 arithmetic. All lane math is single-precision IEEE-754;
// NaN, infinities and signed zeros are ordinary results.

func (a Float32x4) Neg() Float32x4 {
	return map4(a, func(x float32) float32 { return -x })
}

func (a Float32x4) Abs() Float32x4 {
	return map4(a, func(x float32) float32 { return float32(math.Abs(float64(x))) })
}

func (a Float32x4) Sqrt() Float32x4 {
	return map4(a, func(x float32) float32 { return float32(math.Sqrt(float64(x))) })
}

// RecipApprox computes 1/x per lane. Unlike a hardware reciprocal
// estimate it is exact single-precision division.
func (a Float32x4) RecipApprox() Float32x4 {
	return map4(a, func(x float32) float32 { return 1 / x })
}

// RecipSqrtApprox computes 1/sqrt(x) per lane, again without any
// modeled approximation error.
func (a Float32x4) RecipSqrtApprox() Float32x4 {
	return map4(a, func(x float32) float32 { return 1 / float32(math.Sqrt(float64(x))) })
}

func (a Float32x4) Add(b Float32x4) Float32x4 {
	return zip4(a, b, func(x, y float32) float32 { return x + y })
}

func (a Float32x4) Sub(b Float32x4) Float32x4 {
	return zip4(a, b, func(x, y float32) float32 { return x - y })
}

func (a Float32x4) Mul(b Float32x4) Float32x4 {
	return zip4(a, b, func(x, y float32) float32 { return x * y })
}

func (a Float32x4) Div(b Float32x4) Float32x4 {
	return zip4(a, b, func(x, y float32) float32 { return x / y })
}

// Min returns the lane-wise minimum with the sign-bit tie-break on
// equal operands (so -0 beats +0) and NaN when the lanes are unordered.
func (a Float32x4) Min(b Float32x4) Float32x4 {
	return zip4(a, b, lanes.MinFloat)
}

// Max returns the lane-wise maximum with the sign-bit tie-break on
// equal operands (so +0 beats -0) and NaN when the lanes are unordered.
func (a Float32x4) Max(b Float32x4) Float32x4 {
	return zip4(a, b, lanes.MaxFloat)
}

// MinNumber is Min with NaN suppressed: a NaN lane yields the other
// operand's lane.
func (a Float32x4) MinNumber(b Float32x4) Float32x4 {
	return zip4(a, b, lanes.MinNumber)
}

// MaxNumber is Max with NaN suppressed: a NaN lane yields the other
// operand's lane.
func (a Float32x4) MaxNumber(b Float32x4) Float32x4 {
	return zip4(a, b, lanes.MaxNumber)
}

// Integer arithmetic wraps with two's-complement truncation; Abs on the
// minimum representable lane wraps to itself.

func (a Int32x4) Neg() Int32x4 {
	return map4(a, func(x int32) int32 { return -x })
}

func (a Int32x4) Abs() Int32x4 {
	return map4(a, absInt[int32])
}

func (a Int32x4) Add(b Int32x4) Int32x4 {
	return zip4(a, b, func(x, y int32) int32 { return x + y })
}

func (a Int32x4) Sub(b Int32x4) Int32x4 {
	return zip4(a, b, func(x, y int32) int32 { return x - y })
}

func (a Int32x4) Mul(b Int32x4) Int32x4 {
	return zip4(a, b, func(x, y int32) int32 { return x * y })
}

func (a Int16x8) Neg() Int16x8 {
	return map8(a, func(x int16) int16 { return -x })
}

func (a Int16x8) Abs() Int16x8 {
	return map8(a, absInt[int16])
}

func (a Int16x8) Add(b Int16x8) Int16x8 {
	return zip8(a, b, func(x, y int16) int16 { return x + y })
}

func (a Int16x8) Sub(b Int16x8) Int16x8 {
	return zip8(a, b, func(x, y int16) int16 { return x - y })
}

func (a Int16x8) Mul(b Int16x8) Int16x8 {
	return zip8(a, b, func(x, y int16) int16 { return x * y })
}

func (a Int8x16) Neg() Int8x16 {
	return map16(a, func(x int8) int8 { return -x })
}

func (a Int8x16) Abs() Int8x16 {
	return map16(a, absInt[int8])
}

func (a Int8x16) Add(b Int8x16) Int8x16 {
	return zip16(a, b, func(x, y int8) int8 { return x + y })
}

func (a Int8x16) Sub(b Int8x16) Int8x16 {
	return zip16(a, b, func(x, y int8) int8 { return x - y })
}

func (a Int8x16) Mul(b Int8x16) Int8x16 {
	return zip16(a, b, func(x, y int8) int8 { return x * y })
}

func absInt[T lanes.Int](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Saturating arithmetic exists only on the narrow integer kinds.

func (a Int16x8) AddSaturate(b Int16x8) Int16x8 {
	return zip8(a, b, lanes.AddSat[int16])
}

func (a Int16x8) SubSaturate(b Int16x8) Int16x8 {
	return zip8(a, b, lanes.SubSat[int16])
}

func (a Int8x16) AddSaturate(b Int8x16) Int8x16 {
	return zip16(a, b, lanes.AddSat[int8])
}

func (a Int8x16) SubSaturate(b Int8x16) Int8x16 {
	return zip16(a, b, lanes.SubSat[int8])
}

// Shifts take a signed amount and reinterpret it as unsigned, so a
// negative input becomes a huge shift: left and logical-right produce
// all-zero vectors, arithmetic-right clamps to laneBits-1.

func (a Int32x4) ShiftLeft(shift int32) Int32x4 {
	s := uint32(shift)
	return map4(a, func(x int32) int32 { return lanes.Shl(x, s, 32) })
}

func (a Int32x4) ShiftRightLogical(shift int32) Int32x4 {
	s := uint32(shift)
	return map4(a, func(x int32) int32 { return lanes.Shr(x, s, 32) })
}

func (a Int32x4) ShiftRightArithmetic(shift int32) Int32x4 {
	s := uint32(shift)
	return map4(a, func(x int32) int32 { return lanes.Sar(x, s, 32) })
}

func (a Int16x8) ShiftLeft(shift int32) Int16x8 {
	s := uint32(shift)
	return map8(a, func(x int16) int16 { return lanes.Shl(x, s, 16) })
}

func (a Int16x8) ShiftRightLogical(shift int32) Int16x8 {
	s := uint32(shift)
	return map8(a, func(x int16) int16 { return lanes.Shr(x, s, 16) })
}

func (a Int16x8) ShiftRightArithmetic(shift int32) Int16x8 {
	s := uint32(shift)
	return map8(a, func(x int16) int16 { return lanes.Sar(x, s, 16) })
}

func (a Int8x16) ShiftLeft(shift int32) Int8x16 {
	s := uint32(shift)
	return map16(a, func(x int8) int8 { return lanes.Shl(x, s, 8) })
}

func (a Int8x16) ShiftRightLogical(shift int32) Int8x16 {
	s := uint32(shift)
	return map16(a, func(x int8) int8 { return lanes.Shr(x, s, 8) })
}

func (a Int8x16) ShiftRightArithmetic(shift int32) Int8x16 {
	s := uint32(shift)
	return map16(a, func(x int8) int8 { return lanes.Sar(x, s, 8) })
}

// Bitwise ops on integer kinds, logical ops on boolean kinds. Xor on
// booleans is lane inequality.

func (a Int32x4) And(b Int32x4) Int32x4 {
	return zip4(a, b, func(x, y int32) int32 { return x & y })
}

func (a Int32x4) Or(b Int32x4) Int32x4 {
	return zip4(a, b, func(x, y int32) int32 { return x | y })
}

func (a Int32x4) Xor(b Int32x4) Int32x4 {
	return zip4(a, b, func(x, y int32) int32 { return x ^ y })
}

func (a Int32x4) Not() Int32x4 {
	return map4(a, func(x int32) int32 { return ^x })
}

func (a Int16x8) And(b Int16x8) Int16x8 {
	return zip8(a, b, func(x, y int16) int16 { return x & y })
}

func (a Int16x8) Or(b Int16x8) Int16x8 {
	return zip8(a, b, func(x, y int16) int16 { return x | y })
}

func (a Int16x8) Xor(b Int16x8) Int16x8 {
	return zip8(a, b, func(x, y int16) int16 { return x ^ y })
}

func (a Int16x8) Not() Int16x8 {
	return map8(a, func(x int16) int16 { return ^x })
}

func (a Int8x16) And(b Int8x16) Int8x16 {
	return zip16(a, b, func(x, y int8) int8 { return x & y })
}

func (a Int8x16) Or(b Int8x16) Int8x16 {
	return zip16(a, b, func(x, y int8) int8 { return x | y })
}

func (a Int8x16) Xor(b Int8x16) Int8x16 {
	return zip16(a, b, func(x, y int8) int8 { return x ^ y })
}

func (a Int8x16) Not() Int8x16 {
	return map16(a, func(x int8) int8 { return ^x })
}

func (a Bool32x4) And(b Bool32x4) Bool32x4 {
	return zip4(a, b, func(x, y bool) bool { return x && y })
}

func (a Bool32x4) Or(b Bool32x4) Bool32x4 {
	return zip4(a, b, func(x, y bool) bool { return x || y })
}

func (a Bool32x4) Xor(b Bool32x4) Bool32x4 {
	return zip4(a, b, func(x, y bool) bool { return x != y })
}

func (a Bool32x4) Not() Bool32x4 {
	return map4(a, func(x bool) bool { return !x })
}

func (a Bool16x8) And(b Bool16x8) Bool16x8 {
	return zip8(a, b, func(x, y bool) bool { return x && y })
}

func (a Bool16x8) Or(b Bool16x8) Bool16x8 {
	return zip8(a, b, func(x, y bool) bool { return x || y })
}

func (a Bool16x8) Xor(b Bool16x8) Bool16x8 {
	return zip8(a, b, func(x, y bool) bool { return x != y })
}

func (a Bool16x8) Not() Bool16x8 {
	return map8(a, func(x bool) bool { return !x })
}

func (a Bool8x16) And(b Bool8x16) Bool8x16 {
	return zip16(a, b, func(x, y bool) bool { return x && y })
}

func (a Bool8x16) Or(b Bool8x16) Bool8x16 {
	return zip16(a, b, func(x, y bool) bool { return x || y })
}

func (a Bool8x16) Xor(b Bool8x16) Bool8x16 {
	return zip16(a, b, func(x, y bool) bool { return x != y })
}

func (a Bool8x16) Not() Bool8x16 {
	return map16(a, func(x bool) bool { return !x })
}
