package lanes

import "math"

// SmallInt covers the lane types with saturating arithmetic.
type SmallInt interface {
	~int8 | ~int16
}

// Int covers the signed integer lane types.
type Int interface {
	~int8 | ~int16 | ~int32
}

// ToInt32 converts a host double to a 32-bit lane using truncation
// toward zero followed by wrapping modulo 2^32. NaN and infinities map
// to zero. This matches the ECMA-style numeric conversion the host uses
// for integer scalars.
func ToInt32(d float64) int32 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	d = math.Trunc(d)
	d = math.Mod(d, 1<<32) // |d| < 2^32, sign preserved, safe for int64
	return int32(uint32(int64(d)))
}

// ToInt16 converts a host double via ToInt32 then narrowing truncation.
func ToInt16(d float64) int16 {
	return int16(ToInt32(d))
}

// ToInt8 converts a host double via ToInt32 then narrowing truncation.
func ToInt8(d float64) int8 {
	return int8(ToInt32(d))
}

// ToFloat32 converts a host double with IEEE-754 round-to-nearest.
func ToFloat32(d float64) float32 {
	return float32(d)
}

func limits[T SmallInt]() (minVal, maxVal int32) {
	var t T
	switch any(t).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	default:
		return math.MinInt16, math.MaxInt16
	}
}

// AddSat adds in a 32-bit intermediate and clamps to the lane range.
func AddSat[T SmallInt](a, b T) T {
	minVal, maxVal := limits[T]()
	r := int32(a) + int32(b)
	if r > maxVal {
		return T(maxVal)
	}
	if r < minVal {
		return T(minVal)
	}
	return T(r)
}

// SubSat subtracts in a 32-bit intermediate and clamps to the lane range.
func SubSat[T SmallInt](a, b T) T {
	minVal, maxVal := limits[T]()
	r := int32(a) - int32(b)
	if r > maxVal {
		return T(maxVal)
	}
	if r < minVal {
		return T(minVal)
	}
	return T(r)
}

// MinFloat returns the smaller operand, breaking the a == b tie by sign
// bit so that -0 beats +0. A NaN on either side yields NaN.
func MinFloat(a, b float32) float32 {
	if a < b {
		return a
	}
	if a > b {
		return b
	}
	if a == b {
		if math.Signbit(float64(a)) {
			return a
		}
		return b
	}
	return float32(math.NaN())
}

// MaxFloat returns the larger operand, breaking the a == b tie by sign
// bit so that +0 beats -0. A NaN on either side yields NaN.
func MaxFloat(a, b float32) float32 {
	if a > b {
		return a
	}
	if a < b {
		return b
	}
	if a == b {
		if math.Signbit(float64(b)) {
			return a
		}
		return b
	}
	return float32(math.NaN())
}

// MinNumber is MinFloat with NaN suppressed: a NaN operand yields the
// other operand.
func MinNumber(a, b float32) float32 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	return MinFloat(a, b)
}

// MaxNumber is MaxFloat with NaN suppressed: a NaN operand yields the
// other operand.
func MaxNumber(a, b float32) float32 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	return MaxFloat(a, b)
}

// CanCastInt32 reports whether a float32 lane is strictly inside the
// int32 range. Boundary values, NaN and infinities are all rejected;
// the largest accepted magnitudes are the float32 neighbors of 2^31.
func CanCastInt32(f float32) bool {
	return float64(f) > math.MinInt32 && float64(f) < math.MaxInt32
}

// Shl left-shifts a lane, producing zero when the shift amount reaches
// the lane width.
func Shl[T Int](v T, shift, width uint32) T {
	if shift >= width {
		return 0
	}
	return v << shift
}

// Shr right-shifts the unsigned reinterpretation of a lane, producing
// zero when the shift amount reaches the lane width.
func Shr[T Int](v T, shift, width uint32) T {
	if shift >= width {
		return 0
	}
	u := uint64(v) & (1<<width - 1)
	return T(u >> shift)
}

// Sar right-shifts a lane with sign extension; the shift amount is
// clamped to width-1 instead of degenerating to zero.
func Sar[T Int](v T, shift, width uint32) T {
	if shift >= width {
		shift = width - 1
	}
	return v >> shift
}

// SameValue reports float32 SameValue equality: NaN equals NaN and the
// two zeros are distinct.
func SameValue(a, b float32) bool {
	if a != a {
		return b != b
	}
	if a == b {
		return math.Signbit(float64(a)) == math.Signbit(float64(b))
	}
	return false
}

// SameValueZero is SameValue except +0 and -0 are equal.
func SameValueZero(a, b float32) bool {
	if a != a {
		return b != b
	}
	return a == b
}
