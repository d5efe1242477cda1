package simd128

import (
	"github.com/wippyai/simd128/internal/lanes"
)

// Relational ops compare lane-wise and produce the boolean counterpart
// kind. Float lanes follow IEEE-754: every comparison against NaN is
// false except NotEqual, which is true.

func (a Float32x4) Equal(b Float32x4) Bool32x4 {
	return cmp4(a, b, func(x, y float32) bool { return x == y })
}

func (a Float32x4) NotEqual(b Float32x4) Bool32x4 {
	return cmp4(a, b, func(x, y float32) bool { return x != y })
}

func (a Float32x4) LessThan(b Float32x4) Bool32x4 {
	return cmp4(a, b, func(x, y float32) bool { return x < y })
}

func (a Float32x4) LessThanOrEqual(b Float32x4) Bool32x4 {
	return cmp4(a, b, func(x, y float32) bool { return x <= y })
}

func (a Float32x4) GreaterThan(b Float32x4) Bool32x4 {
	return cmp4(a, b, func(x, y float32) bool { return x > y })
}

func (a Float32x4) GreaterThanOrEqual(b Float32x4) Bool32x4 {
	return cmp4(a, b, func(x, y float32) bool { return x >= y })
}

func (a Int32x4) Equal(b Int32x4) Bool32x4 {
	return cmp4(a, b, func(x, y int32) bool { return x == y })
}

func (a Int32x4) NotEqual(b Int32x4) Bool32x4 {
	return cmp4(a, b, func(x, y int32) bool { return x != y })
}

func (a Int32x4) LessThan(b Int32x4) Bool32x4 {
	return cmp4(a, b, func(x, y int32) bool { return x < y })
}

func (a Int32x4) LessThanOrEqual(b Int32x4) Bool32x4 {
	return cmp4(a, b, func(x, y int32) bool { return x <= y })
}

func (a Int32x4) GreaterThan(b Int32x4) Bool32x4 {
	return cmp4(a, b, func(x, y int32) bool { return x > y })
}

func (a Int32x4) GreaterThanOrEqual(b Int32x4) Bool32x4 {
	return cmp4(a, b, func(x, y int32) bool { return x >= y })
}

func (a Int16x8) Equal(b Int16x8) Bool16x8 {
	return cmp8(a, b, func(x, y int16) bool { return x == y })
}

func (a Int16x8) NotEqual(b Int16x8) Bool16x8 {
	return cmp8(a, b, func(x, y int16) bool { return x != y })
}

func (a Int16x8) LessThan(b Int16x8) Bool16x8 {
	return cmp8(a, b, func(x, y int16) bool { return x < y })
}

func (a Int16x8) LessThanOrEqual(b Int16x8) Bool16x8 {
	return cmp8(a, b, func(x, y int16) bool { return x <= y })
}

func (a Int16x8) GreaterThan(b Int16x8) Bool16x8 {
	return cmp8(a, b, func(x, y int16) bool { return x > y })
}

func (a Int16x8) GreaterThanOrEqual(b Int16x8) Bool16x8 {
	return cmp8(a, b, func(x, y int16) bool { return x >= y })
}

func (a Int8x16) Equal(b Int8x16) Bool8x16 {
	return cmp16(a, b, func(x, y int8) bool { return x == y })
}

func (a Int8x16) NotEqual(b Int8x16) Bool8x16 {
	return cmp16(a, b, func(x, y int8) bool { return x != y })
}

func (a Int8x16) LessThan(b Int8x16) Bool8x16 {
	return cmp16(a, b, func(x, y int8) bool { return x < y })
}

func (a Int8x16) LessThanOrEqual(b Int8x16) Bool8x16 {
	return cmp16(a, b, func(x, y int8) bool { return x <= y })
}

func (a Int8x16) GreaterThan(b Int8x16) Bool8x16 {
	return cmp16(a, b, func(x, y int8) bool { return x > y })
}

func (a Int8x16) GreaterThanOrEqual(b Int8x16) Bool8x16 {
	return cmp16(a, b, func(x, y int8) bool { return x >= y })
}

// Equality is also defined lane-wise over the boolean kinds.

func (a Bool32x4) Equal(b Bool32x4) Bool32x4 {
	return cmp4(a, b, func(x, y bool) bool { return x == y })
}

func (a Bool32x4) NotEqual(b Bool32x4) Bool32x4 {
	return cmp4(a, b, func(x, y bool) bool { return x != y })
}

func (a Bool16x8) Equal(b Bool16x8) Bool16x8 {
	return cmp8(a, b, func(x, y bool) bool { return x == y })
}

func (a Bool16x8) NotEqual(b Bool16x8) Bool16x8 {
	return cmp8(a, b, func(x, y bool) bool { return x != y })
}

func (a Bool8x16) Equal(b Bool8x16) Bool8x16 {
	return cmp16(a, b, func(x, y bool) bool { return x == y })
}

func (a Bool8x16) NotEqual(b Bool8x16) Bool8x16 {
	return cmp16(a, b, func(x, y bool) bool { return x != y })
}

// Whole-vector predicates. Three distinct equalities: raw bit equality,
// SameValue (NaN self-equal, zeros distinct) and SameValueZero (NaN
// self-equal, zeros equal). Kind mismatch is false, not an error.

// BitwiseEqual reports whether a and b are the same kind with identical
// 128-bit representations.
func BitwiseEqual(a, b Value) bool {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	return a.Bytes() == b.Bytes()
}

// SameValue applies float32 SameValue lane-wise for Float32x4 operands
// and falls back to bit equality for every other kind.
func SameValue(a, b Value) bool {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	if fa, ok := a.(Float32x4); ok {
		fb := b.(Float32x4)
		for i := range fa {
			if !lanes.SameValue(fa[i], fb[i]) {
				return false
			}
		}
		return true
	}
	return a.Bytes() == b.Bytes()
}

// SameValueZero is SameValue with +0 and -0 identified.
func SameValueZero(a, b Value) bool {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	if fa, ok := a.(Float32x4); ok {
		fb := b.(Float32x4)
		for i := range fa {
			if !lanes.SameValueZero(fa[i], fb[i]) {
				return false
			}
		}
		return true
	}
	return a.Bytes() == b.Bytes()
}

// AnyTrue reports whether at least one lane is set.

func (a Bool32x4) AnyTrue() bool { return anyTrue(a[:]) }
func (a Bool16x8) AnyTrue() bool { return anyTrue(a[:]) }
func (a Bool8x16) AnyTrue() bool { return anyTrue(a[:]) }

// AllTrue reports whether every lane is set.

func (a Bool32x4) AllTrue() bool { return allTrue(a[:]) }
func (a Bool16x8) AllTrue() bool { return allTrue(a[:]) }
func (a Bool8x16) AllTrue() bool { return allTrue(a[:]) }

func anyTrue(xs []bool) bool {
	for _, x := range xs {
		if x {
			return true
		}
	}
	return false
}

func allTrue(xs []bool) bool {
	for _, x := range xs {
		if !x {
			return false
		}
	}
	return true
}
