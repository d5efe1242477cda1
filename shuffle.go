package simd128

import (
	"github.com/wippyai/simd128/errors"
)

// Swizzle permutes lanes within one vector: output lane i takes input
// lane idx[i]. Shuffle selects from the concatenated lane space of two
// vectors, with indices in [0, 2*laneCount) and the second half
// addressing b. Index arity is fixed per kind by the array parameter.

func swizzle4[T any](a [4]T, idx [4]int) ([4]T, error) {
	var r [4]T
	for i, j := range idx {
		if j < 0 || j >= 4 {
			return [4]T{}, errors.IndexOutOfBounds(errors.PhasePermute, i, j, 4)
		}
		r[i] = a[j]
	}
	return r, nil
}

func swizzle8[T any](a [8]T, idx [8]int) ([8]T, error) {
	var r [8]T
	for i, j := range idx {
		if j < 0 || j >= 8 {
			return [8]T{}, errors.IndexOutOfBounds(errors.PhasePermute, i, j, 8)
		}
		r[i] = a[j]
	}
	return r, nil
}

func swizzle16[T any](a [16]T, idx [16]int) ([16]T, error) {
	var r [16]T
	for i, j := range idx {
		if j < 0 || j >= 16 {
			return [16]T{}, errors.IndexOutOfBounds(errors.PhasePermute, i, j, 16)
		}
		r[i] = a[j]
	}
	return r, nil
}

func shuffle4[T any](a, b [4]T, idx [4]int) ([4]T, error) {
	var r [4]T
	for i, j := range idx {
		switch {
		case j < 0 || j >= 8:
			return [4]T{}, errors.IndexOutOfBounds(errors.PhasePermute, i, j, 8)
		case j < 4:
			r[i] = a[j]
		default:
			r[i] = b[j-4]
		}
	}
	return r, nil
}

func shuffle8[T any](a, b [8]T, idx [8]int) ([8]T, error) {
	var r [8]T
	for i, j := range idx {
		switch {
		case j < 0 || j >= 16:
			return [8]T{}, errors.IndexOutOfBounds(errors.PhasePermute, i, j, 16)
		case j < 8:
			r[i] = a[j]
		default:
			r[i] = b[j-8]
		}
	}
	return r, nil
}

func shuffle16[T any](a, b [16]T, idx [16]int) ([16]T, error) {
	var r [16]T
	for i, j := range idx {
		switch {
		case j < 0 || j >= 32:
			return [16]T{}, errors.IndexOutOfBounds(errors.PhasePermute, i, j, 32)
		case j < 16:
			r[i] = a[j]
		default:
			r[i] = b[j-16]
		}
	}
	return r, nil
}

func (a Float32x4) Swizzle(idx [4]int) (Float32x4, error) { return swizzle4(a, idx) }
func (a Int32x4) Swizzle(idx [4]int) (Int32x4, error)     { return swizzle4(a, idx) }
func (a Bool32x4) Swizzle(idx [4]int) (Bool32x4, error)   { return swizzle4(a, idx) }
func (a Int16x8) Swizzle(idx [8]int) (Int16x8, error)     { return swizzle8(a, idx) }
func (a Bool16x8) Swizzle(idx [8]int) (Bool16x8, error)   { return swizzle8(a, idx) }
func (a Int8x16) Swizzle(idx [16]int) (Int8x16, error)    { return swizzle16(a, idx) }
func (a Bool8x16) Swizzle(idx [16]int) (Bool8x16, error)  { return swizzle16(a, idx) }

func (a Float32x4) Shuffle(b Float32x4, idx [4]int) (Float32x4, error) {
	return shuffle4(a, b, idx)
}

func (a Int32x4) Shuffle(b Int32x4, idx [4]int) (Int32x4, error) {
	return shuffle4(a, b, idx)
}

func (a Bool32x4) Shuffle(b Bool32x4, idx [4]int) (Bool32x4, error) {
	return shuffle4(a, b, idx)
}

func (a Int16x8) Shuffle(b Int16x8, idx [8]int) (Int16x8, error) {
	return shuffle8(a, b, idx)
}

func (a Bool16x8) Shuffle(b Bool16x8, idx [8]int) (Bool16x8, error) {
	return shuffle8(a, b, idx)
}

func (a Int8x16) Shuffle(b Int8x16, idx [16]int) (Int8x16, error) {
	return shuffle16(a, b, idx)
}

func (a Bool8x16) Shuffle(b Bool8x16, idx [16]int) (Bool8x16, error) {
	return shuffle16(a, b, idx)
}

// Select picks lane-wise between a and b under a boolean mask of the
// matching geometry: true takes a's lane, false takes b's.

func SelectFloat32x4(mask Bool32x4, a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		if mask[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func SelectInt32x4(mask Bool32x4, a, b Int32x4) Int32x4 {
	var r Int32x4
	for i := range r {
		if mask[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func SelectInt16x8(mask Bool16x8, a, b Int16x8) Int16x8 {
	var r Int16x8
	for i := range r {
		if mask[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func SelectInt8x16(mask Bool8x16, a, b Int8x16) Int8x16 {
	var r Int8x16
	for i := range r {
		if mask[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}
