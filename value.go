package simd128

import (
	"encoding/binary"
	"math"
)

// The seven vector kinds are fixed-size Go arrays, so they are plain
// immutable values: every operation returns a fresh vector and operands
// are never aliased into results.

// Float32x4 is a 128-bit vector of four 32-bit floats.
type Float32x4 [4]float32

// Int32x4 is a 128-bit vector of four signed 32-bit integers.
type Int32x4 [4]int32

// Bool32x4 is a four-lane boolean vector, the mask kind for the x4 layouts.
type Bool32x4 [4]bool

// Int16x8 is a 128-bit vector of eight signed 16-bit integers.
type Int16x8 [8]int16

// Bool16x8 is an eight-lane boolean vector, the mask kind for Int16x8.
type Bool16x8 [8]bool

// Int8x16 is a 128-bit vector of sixteen signed 8-bit integers.
type Int8x16 [16]int8

// Bool8x16 is a sixteen-lane boolean vector, the mask kind for Int8x16.
type Bool8x16 [16]bool

// Value is the kind-tagged view of a vector used at the host boundary,
// where operands arrive untyped. Bytes returns the little-endian
// 128-bit layout; boolean lanes serialize as all-ones or all-zero lane
// slots.
type Value interface {
	Kind() Kind
	Bytes() [16]byte
}

func (Float32x4) Kind() Kind { return KindFloat32x4 }
func (Int32x4) Kind() Kind   { return KindInt32x4 }
func (Bool32x4) Kind() Kind  { return KindBool32x4 }
func (Int16x8) Kind() Kind   { return KindInt16x8 }
func (Bool16x8) Kind() Kind  { return KindBool16x8 }
func (Int8x16) Kind() Kind   { return KindInt8x16 }
func (Bool8x16) Kind() Kind  { return KindBool8x16 }

func (a Float32x4) Bytes() [16]byte {
	var b [16]byte
	for i, x := range a {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(x))
	}
	return b
}

func (a Int32x4) Bytes() [16]byte {
	var b [16]byte
	for i, x := range a {
		binary.LittleEndian.PutUint32(b[i*4:], uint32(x))
	}
	return b
}

func (a Int16x8) Bytes() [16]byte {
	var b [16]byte
	for i, x := range a {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(x))
	}
	return b
}

func (a Int8x16) Bytes() [16]byte {
	var b [16]byte
	for i, x := range a {
		b[i] = byte(x)
	}
	return b
}

func (a Bool32x4) Bytes() [16]byte {
	var b [16]byte
	for i, x := range a {
		if x {
			binary.LittleEndian.PutUint32(b[i*4:], ^uint32(0))
		}
	}
	return b
}

func (a Bool16x8) Bytes() [16]byte {
	var b [16]byte
	for i, x := range a {
		if x {
			binary.LittleEndian.PutUint16(b[i*2:], ^uint16(0))
		}
	}
	return b
}

func (a Bool8x16) Bytes() [16]byte {
	var b [16]byte
	for i, x := range a {
		if x {
			b[i] = 0xFF
		}
	}
	return b
}

func float32x4FromBytes(b [16]byte) Float32x4 {
	var v Float32x4
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}

func int32x4FromBytes(b [16]byte) Int32x4 {
	var v Int32x4
	for i := range v {
		v[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}

func int16x8FromBytes(b [16]byte) Int16x8 {
	var v Int16x8
	for i := range v {
		v[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return v
}

func int8x16FromBytes(b [16]byte) Int8x16 {
	var v Int8x16
	for i := range v {
		v[i] = int8(b[i])
	}
	return v
}

func kindName(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

// Lane-wise kernels shared by the per-kind methods. Three array widths
// keep these monomorphic per call site while the lane math stays in one
// place.

func map4[T any](a [4]T, f func(T) T) [4]T {
	var r [4]T
	for i := range a {
		r[i] = f(a[i])
	}
	return r
}

func map8[T any](a [8]T, f func(T) T) [8]T {
	var r [8]T
	for i := range a {
		r[i] = f(a[i])
	}
	return r
}

func map16[T any](a [16]T, f func(T) T) [16]T {
	var r [16]T
	for i := range a {
		r[i] = f(a[i])
	}
	return r
}

func zip4[T any](a, b [4]T, f func(T, T) T) [4]T {
	var r [4]T
	for i := range a {
		r[i] = f(a[i], b[i])
	}
	return r
}

func zip8[T any](a, b [8]T, f func(T, T) T) [8]T {
	var r [8]T
	for i := range a {
		r[i] = f(a[i], b[i])
	}
	return r
}

func zip16[T any](a, b [16]T, f func(T, T) T) [16]T {
	var r [16]T
	for i := range a {
		r[i] = f(a[i], b[i])
	}
	return r
}

func cmp4[T any](a, b [4]T, f func(T, T) bool) [4]bool {
	var r [4]bool
	for i := range a {
		r[i] = f(a[i], b[i])
	}
	return r
}

func cmp8[T any](a, b [8]T, f func(T, T) bool) [8]bool {
	var r [8]bool
	for i := range a {
		r[i] = f(a[i], b[i])
	}
	return r
}

func cmp16[T any](a, b [16]T, f func(T, T) bool) [16]bool {
	var r [16]bool
	for i := range a {
		r[i] = f(a[i], b[i])
	}
	return r
}
