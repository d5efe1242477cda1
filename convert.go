package simd128

import (
	"github.com/wippyai/simd128/errors"
	"github.com/wippyai/simd128/internal/lanes"
)

// Value-preserving casts exist only between the two four-lane numeric
// kinds. Int to float always succeeds (round-to-nearest); float to int
// requires every lane strictly inside the int32 range and fails the
// whole operation otherwise, with no partial result.

func Float32x4FromInt32x4(a Int32x4) Float32x4 {
	var r Float32x4
	for i, x := range a {
		r[i] = float32(x)
	}
	return r
}

func Int32x4FromFloat32x4(a Float32x4) (Int32x4, error) {
	for i, x := range a {
		if !lanes.CanCastInt32(x) {
			return Int32x4{}, errors.Unrepresentable(errors.PhaseConvert, i, x, KindInt32x4.String())
		}
	}
	var r Int32x4
	for i, x := range a {
		r[i] = int32(x) // truncates toward zero; in range by the check above
	}
	return r, nil
}

// Bit casts reinterpret the raw 128-bit pattern under another numeric
// lane layout. No value transformation, no failure mode.

func Float32x4FromInt32x4Bits(a Int32x4) Float32x4 {
	return float32x4FromBytes(a.Bytes())
}

func Float32x4FromInt16x8Bits(a Int16x8) Float32x4 {
	return float32x4FromBytes(a.Bytes())
}

func Float32x4FromInt8x16Bits(a Int8x16) Float32x4 {
	return float32x4FromBytes(a.Bytes())
}

func Int32x4FromFloat32x4Bits(a Float32x4) Int32x4 {
	return int32x4FromBytes(a.Bytes())
}

func Int32x4FromInt16x8Bits(a Int16x8) Int32x4 {
	return int32x4FromBytes(a.Bytes())
}

func Int32x4FromInt8x16Bits(a Int8x16) Int32x4 {
	return int32x4FromBytes(a.Bytes())
}

func Int16x8FromFloat32x4Bits(a Float32x4) Int16x8 {
	return int16x8FromBytes(a.Bytes())
}

func Int16x8FromInt32x4Bits(a Int32x4) Int16x8 {
	return int16x8FromBytes(a.Bytes())
}

func Int16x8FromInt8x16Bits(a Int8x16) Int16x8 {
	return int16x8FromBytes(a.Bytes())
}

func Int8x16FromFloat32x4Bits(a Float32x4) Int8x16 {
	return int8x16FromBytes(a.Bytes())
}

func Int8x16FromInt32x4Bits(a Int32x4) Int8x16 {
	return int8x16FromBytes(a.Bytes())
}

func Int8x16FromInt16x8Bits(a Int16x8) Int8x16 {
	return int8x16FromBytes(a.Bytes())
}
