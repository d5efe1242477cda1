package simd128

import (
	"github.com/wippyai/simd128/errors"
	"github.com/wippyai/simd128/internal/lanes"
)

// Constructors take host doubles (or host booleans for mask kinds) and
// convert each lane with the kind's conversion rule: float32 lanes use
// IEEE round-to-nearest, integer lanes use 32-bit truncating conversion
// followed by narrowing truncation. Arity is fixed per kind.

func NewFloat32x4(x0, x1, x2, x3 float64) Float32x4 {
	return Float32x4{
		lanes.ToFloat32(x0),
		lanes.ToFloat32(x1),
		lanes.ToFloat32(x2),
		lanes.ToFloat32(x3),
	}
}

func NewInt32x4(x0, x1, x2, x3 float64) Int32x4 {
	return Int32x4{
		lanes.ToInt32(x0),
		lanes.ToInt32(x1),
		lanes.ToInt32(x2),
		lanes.ToInt32(x3),
	}
}

func NewInt16x8(x0, x1, x2, x3, x4, x5, x6, x7 float64) Int16x8 {
	return Int16x8{
		lanes.ToInt16(x0), lanes.ToInt16(x1), lanes.ToInt16(x2), lanes.ToInt16(x3),
		lanes.ToInt16(x4), lanes.ToInt16(x5), lanes.ToInt16(x6), lanes.ToInt16(x7),
	}
}

func NewInt8x16(x [16]float64) Int8x16 {
	var v Int8x16
	for i := range v {
		v[i] = lanes.ToInt8(x[i])
	}
	return v
}

func NewBool32x4(x0, x1, x2, x3 bool) Bool32x4 {
	return Bool32x4{x0, x1, x2, x3}
}

func NewBool16x8(x0, x1, x2, x3, x4, x5, x6, x7 bool) Bool16x8 {
	return Bool16x8{x0, x1, x2, x3, x4, x5, x6, x7}
}

func NewBool8x16(x [16]bool) Bool8x16 {
	return Bool8x16(x)
}

func checkLane(lane, count int) error {
	if lane < 0 || lane >= count {
		return errors.LaneOutOfBounds(errors.PhaseLane, lane, count)
	}
	return nil
}

// ExtractLane returns one lane as a scalar.

func (a Float32x4) ExtractLane(lane int) (float32, error) {
	if err := checkLane(lane, 4); err != nil {
		return 0, err
	}
	return a[lane], nil
}

func (a Int32x4) ExtractLane(lane int) (int32, error) {
	if err := checkLane(lane, 4); err != nil {
		return 0, err
	}
	return a[lane], nil
}

func (a Bool32x4) ExtractLane(lane int) (bool, error) {
	if err := checkLane(lane, 4); err != nil {
		return false, err
	}
	return a[lane], nil
}

func (a Int16x8) ExtractLane(lane int) (int16, error) {
	if err := checkLane(lane, 8); err != nil {
		return 0, err
	}
	return a[lane], nil
}

func (a Bool16x8) ExtractLane(lane int) (bool, error) {
	if err := checkLane(lane, 8); err != nil {
		return false, err
	}
	return a[lane], nil
}

func (a Int8x16) ExtractLane(lane int) (int8, error) {
	if err := checkLane(lane, 16); err != nil {
		return 0, err
	}
	return a[lane], nil
}

func (a Bool8x16) ExtractLane(lane int) (bool, error) {
	if err := checkLane(lane, 16); err != nil {
		return false, err
	}
	return a[lane], nil
}

// UnsignedExtractLane returns the unsigned bit reinterpretation of a
// stored (signed) lane. Only the narrow integer kinds carry this.

func (a Int16x8) UnsignedExtractLane(lane int) (uint16, error) {
	if err := checkLane(lane, 8); err != nil {
		return 0, err
	}
	return uint16(a[lane]), nil
}

func (a Int8x16) UnsignedExtractLane(lane int) (uint8, error) {
	if err := checkLane(lane, 16); err != nil {
		return 0, err
	}
	return uint8(a[lane]), nil
}

// ReplaceLane returns a copy with one lane overwritten; the new value
// goes through the same conversion rule as the constructors.

func (a Float32x4) ReplaceLane(lane int, x float64) (Float32x4, error) {
	if err := checkLane(lane, 4); err != nil {
		return Float32x4{}, err
	}
	a[lane] = lanes.ToFloat32(x)
	return a, nil
}

func (a Int32x4) ReplaceLane(lane int, x float64) (Int32x4, error) {
	if err := checkLane(lane, 4); err != nil {
		return Int32x4{}, err
	}
	a[lane] = lanes.ToInt32(x)
	return a, nil
}

func (a Bool32x4) ReplaceLane(lane int, x bool) (Bool32x4, error) {
	if err := checkLane(lane, 4); err != nil {
		return Bool32x4{}, err
	}
	a[lane] = x
	return a, nil
}

func (a Int16x8) ReplaceLane(lane int, x float64) (Int16x8, error) {
	if err := checkLane(lane, 8); err != nil {
		return Int16x8{}, err
	}
	a[lane] = lanes.ToInt16(x)
	return a, nil
}

func (a Bool16x8) ReplaceLane(lane int, x bool) (Bool16x8, error) {
	if err := checkLane(lane, 8); err != nil {
		return Bool16x8{}, err
	}
	a[lane] = x
	return a, nil
}

func (a Int8x16) ReplaceLane(lane int, x float64) (Int8x16, error) {
	if err := checkLane(lane, 16); err != nil {
		return Int8x16{}, err
	}
	a[lane] = lanes.ToInt8(x)
	return a, nil
}

func (a Bool8x16) ReplaceLane(lane int, x bool) (Bool8x16, error) {
	if err := checkLane(lane, 16); err != nil {
		return Bool8x16{}, err
	}
	a[lane] = x
	return a, nil
}

// Check functions assert the kind of an untyped boundary value and
// return it unchanged. They are the type-assertion gate through which
// every dispatched operand passes.

func CheckFloat32x4(v Value) (Float32x4, error) {
	if t, ok := v.(Float32x4); ok {
		return t, nil
	}
	return Float32x4{}, errors.TypeMismatch(errors.PhaseLane, KindFloat32x4.String(), kindName(v))
}

func CheckInt32x4(v Value) (Int32x4, error) {
	if t, ok := v.(Int32x4); ok {
		return t, nil
	}
	return Int32x4{}, errors.TypeMismatch(errors.PhaseLane, KindInt32x4.String(), kindName(v))
}

func CheckBool32x4(v Value) (Bool32x4, error) {
	if t, ok := v.(Bool32x4); ok {
		return t, nil
	}
	return Bool32x4{}, errors.TypeMismatch(errors.PhaseLane, KindBool32x4.String(), kindName(v))
}

func CheckInt16x8(v Value) (Int16x8, error) {
	if t, ok := v.(Int16x8); ok {
		return t, nil
	}
	return Int16x8{}, errors.TypeMismatch(errors.PhaseLane, KindInt16x8.String(), kindName(v))
}

func CheckBool16x8(v Value) (Bool16x8, error) {
	if t, ok := v.(Bool16x8); ok {
		return t, nil
	}
	return Bool16x8{}, errors.TypeMismatch(errors.PhaseLane, KindBool16x8.String(), kindName(v))
}

func CheckInt8x16(v Value) (Int8x16, error) {
	if t, ok := v.(Int8x16); ok {
		return t, nil
	}
	return Int8x16{}, errors.TypeMismatch(errors.PhaseLane, KindInt8x16.String(), kindName(v))
}

func CheckBool8x16(v Value) (Bool8x16, error) {
	if t, ok := v.(Bool8x16); ok {
		return t, nil
	}
	return Bool8x16{}, errors.TypeMismatch(errors.PhaseLane, KindBool8x16.String(), kindName(v))
}
