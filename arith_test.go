package simd128

import (
	"math"
	"testing"
)

func TestFloat32x4Arith(t *testing.T) {
	a := NewFloat32x4(1, -2, 0.5, 4)
	b := NewFloat32x4(2, 2, 0.25, -1)

	if got := a.Add(b); got != (Float32x4{3, 0, 0.75, 3}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Float32x4{-1, -4, 0.25, 5}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != (Float32x4{2, -4, 0.125, -4}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Div(b); got != (Float32x4{0.5, -1, 2, -4}) {
		t.Errorf("Div = %v", got)
	}
}

func TestFloat32x4DivSpecial(t *testing.T) {
	a := NewFloat32x4(1, -1, 0, math.Inf(1))
	b := NewFloat32x4(0, 0, 0, math.Inf(1))
	got := a.Div(b)

	if !math.IsInf(float64(got[0]), 1) {
		t.Errorf("1/0 = %v, want +Inf", got[0])
	}
	if !math.IsInf(float64(got[1]), -1) {
		t.Errorf("-1/0 = %v, want -Inf", got[1])
	}
	if got[2] == got[2] {
		t.Errorf("0/0 = %v, want NaN", got[2])
	}
	if got[3] == got[3] {
		t.Errorf("Inf/Inf = %v, want NaN", got[3])
	}
}

func TestFloat32x4Unary(t *testing.T) {
	v := NewFloat32x4(4, -9, 0, -0.0)

	if got := v.Neg(); got != (Float32x4{-4, 9, 0, 0}) || !math.Signbit(float64(got[2])) {
		t.Errorf("Neg = %v (lane 2 signbit %v)", got, math.Signbit(float64(got[2])))
	}
	if got := v.Abs(); got[0] != 4 || got[1] != 9 || math.Signbit(float64(got[3])) {
		t.Errorf("Abs = %v", got)
	}

	s := NewFloat32x4(4, 0.25, -1, 0).Sqrt()
	if s[0] != 2 || s[1] != 0.5 || s[3] != 0 {
		t.Errorf("Sqrt = %v", s)
	}
	if s[2] == s[2] {
		t.Errorf("Sqrt(-1) = %v, want NaN", s[2])
	}

	r := NewFloat32x4(2, 0, -4, 1).RecipApprox()
	if r[0] != 0.5 || r[3] != 1 {
		t.Errorf("RecipApprox = %v", r)
	}
	if !math.IsInf(float64(r[1]), 1) {
		t.Errorf("RecipApprox(0) = %v, want +Inf", r[1])
	}

	rs := NewFloat32x4(4, 1, 0.25, 0).RecipSqrtApprox()
	if rs[0] != 0.5 || rs[1] != 1 || rs[2] != 2 {
		t.Errorf("RecipSqrtApprox = %v", rs)
	}
	if !math.IsInf(float64(rs[3]), 1) {
		t.Errorf("RecipSqrtApprox(0) = %v, want +Inf", rs[3])
	}
}

func TestFloat32x4MinMax(t *testing.T) {
	nz := float32(math.Copysign(0, -1))

	t.Run("signed zero tie break", func(t *testing.T) {
		a := Float32x4{0, nz, 0, nz}
		b := Float32x4{nz, 0, 0, nz}

		min := a.Min(b)
		for i, want := range []bool{true, true, false, true} {
			if math.Signbit(float64(min[i])) != want {
				t.Errorf("Min lane %d signbit = %v, want %v", i, math.Signbit(float64(min[i])), want)
			}
		}
		max := a.Max(b)
		for i, want := range []bool{false, false, false, true} {
			if math.Signbit(float64(max[i])) != want {
				t.Errorf("Max lane %d signbit = %v, want %v", i, math.Signbit(float64(max[i])), want)
			}
		}
	})

	t.Run("nan propagates", func(t *testing.T) {
		nan := float32(math.NaN())
		a := Float32x4{nan, 1, nan, 5}
		b := Float32x4{2, nan, nan, 3}

		min := a.Min(b)
		for i := 0; i < 3; i++ {
			if min[i] == min[i] {
				t.Errorf("Min lane %d = %v, want NaN", i, min[i])
			}
		}
		if min[3] != 3 {
			t.Errorf("Min lane 3 = %v, want 3", min[3])
		}
		max := a.Max(b)
		for i := 0; i < 3; i++ {
			if max[i] == max[i] {
				t.Errorf("Max lane %d = %v, want NaN", i, max[i])
			}
		}
		if max[3] != 5 {
			t.Errorf("Max lane 3 = %v, want 5", max[3])
		}
	})

	t.Run("number variants suppress one sided nan", func(t *testing.T) {
		nan := float32(math.NaN())
		a := Float32x4{nan, 1, nan, 5}
		b := Float32x4{2, nan, nan, 3}

		min := a.MinNumber(b)
		if min[0] != 2 || min[1] != 1 || min[3] != 3 {
			t.Errorf("MinNumber = %v", min)
		}
		if min[2] == min[2] {
			t.Errorf("MinNumber both-NaN lane = %v, want NaN", min[2])
		}
		max := a.MaxNumber(b)
		if max[0] != 2 || max[1] != 1 || max[3] != 5 {
			t.Errorf("MaxNumber = %v", max)
		}
		if max[2] == max[2] {
			t.Errorf("MaxNumber both-NaN lane = %v, want NaN", max[2])
		}
	})
}

func TestIntArithWraps(t *testing.T) {
	t.Run("int32x4", func(t *testing.T) {
		a := Int32x4{math.MaxInt32, math.MinInt32, 100000, -7}
		b := Int32x4{1, -1, 100000, 3}

		if got := a.Add(b); got != (Int32x4{math.MinInt32, math.MaxInt32, 200000, -4}) {
			t.Errorf("Add = %v", got)
		}
		if got := a.Sub(b); got != (Int32x4{math.MaxInt32 - 1, math.MinInt32 + 1, 0, -10}) {
			t.Errorf("Sub = %v", got)
		}
		got := a.Mul(b)
		if got[2] != 1410065408 { // 10^10 mod 2^32
			t.Errorf("Mul wrap lane = %d, want 1410065408", got[2])
		}
		if got[3] != -21 {
			t.Errorf("Mul lane 3 = %d", got[3])
		}
	})

	t.Run("neg and abs at minimum", func(t *testing.T) {
		v := Int32x4{math.MinInt32, -5, 5, 0}
		if got := v.Neg(); got != (Int32x4{math.MinInt32, 5, -5, 0}) {
			t.Errorf("Neg = %v", got)
		}
		if got := v.Abs(); got != (Int32x4{math.MinInt32, 5, 5, 0}) {
			t.Errorf("Abs = %v", got)
		}

		v8 := Int8x16{0: -128, 1: -128}
		got8 := v8.Abs()
		if got8[0] != -128 {
			t.Errorf("int8 Abs(-128) = %d, want -128", got8[0])
		}
	})

	t.Run("int16x8 and int8x16 wrap", func(t *testing.T) {
		a16 := Int16x8{math.MaxInt16, math.MinInt16, 200, 0, 0, 0, 0, 0}
		b16 := Int16x8{1, -1, 200, 0, 0, 0, 0, 0}
		got16 := a16.Add(b16)
		if got16[0] != math.MinInt16 || got16[1] != math.MaxInt16 || got16[2] != 400 {
			t.Errorf("int16 Add = %v", got16)
		}

		a8 := Int8x16{0: 127, 1: -128, 2: 100}
		b8 := Int8x16{0: 1, 1: -1, 2: 100}
		got8 := a8.Add(b8)
		if got8[0] != -128 || got8[1] != 127 || got8[2] != -56 {
			t.Errorf("int8 Add = %v", got8)
		}
	})
}

func TestSaturatingArith(t *testing.T) {
	t.Run("int16x8", func(t *testing.T) {
		a := Int16x8{32767, -32768, 30000, -30000, 100, -100, 0, 0}
		b := Int16x8{1, -1, 10000, -10000, 28, -28, 0, 0}

		add := a.AddSaturate(b)
		want := Int16x8{32767, -32768, 32767, -32768, 128, -128, 0, 0}
		if add != want {
			t.Errorf("AddSaturate = %v, want %v", add, want)
		}

		sub := a.SubSaturate(b)
		wantSub := Int16x8{32766, -32767, 20000, -20000, 72, -72, 0, 0}
		if sub != wantSub {
			t.Errorf("SubSaturate = %v, want %v", sub, wantSub)
		}

		// subtraction saturates too
		c := Int16x8{-32768, 32767, 0, 0, 0, 0, 0, 0}
		d := Int16x8{1, -1, 0, 0, 0, 0, 0, 0}
		got := c.SubSaturate(d)
		if got[0] != -32768 || got[1] != 32767 {
			t.Errorf("SubSaturate clamp = %v", got)
		}
	})

	t.Run("int8x16", func(t *testing.T) {
		a := Int8x16{0: 127, 1: -128, 2: 100, 3: -100}
		b := Int8x16{0: 1, 1: -1, 2: 100, 3: -100}

		add := a.AddSaturate(b)
		if add[0] != 127 || add[1] != -128 || add[2] != 127 || add[3] != -128 {
			t.Errorf("AddSaturate = %v", add)
		}
		sub := a.SubSaturate(b)
		if sub[0] != 126 || sub[1] != -127 || sub[2] != 0 || sub[3] != 0 {
			t.Errorf("SubSaturate = %v", sub)
		}
	})
}

func TestShifts(t *testing.T) {
	t.Run("int32x4", func(t *testing.T) {
		v := Int32x4{1, -1, math.MinInt32, 0x1234}

		if got := v.ShiftLeft(1); got != (Int32x4{2, -2, 0, 0x2468}) {
			t.Errorf("ShiftLeft(1) = %v", got)
		}
		if got := v.ShiftLeft(32); got != (Int32x4{}) {
			t.Errorf("ShiftLeft(32) = %v, want all zeros", got)
		}
		if got := v.ShiftLeft(-1); got != (Int32x4{}) {
			t.Errorf("ShiftLeft(-1) = %v, want all zeros", got)
		}

		if got := v.ShiftRightLogical(1); got != (Int32x4{0, math.MaxInt32, 0x40000000, 0x91A}) {
			t.Errorf("ShiftRightLogical(1) = %v", got)
		}
		if got := v.ShiftRightLogical(32); got != (Int32x4{}) {
			t.Errorf("ShiftRightLogical(32) = %v, want all zeros", got)
		}

		if got := v.ShiftRightArithmetic(1); got != (Int32x4{0, -1, -0x40000000, 0x91A}) {
			t.Errorf("ShiftRightArithmetic(1) = %v", got)
		}
		// amount clamps to 31 instead of zeroing
		if got := v.ShiftRightArithmetic(100); got != (Int32x4{0, -1, -1, 0}) {
			t.Errorf("ShiftRightArithmetic(100) = %v", got)
		}
		if got := v.ShiftRightArithmetic(-1); got != (Int32x4{0, -1, -1, 0}) {
			t.Errorf("ShiftRightArithmetic(-1) = %v", got)
		}
	})

	t.Run("int16x8", func(t *testing.T) {
		v := Int16x8{1, -1, math.MinInt16, 0, 0, 0, 0, 0}
		if got := v.ShiftLeft(16); got != (Int16x8{}) {
			t.Errorf("ShiftLeft(16) = %v, want zeros", got)
		}
		if got := v.ShiftRightLogical(1); got[1] != math.MaxInt16 || got[2] != 0x4000 {
			t.Errorf("ShiftRightLogical(1) = %v", got)
		}
		if got := v.ShiftRightArithmetic(20); got != (Int16x8{0, -1, -1, 0, 0, 0, 0, 0}) {
			t.Errorf("ShiftRightArithmetic(20) = %v", got)
		}
	})

	t.Run("int8x16", func(t *testing.T) {
		v := Int8x16{0: 1, 1: -1, 2: -128}
		if got := v.ShiftLeft(8); got != (Int8x16{}) {
			t.Errorf("ShiftLeft(8) = %v, want zeros", got)
		}
		if got := v.ShiftRightLogical(1); got[1] != 127 || got[2] != 64 {
			t.Errorf("ShiftRightLogical(1) = %v", got)
		}
		if got := v.ShiftRightArithmetic(9); got[1] != -1 || got[2] != -1 || got[0] != 0 {
			t.Errorf("ShiftRightArithmetic(9) = %v", got)
		}
	})
}

func TestBitwiseOps(t *testing.T) {
	a := Int32x4{0b1100, -1, 0, 0x0F0F0F0F}
	b := Int32x4{0b1010, 0, -1, 0x00FF00FF}

	if got := a.And(b); got != (Int32x4{0b1000, 0, 0, 0x000F000F}) {
		t.Errorf("And = %v", got)
	}
	if got := a.Or(b); got != (Int32x4{0b1110, -1, -1, 0x0FFF0FFF}) {
		t.Errorf("Or = %v", got)
	}
	if got := a.Xor(b); got != (Int32x4{0b0110, -1, -1, 0x0FF00FF0}) {
		t.Errorf("Xor = %v", got)
	}
	if got := a.Not(); got != (Int32x4{^int32(0b1100), 0, -1, ^int32(0x0F0F0F0F)}) {
		t.Errorf("Not = %v", got)
	}

	a8 := Int8x16{0: 0x0F, 1: -1}
	b8 := Int8x16{0: 0x11, 1: 0}
	if got := a8.And(b8); got[0] != 0x01 || got[1] != 0 {
		t.Errorf("int8 And = %v", got)
	}
	if got := a8.Not(); got[0] != ^int8(0x0F) || got[1] != 0 || got[2] != -1 {
		t.Errorf("int8 Not = %v", got)
	}
}

func TestBoolLogicalOps(t *testing.T) {
	a := Bool32x4{true, true, false, false}
	b := Bool32x4{true, false, true, false}

	if got := a.And(b); got != (Bool32x4{true, false, false, false}) {
		t.Errorf("And = %v", got)
	}
	if got := a.Or(b); got != (Bool32x4{true, true, true, false}) {
		t.Errorf("Or = %v", got)
	}
	if got := a.Xor(b); got != (Bool32x4{false, true, true, false}) {
		t.Errorf("Xor = %v", got)
	}
	if got := a.Not(); got != (Bool32x4{false, false, true, true}) {
		t.Errorf("Not = %v", got)
	}

	a16 := Bool8x16{0: true, 15: true}
	b16 := Bool8x16{0: true, 14: true}
	got := a16.Xor(b16)
	if got[0] || !got[14] || !got[15] {
		t.Errorf("bool8x16 Xor = %v", got)
	}
}
