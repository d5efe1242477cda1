package simd128

import (
	"testing"

	"github.com/wippyai/simd128/errors"
)

func TestSwizzle(t *testing.T) {
	t.Run("float32x4", func(t *testing.T) {
		v := NewFloat32x4(1, 2, 3, 4)

		got, err := v.Swizzle([4]int{0, 1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("identity swizzle = %v", got)
		}

		got, err = v.Swizzle([4]int{3, 2, 1, 0})
		if err != nil {
			t.Fatal(err)
		}
		if got != (Float32x4{4, 3, 2, 1}) {
			t.Errorf("reverse swizzle = %v", got)
		}

		got, err = v.Swizzle([4]int{2, 2, 2, 2})
		if err != nil {
			t.Fatal(err)
		}
		if got != (Float32x4{3, 3, 3, 3}) {
			t.Errorf("splat swizzle = %v", got)
		}
	})

	t.Run("int16x8", func(t *testing.T) {
		v := NewInt16x8(1, 2, 3, 4, 5, 6, 7, 8)
		got, err := v.Swizzle([8]int{7, 6, 5, 4, 3, 2, 1, 0})
		if err != nil {
			t.Fatal(err)
		}
		if got != (Int16x8{8, 7, 6, 5, 4, 3, 2, 1}) {
			t.Errorf("reverse swizzle = %v", got)
		}
	})

	t.Run("bool8x16", func(t *testing.T) {
		v := NewBool8x16([16]bool{0: true})
		var idx [16]int
		for i := range idx {
			idx[i] = 0
		}
		got, err := v.Swizzle(idx)
		if err != nil {
			t.Fatal(err)
		}
		if !got.AllTrue() {
			t.Errorf("splat of true lane = %v", got)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		v := NewFloat32x4(1, 2, 3, 4)
		got, err := v.Swizzle([4]int{0, 1, 2, 4})
		if !errors.IsRangeError(err) {
			t.Fatalf("want range error, got %v", err)
		}
		if got != (Float32x4{}) {
			t.Errorf("failed swizzle should return zero value, got %v", got)
		}
		if _, err := v.Swizzle([4]int{-1, 0, 0, 0}); !errors.IsRangeError(err) {
			t.Errorf("negative index: want range error, got %v", err)
		}

		v8 := Int8x16{}
		var idx [16]int
		idx[15] = 16
		if _, err := v8.Swizzle(idx); !errors.IsRangeError(err) {
			t.Errorf("int8x16 index 16: want range error, got %v", err)
		}
	})
}

func TestShuffle(t *testing.T) {
	t.Run("float32x4", func(t *testing.T) {
		a := NewFloat32x4(1, 2, 3, 4)
		b := NewFloat32x4(5, 6, 7, 8)

		// indices 0..3 read a, 4..7 read b
		got, err := a.Shuffle(b, [4]int{0, 4, 3, 7})
		if err != nil {
			t.Fatal(err)
		}
		if got != (Float32x4{1, 5, 4, 8}) {
			t.Errorf("Shuffle = %v, want [1 5 4 8]", got)
		}

		got, err = a.Shuffle(b, [4]int{4, 5, 6, 7})
		if err != nil {
			t.Fatal(err)
		}
		if got != b {
			t.Errorf("all-b shuffle = %v", got)
		}
	})

	t.Run("int8x16", func(t *testing.T) {
		var a, b Int8x16
		for i := range a {
			a[i] = int8(i)
			b[i] = int8(i + 16)
		}
		// interleave low halves of a and b
		idx := [16]int{0, 16, 1, 17, 2, 18, 3, 19, 4, 20, 5, 21, 6, 22, 7, 23}
		got, err := a.Shuffle(b, idx)
		if err != nil {
			t.Fatal(err)
		}
		want := Int8x16{0, 16, 1, 17, 2, 18, 3, 19, 4, 20, 5, 21, 6, 22, 7, 23}
		if got != want {
			t.Errorf("interleave = %v, want %v", got, want)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		a := NewInt32x4(1, 2, 3, 4)
		b := NewInt32x4(5, 6, 7, 8)

		got, err := a.Shuffle(b, [4]int{0, 1, 2, 8})
		if !errors.IsRangeError(err) {
			t.Fatalf("index 8: want range error, got %v", err)
		}
		if got != (Int32x4{}) {
			t.Errorf("failed shuffle should return zero value, got %v", got)
		}
		if _, err := a.Shuffle(b, [4]int{-1, 0, 0, 0}); !errors.IsRangeError(err) {
			t.Errorf("negative index: want range error, got %v", err)
		}

		a16 := Int16x8{}
		if _, err := a16.Shuffle(a16, [8]int{16, 0, 0, 0, 0, 0, 0, 0}); !errors.IsRangeError(err) {
			t.Errorf("int16x8 index 16: want range error, got %v", err)
		}
	})
}

func TestSelect(t *testing.T) {
	mask := NewBool32x4(true, false, true, false)

	t.Run("float32x4", func(t *testing.T) {
		a := NewFloat32x4(1, 2, 3, 4)
		b := NewFloat32x4(10, 20, 30, 40)
		if got := SelectFloat32x4(mask, a, b); got != (Float32x4{1, 20, 3, 40}) {
			t.Errorf("Select = %v, want [1 20 3 40]", got)
		}
	})

	t.Run("int32x4", func(t *testing.T) {
		a := NewInt32x4(1, 2, 3, 4)
		b := NewInt32x4(-1, -2, -3, -4)
		if got := SelectInt32x4(mask, a, b); got != (Int32x4{1, -2, 3, -4}) {
			t.Errorf("Select = %v", got)
		}
	})

	t.Run("int16x8", func(t *testing.T) {
		m := NewBool16x8(true, true, true, true, false, false, false, false)
		a := NewInt16x8(1, 2, 3, 4, 5, 6, 7, 8)
		b := NewInt16x8(0, 0, 0, 0, 0, 0, 0, 0)
		if got := SelectInt16x8(m, a, b); got != (Int16x8{1, 2, 3, 4, 0, 0, 0, 0}) {
			t.Errorf("Select = %v", got)
		}
	})

	t.Run("int8x16", func(t *testing.T) {
		var a, b Int8x16
		for i := range a {
			a[i] = int8(i)
			b[i] = -1
		}
		m := NewBool8x16([16]bool{0: true, 15: true})
		got := SelectInt8x16(m, a, b)
		if got[0] != 0 || got[15] != 15 {
			t.Errorf("selected lanes wrong: %v", got)
		}
		for i := 1; i < 15; i++ {
			if got[i] != -1 {
				t.Errorf("lane %d = %d, want -1", i, got[i])
			}
		}
	})
}
