package main

import (
	"testing"

	simd "github.com/wippyai/simd128"
	"github.com/wippyai/simd128/dispatch"
)

func TestParseArg(t *testing.T) {
	t.Run("vector", func(t *testing.T) {
		v, err := parseArg(dispatch.ParamFloat32x4, "1,2,3,4")
		if err != nil {
			t.Fatal(err)
		}
		if got := v.(simd.Float32x4); got != (simd.Float32x4{1, 2, 3, 4}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("vector with kind prefix", func(t *testing.T) {
		v, err := parseArg(dispatch.ParamVector, "int32x4:1,-1,0,7")
		if err != nil {
			t.Fatal(err)
		}
		if got := v.(simd.Int32x4); got != (simd.Int32x4{1, -1, 0, 7}) {
			t.Errorf("got %v", got)
		}

		if _, err := parseArg(dispatch.ParamVector, "1,2,3,4"); err == nil {
			t.Error("any-vector parameter without kind prefix should fail")
		}
		if _, err := parseArg(dispatch.ParamInt32x4, "float32x4:1,2,3,4"); err == nil {
			t.Error("mismatched kind prefix should fail")
		}
	})

	t.Run("bool vector", func(t *testing.T) {
		v, err := parseArg(dispatch.ParamBool32x4, "true,false,1,0")
		if err != nil {
			t.Fatal(err)
		}
		if got := v.(simd.Bool32x4); got != (simd.Bool32x4{true, false, true, false}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("scalars", func(t *testing.T) {
		n, err := parseArg(dispatch.ParamNumber, "-2.5")
		if err != nil {
			t.Fatal(err)
		}
		if n.(float64) != -2.5 {
			t.Errorf("number = %v", n)
		}

		b, err := parseArg(dispatch.ParamBool, "true")
		if err != nil {
			t.Fatal(err)
		}
		if !b.(bool) {
			t.Error("bool = false")
		}

		if _, err := parseArg(dispatch.ParamNumber, "abc"); err == nil {
			t.Error("bad number should fail")
		}
		if _, err := parseArg(dispatch.ParamBool, "yes"); err == nil {
			t.Error("bad bool should fail")
		}
	})

	t.Run("wrong lane count", func(t *testing.T) {
		if _, err := parseArg(dispatch.ParamFloat32x4, "1,2,3"); err == nil {
			t.Error("three lanes for float32x4 should fail")
		}
	})
}

func TestRunOneShot(t *testing.T) {
	if err := run("float32x4.add", "1,2,3,4 5,6,7,8"); err != nil {
		t.Errorf("run: %v", err)
	}
	if err := run("no.such.op", ""); err == nil {
		t.Error("unknown op should fail")
	}
	if err := run("float32x4.add", "1,2,3,4"); err == nil {
		t.Error("missing argument should fail")
	}
}
