package dispatch

import (
	"fmt"
	"math"

	simd "github.com/wippyai/simd128"
	"github.com/wippyai/simd128/errors"
	"github.com/wippyai/simd128/internal/lanes"
)

// checker narrows an argument to one vector kind.
type checker[T simd.Value] func(simd.Value) (T, error)

func anyVector(arg any) (simd.Value, error) {
	v, ok := arg.(simd.Value)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseDispatch, "vector", fmt.Sprintf("%T", arg))
	}
	return v, nil
}

func vec[T simd.Value](check checker[T], arg any) (T, error) {
	var zero T
	v, err := anyVector(arg)
	if err != nil {
		return zero, err
	}
	return check(v)
}

func numberArg(arg any) (float64, error) {
	switch n := arg.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, errors.InvalidInput(errors.PhaseDispatch, fmt.Sprintf("expected number, got %T", arg))
}

func boolArg(arg any) (bool, error) {
	b, ok := arg.(bool)
	if !ok {
		return false, errors.InvalidInput(errors.PhaseDispatch, fmt.Sprintf("expected bool, got %T", arg))
	}
	return b, nil
}

// laneArg coerces a lane or permute index. It must be an integral
// number; range checking is left to the core operation.
func laneArg(arg any) (int, error) {
	d, err := numberArg(arg)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) || math.IsInf(d, 0) || d != math.Trunc(d) {
		return 0, errors.InvalidInput(errors.PhaseDispatch, fmt.Sprintf("lane index must be an integer, got %v", d))
	}
	return int(d), nil
}

func shiftArg(arg any) (int32, error) {
	d, err := numberArg(arg)
	if err != nil {
		return 0, err
	}
	return lanes.ToInt32(d), nil
}

func indices(args []any) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := laneArg(a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// Adapters from the statically typed core to Handler. R covers both
// same-kind results (arith) and bool-vector results (compares).

func unary[T simd.Value, R any](check checker[T], f func(T) R) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		return f(a), nil
	}
}

func checkOp[T simd.Value](check checker[T]) Handler {
	return func(args []any) (any, error) {
		return vec(check, args[0])
	}
}

func unaryErr[T simd.Value, R any](check checker[T], f func(T) (R, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		return f(a)
	}
}

func binary[T simd.Value, R any](check checker[T], f func(T, T) R) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		b, err := vec(check, args[1])
		if err != nil {
			return nil, err
		}
		return f(a, b), nil
	}
}

func shiftOp[T simd.Value](check checker[T], f func(T, int32) T) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		s, err := shiftArg(args[1])
		if err != nil {
			return nil, err
		}
		return f(a, s), nil
	}
}

func extract[T simd.Value, R any](check checker[T], f func(T, int) (R, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		lane, err := laneArg(args[1])
		if err != nil {
			return nil, err
		}
		return f(a, lane)
	}
}

func replaceNum[T simd.Value](check checker[T], f func(T, int, float64) (T, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		lane, err := laneArg(args[1])
		if err != nil {
			return nil, err
		}
		x, err := numberArg(args[2])
		if err != nil {
			return nil, err
		}
		return f(a, lane, x)
	}
}

func replaceBool[T simd.Value](check checker[T], f func(T, int, bool) (T, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		lane, err := laneArg(args[1])
		if err != nil {
			return nil, err
		}
		x, err := boolArg(args[2])
		if err != nil {
			return nil, err
		}
		return f(a, lane, x)
	}
}

func swizzle4[T simd.Value](check checker[T], f func(T, [4]int) (T, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		idx, err := indices(args[1:])
		if err != nil {
			return nil, err
		}
		return f(a, [4]int(idx))
	}
}

func swizzle8[T simd.Value](check checker[T], f func(T, [8]int) (T, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		idx, err := indices(args[1:])
		if err != nil {
			return nil, err
		}
		return f(a, [8]int(idx))
	}
}

func swizzle16[T simd.Value](check checker[T], f func(T, [16]int) (T, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		idx, err := indices(args[1:])
		if err != nil {
			return nil, err
		}
		return f(a, [16]int(idx))
	}
}

func shuffle4[T simd.Value](check checker[T], f func(T, T, [4]int) (T, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		b, err := vec(check, args[1])
		if err != nil {
			return nil, err
		}
		idx, err := indices(args[2:])
		if err != nil {
			return nil, err
		}
		return f(a, b, [4]int(idx))
	}
}

func shuffle8[T simd.Value](check checker[T], f func(T, T, [8]int) (T, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		b, err := vec(check, args[1])
		if err != nil {
			return nil, err
		}
		idx, err := indices(args[2:])
		if err != nil {
			return nil, err
		}
		return f(a, b, [8]int(idx))
	}
}

func shuffle16[T simd.Value](check checker[T], f func(T, T, [16]int) (T, error)) Handler {
	return func(args []any) (any, error) {
		a, err := vec(check, args[0])
		if err != nil {
			return nil, err
		}
		b, err := vec(check, args[1])
		if err != nil {
			return nil, err
		}
		idx, err := indices(args[2:])
		if err != nil {
			return nil, err
		}
		return f(a, b, [16]int(idx))
	}
}

func selectOp[M simd.Value, T simd.Value](checkM checker[M], checkT checker[T], f func(M, T, T) T) Handler {
	return func(args []any) (any, error) {
		m, err := vec(checkM, args[0])
		if err != nil {
			return nil, err
		}
		a, err := vec(checkT, args[1])
		if err != nil {
			return nil, err
		}
		b, err := vec(checkT, args[2])
		if err != nil {
			return nil, err
		}
		return f(m, a, b), nil
	}
}

func vectorPair(f func(a, b simd.Value) bool) Handler {
	return func(args []any) (any, error) {
		a, err := anyVector(args[0])
		if err != nil {
			return nil, err
		}
		b, err := anyVector(args[1])
		if err != nil {
			return nil, err
		}
		return f(a, b), nil
	}
}

func ctorNum4[T any](f func(a, b, c, d float64) T) Handler {
	return func(args []any) (any, error) {
		var xs [4]float64
		for i := range xs {
			x, err := numberArg(args[i])
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		return f(xs[0], xs[1], xs[2], xs[3]), nil
	}
}

func ctorNum8[T any](f func(a, b, c, d, e, g, h, i float64) T) Handler {
	return func(args []any) (any, error) {
		var xs [8]float64
		for i := range xs {
			x, err := numberArg(args[i])
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		return f(xs[0], xs[1], xs[2], xs[3], xs[4], xs[5], xs[6], xs[7]), nil
	}
}

func ctorNum16[T any](f func([16]float64) T) Handler {
	return func(args []any) (any, error) {
		var xs [16]float64
		for i := range xs {
			x, err := numberArg(args[i])
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		return f(xs), nil
	}
}

func ctorBool4[T any](f func(a, b, c, d bool) T) Handler {
	return func(args []any) (any, error) {
		var xs [4]bool
		for i := range xs {
			x, err := boolArg(args[i])
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		return f(xs[0], xs[1], xs[2], xs[3]), nil
	}
}

func ctorBool8[T any](f func(a, b, c, d, e, g, h, i bool) T) Handler {
	return func(args []any) (any, error) {
		var xs [8]bool
		for i := range xs {
			x, err := boolArg(args[i])
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		return f(xs[0], xs[1], xs[2], xs[3], xs[4], xs[5], xs[6], xs[7]), nil
	}
}

func ctorBool16[T any](f func([16]bool) T) Handler {
	return func(args []any) (any, error) {
		var xs [16]bool
		for i := range xs {
			x, err := boolArg(args[i])
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		return f(xs), nil
	}
}

func repeat(p Param, n int) []Param {
	out := make([]Param, n)
	for i := range out {
		out[i] = p
	}
	return out
}

func params(ps ...Param) []Param { return ps }

func registerAll(r *Registry) {
	registerFloat32x4(r)
	registerInt32x4(r)
	registerInt16x8(r)
	registerInt8x16(r)
	registerBools(r)
	registerConversions(r)
	registerPredicates(r)
}

func registerFloat32x4(r *Registry) {
	p := ParamFloat32x4
	r.Define("float32x4", repeat(ParamNumber, 4), ctorNum4(simd.NewFloat32x4))
	r.Define("float32x4.check", params(ParamVector), checkOp(simd.CheckFloat32x4))
	r.Define("float32x4.extractLane", params(p, ParamLane), extract(simd.CheckFloat32x4, simd.Float32x4.ExtractLane))
	r.Define("float32x4.replaceLane", params(p, ParamLane, ParamNumber), replaceNum(simd.CheckFloat32x4, simd.Float32x4.ReplaceLane))

	r.Define("float32x4.neg", params(p), unary(simd.CheckFloat32x4, simd.Float32x4.Neg))
	r.Define("float32x4.abs", params(p), unary(simd.CheckFloat32x4, simd.Float32x4.Abs))
	r.Define("float32x4.sqrt", params(p), unary(simd.CheckFloat32x4, simd.Float32x4.Sqrt))
	r.Define("float32x4.reciprocalApprox", params(p), unary(simd.CheckFloat32x4, simd.Float32x4.RecipApprox))
	r.Define("float32x4.reciprocalSqrtApprox", params(p), unary(simd.CheckFloat32x4, simd.Float32x4.RecipSqrtApprox))
	r.Define("float32x4.add", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.Add))
	r.Define("float32x4.sub", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.Sub))
	r.Define("float32x4.mul", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.Mul))
	r.Define("float32x4.div", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.Div))
	r.Define("float32x4.min", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.Min))
	r.Define("float32x4.max", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.Max))
	r.Define("float32x4.minNum", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.MinNumber))
	r.Define("float32x4.maxNum", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.MaxNumber))

	r.Define("float32x4.equal", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.Equal))
	r.Define("float32x4.notEqual", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.NotEqual))
	r.Define("float32x4.lessThan", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.LessThan))
	r.Define("float32x4.lessThanOrEqual", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.LessThanOrEqual))
	r.Define("float32x4.greaterThan", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.GreaterThan))
	r.Define("float32x4.greaterThanOrEqual", params(p, p), binary(simd.CheckFloat32x4, simd.Float32x4.GreaterThanOrEqual))

	r.Define("float32x4.swizzle", append(params(p), repeat(ParamIndex, 4)...), swizzle4(simd.CheckFloat32x4, simd.Float32x4.Swizzle))
	r.Define("float32x4.shuffle", append(params(p, p), repeat(ParamIndex, 4)...), shuffle4(simd.CheckFloat32x4, simd.Float32x4.Shuffle))
	r.Define("float32x4.select", params(ParamBool32x4, p, p), selectOp(simd.CheckBool32x4, simd.CheckFloat32x4, simd.SelectFloat32x4))
}

func registerInt32x4(r *Registry) {
	p := ParamInt32x4
	r.Define("int32x4", repeat(ParamNumber, 4), ctorNum4(simd.NewInt32x4))
	r.Define("int32x4.check", params(ParamVector), checkOp(simd.CheckInt32x4))
	r.Define("int32x4.extractLane", params(p, ParamLane), extract(simd.CheckInt32x4, simd.Int32x4.ExtractLane))
	r.Define("int32x4.replaceLane", params(p, ParamLane, ParamNumber), replaceNum(simd.CheckInt32x4, simd.Int32x4.ReplaceLane))

	r.Define("int32x4.neg", params(p), unary(simd.CheckInt32x4, simd.Int32x4.Neg))
	r.Define("int32x4.abs", params(p), unary(simd.CheckInt32x4, simd.Int32x4.Abs))
	r.Define("int32x4.add", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.Add))
	r.Define("int32x4.sub", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.Sub))
	r.Define("int32x4.mul", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.Mul))

	r.Define("int32x4.shiftLeft", params(p, ParamShift), shiftOp(simd.CheckInt32x4, simd.Int32x4.ShiftLeft))
	r.Define("int32x4.shiftRightLogical", params(p, ParamShift), shiftOp(simd.CheckInt32x4, simd.Int32x4.ShiftRightLogical))
	r.Define("int32x4.shiftRightArithmetic", params(p, ParamShift), shiftOp(simd.CheckInt32x4, simd.Int32x4.ShiftRightArithmetic))

	r.Define("int32x4.and", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.And))
	r.Define("int32x4.or", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.Or))
	r.Define("int32x4.xor", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.Xor))
	r.Define("int32x4.not", params(p), unary(simd.CheckInt32x4, simd.Int32x4.Not))

	r.Define("int32x4.equal", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.Equal))
	r.Define("int32x4.notEqual", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.NotEqual))
	r.Define("int32x4.lessThan", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.LessThan))
	r.Define("int32x4.lessThanOrEqual", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.LessThanOrEqual))
	r.Define("int32x4.greaterThan", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.GreaterThan))
	r.Define("int32x4.greaterThanOrEqual", params(p, p), binary(simd.CheckInt32x4, simd.Int32x4.GreaterThanOrEqual))

	r.Define("int32x4.swizzle", append(params(p), repeat(ParamIndex, 4)...), swizzle4(simd.CheckInt32x4, simd.Int32x4.Swizzle))
	r.Define("int32x4.shuffle", append(params(p, p), repeat(ParamIndex, 4)...), shuffle4(simd.CheckInt32x4, simd.Int32x4.Shuffle))
	r.Define("int32x4.select", params(ParamBool32x4, p, p), selectOp(simd.CheckBool32x4, simd.CheckInt32x4, simd.SelectInt32x4))
}

func registerInt16x8(r *Registry) {
	p := ParamInt16x8
	r.Define("int16x8", repeat(ParamNumber, 8), ctorNum8(simd.NewInt16x8))
	r.Define("int16x8.check", params(ParamVector), checkOp(simd.CheckInt16x8))
	r.Define("int16x8.extractLane", params(p, ParamLane), extract(simd.CheckInt16x8, simd.Int16x8.ExtractLane))
	r.Define("int16x8.unsignedExtractLane", params(p, ParamLane), extract(simd.CheckInt16x8, simd.Int16x8.UnsignedExtractLane))
	r.Define("int16x8.replaceLane", params(p, ParamLane, ParamNumber), replaceNum(simd.CheckInt16x8, simd.Int16x8.ReplaceLane))

	r.Define("int16x8.neg", params(p), unary(simd.CheckInt16x8, simd.Int16x8.Neg))
	r.Define("int16x8.abs", params(p), unary(simd.CheckInt16x8, simd.Int16x8.Abs))
	r.Define("int16x8.add", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.Add))
	r.Define("int16x8.sub", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.Sub))
	r.Define("int16x8.mul", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.Mul))
	r.Define("int16x8.addSaturate", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.AddSaturate))
	r.Define("int16x8.subSaturate", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.SubSaturate))

	r.Define("int16x8.shiftLeft", params(p, ParamShift), shiftOp(simd.CheckInt16x8, simd.Int16x8.ShiftLeft))
	r.Define("int16x8.shiftRightLogical", params(p, ParamShift), shiftOp(simd.CheckInt16x8, simd.Int16x8.ShiftRightLogical))
	r.Define("int16x8.shiftRightArithmetic", params(p, ParamShift), shiftOp(simd.CheckInt16x8, simd.Int16x8.ShiftRightArithmetic))

	r.Define("int16x8.and", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.And))
	r.Define("int16x8.or", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.Or))
	r.Define("int16x8.xor", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.Xor))
	r.Define("int16x8.not", params(p), unary(simd.CheckInt16x8, simd.Int16x8.Not))

	r.Define("int16x8.equal", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.Equal))
	r.Define("int16x8.notEqual", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.NotEqual))
	r.Define("int16x8.lessThan", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.LessThan))
	r.Define("int16x8.lessThanOrEqual", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.LessThanOrEqual))
	r.Define("int16x8.greaterThan", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.GreaterThan))
	r.Define("int16x8.greaterThanOrEqual", params(p, p), binary(simd.CheckInt16x8, simd.Int16x8.GreaterThanOrEqual))

	r.Define("int16x8.swizzle", append(params(p), repeat(ParamIndex, 8)...), swizzle8(simd.CheckInt16x8, simd.Int16x8.Swizzle))
	r.Define("int16x8.shuffle", append(params(p, p), repeat(ParamIndex, 8)...), shuffle8(simd.CheckInt16x8, simd.Int16x8.Shuffle))
	r.Define("int16x8.select", params(ParamBool16x8, p, p), selectOp(simd.CheckBool16x8, simd.CheckInt16x8, simd.SelectInt16x8))
}

func registerInt8x16(r *Registry) {
	p := ParamInt8x16
	r.Define("int8x16", repeat(ParamNumber, 16), ctorNum16(simd.NewInt8x16))
	r.Define("int8x16.check", params(ParamVector), checkOp(simd.CheckInt8x16))
	r.Define("int8x16.extractLane", params(p, ParamLane), extract(simd.CheckInt8x16, simd.Int8x16.ExtractLane))
	r.Define("int8x16.unsignedExtractLane", params(p, ParamLane), extract(simd.CheckInt8x16, simd.Int8x16.UnsignedExtractLane))
	r.Define("int8x16.replaceLane", params(p, ParamLane, ParamNumber), replaceNum(simd.CheckInt8x16, simd.Int8x16.ReplaceLane))

	r.Define("int8x16.neg", params(p), unary(simd.CheckInt8x16, simd.Int8x16.Neg))
	r.Define("int8x16.abs", params(p), unary(simd.CheckInt8x16, simd.Int8x16.Abs))
	r.Define("int8x16.add", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.Add))
	r.Define("int8x16.sub", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.Sub))
	r.Define("int8x16.mul", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.Mul))
	r.Define("int8x16.addSaturate", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.AddSaturate))
	r.Define("int8x16.subSaturate", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.SubSaturate))

	r.Define("int8x16.shiftLeft", params(p, ParamShift), shiftOp(simd.CheckInt8x16, simd.Int8x16.ShiftLeft))
	r.Define("int8x16.shiftRightLogical", params(p, ParamShift), shiftOp(simd.CheckInt8x16, simd.Int8x16.ShiftRightLogical))
	r.Define("int8x16.shiftRightArithmetic", params(p, ParamShift), shiftOp(simd.CheckInt8x16, simd.Int8x16.ShiftRightArithmetic))

	r.Define("int8x16.and", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.And))
	r.Define("int8x16.or", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.Or))
	r.Define("int8x16.xor", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.Xor))
	r.Define("int8x16.not", params(p), unary(simd.CheckInt8x16, simd.Int8x16.Not))

	r.Define("int8x16.equal", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.Equal))
	r.Define("int8x16.notEqual", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.NotEqual))
	r.Define("int8x16.lessThan", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.LessThan))
	r.Define("int8x16.lessThanOrEqual", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.LessThanOrEqual))
	r.Define("int8x16.greaterThan", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.GreaterThan))
	r.Define("int8x16.greaterThanOrEqual", params(p, p), binary(simd.CheckInt8x16, simd.Int8x16.GreaterThanOrEqual))

	r.Define("int8x16.swizzle", append(params(p), repeat(ParamIndex, 16)...), swizzle16(simd.CheckInt8x16, simd.Int8x16.Swizzle))
	r.Define("int8x16.shuffle", append(params(p, p), repeat(ParamIndex, 16)...), shuffle16(simd.CheckInt8x16, simd.Int8x16.Shuffle))
	r.Define("int8x16.select", params(ParamBool8x16, p, p), selectOp(simd.CheckBool8x16, simd.CheckInt8x16, simd.SelectInt8x16))
}

func registerBools(r *Registry) {
	p4, p8, p16 := ParamBool32x4, ParamBool16x8, ParamBool8x16

	r.Define("bool32x4", repeat(ParamBool, 4), ctorBool4(simd.NewBool32x4))
	r.Define("bool32x4.check", params(ParamVector), checkOp(simd.CheckBool32x4))
	r.Define("bool32x4.extractLane", params(p4, ParamLane), extract(simd.CheckBool32x4, simd.Bool32x4.ExtractLane))
	r.Define("bool32x4.replaceLane", params(p4, ParamLane, ParamBool), replaceBool(simd.CheckBool32x4, simd.Bool32x4.ReplaceLane))
	r.Define("bool32x4.and", params(p4, p4), binary(simd.CheckBool32x4, simd.Bool32x4.And))
	r.Define("bool32x4.or", params(p4, p4), binary(simd.CheckBool32x4, simd.Bool32x4.Or))
	r.Define("bool32x4.xor", params(p4, p4), binary(simd.CheckBool32x4, simd.Bool32x4.Xor))
	r.Define("bool32x4.not", params(p4), unary(simd.CheckBool32x4, simd.Bool32x4.Not))
	r.Define("bool32x4.equal", params(p4, p4), binary(simd.CheckBool32x4, simd.Bool32x4.Equal))
	r.Define("bool32x4.notEqual", params(p4, p4), binary(simd.CheckBool32x4, simd.Bool32x4.NotEqual))
	r.Define("bool32x4.anyTrue", params(p4), unary(simd.CheckBool32x4, simd.Bool32x4.AnyTrue))
	r.Define("bool32x4.allTrue", params(p4), unary(simd.CheckBool32x4, simd.Bool32x4.AllTrue))
	r.Define("bool32x4.swizzle", append(params(p4), repeat(ParamIndex, 4)...), swizzle4(simd.CheckBool32x4, simd.Bool32x4.Swizzle))
	r.Define("bool32x4.shuffle", append(params(p4, p4), repeat(ParamIndex, 4)...), shuffle4(simd.CheckBool32x4, simd.Bool32x4.Shuffle))

	r.Define("bool16x8", repeat(ParamBool, 8), ctorBool8(simd.NewBool16x8))
	r.Define("bool16x8.check", params(ParamVector), checkOp(simd.CheckBool16x8))
	r.Define("bool16x8.extractLane", params(p8, ParamLane), extract(simd.CheckBool16x8, simd.Bool16x8.ExtractLane))
	r.Define("bool16x8.replaceLane", params(p8, ParamLane, ParamBool), replaceBool(simd.CheckBool16x8, simd.Bool16x8.ReplaceLane))
	r.Define("bool16x8.and", params(p8, p8), binary(simd.CheckBool16x8, simd.Bool16x8.And))
	r.Define("bool16x8.or", params(p8, p8), binary(simd.CheckBool16x8, simd.Bool16x8.Or))
	r.Define("bool16x8.xor", params(p8, p8), binary(simd.CheckBool16x8, simd.Bool16x8.Xor))
	r.Define("bool16x8.not", params(p8), unary(simd.CheckBool16x8, simd.Bool16x8.Not))
	r.Define("bool16x8.equal", params(p8, p8), binary(simd.CheckBool16x8, simd.Bool16x8.Equal))
	r.Define("bool16x8.notEqual", params(p8, p8), binary(simd.CheckBool16x8, simd.Bool16x8.NotEqual))
	r.Define("bool16x8.anyTrue", params(p8), unary(simd.CheckBool16x8, simd.Bool16x8.AnyTrue))
	r.Define("bool16x8.allTrue", params(p8), unary(simd.CheckBool16x8, simd.Bool16x8.AllTrue))
	r.Define("bool16x8.swizzle", append(params(p8), repeat(ParamIndex, 8)...), swizzle8(simd.CheckBool16x8, simd.Bool16x8.Swizzle))
	r.Define("bool16x8.shuffle", append(params(p8, p8), repeat(ParamIndex, 8)...), shuffle8(simd.CheckBool16x8, simd.Bool16x8.Shuffle))

	r.Define("bool8x16", repeat(ParamBool, 16), ctorBool16(simd.NewBool8x16))
	r.Define("bool8x16.check", params(ParamVector), checkOp(simd.CheckBool8x16))
	r.Define("bool8x16.extractLane", params(p16, ParamLane), extract(simd.CheckBool8x16, simd.Bool8x16.ExtractLane))
	r.Define("bool8x16.replaceLane", params(p16, ParamLane, ParamBool), replaceBool(simd.CheckBool8x16, simd.Bool8x16.ReplaceLane))
	r.Define("bool8x16.and", params(p16, p16), binary(simd.CheckBool8x16, simd.Bool8x16.And))
	r.Define("bool8x16.or", params(p16, p16), binary(simd.CheckBool8x16, simd.Bool8x16.Or))
	r.Define("bool8x16.xor", params(p16, p16), binary(simd.CheckBool8x16, simd.Bool8x16.Xor))
	r.Define("bool8x16.not", params(p16), unary(simd.CheckBool8x16, simd.Bool8x16.Not))
	r.Define("bool8x16.equal", params(p16, p16), binary(simd.CheckBool8x16, simd.Bool8x16.Equal))
	r.Define("bool8x16.notEqual", params(p16, p16), binary(simd.CheckBool8x16, simd.Bool8x16.NotEqual))
	r.Define("bool8x16.anyTrue", params(p16), unary(simd.CheckBool8x16, simd.Bool8x16.AnyTrue))
	r.Define("bool8x16.allTrue", params(p16), unary(simd.CheckBool8x16, simd.Bool8x16.AllTrue))
	r.Define("bool8x16.swizzle", append(params(p16), repeat(ParamIndex, 16)...), swizzle16(simd.CheckBool8x16, simd.Bool8x16.Swizzle))
	r.Define("bool8x16.shuffle", append(params(p16, p16), repeat(ParamIndex, 16)...), shuffle16(simd.CheckBool8x16, simd.Bool8x16.Shuffle))
}

func registerConversions(r *Registry) {
	r.Define("float32x4.fromInt32x4", params(ParamInt32x4), unary(simd.CheckInt32x4, simd.Float32x4FromInt32x4))
	r.Define("int32x4.fromFloat32x4", params(ParamFloat32x4), unaryErr(simd.CheckFloat32x4, simd.Int32x4FromFloat32x4))

	r.Define("float32x4.fromInt32x4Bits", params(ParamInt32x4), unary(simd.CheckInt32x4, simd.Float32x4FromInt32x4Bits))
	r.Define("float32x4.fromInt16x8Bits", params(ParamInt16x8), unary(simd.CheckInt16x8, simd.Float32x4FromInt16x8Bits))
	r.Define("float32x4.fromInt8x16Bits", params(ParamInt8x16), unary(simd.CheckInt8x16, simd.Float32x4FromInt8x16Bits))
	r.Define("int32x4.fromFloat32x4Bits", params(ParamFloat32x4), unary(simd.CheckFloat32x4, simd.Int32x4FromFloat32x4Bits))
	r.Define("int32x4.fromInt16x8Bits", params(ParamInt16x8), unary(simd.CheckInt16x8, simd.Int32x4FromInt16x8Bits))
	r.Define("int32x4.fromInt8x16Bits", params(ParamInt8x16), unary(simd.CheckInt8x16, simd.Int32x4FromInt8x16Bits))
	r.Define("int16x8.fromFloat32x4Bits", params(ParamFloat32x4), unary(simd.CheckFloat32x4, simd.Int16x8FromFloat32x4Bits))
	r.Define("int16x8.fromInt32x4Bits", params(ParamInt32x4), unary(simd.CheckInt32x4, simd.Int16x8FromInt32x4Bits))
	r.Define("int16x8.fromInt8x16Bits", params(ParamInt8x16), unary(simd.CheckInt8x16, simd.Int16x8FromInt8x16Bits))
	r.Define("int8x16.fromFloat32x4Bits", params(ParamFloat32x4), unary(simd.CheckFloat32x4, simd.Int8x16FromFloat32x4Bits))
	r.Define("int8x16.fromInt32x4Bits", params(ParamInt32x4), unary(simd.CheckInt32x4, simd.Int8x16FromInt32x4Bits))
	r.Define("int8x16.fromInt16x8Bits", params(ParamInt16x8), unary(simd.CheckInt16x8, simd.Int8x16FromInt16x8Bits))
}

func registerPredicates(r *Registry) {
	r.Define("simd.bitwiseEqual", params(ParamVector, ParamVector), vectorPair(simd.BitwiseEqual))
	r.Define("simd.sameValue", params(ParamVector, ParamVector), vectorPair(simd.SameValue))
	r.Define("simd.sameValueZero", params(ParamVector, ParamVector), vectorPair(simd.SameValueZero))
}
