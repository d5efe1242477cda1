// Package simd128 implements a fixed-width 128-bit SIMD value library:
// seven immutable vector kinds and the complete set of lane-wise
// operations over them.
//
// # Vector Kinds
//
// Every vector is 128 bits of lane storage in one of seven layouts:
//
//	Kind        Lanes   Lane type
//	─────────────────────────────────
//	Float32x4   4       float32
//	Int32x4     4       int32
//	Bool32x4    4       bool (mask)
//	Int16x8     8       int16
//	Bool16x8    8       bool (mask)
//	Int8x16     16      int8
//	Bool8x16    16      bool (mask)
//
// Vectors are Go array values: construction, lane replacement and every
// arithmetic op produce a fresh value and never mutate an operand, so
// sharing a vector across goroutines needs no locking.
//
// # Operations
//
//	Lane access      New*, ExtractLane, UnsignedExtractLane, ReplaceLane, Check*
//	Arithmetic       Neg, Abs, Sqrt, RecipApprox, RecipSqrtApprox,
//	                 Add, Sub, Mul, Div, Min, Max, MinNumber, MaxNumber,
//	                 AddSaturate, SubSaturate, ShiftLeft,
//	                 ShiftRightLogical, ShiftRightArithmetic,
//	                 And, Or, Xor, Not
//	Relational       Equal, NotEqual, LessThan, LessThanOrEqual,
//	                 GreaterThan, GreaterThanOrEqual (produce mask vectors)
//	Reduction        AnyTrue, AllTrue
//	Permutation      Swizzle, Shuffle, Select*
//	Conversion       Float32x4FromInt32x4, Int32x4FromFloat32x4,
//	                 *From*Bits (raw 128-bit reinterpretation)
//	Equality         BitwiseEqual, SameValue, SameValueZero
//
// # Numeric Semantics
//
// Results are bit-exact and reproducible. Float lanes follow IEEE-754
// single precision: NaN and infinities are ordinary results, Min/Max
// break the +0/-0 tie by sign bit, and MinNumber/MaxNumber suppress a
// NaN operand instead of propagating it. Integer lanes wrap with two's
// complement truncation except the explicitly saturating ops on the
// narrow kinds. Shift amounts are unsigned reinterpretations of signed
// inputs, so a negative shift count is a very large one.
//
// # Errors
//
// The library fails in exactly two ways, both from the errors
// subpackage: a type_error when a boundary value is not the required
// vector kind (the Check functions), and a range_error when a lane or
// permutation index is out of bounds or a value-preserving cast meets
// an unrepresentable lane. Numeric edge cases are never errors.
//
// # Packages
//
//	simd128/           vector types and all lane operations
//	├── dispatch/      named-operation registry for untyped host calls
//	├── errors/        structured error types
//	└── cmd/simdcalc/  interactive lane calculator
package simd128
