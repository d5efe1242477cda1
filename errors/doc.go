// Package errors provides structured error types for the simd128 library.
//
// Errors are categorized by Phase (which engine raised the error) and Kind
// (error category). The library surfaces exactly two failure classes to the
// host: type_error for kind mismatches on typed operands, and range_error for
// out-of-bounds lane/permutation indices and unrepresentable numeric casts.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindRangeError).
//		Want("int32x4").
//		Detail("lane 2 value NaN not representable").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LaneOutOfBounds(errors.PhaseLane, 4, 4)
//	err := errors.TypeMismatch(errors.PhaseCompare, "bool32x4", "int32x4")
//
// All errors implement the standard error interface and support errors.Is/As.
// IsTypeError and IsRangeError classify an error by failure class.
package errors
