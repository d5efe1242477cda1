package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which engine raised the error
type Phase string

const (
	PhaseLane     Phase = "lane"     // construction and lane access
	PhaseArith    Phase = "arith"    // arithmetic and bitwise ops
	PhaseCompare  Phase = "compare"  // relational and equality ops
	PhasePermute  Phase = "permute"  // swizzle/shuffle/select
	PhaseConvert  Phase = "convert"  // numeric and bit casts
	PhaseDispatch Phase = "dispatch" // named-operation boundary
)

// Kind categorizes the error
type Kind string

const (
	KindTypeError    Kind = "type_error"  // operand is not the required vector kind
	KindRangeError   Kind = "range_error" // lane/permute index or unrepresentable cast
	KindArity        Kind = "arity"       // wrong argument count at the dispatch boundary
	KindNotFound     Kind = "not_found"   // unknown operation name
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Want   string
	Got    string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Want != "" || e.Got != "" {
		b.WriteString(": ")
		if e.Want != "" && e.Got != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
			b.WriteString(", got ")
			b.WriteString(e.Got)
		} else if e.Want != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Got)
		}
	}

	if e.Detail != "" {
		if e.Want != "" || e.Got != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsTypeError reports whether err is a kind-mismatch failure.
func IsTypeError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == KindTypeError
	}
	return false
}

// IsRangeError reports whether err is an index-bound or cast-range failure.
func IsRangeError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == KindRangeError
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the argument path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Want sets the required vector kind name
func (b *Builder) Want(k string) *Builder {
	b.err.Want = k
	return b
}

// Got sets the actual vector kind name
func (b *Builder) Got(k string) *Builder {
	b.err.Got = k
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a kind-mismatch error
func TypeMismatch(phase Phase, want, got string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindTypeError,
		Want:  want,
		Got:   got,
	}
}

// LaneOutOfBounds creates a lane-index range error
func LaneOutOfBounds(phase Phase, lane, laneCount int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRangeError,
		Detail: fmt.Sprintf("lane %d out of bounds (lane count %d)", lane, laneCount),
		Value:  lane,
	}
}

// IndexOutOfBounds creates a permutation-index range error
func IndexOutOfBounds(phase Phase, position, index, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRangeError,
		Detail: fmt.Sprintf("index %d at position %d out of bounds (limit %d)", index, position, limit),
		Value:  index,
	}
}

// Unrepresentable creates a cast-range error for a lane value that does
// not fit the destination lane type
func Unrepresentable(phase Phase, lane int, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRangeError,
		Want:   target,
		Detail: fmt.Sprintf("lane %d value %v not representable", lane, value),
		Value:  value,
	}
}

// BadArity creates a wrong-argument-count error
func BadArity(op string, want, got int) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindArity,
		Detail: fmt.Sprintf("%s takes %d argument(s), got %d", op, want, got),
	}
}

// NotFound creates an unknown-operation error
func NotFound(op string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("operation %q not registered", op),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
