package dispatch

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/simd128/errors"
)

// Handler executes an operation. The argument slice length has already
// been checked against the operation's parameter schema.
type Handler func(args []any) (any, error)

// Param names the expected shape of one argument.
type Param string

const (
	ParamFloat32x4 Param = "float32x4"
	ParamInt32x4   Param = "int32x4"
	ParamBool32x4  Param = "bool32x4"
	ParamInt16x8   Param = "int16x8"
	ParamBool16x8  Param = "bool16x8"
	ParamInt8x16   Param = "int8x16"
	ParamBool8x16  Param = "bool8x16"
	ParamVector    Param = "vector" // any of the seven kinds
	ParamNumber    Param = "number"
	ParamBool      Param = "bool"
	ParamLane      Param = "lane"  // non-negative lane index
	ParamIndex     Param = "index" // swizzle/shuffle source index
	ParamShift     Param = "shift" // shift amount, wraps as uint32
)

// Op describes a registered operation.
type Op struct {
	Name    string
	Params  []Param
	Handler Handler
}

// Registry maps operation names like "float32x4.add" to handlers.
type Registry struct {
	ops map[string]*Op
	mu  sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]*Op)}
}

// Define registers an operation.
// Define overwrites any existing operation with the same name.
func (r *Registry) Define(name string, params []Param, fn Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[name] = &Op{Name: name, Params: params, Handler: fn}
}

// Lookup returns an operation by name, or nil if not found.
func (r *Registry) Lookup(name string) *Op {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ops[name]
}

// Ops returns all registered operation names in sorted order.
func (r *Registry) Ops() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call looks up an operation by name, checks arity and invokes it.
// Argument kinds are checked by the handler itself.
func (r *Registry) Call(name string, args ...any) (any, error) {
	op := r.Lookup(name)
	if op == nil {
		err := errors.NotFound(name)
		Logger().Debug("unknown operation", zap.String("op", name))
		return nil, err
	}
	if len(args) != len(op.Params) {
		err := errors.BadArity(name, len(op.Params), len(args))
		Logger().Debug("arity mismatch",
			zap.String("op", name),
			zap.Int("want", len(op.Params)),
			zap.Int("got", len(args)))
		return nil, err
	}

	out, err := op.Handler(args)
	if err != nil {
		Logger().Debug("operation failed", zap.String("op", name), zap.Error(err))
		return nil, err
	}
	return out, nil
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the shared registry with every operation registered.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerAll(defaultRegistry)
	})
	return defaultRegistry
}

// Call invokes an operation on the default registry.
func Call(name string, args ...any) (any, error) {
	return Default().Call(name, args...)
}

// Ops lists the default registry's operation names.
func Ops() []string {
	return Default().Ops()
}
