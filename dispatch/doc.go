// Package dispatch exposes every vector operation through a named
// registry, for hosts that receive operation names and loosely typed
// arguments at runtime.
//
// # Main Types
//
//   - Registry: maps names like "float32x4.add" to operations
//   - Op: one registered operation with its parameter schema
//   - Handler: the adapter from []any arguments to the typed core
//
// # Thread Safety
//
// Registry is safe for concurrent use.
//
// # Argument Coercion
//
// Vector arguments are narrowed with the core Check functions and
// fail with a type error on kind mismatch. Scalar arguments follow
// the numeric conversion rules of the core: lane values narrow by
// truncation and wrap-around, shift amounts reinterpret as uint32.
// Lane and permute indices must be integral; their range is checked
// by the operation itself.
//
// # Example
//
//	a, _ := dispatch.Call("float32x4", 1, 2, 3, 4)
//	b, _ := dispatch.Call("float32x4", 5, 6, 7, 8)
//	sum, _ := dispatch.Call("float32x4.add", a, b)
package dispatch
