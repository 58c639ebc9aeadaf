package funcz

// Curried wraps a base Callable together with an immutable list of
// already-bound positional arguments. Invoking a Curried merges the new
// arguments with the stored ones; once the merged count satisfies the base
// signature's minimum, the base is invoked and its result returned,
// otherwise a new Curried holding the merged state is returned.
//
// Curried values are immutable - every invocation either completes the call
// or produces a fresh wrapper, never mutating the existing one. A Curried
// is an ordinary Callable and can be composed, memoized, or handed to the
// sequence combinators like any other.
//
// The result of an unsaturated invocation is delivered two ways: Call
// returns the new wrapper as its result value, and With returns it with a
// concrete type for chained application:
//
//	add3 := funcz.Curry(funcz.F("add3", func(a, b, c int) int { return a + b + c }))
//	v, err := add3.With(1).With(2).Call(3)
//	// v: 6, err: nil
//
// Splits are irrelevant: With(1, 2).Call(3), With(1).Call(2, 3), and
// Call(1, 2, 3) all invoke the base identically.
type Curried struct {
	base  Callable
	name  Name
	bound []any
}

// Curry wraps a Callable for partial application, optionally pre-binding an
// initial set of positional arguments. Construction never invokes the base,
// even when the bound arguments already satisfy its arity - invocation
// happens on the first Call.
//
// Curry is ideal for:
//   - Adapting multi-argument functions to single-argument contexts
//   - Building families of specialized functions from one general one
//   - Deferring argument collection across call sites
//
// Example:
//
//	mul := funcz.F("mul", func(a, b int) int { return a * b })
//	double := funcz.Curry(mul, 2)
//	v, _ := double.Call(21)
//	// v: 42
func Curry(c Callable, bound ...any) *Curried {
	return &Curried{
		base:  c,
		name:  c.Name(),
		bound: bound,
	}
}

// Call implements the Callable interface. If the merged argument count
// satisfies the base's minimum arity, the base is invoked and its result and
// error propagate unchanged. Otherwise a new *Curried with the merged state
// is returned as the result value.
//
// Over-supplying arguments is forwarded to the base, which decides - a
// non-variadic base fails with ErrArityMismatch.
func (c *Curried) Call(args ...any) (any, error) {
	merged := c.merge(args)
	if len(merged) >= c.base.Signature().Required {
		v, err := c.base.Call(merged...)
		if err != nil {
			return v, prependPath(c.name, err)
		}
		return v, nil
	}
	return &Curried{base: c.base, name: c.name, bound: merged}, nil
}

// With returns a new Curried with the given arguments appended to the bound
// state, never invoking the base. It is the typed counterpart of an
// unsaturated Call, convenient for chaining.
func (c *Curried) With(args ...any) *Curried {
	return &Curried{base: c.base, name: c.name, bound: c.merge(args)}
}

// Bound returns a copy of the currently bound arguments.
func (c *Curried) Bound() []any {
	out := make([]any, len(c.bound))
	copy(out, c.bound)
	return out
}

// Signature implements the Callable interface. The reported required count
// reflects the arguments still missing after those already bound.
func (c *Curried) Signature() Signature {
	sig := c.base.Signature()
	sig.Required -= len(c.bound)
	if sig.Required < 0 {
		sig.Required = 0
	}
	return sig
}

// Name implements the Callable interface.
func (c *Curried) Name() Name {
	return c.name
}

// merge produces a fresh argument slice; the stored state is never aliased.
func (c *Curried) merge(args []any) []any {
	merged := make([]any, 0, len(c.bound)+len(args))
	merged = append(merged, c.bound...)
	merged = append(merged, args...)
	return merged
}

// Curry2 transforms a two-argument function into a chain of one-argument
// functions. It is the zero-reflection counterpart of Curry for the fixed
// binary case.
//
//	add := funcz.Curry2(func(a, b int) int { return a + b })
//	inc := add(1)
//	// inc(41) == 42
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 transforms a three-argument function into a chain of one-argument
// functions.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}
