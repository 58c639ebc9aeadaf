// Package funcz provides a lightweight, type-safe toolkit of composable
// operations over functions, lazy sequences, and maps in Go.
//
// # Overview
//
// funcz enables developers to express data transformations declaratively by
// combining small, focused operations: currying, composition, memoization,
// and a family of single-pass lazy sequence combinators. It is a library
// layer, not an application - caller code supplies functions, sequences, and
// maps and consumes new functions, lazy sequences, and materialized results.
//
// # Core Concepts
//
// The function side of the library is built around a single, uniform
// interface:
//
//	type Callable interface {
//	    Call(args ...any) (any, error)
//	    Signature() Signature
//	    Name() Name
//	}
//
// Key components:
//   - F: lifts any Go function into a Callable via reflection
//   - Curry: partial application driven by the Callable's declared arity
//   - Compose / Pipe / Juxt / Complement: build new Callables from old ones
//   - Memo: caches a Callable's results keyed by its arguments
//
// Everything that wraps a Callable is itself a Callable, so wrappers nest in
// any order: a curried composition can be memoized, a memoized function can
// be curried, and all of them can be handed to the sequence combinators.
//
// Alongside the dynamic layer, typed generic helpers cover the dominant
// fixed-arity cases with zero reflection: Identity, Compose2, Curry2, Do,
// ComplementOf, Memoize1, and friends.
//
// # Lazy Sequences
//
// Sequences are iter.Seq[T] values: pull-based, possibly infinite, consumed
// in a single forward pass. Combinators such as Take, Drop, Unique,
// Partition, Interpose, Accumulate, and Iterate return new lazy sequences;
// GroupBy, Frequencies, and ReduceBy materialize maps because their
// semantics require full consumption. Restartability is a property of the
// source sequence, never of the combinator.
//
// # Quick Start
//
//	add := funcz.F("add", func(a, b int) int { return a + b })
//	inc := funcz.Curry(add, 1)
//
//	v, err := inc.Call(41)
//	// v: 42, err: nil
//
//	double := funcz.F("double", func(n int) int { return n * 2 })
//	square := funcz.F("square", func(n int) int { return n * n })
//	f := funcz.Compose(double, square)
//
//	v, err = f.Call(3)
//	// v: 18 (square first, then double)
//
//	evens := funcz.Remove(func(n int) bool { return n%2 != 0 },
//	    funcz.Iterate(func(n int) int { return n + 1 }, 0))
//	got := funcz.Materialize(funcz.Take(3, evens))
//	// got: [0 2 4]
//
// # Error Handling
//
// The toolkit surfaces its own failures through sentinel errors
// (ErrArityMismatch, ErrSignatureUnavailable, ErrUnhashableArguments,
// ErrKeyNotFound, ErrIndexOutOfRange) wrapped in a *CallError carrying the
// path of named wrappers the failure crossed. Errors returned by
// caller-supplied functions propagate through every wrapper unchanged - the
// toolkit never catches or reinterprets them.
//
//	v, err := memoized.Call("key")
//	if err != nil {
//	    var callErr *funcz.CallError
//	    if errors.As(err, &callErr) {
//	        log.Printf("failed at: %s", strings.Join(callErr.Path, " -> "))
//	    }
//	}
//
// # Concurrency
//
// funcz is single-threaded and synchronous by design. The only mutable
// shared state is the Memo cache; by default the caller is responsible for
// synchronizing concurrent access to a shared Memo, and WithLocking opts in
// to internal locking with at-most-once computation per key.
package funcz

// Name identifies a Callable for debugging and error reporting.
// Using this type encourages storing names as constants rather than
// using inline strings throughout your code.
//
// Example:
//
//	const (
//	    ParsePriceName Name = "parse-price"
//	    ApplyTaxName   Name = "apply-tax"
//	)
//
//	parsePrice := funcz.F(ParsePriceName, parseFunc)
type Name = string

// Callable is the uniform dynamic function abstraction of funcz. Any value
// invocable with a variable argument count implements it, and every wrapper
// the toolkit builds (Curried, composed, Memo) implements it too, enabling
// unrestricted layering.
//
// Key design principles:
//   - Uniform invocation through Call regardless of underlying arity
//   - Declared arity exposed through Signature for partial application
//   - Named components for debugging and error paths
//   - Wrappers hold references only, never copies of the wrapped function
type Callable interface {
	// Call invokes the callable with the given positional arguments.
	// Errors produced by the underlying function propagate unchanged.
	Call(args ...any) (any, error)

	// Signature reports the callable's declared arity.
	Signature() Signature

	// Name returns the callable's name for debugging and error reporting.
	Name() Name
}

// CallableFunc adapts a plain variadic function into a Callable with an
// explicitly declared Signature. It is the escape hatch for callables whose
// logical arity cannot be recovered by reflection, such as generic variadic
// adapters.
//
// Example:
//
//	sum := funcz.CallableFunc{
//	    FuncName: "sum",
//	    Sig:      funcz.Signature{Required: 1, Variadic: true},
//	    Fn: func(args ...any) (any, error) {
//	        total := 0
//	        for _, a := range args {
//	            total += a.(int)
//	        }
//	        return total, nil
//	    },
//	}
type CallableFunc struct {
	Fn       func(args ...any) (any, error)
	Sig      Signature
	FuncName Name
}

// Call implements the Callable interface.
func (c CallableFunc) Call(args ...any) (any, error) {
	return c.Fn(args...)
}

// Signature implements the Callable interface.
func (c CallableFunc) Signature() Signature {
	return c.Sig
}

// Name implements the Callable interface.
func (c CallableFunc) Name() Name {
	return c.FuncName
}
