package funcz

import "strings"

// juxtaposed fans one argument list out to several Callables.
type juxtaposed struct {
	name Name
	fns  []Callable
}

// Juxt returns a Callable that invokes every listed function with the same
// arguments and returns the ordered slice of their results. Result order
// matches listing order, regardless of the functions' own semantics.
//
//	minmax := funcz.Juxt(minC, maxC)
//	v, _ := minmax.Call(3, 1, 2)
//	// v: []any{1, 3}
//
// The first error stops the fan-out; caller errors propagate unchanged.
// Like Compose, Juxt holds only references to its constituents, so the
// result is curry-able and memoizable.
func Juxt(fns ...Callable) Callable {
	names := make([]string, len(fns))
	for i, fn := range fns {
		names[i] = string(fn.Name())
	}
	return &juxtaposed{
		name: "juxt(" + strings.Join(names, ",") + ")",
		fns:  fns,
	}
}

// Call implements the Callable interface.
func (j *juxtaposed) Call(args ...any) (any, error) {
	results := make([]any, len(j.fns))
	for i, fn := range j.fns {
		v, err := fn.Call(args...)
		if err != nil {
			return nil, prependPath(j.name, err)
		}
		results[i] = v
	}
	return results, nil
}

// Signature implements the Callable interface. The strictest constituent
// wins: the highest required count, variadic only if all are.
func (j *juxtaposed) Signature() Signature {
	sig := Signature{Variadic: len(j.fns) > 0, Results: 1}
	for _, fn := range j.fns {
		s := fn.Signature()
		if s.Required > sig.Required {
			sig.Required = s.Required
		}
		if !s.Variadic {
			sig.Variadic = false
		}
	}
	return sig
}

// Name implements the Callable interface.
func (j *juxtaposed) Name() Name {
	return j.name
}

// complemented negates a predicate Callable.
type complemented struct {
	fn Callable
}

// Complement returns a Callable computing the boolean negation of the
// wrapped callable's result. The wrapped callable must produce a bool;
// anything else fails with ErrNonBooleanResult.
//
//	isOdd := funcz.Complement(isEven)
func Complement(fn Callable) Callable {
	return &complemented{fn: fn}
}

// Call implements the Callable interface.
func (c *complemented) Call(args ...any) (any, error) {
	v, err := c.fn.Call(args...)
	if err != nil {
		return nil, prependPath(c.Name(), err)
	}
	b, ok := v.(bool)
	if !ok {
		return nil, newCallError(c.Name(), ErrNonBooleanResult, args)
	}
	return !b, nil
}

// Signature implements the Callable interface.
func (c *complemented) Signature() Signature {
	sig := c.fn.Signature()
	sig.Results = 1
	sig.ReturnsErr = false
	return sig
}

// Name implements the Callable interface.
func (c *complemented) Name() Name {
	return "complement(" + c.fn.Name() + ")"
}

// ComplementOf negates a typed predicate without reflection.
func ComplementOf[T any](pred func(T) bool) func(T) bool {
	return func(x T) bool {
		return !pred(x)
	}
}

// Do invokes fn on x for its side effect and returns x unchanged. It is a
// pass-through with an observable effect, useful for inserting logging or
// collection into a chain of transformations:
//
//	v := funcz.Do(func(n int) { seen = append(seen, n) }, 42)
//	// v: 42, seen: [... 42]
func Do[T any](fn func(T), x T) T {
	fn(x)
	return x
}

// DoCall is the dynamic counterpart of Do: it invokes fn with x, discards
// the result, and returns x. An error from fn propagates and suppresses the
// pass-through.
func DoCall(fn Callable, x any) (any, error) {
	if _, err := fn.Call(x); err != nil {
		return nil, err
	}
	return x, nil
}
