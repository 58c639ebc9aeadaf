package funcz

import "strings"

// composed is an ordered sequence of Callables applied right-to-left.
type composed struct {
	name Name
	fns  []Callable
}

// Compose builds a Callable from an ordered sequence of Callables.
// Composition order is right-to-left over the listed functions: the
// last-listed function is applied first to the raw call arguments, and each
// preceding function receives the prior result, ending with the
// first-listed function producing the final result.
//
//	f := funcz.Compose(double, square)
//	// f.Call(x) == double(square(x))
//
// Compose with no functions behaves as identity on its first argument.
// Compose holds only references to its constituents and no mutable state,
// so composed Callables are freely curry-able and memoizable.
//
// For the mirror-image left-to-right application of functions to a value,
// see Pipe. For fixed unary shapes, Compose2 and Compose3 avoid the dynamic
// layer entirely.
func Compose(fns ...Callable) Callable {
	names := make([]string, len(fns))
	for i, fn := range fns {
		names[i] = string(fn.Name())
	}
	return &composed{
		name: "compose(" + strings.Join(names, ",") + ")",
		fns:  fns,
	}
}

// Call implements the Callable interface. Only the innermost (last-listed)
// function sees the raw argument list; every other function receives the
// single result of the stage before it.
func (c *composed) Call(args ...any) (any, error) {
	if len(c.fns) == 0 {
		if len(args) == 0 {
			return nil, nil
		}
		return args[0], nil
	}

	v, err := c.fns[len(c.fns)-1].Call(args...)
	if err != nil {
		return nil, prependPath(c.name, err)
	}
	for i := len(c.fns) - 2; i >= 0; i-- {
		v, err = c.fns[i].Call(v)
		if err != nil {
			return nil, prependPath(c.name, err)
		}
	}
	return v, nil
}

// Signature implements the Callable interface, reporting the arity of the
// innermost function since it is the one that receives the raw arguments.
func (c *composed) Signature() Signature {
	if len(c.fns) == 0 {
		return Signature{Required: 1, Results: 1}
	}
	sig := c.fns[len(c.fns)-1].Signature()
	outer := c.fns[0].Signature()
	sig.Results = outer.Results
	sig.ReturnsErr = outer.ReturnsErr
	return sig
}

// Name implements the Callable interface.
func (c *composed) Name() Name {
	return c.name
}

// Pipe threads a value through an ordered sequence of Callables
// left-to-right: the first function is applied to the value, the second to
// that result, and so on. It is the mirror of Compose, eager rather than
// deferred - Pipe applies immediately and returns the final result.
//
//	v, err := funcz.Pipe(3, square, double)
//	// v == double(square(3)) == 18
//
// The first error encountered stops the pipe; errors from caller-supplied
// functions propagate unchanged.
func Pipe(value any, fns ...Callable) (any, error) {
	v := value
	for _, fn := range fns {
		var err error
		v, err = fn.Call(v)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Identity returns its argument unchanged. It is the left and right unit of
// composition and the default key function of the combinators that take one.
func Identity[T any](x T) T {
	return x
}

// Compose2 composes two typed functions right-to-left without reflection:
// Compose2(f, g)(x) == f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 composes three typed functions right-to-left without reflection:
// Compose3(f, g, h)(x) == f(g(h(x))).
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}
