package funcz

import (
	"reflect"
)

// FOption configures how F lifts a function into a Callable.
type FOption func(*fnCallable)

// WithArity overrides the introspected minimum argument count. Use it when
// reflection cannot recover a callable's logical arity, such as a
// func(...any) adapter that really expects two arguments.
func WithArity(n int) FOption {
	return func(f *fnCallable) {
		f.sig.Required = n
		f.declared = true
	}
}

// WithVariadic declares that the callable accepts unbounded extra arguments
// beyond its required count.
func WithVariadic() FOption {
	return func(f *fnCallable) {
		f.sig.Variadic = true
		f.declared = true
	}
}

// F lifts an arbitrary Go function into a Callable. The function's arity is
// determined by reflection and cached per type; a trailing error result is
// recognized and surfaced through Call's error return.
//
// F is the entry point to the dynamic layer - use it when a function needs
// to participate in currying, composition, or memoization at arbitrary
// arity. For fixed unary or binary shapes, the typed helpers (Compose2,
// Curry2, Memoize1, ...) avoid reflection entirely.
//
// Result mapping:
//   - no results: Call returns nil
//   - one result: returned as-is
//   - multiple non-error results: returned as []any in declaration order
//   - a trailing error result becomes Call's error return
//
// Calling with an incompatible argument count or incompatible argument
// types fails with ErrArityMismatch before the function is invoked. Values
// that are not functions yield a Callable whose every invocation fails with
// ErrSignatureUnavailable, unless the value already implements Callable, in
// which case it is returned unchanged.
//
// Example:
//
//	add := funcz.F("add", func(a, b int) int { return a + b })
//	v, err := add.Call(2, 3)
//	// v: 5, err: nil
func F(name Name, fn any, opts ...FOption) Callable {
	if c, ok := fn.(Callable); ok {
		return c
	}

	sig, err := Introspect(fn)
	if err != nil {
		return errCallable{name: name}
	}

	f := &fnCallable{
		name: name,
		fn:   reflect.ValueOf(fn),
		sig:  sig,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// fnCallable is the reflection-backed Callable produced by F.
type fnCallable struct {
	fn       reflect.Value
	name     Name
	sig      Signature
	declared bool
}

// Call implements the Callable interface. Arguments are checked against the
// function's declared parameter count and types; the underlying function's
// own error result, if any, propagates unchanged.
func (f *fnCallable) Call(args ...any) (any, error) {
	typ := f.fn.Type()

	if typ.IsVariadic() {
		if len(args) < typ.NumIn()-1 {
			return nil, newCallError(f.name, ErrArityMismatch, args)
		}
	} else if f.sig.Variadic {
		// Declared variadic over a fixed-parameter function: extra
		// arguments beyond the declared count cannot be bound.
		if len(args) != typ.NumIn() {
			return nil, newCallError(f.name, ErrArityMismatch, args)
		}
	} else if len(args) != typ.NumIn() {
		return nil, newCallError(f.name, ErrArityMismatch, args)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		paramType := paramTypeAt(typ, i)
		if arg == nil {
			in[i] = reflect.Zero(paramType)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(paramType) {
			return nil, newCallError(f.name, ErrArityMismatch, args)
		}
		in[i] = av
	}

	out := f.fn.Call(in)
	return f.liftResults(out)
}

// liftResults converts reflect results into Call's (any, error) shape.
func (f *fnCallable) liftResults(out []reflect.Value) (any, error) {
	var err error
	if f.sig.ReturnsErr {
		last := out[len(out)-1]
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		out = out[:len(out)-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		results := make([]any, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results, err
	}
}

// Signature implements the Callable interface.
func (f *fnCallable) Signature() Signature {
	return f.sig
}

// Name implements the Callable interface.
func (f *fnCallable) Name() Name {
	return f.name
}

// paramTypeAt returns the effective parameter type at position i, unrolling
// the variadic tail.
func paramTypeAt(typ reflect.Type, i int) reflect.Type {
	if typ.IsVariadic() && i >= typ.NumIn()-1 {
		return typ.In(typ.NumIn() - 1).Elem()
	}
	return typ.In(i)
}

// errCallable stands in for a value whose signature could not be
// determined. Every invocation fails with ErrSignatureUnavailable.
type errCallable struct {
	name Name
}

func (e errCallable) Call(args ...any) (any, error) {
	return nil, newCallError(e.name, ErrSignatureUnavailable, args)
}

func (e errCallable) Signature() Signature {
	return Signature{}
}

func (e errCallable) Name() Name {
	return e.name
}
