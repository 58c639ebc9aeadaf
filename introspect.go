package funcz

import (
	"reflect"
	"sync"
)

// Signature describes a callable's declared arity: how many positional
// arguments it requires before invocation can proceed, and whether it
// accepts unbounded extra arguments beyond that.
//
// Signature is purely informational. It underlies the Curry engine's
// decision of whether enough arguments have been collected, and has no
// side effects of its own.
type Signature struct {
	// Required is the minimum number of positional arguments.
	Required int

	// Variadic reports whether the callable accepts any number of extra
	// positional arguments beyond Required.
	Variadic bool

	// Results is the number of non-error results the callable produces.
	Results int

	// ReturnsErr reports whether the callable's final result is an error.
	ReturnsErr bool
}

var (
	// signatureCache stores introspected signatures per function type to
	// avoid repeated reflection.
	signatureCache = make(map[reflect.Type]Signature)
	// signatureCacheMu protects concurrent access to the signature cache.
	signatureCacheMu sync.RWMutex
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Introspect determines the Signature of an arbitrary Go function via
// reflection. Results are cached per function type, making subsequent calls
// for the same type efficient. This function is safe for concurrent use.
//
// A trailing error result is recognized and excluded from the Results count.
// Values that are not functions cannot be introspected and return
// ErrSignatureUnavailable; such callables need an explicit declaration via
// CallableFunc instead. F's WithArity option overrides the introspected
// arity of actual functions only, it cannot make a non-function invocable.
func Introspect(fn any) (Signature, error) {
	if fn == nil {
		return Signature{}, newCallError("introspect", ErrSignatureUnavailable, nil)
	}
	typ := reflect.TypeOf(fn)
	if typ.Kind() != reflect.Func {
		return Signature{}, newCallError("introspect", ErrSignatureUnavailable, []any{fn})
	}

	signatureCacheMu.RLock()
	if sig, ok := signatureCache[typ]; ok {
		signatureCacheMu.RUnlock()
		return sig, nil
	}
	signatureCacheMu.RUnlock()

	signatureCacheMu.Lock()
	defer signatureCacheMu.Unlock()

	// Double-check after acquiring write lock
	if sig, ok := signatureCache[typ]; ok {
		return sig, nil
	}

	sig := signatureOf(typ)
	signatureCache[typ] = sig
	return sig, nil
}

// signatureOf derives a Signature from a function type.
func signatureOf(typ reflect.Type) Signature {
	sig := Signature{
		Required: typ.NumIn(),
		Variadic: typ.IsVariadic(),
		Results:  typ.NumOut(),
	}
	if sig.Variadic {
		// The variadic slice parameter itself is optional.
		sig.Required--
	}
	if n := typ.NumOut(); n > 0 && typ.Out(n-1) == errType {
		sig.ReturnsErr = true
		sig.Results--
	}
	return sig
}
