package funcz

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// KeyFunc derives a cache key from an argument list. The returned key must
// be usable as a map key; the default TupleKey guarantees that by
// construction, and a caller-supplied KeyFunc takes over the guarantee.
type KeyFunc func(args []any) (any, error)

// argPair folds an argument tuple into nested comparable pairs, so a whole
// argument list becomes a single map-key value.
type argPair struct {
	head any
	tail any
}

// emptyKey terminates the pair chain and is the key of a zero-argument call.
type emptyKey struct{}

// TupleKey is the default memoization key derivation: the tuple of
// positional arguments, used directly. Two argument lists produce equal keys
// exactly when they are pairwise equal in length, dynamic type, and value.
//
// Every argument must be hashable all the way down; a non-comparable value
// (slice, map, function), even one hidden inside an interface field of an
// otherwise comparable struct, fails with ErrUnhashableArguments before any
// invocation of the wrapped callable. Callers with non-comparable arguments
// supply their own KeyFunc instead - see HashKey for a ready-made one.
func TupleKey(args []any) (any, error) {
	var key any = emptyKey{}
	for i := len(args) - 1; i >= 0; i-- {
		arg := args[i]
		if !hashable(reflect.ValueOf(arg)) {
			return nil, newCallError("tuple-key", ErrUnhashableArguments, args)
		}
		key = argPair{head: arg, tail: key}
	}
	return key, nil
}

// hashable reports whether v can be used inside a map key without a runtime
// hash panic. Type comparability alone is not enough: an interface field of
// a comparable struct may hold a slice, so interfaces, struct fields, and
// array elements are walked down to their dynamic values.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		// Untyped nil.
		return true
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		return hashable(v.Elem())
	case reflect.Struct:
		if !v.Type().Comparable() {
			return false
		}
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		if !v.Type().Comparable() {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}

// HashKey derives a compact string key by hashing a canonical encoding of
// the arguments with xxhash64. Unlike TupleKey it accepts non-comparable
// arguments, trading the structural-equality guarantee for an
// encoding-equality one: two argument lists collide exactly when their %#v
// renderings agree.
//
// HashKey keys are strings, which also makes them a natural fit for
// string-keyed caches such as TTLCache.
func HashKey(args []any) (any, error) {
	d := xxhash.New()
	for _, arg := range args {
		fmt.Fprintf(d, "%T=%#v;", arg, arg)
	}
	return strconv.FormatUint(d.Sum64(), 16), nil
}
