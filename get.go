package funcz

import "reflect"

// Get performs an indexed lookup into a sequence or mapping. For maps, ind
// is the key and a missing entry fails with ErrKeyNotFound. For slices,
// arrays, and strings, ind must be an int and an index outside the bounds
// fails with ErrIndexOutOfRange. Collections supporting no indexed lookup
// at all fail with ErrKeyNotFound regardless of any default. For defaulted
// lookups see GetOr; for lazy sequences see Nth.
//
//	v, err := funcz.Get("b", map[string]int{"a": 1, "b": 2})
//	// v: 2
//	v, err = funcz.Get(5, []int{1, 2, 3})
//	// err wraps funcz.ErrIndexOutOfRange
func Get(ind any, coll any) (any, error) {
	v, ok, err := lookup(ind, coll)
	if err != nil {
		return nil, err
	}
	if !ok {
		sentinel := ErrKeyNotFound
		if reflect.ValueOf(coll).Kind() != reflect.Map {
			sentinel = ErrIndexOutOfRange
		}
		return nil, newCallError("get", sentinel, []any{ind})
	}
	return v, nil
}

// GetOr is Get with a default: a missing key or out-of-range index yields
// def instead of an error. Lookups into unsupported collection types still
// fail.
func GetOr(ind any, coll any, def any) (any, error) {
	v, ok, err := lookup(ind, coll)
	if err != nil {
		return nil, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// lookup resolves ind in coll, reporting presence separately from
// operational failure.
func lookup(ind any, coll any) (any, bool, error) {
	cv := reflect.ValueOf(coll)
	switch cv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(ind)
		if !kv.IsValid() || !kv.Type().AssignableTo(cv.Type().Key()) {
			return nil, false, nil
		}
		entry := cv.MapIndex(kv)
		if !entry.IsValid() {
			return nil, false, nil
		}
		return entry.Interface(), true, nil
	case reflect.Slice, reflect.Array, reflect.String:
		i, ok := ind.(int)
		if !ok || i < 0 || i >= cv.Len() {
			return nil, false, nil
		}
		return cv.Index(i).Interface(), true, nil
	default:
		return nil, false, newCallError("get", ErrKeyNotFound, []any{ind, coll})
	}
}

// seqShape matches the iter.Seq push-function shape: func(func(T) bool).
func seqShape(typ reflect.Type) bool {
	if typ.Kind() != reflect.Func || typ.NumIn() != 1 || typ.NumOut() != 0 {
		return false
	}
	yield := typ.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

// IsIterable reports whether x supports sequential iteration: slices,
// arrays, maps, strings, channels, and iter.Seq-shaped functions qualify.
// It is a capability probe only and never consumes anything.
func IsIterable(x any) bool {
	if x == nil {
		return false
	}
	typ := reflect.TypeOf(x)
	switch typ.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return true
	case reflect.Func:
		return seqShape(typ)
	default:
		return false
	}
}
