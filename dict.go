package funcz

// Structural transforms over maps. All of them are eager, return a fresh
// map, and never mutate their inputs.

// Merge combines mappings left to right; on key collision the later
// mapping's value wins.
//
//	funcz.Merge(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3})
//	// map[a:2 b:3]
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	size := 0
	for _, m := range ms {
		size += len(m)
	}
	out := make(map[K]V, size)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// MergeWith combines mappings left to right, resolving key collisions with
// combine, applied as combine(existing, incoming).
//
//	funcz.MergeWith(func(a, b int) int { return a + b },
//	    map[string]int{"a": 1}, map[string]int{"a": 2})
//	// map[a:3]
func MergeWith[K comparable, V any](combine func(V, V) V, ms ...map[K]V) map[K]V {
	size := 0
	for _, m := range ms {
		size += len(m)
	}
	out := make(map[K]V, size)
	for _, m := range ms {
		for k, v := range m {
			if existing, ok := out[k]; ok {
				out[k] = combine(existing, v)
			} else {
				out[k] = v
			}
		}
	}
	return out
}

// KeyMap applies f to every key. If f maps two keys to the same value, one
// entry survives arbitrarily - keep f injective when that matters.
func KeyMap[K1, K2 comparable, V any](f func(K1) K2, m map[K1]V) map[K2]V {
	out := make(map[K2]V, len(m))
	for k, v := range m {
		out[f(k)] = v
	}
	return out
}

// ValMap applies f to every value.
func ValMap[K comparable, V1, V2 any](f func(V1) V2, m map[K]V1) map[K]V2 {
	out := make(map[K]V2, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}

// Assoc returns a new mapping equal to m with k set to v.
func Assoc[K comparable, V any](m map[K]V, k K, v V) map[K]V {
	out := make(map[K]V, len(m)+1)
	for mk, mv := range m {
		out[mk] = mv
	}
	out[k] = v
	return out
}

// KeyFilter retains only entries whose key satisfies pred.
func KeyFilter[K comparable, V any](pred func(K) bool, m map[K]V) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if pred(k) {
			out[k] = v
		}
	}
	return out
}

// ValFilter retains only entries whose value satisfies pred.
func ValFilter[K comparable, V any](pred func(V) bool, m map[K]V) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if pred(v) {
			out[k] = v
		}
	}
	return out
}
