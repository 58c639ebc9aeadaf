package funcz

import (
	"reflect"
	"strings"
	"testing"
)

func TestMerge(t *testing.T) {
	got := Merge(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3})
	want := map[string]int{"a": 2, "b": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected later mapping to win, got %v", got)
	}
}

func TestMerge_InputsNotMutated(t *testing.T) {
	m1 := map[string]int{"a": 1}
	m2 := map[string]int{"a": 2}

	Merge(m1, m2)

	if m1["a"] != 1 || len(m1) != 1 {
		t.Errorf("Expected m1 untouched, got %v", m1)
	}
	if m2["a"] != 2 || len(m2) != 1 {
		t.Errorf("Expected m2 untouched, got %v", m2)
	}
}

func TestMerge_Empty(t *testing.T) {
	if got := Merge[string, int](); len(got) != 0 {
		t.Errorf("Expected empty map, got %v", got)
	}
}

func TestMergeWith(t *testing.T) {
	add := func(a, b int) int { return a + b }
	got := MergeWith(add, map[string]int{"a": 1}, map[string]int{"a": 2})
	want := map[string]int{"a": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected collision combined, got %v", got)
	}
}

func TestMergeWith_CombineOrder(t *testing.T) {
	// combine(existing, incoming): left-to-right accumulation.
	concat := func(a, b string) string { return a + b }
	got := MergeWith(concat,
		map[int]string{1: "a"},
		map[int]string{1: "b"},
		map[int]string{1: "c"},
	)
	if got[1] != "abc" {
		t.Errorf("Expected 'abc', got %q", got[1])
	}
}

func TestKeyMap(t *testing.T) {
	got := KeyMap(strings.ToUpper, map[string]int{"a": 1, "b": 2})
	want := map[string]int{"A": 1, "B": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestValMap(t *testing.T) {
	got := ValMap(func(n int) int { return n * 10 }, map[string]int{"a": 1, "b": 2})
	want := map[string]int{"a": 10, "b": 20}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestValMap_ChangesValueType(t *testing.T) {
	got := ValMap(func(n int) string { return strings.Repeat("x", n) }, map[string]int{"a": 2})
	want := map[string]string{"a": "xx"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAssoc(t *testing.T) {
	m := map[string]int{"a": 1}
	got := Assoc(m, "b", 2)

	want := map[string]int{"a": 1, "b": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if len(m) != 1 {
		t.Errorf("Expected input untouched, got %v", m)
	}

	// Overwriting an existing key in the copy, not the original.
	got = Assoc(m, "a", 9)
	if got["a"] != 9 || m["a"] != 1 {
		t.Errorf("Expected copy updated and input untouched, got %v and %v", got, m)
	}
}

func TestKeyFilter(t *testing.T) {
	got := KeyFilter(func(k string) bool { return k != "drop" },
		map[string]int{"keep": 1, "drop": 2})
	want := map[string]int{"keep": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestValFilter(t *testing.T) {
	got := ValFilter(func(v int) bool { return v > 1 },
		map[string]int{"a": 1, "b": 2, "c": 3})
	want := map[string]int{"b": 2, "c": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
