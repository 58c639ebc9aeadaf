package funcz

import (
	"errors"
	"testing"
)

func TestIntrospect_Fixed(t *testing.T) {
	sig, err := Introspect(func(a, b int) int { return a + b })
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sig.Required != 2 {
		t.Errorf("Expected Required 2, got %d", sig.Required)
	}
	if sig.Variadic {
		t.Error("Expected non-variadic signature")
	}
	if sig.Results != 1 {
		t.Errorf("Expected Results 1, got %d", sig.Results)
	}
	if sig.ReturnsErr {
		t.Error("Expected no error result")
	}
}

func TestIntrospect_Variadic(t *testing.T) {
	sig, err := Introspect(func(prefix string, rest ...int) string { return prefix })
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sig.Required != 1 {
		t.Errorf("Expected Required 1, got %d", sig.Required)
	}
	if !sig.Variadic {
		t.Error("Expected variadic signature")
	}
}

func TestIntrospect_TrailingError(t *testing.T) {
	sig, err := Introspect(func(s string) (int, error) { return 0, nil })
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !sig.ReturnsErr {
		t.Error("Expected error result to be recognized")
	}
	if sig.Results != 1 {
		t.Errorf("Expected Results 1 after excluding error, got %d", sig.Results)
	}
}

func TestIntrospect_ErrorOnly(t *testing.T) {
	sig, err := Introspect(func() error { return nil })
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !sig.ReturnsErr || sig.Results != 0 {
		t.Errorf("Expected 0 results with error, got %+v", sig)
	}
}

func TestIntrospect_NotAFunction(t *testing.T) {
	for _, input := range []any{nil, 42, "text", struct{}{}} {
		_, err := Introspect(input)
		if !errors.Is(err, ErrSignatureUnavailable) {
			t.Errorf("Introspect(%v): expected ErrSignatureUnavailable, got %v", input, err)
		}
	}
}

func TestIntrospect_CachesPerType(t *testing.T) {
	f := func(a, b, c string) string { return a }
	first, err := Introspect(f)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := Introspect(f)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first != second {
		t.Errorf("Expected identical cached signature, got %+v then %+v", first, second)
	}
}
