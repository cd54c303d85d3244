package helper

import "fmt"

// TypedOrZero asserts v to the expected type T, returning T's zero value when
// the assertion fails. A nil erased value therefore comes back as the zero T,
// which is what an erased call path wants when the callable legitimately
// returned nil through an interface result.
func TypedOrZero[T any](v any) T {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero
	}
	return t
}

// TypedValueOf asserts v to the expected type T, reporting a mismatch as an
// error.
func TypedValueOf[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected type: %T", v)
	}
	return t, nil
}

// MustTyped is the panic-on-failure variant of TypedValueOf. Use when a
// mismatch means a programming error rather than a recoverable condition.
func MustTyped[T any](v any) T {
	t, err := TypedValueOf[T](v)
	if err != nil {
		panic(err)
	}
	return t
}
