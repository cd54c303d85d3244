package function

import (
	"github.com/sorokin/function/internal/erasure"
	"github.com/sorokin/function/shared/helper"
)

// F3 is a callable wrapper over the signature func(A, B, C) R. See F0 for
// the contract shared by the whole arity family.
type F3[A, B, C, R any] struct {
	stg erasure.Storage
}

// New3 wraps a plain function.
func New3[A, B, C, R any](fn func(A, B, C) R) F3[A, B, C, R] {
	return Of3[A, B, C, R](Func3[A, B, C, R](fn))
}

// New3E wraps a plain function that can fail.
func New3E[A, B, C, R any](fn func(A, B, C) (R, error)) F3[A, B, C, R] {
	return Of3E[A, B, C, R](Func3E[A, B, C, R](fn))
}

// Of3 wraps any Callable3 implementer.
func Of3[A, B, C, R any, T Callable3[A, B, C, R]](val T) F3[A, B, C, R] {
	d := erasure.DescriptorFor[T](signatureOf[func(A, B, C) R](), invoke3[T, A, B, C, R])
	var f F3[A, B, C, R]
	erasure.Bind(&f.stg, d, val)
	return f
}

// Of3E wraps any Callable3E implementer.
func Of3E[A, B, C, R any, T Callable3E[A, B, C, R]](val T) F3[A, B, C, R] {
	d := erasure.DescriptorFor[T](signatureOf[func(A, B, C) (R, error)](), invoke3E[T, A, B, C, R])
	var f F3[A, B, C, R]
	erasure.Bind(&f.stg, d, val)
	return f
}

func invoke3[T Callable3[A, B, C, R], A, B, C, R any](src *erasure.Storage, args []any) (any, error) {
	return (*erasure.Payload[T](src)).Call(
		helper.TypedOrZero[A](args[0]), helper.TypedOrZero[B](args[1]), helper.TypedOrZero[C](args[2])), nil
}

func invoke3E[T Callable3E[A, B, C, R], A, B, C, R any](src *erasure.Storage, args []any) (any, error) {
	return (*erasure.Payload[T](src)).Call(
		helper.TypedOrZero[A](args[0]), helper.TypedOrZero[B](args[1]), helper.TypedOrZero[C](args[2]))
}

// Call invokes the held callable with a, b and c.
func (f *F3[A, B, C, R]) Call(a A, b B, c C) (R, error) {
	out, err := f.stg.Invoke([]any{a, b, c})
	if err != nil {
		var zero R
		return zero, err
	}
	return helper.TypedOrZero[R](out), nil
}

// Callable reports whether f currently holds a callable.
func (f *F3[A, B, C, R]) Callable() bool { return !f.stg.IsEmpty() }

// Clone copy-constructs a new wrapper from f.
func (f *F3[A, B, C, R]) Clone() (F3[A, B, C, R], error) {
	var out F3[A, B, C, R]
	if err := f.stg.CloneTo(&out.stg); err != nil {
		return F3[A, B, C, R]{}, err
	}
	return out, nil
}

// Assign replaces f's held callable with a copy of src's, with the strong
// guarantee.
func (f *F3[A, B, C, R]) Assign(src *F3[A, B, C, R]) error { return f.stg.Assign(&src.stg) }

// Move transfers the held callable into a new wrapper, leaving f empty.
func (f *F3[A, B, C, R]) Move() F3[A, B, C, R] {
	var out F3[A, B, C, R]
	f.stg.MoveTo(&out.stg)
	return out
}

// Take move-assigns from src, leaving src empty.
func (f *F3[A, B, C, R]) Take(src *F3[A, B, C, R]) { f.stg.TakeFrom(&src.stg) }

// Destroy releases the held callable and leaves f empty.
func (f *F3[A, B, C, R]) Destroy() { f.stg.Destroy() }

// Target3 returns the held callable as *T when f holds exactly a T, nil
// otherwise.
func Target3[T any, A, B, C, R any](f *F3[A, B, C, R]) *T {
	return erasure.Held[T](&f.stg)
}
