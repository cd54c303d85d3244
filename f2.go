package function

import (
	"github.com/sorokin/function/internal/erasure"
	"github.com/sorokin/function/shared/helper"
)

// F2 is a callable wrapper over the signature func(A, B) R. See F0 for the
// contract shared by the whole arity family.
type F2[A, B, R any] struct {
	stg erasure.Storage
}

// New2 wraps a plain function.
func New2[A, B, R any](fn func(A, B) R) F2[A, B, R] {
	return Of2[A, B, R](Func2[A, B, R](fn))
}

// New2E wraps a plain function that can fail.
func New2E[A, B, R any](fn func(A, B) (R, error)) F2[A, B, R] {
	return Of2E[A, B, R](Func2E[A, B, R](fn))
}

// Of2 wraps any Callable2 implementer.
func Of2[A, B, R any, T Callable2[A, B, R]](val T) F2[A, B, R] {
	d := erasure.DescriptorFor[T](signatureOf[func(A, B) R](), invoke2[T, A, B, R])
	var f F2[A, B, R]
	erasure.Bind(&f.stg, d, val)
	return f
}

// Of2E wraps any Callable2E implementer.
func Of2E[A, B, R any, T Callable2E[A, B, R]](val T) F2[A, B, R] {
	d := erasure.DescriptorFor[T](signatureOf[func(A, B) (R, error)](), invoke2E[T, A, B, R])
	var f F2[A, B, R]
	erasure.Bind(&f.stg, d, val)
	return f
}

func invoke2[T Callable2[A, B, R], A, B, R any](src *erasure.Storage, args []any) (any, error) {
	return (*erasure.Payload[T](src)).Call(helper.TypedOrZero[A](args[0]), helper.TypedOrZero[B](args[1])), nil
}

func invoke2E[T Callable2E[A, B, R], A, B, R any](src *erasure.Storage, args []any) (any, error) {
	return (*erasure.Payload[T](src)).Call(helper.TypedOrZero[A](args[0]), helper.TypedOrZero[B](args[1]))
}

// Call invokes the held callable with a and b.
func (f *F2[A, B, R]) Call(a A, b B) (R, error) {
	out, err := f.stg.Invoke([]any{a, b})
	if err != nil {
		var zero R
		return zero, err
	}
	return helper.TypedOrZero[R](out), nil
}

// Callable reports whether f currently holds a callable.
func (f *F2[A, B, R]) Callable() bool { return !f.stg.IsEmpty() }

// Clone copy-constructs a new wrapper from f.
func (f *F2[A, B, R]) Clone() (F2[A, B, R], error) {
	var out F2[A, B, R]
	if err := f.stg.CloneTo(&out.stg); err != nil {
		return F2[A, B, R]{}, err
	}
	return out, nil
}

// Assign replaces f's held callable with a copy of src's, with the strong
// guarantee.
func (f *F2[A, B, R]) Assign(src *F2[A, B, R]) error { return f.stg.Assign(&src.stg) }

// Move transfers the held callable into a new wrapper, leaving f empty.
func (f *F2[A, B, R]) Move() F2[A, B, R] {
	var out F2[A, B, R]
	f.stg.MoveTo(&out.stg)
	return out
}

// Take move-assigns from src, leaving src empty.
func (f *F2[A, B, R]) Take(src *F2[A, B, R]) { f.stg.TakeFrom(&src.stg) }

// Destroy releases the held callable and leaves f empty.
func (f *F2[A, B, R]) Destroy() { f.stg.Destroy() }

// Target2 returns the held callable as *T when f holds exactly a T, nil
// otherwise.
func Target2[T any, A, B, R any](f *F2[A, B, R]) *T {
	return erasure.Held[T](&f.stg)
}
