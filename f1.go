package function

import (
	"github.com/sorokin/function/internal/erasure"
	"github.com/sorokin/function/shared/helper"
)

// F1 is a callable wrapper over the signature func(A) R. See F0 for the
// contract shared by the whole arity family.
type F1[A, R any] struct {
	stg erasure.Storage
}

// New1 wraps a plain function.
func New1[A, R any](fn func(A) R) F1[A, R] {
	return Of1[A, R](Func1[A, R](fn))
}

// New1E wraps a plain function that can fail.
func New1E[A, R any](fn func(A) (R, error)) F1[A, R] {
	return Of1E[A, R](Func1E[A, R](fn))
}

// Of1 wraps any Callable1 implementer.
func Of1[A, R any, T Callable1[A, R]](val T) F1[A, R] {
	d := erasure.DescriptorFor[T](signatureOf[func(A) R](), invoke1[T, A, R])
	var f F1[A, R]
	erasure.Bind(&f.stg, d, val)
	return f
}

// Of1E wraps any Callable1E implementer.
func Of1E[A, R any, T Callable1E[A, R]](val T) F1[A, R] {
	d := erasure.DescriptorFor[T](signatureOf[func(A) (R, error)](), invoke1E[T, A, R])
	var f F1[A, R]
	erasure.Bind(&f.stg, d, val)
	return f
}

func invoke1[T Callable1[A, R], A, R any](src *erasure.Storage, args []any) (any, error) {
	return (*erasure.Payload[T](src)).Call(helper.TypedOrZero[A](args[0])), nil
}

func invoke1E[T Callable1E[A, R], A, R any](src *erasure.Storage, args []any) (any, error) {
	return (*erasure.Payload[T](src)).Call(helper.TypedOrZero[A](args[0]))
}

// Call invokes the held callable with a.
func (f *F1[A, R]) Call(a A) (R, error) {
	out, err := f.stg.Invoke([]any{a})
	if err != nil {
		var zero R
		return zero, err
	}
	return helper.TypedOrZero[R](out), nil
}

// Callable reports whether f currently holds a callable.
func (f *F1[A, R]) Callable() bool { return !f.stg.IsEmpty() }

// Clone copy-constructs a new wrapper from f.
func (f *F1[A, R]) Clone() (F1[A, R], error) {
	var out F1[A, R]
	if err := f.stg.CloneTo(&out.stg); err != nil {
		return F1[A, R]{}, err
	}
	return out, nil
}

// Assign replaces f's held callable with a copy of src's, with the strong
// guarantee.
func (f *F1[A, R]) Assign(src *F1[A, R]) error { return f.stg.Assign(&src.stg) }

// Move transfers the held callable into a new wrapper, leaving f empty.
func (f *F1[A, R]) Move() F1[A, R] {
	var out F1[A, R]
	f.stg.MoveTo(&out.stg)
	return out
}

// Take move-assigns from src, leaving src empty.
func (f *F1[A, R]) Take(src *F1[A, R]) { f.stg.TakeFrom(&src.stg) }

// Destroy releases the held callable and leaves f empty.
func (f *F1[A, R]) Destroy() { f.stg.Destroy() }

// Target1 returns the held callable as *T when f holds exactly a T, nil
// otherwise.
func Target1[T any, A, R any](f *F1[A, R]) *T {
	return erasure.Held[T](&f.stg)
}
