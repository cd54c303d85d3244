package function

import (
	"github.com/sorokin/function/internal/erasure"
	"github.com/sorokin/function/shared/helper"
)

// F0 is a callable wrapper over the signature func() R. The zero F0 is a
// valid empty wrapper: falsy and failing with ErrBadCall when called.
//
// A wrapper is a plain value type with no internal synchronization. Like any
// ordinary value, a single instance must not be mutated concurrently; the
// descriptors it dispatches through are immutable and freely shared.
type F0[R any] struct {
	stg erasure.Storage
}

// New0 wraps a plain function.
func New0[R any](fn func() R) F0[R] {
	return Of0[R](Func0[R](fn))
}

// New0E wraps a plain function that can fail.
func New0E[R any](fn func() (R, error)) F0[R] {
	return Of0E[R](Func0E[R](fn))
}

// Of0 wraps any Callable0 implementer, moving val into place per its
// placement strategy. Never fails.
func Of0[R any, T Callable0[R]](val T) F0[R] {
	d := erasure.DescriptorFor[T](signatureOf[func() R](), invoke0[T, R])
	var f F0[R]
	erasure.Bind(&f.stg, d, val)
	return f
}

// Of0E wraps any Callable0E implementer.
func Of0E[R any, T Callable0E[R]](val T) F0[R] {
	d := erasure.DescriptorFor[T](signatureOf[func() (R, error)](), invoke0E[T, R])
	var f F0[R]
	erasure.Bind(&f.stg, d, val)
	return f
}

func invoke0[T Callable0[R], R any](src *erasure.Storage, _ []any) (any, error) {
	return (*erasure.Payload[T](src)).Call(), nil
}

func invoke0E[T Callable0E[R], R any](src *erasure.Storage, _ []any) (any, error) {
	return (*erasure.Payload[T](src)).Call()
}

// Call invokes the held callable. An empty wrapper fails with ErrBadCall;
// an error raised by the held callable itself passes through unchanged.
func (f *F0[R]) Call() (R, error) {
	out, err := f.stg.Invoke(nil)
	if err != nil {
		var zero R
		return zero, err
	}
	return helper.TypedOrZero[R](out), nil
}

// Callable reports whether f currently holds a callable.
func (f *F0[R]) Callable() bool { return !f.stg.IsEmpty() }

// Clone copy-constructs a new wrapper from f. A failing clone of the held
// callable leaves f untouched and returns an empty wrapper with the error.
func (f *F0[R]) Clone() (F0[R], error) {
	var out F0[R]
	if err := f.stg.CloneTo(&out.stg); err != nil {
		return F0[R]{}, err
	}
	return out, nil
}

// Assign replaces f's held callable with a copy of src's, with the strong
// guarantee: on failure f is observably unchanged, src never is.
// Self-assignment is a no-op.
func (f *F0[R]) Assign(src *F0[R]) error { return f.stg.Assign(&src.stg) }

// Move transfers the held callable into a new wrapper, leaving f empty.
// Never fails.
func (f *F0[R]) Move() F0[R] {
	var out F0[R]
	f.stg.MoveTo(&out.stg)
	return out
}

// Take move-assigns: destroys f's current callable, then steals src's,
// leaving src empty. Never fails; self-assignment is a no-op.
func (f *F0[R]) Take(src *F0[R]) { f.stg.TakeFrom(&src.stg) }

// Destroy releases the held callable, running its Teardown when implemented,
// and leaves f empty.
func (f *F0[R]) Destroy() { f.stg.Destroy() }

// Target0 returns the held callable as *T when f holds exactly a T, nil
// otherwise. Absence is not an error.
func Target0[T any, R any](f *F0[R]) *T {
	return erasure.Held[T](&f.stg)
}
