package function

// Callable contracts, one per arity. A wrapper accepts any value whose Call
// method matches its signature; the E flavors are for callables that can fail
// and surface their error through the wrapper unchanged.

type Callable0[R any] interface{ Call() R }

type Callable0E[R any] interface{ Call() (R, error) }

type Callable1[A, R any] interface{ Call(A) R }

type Callable1E[A, R any] interface{ Call(A) (R, error) }

type Callable2[A, B, R any] interface{ Call(A, B) R }

type Callable2E[A, B, R any] interface{ Call(A, B) (R, error) }

type Callable3[A, B, C, R any] interface{ Call(A, B, C) R }

type Callable3E[A, B, C, R any] interface{ Call(A, B, C) (R, error) }

// Func adapters turn plain functions into Callable implementers, so closures
// and named funcs wrap without any boilerplate on the caller's side.

type Func0[R any] func() R

func (f Func0[R]) Call() R { return f() }

type Func0E[R any] func() (R, error)

func (f Func0E[R]) Call() (R, error) { return f() }

type Func1[A, R any] func(A) R

func (f Func1[A, R]) Call(a A) R { return f(a) }

type Func1E[A, R any] func(A) (R, error)

func (f Func1E[A, R]) Call(a A) (R, error) { return f(a) }

type Func2[A, B, R any] func(A, B) R

func (f Func2[A, B, R]) Call(a A, b B) R { return f(a, b) }

type Func2E[A, B, R any] func(A, B) (R, error)

func (f Func2E[A, B, R]) Call(a A, b B) (R, error) { return f(a, b) }

type Func3[A, B, C, R any] func(A, B, C) R

func (f Func3[A, B, C, R]) Call(a A, b B, c C) R { return f(a, b, c) }

type Func3E[A, B, C, R any] func(A, B, C) (R, error)

func (f Func3E[A, B, C, R]) Call(a A, b B, c C) (R, error) { return f(a, b, c) }
