package function_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorokin/function"
)

// adder fits the inline word.
type adder struct{ delta int32 }

func (a adder) Call(x int) int { return x + int(a.delta) }

// accum is too large for the word and lands behind an allocation.
type accum struct {
	total int64
	bias  int64
}

func (a accum) Call(x int) int { return x + int(a.total) + int(a.bias) }

var errCloneRefused = errors.New("clone refused")

// flakyBig refuses duplication on demand.
type flakyBig struct {
	pad  [2]int64
	fail bool
}

func (f flakyBig) Call() int { return int(f.pad[0]) }

func (f flakyBig) Clone() (flakyBig, error) {
	if f.fail {
		return flakyBig{}, errCloneRefused
	}
	return f, nil
}

// flakyTiny is the inline-placed counterpart.
type flakyTiny struct{ fail bool }

func (f flakyTiny) Call() int { return 1 }

func (f flakyTiny) Clone() (flakyTiny, error) {
	if f.fail {
		return flakyTiny{}, errCloneRefused
	}
	return f, nil
}

var teardowns atomic.Int32

type hook struct{ id int32 }

func (hook) Call() int { return 0 }
func (hook) Teardown() { teardowns.Add(1) }

// parser is held through the erroring flavor.
type parser struct{ base int32 }

func (p parser) Call(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty input")
	}
	return len(s) + int(p.base), nil
}

func TestDefaultEmpty(t *testing.T) {
	var f function.F0[int]

	assert.False(t, f.Callable())
	_, err := f.Call()
	assert.ErrorIs(t, err, function.ErrBadCall)

	// still empty and still safe to query afterwards
	assert.False(t, f.Callable())
}

func TestRoundTripPlainFunc(t *testing.T) {
	f := function.New0(func() int { return 42 })

	require.True(t, f.Callable())
	out, err := f.Call()
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	// assigning an empty wrapper in empties it again
	var empty function.F0[int]
	require.NoError(t, f.Assign(&empty))
	_, err = f.Call()
	assert.ErrorIs(t, err, function.ErrBadCall)
}

func TestRoundTripInlineAndBoxed(t *testing.T) {
	inline := function.Of1[int, int](adder{delta: 3})
	boxed := function.Of1[int, int](accum{total: 10, bias: 1})

	out, err := inline.Call(4)
	require.NoError(t, err)
	assert.Equal(t, 7, out)

	out, err = boxed.Call(4)
	require.NoError(t, err)
	assert.Equal(t, 15, out)
}

func TestRoundTripClosure(t *testing.T) {
	base := 100
	f := function.New2(func(a, b int) int { return base + a*b })

	out, err := f.Call(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 112, out)
}

func TestInterfaceArgument(t *testing.T) {
	f := function.New1(func(e error) bool { return e == nil })

	ok, err := f.Call(nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Call(errors.New("boom"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInterfaceArgumentsArityTwo(t *testing.T) {
	f := function.New2(func(a, b error) int {
		n := 0
		if a != nil {
			n++
		}
		if b != nil {
			n++
		}
		return n
	})

	out, err := f.Call(nil, errors.New("boom"))
	require.NoError(t, err)
	assert.Equal(t, 1, out)
}

func TestInterfaceResult(t *testing.T) {
	f := function.New1(func(fail bool) error {
		if fail {
			return errors.New("requested")
		}
		return nil
	})

	out, err := f.Call(false)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = f.Call(true)
	require.NoError(t, err)
	assert.EqualError(t, out, "requested")
}

func TestErroringCallable(t *testing.T) {
	f := function.Of1E[string, int](parser{base: 1})

	out, err := f.Call("abc")
	require.NoError(t, err)
	assert.Equal(t, 4, out)

	_, err = f.Call("")
	require.Error(t, err)
	assert.NotErrorIs(t, err, function.ErrBadCall)
}

func TestExactTypeRecovery(t *testing.T) {
	f := function.Of1[int, int](adder{delta: 3})

	got := function.Target1[adder](&f)
	require.NotNil(t, got)
	assert.Equal(t, adder{delta: 3}, *got)

	// any other candidate type is an absence, not a failure
	assert.Nil(t, function.Target1[accum](&f))

	var empty function.F1[int, int]
	assert.Nil(t, function.Target1[adder](&empty))
}

func TestExactTypeRecoveryErroringFlavor(t *testing.T) {
	f := function.Of1E[string, int](parser{base: 7})

	got := function.Target1[parser](&f)
	require.NotNil(t, got)
	assert.Equal(t, int32(7), got.base)
}

func TestTargetMutatesHeldState(t *testing.T) {
	f := function.Of1[int, int](adder{delta: 1})

	function.Target1[adder](&f).delta = 9
	out, err := f.Call(1)
	require.NoError(t, err)
	assert.Equal(t, 10, out)
}

func TestCopyIndependence(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		a := function.Of1[int, int](adder{delta: 3})
		b, err := a.Clone()
		require.NoError(t, err)

		function.Target1[adder](&a).delta = 10

		out, err := b.Call(1)
		require.NoError(t, err)
		assert.Equal(t, 4, out)
	})

	t.Run("boxed", func(t *testing.T) {
		a := function.Of1[int, int](accum{total: 5})
		b, err := a.Clone()
		require.NoError(t, err)

		function.Target1[accum](&a).total = 50
		assert.NotSame(t, function.Target1[accum](&a), function.Target1[accum](&b))

		out, err := b.Call(0)
		require.NoError(t, err)
		assert.Equal(t, 5, out)
	})
}

func TestMoveEmptiesSource(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		a := function.Of1[int, int](adder{delta: 2})
		b := a.Move()

		assert.False(t, a.Callable())
		out, err := b.Call(1)
		require.NoError(t, err)
		assert.Equal(t, 3, out)
	})

	t.Run("boxed", func(t *testing.T) {
		a := function.Of1[int, int](accum{total: 4})
		held := function.Target1[accum](&a)
		b := a.Move()

		assert.False(t, a.Callable())
		// ownership of the allocation transferred, not duplicated
		assert.Same(t, held, function.Target1[accum](&b))
	})

	t.Run("empty", func(t *testing.T) {
		var a function.F0[int]
		b := a.Move()
		assert.False(t, b.Callable())
	})
}

func TestTakeEmptiesSource(t *testing.T) {
	a := function.Of1[int, int](adder{delta: 1})
	b := function.Of1[int, int](accum{total: 20})

	a.Take(&b)

	assert.False(t, b.Callable())
	out, err := a.Call(1)
	require.NoError(t, err)
	assert.Equal(t, 21, out)
}

func TestSelfAssignmentNoop(t *testing.T) {
	t.Run("copy", func(t *testing.T) {
		f := function.Of1[int, int](accum{total: 8})
		before := function.Target1[accum](&f)

		require.NoError(t, f.Assign(&f))

		// the held object was not destroyed or replaced
		assert.Same(t, before, function.Target1[accum](&f))
	})

	t.Run("move", func(t *testing.T) {
		teardowns.Store(0)
		f := function.Of0[int](hook{id: 1})

		f.Take(&f)

		assert.True(t, f.Callable())
		assert.Equal(t, int32(0), teardowns.Load())
	})
}

func TestAssignStrongGuarantee(t *testing.T) {
	t.Run("boxed source", func(t *testing.T) {
		a := function.New0(func() int { return 7 })
		b := function.Of0[int](flakyBig{fail: true})

		err := a.Assign(&b)
		assert.ErrorIs(t, err, errCloneRefused)

		out, err := a.Call()
		require.NoError(t, err)
		assert.Equal(t, 7, out)

		// the right-hand side is never modified
		require.True(t, b.Callable())
		assert.True(t, function.Target0[flakyBig](&b).fail)
	})

	t.Run("inline source", func(t *testing.T) {
		a := function.New0(func() int { return 7 })
		b := function.Of0[int](flakyTiny{fail: true})

		err := a.Assign(&b)
		assert.ErrorIs(t, err, errCloneRefused)

		out, err := a.Call()
		require.NoError(t, err)
		assert.Equal(t, 7, out)
	})
}

func TestCloneFailurePropagates(t *testing.T) {
	f := function.Of0[int](flakyBig{fail: true})

	c, err := f.Clone()
	assert.ErrorIs(t, err, errCloneRefused)
	assert.False(t, c.Callable())
	assert.True(t, f.Callable())
}

func TestCloneOfEmpty(t *testing.T) {
	var f function.F1[int, int]
	c, err := f.Clone()
	require.NoError(t, err)
	assert.False(t, c.Callable())
}

func TestDestroyRunsTeardownOnce(t *testing.T) {
	teardowns.Store(0)
	f := function.Of0[int](hook{id: 2})

	f.Destroy()
	f.Destroy()

	assert.Equal(t, int32(1), teardowns.Load())
	assert.False(t, f.Callable())
}

func TestMovedFromWrapperDoesNotTearDown(t *testing.T) {
	teardowns.Store(0)
	a := function.Of0[int](hook{id: 3})
	b := a.Move()

	a.Destroy()
	assert.Equal(t, int32(0), teardowns.Load())

	b.Destroy()
	assert.Equal(t, int32(1), teardowns.Load())
}

func TestFixedFootprint(t *testing.T) {
	word := unsafe.Sizeof(uintptr(0))

	assert.Equal(t, 3*word, unsafe.Sizeof(function.F0[int]{}))
	assert.Equal(t, 3*word, unsafe.Sizeof(function.F1[string, int]{}))
	assert.Equal(t, 3*word, unsafe.Sizeof(function.F2[int, int, int]{}))
	assert.Equal(t, 3*word, unsafe.Sizeof(function.F3[string, int, bool, string]{}))

	// footprint does not depend on what is held
	inline := function.Of1[int, int](adder{delta: 1})
	boxed := function.Of1[int, int](accum{total: 1})
	assert.Equal(t, unsafe.Sizeof(inline), unsafe.Sizeof(boxed))
}

func TestArityThree(t *testing.T) {
	f := function.New3E(func(a, b, c int) (int, error) {
		if c == 0 {
			return 0, errors.New("division by zero")
		}
		return (a + b) / c, nil
	})

	out, err := f.Call(4, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, out)

	_, err = f.Call(1, 1, 0)
	assert.Error(t, err)
}
