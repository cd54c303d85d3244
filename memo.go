package function

import "github.com/sorokin/function/internal/memo"

// Memoize1 returns a wrapper that caches f's results by argument in a bounded
// table. The inner wrapper is shared by reference, not copied: reassigning or
// destroying it through f is observable to the memoized wrapper. Errors are
// propagated and never cached.
//
// Memoization assumes the held callable is pure for equal arguments; wrapping
// a stateful callable trades correctness for speed knowingly.
func Memoize1[A comparable, R any](f *F1[A, R], maxEntries uint32) F1[A, R] {
	table := memo.NewTable[R](maxEntries)
	return New1E(func(a A) (R, error) {
		keys := []any{memo.Key(a)}
		if v, ok := table.Load(keys); ok {
			return v, nil
		}
		v, err := f.Call(a)
		if err != nil {
			return v, err
		}
		table.Store(keys, v)
		return v, nil
	})
}

// Memoize2 is Memoize1 for two-argument wrappers.
func Memoize2[A, B comparable, R any](f *F2[A, B, R], maxEntries uint32) F2[A, B, R] {
	table := memo.NewTable[R](maxEntries)
	return New2E(func(a A, b B) (R, error) {
		keys := []any{memo.Key(a), memo.Key(b)}
		if v, ok := table.Load(keys); ok {
			return v, nil
		}
		v, err := f.Call(a, b)
		if err != nil {
			return v, err
		}
		table.Store(keys, v)
		return v, nil
	})
}
