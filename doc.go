// Package function provides a small, type-erased callable wrapper for Go.
//
// A wrapper (F0 through F3, one type per arity) holds any value with a Call
// method matching its signature — a plain func through the Func adapters, a
// closure, or a stateful struct — and presents one uniform contract for
// copying, moving, invoking and destroying it, without the holder ever
// knowing the concrete type.
//
// # Why a wrapper at all?
//
// Go's func values already erase closures, but they erase everything: once a
// value becomes a func, its identity, its state, and its lifecycle are gone.
// This package keeps them. A wrapper can hand the held value back out by
// exact type (Target0..Target3), duplicate it with value semantics (Clone,
// Assign), transfer ownership without duplication (Move, Take), and run a
// teardown hook exactly once when the value is discarded.
//
// # How it works
//
// Every wrapper owns one fixed-footprint storage slot: a single pointer-free
// word for small payloads, one owned allocation for everything else, and a
// reference to an immutable dispatch descriptor. One descriptor exists per
// concrete held type per call signature; it knows how to copy, move, invoke
// and destroy that type, so the wrapper itself stays three words regardless
// of what it holds. A distinguished empty descriptor makes the zero wrapper
// valid: falsy, and failing with ErrBadCall when called.
//
// # Safety contract
//
// Copying can fail only when the held type opts into failure by implementing
// Cloneable; moves and destroys never fail. Assign gives the strong
// guarantee: if copying the source fails, the destination is observably
// unchanged. Wrappers are plain value types with no internal locking — give
// each goroutine its own, exactly as with any ordinary value.
//
// This package exports:
//   - Wrapper types F0..F3 and their constructors New*/Of* (plus E flavors
//     for callables that return errors)
//   - Func adapters for wrapping plain functions without boilerplate
//   - Exact-type accessors Target0..Target3
//   - Memoize1/Memoize2 for bounded caching of pure callables
package function
