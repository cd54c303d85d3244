// Package memo provides the bounded cache behind the function package's
// memoizing wrappers: a trie of sync.Maps keyed by the argument list, with
// dual-generation rotation for eviction. When the live generation fills up,
// the table rotates to the other one and lets the old entries age out
// wholesale instead of tracking per-entry recency.
package memo

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type Table[V any] struct {
	gens    [2]*sync.Map
	headIdx uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewTable[V any](maxSize uint32) *Table[V] {
	if maxSize == 0 {
		panic("memo: maxSize should be greater than 0")
	}
	return &Table[V]{
		gens:    [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

// Load looks keys up in the live generation first, then in the aging one.
func (t *Table[V]) Load(keys []any) (V, bool) {
	headIdx := t.headIdx
	m, k := t.traverse(t.gens[headIdx], keys)
	v, ok := m.Load(k)
	if !ok {
		m, k = t.traverse(t.gens[1-headIdx], keys)
		v, ok = m.Load(k)
		if !ok {
			var zero V
			return zero, false
		}
	}
	return v.(V), true
}

// Store records value under keys in the live generation, rotating generations
// once the live one reaches maxSize. Rotation drops the previous aging
// generation wholesale: its map is replaced before it goes live again, which
// keeps the table bounded by two generations of maxSize entries.
func (t *Table[V]) Store(keys []any, value V) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		next := 1 - t.headIdx
		t.gens[next] = &sync.Map{}
		t.headIdx = next
	}
	m, k := t.traverse(t.gens[t.headIdx], keys)
	m.Store(k, value)
	t.size.Add(1)
}

func (t *Table[V]) traverse(node *sync.Map, keys []any) (*sync.Map, any) {
	length := len(keys)
	if length == 0 {
		panic("memo: traverse: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, ok := node.Load(k)
		if !ok {
			next := &sync.Map{}
			node.Store(k, next)
			v = next
		}
		node = v.(*sync.Map)
	}
	return node, keys[length-1]
}

// Key normalizes an argument into a map key: Stringers memoize by their
// string form, everything else by value.
func Key(v any) any {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}
