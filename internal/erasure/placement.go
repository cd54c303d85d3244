package erasure

import (
	"reflect"
	"unsafe"
)

// Placement says where a bound payload lives inside a Storage.
type Placement int8

const (
	// PlacementNone belongs to the empty descriptor only.
	PlacementNone Placement = iota
	// PlacementInline payloads live in the storage word itself.
	PlacementInline
	// PlacementBoxed payloads live behind a single owned allocation.
	PlacementBoxed
)

func (p Placement) String() string {
	switch p {
	case PlacementInline:
		return "inline"
	case PlacementBoxed:
		return "boxed"
	default:
		return "none"
	}
}

const (
	inlineSize  = unsafe.Sizeof(uintptr(0))
	inlineAlign = unsafe.Alignof(uintptr(0))
)

// placementOf evaluates the small-object predicate for a concrete type.
// The result is computed once per type and cached on its descriptor.
//
// A type is inline-eligible iff it fits the storage word, needs no stricter
// alignment, and carries no pointer words. Pointer-freeness stands in for the
// usual non-failing-relocation requirement: a pointer-free word relocates by
// bit copy, which cannot fail, and the collector never inspects it.
func placementOf(t reflect.Type) Placement {
	if t.Size() <= inlineSize && uintptr(t.Align()) <= inlineAlign && pointerFree(t) {
		return PlacementInline
	}
	return PlacementBoxed
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// inlineCell reinterprets the storage word as a payload of type T.
// Unchecked: callers guarantee the word actually carries a T.
func inlineCell[T any](s *Storage) *T {
	return (*T)(unsafe.Pointer(&s.word))
}

// boxedCell reads the owned allocation behind a boxed payload.
// Unchecked in the same sense as inlineCell.
func boxedCell[T any](s *Storage) *T {
	return (*T)(s.box)
}

func copyInline[T any](dst, src *Storage) error {
	cell := inlineCell[T](src)
	v := *cell
	if c, ok := any(cell).(Cloneable[T]); ok {
		dup, err := c.Clone()
		if err != nil {
			return err
		}
		v = dup
	}
	*inlineCell[T](dst) = v
	dst.desc = src.desc
	return nil
}

func moveInline(dst, src *Storage) {
	dst.word = src.word
	dst.desc = src.desc
	src.word = 0
	src.desc = empty
}

func destroyInline[T any](src *Storage) {
	if td, ok := any(inlineCell[T](src)).(Teardowner); ok {
		td.Teardown()
	}
	src.word = 0
}

func copyBoxed[T any](dst, src *Storage) error {
	cell := boxedCell[T](src)
	v := *cell
	if c, ok := any(cell).(Cloneable[T]); ok {
		dup, err := c.Clone()
		if err != nil {
			return err
		}
		v = dup
	}
	p := new(T)
	*p = v
	dst.box = unsafe.Pointer(p)
	dst.desc = src.desc
	return nil
}

func moveBoxed(dst, src *Storage) {
	dst.box = src.box
	dst.desc = src.desc
	src.box = nil
	src.desc = empty
}

func destroyBoxed[T any](src *Storage) {
	if td, ok := any(boxedCell[T](src)).(Teardowner); ok {
		td.Teardown()
	}
	src.box = nil
}

// Bind places val into s under descriptor d. s must be empty.
func Bind[T any](s *Storage, d *Descriptor, val T) {
	switch d.placement {
	case PlacementInline:
		*inlineCell[T](s) = val
	case PlacementBoxed:
		p := new(T)
		*p = val
		s.box = unsafe.Pointer(p)
	}
	s.desc = d
}

// Payload is the unchecked typed view used by invoke tables. Callers guarantee
// the descriptor attached to s is the one produced for T.
func Payload[T any](s *Storage) *T {
	if s.descriptor().placement == PlacementInline {
		return inlineCell[T](s)
	}
	return boxedCell[T](s)
}

// Held returns a pointer to the payload when s currently holds a value of the
// exact type T, nil otherwise. Absence is not an error.
func Held[T any](s *Storage) *T {
	d := s.descriptor()
	if d.held == nil || d.held != typeOf[T]() {
		return nil
	}
	if d.placement == PlacementInline {
		return inlineCell[T](s)
	}
	return boxedCell[T](s)
}
