// Package erasure is the storage and dispatch engine behind the function
// package: a fixed-footprint slot that holds an arbitrary payload either in a
// single pointer-free word or behind one owned allocation, plus the shared
// per-type dispatch descriptors that know how to copy, move, invoke and
// destroy whatever the slot currently carries.
//
// The slot layer is unchecked by construction discipline: the typed cell
// accessors perform no bounds or type checks, because the only code that ever
// touches a slot is the descriptor produced for the payload actually inside
// it. Checked-ness lives one level up, in the function package's typed
// surface.
package erasure

import "unsafe"

// Storage is the fixed-footprint slot behind every callable wrapper. Its
// payload lives either in word (inline placement, pointer-free types only) or
// behind box (one owned allocation). The attached descriptor is the sole
// interpreter of the payload; a nil descriptor is normalized to Empty, so the
// zero Storage is a valid empty slot.
//
// At any observable instant a slot is in exactly one of three states: empty,
// inline-occupied, or boxed-occupied.
type Storage struct {
	word uintptr        // inline cell, pointer-free payloads only
	box  unsafe.Pointer // boxed payload
	desc *Descriptor
}

func (s *Storage) descriptor() *Descriptor {
	if s.desc == nil {
		return empty
	}
	return s.desc
}

// Descriptor returns the dispatch descriptor currently attached to s.
func (s *Storage) Descriptor() *Descriptor { return s.descriptor() }

// IsEmpty reports whether s holds nothing.
func (s *Storage) IsEmpty() bool { return s.descriptor() == empty }

// Invoke runs the held payload with the erased argument list. On an empty
// slot it fails with ErrBadCall; any error from the payload itself passes
// through unchanged.
func (s *Storage) Invoke(args []any) (any, error) {
	return s.descriptor().invoke(s, args)
}

// CloneTo copy-constructs s's payload into dst, which must be empty. A
// failing payload clone leaves dst empty and s untouched.
func (s *Storage) CloneTo(dst *Storage) error {
	return s.descriptor().copy(dst, s)
}

// MoveTo transfers s's payload into dst, which must be empty. Never fails;
// s is left empty in both placements.
func (s *Storage) MoveTo(dst *Storage) {
	s.descriptor().move(dst, s)
}

// Destroy tears down the held payload, if any, and leaves s empty.
func (s *Storage) Destroy() {
	d := s.descriptor()
	d.destroy(s)
	s.desc = empty
}

// Assign replaces s's payload with a copy of src's. On failure s is
// observably unchanged and the error surfaces to the caller; src is never
// modified. Self-assignment is a no-op.
//
// The protocol buys the strong guarantee with one extra non-failing move:
// the current payload is moved aside into a backup, the now-empty slot is
// destroyed, and only then is the copy attempted. A failed copy moves the
// backup straight back.
func (s *Storage) Assign(src *Storage) error {
	if s == src {
		return nil
	}
	var backup Storage
	s.MoveTo(&backup)
	s.Destroy()
	if err := src.CloneTo(s); err != nil {
		backup.MoveTo(s)
		backup.Destroy()
		return err
	}
	backup.Destroy()
	return nil
}

// TakeFrom move-assigns: destroys s's current payload, then steals src's,
// leaving src empty. Never fails. Self-assignment is checked explicitly,
// since moving over one's own live slot would tear it down first.
func (s *Storage) TakeFrom(src *Storage) {
	if s == src {
		return
	}
	s.Destroy()
	src.MoveTo(s)
}

// Cloneable is implemented by payload types whose duplication can fail.
// Copy operations consult it; plain bit copy is used otherwise.
type Cloneable[T any] interface {
	Clone() (T, error)
}

// Teardowner is run by destroy before the payload is dropped.
type Teardowner interface {
	Teardown()
}
