package erasure

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrBadCall reports invocation of a storage slot that holds no callable.
var ErrBadCall = errors.New("function: bad call: no callable held")

// InvokeFunc adapts the erased payload of src back to its concrete type and
// runs it with the erased argument list.
type InvokeFunc func(src *Storage, args []any) (any, error)

// Descriptor is the dispatch table shared by every storage slot holding the
// same concrete type under the same call signature. One immutable instance
// exists per (held type, signature) pair; identity comparison between two
// descriptors therefore detects the held type.
type Descriptor struct {
	copy    func(dst, src *Storage) error
	move    func(dst, src *Storage)
	invoke  InvokeFunc
	destroy func(src *Storage)

	id          string
	held        reflect.Type
	signature   reflect.Type
	placement   Placement
	fingerprint uint64
}

// Held is the concrete type this descriptor dispatches for, nil for the empty
// descriptor.
func (d *Descriptor) Held() reflect.Type { return d.held }

// Signature is the call signature the descriptor was produced under.
func (d *Descriptor) Signature() reflect.Type { return d.signature }

// Placement reports where payloads dispatched by d live.
func (d *Descriptor) Placement() Placement { return d.placement }

// ID is a unique identifier assigned at registration, for diagnostics.
func (d *Descriptor) ID() string { return d.id }

// Fingerprint is a stable hash of (held type, signature).
func (d *Descriptor) Fingerprint() uint64 { return d.fingerprint }

func (d *Descriptor) String() string {
	if d.held == nil {
		return "descriptor{empty}"
	}
	return fmt.Sprintf("descriptor{held: %v, signature: %v, placement: %v}", d.held, d.signature, d.placement)
}

var empty = newEmptyDescriptor()

// Empty returns the distinguished descriptor for "holds nothing". Its copy and
// move produce another empty slot, its destroy is a no-op, and its invoke
// fails with ErrBadCall.
func Empty() *Descriptor { return empty }

func newEmptyDescriptor() *Descriptor {
	d := &Descriptor{
		id:        uuid.New().String(),
		placement: PlacementNone,
	}
	d.copy = func(dst, _ *Storage) error {
		dst.desc = d
		return nil
	}
	d.move = func(dst, src *Storage) {
		dst.desc = d
		src.desc = d
	}
	d.invoke = func(_ *Storage, _ []any) (any, error) {
		return nil, ErrBadCall
	}
	d.destroy = func(_ *Storage) {}
	return d
}

type tableKey struct {
	held      reflect.Type
	signature reflect.Type
}

var tables sync.Map // tableKey -> *Descriptor

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger routes descriptor-registration logs to l.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

// DescriptorFor returns the descriptor singleton for payload type T under the
// given call signature, creating and registering it on first use. Creation is
// lazy but deterministic: concurrent first uses race to register, the registry
// keeps exactly one winner, and descriptors are never mutated or dropped
// afterwards.
func DescriptorFor[T any](signature reflect.Type, invoke InvokeFunc) *Descriptor {
	held := typeOf[T]()
	key := tableKey{held: held, signature: signature}
	if got, ok := tables.Load(key); ok {
		return got.(*Descriptor)
	}
	d := newDescriptor[T](held, signature, invoke)
	got, loaded := tables.LoadOrStore(key, d)
	if !loaded {
		logger.Load().Sugar().Debugf(
			"registered callable descriptor: id: %v, held: %v, signature: %v, placement: %v, fingerprint: %x",
			d.id, held, signature, d.placement, d.fingerprint,
		)
	}
	return got.(*Descriptor)
}

func newDescriptor[T any](held, signature reflect.Type, invoke InvokeFunc) *Descriptor {
	d := &Descriptor{
		invoke:      invoke,
		id:          uuid.New().String(),
		held:        held,
		signature:   signature,
		placement:   placementOf(held),
		fingerprint: fingerprint(held, signature),
	}
	switch d.placement {
	case PlacementInline:
		d.copy = copyInline[T]
		d.move = moveInline
		d.destroy = destroyInline[T]
	case PlacementBoxed:
		d.copy = copyBoxed[T]
		d.move = moveBoxed
		d.destroy = destroyBoxed[T]
	}
	return d
}

func fingerprint(held, signature reflect.Type) uint64 {
	return xxhash.Sum64String(held.String() + "|" + signature.String())
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
