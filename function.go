package function

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/sorokin/function/internal/erasure"
)

// ErrBadCall reports invocation of a wrapper that holds no callable. Always
// recoverable; the wrapper's state is unaffected.
var ErrBadCall = erasure.ErrBadCall

// Cloneable marks held callable types whose duplication can fail. Clone and
// Assign consult it; types without it are duplicated by plain value copy,
// which cannot fail.
type Cloneable[T any] interface {
	Clone() (T, error)
}

// Teardowner is run by Destroy (and by any operation that discards a held
// callable) before the callable is dropped.
type Teardowner = erasure.Teardowner

// SetLogger routes the engine's descriptor-registration logs to l. The
// default logger is a nop.
func SetLogger(l *zap.Logger) { erasure.SetLogger(l) }

func signatureOf[F any]() reflect.Type {
	return reflect.TypeOf((*F)(nil)).Elem()
}
