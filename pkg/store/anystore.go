package store

// AnyStore is a type-erased handle to some Store[M]. It holds one
// forwarding function per contract operation, all captured from the same
// base implementation at construction, and is immutable afterwards.
// Callers hold a uniform *AnyStore[M] regardless of which concrete
// implementation backs it; the model type M stays visible and statically
// checked while the implementation type is hidden.
//
// AnyStore adds nothing on top of the base: no buffering, no caching, no
// reordering. Errors from the base propagate unchanged.
type AnyStore[M any] struct {
	createFn func(M) error
	readFn   func(Filter[M]) ([]M, error)
	updateFn func(Filter[M], M) error
	deleteFn func(Filter[M]) error
}

// AnyStore forwards the full contract.
var _ Store[struct{}] = (*AnyStore[struct{}])(nil)

// Erase wraps base in an AnyStore. The model type of base and of the
// returned wrapper are the same type parameter, so a mismatched wrap does
// not compile. A nil base is rejected here, before any operation can be
// invoked.
func Erase[M any](base Store[M]) (*AnyStore[M], error) {
	if base == nil {
		return nil, ErrNilStore
	}
	return &AnyStore[M]{
		createFn: base.Create,
		readFn:   base.Read,
		updateFn: base.Update,
		deleteFn: base.Delete,
	}, nil
}

// FromAny wraps a base held behind an untyped reference. The single type
// assertion happens here, at construction: a base that does not implement
// Store[M] yields ErrTypeMismatch immediately rather than a crash on
// first use.
func FromAny[M any](base any) (*AnyStore[M], error) {
	if base == nil {
		return nil, ErrNilStore
	}
	typed, ok := base.(Store[M])
	if !ok {
		return nil, ErrTypeMismatch
	}
	return Erase(typed)
}

// Create forwards to the wrapped implementation.
func (s *AnyStore[M]) Create(model M) error {
	return s.createFn(model)
}

// Read forwards to the wrapped implementation.
func (s *AnyStore[M]) Read(filter Filter[M]) ([]M, error) {
	return s.readFn(filter)
}

// Update forwards to the wrapped implementation.
func (s *AnyStore[M]) Update(filter Filter[M], model M) error {
	return s.updateFn(filter, model)
}

// Delete forwards to the wrapped implementation.
func (s *AnyStore[M]) Delete(filter Filter[M]) error {
	return s.deleteFn(filter)
}
