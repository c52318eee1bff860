package store

// Filter selects a subset of stored models. It is an opaque predicate:
// every layer in this package passes it through unchanged. A nil Filter
// matches every stored model.
type Filter[M any] func(M) bool

// Store provides uniform CRUD operations over a collection of models of
// one type M. Implementations own their backing storage exclusively and
// are not required to be safe for concurrent use; callers that share a
// Store across goroutines should wrap it with Guard.
type Store[M any] interface {
	// Create appends model to the backing store.
	Create(model M) error

	// Read returns the models matching filter as a new, independent
	// slice in insertion order. A nil filter returns every stored model.
	Read(filter Filter[M]) ([]M, error)

	// Update removes every stored model matching filter, then appends
	// model exactly once. When nothing matches, model is still appended.
	Update(filter Filter[M], model M) error

	// Delete removes every stored model matching filter. The relative
	// order of the remaining models is preserved.
	Delete(filter Filter[M]) error
}
