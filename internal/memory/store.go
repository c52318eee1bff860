// Package memory implements the store contract with a slice-backed,
// insertion-ordered collection. It performs no synchronization of its
// own; wrap it with store.Guard when sharing across goroutines.
package memory

import "github.com/mesh-intelligence/shelf/pkg/store"

// Store keeps models of type M in memory, in insertion order.
type Store[M any] struct {
	models []M
}

var _ store.Store[struct{}] = (*Store[struct{}])(nil)

// New returns an empty in-memory store.
func New[M any]() *Store[M] {
	return &Store[M]{}
}

// Create appends model to the collection.
func (s *Store[M]) Create(model M) error {
	s.models = append(s.models, model)
	return nil
}

// Read returns the models matching filter as a fresh slice. A nil filter
// matches everything.
func (s *Store[M]) Read(filter store.Filter[M]) ([]M, error) {
	out := make([]M, 0, len(s.models))
	for _, m := range s.models {
		if filter == nil || filter(m) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Update removes every model matching filter and appends model once,
// even when nothing matched.
func (s *Store[M]) Update(filter store.Filter[M], model M) error {
	kept := make([]M, 0, len(s.models)+1)
	for _, m := range s.models {
		if filter != nil && !filter(m) {
			kept = append(kept, m)
		}
	}
	s.models = append(kept, model)
	return nil
}

// Delete removes every model matching filter, preserving the relative
// order of the rest.
func (s *Store[M]) Delete(filter store.Filter[M]) error {
	kept := make([]M, 0, len(s.models))
	for _, m := range s.models {
		if filter != nil && !filter(m) {
			kept = append(kept, m)
		}
	}
	s.models = kept
	return nil
}
