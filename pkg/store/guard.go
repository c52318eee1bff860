package store

import "sync"

// Guarded serializes access to a Store that is not safe for concurrent
// use: Read takes a shared lock, the three mutating operations take an
// exclusive lock. Update and Delete rewrite the whole backing collection,
// so per-record locking is not an option.
type Guarded[M any] struct {
	mu   sync.RWMutex
	base Store[M]
}

var _ Store[struct{}] = (*Guarded[struct{}])(nil)

// Guard wraps base in a Guarded store. A nil base is rejected.
func Guard[M any](base Store[M]) (*Guarded[M], error) {
	if base == nil {
		return nil, ErrNilStore
	}
	return &Guarded[M]{base: base}, nil
}

// Create appends model under the exclusive lock.
func (g *Guarded[M]) Create(model M) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.base.Create(model)
}

// Read queries under the shared lock.
func (g *Guarded[M]) Read(filter Filter[M]) ([]M, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.base.Read(filter)
}

// Update replaces the matching models under the exclusive lock.
func (g *Guarded[M]) Update(filter Filter[M], model M) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.base.Update(filter, model)
}

// Delete removes the matching models under the exclusive lock.
func (g *Guarded[M]) Delete(filter Filter[M]) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.base.Delete(filter)
}
