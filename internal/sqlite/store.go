// Package sqlite implements the store contract on top of a SQLite
// database file, persisting models as JSON-encoded rows.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/shelf/pkg/store"
)

// Store persists models of type M in a single SQLite table. Rows are kept
// in insertion order by the position column. Because filters are opaque
// predicates, matching always happens in Go after loading the rows.
//
// M must round-trip through encoding/json; models are compared only
// through the caller's filters, never by the store itself.
type Store[M any] struct {
	mu sync.RWMutex
	db *sql.DB
}

var _ store.Store[struct{}] = (*Store[struct{}])(nil)

// Open creates dataDir if needed, opens (or creates) the database file
// <dataDir>/<name>.db, and initializes the schema.
func Open[M any](dataDir, name string) (*Store[M], error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, name+".db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Store[M]{db: db}, nil
}

// Close releases the database handle. Close is idempotent; operations
// after Close return store.ErrStoreClosed.
func (s *Store[M]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	return nil
}

// newUUID generates a UUID v7 string, falling back to v4 if v7 fails.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Create appends model as a new row.
func (s *Store[M]) Create(model M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return store.ErrStoreClosed
	}

	body, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	if _, err := s.db.Exec(
		"INSERT INTO models (model_id, body) VALUES (?, ?)",
		newUUID(), string(body)); err != nil {
		return fmt.Errorf("inserting model: %w", err)
	}
	return nil
}

// Read returns the models matching filter in insertion order. A nil
// filter matches everything.
func (s *Store[M]) Read(filter store.Filter[M]) ([]M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, store.ErrStoreClosed
	}

	rows, err := s.loadRows()
	if err != nil {
		return nil, err
	}

	out := make([]M, 0, len(rows))
	for _, r := range rows {
		if filter == nil || filter(r.model) {
			out = append(out, r.model)
		}
	}
	return out, nil
}

// Update deletes every row matching filter and inserts model once, in a
// single transaction. Zero matches still insert model.
func (s *Store[M]) Update(filter store.Filter[M], model M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return store.ErrStoreClosed
	}

	rows, err := s.loadRows()
	if err != nil {
		return err
	}

	body, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning update: %w", err)
	}
	for _, r := range rows {
		if filter == nil || filter(r.model) {
			if _, err := tx.Exec("DELETE FROM models WHERE model_id = ?", r.id); err != nil {
				tx.Rollback()
				return fmt.Errorf("deleting model %s: %w", r.id, err)
			}
		}
	}
	if _, err := tx.Exec(
		"INSERT INTO models (model_id, body) VALUES (?, ?)",
		newUUID(), string(body)); err != nil {
		tx.Rollback()
		return fmt.Errorf("inserting replacement: %w", err)
	}
	return tx.Commit()
}

// Delete removes every row matching filter in a single transaction,
// leaving the remaining rows in their relative order.
func (s *Store[M]) Delete(filter store.Filter[M]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return store.ErrStoreClosed
	}

	rows, err := s.loadRows()
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning delete: %w", err)
	}
	for _, r := range rows {
		if filter == nil || filter(r.model) {
			if _, err := tx.Exec("DELETE FROM models WHERE model_id = ?", r.id); err != nil {
				tx.Rollback()
				return fmt.Errorf("deleting model %s: %w", r.id, err)
			}
		}
	}
	return tx.Commit()
}

// row pairs a decoded model with the row ID used for targeted deletes.
type row[M any] struct {
	id    string
	model M
}

// loadRows reads every row in insertion order. The caller must hold mu.
func (s *Store[M]) loadRows() ([]row[M], error) {
	rows, err := s.db.Query("SELECT model_id, body FROM models ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying models: %w", err)
	}
	defer rows.Close()

	var out []row[M]
	for rows.Next() {
		var r row[M]
		var body string
		if err := rows.Scan(&r.id, &body); err != nil {
			return nil, fmt.Errorf("scanning model: %w", err)
		}
		if err := json.Unmarshal([]byte(body), &r.model); err != nil {
			return nil, fmt.Errorf("decoding model %s: %w", r.id, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating models: %w", err)
	}
	return out, nil
}
