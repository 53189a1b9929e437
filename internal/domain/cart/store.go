// internal/domain/cart/store.go
package cart

import (
	"errors"
	"sync"

	"github.com/Zevk4/levelup-store/internal/domain/catalog"
	"github.com/Zevk4/levelup-store/internal/storage"
	"github.com/sirupsen/logrus"
)

// StorageKey is the durable-tier key the cart persists under.
const StorageKey = "cart"

// Store holds the cart lines and the drawer visibility flag. Lines keep
// first-add order; every mutation serializes the full collection to the
// durable tier.
type Store struct {
	mu      sync.Mutex
	durable storage.Store
	logger  *logrus.Logger

	lines []Line
	open  bool
}

// NewStore creates the cart store, rehydrating the line collection from
// durable storage. Absence or a parse failure yields an empty cart; the
// error is logged, never propagated.
func NewStore(durable storage.Store, logger *logrus.Logger) *Store {
	s := &Store{
		durable: durable,
		logger:  logger,
	}

	var lines []Line
	err := storage.GetJSON(durable, StorageKey, &lines)
	switch {
	case err == nil:
		s.lines = lines
	case errors.Is(err, storage.ErrNotFound):
		// First run, empty cart.
	default:
		logger.WithError(err).Warn("Failed to load persisted cart, starting empty")
	}

	return s
}

// Add puts one unit of the product in the cart: an existing line for the
// same code gets its quantity incremented, otherwise a new line with
// quantity 1 is appended.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.Code == p.Code {
			s.lines[i].Quantity++
			s.persist()
			return
		}
	}

	s.lines = append(s.lines, Line{Product: p, Quantity: 1})
	s.persist()
}

// Remove deletes the entire line matching code, whatever its quantity.
// Removing an absent code is a no-op.
func (s *Store) Remove(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.Code == code {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []Line{}
	s.persist()
}

// Lines returns a copy of the line collection in first-add order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount returns the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Total returns Σ price × quantity in integer currency units. No
// rounding or tax logic applies.
func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, line := range s.lines {
		total += line.Product.Price * int64(line.Quantity)
	}
	return total
}

// Totals returns the count and total in one snapshot.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Totals{}
	for _, line := range s.lines {
		t.ItemCount += line.Quantity
		t.Total += line.Product.Price * int64(line.Quantity)
	}
	return t
}

// Open marks the presentation drawer visible. Orthogonal to contents.
func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

// Close marks the presentation drawer hidden.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// IsOpen reports the drawer visibility flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// persist is called with the lock held. Failures are logged and
// swallowed; the in-memory cart stays authoritative.
func (s *Store) persist() {
	if err := storage.SetJSON(s.durable, StorageKey, s.lines); err != nil {
		s.logger.WithError(err).Warn("Failed to persist cart")
	}
}
