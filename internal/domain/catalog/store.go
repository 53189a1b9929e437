// internal/domain/catalog/store.go
package catalog

import (
	"errors"
	"strings"
	"sync"

	"github.com/Zevk4/levelup-store/internal/storage"
	"github.com/sirupsen/logrus"
)

// StorageKey is the session-tier key the catalog persists under.
const StorageKey = "products"

// Store is the source of truth for product listings. It is seeded from
// the static dataset, augmented by admin-added products, and persisted to
// the session tier so the list survives store reconstruction within one
// deployment but resets with it.
type Store struct {
	mu      sync.RWMutex
	session storage.Store
	logger  *logrus.Logger

	products []Product
	loading  bool
}

// NewStore creates the catalog store, rehydrating from session storage if
// a product list was persisted there, and otherwise loading and
// persisting the seed dataset. Storage failures degrade to the seed.
func NewStore(session storage.Store, seed []Product, logger *logrus.Logger) *Store {
	s := &Store{
		session: session,
		logger:  logger,
		loading: true,
	}

	var stored []Product
	err := storage.GetJSON(session, StorageKey, &stored)
	switch {
	case err == nil:
		s.products = stored
	case errors.Is(err, storage.ErrNotFound):
		s.products = append(s.products, seed...)
		s.persist()
	default:
		logger.WithError(err).Warn("Failed to load persisted products, falling back to seed")
		s.products = append(s.products, seed...)
	}

	s.loading = false
	return s
}

// Loading reports whether the store is still rehydrating. Construction is
// synchronous, so observers only see false after NewStore returns.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Products returns a copy of the full product list, newest additions
// first.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Add prepends a new product and re-persists the list. No uniqueness
// check is performed on the code: the admin form owns code generation,
// and a duplicate code produces two entries rather than an error.
func (s *Store) Add(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]Product{p}, s.products...)
	s.persist()
}

// ByCode returns the first product with the given code.
func (s *Store) ByCode(code string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Code == code {
			return p, true
		}
	}
	return Product{}, false
}

// ByCategory filters by category and, when subcategory is non-empty, by
// subcategory as well.
func (s *Store) ByCategory(category, subcategory string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Product
	for _, p := range s.products {
		if p.Category != category {
			continue
		}
		if subcategory != "" && p.Subcategory != subcategory {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search matches the query case-insensitively against product names and
// descriptions. An empty query matches nothing.
func (s *Store) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			out = append(out, p)
		}
	}
	return out
}

// NextCode generates a code for a new product in the given subcategory
// against the current product list.
func (s *Store) NextCode(category, subcategory string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NextCode(category, subcategory, s.products)
}

// persist is called with the lock held.
func (s *Store) persist() {
	if err := storage.SetJSON(s.session, StorageKey, s.products); err != nil {
		s.logger.WithError(err).Warn("Failed to persist products")
	}
}
