package store

import (
	"strings"
	"sync"

	"pos-tracker/internal/models"
)

// OversellPolicy controls what a sale does when the requested quantity
// exceeds the stock on hand.
type OversellPolicy string

const (
	// OversellClamp caps the decrement so stock never goes negative. The
	// ledger entry still records the requested quantity.
	OversellClamp OversellPolicy = "clamp"
	// OversellReject fails the sale outright instead of clamping.
	OversellReject OversellPolicy = "reject"
)

// ParseOversellPolicy maps a config string to a policy, defaulting to clamp.
func ParseOversellPolicy(s string) OversellPolicy {
	if strings.EqualFold(s, string(OversellReject)) {
		return OversellReject
	}
	return OversellClamp
}

// Store owns the product catalog and the transaction ledger as one
// aggregate. A single lock guards both so a quantity mutation and its
// paired ledger append are visible together or not at all.
type Store struct {
	mu           sync.RWMutex
	products     []models.Product
	index        map[int64]int // product id -> position in products
	transactions []models.Transaction
	nextID       int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		index:  make(map[int64]int),
		nextID: 1,
	}
}

// Snapshot returns consistent copies of the catalog and the ledger,
// suitable for handing to the persistence adapter.
func (s *Store) Snapshot() ([]models.Product, []models.Transaction) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	transactions := make([]models.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	return products, transactions
}

// Restore replaces the store state wholesale, typically at session start
// from a persisted snapshot. Products missing an id are assigned one; the
// next id is re-derived from the maximum id seen.
func (s *Store) Restore(products []models.Product, transactions []models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]models.Product, 0, len(products))
	s.index = make(map[int64]int, len(products))
	s.nextID = 1

	for _, p := range products {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	for _, p := range products {
		if p.ID == 0 {
			p.ID = s.nextID
			s.nextID++
		}
		if _, dup := s.index[p.ID]; dup {
			continue
		}
		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}

	s.transactions = make([]models.Transaction, len(transactions))
	copy(s.transactions, transactions)
}
