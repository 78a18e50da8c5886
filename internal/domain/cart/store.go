// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Store owns the cart line items for the browsing session. It is the sole
// writer of its storage key. Every effective mutation persists the full cart
// synchronously, then notifies subscribers.
//
// Mutation methods report whether state changed. A non-nil error is always a
// recoverable persistence warning: the in-memory mutation has been applied
// and the next successful write re-persists the full state.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Source
	storage storage.Store
	log     *logrus.Logger

	lines  []Line
	index  map[uint]int
	nextID int
	subs   map[int]func()
}

// NewStore creates a cart store and restores any persisted session state.
// Persisted lines whose product no longer exists in the catalog are dropped.
func NewStore(src *catalog.Source, store storage.Store, log *logrus.Logger) *Store {
	s := &Store{
		catalog: src,
		storage: store,
		log:     log,
		index:   make(map[uint]int),
		subs:    make(map[int]func()),
	}
	s.load()
	return s
}

// Subscribe registers a listener invoked after every effective mutation.
// Listeners run synchronously on the mutating call and must not call back
// into the store. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Add puts a product in the cart. Unknown products are a silent no-op. A new
// line starts at the requested quantity clamped to at least 1; an existing
// line is incremented by it. Stock is not enforced here: the clamp belongs
// to UpdateQuantity, which backs the user-facing quantity controls.
func (s *Store) Add(productID uint, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.Get(productID); !ok {
		return false, nil
	}
	if quantity < 1 {
		quantity = 1
	}

	if i, ok := s.index[productID]; ok {
		s.lines[i].Quantity += quantity
	} else {
		s.index[productID] = len(s.lines)
		s.lines = append(s.lines, Line{ProductID: productID, Quantity: quantity})
	}

	return true, s.persistAndNotify()
}

// UpdateQuantity sets a line's quantity. Requests below 1 are ignored; the
// quantity controls are expected to disable themselves instead. Requests
// above the product's advertised stock are clamped to stock.
func (s *Store) UpdateQuantity(productID uint, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return false, nil
	}
	i, ok := s.index[productID]
	if !ok {
		return false, nil
	}
	if p, ok := s.catalog.Get(productID); ok && quantity > p.Stock {
		quantity = p.Stock
	}
	if quantity < 1 || s.lines[i].Quantity == quantity {
		return false, nil
	}

	s.lines[i].Quantity = quantity
	return true, s.persistAndNotify()
}

// Remove deletes a line. Absent lines are a no-op.
func (s *Store) Remove(productID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[productID]
	if !ok {
		return false, nil
	}

	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	delete(s.index, productID)
	for j := i; j < len(s.lines); j++ {
		s.index[s.lines[j].ProductID] = j
	}

	return true, s.persistAndNotify()
}

// Clear empties the cart. Used once, after successful checkout.
func (s *Store) Clear() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return false, nil
	}

	s.lines = nil
	s.index = make(map[uint]int)
	return true, s.persistAndNotify()
}

// Lines returns the cart contents in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Get returns the line for a product, if present.
func (s *Store) Get(productID uint) (Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[productID]
	if !ok {
		return Line{}, false
	}
	return s.lines[i], true
}

// Count returns the sum of all line quantities, for badge display.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// Total returns the cart value priced from the current catalog, not from a
// snapshot taken at add time. Catalog price changes reprice the cart.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, line := range s.lines {
		p, ok := s.catalog.Get(line.ProductID)
		if !ok {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (s *Store) load() {
	data, err := s.storage.Get(context.Background(), StorageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.WithError(err).Warn("Failed to restore cart, starting empty")
		}
		return
	}

	var persisted persistedCart
	if err := json.Unmarshal(data, &persisted); err != nil {
		s.log.WithError(err).Warn("Corrupt persisted cart, starting empty")
		return
	}

	for _, line := range persisted.Items {
		if _, ok := s.catalog.Get(line.ProductID); !ok {
			continue
		}
		if _, ok := s.index[line.ProductID]; ok {
			continue
		}
		if line.Quantity < 1 {
			continue
		}
		s.index[line.ProductID] = len(s.lines)
		s.lines = append(s.lines, line)
	}
}

// persistAndNotify is called with the lock held.
func (s *Store) persistAndNotify() error {
	var err error
	data, marshalErr := json.Marshal(persistedCart{
		Items:     append([]Line{}, s.lines...),
		UpdatedAt: time.Now().UTC(),
	})
	if marshalErr != nil {
		err = marshalErr
	} else if setErr := s.storage.Set(context.Background(), StorageKey, data); setErr != nil {
		err = setErr
	}
	if err != nil {
		s.log.WithError(err).Warn("Failed to persist cart, continuing in memory")
	}

	for _, fn := range s.subs {
		fn()
	}
	return err
}
