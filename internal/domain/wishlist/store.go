// internal/domain/wishlist/store.go
package wishlist

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Store owns the set of saved products. Pure set semantics over product ids,
// no quantity concept. Same persistence and notification contract as the
// cart store: every effective mutation writes the full list, then notifies;
// a non-nil error is a recoverable persistence warning.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Source
	storage storage.Store
	log     *logrus.Logger

	items  []Item
	nextID int
	subs   map[int]func()
}

// NewStore creates a wishlist store and restores any persisted entries.
func NewStore(src *catalog.Source, store storage.Store, log *logrus.Logger) *Store {
	s := &Store{
		catalog: src,
		storage: store,
		log:     log,
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

// Add saves a product, snapshotting it from the catalog. Unknown products
// and products already saved are a silent no-op.
func (s *Store) Add(productID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(productID)
}

// Remove deletes a saved product. Absent entries are a no-op.
func (s *Store) Remove(productID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(productID)
}

// Toggle adds or removes based on current membership. This is the primary
// entry point used by product cards.
func (s *Store) Toggle(productID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(productID) >= 0 {
		return s.remove(productID)
	}
	return s.add(productID)
}

// Contains reports whether a product is saved.
func (s *Store) Contains(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// Items returns the saved products in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of saved products.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Clear removes all saved products.
func (s *Store) Clear() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return false, nil
	}
	s.items = nil
	return true, s.persistAndNotify()
}

func (s *Store) add(productID uint) (bool, error) {
	if s.indexOf(productID) >= 0 {
		return false, nil
	}
	product, ok := s.catalog.Get(productID)
	if !ok {
		return false, nil
	}

	s.items = append(s.items, Item{Product: product, AddedAt: time.Now().UTC()})
	return true, s.persistAndNotify()
}

func (s *Store) remove(productID uint) (bool, error) {
	i := s.indexOf(productID)
	if i < 0 {
		return false, nil
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	return true, s.persistAndNotify()
}

func (s *Store) indexOf(productID uint) int {
	for i, item := range s.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) load() {
	data, err := s.storage.Get(context.Background(), StorageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.WithError(err).Warn("Failed to restore wishlist, starting empty")
		}
		return
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.WithError(err).Warn("Corrupt persisted wishlist, starting empty")
		return
	}

	for _, item := range items {
		if s.indexOf(item.Product.ID) >= 0 {
			continue
		}
		s.items = append(s.items, item)
	}
}

// persistAndNotify is called with the lock held.
func (s *Store) persistAndNotify() error {
	var err error
	data, marshalErr := json.Marshal(append([]Item{}, s.items...))
	if marshalErr != nil {
		err = marshalErr
	} else if setErr := s.storage.Set(context.Background(), StorageKey, data); setErr != nil {
		err = setErr
	}
	if err != nil {
		s.log.WithError(err).Warn("Failed to persist wishlist, continuing in memory")
	}

	for _, fn := range s.subs {
		fn()
	}
	return err
}
