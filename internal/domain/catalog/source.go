// internal/domain/catalog/source.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source is the read-only product inventory. It preserves feed order and is
// safe for concurrent readers because it is never mutated after construction.
type Source struct {
	products []Product
	byID     map[uint]Product
}

// NewSource builds a catalog source from an already-decoded product list.
// Feed order is preserved; later duplicates of an id are dropped.
func NewSource(products []Product) *Source {
	src := &Source{
		products: make([]Product, 0, len(products)),
		byID:     make(map[uint]Product, len(products)),
	}
	for _, p := range products {
		if _, exists := src.byID[p.ID]; exists {
			continue
		}
		src.byID[p.ID] = p
		src.products = append(src.products, p)
	}
	return src
}

// LoadSource reads the catalog feed from a JSON file. An empty feed is a
// valid steady state, not an error.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog feed: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog feed: %w", err)
	}

	return NewSource(products), nil
}

// Get returns the product with the given id.
func (s *Source) Get(id uint) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Products returns a copy of the catalog in feed order.
func (s *Source) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of products in the catalog.
func (s *Source) Len() int {
	return len(s.products)
}

// Categories returns "All" followed by the distinct categories in the order
// they first appear in the feed. Used to populate the filter UI.
func (s *Source) Categories() []string {
	categories := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, p := range s.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}
