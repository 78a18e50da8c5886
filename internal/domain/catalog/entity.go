// internal/domain/catalog/entity.go
package catalog

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog item. Products are loaded wholesale from the
// feed at startup and are immutable for the life of the process.
type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// Sort keys accepted by the filter engine.
const (
	SortPopularity = "popularity"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
)

// CategoryAll is the sentinel meaning "no category constraint".
const CategoryAll = "All"
