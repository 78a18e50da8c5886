// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// StorageKey is the durable-storage key owned exclusively by the cart store.
const StorageKey = "ecommerce_cart"

// Line is one entry in the cart: a product and the quantity the user intends
// to purchase. At most one line exists per product id.
type Line struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// persistedCart is the serialized form written to durable storage. Lines are
// kept as an ordered array so display order survives a reload; ids and
// quantities round-trip as JSON integers.
type persistedCart struct {
	Items     []Line    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}
