// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// StorageKey is the durable-storage key owned exclusively by the wishlist
// store. The persisted value is the ordered item list.
const StorageKey = "ecommerce_wishlist"

// Item is a saved product. The product is a denormalized snapshot taken at
// insertion time, not a live catalog pointer; membership is by product id.
type Item struct {
	Product catalog.Product `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}
