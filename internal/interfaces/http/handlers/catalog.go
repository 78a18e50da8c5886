// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// CatalogHandler handles product browsing endpoints
type CatalogHandler struct {
	catalog *catalog.Source
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(src *catalog.Source) *CatalogHandler {
	return &CatalogHandler{catalog: src}
}

// GetProducts handles GET /products. The query string is the shareable
// filter representation: category, search, price_min, price_max, sort.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	state := catalog.FilterStateFromQuery(c.Request.URL.Query())

	if raw := c.Query("price_min"); raw != "" {
		if min, err := decimal.NewFromString(raw); err == nil && !min.IsNegative() {
			state.PriceMin = min
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if max, err := decimal.NewFromString(raw); err == nil && !max.IsNegative() {
			state.PriceMax = max
		}
	}
	if sortKey := c.Query("sort"); sortKey != "" {
		state.SortKey = sortKey
	}

	products := catalog.Visible(h.catalog, state)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
			"query":    state.Query().Encode(),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, ok := h.catalog.Get(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetCategories handles GET /products/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(),
	})
}
