// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/wishlist"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistStore *wishlist.Store
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(store *wishlist.Store) *WishlistHandler {
	return &WishlistHandler{wishlistStore: store}
}

// AddToWishlistRequest represents add to wishlist request
type AddToWishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	items := h.wishlistStore.Items()

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"items": items,
			"count": len(items),
		},
	})
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	added, _ := h.wishlistStore.Add(req.ProductID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist updated successfully",
		"data": gin.H{
			"added":       added,
			"in_wishlist": h.wishlistStore.Contains(req.ProductID),
			"count":       h.wishlistStore.Count(),
		},
	})
}

// ToggleWishlist handles POST /wishlist/toggle/:id. This is the primary
// entry point used by product cards.
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	h.wishlistStore.Toggle(productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist updated successfully",
		"data": gin.H{
			"in_wishlist": h.wishlistStore.Contains(productID),
			"count":       h.wishlistStore.Count(),
		},
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	h.wishlistStore.Remove(productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist successfully",
		"data": gin.H{
			"count": h.wishlistStore.Count(),
		},
	})
}

// CheckWishlist handles GET /wishlist/items/:id
func (h *WishlistHandler) CheckWishlist(c *gin.Context) {
	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist membership retrieved successfully",
		"data": gin.H{
			"in_wishlist": h.wishlistStore.Contains(productID),
		},
	})
}

func (h *WishlistHandler) productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return 0, false
	}
	return uint(id), true
}
