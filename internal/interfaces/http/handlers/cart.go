// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/pricing"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartStore *cart.Store
	catalog   *catalog.Source
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *cart.Store, src *catalog.Source) *CartHandler {
	return &CartHandler{
		cartStore: cartStore,
		catalog:   src,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemView is a cart line joined with its current product record
type CartItemView struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   catalog.Product `json:"product"`
	LineTotal string          `json:"line_total"`
}

// TotalsView renders order totals rounded to 2 decimals. Rounding happens
// here, at presentation, never inside the pricing calculator.
type TotalsView struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// CartView is the full cart response
type CartView struct {
	Items  []CartItemView `json:"items"`
	Count  int            `json:"count"`
	Totals TotalsView     `json:"totals"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartView(),
	})
}

// GetCartCount handles GET /cart/count, used for badge display
func (h *CartHandler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data":    gin.H{"count": h.cartStore.Count()},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	changed, _ := h.cartStore.Add(req.ProductID, req.Quantity)
	if !changed {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartView(),
	})
}

// UpdateCartItem handles PUT /cart/items/:id. Quantities above the
// product's stock are clamped by the store.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cartStore.UpdateQuantity(productID, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartView(),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	h.cartStore.Remove(productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartView(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartStore.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    h.cartView(),
	})
}

func (h *CartHandler) productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return 0, false
	}
	return uint(id), true
}

func (h *CartHandler) cartView() CartView {
	lines := h.cartStore.Lines()
	totals := pricing.ComputeTotals(lines, h.catalog)

	items := make([]CartItemView, 0, len(lines))
	for _, line := range lines {
		product, ok := h.catalog.Get(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, CartItemView{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Product:   product,
			LineTotal: product.Price.Mul(decimalFromInt(line.Quantity)).StringFixed(2),
		})
	}

	return CartView{
		Items:  items,
		Count:  h.cartStore.Count(),
		Totals: newTotalsView(totals),
	}
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func newTotalsView(totals pricing.OrderTotals) TotalsView {
	return TotalsView{
		Subtotal: totals.Subtotal.StringFixed(2),
		Shipping: totals.Shipping.StringFixed(2),
		Tax:      totals.Tax.StringFixed(2),
		Total:    totals.Total.StringFixed(2),
	}
}
