package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	src := catalog.NewSource([]catalog.Product{
		{ID: 1, Name: "Alpha", Category: "A", Price: decimal.NewFromInt(50), Rating: 4, Stock: 3},
		{ID: 2, Name: "Beta", Category: "B", Price: decimal.NewFromInt(150), Rating: 5, Stock: 10},
	})
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cartStore := cart.NewStore(src, storage.NewMemory(), logger)

	handler := NewCartHandler(cartStore, src)
	catalogHandler := NewCatalogHandler(src)

	router := gin.New()
	router.GET("/products", catalogHandler.GetProducts)
	router.GET("/cart", handler.GetCart)
	router.GET("/cart/count", handler.GetCartCount)
	router.POST("/cart/items", handler.AddToCart)
	router.PUT("/cart/items/:id", handler.UpdateCartItem)
	router.DELETE("/cart/items/:id", handler.RemoveFromCart)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w, payload
}

func TestAddToCartReturnsPresentedTotals(t *testing.T) {
	router := testRouter(t)

	w, payload := doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := payload["data"].(map[string]any)
	totals := data["totals"].(map[string]any)
	assert.Equal(t, "100.00", totals["subtotal"])
	assert.Equal(t, "10.00", totals["tax"])
	assert.Equal(t, "15.00", totals["shipping"])
	assert.Equal(t, "125.00", totals["total"])
}

func TestAddUnknownProductIsNotFound(t *testing.T) {
	router := testRouter(t)

	w, payload := doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id":99,"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", payload["error"])
}

func TestUpdateCartItemClampsToStock(t *testing.T) {
	router := testRouter(t)

	doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id":1,"quantity":1}`)
	w, payload := doJSON(t, router, http.MethodPut, "/cart/items/1", `{"quantity":50}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := payload["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]any)["quantity"])
}

func TestRemoveFromCartAndCount(t *testing.T) {
	router := testRouter(t)

	doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id":1,"quantity":2}`)
	doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id":2,"quantity":1}`)

	w, _ := doJSON(t, router, http.MethodDelete, "/cart/items/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	_, payload := doJSON(t, router, http.MethodGet, "/cart/count", "")
	data := payload["data"].(map[string]any)
	assert.Equal(t, float64(1), data["count"])
}

func TestGetProductsHonorsFilterQuery(t *testing.T) {
	router := testRouter(t)

	_, payload := doJSON(t, router, http.MethodGet, "/products?sort=price-desc", "")
	data := payload["data"].(map[string]any)
	products := data["products"].([]any)
	require.Len(t, products, 2)
	assert.Equal(t, float64(2), products[0].(map[string]any)["id"])

	_, payload = doJSON(t, router, http.MethodGet, "/products?category=A&search=alp", "")
	data = payload["data"].(map[string]any)
	assert.Equal(t, float64(1), data["count"])
	assert.Equal(t, "category=A&search=alp", data["query"])
}
