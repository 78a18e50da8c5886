// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/auth"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/token"
)

// Deps bundles the session stores and services the routes are built on.
// Everything is constructed once at startup and injected here.
type Deps struct {
	Catalog  *catalog.Source
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Auth     *auth.Service
	Checkout *checkout.Service
	Tokens   *token.Manager
}

// SetupRoutes wires all API routes onto the given group.
func SetupRoutes(rg *gin.RouterGroup, deps Deps) {
	setupCatalogRoutes(rg, deps)
	setupCartRoutes(rg, deps)
	setupWishlistRoutes(rg, deps)
	setupAuthRoutes(rg, deps)
	setupCheckoutRoutes(rg, deps)
}

func setupCatalogRoutes(rg *gin.RouterGroup, deps Deps) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/categories", catalogHandler.GetCategories)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, deps Deps) {
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Catalog)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

func setupWishlistRoutes(rg *gin.RouterGroup, deps Deps) {
	wishlistHandler := handlers.NewWishlistHandler(deps.Wishlist)

	wishlistGroup := rg.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/items", wishlistHandler.AddToWishlist)
		wishlistGroup.POST("/toggle/:id", wishlistHandler.ToggleWishlist)
		wishlistGroup.GET("/items/:id", wishlistHandler.CheckWishlist)
		wishlistGroup.DELETE("/items/:id", wishlistHandler.RemoveFromWishlist)
	}
}

func setupAuthRoutes(rg *gin.RouterGroup, deps Deps) {
	authHandler := handlers.NewAuthHandler(deps.Auth)

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)

		protected := authGroup.Group("")
		protected.Use(middleware.RequireSession(deps.Tokens))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, deps Deps) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout)

	rg.POST("/checkout", checkoutHandler.PlaceOrder)
}
