// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/engagement"
	"github.com/your-org/storefront-backend/internal/domain/history"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// Services bundles the domain services the HTTP layer exposes. They
// are constructed once in main and shared.
type Services struct {
	Catalog    *catalog.Store
	Carts      *cart.Service
	Wishlists  *wishlist.Service
	History    *history.Service
	Users      *user.Service
	Orders     *order.Service
	Checkout   *checkout.Service
	Engagement *engagement.Service
	PDF        *pdf.Service
}

// SetupRoutes wires all /api/v1 routes.
func SetupRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(svc.Catalog)
	cartHandler := handlers.NewCartHandler(svc.Carts)
	wishlistHandler := handlers.NewWishlistHandler(svc.Wishlists, svc.Catalog)
	historyHandler := handlers.NewHistoryHandler(svc.History, svc.Catalog)
	authHandler := handlers.NewAuthHandler(svc.Users, svc.Carts)
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout, svc.Orders, svc.PDF)
	engagementHandler := handlers.NewEngagementHandler(svc.Engagement)

	// Public catalog routes
	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/search", productHandler.SearchProducts)
		products.GET("/categories", productHandler.ListCategories)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("/:id/notify-me", productHandler.NotifyMe)
	}

	// Auth routes
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.GET("/profile", middleware.AuthMiddleware(cfg), authHandler.GetProfile)
	}

	// Cart, wishlist, history, checkout: work for guests via the
	// session cookie and for signed-in users via the bearer token.
	optional := middleware.OptionalAuthMiddleware(cfg)

	cartRoutes := rg.Group("/cart", optional)
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
		cartRoutes.POST("/items", cartHandler.AddToCart)
		cartRoutes.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartRoutes.POST("/promo", cartHandler.ApplyPromoCode)
	}

	wishlistRoutes := rg.Group("/wishlist", optional)
	{
		wishlistRoutes.GET("", wishlistHandler.GetWishlist)
		wishlistRoutes.POST("/toggle", wishlistHandler.ToggleWishlist)
		wishlistRoutes.DELETE("/:id", wishlistHandler.RemoveFromWishlist)
		wishlistRoutes.DELETE("", wishlistHandler.ClearWishlist)
	}

	historyRoutes := rg.Group("/recently-viewed", optional)
	{
		historyRoutes.GET("", historyHandler.GetRecentlyViewed)
		historyRoutes.POST("", historyHandler.RecordView)
	}

	rg.POST("/checkout", optional, checkoutHandler.Checkout)
	orderRoutes := rg.Group("/orders", optional)
	{
		orderRoutes.GET("", checkoutHandler.ListOrders)
		orderRoutes.GET("/:number", checkoutHandler.GetOrder)
		orderRoutes.GET("/:number/receipt", checkoutHandler.DownloadReceipt)
	}

	// Engagement
	rg.POST("/contact", engagementHandler.SubmitContact)
	rg.POST("/newsletter", engagementHandler.Subscribe)

	// Admin routes
	admin := rg.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.GET("/products/:id/stock-alerts", productHandler.StockAlerts)
		admin.GET("/contact-messages", engagementHandler.ListMessages)
		admin.GET("/newsletter", engagementHandler.ListSubscribers)
	}
}
