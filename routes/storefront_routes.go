package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoparts/storefront/controllers"
	"github.com/autoparts/storefront/middleware"
)

// SetupStorefrontRoutes registers the API under router. Extra middleware
// (rate limiting) applies to every /api route.
func SetupStorefrontRoutes(router *gin.Engine, h *controllers.Storefront, extra ...gin.HandlerFunc) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api", extra...)

	// Catalog (stateless)
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/promos", h.ListPromos)
	api.GET("/categories", h.ListCategories)
	api.GET("/filters/metadata", h.GetFilterMetadata)
	api.GET("/pages/:page", h.GetPage)

	api.POST("/session", h.StartSession)
	api.DELETE("/session", middleware.ExistingSession(h.Sessions, h.Tokens, h.Logger), h.EndSession)

	// Session
	sess := api.Group("", middleware.Session(h.Sessions, h.Tokens, h.Logger))
	{
		sess.GET("/view", h.GetView)
		sess.PUT("/page", h.Navigate)

		// Filters
		sess.PUT("/filters/search", h.Search)
		sess.PUT("/filters/price", h.SetPriceRange)
		sess.POST("/filters/brands/:brand/toggle", h.ToggleBrand)
		sess.PUT("/filters/compatibility", h.SetCompatibility)
		sess.DELETE("/filters", h.ClearFilters)

		// Cart
		sess.GET("/cart", h.GetCart)
		sess.POST("/cart", h.AddToCart)
		sess.PUT("/cart/:productId", h.UpdateCart)
		sess.DELETE("/cart/:productId", h.RemoveCartItem)
		sess.POST("/cart/clear", h.ClearCart)

		// Contacts
		sess.POST("/contacts/messages", h.SubmitContact)
	}
}
