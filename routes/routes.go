package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"furniture-shop/controllers"
	"furniture-shop/middleware"
	"furniture-shop/services"
)

func SetupRoutes(router *gin.Engine, sessions *services.SessionManager, catalog *services.CatalogService) {
	cartCtrl := controllers.NewCartController(sessions)
	wishlistCtrl := controllers.NewWishlistController(sessions)
	checkoutCtrl := controllers.NewCheckoutController(sessions)
	historyCtrl := controllers.NewHistoryController(sessions)
	productCtrl := controllers.NewProductController(catalog)
	orderCtrl := controllers.NewOrderController()
	invoiceCtrl := controllers.NewInvoiceController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	// Collaborator endpoints consumed by the checkout pipeline.
	api := router.Group("/api")
	{
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.GetOrders)
		api.POST("/send-email", invoiceCtrl.SendInvoice)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:index/quantity", cartCtrl.ChangeQuantity)
		auth.DELETE("/cart/items/:index", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)
		auth.GET("/cart/subtotal", cartCtrl.GetSubtotal)

		auth.GET("/wishlist", wishlistCtrl.GetWishlist)
		auth.POST("/wishlist", wishlistCtrl.AddItem)
		auth.DELETE("/wishlist/:id", wishlistCtrl.RemoveItem)
		auth.GET("/wishlist/count", wishlistCtrl.GetCount)

		auth.POST("/checkout", checkoutCtrl.Submit)
		auth.GET("/orders/history", historyCtrl.GetHistory)
	}
}
