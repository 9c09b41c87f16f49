package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/controllers"
	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
)

// RegisterConsoleRoutes sets up all console routes under /api/console.
func RegisterConsoleRoutes(e *echo.Echo, content *services.ContentService, commerce *services.CommerceService, sessions *session.Manager, rdb *redis.Client) {
	authController := controllers.NewAuthController(content, sessions)
	categoryController := controllers.NewCategoryController(content, sessions)
	postController := controllers.NewPostController(content, sessions)
	productController := controllers.NewProductController(commerce, sessions)
	deliveryChargeController := controllers.NewDeliveryChargeController(commerce, sessions)
	orderController := controllers.NewOrderController(commerce, sessions, rdb)
	bannerController := controllers.NewBannerController(commerce, sessions)
	consumerController := controllers.NewConsumerController(commerce, sessions)
	dashboardController := controllers.NewDashboardController(content, commerce, sessions)

	console := e.Group("/api/console")

	// Public routes (no session required)
	console.POST("/auth/login", authController.Login)
	console.GET("/auth/session", authController.CheckSession)

	// Protected routes (require a valid console session)
	protected := console.Group("")
	protected.Use(middleware.SessionMiddleware(sessions))

	protected.POST("/auth/logout", authController.Logout)

	// Dashboard
	protected.GET("/dashboard/stats", dashboardController.GetStats)

	// Category routes
	protected.GET("/categories", categoryController.GetCategories)
	protected.POST("/categories", categoryController.CreateCategory)
	protected.PUT("/categories/:id", categoryController.UpdateCategory)
	protected.DELETE("/categories/:id", categoryController.DeleteCategory)

	// Subcategory routes (lazily expanded per category)
	protected.GET("/categories/:id/subcategories", categoryController.GetSubCategories)
	protected.POST("/categories/:id/subcategories", categoryController.CreateSubCategory)
	protected.PUT("/subcategories/:id", categoryController.UpdateSubCategory)
	protected.DELETE("/subcategories/:id", categoryController.DeleteSubCategory)

	// Post routes
	protected.GET("/posts", postController.GetPosts)
	protected.GET("/posts/:id", postController.GetPost)
	protected.POST("/categories/:id/posts", postController.CreatePost)
	protected.PUT("/posts/:id", postController.UpdatePost)
	protected.DELETE("/posts/:id", postController.DeletePost)
	protected.POST("/indexing", postController.SubmitIndexing)

	// Product routes
	protected.GET("/products", productController.GetProducts)
	protected.GET("/products/:id", productController.GetProduct)
	protected.POST("/products", productController.CreateProduct)
	protected.PUT("/products/:id", productController.UpdateProduct)
	protected.DELETE("/products/:id", productController.DeleteProduct)

	// Delivery charge routes
	protected.GET("/delivery-charges", deliveryChargeController.GetDeliveryCharges)
	protected.POST("/delivery-charges", deliveryChargeController.CreateDeliveryCharge)
	protected.PUT("/delivery-charges/:id", deliveryChargeController.UpdateDeliveryCharge)
	protected.DELETE("/delivery-charges/:id", deliveryChargeController.DeleteDeliveryCharge)

	// Order routes
	protected.GET("/orders", orderController.GetOrders)
	protected.GET("/orders/:id", orderController.GetOrder)
	protected.PUT("/orders/:id/status", orderController.UpdateStatus)
	protected.PUT("/orders/:id/verify-delivery", orderController.VerifyDelivery)

	// Banner routes
	protected.GET("/banners", bannerController.GetBanners)
	protected.POST("/banners", bannerController.CreateBanner)
	protected.PUT("/banners/:id/status", bannerController.UpdateBannerStatus)

	// Consumer routes
	protected.GET("/consumers", consumerController.GetConsumers)
}
