package routes

import (
	"tea-shop/controllers"
	"tea-shop/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := &controllers.AuthController{}
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController()
	orderCtrl := controllers.NewOrderController()
	paymentCtrl := &controllers.PaymentController{}
	contactCtrl := controllers.NewContactController()
	feedbackCtrl := controllers.NewFeedbackController()
	leadCtrl := controllers.NewLeadController()
	chatCtrl := controllers.NewChatController()
	qrCtrl := &controllers.QRController{}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:slug", productCtrl.GetProductBySlug)

	cartGroup := router.Group("/cart")
	{
		cartGroup.POST("", cartCtrl.CreateCart)
		cartGroup.GET("", cartCtrl.GetCart)
		cartGroup.POST("/items", cartCtrl.AddItem)
		cartGroup.PATCH("/items/:variantId", cartCtrl.UpdateQty)
		cartGroup.DELETE("/items/:variantId", cartCtrl.RemoveItem)
		cartGroup.DELETE("", cartCtrl.ClearCart)
		cartGroup.GET("/totals", cartCtrl.GetTotals)
	}

	router.POST("/orders", orderCtrl.Checkout)
	router.GET("/orders/:orderNumber", orderCtrl.GetOrderByNumber)

	router.POST("/payments/create-order", paymentCtrl.CreateOrder)
	router.POST("/payments/verify", paymentCtrl.VerifyPayment)

	router.POST("/contact", contactCtrl.Submit)
	router.POST("/feedback", feedbackCtrl.Submit)
	router.POST("/leads", leadCtrl.Create)

	router.GET("/ai/chat", chatCtrl.Status)
	router.POST("/ai/chat", chatCtrl.Send)

	router.POST("/qr", qrCtrl.Generate)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.GET("/feedback", feedbackCtrl.List)
	}
}
