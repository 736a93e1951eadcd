package routes

import (
	"medicine-shop/controllers"
	"medicine-shop/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	medicineCtrl := controllers.NewMedicineController()
	cartCtrl := controllers.NewCartController()
	orderCtrl := controllers.NewOrderController()

	router.Use(middleware.APILimiter())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", middleware.AuthLimiter(), authCtrl.Register)
	router.POST("/auth/login", middleware.AuthLimiter(), authCtrl.Login)

	router.GET("/medicines", medicineCtrl.GetMedicines)
	router.GET("/medicines/categories", medicineCtrl.GetCategories)
	router.GET("/medicines/:id", medicineCtrl.GetMedicine)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/me", authCtrl.GetMe)
		auth.PUT("/auth/updatedetails", authCtrl.UpdateDetails)

		cart := auth.Group("/cart", middleware.CartLimiter())
		{
			cart.GET("", cartCtrl.GetCart)
			cart.POST("", cartCtrl.AddItem)
			cart.DELETE("", cartCtrl.ClearCart)
			cart.PUT("/:itemId", cartCtrl.UpdateItem)
			cart.DELETE("/:itemId", cartCtrl.RemoveItem)
		}

		auth.POST("/orders", middleware.OrderLimiter(), orderCtrl.CreateOrder)
		auth.GET("/orders/myorders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrder)
		auth.PUT("/orders/:id/pay", orderCtrl.PayOrder)
	}

	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/medicines", medicineCtrl.CreateMedicine)
		admin.PUT("/medicines/:id", medicineCtrl.UpdateMedicine)
		admin.DELETE("/medicines/:id", medicineCtrl.DeleteMedicine)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PUT("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}
}
