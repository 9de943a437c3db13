package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodexpress/food-ordering-app/controllers"
	"github.com/foodexpress/food-ordering-app/middlewares"
	"github.com/foodexpress/food-ordering-app/stores"
	"github.com/foodexpress/food-ordering-app/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Must be registered before the routes or it never runs for them.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Uploaded images are served straight from disk.
	r.Static("/uploads", utils.UploadDir)

	catalog := stores.NewGormCatalogStore(db)
	orders := stores.NewGormOrderStore(db)
	stats := stores.NewGormStatsStore(db)

	restaurantCtrl := controllers.NewRestaurantController(catalog)
	orderCtrl := controllers.NewOrderController(orders)
	adminCtrl := controllers.NewAdminController(stats)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// -- CUSTOMER --
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// -- ADMIN --
	admin := r.Group("/admin")
	admin.GET("/stats", adminCtrl.GetStats)

	// Catalog mutations write uploaded files to disk, so they get the
	// stricter limiter.
	adminWrite := admin.Group("/")
	adminWrite.Use(middlewares.NewStrictRateLimiter())
	{
		adminWrite.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		adminWrite.POST("/restaurants/:restaurant_id/dishes", restaurantCtrl.CreateDish)
	}

	return r
}
