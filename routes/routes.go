package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/theoMich19/delivecrous/configs"
	"github.com/theoMich19/delivecrous/controllers"
	"github.com/theoMich19/delivecrous/middlewares"
	"github.com/theoMich19/delivecrous/repository"
	"github.com/theoMich19/delivecrous/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, userRepo)
	favSvc := services.NewFavoriteService(userRepo, catalogRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(authSvc, favSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo)

	// Auth (public)
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)

	// Read-only catalog (public)
	r.GET("/restaurants", catalogCtrl.ListRestaurants)
	r.GET("/restaurants/search", catalogCtrl.SearchRestaurants)
	r.GET("/restaurants/city/:city", catalogCtrl.RestaurantsByCity)
	r.GET("/restaurants/:id", catalogCtrl.RestaurantDetail)
	r.GET("/meals", catalogCtrl.ListMeals)
	r.GET("/news", catalogCtrl.ListNews)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Users (protected)
	users := r.Group("/users", auth)
	{
		users.PATCH("/:id", userCtrl.UpdateProfile)
		users.GET("/:id/favorites", userCtrl.ListFavorites)
		users.POST("/:id/favorites/:mealId", userCtrl.AddFavorite)
		users.DELETE("/:id/favorites/:mealId", userCtrl.RemoveFavorite)
	}

	// Orders (protected)
	orders := r.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}
}
