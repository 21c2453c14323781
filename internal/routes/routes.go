package routes

import (
	"github.com/gin-gonic/gin"

	"venda_back_end/internal/handlers/product"
	"venda_back_end/internal/handlers/user"
	"venda_back_end/internal/middleware"
	"venda_back_end/internal/store"
)

func RegisterRoutes(r *gin.Engine, products *store.ProductStore, users store.UserStore) {
	productHandler := product.NewHandler(products)
	userHandler := user.NewHandler(users)

	api := r.Group("/api")

	// Catalogue public
	api.GET("/products", productHandler.GetAllProducts)
	api.GET("/products/:id", productHandler.GetProduct)

	// Auth
	api.POST("/auth/register", userHandler.Register)
	api.POST("/auth/login", userHandler.Login)
	api.GET("/auth/me", middleware.AuthRequired(), userHandler.Me)
	api.GET("/auth/oauth/:provider", userHandler.BeginAuth)
	api.GET("/auth/oauth/:provider/callback", userHandler.CallbackAuth)

	// Dashboard admin — CRUD produits
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	admin.POST("/products", productHandler.CreateProduct)
	admin.PUT("/products/:id", productHandler.UpdateProduct)
	admin.DELETE("/products/:id", productHandler.DeleteProduct)
}
