package cart

import (
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	{
		// Reads stay open so a fresh client can hydrate before auth settles.
		carts.GET("/items/:userId", handler.GetItems)

		authed := carts.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/add", handler.AddItem)
			authed.PUT("/update/:userId", handler.ReplaceItems)
			authed.DELETE("/remove/:userId/:productId", handler.RemoveItem)
		}
	}
}
