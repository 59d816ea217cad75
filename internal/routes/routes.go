package routes

import (
	"net/http"

	"resto_backend/internal/auth"
	"resto_backend/internal/handlers"
	"resto_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route of the application.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	ginRouter.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Restaurant review API"})
	})
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := middleware.AuthMiddleware(tokens)
	optionalAuthMW := middleware.OptionalAuthMiddleware(tokens)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authMW)
		appHandlers.CategoryHandler.RegisterRoutes(api, authMW)
		appHandlers.RestaurantHandler.RegisterRoutes(api, authMW, optionalAuthMW)
		appHandlers.DishHandler.RegisterRoutes(api, authMW)
		appHandlers.ReviewHandler.RegisterRoutes(api, authMW)
		appHandlers.DishReviewHandler.RegisterRoutes(api, authMW)
	}
}
