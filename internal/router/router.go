package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/moodbite/backend/internal/api"
	"github.com/moodbite/backend/internal/middleware"
	"github.com/moodbite/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	favoriteHandler *api.FavoriteHandler,
	plannerHandler *api.PlannerHandler,
	authService *service.AuthService,
	plannerLimiter *middleware.SlidingWindowLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		recipeHandler.RegisterRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)
		plannerHandler.RegisterRoutes(protected, plannerLimiter.RateLimitMiddleware())
	}

	return router
}
