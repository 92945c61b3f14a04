package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moodbite/backend/internal/middleware"
	"github.com/moodbite/backend/internal/model"
	"github.com/moodbite/backend/internal/service"
)

// RecipeHandler orchestrates the generation pipeline and the shopping
// list endpoint.
type RecipeHandler struct {
	db        *gorm.DB
	generator *service.RecipeGenerator
	limiter   *middleware.SlidingWindowLimiter
}

func NewRecipeHandler(db *gorm.DB, generator *service.RecipeGenerator, limiter *middleware.SlidingWindowLimiter) *RecipeHandler {
	return &RecipeHandler{
		db:        db,
		generator: generator,
		limiter:   limiter,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/generate", h.Generate)
		recipes.POST("/shopping-list", h.ShoppingList)
	}
}

type generateRequest struct {
	Mood       string `json:"mood"`
	Diet       string `json:"diet"`
	Time       string `json:"time"`
	Difficulty string `json:"difficulty"`
	Cuisine    string `json:"cuisine"`
}

// Generate handles POST /recipes/generate. Failures map to statuses in
// pipeline order: 400 for missing mood, 429 when the limiter denies, 500
// for upstream, parse and persistence failures. A parse failure carries a
// truncated excerpt of the raw model output for diagnosis.
func (h *RecipeHandler) Generate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Mood) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mood is required and must be a non-empty string"})
		return
	}

	if !h.limiter.Allow(userID.String()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Max 5 requests per minute."})
		return
	}

	recipes, err := h.generator.Generate(c.Request.Context(), service.GenerationFacets{
		Mood:       req.Mood,
		Diet:       req.Diet,
		Time:       req.Time,
		Difficulty: req.Difficulty,
		Cuisine:    req.Cuisine,
	})
	if err != nil {
		var parseErr *service.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("JSON parse error: %v", parseErr)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to parse recipe data. Please try again.",
				"debug": parseErr.Excerpt,
			})
			return
		}
		log.Printf("Generate recipes error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipes"})
		return
	}

	// Log the request. The write is best-effort relative to generation:
	// there is no transactional link between the model call and this row.
	logEntry := model.RecipeLog{
		UserID: userID,
		Mood:   req.Mood,
		QueryBody: model.JSONBMap{
			"mood":       req.Mood,
			"diet":       req.Diet,
			"time":       req.Time,
			"difficulty": req.Difficulty,
			"cuisine":    req.Cuisine,
		},
		RecipesReturned: recipesToJSONB(recipes),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&logEntry).Error; err != nil {
		log.Printf("Failed to save recipe log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipes"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

type shoppingListRequest struct {
	Recipes []struct {
		Ingredients []string `json:"ingredients"`
	} `json:"recipes"`
}

// ShoppingList handles POST /recipes/shopping-list.
func (h *RecipeHandler) ShoppingList(c *gin.Context) {
	var req shoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Recipes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipes array is required"})
		return
	}

	lists := make([][]string, 0, len(req.Recipes))
	for _, r := range req.Recipes {
		lists = append(lists, r.Ingredients)
	}

	c.JSON(http.StatusOK, service.BuildShoppingList(lists))
}

// requireUserID pulls the authenticated user's ID out of the gin context.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}
