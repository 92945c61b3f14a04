package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moodbite/backend/internal/model"
)

// FavoriteHandler handles the favorites collection: plain CRUD scoped to
// the authenticated user.
type FavoriteHandler struct {
	db *gorm.DB
}

func NewFavoriteHandler(db *gorm.DB) *FavoriteHandler {
	return &FavoriteHandler{db: db}
}

// RegisterRoutes registers the favorite routes
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/favorite", h.Add)
		recipes.GET("/favorite", h.List)
		recipes.DELETE("/favorite/:id", h.Delete)
	}
}

type favoriteRequest struct {
	Recipe model.JSONBMap `json:"recipe"`
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Recipe) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe is required"})
		return
	}

	mood, _ := req.Recipe["moodMatchedBy"].(string)
	favorite := model.Favorite{
		UserID: userID,
		Recipe: req.Recipe,
		Mood:   mood,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&favorite).Error; err != nil {
		log.Printf("Add favorite error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var favorites []model.Favorite
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		log.Printf("Get favorites error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid favorite id"})
		return
	}

	result := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		log.Printf("Delete favorite error: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Deleted"})
}
