package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moodbite/backend/internal/service"
)

// PlannerHandler handles weekly meal plan generation and listing.
type PlannerHandler struct {
	planner *service.PlannerService
}

func NewPlannerHandler(planner *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

// RegisterRoutes registers the planner routes. The rate-limit middleware is
// applied by the router since plan generation also burns a model call.
func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	planner := router.Group("/planner")
	{
		planner.POST("/week", rateLimit, h.GenerateWeek)
		planner.GET("", h.ListPlans)
	}
}

type weeklyPlanRequest struct {
	Mood string `json:"mood"`
	Days int    `json:"days"`
	Diet string `json:"diet"`
}

func (h *PlannerHandler) GenerateWeek(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req weeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Mood) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mood is required"})
		return
	}

	weekPlan, err := h.planner.GenerateWeeklyPlan(c.Request.Context(), userID, req.Mood, req.Diet, req.Days)
	if err != nil {
		var parseErr *service.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("Meal plan parse error: %v", parseErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse meal plan"})
			return
		}
		log.Printf("Generate weekly plan error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate meal plan"})
		return
	}

	c.JSON(http.StatusOK, weekPlan)
}

func (h *PlannerHandler) ListPlans(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	plans, err := h.planner.ListPlans(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Get meal plans error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}
