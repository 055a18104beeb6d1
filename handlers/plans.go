package handlers

import (
	"net/http"

	"meal-planner-api/middleware"
	"meal-planner-api/models"
	"meal-planner-api/services"

	"github.com/gin-gonic/gin"
)

type AddItemRequest struct {
	MealType   models.MealType `json:"meal_type" binding:"required"`
	MenuItemID uint            `json:"menu_item_id" binding:"required"`
}

type PlanHandler struct {
	plans       *services.MealPlanService
	suggestions *services.SuggestionService
}

func NewPlanHandler(plans *services.MealPlanService, suggestions *services.SuggestionService) *PlanHandler {
	return &PlanHandler{plans: plans, suggestions: suggestions}
}

// GetPlan returns the caller's plan for :date, or null
func (h *PlanHandler) GetPlan(c *gin.Context) {
	h.getPlan(c, c.Param("date"))
}

func (h *PlanHandler) GetTodayPlan(c *gin.Context) {
	h.getPlan(c, services.Today())
}

func (h *PlanHandler) getPlan(c *gin.Context, date string) {
	plan, err := h.plans.GetPlan(c.Request.Context(), middleware.GetUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// AddItem adds a menu item to one meal of the plan, creating the plan if needed
func (h *PlanHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := h.plans.AddItem(c.Request.Context(), middleware.GetUserID(c), c.Param("date"), req.MealType, req.MenuItemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *PlanHandler) RemoveItem(c *gin.Context) {
	itemID, ok := parseID(c, "item_id")
	if !ok {
		return
	}
	mealType, err := services.ParseMealType(c.Param("meal_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	plan, err := h.plans.RemoveItem(c.Request.Context(), middleware.GetUserID(c), c.Param("date"), mealType, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// ClearPlan empties the plan; clearing a missing plan also succeeds
func (h *PlanHandler) ClearPlan(c *gin.Context) {
	if _, err := h.plans.ClearPlan(c.Request.Context(), middleware.GetUserID(c), c.Param("date")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlanHandler) Suggestions(c *gin.Context) {
	mealType, err := services.ParseMealType(c.Query("meal_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := h.suggestions.Suggest(c.Request.Context(), middleware.GetUserID(c), c.Param("date"), mealType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}
