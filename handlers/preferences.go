package handlers

import (
	"net/http"

	"meal-planner-api/middleware"
	"meal-planner-api/models"
	"meal-planner-api/services"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	prefs *services.PreferencesService
}

func NewPreferencesHandler(prefs *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

func (h *PreferencesHandler) Get(c *gin.Context) {
	prefs, err := h.prefs.Get(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// Save upserts the caller's goals
func (h *PreferencesHandler) Save(c *gin.Context) {
	var req services.PreferencesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prefs, err := h.prefs.Save(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// Options lists the values the preferences form accepts
func (h *PreferencesHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"meal_types":           models.MealTypes,
		"dietary_restrictions": models.DietaryRestrictions,
		"default_calorie_goal": models.DefaultCalorieGoal,
	})
}
