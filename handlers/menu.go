package handlers

import (
	"net/http"

	"meal-planner-api/models"
	"meal-planner-api/services"

	"github.com/gin-gonic/gin"
)

type SeedRequest struct {
	Date string `json:"date"`
}

type MenuHandler struct {
	catalog *services.CatalogService
	seed    *services.SeedService
}

func NewMenuHandler(catalog *services.CatalogService, seed *services.SeedService) *MenuHandler {
	return &MenuHandler{catalog: catalog, seed: seed}
}

// ListMenu returns the day's catalog, filtered by meal_type and search
func (h *MenuHandler) ListMenu(c *gin.Context) {
	date := c.DefaultQuery("date", services.Today())
	items, err := h.catalog.Browse(c.Request.Context(), date, models.MealType(c.Query("meal_type")), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "items": items, "count": len(items)})
}

// TodayMenu returns today's available items
func (h *MenuHandler) TodayMenu(c *gin.Context) {
	items, err := h.catalog.Available(c.Request.Context(), models.MealType(c.Query("meal_type")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": services.Today(), "items": items, "count": len(items)})
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.catalog.Item(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// ListDates returns every date with menu data, newest first
func (h *MenuHandler) ListDates(c *gin.Context) {
	dates, err := h.catalog.Dates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// Seed inserts the demo catalog for a date (today by default)
func (h *MenuHandler) Seed(c *gin.Context) {
	var req SeedRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Date == "" {
		req.Date = services.Today()
	}
	res, err := h.seed.Seed(c.Request.Context(), req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
