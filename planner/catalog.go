package planner

import (
	"strings"

	"meal-planner-api/models"
)

// FilterCatalog keeps items of the given meal type and, when term is not
// empty, only those whose name or location contains it case-insensitively.
func FilterCatalog(items []models.MenuItem, mealType models.MealType, term string) []models.MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if it.MealType != mealType {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Location), term) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Search is FilterCatalog across every meal type.
func Search(items []models.MenuItem, term string) []models.MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), term) ||
			strings.Contains(strings.ToLower(it.Location), term) {
			out = append(out, it)
		}
	}
	return out
}
