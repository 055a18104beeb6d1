package ingest

import (
	"meal-planner-api/models"
)

var mealPeriods = map[string]models.MealType{
	"Breakfast": models.Breakfast,
	"Lunch":     models.Lunch,
	"Dinner":    models.Dinner,
}

func nutrient(ns []Nutrient, id string) float64 {
	for _, n := range ns {
		if n.ID == id {
			return n.Value
		}
	}
	return 0
}

func optional(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

// MapItems turns API items into menu items for date, grouped by meal type.
// Only analyzed items at location with positive calories are kept. An item
// served in several periods yields one record per meal type.
func MapItems(items []APIItem, location, date string) map[models.MealType][]models.MenuItem {
	apiDate := APIDate(date)
	out := make(map[models.MealType][]models.MenuItem, models.NumMealTypes)

	for _, it := range items {
		if it.MainLocationLabel != location || !it.IsAnalyzed {
			continue
		}
		calories := nutrient(it.Nutrients, "calories")
		if calories <= 0 {
			continue
		}

		var entry *DateAvailable
		for i := range it.DatesAvailable {
			if it.DatesAvailable[i].Date == apiDate {
				entry = &it.DatesAvailable[i]
				break
			}
		}
		if entry == nil {
			continue
		}

		var seen [models.NumMealTypes]bool
		for _, menu := range entry.Menus {
			mt, ok := mealPeriods[menu.MealPeriod]
			if !ok || seen[mt.Index()] {
				continue
			}
			seen[mt.Index()] = true
			out[mt] = append(out[mt], models.MenuItem{
				Name:        it.ItemName,
				Location:    it.MainLocationLabel,
				MealType:    mt,
				Date:        date,
				Calories:    calories,
				Protein:     nutrient(it.Nutrients, "protein"),
				Fat:         optional(nutrient(it.Nutrients, "totalFat")),
				Carbs:       optional(nutrient(it.Nutrients, "totalCarbohydrates")),
				Fiber:       optional(nutrient(it.Nutrients, "dietaryFiber")),
				ServingSize: it.PortionSize,
				Description: it.Ingredients,
				ImageURL:    it.ImagePath,
				Available:   true,
				UniqueKey:   models.UniqueKey(it.ItemName, it.MainLocationLabel, mt, date),
			})
		}
	}
	return out
}
