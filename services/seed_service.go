package services

import (
	"context"

	"meal-planner-api/models"
)

// ItemInserter adds catalog rows without touching existing ones.
type ItemInserter interface {
	InsertIfAbsent(ctx context.Context, item *models.MenuItem) (bool, error)
}

type SeedResult struct {
	Inserted int `json:"inserted"`
	Total    int `json:"total"`
}

type demoItem struct {
	name     string
	location string
	mealType models.MealType
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

var demoCatalog = []demoItem{
	{"Scrambled Eggs", "Main Line", models.Breakfast, 220, 14, 2, 16},
	{"Oatmeal with Berries", "Main Line", models.Breakfast, 280, 8, 52, 5},
	{"Greek Yogurt Parfait", "Deli", models.Breakfast, 190, 12, 28, 4},
	{"Whole Wheat Toast", "Main Line", models.Breakfast, 130, 5, 24, 2},
	{"Fresh Fruit Bowl", "Salad Bar", models.Breakfast, 120, 2, 30, 0},
	{"Turkey Sausage", "Grill", models.Breakfast, 160, 11, 1, 12},

	{"Grilled Chicken Breast", "Grill", models.Lunch, 350, 42, 0, 8},
	{"Caesar Salad", "Salad Bar", models.Lunch, 280, 8, 18, 20},
	{"Veggie Wrap", "Deli", models.Lunch, 320, 12, 42, 12},
	{"Tomato Basil Soup", "Soup Station", models.Lunch, 180, 4, 22, 8},
	{"Brown Rice Bowl", "Main Line", models.Lunch, 420, 18, 62, 12},
	{"Turkey Club Sandwich", "Deli", models.Lunch, 480, 28, 38, 22},

	{"Salmon Fillet", "Main Line", models.Dinner, 380, 36, 0, 22},
	{"Pasta Primavera", "Pasta Station", models.Dinner, 420, 14, 58, 14},
	{"Stir-Fry Tofu", "Wok Station", models.Dinner, 310, 18, 28, 16},
	{"Roasted Vegetables", "Main Line", models.Dinner, 150, 4, 20, 6},
	{"Grilled Steak", "Grill", models.Dinner, 520, 44, 0, 32},
	{"Mixed Green Salad", "Salad Bar", models.Dinner, 90, 3, 10, 4},
}

// DemoCatalog returns the fallback menu for date.
func DemoCatalog(date string) []models.MenuItem {
	items := make([]models.MenuItem, 0, len(demoCatalog))
	for _, d := range demoCatalog {
		carbs, fat := d.carbs, d.fat
		items = append(items, models.MenuItem{
			Name:      d.name,
			Location:  d.location,
			MealType:  d.mealType,
			Date:      date,
			Calories:  d.calories,
			Protein:   d.protein,
			Carbs:     &carbs,
			Fat:       &fat,
			Available: true,
			UniqueKey: models.UniqueKey(d.name, d.location, d.mealType, date),
		})
	}
	return items
}

type SeedService struct {
	items ItemInserter
}

func NewSeedService(items ItemInserter) *SeedService {
	return &SeedService{items: items}
}

// Seed inserts the demo catalog for date, skipping items already present.
func (s *SeedService) Seed(ctx context.Context, date string) (SeedResult, error) {
	date, err := ParseDate(date)
	if err != nil {
		return SeedResult{}, err
	}
	items := DemoCatalog(date)
	res := SeedResult{Total: len(items)}
	for i := range items {
		inserted, err := s.items.InsertIfAbsent(ctx, &items[i])
		if err != nil {
			return res, err
		}
		if inserted {
			res.Inserted++
		}
	}
	return res, nil
}
