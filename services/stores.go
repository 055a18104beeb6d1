package services

import (
	"context"
	"time"

	"meal-planner-api/models"
	"meal-planner-api/repository"
)

// PlanStore persists meal plans. Update is compare-and-swap on Revision.
type PlanStore interface {
	Get(ctx context.Context, userID uint, date string) (*models.MealPlan, error)
	Create(ctx context.Context, plan *models.MealPlan) error
	Update(ctx context.Context, plan *models.MealPlan) error
}

// ItemStore reads the menu catalog.
type ItemStore interface {
	FindByID(ctx context.Context, id uint) (*models.MenuItem, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.MenuItem, error)
	List(ctx context.Context, q repository.MenuQuery) ([]models.MenuItem, error)
	CountByDate(ctx context.Context, date string) (int64, error)
	Dates(ctx context.Context) ([]string, error)
}

type PreferencesStore interface {
	Get(ctx context.Context, userID uint) (*models.UserPreferences, error)
	Upsert(ctx context.Context, prefs *models.UserPreferences) error
}

// Now is the clock used for "today".
var Now = time.Now

// Today is the current local date in models.DateLayout.
func Today() string {
	return Now().Format(models.DateLayout)
}

// ParseDate checks that s is a calendar date in models.DateLayout.
func ParseDate(s string) (string, error) {
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return "", ErrInvalidDate
	}
	return s, nil
}

// ParseMealType is models.ParseMealType reporting ErrInvalidMealType.
func ParseMealType(s string) (models.MealType, error) {
	mt, err := models.ParseMealType(s)
	if err != nil {
		return "", ErrInvalidMealType
	}
	return mt, nil
}
