package repository

import (
	"context"
	"time"

	"meal-planner-api/models"

	"gorm.io/gorm"
)

type MealPlans struct {
	db *gorm.DB
}

func NewMealPlans(db *gorm.DB) *MealPlans {
	return &MealPlans{db: db}
}

// Get returns the plan owned by (userID, date) or ErrNotFound.
func (r *MealPlans) Get(ctx context.Context, userID uint, date string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&plan).Error
	if err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

// Create inserts a new plan at revision 0. A plan already stored for the same
// (user, date) yields ErrConflict.
func (r *MealPlans) Create(ctx context.Context, plan *models.MealPlan) error {
	plan.Revision = 0
	return translate(r.db.WithContext(ctx).Create(plan).Error)
}

// Update writes lists and totals only if the stored revision still equals
// plan.Revision, then advances plan.Revision. A stale plan yields ErrConflict.
func (r *MealPlans) Update(ctx context.Context, plan *models.MealPlan) error {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&models.MealPlan{}).
		Where("id = ? AND revision = ?", plan.ID, plan.Revision).
		Updates(map[string]any{
			"breakfast":      plan.Breakfast,
			"lunch":          plan.Lunch,
			"dinner":         plan.Dinner,
			"total_calories": plan.TotalCalories,
			"total_protein":  plan.TotalProtein,
			"revision":       plan.Revision + 1,
			"updated_at":     now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	plan.Revision++
	plan.UpdatedAt = now
	return nil
}
