package models

import (
	"time"

	"gorm.io/datatypes"
)

// MealPlan is a user's selection of menu items for one date.
// TotalCalories and TotalProtein are derived from the three lists and are
// rewritten on every mutation. Revision increments on every write.
type MealPlan struct {
	ID            uint                      `json:"id" gorm:"primaryKey"`
	UserID        uint                      `json:"user_id" gorm:"not null;uniqueIndex:idx_plan_user_date"`
	Date          string                    `json:"date" gorm:"not null;uniqueIndex:idx_plan_user_date"`
	Breakfast     datatypes.JSONSlice[uint] `json:"breakfast,omitempty"`
	Lunch         datatypes.JSONSlice[uint] `json:"lunch,omitempty"`
	Dinner        datatypes.JSONSlice[uint] `json:"dinner,omitempty"`
	TotalCalories float64                   `json:"total_calories"`
	TotalProtein  float64                   `json:"total_protein"`
	Revision      uint                      `json:"revision" gorm:"not null;default:0"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

// Meals returns the item references for a meal type.
func (p *MealPlan) Meals(m MealType) []uint {
	switch m {
	case Breakfast:
		return p.Breakfast
	case Lunch:
		return p.Lunch
	case Dinner:
		return p.Dinner
	}
	return nil
}

// SetMeals replaces the references for a meal type. An empty list is stored as nil.
func (p *MealPlan) SetMeals(m MealType, refs []uint) {
	if len(refs) == 0 {
		refs = nil
	}
	switch m {
	case Breakfast:
		p.Breakfast = refs
	case Lunch:
		p.Lunch = refs
	case Dinner:
		p.Dinner = refs
	}
}
