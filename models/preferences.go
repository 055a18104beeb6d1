package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultCalorieGoal applies wherever a user has not saved preferences.
const DefaultCalorieGoal = 2000

// DietaryRestrictions are the tags the preferences form offers.
var DietaryRestrictions = []string{
	"vegetarian",
	"vegan",
	"gluten-free",
	"dairy-free",
	"nut-free",
	"halal",
	"kosher",
}

// UserPreferences holds one user's goals. One row per user.
type UserPreferences struct {
	ID                  uint                          `json:"id" gorm:"primaryKey"`
	UserID              uint                          `json:"user_id" gorm:"uniqueIndex;not null"`
	DailyCalorieGoal    float64                       `json:"daily_calorie_goal" gorm:"not null"`
	DailyProteinGoal    *float64                      `json:"daily_protein_goal,omitempty"`
	PreferredMealTypes  datatypes.JSONSlice[MealType] `json:"preferred_meal_types"`
	DietaryRestrictions datatypes.JSONSlice[string]   `json:"dietary_restrictions,omitempty"`
	CreatedAt           time.Time                     `json:"created_at"`
	UpdatedAt           time.Time                     `json:"updated_at"`
}
