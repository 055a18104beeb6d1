package planner

import (
	"math"

	"meal-planner-api/models"
)

// Goals are the effective daily targets for a user.
type Goals struct {
	Calories float64  `json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
}

// GoalsOf returns the user's goals, falling back to the default calorie goal
// when no preferences have been saved.
func GoalsOf(prefs *models.UserPreferences) Goals {
	if prefs == nil {
		return Goals{Calories: models.DefaultCalorieGoal}
	}
	return Goals{Calories: prefs.DailyCalorieGoal, Protein: prefs.DailyProteinGoal}
}

// Remaining is goal minus what the plan already accumulates. Protein is nil
// when there is no protein goal.
type Remaining struct {
	Calories float64  `json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
}

func RemainingBudget(g Goals, t Totals) Remaining {
	r := Remaining{Calories: g.Calories - t.Calories}
	if g.Protein != nil {
		p := *g.Protein - t.Protein
		r.Protein = &p
	}
	return r
}

// Progress is the percentage of goal reached, rounded and capped at 100.
func Progress(current, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Min(math.Round(current/goal*100), 100))
}
