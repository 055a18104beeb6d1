package planner

import (
	"math"
	"slices"

	"meal-planner-api/models"
)

// MaxSuggestions bounds the length of a suggestion list.
const MaxSuggestions = 5

const (
	targetCalorieRatio = 0.45
	calFitWeight       = 0.4
	densityWeight      = 3
	proteinBoostWeight = 2
)

// SuggestInput is everything the scorer needs. RemainingProtein is nil when
// the user has no protein goal.
type SuggestInput struct {
	Candidates        []models.MenuItem
	RemainingCalories float64
	RemainingProtein  *float64
	MealType          models.MealType
	Selected          map[uint]struct{}
}

// Scored is a candidate with its computed score.
type Scored struct {
	Item  models.MenuItem `json:"item"`
	Score float64         `json:"score"`
}

// Rank filters and scores every eligible candidate, highest score first.
// Equal scores keep candidate order.
func Rank(in SuggestInput) []Scored {
	if in.RemainingCalories <= 0 {
		return nil
	}
	scored := make([]Scored, 0, len(in.Candidates))
	for _, c := range in.Candidates {
		if _, taken := in.Selected[c.ID]; taken {
			continue
		}
		if c.MealType != in.MealType {
			continue
		}
		if c.Calories <= 0 || c.Calories > in.RemainingCalories {
			continue
		}
		scored = append(scored, Scored{Item: c, Score: score(c, in.RemainingCalories, in.RemainingProtein)})
	}
	slices.SortStableFunc(scored, func(a, b Scored) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return scored
}

// Suggest returns at most MaxSuggestions of the ranked candidates.
func Suggest(in SuggestInput) []Scored {
	ranked := Rank(in)
	if len(ranked) > MaxSuggestions {
		ranked = ranked[:MaxSuggestions]
	}
	return ranked
}

// SuggestItems is Suggest without scores.
func SuggestItems(in SuggestInput) []models.MenuItem {
	top := Suggest(in)
	items := make([]models.MenuItem, len(top))
	for i, s := range top {
		items[i] = s.Item
	}
	return items
}

// score expects item.Calories > 0.
func score(item models.MenuItem, remainingCalories float64, remainingProtein *float64) float64 {
	density := item.Protein / item.Calories
	calFit := 1 - math.Abs(targetCalorieRatio-item.Calories/remainingCalories)
	s := calFit*calFitWeight + density*densityWeight
	if remainingProtein != nil && *remainingProtein > 0 {
		s += item.Protein / *remainingProtein * proteinBoostWeight
	}
	return s
}
