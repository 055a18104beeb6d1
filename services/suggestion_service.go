package services

import (
	"context"
	"errors"

	"meal-planner-api/models"
	"meal-planner-api/planner"
	"meal-planner-api/repository"
)

type SuggestionResult struct {
	Date        string            `json:"date"`
	MealType    models.MealType   `json:"meal_type"`
	Remaining   planner.Remaining `json:"remaining"`
	Suggestions []planner.Scored  `json:"suggestions"`
}

type SuggestionService struct {
	plans PlanStore
	items ItemStore
	prefs PreferencesStore
}

func NewSuggestionService(plans PlanStore, items ItemStore, prefs PreferencesStore) *SuggestionService {
	return &SuggestionService{plans: plans, items: items, prefs: prefs}
}

// Suggest ranks the day's available items of mealType against what is left
// of the user's goals. It returns nil without an identity.
func (s *SuggestionService) Suggest(ctx context.Context, userID uint, date string, mealType models.MealType) (*SuggestionResult, error) {
	if userID == 0 {
		return nil, nil
	}
	date, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if !mealType.Valid() {
		return nil, ErrInvalidMealType
	}

	plan, err := s.plans.Get(ctx, userID, date)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	candidates, err := s.items.List(ctx, repository.MenuQuery{Date: date, MealType: mealType, AvailableOnly: true})
	if err != nil {
		return nil, err
	}

	var totals planner.Totals
	if plan != nil {
		totals = planner.Totals{Calories: plan.TotalCalories, Protein: plan.TotalProtein}
	}
	remaining := planner.RemainingBudget(planner.GoalsOf(prefs), totals)

	top := planner.Suggest(planner.SuggestInput{
		Candidates:        candidates,
		RemainingCalories: remaining.Calories,
		RemainingProtein:  remaining.Protein,
		MealType:          mealType,
		Selected:          planner.ListsOf(plan).Selected(),
	})
	if top == nil {
		top = []planner.Scored{}
	}
	return &SuggestionResult{Date: date, MealType: mealType, Remaining: remaining, Suggestions: top}, nil
}
