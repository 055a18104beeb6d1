package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"meal-planner-api/models"
	"meal-planner-api/repository"
)

type PreferencesInput struct {
	DailyCalorieGoal    float64           `json:"daily_calorie_goal" binding:"required"`
	DailyProteinGoal    *float64          `json:"daily_protein_goal"`
	PreferredMealTypes  []models.MealType `json:"preferred_meal_types" binding:"required"`
	DietaryRestrictions []string          `json:"dietary_restrictions"`
}

// Normalize validates in and removes duplicate meal types and restrictions.
func (in *PreferencesInput) Normalize() error {
	if in.DailyCalorieGoal <= 0 {
		return fmt.Errorf("%w: daily calorie goal must be positive", ErrInvalidPreferences)
	}
	if in.DailyProteinGoal != nil && *in.DailyProteinGoal <= 0 {
		return fmt.Errorf("%w: daily protein goal must be positive", ErrInvalidPreferences)
	}
	if len(in.PreferredMealTypes) == 0 {
		return fmt.Errorf("%w: select at least one meal type", ErrInvalidPreferences)
	}
	var types []models.MealType
	for _, mt := range in.PreferredMealTypes {
		if !mt.Valid() {
			return fmt.Errorf("%w: unknown meal type %q", ErrInvalidPreferences, mt)
		}
		if !slices.Contains(types, mt) {
			types = append(types, mt)
		}
	}
	in.PreferredMealTypes = types

	var tags []string
	for _, r := range in.DietaryRestrictions {
		if !slices.Contains(models.DietaryRestrictions, r) {
			return fmt.Errorf("%w: unknown dietary restriction %q", ErrInvalidPreferences, r)
		}
		if !slices.Contains(tags, r) {
			tags = append(tags, r)
		}
	}
	in.DietaryRestrictions = tags
	return nil
}

type PreferencesService struct {
	prefs PreferencesStore
}

func NewPreferencesService(prefs PreferencesStore) *PreferencesService {
	return &PreferencesService{prefs: prefs}
}

// Get returns the saved preferences, or nil when there is no identity or
// nothing has been saved yet.
func (s *PreferencesService) Get(ctx context.Context, userID uint) (*models.UserPreferences, error) {
	if userID == 0 {
		return nil, nil
	}
	prefs, err := s.prefs.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return prefs, err
}

func (s *PreferencesService) Save(ctx context.Context, userID uint, in PreferencesInput) (*models.UserPreferences, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	prefs := &models.UserPreferences{
		UserID:              userID,
		DailyCalorieGoal:    in.DailyCalorieGoal,
		DailyProteinGoal:    in.DailyProteinGoal,
		PreferredMealTypes:  in.PreferredMealTypes,
		DietaryRestrictions: in.DietaryRestrictions,
	}
	if err := s.prefs.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
