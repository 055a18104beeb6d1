package services

import (
	"context"
	"errors"

	"meal-planner-api/models"
	"meal-planner-api/planner"
	"meal-planner-api/repository"

	"golang.org/x/sync/errgroup"
)

// Dashboard summarizes one day's progress for a user.
type Dashboard struct {
	Date            string                  `json:"date"`
	CalorieGoal     float64                 `json:"calorie_goal"`
	ProteinGoal     *float64                `json:"protein_goal,omitempty"`
	Consumed        planner.Totals          `json:"consumed"`
	CalorieProgress int                     `json:"calorie_progress"`
	ProteinProgress *int                    `json:"protein_progress,omitempty"`
	Remaining       planner.Remaining       `json:"remaining"`
	MealCounts      map[models.MealType]int `json:"meal_counts"`
	MenuItemCount   int64                   `json:"menu_item_count"`
	HasMenu         bool                    `json:"has_menu"`
	HasPreferences  bool                    `json:"has_preferences"`
}

type DashboardService struct {
	plans PlanStore
	items ItemStore
	prefs PreferencesStore
}

func NewDashboardService(plans PlanStore, items ItemStore, prefs PreferencesStore) *DashboardService {
	return &DashboardService{plans: plans, items: items, prefs: prefs}
}

// Get loads the plan, preferences and menu size for date concurrently.
// It returns nil without an identity.
func (s *DashboardService) Get(ctx context.Context, userID uint, date string) (*Dashboard, error) {
	if userID == 0 {
		return nil, nil
	}
	date, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	var (
		plan  *models.MealPlan
		prefs *models.UserPreferences
		count int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.plans.Get(gctx, userID, date)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		plan = p
		return err
	})
	g.Go(func() error {
		p, err := s.prefs.Get(gctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		prefs = p
		return err
	})
	g.Go(func() error {
		n, err := s.items.CountByDate(gctx, date)
		count = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	goals := planner.GoalsOf(prefs)
	var consumed planner.Totals
	if plan != nil {
		consumed = planner.Totals{Calories: plan.TotalCalories, Protein: plan.TotalProtein}
	}
	lists := planner.ListsOf(plan)
	counts := make(map[models.MealType]int, models.NumMealTypes)
	for _, mt := range models.MealTypes {
		counts[mt] = lists.Count(mt)
	}

	d := &Dashboard{
		Date:            date,
		CalorieGoal:     goals.Calories,
		ProteinGoal:     goals.Protein,
		Consumed:        consumed,
		CalorieProgress: planner.Progress(consumed.Calories, goals.Calories),
		Remaining:       planner.RemainingBudget(goals, consumed),
		MealCounts:      counts,
		MenuItemCount:   count,
		HasMenu:         count > 0,
		HasPreferences:  prefs != nil,
	}
	if goals.Protein != nil {
		p := planner.Progress(consumed.Protein, *goals.Protein)
		d.ProteinProgress = &p
	}
	return d, nil
}
