package services

import (
	"context"
	"errors"
	"fmt"

	"meal-planner-api/models"
	"meal-planner-api/planner"
	"meal-planner-api/repository"
)

// maxPlanAttempts bounds read-modify-write retries after a lost race.
const maxPlanAttempts = 3

// PlanView is a stored plan with its references resolved to menu items.
// Unresolvable references are left out of ResolvedMeals.
type PlanView struct {
	*models.MealPlan
	ResolvedMeals map[models.MealType][]models.MenuItem `json:"resolved_meals"`
}

// PlanNotifier is told about every plan a mutation leaves behind.
type PlanNotifier interface {
	PlanUpdated(userID uint, plan *PlanView)
}

type MealPlanService struct {
	plans    PlanStore
	items    ItemStore
	notifier PlanNotifier
}

func NewMealPlanService(plans PlanStore, items ItemStore, notifier PlanNotifier) *MealPlanService {
	return &MealPlanService{plans: plans, items: items, notifier: notifier}
}

// GetPlan returns the plan for (userID, date), or nil when there is no
// identity or no plan.
func (s *MealPlanService) GetPlan(ctx context.Context, userID uint, date string) (*PlanView, error) {
	if userID == 0 {
		return nil, nil
	}
	date, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.Get(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.view(ctx, plan)
}

// AddItem appends itemID to the meal type's list, creating the plan on first
// use. Adding an item already in that list returns the plan unchanged.
func (s *MealPlanService) AddItem(ctx context.Context, userID uint, date string, mealType models.MealType, itemID uint) (*PlanView, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	date, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if !mealType.Valid() {
		return nil, ErrInvalidMealType
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	for attempt := 0; attempt < maxPlanAttempts; attempt++ {
		plan, err := s.plans.Get(ctx, userID, date)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			plan = &models.MealPlan{UserID: userID, Date: date}
			lists, _ := planner.AddItem(planner.Lists{}, mealType, itemID)
			if err := s.recompute(ctx, plan, lists); err != nil {
				return nil, err
			}
			err = s.plans.Create(ctx, plan)
			if errors.Is(err, repository.ErrConflict) {
				continue
			}
			if err != nil {
				return nil, err
			}
			return s.changed(ctx, plan)
		case err != nil:
			return nil, err
		}

		lists, changed := planner.AddItem(planner.ListsOf(plan), mealType, itemID)
		if !changed {
			return s.view(ctx, plan)
		}
		if err := s.recompute(ctx, plan, lists); err != nil {
			return nil, err
		}
		err = s.plans.Update(ctx, plan)
		if errors.Is(err, repository.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return s.changed(ctx, plan)
	}
	return nil, ErrConcurrentUpdate
}

// RemoveItem filters itemID out of the meal type's list. It fails with
// ErrPlanNotFound when there is no plan; an absent item is not an error.
func (s *MealPlanService) RemoveItem(ctx context.Context, userID uint, date string, mealType models.MealType, itemID uint) (*PlanView, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	date, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if !mealType.Valid() {
		return nil, ErrInvalidMealType
	}
	return s.mutate(ctx, userID, date, func(l planner.Lists) planner.Lists {
		return planner.RemoveItem(l, mealType, itemID)
	})
}

// ClearPlan empties every list and zeroes the totals. Clearing a plan that
// does not exist does nothing and returns nil.
func (s *MealPlanService) ClearPlan(ctx context.Context, userID uint, date string) (*PlanView, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	date, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	view, err := s.mutate(ctx, userID, date, func(planner.Lists) planner.Lists {
		return planner.Cleared()
	})
	if errors.Is(err, ErrPlanNotFound) {
		return nil, nil
	}
	return view, err
}

// mutate applies fn to an existing plan and writes it back, re-reading and
// re-applying when another writer got there first.
func (s *MealPlanService) mutate(ctx context.Context, userID uint, date string, fn func(planner.Lists) planner.Lists) (*PlanView, error) {
	for attempt := 0; attempt < maxPlanAttempts; attempt++ {
		plan, err := s.plans.Get(ctx, userID, date)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		if err != nil {
			return nil, err
		}
		if err := s.recompute(ctx, plan, fn(planner.ListsOf(plan))); err != nil {
			return nil, err
		}
		err = s.plans.Update(ctx, plan)
		if errors.Is(err, repository.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return s.changed(ctx, plan)
	}
	return nil, ErrConcurrentUpdate
}

// recompute stores lists on plan together with totals derived from them.
func (s *MealPlanService) recompute(ctx context.Context, plan *models.MealPlan, lists planner.Lists) error {
	idx, err := s.index(ctx, lists)
	if err != nil {
		return err
	}
	planner.Apply(plan, lists, planner.RecomputeTotals(lists, idx))
	return nil
}

func (s *MealPlanService) index(ctx context.Context, lists planner.Lists) (planner.ItemIndex, error) {
	items, err := s.items.FindByIDs(ctx, lists.Refs())
	if err != nil {
		return nil, fmt.Errorf("load plan items: %w", err)
	}
	return planner.NewItemIndex(items), nil
}

func (s *MealPlanService) view(ctx context.Context, plan *models.MealPlan) (*PlanView, error) {
	lists := planner.ListsOf(plan)
	idx, err := s.index(ctx, lists)
	if err != nil {
		return nil, err
	}
	return &PlanView{MealPlan: plan, ResolvedMeals: planner.Resolve(lists, idx)}, nil
}

func (s *MealPlanService) changed(ctx context.Context, plan *models.MealPlan) (*PlanView, error) {
	v, err := s.view(ctx, plan)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.PlanUpdated(plan.UserID, v)
	}
	return v, nil
}
