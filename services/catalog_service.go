package services

import (
	"context"
	"errors"

	"meal-planner-api/models"
	"meal-planner-api/planner"
	"meal-planner-api/repository"
)

type CatalogService struct {
	items ItemStore
}

func NewCatalogService(items ItemStore) *CatalogService {
	return &CatalogService{items: items}
}

// Browse lists the day's items, unavailable ones included, narrowed to
// mealType when set and to search when not blank.
func (s *CatalogService) Browse(ctx context.Context, date string, mealType models.MealType, search string) ([]models.MenuItem, error) {
	date, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if mealType != "" && !mealType.Valid() {
		return nil, ErrInvalidMealType
	}
	items, err := s.items.List(ctx, repository.MenuQuery{Date: date})
	if err != nil {
		return nil, err
	}
	if mealType != "" {
		return planner.FilterCatalog(items, mealType, search), nil
	}
	return planner.Search(items, search), nil
}

// Available lists today's available items, optionally for one meal type.
func (s *CatalogService) Available(ctx context.Context, mealType models.MealType) ([]models.MenuItem, error) {
	if mealType != "" && !mealType.Valid() {
		return nil, ErrInvalidMealType
	}
	return s.items.List(ctx, repository.MenuQuery{Date: Today(), MealType: mealType, AvailableOnly: true})
}

func (s *CatalogService) Item(ctx context.Context, id uint) (*models.MenuItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

func (s *CatalogService) Dates(ctx context.Context) ([]string, error) {
	dates, err := s.items.Dates(ctx)
	if dates == nil && err == nil {
		dates = []string{}
	}
	return dates, err
}
