package services

import (
	"context"
	"testing"

	"meal-planner-api/config"
	"meal-planner-api/models"
	"meal-planner-api/repository"

	"gorm.io/gorm"
)

type stores struct {
	db    *gorm.DB
	items *repository.MenuItems
	plans *repository.MealPlans
	prefs *repository.Preferences
	users *repository.Users
}

func newStores(t *testing.T) *stores {
	t.Helper()
	db, err := config.OpenDB("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return &stores{
		db:    db,
		items: repository.NewMenuItems(db),
		plans: repository.NewMealPlans(db),
		prefs: repository.NewPreferences(db),
		users: repository.NewUsers(db),
	}
}

func (s *stores) addItem(t *testing.T, name string, mt models.MealType, date string, cal, protein float64) models.MenuItem {
	t.Helper()
	it := &models.MenuItem{
		Name:      name,
		Location:  "Main Line",
		MealType:  mt,
		Date:      date,
		Calories:  cal,
		Protein:   protein,
		Available: true,
		UniqueKey: models.UniqueKey(name, "Main Line", mt, date),
	}
	if _, err := s.items.InsertIfAbsent(context.Background(), it); err != nil {
		t.Fatalf("insert %s: %v", name, err)
	}
	return *it
}

type recordingNotifier struct {
	events []*PlanView
}

func (n *recordingNotifier) PlanUpdated(userID uint, plan *PlanView) {
	n.events = append(n.events, plan)
}

const testDate = "2024-03-01"
