package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"meal-planner-api/models"
)

func TestCatalog_BrowseSearch(t *testing.T) {
	ctx := context.Background()
	st := newStores(t)
	if _, err := NewSeedService(st.items).Seed(ctx, testDate); err != nil {
		t.Fatal(err)
	}
	svc := NewCatalogService(st.items)

	got, err := svc.Browse(ctx, testDate, models.Lunch, "salad")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Caesar Salad" {
		t.Fatalf("expected only Caesar Salad, got %+v", got)
	}

	all, _ := svc.Browse(ctx, testDate, "", "salad")
	if len(all) != 3 {
		t.Fatalf("expected salads across meal types, got %d", len(all))
	}

	lunch, _ := svc.Browse(ctx, testDate, models.Lunch, "")
	if len(lunch) != 6 {
		t.Fatalf("expected 6 lunch items, got %d", len(lunch))
	}

	if _, err := svc.Browse(ctx, "tomorrow", "", ""); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCatalog_BrowseIncludesUnavailable(t *testing.T) {
	ctx := context.Background()
	st := newStores(t)
	it := st.addItem(t, "Wrap", models.Lunch, testDate, 320, 12)
	st.db.Model(&models.MenuItem{}).Where("id = ?", it.ID).Update("available", false)

	got, _ := NewCatalogService(st.items).Browse(ctx, testDate, models.Lunch, "")
	if len(got) != 1 || got[0].Available {
		t.Fatalf("expected the unavailable item listed, got %+v", got)
	}
}

func TestCatalog_AvailableToday(t *testing.T) {
	ctx := context.Background()
	st := newStores(t)
	Now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local) }
	t.Cleanup(func() { Now = time.Now })

	st.addItem(t, "Eggs", models.Breakfast, testDate, 220, 14)
	st.addItem(t, "Steak", models.Dinner, testDate, 520, 44)
	st.addItem(t, "Pasta", models.Dinner, "2024-03-02", 420, 14)

	svc := NewCatalogService(st.items)
	got, err := svc.Available(ctx, models.Dinner)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Steak" {
		t.Fatalf("unexpected today's dinner %+v", got)
	}

	dates, _ := svc.Dates(ctx)
	if len(dates) != 2 || dates[0] != "2024-03-02" {
		t.Fatalf("unexpected dates %v", dates)
	}
	if _, err := svc.Item(ctx, 404); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := newStores(t)
	svc := NewSeedService(st.items)

	res, err := svc.Seed(ctx, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if res.Inserted != 18 || res.Total != 18 {
		t.Fatalf("unexpected first seed %+v", res)
	}
	res, err = svc.Seed(ctx, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if res.Inserted != 0 || res.Total != 18 {
		t.Fatalf("unexpected second seed %+v", res)
	}
	if n, _ := st.items.CountByDate(ctx, testDate); n != 18 {
		t.Fatalf("expected 18 rows, got %d", n)
	}
}
