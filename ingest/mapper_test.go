package ingest

import (
	"testing"

	"meal-planner-api/models"
)

func apiItem(name, location string, analyzed bool, calories float64, periods ...string) APIItem {
	menus := make([]MealMenu, 0, len(periods))
	for _, p := range periods {
		menus = append(menus, MealMenu{MealPeriod: p})
	}
	return APIItem{
		ItemName:          name,
		MainLocationLabel: location,
		IsAnalyzed:        analyzed,
		Nutrients: []Nutrient{
			{ID: "calories", Value: calories},
			{ID: "protein", Value: 12},
			{ID: "totalFat", Value: 9},
			{ID: "totalCarbohydrates", Value: 0},
		},
		DatesAvailable: []DateAvailable{
			{Date: "20240229", Menus: []MealMenu{{MealPeriod: "Breakfast"}}},
			{Date: "20240301", Menus: menus},
		},
		PortionSize: "1 cup",
		Ingredients: "tomato, basil",
	}
}

func TestMapItems_Filters(t *testing.T) {
	items := []APIItem{
		apiItem("Soup", "53 Commons", true, 180, "Lunch"),
		apiItem("Elsewhere", "Collis Cafe", true, 200, "Lunch"),
		apiItem("Unanalyzed", "53 Commons", false, 200, "Lunch"),
		apiItem("Water", "53 Commons", true, 0, "Lunch"),
		apiItem("Late Night Pizza", "53 Commons", true, 300, "Late Night"),
	}
	got := MapItems(items, "53 Commons", "2024-03-01")
	if len(got[models.Lunch]) != 1 || got[models.Lunch][0].Name != "Soup" {
		t.Fatalf("unexpected lunch %+v", got[models.Lunch])
	}
	if len(got[models.Breakfast])+len(got[models.Dinner]) != 0 {
		t.Fatalf("unexpected other periods %+v", got)
	}

	soup := got[models.Lunch][0]
	if soup.UniqueKey != "Soup-53 Commons-lunch-2024-03-01" {
		t.Fatalf("unexpected key %q", soup.UniqueKey)
	}
	if soup.Calories != 180 || soup.Protein != 12 || soup.Fat == nil || *soup.Fat != 9 {
		t.Fatalf("unexpected nutrition %+v", soup)
	}
	if soup.Carbs != nil || soup.Fiber != nil {
		t.Fatalf("zero nutrients should be absent, got carbs=%v fiber=%v", soup.Carbs, soup.Fiber)
	}
	if soup.ServingSize != "1 cup" || soup.Description != "tomato, basil" || !soup.Available {
		t.Fatalf("unexpected details %+v", soup)
	}
}

func TestMapItems_SeveralPeriods(t *testing.T) {
	items := []APIItem{apiItem("Pizza", "53 Commons", true, 300, "Lunch", "Dinner", "Lunch")}
	got := MapItems(items, "53 Commons", "2024-03-01")
	if len(got[models.Lunch]) != 1 || len(got[models.Dinner]) != 1 {
		t.Fatalf("expected one record per meal type, got %+v", got)
	}
	if got[models.Lunch][0].UniqueKey == got[models.Dinner][0].UniqueKey {
		t.Fatal("records must have distinct keys")
	}
}

func TestMapItems_DateNotServed(t *testing.T) {
	items := []APIItem{apiItem("Eggs", "53 Commons", true, 220, "Breakfast")}
	if got := MapItems(items, "53 Commons", "2024-03-02"); len(got) != 0 {
		t.Fatalf("expected nothing for a date the item is not served, got %+v", got)
	}
}
