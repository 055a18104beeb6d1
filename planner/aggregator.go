package planner

import "meal-planner-api/models"

// Totals are the aggregated nutrition of a day's plan.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

// ItemLookup resolves a menu item reference. ok is false when the item no
// longer exists.
type ItemLookup interface {
	Lookup(ref uint) (item models.MenuItem, ok bool)
}

// ItemIndex is an in-memory ItemLookup keyed by item ID.
type ItemIndex map[uint]models.MenuItem

// NewItemIndex indexes items by ID.
func NewItemIndex(items []models.MenuItem) ItemIndex {
	idx := make(ItemIndex, len(items))
	for _, it := range items {
		idx[it.ID] = it
	}
	return idx
}

func (idx ItemIndex) Lookup(ref uint) (models.MenuItem, bool) {
	it, ok := idx[ref]
	return it, ok
}

// RecomputeTotals sums calories and protein over every reference in the
// three lists. References that do not resolve are skipped.
func RecomputeTotals(lists Lists, lookup ItemLookup) Totals {
	var t Totals
	for _, refs := range lists {
		for _, ref := range refs {
			it, ok := lookup.Lookup(ref)
			if !ok {
				continue
			}
			t.Calories += it.Calories
			t.Protein += it.Protein
		}
	}
	return t
}

// Resolve maps each list to its resolvable items, preserving order.
func Resolve(lists Lists, lookup ItemLookup) map[models.MealType][]models.MenuItem {
	out := make(map[models.MealType][]models.MenuItem, models.NumMealTypes)
	for i, mt := range models.MealTypes {
		items := make([]models.MenuItem, 0, len(lists[i]))
		for _, ref := range lists[i] {
			if it, ok := lookup.Lookup(ref); ok {
				items = append(items, it)
			}
		}
		out[mt] = items
	}
	return out
}
