package planner

import (
	"slices"

	"meal-planner-api/models"
)

// Lists is the fixed mapping from meal type (by MealType.Index) to the
// ordered item references selected for it. A nil and an empty list mean the
// same thing.
type Lists [models.NumMealTypes][]uint

// ListsOf copies the meal lists out of a plan.
func ListsOf(p *models.MealPlan) Lists {
	var l Lists
	if p == nil {
		return l
	}
	for i, mt := range models.MealTypes {
		l[i] = slices.Clone(p.Meals(mt))
	}
	return l
}

// Apply writes lists and totals back onto a plan.
func Apply(p *models.MealPlan, l Lists, t Totals) {
	for i, mt := range models.MealTypes {
		p.SetMeals(mt, l[i])
	}
	p.TotalCalories = t.Calories
	p.TotalProtein = t.Protein
}

// Contains reports whether ref is in the list for mt.
func (l Lists) Contains(mt models.MealType, ref uint) bool {
	i := mt.Index()
	if i < 0 {
		return false
	}
	return slices.Contains(l[i], ref)
}

// Refs returns every reference across all meal types.
func (l Lists) Refs() []uint {
	var out []uint
	for _, refs := range l {
		out = append(out, refs...)
	}
	return out
}

// Selected returns the set of references chosen in any meal type.
func (l Lists) Selected() map[uint]struct{} {
	set := make(map[uint]struct{})
	for _, refs := range l {
		for _, ref := range refs {
			set[ref] = struct{}{}
		}
	}
	return set
}

// Count returns the number of references for mt.
func (l Lists) Count(mt models.MealType) int {
	i := mt.Index()
	if i < 0 {
		return 0
	}
	return len(l[i])
}

// Empty reports whether no meal type has any references.
func (l Lists) Empty() bool {
	for _, refs := range l {
		if len(refs) > 0 {
			return false
		}
	}
	return true
}

// AddItem appends ref under mt. changed is false when ref was already present,
// in which case the lists are returned untouched.
func AddItem(l Lists, mt models.MealType, ref uint) (next Lists, changed bool) {
	i := mt.Index()
	if i < 0 || slices.Contains(l[i], ref) {
		return l, false
	}
	next = l
	next[i] = append(slices.Clone(l[i]), ref)
	return next, true
}

// RemoveItem filters ref out of the list for mt. Removing an absent ref is a
// no-op. A list that becomes empty is stored as nil.
func RemoveItem(l Lists, mt models.MealType, ref uint) Lists {
	i := mt.Index()
	if i < 0 {
		return l
	}
	next := l
	kept := make([]uint, 0, len(l[i]))
	for _, r := range l[i] {
		if r != ref {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	next[i] = kept
	return next
}

// Cleared is the empty plan state.
func Cleared() Lists { return Lists{} }
