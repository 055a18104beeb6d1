package models

import (
	"fmt"
	"time"
)

// MealType is one of the three daily planning buckets.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// NumMealTypes is the number of planning buckets in a day.
const NumMealTypes = 3

// MealTypes lists the buckets in display order.
var MealTypes = [NumMealTypes]MealType{Breakfast, Lunch, Dinner}

// Index returns the position of m in MealTypes, or -1 if m is not a meal type.
func (m MealType) Index() int {
	switch m {
	case Breakfast:
		return 0
	case Lunch:
		return 1
	case Dinner:
		return 2
	}
	return -1
}

func (m MealType) Valid() bool { return m.Index() >= 0 }

// ParseMealType validates a raw meal type string.
func ParseMealType(s string) (MealType, error) {
	m := MealType(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid meal type %q: must be breakfast, lunch, or dinner", s)
	}
	return m, nil
}

// DateLayout is the ISO day format used for menu and plan dates.
const DateLayout = "2006-01-02"

// MenuItem is a single food offering for one date, location and meal type.
// Only Available changes after ingestion.
type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null"`
	MealType    MealType  `json:"meal_type" gorm:"not null;index:idx_menu_date_meal,priority:2"`
	Date        string    `json:"date" gorm:"not null;index:idx_menu_date_meal,priority:1"`
	Calories    float64   `json:"calories" gorm:"not null"`
	Protein     float64   `json:"protein" gorm:"not null"`
	Carbs       *float64  `json:"carbs,omitempty"`
	Fat         *float64  `json:"fat,omitempty"`
	Fiber       *float64  `json:"fiber,omitempty"`
	Description string    `json:"description,omitempty"`
	ServingSize string    `json:"serving_size,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Available   bool      `json:"available" gorm:"not null;default:true"`
	UniqueKey   string    `json:"unique_key" gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// UniqueKey builds the deduplication key for a menu item.
func UniqueKey(name, location string, mealType MealType, date string) string {
	return fmt.Sprintf("%s-%s-%s-%s", name, location, mealType, date)
}
