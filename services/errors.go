package services

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrPlanNotFound       = errors.New("meal plan not found")
	ErrItemNotFound       = errors.New("menu item not found")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMealType    = errors.New("invalid meal type, must be breakfast, lunch, or dinner")
	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrConcurrentUpdate   = errors.New("meal plan was modified concurrently, try again")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
