package repository

import (
	"context"
	"errors"

	"meal-planner-api/models"

	"gorm.io/gorm"
)

type Preferences struct {
	db *gorm.DB
}

func NewPreferences(db *gorm.DB) *Preferences {
	return &Preferences{db: db}
}

func (r *Preferences) Get(ctx context.Context, userID uint) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, translate(err)
	}
	return &prefs, nil
}

// Upsert stores prefs as the single record for prefs.UserID.
func (r *Preferences) Upsert(ctx context.Context, prefs *models.UserPreferences) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.UserPreferences
		err := tx.Where("user_id = ?", prefs.UserID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			prefs.ID = 0
			return translate(tx.Create(prefs).Error)
		case err != nil:
			return err
		}
		prefs.ID = existing.ID
		prefs.CreatedAt = existing.CreatedAt
		return tx.Save(prefs).Error
	})
}
