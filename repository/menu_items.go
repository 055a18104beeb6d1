package repository

import (
	"context"
	"errors"

	"meal-planner-api/models"

	"gorm.io/gorm"
)

// MenuQuery selects the catalog for one day. An empty MealType matches all
// meal types.
type MenuQuery struct {
	Date          string
	MealType      models.MealType
	AvailableOnly bool
}

type MenuItems struct {
	db *gorm.DB
}

func NewMenuItems(db *gorm.DB) *MenuItems {
	return &MenuItems{db: db}
}

func (r *MenuItems) FindByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// FindByIDs returns the items that exist among ids. Missing ids are not an error.
func (r *MenuItems) FindByIDs(ctx context.Context, ids []uint) ([]models.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// List returns the items matching q in insertion order.
func (r *MenuItems) List(ctx context.Context, q MenuQuery) ([]models.MenuItem, error) {
	tx := r.db.WithContext(ctx).Where("date = ?", q.Date)
	if q.MealType != "" {
		tx = tx.Where("meal_type = ?", q.MealType)
	}
	if q.AvailableOnly {
		tx = tx.Where("available = ?", true)
	}
	var items []models.MenuItem
	if err := tx.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItems) CountByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.MenuItem{}).Where("date = ?", date).Count(&n).Error
	return n, err
}

// Dates lists every day that has menu data, newest first.
func (r *MenuItems) Dates(ctx context.Context) ([]string, error) {
	var dates []string
	err := r.db.WithContext(ctx).Model(&models.MenuItem{}).
		Distinct("date").
		Order("date DESC").
		Pluck("date", &dates).Error
	return dates, err
}

// Upsert inserts item when its unique key is new. Otherwise the existing row
// is marked available again and item is filled from it.
func (r *MenuItems) Upsert(ctx context.Context, item *models.MenuItem) (inserted bool, err error) {
	inserted, err = r.InsertIfAbsent(ctx, item)
	if err != nil || inserted {
		return inserted, err
	}
	err = r.db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("unique_key = ?", item.UniqueKey).
		Update("available", true).Error
	if err != nil {
		return false, err
	}
	item.Available = true
	return false, nil
}

// InsertIfAbsent inserts item unless a row with the same unique key exists,
// in which case item is filled from that row.
func (r *MenuItems) InsertIfAbsent(ctx context.Context, item *models.MenuItem) (bool, error) {
	db := r.db.WithContext(ctx)
	var existing models.MenuItem
	err := db.Where("unique_key = ?", item.UniqueKey).First(&existing).Error
	if err == nil {
		*item = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	err = db.Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// inserted concurrently by another run
		if err := db.Where("unique_key = ?", item.UniqueKey).First(&existing).Error; err != nil {
			return false, translate(err)
		}
		*item = existing
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
