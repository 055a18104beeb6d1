package repository

import (
	"context"

	"meal-planner-api/models"

	"gorm.io/gorm"
)

type IngestLogs struct {
	db *gorm.DB
}

func NewIngestLogs(db *gorm.DB) *IngestLogs {
	return &IngestLogs{db: db}
}

func (r *IngestLogs) Create(ctx context.Context, entry *models.IngestLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Recent returns up to limit entries, newest first.
func (r *IngestLogs) Recent(ctx context.Context, limit int) ([]models.IngestLog, error) {
	var logs []models.IngestLog
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
