package models

import "time"

// IngestStatus is the lifecycle state recorded for an ingestion run
type IngestStatus string

const (
	IngestStarted   IngestStatus = "started"
	IngestCompleted IngestStatus = "completed"
	IngestFailed    IngestStatus = "failed"
)

// IngestLog is one status entry written by the menu ingestor
type IngestLog struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	Date          string       `json:"date" gorm:"index;not null"`
	Status        IngestStatus `json:"status" gorm:"not null"`
	ItemsIngested int          `json:"items_ingested"`
	ErrorMessage  *string      `json:"error_message,omitempty"`
	DurationMS    *int64       `json:"duration_ms,omitempty"` // wall time of the run
	CreatedAt     time.Time    `json:"created_at"`
}
