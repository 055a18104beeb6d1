package ingest

import (
	"context"
	"log"

	"meal-planner-api/config"
	"meal-planner-api/repository"
	"meal-planner-api/storage"

	"gorm.io/gorm"
)

// FromConfig builds the ingestor the server and the CLI share. Archiving is
// skipped when no bucket is configured or the client cannot be built.
func FromConfig(ctx context.Context, cfg *config.Config, db *gorm.DB) *Ingestor {
	var archiver Archiver
	if cfg.Archive.Bucket != "" {
		a, err := storage.NewS3Archiver(ctx, cfg.Archive)
		if err != nil {
			log.Printf("⚠️  raw menu archive disabled: %v", err)
		} else {
			archiver = a
		}
	}
	return NewIngestor(
		NewClient(cfg.MenuAPIURL, cfg.MenuAPITimeout),
		repository.NewMenuItems(db),
		repository.NewIngestLogs(db),
		archiver,
		cfg.MenuLocation,
	)
}
