package ingest

import (
	"context"
	"log"
	"time"
)

// Runner runs one ingestion; an empty date means today.
type Runner interface {
	Run(ctx context.Context, date string) (*Result, error)
}

// NextRun is the first hour:minute UTC strictly after now.
func NextRun(now time.Time, hour, minute int) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// RunDaily runs r every day at hour:minute UTC until ctx is cancelled.
func RunDaily(ctx context.Context, r Runner, hour, minute int) {
	for {
		next := NextRun(time.Now(), hour, minute)
		log.Printf("⏰ Next menu ingestion at %s", next.Format(time.RFC3339))
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("ingest worker stopped")
			return
		case <-timer.C:
		}
		if _, err := r.Run(ctx, ""); err != nil {
			log.Printf("⚠️  ingest error: %v", err)
		}
	}
}
