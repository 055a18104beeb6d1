package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"meal-planner-api/models"
)

var (
	// ErrFetchFailed wraps every failure that aborts a run.
	ErrFetchFailed = errors.New("menu fetch failed")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

type Fetcher interface {
	Fetch(ctx context.Context, date string) ([]byte, error)
}

// ItemWriter inserts new items and re-marks known ones available.
type ItemWriter interface {
	Upsert(ctx context.Context, item *models.MenuItem) (inserted bool, err error)
}

type LogWriter interface {
	Create(ctx context.Context, entry *models.IngestLog) error
}

// Archiver keeps a copy of the raw payload and returns where it went.
type Archiver interface {
	Archive(ctx context.Context, date string, payload []byte) (string, error)
}

type Result struct {
	Date       string `json:"date"`
	Items      int    `json:"items_ingested"`
	Inserted   int    `json:"inserted"`
	DurationMS int64  `json:"duration_ms"`
	ArchiveKey string `json:"archive_key,omitempty"`
}

type Ingestor struct {
	fetcher  Fetcher
	items    ItemWriter
	logs     LogWriter
	archiver Archiver
	location string
	now      func() time.Time
}

// NewIngestor wires a run. archiver may be nil.
func NewIngestor(fetcher Fetcher, items ItemWriter, logs LogWriter, archiver Archiver, location string) *Ingestor {
	return &Ingestor{
		fetcher:  fetcher,
		items:    items,
		logs:     logs,
		archiver: archiver,
		location: location,
		now:      time.Now,
	}
}

// Today is the UTC date ingestion defaults to.
func (in *Ingestor) Today() string {
	return in.now().UTC().Format(models.DateLayout)
}

// Run fetches and stores the menu for date (today in UTC when empty),
// recording started and then completed or failed.
func (in *Ingestor) Run(ctx context.Context, date string) (*Result, error) {
	if date == "" {
		date = in.Today()
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	start := in.now()
	log.Printf("ingest: started date=%s", date)
	in.record(ctx, &models.IngestLog{Date: date, Status: models.IngestStarted})

	res, err := in.run(ctx, date)
	elapsed := in.now().Sub(start).Milliseconds()
	if err != nil {
		msg := err.Error()
		in.record(ctx, &models.IngestLog{Date: date, Status: models.IngestFailed, ErrorMessage: &msg, DurationMS: &elapsed})
		log.Printf("ingest: failed date=%s duration=%dms: %v", date, elapsed, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	res.DurationMS = elapsed
	in.record(ctx, &models.IngestLog{Date: date, Status: models.IngestCompleted, ItemsIngested: res.Items, DurationMS: &elapsed})
	log.Printf("ingest: completed date=%s items=%d inserted=%d duration=%dms", date, res.Items, res.Inserted, elapsed)
	return res, nil
}

func (in *Ingestor) run(ctx context.Context, date string) (*Result, error) {
	raw, err := in.fetcher.Fetch(ctx, date)
	if err != nil {
		return nil, err
	}
	res := &Result{Date: date}
	if in.archiver != nil {
		key, err := in.archiver.Archive(ctx, date, raw)
		if err != nil {
			log.Printf("ingest: archive failed date=%s: %v", date, err)
		} else {
			res.ArchiveKey = key
		}
	}

	apiItems, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	byMeal := MapItems(apiItems, in.location, date)

	for _, mt := range models.MealTypes {
		if err := in.storePeriod(ctx, byMeal[mt], res); err != nil {
			log.Printf("ingest: %s failed date=%s: %v", mt, date, err)
		}
	}
	return res, nil
}

// storePeriod writes one meal period, stopping at the first failure.
func (in *Ingestor) storePeriod(ctx context.Context, items []models.MenuItem, res *Result) error {
	for i := range items {
		inserted, err := in.items.Upsert(ctx, &items[i])
		if err != nil {
			return fmt.Errorf("store %q: %w", items[i].UniqueKey, err)
		}
		res.Items++
		if inserted {
			res.Inserted++
		}
	}
	return nil
}

func (in *Ingestor) record(ctx context.Context, entry *models.IngestLog) {
	if err := in.logs.Create(ctx, entry); err != nil {
		log.Printf("ingest: write %s log for %s: %v", entry.Status, entry.Date, err)
	}
}
