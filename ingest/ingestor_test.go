package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"meal-planner-api/models"
)

type stubFetcher struct {
	raw []byte
	err error
}

func (f stubFetcher) Fetch(ctx context.Context, date string) ([]byte, error) {
	return f.raw, f.err
}

type memItems struct {
	byKey  map[string]*models.MenuItem
	failOn models.MealType
}

func (m *memItems) Upsert(ctx context.Context, item *models.MenuItem) (bool, error) {
	if item.MealType == m.failOn {
		return false, errors.New("disk full")
	}
	if m.byKey == nil {
		m.byKey = map[string]*models.MenuItem{}
	}
	if existing, ok := m.byKey[item.UniqueKey]; ok {
		existing.Available = true
		return false, nil
	}
	m.byKey[item.UniqueKey] = item
	return true, nil
}

type memLogs struct {
	entries []models.IngestLog
}

func (m *memLogs) Create(ctx context.Context, entry *models.IngestLog) error {
	m.entries = append(m.entries, *entry)
	return nil
}

type memArchive struct {
	payload []byte
	err     error
}

func (a *memArchive) Archive(ctx context.Context, date string, payload []byte) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.payload = payload
	return "menus/" + date + "/x.json", nil
}

func payload(t *testing.T, items ...APIItem) []byte {
	t.Helper()
	raw, err := json.Marshal(menuResponse{MealItems: items})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestIngestor_Completed(t *testing.T) {
	raw := payload(t,
		apiItem("Eggs", "53 Commons", true, 220, "Breakfast"),
		apiItem("Pizza", "53 Commons", true, 300, "Lunch", "Dinner"),
	)
	items, logs, arch := &memItems{}, &memLogs{}, &memArchive{}
	in := NewIngestor(stubFetcher{raw: raw}, items, logs, arch, "53 Commons")

	res, err := in.Run(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if res.Items != 3 || res.Inserted != 3 || res.ArchiveKey == "" {
		t.Fatalf("unexpected result %+v", res)
	}
	if string(arch.payload) != string(raw) {
		t.Fatal("raw payload not archived")
	}
	if len(logs.entries) != 2 || logs.entries[0].Status != models.IngestStarted || logs.entries[1].Status != models.IngestCompleted {
		t.Fatalf("unexpected logs %+v", logs.entries)
	}
	if logs.entries[1].ItemsIngested != 3 || logs.entries[1].DurationMS == nil {
		t.Fatalf("completed log missing details %+v", logs.entries[1])
	}

	// a second run refreshes availability without inserting
	res, err = in.Run(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if res.Items != 3 || res.Inserted != 0 || len(items.byKey) != 3 {
		t.Fatalf("rerun should be idempotent, got %+v", res)
	}
}

func TestIngestor_PeriodFailureDoesNotAbort(t *testing.T) {
	raw := payload(t,
		apiItem("Eggs", "53 Commons", true, 220, "Breakfast"),
		apiItem("Soup", "53 Commons", true, 180, "Lunch"),
		apiItem("Steak", "53 Commons", true, 520, "Dinner"),
	)
	items, logs := &memItems{failOn: models.Lunch}, &memLogs{}
	res, err := NewIngestor(stubFetcher{raw: raw}, items, logs, nil, "53 Commons").Run(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if res.Items != 2 {
		t.Fatalf("expected breakfast and dinner stored, got %+v", res)
	}
	if logs.entries[len(logs.entries)-1].Status != models.IngestCompleted {
		t.Fatalf("run should complete, got %+v", logs.entries)
	}
}

func TestIngestor_FetchFailure(t *testing.T) {
	logs := &memLogs{}
	in := NewIngestor(stubFetcher{err: errors.New("API returned 500")}, &memItems{}, logs, nil, "53 Commons")

	_, err := in.Run(context.Background(), "2024-03-01")
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "menu fetch failed: API returned 500") {
		t.Fatalf("unexpected message %q", err)
	}
	last := logs.entries[len(logs.entries)-1]
	if last.Status != models.IngestFailed || last.ItemsIngested != 0 || last.ErrorMessage == nil || last.DurationMS == nil {
		t.Fatalf("unexpected failed log %+v", last)
	}
}

func TestIngestor_ArchiveFailureIsLogged(t *testing.T) {
	raw := payload(t, apiItem("Eggs", "53 Commons", true, 220, "Breakfast"))
	arch := &memArchive{err: errors.New("bucket missing")}
	res, err := NewIngestor(stubFetcher{raw: raw}, &memItems{}, &memLogs{}, arch, "53 Commons").Run(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("archive failure must not fail the run: %v", err)
	}
	if res.Items != 1 || res.ArchiveKey != "" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestIngestor_InvalidDate(t *testing.T) {
	logs := &memLogs{}
	_, err := NewIngestor(stubFetcher{}, &memItems{}, logs, nil, "53 Commons").Run(context.Background(), "March 1")
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if len(logs.entries) != 0 {
		t.Fatal("nothing should be logged for a rejected date")
	}
}
