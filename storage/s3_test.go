package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	appconfig "meal-planner-api/config"

	"github.com/google/uuid"
)

func TestArchiveKey(t *testing.T) {
	id := uuid.MustParse("6f1c2a4e-8d3b-4f7a-9c1e-2b5d7a9e0f11")
	if got := ArchiveKey("2024-03-01", id); got != "menus/2024-03-01/6f1c2a4e-8d3b-4f7a-9c1e-2b5d7a9e0f11.json" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestNewS3Archiver_RequiresBucket(t *testing.T) {
	if _, err := NewS3Archiver(context.Background(), appconfig.ArchiveConfig{Region: "auto"}); err == nil {
		t.Fatal("expected error without bucket")
	}
}

func TestS3Archiver_Archive(t *testing.T) {
	var (
		mu   sync.Mutex
		path string
		body string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method %s", r.Method)
		}
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		path, body = r.URL.Path, string(b)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, err := NewS3Archiver(context.Background(), appconfig.ArchiveConfig{
		Bucket:    "menus-raw",
		Endpoint:  srv.URL,
		Region:    "auto",
		AccessKey: "test",
		SecretKey: "test",
	})
	if err != nil {
		t.Fatal(err)
	}
	key, err := a.Archive(context.Background(), "2024-03-01", []byte(`{"mealItems":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(key, "menus/2024-03-01/") || !strings.HasSuffix(key, ".json") {
		t.Fatalf("unexpected key %q", key)
	}

	mu.Lock()
	defer mu.Unlock()
	if path != "/menus-raw/"+key {
		t.Fatalf("unexpected request path %q", path)
	}
	if !strings.Contains(body, `{"mealItems":[]}`) {
		t.Fatalf("payload not uploaded, got %q", body)
	}
}
