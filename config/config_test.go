package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "INGEST_HOUR_UTC", "MENU_LOCATION", "JWT_TTL_HOURS", "ARCHIVE_BUCKET"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8080" || cfg.DBDriver != "sqlite" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.IngestHourUTC != 5 || cfg.IngestMinuteUTC != 0 {
		t.Fatalf("unexpected schedule %d:%d", cfg.IngestHourUTC, cfg.IngestMinuteUTC)
	}
	if cfg.MenuLocation != "53 Commons" || cfg.MenuAPITimeout != 15*time.Second {
		t.Fatalf("unexpected menu config: %+v", cfg)
	}
	if cfg.Archive.Bucket != "" || cfg.Archive.Region != "auto" {
		t.Fatalf("unexpected archive config: %+v", cfg.Archive)
	}
	if JWTTTL != 24*time.Hour {
		t.Fatalf("unexpected ttl %v", JWTTTL)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("INGEST_HOUR_UTC", "noon")
	t.Setenv("INGEST_MINUTE_UTC", "75")
	t.Setenv("MENU_API_TIMEOUT_SECONDS", "x")
	cfg := Load()
	if cfg.IngestHourUTC != 5 || cfg.IngestMinuteUTC != 0 {
		t.Fatalf("expected fallback schedule, got %d:%d", cfg.IngestHourUTC, cfg.IngestMinuteUTC)
	}
	if cfg.MenuAPITimeout != 15*time.Second {
		t.Fatalf("expected fallback timeout, got %v", cfg.MenuAPITimeout)
	}
}

func TestIsAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "Chef@Example.com, ops@example.com")
	cfg := Load()
	if !cfg.IsAdminEmail("chef@example.com") || !cfg.IsAdminEmail(" OPS@example.com") {
		t.Fatalf("admin emails not matched: %v", cfg.AdminEmails)
	}
	if cfg.IsAdminEmail("guest@example.com") {
		t.Fatal("unexpected admin")
	}
}

func TestOpenDB_MemoryAndUnknownDriver(t *testing.T) {
	db, err := OpenDB("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !db.Migrator().HasTable("meal_plans") {
		t.Fatal("meal_plans not migrated")
	}
	if _, err := OpenDB("oracle", "x"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
